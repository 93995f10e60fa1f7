// Package server serves QR codes for panorama share links over HTTP.
package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"paepcke.de/tourqr"
	"paepcke.de/tourqr/internal/config"
	"paepcke.de/tourqr/internal/logging"
	"paepcke.de/tourqr/render"
)

const (
	shutdownTimeout = 5 * time.Second
	requestIDHeader = "X-Request-Id"
)

// Server is the QR code HTTP service.
type Server struct {
	cfg      config.Configuration
	opts     tourqr.Options
	svg      render.SVGOptions
	logger   *zap.Logger
	metrics  *metrics
	gatherer prometheus.Gatherer
	router   *mux.Router
}

// New builds a Server from cfg. Metrics go to a registry private to the
// server.
func New(cfg config.Configuration, logger *zap.Logger) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opts, err := cfg.QR.Options()
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	m, err := newMetrics(reg)
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:      cfg,
		opts:     opts,
		svg:      cfg.SVG.Options(),
		logger:   logger,
		metrics:  m,
		gatherer: reg,
	}
	s.router = s.newRouter()
	return s, nil
}

func (s *Server) newRouter() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.requestMiddleware)

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	r.HandleFunc("/qr.svg", s.handleSVG).Methods(http.MethodGet)
	r.HandleFunc("/qr.txt", s.handleText).Methods(http.MethodGet)
	r.HandleFunc("/projects/{slug}/panoramas/{panoramaID}/qr.svg", s.handlePanoramaSVG).Methods(http.MethodGet)
	return r
}

// Handler returns the HTTP handler of the service.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.ListenAddress,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("address", s.cfg.ListenAddress))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != http.ErrServerClosed {
		return err
	}
	return nil
}

// requestMiddleware tags every request with an ID and a request scoped
// logger.
func (s *Server) requestMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(requestIDHeader))
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, id)

		ctx := logging.NewContext(r.Context(), s.logger,
			zap.String("requestID", id),
			zap.String("path", r.URL.Path))
		start := time.Now()
		next.ServeHTTP(w, r.WithContext(ctx))
		logging.WithContext(ctx).Debug("request served", zap.Duration("took", time.Since(start)))
	})
}

package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"paepcke.de/tourqr"
	"paepcke.de/tourqr/internal/logging"
	"paepcke.de/tourqr/render"
)

const (
	contentTypeSVG  = "image/svg+xml"
	contentTypeText = "text/plain; charset=utf-8"
	contentTypeJSON = "application/json"

	maxStyleModules = 64
)

var (
	colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{3,8}$`)
	idPattern    = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

	errPayloadTooLarge = errors.New("payload too large")
)

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleSVG serves /qr.svg?data=...&level=...&margin=...&scale=...
func (s *Server) handleSVG(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts, err := s.symbolOptions(q)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	svgOpts, err := s.svgOptions(q)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	sym, ok := s.generate(w, r, []byte(q.Get("data")), opts)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", contentTypeSVG)
	if err := render.WriteSVG(w, sym, svgOpts); err != nil {
		logging.WithContext(r.Context()).Warn("writing svg", zap.Error(err))
	}
}

// handleText serves /qr.txt?data=...&compact=1 for terminals.
func (s *Server) handleText(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts, err := s.symbolOptions(q)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	sym, ok := s.generate(w, r, []byte(q.Get("data")), opts)
	if !ok {
		return
	}
	text := render.Text(sym, render.DefaultMargin)
	if compact, _ := strconv.ParseBool(q.Get("compact")); compact {
		text = render.TerminalCompact(sym, render.DefaultMargin)
	}
	w.Header().Set("Content-Type", contentTypeText)
	fmt.Fprint(w, text)
}

// handlePanoramaSVG serves the QR code of a panorama's direct link.
func (s *Server) handlePanoramaSVG(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slug, panoramaID := vars["slug"], vars["panoramaID"]
	if !idPattern.MatchString(slug) || !idPattern.MatchString(panoramaID) {
		s.writeError(w, r, http.StatusBadRequest, errors.New("invalid project or panorama id"))
		return
	}

	q := r.URL.Query()
	opts, err := s.symbolOptions(q)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	svgOpts, err := s.svgOptions(q)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	link := PanoramaURL(s.cfg.BaseURL, slug, panoramaID)
	sym, ok := s.generate(w, r, []byte(link), opts)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", contentTypeSVG)
	if download, _ := strconv.ParseBool(q.Get("download")); download {
		w.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=%q", slug+"-"+panoramaID+".svg"))
	}
	if err := render.WriteSVG(w, sym, svgOpts); err != nil {
		logging.WithContext(r.Context()).Warn("writing svg", zap.Error(err))
	}
}

// PanoramaURL returns the direct link of a panorama below baseURL.
func PanoramaURL(baseURL, slug, panoramaID string) string {
	return strings.TrimRight(baseURL, "/") +
		"/projects/" + url.PathEscape(slug) +
		"/panoramas/" + url.PathEscape(panoramaID)
}

// generate runs the generator and reports failures to the client.
func (s *Server) generate(w http.ResponseWriter, r *http.Request, payload []byte, opts tourqr.Options) (*tourqr.Symbol, bool) {
	logger := logging.WithContext(r.Context())

	if limit := s.cfg.QR.MaxPayload; limit > 0 && len(payload) > limit {
		s.metrics.fail("payload_limit")
		s.writeError(w, r, http.StatusRequestEntityTooLarge,
			errors.Wrapf(errPayloadTooLarge, "%d bytes, limit %d", len(payload), limit))
		return nil, false
	}

	start := time.Now()
	sym, err := tourqr.Generate(payload, opts)
	if err != nil {
		switch {
		case errors.Is(err, tourqr.ErrCapacityExceeded):
			s.metrics.fail("capacity")
			s.writeError(w, r, http.StatusRequestEntityTooLarge, err)
		default:
			s.metrics.fail("internal")
			logger.Error("generating symbol", zap.Error(err))
			s.writeError(w, r, http.StatusInternalServerError, errors.New("unable to generate qr code"))
		}
		return nil, false
	}
	took := time.Since(start)
	s.metrics.observe(sym.Level().String(), sym.Version(), took)
	logger.Debug("generated symbol",
		zap.Int("bytes", len(payload)),
		zap.Int("version", sym.Version()),
		zap.Stringer("level", sym.Level()),
		zap.Int("mask", sym.Mask()),
		zap.Duration("took", took))
	return sym, true
}

// symbolOptions applies the level and layout query parameters to the
// configured defaults.
func (s *Server) symbolOptions(q url.Values) (tourqr.Options, error) {
	opts := s.opts
	if v := q.Get("level"); v != "" {
		level, err := tourqr.ParseLevel(v)
		if err != nil {
			return opts, err
		}
		opts.Level = level
	}
	if v := q.Get("layout"); v != "" {
		layout, err := tourqr.ParseLayout(v)
		if err != nil {
			return opts, err
		}
		opts.Layout = layout
	}
	return opts, nil
}

// svgOptions applies the styling query parameters to the configured
// defaults.
func (s *Server) svgOptions(q url.Values) (render.SVGOptions, error) {
	opts := s.svg
	for _, p := range []struct {
		name string
		dst  *int
	}{
		{"margin", &opts.Margin},
		{"scale", &opts.Scale},
	} {
		v := q.Get(p.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n > maxStyleModules {
			return opts, errors.Errorf("invalid %s %q", p.name, v)
		}
		*p.dst = n
	}
	for _, p := range []struct {
		name string
		dst  *string
	}{
		{"color", &opts.Color},
		{"background", &opts.Background},
	} {
		v := q.Get(p.name)
		if v == "" {
			continue
		}
		if !colorPattern.MatchString(v) {
			return opts, errors.Errorf("invalid %s %q", p.name, v)
		}
		*p.dst = v
	}
	return opts, nil
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	logging.WithContext(r.Context()).Info("request failed",
		zap.Int("status", status), zap.Error(err))
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

package server

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	generated *prometheus.CounterVec
	failed    *prometheus.CounterVec
	duration  prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		generated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tourqr",
			Name:      "symbols_generated_total",
			Help:      "QR symbols generated, by error correction level and version.",
		}, []string{"level", "version"}),
		failed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tourqr",
			Name:      "generate_errors_total",
			Help:      "Failed QR generations, by reason.",
		}, []string{"reason"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "tourqr",
			Name:      "generate_duration_seconds",
			Help:      "Time spent generating a QR symbol.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 12),
		}),
	}
	for _, c := range []prometheus.Collector{m.generated, m.failed, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *metrics) observe(level string, version int, took time.Duration) {
	m.generated.WithLabelValues(level, strconv.Itoa(version)).Inc()
	m.duration.Observe(took.Seconds())
}

func (m *metrics) fail(reason string) {
	m.failed.WithLabelValues(reason).Inc()
}

package synth

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK      = "ok"
	outcomeTimeout = "timeout"
	outcomeError   = "error"
)

// Metrics records synthesis outcomes. A nil *Metrics records nothing.
type Metrics struct {
	attempts prometheus.Histogram
	duration prometheus.Histogram
	results  *prometheus.CounterVec
}

// NewMetrics registers the synthesis metrics with reg, or with the default
// registerer when reg is nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Metrics{
		attempts: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "elogic_synth_attempts",
			Help:    "Generated trees per synthesis call",
			Buckets: []float64{1, 2, 3, 5, 10, 25, 100, 1000},
		}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "elogic_synth_duration_seconds",
			Help:    "Duration of synthesis calls",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		}),
		results: f.NewCounterVec(prometheus.CounterOpts{
			Name: "elogic_synth_results_total",
			Help: "Synthesis calls by outcome",
		}, []string{"outcome"}),
	}
}

func (m *Metrics) observe(outcome string, attempts int, start time.Time) {
	if m == nil {
		return
	}
	m.results.WithLabelValues(outcome).Inc()
	m.duration.Observe(time.Since(start).Seconds())
	if outcome != outcomeError {
		m.attempts.Observe(float64(attempts))
	}
}

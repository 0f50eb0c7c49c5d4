package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/pscheid92/landing/internal/domain"
)

// LandingMetrics counts what the landing page is rendered as.
type LandingMetrics struct {
	Renders       *prometheus.CounterVec
	RenderFailure prometheus.Counter
}

func NewLandingMetrics(reg prometheus.Registerer) *LandingMetrics {
	m := &LandingMetrics{
		Renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "page",
			Name:      "renders_total",
			Help:      "Total number of landing page renders, by theme.",
		}, []string{"theme"}),
		RenderFailure: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "page",
			Name:      "render_failures_total",
			Help:      "Total number of landing page renders that failed.",
		}),
	}

	reg.MustRegister(m.Renders, m.RenderFailure)
	return m
}

func (m *LandingMetrics) RecordRender(theme domain.Theme) {
	m.Renders.WithLabelValues(theme.Label()).Inc()
}

func (m *LandingMetrics) RecordFailure() {
	m.RenderFailure.Inc()
}

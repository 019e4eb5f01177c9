package observability

import (
	"context"

	"github.com/aretw0/screenflow/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors fed by controller events.
type Metrics struct {
	Activations     *prometheus.CounterVec
	Resets          *prometheus.CounterVec
	AdvanceFailures *prometheus.CounterVec
	Disposals       prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Activations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "screenflow_activations_total",
			Help: "Total number of times a screen became active",
		}, []string{"screen"}),
		Resets: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "screenflow_resets_total",
			Help: "Total number of screens reset on re-entry",
		}, []string{"screen"}),
		AdvanceFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "screenflow_advance_failures_total",
			Help: "Total number of failed advances by active screen",
		}, []string{"screen"}),
		Disposals: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "screenflow_disposals_total",
			Help: "Total number of screens disposed",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Activations, m.Resets, m.AdvanceFailures, m.Disposals)
	}
	return m
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnScreenEnter: func(_ context.Context, e *domain.ScreenEvent) {
			m.Activations.WithLabelValues(e.Screen).Inc()
		},
		OnScreenReset: func(_ context.Context, e *domain.ScreenEvent) {
			m.Resets.WithLabelValues(e.Screen).Inc()
		},
		OnAdvanceFailed: func(_ context.Context, e *domain.FailureEvent) {
			m.AdvanceFailures.WithLabelValues(e.Screen).Inc()
		},
		OnScreenDispose: func(_ context.Context, _ *domain.ScreenEvent) {
			m.Disposals.Inc()
		},
	}
}

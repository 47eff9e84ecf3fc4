package services

import (
	"github.com/lumbunggroup/lumbung-backend/models/contact"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeInvalid = "invalid"
	outcomeSuccess = "success"
	outcomeFailed  = "failed"
)

// ContactMetrics counts form lifecycle events. Hook is installed on every
// controller the server creates.
type ContactMetrics struct {
	transitions    *prometheus.CounterVec
	outcomes       *prometheus.CounterVec
	fieldErrors    *prometheus.CounterVec
	activeSessions prometheus.Gauge
}

func NewContactMetrics() *ContactMetrics {
	return NewContactMetricsWithRegistry(prometheus.DefaultRegisterer)
}

func NewContactMetricsWithRegistry(reg prometheus.Registerer) *ContactMetrics {
	m := &ContactMetrics{
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lumbung_contact_state_transitions_total",
			Help: "Contact form state transitions by source and target phase",
		}, []string{"from", "to"}),
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lumbung_contact_submissions_total",
			Help: "Contact form submission attempts by outcome",
		}, []string{"outcome"}),
		fieldErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lumbung_contact_field_errors_total",
			Help: "Validation errors reported per field",
		}, []string{"field"}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "lumbung_contact_active_sessions",
			Help: "Number of open contact form sessions",
		}),
	}

	reg.MustRegister(m.transitions)
	reg.MustRegister(m.outcomes)
	reg.MustRegister(m.fieldErrors)
	reg.MustRegister(m.activeSessions)

	return m
}

// Hook returns the controller transition hook that feeds the counters.
func (m *ContactMetrics) Hook() contact.TransitionHook {
	return func(t contact.Transition) {
		m.transitions.WithLabelValues(string(t.From.Phase), string(t.To.Phase)).Inc()

		switch {
		case t.From.Phase == contact.PhaseValidating && t.To.Phase == contact.PhaseIdle:
			m.outcomes.WithLabelValues(outcomeInvalid).Inc()
			for _, issue := range t.Errors.Issues {
				m.fieldErrors.WithLabelValues(issue.Field).Inc()
			}
		case t.To.Phase == contact.PhaseSuccess:
			m.outcomes.WithLabelValues(outcomeSuccess).Inc()
		case t.To.Phase == contact.PhaseFailed:
			m.outcomes.WithLabelValues(outcomeFailed).Inc()
		}
	}
}

// SetActiveSessions records the current session count.
func (m *ContactMetrics) SetActiveSessions(n int) {
	m.activeSessions.Set(float64(n))
}

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for claim notification processing.
type Metrics struct {
	// Notifications received by transport ("http", "kafka")
	NotificationsReceived *prometheus.CounterVec

	// Reconciliation outcomes by kind and operation
	Outcomes *prometheus.CounterVec

	// Processing failures by error code
	Failures *prometheus.CounterVec

	// Capability call latency by operation
	CapabilityLatency *prometheus.HistogramVec

	// End-to-end processing latency
	ProcessLatency prometheus.Histogram
}

// New creates a new Metrics instance registered on the default registry.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registers the claim metrics on reg. Tests pass a fresh registry.
func NewWith(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		NotificationsReceived: f.NewCounterVec(prometheus.CounterOpts{
			Name: "pixclaim_notifications_received_total",
			Help: "Claim notifications received by transport",
		}, []string{"transport"}),

		Outcomes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "pixclaim_reconcile_outcomes_total",
			Help: "Reconciliation outcomes by kind and operation",
		}, []string{"kind", "operation"}),

		Failures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "pixclaim_processing_failures_total",
			Help: "Claim notifications that ended in an error, by error code",
		}, []string{"code"}),

		CapabilityLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pixclaim_capability_call_duration_seconds",
			Help:    "Duration of Pix-key service calls by operation",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"operation"}),

		ProcessLatency: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "pixclaim_process_duration_seconds",
			Help:    "Duration of full notification processing including audit and capability calls",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
	}
}

// IncrementReceived records an inbound notification.
func (m *Metrics) IncrementReceived(transport string) {
	if m == nil {
		return
	}
	if transport == "" {
		transport = "direct"
	}
	m.NotificationsReceived.WithLabelValues(transport).Inc()
}

// IncrementOutcome records a reconciliation outcome.
func (m *Metrics) IncrementOutcome(kind, operation string) {
	if m != nil {
		m.Outcomes.WithLabelValues(kind, operation).Inc()
	}
}

// IncrementFailure records a processing failure.
func (m *Metrics) IncrementFailure(code string) {
	if m != nil {
		m.Failures.WithLabelValues(code).Inc()
	}
}

// ObserveCapabilityLatency records the duration of a Pix-key service call.
func (m *Metrics) ObserveCapabilityLatency(operation string, d time.Duration) {
	if m != nil {
		m.CapabilityLatency.WithLabelValues(operation).Observe(d.Seconds())
	}
}

// ObserveProcessLatency records the total processing duration.
func (m *Metrics) ObserveProcessLatency(d time.Duration) {
	if m != nil {
		m.ProcessLatency.Observe(d.Seconds())
	}
}

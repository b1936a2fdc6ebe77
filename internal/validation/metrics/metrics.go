package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for document checks.
type Metrics struct {
	// Check outcomes by kind ("cpf", "cnpj", "unknown") and outcome
	// ("valid", "invalid")
	CheckOutcome *prometheus.CounterVec

	// Number of documents per batch request
	BatchSize prometheus.Histogram

	// Per-request check latency by operation
	CheckLatency *prometheus.HistogramVec
}

// New registers the metrics on the default registry.
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry registers the metrics on reg. Tests pass a fresh
// prometheus.NewRegistry() to avoid duplicate registration.
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		CheckOutcome: f.NewCounterVec(prometheus.CounterOpts{
			Name: "docbr_checks_total",
			Help: "Total document checks by kind and outcome",
		}, []string{"kind", "outcome"}),

		BatchSize: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "docbr_batch_size",
			Help:    "Number of documents in batch check requests",
			Buckets: []float64{1, 5, 10, 25, 50, 100},
		}),

		CheckLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "docbr_check_duration_seconds",
			Help:    "Duration of document check operations",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}, []string{"operation"}), // operation: "check", "batch", "check_digits"
	}
}

// IncrementOutcome records one check result.
func (m *Metrics) IncrementOutcome(kind string, valid bool) {
	if m == nil {
		return
	}
	outcome := "invalid"
	if valid {
		outcome = "valid"
	}
	m.CheckOutcome.WithLabelValues(kind, outcome).Inc()
}

// ObserveBatchSize records the size of a batch request.
func (m *Metrics) ObserveBatchSize(n int) {
	if m != nil {
		m.BatchSize.Observe(float64(n))
	}
}

// ObserveLatency records the duration of an operation.
func (m *Metrics) ObserveLatency(operation string, d time.Duration) {
	if m != nil {
		m.CheckLatency.WithLabelValues(operation).Observe(d.Seconds())
	}
}

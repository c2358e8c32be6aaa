package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the registry engine.
type Metrics struct {
	// Items currently listed.
	ItemsListed prometheus.Gauge

	// Operation counts by operation name and result code.
	Operations *prometheus.CounterVec

	// Challenge resolutions by outcome.
	Resolutions *prometheus.CounterVec

	// Tokens moved into and out of registry escrow, by direction.
	EscrowFlow *prometheus.CounterVec

	// Operation latency by operation name.
	OperationLatency *prometheus.HistogramVec
}

// New creates a Metrics instance with all registry metrics registered.
func New() *Metrics {
	return &Metrics{
		ItemsListed: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "curio_registry_items_listed",
			Help: "Number of items currently in the registry",
		}),

		Operations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "curio_registry_operations_total",
			Help: "Total registry operations by operation and result code",
		}, []string{"operation", "code"}),

		Resolutions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "curio_registry_challenge_resolutions_total",
			Help: "Total challenge resolutions by outcome",
		}, []string{"outcome"}),

		EscrowFlow: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "curio_registry_escrow_tokens_total",
			Help: "Tokens moved through registry escrow by direction",
		}, []string{"direction"}), // direction: "in", "out"

		OperationLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "curio_registry_operation_duration_seconds",
			Help:    "Duration of registry operations",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"operation"}),
	}
}

// IncrementOperation records one operation attempt and its result code.
func (m *Metrics) IncrementOperation(operation, code string) {
	if m != nil {
		m.Operations.WithLabelValues(operation, code).Inc()
	}
}

// IncrementResolution records a resolved challenge.
func (m *Metrics) IncrementResolution(outcome string) {
	if m != nil {
		m.Resolutions.WithLabelValues(outcome).Inc()
	}
}

// AddEscrowFlow records tokens entering or leaving registry escrow.
func (m *Metrics) AddEscrowFlow(direction string, amount uint64) {
	if m != nil {
		m.EscrowFlow.WithLabelValues(direction).Add(float64(amount))
	}
}

// SetItemsListed records the current listing count.
func (m *Metrics) SetItemsListed(n int) {
	if m != nil {
		m.ItemsListed.Set(float64(n))
	}
}

// AddItemsListed adjusts the listing gauge by delta.
func (m *Metrics) AddItemsListed(delta int) {
	if m != nil {
		m.ItemsListed.Add(float64(delta))
	}
}

// ObserveOperationLatency records how long an operation took.
func (m *Metrics) ObserveOperationLatency(operation string, d time.Duration) {
	if m != nil {
		m.OperationLatency.WithLabelValues(operation).Observe(d.Seconds())
	}
}

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the analysis operations.
type Metrics struct {
	// Operation outcomes by operation and outcome ("ok", "rejected", "error")
	Operations *prometheus.CounterVec

	// Time spent computing each operation
	OperationLatency *prometheus.HistogramVec

	// Reflection magnitude of analysed loads
	GammaMagnitude prometheus.Histogram

	// Recommended topologies returned by the classifier
	Predictions *prometheus.CounterVec
}

// New creates a Metrics instance registered with reg. Pass
// prometheus.DefaultRegisterer in production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Operations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rfmatch_operations_total",
			Help: "Total analysis operations by operation and outcome",
		}, []string{"operation", "outcome"}),

		OperationLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rfmatch_operation_duration_seconds",
			Help:    "Duration of analysis computations by operation",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		}, []string{"operation"}),

		GammaMagnitude: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "rfmatch_gamma_magnitude",
			Help:    "Reflection coefficient magnitude of analysed loads",
			Buckets: []float64{0.05, 0.1, 0.2, 0.33, 0.5, 0.7, 0.9, 1, 1.5},
		}),

		Predictions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rfmatch_predictions_total",
			Help: "Recommended match topologies by label",
		}, []string{"label"}),
	}
}

// ObserveOperation records an operation's outcome and duration.
func (m *Metrics) ObserveOperation(operation, outcome string, d time.Duration) {
	if m != nil {
		m.Operations.WithLabelValues(operation, outcome).Inc()
		m.OperationLatency.WithLabelValues(operation).Observe(d.Seconds())
	}
}

// ObserveGamma records the |Γ| of an analysed load.
func (m *Metrics) ObserveGamma(magnitude float64) {
	if m != nil {
		m.GammaMagnitude.Observe(magnitude)
	}
}

// IncrementPrediction records a classifier recommendation.
func (m *Metrics) IncrementPrediction(label string) {
	if m != nil {
		m.Predictions.WithLabelValues(label).Inc()
	}
}

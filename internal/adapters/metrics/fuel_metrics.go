package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Fill outcomes used as label values
const (
	OutcomeSuccess  = "success"
	OutcomeFailure  = "failure"
	// OutcomeNotFound marks requests for a vehicle the registry does not hold
	OutcomeNotFound = "not_found"
)

// FuelMetricsCollector handles all tank fill metrics
type FuelMetricsCollector struct {
	fillsTotal  *prometheus.CounterVec
	litresAdded *prometheus.CounterVec
	fillLevel   prometheus.Histogram
}

// NewFuelMetricsCollector creates a new fuel metrics collector
func NewFuelMetricsCollector() *FuelMetricsCollector {
	return &FuelMetricsCollector{
		// Fill requests by mode and outcome
		fillsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "fills_total",
				Help:      "Total number of tank fill requests by mode and outcome",
			},
			[]string{"mode", "outcome"},
		),

		litresAdded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "added_litres_total",
				Help:      "Total litres of fuel added to tanks",
			},
			[]string{"mode"},
		),

		// Tank level after successful fills
		fillLevel: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "fill_level_percent",
				Help:      "Tank fill level distribution after successful fills",
				Buckets:   []float64{10, 25, 50, 75, 90, 100},
			},
		),
	}
}

// Register registers all fuel metrics with the Prometheus registry
func (c *FuelMetricsCollector) Register() error {
	if Registry == nil {
		return nil // Metrics not enabled
	}

	metrics := []prometheus.Collector{
		c.fillsTotal,
		c.litresAdded,
		c.fillLevel,
	}

	for _, metric := range metrics {
		if err := Registry.Register(metric); err != nil {
			return err
		}
	}

	return nil
}

// RecordFill records a fill request
func (c *FuelMetricsCollector) RecordFill(mode string, outcome string, litresAdded float64, percentFilled float64) {
	c.fillsTotal.WithLabelValues(mode, outcome).Inc()

	if outcome != OutcomeSuccess {
		return
	}
	c.litresAdded.WithLabelValues(mode).Add(litresAdded)
	c.fillLevel.Observe(percentFilled)
}

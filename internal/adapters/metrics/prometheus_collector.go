package metrics

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const (
	// Namespace for all metrics
	namespace = "carpool"
	// Subsystem for fuel tank metrics
	subsystem = "fuel"
)

var (
	// Registry is the global Prometheus registry for all metrics
	Registry *prometheus.Registry

	// globalFuelCollector is the singleton fuel metrics collector
	// Set by SetGlobalFuelCollector() when metrics are enabled
	globalFuelCollector FuelMetricsRecorder
)

// FuelMetricsRecorder defines the interface for recording tank fill events
type FuelMetricsRecorder interface {
	RecordFill(mode string, outcome string, litresAdded float64, percentFilled float64)
}

// InitRegistry initializes the Prometheus registry
// Should be called once at application startup if metrics are enabled
func InitRegistry() {
	Registry = prometheus.NewRegistry()
}

// IsEnabled returns true if metrics collection is enabled
func IsEnabled() bool {
	return Registry != nil
}

// Reset drops the registry and the global collector
func Reset() {
	Registry = nil
	globalFuelCollector = nil
}

// SetGlobalFuelCollector sets the global fuel metrics collector
func SetGlobalFuelCollector(collector FuelMetricsRecorder) {
	globalFuelCollector = collector
}

// RecordFill records a fill event globally. No-op when metrics are disabled.
func RecordFill(mode string, outcome string, litresAdded float64, percentFilled float64) {
	if globalFuelCollector != nil {
		globalFuelCollector.RecordFill(mode, outcome, litresAdded, percentFilled)
	}
}

// Enable initializes the registry and installs a registered fuel collector
func Enable() (*FuelMetricsCollector, error) {
	InitRegistry()
	collector := NewFuelMetricsCollector()
	if err := collector.Register(); err != nil {
		Reset()
		return nil, err
	}
	SetGlobalFuelCollector(collector)
	return collector, nil
}

// WriteText writes all gathered metrics in the Prometheus text format
func WriteText(w io.Writer) error {
	if Registry == nil {
		return nil
	}
	families, err := Registry.Gather()
	if err != nil {
		return err
	}
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(w, family); err != nil {
			return err
		}
	}
	return nil
}

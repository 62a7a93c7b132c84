package config

// MetricsConfig holds metrics collection configuration
type MetricsConfig struct {
	// Enabled controls whether fill metrics are collected
	Enabled bool `mapstructure:"enabled"`
}

package config

// MetricsConfig holds configuration for the prometheus metrics provider.
type MetricsConfig struct {
	Namespace string
	Subsystem string
	Enabled   bool
}

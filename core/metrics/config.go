package metrics

// Config holds configuration for the metrics endpoint.
type Config struct {
	// Enabled exposes GET /metrics.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// Namespace prefixes every metric name.
	Namespace string `mapstructure:"namespace" default:"stock_terminal"`
}

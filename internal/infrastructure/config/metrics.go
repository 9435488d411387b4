package config

import "fmt"

// MetricsConfig holds the Prometheus endpoint configuration
type MetricsConfig struct {
	// Enabled serves the mission metrics during simulate runs
	Enabled bool `mapstructure:"enabled"`

	Port int    `mapstructure:"port" validate:"omitempty,min=1024,max=65535"`
	Host string `mapstructure:"host"`

	// Path of the scrape endpoint (default: /metrics)
	Path string `mapstructure:"path" validate:"omitempty,startswith=/"`
}

// Address is the host:port the metrics server listens on
func (c MetricsConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

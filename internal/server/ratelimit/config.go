package ratelimit

import (
	"time"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        `mapstructure:"path"`   // Endpoint path pattern (supports prefix matching)
	Method string        `mapstructure:"method"` // HTTP method (GET, POST, etc.)
	Limit  int           `mapstructure:"limit"`  // Maximum requests per window
	Window time.Duration `mapstructure:"window"` // Time window
	Burst  int           `mapstructure:"burst"`  // Burst capacity (defaults to Limit if 0)
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled           bool             `mapstructure:"enabled"`
	RequestsPerMinute int              `mapstructure:"requests_per_minute"`
	Burst             int              `mapstructure:"burst"`
	CleanupInterval   time.Duration    `mapstructure:"cleanup_interval"`
	Whitelist         []string         `mapstructure:"whitelist"`
	Blacklist         []string         `mapstructure:"blacklist"`
	Endpoints         []EndpointConfig `mapstructure:"endpoints"`
}

// DefaultConfig returns the rate limits applied when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Enabled:           true,
		RequestsPerMinute: 120,
		Burst:             20,
		CleanupInterval:   5 * time.Minute,
		Whitelist:         []string{},
		Blacklist:         []string{},
		Endpoints:         DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the default endpoint-specific configurations.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Whole-resume operations run every recommender
		{Path: "/recommendations", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},
		{Path: "/feedback", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/resumes/validate", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},

		// Everything else uses the default limit; health and metrics are unlimited
	}
}

func toSet(list []string) map[string]bool {
	set := make(map[string]bool, len(list))
	for _, v := range list {
		if v != "" {
			set[v] = true
		}
	}
	return set
}

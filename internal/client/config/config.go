package config

import "time"

// Config holds runtime settings for the CertChain client.
//
// Fields:
//   - ServerBaseURL: base URL of the certificate REST backend.
//   - DatabaseDSN: path to the client-local SQLite database.
//   - HealthCheckInterval: how often the client probes server reachability.
type Config struct {
	ServerBaseURL       string
	DatabaseDSN         string
	HealthCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080"
	c.DatabaseDSN = "certificates.db"
	c.HealthCheckInterval = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

package config

import "time"

// Config holds runtime settings for the AR Shopsy CLI.
//
// Fields:
//   - ServerEndpointAddr: base URL of the storefront HTTP API.
//   - DatabaseDSN: path to the local sqlite database.
//   - QRServiceBaseURL: service that renders AR hand-off QR codes.
//   - RequestTimeout: per-request timeout for API calls.
type Config struct {
	ServerEndpointAddr string
	DatabaseDSN        string
	QRServiceBaseURL   string
	RequestTimeout     time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://127.0.0.1:8080"
	c.DatabaseDSN = "arshopsy.db"
	c.QRServiceBaseURL = "https://api.qrserver.com/v1/create-qr-code/"
	c.RequestTimeout = 10 * time.Second
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

package config

import "time"

// Config holds runtime settings for the Bookshelf client.
//
// Fields:
//   - APIBaseURL: base URL of the catalog backend, e.g. "http://127.0.0.1:8080".
//   - RequestTimeout: per-request timeout for backend calls.
//   - CognitoRegion, CognitoClientID, CognitoClientSecret: Cognito user pool
//     app client settings. The secret may be empty for public app clients.
//   - CognitoEndpoint: optional endpoint override (local emulators); empty
//     means the real AWS endpoint for the region.
//   - StorePath: path to the SQLite file holding the persisted session.
//   - LogLevel: minimum log level (debug, info, warn, error).
//
// Units: RequestTimeout is a time.Duration (e.g., 10*time.Second).
type Config struct {
	APIBaseURL          string
	RequestTimeout      time.Duration
	CognitoRegion       string
	CognitoClientID     string
	CognitoClientSecret string
	CognitoEndpoint     string
	StorePath           string
	LogLevel            string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 10 * time.Second
	c.CognitoRegion = "us-east-1"
	c.StorePath = "bookshelf.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (if present), JSON (if present) and command-line flags
// (if present). Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

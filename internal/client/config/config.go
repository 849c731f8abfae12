package config

import "time"

// Config holds runtime settings for the trading-professor CLI.
//
// Fields:
//   - APIBaseURL: absolute base URL of the backend REST API.
//   - AdminToken: opaque bearer token sent on admin requests, if set.
//   - RequestTimeout: per-request timeout; zero keeps the HTTP client default.
//   - NotificationTTL: how long a transient notification stays visible.
//   - DownloadDir: where downloaded documents are saved.
//   - LogFile, LogLevel, LogFormat: logging sink settings.
//   - MinAge, MaxAge: inclusive bounds for the date-of-birth check.
type Config struct {
	APIBaseURL      string
	AdminToken      string
	RequestTimeout  time.Duration
	NotificationTTL time.Duration
	DownloadDir     string
	LogFile         string
	LogLevel        string
	LogFormat       string
	MinAge          int
	MaxAge          int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://trading-professor-server.onrender.com"
	c.AdminToken = ""
	c.RequestTimeout = 0
	c.NotificationTTL = 3 * time.Second
	c.DownloadDir = "download"
	c.LogFile = "tpcli.log"
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.MinAge = 18
	c.MaxAge = 100
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/pflag"
)

// Config holds runtime settings for the spycats CLI.
type Config struct {
	// APIBaseURL is the backend root, e.g. http://localhost:8000.
	APIBaseURL string
	// RequestTimeout bounds every API request.
	RequestTimeout time.Duration
	// HistoryDSN is the SQLite file of the call journal; empty disables it.
	HistoryDSN string
	// HistoryLimit is the number of journal rows kept.
	HistoryLimit int
	// MonitorWindow is the sample count of the latency moving average.
	MonitorWindow int
	LogLevel      string
	LogFormat     string
}

var (
	ErrInvalidBaseURL = errors.New("api base url must be an absolute http(s) url")
	ErrInvalidTimeout = errors.New("request timeout must be positive")
	ErrInvalidLimit   = errors.New("history limit and monitor window must be positive")
)

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000"
	c.RequestTimeout = 10 * time.Second
	c.HistoryDSN = "history.db"
	c.HistoryLimit = 500
	c.MonitorWindow = 20
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidBaseURL, c.APIBaseURL)
	}
	if c.RequestTimeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.HistoryLimit <= 0 || c.MonitorWindow <= 0 {
		return ErrInvalidLimit
	}
	return nil
}

// LoadConfig constructs a Config from defaults, then overlays the JSON file
// named by the --config flag, the environment and explicitly set flags.
// fs may be nil, in which case only defaults and the environment apply.
func LoadConfig(fs *pflag.FlagSet) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if fs != nil {
		path, err := fs.GetString(FlagConfig)
		if err != nil {
			return nil, err
		}
		if err := parseJson(cfg, path); err != nil {
			return nil, err
		}
	}

	parseEnv(cfg)

	if fs != nil {
		if err := parseFlags(cfg, fs); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

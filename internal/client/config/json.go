package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/spycats/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Fields left
// out of the file keep their current values.
type JsonConfig struct {
	APIBaseURL     string         `json:"api_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	HistoryDSN     *string        `json:"history_db"`
	HistoryLimit   int            `json:"history_limit"`
	MonitorWindow  int            `json:"monitor_window"`
	LogLevel       string         `json:"log_level"`
	LogFormat      string         `json:"log_format"`
}

// parseJson overlays cfg with values read from the JSON file at path.
// An empty path is a no-op.
func parseJson(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.HistoryDSN != nil {
		cfg.HistoryDSN = *jc.HistoryDSN
	}
	if jc.HistoryLimit != 0 {
		cfg.HistoryLimit = jc.HistoryLimit
	}
	if jc.MonitorWindow != 0 {
		cfg.MonitorWindow = jc.MonitorWindow
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.LogFormat != "" {
		cfg.LogFormat = jc.LogFormat
	}
	return nil
}

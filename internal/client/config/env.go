package config

import "os"

const (
	EnvAPIURL    = "SPYCATS_API_URL"
	EnvHistoryDB = "SPYCATS_HISTORY_DB"
	EnvLogLevel  = "SPYCATS_LOG_LEVEL"
)

// parseEnv overlays cfg with environment variables that are set.
// SPYCATS_HISTORY_DB may be set to an empty string to disable the journal.
func parseEnv(cfg *Config) {
	if v, ok := os.LookupEnv(EnvAPIURL); ok && v != "" {
		cfg.APIBaseURL = v
	}
	if v, ok := os.LookupEnv(EnvHistoryDB); ok {
		cfg.HistoryDSN = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
}

package config

import (
	"github.com/spf13/pflag"
)

const (
	FlagConfig       = "config"
	FlagAPIURL       = "api-url"
	FlagTimeout      = "timeout"
	FlagHistoryDB    = "history-db"
	FlagHistoryLimit = "history-limit"
	FlagLogLevel     = "log-level"
	FlagLogFormat    = "log-format"
)

// RegisterFlags declares the CLI flags on fs. Defaults shown in help come
// from LoadDefaults; only flags the user actually sets override other sources.
func RegisterFlags(fs *pflag.FlagSet) {
	var d Config
	d.LoadDefaults()

	fs.StringP(FlagConfig, "c", "", "path to JSON config file")
	fs.StringP(FlagAPIURL, "a", d.APIBaseURL, "backend base url")
	fs.Duration(FlagTimeout, d.RequestTimeout, "per-request timeout")
	fs.String(FlagHistoryDB, d.HistoryDSN, "SQLite file for the call journal (empty disables it)")
	fs.Int(FlagHistoryLimit, d.HistoryLimit, "number of journal rows to keep")
	fs.String(FlagLogLevel, d.LogLevel, "log level: debug|info|warn|error")
	fs.String(FlagLogFormat, d.LogFormat, "log format: text|json")
}

// parseFlags copies explicitly set flags into cfg.
func parseFlags(cfg *Config, fs *pflag.FlagSet) error {
	var err error

	if fs.Changed(FlagAPIURL) {
		if cfg.APIBaseURL, err = fs.GetString(FlagAPIURL); err != nil {
			return err
		}
	}
	if fs.Changed(FlagTimeout) {
		if cfg.RequestTimeout, err = fs.GetDuration(FlagTimeout); err != nil {
			return err
		}
	}
	if fs.Changed(FlagHistoryDB) {
		if cfg.HistoryDSN, err = fs.GetString(FlagHistoryDB); err != nil {
			return err
		}
	}
	if fs.Changed(FlagHistoryLimit) {
		if cfg.HistoryLimit, err = fs.GetInt(FlagHistoryLimit); err != nil {
			return err
		}
	}
	if fs.Changed(FlagLogLevel) {
		if cfg.LogLevel, err = fs.GetString(FlagLogLevel); err != nil {
			return err
		}
	}
	if fs.Changed(FlagLogFormat) {
		if cfg.LogFormat, err = fs.GetString(FlagLogFormat); err != nil {
			return err
		}
	}
	return nil
}

// Package config loads runtime configuration for the spycats CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c / --config.
//  3. Environment variables (SPYCATS_API_URL, SPYCATS_HISTORY_DB, SPYCATS_LOG_LEVEL).
//  4. Command-line flags that were set explicitly.
//
// Later sources override earlier ones.
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "10s" or integer
// nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:8000",
//	  "request_timeout": "10s",
//	  "history_db": "history.db",
//	  "history_limit": 500,
//	  "monitor_window": 20,
//	  "log_level": "info",
//	  "log_format": "text"
//	}
//
// An empty history_db disables the local call journal.
package config

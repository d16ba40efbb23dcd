package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	dir := t.TempDir()

	t.Run("overlays present fields", func(t *testing.T) {
		path := writeTempJSON(t, dir, "full.json", map[string]any{
			"api_base_url":    "http://www.example:9000",
			"request_timeout": "15s",
			"history_db":      "",
			"history_limit":   10,
			"monitor_window":  5,
			"log_level":       "debug",
			"log_format":      "json",
		})

		cfg := &Config{}
		cfg.LoadDefaults()
		require.NoError(t, parseJson(cfg, path))

		assert.Equal(t, Config{
			APIBaseURL:     "http://www.example:9000",
			RequestTimeout: 15 * time.Second,
			HistoryDSN:     "",
			HistoryLimit:   10,
			MonitorWindow:  5,
			LogLevel:       "debug",
			LogFormat:      "json",
		}, *cfg)
	})

	t.Run("missing fields keep current values", func(t *testing.T) {
		path := writeTempJSON(t, dir, "partial.json", map[string]any{
			"request_timeout": 2000000000,
		})

		cfg := &Config{}
		cfg.LoadDefaults()
		require.NoError(t, parseJson(cfg, path))

		assert.Equal(t, "http://localhost:8000", cfg.APIBaseURL)
		assert.Equal(t, "history.db", cfg.HistoryDSN)
		assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	})

	t.Run("empty path is a no-op", func(t *testing.T) {
		cfg := &Config{APIBaseURL: "http://defaults:1234"}
		require.NoError(t, parseJson(cfg, ""))
		assert.Equal(t, "http://defaults:1234", cfg.APIBaseURL)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		cfg := &Config{}
		require.Error(t, parseJson(cfg, bad))
	})
}

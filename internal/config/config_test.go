package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultSourceURL, cfg.SourceURL)
	assert.Equal(t, DefaultSnapshotPath, cfg.SnapshotPath)
	assert.Equal(t, 5*time.Minute, cfg.Interval)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, DefaultUserAgent, cfg.UserAgent)
	assert.True(t, cfg.Color)
	assert.False(t, cfg.UseBrowser)
	assert.Empty(t, cfg.DatabaseURL)
}

func TestLoad_YAMLFile(t *testing.T) {
	content := `
source_url: https://example.com/compare
snapshot_path: /tmp/devices.txt
interval: 90s
use_browser: true
verbose: true
`
	path := filepath.Join(t.TempDir(), "device-watch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/compare", cfg.SourceURL)
	assert.Equal(t, "/tmp/devices.txt", cfg.SnapshotPath)
	assert.Equal(t, 90*time.Second, cfg.Interval)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.True(t, cfg.UseBrowser)
	assert.True(t, cfg.Verbose)
}

func TestLoad_JSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"timeout": "5s", "color": false}`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.False(t, cfg.Color)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("interval: 2m\n"), 0644))

	t.Setenv("DEVICE_WATCH_INTERVAL", "10m")
	t.Setenv("DEVICE_WATCH_DATABASE_URL", "postgres://watch@localhost/watch")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10*time.Minute, cfg.Interval)
	assert.Equal(t, "postgres://watch@localhost/watch", cfg.DatabaseURL)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("DEVICE_WATCH_SOURCE_URL", "not a url")

	cfg, err := Load("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "'source_url' failed 'url'")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "missing source url", mutate: func(c *Config) { c.SourceURL = "" }, wantErr: "'source_url' failed 'required'"},
		{name: "missing snapshot path", mutate: func(c *Config) { c.SnapshotPath = "" }, wantErr: "'snapshot_path' failed 'required'"},
		{name: "interval too short", mutate: func(c *Config) { c.Interval = 100 * time.Millisecond }, wantErr: "'interval' failed 'min'"},
		{name: "timeout zero", mutate: func(c *Config) { c.Timeout = 0 }, wantErr: "'timeout' failed 'min'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

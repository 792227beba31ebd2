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
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "ccasync", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "stdout", cfg.Log.Output)
	assert.False(t, cfg.Log.OTel)
	assert.Zero(t, cfg.Event.HandlerTimeout)
	assert.False(t, cfg.Event.FailFast)
	assert.True(t, cfg.Event.LogEvents)
}

func TestLoad_Environment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CCASYNC_APP_NAME", "ccasync-worker")
	t.Setenv("CCASYNC_LOG_LEVEL", "debug")
	t.Setenv("CCASYNC_LOG_FORMAT", "json")
	t.Setenv("CCASYNC_LOG_OTEL", "true")
	t.Setenv("CCASYNC_EVENT_HANDLER_TIMEOUT", "250ms")
	t.Setenv("CCASYNC_EVENT_FAIL_FAST", "true")
	t.Setenv("CCASYNC_EVENT_LOG_EVENTS", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "ccasync-worker", cfg.App.Name)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Log.OTel)
	assert.Equal(t, 250*time.Millisecond, cfg.Event.HandlerTimeout)
	assert.True(t, cfg.Event.FailFast)
	assert.False(t, cfg.Event.LogEvents)
}

func TestLoad_ConfigFileInSearchPath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "config"), 0o755))
	writeFile(t, filepath.Join(dir, "config", "config.toml"), `
[app]
env = "production"

[event]
handler_timeout = "2s"
`)
	t.Chdir(dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "json", cfg.Log.Format, "production defaults to json logs")
	assert.Equal(t, 2*time.Second, cfg.Event.HandlerTimeout)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ccasync.toml")
	writeFile(t, path, `
[log]
level = "warn"
output = "stderr"

[event]
fail_fast = true
`)
	t.Setenv("CCASYNC_LOG_LEVEL", "error")

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Log.Level, "environment overrides file")
	assert.Equal(t, "stderr", cfg.Log.Output)
	assert.True(t, cfg.Event.FailFast)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.applyDefaults()
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "unknown level", mutate: func(c *Config) { c.Log.Level = "trace" }, wantErr: "log.level"},
		{name: "unknown format", mutate: func(c *Config) { c.Log.Format = "logfmt" }, wantErr: "log.format"},
		{name: "negative timeout", mutate: func(c *Config) { c.Event.HandlerTimeout = -time.Second }, wantErr: "event.handler_timeout"},
		{
			name: "production console logs",
			mutate: func(c *Config) {
				c.App.Env = "production"
				c.Log.Format = "console"
			},
			wantErr: "production",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

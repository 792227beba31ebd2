package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App   AppConfig
	Log   LogConfig
	Event EventConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
	OTel   bool   // also bridge entries to the OpenTelemetry logger provider
}

// EventConfig holds domain event dispatch configuration
type EventConfig struct {
	HandlerTimeout time.Duration // per-handler bound, 0 = unbounded
	FailFast       bool          // a handler error rolls back the operation
	LogEvents      bool          // subscribe the logging handler
}

// IsProduction reports whether the application runs in production
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// Load loads configuration from an optional config.toml and environment variables.
// Priority (highest to lowest):
// 1. Environment variables with CCASYNC_ prefix (e.g., CCASYNC_LOG_LEVEL)
// 2. config.toml found in ., ./config or /etc/ccasync
// 3. Built-in defaults
func Load() (*Config, error) {
	v := newViper()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/ccasync")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return build(v)
}

// LoadFile loads configuration from the given file plus environment variables
func LoadFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return build(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("CCASYNC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func build(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
			OTel:   v.GetBool("log.otel"),
		},
		Event: EventConfig{
			HandlerTimeout: v.GetDuration("event.handler_timeout"),
			FailFast:       v.GetBool("event.fail_fast"),
			LogEvents:      true,
		},
	}
	if v.IsSet("event.log_events") {
		cfg.Event.LogEvents = v.GetBool("event.log_events")
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// applyDefaults sets default values for empty configuration fields
func (c *Config) applyDefaults() {
	if c.App.Name == "" {
		c.App.Name = "ccasync"
	}
	if c.App.Env == "" {
		c.App.Env = "development"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		if c.IsProduction() {
			c.Log.Format = "json"
		} else {
			c.Log.Format = "console"
		}
	}
	if c.Log.Output == "" {
		c.Log.Output = "stdout"
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got %q", c.Log.Level)
	}
	if c.Log.Format != "json" && c.Log.Format != "console" {
		return fmt.Errorf("log.format must be json or console, got %q", c.Log.Format)
	}
	if c.Event.HandlerTimeout < 0 {
		return fmt.Errorf("event.handler_timeout cannot be negative")
	}

	if c.IsProduction() && c.Log.Format != "json" {
		return fmt.Errorf("log.format must be json in production")
	}
	return nil
}

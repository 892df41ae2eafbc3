// Package config provides configuration loading and validation for the CLI.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable the CLI reads.
const EnvPrefix = "DEVICE_WATCH"

// Defaults for the watch loop.
const (
	DefaultSourceURL    = "https://www.microsoft.com/en-us/surface/devices/compare-devices"
	DefaultSnapshotPath = "past_results.txt"
	DefaultInterval     = 5 * time.Minute
	DefaultTimeout      = 30 * time.Second
	DefaultUserAgent    = "Mozilla/5.0 (compatible; DeviceWatch/1.0)"
)

// Config represents the CLI configuration. Values come from defaults, an
// optional config file, DEVICE_WATCH_* environment variables and finally
// command line flags, in increasing order of precedence.
type Config struct {
	SourceURL    string        `mapstructure:"source_url" validate:"required,url"`
	SnapshotPath string        `mapstructure:"snapshot_path" validate:"required"`
	Interval     time.Duration `mapstructure:"interval" validate:"min=1s"`
	Timeout      time.Duration `mapstructure:"timeout" validate:"min=1s"`
	UserAgent    string        `mapstructure:"user_agent"`
	// UseBrowser re-renders the page in headless Chrome when the payload is missing.
	UseBrowser bool `mapstructure:"use_browser"`
	// DatabaseURL enables the PostgreSQL snapshot history.
	DatabaseURL string `mapstructure:"database_url"`

	Verbose bool `mapstructure:"verbose"`
	Color   bool `mapstructure:"color"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		SourceURL:    DefaultSourceURL,
		SnapshotPath: DefaultSnapshotPath,
		Interval:     DefaultInterval,
		Timeout:      DefaultTimeout,
		UserAgent:    DefaultUserAgent,
		Color:        true,
	}
}

// Load reads configuration from path (optional; empty means none), the
// environment and defaults. The result is validated.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults registers every key so that AutomaticEnv can find it on Unmarshal.
func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("source_url", d.SourceURL)
	v.SetDefault("snapshot_path", d.SnapshotPath)
	v.SetDefault("interval", d.Interval)
	v.SetDefault("timeout", d.Timeout)
	v.SetDefault("user_agent", d.UserAgent)
	v.SetDefault("use_browser", d.UseBrowser)
	v.SetDefault("database_url", d.DatabaseURL)
	v.SetDefault("verbose", d.Verbose)
	v.SetDefault("color", d.Color)
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("config error: %w", err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("'%s' failed '%s'", fieldKey(fe.Field()), fe.Tag()))
	}
	return fmt.Errorf("config error: %s", strings.Join(msgs, ", "))
}

func fieldKey(field string) string {
	switch field {
	case "SourceURL":
		return "source_url"
	case "SnapshotPath":
		return "snapshot_path"
	case "Interval":
		return "interval"
	case "Timeout":
		return "timeout"
	default:
		return strings.ToLower(field)
	}
}

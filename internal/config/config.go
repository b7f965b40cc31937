// Package config loads todolist settings with Viper.
//
// Precedence, lowest first: defaults, config file, TODOLIST_* environment,
// command-line flags bound by the caller.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "TODOLIST"

// Config keys.
const (
	KeyTheme    = "theme"
	KeyColor    = "color"
	KeyLogLevel = "log_level"
	KeyTitle    = "title"
	KeyGroup    = "group"
)

// Config holds resolved settings.
type Config struct {
	Theme    string `mapstructure:"theme"`
	Color    string `mapstructure:"color"`
	LogLevel string `mapstructure:"log_level"`
	Title    string `mapstructure:"title"`
	Group    bool   `mapstructure:"group"`
}

// New returns a Viper instance with defaults and environment binding applied.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyTheme, "classic")
	v.SetDefault(KeyColor, "auto")
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyTitle, "Todos")
	v.SetDefault(KeyGroup, false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads path into v when path is set, then decodes the result.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	var errs []error
	switch c.Color {
	case "auto", "always", "never":
	default:
		errs = append(errs, fmt.Errorf("%s: unknown value %q", KeyColor, c.Color))
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("%s: unknown value %q", KeyLogLevel, c.LogLevel))
	}
	if strings.TrimSpace(c.Title) == "" {
		errs = append(errs, fmt.Errorf("%s: must not be empty", KeyTitle))
	}
	return errors.Join(errs...)
}

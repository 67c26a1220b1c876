// SPDX-License-Identifier: MIT

// Package config loads the roadnet YAML configuration.
//
// Config file location (priority order):
//  1. the --config flag
//  2. $ROADNET_CONFIG
//
// With neither set the defaults are used: built-in Casanare sample, info-level
// text logs, server on :8080 and the standard condition multipliers.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/roadnet/core"
)

// EnvConfigPath names the config file when no explicit path is given.
const EnvConfigPath = "ROADNET_CONFIG"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validate = validator.New()

// Config is the top-level configuration document.
type Config struct {
	// Dataset is a YAML network file; empty selects the built-in sample.
	Dataset string `yaml:"dataset"`

	Log    LogConfig    `yaml:"log"`
	Server ServerConfig `yaml:"server"`

	// Penalties overrides the condition multipliers, keyed by tag.
	Penalties map[string]float64 `yaml:"penalties" validate:"dive,keys,oneof=Good Fair Poor,endkeys,gte=1"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`                             // debug, info, warn, error
	Format string `yaml:"format" validate:"oneof=text json"` // text or json
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `yaml:"addr" validate:"required"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()

	return cfg
}

// Load reads path, or $ROADNET_CONFIG when path is empty.
// With neither set it returns DefaultConfig and an empty source path.
func Load(path string) (*Config, string, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads and validates config from a specific path.
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, path, err
	}

	return &cfg, path, nil
}

// applyDefaults fills in missing values with defaults
func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if len(c.Penalties) == 0 {
		c.Penalties = make(map[string]float64, 3)
		for cond, m := range core.DefaultPenalties() {
			c.Penalties[string(cond)] = m
		}
	}
}

// Validate checks the struct tags, the log level and the penalty table,
// reporting every problem at once.
func (c *Config) Validate() error {
	var errs []error
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		for _, fe := range fieldErrs {
			errs = append(errs, fmt.Errorf("%s: %v fails %q", fe.Namespace(), fe.Value(), fe.ActualTag()))
		}
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.PenaltyTable(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// PenaltyTable converts the penalties section into a core.Penalties.
// Keys must be known condition tags and multipliers must be at least 1,
// since a penalty never makes a road cheaper than its length.
func (c *Config) PenaltyTable() (core.Penalties, error) {
	out := make(core.Penalties, len(c.Penalties))
	for tag, m := range c.Penalties {
		cond, err := core.ParseCondition(tag)
		if err != nil {
			return nil, fmt.Errorf("penalties: %w", err)
		}
		if m < 1 {
			return nil, fmt.Errorf("penalties: %s multiplier %g is below 1", tag, m)
		}
		out[cond] = m
	}

	return out, nil
}

// ParseLevel maps a level name to its slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return slog.LevelInfo, fmt.Errorf("log.level %q: unknown level", s)
}

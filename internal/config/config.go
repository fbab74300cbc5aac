// Package config loads strokeviz settings from YAML with environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/katalvlaran/strokeviz/stroke"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file values.
const (
	EnvTrigger    = "STROKEVIZ_TRIGGER"
	EnvAlwaysFull = "STROKEVIZ_ALWAYS_FULL"
	EnvLogLevel   = "STROKEVIZ_LOG_LEVEL"
)

// ErrInvalid marks a configuration that cannot be used.
var ErrInvalid = errors.New("config: invalid")

// Config holds the CLI settings.
type Config struct {
	// Trigger is the leading stroke of a visual-stroke key.
	Trigger string `yaml:"trigger"`
	// AlwaysFullForm draws every stroke with the three-row diagram.
	AlwaysFullForm bool `yaml:"always_full_form"`
	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Trigger:  stroke.DefaultTrigger,
		LogLevel: "info",
	}
}

// Load reads the YAML file at path over the defaults. A missing file is not
// an error. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvTrigger); v != "" {
		c.Trigger = v
	}
	if v := os.Getenv(EnvAlwaysFull); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvAlwaysFull, v, err)
		}
		c.AlwaysFullForm = on
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}

	return nil
}

// Validate checks that every field is usable.
func (c *Config) Validate() error {
	if c.Trigger == "" {
		return fmt.Errorf("%w: trigger must not be empty", ErrInvalid)
	}
	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Level parses LogLevel. An empty value means info.
func (c *Config) Level() (zapcore.Level, error) {
	if c.LogLevel == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return lvl, fmt.Errorf("%w: log_level: %v", ErrInvalid, err)
	}

	return lvl, nil
}

// Options converts the settings into translator options.
func (c *Config) Options() []stroke.Option {
	return []stroke.Option{
		stroke.WithTrigger(c.Trigger),
		stroke.WithAlwaysFullForm(c.AlwaysFullForm),
	}
}

// Save writes c as YAML to path, creating parent directories.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

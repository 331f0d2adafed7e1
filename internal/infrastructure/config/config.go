// Package config loads ambient settings from environment variables.
//
// Only ambient concerns are configured here: logging, the optional
// metrics footer, and the worker-pool size. The demos' core inputs
// (items, width, verbosity) are positional command-line arguments and
// never come from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all ambient configuration.
type Config struct {
	Logging LogConfig
	Metrics MetricsConfig
	Pool    PoolConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"PIPETRACE_LOG_LEVEL" default:"warn"`
	Development bool   `envconfig:"PIPETRACE_LOG_DEV" default:"false"`
}

// MetricsConfig controls the end-of-run metrics footer.
type MetricsConfig struct {
	Enabled bool `envconfig:"PIPETRACE_METRICS" default:"false"`
}

// PoolConfig holds worker-pool configuration. Workers == 0 means use the
// runtime's available parallelism.
type PoolConfig struct {
	Workers int `envconfig:"PIPETRACE_WORKERS" default:"0"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns defaults.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Logging: LogConfig{Level: "warn", Development: false},
		Metrics: MetricsConfig{Enabled: false},
		Pool:    PoolConfig{Workers: 0},
	}
}

package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all CLI configuration.
type Config struct {
	Logging LogConfig
	Engine  EngineConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	// Level overrides the mode's default level (info, or debug when
	// Development is set).
	Level       string `envconfig:"DMATH_LOG_LEVEL"`
	Development bool   `envconfig:"DMATH_LOG_DEV" default:"false"`
	File        string `envconfig:"DMATH_LOG_FILE"`
	MaxSizeMB   int    `envconfig:"DMATH_LOG_MAX_SIZE_MB" default:"100"`
	MaxAgeDays  int    `envconfig:"DMATH_LOG_MAX_AGE_DAYS" default:"28"`
}

// EngineConfig holds shortest-path settings.
type EngineConfig struct {
	// Workers bounds SolveAll concurrency; 0 means one goroutine per source.
	Workers int `envconfig:"DMATH_WORKERS" default:"0"`
}

// Load starts from Default and overrides it with environment variables.
func Load() (*Config, error) {
	cfg := Default()
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Engine.Workers < 0 {
		return nil, fmt.Errorf("failed to load config: DMATH_WORKERS must be ≥ 0, got %d", cfg.Engine.Workers)
	}
	return cfg, nil
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Logging: LogConfig{
			Development: false,
			MaxSizeMB:   100,
			MaxAgeDays:  28,
		},
		Engine: EngineConfig{
			Workers: 0,
		},
	}
}

// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/abhisek/newton/internal/session"
)

// Config is the process configuration. Command-line flags, where present,
// take precedence over these values.
type Config struct {
	DBPath        string        `env:"NEWTON_DB"`
	Locale        string        `env:"NEWTON_LOCALE"         envDefault:"en"`
	LevelsFile    string        `env:"NEWTON_LEVELS_FILE"`
	LogFile       string        `env:"NEWTON_LOG_FILE"`
	LogLevel      string        `env:"NEWTON_LOG_LEVEL"      envDefault:"info"`
	AdvanceDelay  time.Duration `env:"NEWTON_ADVANCE_DELAY"  envDefault:"1500ms"`
	RetryDelay    time.Duration `env:"NEWTON_RETRY_DELAY"    envDefault:"1500ms"`
	CompleteDelay time.Duration `env:"NEWTON_COMPLETE_DELAY" envDefault:"2000ms"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	var errs []error
	if c.AdvanceDelay <= 0 {
		errs = append(errs, fmt.Errorf("NEWTON_ADVANCE_DELAY must be positive, got %s", c.AdvanceDelay))
	}
	if c.RetryDelay <= 0 {
		errs = append(errs, fmt.Errorf("NEWTON_RETRY_DELAY must be positive, got %s", c.RetryDelay))
	}
	if c.CompleteDelay <= 0 {
		errs = append(errs, fmt.Errorf("NEWTON_COMPLETE_DELAY must be positive, got %s", c.CompleteDelay))
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Delays returns the feedback durations for a level session.
func (c Config) Delays() session.Delays {
	return session.Delays{
		Advance:  c.AdvanceDelay,
		Retry:    c.RetryDelay,
		Complete: c.CompleteDelay,
	}
}

// SlogLevel returns the configured log level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	lvl, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func parseLevel(s string) (slog.Level, error) {
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("NEWTON_LOG_LEVEL: %w", err)
	}
	return lvl, nil
}

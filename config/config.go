// Package config loads process settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultRulesPath is where the rule source is looked up when none is set.
const DefaultRulesPath = "rules/victories.lua"

// Config holds settings read from RPSLS_* environment variables. Command-line
// flags override these in cmd/rpsls.
type Config struct {
	RulesPath string `env:"RPSLS_RULES" envDefault:"rules/victories.lua"`
	Seed      int64  `env:"RPSLS_SEED"`
	Window    int    `env:"RPSLS_WINDOW" envDefault:"5"`
	Strategy  string `env:"RPSLS_STRATEGY" envDefault:"frequency"`
	LogLevel  string `env:"RPSLS_LOG_LEVEL" envDefault:"warn"`
	LogFile   string `env:"RPSLS_LOG_FILE"`
	Plain     bool   `env:"RPSLS_PLAIN"`

	// RulesExplicit is true when the rules path came from the environment
	// or a flag rather than the default.
	RulesExplicit bool
}

// Load reads an optional .env file from dotenvPath (ignored when absent)
// and then parses the environment.
func Load(dotenvPath string) (*Config, error) {
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", dotenvPath, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.RulesExplicit = cfg.RulesPath != DefaultRulesPath

	if cfg.Window < 1 {
		return nil, fmt.Errorf("RPSLS_WINDOW must be at least 1, got %d", cfg.Window)
	}
	return cfg, nil
}

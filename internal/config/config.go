// Package config loads monitor settings from the environment and the
// optional override-table file.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// #region config

// Config holds all runtime settings for the monitor binaries.
type Config struct {
	// DBPath is the SQLite episode database.
	DBPath string `env:"SHIELD_DB_PATH" envDefault:"shield.db"`
	// SimAddr is the gRPC address of the Python simulator service.
	SimAddr string `env:"SHIELD_SIM_ADDR" envDefault:"localhost:50051"`
	// MaxEpisodeSteps truncates episodes that never terminate.
	MaxEpisodeSteps int `env:"SHIELD_MAX_EPISODE_STEPS" envDefault:"1600"`
	// Episodes is the number of seeded rollouts a monitor run performs.
	Episodes int `env:"SHIELD_EPISODES" envDefault:"10"`
	// BaseSeed seeds episode i with BaseSeed + i.
	BaseSeed int64 `env:"SHIELD_BASE_SEED" envDefault:"0"`
	// ReducedDim enables the learned encoder when positive.
	ReducedDim int `env:"SHIELD_REDUCED_DIM" envDefault:"0"`
	// OverridesPath points at a YAML override table; empty picks the
	// built-in walker table.
	OverridesPath string `env:"SHIELD_OVERRIDES_PATH"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Episodes <= 0 {
		return Config{}, fmt.Errorf("episodes must be positive, got %d", cfg.Episodes)
	}
	if cfg.MaxEpisodeSteps <= 0 {
		return Config{}, fmt.Errorf("max episode steps must be positive, got %d", cfg.MaxEpisodeSteps)
	}
	return cfg, nil
}

// #endregion config

package config

import (
	"errors"
	"fmt"

	"github.com/joeshaw/envdecode"
)

// Config is read from the environment
type Config struct {
	Addr           string   `env:"SWEEP_ADDR,default=:8000"`
	LogLevel       string   `env:"SWEEP_LOG_LEVEL,default=info"`
	Preset         string   `env:"SWEEP_PRESET,default=medium"`
	PresetsFile    string   `env:"SWEEP_PRESETS_FILE"`
	AllowedOrigins []string `env:"SWEEP_ALLOWED_ORIGINS,default=*"` // separated by ;
	MaxCells       int      `env:"SWEEP_MAX_CELLS,default=250000"`
}

// Load decodes the environment into a Config, applying defaults
func Load() (*Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

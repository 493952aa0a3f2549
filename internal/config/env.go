package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds settings read from the environment.
type Env struct {
	DBPath   string `env:"FM_DB_PATH"`
	LogLevel string `env:"FM_LOG_LEVEL"`
	NoColor  string `env:"NO_COLOR"`
}

// LoadEnv parses FM_DB_PATH, FM_LOG_LEVEL, and NO_COLOR.
func LoadEnv() (*Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if e.DBPath != "" {
		e.DBPath = ExpandPath(e.DBPath)
	}
	return &e, nil
}

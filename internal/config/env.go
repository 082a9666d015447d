package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds settings read from the environment (and a .env file, when the
// caller loads one first). An unset DictFile falls back to DefaultDictionary
// during Resolve.
type Env struct {
	DictFile  string `env:"WORDLADDER_DICTFILE"`
	Seed      int64  `env:"WORDLADDER_SEED"`
	LogLevel  string `env:"WORDLADDER_LOG_LEVEL" envDefault:"disabled"`
	Telemetry bool   `env:"WORDLADDER_TELEMETRY"`
}

// ParseEnv loads Env from environment variables.
func ParseEnv() (Env, error) {
	var cfg Env
	if err := env.Parse(&cfg); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

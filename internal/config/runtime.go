package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Runtime holds process settings read from the environment.
// They provide defaults for CLI flags; explicit flags take precedence.
type Runtime struct {
	FPS        int    `env:"FLAPPY_FPS"        envDefault:"60"`
	Seed       int64  `env:"FLAPPY_SEED"       envDefault:"0"`
	DBPath     string `env:"FLAPPY_DB"         envDefault:"~/.flappy/scores.db"`
	ConfigPath string `env:"FLAPPY_CONFIG"`
	LogLevel   string `env:"FLAPPY_LOG_LEVEL"  envDefault:"info"`
	LogFile    string `env:"FLAPPY_LOG_FILE"   envDefault:"~/.flappy/flappy.log"`
}

// LoadRuntime parses runtime settings from the environment.
func LoadRuntime() (Runtime, error) {
	var rt Runtime
	if err := env.Parse(&rt); err != nil {
		return Runtime{}, fmt.Errorf("config: parse env: %w", err)
	}
	return rt, nil
}

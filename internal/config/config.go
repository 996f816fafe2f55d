package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"

	"github.com/playperu/scoreboard/internal/scoring"
)

const (
	PrefsSQLite = "sqlite"
	PrefsRedis  = "redis"
	PrefsFile   = "file"
)

type Config struct {
	HTTPAddr string     `env:"HTTP_ADDR" envDefault:":8080"`
	DBPath   string     `env:"DB_PATH" envDefault:"data/scoreboard.db"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	SPADir   string     `env:"SPA_DIR" envDefault:"../web/dist"`

	DefaultFinishScore int    `env:"DEFAULT_FINISH_SCORE" envDefault:"15"`
	PrefsBackend       string `env:"PREFS_BACKEND" envDefault:"sqlite"`
	PrefsAppName       string `env:"PREFS_APP_NAME" envDefault:"scoreboard"`
	RedisURL           string `env:"REDIS_URL"`
	RedisKeyPrefix     string `env:"REDIS_KEY_PREFIX" envDefault:"scoreboard:"`

	// BoardPINHash is a bcrypt hash. When set, score changes need the PIN.
	BoardPINHash string `env:"BOARD_PIN_HASH"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) validate() error {
	switch c.PrefsBackend {
	case PrefsSQLite, PrefsFile:
	case PrefsRedis:
		if c.RedisURL == "" {
			return errors.New("REDIS_URL is required for the redis preferences backend")
		}
	default:
		return fmt.Errorf("unknown PREFS_BACKEND %q", c.PrefsBackend)
	}
	if c.DefaultFinishScore < scoring.MinFinishScore {
		return fmt.Errorf("DEFAULT_FINISH_SCORE must be at least %d, got %d", scoring.MinFinishScore, c.DefaultFinishScore)
	}
	return nil
}

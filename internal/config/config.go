package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"

	"github.com/iamasit07/4-in-a-row/engine/internal/domain"
)

type Config struct {
	Width  int `env:"CONNECT4_WIDTH" envDefault:"7"`
	Height int `env:"CONNECT4_HEIGHT" envDefault:"6"`

	// Mode starts a game right away instead of showing the menu. Empty means menu.
	Mode string `env:"CONNECT4_MODE"`

	LogLevel  string `env:"CONNECT4_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"CONNECT4_LOG_FORMAT" envDefault:"production"`
	// LogFile receives the log output. The terminal belongs to the UI, so an
	// empty value discards logs.
	LogFile string `env:"CONNECT4_LOG_FILE"`
}

// LoadConfig reads the given .env files (or ./.env when none are named) into
// the environment and parses Config from it. A missing ./.env is fine; a
// missing file that was asked for by name is not.
func LoadConfig(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		if len(envFiles) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file: %w", err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := c.Dimensions().Validate(); err != nil {
		return fmt.Errorf("board %dx%d: %w", c.Width, c.Height, err)
	}
	if c.Mode != "" {
		if _, err := domain.ParseGameMode(c.Mode); err != nil {
			return fmt.Errorf("mode %q: %w", c.Mode, err)
		}
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	switch c.LogFormat {
	case "production", "development":
	default:
		return fmt.Errorf("log format %q: want production or development", c.LogFormat)
	}
	return nil
}

func (c *Config) Dimensions() domain.Dimensions {
	return domain.Dimensions{Width: c.Width, Height: c.Height}
}

// StartMode reports the mode to start with, if any.
func (c *Config) StartMode() (domain.GameMode, bool) {
	if c.Mode == "" {
		return 0, false
	}
	mode, err := domain.ParseGameMode(c.Mode)
	if err != nil {
		return 0, false
	}
	return mode, true
}

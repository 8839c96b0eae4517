// Package config loads server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/benbeisheim/dragchess-backend/internal/model"
)

type Config struct {
	Addr           string        `env:"ADDR" envDefault:":3000"`
	AllowedOrigins []string      `env:"ALLOWED_ORIGINS" envDefault:"http://localhost:5173" envSeparator:","`
	TickInterval   time.Duration `env:"TICK_INTERVAL" envDefault:"16ms"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat      string        `env:"LOG_FORMAT" envDefault:"text"`
	EnvFile        string        `env:"ENV_FILE" envDefault:".env"`
	BoardOriginX   float32       `env:"BOARD_ORIGIN_X" envDefault:"-350"`
	BoardOriginY   float32       `env:"BOARD_ORIGIN_Y" envDefault:"-350"`
}

const envPrefix = "DRAGCHESS_"

// Load reads an optional .env file and then parses DRAGCHESS_* variables.
// Variables already set in the process environment win over the file.
func Load() (Config, error) {
	envFile := os.Getenv(envPrefix + "ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.TickInterval <= 0 {
		return Config{}, fmt.Errorf("tick interval must be positive, got %s", cfg.TickInterval)
	}
	return cfg, nil
}

func (c Config) Layout() model.Layout {
	return model.Layout{Origin: model.Vec2{X: c.BoardOriginX, Y: c.BoardOriginY}}
}

func (c Config) CORSOrigins() string {
	return strings.Join(c.AllowedOrigins, ", ")
}

func (c Config) level() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// Logger builds the process logger described by the config.
func (c Config) Logger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.level()}
	var h slog.Handler
	if strings.EqualFold(c.LogFormat, "json") {
		h = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		h = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(h)
}

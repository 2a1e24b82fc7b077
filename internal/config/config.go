// Package config loads service settings from the environment, with an
// optional .env file for local development.
package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

type Config struct {
	Addr     string
	DBPath   string
	LogLevel string
}

// Load reads the environment, preferring a .env file when one exists.
func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		Addr:     getEnv("ARENA_ADDR", ":8080"),
		DBPath:   getEnv("ARENA_DB_PATH", "pump-arena.db"),
		LogLevel: getEnv("ARENA_LOG_LEVEL", "info"),
	}

	logger.Info().
		Str("addr", cfg.Addr).
		Str("db_path", cfg.DBPath).
		Str("log_level", cfg.LogLevel).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

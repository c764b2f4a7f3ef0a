package helper

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// Config holds process configuration for the canvas-facing server.
type Config struct {
	// Addr is the listen address, FLOWBOARD_ADDR (default ":3000").
	Addr string
	// LogLevel is the slog level, FLOWBOARD_LOG (default info).
	LogLevel slog.Level
}

// NewConfig loads configuration from the environment, reading a local .env
// file first when one exists.
func NewConfig() (*Config, error) {
	// Missing .env is fine; the environment wins anyway.
	_ = godotenv.Load()

	config := &Config{
		Addr:     ":3000",
		LogLevel: slog.LevelInfo,
	}
	if v := os.Getenv("FLOWBOARD_ADDR"); v != "" {
		config.Addr = v
	}
	if v := os.Getenv("FLOWBOARD_LOG"); v != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(v)); err != nil {
			return nil, NewError("parse log level", err)
		}
		config.LogLevel = level
	}
	return config, nil
}

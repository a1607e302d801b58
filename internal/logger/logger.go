// Package logger builds the zerolog logger used across the service.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"storefront/internal/config"
)

// New returns a logger writing to stderr in the configured format.
func New(cfg config.LogConfig) zerolog.Logger {
	return NewWithWriter(cfg, os.Stderr)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(cfg config.LogConfig, w io.Writer) zerolog.Logger {
	if cfg.Format != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	l := zerolog.New(w).With().Timestamp().Logger()
	if err != nil || level == zerolog.NoLevel {
		l.Warn().Str("loglevel", cfg.Level).Msg("unknown log level, defaulting to info")
		level = zerolog.InfoLevel
	}

	return l.Level(level)
}

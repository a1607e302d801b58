package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"storefront/internal/config"
	"storefront/internal/errs"
	"storefront/internal/logger"
	"storefront/internal/server"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		l := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		l.Fatal().Err(err).Msg("failed to load configuration")
	}
	log := logger.New(cfg.Log)

	// --- Graceful shutdown on SIGINT / SIGTERM ---
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Store, routes, listener ---
	if err := server.Run(ctx, cfg, log); err != nil {
		msg := "server failed"
		var ce *errs.ConnectionError
		if errors.As(err, &ce) {
			msg = "store connection error"
		}
		stop()
		log.Fatal().Err(err).Msg(msg)
	}
}

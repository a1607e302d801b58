package server

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/services"
	"storefront/pkg/rabbitmq"
)

const (
	connectTimeout  = 30 * time.Second
	shutdownTimeout = 10 * time.Second
)

// Run connects the store, serves until ctx is cancelled and then shuts the
// server down. The port is only bound once the store is reachable; a store
// connection failure is returned as is.
func Run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	store, err := database.Connect(connectCtx, cfg.Store, log)
	cancel()
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			log.Warn().Err(err).Msg("failed to close store")
		}
	}()

	var publisher services.EventPublisher
	if cfg.RabbitMQ.URL != "" {
		mq, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQ.URL, Queue: cfg.RabbitMQ.Queue}, log)
		if err != nil {
			log.Warn().Err(err).Msg("enquiry events disabled")
		} else {
			defer mq.Close()
			publisher = mq
		}
	}

	app := New(Deps{Config: cfg, Store: store, Publisher: publisher, Log: log})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("server is running")
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info().Msg("shutting down server...")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			return err
		}
		log.Info().Msg("server gracefully stopped")
		return nil
	}
}

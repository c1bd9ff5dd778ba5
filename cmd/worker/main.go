package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"tripbook/config"
	"tripbook/di"
	"tripbook/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.Configure(cfg.Server.Env, "worker", os.Stdout)
	logger.SetLogLevel(cfg.Server.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer := di.InitializeWorker()

	if err := consumer.Run(ctx); err != nil {
		log.Error().Err(err).Msg("Booking event consumer stopped")
	}

	if err := consumer.Kafka.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close Kafka client")
	}

	if err := consumer.Otel.Shutdown(context.Background()); err != nil {
		log.Error().Err(err).Msg("Failed to flush traces")
	}

	log.Info().Msg("Worker shut down.")
}

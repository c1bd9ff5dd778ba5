package main

import (
	"os"

	"tripbook/config"
	"tripbook/di"
	"tripbook/helper"
	"tripbook/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Tripbook API
// @version 1.0
// @description Flight and hotel search, filtering and checkout.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.Configure(cfg.Server.Env, "app", os.Stdout)
	logger.SetLogLevel(cfg.Server.LogLevel)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}

	http := di.InitializeService()
	http.Serve()
}

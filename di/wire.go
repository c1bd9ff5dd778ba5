//go:build wireinject
// +build wireinject

package di

import (
	"tripbook/config"
	"tripbook/infras/jwt"
	"tripbook/infras/kafka"
	"tripbook/infras/metrics"
	"tripbook/infras/otel"
	"tripbook/infras/postgres"
	"tripbook/infras/redis"
	"tripbook/infras/s3"
	"tripbook/shared/cache"
	"tripbook/transport/event"
	"tripbook/transport/http"
	"tripbook/transport/http/middleware"
	"tripbook/transport/http/router"

	bookingRepository "tripbook/internal/domains/booking/repository"
	bookingService "tripbook/internal/domains/booking/service"
	"tripbook/internal/domains/booking/submission"
	catalogRepository "tripbook/internal/domains/catalog/repository"
	catalogService "tripbook/internal/domains/catalog/service"
	searchService "tripbook/internal/domains/search/service"
	sessionService "tripbook/internal/domains/session/service"

	bookingHandler "tripbook/internal/handlers/booking"
	catalogHandler "tripbook/internal/handlers/catalog"
	occupancyHandler "tripbook/internal/handlers/occupancy"
	sessionHandler "tripbook/internal/handlers/session"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
	metrics.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewSessionMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var catalogDomain = wire.NewSet(
	catalogRepository.NewFlight,
	catalogRepository.NewHotel,
	catalogService.New,
)

var searchDomain = wire.NewSet(
	searchService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingRepository.NewDraft,
	submission.New,
	bookingService.New,
)

var sessionDomain = wire.NewSet(
	sessionService.New,
)

var domains = wire.NewSet(
	catalogDomain,
	searchDomain,
	bookingDomain,
	sessionDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	catalogHandler.New,
	occupancyHandler.New,
	bookingHandler.New,
	sessionHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeWorker() *event.Consumer {
	wire.Build(
		configurations,
		infrastructures,
		sharedHelpers,
		catalogDomain,
		bookingDomain,
		event.New,
	)

	return &event.Consumer{}
}

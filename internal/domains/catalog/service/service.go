package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"tripbook/config"
	"tripbook/infras/otel"
	"tripbook/internal/domains/catalog/model"
	"tripbook/internal/domains/catalog/repository"
	"tripbook/shared"
	"tripbook/shared/cache"
	"tripbook/shared/constant"
	gDto "tripbook/shared/dto"
	"tripbook/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetFlight  = "catalog:flight"
	cacheGetFlights = "catalog:flights"
	cacheGetHotel   = "catalog:hotel"
	cacheGetHotels  = "catalog:hotels"

	anyCode = "any"
)

var (
	ErrFlightNotFound = failure.NotFound("flight not found")
	ErrHotelNotFound  = failure.NotFound("hotel not found")
)

// Catalog is the read-only inventory. Listings contain only available items in catalog order.
type Catalog interface {
	Flights(ctx context.Context, originCode, destinationCode string) ([]model.Flight, error)
	Flight(ctx context.Context, id string) (model.Flight, error)
	Hotels(ctx context.Context, locationCode string) ([]model.Hotel, error)
	Hotel(ctx context.Context, id string) (model.Hotel, error)
}

type serviceImpl struct {
	flights repository.Flight
	hotels  repository.Hotel
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
}

func New(flights repository.Flight, hotels repository.Hotel, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Catalog {
	return &serviceImpl{
		flights: flights,
		hotels:  hotels,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
	}
}

func catalogOrder(table string) gDto.QueryParams {
	return gDto.QueryParams{SortBy: table + "." + model.FieldID, SortDir: gDto.SortDirAsc}
}

func availableFilter(table string, codes map[string]string) gDto.FilterGroup {
	filter := gDto.And(gDto.Eq(table, model.FieldAvailable, true))

	for _, field := range slices.Sorted(maps.Keys(codes)) {
		if codes[field] == constant.Empty {
			continue
		}

		filter = filter.Where(gDto.Eq(table, field, strings.ToUpper(codes[field])))
	}

	return filter
}

func keyPart(code string) string {
	if code == constant.Empty {
		return anyCode
	}

	return strings.ToUpper(code)
}

func (s *serviceImpl) save(ctx context.Context, key string, value any) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, key, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to save catalog cache")
		}
	}()
}

func (s *serviceImpl) Flights(ctx context.Context, originCode, destinationCode string) (res []model.Flight, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Flights")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetFlights, keyPart(originCode), keyPart(destinationCode))

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for flights")

		return res, nil
	}

	filter := availableFilter(model.FlightTableName, map[string]string{
		model.FieldOriginCode:      originCode,
		model.FieldDestinationCode: destinationCode,
	})

	res, err = s.flights.GetAll(ctx, catalogOrder(model.FlightTableName), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get flights")

		return nil, fmt.Errorf("failed to get flights: %w", err)
	}

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Flight(ctx context.Context, id string) (res model.Flight, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Flight")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetFlight, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	res, err = s.flights.Get(ctx, shared.FilterByField(id, model.FieldID, model.FlightTableName))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get flight")

		return res, fmt.Errorf("failed to get flight: %w", err)
	}

	if res.ID == constant.Empty {
		return res, ErrFlightNotFound
	}

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Hotels(ctx context.Context, locationCode string) (res []model.Hotel, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Hotels")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetHotels, keyPart(locationCode))

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for hotels")

		return res, nil
	}

	filter := availableFilter(model.HotelTableName, map[string]string{
		model.FieldLocationCode: locationCode,
	})

	res, err = s.hotels.GetAll(ctx, catalogOrder(model.HotelTableName), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotels")

		return nil, fmt.Errorf("failed to get hotels: %w", err)
	}

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Hotel(ctx context.Context, id string) (res model.Hotel, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Hotel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetHotel, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	res, err = s.hotels.Get(ctx, shared.FilterByField(id, model.FieldID, model.HotelTableName))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get hotel")

		return res, fmt.Errorf("failed to get hotel: %w", err)
	}

	if res.ID == constant.Empty {
		return res, ErrHotelNotFound
	}

	s.save(ctx, cacheKey, res)

	return res, nil
}

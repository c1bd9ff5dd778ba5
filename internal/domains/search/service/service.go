package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"tripbook/config"
	"tripbook/infras/otel"
	catalogModel "tripbook/internal/domains/catalog/model"
	catalogService "tripbook/internal/domains/catalog/service"
	"tripbook/internal/domains/search/engine"
	"tripbook/internal/domains/search/model/dto"
	"tripbook/shared/constant"
	"tripbook/shared/money"

	"github.com/rs/zerolog/log"
)

// Search narrows and orders the catalog for a results page. Every call recomputes the
// result from the full listing.
type Search interface {
	Flights(ctx context.Context, req dto.FlightSearchRequest) (dto.FlightResults, error)
	Hotels(ctx context.Context, req dto.HotelSearchRequest) (dto.HotelResults, error)
}

type serviceImpl struct {
	catalog catalogService.Catalog
	cfg     *config.Config
	otel    otel.Otel
}

func New(catalog catalogService.Catalog, cfg *config.Config, otel otel.Otel) Search {
	return &serviceImpl{
		catalog: catalog,
		cfg:     cfg,
		otel:    otel,
	}
}

func (s *serviceImpl) Flights(ctx context.Context, req dto.FlightSearchRequest) (res dto.FlightResults, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SearchFlights")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tier, err := req.Tier()
	if err != nil {
		return res, err
	}

	key, err := req.SortKey()
	if err != nil {
		return res, err
	}

	criteria, err := req.Criteria()
	if err != nil {
		return res, err
	}

	flights, err := s.catalog.Flights(ctx, req.From, req.To)
	if err != nil {
		log.Error().Err(err).Msg("failed to list flights for search")

		return res, fmt.Errorf("failed to list flights: %w", err)
	}

	kind := engine.FlightKind()

	sorted, err := engine.Sort(kind, engine.Filter(kind, flights, criteria, tier), key, tier)
	if err != nil {
		return res, err
	}

	res = dto.FlightResults{
		Query:    req.Query(),
		Criteria: criteria,
		Sort:     key,
		Total:    len(flights),
		Matched:  len(sorted),
		Facets:   flightFacets(flights, tier),
		Items:    make([]dto.FlightResult, 0, len(sorted)),
	}

	for _, flight := range sorted {
		item := dto.FlightResult{Quote: dto.NewQuote(tier, flight.Price(tier), req.Passengers(), s.cfg.App.Currency)}
		item.FromModel(flight, s.cfg.App.Currency)
		res.Items = append(res.Items, item)
	}

	scope.SetAttribute("search.matched", res.Matched)

	return res, nil
}

func (s *serviceImpl) Hotels(ctx context.Context, req dto.HotelSearchRequest) (res dto.HotelResults, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SearchHotels")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tier, err := req.Tier()
	if err != nil {
		return res, err
	}

	key, err := req.SortKey()
	if err != nil {
		return res, err
	}

	hotels, err := s.catalog.Hotels(ctx, req.DestinationCode)
	if err != nil {
		log.Error().Err(err).Msg("failed to list hotels for search")

		return res, fmt.Errorf("failed to list hotels: %w", err)
	}

	kind := engine.HotelKind()
	criteria := req.Criteria()

	sorted, err := engine.Sort(kind, engine.Filter(kind, hotels, criteria, tier), key, tier)
	if err != nil {
		return res, err
	}

	res = dto.HotelResults{
		Query:    req.Query(),
		Criteria: criteria,
		Sort:     key,
		Total:    len(hotels),
		Matched:  len(sorted),
		Facets:   hotelFacets(hotels, tier),
		Items:    make([]dto.HotelResult, 0, len(sorted)),
	}

	for _, hotel := range sorted {
		item := dto.HotelResult{Quote: dto.NewQuote(tier, hotel.Price(tier), len(req.Rooms), s.cfg.App.Currency)}
		item.FromModel(hotel, s.cfg.App.Currency)
		res.Items = append(res.Items, item)
	}

	scope.SetAttribute("search.matched", res.Matched)

	return res, nil
}

func priceBounds(facets *dto.Facets, price money.Money, first bool) {
	if first || price < facets.MinPrice {
		facets.MinPrice = price
	}

	if first || price > facets.MaxPrice {
		facets.MaxPrice = price
	}
}

func flightFacets(flights []catalogModel.Flight, tier catalogModel.Tier) dto.Facets {
	var facets dto.Facets

	index := make(map[string]int)

	for i, flight := range flights {
		priceBounds(&facets, flight.Price(tier), i == 0)

		code := strings.ToUpper(flight.CarrierCode)
		if pos, ok := index[code]; ok {
			facets.Carriers[pos].Count++

			continue
		}

		index[code] = len(facets.Carriers)
		facets.Carriers = append(facets.Carriers, dto.CarrierFacet{Code: code, Name: flight.CarrierName, Count: 1})
	}

	return facets
}

func hotelFacets(hotels []catalogModel.Hotel, tier catalogModel.Tier) dto.Facets {
	var facets dto.Facets

	seen := make(map[string]struct{})

	for i, hotel := range hotels {
		priceBounds(&facets, hotel.Price(tier), i == 0)

		for _, amenity := range hotel.Amenities {
			key := strings.ToLower(amenity)
			if _, ok := seen[key]; ok {
				continue
			}

			seen[key] = struct{}{}
			facets.Amenities = append(facets.Amenities, key)
		}
	}

	slices.Sort(facets.Amenities)

	return facets
}

package catalog

import (
	"net/http"

	"tripbook/config"
	"tripbook/infras/otel"
	catalogDto "tripbook/internal/domains/catalog/model/dto"
	catalogService "tripbook/internal/domains/catalog/service"
	"tripbook/internal/domains/search/model/dto"
	searchService "tripbook/internal/domains/search/service"
	"tripbook/shared/constant"
	"tripbook/shared/failure"
	"tripbook/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	flightsPath = "/v1/flights"
	hotelsPath  = "/v1/hotels"
)

type Handler struct {
	search  searchService.Search
	catalog catalogService.Catalog
	cfg     *config.Config
	otel    otel.Otel
}

func New(search searchService.Search, catalog catalogService.Catalog, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		search:  search,
		catalog: catalog,
		cfg:     cfg,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/flights", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.SearchFlights)
		routerGroup.Get("/{id}", handler.GetFlight)
	})

	router.Route("/hotels", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.SearchHotels)
		routerGroup.Get("/{id}", handler.GetHotel)
	})
}

// searchLink rebuilds the listing a detail page was opened from.
func searchLink(path string, r *http.Request) string {
	if r.URL.RawQuery == constant.Empty {
		return path
	}

	return path + "?" + r.URL.RawQuery
}

// SearchFlights lists available flights for a route, filtered and sorted.
// @Summary Search flights
// @Description Filter and sort the flights of a route. Filters combine with AND; an empty filter matches everything.
// @Tags Catalog
// @Produce json
// @Param from query string false "Origin airport code"
// @Param to query string false "Destination airport code"
// @Param adults query integer false "Adults (default 1)"
// @Param children query integer false "Children"
// @Param infants query integer false "Infants (at most one per adult)"
// @Param cabinClass query string false "economy, premium_economy, business or first"
// @Param carriers query string false "Comma separated carrier codes"
// @Param stops query string false "Comma separated stop buckets: 0, 1, 2+"
// @Param departureTimes query string false "Comma separated: morning, afternoon, evening, night"
// @Param minPrice query integer false "Minimum unit price"
// @Param maxPrice query integer false "Maximum unit price"
// @Param sort query string false "cheapest, fastest, earliest or latest"
// @Success 200 {object} response.Data[dto.FlightResults]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/flights [get]
func (handler *Handler) SearchFlights(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchFlights")
	defer scope.End()

	req := dto.FlightSearchRequest{}

	if err := req.FromRequest(r); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("invalid flight search")

		response.WithError(w, err)

		return
	}

	res, err := handler.search.Flights(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search flights")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetFlight returns one flight.
// @Summary Get a flight
// @Tags Catalog
// @Produce json
// @Param id path string true "Flight ID"
// @Success 200 {object} response.Data[catalogDto.FlightResponse]
// @Failure 404 {object} response.NotFound
// @Failure 500 {object} response.Error
// @Router /v1/flights/{id} [get]
func (handler *Handler) GetFlight(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFlight")
	defer scope.End()

	flight, err := handler.catalog.Flight(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		if failure.GetCode(err) == http.StatusNotFound {
			response.WithNotFound(w, err, searchLink(flightsPath, r))

			return
		}

		log.Error().Err(err).Msg("failed to get flight")
		response.WithError(w, err)

		return
	}

	var res catalogDto.FlightResponse
	res.FromModel(flight, handler.cfg.App.Currency)

	response.WithJSON(w, http.StatusOK, res)
}

// SearchHotels lists available hotels of a destination, filtered and sorted.
// @Summary Search hotels
// @Description Filter and sort the hotels of a destination. Rooms are read from room{N}Adults, room{N}Children and room{N}Infants.
// @Tags Catalog
// @Produce json
// @Param destinationCode query string false "Destination code"
// @Param checkIn query string false "YYYY-MM-DD"
// @Param checkOut query string false "YYYY-MM-DD"
// @Param rooms query integer false "Number of rooms (1-4)"
// @Param roomType query string false "standard, deluxe or suite"
// @Param stars query string false "Comma separated star ratings"
// @Param amenities query string false "Comma separated amenities, all must match"
// @Param freeCancellation query boolean false "Only free cancellation"
// @Param breakfast query boolean false "Only breakfast included"
// @Param minPrice query integer false "Minimum nightly price"
// @Param maxPrice query integer false "Maximum nightly price"
// @Param sort query string false "price-low, price-high, rating-high, rating-low or distance"
// @Success 200 {object} response.Data[dto.HotelResults]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels [get]
func (handler *Handler) SearchHotels(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchHotels")
	defer scope.End()

	req := dto.HotelSearchRequest{}

	if err := req.FromRequest(r); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("invalid hotel search")

		response.WithError(w, err)

		return
	}

	res, err := handler.search.Hotels(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search hotels")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetHotel returns one hotel.
// @Summary Get a hotel
// @Tags Catalog
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} response.Data[catalogDto.HotelResponse]
// @Failure 404 {object} response.NotFound
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{id} [get]
func (handler *Handler) GetHotel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotel")
	defer scope.End()

	hotel, err := handler.catalog.Hotel(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		if failure.GetCode(err) == http.StatusNotFound {
			response.WithNotFound(w, err, searchLink(hotelsPath, r))

			return
		}

		log.Error().Err(err).Msg("failed to get hotel")
		response.WithError(w, err)

		return
	}

	var res catalogDto.HotelResponse
	res.FromModel(hotel, handler.cfg.App.Currency)

	response.WithJSON(w, http.StatusOK, res)
}

package occupancy

import (
	"net/http"

	"tripbook/infras/otel"
	"tripbook/internal/domains/booking/model/dto"
	"tripbook/shared/constant"
	"tripbook/shared/validator"
	"tripbook/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Handler serves the passenger and room counters used by the search forms. It keeps no
// state: the client sends the current counts and gets the adjusted ones back.
type Handler struct {
	otel otel.Otel
}

func New(otel otel.Otel) Handler {
	return Handler{otel: otel}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/occupancy", func(routerGroup chi.Router) {
		routerGroup.Post("/passengers", handler.Passengers)
		routerGroup.Post("/rooms", handler.Rooms)
	})
}

// Passengers applies one counter step to a flight party.
// @Summary Adjust flight passengers
// @Description Increment or decrement adults, children or infants. A step that breaks a count rule returns the counts unchanged.
// @Tags Occupancy
// @Accept json
// @Produce json
// @Param request body dto.PassengersRequest true "Current counts and the step"
// @Success 200 {object} response.Data[dto.PassengersResponse]
// @Failure 400 {object} response.Error
// @Router /v1/occupancy/passengers [post]
func (handler *Handler) Passengers(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Passengers")
	defer scope.End()

	req := dto.PassengersRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := req.Apply()
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Rooms adds, removes or adjusts a hotel room.
// @Summary Adjust hotel rooms
// @Description Add a room, remove one by index, or step an occupant count in one room. Out of range changes are ignored.
// @Tags Occupancy
// @Accept json
// @Produce json
// @Param request body dto.RoomsRequest true "Current rooms and the change"
// @Success 200 {object} response.Data[dto.RoomsResponse]
// @Failure 400 {object} response.Error
// @Router /v1/occupancy/rooms [post]
func (handler *Handler) Rooms(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Rooms")
	defer scope.End()

	req := dto.RoomsRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := req.Apply()
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

package booking

import (
	"net/http"
	"strconv"

	"tripbook/infras/otel"
	"tripbook/internal/domains/booking/model/dto"
	"tripbook/internal/domains/booking/service"
	"tripbook/shared/constant"
	gDto "tripbook/shared/dto"
	"tripbook/shared/failure"
	"tripbook/shared/validator"
	"tripbook/transport/http/middleware"
	"tripbook/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const sortableColumns = "created_at total_price"

type Handler struct {
	service service.Booking
	session middleware.Session
	otel    otel.Otel
}

func New(service service.Booking, session middleware.Session, otel otel.Otel) Handler {
	return Handler{
		service: service,
		session: session,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Route("/drafts", func(drafts chi.Router) {
			drafts.Use(handler.session.Identify)

			drafts.Post("/", handler.CreateDraft)
			drafts.Get("/{id}", handler.GetDraft)
			drafts.Put("/{id}/travelers/{index}", handler.UpdateTraveler)
			drafts.Put("/{id}/guests/{index}", handler.UpdateGuest)
			drafts.Post("/{id}/addons/{addonID}/toggle", handler.ToggleAddOn)
			drafts.Put("/{id}/contact", handler.UpdateContact)
			drafts.Put("/{id}/terms", handler.AcceptTerms)
			drafts.Post("/{id}/advance", handler.Advance)
			drafts.Post("/{id}/retreat", handler.Retreat)
			drafts.Post("/{id}/submit", handler.Submit)
			drafts.Post("/{id}/abandon", handler.Abandon)
		})

		routerGroup.Get("/{id}", handler.GetBooking)
	})

	router.With(handler.session.Authenticate).Get("/me/bookings", handler.GetMyBookings)
}

func indexParam(r *http.Request) (int, error) {
	index, err := strconv.Atoi(chi.URLParam(r, constant.RequestParamIndex))
	if err != nil || index < 0 {
		return 0, failure.BadRequestFromString("index must be a non-negative whole number")
	}

	return index, nil
}

// CreateDraft starts checkout for a flight or hotel.
// @Summary Start a booking
// @Description Open a checkout draft for one catalog item. The draft expires if left idle.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateDraftRequest true "Item and party"
// @Success 201 {object} response.Data[dto.DraftResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/drafts [post]
func (handler *Handler) CreateDraft(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateDraft")
	defer scope.End()

	req := dto.CreateDraftRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CreateDraft(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create draft")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("draft created", map[string]any{"draft.id": res.ID, "draft.kind": res.Kind})

	response.WithJSON(w, http.StatusCreated, res)
}

// GetDraft returns the current state of a checkout.
// @Summary Get a booking draft
// @Tags Booking
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} response.Data[dto.DraftResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/drafts/{id} [get]
func (handler *Handler) GetDraft(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDraft")
	defer scope.End()

	res, err := handler.service.GetDraft(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to get draft")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateTraveler fills in one flight passenger.
// @Summary Update a traveler
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param index path integer true "Traveler position, starting at 0"
// @Param request body dto.TravelerRequest true "Traveler details"
// @Success 200 {object} response.Data[dto.DraftResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/drafts/{id}/travelers/{index} [put]
func (handler *Handler) UpdateTraveler(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTraveler")
	defer scope.End()

	index, err := indexParam(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.TravelerRequest{}

	if err = validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UpdateTraveler(ctx, chi.URLParam(r, constant.RequestParamID), index, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to update traveler")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateGuest fills in one hotel guest.
// @Summary Update a guest
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param index path integer true "Guest position, starting at 0"
// @Param request body dto.GuestRequest true "Guest details"
// @Success 200 {object} response.Data[dto.DraftResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/drafts/{id}/guests/{index} [put]
func (handler *Handler) UpdateGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateGuest")
	defer scope.End()

	index, err := indexParam(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.GuestRequest{}

	if err = validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UpdateGuest(ctx, chi.URLParam(r, constant.RequestParamID), index, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to update guest")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ToggleAddOn selects or clears an extra and reprices the draft.
// @Summary Toggle an add-on
// @Tags Booking
// @Produce json
// @Param id path string true "Draft ID"
// @Param addonID path string true "Add-on ID"
// @Success 200 {object} response.Data[dto.DraftResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/drafts/{id}/addons/{addonID}/toggle [post]
func (handler *Handler) ToggleAddOn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToggleAddOn")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	addOnID := chi.URLParam(r, constant.RequestParamAddOnID)

	res, err := handler.service.ToggleAddOn(ctx, id, addOnID)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("addOnID", addOnID).Msg("failed to toggle add-on")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateContact sets where the confirmation is sent.
// @Summary Update contact details
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body dto.ContactRequest true "Contact details"
// @Success 200 {object} response.Data[dto.DraftResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/drafts/{id}/contact [put]
func (handler *Handler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateContact")
	defer scope.End()

	req := dto.ContactRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UpdateContact(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to update contact")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// AcceptTerms records the shopper's answer to the terms checkbox.
// @Summary Accept terms
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body dto.TermsRequest true "Terms answer"
// @Success 200 {object} response.Data[dto.DraftResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/drafts/{id}/terms [put]
func (handler *Handler) AcceptTerms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AcceptTerms")
	defer scope.End()

	req := dto.TermsRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.AcceptTerms(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to accept terms")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Advance moves the checkout to the next step once the current one is complete.
// @Summary Next checkout step
// @Tags Booking
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} response.Data[dto.DraftResponse]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/bookings/drafts/{id}/advance [post]
func (handler *Handler) Advance(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Advance")
	defer scope.End()

	res, err := handler.service.Advance(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to advance draft")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Retreat moves the checkout back one step. Entered data is kept.
// @Summary Previous checkout step
// @Tags Booking
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} response.Data[dto.DraftResponse]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/drafts/{id}/retreat [post]
func (handler *Handler) Retreat(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Retreat")
	defer scope.End()

	res, err := handler.service.Retreat(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to retreat draft")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Submit books the draft. Submitting the same draft again returns the first confirmation.
// @Summary Submit a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Draft ID"
// @Success 201 {object} response.Data[model.Confirmation]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 504 {object} response.Error
// @Router /v1/bookings/drafts/{id}/submit [post]
func (handler *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Submit")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	confirmation, err := handler.service.Submit(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("draftID", id).Msg("failed to submit booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("booking submitted", map[string]any{"booking.reference": confirmation.Reference})

	response.WithJSON(w, http.StatusCreated, confirmation)
}

// Abandon closes a checkout without booking.
// @Summary Abandon a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} response.Data[dto.DraftResponse]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/drafts/{id}/abandon [post]
func (handler *Handler) Abandon(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Abandon")
	defer scope.End()

	res, err := handler.service.Abandon(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to abandon draft")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetBooking retrieves a submitted booking by its ID.
// @Summary Get a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
func (handler *Handler) GetBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBooking")
	defer scope.End()

	booking, err := handler.service.GetBooking(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// GetMyBookings lists the bookings of the signed-in shopper.
// @Summary Get my bookings
// @Tags Booking
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/me/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	if queryParams.SortBy != constant.Empty {
		if err := validator.ValidateVar(queryParams.SortBy, "oneof="+sortableColumns); err != nil {
			scope.TraceError(err)
			response.WithError(w, err)

			return
		}
	}

	bookings, err := handler.service.ListMine(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get user bookings")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("bookings listed", map[string]any{"user.id": user, "bookings.total": bookings.TotalData})

	response.WithJSON(w, http.StatusOK, bookings)
}

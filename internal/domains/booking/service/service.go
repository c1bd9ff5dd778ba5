package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"tripbook/config"
	"tripbook/infras/otel"
	"tripbook/internal/domains/booking/model"
	"tripbook/internal/domains/booking/model/dto"
	"tripbook/internal/domains/booking/repository"
	"tripbook/internal/domains/booking/submission"
	"tripbook/internal/domains/booking/wizard"
	catalogModel "tripbook/internal/domains/catalog/model"
	catalogService "tripbook/internal/domains/catalog/service"
	"tripbook/shared"
	"tripbook/shared/cache"
	"tripbook/shared/constant"
	gDto "tripbook/shared/dto"
	"tripbook/shared/failure"
	"tripbook/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking   = "booking:get"
	cacheListBookings = "booking:mine"
)

const notifierUser = "notifier"

var (
	ErrBookingNotFound = failure.NotFound("booking not found")
	ErrNoSession       = failure.Unauthorized("sign in to see your bookings")
)

// Booking runs checkout drafts through the wizard and serves submitted bookings.
type Booking interface {
	CreateDraft(ctx context.Context, req dto.CreateDraftRequest) (dto.DraftResponse, error)
	GetDraft(ctx context.Context, id string) (dto.DraftResponse, error)
	UpdateTraveler(ctx context.Context, id string, index int, req dto.TravelerRequest) (dto.DraftResponse, error)
	UpdateGuest(ctx context.Context, id string, index int, req dto.GuestRequest) (dto.DraftResponse, error)
	ToggleAddOn(ctx context.Context, id, addOnID string) (dto.DraftResponse, error)
	UpdateContact(ctx context.Context, id string, req dto.ContactRequest) (dto.DraftResponse, error)
	AcceptTerms(ctx context.Context, id string, req dto.TermsRequest) (dto.DraftResponse, error)
	Advance(ctx context.Context, id string) (dto.DraftResponse, error)
	Retreat(ctx context.Context, id string) (dto.DraftResponse, error)
	Submit(ctx context.Context, id string) (model.Confirmation, error)
	Abandon(ctx context.Context, id string) (dto.DraftResponse, error)
	GetBooking(ctx context.Context, id string) (dto.BookingResponse, error)
	ListMine(ctx context.Context, params gDto.QueryParams) (dto.GetBookingsResponse, error)
	MarkNotified(ctx context.Context, event model.BookingSubmittedEvent) error
}

type serviceImpl struct {
	drafts    repository.Draft
	bookings  repository.Booking
	submitter submission.Submitter
	catalog   catalogService.Catalog
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(
	drafts repository.Draft,
	bookings repository.Booking,
	submitter submission.Submitter,
	catalog catalogService.Catalog,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		drafts:    drafts,
		bookings:  bookings,
		submitter: submitter,
		catalog:   catalog,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func sessionUser(ctx context.Context) string {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	return user
}

func (s *serviceImpl) resolveItem(ctx context.Context, kind model.Kind, req dto.CreateDraftRequest) (dto.Item, error) {
	if kind == model.KindHotel {
		tier, err := catalogModel.ParseRoomTier(req.Tier)
		if err != nil {
			return dto.Item{}, err //nolint:wrapcheck
		}

		hotel, err := s.catalog.Hotel(ctx, req.ItemID)
		if err != nil {
			return dto.Item{}, err //nolint:wrapcheck
		}

		return dto.Item{ID: hotel.ID, Title: hotel.Name, Tier: tier, UnitPrice: hotel.Price(tier)}, nil
	}

	tier, err := catalogModel.ParseCabinTier(req.Tier)
	if err != nil {
		return dto.Item{}, err //nolint:wrapcheck
	}

	flight, err := s.catalog.Flight(ctx, req.ItemID)
	if err != nil {
		return dto.Item{}, err //nolint:wrapcheck
	}

	return dto.Item{ID: flight.ID, Title: flight.Title(), Tier: tier, UnitPrice: flight.Price(tier)}, nil
}

func (s *serviceImpl) CreateDraft(ctx context.Context, req dto.CreateDraftRequest) (res dto.DraftResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateDraft")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	kind, err := model.ParseKind(req.Kind)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = req.Validate(kind); err != nil {
		return res, err //nolint:wrapcheck
	}

	item, err := s.resolveItem(ctx, kind, req)
	if err != nil {
		log.Warn().Err(err).Str("itemID", req.ItemID).Msg("failed to resolve booking item")

		return res, err //nolint:wrapcheck
	}

	draft := req.ToModel(uuid.NewString(), kind, item, sessionUser(ctx), s.cfg.App.Currency, timezone.Now())

	if err = s.drafts.Save(ctx, draft); err != nil {
		log.Error().Err(err).Msg("failed to save booking draft")

		return res, fmt.Errorf("failed to save booking draft: %w", err)
	}

	scope.SetAttribute("draft.id", draft.ID)
	res.FromModel(draft)

	return res, nil
}

func (s *serviceImpl) GetDraft(ctx context.Context, id string) (res dto.DraftResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetDraft")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	draft, err := s.drafts.Get(ctx, id)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	res.FromModel(draft)

	return res, nil
}

// mutate loads a draft, applies one wizard operation and saves the result. A failed
// operation leaves the stored draft untouched.
func (s *serviceImpl) mutate(ctx context.Context, id, span string, apply func(w *wizard.Wizard) error) (res dto.DraftResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+"."+span)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("draft.id", id)

	draft, err := s.drafts.Get(ctx, id)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	wiz := wizard.New(draft)
	if err = apply(wiz); err != nil {
		return res, err
	}

	if err = s.drafts.Save(ctx, wiz.Draft()); err != nil {
		log.Error().Err(err).Str("draftID", id).Msg("failed to save booking draft")

		return res, fmt.Errorf("failed to save booking draft: %w", err)
	}

	res.FromModel(wiz.Draft())

	return res, nil
}

func (s *serviceImpl) UpdateTraveler(ctx context.Context, id string, index int, req dto.TravelerRequest) (dto.DraftResponse, error) {
	return s.mutate(ctx, id, "UpdateTraveler", func(w *wizard.Wizard) error {
		return w.SetTraveler(index, req.ToModel())
	})
}

func (s *serviceImpl) UpdateGuest(ctx context.Context, id string, index int, req dto.GuestRequest) (dto.DraftResponse, error) {
	return s.mutate(ctx, id, "UpdateGuest", func(w *wizard.Wizard) error {
		return w.SetGuest(index, req.ToModel())
	})
}

func (s *serviceImpl) ToggleAddOn(ctx context.Context, id, addOnID string) (dto.DraftResponse, error) {
	return s.mutate(ctx, id, "ToggleAddOn", func(w *wizard.Wizard) error {
		return w.ToggleAddOn(addOnID)
	})
}

func (s *serviceImpl) UpdateContact(ctx context.Context, id string, req dto.ContactRequest) (dto.DraftResponse, error) {
	return s.mutate(ctx, id, "UpdateContact", func(w *wizard.Wizard) error {
		return w.SetContact(req.ToModel())
	})
}

func (s *serviceImpl) AcceptTerms(ctx context.Context, id string, req dto.TermsRequest) (dto.DraftResponse, error) {
	return s.mutate(ctx, id, "AcceptTerms", func(w *wizard.Wizard) error {
		return w.AcceptTerms(req.Accepted)
	})
}

func (s *serviceImpl) Advance(ctx context.Context, id string) (dto.DraftResponse, error) {
	return s.mutate(ctx, id, "Advance", func(w *wizard.Wizard) error {
		return w.Advance()
	})
}

func (s *serviceImpl) Retreat(ctx context.Context, id string) (dto.DraftResponse, error) {
	return s.mutate(ctx, id, "Retreat", func(w *wizard.Wizard) error {
		return w.Retreat()
	})
}

func (s *serviceImpl) Abandon(ctx context.Context, id string) (dto.DraftResponse, error) {
	return s.mutate(ctx, id, "Abandon", func(w *wizard.Wizard) error {
		return w.Abandon()
	})
}

// Submit seals the draft and hands it to the submitter. The draft is only stored as
// submitted once the booking exists, so a failed or timed out submission can be retried.
// Retrying an already submitted draft returns the original confirmation.
func (s *serviceImpl) Submit(ctx context.Context, id string) (res model.Confirmation, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("draft.id", id)

	draft, err := s.drafts.Get(ctx, id)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if draft.OwnerID == constant.Empty {
		draft.OwnerID = sessionUser(ctx)
	}

	var payload model.Payload

	if draft.Status == model.StatusSubmitted && draft.SubmittedAt != nil {
		payload = model.NewPayload(draft, *draft.SubmittedAt)
	} else {
		payload, err = wizard.New(draft).Submit(timezone.Now())
		if err != nil {
			return res, err //nolint:wrapcheck
		}
	}

	res, err = s.submitter.Submit(ctx, payload)
	if err != nil {
		log.Error().Err(err).Str("draftID", id).Msg("failed to submit booking")

		return res, err //nolint:wrapcheck
	}

	if err = s.drafts.Save(ctx, draft); err != nil {
		log.Warn().Err(err).Str("draftID", id).Msg("booking stored but draft not marked submitted")
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheListBookings)
	}()

	return res, nil
}

func (s *serviceImpl) GetBooking(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.bookings.Get(ctx, shared.FilterByField(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, ErrBookingNotFound
	}

	passengers, err := s.bookings.Passengers(ctx, booking.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking passengers")

		return res, fmt.Errorf("failed to get booking passengers: %w", err)
	}

	res.FromModel(booking)
	res.WithPassengers(passengers)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) ListMine(ctx context.Context, params gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListMine")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user := sessionUser(ctx)
	if user == constant.Empty {
		return res, ErrNoSession
	}

	filter := shared.FilterByField(user, model.FieldOwnerID, model.TableName)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheListBookings, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.bookings.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.bookings.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

// MarkNotified records that the confirmation of a booking went out. Repeated events are
// ignored.
func (s *serviceImpl) MarkNotified(ctx context.Context, event model.BookingSubmittedEvent) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".MarkNotified")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByField(event.BookingID, model.FieldID, model.TableName)

	booking, err := s.bookings.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("bookingID", event.BookingID).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		log.Warn().Str("bookingID", event.BookingID).Msg("notification for unknown booking skipped")

		return nil
	}

	if booking.NotifiedAt != nil {
		return nil
	}

	fields := shared.TransformFields(model.NotificationPatch{NotifiedAt: timezone.Now()}, notifierUser)
	pending := filter.Where(gDto.IsNull(model.TableName, model.FieldNotified))

	if err = s.bookings.Update(ctx, fields, pending); err != nil {
		log.Error().Err(err).Str("bookingID", event.BookingID).Msg("failed to mark booking notified")

		return fmt.Errorf("failed to mark booking notified: %w", err)
	}

	log.Info().
		Str("bookingID", event.BookingID).
		Str("reference", event.Reference).
		Str("email", event.ContactEmail).
		Str("total", event.Total.Format(event.Currency)).
		Msg("booking confirmation sent")

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, event.BookingID)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheListBookings)
	}()

	return nil
}

// Package submission hands sealed booking payloads to the booking backend.
package submission

//go:generate go run go.uber.org/mock/mockgen -source=./submission.go -destination=../mocks/submission_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"tripbook/config"
	"tripbook/infras/kafka"
	"tripbook/infras/otel"
	"tripbook/infras/s3"
	"tripbook/internal/domains/booking/model"
	"tripbook/internal/domains/booking/repository"
	catalogService "tripbook/internal/domains/catalog/service"
	"tripbook/shared"
	"tripbook/shared/constant"
	"tripbook/shared/failure"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	receiptDirectory = "receipts"
	referencePrefix  = "TB-"
	referenceLength  = 6
)

var (
	ErrSoldOut           = failure.Conflict("the selected item is no longer available")
	ErrSubmissionTimeout = failure.Timeout("booking submission timed out, it is safe to retry")
)

// Submitter stores a booking exactly once per draft id. Retrying a submission that
// already went through returns the original confirmation.
type Submitter interface {
	Submit(ctx context.Context, payload model.Payload) (model.Confirmation, error)
}

type submitterImpl struct {
	bookings repository.Booking
	catalog  catalogService.Catalog
	storage  s3.S3
	kafka    kafka.Client
	cfg      *config.Config
	otel     otel.Otel
}

func New(bookings repository.Booking, catalog catalogService.Catalog, storage s3.S3, kafka kafka.Client, cfg *config.Config, otel otel.Otel) Submitter {
	return &submitterImpl{
		bookings: bookings,
		catalog:  catalog,
		storage:  storage,
		kafka:    kafka,
		cfg:      cfg,
		otel:     otel,
	}
}

// Reference derives the short customer-facing code of a booking id.
func Reference(id string) string {
	compact := strings.ToUpper(strings.ReplaceAll(id, "-", ""))

	return referencePrefix + compact[:min(referenceLength, len(compact))]
}

func timedOut(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}

func (s *submitterImpl) Submit(ctx context.Context, payload model.Payload) (res model.Confirmation, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".Submit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("draft.id", payload.DraftID)

	if existing, found, findErr := s.existing(ctx, payload.DraftID); findErr != nil {
		return res, findErr
	} else if found {
		log.Info().Str("draftID", payload.DraftID).Str("reference", existing.Reference).Msg("booking already submitted")
		scope.AddEvent("replayed", map[string]any{"booking.reference": existing.Reference})

		return existing.Confirmation(), nil
	}

	if timeout := s.cfg.Booking.SubmitTimeoutSeconds; timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
		defer cancel()
	}

	if err = s.wait(ctx); err != nil {
		return res, err
	}

	if err = s.checkAvailable(ctx, payload); err != nil {
		return res, err
	}

	id := uuid.NewString()

	booking, err := model.NewBooking(payload, id, Reference(id))
	if err != nil {
		log.Error().Err(err).Str("draftID", payload.DraftID).Msg("failed to build booking")

		return res, fmt.Errorf("failed to build booking: %w", err)
	}

	booking.ReceiptURL = s.uploadReceipt(ctx, booking)
	scope.AddEvent("receipt", map[string]any{"receipt.stored": booking.ReceiptURL != constant.Empty})

	if err = s.bookings.Create(ctx, booking, payload.PassengerRows(id)); err != nil {
		s.deleteReceipt(ctx, booking)

		return s.createFailed(ctx, payload.DraftID, err)
	}

	s.publish(ctx, booking)

	log.Info().Str("bookingID", booking.ID).Str("reference", booking.Reference).Msg("booking submitted")

	return booking.Confirmation(), nil
}

func (s *submitterImpl) existing(ctx context.Context, draftID string) (model.Booking, bool, error) {
	booking, err := s.bookings.Get(ctx, shared.FilterByField(draftID, model.FieldDraftID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("draftID", draftID).Msg("failed to look up booking by draft")

		return booking, false, fmt.Errorf("failed to look up booking: %w", err)
	}

	return booking, booking.ID != constant.Empty, nil
}

// wait simulates the processing delay of the booking backend.
func (s *submitterImpl) wait(ctx context.Context) error {
	delay := time.Duration(s.cfg.Booking.SubmitDelayMillis) * time.Millisecond
	if delay <= 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		if timedOut(ctx.Err()) {
			return ErrSubmissionTimeout
		}

		return fmt.Errorf("booking submission cancelled: %w", ctx.Err())
	}
}

func (s *submitterImpl) checkAvailable(ctx context.Context, payload model.Payload) error {
	var (
		available bool
		err       error
	)

	switch payload.Kind {
	case model.KindHotel:
		hotel, getErr := s.catalog.Hotel(ctx, payload.Item.ID)
		available, err = hotel.Available, getErr
	default:
		flight, getErr := s.catalog.Flight(ctx, payload.Item.ID)
		available, err = flight.Available, getErr
	}

	switch {
	case err == nil && available:
		return nil
	case err == nil, failure.GetCode(err) == http.StatusNotFound:
		log.Warn().Str("itemID", payload.Item.ID).Msg("booked item is no longer available")

		return ErrSoldOut
	case timedOut(err):
		return ErrSubmissionTimeout
	default:
		log.Error().Err(err).Str("itemID", payload.Item.ID).Msg("failed to check availability")

		return fmt.Errorf("failed to check availability: %w", err)
	}
}

// createFailed resolves an insert error. A unique violation on draft_id means a concurrent
// submission of the same draft won, so its confirmation is returned.
func (s *submitterImpl) createFailed(ctx context.Context, draftID string, err error) (model.Confirmation, error) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == constant.PqErrorCodeUniqueViolation {
		if existing, found, findErr := s.existing(ctx, draftID); findErr == nil && found {
			return existing.Confirmation(), nil
		}
	}

	if timedOut(err) {
		return model.Confirmation{}, ErrSubmissionTimeout
	}

	log.Error().Err(err).Str("draftID", draftID).Msg("failed to store booking")

	return model.Confirmation{}, fmt.Errorf("failed to store booking: %w", err)
}

type receipt struct {
	BookingID string        `json:"booking_id"`
	Reference string        `json:"reference"`
	Payload   model.Payload `json:"payload"`
}

func receiptKey(booking model.Booking) string {
	return path.Join(receiptDirectory, booking.ID+".json")
}

func (s *submitterImpl) uploadReceipt(ctx context.Context, booking model.Booking) string {
	var payload model.Payload
	if err := json.Unmarshal(booking.Payload, &payload); err != nil {
		log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to decode payload for receipt")

		return constant.Empty
	}

	body, err := json.Marshal(receipt{BookingID: booking.ID, Reference: booking.Reference, Payload: payload})
	if err != nil {
		log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to encode receipt")

		return constant.Empty
	}

	url, err := s.storage.Put(ctx, s3.Object{
		Key:         receiptKey(booking),
		ContentType: constant.ContentTypeJSON,
		Body:        body,
		Metadata:    map[string]string{"reference": booking.Reference},
	})
	if err != nil {
		log.Warn().Err(err).Str("bookingID", booking.ID).Msg("booking receipt not uploaded")

		return constant.Empty
	}

	return url
}

func (s *submitterImpl) deleteReceipt(ctx context.Context, booking model.Booking) {
	if booking.ReceiptURL == constant.Empty {
		return
	}

	if err := s.storage.Delete(context.WithoutCancel(ctx), receiptKey(booking)); err != nil {
		log.Warn().Err(err).Str("bookingID", booking.ID).Msg("orphan booking receipt left in storage")
	}
}

func (s *submitterImpl) publish(ctx context.Context, booking model.Booking) {
	message := kafka.Message{Key: booking.ID, Value: booking.SubmittedEvent()}

	if err := s.kafka.SendMessages(context.WithoutCancel(ctx), s.cfg.Kafka.Topics.BookingSubmitted, message); err != nil {
		log.Warn().Err(err).Str("bookingID", booking.ID).Msg("booking submitted event not published")
	}
}

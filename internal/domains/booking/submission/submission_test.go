package submission_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"tripbook/config"
	kafkaMocks "tripbook/infras/kafka/mocks"
	"tripbook/infras/otel/mocks"
	"tripbook/infras/s3"
	s3Mocks "tripbook/infras/s3/mocks"
	bookingMocks "tripbook/internal/domains/booking/mocks"
	"tripbook/internal/domains/booking/model"
	"tripbook/internal/domains/booking/submission"
	catalogMocks "tripbook/internal/domains/catalog/mocks"
	catalogModel "tripbook/internal/domains/catalog/model"
	catalogService "tripbook/internal/domains/catalog/service"
	"tripbook/shared/constant"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	bookings  *bookingMocks.MockBookingRepository
	catalog   *catalogMocks.MockCatalog
	storage   *s3Mocks.MockS3
	kafka     *kafkaMocks.MockClient
	submitter submission.Submitter
}

func newFixture(t *testing.T, delayMillis int) fixture {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.App.Currency = "BDT"
	cfg.Booking.SubmitDelayMillis = delayMillis
	cfg.Booking.SubmitTimeoutSeconds = 5
	cfg.Kafka.Topics.BookingSubmitted = "booking.submitted"

	f := fixture{
		bookings: bookingMocks.NewMockBookingRepository(ctrl),
		catalog:  catalogMocks.NewMockCatalog(ctrl),
		storage:  s3Mocks.NewMockS3(ctrl),
		kafka:    kafkaMocks.NewMockClient(ctrl),
	}
	f.submitter = submission.New(f.bookings, f.catalog, f.storage, f.kafka, cfg, mocks.NewOtel())

	return f
}

func flightPayload() model.Payload {
	return model.Payload{
		Version: model.PayloadVersion,
		DraftID: "draft-1",
		Kind:    model.KindFlight,
		Item:    model.PayloadItem{ID: "FL-1", Title: "Biman BG-147", Tier: catalogModel.TierEconomy},
		Travelers: []model.Traveler{
			{Role: model.RoleAdult, FirstName: "Rahim", LastName: "Uddin", Nationality: "BD", PassportNumber: "A1234567"},
		},
		Contact:     model.Contact{Email: "rahim@example.com", Phone: "1711000000", CountryCode: "+880"},
		Price:       model.Breakdown{UnitPrice: 8000, Units: 1, BasePrice: 8000, Taxes: 1200, Total: 9200},
		Currency:    "BDT",
		SubmittedAt: time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestReference(t *testing.T) {
	assert.Equal(t, "TB-3F2A9C", submission.Reference("3f2a9c10-1111-4222-8333-444455556666"))
	assert.Equal(t, "TB-AB", submission.Reference("ab"))
}

func TestSubmit_StoresBooking(t *testing.T) {
	f := newFixture(t, 0)
	payload := flightPayload()

	var stored model.Booking

	gomock.InOrder(
		f.bookings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil),
		f.catalog.EXPECT().Flight(gomock.Any(), "FL-1").Return(catalogModel.Flight{ID: "FL-1", Available: true}, nil),
		f.storage.EXPECT().Put(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, object s3.Object) (string, error) {
				assert.True(t, strings.HasPrefix(object.Key, "receipts/"))
				assert.Equal(t, constant.ContentTypeJSON, object.ContentType)
				assert.NotEmpty(t, object.Metadata["reference"])

				return "https://cdn.example.com/" + object.Key, nil
			}),
		f.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Len(1)).
			DoAndReturn(func(_ context.Context, booking model.Booking, _ []model.Passenger) error {
				stored = booking

				return nil
			}),
		f.kafka.EXPECT().SendMessages(gomock.Any(), "booking.submitted", gomock.Any()).Return(nil),
	)

	res, err := f.submitter.Submit(t.Context(), payload)
	require.NoError(t, err)

	assert.Equal(t, stored.ID, res.BookingID)
	assert.Equal(t, submission.Reference(stored.ID), res.Reference)
	assert.Equal(t, "draft-1", res.DraftID)
	assert.Equal(t, model.BookingStatusConfirmed, res.Status)
	assert.EqualValues(t, 9200, res.Total)
	assert.Equal(t, "https://cdn.example.com/receipts/"+stored.ID+".json", res.ReceiptURL)
}

func TestSubmit_ReturnsExistingConfirmation(t *testing.T) {
	f := newFixture(t, 0)

	existing := model.Booking{ID: "bk-1", DraftID: "draft-1", Reference: "TB-BK1", Status: model.BookingStatusConfirmed, TotalPrice: 9200, Currency: "BDT"}
	f.bookings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)

	res, err := f.submitter.Submit(t.Context(), flightPayload())
	require.NoError(t, err)
	assert.Equal(t, "bk-1", res.BookingID)
	assert.Equal(t, "TB-BK1", res.Reference)
}

func TestSubmit_SoldOut(t *testing.T) {
	tests := []struct {
		name   string
		flight catalogModel.Flight
		err    error
	}{
		{name: "unavailable", flight: catalogModel.Flight{ID: "FL-1"}},
		{name: "removed from catalog", err: catalogService.ErrFlightNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 0)

			f.bookings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
			f.catalog.EXPECT().Flight(gomock.Any(), "FL-1").Return(tt.flight, tt.err)

			_, err := f.submitter.Submit(t.Context(), flightPayload())
			assert.ErrorIs(t, err, submission.ErrSoldOut)
		})
	}
}

func TestSubmit_ChecksHotelAvailability(t *testing.T) {
	f := newFixture(t, 0)

	payload := flightPayload()
	payload.Kind = model.KindHotel
	payload.Item.ID = "HT-1"

	f.bookings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
	f.catalog.EXPECT().Hotel(gomock.Any(), "HT-1").Return(catalogModel.Hotel{ID: "HT-1"}, nil)

	_, err := f.submitter.Submit(t.Context(), payload)
	assert.ErrorIs(t, err, submission.ErrSoldOut)
}

func TestSubmit_TimesOut(t *testing.T) {
	f := newFixture(t, 1000)

	f.bookings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

	ctx, cancel := context.WithTimeout(t.Context(), 10*time.Millisecond)
	defer cancel()

	_, err := f.submitter.Submit(ctx, flightPayload())
	assert.ErrorIs(t, err, submission.ErrSubmissionTimeout)
}

func TestSubmit_CreateFailureRemovesReceipt(t *testing.T) {
	f := newFixture(t, 0)

	f.bookings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
	f.catalog.EXPECT().Flight(gomock.Any(), "FL-1").Return(catalogModel.Flight{ID: "FL-1", Available: true}, nil)
	f.storage.EXPECT().Put(gomock.Any(), gomock.Any()).
		Return("https://cdn.example.com/receipts/x.json", nil)
	f.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
	f.storage.EXPECT().Delete(gomock.Any(), gomock.Cond(func(key string) bool {
		return strings.HasPrefix(key, "receipts/")
	})).Return(nil)

	_, err := f.submitter.Submit(t.Context(), flightPayload())
	require.Error(t, err)
	assert.ErrorContains(t, err, "connection reset")
}

func TestSubmit_ConcurrentDuplicateResolvesToWinner(t *testing.T) {
	f := newFixture(t, 0)

	winner := model.Booking{ID: "bk-9", DraftID: "draft-1", Reference: "TB-BK9", Status: model.BookingStatusConfirmed}

	gomock.InOrder(
		f.bookings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil),
		f.catalog.EXPECT().Flight(gomock.Any(), "FL-1").Return(catalogModel.Flight{ID: "FL-1", Available: true}, nil),
		f.storage.EXPECT().Put(gomock.Any(), gomock.Any()).
			Return(constant.Empty, errors.New("bucket unavailable")),
		f.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&pq.Error{Code: constant.PqErrorCodeUniqueViolation}),
		f.bookings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(winner, nil),
	)

	res, err := f.submitter.Submit(t.Context(), flightPayload())
	require.NoError(t, err)
	assert.Equal(t, "bk-9", res.BookingID)
}

func TestSubmit_PublishFailureIsNotFatal(t *testing.T) {
	f := newFixture(t, 0)

	f.bookings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
	f.catalog.EXPECT().Flight(gomock.Any(), "FL-1").Return(catalogModel.Flight{ID: "FL-1", Available: true}, nil)
	f.storage.EXPECT().Put(gomock.Any(), gomock.Any()).
		Return(constant.Empty, errors.New("bucket unavailable"))
	f.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.kafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	res, err := f.submitter.Submit(t.Context(), flightPayload())
	require.NoError(t, err)
	assert.Empty(t, res.ReceiptURL)
}

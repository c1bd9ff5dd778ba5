package event_test

import (
	"context"
	"errors"
	"testing"

	"tripbook/config"
	"tripbook/infras/kafka"
	kafkaMocks "tripbook/infras/kafka/mocks"
	"tripbook/infras/otel/mocks"
	bookingMocks "tripbook/internal/domains/booking/mocks"
	"tripbook/internal/domains/booking/model"
	"tripbook/transport/event"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	kafka    *kafkaMocks.MockClient
	bookings *bookingMocks.MockBooking
	consumer *event.Consumer
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Kafka.ConsumerGroup = "tripbook-worker"
	cfg.Kafka.Topics.BookingSubmitted = "booking.submitted"

	f := fixture{
		kafka:    kafkaMocks.NewMockClient(ctrl),
		bookings: bookingMocks.NewMockBooking(ctrl),
	}
	f.consumer = event.New(cfg, f.kafka, f.bookings, mocks.NewOtel())

	return f
}

func TestRunDeliversEvents(t *testing.T) {
	f := newFixture(t)

	want := model.BookingSubmittedEvent{BookingID: "b-1", Reference: "TB-ABC123"}
	msg, err := (&kafka.Message{Key: "b-1", Value: want}).ToKafkaMessage()
	require.NoError(t, err)

	f.kafka.EXPECT().Consume(gomock.Any(), "tripbook-worker", "booking.submitted", gomock.Any()).
		DoAndReturn(func(ctx context.Context, _, _ string, handler kafka.Handler) error {
			require.NoError(t, handler(ctx, msg))

			return context.Canceled
		})
	f.bookings.EXPECT().MarkNotified(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, got model.BookingSubmittedEvent) error {
			assert.Equal(t, want.BookingID, got.BookingID)
			assert.Equal(t, want.Reference, got.Reference)

			return nil
		})

	assert.NoError(t, f.consumer.Run(t.Context()))
}

func TestRunReportsBrokerFailure(t *testing.T) {
	f := newFixture(t)

	f.kafka.EXPECT().Consume(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("no brokers"))

	assert.Error(t, f.consumer.Run(t.Context()))
}

func TestHandleBookingSubmitted(t *testing.T) {
	t.Run("malformed message is skipped", func(t *testing.T) {
		f := newFixture(t)

		err := f.consumer.HandleBookingSubmitted(t.Context(), kafkaGo.Message{Value: []byte("{")})
		assert.NoError(t, err)
	})

	t.Run("event without booking id is skipped", func(t *testing.T) {
		f := newFixture(t)

		err := f.consumer.HandleBookingSubmitted(t.Context(), kafkaGo.Message{Value: []byte(`{"reference":"TB-1"}`)})
		assert.NoError(t, err)
	})

	t.Run("service failure is retried", func(t *testing.T) {
		f := newFixture(t)

		f.bookings.EXPECT().MarkNotified(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

		err := f.consumer.HandleBookingSubmitted(t.Context(), kafkaGo.Message{Value: []byte(`{"booking_id":"b-1"}`)})
		assert.Error(t, err)
	})
}

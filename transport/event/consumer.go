package event

import (
	"context"
	"errors"
	"fmt"

	"tripbook/config"
	"tripbook/infras/kafka"
	"tripbook/infras/otel"
	"tripbook/internal/domains/booking/model"
	bookingService "tripbook/internal/domains/booking/service"
	"tripbook/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// Consumer turns booking events into confirmation bookkeeping.
type Consumer struct {
	Config   *config.Config
	Kafka    kafka.Client
	Bookings bookingService.Booking
	Otel     otel.Otel
}

func New(cfg *config.Config, client kafka.Client, bookings bookingService.Booking, otel otel.Otel) *Consumer {
	return &Consumer{
		Config:   cfg,
		Kafka:    client,
		Bookings: bookings,
		Otel:     otel,
	}
}

// Run blocks until ctx is cancelled.
func (c *Consumer) Run(ctx context.Context) error {
	topic := c.Config.Kafka.Topics.BookingSubmitted

	log.Info().Str("topic", topic).Str("group", c.Config.Kafka.ConsumerGroup).Msg("Starting booking event consumer.")

	err := c.Kafka.Consume(ctx, c.Config.Kafka.ConsumerGroup, topic, c.HandleBookingSubmitted)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("failed to consume %s: %w", topic, err)
	}

	return nil
}

// HandleBookingSubmitted marks the booking notified. Malformed messages are skipped so
// they do not block the partition.
func (c *Consumer) HandleBookingSubmitted(ctx context.Context, message kafkaGo.Message) (err error) {
	ctx, scope := c.Otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".HandleBookingSubmitted")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	event, decodeErr := kafka.Decode[model.BookingSubmittedEvent](message)
	if decodeErr != nil {
		log.Error().Err(decodeErr).Str("key", string(message.Key)).Msg("skipping malformed booking event")

		return nil
	}

	if event.BookingID == constant.Empty {
		log.Warn().Str("key", string(message.Key)).Msg("skipping booking event without booking id")

		return nil
	}

	scope.SetAttribute("booking.reference", event.Reference)

	return c.Bookings.MarkNotified(ctx, event) //nolint:wrapcheck
}

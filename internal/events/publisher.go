package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/Akashajay-dot/Velocity-pro-audio/pkg/logger"
	"github.com/Akashajay-dot/Velocity-pro-audio/pkg/model"
)

const (
	EventTypeBookingCreated = "booking.created"

	headerEventID   = "event-id"
	headerEventType = "event-type"
	headerSource    = "source"

	sourceName = "bookings-api"
)

// Publisher emits booking lifecycle events. A nil *Publisher is a disabled
// publisher; every method is safe to call on it.
type Publisher struct {
	writer *kafka.Writer
	log    *logger.Logger
}

func NewPublisher(brokers []string, topic string, log *logger.Logger) *Publisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{}, // key by booking id for per-booking ordering
		RequiredAcks: kafka.RequireAll,
		Compression:  kafka.Snappy,
		MaxAttempts:  3,
		Logger:       kafka.LoggerFunc(func(string, ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			log.Error("Kafka writer error", "error", fmt.Sprintf(msg, args...))
		}),
	}

	return &Publisher{
		writer: writer,
		log:    log,
	}
}

func (p *Publisher) PublishBookingCreated(ctx context.Context, booking *model.Booking) error {
	if p == nil {
		return nil
	}

	payload, err := json.Marshal(booking)
	if err != nil {
		return fmt.Errorf("failed to encode booking event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(booking.ID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: headerEventID, Value: []byte(uuid.NewString())},
			{Key: headerEventType, Value: []byte(EventTypeBookingCreated)},
			{Key: headerSource, Value: []byte(sourceName)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", EventTypeBookingCreated, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}

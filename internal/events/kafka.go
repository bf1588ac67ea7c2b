package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"fleet-rental/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// KafkaPublisher writes booking events to a single topic, keyed by booking ID
// so per-booking ordering is preserved within a partition.
type KafkaPublisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 10 * time.Millisecond,
	}
	return &KafkaPublisher{
		writer: writer,
		logger: logger,
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, eventType, key string, data any) error {
	envelope := Envelope{
		ID:     uuid.New(),
		Type:   eventType,
		Source: eventSource,
		Time:   time.Now().UTC(),
		Data:   data,
	}

	payload, err := json.Marshal(envelope)
	if err != nil {
		return errs.Wrap(err, "failed to marshal event envelope")
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(eventType)},
		},
	})
	if err != nil {
		return errs.Wrap(err, "failed to write event to kafka")
	}

	p.logger.Debug("published booking event",
		"type", eventType,
		"key", key,
	)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

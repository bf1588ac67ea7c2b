package bootstrap

import (
	"context"
	"log/slog"

	"fleet-rental/internal/events"
	"fleet-rental/internal/pkg/config"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewPublisher,
	),
)

// NewPublisher wires the kafka publisher when brokers are configured and
// falls back to a no-op otherwise, so the service runs without a broker.
func NewPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) events.Publisher {
	if len(cfg.Kafka.Brokers) == 0 {
		logger.Info("no kafka brokers configured, booking events disabled")
		return events.NewNoopPublisher()
	}

	publisher := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})

	return publisher
}

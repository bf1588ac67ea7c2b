package bootstrap

import (
	"context"
	"log/slog"

	"fleet-rental/internal/jobs"
	"fleet-rental/internal/pkg/config"
	"fleet-rental/internal/usecase/commands"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewScheduler,
	),
	fx.Invoke(func(*jobs.Scheduler) {}),
)

func NewScheduler(lc fx.Lifecycle, cfg config.Config, bookingCommands commands.BookingCommands, logger *slog.Logger) *jobs.Scheduler {
	sweeper := jobs.NewCompletionSweeper(bookingCommands, logger)
	scheduler := jobs.NewScheduler(cfg.Jobs, sweeper, logger)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			scheduler.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			scheduler.Stop()
			return nil
		},
	})

	return scheduler
}

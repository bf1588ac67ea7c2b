package jobs

import (
	"log/slog"
	"time"

	"fleet-rental/internal/pkg/config"

	"github.com/robfig/cron/v3"
)

// Scheduler owns the cron loop for background jobs.
type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
}

func NewScheduler(cfg config.JobsConfig, sweeper *CompletionSweeper, logger *slog.Logger) *Scheduler {
	// UTC with seconds precision, schedules come straight from config
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron:   c,
		logger: logger,
	}

	if cfg.CompletionEnabled {
		if _, err := c.AddFunc(cfg.CompletionSchedule, sweeper.Run); err != nil {
			logger.Error("failed to register completion sweeper", "schedule", cfg.CompletionSchedule, "error", err.Error())
		} else {
			logger.Info("completion sweeper registered", "schedule", cfg.CompletionSchedule)
		}
	}

	return s
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts scheduling and waits for in-flight jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

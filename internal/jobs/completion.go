package jobs

import (
	"context"
	"log/slog"
	"time"

	"fleet-rental/internal/usecase/commands"
)

// CompletionSweeper moves confirmed bookings whose drop-off has passed into
// completed. It goes through the same transition command as an operator
// action, so the lifecycle table stays the single authority and a racing
// operator cancellation simply wins the compare-and-swap.
type CompletionSweeper struct {
	bookingCommands commands.BookingCommands
	logger          *slog.Logger
}

func NewCompletionSweeper(bookingCommands commands.BookingCommands, logger *slog.Logger) *CompletionSweeper {
	return &CompletionSweeper{
		bookingCommands: bookingCommands,
		logger:          logger,
	}
}

func (s *CompletionSweeper) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	completed, err := s.bookingCommands.CompleteElapsed(ctx)
	if err != nil {
		s.logger.Error("completion sweep failed", "error", err.Error(), "completed_before_failure", completed)
		return
	}
	if completed > 0 {
		s.logger.Info("completion sweep finished", "completed", completed)
	}
}

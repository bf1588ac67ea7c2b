package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"fleet-rental/internal/domain/booking"
	"fleet-rental/internal/events"
	"fleet-rental/internal/infra"
	"fleet-rental/internal/pkg/errs"
	"fleet-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateBookingInput struct {
	VehicleID       uuid.UUID
	CustomerName    string
	CustomerContact string
	PickupAt        time.Time
	DropoffAt       time.Time
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*queries.BookingView, error)
	TransitionBooking(ctx context.Context, id uuid.UUID, target booking.Status) (*queries.BookingView, error)
	// CompleteElapsed moves confirmed bookings whose drop-off has passed to
	// completed; returns how many were completed. Used by the sweeper job.
	CompleteElapsed(ctx context.Context) (int, error)
}

type bookingCommandsImpl struct {
	bookingRepo    BookingRepository
	vehicleRepo    VehicleRepository
	bookingStore   queries.BookingReadStore
	bookingQueries queries.BookingQueries
	factory        *booking.Factory
	publisher      events.Publisher
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	vehicleRepo VehicleRepository,
	bookingStore queries.BookingReadStore,
	bookingQueries queries.BookingQueries,
	factory *booking.Factory,
	publisher events.Publisher,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo:    bookingRepo,
		vehicleRepo:    vehicleRepo,
		bookingStore:   bookingStore,
		bookingQueries: bookingQueries,
		factory:        factory,
		publisher:      publisher,
	}
}

func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, input CreateBookingInput) (*queries.BookingView, error) {
	snapshot, err := c.vehicleRepo.FindByID(ctx, input.VehicleID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrVehicleNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	veh, err := snapshot.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	entity, err := c.factory.NewBooking(veh, booking.Candidate{
		CustomerName:    input.CustomerName,
		CustomerContact: input.CustomerContact,
		PickupAt:        input.PickupAt,
		DropoffAt:       input.DropoffAt,
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := c.bookingRepo.Create(ctx, entity); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	c.publishEvent(ctx, events.TypeBookingCreated, entity.ID(), events.BookingCreatedEvent{
		BookingID:    entity.ID(),
		VehicleID:    entity.VehicleID(),
		CustomerName: entity.CustomerName().String(),
		PickupAt:     entity.Interval().Start(),
		DropoffAt:    entity.Interval().End(),
		TotalCents:   entity.Total().Cents(),
		Currency:     booking.Currency,
		Status:       entity.Status().String(),
	})

	return c.bookingQueries.GetByID(ctx, entity.ID())
}

func (c *bookingCommandsImpl) TransitionBooking(ctx context.Context, id uuid.UUID, target booking.Status) (*queries.BookingView, error) {
	current, err := c.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	next, err := current.Transition(target)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTransition)
	}

	err = c.bookingRepo.UpdateStatus(ctx, id, current.Status(), next.Status())
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.ErrTransitionConflict
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	c.publishEvent(ctx, events.TypeBookingStatusChanged, id, events.BookingStatusChangedEvent{
		BookingID: id,
		From:      current.Status().String(),
		To:        next.Status().String(),
	})

	return c.bookingQueries.GetByID(ctx, id)
}

func (c *bookingCommandsImpl) CompleteElapsed(ctx context.Context) (int, error) {
	cutoff := c.factory.Clock.Now()
	ids, err := c.bookingStore.FindConfirmedEndedBefore(ctx, cutoff)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	completed := 0
	for _, id := range ids {
		_, err := c.TransitionBooking(ctx, id, booking.StatusCompleted)
		if err != nil {
			// A concurrent operator action may have won; skip and move on.
			if errors.Is(err, errs.ErrTransitionConflict) || errors.Is(err, errs.ErrInvalidTransition) {
				slog.Info("skipping booking during completion sweep", "booking_id", id, "reason", err.Error())
				continue
			}
			return completed, err
		}
		completed++
	}
	return completed, nil
}

// Event publishing is best-effort: a broker outage must not fail the booking
// the customer just paid attention to.
func (c *bookingCommandsImpl) publishEvent(ctx context.Context, eventType string, bookingID uuid.UUID, data any) {
	if err := c.publisher.Publish(ctx, eventType, bookingID.String(), data); err != nil {
		slog.Warn("failed to publish booking event",
			"type", eventType,
			"booking_id", bookingID,
			"error", err.Error())
	}
}

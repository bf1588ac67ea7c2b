package commands

import (
	"context"

	"fleet-rental/internal/domain/booking"
	"fleet-rental/internal/domain/vehicle"

	"github.com/google/uuid"
)

// Write-side snapshot prevents dependency on read-side query types (CQRS separation)
type VehicleSnapshot struct {
	ID               uuid.UUID
	Model            string
	Year             int
	Units            int
	Category         string
	DailyRateCents   int64
	WeeklyRateCents  int64
	MonthlyRateCents int64
}

func (s *VehicleSnapshot) ToDomain() (*vehicle.Vehicle, error) {
	return vehicle.NewVehicle(s.ID, s.Model, s.Year, s.Units, s.Category, vehicle.RateCard{
		DailyRateCents:   s.DailyRateCents,
		WeeklyRateCents:  s.WeeklyRateCents,
		MonthlyRateCents: s.MonthlyRateCents,
	})
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// UpdateStatus applies a compare-and-swap on the status column; a
	// concurrent transition that already moved the row away from `from`
	// surfaces as infra.KindConflict.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to booking.Status) error
}

type VehicleRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*VehicleSnapshot, error)
}

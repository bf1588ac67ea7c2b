package repository

import (
	"context"
	"errors"
	"time"

	"fleet-rental/internal/domain/booking"
	"fleet-rental/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	const query = `
		INSERT INTO bookings (
			id, vehicle_id, customer_name, customer_contact,
			pickup_at, dropoff_at, days, total_cents, breakdown, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.pool.Exec(ctx, query,
		b.ID(),
		b.VehicleID(),
		b.CustomerName().String(),
		b.CustomerContact().String(),
		b.Interval().Start(),
		b.Interval().End(),
		b.Days(),
		b.Total().Cents(),
		b.Breakdown(),
		b.Status().String(),
		b.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	const query = `
		SELECT id, vehicle_id, customer_name, customer_contact,
		       pickup_at, dropoff_at, days, total_cents, breakdown, status, created_at
		FROM bookings
		WHERE id = $1`

	var (
		bookingID  uuid.UUID
		vehicleID  uuid.UUID
		name       string
		contact    string
		pickupAt   time.Time
		dropoffAt  time.Time
		days       int
		totalCents int64
		breakdown  string
		status     string
		createdAt  time.Time
	)

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&bookingID, &vehicleID, &name, &contact,
		&pickupAt, &dropoffAt, &days, &totalCents, &breakdown, &status, &createdAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	parsedStatus, err := booking.ParseStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking has unknown status", err)
	}

	return booking.ReconstructBooking(
		bookingID,
		vehicleID,
		booking.ReconstructCustomerName(name),
		booking.ReconstructCustomerContact(contact),
		booking.ReconstructRentalInterval(pickupAt, dropoffAt),
		booking.NewMoney(totalCents),
		days,
		breakdown,
		parsedStatus,
		createdAt,
	), nil
}

// UpdateStatus writes the new status only when the row still holds the
// expected one, so two racing transitions serialize: the loser sees zero rows
// affected and gets a conflict instead of silently overwriting.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to booking.Status) error {
	const query = `
		UPDATE bookings
		SET status = $3, updated_at = now()
		WHERE id = $1 AND status = $2`

	tag, err := r.pool.Exec(ctx, query, id, from.String(), to.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}

	if tag.RowsAffected() == 0 {
		var exists bool
		checkErr := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM bookings WHERE id = $1)`, id).Scan(&exists)
		if checkErr != nil {
			return infra.WrapRepoErr("failed to check booking existence", checkErr)
		}
		if !exists {
			return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
		}
		return infra.WrapRepoErr("booking status changed concurrently", nil, infra.KindConflict)
	}
	return nil
}

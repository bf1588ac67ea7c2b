package readstore

import (
	"context"
	"errors"
	"time"

	"fleet-rental/internal/infra"
	"fleet-rental/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{pool: pool}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	const query = `
		SELECT b.id, b.vehicle_id, v.model, v.year,
		       b.customer_name, b.customer_contact,
		       b.pickup_at, b.dropoff_at, b.days, b.total_cents, b.breakdown,
		       b.status, b.created_at
		FROM bookings b
		JOIN vehicles v ON v.id = b.vehicle_id
		WHERE b.id = $1`

	var view queries.BookingView
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.VehicleID, &view.VehicleModel, &view.VehicleYear,
		&view.CustomerName, &view.CustomerContact,
		&view.PickupAt, &view.DropoffAt, &view.Days, &view.TotalCents, &view.Breakdown,
		&view.Status, &view.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return &view, nil
}

func (r *BookingReadStore) FindAll(ctx context.Context) ([]*queries.BookingListItem, error) {
	const query = `
		SELECT b.id, b.vehicle_id, v.model,
		       b.customer_name, b.pickup_at, b.dropoff_at,
		       b.total_cents, b.status, b.created_at
		FROM bookings b
		JOIN vehicles v ON v.id = b.vehicle_id
		ORDER BY b.created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var result []*queries.BookingListItem
	for rows.Next() {
		var item queries.BookingListItem
		err := rows.Scan(
			&item.ID, &item.VehicleID, &item.VehicleModel,
			&item.CustomerName, &item.PickupAt, &item.DropoffAt,
			&item.TotalCents, &item.Status, &item.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}

	return result, nil
}

func (r *BookingReadStore) FindConfirmedEndedBefore(ctx context.Context, cutoff time.Time) ([]uuid.UUID, error) {
	const query = `
		SELECT id FROM bookings
		WHERE status = 'confirmed' AND dropoff_at < $1
		ORDER BY dropoff_at`

	rows, err := r.pool.Query(ctx, query, cutoff)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list elapsed confirmed bookings", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking ids", err)
	}

	return ids, nil
}

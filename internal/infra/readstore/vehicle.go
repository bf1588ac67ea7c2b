package readstore

import (
	"context"
	"errors"

	"fleet-rental/internal/infra"
	"fleet-rental/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type VehicleReadStore struct {
	pool *pgxpool.Pool
}

func NewVehicleReadStore(pool *pgxpool.Pool) *VehicleReadStore {
	return &VehicleReadStore{pool: pool}
}

func (r *VehicleReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.VehicleView, error) {
	const query = `
		SELECT id, model, year, units, category,
		       daily_rate_cents, weekly_rate_cents, monthly_rate_cents
		FROM vehicles
		WHERE id = $1`

	var view queries.VehicleView
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Model, &view.Year, &view.Units, &view.Category,
		&view.DailyRateCents, &view.WeeklyRateCents, &view.MonthlyRateCents,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find vehicle by ID", err)
	}

	return &view, nil
}

// Newest model years first, then alphabetical, matching the storefront's
// fleet ordering.
func (r *VehicleReadStore) FindAll(ctx context.Context) ([]*queries.VehicleView, error) {
	const query = `
		SELECT id, model, year, units, category,
		       daily_rate_cents, weekly_rate_cents, monthly_rate_cents
		FROM vehicles
		ORDER BY year DESC, model ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vehicles", err)
	}
	defer rows.Close()

	var result []*queries.VehicleView
	for rows.Next() {
		var view queries.VehicleView
		err := rows.Scan(
			&view.ID, &view.Model, &view.Year, &view.Units, &view.Category,
			&view.DailyRateCents, &view.WeeklyRateCents, &view.MonthlyRateCents,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan vehicle row", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate vehicle rows", err)
	}

	return result, nil
}

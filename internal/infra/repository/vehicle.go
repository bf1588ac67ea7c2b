package repository

import (
	"context"
	"errors"

	"fleet-rental/internal/infra"
	"fleet-rental/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type VehicleRepository struct {
	pool *pgxpool.Pool
}

func NewVehicleRepository(pool *pgxpool.Pool) *VehicleRepository {
	return &VehicleRepository{pool: pool}
}

func (r *VehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.VehicleSnapshot, error) {
	const query = `
		SELECT id, model, year, units, category,
		       daily_rate_cents, weekly_rate_cents, monthly_rate_cents
		FROM vehicles
		WHERE id = $1`

	var snapshot commands.VehicleSnapshot
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&snapshot.ID,
		&snapshot.Model,
		&snapshot.Year,
		&snapshot.Units,
		&snapshot.Category,
		&snapshot.DailyRateCents,
		&snapshot.WeeklyRateCents,
		&snapshot.MonthlyRateCents,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find vehicle by ID", err)
	}

	return &snapshot, nil
}

package queries

import (
	"context"
	"time"

	"fleet-rental/internal/domain/booking"
	"fleet-rental/internal/domain/vehicle"
	"fleet-rental/internal/infra"
	"fleet-rental/internal/pkg/errs"

	"github.com/google/uuid"
)

type VehicleView struct {
	ID               uuid.UUID `json:"id"`
	Model            string    `json:"model"`
	Year             int       `json:"year"`
	Units            int       `json:"units"`
	Category         string    `json:"category"`
	DailyRateCents   int64     `json:"daily_rate_cents"`
	WeeklyRateCents  int64     `json:"weekly_rate_cents"`
	MonthlyRateCents int64     `json:"monthly_rate_cents"`
}

// QuoteView is the live price preview the storefront shows while the customer
// picks dates; nothing is persisted.
type QuoteView struct {
	VehicleID  uuid.UUID `json:"vehicle_id"`
	Days       int       `json:"days"`
	TotalCents int64     `json:"total_cents"`
	Breakdown  string    `json:"breakdown"`
}

func (v *VehicleView) RateCard() vehicle.RateCard {
	return vehicle.RateCard{
		DailyRateCents:   v.DailyRateCents,
		WeeklyRateCents:  v.WeeklyRateCents,
		MonthlyRateCents: v.MonthlyRateCents,
	}
}

type VehicleReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*VehicleView, error)
	FindAll(ctx context.Context) ([]*VehicleView, error)
}

type VehicleQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*VehicleView, error)
	ListAll(ctx context.Context) ([]*VehicleView, error)
	QuoteForVehicle(ctx context.Context, id uuid.UUID, pickup, dropoff time.Time) (*QuoteView, error)
}

type vehicleQueriesImpl struct {
	store      VehicleReadStore
	calculator booking.PriceCalculator
}

func NewVehicleQueries(store VehicleReadStore, calculator booking.PriceCalculator) VehicleQueries {
	return &vehicleQueriesImpl{store: store, calculator: calculator}
}

func (q *vehicleQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*VehicleView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrVehicleNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *vehicleQueriesImpl) ListAll(ctx context.Context) ([]*VehicleView, error) {
	return q.store.FindAll(ctx)
}

func (q *vehicleQueriesImpl) QuoteForVehicle(ctx context.Context, id uuid.UUID, pickup, dropoff time.Time) (*QuoteView, error) {
	view, err := q.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	interval, err := booking.NewRentalInterval(pickup, dropoff)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInterval)
	}

	quote, err := q.calculator.Quote(view.RateCard(), interval)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInterval)
	}

	return &QuoteView{
		VehicleID:  view.ID,
		Days:       quote.Days,
		TotalCents: quote.Total.Cents(),
		Breakdown:  quote.Breakdown,
	}, nil
}

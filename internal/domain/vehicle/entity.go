package vehicle

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidRateCard = errors.New("rate card amounts must be strictly positive")
	ErrEmptyModel      = errors.New("vehicle model is required")
)

// RateCard is the daily/weekly/monthly price triple for one rentable unit
// type, in cents. All three must be strictly positive; no ordering between
// tiers is enforced — a weekly rate is allowed to be worse per-day than the
// daily rate.
type RateCard struct {
	DailyRateCents   int64
	WeeklyRateCents  int64
	MonthlyRateCents int64
}

func (rc RateCard) Validate() error {
	if rc.DailyRateCents <= 0 || rc.WeeklyRateCents <= 0 || rc.MonthlyRateCents <= 0 {
		return ErrInvalidRateCard
	}
	return nil
}

// Vehicle is a catalog entry. The catalog is read-only from this service's
// point of view; fleet management happens elsewhere.
type Vehicle struct {
	id       uuid.UUID
	model    string
	year     int
	units    int
	category string
	rateCard RateCard
}

func NewVehicle(id uuid.UUID, model string, year, units int, category string, rateCard RateCard) (*Vehicle, error) {
	model = strings.TrimSpace(model)
	if model == "" {
		return nil, ErrEmptyModel
	}
	if err := rateCard.Validate(); err != nil {
		return nil, err
	}
	if category == "" {
		category = "sedan"
	}
	return &Vehicle{
		id:       id,
		model:    model,
		year:     year,
		units:    units,
		category: category,
		rateCard: rateCard,
	}, nil
}

func (v *Vehicle) ID() uuid.UUID      { return v.id }
func (v *Vehicle) Model() string      { return v.model }
func (v *Vehicle) Year() int          { return v.year }
func (v *Vehicle) Units() int         { return v.units }
func (v *Vehicle) Category() string   { return v.category }
func (v *Vehicle) RateCard() RateCard { return v.rateCard }

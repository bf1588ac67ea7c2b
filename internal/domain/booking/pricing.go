package booking

import (
	"fmt"

	"fleet-rental/internal/domain/vehicle"
)

// Tier boundaries in billable days, half-open and inclusive on the lower
// bound: [1,7) daily, [7,30) weekly, [30,∞) monthly. Day 7 is the first
// weekly day and day 30 the first monthly day — callers may depend on this.
const (
	weeklyTierMinDays  = 7
	monthlyTierMinDays = 30
	daysPerWeek        = 7
	daysPerMonth       = 30
)

// Quote is the priced result for one interval: total in cents, the billable
// day count, and a human-readable breakdown naming the tier and per-day rate.
type Quote struct {
	Total     Money
	Days      int
	Breakdown string
}

// PriceCalculator converts a rate card and a rental interval into a Quote.
type PriceCalculator interface {
	Quote(card vehicle.RateCard, interval RentalInterval) (Quote, error)
}

// TieredPriceCalculator is the standard three-tier calculator.
type TieredPriceCalculator struct{}

func NewTieredPriceCalculator() *TieredPriceCalculator {
	return &TieredPriceCalculator{}
}

func (c *TieredPriceCalculator) Quote(card vehicle.RateCard, interval RentalInterval) (Quote, error) {
	return ComputeQuote(card, interval)
}

// ComputeQuote prices an interval against a rate card. It is pure and
// deterministic: no current-time reads, no side effects.
//
// The day count is the ceiling of the absolute elapsed time in 24-hour days,
// with a minimum of one — a zero-length interval prices as exactly one day
// rather than erroring. Reversed endpoints are tolerated via the absolute
// difference; the creation gate still rejects them before they reach here, so
// the tolerance never hides a form input error. Missing endpoints fail with
// ErrInvalidInterval.
func ComputeQuote(card vehicle.RateCard, interval RentalInterval) (Quote, error) {
	if interval.Start().IsZero() || interval.End().IsZero() {
		return Quote{}, ErrInvalidInterval
	}
	if err := card.Validate(); err != nil {
		return Quote{}, err
	}

	days := interval.Days()

	var total int64
	var breakdown string

	switch {
	case days < weeklyTierMinDays:
		total = card.DailyRateCents * int64(days)
		rate := NewMoney(card.DailyRateCents)
		breakdown = fmt.Sprintf("%d day%s × %s %s/day", days, plural(days), Currency, rate.Format())

	case days < monthlyTierMinDays:
		total = roundHalfUpDiv(card.WeeklyRateCents*int64(days), daysPerWeek)
		perDay := NewMoney(roundHalfUpDiv(card.WeeklyRateCents, daysPerWeek))
		breakdown = fmt.Sprintf("%d days × %s %s/day (weekly rate)", days, Currency, perDay.FormatFixed())

	default:
		total = roundHalfUpDiv(card.MonthlyRateCents*int64(days), daysPerMonth)
		perDay := NewMoney(roundHalfUpDiv(card.MonthlyRateCents, daysPerMonth))
		breakdown = fmt.Sprintf("%d days × %s %s/day (monthly rate)", days, Currency, perDay.FormatFixed())
	}

	return Quote{
		Total:     NewMoney(total),
		Days:      days,
		Breakdown: breakdown,
	}, nil
}

// roundHalfUpDiv divides n by d rounding half-up on the last cent.
func roundHalfUpDiv(n, d int64) int64 {
	q := n / d
	r := n % d
	if 2*r >= d {
		q++
	}
	return q
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

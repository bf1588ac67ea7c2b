//go:build unit

package booking_test

import (
	"testing"
	"time"

	"fleet-rental/internal/domain/booking"
	"fleet-rental/internal/domain/vehicle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCard = vehicle.RateCard{
	DailyRateCents:   10000,  // SAR 100
	WeeklyRateCents:  50000,  // SAR 500
	MonthlyRateCents: 150000, // SAR 1500
}

func intervalOfDays(t *testing.T, days int) booking.RentalInterval {
	t.Helper()
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	interval, err := booking.NewRentalInterval(start, start.Add(time.Duration(days)*24*time.Hour))
	require.NoError(t, err)
	return interval
}

func TestComputeQuote(t *testing.T) {
	t.Run("tier selection and totals", func(t *testing.T) {
		cases := []struct {
			name          string
			days          int
			expectCents   int64
			expectedBreak string
		}{
			{name: "single day", days: 1, expectCents: 10000, expectedBreak: "1 day × SAR 100/day"},
			{name: "mid daily tier", days: 3, expectCents: 30000, expectedBreak: "3 days × SAR 100/day"},
			{name: "last daily day", days: 6, expectCents: 60000, expectedBreak: "6 days × SAR 100/day"},
			{name: "first weekly day", days: 7, expectCents: 50000, expectedBreak: "7 days × SAR 71.43/day (weekly rate)"},
			{name: "ten days weekly", days: 10, expectCents: 71429, expectedBreak: "10 days × SAR 71.43/day (weekly rate)"},
			{name: "last weekly day", days: 29, expectCents: 207143, expectedBreak: "29 days × SAR 71.43/day (weekly rate)"},
			{name: "first monthly day", days: 30, expectCents: 150000, expectedBreak: "30 days × SAR 50.00/day (monthly rate)"},
			{name: "thirty-one days monthly", days: 31, expectCents: 155000, expectedBreak: "31 days × SAR 50.00/day (monthly rate)"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				quote, err := booking.ComputeQuote(testCard, intervalOfDays(t, tc.days))
				require.NoError(t, err)

				assert.Equal(t, tc.days, quote.Days)
				assert.Equal(t, tc.expectCents, quote.Total.Cents())
				assert.Equal(t, tc.expectedBreak, quote.Breakdown)
			})
		}
	})

	t.Run("daily tier is exact for all day counts below seven", func(t *testing.T) {
		for days := 1; days < 7; days++ {
			quote, err := booking.ComputeQuote(testCard, intervalOfDays(t, days))
			require.NoError(t, err)
			assert.Equal(t, testCard.DailyRateCents*int64(days), quote.Total.Cents())
		}
	})

	t.Run("partial day rounds up to a full billable day", func(t *testing.T) {
		start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
		interval, err := booking.NewRentalInterval(start, start.Add(36*time.Hour))
		require.NoError(t, err)

		quote, err := booking.ComputeQuote(testCard, interval)
		require.NoError(t, err)
		assert.Equal(t, 2, quote.Days)
		assert.Equal(t, int64(20000), quote.Total.Cents())
	})

	t.Run("zero-length interval bills as one day, not an error", func(t *testing.T) {
		start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
		interval, err := booking.NewRentalInterval(start, start)
		require.NoError(t, err)

		quote, err := booking.ComputeQuote(testCard, interval)
		require.NoError(t, err)
		assert.Equal(t, 1, quote.Days)
		assert.Equal(t, testCard.DailyRateCents, quote.Total.Cents())
		assert.Equal(t, "1 day × SAR 100/day", quote.Breakdown)
	})

	t.Run("reversed endpoints price as the absolute difference", func(t *testing.T) {
		start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
		forward, err := booking.NewRentalInterval(start, start.Add(10*24*time.Hour))
		require.NoError(t, err)
		reversed, err := booking.NewRentalInterval(start.Add(10*24*time.Hour), start)
		require.NoError(t, err)

		forwardQuote, err := booking.ComputeQuote(testCard, forward)
		require.NoError(t, err)
		reversedQuote, err := booking.ComputeQuote(testCard, reversed)
		require.NoError(t, err)

		assert.Equal(t, forwardQuote, reversedQuote)
	})

	t.Run("missing endpoints fail", func(t *testing.T) {
		_, err := booking.NewRentalInterval(time.Time{}, time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC))
		assert.ErrorIs(t, err, booking.ErrInvalidInterval)

		_, err = booking.ComputeQuote(testCard, booking.RentalInterval{})
		assert.ErrorIs(t, err, booking.ErrInvalidInterval)
	})

	t.Run("non-positive rates are rejected", func(t *testing.T) {
		bad := testCard
		bad.WeeklyRateCents = 0
		_, err := booking.ComputeQuote(bad, intervalOfDays(t, 3))
		assert.ErrorIs(t, err, vehicle.ErrInvalidRateCard)
	})

	t.Run("deterministic for identical inputs", func(t *testing.T) {
		interval := intervalOfDays(t, 12)
		first, err := booking.ComputeQuote(testCard, interval)
		require.NoError(t, err)
		second, err := booking.ComputeQuote(testCard, interval)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("rounding is half-up on the cent", func(t *testing.T) {
		// 1000 * 9 / 7 = 1285.71... cents → 1286
		card := vehicle.RateCard{DailyRateCents: 100, WeeklyRateCents: 1000, MonthlyRateCents: 3000}
		quote, err := booking.ComputeQuote(card, intervalOfDays(t, 9))
		require.NoError(t, err)
		assert.Equal(t, int64(1286), quote.Total.Cents())
	})
}

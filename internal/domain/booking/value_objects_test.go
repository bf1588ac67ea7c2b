//go:build unit

package booking_test

import (
	"strings"
	"testing"
	"time"

	"fleet-rental/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerName(t *testing.T) {
	cases := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "minimum length", input: "Al"},
		{name: "maximum length", input: strings.Repeat("a", booking.MaxNameLength)},
		{name: "trimmed before checking", input: "  Ahmed  "},
		{name: "too short", input: "A", errIs: booking.ErrNameTooShort},
		{name: "whitespace only", input: "   ", errIs: booking.ErrNameTooShort},
		{name: "too long", input: strings.Repeat("a", booking.MaxNameLength+1), errIs: booking.ErrNameTooLong},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			name, err := booking.NewCustomerName(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, strings.TrimSpace(tc.input), name.String())
		})
	}
}

func TestCustomerContact(t *testing.T) {
	cases := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "international format", input: "+966 50 123 4567"},
		{name: "with parentheses and dashes", input: "(050) 123-4567"},
		{name: "minimum length", input: "12345678"},
		{name: "maximum length", input: strings.Repeat("1", booking.MaxContactLength)},
		{name: "too short", input: "1234567", errIs: booking.ErrContactTooShort},
		{name: "too long", input: strings.Repeat("1", booking.MaxContactLength+1), errIs: booking.ErrContactTooLong},
		{name: "letters rejected", input: "05012345ab", errIs: booking.ErrContactInvalid},
		{name: "symbols rejected", input: "0501234#567", errIs: booking.ErrContactInvalid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			contact, err := booking.NewCustomerContact(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, strings.TrimSpace(tc.input), contact.String())
		})
	}
}

func TestRentalIntervalDays(t *testing.T) {
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		duration time.Duration
		expect   int
	}{
		{name: "zero length counts as one day", duration: 0, expect: 1},
		{name: "one hour rounds up", duration: time.Hour, expect: 1},
		{name: "exactly one day", duration: 24 * time.Hour, expect: 1},
		{name: "one day and a second", duration: 24*time.Hour + time.Second, expect: 2},
		{name: "one and a half days", duration: 36 * time.Hour, expect: 2},
		{name: "exactly a week", duration: 7 * 24 * time.Hour, expect: 7},
		{name: "exactly thirty days", duration: 30 * 24 * time.Hour, expect: 30},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			interval, err := booking.NewRentalInterval(start, start.Add(tc.duration))
			require.NoError(t, err)
			assert.Equal(t, tc.expect, interval.Days())
		})
	}

	t.Run("reversed interval measures elapsed time symmetrically", func(t *testing.T) {
		interval, err := booking.NewRentalInterval(start.Add(48*time.Hour), start)
		require.NoError(t, err)
		assert.Equal(t, 2, interval.Days())
		assert.Equal(t, 48*time.Hour, interval.Elapsed())
	})
}

func TestMoneyFormatting(t *testing.T) {
	assert.Equal(t, "100", booking.NewMoney(10000).Format())
	assert.Equal(t, "71.43", booking.NewMoney(7143).Format())
	assert.Equal(t, "50.00", booking.NewMoney(5000).FormatFixed())
	assert.Equal(t, 714.29, booking.NewMoney(71429).Amount())
}

func TestFieldErrors(t *testing.T) {
	fieldErrs := booking.FieldErrors{}
	assert.False(t, fieldErrs.HasErrors())

	fieldErrs.Add("customerName", "too short")
	fieldErrs.Add("customerName", "overwritten message is ignored")
	fieldErrs.Add("pickupDate", "required")

	assert.True(t, fieldErrs.HasErrors())
	assert.Equal(t, "too short", fieldErrs["customerName"])
	assert.Equal(t, "validation failed: customerName: too short; pickupDate: required", fieldErrs.Error())
}

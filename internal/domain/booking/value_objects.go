package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidInterval = errors.New("invalid rental interval")
	ErrNameTooShort    = errors.New("name must be at least 2 characters")
	ErrNameTooLong     = errors.New("name must be 100 characters or fewer")
	ErrContactTooShort = errors.New("contact number must be at least 8 characters")
	ErrContactTooLong  = errors.New("contact number must be 20 characters or fewer")
	ErrContactInvalid  = errors.New("contact number may only contain digits, spaces, +, -, and parentheses")
)

const (
	MinNameLength    = 2
	MaxNameLength    = 100
	MinContactLength = 8
	MaxContactLength = 20
)

// RentalInterval is the pickup/drop-off pair. Both endpoints must be present;
// ordering is not enforced here — the creation gate rejects reversed input,
// while the price calculator tolerates it by taking the absolute difference.
type RentalInterval struct {
	start time.Time
	end   time.Time
}

func NewRentalInterval(start, end time.Time) (RentalInterval, error) {
	if start.IsZero() || end.IsZero() {
		return RentalInterval{}, ErrInvalidInterval
	}
	return RentalInterval{start: start, end: end}, nil
}

// ReconstructRentalInterval rebuilds an interval from persistence data
// without re-validation.
func ReconstructRentalInterval(start, end time.Time) RentalInterval {
	return RentalInterval{start: start, end: end}
}

func (ri RentalInterval) Start() time.Time {
	return ri.start
}

func (ri RentalInterval) End() time.Time {
	return ri.end
}

func (ri RentalInterval) Elapsed() time.Duration {
	d := ri.end.Sub(ri.start)
	if d < 0 {
		d = -d
	}
	return d
}

// Days is the billable day count: ceiling of elapsed wall-clock time in
// 24-hour days, never less than 1. A zero-length interval bills as one day.
func (ri RentalInterval) Days() int {
	const day = 24 * time.Hour
	elapsed := ri.Elapsed()
	days := int((elapsed + day - 1) / day)
	if days < 1 {
		days = 1
	}
	return days
}

func (ri RentalInterval) IsZero() bool {
	return ri.start.IsZero() && ri.end.IsZero()
}

// Currency is fixed for the whole fleet.
const Currency = "SAR"

// Money is an amount in cents of SAR.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Amount() float64 {
	return float64(m.cents) / 100.0
}

// Format renders the amount without trailing zeros for whole values,
// e.g. "100" or "71.43".
func (m Money) Format() string {
	if m.cents%100 == 0 {
		return fmt.Sprintf("%d", m.cents/100)
	}
	return fmt.Sprintf("%.2f", m.Amount())
}

// FormatFixed always renders two decimal places, e.g. "50.00".
func (m Money) FormatFixed() string {
	return fmt.Sprintf("%.2f", m.Amount())
}

type CustomerName struct {
	value string
}

func NewCustomerName(value string) (CustomerName, error) {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) < MinNameLength {
		return CustomerName{}, ErrNameTooShort
	}
	if len(trimmed) > MaxNameLength {
		return CustomerName{}, ErrNameTooLong
	}
	return CustomerName{value: trimmed}, nil
}

// ReconstructCustomerName rebuilds a name from persistence data without
// re-validation.
func ReconstructCustomerName(value string) CustomerName {
	return CustomerName{value: value}
}

func (n CustomerName) String() string {
	return n.value
}

type CustomerContact struct {
	value string
}

func NewCustomerContact(value string) (CustomerContact, error) {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) < MinContactLength {
		return CustomerContact{}, ErrContactTooShort
	}
	if len(trimmed) > MaxContactLength {
		return CustomerContact{}, ErrContactTooLong
	}
	for _, r := range trimmed {
		if !isContactRune(r) {
			return CustomerContact{}, ErrContactInvalid
		}
	}
	return CustomerContact{value: trimmed}, nil
}

// ReconstructCustomerContact rebuilds a contact from persistence data without
// re-validation.
func ReconstructCustomerContact(value string) CustomerContact {
	return CustomerContact{value: value}
}

func (c CustomerContact) String() string {
	return c.value
}

func isContactRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r == '+' || r == '-' || r == ' ' || r == '(' || r == ')':
		return true
	default:
		return false
	}
}

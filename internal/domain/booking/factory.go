package booking

import (
	"errors"
	"time"

	"fleet-rental/internal/domain/vehicle"
	"fleet-rental/internal/pkg/clock"

	"github.com/google/uuid"
)

// Candidate is the raw, untrusted booking request as it arrives from a form.
type Candidate struct {
	CustomerName    string
	CustomerContact string
	PickupAt        time.Time
	DropoffAt       time.Time
}

type Factory struct {
	Clock      clock.Clock
	Calculator PriceCalculator
}

func NewFactory(clk clock.Clock, calculator PriceCalculator) *Factory {
	return &Factory{
		Clock:      clk,
		Calculator: calculator,
	}
}

// NewBooking runs the creation gate: field validation, interval checks, then
// pricing. Failures come back as FieldErrors so every failing field is
// reported at once. On success the booking starts in pending with the quoted
// total locked in.
func (f *Factory) NewBooking(veh *vehicle.Vehicle, candidate Candidate) (*Booking, error) {
	fieldErrs := FieldErrors{}

	name, err := NewCustomerName(candidate.CustomerName)
	if err != nil {
		fieldErrs.Add("customerName", err.Error())
	}

	contact, err := NewCustomerContact(candidate.CustomerContact)
	if err != nil {
		fieldErrs.Add("customerContact", err.Error())
	}

	f.validateDates(candidate, fieldErrs)

	if fieldErrs.HasErrors() {
		return nil, fieldErrs
	}

	interval, err := NewRentalInterval(candidate.PickupAt, candidate.DropoffAt)
	if err != nil {
		return nil, intervalFieldErrors(err)
	}

	quote, err := f.Calculator.Quote(veh.RateCard(), interval)
	if err != nil {
		if errors.Is(err, ErrInvalidInterval) {
			return nil, intervalFieldErrors(err)
		}
		return nil, err
	}

	return &Booking{
		id:              uuid.New(),
		vehicleID:       veh.ID(),
		customerName:    name,
		customerContact: contact,
		interval:        interval,
		total:           quote.Total,
		days:            quote.Days,
		breakdown:       quote.Breakdown,
		status:          StatusPending,
		createdAt:       f.Clock.Now(),
	}, nil
}

func (f *Factory) validateDates(candidate Candidate, fieldErrs FieldErrors) {
	if candidate.PickupAt.IsZero() {
		fieldErrs.Add("pickupDate", "pickup date is required")
	}
	if candidate.DropoffAt.IsZero() {
		fieldErrs.Add("dropoffDate", "drop-off date is required")
	}
	if candidate.PickupAt.IsZero() || candidate.DropoffAt.IsZero() {
		return
	}

	if !candidate.DropoffAt.After(candidate.PickupAt) {
		fieldErrs.Add("dropoffDate", "drop-off must be after pick-up")
	}
	if candidate.PickupAt.Before(f.Clock.Now()) {
		fieldErrs.Add("pickupDate", "pickup date cannot be in the past")
	}
}

func intervalFieldErrors(err error) FieldErrors {
	return FieldErrors{
		"pickupDate":  err.Error(),
		"dropoffDate": err.Error(),
	}
}

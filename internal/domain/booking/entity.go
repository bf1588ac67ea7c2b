package booking

import (
	"time"

	"github.com/google/uuid"
)

// Booking is the aggregate root. The price is captured once at creation and
// never recomputed; transitions produce a new value differing only in status.
type Booking struct {
	id              uuid.UUID
	vehicleID       uuid.UUID
	customerName    CustomerName
	customerContact CustomerContact
	interval        RentalInterval
	total           Money
	days            int
	breakdown       string
	status          Status
	createdAt       time.Time
}

// ReconstructBooking rebuilds a Booking from persistence data without
// re-running creation validation.
func ReconstructBooking(
	id, vehicleID uuid.UUID,
	customerName CustomerName,
	customerContact CustomerContact,
	interval RentalInterval,
	total Money,
	days int,
	breakdown string,
	status Status,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		vehicleID:       vehicleID,
		customerName:    customerName,
		customerContact: customerContact,
		interval:        interval,
		total:           total,
		days:            days,
		breakdown:       breakdown,
		status:          status,
		createdAt:       createdAt,
	}
}

// Transition returns a copy of the booking in the target status. It is a pure
// function of the (current, target) pair: no clock reads, no other field is
// touched. Illegal pairs, including self-transitions, fail with
// *InvalidTransitionError naming both statuses.
func (b *Booking) Transition(target Status) (*Booking, error) {
	if !b.status.CanTransitionTo(target) {
		return nil, &InvalidTransitionError{From: b.status, To: target}
	}
	next := *b
	next.status = target
	return &next, nil
}

func (b *Booking) ID() uuid.UUID                   { return b.id }
func (b *Booking) VehicleID() uuid.UUID            { return b.vehicleID }
func (b *Booking) CustomerName() CustomerName      { return b.customerName }
func (b *Booking) CustomerContact() CustomerContact { return b.customerContact }
func (b *Booking) Interval() RentalInterval        { return b.interval }
func (b *Booking) Total() Money                    { return b.total }
func (b *Booking) Days() int                       { return b.days }
func (b *Booking) Breakdown() string               { return b.breakdown }
func (b *Booking) Status() Status                  { return b.status }
func (b *Booking) CreatedAt() time.Time            { return b.createdAt }

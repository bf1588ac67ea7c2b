//go:build unit || integration

package builder

import (
	"time"

	"fleet-rental/internal/domain/booking"
	"fleet-rental/internal/domain/vehicle"
	"fleet-rental/internal/pkg/clock"

	"github.com/google/uuid"
)

// BaseTime is the frozen submission moment shared by booking tests.
var BaseTime = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

// BookingBuilder assembles a valid booking candidate; tests mutate single
// fields to probe one validation rule at a time.
type BookingBuilder struct {
	vehicleID uuid.UUID
	model     string
	year      int
	units     int
	category  string
	rateCard  vehicle.RateCard
	candidate booking.Candidate
	clock     *clock.MockClock
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		vehicleID: uuid.New(),
		model:     "Toyota Camry",
		year:      2024,
		units:     3,
		category:  "sedan",
		rateCard: vehicle.RateCard{
			DailyRateCents:   10000,  // SAR 100
			WeeklyRateCents:  50000,  // SAR 500
			MonthlyRateCents: 150000, // SAR 1500
		},
		candidate: booking.Candidate{
			CustomerName:    "Ahmed Al-Rashid",
			CustomerContact: "+966 50 123 4567",
			PickupAt:        BaseTime.Add(24 * time.Hour),
			DropoffAt:       BaseTime.Add(24 * time.Hour).Add(3 * 24 * time.Hour),
		},
		clock: clock.NewMockClock(BaseTime),
	}
}

func (b *BookingBuilder) WithName(name string) *BookingBuilder {
	b.candidate.CustomerName = name
	return b
}

func (b *BookingBuilder) WithContact(contact string) *BookingBuilder {
	b.candidate.CustomerContact = contact
	return b
}

func (b *BookingBuilder) WithPickup(t time.Time) *BookingBuilder {
	b.candidate.PickupAt = t
	return b
}

func (b *BookingBuilder) WithDropoff(t time.Time) *BookingBuilder {
	b.candidate.DropoffAt = t
	return b
}

func (b *BookingBuilder) WithRates(daily, weekly, monthly int64) *BookingBuilder {
	b.rateCard = vehicle.RateCard{
		DailyRateCents:   daily,
		WeeklyRateCents:  weekly,
		MonthlyRateCents: monthly,
	}
	return b
}

func (b *BookingBuilder) WithDuration(d time.Duration) *BookingBuilder {
	b.candidate.DropoffAt = b.candidate.PickupAt.Add(d)
	return b
}

func (b *BookingBuilder) Clock() *clock.MockClock {
	return b.clock
}

func (b *BookingBuilder) Candidate() booking.Candidate {
	return b.candidate
}

func (b *BookingBuilder) Vehicle() *vehicle.Vehicle {
	veh, err := vehicle.NewVehicle(b.vehicleID, b.model, b.year, b.units, b.category, b.rateCard)
	if err != nil {
		panic("builder produced invalid vehicle: " + err.Error())
	}
	return veh
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	factory := booking.NewFactory(b.clock, booking.NewTieredPriceCalculator())
	return factory.NewBooking(b.Vehicle(), b.candidate)
}

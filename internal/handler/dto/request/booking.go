package request

import (
	"time"

	"fleet-rental/internal/domain/booking"
	"fleet-rental/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	VehicleID       uuid.UUID `json:"vehicle_id" binding:"required"`
	CustomerName    string    `json:"customer_name" binding:"required"`
	CustomerContact string    `json:"customer_contact" binding:"required"`
	PickupAt        time.Time `json:"pickup_at" binding:"required"`
	DropoffAt       time.Time `json:"dropoff_at" binding:"required"`
}

func (r CreateBookingRequest) ToInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		VehicleID:       r.VehicleID,
		CustomerName:    r.CustomerName,
		CustomerContact: r.CustomerContact,
		PickupAt:        r.PickupAt,
		DropoffAt:       r.DropoffAt,
	}
}

type TransitionBookingRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r TransitionBookingRequest) TargetStatus() (booking.Status, error) {
	return booking.ParseStatus(r.Status)
}

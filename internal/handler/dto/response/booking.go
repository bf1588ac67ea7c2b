package response

import (
	"time"

	"fleet-rental/internal/domain/booking"
	"fleet-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID              uuid.UUID `json:"id"`
	VehicleID       uuid.UUID `json:"vehicleId"`
	VehicleModel    string    `json:"vehicleModel"`
	VehicleYear     int       `json:"vehicleYear"`
	CustomerName    string    `json:"customerName"`
	CustomerContact string    `json:"customerContact"`
	PickupAt        time.Time `json:"pickupAt"`
	DropoffAt       time.Time `json:"dropoffAt"`
	Days            int       `json:"days"`
	TotalCents      int64     `json:"totalCents"`
	Currency        string    `json:"currency"`
	Breakdown       string    `json:"breakdown"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

type BookingListResponse struct {
	ID           uuid.UUID `json:"id"`
	VehicleID    uuid.UUID `json:"vehicleId"`
	VehicleModel string    `json:"vehicleModel"`
	CustomerName string    `json:"customerName"`
	PickupAt     time.Time `json:"pickupAt"`
	DropoffAt    time.Time `json:"dropoffAt"`
	TotalCents   int64     `json:"totalCents"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

func FromBookingView(bm *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:              bm.ID,
		VehicleID:       bm.VehicleID,
		VehicleModel:    bm.VehicleModel,
		VehicleYear:     bm.VehicleYear,
		CustomerName:    bm.CustomerName,
		CustomerContact: bm.CustomerContact,
		PickupAt:        bm.PickupAt,
		DropoffAt:       bm.DropoffAt,
		Days:            bm.Days,
		TotalCents:      bm.TotalCents,
		Currency:        booking.Currency,
		Breakdown:       bm.Breakdown,
		Status:          bm.Status,
		CreatedAt:       bm.CreatedAt,
	}
}

func FromBookingListItem(bm *queries.BookingListItem) *BookingListResponse {
	return &BookingListResponse{
		ID:           bm.ID,
		VehicleID:    bm.VehicleID,
		VehicleModel: bm.VehicleModel,
		CustomerName: bm.CustomerName,
		PickupAt:     bm.PickupAt,
		DropoffAt:    bm.DropoffAt,
		TotalCents:   bm.TotalCents,
		Status:       bm.Status,
		CreatedAt:    bm.CreatedAt,
	}
}

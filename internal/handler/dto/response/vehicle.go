package response

import (
	"fleet-rental/internal/domain/booking"
	"fleet-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type VehicleResponse struct {
	ID               uuid.UUID `json:"id"`
	Model            string    `json:"model"`
	Year             int       `json:"year"`
	Units            int       `json:"units"`
	Category         string    `json:"category"`
	DailyRateCents   int64     `json:"dailyRateCents"`
	WeeklyRateCents  int64     `json:"weeklyRateCents"`
	MonthlyRateCents int64     `json:"monthlyRateCents"`
	Currency         string    `json:"currency"`
}

type QuoteResponse struct {
	VehicleID  uuid.UUID `json:"vehicleId"`
	Days       int       `json:"days"`
	TotalCents int64     `json:"totalCents"`
	Currency   string    `json:"currency"`
	Breakdown  string    `json:"breakdown"`
}

func FromVehicleView(vm *queries.VehicleView) *VehicleResponse {
	return &VehicleResponse{
		ID:               vm.ID,
		Model:            vm.Model,
		Year:             vm.Year,
		Units:            vm.Units,
		Category:         vm.Category,
		DailyRateCents:   vm.DailyRateCents,
		WeeklyRateCents:  vm.WeeklyRateCents,
		MonthlyRateCents: vm.MonthlyRateCents,
		Currency:         booking.Currency,
	}
}

func FromQuoteView(qm *queries.QuoteView) *QuoteResponse {
	return &QuoteResponse{
		VehicleID:  qm.VehicleID,
		Days:       qm.Days,
		TotalCents: qm.TotalCents,
		Currency:   booking.Currency,
		Breakdown:  qm.Breakdown,
	}
}

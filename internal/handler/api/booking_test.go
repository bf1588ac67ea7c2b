//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"fleet-rental/internal/domain/booking"
	"fleet-rental/internal/handler/api"
	resdto "fleet-rental/internal/handler/dto/response"
	"fleet-rental/internal/pkg/errs"
	"fleet-rental/internal/usecase/queries"
	"fleet-rental/tests/common/builder"
	"fleet-rental/tests/common/httptest"
	"fleet-rental/tests/common/testutil"
	commandsmock "fleet-rental/tests/mock/commands"
	queriesmock "fleet-rental/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/bookings", s.handler.CreateBooking)
	s.router.GET("/bookings/:id", s.handler.GetBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) validRequestBody() map[string]any {
	c := builder.NewBookingBuilder().Candidate()
	return map[string]any{
		"vehicle_id":       uuid.New().String(),
		"customer_name":    c.CustomerName,
		"customer_contact": c.CustomerContact,
		"pickup_at":        c.PickupAt.Format(time.RFC3339),
		"dropoff_at":       c.DropoffAt.Format(time.RFC3339),
	}
}

func (s *BookingHandlerTestSuite) sampleView() *queries.BookingView {
	return &queries.BookingView{
		ID:              uuid.New(),
		VehicleID:       uuid.New(),
		VehicleModel:    "Toyota Camry",
		VehicleYear:     2024,
		CustomerName:    "Ahmed Al-Rashid",
		CustomerContact: "+966 50 123 4567",
		PickupAt:        builder.BaseTime.Add(24 * time.Hour),
		DropoffAt:       builder.BaseTime.Add(4 * 24 * time.Hour),
		Days:            3,
		TotalCents:      30000,
		Breakdown:       "3 days × SAR 100/day",
		Status:          "pending",
		CreatedAt:       builder.BaseTime,
	}
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	s.Run("success: returns 201 Created with locked quote", func() {
		view := s.sampleView()
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.validRequestBody(), "")

		var resp resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal(view.ID, resp.ID)
		s.Equal("pending", resp.Status)
		s.Equal(int64(30000), resp.TotalCents)
		s.Equal("SAR", resp.Currency)
		s.Equal("3 days × SAR 100/day", resp.Breakdown)
	})

	s.Run("missing required fields: returns 400", func() {
		for _, field := range []string{"vehicle_id", "customer_name", "customer_contact", "pickup_at", "dropoff_at"} {
			body := s.validRequestBody()
			testutil.Field(field, nil)(body)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
		}
	})

	s.Run("malformed JSON: returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, "not-json", "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("unknown vehicle: returns 404", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrVehicleNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.validRequestBody(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Vehicle not found")
	})

	s.Run("validation failure: returns 422 with field map", func() {
		fieldErrs := booking.FieldErrors{
			"customerName": "name must be at least 2 characters",
			"pickupDate":   "pickup date cannot be in the past",
		}
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(nil, fieldErrs).Times(1)

		body := s.validRequestBody()
		testutil.Field("customer_name", "A")(body)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusUnprocessableEntity, rec.Code)

		var resp struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
			Detail map[string]string `json:"detail"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Equal("Validation failed", resp.Error.Message)
		s.Equal("name must be at least 2 characters", resp.Detail["customerName"])
		s.Equal("pickup date cannot be in the past", resp.Detail["pickupDate"])
	})

	s.Run("internal error: returns 500 without leaking detail", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrDatabaseOperationFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.validRequestBody(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
		s.False(strings.Contains(rec.Body.String(), "database"))
	})
}

// ================================================================================
// TestGetBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	s.Run("success: returns 200 with booking", func() {
		view := s.sampleView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "")

		var resp resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(view.ID, resp.ID)
		s.Equal(3, resp.Days)
	})

	s.Run("invalid uuid: returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID format")
	})

	s.Run("unknown booking: returns 404", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

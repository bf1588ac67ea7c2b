//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fleet-rental/internal/domain/booking"
	"fleet-rental/internal/events"
	"fleet-rental/internal/infra"
	"fleet-rental/internal/pkg/clock"
	"fleet-rental/internal/pkg/errs"
	"fleet-rental/internal/usecase/commands"
	"fleet-rental/internal/usecase/queries"
	"fleet-rental/tests/common/builder"
	commandsmock "fleet-rental/tests/mock/commands"
	queriesmock "fleet-rental/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockBookingRepo *commandsmock.MockBookingRepository
	mockVehicleRepo *commandsmock.MockVehicleRepository
	mockStore       *queriesmock.MockBookingReadStore
	mockQueries     *queriesmock.MockBookingQueries
	clock           *clock.MockClock
	commands        commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockBookingRepo = commandsmock.NewMockBookingRepository(s.mockCtrl)
	s.mockVehicleRepo = commandsmock.NewMockVehicleRepository(s.mockCtrl)
	s.mockStore = queriesmock.NewMockBookingReadStore(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.clock = clock.NewMockClock(builder.BaseTime)

	factory := booking.NewFactory(s.clock, booking.NewTieredPriceCalculator())
	s.commands = commands.NewBookingCommands(
		s.mockBookingRepo,
		s.mockVehicleRepo,
		s.mockStore,
		s.mockQueries,
		factory,
		events.NewNoopPublisher(),
	)
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) vehicleSnapshot(id uuid.UUID) *commands.VehicleSnapshot {
	return &commands.VehicleSnapshot{
		ID:               id,
		Model:            "Toyota Camry",
		Year:             2024,
		Units:            3,
		Category:         "sedan",
		DailyRateCents:   10000,
		WeeklyRateCents:  50000,
		MonthlyRateCents: 150000,
	}
}

func (s *BookingCommandsTestSuite) createInput(vehicleID uuid.UUID) commands.CreateBookingInput {
	c := builder.NewBookingBuilder().Candidate()
	return commands.CreateBookingInput{
		VehicleID:       vehicleID,
		CustomerName:    c.CustomerName,
		CustomerContact: c.CustomerContact,
		PickupAt:        c.PickupAt,
		DropoffAt:       c.DropoffAt,
	}
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingCommandsTestSuite) TestCreateBooking() {
	ctx := context.Background()

	s.Run("persists a pending booking with the locked quote", func() {
		vehicleID := uuid.New()
		s.mockVehicleRepo.EXPECT().FindByID(ctx, vehicleID).
			Return(s.vehicleSnapshot(vehicleID), nil).Times(1)

		var created *booking.Booking
		s.mockBookingRepo.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, b *booking.Booking) error {
				created = b
				return nil
			}).Times(1)

		s.mockQueries.EXPECT().GetByID(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
				return &queries.BookingView{ID: id, Status: "pending"}, nil
			}).Times(1)

		view, err := s.commands.CreateBooking(ctx, s.createInput(vehicleID))
		s.Require().NoError(err)
		s.Require().NotNil(created)
		s.Equal(created.ID(), view.ID)
		s.Equal(booking.StatusPending, created.Status())
		s.Equal(int64(30000), created.Total().Cents())
		s.Equal("3 days × SAR 100/day", created.Breakdown())
	})

	s.Run("unknown vehicle maps to ErrVehicleNotFound", func() {
		vehicleID := uuid.New()
		s.mockVehicleRepo.EXPECT().FindByID(ctx, vehicleID).
			Return(nil, infra.WrapRepoErr("vehicle not found", nil, infra.KindNotFound)).Times(1)

		_, err := s.commands.CreateBooking(ctx, s.createInput(vehicleID))
		s.ErrorIs(err, errs.ErrVehicleNotFound)
	})

	s.Run("invalid fields surface as FieldErrors without touching the repo", func() {
		vehicleID := uuid.New()
		s.mockVehicleRepo.EXPECT().FindByID(ctx, vehicleID).
			Return(s.vehicleSnapshot(vehicleID), nil).Times(1)

		input := s.createInput(vehicleID)
		input.CustomerName = "A"
		input.PickupAt = builder.BaseTime.Add(-48 * time.Hour)

		_, err := s.commands.CreateBooking(ctx, input)
		s.Require().Error(err)

		var fieldErrs booking.FieldErrors
		s.Require().True(errors.As(err, &fieldErrs))
		s.Contains(fieldErrs, "customerName")
		s.Contains(fieldErrs, "pickupDate")
		s.ErrorIs(err, errs.ErrDomainValidation)
	})
}

// ================================================================================
// TestTransitionBooking
// ================================================================================

func (s *BookingCommandsTestSuite) TestTransitionBooking() {
	ctx := context.Background()

	pendingBooking := func() *booking.Booking {
		b, err := builder.NewBookingBuilder().BuildDomain()
		s.Require().NoError(err)
		return b
	}

	s.Run("pending to confirmed uses a status compare-and-swap", func() {
		b := pendingBooking()
		s.mockBookingRepo.EXPECT().FindByID(ctx, b.ID()).Return(b, nil).Times(1)
		s.mockBookingRepo.EXPECT().
			UpdateStatus(ctx, b.ID(), booking.StatusPending, booking.StatusConfirmed).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(ctx, b.ID()).
			Return(&queries.BookingView{ID: b.ID(), Status: "confirmed"}, nil).Times(1)

		view, err := s.commands.TransitionBooking(ctx, b.ID(), booking.StatusConfirmed)
		s.Require().NoError(err)
		s.Equal("confirmed", view.Status)
	})

	s.Run("illegal transition is rejected before hitting storage", func() {
		b := pendingBooking()
		s.mockBookingRepo.EXPECT().FindByID(ctx, b.ID()).Return(b, nil).Times(1)

		_, err := s.commands.TransitionBooking(ctx, b.ID(), booking.StatusCompleted)
		s.Require().Error(err)

		var transitionErr *booking.InvalidTransitionError
		s.Require().True(errors.As(err, &transitionErr))
		s.Equal(booking.StatusPending, transitionErr.From)
		s.Equal(booking.StatusCompleted, transitionErr.To)
	})

	s.Run("lost compare-and-swap maps to ErrTransitionConflict", func() {
		b := pendingBooking()
		s.mockBookingRepo.EXPECT().FindByID(ctx, b.ID()).Return(b, nil).Times(1)
		s.mockBookingRepo.EXPECT().
			UpdateStatus(ctx, b.ID(), booking.StatusPending, booking.StatusCancelled).
			Return(infra.WrapRepoErr("status changed concurrently", nil, infra.KindConflict)).Times(1)

		_, err := s.commands.TransitionBooking(ctx, b.ID(), booking.StatusCancelled)
		s.ErrorIs(err, errs.ErrTransitionConflict)
	})

	s.Run("unknown booking maps to ErrBookingNotFound", func() {
		id := uuid.New()
		s.mockBookingRepo.EXPECT().FindByID(ctx, id).
			Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)).Times(1)

		_, err := s.commands.TransitionBooking(ctx, id, booking.StatusConfirmed)
		s.ErrorIs(err, errs.ErrBookingNotFound)
	})
}

// ================================================================================
// TestCompleteElapsed
// ================================================================================

func (s *BookingCommandsTestSuite) TestCompleteElapsed() {
	ctx := context.Background()

	confirmedBooking := func() *booking.Booking {
		b, err := builder.NewBookingBuilder().BuildDomain()
		s.Require().NoError(err)
		confirmed, err := b.Transition(booking.StatusConfirmed)
		s.Require().NoError(err)
		return confirmed
	}

	s.Run("completes every elapsed confirmed booking", func() {
		first := confirmedBooking()
		second := confirmedBooking()
		ids := []uuid.UUID{first.ID(), second.ID()}

		s.mockStore.EXPECT().FindConfirmedEndedBefore(ctx, builder.BaseTime).
			Return(ids, nil).Times(1)

		for _, b := range []*booking.Booking{first, second} {
			s.mockBookingRepo.EXPECT().FindByID(ctx, b.ID()).Return(b, nil).Times(1)
			s.mockBookingRepo.EXPECT().
				UpdateStatus(ctx, b.ID(), booking.StatusConfirmed, booking.StatusCompleted).
				Return(nil).Times(1)
			s.mockQueries.EXPECT().GetByID(ctx, b.ID()).
				Return(&queries.BookingView{ID: b.ID(), Status: "completed"}, nil).Times(1)
		}

		count, err := s.commands.CompleteElapsed(ctx)
		s.Require().NoError(err)
		s.Equal(2, count)
	})

	s.Run("skips bookings that lost the race and keeps sweeping", func() {
		winner := confirmedBooking()
		loser := confirmedBooking()

		s.mockStore.EXPECT().FindConfirmedEndedBefore(ctx, builder.BaseTime).
			Return([]uuid.UUID{loser.ID(), winner.ID()}, nil).Times(1)

		s.mockBookingRepo.EXPECT().FindByID(ctx, loser.ID()).Return(loser, nil).Times(1)
		s.mockBookingRepo.EXPECT().
			UpdateStatus(ctx, loser.ID(), booking.StatusConfirmed, booking.StatusCompleted).
			Return(infra.WrapRepoErr("status changed concurrently", nil, infra.KindConflict)).Times(1)

		s.mockBookingRepo.EXPECT().FindByID(ctx, winner.ID()).Return(winner, nil).Times(1)
		s.mockBookingRepo.EXPECT().
			UpdateStatus(ctx, winner.ID(), booking.StatusConfirmed, booking.StatusCompleted).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(ctx, winner.ID()).
			Return(&queries.BookingView{ID: winner.ID(), Status: "completed"}, nil).Times(1)

		count, err := s.commands.CompleteElapsed(ctx)
		s.Require().NoError(err)
		s.Equal(1, count)
	})
}

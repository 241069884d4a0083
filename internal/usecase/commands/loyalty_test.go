//go:build unit

package commands_test

import (
	"context"
	"testing"

	"hotel-booking-api/internal/domain/reservation"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase/commands"
	"hotel-booking-api/internal/usecase/shared"
	"hotel-booking-api/tests/common/builder"
	sharedmock "hotel-booking-api/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LoyaltyCommandsTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockUow       *sharedmock.MockUnitOfWork
	mockTx        *sharedmock.MockTx
	mockReads     *sharedmock.MockCommandReads
	mockGuestRepo *sharedmock.MockGuestRepository
	commands      commands.LoyaltyCommands
}

func (s *LoyaltyCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUow = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.mockTx = sharedmock.NewMockTx(s.mockCtrl)
	s.mockReads = sharedmock.NewMockCommandReads(s.mockCtrl)
	s.mockGuestRepo = sharedmock.NewMockGuestRepository(s.mockCtrl)

	s.mockUow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.mockTx)
		}).AnyTimes()
	s.mockTx.EXPECT().Reads().Return(s.mockReads).AnyTimes()
	s.mockTx.EXPECT().Guests().Return(s.mockGuestRepo).AnyTimes()
	s.mockTx.EXPECT().DB().Return(nil).AnyTimes()

	s.commands = commands.NewLoyaltyCommands(s.mockUow)
}

func (s *LoyaltyCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLoyaltyCommandsSuite(t *testing.T) {
	suite.Run(t, new(LoyaltyCommandsTestSuite))
}

func (s *LoyaltyCommandsTestSuite) TestAccruePoints() {
	s.Run("success: one point per currency unit of the invoice, rounded", func() {
		guestB := builder.NewGuestBuilder().WithPoints(50)
		resB := builder.NewReservationBuilder().WithGuestID(guestB.ID).WithStatus(reservation.StatusCompleted)

		s.mockReads.EXPECT().ReservationByID(gomock.Any(), resB.ID).Return(resB.BuildSnapshot(), nil)
		s.mockReads.EXPECT().InvoiceByReservationID(gomock.Any(), resB.ID).Return(&shared.InvoiceSnapshot{
			ID: uuid.New(), ReservationID: resB.ID, Total: 193.20, PaymentStatus: "pending",
		}, nil)
		s.mockReads.EXPECT().GuestByID(gomock.Any(), guestB.ID).Return(guestB.BuildSnapshot(), nil)
		s.mockGuestRepo.EXPECT().UpdatePoints(gomock.Any(), gomock.Any(), guestB.ID, 243).Return(nil)

		result, err := s.commands.AccruePoints(context.Background(), resB.ID)
		s.Require().NoError(err)
		s.Equal(guestB.ID, result.GuestID)
		s.Equal(193, result.Earned)
		s.Equal(243, result.Balance)
	})

	s.Run("only completed stays accrue", func() {
		for _, status := range []reservation.Status{
			reservation.StatusPending,
			reservation.StatusConfirmed,
			reservation.StatusCancelled,
		} {
			resB := builder.NewReservationBuilder().WithStatus(status)
			s.mockReads.EXPECT().ReservationByID(gomock.Any(), resB.ID).Return(resB.BuildSnapshot(), nil)

			_, err := s.commands.AccruePoints(context.Background(), resB.ID)
			s.Require().ErrorIs(err, errs.ErrInvalidState, "status %s", status)
		}
	})

	s.Run("unknown reservation", func() {
		id := uuid.New()
		s.mockReads.EXPECT().ReservationByID(gomock.Any(), id).Return(nil, notFoundErr())

		_, err := s.commands.AccruePoints(context.Background(), id)
		s.Require().ErrorIs(err, errs.ErrReservationNotFound)
	})
}

func (s *LoyaltyCommandsTestSuite) TestRedeemPoints() {
	s.Run("success: balance decreases", func() {
		guestB := builder.NewGuestBuilder().WithPoints(100)

		s.mockReads.EXPECT().GuestByID(gomock.Any(), guestB.ID).Return(guestB.BuildSnapshot(), nil)
		s.mockGuestRepo.EXPECT().UpdatePoints(gomock.Any(), gomock.Any(), guestB.ID, 40).Return(nil)

		result, err := s.commands.RedeemPoints(context.Background(), guestB.ID, 60)
		s.Require().NoError(err)
		s.Equal(60, result.Redeemed)
		s.Equal(40, result.Balance)
	})

	s.Run("redeeming beyond the balance", func() {
		guestB := builder.NewGuestBuilder().WithPoints(10)
		s.mockReads.EXPECT().GuestByID(gomock.Any(), guestB.ID).Return(guestB.BuildSnapshot(), nil)

		_, err := s.commands.RedeemPoints(context.Background(), guestB.ID, 11)
		s.Require().ErrorIs(err, errs.ErrInvalidAmount)
	})

	s.Run("unknown guest", func() {
		id := uuid.New()
		s.mockReads.EXPECT().GuestByID(gomock.Any(), id).Return(nil, notFoundErr())

		_, err := s.commands.RedeemPoints(context.Background(), id, 10)
		s.Require().ErrorIs(err, errs.ErrGuestNotFound)
	})
}

//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/pkg/ptr"
	"hotel-booking-api/internal/usecase/queries"
	"hotel-booking-api/tests/common/builder"
	queriesmock "hotel-booking-api/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationQueriesTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockRepo    *queriesmock.MockReservationViewRepo
	mockRooms   *queriesmock.MockRoomViewRepo
	mockTariffs *queriesmock.MockTariffViewRepo
	queries     queries.ReservationQueries
}

func (s *ReservationQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = queriesmock.NewMockReservationViewRepo(s.mockCtrl)
	s.mockRooms = queriesmock.NewMockRoomViewRepo(s.mockCtrl)
	s.mockTariffs = queriesmock.NewMockTariffViewRepo(s.mockCtrl)

	s.queries = queries.NewReservationQueries(s.mockRepo, s.mockRooms, s.mockTariffs)
}

func (s *ReservationQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationQueriesSuite(t *testing.T) {
	suite.Run(t, new(ReservationQueriesTestSuite))
}

func (s *ReservationQueriesTestSuite) TestGetByID() {
	s.Run("success", func() {
		view := builder.NewReservationBuilder().BuildView()
		s.mockRepo.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		actual, err := s.queries.GetByID(context.Background(), view.ID)
		s.Require().NoError(err)
		s.Equal(view, actual)
	})

	s.Run("not found", func() {
		id := uuid.New()
		s.mockRepo.EXPECT().FindByID(gomock.Any(), id).Return(nil, notFoundErr())

		_, err := s.queries.GetByID(context.Background(), id)
		s.Require().ErrorIs(err, errs.ErrReservationNotFound)
	})
}

func (s *ReservationQueriesTestSuite) TestBreakdown() {
	s.Run("nightly lines reconcile against the stored room total", func() {
		roomB := builder.NewRoomBuilder().WithRate(80, -30)
		roomView := roomB.BuildView()
		resB := builder.NewReservationBuilder().WithRoomID(roomB.ID).WithRoomTotal(168.00)
		view := resB.BuildView()
		view.InvoiceTotal = ptr.To(179.20)

		s.mockRepo.EXPECT().FindByID(gomock.Any(), resB.ID).Return(view, nil)
		s.mockRooms.EXPECT().FindByID(gomock.Any(), roomB.ID).Return(&roomView, nil)
		s.mockTariffs.EXPECT().List(gomock.Any(), gomock.Any()).Return(tariffViews(roomB), nil)

		breakdown, err := s.queries.Breakdown(context.Background(), resB.ID)
		s.Require().NoError(err)

		s.Require().Len(breakdown.Nights, 3)
		var sum float64
		for i, line := range breakdown.Nights {
			s.Equal(resB.CheckIn.AddDate(0, 0, i), line.Date)
			sum += line.Amount
		}
		s.InDelta(168.00, sum, 1e-9)
		s.InDelta(168.00, breakdown.RoomTotal, 1e-9)
		// Invoice total wins as the grand total once a surcharge landed.
		s.InDelta(179.20, breakdown.GrandTotal, 1e-9)
	})

	s.Run("vanished room falls back to an even split", func() {
		resB := builder.NewReservationBuilder().WithRoomTotal(100.00)
		view := resB.BuildView()

		s.mockRepo.EXPECT().FindByID(gomock.Any(), resB.ID).Return(view, nil)
		s.mockRooms.EXPECT().FindByID(gomock.Any(), resB.RoomID).Return(nil, notFoundErr())

		breakdown, err := s.queries.Breakdown(context.Background(), resB.ID)
		s.Require().NoError(err)

		s.Require().Len(breakdown.Nights, 3)
		var sum float64
		for _, line := range breakdown.Nights {
			sum += line.Amount
		}
		s.InDelta(100.00, sum, 1e-9)
	})
}

func (s *ReservationQueriesTestSuite) TestPendingCheckInsWithin() {
	from := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	until := from.Add(48 * time.Hour)

	expected := []queries.PendingCheckInView{{
		ID:         uuid.New(),
		Code:       "R-20250301120000-A1B2C3",
		GuestName:  "Maria Santos",
		HotelName:  "Grand Plaza",
		RoomNumber: 101,
		CheckIn:    from.Add(24 * time.Hour),
	}}
	s.mockRepo.EXPECT().PendingCheckIns(gomock.Any(), from, until).Return(expected, nil)

	actual, err := s.queries.PendingCheckInsWithin(context.Background(), from, until)
	s.Require().NoError(err)
	s.Equal(expected, actual)
}

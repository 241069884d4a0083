//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase/queries"
	"hotel-booking-api/tests/common/builder"
	queriesmock "hotel-booking-api/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SearchQueriesTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockRooms   *queriesmock.MockRoomViewRepo
	mockTariffs *queriesmock.MockTariffViewRepo
	mockStays   *queriesmock.MockStayWindowRepo
	mockCache   *queriesmock.MockSearchCache
	queries     queries.SearchQueries
}

func (s *SearchQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRooms = queriesmock.NewMockRoomViewRepo(s.mockCtrl)
	s.mockTariffs = queriesmock.NewMockTariffViewRepo(s.mockCtrl)
	s.mockStays = queriesmock.NewMockStayWindowRepo(s.mockCtrl)
	s.mockCache = queriesmock.NewMockSearchCache(s.mockCtrl)

	s.queries = queries.NewSearchQueries(s.mockRooms, s.mockTariffs, s.mockStays, s.mockCache)
}

func (s *SearchQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSearchQueriesSuite(t *testing.T) {
	suite.Run(t, new(SearchQueriesTestSuite))
}

func notFoundErr() error {
	return infra.WrapRepoErr("no rows", nil, infra.KindNotFound)
}

func tariffViews(b *builder.RoomBuilder) []queries.TariffView {
	views := make([]queries.TariffView, 0, 2)
	for _, snap := range b.BuildTariffSnapshots() {
		views = append(views, queries.TariffView{
			HotelID:          snap.HotelID,
			RoomType:         snap.RoomType,
			Season:           snap.Season,
			BasePrice:        snap.BasePrice,
			VariationPercent: snap.VariationPercent,
		})
	}
	return views
}

func (s *SearchQueriesTestSuite) TestSearch() {
	params := queries.SearchParams{CheckIn: "2025-03-10", CheckOut: "2025-03-13"}

	s.Run("free and occupied rooms are partitioned", func() {
		freeB := builder.NewRoomBuilder().WithRate(80, -30)
		busyB := builder.NewRoomBuilder().WithRate(80, -30).WithHotelID(freeB.HotelID)
		busyB.Number = 102

		s.mockCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false)
		s.mockRooms.EXPECT().List(gomock.Any(), nil, nil).Return(
			[]queries.RoomView{freeB.BuildView(), busyB.BuildView()}, nil)
		s.mockStays.EXPECT().StayWindows(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(
			[]queries.StayWindow{{
				RoomID:   busyB.ID,
				CheckIn:  time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC),
				CheckOut: time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC),
				Status:   "confirmed",
			}}, nil)
		s.mockTariffs.EXPECT().List(gomock.Any(), nil).Return(tariffViews(freeB), nil)
		s.mockCache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any())

		view, err := s.queries.Search(context.Background(), params)
		s.Require().NoError(err)

		s.Require().Len(view.Results, 1)
		s.Equal(freeB.ID, view.Results[0].Room.ID)
		s.Equal(3, view.Results[0].Nights)
		s.InDelta(168.00, view.Results[0].Total, 1e-9)
		s.InDelta(56.00, view.Results[0].AverageNightly, 1e-9)

		s.Require().Len(view.Occupied, 1)
		s.Equal(busyB.ID, view.Occupied[0].Room.ID)
		s.Equal(time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC), view.Occupied[0].AvailableFrom)
	})

	s.Run("cache hit skips the stores entirely", func() {
		cached := &queries.SearchView{Results: []queries.SearchResult{}, Occupied: []queries.OccupiedRoom{}}
		s.mockCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(cached, true)

		view, err := s.queries.Search(context.Background(), params)
		s.Require().NoError(err)
		s.Same(cached, view)
	})

	s.Run("invalid range never reaches the cache", func() {
		bad := params
		bad.CheckOut = "2025-03-10"

		_, err := s.queries.Search(context.Background(), bad)
		s.Require().ErrorIs(err, errs.ErrInvalidRange)
	})

	s.Run("unknown room type filter", func() {
		bad := params
		roomType := "penthouse"
		bad.RoomType = &roomType

		_, err := s.queries.Search(context.Background(), bad)
		s.Require().ErrorIs(err, errs.ErrValidationFailed)
	})
}

func (s *SearchQueriesTestSuite) TestQuote() {
	s.Run("success: reconciled nightly rates sum to the total", func() {
		roomB := builder.NewRoomBuilder().WithRate(80, -30).WithAmenities("wifi,jacuzzi")
		view := roomB.BuildView()

		s.mockRooms.EXPECT().FindByID(gomock.Any(), roomB.ID).Return(&view, nil)
		s.mockTariffs.EXPECT().List(gomock.Any(), &view.HotelID).Return(tariffViews(roomB), nil)

		quote, err := s.queries.Quote(context.Background(), roomB.ID, "2025-03-10", "2025-03-13")
		s.Require().NoError(err)

		s.Equal(3, quote.Nights)
		s.InDelta(193.20, quote.Total, 1e-9)
		s.InDelta(64.40, quote.AverageNightly, 1e-9)

		var sum float64
		for _, rate := range quote.NightlyRates {
			sum += rate
		}
		s.InDelta(quote.Total, sum, 1e-9)
	})

	s.Run("unknown room", func() {
		id := uuid.New()
		s.mockRooms.EXPECT().FindByID(gomock.Any(), id).Return(nil, notFoundErr())

		_, err := s.queries.Quote(context.Background(), id, "2025-03-10", "2025-03-13")
		s.Require().ErrorIs(err, errs.ErrRoomNotFound)
	})

	s.Run("no tariff for the stay", func() {
		roomB := builder.NewRoomBuilder()
		view := roomB.BuildView()

		s.mockRooms.EXPECT().FindByID(gomock.Any(), roomB.ID).Return(&view, nil)
		s.mockTariffs.EXPECT().List(gomock.Any(), &view.HotelID).Return(nil, nil)

		_, err := s.queries.Quote(context.Background(), roomB.ID, "2025-03-10", "2025-03-13")
		s.Require().ErrorIs(err, errs.ErrTariffMissing)
	})
}

//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"hotel-booking-api/internal/handler/api"
	resdto "hotel-booking-api/internal/handler/dto/response"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/pkg/jwt"
	"hotel-booking-api/internal/usecase/queries"
	"hotel-booking-api/tests/common/builder"
	"hotel-booking-api/tests/common/httptest"
	"hotel-booking-api/tests/common/testutil"
	commandsmock "hotel-booking-api/tests/mock/commands"
	queriesmock "hotel-booking-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GuestHandlerTestSuite struct {
	suite.Suite
	router                 *gin.Engine
	mockCtrl               *gomock.Controller
	mockCommands           *commandsmock.MockGuestCommands
	mockQueries            *queriesmock.MockGuestQueries
	mockReservationQueries *queriesmock.MockReservationQueries
	handler                *api.GuestHandler
}

func (s *GuestHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockGuestCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockGuestQueries(s.mockCtrl)
	s.mockReservationQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewGuestHandler(s.mockCommands, s.mockQueries, s.mockReservationQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", jwt.RoleStaff)
		c.Next()
	}

	s.router.POST("/guests", authMiddleware, s.handler.Register)
	s.router.GET("/guests/:id", authMiddleware, s.handler.Get)
	s.router.GET("/guests/:id/reservations", authMiddleware, s.handler.ListReservations)
}

func (s *GuestHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGuestHandlerSuite(t *testing.T) {
	suite.Run(t, new(GuestHandlerTestSuite))
}

type testCaseGuest struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestRegister
// ================================================================================

func (s *GuestHandlerTestSuite) TestRegister() {
	url := "/guests"

	guestB := builder.NewGuestBuilder()
	reqBody := guestB.BuildRegisterRequestDTO()
	returnView := guestB.BuildView()

	missing := []testCaseGuest{
		{name: "missing field: document (required)", mutate: testutil.Field("document", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: full_name (required)", mutate: testutil.Field("full_name", nil), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), reqBody.ToInput()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.GuestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID, body.ID)
		s.Equal(returnView.Document, body.Document)
		s.Zero(body.Points)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, tc := range missing {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 409 on a duplicate document", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrDuplicateGuest).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already exists")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *GuestHandlerTestSuite) TestGet() {
	s.Run("success: returns the guest with the loyalty balance", func() {
		guestB := builder.NewGuestBuilder().WithPoints(120)
		returnView := guestB.BuildView()

		s.mockQueries.EXPECT().GetByID(gomock.Any(), guestB.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/guests/"+guestB.ID.String(), nil, "bearer-token")

		var body resdto.GuestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(returnView.FullName, body.FullName)
		s.Equal(120, body.Points)
	})

	s.Run("error: 404 when the guest does not exist", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, errs.ErrGuestNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/guests/"+id.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Guest not found")
	})

	s.Run("error: 400 on malformed guest ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/guests/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid guest ID")
	})
}

// ================================================================================
// TestListReservations
// ================================================================================

func (s *GuestHandlerTestSuite) TestListReservations() {
	s.Run("success: returns the guest's reservations", func() {
		guestID := uuid.New()
		items := []queries.ReservationListItem{
			{
				ID:         uuid.New(),
				Code:       "R-20250301120000-A1B2C3",
				HotelName:  "Grand Plaza",
				RoomNumber: 101,
				CheckIn:    time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
				CheckOut:   time.Date(2025, time.March, 13, 0, 0, 0, 0, time.UTC),
				Status:     "completed",
				RoomTotal:  168.00,
			},
			{
				ID:         uuid.New(),
				Code:       "R-20250110090000-D4E5F6",
				HotelName:  "Grand Plaza",
				RoomNumber: 204,
				CheckIn:    time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC),
				CheckOut:   time.Date(2025, time.January, 22, 0, 0, 0, 0, time.UTC),
				Status:     "cancelled",
				RoomTotal:  230.00,
			},
		}
		s.mockReservationQueries.EXPECT().ListByGuest(gomock.Any(), guestID).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/guests/"+guestID.String()+"/reservations", nil, "bearer-token")

		var body []resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal(items[0].Code, body[0].Code)
		s.Equal(items[1].Status, body[1].Status)
	})

	s.Run("success: empty list for a guest with no stays", func() {
		guestID := uuid.New()
		s.mockReservationQueries.EXPECT().ListByGuest(gomock.Any(), guestID).
			Return([]queries.ReservationListItem{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/guests/"+guestID.String()+"/reservations", nil, "bearer-token")

		var body []resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})
}

//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"hotel-booking-api/internal/handler/api"
	resdto "hotel-booking-api/internal/handler/dto/response"
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/pkg/jwt"
	"hotel-booking-api/internal/pkg/ptr"
	"hotel-booking-api/internal/usecase/commands"
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

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	clock        *clock.MockClock
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC))
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries, s.clock)

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

	s.router.POST("/reservations", authMiddleware, s.handler.Book)
	s.router.GET("/reservations/pending-check-ins", authMiddleware, s.handler.PendingCheckIns)
	s.router.GET("/reservations/:id", authMiddleware, s.handler.Get)
	s.router.GET("/reservations/:id/breakdown", authMiddleware, s.handler.GetBreakdown)
	s.router.POST("/reservations/:id/check-in", authMiddleware, s.handler.CheckIn)
	s.router.POST("/reservations/:id/check-out", authMiddleware, s.handler.CheckOut)
	s.router.POST("/reservations/:id/cancel", authMiddleware, s.handler.Cancel)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

type testCaseReservation struct {
	name         string
	mutate       func(m map[string]any)
	expectCode   int
	expectInBody string
}

// ================================================================================
// TestBook
// ================================================================================

func (s *ReservationHandlerTestSuite) TestBook() {
	url := "/reservations"

	resB := builder.NewReservationBuilder()
	reqBody := resB.BuildBookRequestDTO()
	returnView := resB.BuildView()

	missing := []testCaseReservation{
		{name: "missing field: guest_id (required)", mutate: testutil.Field("guest_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: room_id (required)", mutate: testutil.Field("room_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: check_in (required)", mutate: testutil.Field("check_in", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: check_out (required)", mutate: testutil.Field("check_out", nil), expectCode: http.StatusBadRequest},
	}

	malformed := []testCaseReservation{
		{name: "guest_id is not a uuid", mutate: testutil.Field("guest_id", "not-a-uuid"), expectCode: http.StatusBadRequest},
		{name: "room_id is not a uuid", mutate: testutil.Field("room_id", "not-a-uuid"), expectCode: http.StatusBadRequest},
	}

	allValidationTestCases := [][]testCaseReservation{missing, malformed}

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().Book(gomock.Any(), reqBody.ToInput()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID, body.ID)
		s.Equal(returnView.Code, body.Code)
		s.Equal("pending", body.Status)
		s.Equal(3, body.Nights)
		s.InDelta(168.00, body.RoomTotal, 1e-9)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, testCaseGroup := range allValidationTestCases {
			for _, tc := range testCaseGroup {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
				})
			}
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "room already reserved",
				commandsError:  errs.ErrRoomUnavailable,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already reserved",
			},
			{
				name:           "unknown guest",
				commandsError:  errs.ErrGuestNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Guest not found",
			},
			{
				name:           "unknown room",
				commandsError:  errs.ErrRoomNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Room not found",
			},
			{
				name:           "no tariff for the stay",
				commandsError:  errs.ErrTariffMissing,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "No tariff",
			},
			{
				name:           "service not offered",
				commandsError:  errs.ErrServiceNotOffered,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "not offered",
			},
			{
				name:           "check-out not after check-in",
				commandsError:  errs.ErrInvalidRange,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Check-out date must be after",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Book(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGet() {
	s.Run("success: returns the reservation", func() {
		returnView := builder.NewReservationBuilder().BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+returnView.ID.String(), nil, "bearer-token")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(returnView.ID, body.ID)
		s.Equal(returnView.GuestName, body.GuestName)
	})

	s.Run("error: 404 when the reservation does not exist", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, errs.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+id.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})

	s.Run("error: 400 on malformed reservation ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation ID")
	})
}

// ================================================================================
// TestGetBreakdown
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGetBreakdown() {
	s.Run("success: returns the per-night breakdown", func() {
		id := uuid.New()
		view := &queries.BreakdownView{
			ReservationID: id,
			Nights: []queries.NightLine{
				{Date: time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), Amount: 56.00},
				{Date: time.Date(2025, time.March, 11, 0, 0, 0, 0, time.UTC), Amount: 56.00},
				{Date: time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC), Amount: 56.00},
			},
			RoomTotal:  168.00,
			GrandTotal: 168.00,
		}
		s.mockQueries.EXPECT().Breakdown(gomock.Any(), id).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+id.String()+"/breakdown", nil, "bearer-token")

		var body resdto.BreakdownResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(id, body.ReservationID)
		s.Len(body.Nights, 3)
		s.InDelta(168.00, body.GrandTotal, 1e-9)
	})

	s.Run("error: 404 when the reservation does not exist", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().Breakdown(gomock.Any(), id).
			Return(nil, errs.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+id.String()+"/breakdown", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

// ================================================================================
// TestCheckIn
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCheckIn() {
	s.Run("success: returns the confirmed reservation with an access code", func() {
		resB := builder.NewReservationBuilder()
		returnView := resB.BuildView()
		returnView.Status = "confirmed"
		returnView.AccessCode = ptr.To("483921")
		returnView.CheckInAt = ptr.To(s.clock.Now())

		s.mockCommands.EXPECT().CheckIn(gomock.Any(), resB.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+resB.ID.String()+"/check-in", nil, "bearer-token")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("confirmed", body.Status)
		s.Require().NotNil(body.AccessCode)
		s.Equal("483921", *body.AccessCode)
	})

	s.Run("error: 422 when the reservation is not pending", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().CheckIn(gomock.Any(), id).
			Return(nil, errs.ErrInvalidState).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/check-in", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "not in a state")
	})

	s.Run("error: 400 on malformed reservation ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/not-a-uuid/check-in", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation ID")
	})
}

// ================================================================================
// TestCheckOut
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCheckOut() {
	s.Run("success: late departure carries the surcharge", func() {
		resB := builder.NewReservationBuilder()
		returnView := resB.BuildView()
		returnView.Status = "completed"

		s.mockCommands.EXPECT().CheckOut(gomock.Any(), resB.ID).
			Return(&commands.CheckOutResult{
				Reservation: returnView,
				Surcharge:   11.20,
				Total:       179.20,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+resB.ID.String()+"/check-out", nil, "bearer-token")

		var body resdto.CheckOutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("completed", body.Reservation.Status)
		s.InDelta(11.20, body.Surcharge, 1e-9)
		s.InDelta(179.20, body.Total, 1e-9)
	})

	s.Run("error: 422 when the reservation is not confirmed", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().CheckOut(gomock.Any(), id).
			Return(nil, errs.ErrInvalidState).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/check-out", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "not in a state")
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCancel() {
	s.Run("success: refund depends on the cancellation lead time", func() {
		resB := builder.NewReservationBuilder()
		returnView := resB.BuildView()
		returnView.Status = "cancelled"

		s.mockCommands.EXPECT().Cancel(gomock.Any(), resB.ID).
			Return(&commands.CancelResult{
				Reservation:   returnView,
				RefundPercent: 0.5,
				RefundAmount:  84.00,
				Total:         84.00,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+resB.ID.String()+"/cancel", nil, "bearer-token")

		var body resdto.CancelResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("cancelled", body.Reservation.Status)
		s.InDelta(0.5, body.RefundPercent, 1e-9)
		s.InDelta(84.00, body.RefundAmount, 1e-9)
	})

	s.Run("error: 422 when already cancelled or completed", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id).
			Return(nil, errs.ErrInvalidState).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/cancel", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "not in a state")
	})

	s.Run("error: 404 when the reservation does not exist", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id).
			Return(nil, errs.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/cancel", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

// ================================================================================
// TestPendingCheckIns
// ================================================================================

func (s *ReservationHandlerTestSuite) TestPendingCheckIns() {
	url := "/reservations/pending-check-ins"
	now := s.clock.Now()

	s.Run("success: defaults to a 48 hour window", func() {
		views := []queries.PendingCheckInView{{
			ID:         uuid.New(),
			Code:       "R-20250301120000-A1B2C3",
			GuestName:  "Maria Santos",
			HotelName:  "Grand Plaza",
			RoomNumber: 101,
			CheckIn:    now.Add(24 * time.Hour),
		}}
		s.mockQueries.EXPECT().PendingCheckInsWithin(gomock.Any(), now, now.Add(48*time.Hour)).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body []resdto.PendingCheckInResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("Maria Santos", body[0].GuestName)
	})

	s.Run("success: honors an explicit hours window", func() {
		s.mockQueries.EXPECT().PendingCheckInsWithin(gomock.Any(), now, now.Add(12*time.Hour)).
			Return([]queries.PendingCheckInView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?hours=12", nil, "bearer-token")

		var body []resdto.PendingCheckInResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})

	s.Run("error: 400 on a non-positive hours parameter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?hours=0", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid hours")
	})
}

//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"hotel-booking-api/internal/handler/api"
	resdto "hotel-booking-api/internal/handler/dto/response"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/pkg/jwt"
	"hotel-booking-api/internal/usecase/commands"
	"hotel-booking-api/tests/common/httptest"
	commandsmock "hotel-booking-api/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LoyaltyHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockLoyaltyCommands
	handler      *api.LoyaltyHandler
}

func (s *LoyaltyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockLoyaltyCommands(s.mockCtrl)
	s.handler = api.NewLoyaltyHandler(s.mockCommands)

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

	s.router.POST("/reservations/:id/points", authMiddleware, s.handler.Accrue)
	s.router.POST("/guests/:id/points/redeem", authMiddleware, s.handler.Redeem)
}

func (s *LoyaltyHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLoyaltyHandlerSuite(t *testing.T) {
	suite.Run(t, new(LoyaltyHandlerTestSuite))
}

// ================================================================================
// TestAccrue
// ================================================================================

func (s *LoyaltyHandlerTestSuite) TestAccrue() {
	s.Run("success: credits one point per currency unit", func() {
		reservationID := uuid.New()
		guestID := uuid.New()
		s.mockCommands.EXPECT().AccruePoints(gomock.Any(), reservationID).
			Return(&commands.AccrualResult{GuestID: guestID, Earned: 193, Balance: 243}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+reservationID.String()+"/points", nil, "bearer-token")

		var body resdto.AccrualResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(guestID, body.GuestID)
		s.Equal(193, body.Earned)
		s.Equal(243, body.Balance)
	})

	s.Run("error: 422 when the stay is not completed", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().AccruePoints(gomock.Any(), id).
			Return(nil, errs.ErrInvalidState).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/points", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "completed stays")
	})

	s.Run("error: 404 when the reservation does not exist", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().AccruePoints(gomock.Any(), id).
			Return(nil, errs.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/points", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})

	s.Run("error: 400 on malformed reservation ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/not-a-uuid/points", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation ID")
	})
}

// ================================================================================
// TestRedeem
// ================================================================================

func (s *LoyaltyHandlerTestSuite) TestRedeem() {
	s.Run("success: deducts the points from the balance", func() {
		guestID := uuid.New()
		s.mockCommands.EXPECT().RedeemPoints(gomock.Any(), guestID, 60).
			Return(&commands.RedeemResult{GuestID: guestID, Redeemed: 60, Balance: 40}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/guests/"+guestID.String()+"/points/redeem",
			map[string]any{"points": 60}, "bearer-token")

		var body resdto.RedeemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(60, body.Redeemed)
		s.Equal(40, body.Balance)
	})

	s.Run("error: 400 on non-positive points", func() {
		guestID := uuid.New()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/guests/"+guestID.String()+"/points/redeem",
			map[string]any{"points": 0}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 422 when redeeming beyond the balance", func() {
		guestID := uuid.New()
		s.mockCommands.EXPECT().RedeemPoints(gomock.Any(), guestID, 500).
			Return(nil, errs.ErrInvalidAmount).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/guests/"+guestID.String()+"/points/redeem",
			map[string]any{"points": 500}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "exceed the balance")
	})

	s.Run("error: 404 when the guest does not exist", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().RedeemPoints(gomock.Any(), id, 10).
			Return(nil, errs.ErrGuestNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/guests/"+id.String()+"/points/redeem",
			map[string]any{"points": 10}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Guest not found")
	})
}

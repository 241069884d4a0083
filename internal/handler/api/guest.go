package api

import (
	"errors"
	"net/http"

	reqdto "hotel-booking-api/internal/handler/dto/request"
	resdto "hotel-booking-api/internal/handler/dto/response"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase/commands"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type GuestHandler struct {
	guestCommands      commands.GuestCommands
	guestQueries       queries.GuestQueries
	reservationQueries queries.ReservationQueries
}

func NewGuestHandler(
	guestCommands commands.GuestCommands,
	guestQueries queries.GuestQueries,
	reservationQueries queries.ReservationQueries,
) *GuestHandler {
	return &GuestHandler{
		guestCommands:      guestCommands,
		guestQueries:       guestQueries,
		reservationQueries: reservationQueries,
	}
}

// @Summary Register guest
// @Description Register a guest by identity document
// @Tags guests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RegisterGuestRequest true "Guest data"
// @Success 201 {object} resdto.GuestResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /guests [post]
func (h *GuestHandler) Register(c *gin.Context) {
	var req reqdto.RegisterGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.guestCommands.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDuplicateGuest):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Guest with this document already exists",
			})
		case errors.Is(err, errs.ErrValidationFailed):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Document and full name are required",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromGuestView(view))
}

// @Summary Get guest
// @Description Get guest by ID including the loyalty point balance
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Guest ID"
// @Success 200 {object} resdto.GuestResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /guests/{id} [get]
func (h *GuestHandler) Get(c *gin.Context) {
	id, ok := h.guestID(c)
	if !ok {
		return
	}

	view, err := h.guestQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondGuestError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromGuestView(view))
}

// @Summary List guest reservations
// @Description All reservations for one guest, newest stay first
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Guest ID"
// @Success 200 {array} resdto.ReservationListResponse
// @Failure 400 {object} map[string]string
// @Router /guests/{id}/reservations [get]
func (h *GuestHandler) ListReservations(c *gin.Context) {
	id, ok := h.guestID(c)
	if !ok {
		return
	}

	items, err := h.reservationQueries.ListByGuest(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]resdto.ReservationListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromReservationListItem(item)
	}
	c.JSON(http.StatusOK, response)
}

func (h *GuestHandler) guestID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid guest ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

func (h *GuestHandler) respondGuestError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrGuestNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Guest not found",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

package api

import (
	"errors"
	"net/http"

	reqdto "hotel-booking-api/internal/handler/dto/request"
	resdto "hotel-booking-api/internal/handler/dto/response"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	searchQueries queries.SearchQueries
}

func NewSearchHandler(searchQueries queries.SearchQueries) *SearchHandler {
	return &SearchHandler{searchQueries: searchQueries}
}

// @Summary Search available rooms
// @Description List free rooms for a stay range, priced per the seasonal tariffs, plus occupied rooms with the date they free up
// @Tags search
// @Produce json
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Param hotel_id query string false "Limit to one hotel"
// @Param location query string false "Hotel location substring"
// @Param guests query int false "Minimum room capacity"
// @Param room_type query string false "single | double | suite"
// @Param wifi query bool false "Require wifi"
// @Param jacuzzi query bool false "Require jacuzzi"
// @Param max_avg_nightly query number false "Maximum average nightly price"
// @Success 200 {object} resdto.SearchResponse
// @Failure 400 {object} map[string]string
// @Router /search [get]
func (h *SearchHandler) SearchRooms(c *gin.Context) {
	var req reqdto.SearchRoomsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid search parameters",
		})
		return
	}

	params, err := req.ToParams()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid hotel ID format",
		})
		return
	}

	view, err := h.searchQueries.Search(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Check-out date must be after check-in date",
			})
		case errors.Is(err, errs.ErrValidationFailed):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid room type",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSearchView(view))
}

// @Summary Quote a stay
// @Description Price one room for a stay range without reserving it
// @Tags search
// @Produce json
// @Param room_id query string true "Room ID"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /quote [get]
func (h *SearchHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid quote parameters",
		})
		return
	}

	view, err := h.searchQueries.Quote(c.Request.Context(), req.RoomID, req.CheckIn, req.CheckOut)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		case errors.Is(err, errs.ErrInvalidRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Check-out date must be after check-in date",
			})
		case errors.Is(err, errs.ErrTariffMissing):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "No tariff configured for part of the stay",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}

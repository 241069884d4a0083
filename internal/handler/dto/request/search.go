package request

import (
	"strings"

	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type SearchRoomsRequest struct {
	CheckIn       string   `form:"check_in" binding:"required"`
	CheckOut      string   `form:"check_out" binding:"required"`
	HotelID       *string  `form:"hotel_id"`
	Location      *string  `form:"location"`
	Guests        int      `form:"guests"`
	RoomType      *string  `form:"room_type"`
	Wifi          bool     `form:"wifi"`
	Jacuzzi       bool     `form:"jacuzzi"`
	MaxAvgNightly *float64 `form:"max_avg_nightly"`
}

func (r SearchRoomsRequest) ToParams() (queries.SearchParams, error) {
	params := queries.SearchParams{
		CheckIn:        r.CheckIn,
		CheckOut:       r.CheckOut,
		MinCapacity:    r.Guests,
		RoomType:       r.RoomType,
		RequireWifi:    r.Wifi,
		RequireJacuzzi: r.Jacuzzi,
		MaxAvgNightly:  r.MaxAvgNightly,
	}
	if r.HotelID != nil && strings.TrimSpace(*r.HotelID) != "" {
		id, err := uuid.Parse(*r.HotelID)
		if err != nil {
			return queries.SearchParams{}, err
		}
		params.HotelID = &id
	}
	if r.Location != nil && strings.TrimSpace(*r.Location) != "" {
		loc := strings.TrimSpace(*r.Location)
		params.Location = &loc
	}
	return params, nil
}

type QuoteRequest struct {
	RoomID   uuid.UUID `form:"room_id" binding:"required"`
	CheckIn  string    `form:"check_in" binding:"required"`
	CheckOut string    `form:"check_out" binding:"required"`
}

package response

import (
	"time"

	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	ID        uuid.UUID `json:"id"`
	HotelID   uuid.UUID `json:"hotelId"`
	HotelName string    `json:"hotelName"`
	Location  string    `json:"location"`
	Number    int       `json:"number"`
	Floor     int       `json:"floor"`
	RoomType  string    `json:"roomType"`
	Capacity  int       `json:"capacity"`
	Amenities string    `json:"amenities"`
}

type SearchResultResponse struct {
	Room           RoomResponse `json:"room"`
	Nights         int          `json:"nights"`
	Total          float64      `json:"total"`
	AverageNightly float64      `json:"averageNightly"`
}

type OccupiedRoomResponse struct {
	Room          RoomResponse `json:"room"`
	AvailableFrom time.Time    `json:"availableFrom"`
}

type SearchResponse struct {
	Results  []SearchResultResponse `json:"results"`
	Occupied []OccupiedRoomResponse `json:"occupied"`
}

type QuoteResponse struct {
	RoomID         uuid.UUID `json:"roomId"`
	RoomType       string    `json:"roomType"`
	CheckIn        time.Time `json:"checkIn"`
	CheckOut       time.Time `json:"checkOut"`
	Nights         int       `json:"nights"`
	NightlyRates   []float64 `json:"nightlyRates"`
	Total          float64   `json:"total"`
	AverageNightly float64   `json:"averageNightly"`
}

func FromSearchView(rm *queries.SearchView) *SearchResponse {
	var resp SearchResponse
	_ = copier.Copy(&resp, rm)
	if resp.Results == nil {
		resp.Results = []SearchResultResponse{}
	}
	if resp.Occupied == nil {
		resp.Occupied = []OccupiedRoomResponse{}
	}
	return &resp
}

func FromQuoteView(rm *queries.QuoteView) *QuoteResponse {
	var resp QuoteResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

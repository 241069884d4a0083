//go:build unit || e2e

package builder

import (
	"time"

	domroom "hotel-booking-api/internal/domain/room"
	"hotel-booking-api/internal/domain/tariff"
	"hotel-booking-api/internal/usecase/queries"
	"hotel-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type RoomBuilder struct {
	ID        uuid.UUID
	HotelID   uuid.UUID
	HotelName string
	Location  string
	Number    int
	Floor     int
	RoomType  domroom.Type
	Capacity  int
	Amenities string
	BasePrice float64
	Variation float64
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:        uuid.New(),
		HotelID:   uuid.New(),
		HotelName: "Grand Plaza",
		Location:  "Lisbon",
		Number:    101,
		Floor:     1,
		RoomType:  domroom.TypeDouble,
		Capacity:  2,
		Amenities: "wifi,tv",
		BasePrice: 80,
		Variation: -30,
	}
}

func (b *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(b)
	return b
}

func (b *RoomBuilder) BuildDomain() *domroom.Room {
	now := time.Now()
	return domroom.Reconstruct(b.ID, b.HotelID, b.Number, b.Floor, b.RoomType, b.Capacity, b.Amenities, now, now)
}

func (b *RoomBuilder) BuildView() queries.RoomView {
	return queries.RoomView{
		ID:        b.ID,
		HotelID:   b.HotelID,
		HotelName: b.HotelName,
		Location:  b.Location,
		Number:    b.Number,
		Floor:     b.Floor,
		RoomType:  b.RoomType.String(),
		Capacity:  b.Capacity,
		Amenities: b.Amenities,
	}
}

func (b *RoomBuilder) BuildSnapshot() *shared.RoomSnapshot {
	return &shared.RoomSnapshot{
		ID:        b.ID,
		HotelID:   b.HotelID,
		Number:    b.Number,
		Floor:     b.Floor,
		RoomType:  b.RoomType.String(),
		Capacity:  b.Capacity,
		Amenities: b.Amenities,
	}
}

// BuildTariffEntries returns a full seasonal table for the room's type so any
// stay on this room is priceable.
func (b *RoomBuilder) BuildTariffEntries() []tariff.Entry {
	entries := make([]tariff.Entry, 0, 2)
	for _, season := range []tariff.Season{tariff.SeasonLow, tariff.SeasonHigh} {
		entries = append(entries, tariff.Entry{
			HotelID:          b.HotelID,
			RoomType:         b.RoomType,
			Season:           season,
			BasePrice:        b.BasePrice,
			VariationPercent: b.Variation,
		})
	}
	return entries
}

func (b *RoomBuilder) BuildTariffSnapshots() []shared.TariffSnapshot {
	snaps := make([]shared.TariffSnapshot, 0, 2)
	for _, e := range b.BuildTariffEntries() {
		snaps = append(snaps, shared.TariffSnapshot{
			HotelID:          e.HotelID,
			RoomType:         e.RoomType.String(),
			Season:           e.Season.String(),
			BasePrice:        e.BasePrice,
			VariationPercent: e.VariationPercent,
		})
	}
	return snaps
}

// Fluent builder methods
func (b *RoomBuilder) WithHotelID(hotelID uuid.UUID) *RoomBuilder {
	b.HotelID = hotelID
	return b
}

func (b *RoomBuilder) WithRoomType(t domroom.Type) *RoomBuilder {
	b.RoomType = t
	return b
}

func (b *RoomBuilder) WithCapacity(capacity int) *RoomBuilder {
	b.Capacity = capacity
	return b
}

func (b *RoomBuilder) WithAmenities(tags string) *RoomBuilder {
	b.Amenities = tags
	return b
}

func (b *RoomBuilder) WithRate(base, variation float64) *RoomBuilder {
	b.BasePrice = base
	b.Variation = variation
	return b
}

func (b *RoomBuilder) AsJacuzziSuite() *RoomBuilder {
	b.RoomType = domroom.TypeSuite
	b.Capacity = 4
	b.Amenities = "wifi,jacuzzi,balcony"
	return b
}

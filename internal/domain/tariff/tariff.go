// Package tariff holds the seasonal rate table: one priced rate per
// (hotel, room type, season) triple.
package tariff

import (
	"errors"
	"time"

	"hotel-booking-api/internal/domain/room"

	"github.com/google/uuid"
)

var ErrRateNotFound = errors.New("no tariff configured for hotel, room type and season")

type Season string

const (
	SeasonLow  Season = "low"
	SeasonHigh Season = "high"
)

func (s Season) String() string { return string(s) }

// SeasonOf is a pure function of the calendar month: January, July, August and
// December are high season, everything else is low.
func SeasonOf(date time.Time) Season {
	switch date.Month() {
	case time.January, time.July, time.August, time.December:
		return SeasonHigh
	default:
		return SeasonLow
	}
}

// Rate is the priced rate for one (hotel, type, season) triple.
type Rate struct {
	BasePrice        float64
	VariationPercent float64
}

// Nightly applies the percentage variation to the base price. Not rounded;
// rounding happens at summation per the billing rules.
func (r Rate) Nightly() float64 {
	return r.BasePrice * (1 + r.VariationPercent/100)
}

type Entry struct {
	HotelID          uuid.UUID
	RoomType         room.Type
	Season           Season
	BasePrice        float64
	VariationPercent float64
}

type key struct {
	hotelID  uuid.UUID
	roomType room.Type
	season   Season
}

// Table is an immutable in-memory index built once per request from a
// consistent tariff snapshot.
type Table struct {
	rates map[key]Rate
}

func NewTable(entries []Entry) *Table {
	rates := make(map[key]Rate, len(entries))
	for _, e := range entries {
		rates[key{e.HotelID, e.RoomType, e.Season}] = Rate{
			BasePrice:        e.BasePrice,
			VariationPercent: e.VariationPercent,
		}
	}
	return &Table{rates: rates}
}

func (t *Table) Rate(hotelID uuid.UUID, roomType room.Type, season Season) (Rate, error) {
	r, ok := t.rates[key{hotelID, roomType, season}]
	if !ok {
		return Rate{}, ErrRateNotFound
	}
	return r, nil
}

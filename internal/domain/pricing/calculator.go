// Package pricing turns a stay range and a room into a per-night price
// sequence and totals, using the seasonal tariff table.
package pricing

import (
	"errors"

	"hotel-booking-api/internal/domain/reservation"
	"hotel-booking-api/internal/domain/room"
	"hotel-booking-api/internal/domain/tariff"
	"hotel-booking-api/internal/pkg/money"
)

var ErrTariffMissing = errors.New("no tariff for one or more nights of the stay")

// JacuzziSurcharge is the multiplier bump for rooms with a jacuzzi.
const JacuzziSurcharge = 0.15

// Quote is the priced stay. Nightly prices are kept unrounded; Total and
// AverageNightly are rounded to 2 decimals at summation, half away from zero.
type Quote struct {
	Nightly        []float64
	Nights         int
	Total          float64
	AverageNightly float64
}

type Calculator struct {
	rates *tariff.Table
}

func NewCalculator(rates *tariff.Table) *Calculator {
	return &Calculator{rates: rates}
}

// PriceStay prices each night of [checkIn, checkOut) by the season of that
// date. If any night has no tariff the whole stay is unpriceable; there is no
// partial pricing.
func (c *Calculator) PriceStay(r *room.Room, stay reservation.StayRange) (*Quote, error) {
	dates := stay.Dates()
	nightly := make([]float64, 0, len(dates))
	var sum float64

	for _, d := range dates {
		rate, err := c.rates.Rate(r.HotelID(), r.Type(), tariff.SeasonOf(d))
		if err != nil {
			return nil, ErrTariffMissing
		}
		price := rate.Nightly()
		if r.Amenities().HasJacuzzi {
			price *= 1 + JacuzziSurcharge
		}
		nightly = append(nightly, price)
		sum += price
	}

	return &Quote{
		Nightly:        nightly,
		Nights:         len(nightly),
		Total:          money.Round2(sum),
		AverageNightly: money.Round2(sum / float64(len(nightly))),
	}, nil
}

// Reconcile re-derives a displayable per-night breakdown from an already
// stored total. Each night is rounded to 2 decimals and any drift between the
// rounded sum and the stored total is folded entirely into the last night, so
// the displayed breakdown always sums exactly to what was billed, even if
// tariffs changed after booking.
func Reconcile(nightly []float64, storedTotal float64) []float64 {
	if len(nightly) == 0 {
		return nil
	}
	out := make([]float64, len(nightly))
	var sum float64
	for i, p := range nightly {
		out[i] = money.Round2(p)
		sum += out[i]
	}
	if diff := money.Round2(storedTotal - money.Round2(sum)); diff != 0 {
		out[len(out)-1] = money.Round2(out[len(out)-1] + diff)
	}
	return out
}

package availability

import (
	"time"

	"hotel-booking-api/internal/domain/pricing"
	"hotel-booking-api/internal/domain/reservation"
	"hotel-booking-api/internal/domain/room"
)

// Candidate is a free room priced for the requested stay.
type Candidate struct {
	Room  *room.Room
	Quote *pricing.Quote
}

// OccupiedNotice reports a room that failed the overlap test, with the
// earliest date it frees up.
type OccupiedNotice struct {
	Room          *room.Room
	AvailableFrom time.Time
}

// Filter narrows candidates beyond the overlap test.
type Filter struct {
	Room          room.Filter
	MaxAvgNightly *float64
}

// Search partitions the room set into priced candidates and occupied notices.
// Rooms that cannot be priced (no tariff for some night) are silently dropped:
// they are neither bookable nor meaningfully "occupied".
func Search(rooms []*room.Room, idx *Index, calc *pricing.Calculator, stay reservation.StayRange, f Filter) ([]Candidate, []OccupiedNotice) {
	candidates := make([]Candidate, 0, len(rooms))
	occupied := make([]OccupiedNotice, 0)

	for _, r := range rooms {
		if !f.Room.Matches(r) {
			continue
		}

		if !idx.IsFree(r.ID(), stay) {
			notice := OccupiedNotice{Room: r}
			if from, ok := idx.NextFree(r.ID(), stay); ok {
				notice.AvailableFrom = from
			}
			occupied = append(occupied, notice)
			continue
		}

		quote, err := calc.PriceStay(r, stay)
		if err != nil {
			continue
		}
		if f.MaxAvgNightly != nil && quote.AverageNightly > *f.MaxAvgNightly {
			continue
		}
		candidates = append(candidates, Candidate{Room: r, Quote: quote})
	}

	return candidates, occupied
}

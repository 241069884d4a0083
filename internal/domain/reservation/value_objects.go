package reservation

import (
	"errors"
	"time"
)

var ErrInvalidRange = errors.New("check-out date must be after check-in date")

// StayRange is a half-open [checkIn, checkOut) date range. Both ends are
// normalized to midnight UTC; a stay is always a whole number of nights >= 1.
type StayRange struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayRange(checkIn, checkOut time.Time) (StayRange, error) {
	in := DateOf(checkIn)
	out := DateOf(checkOut)
	if !out.After(in) {
		return StayRange{}, ErrInvalidRange
	}
	return StayRange{checkIn: in, checkOut: out}, nil
}

func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s StayRange) CheckIn() time.Time  { return s.checkIn }
func (s StayRange) CheckOut() time.Time { return s.checkOut }

func (s StayRange) Nights() int {
	return int(s.checkOut.Sub(s.checkIn).Hours() / 24)
}

// Overlaps uses the open-interval test: two ranges conflict when each starts
// before the other ends. Back-to-back stays (checkout == checkin) do not.
func (s StayRange) Overlaps(other StayRange) bool {
	return s.checkIn.Before(other.checkOut) && other.checkIn.Before(s.checkOut)
}

// Dates yields every night of the stay, check-in inclusive, check-out exclusive.
func (s StayRange) Dates() []time.Time {
	dates := make([]time.Time, 0, s.Nights())
	for d := s.checkIn; d.Before(s.checkOut); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// Package availability answers which rooms are free for a requested stay,
// given a consistent snapshot of existing reservations.
package availability

import (
	"time"

	"hotel-booking-api/internal/domain/reservation"

	"github.com/google/uuid"
)

// Window is the slice of a reservation that matters for availability.
type Window struct {
	RoomID uuid.UUID
	Stay   reservation.StayRange
	Status reservation.Status
}

// Index groups non-cancelled reservation windows by room, built once per
// request from a snapshot. Cancelled reservations never block a room.
type Index struct {
	byRoom map[uuid.UUID][]Window
}

func NewIndex(windows []Window) *Index {
	byRoom := make(map[uuid.UUID][]Window)
	for _, w := range windows {
		if w.Status == reservation.StatusCancelled {
			continue
		}
		byRoom[w.RoomID] = append(byRoom[w.RoomID], w)
	}
	return &Index{byRoom: byRoom}
}

// IsFree reports whether no existing reservation on the room overlaps the
// requested stay.
func (i *Index) IsFree(roomID uuid.UUID, stay reservation.StayRange) bool {
	for _, w := range i.byRoom[roomID] {
		if w.Stay.Overlaps(stay) {
			return false
		}
	}
	return true
}

// NextFree returns the earliest date an occupied room becomes free for the
// requested stay: the minimum check-out among overlapping reservations that
// end on or after the requested check-in. ok is false when the room is free.
func (i *Index) NextFree(roomID uuid.UUID, stay reservation.StayRange) (time.Time, bool) {
	var earliest time.Time
	found := false
	for _, w := range i.byRoom[roomID] {
		if !w.Stay.Overlaps(stay) {
			continue
		}
		out := w.Stay.CheckOut()
		if out.Before(stay.CheckIn()) {
			continue
		}
		if !found || out.Before(earliest) {
			earliest = out
		}
		found = true
	}
	return earliest, found
}

package room

import "strings"

// Amenities are derived from the room's free-text tag string. Matching is a
// case-insensitive substring check; "jacuzi" is accepted because the data
// entry screens produced that misspelling for years.
type Amenities struct {
	HasWifi    bool
	HasJacuzzi bool
	Tags       string
}

func ParseAmenities(tags string) Amenities {
	lower := strings.ToLower(tags)
	return Amenities{
		HasWifi:    strings.Contains(lower, "wifi"),
		HasJacuzzi: strings.Contains(lower, "jacuzzi") || strings.Contains(lower, "jacuzi"),
		Tags:       tags,
	}
}

// Filter narrows a room set by capacity, type and amenity flags.
type Filter struct {
	MinCapacity    int
	Type           *Type
	RequireWifi    bool
	RequireJacuzzi bool
}

func (f Filter) Matches(r *Room) bool {
	if f.MinCapacity > 0 && r.Capacity() < f.MinCapacity {
		return false
	}
	if f.Type != nil && r.Type() != *f.Type {
		return false
	}
	a := r.Amenities()
	if f.RequireWifi && !a.HasWifi {
		return false
	}
	if f.RequireJacuzzi && !a.HasJacuzzi {
		return false
	}
	return true
}

func ApplyFilter(rooms []*Room, f Filter) []*Room {
	out := make([]*Room, 0, len(rooms))
	for _, r := range rooms {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

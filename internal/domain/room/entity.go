package room

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidType     = errors.New("invalid room type")
	ErrInvalidCapacity = errors.New("room capacity must be positive")
	ErrInvalidNumber   = errors.New("room number must be positive")
)

type Type string

const (
	TypeSingle Type = "single"
	TypeDouble Type = "double"
	TypeSuite  Type = "suite"
)

func (t Type) String() string { return string(t) }

func (t Type) IsValid() bool {
	switch t {
	case TypeSingle, TypeDouble, TypeSuite:
		return true
	default:
		return false
	}
}

func NewType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", ErrInvalidType
	}
	return t, nil
}

// Room is reference data: created administratively, read-mostly. Amenities and
// capacity may be edited later; identity fields never change.
type Room struct {
	id        uuid.UUID
	hotelID   uuid.UUID
	number    int
	floor     int
	roomType  Type
	capacity  int
	amenities Amenities
	createdAt time.Time
	updatedAt time.Time
}

func NewRoom(hotelID uuid.UUID, number, floor int, roomType Type, capacity int, amenityTags string) (*Room, error) {
	if !roomType.IsValid() {
		return nil, ErrInvalidType
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if number <= 0 {
		return nil, ErrInvalidNumber
	}
	return &Room{
		id:        uuid.New(),
		hotelID:   hotelID,
		number:    number,
		floor:     floor,
		roomType:  roomType,
		capacity:  capacity,
		amenities: ParseAmenities(amenityTags),
	}, nil
}

func Reconstruct(
	id, hotelID uuid.UUID,
	number, floor int,
	roomType Type,
	capacity int,
	amenityTags string,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:        id,
		hotelID:   hotelID,
		number:    number,
		floor:     floor,
		roomType:  roomType,
		capacity:  capacity,
		amenities: ParseAmenities(amenityTags),
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Room) ID() uuid.UUID        { return r.id }
func (r *Room) HotelID() uuid.UUID   { return r.hotelID }
func (r *Room) Number() int          { return r.number }
func (r *Room) Floor() int           { return r.floor }
func (r *Room) Type() Type           { return r.roomType }
func (r *Room) Capacity() int        { return r.capacity }
func (r *Room) Amenities() Amenities { return r.amenities }
func (r *Room) CreatedAt() time.Time { return r.createdAt }
func (r *Room) UpdatedAt() time.Time { return r.updatedAt }

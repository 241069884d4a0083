package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots keep commands independent of read-side view types.

type RoomSnapshot struct {
	ID        uuid.UUID
	HotelID   uuid.UUID
	Number    int
	Floor     int
	RoomType  string
	Capacity  int
	Amenities string
}

type TariffSnapshot struct {
	HotelID          uuid.UUID
	RoomType         string
	Season           string
	BasePrice        float64
	VariationPercent float64
}

type ServiceSnapshot struct {
	ID      uuid.UUID
	HotelID uuid.UUID
	Name    string
	Price   float64
}

type GuestSnapshot struct {
	ID           uuid.UUID
	Document     string
	FullName     string
	Email        *string
	Phone        *string
	Country      string
	RegisteredAt time.Time
	Points       int
}

type ServiceLineSnapshot struct {
	ServiceID uuid.UUID
	Name      string
	Quantity  int
	UnitPrice float64
}

type ReservationSnapshot struct {
	ID         uuid.UUID
	Code       string
	GuestID    uuid.UUID
	RoomID     uuid.UUID
	CheckIn    time.Time
	CheckOut   time.Time
	Status     string
	BookedAt   time.Time
	CheckInAt  *time.Time
	CheckOutAt *time.Time
	AccessCode *string
	Nights     int
	RoomTotal  float64
	Discount   *float64
	Services   []ServiceLineSnapshot
}

type InvoiceSnapshot struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	Total         float64
	PaymentStatus string
	PaidAt        *time.Time
	PaymentMethod *string
}

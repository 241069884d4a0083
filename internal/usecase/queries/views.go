package queries

import (
	"time"

	"github.com/google/uuid"
)

type HotelView struct {
	ID       uuid.UUID
	Name     string
	Location string
	Stars    int
}

type RoomView struct {
	ID        uuid.UUID
	HotelID   uuid.UUID
	HotelName string
	Location  string
	Number    int
	Floor     int
	RoomType  string
	Capacity  int
	Amenities string
}

type TariffView struct {
	HotelID          uuid.UUID
	RoomType         string
	Season           string
	BasePrice        float64
	VariationPercent float64
}

// StayWindow is the slice of a reservation the availability index needs.
type StayWindow struct {
	RoomID   uuid.UUID
	CheckIn  time.Time
	CheckOut time.Time
	Status   string
}

type ServiceLineView struct {
	ServiceID uuid.UUID
	Name      string
	Quantity  int
	UnitPrice float64
	Subtotal  float64
}

type ReservationView struct {
	ID         uuid.UUID
	Code       string
	GuestID    uuid.UUID
	GuestName  string
	RoomID     uuid.UUID
	RoomNumber int
	RoomType   string
	HotelID    uuid.UUID
	HotelName  string
	CheckIn    time.Time
	CheckOut   time.Time
	Nights     int
	Status     string
	BookedAt   time.Time
	CheckInAt  *time.Time
	CheckOutAt *time.Time
	AccessCode *string
	RoomTotal  float64
	Discount   *float64
	Services   []ServiceLineView

	InvoiceTotal  *float64
	PaymentStatus *string
}

type ReservationListItem struct {
	ID         uuid.UUID
	Code       string
	HotelName  string
	RoomNumber int
	CheckIn    time.Time
	CheckOut   time.Time
	Status     string
	RoomTotal  float64
}

type PendingCheckInView struct {
	ID         uuid.UUID
	Code       string
	GuestName  string
	GuestEmail *string
	HotelName  string
	RoomNumber int
	CheckIn    time.Time
}

type GuestView struct {
	ID           uuid.UUID
	Document     string
	FullName     string
	Email        *string
	Phone        *string
	Country      string
	RegisteredAt time.Time
	Points       int
}

// SearchResult is one bookable room with its priced stay.
type SearchResult struct {
	Room           RoomView
	Nights         int
	Total          float64
	AverageNightly float64
}

// OccupiedRoom reports when a room that matched the filters frees up.
type OccupiedRoom struct {
	Room          RoomView
	AvailableFrom time.Time
}

type SearchView struct {
	Results  []SearchResult
	Occupied []OccupiedRoom
}

type QuoteView struct {
	RoomID         uuid.UUID
	RoomType       string
	CheckIn        time.Time
	CheckOut       time.Time
	Nights         int
	NightlyRates   []float64
	Total          float64
	AverageNightly float64
}

// NightLine is one row of a stored-stay breakdown. Rounded nightly values
// reconcile against the persisted total, with any cent drift on the last night.
type NightLine struct {
	Date   time.Time
	Amount float64
}

type BreakdownView struct {
	ReservationID uuid.UUID
	Nights        []NightLine
	RoomTotal     float64
	ServicesTotal float64
	Services      []ServiceLineView
	GrandTotal    float64
}

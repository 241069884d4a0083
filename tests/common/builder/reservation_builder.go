//go:build unit || e2e

package builder

import (
	"time"

	"hotel-booking-api/internal/domain/catalog"
	domres "hotel-booking-api/internal/domain/reservation"
	reqdto "hotel-booking-api/internal/handler/dto/request"
	"hotel-booking-api/internal/usecase/queries"
	"hotel-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID        uuid.UUID
	Code      string
	GuestID   uuid.UUID
	RoomID    uuid.UUID
	CheckIn   time.Time
	CheckOut  time.Time
	Status    domres.Status
	BookedAt  time.Time
	RoomTotal float64
	Services  []domres.ServiceLine
}

func NewReservationBuilder() *ReservationBuilder {
	checkIn := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ID:        uuid.New(),
		Code:      "R-20250301120000-A1B2C3",
		GuestID:   uuid.New(),
		RoomID:    uuid.New(),
		CheckIn:   checkIn,
		CheckOut:  checkIn.AddDate(0, 0, 3),
		Status:    domres.StatusPending,
		BookedAt:  checkIn.AddDate(0, 0, -9),
		RoomTotal: 168.00,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) stay() domres.StayRange {
	s, err := domres.NewStayRange(b.CheckIn, b.CheckOut)
	if err != nil {
		panic(err)
	}
	return s
}

func (b *ReservationBuilder) detail() domres.Detail {
	return domres.Detail{
		RoomID:    b.RoomID,
		Nights:    b.stay().Nights(),
		RoomTotal: b.RoomTotal,
	}
}

// Build methods
func (b *ReservationBuilder) BuildDomain() (*domres.Reservation, error) {
	return domres.NewReservation(b.Code, b.GuestID, b.stay(), b.detail(), b.Services, b.BookedAt)
}

// BuildDomainAt reconstructs an existing reservation pinned at Status, for
// lifecycle transition tests.
func (b *ReservationBuilder) BuildDomainAt(status domres.Status) *domres.Reservation {
	return domres.Reconstruct(
		b.ID, b.Code, b.GuestID, b.stay(), status, b.BookedAt,
		nil, nil, nil, b.detail(), b.Services,
	)
}

func (b *ReservationBuilder) BuildBookRequestDTO() reqdto.BookReservationRequest {
	services := make([]reqdto.ServiceSelectionRequest, 0, len(b.Services))
	for _, l := range b.Services {
		services = append(services, reqdto.ServiceSelectionRequest{
			Name:     l.Name.String(),
			Quantity: l.Quantity,
		})
	}
	return reqdto.BookReservationRequest{
		GuestID:  b.GuestID,
		RoomID:   b.RoomID,
		CheckIn:  b.CheckIn.Format("2006-01-02"),
		CheckOut: b.CheckOut.Format("2006-01-02"),
		Services: services,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	services := make([]queries.ServiceLineView, 0, len(b.Services))
	for _, l := range b.Services {
		services = append(services, queries.ServiceLineView{
			ServiceID: l.ServiceID,
			Name:      l.Name.String(),
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Subtotal:  l.Subtotal(),
		})
	}
	return &queries.ReservationView{
		ID:         b.ID,
		Code:       b.Code,
		GuestID:    b.GuestID,
		GuestName:  "Maria Santos",
		RoomID:     b.RoomID,
		RoomNumber: 101,
		RoomType:   "double",
		HotelID:    uuid.New(),
		HotelName:  "Grand Plaza",
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		Nights:     b.stay().Nights(),
		Status:     b.Status.String(),
		BookedAt:   b.BookedAt,
		RoomTotal:  b.RoomTotal,
		Services:   services,
	}
}

func (b *ReservationBuilder) BuildSnapshot() *shared.ReservationSnapshot {
	services := make([]shared.ServiceLineSnapshot, 0, len(b.Services))
	for _, l := range b.Services {
		services = append(services, shared.ServiceLineSnapshot{
			ServiceID: l.ServiceID,
			Name:      l.Name.String(),
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		})
	}
	return &shared.ReservationSnapshot{
		ID:        b.ID,
		Code:      b.Code,
		GuestID:   b.GuestID,
		RoomID:    b.RoomID,
		CheckIn:   b.CheckIn,
		CheckOut:  b.CheckOut,
		Status:    b.Status.String(),
		BookedAt:  b.BookedAt,
		Nights:    b.stay().Nights(),
		RoomTotal: b.RoomTotal,
		Services:  services,
	}
}

// Fluent builder methods
func (b *ReservationBuilder) WithStay(checkIn, checkOut time.Time) *ReservationBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *ReservationBuilder) WithStatus(status domres.Status) *ReservationBuilder {
	b.Status = status
	return b
}

func (b *ReservationBuilder) WithRoomID(roomID uuid.UUID) *ReservationBuilder {
	b.RoomID = roomID
	return b
}

func (b *ReservationBuilder) WithGuestID(guestID uuid.UUID) *ReservationBuilder {
	b.GuestID = guestID
	return b
}

func (b *ReservationBuilder) WithRoomTotal(total float64) *ReservationBuilder {
	b.RoomTotal = total
	return b
}

func (b *ReservationBuilder) WithService(name catalog.ServiceName, quantity int, unitPrice float64) *ReservationBuilder {
	b.Services = append(b.Services, domres.ServiceLine{
		ServiceID: uuid.New(),
		Name:      name,
		Quantity:  quantity,
		UnitPrice: unitPrice,
	})
	return b
}

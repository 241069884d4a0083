package shared

import (
	"context"

	"hotel-booking-api/internal/domain/billing"
	"hotel-booking-api/internal/domain/guest"
	"hotel-booking-api/internal/domain/reservation"
	"hotel-booking-api/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations, with retry on
	// serialization failures. Everything a lifecycle transition touches
	// (reservation row + invoice row) commits or rolls back together.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single-query operations using implicit transactions.
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// Reads: command-side reads outside a transaction (pre-validation).
	Reads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Invoices() InvoiceRepository
	Guests() GuestRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads are the write-path lookups. Inside Within they run on the
// transaction connection, which is what makes the overlap re-check atomic
// with the insert.
type CommandReads interface {
	RoomByID(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
	TariffsByHotel(ctx context.Context, hotelID uuid.UUID) ([]TariffSnapshot, error)
	ServicesByHotel(ctx context.Context, hotelID uuid.UUID) ([]ServiceSnapshot, error)
	GuestByID(ctx context.Context, id uuid.UUID) (*GuestSnapshot, error)
	GuestByDocument(ctx context.Context, document string) (*GuestSnapshot, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	InvoiceByReservationID(ctx context.Context, reservationID uuid.UUID) (*InvoiceSnapshot, error)
}

type ReservationRepository interface {
	// LockRoom serializes concurrent bookings on one room (SELECT FOR UPDATE);
	// the overlap re-check and the insert must happen under this lock.
	LockRoom(ctx context.Context, dbtx db.DBTX, roomID uuid.UUID) error
	HasOverlap(ctx context.Context, dbtx db.DBTX, roomID uuid.UUID, stay reservation.StayRange) (bool, error)
	Create(ctx context.Context, dbtx db.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	UpdateLifecycle(ctx context.Context, dbtx db.DBTX, res *reservation.Reservation) error
}

type InvoiceRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, inv *billing.Invoice) (uuid.UUID, error)
	Update(ctx context.Context, dbtx db.DBTX, inv *billing.Invoice) error
}

type GuestRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, g *guest.Guest) (uuid.UUID, error)
	UpdatePoints(ctx context.Context, dbtx db.DBTX, guestID uuid.UUID, points int) error
}

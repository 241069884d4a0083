package repository

import (
	"context"

	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// CommandReads runs on whatever connection it is bound to. Bound to a
// transaction it gives the write path consistent re-reads under the row lock.
type CommandReads struct {
	dbtx db.DBTX
}

func NewCommandReads(dbtx db.DBTX) *CommandReads {
	return &CommandReads{dbtx: dbtx}
}

func (r *CommandReads) RoomByID(ctx context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	const query = `
		SELECT id, hotel_id, number, floor, room_type, capacity, amenities
		FROM rooms
		WHERE id = $1`

	var snap shared.RoomSnapshot
	err := r.dbtx.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.HotelID, &snap.Number, &snap.Floor,
		&snap.RoomType, &snap.Capacity, &snap.Amenities,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get room", err)
	}
	return &snap, nil
}

func (r *CommandReads) TariffsByHotel(ctx context.Context, hotelID uuid.UUID) ([]shared.TariffSnapshot, error) {
	const query = `
		SELECT hotel_id, room_type, season, base_price, variation_percent
		FROM tariffs
		WHERE hotel_id = $1`

	rows, err := r.dbtx.Query(ctx, query, hotelID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tariffs", err)
	}
	defer rows.Close()

	var tariffs []shared.TariffSnapshot
	for rows.Next() {
		var t shared.TariffSnapshot
		if err := rows.Scan(&t.HotelID, &t.RoomType, &t.Season, &t.BasePrice, &t.VariationPercent); err != nil {
			return nil, infra.WrapRepoErr("failed to scan tariff", err)
		}
		tariffs = append(tariffs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate tariffs", err)
	}
	return tariffs, nil
}

func (r *CommandReads) ServicesByHotel(ctx context.Context, hotelID uuid.UUID) ([]shared.ServiceSnapshot, error) {
	const query = `
		SELECT id, hotel_id, name, price
		FROM services
		WHERE hotel_id = $1
		ORDER BY name`

	rows, err := r.dbtx.Query(ctx, query, hotelID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	defer rows.Close()

	var services []shared.ServiceSnapshot
	for rows.Next() {
		var s shared.ServiceSnapshot
		if err := rows.Scan(&s.ID, &s.HotelID, &s.Name, &s.Price); err != nil {
			return nil, infra.WrapRepoErr("failed to scan service", err)
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate services", err)
	}
	return services, nil
}

func (r *CommandReads) GuestByID(ctx context.Context, id uuid.UUID) (*shared.GuestSnapshot, error) {
	const query = `
		SELECT id, document, full_name, email, phone, country, registered_at, points
		FROM guests
		WHERE id = $1`

	return r.scanGuest(r.dbtx.QueryRow(ctx, query, id))
}

func (r *CommandReads) GuestByDocument(ctx context.Context, document string) (*shared.GuestSnapshot, error) {
	const query = `
		SELECT id, document, full_name, email, phone, country, registered_at, points
		FROM guests
		WHERE document = $1`

	return r.scanGuest(r.dbtx.QueryRow(ctx, query, document))
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *CommandReads) scanGuest(row rowScanner) (*shared.GuestSnapshot, error) {
	var snap shared.GuestSnapshot
	err := row.Scan(
		&snap.ID, &snap.Document, &snap.FullName, &snap.Email,
		&snap.Phone, &snap.Country, &snap.RegisteredAt, &snap.Points,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get guest", err)
	}
	return &snap, nil
}

func (r *CommandReads) ReservationByID(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	const query = `
		SELECT r.id, r.code, r.guest_id, d.room_id,
		       r.check_in, r.check_out, r.status, r.booked_at,
		       r.check_in_at, r.check_out_at, r.access_code,
		       d.nights, d.room_total, d.discount
		FROM reservations r
		JOIN reservation_details d ON d.reservation_id = r.id
		WHERE r.id = $1`

	var snap shared.ReservationSnapshot
	err := r.dbtx.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.Code, &snap.GuestID, &snap.RoomID,
		&snap.CheckIn, &snap.CheckOut, &snap.Status, &snap.BookedAt,
		&snap.CheckInAt, &snap.CheckOutAt, &snap.AccessCode,
		&snap.Nights, &snap.RoomTotal, &snap.Discount,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reservation", err)
	}

	lines, err := r.serviceLines(ctx, id)
	if err != nil {
		return nil, err
	}
	snap.Services = lines
	snap.CheckIn = snap.CheckIn.UTC()
	snap.CheckOut = snap.CheckOut.UTC()
	return &snap, nil
}

func (r *CommandReads) serviceLines(ctx context.Context, reservationID uuid.UUID) ([]shared.ServiceLineSnapshot, error) {
	const query = `
		SELECT rs.service_id, s.name, rs.quantity, rs.unit_price
		FROM reservation_services rs
		JOIN services s ON s.id = rs.service_id
		WHERE rs.reservation_id = $1
		ORDER BY s.name`

	rows, err := r.dbtx.Query(ctx, query, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservation services", err)
	}
	defer rows.Close()

	var lines []shared.ServiceLineSnapshot
	for rows.Next() {
		var l shared.ServiceLineSnapshot
		if err := rows.Scan(&l.ServiceID, &l.Name, &l.Quantity, &l.UnitPrice); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation service", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation services", err)
	}
	return lines, nil
}

func (r *CommandReads) InvoiceByReservationID(ctx context.Context, reservationID uuid.UUID) (*shared.InvoiceSnapshot, error) {
	const query = `
		SELECT id, reservation_id, total, payment_status, paid_at, payment_method
		FROM invoices
		WHERE reservation_id = $1`

	var snap shared.InvoiceSnapshot
	err := r.dbtx.QueryRow(ctx, query, reservationID).Scan(
		&snap.ID, &snap.ReservationID, &snap.Total,
		&snap.PaymentStatus, &snap.PaidAt, &snap.PaymentMethod,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get invoice", err)
	}
	return &snap, nil
}

var _ shared.CommandReads = (*CommandReads)(nil)

package readstore

import (
	"context"
	"time"

	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/pkg/pgconv"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(db db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	const query = `
		SELECT res.id, res.code, res.guest_id, g.full_name,
		       d.room_id, rm.number, rm.room_type, rm.hotel_id, h.name,
		       res.check_in, res.check_out, d.nights, res.status, res.booked_at,
		       res.check_in_at, res.check_out_at, res.access_code,
		       d.room_total, d.discount,
		       i.total, i.payment_status
		FROM reservations res
		JOIN guests g ON g.id = res.guest_id
		JOIN reservation_details d ON d.reservation_id = res.id
		JOIN rooms rm ON rm.id = d.room_id
		JOIN hotels h ON h.id = rm.hotel_id
		LEFT JOIN invoices i ON i.reservation_id = res.id
		WHERE res.id = $1`

	var view queries.ReservationView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Code, &view.GuestID, &view.GuestName,
		&view.RoomID, &view.RoomNumber, &view.RoomType, &view.HotelID, &view.HotelName,
		&view.CheckIn, &view.CheckOut, &view.Nights, &view.Status, &view.BookedAt,
		&view.CheckInAt, &view.CheckOutAt, &view.AccessCode,
		&view.RoomTotal, &view.Discount,
		&view.InvoiceTotal, &view.PaymentStatus,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	view.CheckIn = view.CheckIn.UTC()
	view.CheckOut = view.CheckOut.UTC()

	services, err := r.serviceLines(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Services = services
	return &view, nil
}

func (r *ReservationReadStore) serviceLines(ctx context.Context, reservationID uuid.UUID) ([]queries.ServiceLineView, error) {
	const query = `
		SELECT rs.service_id, s.name, rs.quantity, rs.unit_price,
		       rs.quantity * rs.unit_price
		FROM reservation_services rs
		JOIN services s ON s.id = rs.service_id
		WHERE rs.reservation_id = $1
		ORDER BY s.name`

	rows, err := r.db.Query(ctx, query, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservation services", err)
	}
	defer rows.Close()

	var lines []queries.ServiceLineView
	for rows.Next() {
		var l queries.ServiceLineView
		if err := rows.Scan(&l.ServiceID, &l.Name, &l.Quantity, &l.UnitPrice, &l.Subtotal); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation service", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation services", err)
	}
	return lines, nil
}

func (r *ReservationReadStore) FindByGuestID(ctx context.Context, guestID uuid.UUID) ([]queries.ReservationListItem, error) {
	const query = `
		SELECT res.id, res.code, h.name, rm.number,
		       res.check_in, res.check_out, res.status, d.room_total
		FROM reservations res
		JOIN reservation_details d ON d.reservation_id = res.id
		JOIN rooms rm ON rm.id = d.room_id
		JOIN hotels h ON h.id = rm.hotel_id
		WHERE res.guest_id = $1
		ORDER BY res.check_in DESC, res.id`

	rows, err := r.db.Query(ctx, query, guestID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by guest", err)
	}
	defer rows.Close()

	var items []queries.ReservationListItem
	for rows.Next() {
		var it queries.ReservationListItem
		if err := rows.Scan(
			&it.ID, &it.Code, &it.HotelName, &it.RoomNumber,
			&it.CheckIn, &it.CheckOut, &it.Status, &it.RoomTotal,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation list item", err)
		}
		it.CheckIn = it.CheckIn.UTC()
		it.CheckOut = it.CheckOut.UTC()
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations", err)
	}
	return items, nil
}

// StayWindows returns the non-cancelled stays that overlap [from, until) for
// the given rooms. The availability index is built from these.
func (r *ReservationReadStore) StayWindows(ctx context.Context, roomIDs []uuid.UUID, from, until time.Time) ([]queries.StayWindow, error) {
	if len(roomIDs) == 0 {
		return nil, nil
	}

	const query = `
		SELECT d.room_id, res.check_in, res.check_out, res.status
		FROM reservations res
		JOIN reservation_details d ON d.reservation_id = res.id
		WHERE d.room_id = ANY($1)
		  AND res.status <> 'cancelled'
		  AND res.check_in < $3
		  AND $2 < res.check_out`

	rows, err := r.db.Query(ctx, query, roomIDs, from, until)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list stay windows", err)
	}
	defer rows.Close()

	var windows []queries.StayWindow
	for rows.Next() {
		var w queries.StayWindow
		if err := rows.Scan(&w.RoomID, &w.CheckIn, &w.CheckOut, &w.Status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan stay window", err)
		}
		w.CheckIn = w.CheckIn.UTC()
		w.CheckOut = w.CheckOut.UTC()
		windows = append(windows, w)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate stay windows", err)
	}
	return windows, nil
}

// PendingCheckIns returns pending reservations whose check-in date falls in
// (from, until]. The reminder job polls this with its 48h and 24h windows.
func (r *ReservationReadStore) PendingCheckIns(ctx context.Context, from, until time.Time) ([]queries.PendingCheckInView, error) {
	const query = `
		SELECT res.id, res.code, g.full_name, g.email, h.name, rm.number, res.check_in
		FROM reservations res
		JOIN guests g ON g.id = res.guest_id
		JOIN reservation_details d ON d.reservation_id = res.id
		JOIN rooms rm ON rm.id = d.room_id
		JOIN hotels h ON h.id = rm.hotel_id
		WHERE res.status = 'pending'
		  AND res.check_in > $1
		  AND res.check_in <= $2
		ORDER BY res.check_in, res.code`

	rows, err := r.db.Query(ctx, query, from, until)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending check-ins", err)
	}
	defer rows.Close()

	var views []queries.PendingCheckInView
	for rows.Next() {
		var v queries.PendingCheckInView
		if err := rows.Scan(&v.ID, &v.Code, &v.GuestName, &v.GuestEmail, &v.HotelName, &v.RoomNumber, &v.CheckIn); err != nil {
			return nil, infra.WrapRepoErr("failed to scan pending check-in", err)
		}
		v.CheckIn = v.CheckIn.UTC()
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate pending check-ins", err)
	}
	return views, nil
}

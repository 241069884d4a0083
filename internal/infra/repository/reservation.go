package repository

import (
	"context"

	"hotel-booking-api/internal/domain/reservation"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"

	"github.com/google/uuid"
)

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

func (r *ReservationRepository) LockRoom(ctx context.Context, dbtx db.DBTX, roomID uuid.UUID) error {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, `SELECT id FROM rooms WHERE id = $1 FOR UPDATE`, roomID).Scan(&id)
	if err != nil {
		return infra.WrapRepoErr("failed to lock room for booking", err)
	}
	return nil
}

func (r *ReservationRepository) HasOverlap(ctx context.Context, dbtx db.DBTX, roomID uuid.UUID, stay reservation.StayRange) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1
			FROM reservations r
			JOIN reservation_details d ON d.reservation_id = r.id
			WHERE d.room_id = $1
			  AND r.status <> 'cancelled'
			  AND r.check_in < $3
			  AND $2 < r.check_out
		)`

	var exists bool
	err := dbtx.QueryRow(ctx, query, roomID, stay.CheckIn(), stay.CheckOut()).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check reservation overlap", err)
	}
	return exists, nil
}

func (r *ReservationRepository) Create(ctx context.Context, dbtx db.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	const insertReservation = `
		INSERT INTO reservations (id, code, guest_id, check_in, check_out, status, booked_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, insertReservation,
		res.ID(), res.Code(), res.GuestID(),
		res.Stay().CheckIn(), res.Stay().CheckOut(),
		res.Status().String(), res.BookedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	const insertDetail = `
		INSERT INTO reservation_details (id, reservation_id, room_id, nights, room_total, discount)
		VALUES ($1, $2, $3, $4, $5, $6)`

	detail := res.Detail()
	_, err = dbtx.Exec(ctx, insertDetail,
		uuid.New(), id, detail.RoomID, detail.Nights, detail.RoomTotal, detail.Discount,
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation detail", err)
	}

	const insertService = `
		INSERT INTO reservation_services (id, reservation_id, service_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5)`

	for _, line := range res.Services() {
		if _, err := dbtx.Exec(ctx, insertService,
			uuid.New(), id, line.ServiceID, line.Quantity, line.UnitPrice,
		); err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to create reservation service line", err)
		}
	}

	return id, nil
}

func (r *ReservationRepository) UpdateLifecycle(ctx context.Context, dbtx db.DBTX, res *reservation.Reservation) error {
	const query = `
		UPDATE reservations
		SET status = $2, check_in_at = $3, check_out_at = $4, access_code = $5, updated_at = now()
		WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query,
		res.ID(), res.Status().String(), res.CheckInAt(), res.CheckOutAt(), res.AccessCode(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation lifecycle", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found for lifecycle update", nil, infra.KindNotFound)
	}
	return nil
}

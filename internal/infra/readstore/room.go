package readstore

import (
	"context"

	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/pkg/pgconv"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(db db.DBTX) *RoomReadStore {
	return &RoomReadStore{db: db}
}

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	const query = `
		SELECT r.id, r.hotel_id, h.name, h.location,
		       r.number, r.floor, r.room_type, r.capacity, r.amenities
		FROM rooms r
		JOIN hotels h ON h.id = r.hotel_id
		WHERE r.id = $1`

	var view queries.RoomView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.HotelID, &view.HotelName, &view.Location,
		&view.Number, &view.Floor, &view.RoomType, &view.Capacity, &view.Amenities,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}
	return &view, nil
}

// List returns rooms narrowed by hotel or location. Both filters nil means
// every room, which search relies on for cross-hotel queries.
func (r *RoomReadStore) List(ctx context.Context, hotelID *uuid.UUID, location *string) ([]queries.RoomView, error) {
	const query = `
		SELECT r.id, r.hotel_id, h.name, h.location,
		       r.number, r.floor, r.room_type, r.capacity, r.amenities
		FROM rooms r
		JOIN hotels h ON h.id = r.hotel_id
		WHERE ($1::uuid IS NULL OR r.hotel_id = $1)
		  AND ($2::text IS NULL OR h.location ILIKE '%' || $2 || '%')
		ORDER BY h.name, r.number`

	rows, err := r.db.Query(ctx, query, hotelID, location)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	var views []queries.RoomView
	for rows.Next() {
		var v queries.RoomView
		if err := rows.Scan(
			&v.ID, &v.HotelID, &v.HotelName, &v.Location,
			&v.Number, &v.Floor, &v.RoomType, &v.Capacity, &v.Amenities,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate rooms", err)
	}
	return views, nil
}

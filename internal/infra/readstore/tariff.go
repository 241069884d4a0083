package readstore

import (
	"context"

	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type TariffReadStore struct {
	db db.DBTX
}

func NewTariffReadStore(db db.DBTX) *TariffReadStore {
	return &TariffReadStore{db: db}
}

// List returns tariff entries, optionally scoped to one hotel. Search builds
// a rate table from these for every hotel in scope.
func (t *TariffReadStore) List(ctx context.Context, hotelID *uuid.UUID) ([]queries.TariffView, error) {
	const query = `
		SELECT hotel_id, room_type, season, base_price, variation_percent
		FROM tariffs
		WHERE ($1::uuid IS NULL OR hotel_id = $1)`

	rows, err := t.db.Query(ctx, query, hotelID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tariffs", err)
	}
	defer rows.Close()

	var views []queries.TariffView
	for rows.Next() {
		var v queries.TariffView
		if err := rows.Scan(&v.HotelID, &v.RoomType, &v.Season, &v.BasePrice, &v.VariationPercent); err != nil {
			return nil, infra.WrapRepoErr("failed to scan tariff", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate tariffs", err)
	}
	return views, nil
}

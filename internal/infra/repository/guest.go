package repository

import (
	"context"

	"hotel-booking-api/internal/domain/guest"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"

	"github.com/google/uuid"
)

type GuestRepository struct{}

func NewGuestRepository() *GuestRepository {
	return &GuestRepository{}
}

func (r *GuestRepository) Create(ctx context.Context, dbtx db.DBTX, g *guest.Guest) (uuid.UUID, error) {
	const query = `
		INSERT INTO guests (id, document, full_name, email, phone, country, registered_at, points)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, query,
		g.ID(), g.Document(), g.FullName(), g.Email(), g.Phone(),
		g.Country(), g.RegisteredAt(), g.Points(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create guest", err)
	}
	return id, nil
}

func (r *GuestRepository) UpdatePoints(ctx context.Context, dbtx db.DBTX, guestID uuid.UUID, points int) error {
	const query = `UPDATE guests SET points = $2, updated_at = now() WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query, guestID, points)
	if err != nil {
		return infra.WrapRepoErr("failed to update guest points", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("guest not found for points update", nil, infra.KindNotFound)
	}
	return nil
}

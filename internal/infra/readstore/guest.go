package readstore

import (
	"context"

	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/pkg/pgconv"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type GuestReadStore struct {
	db db.DBTX
}

func NewGuestReadStore(db db.DBTX) *GuestReadStore {
	return &GuestReadStore{db: db}
}

func (g *GuestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.GuestView, error) {
	const query = `
		SELECT id, document, full_name, email, phone, country, registered_at, points
		FROM guests
		WHERE id = $1`

	var view queries.GuestView
	err := g.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Document, &view.FullName, &view.Email,
		&view.Phone, &view.Country, &view.RegisteredAt, &view.Points,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("guest not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find guest by ID", err)
	}
	return &view, nil
}

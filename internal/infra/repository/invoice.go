package repository

import (
	"context"

	"hotel-booking-api/internal/domain/billing"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"

	"github.com/google/uuid"
)

type InvoiceRepository struct{}

func NewInvoiceRepository() *InvoiceRepository {
	return &InvoiceRepository{}
}

func (r *InvoiceRepository) Create(ctx context.Context, dbtx db.DBTX, inv *billing.Invoice) (uuid.UUID, error) {
	const query = `
		INSERT INTO invoices (id, reservation_id, total, payment_status)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, query,
		inv.ID(), inv.ReservationID(), inv.Total(), inv.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create invoice", err)
	}
	return id, nil
}

func (r *InvoiceRepository) Update(ctx context.Context, dbtx db.DBTX, inv *billing.Invoice) error {
	const query = `
		UPDATE invoices
		SET total = $2, payment_status = $3, paid_at = $4, payment_method = $5, updated_at = now()
		WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query,
		inv.ID(), inv.Total(), inv.Status().String(), inv.PaidAt(), inv.PaymentMethod(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update invoice", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("invoice not found for update", nil, infra.KindNotFound)
	}
	return nil
}

package commands

import (
	"context"

	"hotel-booking-api/internal/domain/guest"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase/queries"
	"hotel-booking-api/internal/usecase/shared"
)

type RegisterGuestInput struct {
	Document string
	FullName string
	Email    *string
	Phone    *string
	Country  string
}

type GuestCommands interface {
	Register(ctx context.Context, input RegisterGuestInput) (*queries.GuestView, error)
}

type guestCommandsImpl struct {
	uow   shared.UnitOfWork
	repo  shared.GuestRepository
	clock clock.Clock
}

func NewGuestCommands(uow shared.UnitOfWork, repo shared.GuestRepository, clk clock.Clock) GuestCommands {
	return &guestCommandsImpl{uow: uow, repo: repo, clock: clk}
}

func (c *guestCommandsImpl) Register(ctx context.Context, input RegisterGuestInput) (*queries.GuestView, error) {
	g, err := guest.NewGuest(
		input.Document, input.FullName,
		input.Email, input.Phone,
		input.Country, c.clock.Now(),
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidationFailed)
	}

	err = c.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		if _, err := c.repo.Create(ctx, dbtx, g); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.ErrDuplicateGuest
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &queries.GuestView{
		ID:           g.ID(),
		Document:     g.Document(),
		FullName:     g.FullName(),
		Email:        g.Email(),
		Phone:        g.Phone(),
		Country:      g.Country(),
		RegisteredAt: g.RegisteredAt(),
		Points:       g.Points(),
	}, nil
}

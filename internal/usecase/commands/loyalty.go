package commands

import (
	"context"

	"hotel-booking-api/internal/domain/guest"
	"hotel-booking-api/internal/domain/reservation"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type AccrualResult struct {
	GuestID uuid.UUID
	Earned  int
	Balance int
}

type RedeemResult struct {
	GuestID  uuid.UUID
	Redeemed int
	Balance  int
}

type LoyaltyCommands interface {
	// AccruePoints credits one point per currency unit of the reservation's
	// invoice total, rounded. Only completed stays accrue.
	AccruePoints(ctx context.Context, reservationID uuid.UUID) (*AccrualResult, error)
	RedeemPoints(ctx context.Context, guestID uuid.UUID, points int) (*RedeemResult, error)
}

type loyaltyCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewLoyaltyCommands(uow shared.UnitOfWork) LoyaltyCommands {
	return &loyaltyCommandsImpl{uow: uow}
}

func (c *loyaltyCommandsImpl) AccruePoints(ctx context.Context, reservationID uuid.UUID) (*AccrualResult, error) {
	var result AccrualResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reads := tx.Reads()

		resSnap, err := reads.ReservationByID(ctx, reservationID)
		if err != nil {
			return markLookup(err, errs.ErrReservationNotFound)
		}
		if reservation.Status(resSnap.Status) != reservation.StatusCompleted {
			return errs.ErrInvalidState
		}

		invSnap, err := reads.InvoiceByReservationID(ctx, reservationID)
		if err != nil {
			return markLookup(err, errs.ErrInvoiceNotFound)
		}

		g, err := c.loadGuest(ctx, tx, resSnap.GuestID)
		if err != nil {
			return err
		}

		earned := g.AccruePoints(invSnap.Total)
		if err := tx.Guests().UpdatePoints(ctx, tx.DB(), g.ID(), g.Points()); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		result = AccrualResult{GuestID: g.ID(), Earned: earned, Balance: g.Points()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *loyaltyCommandsImpl) RedeemPoints(ctx context.Context, guestID uuid.UUID, points int) (*RedeemResult, error) {
	var result RedeemResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		g, err := c.loadGuest(ctx, tx, guestID)
		if err != nil {
			return err
		}
		if err := g.RedeemPoints(points); err != nil {
			return errs.Mark(err, errs.ErrInvalidAmount)
		}
		if err := tx.Guests().UpdatePoints(ctx, tx.DB(), g.ID(), g.Points()); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		result = RedeemResult{GuestID: g.ID(), Redeemed: points, Balance: g.Points()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *loyaltyCommandsImpl) loadGuest(ctx context.Context, tx shared.Tx, id uuid.UUID) (*guest.Guest, error) {
	snap, err := tx.Reads().GuestByID(ctx, id)
	if err != nil {
		return nil, markLookup(err, errs.ErrGuestNotFound)
	}
	return guest.Reconstruct(
		snap.ID, snap.Document, snap.FullName,
		snap.Email, snap.Phone, snap.Country,
		snap.RegisteredAt, snap.Points,
	), nil
}

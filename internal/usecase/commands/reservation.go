package commands

import (
	"context"
	"time"

	"hotel-booking-api/internal/domain/billing"
	"hotel-booking-api/internal/domain/catalog"
	"hotel-booking-api/internal/domain/pricing"
	"hotel-booking-api/internal/domain/reservation"
	"hotel-booking-api/internal/domain/room"
	"hotel-booking-api/internal/domain/tariff"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/pkg/money"
	"hotel-booking-api/internal/usecase/queries"
	"hotel-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type ServiceSelection struct {
	Name     string
	Quantity int
}

type BookReservationInput struct {
	GuestID  uuid.UUID
	RoomID   uuid.UUID
	CheckIn  string
	CheckOut string
	Services []ServiceSelection
}

type CheckOutResult struct {
	Reservation *queries.ReservationView
	Surcharge   float64
	Total       float64
}

type CancelResult struct {
	Reservation   *queries.ReservationView
	RefundPercent float64
	RefundAmount  float64
	Total         float64
}

type ReservationCommands interface {
	Book(ctx context.Context, input BookReservationInput) (*queries.ReservationView, error)
	CheckIn(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error)
	CheckOut(ctx context.Context, id uuid.UUID) (*CheckOutResult, error)
	Cancel(ctx context.Context, id uuid.UUID) (*CancelResult, error)
}

type reservationCommandsImpl struct {
	uow                shared.UnitOfWork
	reservationQueries queries.ReservationQueries
	clock              clock.Clock
	newCode            reservation.CodeFunc
	newAccessCode      reservation.AccessCodeFunc
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	reservationQueries queries.ReservationQueries,
	clk clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:                uow,
		reservationQueries: reservationQueries,
		clock:              clk,
		newCode:            reservation.GenerateCode,
		newAccessCode:      reservation.GenerateAccessCode,
	}
}

// Book reserves one room for a guest over a stay range, pricing the stay from
// the current tariff table and snapshotting add-on prices. The room row is
// locked and the overlap check re-run inside the transaction, so two
// concurrent bookings of the same room cannot both commit.
func (c *reservationCommandsImpl) Book(ctx context.Context, input BookReservationInput) (*queries.ReservationView, error) {
	stay, err := parseStayRange(input.CheckIn, input.CheckOut)
	if err != nil {
		return nil, err
	}

	var reservationID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reads := tx.Reads()

		guestSnap, err := reads.GuestByID(ctx, input.GuestID)
		if err != nil {
			return markLookup(err, errs.ErrGuestNotFound)
		}

		roomSnap, err := reads.RoomByID(ctx, input.RoomID)
		if err != nil {
			return markLookup(err, errs.ErrRoomNotFound)
		}

		if err := tx.Reservations().LockRoom(ctx, tx.DB(), roomSnap.ID); err != nil {
			return markLookup(err, errs.ErrRoomNotFound)
		}
		overlaps, err := tx.Reservations().HasOverlap(ctx, tx.DB(), roomSnap.ID, stay)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if overlaps {
			return errs.ErrRoomUnavailable
		}

		quote, err := c.priceStay(ctx, reads, roomSnap, stay)
		if err != nil {
			return err
		}

		lines, err := c.resolveServices(ctx, reads, roomSnap.HotelID, input.Services)
		if err != nil {
			return err
		}

		now := c.clock.Now()
		res, err := reservation.NewReservation(
			c.newCode(now),
			guestSnap.ID,
			stay,
			reservation.Detail{
				RoomID:    roomSnap.ID,
				Nights:    quote.Nights,
				RoomTotal: quote.Total,
			},
			lines,
			now,
		)
		if err != nil {
			return errs.Mark(err, errs.ErrValidationFailed)
		}

		if _, err := tx.Reservations().Create(ctx, tx.DB(), res); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		inv, err := billing.Open(res.ID(), money.Round2(quote.Total+res.ServicesTotal()))
		if err != nil {
			return errs.Mark(err, errs.ErrValidationFailed)
		}
		if _, err := tx.Invoices().Create(ctx, tx.DB(), inv); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		reservationID = res.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.reservationQueries.GetByID(ctx, reservationID)
}

func (c *reservationCommandsImpl) CheckIn(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := c.loadReservation(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := res.CheckIn(c.clock.Now(), c.newAccessCode()); err != nil {
			return errs.Mark(err, errs.ErrInvalidState)
		}
		if err := tx.Reservations().UpdateLifecycle(ctx, tx.DB(), res); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.reservationQueries.GetByID(ctx, id)
}

// CheckOut completes the stay. A checkout past the cutoff on the departure day
// adds the late surcharge to the invoice unless the stay booked the
// late-checkout add-on.
func (c *reservationCommandsImpl) CheckOut(ctx context.Context, id uuid.UUID) (*CheckOutResult, error) {
	var (
		surcharge float64
		total     float64
	)
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := c.loadReservation(ctx, tx, id)
		if err != nil {
			return err
		}

		surcharge, err = res.CheckOut(c.clock.Now())
		if err != nil {
			return errs.Mark(err, errs.ErrInvalidState)
		}

		inv, err := c.loadInvoice(ctx, tx, id)
		if err != nil {
			return err
		}
		if surcharge > 0 {
			if err := inv.ApplySurcharge(surcharge); err != nil {
				return errs.Mark(err, errs.ErrInvalidAmount)
			}
			if err := tx.Invoices().Update(ctx, tx.DB(), inv); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}
		total = inv.Total()

		if err := tx.Reservations().UpdateLifecycle(ctx, tx.DB(), res); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := c.reservationQueries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &CheckOutResult{Reservation: view, Surcharge: surcharge, Total: total}, nil
}

// Cancel voids the reservation and refunds by lead time: a full refund two
// days out, half a refund one day out, nothing later.
func (c *reservationCommandsImpl) Cancel(ctx context.Context, id uuid.UUID) (*CancelResult, error) {
	var (
		refundPercent float64
		refundAmount  float64
		total         float64
	)
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := c.loadReservation(ctx, tx, id)
		if err != nil {
			return err
		}

		refundPercent, err = res.Cancel(c.clock.Now())
		if err != nil {
			return errs.Mark(err, errs.ErrInvalidState)
		}

		inv, err := c.loadInvoice(ctx, tx, id)
		if err != nil {
			return err
		}
		if refundPercent > 0 {
			refundAmount = money.Round2(inv.Total() * refundPercent)
			if err := inv.ApplyRefund(refundAmount); err != nil {
				return errs.Mark(err, errs.ErrInvalidAmount)
			}
			if err := tx.Invoices().Update(ctx, tx.DB(), inv); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}
		total = inv.Total()

		if err := tx.Reservations().UpdateLifecycle(ctx, tx.DB(), res); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := c.reservationQueries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &CancelResult{
		Reservation:   view,
		RefundPercent: refundPercent,
		RefundAmount:  refundAmount,
		Total:         total,
	}, nil
}

func (c *reservationCommandsImpl) priceStay(
	ctx context.Context,
	reads shared.CommandReads,
	roomSnap *shared.RoomSnapshot,
	stay reservation.StayRange,
) (*pricing.Quote, error) {
	tariffSnaps, err := reads.TariffsByHotel(ctx, roomSnap.HotelID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	entries := make([]tariff.Entry, 0, len(tariffSnaps))
	for _, t := range tariffSnaps {
		entries = append(entries, tariff.Entry{
			HotelID:          t.HotelID,
			RoomType:         room.Type(t.RoomType),
			Season:           tariff.Season(t.Season),
			BasePrice:        t.BasePrice,
			VariationPercent: t.VariationPercent,
		})
	}

	roomEntity := room.Reconstruct(
		roomSnap.ID, roomSnap.HotelID,
		roomSnap.Number, roomSnap.Floor,
		room.Type(roomSnap.RoomType), roomSnap.Capacity, roomSnap.Amenities,
		c.clock.Now(), c.clock.Now(),
	)

	calc := pricing.NewCalculator(tariff.NewTable(entries))
	quote, err := calc.PriceStay(roomEntity, stay)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrTariffMissing)
	}
	return quote, nil
}

func (c *reservationCommandsImpl) resolveServices(
	ctx context.Context,
	reads shared.CommandReads,
	hotelID uuid.UUID,
	selections []ServiceSelection,
) ([]reservation.ServiceLine, error) {
	if len(selections) == 0 {
		return nil, nil
	}

	svcSnaps, err := reads.ServicesByHotel(ctx, hotelID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	services := make([]catalog.Service, 0, len(svcSnaps))
	for _, s := range svcSnaps {
		services = append(services, catalog.Service{
			ID:      s.ID,
			HotelID: s.HotelID,
			Name:    catalog.ServiceName(s.Name),
			Price:   s.Price,
		})
	}
	offering := catalog.NewOffering(services)

	lines := make([]reservation.ServiceLine, 0, len(selections))
	for _, sel := range selections {
		name, err := catalog.NewServiceName(sel.Name)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrServiceNotOffered)
		}
		svc, err := offering.Resolve(name)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrServiceNotOffered)
		}
		quantity := sel.Quantity
		if quantity == 0 {
			quantity = 1
		}
		if quantity < 0 {
			return nil, errs.ErrInvalidAmount
		}
		lines = append(lines, reservation.ServiceLine{
			ServiceID: svc.ID,
			Name:      svc.Name,
			Quantity:  quantity,
			UnitPrice: svc.Price,
		})
	}
	return lines, nil
}

func (c *reservationCommandsImpl) loadReservation(ctx context.Context, tx shared.Tx, id uuid.UUID) (*reservation.Reservation, error) {
	snap, err := tx.Reads().ReservationByID(ctx, id)
	if err != nil {
		return nil, markLookup(err, errs.ErrReservationNotFound)
	}
	return reservationFromSnapshot(snap)
}

func (c *reservationCommandsImpl) loadInvoice(ctx context.Context, tx shared.Tx, reservationID uuid.UUID) (*billing.Invoice, error) {
	snap, err := tx.Reads().InvoiceByReservationID(ctx, reservationID)
	if err != nil {
		return nil, markLookup(err, errs.ErrInvoiceNotFound)
	}
	return billing.Reconstruct(
		snap.ID, snap.ReservationID,
		snap.Total, billing.PaymentStatus(snap.PaymentStatus),
		snap.PaidAt, snap.PaymentMethod,
	), nil
}

func reservationFromSnapshot(snap *shared.ReservationSnapshot) (*reservation.Reservation, error) {
	stay, err := reservation.NewStayRange(snap.CheckIn, snap.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidRange)
	}

	lines := make([]reservation.ServiceLine, 0, len(snap.Services))
	for _, l := range snap.Services {
		lines = append(lines, reservation.ServiceLine{
			ServiceID: l.ServiceID,
			Name:      catalog.ServiceName(l.Name),
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		})
	}

	return reservation.Reconstruct(
		snap.ID, snap.Code, snap.GuestID,
		stay, reservation.Status(snap.Status),
		snap.BookedAt, snap.CheckInAt, snap.CheckOutAt, snap.AccessCode,
		reservation.Detail{
			RoomID:    snap.RoomID,
			Nights:    snap.Nights,
			RoomTotal: snap.RoomTotal,
			Discount:  snap.Discount,
		},
		lines,
	), nil
}

func parseStayRange(checkIn, checkOut string) (reservation.StayRange, error) {
	in, err := parseDate(checkIn)
	if err != nil {
		return reservation.StayRange{}, errs.Mark(err, errs.ErrInvalidRange)
	}
	out, err := parseDate(checkOut)
	if err != nil {
		return reservation.StayRange{}, errs.Mark(err, errs.ErrInvalidRange)
	}
	stay, err := reservation.NewStayRange(in, out)
	if err != nil {
		return reservation.StayRange{}, errs.Mark(err, errs.ErrInvalidRange)
	}
	return stay, nil
}

const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func markLookup(err error, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return notFound
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}

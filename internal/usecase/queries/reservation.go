package queries

import (
	"context"
	"time"

	"hotel-booking-api/internal/domain/pricing"
	"hotel-booking-api/internal/domain/reservation"
	"hotel-booking-api/internal/domain/room"
	"hotel-booking-api/internal/domain/tariff"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/pkg/money"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByGuest(ctx context.Context, guestID uuid.UUID) ([]ReservationListItem, error)
	// Breakdown re-derives a per-night price breakdown for a stored stay,
	// reconciled so the lines sum exactly to the billed room total.
	Breakdown(ctx context.Context, id uuid.UUID) (*BreakdownView, error)
	// PendingCheckInsWithin lists pending reservations arriving in (from, until].
	PendingCheckInsWithin(ctx context.Context, from, until time.Time) ([]PendingCheckInView, error)
}

type ReservationViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByGuestID(ctx context.Context, guestID uuid.UUID) ([]ReservationListItem, error)
	PendingCheckIns(ctx context.Context, from, until time.Time) ([]PendingCheckInView, error)
}

type reservationQueriesImpl struct {
	repo    ReservationViewRepo
	rooms   RoomViewRepo
	tariffs TariffViewRepo
}

func NewReservationQueries(repo ReservationViewRepo, rooms RoomViewRepo, tariffs TariffViewRepo) ReservationQueries {
	return &reservationQueriesImpl{repo: repo, rooms: rooms, tariffs: tariffs}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReservationNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListByGuest(ctx context.Context, guestID uuid.UUID) ([]ReservationListItem, error) {
	items, err := q.repo.FindByGuestID(ctx, guestID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}

func (q *reservationQueriesImpl) Breakdown(ctx context.Context, id uuid.UUID) (*BreakdownView, error) {
	view, err := q.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	stay, err := reservation.NewStayRange(view.CheckIn, view.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidRange)
	}

	nightly, err := q.repriceNights(ctx, view, stay)
	if err != nil {
		return nil, err
	}

	reconciled := pricing.Reconcile(nightly, view.RoomTotal)
	dates := stay.Dates()
	lines := make([]NightLine, len(reconciled))
	for i, amount := range reconciled {
		lines[i] = NightLine{Date: dates[i], Amount: amount}
	}

	var servicesTotal float64
	for _, s := range view.Services {
		servicesTotal += s.Subtotal
	}
	servicesTotal = money.Round2(servicesTotal)

	grand := money.Round2(view.RoomTotal + servicesTotal)
	if view.InvoiceTotal != nil {
		grand = *view.InvoiceTotal
	}

	return &BreakdownView{
		ReservationID: view.ID,
		Nights:        lines,
		RoomTotal:     view.RoomTotal,
		ServicesTotal: servicesTotal,
		Services:      view.Services,
		GrandTotal:    grand,
	}, nil
}

// repriceNights prices each night from the current tariff table. When tariffs
// changed or vanished since booking the stored total is split evenly instead;
// Reconcile folds the drift either way.
func (q *reservationQueriesImpl) repriceNights(ctx context.Context, view *ReservationView, stay reservation.StayRange) ([]float64, error) {
	roomView, err := q.rooms.FindByID(ctx, view.RoomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return evenSplit(view.RoomTotal, stay.Nights()), nil
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	tariffViews, err := q.tariffs.List(ctx, &roomView.HotelID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	entries := make([]tariff.Entry, 0, len(tariffViews))
	for _, t := range tariffViews {
		entries = append(entries, tariff.Entry{
			HotelID:          t.HotelID,
			RoomType:         room.Type(t.RoomType),
			Season:           tariff.Season(t.Season),
			BasePrice:        t.BasePrice,
			VariationPercent: t.VariationPercent,
		})
	}

	calc := pricing.NewCalculator(tariff.NewTable(entries))
	quote, err := calc.PriceStay(roomFromView(*roomView), stay)
	if err != nil {
		return evenSplit(view.RoomTotal, stay.Nights()), nil
	}
	return quote.Nightly, nil
}

func evenSplit(total float64, nights int) []float64 {
	if nights < 1 {
		nights = 1
	}
	out := make([]float64, nights)
	per := total / float64(nights)
	for i := range out {
		out[i] = per
	}
	return out
}

func (q *reservationQueriesImpl) PendingCheckInsWithin(ctx context.Context, from, until time.Time) ([]PendingCheckInView, error) {
	views, err := q.repo.PendingCheckIns(ctx, from, until)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

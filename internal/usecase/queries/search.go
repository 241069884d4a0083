package queries

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hotel-booking-api/internal/domain/availability"
	"hotel-booking-api/internal/domain/pricing"
	"hotel-booking-api/internal/domain/reservation"
	"hotel-booking-api/internal/domain/room"
	"hotel-booking-api/internal/domain/tariff"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type SearchParams struct {
	CheckIn        string
	CheckOut       string
	HotelID        *uuid.UUID
	Location       *string
	MinCapacity    int
	RoomType       *string
	RequireWifi    bool
	RequireJacuzzi bool
	MaxAvgNightly  *float64
}

type SearchQueries interface {
	// Search returns every matching free room priced for the stay, plus the
	// rooms that matched the filters but are taken, with the date they free up.
	Search(ctx context.Context, params SearchParams) (*SearchView, error)
	// Quote prices one room for a stay without reserving anything.
	Quote(ctx context.Context, roomID uuid.UUID, checkIn, checkOut string) (*QuoteView, error)
}

type RoomViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	List(ctx context.Context, hotelID *uuid.UUID, location *string) ([]RoomView, error)
}

type TariffViewRepo interface {
	List(ctx context.Context, hotelID *uuid.UUID) ([]TariffView, error)
}

type StayWindowRepo interface {
	StayWindows(ctx context.Context, roomIDs []uuid.UUID, from, until time.Time) ([]StayWindow, error)
}

// SearchCache is best-effort: a miss or failure just means recomputing.
type SearchCache interface {
	Get(ctx context.Context, key string) (*SearchView, bool)
	Set(ctx context.Context, key string, view *SearchView)
}

type searchQueriesImpl struct {
	rooms   RoomViewRepo
	tariffs TariffViewRepo
	stays   StayWindowRepo
	cache   SearchCache
}

func NewSearchQueries(rooms RoomViewRepo, tariffs TariffViewRepo, stays StayWindowRepo, cache SearchCache) SearchQueries {
	return &searchQueriesImpl{rooms: rooms, tariffs: tariffs, stays: stays, cache: cache}
}

func (q *searchQueriesImpl) Search(ctx context.Context, params SearchParams) (*SearchView, error) {
	stay, err := parseStay(params.CheckIn, params.CheckOut)
	if err != nil {
		return nil, err
	}

	filter, err := buildFilter(params)
	if err != nil {
		return nil, err
	}

	key := searchCacheKey(params)
	if q.cache != nil {
		if cached, ok := q.cache.Get(ctx, key); ok {
			return cached, nil
		}
	}

	roomViews, err := q.rooms.List(ctx, params.HotelID, params.Location)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	rooms := make([]*room.Room, 0, len(roomViews))
	viewByID := make(map[uuid.UUID]RoomView, len(roomViews))
	roomIDs := make([]uuid.UUID, 0, len(roomViews))
	for _, v := range roomViews {
		rooms = append(rooms, roomFromView(v))
		viewByID[v.ID] = v
		roomIDs = append(roomIDs, v.ID)
	}

	windows, err := q.stays.StayWindows(ctx, roomIDs, stay.CheckIn(), stay.CheckOut())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	idx, err := buildIndex(windows)
	if err != nil {
		return nil, err
	}

	calc, err := q.buildCalculator(ctx, params.HotelID)
	if err != nil {
		return nil, err
	}

	candidates, occupied := availability.Search(rooms, idx, calc, stay, filter)

	view := &SearchView{
		Results:  make([]SearchResult, 0, len(candidates)),
		Occupied: make([]OccupiedRoom, 0, len(occupied)),
	}
	for _, c := range candidates {
		view.Results = append(view.Results, SearchResult{
			Room:           viewByID[c.Room.ID()],
			Nights:         c.Quote.Nights,
			Total:          c.Quote.Total,
			AverageNightly: c.Quote.AverageNightly,
		})
	}
	for _, o := range occupied {
		view.Occupied = append(view.Occupied, OccupiedRoom{
			Room:          viewByID[o.Room.ID()],
			AvailableFrom: o.AvailableFrom,
		})
	}

	if q.cache != nil {
		q.cache.Set(ctx, key, view)
	}
	return view, nil
}

func (q *searchQueriesImpl) Quote(ctx context.Context, roomID uuid.UUID, checkIn, checkOut string) (*QuoteView, error) {
	stay, err := parseStay(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	roomView, err := q.rooms.FindByID(ctx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRoomNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	calc, err := q.buildCalculator(ctx, &roomView.HotelID)
	if err != nil {
		return nil, err
	}

	quote, err := calc.PriceStay(roomFromView(*roomView), stay)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrTariffMissing)
	}

	return &QuoteView{
		RoomID:         roomView.ID,
		RoomType:       roomView.RoomType,
		CheckIn:        stay.CheckIn(),
		CheckOut:       stay.CheckOut(),
		Nights:         quote.Nights,
		NightlyRates:   pricing.Reconcile(quote.Nightly, quote.Total),
		Total:          quote.Total,
		AverageNightly: quote.AverageNightly,
	}, nil
}

func (q *searchQueriesImpl) buildCalculator(ctx context.Context, hotelID *uuid.UUID) (*pricing.Calculator, error) {
	tariffViews, err := q.tariffs.List(ctx, hotelID)
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
	return pricing.NewCalculator(tariff.NewTable(entries)), nil
}

func buildFilter(params SearchParams) (availability.Filter, error) {
	f := availability.Filter{
		Room: room.Filter{
			MinCapacity:    params.MinCapacity,
			RequireWifi:    params.RequireWifi,
			RequireJacuzzi: params.RequireJacuzzi,
		},
		MaxAvgNightly: params.MaxAvgNightly,
	}
	if params.RoomType != nil && *params.RoomType != "" {
		t, err := room.NewType(*params.RoomType)
		if err != nil {
			return availability.Filter{}, errs.Mark(err, errs.ErrValidationFailed)
		}
		f.Room.Type = &t
	}
	return f, nil
}

func buildIndex(windows []StayWindow) (*availability.Index, error) {
	out := make([]availability.Window, 0, len(windows))
	for _, w := range windows {
		stay, err := reservation.NewStayRange(w.CheckIn, w.CheckOut)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrInvalidRange)
		}
		out = append(out, availability.Window{
			RoomID: w.RoomID,
			Stay:   stay,
			Status: reservation.Status(w.Status),
		})
	}
	return availability.NewIndex(out), nil
}

func roomFromView(v RoomView) *room.Room {
	return room.Reconstruct(
		v.ID, v.HotelID,
		v.Number, v.Floor,
		room.Type(v.RoomType), v.Capacity, v.Amenities,
		time.Time{}, time.Time{},
	)
}

func searchCacheKey(p SearchParams) string {
	var b strings.Builder
	b.WriteString("search:")
	b.WriteString(p.CheckIn)
	b.WriteString(":")
	b.WriteString(p.CheckOut)
	if p.HotelID != nil {
		fmt.Fprintf(&b, ":h=%s", p.HotelID)
	}
	if p.Location != nil {
		fmt.Fprintf(&b, ":l=%s", strings.ToLower(*p.Location))
	}
	if p.MinCapacity > 0 {
		fmt.Fprintf(&b, ":c=%d", p.MinCapacity)
	}
	if p.RoomType != nil && *p.RoomType != "" {
		fmt.Fprintf(&b, ":t=%s", *p.RoomType)
	}
	if p.RequireWifi {
		b.WriteString(":wifi")
	}
	if p.RequireJacuzzi {
		b.WriteString(":jacuzzi")
	}
	if p.MaxAvgNightly != nil {
		fmt.Fprintf(&b, ":max=%.2f", *p.MaxAvgNightly)
	}
	return b.String()
}

const dateLayout = "2006-01-02"

func parseStay(checkIn, checkOut string) (reservation.StayRange, error) {
	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return reservation.StayRange{}, errs.Mark(err, errs.ErrInvalidRange)
	}
	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return reservation.StayRange{}, errs.Mark(err, errs.ErrInvalidRange)
	}
	stay, err := reservation.NewStayRange(in, out)
	if err != nil {
		return reservation.StayRange{}, errs.Mark(err, errs.ErrInvalidRange)
	}
	return stay, nil
}

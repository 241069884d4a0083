package reservation

import (
	"errors"
	"time"

	"hotel-booking-api/internal/domain/catalog"
	"hotel-booking-api/internal/pkg/money"

	"github.com/google/uuid"
)

var (
	ErrInvalidState  = errors.New("invalid reservation state for transition")
	ErrNoNights      = errors.New("reservation must cover at least one night")
	ErrNegativeTotal = errors.New("room total cannot be negative")
)

const (
	// LateCheckoutCutoffHour is the checkout deadline (UTC) on the scheduled
	// departure day; checking out later accrues the late surcharge.
	LateCheckoutCutoffHour = 11

	// LateSurchargeRate is charged on the average nightly room price.
	LateSurchargeRate = 0.20
)

// Detail is the single room line of a reservation: which room, for how many
// nights, at what computed total.
type Detail struct {
	RoomID    uuid.UUID
	Nights    int
	RoomTotal float64
	Discount  *float64
}

// ServiceLine snapshots an add-on at booking time so later catalog price
// changes never alter an existing reservation.
type ServiceLine struct {
	ServiceID uuid.UUID
	Name      catalog.ServiceName
	Quantity  int
	UnitPrice float64
}

func (l ServiceLine) Subtotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

type Reservation struct {
	id         uuid.UUID
	code       string
	guestID    uuid.UUID
	stay       StayRange
	status     Status
	bookedAt   time.Time
	checkInAt  *time.Time
	checkOutAt *time.Time
	accessCode *string
	detail     Detail
	services   []ServiceLine
}

func NewReservation(
	code string,
	guestID uuid.UUID,
	stay StayRange,
	detail Detail,
	services []ServiceLine,
	bookedAt time.Time,
) (*Reservation, error) {
	if detail.Nights < 1 || detail.Nights != stay.Nights() {
		return nil, ErrNoNights
	}
	if detail.RoomTotal < 0 {
		return nil, ErrNegativeTotal
	}
	return &Reservation{
		id:       uuid.New(),
		code:     code,
		guestID:  guestID,
		stay:     stay,
		status:   StatusPending,
		bookedAt: bookedAt,
		detail:   detail,
		services: services,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	code string,
	guestID uuid.UUID,
	stay StayRange,
	status Status,
	bookedAt time.Time,
	checkInAt, checkOutAt *time.Time,
	accessCode *string,
	detail Detail,
	services []ServiceLine,
) *Reservation {
	return &Reservation{
		id:         id,
		code:       code,
		guestID:    guestID,
		stay:       stay,
		status:     status,
		bookedAt:   bookedAt,
		checkInAt:  checkInAt,
		checkOutAt: checkOutAt,
		accessCode: accessCode,
		detail:     detail,
		services:   services,
	}
}

func (r *Reservation) ID() uuid.UUID           { return r.id }
func (r *Reservation) Code() string            { return r.code }
func (r *Reservation) GuestID() uuid.UUID      { return r.guestID }
func (r *Reservation) Stay() StayRange         { return r.stay }
func (r *Reservation) Status() Status          { return r.status }
func (r *Reservation) BookedAt() time.Time     { return r.bookedAt }
func (r *Reservation) CheckInAt() *time.Time   { return r.checkInAt }
func (r *Reservation) CheckOutAt() *time.Time  { return r.checkOutAt }
func (r *Reservation) AccessCode() *string     { return r.accessCode }
func (r *Reservation) Detail() Detail          { return r.detail }
func (r *Reservation) Services() []ServiceLine { return r.services }

// ServicesTotal is the sum of add-on line subtotals, rounded to 2 decimals.
func (r *Reservation) ServicesTotal() float64 {
	var sum float64
	for _, l := range r.services {
		sum += l.Subtotal()
	}
	return money.Round2(sum)
}

func (r *Reservation) HasService(name catalog.ServiceName) bool {
	for _, l := range r.services {
		if l.Name == name {
			return true
		}
	}
	return false
}

// AverageNightly re-derives the average per-night room price from the stored
// detail. The late surcharge is computed on this average.
func (r *Reservation) AverageNightly() float64 {
	nights := r.detail.Nights
	if nights < 1 {
		nights = 1
	}
	return r.detail.RoomTotal / float64(nights)
}

// CheckIn moves Pending -> Confirmed, recording the actual arrival instant and
// the door access code.
func (r *Reservation) CheckIn(now time.Time, accessCode string) error {
	next, err := r.status.next(ActionCheckIn)
	if err != nil {
		return err
	}
	r.status = next
	r.checkInAt = &now
	r.accessCode = &accessCode
	return nil
}

// CheckOut moves Confirmed -> Completed and returns the late surcharge owed.
// A checkout after the cutoff on the departure day is charged
// LateSurchargeRate of the average nightly price, unless the stay contracted
// the late-checkout add-on, which waives the surcharge entirely.
func (r *Reservation) CheckOut(now time.Time) (surcharge float64, err error) {
	next, err := r.status.next(ActionCheckOut)
	if err != nil {
		return 0, err
	}

	if now.After(r.lateCheckoutCutoff()) {
		surcharge = money.Round2(r.AverageNightly() * LateSurchargeRate)
	}
	if r.HasService(catalog.ServiceLateCheckout) {
		surcharge = 0
	}

	r.status = next
	r.checkOutAt = &now
	return surcharge, nil
}

func (r *Reservation) lateCheckoutCutoff() time.Time {
	d := r.stay.CheckOut()
	return time.Date(d.Year(), d.Month(), d.Day(), LateCheckoutCutoffHour, 0, 0, 0, time.UTC)
}

// Cancel moves Pending|Confirmed -> Cancelled and returns the refund fraction
// owed for the cancellation lead time.
func (r *Reservation) Cancel(now time.Time) (refundPercent float64, err error) {
	next, err := r.status.next(ActionCancel)
	if err != nil {
		return 0, err
	}
	r.status = next
	return RefundPercent(r.stay.CheckIn().Sub(now).Hours()), nil
}

// RefundPercent is the cancellation step function over lead time in hours:
// >= 48h full refund, >= 24h half, otherwise nothing.
func RefundPercent(hoursUntilCheckIn float64) float64 {
	switch {
	case hoursUntilCheckIn >= 48:
		return 1.0
	case hoursUntilCheckIn >= 24:
		return 0.5
	default:
		return 0
	}
}

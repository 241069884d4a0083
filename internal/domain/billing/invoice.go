// Package billing holds the invoice ledger: one invoice per reservation,
// created alongside it and mutated in place by lifecycle transitions.
package billing

import (
	"errors"
	"time"

	"hotel-booking-api/internal/pkg/money"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrNegativeTotal = errors.New("invoice total cannot be negative")
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

func (s PaymentStatus) String() string { return string(s) }

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentRefunded:
		return true
	default:
		return false
	}
}

type Invoice struct {
	id            uuid.UUID
	reservationID uuid.UUID
	total         float64
	status        PaymentStatus
	paidAt        *time.Time
	paymentMethod *string
}

// Open creates the invoice for a new reservation. The amount is rounded to 2
// decimals and must not be negative.
func Open(reservationID uuid.UUID, total float64) (*Invoice, error) {
	if total < 0 {
		return nil, ErrNegativeTotal
	}
	return &Invoice{
		id:            uuid.New(),
		reservationID: reservationID,
		total:         money.Round2(total),
		status:        PaymentPending,
	}, nil
}

func Reconstruct(
	id, reservationID uuid.UUID,
	total float64,
	status PaymentStatus,
	paidAt *time.Time,
	paymentMethod *string,
) *Invoice {
	return &Invoice{
		id:            id,
		reservationID: reservationID,
		total:         total,
		status:        status,
		paidAt:        paidAt,
		paymentMethod: paymentMethod,
	}
}

func (i *Invoice) ID() uuid.UUID          { return i.id }
func (i *Invoice) ReservationID() uuid.UUID { return i.reservationID }
func (i *Invoice) Total() float64         { return i.total }
func (i *Invoice) Status() PaymentStatus  { return i.status }
func (i *Invoice) PaidAt() *time.Time     { return i.paidAt }
func (i *Invoice) PaymentMethod() *string { return i.paymentMethod }

// ApplySurcharge adds a late-checkout (or similar) charge to the total.
func (i *Invoice) ApplySurcharge(amount float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	i.total = money.Round2(i.total + amount)
	return nil
}

// ApplyRefund subtracts the refund and marks the invoice Refunded. The refund
// is computed as a fraction of the current total upstream, so it never exceeds
// it; no extra floor is applied here.
func (i *Invoice) ApplyRefund(amount float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	i.total = money.Round2(i.total - amount)
	i.status = PaymentRefunded
	return nil
}

func (i *Invoice) MarkPaid(date time.Time, method string) {
	i.status = PaymentPaid
	i.paidAt = &date
	i.paymentMethod = &method
}

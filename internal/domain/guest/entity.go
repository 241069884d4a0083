// Package guest holds guest reference data and the loyalty point balance.
package guest

import (
	"errors"
	"strings"
	"time"

	"hotel-booking-api/internal/pkg/money"

	"github.com/google/uuid"
)

var (
	ErrInvalidDocument = errors.New("guest document is required")
	ErrInvalidName     = errors.New("guest name is required")
	ErrInvalidPoints   = errors.New("points must be positive and not exceed balance")
)

type Guest struct {
	id           uuid.UUID
	document     string
	fullName     string
	email        *string
	phone        *string
	country      string
	registeredAt time.Time
	points       int
}

func NewGuest(document, fullName string, email, phone *string, country string, registeredAt time.Time) (*Guest, error) {
	document = strings.TrimSpace(document)
	fullName = strings.TrimSpace(fullName)
	if document == "" {
		return nil, ErrInvalidDocument
	}
	if fullName == "" {
		return nil, ErrInvalidName
	}
	return &Guest{
		id:           uuid.New(),
		document:     document,
		fullName:     fullName,
		email:        email,
		phone:        phone,
		country:      country,
		registeredAt: registeredAt,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	document, fullName string,
	email, phone *string,
	country string,
	registeredAt time.Time,
	points int,
) *Guest {
	return &Guest{
		id:           id,
		document:     document,
		fullName:     fullName,
		email:        email,
		phone:        phone,
		country:      country,
		registeredAt: registeredAt,
		points:       points,
	}
}

func (g *Guest) ID() uuid.UUID           { return g.id }
func (g *Guest) Document() string        { return g.document }
func (g *Guest) FullName() string        { return g.fullName }
func (g *Guest) Email() *string          { return g.email }
func (g *Guest) Phone() *string          { return g.phone }
func (g *Guest) Country() string         { return g.country }
func (g *Guest) RegisteredAt() time.Time { return g.registeredAt }
func (g *Guest) Points() int             { return g.points }

// AccruePoints adds one whole point per currency unit of the invoice total,
// rounded. Accrual is triggered explicitly per completed-and-invoiced
// reservation, not automatically on checkout.
func (g *Guest) AccruePoints(invoiceTotal float64) int {
	earned := money.Points(invoiceTotal)
	g.points += earned
	return earned
}

func (g *Guest) RedeemPoints(points int) error {
	if points <= 0 || points > g.points {
		return ErrInvalidPoints
	}
	g.points -= points
	return nil
}

//go:build unit || e2e

package builder

import (
	"time"

	domguest "hotel-booking-api/internal/domain/guest"
	reqdto "hotel-booking-api/internal/handler/dto/request"
	"hotel-booking-api/internal/pkg/ptr"
	"hotel-booking-api/internal/usecase/queries"
	"hotel-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type GuestBuilder struct {
	ID           uuid.UUID
	Document     string
	FullName     string
	Email        *string
	Phone        *string
	Country      string
	RegisteredAt time.Time
	Points       int
}

func NewGuestBuilder() *GuestBuilder {
	return &GuestBuilder{
		ID:           uuid.New(),
		Document:     "AB123456",
		FullName:     "Maria Santos",
		Email:        ptr.To("maria@example.com"),
		Phone:        ptr.To("+351912345678"),
		Country:      "PT",
		RegisteredAt: time.Now(),
		Points:       0,
	}
}

func (b *GuestBuilder) With(mutate func(*GuestBuilder)) *GuestBuilder {
	mutate(b)
	return b
}

func (b *GuestBuilder) BuildDomain() (*domguest.Guest, error) {
	return domguest.NewGuest(b.Document, b.FullName, b.Email, b.Phone, b.Country, b.RegisteredAt)
}

// BuildDomainWithPoints reconstructs an existing guest carrying a balance.
func (b *GuestBuilder) BuildDomainWithPoints() *domguest.Guest {
	return domguest.Reconstruct(b.ID, b.Document, b.FullName, b.Email, b.Phone, b.Country, b.RegisteredAt, b.Points)
}

func (b *GuestBuilder) BuildRegisterRequestDTO() reqdto.RegisterGuestRequest {
	return reqdto.RegisterGuestRequest{
		Document: b.Document,
		FullName: b.FullName,
		Email:    b.Email,
		Phone:    b.Phone,
		Country:  b.Country,
	}
}

func (b *GuestBuilder) BuildView() *queries.GuestView {
	return &queries.GuestView{
		ID:           b.ID,
		Document:     b.Document,
		FullName:     b.FullName,
		Email:        b.Email,
		Phone:        b.Phone,
		Country:      b.Country,
		RegisteredAt: b.RegisteredAt,
		Points:       b.Points,
	}
}

func (b *GuestBuilder) BuildSnapshot() *shared.GuestSnapshot {
	return &shared.GuestSnapshot{
		ID:           b.ID,
		Document:     b.Document,
		FullName:     b.FullName,
		Email:        b.Email,
		Phone:        b.Phone,
		Country:      b.Country,
		RegisteredAt: b.RegisteredAt,
		Points:       b.Points,
	}
}

// Fluent builder methods
func (b *GuestBuilder) WithDocument(document string) *GuestBuilder {
	b.Document = document
	return b
}

func (b *GuestBuilder) WithFullName(name string) *GuestBuilder {
	b.FullName = name
	return b
}

func (b *GuestBuilder) WithPoints(points int) *GuestBuilder {
	b.Points = points
	return b
}

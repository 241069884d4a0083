//go:build unit

package guest_test

import (
	"testing"

	"hotel-booking-api/internal/domain/guest"
	"hotel-booking-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGuest(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewGuestBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "AB123456", actual.Document())
		assert.Zero(t, actual.Points())
	})

	t.Run("trims document and name", func(t *testing.T) {
		g, err := builder.NewGuestBuilder().
			WithDocument("  AB123456  ").
			WithFullName("  Maria Santos  ").
			BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "AB123456", g.Document())
		assert.Equal(t, "Maria Santos", g.FullName())
	})

	t.Run("empty document", func(t *testing.T) {
		_, err := builder.NewGuestBuilder().WithDocument("   ").BuildDomain()
		require.ErrorIs(t, err, guest.ErrInvalidDocument)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := builder.NewGuestBuilder().WithFullName("").BuildDomain()
		require.ErrorIs(t, err, guest.ErrInvalidName)
	})
}

func TestAccruePoints(t *testing.T) {
	cases := []struct {
		name     string
		total    float64
		expected int
	}{
		{name: "whole invoice total", total: 200, expected: 200},
		{name: "rounds to nearest point", total: 193.20, expected: 193},
		{name: "half rounds up", total: 99.50, expected: 100},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := builder.NewGuestBuilder().WithPoints(10).BuildDomainWithPoints()

			earned := g.AccruePoints(c.total)
			assert.Equal(t, c.expected, earned)
			assert.Equal(t, 10+c.expected, g.Points())
		})
	}
}

func TestRedeemPoints(t *testing.T) {
	t.Run("redeems within balance", func(t *testing.T) {
		g := builder.NewGuestBuilder().WithPoints(100).BuildDomainWithPoints()

		require.NoError(t, g.RedeemPoints(60))
		assert.Equal(t, 40, g.Points())
	})

	t.Run("full balance", func(t *testing.T) {
		g := builder.NewGuestBuilder().WithPoints(100).BuildDomainWithPoints()

		require.NoError(t, g.RedeemPoints(100))
		assert.Zero(t, g.Points())
	})

	t.Run("exceeding balance", func(t *testing.T) {
		g := builder.NewGuestBuilder().WithPoints(50).BuildDomainWithPoints()

		require.ErrorIs(t, g.RedeemPoints(51), guest.ErrInvalidPoints)
		assert.Equal(t, 50, g.Points())
	})

	t.Run("non-positive amount", func(t *testing.T) {
		g := builder.NewGuestBuilder().WithPoints(50).BuildDomainWithPoints()

		assert.ErrorIs(t, g.RedeemPoints(0), guest.ErrInvalidPoints)
		assert.ErrorIs(t, g.RedeemPoints(-5), guest.ErrInvalidPoints)
	})
}

//go:build unit

package billing_test

import (
	"testing"
	"time"

	"hotel-booking-api/internal/domain/billing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	t.Run("opens pending with rounded total", func(t *testing.T) {
		inv, err := billing.Open(uuid.New(), 193.199)
		require.NoError(t, err)

		assert.Equal(t, billing.PaymentPending, inv.Status())
		assert.InDelta(t, 193.20, inv.Total(), 1e-9)
		assert.Nil(t, inv.PaidAt())
	})

	t.Run("zero total is allowed", func(t *testing.T) {
		inv, err := billing.Open(uuid.New(), 0)
		require.NoError(t, err)
		assert.Zero(t, inv.Total())
	})

	t.Run("negative total rejected", func(t *testing.T) {
		_, err := billing.Open(uuid.New(), -10)
		require.ErrorIs(t, err, billing.ErrNegativeTotal)
	})
}

func TestApplySurcharge(t *testing.T) {
	inv, err := billing.Open(uuid.New(), 168.00)
	require.NoError(t, err)

	t.Run("adds to the total", func(t *testing.T) {
		require.NoError(t, inv.ApplySurcharge(11.20))
		assert.InDelta(t, 179.20, inv.Total(), 1e-9)
		assert.Equal(t, billing.PaymentPending, inv.Status())
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		assert.ErrorIs(t, inv.ApplySurcharge(0), billing.ErrInvalidAmount)
		assert.ErrorIs(t, inv.ApplySurcharge(-5), billing.ErrInvalidAmount)
	})
}

func TestApplyRefund(t *testing.T) {
	t.Run("half refund 30 hours before check-in", func(t *testing.T) {
		inv, err := billing.Open(uuid.New(), 200.00)
		require.NoError(t, err)

		require.NoError(t, inv.ApplyRefund(100.00))

		assert.InDelta(t, 100.00, inv.Total(), 1e-9)
		assert.Equal(t, billing.PaymentRefunded, inv.Status())
	})

	t.Run("full refund brings total to zero", func(t *testing.T) {
		inv, err := billing.Open(uuid.New(), 168.00)
		require.NoError(t, err)

		require.NoError(t, inv.ApplyRefund(168.00))
		assert.Zero(t, inv.Total())
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		inv, err := billing.Open(uuid.New(), 100)
		require.NoError(t, err)
		assert.ErrorIs(t, inv.ApplyRefund(0), billing.ErrInvalidAmount)
	})
}

func TestMarkPaid(t *testing.T) {
	inv, err := billing.Open(uuid.New(), 168.00)
	require.NoError(t, err)

	paidAt := time.Date(2025, time.March, 13, 10, 0, 0, 0, time.UTC)
	inv.MarkPaid(paidAt, "card")

	assert.Equal(t, billing.PaymentPaid, inv.Status())
	require.NotNil(t, inv.PaidAt())
	assert.Equal(t, paidAt, *inv.PaidAt())
	require.NotNil(t, inv.PaymentMethod())
	assert.Equal(t, "card", *inv.PaymentMethod())
}

//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"hotel-booking-api/internal/domain/catalog"
	"hotel-booking-api/internal/domain/reservation"
	"hotel-booking-api/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReservation(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, reservation.StatusPending, actual.Status())
		assert.Equal(t, 3, actual.Detail().Nights)
		assert.Nil(t, actual.CheckInAt())
		assert.Nil(t, actual.AccessCode())
	})

	t.Run("nights mismatching the stay", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		stay, err := reservation.NewStayRange(b.CheckIn, b.CheckOut)
		require.NoError(t, err)

		_, err = reservation.NewReservation(b.Code, b.GuestID, stay, reservation.Detail{
			RoomID: b.RoomID, Nights: 2, RoomTotal: 100,
		}, nil, b.BookedAt)
		require.ErrorIs(t, err, reservation.ErrNoNights)
	})

	t.Run("negative room total", func(t *testing.T) {
		_, err := builder.NewReservationBuilder().WithRoomTotal(-1).BuildDomain()
		require.ErrorIs(t, err, reservation.ErrNegativeTotal)
	})
}

func TestLifecycleTransitions(t *testing.T) {
	now := date(2025, time.March, 10).Add(15 * time.Hour)

	cases := []struct {
		name  string
		from  reservation.Status
		apply func(r *reservation.Reservation) error
		errIs error
	}{
		{
			name: "pending check-in",
			from: reservation.StatusPending,
			apply: func(r *reservation.Reservation) error {
				return r.CheckIn(now, "123456")
			},
		},
		{
			name: "pending cancel",
			from: reservation.StatusPending,
			apply: func(r *reservation.Reservation) error {
				_, err := r.Cancel(now)
				return err
			},
		},
		{
			name: "pending check-out rejected",
			from: reservation.StatusPending,
			apply: func(r *reservation.Reservation) error {
				_, err := r.CheckOut(now)
				return err
			},
			errIs: reservation.ErrInvalidState,
		},
		{
			name: "confirmed check-out",
			from: reservation.StatusConfirmed,
			apply: func(r *reservation.Reservation) error {
				_, err := r.CheckOut(now)
				return err
			},
		},
		{
			name: "confirmed cancel",
			from: reservation.StatusConfirmed,
			apply: func(r *reservation.Reservation) error {
				_, err := r.Cancel(now)
				return err
			},
		},
		{
			name: "confirmed double check-in rejected",
			from: reservation.StatusConfirmed,
			apply: func(r *reservation.Reservation) error {
				return r.CheckIn(now, "123456")
			},
			errIs: reservation.ErrInvalidState,
		},
		{
			name: "cancelled is terminal",
			from: reservation.StatusCancelled,
			apply: func(r *reservation.Reservation) error {
				return r.CheckIn(now, "123456")
			},
			errIs: reservation.ErrInvalidState,
		},
		{
			name: "completed cancel rejected",
			from: reservation.StatusCompleted,
			apply: func(r *reservation.Reservation) error {
				_, err := r.Cancel(now)
				return err
			},
			errIs: reservation.ErrInvalidState,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := builder.NewReservationBuilder().BuildDomainAt(c.from)
			err := c.apply(r)

			if c.errIs == nil {
				require.NoError(t, err)
				assert.NotEqual(t, c.from, r.Status())
			} else {
				require.ErrorIs(t, err, c.errIs)
				assert.Equal(t, c.from, r.Status(), "failed transition must not change status")
			}
		})
	}
}

func TestCheckInRecordsArrival(t *testing.T) {
	r := builder.NewReservationBuilder().BuildDomainAt(reservation.StatusPending)
	now := date(2025, time.March, 10).Add(15 * time.Hour)

	require.NoError(t, r.CheckIn(now, "482913"))

	assert.Equal(t, reservation.StatusConfirmed, r.Status())
	require.NotNil(t, r.CheckInAt())
	assert.Equal(t, now, *r.CheckInAt())
	require.NotNil(t, r.AccessCode())
	assert.Equal(t, "482913", *r.AccessCode())
}

func TestCheckOutSurcharge(t *testing.T) {
	// 3 nights at 168.00 total, so the average nightly is 56.00 and the late
	// surcharge is 11.20. Departure day is March 13, cutoff 11:00 UTC.
	departure := date(2025, time.March, 13)

	t.Run("before cutoff has no surcharge", func(t *testing.T) {
		r := builder.NewReservationBuilder().BuildDomainAt(reservation.StatusConfirmed)

		surcharge, err := r.CheckOut(departure.Add(10*time.Hour + 59*time.Minute))
		require.NoError(t, err)
		assert.Zero(t, surcharge)
		assert.Equal(t, reservation.StatusCompleted, r.Status())
	})

	t.Run("exactly at cutoff has no surcharge", func(t *testing.T) {
		r := builder.NewReservationBuilder().BuildDomainAt(reservation.StatusConfirmed)

		surcharge, err := r.CheckOut(departure.Add(11 * time.Hour))
		require.NoError(t, err)
		assert.Zero(t, surcharge)
	})

	t.Run("after cutoff charges 20 percent of average nightly", func(t *testing.T) {
		r := builder.NewReservationBuilder().BuildDomainAt(reservation.StatusConfirmed)

		surcharge, err := r.CheckOut(departure.Add(11*time.Hour + 1*time.Minute))
		require.NoError(t, err)
		assert.InDelta(t, 11.20, surcharge, 1e-9)
	})

	t.Run("late checkout add-on waives the surcharge", func(t *testing.T) {
		r := builder.NewReservationBuilder().
			WithService(catalog.ServiceLateCheckout, 1, 25).
			BuildDomainAt(reservation.StatusConfirmed)

		surcharge, err := r.CheckOut(departure.Add(14 * time.Hour))
		require.NoError(t, err)
		assert.Zero(t, surcharge)
		assert.Equal(t, reservation.StatusCompleted, r.Status())
	})
}

func TestCancelRefund(t *testing.T) {
	checkIn := date(2025, time.March, 10)

	cases := []struct {
		name     string
		now      time.Time
		expected float64
	}{
		{name: "48 hours ahead refunds fully", now: checkIn.Add(-48 * time.Hour), expected: 1.0},
		{name: "just under 48 hours refunds half", now: checkIn.Add(-48*time.Hour + time.Minute), expected: 0.5},
		{name: "30 hours ahead refunds half", now: checkIn.Add(-30 * time.Hour), expected: 0.5},
		{name: "24 hours ahead refunds half", now: checkIn.Add(-24 * time.Hour), expected: 0.5},
		{name: "just under 24 hours refunds nothing", now: checkIn.Add(-24*time.Hour + time.Minute), expected: 0},
		{name: "after check-in date refunds nothing", now: checkIn.Add(6 * time.Hour), expected: 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := builder.NewReservationBuilder().
				WithStay(checkIn, checkIn.AddDate(0, 0, 3)).
				BuildDomainAt(reservation.StatusPending)

			percent, err := r.Cancel(c.now)
			require.NoError(t, err)
			assert.InDelta(t, c.expected, percent, 1e-9)
			assert.Equal(t, reservation.StatusCancelled, r.Status())
		})
	}
}

func TestServicesTotal(t *testing.T) {
	r := builder.NewReservationBuilder().
		WithService(catalog.ServiceBreakfast, 3, 12.50).
		WithService(catalog.ServiceParking, 1, 8).
		BuildDomainAt(reservation.StatusPending)

	assert.InDelta(t, 45.50, r.ServicesTotal(), 1e-9)
	assert.True(t, r.HasService(catalog.ServiceBreakfast))
	assert.False(t, r.HasService(catalog.ServiceSpa))
}

func TestAverageNightly(t *testing.T) {
	r := builder.NewReservationBuilder().WithRoomTotal(193.20).BuildDomainAt(reservation.StatusPending)
	assert.InDelta(t, 64.40, r.AverageNightly(), 1e-9)
}

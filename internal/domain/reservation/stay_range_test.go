//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"hotel-booking-api/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustStay(t *testing.T, checkIn, checkOut time.Time) reservation.StayRange {
	t.Helper()
	s, err := reservation.NewStayRange(checkIn, checkOut)
	require.NoError(t, err)
	return s
}

func TestNewStayRange(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		s := mustStay(t, date(2025, time.January, 5), date(2025, time.January, 8))
		assert.Equal(t, 3, s.Nights())
	})

	t.Run("normalizes time of day and zone to UTC midnight", func(t *testing.T) {
		loc := time.FixedZone("UTC+5", 5*3600)
		checkIn := time.Date(2025, time.March, 10, 14, 30, 0, 0, loc)
		checkOut := time.Date(2025, time.March, 11, 9, 0, 0, 0, loc)

		s := mustStay(t, checkIn, checkOut)
		assert.Equal(t, date(2025, time.March, 10), s.CheckIn())
		assert.Equal(t, date(2025, time.March, 11), s.CheckOut())
		assert.Equal(t, 1, s.Nights())
	})

	t.Run("checkout equal to checkin", func(t *testing.T) {
		_, err := reservation.NewStayRange(date(2025, time.January, 5), date(2025, time.January, 5))
		require.ErrorIs(t, err, reservation.ErrInvalidRange)
	})

	t.Run("checkout before checkin", func(t *testing.T) {
		_, err := reservation.NewStayRange(date(2025, time.January, 8), date(2025, time.January, 5))
		require.ErrorIs(t, err, reservation.ErrInvalidRange)
	})
}

func TestStayRangeOverlaps(t *testing.T) {
	base := mustStay(t, date(2025, time.January, 5), date(2025, time.January, 8))

	cases := []struct {
		name     string
		other    reservation.StayRange
		expected bool
	}{
		{
			name:     "partial overlap at tail",
			other:    mustStay(t, date(2025, time.January, 7), date(2025, time.January, 9)),
			expected: true,
		},
		{
			name:     "contained range",
			other:    mustStay(t, date(2025, time.January, 6), date(2025, time.January, 7)),
			expected: true,
		},
		{
			name:     "identical range",
			other:    mustStay(t, date(2025, time.January, 5), date(2025, time.January, 8)),
			expected: true,
		},
		{
			name:     "back to back after",
			other:    mustStay(t, date(2025, time.January, 8), date(2025, time.January, 10)),
			expected: false,
		},
		{
			name:     "back to back before",
			other:    mustStay(t, date(2025, time.January, 3), date(2025, time.January, 5)),
			expected: false,
		},
		{
			name:     "fully disjoint",
			other:    mustStay(t, date(2025, time.February, 1), date(2025, time.February, 3)),
			expected: false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, base.Overlaps(c.other))
			assert.Equal(t, c.expected, c.other.Overlaps(base))
		})
	}
}

func TestStayRangeDates(t *testing.T) {
	s := mustStay(t, date(2025, time.January, 5), date(2025, time.January, 8))

	dates := s.Dates()
	require.Len(t, dates, 3)
	assert.Equal(t, date(2025, time.January, 5), dates[0])
	assert.Equal(t, date(2025, time.January, 6), dates[1])
	assert.Equal(t, date(2025, time.January, 7), dates[2])
}

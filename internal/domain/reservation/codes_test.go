//go:build unit

package reservation_test

import (
	"regexp"
	"testing"
	"time"

	"hotel-booking-api/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCode(t *testing.T) {
	now := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

	code := reservation.GenerateCode(now)
	assert.Regexp(t, regexp.MustCompile(`^R-20250301120000-[0-9A-F]{6}$`), code)

	other := reservation.GenerateCode(now)
	assert.NotEqual(t, code, other)
}

func TestGenerateAccessCode(t *testing.T) {
	code := reservation.GenerateAccessCode()
	assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), code)
}

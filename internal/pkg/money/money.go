// Package money holds the rounding conventions for monetary amounts.
// Amounts are plain float64 values rounded to 2 decimals at the points the
// billing rules call for, using round-half-away-from-zero.
package money

import "math"

// Round2 rounds to 2 decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Points converts an invoice total into whole loyalty points.
func Points(total float64) int {
	return int(math.Round(total))
}

//go:build unit

package money_test

import (
	"testing"

	"hotel-booking-api/internal/pkg/money"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	cases := []struct {
		name     string
		in       float64
		expected float64
	}{
		{name: "no fraction", in: 168, expected: 168},
		{name: "already two decimals", in: 193.20, expected: 193.20},
		{name: "rounds down", in: 10.123, expected: 10.12},
		{name: "rounds up", in: 10.126, expected: 10.13},
		{name: "half rounds away from zero", in: 10.125, expected: 10.13},
		{name: "negative half rounds away from zero", in: -10.125, expected: -10.13},
		{name: "tiny drift collapses", in: 0.004999, expected: 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.expected, money.Round2(c.in), 1e-9)
		})
	}
}

func TestPoints(t *testing.T) {
	cases := []struct {
		name     string
		total    float64
		expected int
	}{
		{name: "whole total", total: 200, expected: 200},
		{name: "rounds down below half", total: 168.49, expected: 168},
		{name: "rounds up at half", total: 168.50, expected: 169},
		{name: "zero total", total: 0, expected: 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, money.Points(c.total))
		})
	}
}

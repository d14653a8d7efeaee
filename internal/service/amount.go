package service

import (
	"math"
	"strconv"
	"strings"
)

// ParseAmount parses a non-negative decimal literal: ASCII digits with at
// most one dot and at least one digit. Signs, exponents and surrounding
// spaces are rejected.
func ParseAmount(s string) (float64, bool) {
	digits, dots := 0, 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
			dots++
		default:
			return 0, false
		}
	}

	if digits == 0 || dots > 1 {
		return 0, false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}

	return v, true
}

// formatFloat renders v with the shortest exact representation and at least
// one fractional digit: 5 -> "5.0", 0.99 -> "0.99". Magnitudes from 1e16 up
// and below 1e-4 use exponent notation: 1e16 -> "1e+16", 0.00001 -> "1e-05".
func formatFloat(v float64) string {
	if a := math.Abs(v); a >= 1e16 || (a != 0 && a < 1e-4) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

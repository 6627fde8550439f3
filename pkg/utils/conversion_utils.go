package utils

import "math"

// RoundMoney rounds a monetary value to 2 decimal places. Core aggregation
// keeps unrounded float64 sums; rounding happens only where a value leaves
// the process, so intermediate totals never compound rounding error.
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

package utils

import "math"

// Round2 rounds a monetary amount to two decimal places. Line totals are
// rounded individually and then summed, so group subtotals are exact sums of
// the displayed lines.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}

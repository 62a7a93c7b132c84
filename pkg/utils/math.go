package utils

import "math"

// RoundUp rounds number up (towards +Inf) to the given number of decimal digits.
//
// Example:
//   - RoundUp(33.31, 1) -> 33.4
//   - RoundUp(30, 1) -> 30
//   - RoundUp(1234, -2) -> 1300
func RoundUp(number float64, digits int) float64 {
	scale := math.Pow(10, float64(digits))
	scaled := number * scale
	// Drop float noise such as 30.000000000000004 before taking the ceiling.
	if rounded := math.Round(scaled); math.Abs(scaled-rounded) < 1e-9 {
		scaled = rounded
	}
	return math.Ceil(scaled) / scale
}


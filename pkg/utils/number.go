package utils

import "math"

// RoundWithTwoDecimalPlace rounds a float to two decimal places.
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// SafeDivide returns a/b, or 0 when b is zero. Keeps derived metrics free
// of NaN and Inf.
func SafeDivide(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

package common

import "math"

// https://stackoverflow.com/questions/18390266/how-can-we-truncate-float64-type-to-a-particular-precision
func Round(num float64) int {
	return int(num + math.Copysign(0.5, num))
}

// DecimalToFixed rounds num to precision fractional digits.
// Non-finite values are returned as-is.
func DecimalToFixed(num float64, precision int) float64 {
	if !IsFinite(num) {
		return num
	}
	output := math.Pow(10, float64(precision))
	return float64(Round(num*output)) / output
}

func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func CelsiusToKelvin(c float64) float64 {
	return c + CelsiusOffset
}

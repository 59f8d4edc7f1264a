package utils

import (
	"math"
	"strconv"
	"strings"
)

// ClampInt limits a value between min and max
func ClampInt(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// RoundTemp rounds a temperature to the nearest integer, halves to even
func RoundTemp(value float64) int {
	return int(math.RoundToEven(value))
}

// RoundTo rounds a float to specified decimal places
func RoundTo(value float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(value*factor) / factor
}

// FormatDecimal renders a measurement the way a decimal literal reads:
// shortest form, but whole numbers keep a trailing ".0".
func FormatDecimal(value float64) string {
	s := strconv.FormatFloat(value, 'f', -1, 64)
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return s
	}
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// FormatWhole renders an integral measurement without a decimal part and
// falls back to FormatDecimal for fractional values.
func FormatWhole(value float64) string {
	if value == math.Trunc(value) && !math.IsInf(value, 0) {
		return strconv.FormatInt(int64(value), 10)
	}
	return FormatDecimal(value)
}

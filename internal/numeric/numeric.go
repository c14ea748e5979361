// Package numeric clamps and rounds the real numbers that flow through the
// color codec so that text output never carries floating noise or a negative
// zero.
package numeric

import (
	"math"
	"strconv"
)

// Digit counts used across the codec.
const (
	// ChannelDigits is the precision kept for values in [0, 1].
	ChannelDigits = 5
	// TextDigits is the precision kept for values parsed from text.
	TextDigits = 3
)

// NoLimit disables the lower or upper bound of Fix.
var NoLimit = math.NaN()

// Fix clamps num into [min, max] and rounds it half-up to digits decimal
// places. A NaN bound is ignored. A NaN input is treated as zero.
func Fix(num, min, max float64, digits int) float64 {
	if math.IsNaN(num) {
		num = 0
	}
	if !math.IsNaN(min) && num < min {
		return min
	}
	if !math.IsNaN(max) && num > max {
		return max
	}
	return Round(num, digits)
}

// Round rounds num half-up to digits decimal places and never returns -0.
func Round(num float64, digits int) float64 {
	if math.IsInf(num, 0) || math.IsNaN(num) {
		return num
	}
	if digits < 0 {
		digits = 0
	}
	exp := math.Pow(10, float64(digits))
	rounded := math.Floor(num*exp+0.5) / exp
	if rounded == 0 {
		return 0
	}
	return rounded
}

// Clamp01 limits num to [0, 1] without rounding.
func Clamp01(num float64) float64 {
	switch {
	case math.IsNaN(num), num < 0:
		return 0
	case num > 1:
		return 1
	}
	return num
}

// Unit rounds a [0, 1] value to ChannelDigits.
func Unit(num float64) float64 {
	return Fix(num, 0, 1, ChannelDigits)
}

// Format renders num with the fewest digits that read back to the same value.
func Format(num float64) string {
	if num == 0 {
		return "0"
	}
	return strconv.FormatFloat(num, 'f', -1, 64)
}

// Wrap reduces num into [0, period). Negative values wrap up rather than clamp.
func Wrap(num, period float64) float64 {
	if period <= 0 || math.IsNaN(num) || math.IsInf(num, 0) {
		return 0
	}
	num = math.Mod(num, period)
	if num < 0 {
		num += period
	}
	if num >= period {
		num = 0
	}
	if num == 0 {
		return 0
	}
	return num
}

// Equal reports whether a and b differ by less than tolerance.
func Equal(a, b, tolerance float64) bool {
	return math.Abs(a-b) < tolerance
}

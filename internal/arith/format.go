package arith

import (
	"math"
	"strconv"
)

// DefaultMaxDecimalPlaces is the rounding applied by FormatResult callers
// that have no configured precision.
const DefaultMaxDecimalPlaces = 10

// UndefinedDisplay is the display text of the undefined result
const UndefinedDisplay = "Error"

const (
	exponentialUpper  = 1e10
	exponentialLower  = 1e-10
	exponentialDigits = 6
)

// FormatResult renders r for display. Very large and very small magnitudes use
// exponential notation; everything else is rounded to maxDecimalPlaces and
// printed without trailing zeros.
func FormatResult(r Result, maxDecimalPlaces int) string {
	v, ok := r.Value()
	if !ok {
		return UndefinedDisplay
	}
	if maxDecimalPlaces < 0 {
		maxDecimalPlaces = DefaultMaxDecimalPlaces
	}

	abs := math.Abs(v)
	if abs > exponentialUpper || (abs < exponentialLower && v != 0) {
		return strconv.FormatFloat(v, 'e', exponentialDigits, 64)
	}

	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', maxDecimalPlaces, 64), 64)
	if err != nil {
		return UndefinedDisplay
	}
	if rounded == 0 {
		// drop the sign of negative zero
		rounded = 0
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

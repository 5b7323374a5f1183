package calculate

import (
	"errors"
	"math"
)

// ErrZeroBase is returned when a ratio would divide by zero
var ErrZeroBase = errors.New("base value is zero")

// PercentDiff returns the absolute change from start to current as a percentage of start.
// A negative start is allowed.
func PercentDiff(start, current float64) (float64, error) {
	if start == 0 {
		return 0, ErrZeroBase
	}
	return (math.Abs(current-start) / start) * 100, nil
}

// PercentOf returns part as a percentage of whole
func PercentOf(part, whole float64) (float64, error) {
	if whole == 0 {
		return 0, ErrZeroBase
	}
	return (part / whole) * 100, nil
}

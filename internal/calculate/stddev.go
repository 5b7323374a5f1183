package calculate

import (
	"errors"
	"math"
)

// ErrInsufficientSamples is returned when a statistic needs more values than were given
var ErrInsufficientSamples = errors.New("at least two samples are required")

// SampleStdDev calculates the Bessel-corrected standard deviation (divides by N-1)
func SampleStdDev(values []float64) (float64, error) {
	if len(values) < 2 {
		return 0, ErrInsufficientSamples
	}

	mean := Average(values)

	var sumSquares float64
	for _, value := range values {
		diff := value - mean
		sumSquares += diff * diff
	}

	return math.Sqrt(sumSquares / float64(len(values)-1)), nil
}

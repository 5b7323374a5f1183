package anomaly

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// maxMagnitude bounds the decimal order of magnitude accepted by ParseNumber
const maxMagnitude = 400

// ParseNumber converts an exchange-supplied numeric string into a finite float64.
// Empty, NaN, infinite and non-numeric values fail with ErrParse.
func ParseNumber(field, raw string) (float64, error) {
	if raw == "" {
		return 0, fmt.Errorf("%w: %s is missing", ErrParse, field)
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not a number", ErrParse, field, raw)
	}

	// Converting a decimal with an extreme exponent is slow and the result
	// cannot be a float64 anyway.
	if magnitude := d.NumDigits() + int(d.Exponent()); magnitude > maxMagnitude || magnitude < -maxMagnitude {
		return 0, fmt.Errorf("%w: %s=%q is out of range", ErrParse, field, raw)
	}

	value := d.InexactFloat64()
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: %s=%q is out of range", ErrParse, field, raw)
	}

	return value, nil
}

func parseNumbers(field string, raw []string) ([]float64, error) {
	values := make([]float64, 0, len(raw))
	for i, s := range raw {
		v, err := ParseNumber(fmt.Sprintf("%s[%d]", field, i), s)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

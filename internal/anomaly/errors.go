package anomaly

import (
	"errors"
	"fmt"
)

// Error kinds reported by the checks. Match them with errors.Is.
var (
	ErrConfiguration    = errors.New("configuration error")
	ErrTransport        = errors.New("transport error")
	ErrNoData           = errors.New("no data")
	ErrParse            = errors.New("parse error")
	ErrInsufficientData = errors.New("insufficient data")
	ErrDivisionByZero   = errors.New("division by zero")

	// ErrZeroVolume marks a day volume of exactly zero. It is treated as missing
	// history, so it also matches ErrNoData.
	ErrZeroVolume = fmt.Errorf("%w: zero day volume", ErrNoData)
)

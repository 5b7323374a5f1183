package anomaly

import (
	"errors"
	"fmt"

	"github.com/Alias1177/GemAlerts/internal/calculate"
	"github.com/Alias1177/GemAlerts/models"
)

// PriceChange checks whether the move from the session open to the current price,
// in percent, is above threshold.
func PriceChange(symbol string, threshold float64, ticker *models.SymbolTicker) (models.PriceChange, error) {
	result := models.PriceChange{Symbol: symbol, Threshold: threshold}

	if ticker == nil {
		return result, fmt.Errorf("%w: no ticker for %s", ErrNoData, symbol)
	}

	start, err := ParseNumber("open", ticker.Open)
	if err != nil {
		return result, err
	}
	result.Start = start

	current, err := ParseNumber("close", ticker.Close)
	if err != nil {
		return result, err
	}
	result.Current = current

	percentDiff, err := calculate.PercentDiff(start, current)
	if err != nil {
		if errors.Is(err, calculate.ErrZeroBase) {
			return result, fmt.Errorf("%w: open price of %s is zero", ErrDivisionByZero, symbol)
		}
		return result, err
	}
	result.PercentDiff = percentDiff
	result.Exceeds = percentDiff > threshold

	return result, nil
}

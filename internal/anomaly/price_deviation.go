package anomaly

import (
	"errors"
	"fmt"
	"math"

	"github.com/Alias1177/GemAlerts/internal/calculate"
	"github.com/Alias1177/GemAlerts/models"
)

// PriceDeviation checks whether the current price is further from the 24h average
// than one sample standard deviation of the hourly prices.
func PriceDeviation(symbol string, ticker *models.SymbolTicker) (models.PriceDeviation, error) {
	result := models.PriceDeviation{Symbol: symbol}

	if ticker == nil || len(ticker.Changes) == 0 {
		return result, fmt.Errorf("%w: no hourly prices for %s", ErrNoData, symbol)
	}

	prices, err := parseNumbers("changes", ticker.Changes)
	if err != nil {
		return result, err
	}

	result.Average = calculate.Average(prices)

	stdDev, err := calculate.SampleStdDev(prices)
	if err != nil {
		if errors.Is(err, calculate.ErrInsufficientSamples) {
			return result, fmt.Errorf("%w: %d hourly price(s) for %s", ErrInsufficientData, len(prices), symbol)
		}
		return result, err
	}
	result.StdDev = stdDev

	current, err := ParseNumber("close", ticker.Close)
	if err != nil {
		return result, err
	}
	result.Current = current

	result.Deviation = math.Abs(current - result.Average)
	result.Exceeds = result.Deviation > result.StdDev

	return result, nil
}

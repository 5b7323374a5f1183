package anomaly

import (
	"fmt"

	"github.com/Alias1177/GemAlerts/internal/calculate"
	"github.com/Alias1177/GemAlerts/models"
)

// DayVolume reads the 24h volume in the settlement currency.
//
// A day volume of zero is reported as ErrZeroVolume (which is also ErrNoData):
// a zero reading is taken to mean the exchange has no history for the symbol.
func DayVolume(symbol, settlement string, ticker *models.PublicTicker) (float64, error) {
	var raw string
	if ticker != nil {
		raw = ticker.Volume[settlement]
	}
	if raw == "" {
		return 0, fmt.Errorf("%w: no %s day volume for %s", ErrNoData, settlement, symbol)
	}

	dayVolume, err := ParseNumber("volume."+settlement, raw)
	if err != nil {
		return 0, err
	}
	if dayVolume == 0 {
		return 0, fmt.Errorf("%w for %s", ErrZeroVolume, symbol)
	}
	return dayVolume, nil
}

// VolumeDeviation checks whether the last trade's amount, as a percentage of the
// 24h volume in the settlement currency, is above threshold.
func VolumeDeviation(symbol string, threshold float64, settlement string, ticker *models.PublicTicker, trades []models.Trade) (models.VolumeDeviation, error) {
	result := models.VolumeDeviation{Symbol: symbol, Threshold: threshold}

	dayVolume, err := DayVolume(symbol, settlement, ticker)
	if err != nil {
		return result, err
	}
	result.DayVolume = dayVolume

	if len(trades) == 0 {
		return result, fmt.Errorf("%w: no trades for %s", ErrNoData, symbol)
	}

	lastVolume, err := ParseNumber("amount", trades[0].Amount)
	if err != nil {
		return result, err
	}
	result.LastTradeVolume = lastVolume

	// dayVolume is non-zero here
	result.PercentOfDay, _ = calculate.PercentOf(lastVolume, dayVolume)
	result.Exceeds = result.PercentOfDay > threshold

	return result, nil
}

package alerts

import (
	"github.com/Alias1177/GemAlerts/models"
	"github.com/rs/zerolog"
)

// Reporter receives the inputs and outcome of every check
type Reporter interface {
	Threshold(threshold float64)
	Symbol(symbol string)
	PriceDeviation(result models.PriceDeviation)
	PriceChange(result models.PriceChange)
	VolumeDeviation(result models.VolumeDeviation)
	Failure(symbol string, kind CheckKind, err error)
}

// LogReporter writes check results as log events
type LogReporter struct {
	logger zerolog.Logger
}

// NewLogReporter creates a reporter on top of logger
func NewLogReporter(logger zerolog.Logger) *LogReporter {
	return &LogReporter{logger: logger}
}

func (r *LogReporter) Threshold(threshold float64) {
	r.logger.Info().Float64("threshold", threshold).Msg("Using deviation threshold")
}

func (r *LogReporter) Symbol(symbol string) {
	r.logger.Info().Str("symbol", symbol).Msg("Running checks for symbol")
}

func (r *LogReporter) PriceDeviation(res models.PriceDeviation) {
	r.logger.Info().
		Str("check", PriceDev.String()).
		Str("symbol", res.Symbol).
		Float64("average", res.Average).
		Float64("std_dev", res.StdDev).
		Float64("current", res.Current).
		Float64("deviation", res.Deviation).
		Bool("exceeds", res.Exceeds).
		Msg("Price greater than standard deviation")
}

func (r *LogReporter) PriceChange(res models.PriceChange) {
	r.logger.Info().
		Str("check", PriceChange.String()).
		Str("symbol", res.Symbol).
		Float64("start", res.Start).
		Float64("current", res.Current).
		Float64("percent_diff", res.PercentDiff).
		Float64("threshold", res.Threshold).
		Bool("exceeds", res.Exceeds).
		Msg("Percentage difference greater than threshold")
}

func (r *LogReporter) VolumeDeviation(res models.VolumeDeviation) {
	r.logger.Info().
		Str("check", VolDev.String()).
		Str("symbol", res.Symbol).
		Float64("day_volume", res.DayVolume).
		Float64("last_trade_volume", res.LastTradeVolume).
		Float64("percent_of_day", res.PercentOfDay).
		Float64("threshold", res.Threshold).
		Bool("exceeds", res.Exceeds).
		Msg("Last trade volume greater than threshold")
}

func (r *LogReporter) Failure(symbol string, kind CheckKind, err error) {
	r.logger.Error().Err(err).Str("check", kind.String()).Str("symbol", symbol).Msg("Check failed")
}

package alerts

import (
	"context"
	"fmt"

	"github.com/Alias1177/GemAlerts/internal/anomaly"
	"github.com/Alias1177/GemAlerts/models"
)

// Request describes one run of the tool
type Request struct {
	Kind CheckKind
	// Symbol limits the run to one symbol. Empty means every listed symbol.
	Symbol    string
	Threshold *float64
}

// Summary counts what happened during a run
type Summary struct {
	Symbols     int
	Evaluations int
	Alerts      int
	Failures    int
}

// checkFunc fetches what one check needs for symbol, evaluates it and reports the result
type checkFunc func(ctx context.Context, symbol string, threshold float64) (alert bool, err error)

// Dispatcher runs the selected checks against every requested symbol
type Dispatcher struct {
	gateway    models.MarketGateway
	reporter   Reporter
	settlement string
	checks     map[CheckKind]checkFunc
}

// NewDispatcher creates a dispatcher. settlement is the currency the day volume is read in.
func NewDispatcher(gateway models.MarketGateway, reporter Reporter, settlement string) *Dispatcher {
	d := &Dispatcher{
		gateway:    gateway,
		reporter:   reporter,
		settlement: settlement,
	}
	d.checks = map[CheckKind]checkFunc{
		PriceDev:    d.priceDeviation,
		PriceChange: d.priceChange,
		VolDev:      d.volumeDeviation,
	}
	return d
}

// Run validates the request and runs the checks. The returned error is only ever
// a configuration problem or a failure to list symbols; check failures are
// reported and counted in the summary.
func (d *Dispatcher) Run(ctx context.Context, req Request) (Summary, error) {
	var summary Summary

	if _, ok := kindNames[req.Kind]; !ok {
		return summary, fmt.Errorf("%w: unknown check type %v", anomaly.ErrConfiguration, req.Kind)
	}
	if req.Threshold == nil && req.Kind.NeedsThreshold() {
		return summary, fmt.Errorf("%w: deviation threshold required when checking for price change and volume deviation", anomaly.ErrConfiguration)
	}

	var threshold float64
	if req.Threshold != nil {
		threshold = *req.Threshold
		d.reporter.Threshold(threshold)
	}

	symbols := []string{req.Symbol}
	if req.Symbol == "" {
		listed, err := d.gateway.Symbols(ctx)
		if err != nil {
			return summary, fmt.Errorf("%w: listing symbols: %w", anomaly.ErrTransport, err)
		}
		symbols = listed
	}

	for _, symbol := range symbols {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		summary.Symbols++
		d.reporter.Symbol(symbol)

		for _, kind := range req.Kind.Evaluators() {
			summary.Evaluations++

			alert, err := d.checks[kind](ctx, symbol, threshold)
			if err != nil {
				summary.Failures++
				d.reporter.Failure(symbol, kind, err)
				continue
			}
			if alert {
				summary.Alerts++
			}
		}
	}

	return summary, nil
}

func (d *Dispatcher) priceDeviation(ctx context.Context, symbol string, _ float64) (bool, error) {
	ticker, err := d.gateway.SymbolTicker(ctx, symbol)
	if err != nil {
		return false, transportError(err)
	}

	res, err := anomaly.PriceDeviation(symbol, ticker)
	if err != nil {
		return false, err
	}
	d.reporter.PriceDeviation(res)
	return res.Exceeds, nil
}

func (d *Dispatcher) priceChange(ctx context.Context, symbol string, threshold float64) (bool, error) {
	ticker, err := d.gateway.SymbolTicker(ctx, symbol)
	if err != nil {
		return false, transportError(err)
	}

	res, err := anomaly.PriceChange(symbol, threshold, ticker)
	if err != nil {
		return false, err
	}
	d.reporter.PriceChange(res)
	return res.Exceeds, nil
}

func (d *Dispatcher) volumeDeviation(ctx context.Context, symbol string, threshold float64) (bool, error) {
	ticker, err := d.gateway.PublicTicker(ctx, symbol)
	if err != nil {
		return false, transportError(err)
	}

	// no point spending a request on trades without a day volume to compare against
	if _, err := anomaly.DayVolume(symbol, d.settlement, ticker); err != nil {
		return false, err
	}

	trades, err := d.gateway.LastTrade(ctx, symbol)
	if err != nil {
		return false, transportError(err)
	}

	res, err := anomaly.VolumeDeviation(symbol, threshold, d.settlement, ticker, trades)
	if err != nil {
		return false, err
	}
	d.reporter.VolumeDeviation(res)
	return res.Exceeds, nil
}

func transportError(err error) error {
	return fmt.Errorf("%w: %w", anomaly.ErrTransport, err)
}

package models

import "context"

// MarketGateway is the read-only view of the exchange the checks depend on
type MarketGateway interface {
	SymbolTicker(ctx context.Context, symbol string) (*SymbolTicker, error)
	PublicTicker(ctx context.Context, symbol string) (*PublicTicker, error)
	LastTrade(ctx context.Context, symbol string) ([]Trade, error)
	Symbols(ctx context.Context) ([]string, error)
}

package models

// SymbolTicker represents the v2 ticker of a symbol
type SymbolTicker struct {
	Symbol string `json:"symbol"`
	Open   string `json:"open"`
	High   string `json:"high"`
	Low    string `json:"low"`
	Close  string `json:"close"`
	// Hourly prices covering roughly the last 24 hours, in the order the exchange sent them
	Changes []string `json:"changes"`
}

// PublicTicker represents the v1 public ticker of a symbol
type PublicTicker struct {
	Bid  string `json:"bid"`
	Ask  string `json:"ask"`
	Last string `json:"last"`
	// Volume maps a currency code to the traded amount over the last 24 hours
	Volume          map[string]string `json:"volume"`
	VolumeTimestamp int64             `json:"volume_timestamp"`
}

// Trade is a single public trade
type Trade struct {
	TID         int64  `json:"tid"`
	Timestamp   int64  `json:"timestamp"`
	TimestampMs int64  `json:"timestampms"`
	Price       string `json:"price"`
	Amount      string `json:"amount"`
	Exchange    string `json:"exchange"`
	Type        string `json:"type"`
}

// PriceDeviation holds the outcome of the price deviation check
type PriceDeviation struct {
	Symbol    string  `json:"symbol"`
	Average   float64 `json:"average"`
	StdDev    float64 `json:"std_dev"`
	Current   float64 `json:"current"`
	Deviation float64 `json:"deviation"`
	Exceeds   bool    `json:"exceeds"`
}

// PriceChange holds the outcome of the open-to-current price change check
type PriceChange struct {
	Symbol      string  `json:"symbol"`
	Threshold   float64 `json:"threshold"`
	Start       float64 `json:"start"`
	Current     float64 `json:"current"`
	PercentDiff float64 `json:"percent_diff"`
	Exceeds     bool    `json:"exceeds"`
}

// VolumeDeviation holds the outcome of the last-trade volume check
type VolumeDeviation struct {
	Symbol          string  `json:"symbol"`
	Threshold       float64 `json:"threshold"`
	DayVolume       float64 `json:"day_volume"`
	LastTradeVolume float64 `json:"last_trade_volume"`
	PercentOfDay    float64 `json:"percent_of_day"`
	Exceeds         bool    `json:"exceeds"`
}

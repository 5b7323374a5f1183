package anomaly

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/Alias1177/GemAlerts/models"
)

const epsilon = 1e-9

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected float64
		wantErr  bool
	}{
		{name: "integer", raw: "100", expected: 100},
		{name: "decimal", raw: "29182.53", expected: 29182.53},
		{name: "negative", raw: "-0.5", expected: -0.5},
		{name: "exponent", raw: "1.5e3", expected: 1500},
		{name: "empty", raw: "", wantErr: true},
		{name: "text", raw: "abc", wantErr: true},
		{name: "nan", raw: "NaN", wantErr: true},
		{name: "infinity", raw: "Inf", wantErr: true},
		{name: "overflow", raw: "1e400", wantErr: true},
		{name: "huge exponent", raw: "1e10000000", wantErr: true},
		{name: "tiny exponent", raw: "1e-10000000", wantErr: true},
		{name: "long mantissa huge exponent", raw: "123456789e99999999", wantErr: true},
		{name: "small but representable", raw: "2.5e-8", expected: 2.5e-8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNumber("field", tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ErrParse) {
					t.Fatalf("ParseNumber(%q) error = %v, want ErrParse", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseNumber(%q) unexpected error: %v", tt.raw, err)
			}
			if math.Abs(got-tt.expected) > epsilon {
				t.Errorf("ParseNumber(%q) = %v, want %v", tt.raw, got, tt.expected)
			}
		})
	}
}

func TestParseNumberRejectsExtremeExponentsQuickly(t *testing.T) {
	start := time.Now()
	for _, raw := range []string{"1e10000000", "1e-10000000", "9e2147483647"} {
		if _, err := ParseNumber("volume", raw); !errors.Is(err, ErrParse) {
			t.Errorf("ParseNumber(%q) error = %v, want ErrParse", raw, err)
		}
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("rejecting extreme exponents took %v", elapsed)
	}
}

func TestPriceDeviation(t *testing.T) {
	tests := []struct {
		name      string
		ticker    *models.SymbolTicker
		err       error
		average   float64
		stdDev    float64
		current   float64
		deviation float64
		exceeds   bool
	}{
		{
			name:    "Flat prices",
			ticker:  &models.SymbolTicker{Changes: []string{"100", "100", "100"}, Close: "100"},
			average: 100,
			current: 100,
		},
		{
			name:      "Price far from average",
			ticker:    &models.SymbolTicker{Changes: []string{"1", "3"}, Close: "5"},
			average:   2,
			stdDev:    math.Sqrt2,
			current:   5,
			deviation: 3,
			exceeds:   true,
		},
		{
			name:      "Price inside the band",
			ticker:    &models.SymbolTicker{Changes: []string{"1", "3"}, Close: "2.5"},
			average:   2,
			stdDev:    math.Sqrt2,
			current:   2.5,
			deviation: 0.5,
		},
		{
			name:   "No changes",
			ticker: &models.SymbolTicker{Changes: []string{}, Close: "100"},
			err:    ErrNoData,
		},
		{
			name:   "Changes absent",
			ticker: &models.SymbolTicker{Close: "100"},
			err:    ErrNoData,
		},
		{
			name: "Nil ticker",
			err:  ErrNoData,
		},
		{
			name:   "Single change",
			ticker: &models.SymbolTicker{Changes: []string{"10"}, Close: "10"},
			err:    ErrInsufficientData,
		},
		{
			name:   "Non-numeric change",
			ticker: &models.SymbolTicker{Changes: []string{"10", "x"}, Close: "10"},
			err:    ErrParse,
		},
		{
			name:   "Missing close",
			ticker: &models.SymbolTicker{Changes: []string{"10", "11"}},
			err:    ErrParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PriceDeviation("btcusd", tt.ticker)
			if !errors.Is(err, tt.err) {
				t.Fatalf("PriceDeviation() error = %v, want %v", err, tt.err)
			}
			if tt.err != nil {
				return
			}
			if math.Abs(got.Average-tt.average) > epsilon {
				t.Errorf("Average = %v, want %v", got.Average, tt.average)
			}
			if math.Abs(got.StdDev-tt.stdDev) > epsilon {
				t.Errorf("StdDev = %v, want %v", got.StdDev, tt.stdDev)
			}
			if math.Abs(got.Current-tt.current) > epsilon {
				t.Errorf("Current = %v, want %v", got.Current, tt.current)
			}
			if math.Abs(got.Deviation-tt.deviation) > epsilon {
				t.Errorf("Deviation = %v, want %v", got.Deviation, tt.deviation)
			}
			if got.Exceeds != tt.exceeds {
				t.Errorf("Exceeds = %v, want %v", got.Exceeds, tt.exceeds)
			}
			if got.Symbol != "btcusd" {
				t.Errorf("Symbol = %q, want btcusd", got.Symbol)
			}
		})
	}
}

func TestPriceChange(t *testing.T) {
	tests := []struct {
		name        string
		threshold   float64
		ticker      *models.SymbolTicker
		err         error
		percentDiff float64
		exceeds     bool
	}{
		{
			name:        "Rise above threshold",
			threshold:   5,
			ticker:      &models.SymbolTicker{Open: "100", Close: "110"},
			percentDiff: 10,
			exceeds:     true,
		},
		{
			name:        "Fall below threshold",
			threshold:   15,
			ticker:      &models.SymbolTicker{Open: "100", Close: "90"},
			percentDiff: 10,
		},
		{
			name:        "Equal to threshold",
			threshold:   10,
			ticker:      &models.SymbolTicker{Open: "100", Close: "110"},
			percentDiff: 10,
		},
		{
			name:        "Negative threshold",
			threshold:   -1,
			ticker:      &models.SymbolTicker{Open: "100", Close: "100"},
			percentDiff: 0,
			exceeds:     true,
		},
		{
			name:        "Negative open",
			threshold:   0,
			ticker:      &models.SymbolTicker{Open: "-100", Close: "-90"},
			percentDiff: -10,
		},
		{
			name:      "Zero open",
			threshold: 5,
			ticker:    &models.SymbolTicker{Open: "0", Close: "50"},
			err:       ErrDivisionByZero,
		},
		{
			name:      "Missing open",
			threshold: 5,
			ticker:    &models.SymbolTicker{Close: "50"},
			err:       ErrParse,
		},
		{
			name:      "Bad close",
			threshold: 5,
			ticker:    &models.SymbolTicker{Open: "50", Close: "n/a"},
			err:       ErrParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PriceChange("ethusd", tt.threshold, tt.ticker)
			if !errors.Is(err, tt.err) {
				t.Fatalf("PriceChange() error = %v, want %v", err, tt.err)
			}
			if tt.err != nil {
				return
			}
			if math.Abs(got.PercentDiff-tt.percentDiff) > epsilon {
				t.Errorf("PercentDiff = %v, want %v", got.PercentDiff, tt.percentDiff)
			}
			if got.Exceeds != tt.exceeds {
				t.Errorf("Exceeds = %v, want %v", got.Exceeds, tt.exceeds)
			}
		})
	}
}

func TestVolumeDeviation(t *testing.T) {
	tick := func(volume string) *models.PublicTicker {
		return &models.PublicTicker{Volume: map[string]string{"BTC": volume, "USD": "123"}}
	}
	trade := func(amount string) []models.Trade {
		return []models.Trade{{TID: 1, Amount: amount}, {TID: 0, Amount: "999"}}
	}

	tests := []struct {
		name         string
		ticker       *models.PublicTicker
		trades       []models.Trade
		err          error
		percentOfDay float64
		exceeds      bool
	}{
		{
			name:         "Large trade",
			ticker:       tick("200"),
			trades:       trade("10"),
			percentOfDay: 5,
			exceeds:      true,
		},
		{
			name:         "Small trade",
			ticker:       tick("200"),
			trades:       trade("1"),
			percentOfDay: 0.5,
		},
		{
			name:   "Zero day volume",
			ticker: tick("0"),
			trades: trade("1"),
			err:    ErrNoData,
		},
		{
			name:   "Settlement currency missing",
			ticker: &models.PublicTicker{Volume: map[string]string{"USD": "123"}},
			trades: trade("1"),
			err:    ErrNoData,
		},
		{
			name:   "No volume at all",
			ticker: &models.PublicTicker{},
			trades: trade("1"),
			err:    ErrNoData,
		},
		{
			name:   "Non-numeric day volume",
			ticker: tick("lots"),
			trades: trade("1"),
			err:    ErrParse,
		},
		{
			name:   "No trades",
			ticker: tick("200"),
			trades: nil,
			err:    ErrNoData,
		},
		{
			name:   "Non-numeric amount",
			ticker: tick("200"),
			trades: trade("?"),
			err:    ErrParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := VolumeDeviation("btcusd", 2, "BTC", tt.ticker, tt.trades)
			if !errors.Is(err, tt.err) {
				t.Fatalf("VolumeDeviation() error = %v, want %v", err, tt.err)
			}
			if tt.err != nil {
				return
			}
			if math.Abs(got.PercentOfDay-tt.percentOfDay) > epsilon {
				t.Errorf("PercentOfDay = %v, want %v", got.PercentOfDay, tt.percentOfDay)
			}
			if got.Exceeds != tt.exceeds {
				t.Errorf("Exceeds = %v, want %v", got.Exceeds, tt.exceeds)
			}
		})
	}
}

func TestZeroVolumeIsDistinguishable(t *testing.T) {
	_, err := VolumeDeviation("btcusd", 1, "BTC",
		&models.PublicTicker{Volume: map[string]string{"BTC": "0.000"}},
		[]models.Trade{{Amount: "1"}})
	if !errors.Is(err, ErrZeroVolume) {
		t.Fatalf("error = %v, want ErrZeroVolume", err)
	}
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("error = %v, want it to also match ErrNoData", err)
	}

	_, err = VolumeDeviation("btcusd", 1, "BTC", &models.PublicTicker{}, []models.Trade{{Amount: "1"}})
	if errors.Is(err, ErrZeroVolume) {
		t.Errorf("missing volume reported as ErrZeroVolume")
	}
}

func TestChecksAreRepeatable(t *testing.T) {
	ticker := &models.SymbolTicker{
		Changes: []string{"29100.5", "29250", "28990.25", "29400"},
		Open:    "29000",
		Close:   "29333.3",
	}
	pub := &models.PublicTicker{Volume: map[string]string{"BTC": "512.75"}}
	trades := []models.Trade{{Amount: "0.25"}}

	dev1, err1 := PriceDeviation("btcusd", ticker)
	dev2, err2 := PriceDeviation("btcusd", ticker)
	if err1 != nil || err2 != nil || dev1 != dev2 {
		t.Errorf("PriceDeviation not repeatable: %+v (%v) vs %+v (%v)", dev1, err1, dev2, err2)
	}

	chg1, err1 := PriceChange("btcusd", 1, ticker)
	chg2, err2 := PriceChange("btcusd", 1, ticker)
	if err1 != nil || err2 != nil || chg1 != chg2 {
		t.Errorf("PriceChange not repeatable: %+v (%v) vs %+v (%v)", chg1, err1, chg2, err2)
	}

	vol1, err1 := VolumeDeviation("btcusd", 1, "BTC", pub, trades)
	vol2, err2 := VolumeDeviation("btcusd", 1, "BTC", pub, trades)
	if err1 != nil || err2 != nil || vol1 != vol2 {
		t.Errorf("VolumeDeviation not repeatable: %+v (%v) vs %+v (%v)", vol1, err1, vol2, err2)
	}

	if len(ticker.Changes) != 4 || ticker.Changes[0] != "29100.5" {
		t.Errorf("input ticker was modified: %v", ticker.Changes)
	}
}

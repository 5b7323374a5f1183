package alerts

import (
	"fmt"

	"github.com/Alias1177/GemAlerts/internal/anomaly"
)

// CheckKind selects which checks run for each symbol
type CheckKind int

const (
	PriceDev CheckKind = iota + 1
	PriceChange
	VolDev
	All
)

var kindNames = map[CheckKind]string{
	PriceDev:    "pricedev",
	PriceChange: "pricechange",
	VolDev:      "voldev",
	All:         "ALL",
}

// KindNames lists the accepted command-line values in display order
func KindNames() []string {
	return []string{"pricedev", "pricechange", "voldev", "ALL"}
}

// ParseCheckKind maps a command-line value onto a CheckKind. Matching is case sensitive.
func ParseCheckKind(s string) (CheckKind, error) {
	for kind, name := range kindNames {
		if name == s {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown check type %q, want one of %v", anomaly.ErrConfiguration, s, KindNames())
}

func (k CheckKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("CheckKind(%d)", int(k))
}

// Evaluators expands a selection into the concrete checks it runs, in run order
func (k CheckKind) Evaluators() []CheckKind {
	if k == All {
		return []CheckKind{PriceDev, PriceChange, VolDev}
	}
	return []CheckKind{k}
}

// NeedsThreshold reports whether the selection uses a percentage threshold
func (k CheckKind) NeedsThreshold() bool {
	return k != PriceDev
}

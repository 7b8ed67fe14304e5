package analytics

import (
	"math"

	"github.com/shopspring/decimal"
)

type scale struct {
	floor  float64
	suffix string
}

var (
	currencyScales = []scale{{1e12, "T"}, {1e9, "B"}, {1e6, "M"}}
	numberScales   = []scale{{1e9, "B"}, {1e6, "M"}, {1e3, "K"}}
)

// FormatCurrency renders a dollar amount with a T/B/M suffix and two decimals.
//
//	FormatCurrency(999)           // "$999.00"
//	FormatCurrency(1_500_000_000) // "$1.50B"
//	FormatCurrency(2e12)          // "$2.00T"
//
// Non-finite input renders as "$0.00".
func FormatCurrency(value float64) string {
	d, suffix := scaled(value, currencyScales)
	return "$" + d.StringFixed(2) + suffix
}

// FormatNumber renders a count with a B/M/K suffix and two decimals.
// Values below one thousand are rendered as whole numbers.
func FormatNumber(value float64) string {
	d, suffix := scaled(value, numberScales)
	if suffix == "" {
		return d.StringFixed(0)
	}
	return d.StringFixed(2) + suffix
}

// scaled divides value by the first scale it reaches.
func scaled(value float64, scales []scale) (decimal.Decimal, string) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return decimal.Zero, ""
	}
	d := decimal.NewFromFloat(value)
	for _, s := range scales {
		if value >= s.floor {
			return d.Div(decimal.NewFromFloat(s.floor)), s.suffix
		}
	}
	return d, ""
}

package format

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when a profile has no currency code.
const DefaultCurrency = "BRL"

// moneyLayout renders pt-BR grouping: dot for thousands, comma for decimals, two places.
const moneyLayout = "#.###,##"

var currencySymbols = map[string]string{
	"BRL": "R$",
	"USD": "US$",
	"EUR": "€",
	"GBP": "£",
	"ARS": "ARS",
	"JPY": "JP¥",
}

// Round rounds half away from zero to two decimal places. NaN and infinities are
// returned unchanged.
func Round(v float64) float64 {
	if !isFinite(v) {
		return v
	}
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// Money renders v as a pt-BR currency string, e.g. "R$ 1.234,56" or "-US$ 20,00".
// Unknown currency codes are printed as the code itself. NaN and infinities render as
// "R$ NaN", "-R$ Inf" and so on.
func Money(v float64, currency string) string {
	code := strings.ToUpper(strings.TrimSpace(currency))
	if code == "" {
		code = DefaultCurrency
	}
	symbol, ok := currencySymbols[code]
	if !ok {
		symbol = code
	}

	if !isFinite(v) {
		switch {
		case math.IsNaN(v):
			return symbol + " NaN"
		case v < 0:
			return "-" + symbol + " Inf"
		default:
			return symbol + " Inf"
		}
	}

	rounded := decimal.NewFromFloat(v).Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}
	abs, _ := rounded.Abs().Float64()

	return sign + symbol + " " + humanize.FormatFloat(moneyLayout, abs)
}

// Percent renders a ratio as a percentage with two decimals: 0.06 -> "6.00%".
func Percent(v float64) string {
	return fmt.Sprintf("%.2f%%", v*100)
}

// DateTime renders an RFC 3339 timestamp as "dd/mm/yyyy hh:mm" in loc.
// Input that does not parse is returned unchanged.
func DateTime(raw string, loc *time.Location) string {
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(raw))
	if err != nil {
		return raw
	}
	return t.In(location(loc)).Format("02/01/2006 15:04")
}

// Date renders t as "dd/mm/yyyy" in loc. The zero time renders as "".
func Date(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	return t.In(location(loc)).Format("02/01/2006")
}

// DateKey returns the calendar date of t in loc as "yyyy-mm-dd".
func DateKey(t time.Time, loc *time.Location) string {
	return t.In(location(loc)).Format(time.DateOnly)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func location(loc *time.Location) *time.Location {
	if loc == nil {
		return time.Local
	}
	return loc
}

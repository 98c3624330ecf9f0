// Package format converts user-typed, locale-formatted text into numbers and renders
// amounts, percentages and timestamps for display.
//
// Nothing in this package fails loudly: parsing has a strict variant that returns an
// error and a lenient variant that substitutes a caller-chosen default.
package format

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrNotANumber is returned by Parse when the input cannot be read as a number.
var ErrNotANumber = errors.New("not a number")

// Parse reads a number typed in either pt-BR ("1.234,56") or plain ("1234.56") notation.
//
// Rules:
//   - whitespace and a leading currency symbol ("R$", "US$", "€", "£", "$") are ignored
//   - if a comma is present, dots are grouping separators and the comma is the decimal mark
//   - several dots without a comma are grouping separators ("1.000.000")
//   - a single dot followed by exactly three digits is a grouping separator ("1.000"),
//     unless the integer part is zero ("0.500")
//   - any other single dot is the decimal point ("2.10")
//
// Exponent notation ("1e5") is not accepted, and values outside the float64 range are
// errors.
func Parse(s string) (float64, error) {
	clean := normalize(s)
	if clean == "" {
		return 0, fmt.Errorf("%w: empty input", ErrNotANumber)
	}
	if !isPlainDecimal(clean) {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}

	f, _ := d.Float64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("%w: %q is out of range", ErrNotANumber, s)
	}
	return f, nil
}

// ParseLenient is the forgiving parse used for live-typed form fields: any input that
// Parse rejects yields def instead of an error.
func ParseLenient(s string, def float64) float64 {
	f, err := Parse(s)
	if err != nil {
		return def
	}
	return f
}

// isPlainDecimal reports whether s is an optional sign followed by digits with at most
// one decimal point.
func isPlainDecimal(s string) bool {
	if s != "" && (s[0] == '-' || s[0] == '+') {
		s = s[1:]
	}
	digits, dots := 0, 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
			dots++
		default:
			return false
		}
	}
	return digits > 0 && dots <= 1
}

func normalize(s string) string {
	s = strings.Join(strings.Fields(s), "")
	for _, symbol := range []string{"R$", "US$", "€", "£", "$"} {
		if rest, ok := strings.CutPrefix(s, symbol); ok {
			s = rest
			break
		}
		if rest, ok := strings.CutPrefix(s, "-"+symbol); ok {
			s = "-" + rest
			break
		}
	}

	switch dots := strings.Count(s, "."); {
	case strings.Contains(s, ","):
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case dots > 1:
		s = strings.ReplaceAll(s, ".", "")
	case dots == 1:
		i := strings.Index(s, ".")
		whole := strings.TrimPrefix(s[:i], "-")
		if len(s)-i-1 == 3 && whole != "" && whole[0] != '0' {
			s = s[:i] + s[i+1:]
		}
	}
	return s
}

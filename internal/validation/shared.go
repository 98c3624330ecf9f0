package validation

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// MaxAmount bounds the magnitude of every stored money amount and odd, so that totals
// over any realistic number of operations stay finite.
const MaxAmount = 1e12

// validateAmount records an error for field when v is not a finite number within
// MaxAmount, or when v is negative and allowNegative is false.
func validateAmount(errors map[string]string, field string, v float64, allowNegative bool) {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		errors[field] = field + " must be a number"
	case math.Abs(v) > MaxAmount:
		errors[field] = fmt.Sprintf("%s must be at most %g in magnitude", field, MaxAmount)
	case !allowNegative && v < 0:
		errors[field] = field + " cannot be negative"
	}
}

// Error collects field-level validation messages.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	slices.Sort(fields)

	msgs := make([]string, 0, len(fields))
	for _, field := range fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, e.Fields[field]))
	}
	return strings.Join(msgs, "; ")
}

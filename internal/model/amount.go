package model

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ndewijer/surebet-tracker/internal/format"
)

// Amount is a monetary value that accepts either a JSON number or a locale-formatted
// string ("1.234,56") when decoded, and always encodes as a number.
// Strings that are not numbers decode to 0.
type Amount float64

// Float64 returns the amount as a float64.
func (a Amount) Float64() float64 {
	return float64(a)
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = 0
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("failed to decode amount: %w", err)
		}
		*a = Amount(format.ParseLenient(s, 0))
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("failed to decode amount: %w", err)
	}
	*a = Amount(f)
	return nil
}

// AmountPtr returns a pointer to an Amount holding v.
func AmountPtr(v float64) *Amount {
	a := Amount(v)
	return &a
}

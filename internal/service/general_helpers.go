package service

import "github.com/ndewijer/surebet-tracker/internal/format"

// round rounds a monetary value to two decimal places, half away from zero.
// Stakes, returns and profits are stored rounded so that what the API returns is what
// the user would enter at the outlet.
//
// Example:
//
//	round(51.219512)  // returns 51.22
//	round(0.005)      // returns 0.01
func round(value float64) float64 {
	return format.Round(value)
}

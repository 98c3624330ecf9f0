// Package arbitrage computes two-outcome surebet stake splits and guaranteed profit.
//
// Two entry points are supported, both limited to exactly two outlets:
//   - Split: a fixed total stake is divided between the legs so every outcome pays the same
//   - Evaluate: the stake of each leg is chosen by the user and the result is reported as-is
//
// Inputs are validated before any reciprocal is taken; invalid odds or stakes yield
// ErrInvalidInput instead of a number.
package arbitrage

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidInput indicates an out-of-domain odd or stake.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidOdds indicates an odd that is zero or negative. It wraps ErrInvalidInput.
	ErrInvalidOdds = fmt.Errorf("%w: odds must be positive", ErrInvalidInput)
)

// Legs is the number of outlets the calculators work with.
const Legs = 2

// SplitResult is the outcome of dividing a fixed total stake across two legs.
type SplitResult struct {
	Odds         [Legs]float64 `json:"odds"`
	TotalStake   float64       `json:"totalStake"`
	InverseSum   float64       `json:"inverseSum"`
	Margin       float64       `json:"margin"`
	HasArbitrage bool          `json:"hasArbitrage"`
	Proportions  [Legs]float64 `json:"proportions"`
	Stakes       [Legs]float64 `json:"stakes"`
	Returns      [Legs]float64 `json:"returns"`
	NetReturns   [Legs]float64 `json:"netReturns"`
	MinProfit    float64       `json:"minProfit"`
	ROI          float64       `json:"roi"`
}

// StakeResult is the outcome of two user-chosen stakes.
type StakeResult struct {
	Odds         [Legs]float64 `json:"odds"`
	Stakes       [Legs]float64 `json:"stakes"`
	TotalStake   float64       `json:"totalStake"`
	InverseSum   float64       `json:"inverseSum"`
	HasArbitrage bool          `json:"hasArbitrage"`
	Returns      [Legs]float64 `json:"returns"`
	NetReturns   [Legs]float64 `json:"netReturns"`
	MinProfit    float64       `json:"minProfit"`
	ROI          float64       `json:"roi"`
}

// HasArbitrage reports whether the two odds guarantee a positive return: 1/odd1 + 1/odd2 < 1.
// Break-even (exactly 1) is not arbitrage.
func HasArbitrage(odd1, odd2 float64) (bool, error) {
	inv, err := inverseSum(odd1, odd2)
	if err != nil {
		return false, err
	}
	return inv < 1, nil
}

// Split divides totalStake between two outlets in proportion to the implied probability
// of each odd, which equalizes the net return of both outcomes.
func Split(odd1, odd2, totalStake float64) (*SplitResult, error) {
	inv, err := inverseSum(odd1, odd2)
	if err != nil {
		return nil, err
	}
	if err := validateStake("totalStake", totalStake); err != nil {
		return nil, err
	}

	p1 := (1 / odd1) / inv
	p2 := 1 - p1

	res := &SplitResult{
		Odds:         [Legs]float64{odd1, odd2},
		TotalStake:   totalStake,
		InverseSum:   inv,
		Margin:       1 - inv,
		HasArbitrage: inv < 1,
		Proportions:  [Legs]float64{p1, p2},
		Stakes:       [Legs]float64{totalStake * p1, totalStake * p2},
	}
	for i := range Legs {
		res.Returns[i] = res.Stakes[i] * res.Odds[i]
		res.NetReturns[i] = res.Returns[i] - totalStake
	}
	res.MinProfit = math.Min(res.NetReturns[0], res.NetReturns[1])
	res.ROI = roi(res.MinProfit, totalStake)

	return res, nil
}

// Evaluate reports the guaranteed minimum profit of two fixed stakes. Unlike Split, the
// net returns of the two outcomes are generally different.
func Evaluate(odd1, stake1, odd2, stake2 float64) (*StakeResult, error) {
	inv, err := inverseSum(odd1, odd2)
	if err != nil {
		return nil, err
	}
	if err := validateStake("stake1", stake1); err != nil {
		return nil, err
	}
	if err := validateStake("stake2", stake2); err != nil {
		return nil, err
	}

	total := stake1 + stake2
	res := &StakeResult{
		Odds:         [Legs]float64{odd1, odd2},
		Stakes:       [Legs]float64{stake1, stake2},
		TotalStake:   total,
		InverseSum:   inv,
		HasArbitrage: inv < 1,
	}
	for i := range Legs {
		res.Returns[i] = res.Stakes[i] * res.Odds[i]
		res.NetReturns[i] = res.Returns[i] - total
	}
	res.MinProfit = math.Min(res.NetReturns[0], res.NetReturns[1])
	res.ROI = roi(res.MinProfit, total)

	return res, nil
}

// Conclude returns the realized profit when leg winner (0-based) wins: only the winner's
// return counts and every other stake is forfeit.
func (r *StakeResult) Conclude(winner int) (float64, error) {
	if winner < 0 || winner >= Legs {
		return 0, fmt.Errorf("%w: winner must be between 1 and %d", ErrInvalidInput, Legs)
	}
	return r.Returns[winner] - r.TotalStake, nil
}

func inverseSum(odd1, odd2 float64) (float64, error) {
	for i, odd := range []float64{odd1, odd2} {
		if math.IsNaN(odd) || math.IsInf(odd, 0) {
			return 0, fmt.Errorf("%w: odd%d is not a finite number", ErrInvalidInput, i+1)
		}
		if odd <= 0 {
			return 0, fmt.Errorf("%w: odd%d = %v", ErrInvalidOdds, i+1, odd)
		}
		if odd <= 1 {
			return 0, fmt.Errorf("%w: odd%d must be greater than 1, got %v", ErrInvalidInput, i+1, odd)
		}
	}
	return 1/odd1 + 1/odd2, nil
}

func validateStake(name string, stake float64) error {
	if math.IsNaN(stake) || math.IsInf(stake, 0) {
		return fmt.Errorf("%w: %s is not a finite number", ErrInvalidInput, name)
	}
	if stake < 0 {
		return fmt.Errorf("%w: %s cannot be negative, got %v", ErrInvalidInput, name, stake)
	}
	return nil
}

func roi(profit, stake float64) float64 {
	if stake > 0 {
		return profit / stake
	}
	return 0
}

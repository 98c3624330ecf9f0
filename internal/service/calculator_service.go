package service

import (
	"github.com/ndewijer/surebet-tracker/internal/api/request"
	"github.com/ndewijer/surebet-tracker/internal/arbitrage"
)

// StakesPreview is a fixed-stakes evaluation, with the realized profit when a winner
// was declared.
type StakesPreview struct {
	*arbitrage.StakeResult
	Winner         *int     `json:"winner,omitempty"`
	RealizedProfit *float64 `json:"realizedProfit,omitempty"`
}

// CalculatorService exposes the arbitrage calculators for live previews. Nothing is stored.
type CalculatorService struct{}

// NewCalculatorService creates a new CalculatorService.
func NewCalculatorService() *CalculatorService {
	return &CalculatorService{}
}

// Split previews the optimal split of a fixed total stake.
func (s *CalculatorService) Split(req request.SplitRequest) (*arbitrage.SplitResult, error) {
	return arbitrage.Split(req.Odd1.Float64(), req.Odd2.Float64(), req.TotalStake.Float64())
}

// Stakes previews two user-chosen stakes. If req.Winner is set (1-based) the realized
// profit of concluding with that leg is included.
func (s *CalculatorService) Stakes(req request.StakesRequest) (*StakesPreview, error) {
	res, err := arbitrage.Evaluate(req.Odd1.Float64(), req.Stake1.Float64(), req.Odd2.Float64(), req.Stake2.Float64())
	if err != nil {
		return nil, err
	}

	preview := &StakesPreview{StakeResult: res}
	if req.Winner != nil {
		profit, err := res.Conclude(*req.Winner - 1)
		if err != nil {
			return nil, err
		}
		preview.Winner = req.Winner
		preview.RealizedProfit = &profit
	}
	return preview, nil
}

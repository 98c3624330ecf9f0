package request

import "github.com/ndewijer/surebet-tracker/internal/model"

// SplitRequest asks for the optimal split of a fixed total stake across two odds.
type SplitRequest struct {
	Odd1       model.Amount `json:"odd1"`
	Odd2       model.Amount `json:"odd2"`
	TotalStake model.Amount `json:"totalStake"`
}

// StakesRequest evaluates two user-chosen stakes. Winner is the 1-based index of the
// winning leg; when set, the response includes the realized profit.
type StakesRequest struct {
	Odd1   model.Amount `json:"odd1"`
	Stake1 model.Amount `json:"stake1"`
	Odd2   model.Amount `json:"odd2"`
	Stake2 model.Amount `json:"stake2"`
	Winner *int         `json:"winner,omitempty"`
}

package request

import "github.com/ndewijer/surebet-tracker/internal/model"

// SaveSplitRequest saves an open operation from a fixed-total split.
type SaveSplitRequest struct {
	EventName  string       `json:"eventName"`
	Market     string       `json:"market"`
	Book1      string       `json:"book1"`
	Book2      string       `json:"book2"`
	Odd1       model.Amount `json:"odd1"`
	Odd2       model.Amount `json:"odd2"`
	TotalStake model.Amount `json:"totalStake"`
}

// QuickEntryRequest saves an operation from two fixed stakes. Without a winner the
// operation is saved open; with a 1-based winner it is saved completed.
type QuickEntryRequest struct {
	EventName string       `json:"eventName"`
	Market    string       `json:"market"`
	Book1     string       `json:"book1"`
	Odd1      model.Amount `json:"odd1"`
	Stake1    model.Amount `json:"stake1"`
	Book2     string       `json:"book2"`
	Odd2      model.Amount `json:"odd2"`
	Stake2    model.Amount `json:"stake2"`
	Winner    *int         `json:"winner,omitempty"`
}

type UpdateOperationRequest struct {
	EventName      *string       `json:"eventName,omitempty"`
	Market         *string       `json:"market,omitempty"`
	Status         *string       `json:"status,omitempty"`
	RealizedProfit *model.Amount `json:"realizedProfit,omitempty"`
}

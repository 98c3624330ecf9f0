package model

import "time"

// Status is the lifecycle state of an operation.
type Status string

const (
	StatusOpen      Status = "open"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// ValidStatus contains the allowed operation status values.
var ValidStatus = map[Status]bool{
	StatusOpen: true, StatusCompleted: true, StatusCancelled: true,
}

// IsTerminal reports whether no further status transition is allowed.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Operation is one arbitrage bet-set across several outlets.
//
// TotalStake, Surebet, ExpectedProfit and each leg's PotentialReturn are snapshots taken
// at creation and are never recomputed. RealizedProfit is nil until the user records a
// result; a nil value counts as zero in profit totals.
type Operation struct {
	ID             string    `json:"id"`
	CreatedAt      time.Time `json:"createdAt,omitzero"`
	EventName      string    `json:"eventName"`
	Market         string    `json:"market"`
	Bets           []Leg     `json:"bets"`
	TotalStake     float64   `json:"totalStake"`
	Surebet        bool      `json:"surebet"`
	ExpectedProfit float64   `json:"expectedProfit"`
	RealizedProfit *Amount   `json:"realizedProfit,omitempty"`
	Status         Status    `json:"status"`
}

// Leg is one outlet's bet within an operation.
type Leg struct {
	ID              string  `json:"id"`
	Book            string  `json:"book"`
	Odd             float64 `json:"odd"`
	Stake           float64 `json:"stake"`
	PotentialReturn float64 `json:"potentialReturn"`
}

// Realized returns the realized profit, or 0 when none has been recorded.
func (o Operation) Realized() float64 {
	if o.RealizedProfit == nil {
		return 0
	}
	return o.RealizedProfit.Float64()
}

// OperationPatch holds the fields that can be merged into an existing operation.
// Nil fields are left untouched.
type OperationPatch struct {
	EventName      *string
	Market         *string
	Status         *Status
	RealizedProfit *Amount
}

// IsEmpty reports whether the patch changes nothing.
func (p OperationPatch) IsEmpty() bool {
	return p.EventName == nil && p.Market == nil && p.Status == nil && p.RealizedProfit == nil
}

// Apply merges the patch into op.
func (p OperationPatch) Apply(op *Operation) {
	if p.EventName != nil {
		op.EventName = *p.EventName
	}
	if p.Market != nil {
		op.Market = *p.Market
	}
	if p.Status != nil {
		op.Status = *p.Status
	}
	if p.RealizedProfit != nil {
		v := *p.RealizedProfit
		op.RealizedProfit = &v
	}
}

// OperationFilter for listing operations. An empty Status returns every operation.
type OperationFilter struct {
	Status Status
}

// Matches reports whether op passes the filter.
func (f OperationFilter) Matches(op Operation) bool {
	return f.Status == "" || op.Status == f.Status
}

// OperationResponse is an operation enriched with display strings for API responses.
type OperationResponse struct {
	Operation
	CreatedAtDisplay      string `json:"createdAtDisplay,omitempty"`
	TotalStakeDisplay     string `json:"totalStakeDisplay"`
	RealizedProfitDisplay string `json:"realizedProfitDisplay"`
}

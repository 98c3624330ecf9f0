package model

import "time"

// Summary holds the bankroll KPIs derived from the operation list.
type Summary struct {
	InitialBankroll     float64 `json:"initialBankroll"`
	TotalRealizedProfit float64 `json:"totalRealizedProfit"`
	CurrentBankroll     float64 `json:"currentBankroll"`
	Evolution           float64 `json:"evolution"` // current/initial - 1
	OperationCount      int     `json:"operationCount"`
	OpenCount           int     `json:"openCount"`
	CompletedCount      int     `json:"completedCount"`
	CancelledCount      int     `json:"cancelledCount"`
}

// DailyProfit is the realized profit of all operations created on one local calendar date.
type DailyProfit struct {
	Date   string  `json:"date"` // YYYY-MM-DD
	Profit float64 `json:"profit"`
}

// BankrollPoint is one step of the bankroll evolution series.
type BankrollPoint struct {
	Label string    `json:"label"`
	Date  time.Time `json:"date,omitzero"`
	Value float64   `json:"value"`
}

// BookExposure is the total stake placed with one outlet.
type BookExposure struct {
	Book  string  `json:"book"`
	Stake float64 `json:"stake"`
}

// Report bundles every projection computed from one snapshot of the store.
type Report struct {
	Summary  Summary         `json:"summary"`
	Daily    []DailyProfit   `json:"daily"`
	Bankroll []BankrollPoint `json:"bankroll"`
	Books    []BookExposure  `json:"books"`
}

// SummaryDisplay holds the summary KPIs rendered for display in the profile's currency.
type SummaryDisplay struct {
	InitialBankroll     string `json:"initialBankroll"`
	TotalRealizedProfit string `json:"totalRealizedProfit"`
	CurrentBankroll     string `json:"currentBankroll"`
	Evolution           string `json:"evolution"`
}

// ReportResponse is a report together with display strings in the profile's currency.
type ReportResponse struct {
	Report
	Currency string         `json:"currency"`
	Display  SummaryDisplay `json:"display"`
}

// Package aggregate derives bankroll and profit projections from a profile and its
// operation list. Every function is a pure scan over its inputs; callers recompute
// from a fresh snapshot after each mutation.
package aggregate

import (
	"slices"
	"strings"
	"time"

	"github.com/ndewijer/surebet-tracker/internal/format"
	"github.com/ndewijer/surebet-tracker/internal/model"
)

// InitialLabel is the label of the first point of the bankroll series.
const InitialLabel = "Inicial"

// Summarize computes realized profit totals and bankroll evolution.
//
// Every operation contributes its realized profit regardless of status; operations
// without a recorded result contribute zero.
func Summarize(profile model.UserProfile, ops []model.Operation) model.Summary {
	initial := profile.InitialBankroll.Float64()
	s := model.Summary{
		InitialBankroll: initial,
		OperationCount:  len(ops),
	}

	for _, op := range ops {
		s.TotalRealizedProfit += op.Realized()
		switch op.Status {
		case model.StatusOpen:
			s.OpenCount++
		case model.StatusCompleted:
			s.CompletedCount++
		case model.StatusCancelled:
			s.CancelledCount++
		}
	}

	s.CurrentBankroll = initial + s.TotalRealizedProfit
	if initial > 0 {
		s.Evolution = s.CurrentBankroll/initial - 1
	}
	return s
}

// DailyProfits buckets realized profit by the calendar date of each operation's
// creation time in loc, newest date first. Operations without a creation time are skipped.
func DailyProfits(ops []model.Operation, loc *time.Location) []model.DailyProfit {
	byDate := make(map[string]float64)
	for _, op := range ops {
		if op.CreatedAt.IsZero() {
			continue
		}
		byDate[format.DateKey(op.CreatedAt, loc)] += op.Realized()
	}

	days := make([]model.DailyProfit, 0, len(byDate))
	for date, profit := range byDate {
		days = append(days, model.DailyProfit{Date: date, Profit: profit})
	}
	slices.SortFunc(days, func(a, b model.DailyProfit) int {
		return strings.Compare(b.Date, a.Date)
	})
	return days
}

// BankrollSeries walks completed operations from oldest to newest and emits the running
// bankroll after each one, preceded by the initial bankroll. An operation without a
// recorded result contributes its expected profit instead.
func BankrollSeries(profile model.UserProfile, ops []model.Operation, loc *time.Location) []model.BankrollPoint {
	completed := make([]model.Operation, 0, len(ops))
	for _, op := range ops {
		if op.Status == model.StatusCompleted {
			completed = append(completed, op)
		}
	}
	slices.SortStableFunc(completed, func(a, b model.Operation) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	running := profile.InitialBankroll.Float64()
	series := make([]model.BankrollPoint, 0, len(completed)+1)
	series = append(series, model.BankrollPoint{Label: InitialLabel, Value: running})

	for _, op := range completed {
		if op.RealizedProfit != nil {
			running += op.RealizedProfit.Float64()
		} else {
			running += op.ExpectedProfit
		}
		series = append(series, model.BankrollPoint{
			Label: format.Date(op.CreatedAt, loc),
			Date:  op.CreatedAt,
			Value: running,
		})
	}
	return series
}

// BookExposure sums the stake of every leg per outlet across all operations, in the
// order each outlet first appears.
func BookExposure(ops []model.Operation) []model.BookExposure {
	index := make(map[string]int)
	var books []model.BookExposure
	for _, op := range ops {
		for _, leg := range op.Bets {
			i, ok := index[leg.Book]
			if !ok {
				i = len(books)
				index[leg.Book] = i
				books = append(books, model.BookExposure{Book: leg.Book})
			}
			books[i].Stake += leg.Stake
		}
	}
	if books == nil {
		books = []model.BookExposure{}
	}
	return books
}

// Build computes every projection from one snapshot.
func Build(profile model.UserProfile, ops []model.Operation, loc *time.Location) model.Report {
	return model.Report{
		Summary:  Summarize(profile, ops),
		Daily:    DailyProfits(ops, loc),
		Bankroll: BankrollSeries(profile, ops, loc),
		Books:    BookExposure(ops),
	}
}

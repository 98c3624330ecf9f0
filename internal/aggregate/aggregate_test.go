package aggregate_test

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/ndewijer/surebet-tracker/internal/aggregate"
	"github.com/ndewijer/surebet-tracker/internal/model"
)

var saoPaulo = time.FixedZone("BRT", -3*60*60)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func op(id string, created time.Time, status model.Status, realized *model.Amount, legs ...model.Leg) model.Operation {
	return model.Operation{
		ID:             id,
		CreatedAt:      created,
		Status:         status,
		RealizedProfit: realized,
		Bets:           legs,
	}
}

func leg(book string, stake float64) model.Leg {
	return model.Leg{ID: book + "-leg", Book: book, Odd: 2, Stake: stake, PotentialReturn: stake * 2}
}

func profile(initial float64) model.UserProfile {
	return model.UserProfile{SchemaVersion: 1, Name: "Test", Currency: "BRL", InitialBankroll: model.Amount(initial)}
}

func TestSummarize(t *testing.T) {
	t.Run("bankroll 1000 with results 50, -20 and 30", func(t *testing.T) {
		now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
		ops := []model.Operation{
			op("a", now, model.StatusCompleted, model.AmountPtr(50)),
			op("b", now, model.StatusCancelled, model.AmountPtr(-20)),
			op("c", now, model.StatusOpen, model.AmountPtr(30)),
		}

		s := aggregate.Summarize(profile(1000), ops)

		if !approxEqual(s.TotalRealizedProfit, 60) {
			t.Errorf("Expected total realized profit 60, got %v", s.TotalRealizedProfit)
		}
		if !approxEqual(s.CurrentBankroll, 1060) {
			t.Errorf("Expected current bankroll 1060, got %v", s.CurrentBankroll)
		}
		if !approxEqual(s.Evolution, 0.06) {
			t.Errorf("Expected evolution 0.06, got %v", s.Evolution)
		}
		if s.OperationCount != 3 || s.OpenCount != 1 || s.CompletedCount != 1 || s.CancelledCount != 1 {
			t.Errorf("Unexpected status counts: %+v", s)
		}
	})

	t.Run("missing realized profit counts as zero", func(t *testing.T) {
		ops := []model.Operation{
			op("a", time.Time{}, model.StatusOpen, nil),
			op("b", time.Time{}, model.StatusCompleted, model.AmountPtr(12.5)),
		}
		ops[0].ExpectedProfit = 99

		s := aggregate.Summarize(profile(100), ops)
		if !approxEqual(s.TotalRealizedProfit, 12.5) {
			t.Errorf("Expected 12.5, got %v", s.TotalRealizedProfit)
		}
	})

	t.Run("zero initial bankroll yields zero evolution", func(t *testing.T) {
		ops := []model.Operation{op("a", time.Time{}, model.StatusCompleted, model.AmountPtr(10))}

		s := aggregate.Summarize(profile(0), ops)
		if s.Evolution != 0 {
			t.Errorf("Expected evolution 0, got %v", s.Evolution)
		}
		if !approxEqual(s.CurrentBankroll, 10) {
			t.Errorf("Expected current bankroll 10, got %v", s.CurrentBankroll)
		}
	})

	t.Run("empty list", func(t *testing.T) {
		s := aggregate.Summarize(profile(500), nil)
		if s.CurrentBankroll != 500 || s.TotalRealizedProfit != 0 || s.Evolution != 0 {
			t.Errorf("Unexpected summary for empty list: %+v", s)
		}
	})
}

func TestDailyProfits(t *testing.T) {
	// 02:30 UTC on the 10th is still the 9th in São Paulo.
	late := time.Date(2025, 3, 10, 2, 30, 0, 0, time.UTC)
	evening := time.Date(2025, 3, 9, 20, 0, 0, 0, time.UTC)
	next := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)

	ops := []model.Operation{
		op("a", late, model.StatusCompleted, model.AmountPtr(10)),
		op("b", evening, model.StatusCompleted, model.AmountPtr(5)),
		op("c", next, model.StatusCancelled, model.AmountPtr(-3)),
		op("d", time.Time{}, model.StatusCompleted, model.AmountPtr(1000)),
		op("e", next, model.StatusOpen, nil),
	}

	days := aggregate.DailyProfits(ops, saoPaulo)

	want := []model.DailyProfit{
		{Date: "2025-03-10", Profit: -3},
		{Date: "2025-03-09", Profit: 15},
	}
	if !reflect.DeepEqual(days, want) {
		t.Errorf("DailyProfits() = %+v, want %+v", days, want)
	}
}

// TestDailyProfits_Partition checks that the buckets add up to the realized total.
//
// WHY: every dated operation lands in exactly one bucket, so the buckets must neither
// drop nor double-count profit.
func TestDailyProfits_Partition(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	var ops []model.Operation
	for i := range 40 {
		created := base.Add(time.Duration(i*7) * time.Hour)
		ops = append(ops, op("op", created, model.StatusCompleted, model.AmountPtr(float64(i%7)-2.5)))
	}

	var sum float64
	for _, d := range aggregate.DailyProfits(ops, saoPaulo) {
		sum += d.Profit
	}
	total := aggregate.Summarize(profile(0), ops).TotalRealizedProfit
	if !approxEqual(sum, total) {
		t.Errorf("Daily buckets sum to %v, total realized profit is %v", sum, total)
	}
}

func TestBankrollSeries(t *testing.T) {
	t1 := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
	t2 := time.Date(2025, 4, 2, 12, 0, 0, 0, time.UTC)
	t3 := time.Date(2025, 4, 3, 12, 0, 0, 0, time.UTC)

	withExpected := op("no-result", t2, model.StatusCompleted, nil)
	withExpected.ExpectedProfit = 4

	// Newest first, as stored.
	ops := []model.Operation{
		op("newest", t3, model.StatusCompleted, model.AmountPtr(-10)),
		op("open", t2, model.StatusOpen, model.AmountPtr(999)),
		withExpected,
		op("oldest", t1, model.StatusCompleted, model.AmountPtr(20)),
	}

	series := aggregate.BankrollSeries(profile(1000), ops, saoPaulo)

	if len(series) != 4 {
		t.Fatalf("Expected 4 points, got %d: %+v", len(series), series)
	}
	if series[0].Label != aggregate.InitialLabel || series[0].Value != 1000 {
		t.Errorf("Expected initial point 1000, got %+v", series[0])
	}

	wantValues := []float64{1000, 1020, 1024, 1014}
	for i, want := range wantValues {
		if !approxEqual(series[i].Value, want) {
			t.Errorf("Point %d: expected %v, got %v", i, want, series[i].Value)
		}
	}
	if series[1].Label != "01/04/2025" {
		t.Errorf("Expected label 01/04/2025, got %s", series[1].Label)
	}
}

func TestBookExposure(t *testing.T) {
	ops := []model.Operation{
		op("a", time.Time{}, model.StatusOpen, nil, leg("Bet365", 50), leg("Betano", 48)),
		op("b", time.Time{}, model.StatusCancelled, nil, leg("Pinnacle", 10), leg("Bet365", 25.5)),
	}

	got := aggregate.BookExposure(ops)
	want := []model.BookExposure{
		{Book: "Bet365", Stake: 75.5},
		{Book: "Betano", Stake: 48},
		{Book: "Pinnacle", Stake: 10},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BookExposure() = %+v, want %+v", got, want)
	}

	if empty := aggregate.BookExposure(nil); empty == nil || len(empty) != 0 {
		t.Errorf("Expected empty non-nil slice, got %#v", empty)
	}
}

// TestBuild_Idempotent verifies that projections carry no hidden state.
//
// WHY: reports are recomputed on every request; two computations over the same
// snapshot must agree exactly.
func TestBuild_Idempotent(t *testing.T) {
	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	ops := []model.Operation{
		op("a", base, model.StatusCompleted, model.AmountPtr(12), leg("A", 10), leg("B", 11)),
		op("b", base.Add(26*time.Hour), model.StatusOpen, nil, leg("B", 5), leg("C", 6)),
		op("c", base.Add(50*time.Hour), model.StatusCompleted, nil, leg("A", 1), leg("C", 2)),
	}
	ops[2].ExpectedProfit = 3

	first := aggregate.Build(profile(300), ops, saoPaulo)
	second := aggregate.Build(profile(300), ops, saoPaulo)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Build() is not idempotent:\n%+v\n%+v", first, second)
	}
}

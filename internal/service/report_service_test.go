package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/ndewijer/surebet-tracker/internal/model"
	"github.com/ndewijer/surebet-tracker/internal/testutil"
)

func TestReportService_GetReport(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewMemoryStore()
	svc := testutil.NewTestServices(t, store)

	testutil.NewProfile().WithInitialBankroll(1000).Build(t, store)
	day := time.Date(2025, 5, 10, 15, 0, 0, 0, time.UTC)
	testutil.NewOperation().WithCreatedAt(day).WithStatus(model.StatusCompleted).WithRealizedProfit(50).
		WithLeg("Bet365", 2, 30).WithLeg("Betano", 2.2, 20).Build(t, store)
	testutil.NewOperation().WithCreatedAt(day.Add(24 * time.Hour)).WithStatus(model.StatusCancelled).WithRealizedProfit(-20).
		WithLeg("Bet365", 2, 10).WithLeg("Pinnacle", 2.1, 10).Build(t, store)
	testutil.NewOperation().WithCreatedAt(day.Add(48 * time.Hour)).WithStatus(model.StatusOpen).WithRealizedProfit(30).
		WithLeg("Betano", 2, 5).WithLeg("Pinnacle", 2.1, 5).Build(t, store)

	report, err := svc.Report.GetReport(ctx)
	if err != nil {
		t.Fatalf("GetReport() returned unexpected error: %v", err)
	}

	s := report.Summary
	if s.TotalRealizedProfit != 60 || s.CurrentBankroll != 1060 {
		t.Errorf("Expected total 60 and bankroll 1060, got %v / %v", s.TotalRealizedProfit, s.CurrentBankroll)
	}
	if report.Display.CurrentBankroll != "R$ 1.060,00" {
		t.Errorf("Expected R$ 1.060,00, got %s", report.Display.CurrentBankroll)
	}
	if report.Display.Evolution != "6.00%" {
		t.Errorf("Expected 6.00%%, got %s", report.Display.Evolution)
	}
	if report.Currency != "BRL" {
		t.Errorf("Expected BRL, got %s", report.Currency)
	}

	if len(report.Daily) != 3 || report.Daily[0].Date != "2025-05-12" {
		t.Errorf("Expected 3 daily buckets newest first, got %+v", report.Daily)
	}
	// Only the completed operation moves the bankroll series.
	if len(report.Bankroll) != 2 || report.Bankroll[1].Value != 1050 {
		t.Errorf("Expected bankroll series [1000 1050], got %+v", report.Bankroll)
	}

	books := map[string]float64{}
	for _, b := range report.Books {
		books[b.Book] = b.Stake
	}
	if books["Bet365"] != 40 || books["Betano"] != 25 || books["Pinnacle"] != 15 {
		t.Errorf("Unexpected book exposure: %+v", report.Books)
	}
}

// TestReportService_RecomputesAfterMutation checks that reports follow store edits.
//
// WHY: projections are never cached, so a delete must be visible on the next read.
func TestReportService_RecomputesAfterMutation(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewMemoryStore()
	svc := testutil.NewTestServices(t, store)
	testutil.NewProfile().WithInitialBankroll(200).Build(t, store)
	op := testutil.NewOperation().WithRealizedProfit(25).Build(t, store)

	before, err := svc.Report.GetSummary(ctx)
	if err != nil {
		t.Fatalf("GetSummary() returned unexpected error: %v", err)
	}
	if before.CurrentBankroll != 225 {
		t.Fatalf("Expected 225, got %v", before.CurrentBankroll)
	}

	if err := svc.Operation.DeleteOperation(ctx, op.ID); err != nil {
		t.Fatalf("DeleteOperation() returned unexpected error: %v", err)
	}

	after, err := svc.Report.GetSummary(ctx)
	if err != nil {
		t.Fatalf("GetSummary() returned unexpected error: %v", err)
	}
	if after.CurrentBankroll != 200 || after.OperationCount != 0 {
		t.Errorf("Expected bankroll 200 with no operations, got %+v", after)
	}
}

func TestReportService_Projections(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewMemoryStore()
	svc := testutil.NewTestServices(t, store)

	testutil.NewOperation().WithStatus(model.StatusCompleted).WithExpectedProfit(2.444).WithLeg("A", 2, 1.005).Build(t, store)

	series, err := svc.Report.GetBankrollSeries(ctx)
	if err != nil {
		t.Fatalf("GetBankrollSeries() returned unexpected error: %v", err)
	}
	// No profile saved: the bankroll starts at zero and falls back to the expected profit.
	if len(series) != 2 || series[1].Value != 2.44 {
		t.Errorf("Expected series [0 2.44], got %+v", series)
	}

	days, err := svc.Report.GetDailyProfits(ctx)
	if err != nil {
		t.Fatalf("GetDailyProfits() returned unexpected error: %v", err)
	}
	if len(days) != 1 || days[0].Profit != 0 {
		t.Errorf("Expected one zero bucket, got %+v", days)
	}

	books, err := svc.Report.GetBookExposure(ctx)
	if err != nil {
		t.Fatalf("GetBookExposure() returned unexpected error: %v", err)
	}
	if len(books) != 1 || books[0].Book != "A" {
		t.Errorf("Expected a single book A, got %+v", books)
	}
}

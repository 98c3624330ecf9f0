package service

import (
	"context"
	"time"

	"github.com/ndewijer/surebet-tracker/internal/aggregate"
	"github.com/ndewijer/surebet-tracker/internal/format"
	"github.com/ndewijer/surebet-tracker/internal/model"
)

// ReportService recomputes the bankroll projections from the stored documents.
// Nothing is cached: every call reads a fresh snapshot, so edits are reflected
// immediately.
type ReportService struct {
	store    Store
	profiles *ProfileService
	loc      *time.Location
}

// NewReportService creates a new ReportService. loc defines the calendar days of the
// daily buckets.
func NewReportService(store Store, profiles *ProfileService, loc *time.Location) *ReportService {
	return &ReportService{
		store:    store,
		profiles: profiles,
		loc:      loc,
	}
}

// GetReport computes every projection and renders the summary for display.
func (s *ReportService) GetReport(ctx context.Context) (model.ReportResponse, error) {
	profile, ops, err := s.snapshot(ctx)
	if err != nil {
		return model.ReportResponse{}, err
	}

	report := aggregate.Build(profile, ops, s.loc)
	roundReport(&report)

	return model.ReportResponse{
		Report:   report,
		Currency: profile.Currency,
		Display:  displaySummary(report.Summary, profile.Currency),
	}, nil
}

// GetSummary returns the bankroll KPIs.
func (s *ReportService) GetSummary(ctx context.Context) (model.Summary, error) {
	profile, ops, err := s.snapshot(ctx)
	if err != nil {
		return model.Summary{}, err
	}
	summary := aggregate.Summarize(profile, ops)
	roundSummary(&summary)
	return summary, nil
}

// GetDailyProfits returns realized profit per calendar day, newest first.
func (s *ReportService) GetDailyProfits(ctx context.Context) ([]model.DailyProfit, error) {
	_, ops, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	days := aggregate.DailyProfits(ops, s.loc)
	for i := range days {
		days[i].Profit = round(days[i].Profit)
	}
	return days, nil
}

// GetBankrollSeries returns the bankroll evolution over completed operations.
func (s *ReportService) GetBankrollSeries(ctx context.Context) ([]model.BankrollPoint, error) {
	profile, ops, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	series := aggregate.BankrollSeries(profile, ops, s.loc)
	for i := range series {
		series[i].Value = round(series[i].Value)
	}
	return series, nil
}

// GetBookExposure returns the total stake per outlet.
func (s *ReportService) GetBookExposure(ctx context.Context) ([]model.BookExposure, error) {
	_, ops, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	books := aggregate.BookExposure(ops)
	for i := range books {
		books[i].Stake = round(books[i].Stake)
	}
	return books, nil
}

func (s *ReportService) snapshot(ctx context.Context) (model.UserProfile, []model.Operation, error) {
	profile, err := s.profiles.GetProfile(ctx)
	if err != nil {
		return model.UserProfile{}, nil, err
	}
	ops, err := s.store.LoadOperations(ctx)
	if err != nil {
		return model.UserProfile{}, nil, err
	}
	return profile, ops, nil
}

func roundReport(r *model.Report) {
	roundSummary(&r.Summary)
	for i := range r.Daily {
		r.Daily[i].Profit = round(r.Daily[i].Profit)
	}
	for i := range r.Bankroll {
		r.Bankroll[i].Value = round(r.Bankroll[i].Value)
	}
	for i := range r.Books {
		r.Books[i].Stake = round(r.Books[i].Stake)
	}
}

// roundSummary rounds amounts to cents. Evolution is a ratio and is left unrounded.
func roundSummary(s *model.Summary) {
	s.InitialBankroll = round(s.InitialBankroll)
	s.TotalRealizedProfit = round(s.TotalRealizedProfit)
	s.CurrentBankroll = round(s.CurrentBankroll)
}

func displaySummary(s model.Summary, currency string) model.SummaryDisplay {
	return model.SummaryDisplay{
		InitialBankroll:     format.Money(s.InitialBankroll, currency),
		TotalRealizedProfit: format.Money(s.TotalRealizedProfit, currency),
		CurrentBankroll:     format.Money(s.CurrentBankroll, currency),
		Evolution:           format.Percent(s.Evolution),
	}
}

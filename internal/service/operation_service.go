package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ndewijer/surebet-tracker/internal/api/request"
	"github.com/ndewijer/surebet-tracker/internal/apperrors"
	"github.com/ndewijer/surebet-tracker/internal/arbitrage"
	"github.com/ndewijer/surebet-tracker/internal/format"
	"github.com/ndewijer/surebet-tracker/internal/model"
)

// Defaults applied to blank fields of new operations.
const (
	DefaultMarket = "1x2"
)

var (
	splitBookDefaults = [arbitrage.Legs]string{"Casa A", "Casa B"}
	quickBookDefaults = [arbitrage.Legs]string{"Casa 1", "Casa 2"}
)

// OperationService handles creating, listing and editing operations.
type OperationService struct {
	store    Store
	profiles *ProfileService
	loc      *time.Location
}

// NewOperationService creates a new OperationService. loc is used for display dates.
func NewOperationService(store Store, profiles *ProfileService, loc *time.Location) *OperationService {
	return &OperationService{
		store:    store,
		profiles: profiles,
		loc:      loc,
	}
}

// ListOperations returns the operations matching filter, newest first, with display
// strings rendered in the profile's currency.
func (s *OperationService) ListOperations(ctx context.Context, filter model.OperationFilter) ([]model.OperationResponse, error) {
	profile, err := s.profiles.GetProfile(ctx)
	if err != nil {
		return nil, err
	}
	ops, err := s.store.LoadOperations(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]model.OperationResponse, 0, len(ops))
	for _, op := range ops {
		if filter.Matches(op) {
			responses = append(responses, s.toResponse(op, profile.Currency))
		}
	}
	return responses, nil
}

// GetOperation retrieves a single operation by ID.
// Returns apperrors.ErrOperationNotFound if no operation matches.
func (s *OperationService) GetOperation(ctx context.Context, id string) (model.OperationResponse, error) {
	op, found, err := s.store.GetOperation(ctx, id)
	if err != nil {
		return model.OperationResponse{}, err
	}
	if !found {
		return model.OperationResponse{}, apperrors.ErrOperationNotFound
	}

	profile, err := s.profiles.GetProfile(ctx)
	if err != nil {
		return model.OperationResponse{}, err
	}
	return s.toResponse(op, profile.Currency), nil
}

// CreateFromSplit saves an open operation from a fixed-total split. Leg stakes are
// rounded to cents; the total stake is the requested total.
func (s *OperationService) CreateFromSplit(ctx context.Context, req request.SaveSplitRequest) (*model.Operation, error) {
	odds := [arbitrage.Legs]float64{req.Odd1.Float64(), req.Odd2.Float64()}
	res, err := arbitrage.Split(odds[0], odds[1], req.TotalStake.Float64())
	if err != nil {
		return nil, err
	}

	books := [arbitrage.Legs]string{req.Book1, req.Book2}
	op := s.newOperation(req.EventName, defaultString(req.Market, DefaultMarket))
	for i := range arbitrage.Legs {
		op.Bets = append(op.Bets, newLeg(defaultString(books[i], splitBookDefaults[i]), odds[i], res.Stakes[i]))
	}
	op.TotalStake = round(res.TotalStake)
	op.Surebet = res.HasArbitrage
	op.ExpectedProfit = round(res.MinProfit)
	op.Status = model.StatusOpen

	if err := s.store.AppendOperation(ctx, op); err != nil {
		return nil, fmt.Errorf("failed to save operation: %w", err)
	}
	return &op, nil
}

// CreateQuickEntry saves an operation from two fixed stakes. Without a winner it is
// saved open with a zero result; with a 1-based winner it is saved completed with the
// realized profit of that outcome.
func (s *OperationService) CreateQuickEntry(ctx context.Context, req request.QuickEntryRequest) (*model.Operation, error) {
	odds := [arbitrage.Legs]float64{req.Odd1.Float64(), req.Odd2.Float64()}
	stakes := [arbitrage.Legs]float64{req.Stake1.Float64(), req.Stake2.Float64()}
	res, err := arbitrage.Evaluate(odds[0], stakes[0], odds[1], stakes[1])
	if err != nil {
		return nil, err
	}

	books := [arbitrage.Legs]string{req.Book1, req.Book2}
	op := s.newOperation(req.EventName, defaultString(req.Market, DefaultMarket))
	for i := range arbitrage.Legs {
		op.Bets = append(op.Bets, newLeg(defaultString(books[i], quickBookDefaults[i]), odds[i], stakes[i]))
	}
	op.TotalStake = round(res.TotalStake)
	op.Surebet = res.HasArbitrage
	op.ExpectedProfit = round(res.MinProfit)
	op.Status = model.StatusOpen
	op.RealizedProfit = model.AmountPtr(0)

	if req.Winner != nil {
		profit, err := res.Conclude(*req.Winner - 1)
		if err != nil {
			return nil, err
		}
		op.Status = model.StatusCompleted
		op.RealizedProfit = model.AmountPtr(round(profit))
	}

	if err := s.store.AppendOperation(ctx, op); err != nil {
		return nil, fmt.Errorf("failed to save operation: %w", err)
	}
	return &op, nil
}

// UpdateOperation merges the provided fields into an operation.
//
// Completed and cancelled are terminal: changing the status of such an operation
// returns apperrors.ErrInvalidStatusTransition, while re-sending its current status is
// accepted. The realized profit can be edited in any status.
//
// Returns false without error if no operation matches id.
func (s *OperationService) UpdateOperation(ctx context.Context, id string, req request.UpdateOperationRequest) (*model.Operation, bool, error) {
	op, found, err := s.store.GetOperation(ctx, id)
	if err != nil {
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}

	patch := model.OperationPatch{
		EventName: trimmedPtr(req.EventName),
		Market:    trimmedPtr(req.Market),
	}
	if req.RealizedProfit != nil {
		patch.RealizedProfit = model.AmountPtr(round(req.RealizedProfit.Float64()))
	}
	if req.Status != nil {
		next := model.Status(*req.Status)
		if op.Status.IsTerminal() && next != op.Status {
			return nil, true, fmt.Errorf("%w: operation is %s", apperrors.ErrInvalidStatusTransition, op.Status)
		}
		if next != op.Status {
			patch.Status = &next
		}
	}

	if patch.IsEmpty() {
		return &op, true, nil
	}

	found, err = s.store.PatchOperation(ctx, id, patch)
	if err != nil {
		return nil, false, fmt.Errorf("failed to update operation: %w", err)
	}
	if !found {
		return nil, false, nil
	}

	patch.Apply(&op)
	return &op, true, nil
}

// DeleteOperation removes an operation. Deleting an unknown ID is a no-op.
func (s *OperationService) DeleteOperation(ctx context.Context, id string) error {
	return s.store.DeleteOperation(ctx, id)
}

func (s *OperationService) newOperation(eventName, market string) model.Operation {
	return model.Operation{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC(),
		EventName: strings.TrimSpace(eventName),
		Market:    market,
		Bets:      make([]model.Leg, 0, arbitrage.Legs),
	}
}

func (s *OperationService) toResponse(op model.Operation, currency string) model.OperationResponse {
	var created string
	if !op.CreatedAt.IsZero() {
		created = format.DateTime(op.CreatedAt.Format(time.RFC3339), s.loc)
	}
	return model.OperationResponse{
		Operation:             op,
		CreatedAtDisplay:      created,
		TotalStakeDisplay:     format.Money(op.TotalStake, currency),
		RealizedProfitDisplay: format.Money(op.Realized(), currency),
	}
}

func newLeg(book string, odd, stake float64) model.Leg {
	stake = round(stake)
	return model.Leg{
		ID:              uuid.New().String(),
		Book:            book,
		Odd:             odd,
		Stake:           stake,
		PotentialReturn: round(stake * odd),
	}
}

func defaultString(value, def string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return def
}

func trimmedPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/ndewijer/surebet-tracker/internal/model"
	"github.com/ndewijer/surebet-tracker/internal/service"
)

// OperationBuilder provides a fluent interface for creating test operations.
//
// Example usage:
//
//	// Simple creation with defaults: an open 2.00/2.10 operation
//	op := testutil.NewOperation().Build(t, store)
//
//	// Customized operation
//	op := testutil.NewOperation().
//	    WithEventName("Final").
//	    WithStatus(model.StatusCompleted).
//	    WithRealizedProfit(12.5).
//	    Build(t, store)
type OperationBuilder struct {
	op        model.Operation
	customLeg bool
}

// NewOperation creates an OperationBuilder with sensible defaults.
func NewOperation() *OperationBuilder {
	return &OperationBuilder{
		op: model.Operation{
			ID:        MakeID(),
			CreatedAt: time.Now().UTC().Truncate(time.Second),
			EventName: "Test Event",
			Market:    "1x2",
			Status:    model.StatusOpen,
			Bets: []model.Leg{
				{ID: MakeID(), Book: "Casa A", Odd: 2.00, Stake: 51.22, PotentialReturn: 102.44},
				{ID: MakeID(), Book: "Casa B", Odd: 2.10, Stake: 48.78, PotentialReturn: 102.44},
			},
			TotalStake:     100,
			Surebet:        true,
			ExpectedProfit: 2.44,
		},
	}
}

// WithID sets a custom ID.
func (b *OperationBuilder) WithID(id string) *OperationBuilder {
	b.op.ID = id
	return b
}

// WithEventName sets a custom event name.
func (b *OperationBuilder) WithEventName(name string) *OperationBuilder {
	b.op.EventName = name
	return b
}

// WithCreatedAt sets the creation time. The zero time builds an undated operation.
func (b *OperationBuilder) WithCreatedAt(t time.Time) *OperationBuilder {
	b.op.CreatedAt = t
	return b
}

// WithStatus sets the status.
func (b *OperationBuilder) WithStatus(status model.Status) *OperationBuilder {
	b.op.Status = status
	return b
}

// WithRealizedProfit records a result.
func (b *OperationBuilder) WithRealizedProfit(profit float64) *OperationBuilder {
	b.op.RealizedProfit = model.AmountPtr(profit)
	return b
}

// WithExpectedProfit sets the expected profit snapshot.
func (b *OperationBuilder) WithExpectedProfit(profit float64) *OperationBuilder {
	b.op.ExpectedProfit = profit
	return b
}

// WithLeg adds a leg. The first call replaces the default legs; the total stake is
// recomputed from the added legs.
func (b *OperationBuilder) WithLeg(book string, odd, stake float64) *OperationBuilder {
	if !b.customLeg {
		b.op.Bets = nil
		b.op.TotalStake = 0
		b.customLeg = true
	}
	b.op.Bets = append(b.op.Bets, model.Leg{
		ID:              MakeID(),
		Book:            book,
		Odd:             odd,
		Stake:           stake,
		PotentialReturn: stake * odd,
	})
	b.op.TotalStake += stake
	return b
}

// Value returns the operation without storing it.
func (b *OperationBuilder) Value() model.Operation {
	return b.op
}

// Build appends the operation to the store and returns it.
func (b *OperationBuilder) Build(t *testing.T, store service.Store) model.Operation {
	t.Helper()

	if err := store.AppendOperation(context.Background(), b.op); err != nil {
		t.Fatalf("Failed to create test operation: %v", err)
	}
	return b.op
}

// ProfileBuilder provides a fluent interface for creating the test profile.
//
// Example usage:
//
//	profile := testutil.NewProfile().WithInitialBankroll(1000).Build(t, store)
type ProfileBuilder struct {
	profile model.UserProfile
}

// NewProfile creates a ProfileBuilder with sensible defaults.
func NewProfile() *ProfileBuilder {
	return &ProfileBuilder{
		profile: model.UserProfile{
			SchemaVersion:   model.ProfileSchemaVersion,
			Name:            "Test User",
			Currency:        "BRL",
			InitialBankroll: 1000,
		},
	}
}

// WithName sets a custom name.
func (b *ProfileBuilder) WithName(name string) *ProfileBuilder {
	b.profile.Name = name
	return b
}

// WithCurrency sets a custom currency code.
func (b *ProfileBuilder) WithCurrency(currency string) *ProfileBuilder {
	b.profile.Currency = currency
	return b
}

// WithInitialBankroll sets the initial bankroll.
func (b *ProfileBuilder) WithInitialBankroll(amount float64) *ProfileBuilder {
	b.profile.InitialBankroll = model.Amount(amount)
	return b
}

// Build saves the profile in the store and returns it.
func (b *ProfileBuilder) Build(t *testing.T, store service.Store) model.UserProfile {
	t.Helper()

	if err := store.SaveProfile(context.Background(), b.profile); err != nil {
		t.Fatalf("Failed to create test profile: %v", err)
	}
	return b.profile
}

// Convenience functions

// CreateOperations appends count default operations and returns them newest first,
// matching the store's order.
//
// Example usage:
//
//	ops := testutil.CreateOperations(t, store, 5)
func CreateOperations(t *testing.T, store service.Store, count int) []model.Operation {
	t.Helper()

	ops := make([]model.Operation, count)
	for i := range count {
		ops[count-1-i] = NewOperation().Build(t, store)
	}
	return ops
}

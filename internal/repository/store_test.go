package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ndewijer/surebet-tracker/internal/apperrors"
	"github.com/ndewijer/surebet-tracker/internal/model"
	"github.com/ndewijer/surebet-tracker/internal/repository"
	"github.com/ndewijer/surebet-tracker/internal/testutil"
)

func TestStore_Profile(t *testing.T) {
	ctx := context.Background()

	t.Run("returns zero profile before first save", func(t *testing.T) {
		store := testutil.NewTestStore(t)

		p, err := store.LoadProfile(ctx)
		if err != nil {
			t.Fatalf("LoadProfile() returned unexpected error: %v", err)
		}
		if p != (model.UserProfile{}) {
			t.Errorf("Expected zero profile, got %+v", p)
		}
	})

	t.Run("save replaces the single profile row", func(t *testing.T) {
		store := testutil.NewTestStore(t)
		testutil.NewProfile().WithInitialBankroll(500).Build(t, store)
		want := testutil.NewProfile().WithName("Second").WithCurrency("USD").WithInitialBankroll(1234.56).Build(t, store)

		got, err := store.LoadProfile(ctx)
		if err != nil {
			t.Fatalf("LoadProfile() returned unexpected error: %v", err)
		}
		if got != want {
			t.Errorf("Expected %+v, got %+v", want, got)
		}
	})
}

func TestStore_AppendAndLoad(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewTestStore(t)

	first := testutil.NewOperation().WithEventName("first").Build(t, store)
	second := testutil.NewOperation().
		WithEventName("second").
		WithLeg("Bet365", 3.1, 50).
		WithLeg("Betano", 1.59, 100).
		WithStatus(model.StatusCompleted).
		WithRealizedProfit(5).
		Build(t, store)

	ops, err := store.LoadOperations(ctx)
	if err != nil {
		t.Fatalf("LoadOperations() returned unexpected error: %v", err)
	}
	if len(ops) != 2 {
		t.Fatalf("Expected 2 operations, got %d", len(ops))
	}

	// Newest first
	if ops[0].ID != second.ID || ops[1].ID != first.ID {
		t.Errorf("Expected newest-first order [%s %s], got [%s %s]", second.ID, first.ID, ops[0].ID, ops[1].ID)
	}

	got := ops[0]
	if len(got.Bets) != 2 || got.Bets[0].Book != "Bet365" || got.Bets[1].Book != "Betano" {
		t.Errorf("Expected legs in insertion order, got %+v", got.Bets)
	}
	if got.RealizedProfit == nil || *got.RealizedProfit != 5 {
		t.Errorf("Expected realized profit 5, got %v", got.RealizedProfit)
	}
	if !got.CreatedAt.Equal(second.CreatedAt) {
		t.Errorf("Expected created at %v, got %v", second.CreatedAt, got.CreatedAt)
	}
	if got.TotalStake != 150 || got.Status != model.StatusCompleted {
		t.Errorf("Unexpected operation fields: %+v", got)
	}

	if ops[1].RealizedProfit != nil {
		t.Errorf("Expected absent realized profit to stay absent, got %v", *ops[1].RealizedProfit)
	}
}

// TestStore_LegIDUnique tests that a leg id cannot be stored under two operations.
//
// WHY: leg ids are unique across the whole store, not only within their operation.
func TestStore_LegIDUnique(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewTestStore(t)

	first := testutil.NewOperation().Build(t, store)
	second := testutil.NewOperation().Value()
	second.Bets[0].ID = first.Bets[0].ID

	if err := store.AppendOperation(ctx, second); !errors.Is(err, apperrors.ErrDuplicateEntry) {
		t.Fatalf("Expected ErrDuplicateEntry for a reused leg id, got %v", err)
	}

	ops, _ := store.LoadOperations(ctx)
	if len(ops) != 1 || ops[0].ID != first.ID {
		t.Errorf("Expected only the first operation stored, got %+v", ops)
	}
}

func TestStore_UndatedOperation(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewTestStore(t)

	op := testutil.NewOperation().WithCreatedAt(time.Time{}).Build(t, store)

	got, found, err := store.GetOperation(ctx, op.ID)
	if err != nil || !found {
		t.Fatalf("GetOperation() = found %v, err %v", found, err)
	}
	if !got.CreatedAt.IsZero() {
		t.Errorf("Expected zero created at, got %v", got.CreatedAt)
	}
}

func TestStore_GetOperation(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewTestStore(t)
	op := testutil.NewOperation().Build(t, store)

	got, found, err := store.GetOperation(ctx, op.ID)
	if err != nil {
		t.Fatalf("GetOperation() returned unexpected error: %v", err)
	}
	if !found || got.ID != op.ID || len(got.Bets) != 2 {
		t.Errorf("Expected operation %s with 2 legs, got found=%v %+v", op.ID, found, got)
	}

	_, found, err = store.GetOperation(ctx, "missing")
	if err != nil {
		t.Fatalf("GetOperation() returned unexpected error: %v", err)
	}
	if found {
		t.Error("Expected unknown ID not to be found")
	}
}

func TestStore_PatchOperation(t *testing.T) {
	ctx := context.Background()

	t.Run("merges only provided fields", func(t *testing.T) {
		store := testutil.NewTestStore(t)
		op := testutil.NewOperation().WithEventName("before").Build(t, store)

		status := model.StatusCompleted
		found, err := store.PatchOperation(ctx, op.ID, model.OperationPatch{
			Status:         &status,
			RealizedProfit: model.AmountPtr(-3.5),
		})
		if err != nil || !found {
			t.Fatalf("PatchOperation() = found %v, err %v", found, err)
		}

		got, _, _ := store.GetOperation(ctx, op.ID)
		if got.Status != model.StatusCompleted {
			t.Errorf("Expected completed, got %s", got.Status)
		}
		if got.RealizedProfit == nil || *got.RealizedProfit != -3.5 {
			t.Errorf("Expected realized profit -3.5, got %v", got.RealizedProfit)
		}
		if got.EventName != "before" || got.Market != op.Market {
			t.Errorf("Expected untouched text fields, got %q / %q", got.EventName, got.Market)
		}
		if got.TotalStake != op.TotalStake {
			t.Errorf("Expected total stake snapshot %v, got %v", op.TotalStake, got.TotalStake)
		}
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		store := testutil.NewTestStore(t)
		op := testutil.NewOperation().Build(t, store)

		name := "changed"
		found, err := store.PatchOperation(ctx, "missing", model.OperationPatch{EventName: &name})
		if err != nil {
			t.Fatalf("PatchOperation() returned unexpected error: %v", err)
		}
		if found {
			t.Error("Expected found=false for unknown ID")
		}

		got, _, _ := store.GetOperation(ctx, op.ID)
		if got.EventName != op.EventName {
			t.Errorf("Expected other operations untouched, got %q", got.EventName)
		}
	})
}

func TestStore_DeleteOperation(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewTestStore(t)
	ops := testutil.CreateOperations(t, store, 3)

	if err := store.DeleteOperation(ctx, ops[1].ID); err != nil {
		t.Fatalf("DeleteOperation() returned unexpected error: %v", err)
	}
	if err := store.DeleteOperation(ctx, "missing"); err != nil {
		t.Fatalf("DeleteOperation() of unknown ID returned error: %v", err)
	}

	remaining, err := store.LoadOperations(ctx)
	if err != nil {
		t.Fatalf("LoadOperations() returned unexpected error: %v", err)
	}
	if len(remaining) != 2 || remaining[0].ID != ops[0].ID || remaining[1].ID != ops[2].ID {
		t.Errorf("Unexpected operations after delete: %+v", remaining)
	}
}

func TestStore_ReplaceAll(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces both documents and keeps list order", func(t *testing.T) {
		store := testutil.NewTestStore(t)
		testutil.CreateOperations(t, store, 2)
		testutil.NewProfile().Build(t, store)

		newProfile := model.UserProfile{SchemaVersion: 1, Name: "Imported", Currency: "EUR", InitialBankroll: 42}
		newOps := []model.Operation{
			testutil.NewOperation().WithID("newest").Value(),
			testutil.NewOperation().WithID("middle").Value(),
			testutil.NewOperation().WithID("oldest").Value(),
		}

		if err := store.ReplaceAll(ctx, &newProfile, &newOps); err != nil {
			t.Fatalf("ReplaceAll() returned unexpected error: %v", err)
		}

		p, _ := store.LoadProfile(ctx)
		if p != newProfile {
			t.Errorf("Expected %+v, got %+v", newProfile, p)
		}

		ops, _ := store.LoadOperations(ctx)
		if len(ops) != 3 || ops[0].ID != "newest" || ops[2].ID != "oldest" {
			t.Fatalf("Unexpected operations after replace: %+v", ops)
		}

		// Appends still go to the front.
		appended := testutil.NewOperation().Build(t, store)
		ops, _ = store.LoadOperations(ctx)
		if ops[0].ID != appended.ID {
			t.Errorf("Expected appended operation first, got %s", ops[0].ID)
		}
	})

	t.Run("nil documents are left untouched", func(t *testing.T) {
		store := testutil.NewTestStore(t)
		existing := testutil.CreateOperations(t, store, 2)
		profile := testutil.NewProfile().WithInitialBankroll(10).Build(t, store)

		if err := store.ReplaceAll(ctx, nil, nil); err != nil {
			t.Fatalf("ReplaceAll() returned unexpected error: %v", err)
		}

		p, _ := store.LoadProfile(ctx)
		ops, _ := store.LoadOperations(ctx)
		if p != profile || len(ops) != len(existing) {
			t.Errorf("Expected documents untouched, got %+v and %d operations", p, len(ops))
		}
	})

	// WHY: an import that fails halfway must leave the previous state intact.
	t.Run("failure rolls back every change", func(t *testing.T) {
		store := testutil.NewTestStore(t)
		existing := testutil.CreateOperations(t, store, 2)
		profile := testutil.NewProfile().Build(t, store)

		newProfile := model.UserProfile{SchemaVersion: 1, Name: "Imported", Currency: "EUR"}
		dup := testutil.NewOperation().WithID("dup").Value()
		newOps := []model.Operation{dup, dup}

		if err := store.ReplaceAll(ctx, &newProfile, &newOps); !errors.Is(err, apperrors.ErrDuplicateEntry) {
			t.Fatalf("Expected ErrDuplicateEntry for duplicate operation IDs, got %v", err)
		}

		p, _ := store.LoadProfile(ctx)
		ops, _ := store.LoadOperations(ctx)
		if p != profile {
			t.Errorf("Expected profile rolled back to %+v, got %+v", profile, p)
		}
		if len(ops) != len(existing) || ops[0].ID != existing[0].ID {
			t.Errorf("Expected operations rolled back, got %+v", ops)
		}
	})
}

func TestStore_WithTx(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	store := repository.NewStore(db)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("BeginTx() returned unexpected error: %v", err)
	}

	txStore := store.WithTx(tx)
	op := testutil.NewOperation().Build(t, txStore)
	if _, found, _ := txStore.GetOperation(ctx, op.ID); !found {
		t.Error("Expected operation visible inside the transaction")
	}

	if err := tx.Rollback(); err != nil {
		t.Fatalf("Rollback() returned unexpected error: %v", err)
	}

	_, found, err := store.GetOperation(ctx, op.ID)
	if err != nil {
		t.Fatalf("GetOperation() returned unexpected error: %v", err)
	}
	if found {
		t.Error("Expected rolled back operation to be gone")
	}
}

func TestParseTime(t *testing.T) {
	got, err := repository.ParseTime("2025-03-10T02:30:00.123-03:00")
	if err != nil {
		t.Fatalf("ParseTime() returned unexpected error: %v", err)
	}
	want := time.Date(2025, 3, 10, 5, 30, 0, 123000000, time.UTC)
	if !got.Equal(want) || got.Location() != time.UTC {
		t.Errorf("Expected %v in UTC, got %v", want, got)
	}

	if _, err := repository.ParseTime("2025-03-10"); err != nil {
		t.Errorf("Expected date-only input to parse, got %v", err)
	}
	if _, err := repository.ParseTime("nope"); err == nil || errors.Unwrap(err) == nil {
		t.Errorf("Expected wrapped parse error, got %v", err)
	}
}

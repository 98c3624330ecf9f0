package service

import (
	"context"

	"github.com/ndewijer/surebet-tracker/internal/model"
)

// Store persists the user profile and the operation list as two independent documents.
// repository.Store is the SQLite implementation; tests may use an in-memory fake.
type Store interface {
	LoadProfile(ctx context.Context) (model.UserProfile, error)
	SaveProfile(ctx context.Context, profile model.UserProfile) error

	// LoadOperations returns every operation, newest first.
	LoadOperations(ctx context.Context) ([]model.Operation, error)
	// GetOperation reports false when no operation has the given ID.
	GetOperation(ctx context.Context, id string) (model.Operation, bool, error)
	// AppendOperation stores op ahead of every existing operation.
	AppendOperation(ctx context.Context, op model.Operation) error
	// PatchOperation merges patch into the matching operation and reports whether one matched.
	PatchOperation(ctx context.Context, id string, patch model.OperationPatch) (bool, error)
	// DeleteOperation removes the matching operation; an unknown ID is a no-op.
	DeleteOperation(ctx context.Context, id string) error

	// ReplaceAll atomically replaces the profile and/or the operation list. A nil
	// argument leaves that document untouched.
	ReplaceAll(ctx context.Context, profile *model.UserProfile, ops *[]model.Operation) error
}

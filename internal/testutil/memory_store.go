package testutil

import (
	"context"
	"slices"
	"sync"

	"github.com/ndewijer/surebet-tracker/internal/model"
)

// MemoryStore is an in-memory service.Store for tests.
//
// Documents are deep-copied on the way in and out so callers cannot mutate stored state.
// Set FailWith to make every method return that error.
type MemoryStore struct {
	mu         sync.Mutex
	profile    model.UserProfile
	operations []model.Operation

	FailWith error
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{operations: []model.Operation{}}
}

func (m *MemoryStore) LoadProfile(_ context.Context) (model.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return model.UserProfile{}, m.FailWith
	}
	return m.profile, nil
}

func (m *MemoryStore) SaveProfile(_ context.Context, profile model.UserProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return m.FailWith
	}
	m.profile = profile
	return nil
}

func (m *MemoryStore) LoadOperations(_ context.Context) ([]model.Operation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	ops := make([]model.Operation, len(m.operations))
	for i, op := range m.operations {
		ops[i] = copyOperation(op)
	}
	return ops, nil
}

func (m *MemoryStore) GetOperation(_ context.Context, id string) (model.Operation, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return model.Operation{}, false, m.FailWith
	}
	i := m.index(id)
	if i < 0 {
		return model.Operation{}, false, nil
	}
	return copyOperation(m.operations[i]), true, nil
}

func (m *MemoryStore) AppendOperation(_ context.Context, op model.Operation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return m.FailWith
	}
	m.operations = slices.Insert(m.operations, 0, copyOperation(op))
	return nil
}

func (m *MemoryStore) PatchOperation(_ context.Context, id string, patch model.OperationPatch) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return false, m.FailWith
	}
	i := m.index(id)
	if i < 0 {
		return false, nil
	}
	patch.Apply(&m.operations[i])
	return true, nil
}

func (m *MemoryStore) DeleteOperation(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return m.FailWith
	}
	m.operations = slices.DeleteFunc(m.operations, func(op model.Operation) bool {
		return op.ID == id
	})
	return nil
}

func (m *MemoryStore) ReplaceAll(_ context.Context, profile *model.UserProfile, ops *[]model.Operation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return m.FailWith
	}
	if profile != nil {
		m.profile = *profile
	}
	if ops != nil {
		m.operations = make([]model.Operation, len(*ops))
		for i, op := range *ops {
			m.operations[i] = copyOperation(op)
		}
	}
	return nil
}

func (m *MemoryStore) index(id string) int {
	return slices.IndexFunc(m.operations, func(op model.Operation) bool {
		return op.ID == id
	})
}

func copyOperation(op model.Operation) model.Operation {
	op.Bets = slices.Clone(op.Bets)
	if op.Bets == nil {
		op.Bets = []model.Leg{}
	}
	if op.RealizedProfit != nil {
		v := *op.RealizedProfit
		op.RealizedProfit = &v
	}
	return op
}

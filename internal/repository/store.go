// Package repository implements the SQLite-backed store for the user profile and the
// operation list.
package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// Store provides data access for the user_profile, operation and leg tables.
// The profile and the operation list are independent documents; ReplaceAll is the only
// method that writes both, and it does so in one transaction.
type Store struct {
	db *sql.DB
	tx *sql.Tx
}

// NewStore creates a new Store with the provided database connection.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// WithTx returns a new Store scoped to the provided transaction.
func (s *Store) WithTx(tx *sql.Tx) *Store {
	return &Store{
		db: s.db,
		tx: tx,
	}
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *Store) getQuerier() querier {
	if s.tx != nil {
		return s.tx
	}
	return s.db
}

// inTx runs fn inside the current transaction, or a new one that is committed when fn
// succeeds and rolled back otherwise.
func (s *Store) inTx(ctx context.Context, fn func(q querier) error) error {
	if s.tx != nil {
		return fn(s.tx)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

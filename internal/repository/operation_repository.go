package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/ndewijer/surebet-tracker/internal/apperrors"
	"github.com/ndewijer/surebet-tracker/internal/model"
)

// LoadOperations retrieves every operation with its legs, newest first.
// Returns an empty slice if no operations are stored.
func (s *Store) LoadOperations(ctx context.Context) ([]model.Operation, error) {
	q := s.getQuerier()

	ops, err := queryOperations(ctx, q, "")
	if err != nil {
		return nil, err
	}
	legs, err := queryLegs(ctx, q, "")
	if err != nil {
		return nil, err
	}

	for i := range ops {
		ops[i].Bets = legs[ops[i].ID]
		if ops[i].Bets == nil {
			ops[i].Bets = []model.Leg{}
		}
	}
	return ops, nil
}

// GetOperation retrieves one operation by ID.
// Returns false if no operation matches.
func (s *Store) GetOperation(ctx context.Context, id string) (model.Operation, bool, error) {
	q := s.getQuerier()

	ops, err := queryOperations(ctx, q, id)
	if err != nil {
		return model.Operation{}, false, err
	}
	if len(ops) == 0 {
		return model.Operation{}, false, nil
	}

	legs, err := queryLegs(ctx, q, id)
	if err != nil {
		return model.Operation{}, false, err
	}
	op := ops[0]
	op.Bets = legs[id]
	if op.Bets == nil {
		op.Bets = []model.Leg{}
	}
	return op, true, nil
}

// AppendOperation stores op ahead of every existing operation.
func (s *Store) AppendOperation(ctx context.Context, op model.Operation) error {
	return s.inTx(ctx, func(q querier) error {
		var seq int64
		err := q.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) + 1 FROM operation`).Scan(&seq)
		if err != nil {
			return fmt.Errorf("failed to get next operation sequence: %w", err)
		}
		return insertOperation(ctx, q, op, seq)
	})
}

// PatchOperation merges patch into the operation with the given ID.
// Returns false without error if no operation matches.
func (s *Store) PatchOperation(ctx context.Context, id string, patch model.OperationPatch) (bool, error) {
	query := `
		UPDATE operation SET
			event_name = COALESCE(?, event_name),
			market = COALESCE(?, market),
			status = COALESCE(?, status),
			realized_profit = COALESCE(?, realized_profit)
		WHERE id = ?
	`

	var status sql.NullString
	if patch.Status != nil {
		status = sql.NullString{String: string(*patch.Status), Valid: true}
	}

	result, err := s.getQuerier().ExecContext(ctx, query,
		nullString(patch.EventName),
		nullString(patch.Market),
		status,
		nullAmount(patch.RealizedProfit),
		id,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update operation: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected > 0, nil
}

// DeleteOperation removes the operation with the given ID and its legs.
// Deleting an unknown ID is a no-op.
func (s *Store) DeleteOperation(ctx context.Context, id string) error {
	_, err := s.getQuerier().ExecContext(ctx, `DELETE FROM operation WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete operation: %w", err)
	}
	return nil
}

// ReplaceAll replaces the profile and/or the operation list in one transaction.
// A nil argument leaves that document untouched.
func (s *Store) ReplaceAll(ctx context.Context, profile *model.UserProfile, ops *[]model.Operation) error {
	return s.inTx(ctx, func(q querier) error {
		if profile != nil {
			if err := saveProfile(ctx, q, *profile); err != nil {
				return err
			}
		}

		if ops == nil {
			return nil
		}
		if _, err := q.ExecContext(ctx, `DELETE FROM operation`); err != nil {
			return fmt.Errorf("failed to clear operation table: %w", err)
		}
		list := *ops
		for i, op := range list {
			if err := insertOperation(ctx, q, op, int64(len(list)-i)); err != nil {
				return err
			}
		}
		return nil
	})
}

func insertOperation(ctx context.Context, q querier, op model.Operation, seq int64) error {
	query := `
		INSERT INTO operation (id, seq, created_at, event_name, market, total_stake, surebet, expected_profit, realized_profit, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := q.ExecContext(ctx, query,
		op.ID,
		seq,
		formatTime(op.CreatedAt),
		op.EventName,
		op.Market,
		op.TotalStake,
		op.Surebet,
		op.ExpectedProfit,
		nullAmount(op.RealizedProfit),
		string(op.Status),
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: operation %s", apperrors.ErrDuplicateEntry, op.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to insert operation %s: %w", op.ID, err)
	}

	legQuery := `
		INSERT INTO leg (id, operation_id, position, book, odd, stake, potential_return)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	for i, leg := range op.Bets {
		_, err := q.ExecContext(ctx, legQuery,
			leg.ID,
			op.ID,
			i,
			leg.Book,
			leg.Odd,
			leg.Stake,
			leg.PotentialReturn,
		)
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: leg %s of operation %s", apperrors.ErrDuplicateEntry, leg.ID, op.ID)
		}
		if err != nil {
			return fmt.Errorf("failed to insert leg %s of operation %s: %w", leg.ID, op.ID, err)
		}
	}
	return nil
}

// queryOperations reads operation rows without legs. An empty id selects all rows.
// The rows are fully read and closed before returning so the single connection is free.
func queryOperations(ctx context.Context, q querier, id string) ([]model.Operation, error) {
	query := `
		SELECT id, created_at, event_name, market, total_stake, surebet, expected_profit, realized_profit, status
		FROM operation
	`
	var args []any
	if id != "" {
		query += ` WHERE id = ?`
		args = append(args, id)
	}
	query += ` ORDER BY seq DESC`

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query operation table: %w", err)
	}
	defer rows.Close()

	ops := []model.Operation{}
	for rows.Next() {
		var op model.Operation
		var createdAt sql.NullString
		var realized sql.NullFloat64
		var status string

		err := rows.Scan(
			&op.ID,
			&createdAt,
			&op.EventName,
			&op.Market,
			&op.TotalStake,
			&op.Surebet,
			&op.ExpectedProfit,
			&realized,
			&status,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan operation table results: %w", err)
		}

		if createdAt.Valid && createdAt.String != "" {
			op.CreatedAt, err = ParseTime(createdAt.String)
			if err != nil {
				return nil, fmt.Errorf("failed to parse created_at of operation %s: %w", op.ID, err)
			}
		}
		if realized.Valid {
			op.RealizedProfit = model.AmountPtr(realized.Float64)
		}
		op.Status = model.Status(status)

		ops = append(ops, op)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating operation table: %w", err)
	}
	return ops, nil
}

// queryLegs reads legs grouped by operation ID in position order. An empty
// operationID selects every leg.
func queryLegs(ctx context.Context, q querier, operationID string) (map[string][]model.Leg, error) {
	query := `
		SELECT id, operation_id, book, odd, stake, potential_return
		FROM leg
	`
	var args []any
	if operationID != "" {
		query += ` WHERE operation_id = ?`
		args = append(args, operationID)
	}
	query += ` ORDER BY operation_id, position`

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leg table: %w", err)
	}
	defer rows.Close()

	legsByOperation := make(map[string][]model.Leg)
	for rows.Next() {
		var leg model.Leg
		var opID string
		err := rows.Scan(
			&leg.ID,
			&opID,
			&leg.Book,
			&leg.Odd,
			&leg.Stake,
			&leg.PotentialReturn,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leg table results: %w", err)
		}
		legsByOperation[opID] = append(legsByOperation[opID], leg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating leg table: %w", err)
	}
	return legsByOperation, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullAmount(a *model.Amount) sql.NullFloat64 {
	if a == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: a.Float64(), Valid: true}
}

// isUniqueViolation reports whether err is a SQLite primary key or unique constraint failure.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ndewijer/surebet-tracker/internal/model"
)

// LoadProfile retrieves the user profile.
// Returns the zero UserProfile if none has been saved yet; callers apply defaults.
func (s *Store) LoadProfile(ctx context.Context) (model.UserProfile, error) {
	query := `
		SELECT schema_version, name, currency, initial_bankroll
		FROM user_profile
		WHERE id = 1
	`

	var p model.UserProfile
	var bankroll float64
	err := s.getQuerier().QueryRowContext(ctx, query).Scan(
		&p.SchemaVersion,
		&p.Name,
		&p.Currency,
		&bankroll,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.UserProfile{}, nil
	}
	if err != nil {
		return model.UserProfile{}, fmt.Errorf("failed to query user_profile table: %w", err)
	}
	p.InitialBankroll = model.Amount(bankroll)

	return p, nil
}

// SaveProfile replaces the stored user profile.
func (s *Store) SaveProfile(ctx context.Context, p model.UserProfile) error {
	return saveProfile(ctx, s.getQuerier(), p)
}

func saveProfile(ctx context.Context, q querier, p model.UserProfile) error {
	query := `
		INSERT INTO user_profile (id, schema_version, name, currency, initial_bankroll, updated_at)
		VALUES (1, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (id) DO UPDATE SET
			schema_version = excluded.schema_version,
			name = excluded.name,
			currency = excluded.currency,
			initial_bankroll = excluded.initial_bankroll,
			updated_at = excluded.updated_at
	`

	_, err := q.ExecContext(ctx, query,
		p.SchemaVersion,
		p.Name,
		p.Currency,
		p.InitialBankroll.Float64(),
	)
	if err != nil {
		return fmt.Errorf("failed to save user_profile: %w", err)
	}
	return nil
}

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/ndewijer/surebet-tracker/internal/api/request"
	"github.com/ndewijer/surebet-tracker/internal/model"
)

// ProfileService handles reading and editing the user profile.
type ProfileService struct {
	store           Store
	defaultCurrency string
}

// NewProfileService creates a new ProfileService. defaultCurrency is used when the
// stored profile has none.
func NewProfileService(store Store, defaultCurrency string) *ProfileService {
	return &ProfileService{
		store:           store,
		defaultCurrency: defaultCurrency,
	}
}

// GetProfile returns the stored profile with defaults applied.
// Before the first save this is a default profile with a zero bankroll.
func (s *ProfileService) GetProfile(ctx context.Context) (model.UserProfile, error) {
	p, err := s.store.LoadProfile(ctx)
	if err != nil {
		return model.UserProfile{}, err
	}
	p.ApplyDefaults(s.defaultCurrency)
	return p, nil
}

// UpdateProfile merges the provided fields into the profile and saves it.
// Missing name, currency and schema version are filled with defaults.
func (s *ProfileService) UpdateProfile(ctx context.Context, req request.UpdateProfileRequest) (model.UserProfile, error) {
	p, err := s.GetProfile(ctx)
	if err != nil {
		return model.UserProfile{}, err
	}

	if req.Name != nil {
		p.Name = strings.TrimSpace(*req.Name)
	}
	if req.Currency != nil {
		p.Currency = strings.TrimSpace(*req.Currency)
	}
	if req.InitialBankroll != nil {
		p.InitialBankroll = model.Amount(round(req.InitialBankroll.Float64()))
	}
	p.ApplyDefaults(s.defaultCurrency)

	if err := s.store.SaveProfile(ctx, p); err != nil {
		return model.UserProfile{}, fmt.Errorf("failed to save profile: %w", err)
	}
	return p, nil
}

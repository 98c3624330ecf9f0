package model

import "strings"

// ProfileSchemaVersion is the schema version written with new profiles.
const ProfileSchemaVersion = 1

// DefaultProfileName is used when a profile is saved without a name.
const DefaultProfileName = "Usuário"

// UserProfile is the single user's bankroll record. InitialBankroll is entered by the
// user and never derived from operations.
type UserProfile struct {
	SchemaVersion   int    `json:"schemaVersion"`
	Name            string `json:"name"`
	Currency        string `json:"currency"`
	InitialBankroll Amount `json:"initialBankroll"`
}

// NewUserProfile returns a profile with default values and an unset bankroll.
func NewUserProfile(currency string) UserProfile {
	p := UserProfile{Currency: currency}
	p.ApplyDefaults(currency)
	return p
}

// ApplyDefaults fills in any missing schema version, name or currency.
func (p *UserProfile) ApplyDefaults(currency string) {
	if p.SchemaVersion == 0 {
		p.SchemaVersion = ProfileSchemaVersion
	}
	if strings.TrimSpace(p.Name) == "" {
		p.Name = DefaultProfileName
	}
	if strings.TrimSpace(p.Currency) == "" {
		p.Currency = currency
	}
	p.Currency = strings.ToUpper(p.Currency)
}

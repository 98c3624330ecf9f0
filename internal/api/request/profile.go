package request

import "github.com/ndewijer/surebet-tracker/internal/model"

type UpdateProfileRequest struct {
	Name            *string       `json:"name,omitempty"`
	Currency        *string       `json:"currency,omitempty"`
	InitialBankroll *model.Amount `json:"initialBankroll,omitempty"`
}

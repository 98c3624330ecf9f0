package validation

import (
	"strings"

	"github.com/ndewijer/surebet-tracker/internal/api/request"
)

// ValidateUpdateProfile validates a profile edit. All fields are optional.
//
// Optional fields (validated if provided):
//   - name: At most 100 characters
//   - currency: Three-letter ISO code
//   - initialBankroll: Must not be negative or exceed MaxAmount
func ValidateUpdateProfile(req request.UpdateProfileRequest) error {
	errors := make(map[string]string)

	if req.Name != nil && len(*req.Name) > 100 {
		errors["name"] = "name must be at most 100 characters"
	}
	if req.Currency != nil && !isCurrencyCode(*req.Currency) {
		errors["currency"] = "currency must be a three-letter ISO code"
	}
	if req.InitialBankroll != nil {
		validateAmount(errors, "initialBankroll", req.InitialBankroll.Float64(), false)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func isCurrencyCode(code string) bool {
	code = strings.TrimSpace(code)
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}

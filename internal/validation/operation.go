package validation

import (
	"fmt"
	"strings"

	"github.com/ndewijer/surebet-tracker/internal/api/request"
	"github.com/ndewijer/surebet-tracker/internal/model"
)

// MaxTextLength bounds free-text fields such as event, market and book names.
const MaxTextLength = 200

// ValidateSaveSplit validates a request to save an operation from a fixed-total split.
//
// Required fields:
//   - odd1, odd2: Must be greater than 1
//   - totalStake: Must not be negative
//
// Event, market and book names are optional and default on save.
func ValidateSaveSplit(req request.SaveSplitRequest) error {
	errors := make(map[string]string)

	validateOdd(errors, "odd1", req.Odd1.Float64())
	validateOdd(errors, "odd2", req.Odd2.Float64())
	validateStake(errors, "totalStake", req.TotalStake.Float64(), true)
	validateText(errors, "eventName", req.EventName)
	validateText(errors, "market", req.Market)
	validateText(errors, "book1", req.Book1)
	validateText(errors, "book2", req.Book2)

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateQuickEntry validates a quick-entry request.
//
// Required fields:
//   - eventName: Must not be blank
//   - odd1, odd2: Must be greater than 1
//   - stake1: Must be positive
//   - stake2: Must not be negative
//   - winner: If provided, must be 1 or 2
func ValidateQuickEntry(req request.QuickEntryRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.EventName) == "" {
		errors["eventName"] = "eventName is required"
	}
	validateText(errors, "eventName", req.EventName)
	validateText(errors, "market", req.Market)
	validateText(errors, "book1", req.Book1)
	validateText(errors, "book2", req.Book2)
	validateOdd(errors, "odd1", req.Odd1.Float64())
	validateOdd(errors, "odd2", req.Odd2.Float64())
	validateStake(errors, "stake1", req.Stake1.Float64(), false)
	validateStake(errors, "stake2", req.Stake2.Float64(), true)

	if req.Winner != nil {
		if err := validateWinner(*req.Winner); err != nil {
			errors["winner"] = err.Error()
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateUpdateOperation validates an operation patch.
// All fields are optional, but status must be a known value and realizedProfit a
// finite amount within MaxAmount if provided.
func ValidateUpdateOperation(req request.UpdateOperationRequest) error {
	errors := make(map[string]string)

	if req.EventName != nil {
		validateText(errors, "eventName", *req.EventName)
	}
	if req.Market != nil {
		validateText(errors, "market", *req.Market)
	}
	if req.Status != nil {
		if strings.TrimSpace(*req.Status) == "" {
			errors["status"] = "status cannot be empty"
		} else if !model.ValidStatus[model.Status(*req.Status)] {
			errors["status"] = fmt.Sprintf("invalid status: %s", *req.Status)
		}
	}
	if req.RealizedProfit != nil {
		validateAmount(errors, "realizedProfit", req.RealizedProfit.Float64(), true)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func validateText(errors map[string]string, field, value string) {
	if len(value) > MaxTextLength {
		errors[field] = fmt.Sprintf("%s must be at most %d characters", field, MaxTextLength)
	}
}

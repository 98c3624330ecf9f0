package validation

import (
	"fmt"
	"strings"

	"github.com/ndewijer/surebet-tracker/internal/model"
)

// ValidateImport checks an import document before anything is replaced.
//
// Rules for userData, when present:
//   - currency: Must be empty or a three-letter ISO code
//   - initialBankroll: Must not be negative or exceed MaxAmount
//
// Rules for each imported operation:
//   - id: Must be a valid identifier and unique within the document
//   - status: Must be empty or a known status
//   - totalStake, expectedProfit, realizedProfit: Finite amounts within MaxAmount
//   - bets: Must not be empty; leg IDs, when present, must be valid and unique
//     across the whole document; odd, stake and potentialReturn must be finite,
//     non-negative and within MaxAmount
func ValidateImport(doc model.ImportDocument) error {
	errors := make(map[string]string)

	if doc.UserData != nil {
		if c := doc.UserData.Currency; strings.TrimSpace(c) != "" && !isCurrencyCode(c) {
			errors["userData.currency"] = "currency must be a three-letter ISO code"
		}
		validateAmount(errors, "userData.initialBankroll", doc.UserData.InitialBankroll.Float64(), false)
	}

	if doc.Operations != nil {
		seen := make(map[string]bool, len(*doc.Operations))
		legIDs := make(map[string]bool)
		for i, op := range *doc.Operations {
			field := fmt.Sprintf("operations[%d]", i)

			if err := ValidateID(op.ID); err != nil {
				errors[field+".id"] = err.Error()
			} else if seen[op.ID] {
				errors[field+".id"] = "duplicate id: " + op.ID
			}
			seen[op.ID] = true

			if op.Status != "" && !model.ValidStatus[op.Status] {
				errors[field+".status"] = fmt.Sprintf("invalid status: %s", op.Status)
			}

			validateAmount(errors, field+".totalStake", op.TotalStake, false)
			validateAmount(errors, field+".expectedProfit", op.ExpectedProfit, true)
			if op.RealizedProfit != nil {
				validateAmount(errors, field+".realizedProfit", op.RealizedProfit.Float64(), true)
			}

			if len(op.Bets) == 0 {
				errors[field+".bets"] = "operation must have at least one bet"
			}
			for j, leg := range op.Bets {
				legField := fmt.Sprintf("%s.bets[%d]", field, j)
				validateAmount(errors, legField+".odd", leg.Odd, false)
				validateAmount(errors, legField+".stake", leg.Stake, false)
				validateAmount(errors, legField+".potentialReturn", leg.PotentialReturn, false)

				if leg.ID == "" {
					continue
				}
				if err := ValidateID(leg.ID); err != nil {
					errors[legField+".id"] = err.Error()
				} else if legIDs[leg.ID] {
					errors[legField+".id"] = "duplicate id: " + leg.ID
				}
				legIDs[leg.ID] = true
			}
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

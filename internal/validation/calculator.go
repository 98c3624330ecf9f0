package validation

import (
	"fmt"
	"math"

	"github.com/ndewijer/surebet-tracker/internal/api/request"
	"github.com/ndewijer/surebet-tracker/internal/arbitrage"
)

// ValidateStakesWinner checks the optional 1-based winner of a stakes evaluation.
func ValidateStakesWinner(req request.StakesRequest) error {
	if req.Winner != nil {
		if err := validateWinner(*req.Winner); err != nil {
			return &Error{Fields: map[string]string{"winner": err.Error()}}
		}
	}
	return nil
}

func validateWinner(winner int) error {
	if winner < 1 || winner > arbitrage.Legs {
		return fmt.Errorf("winner must be between 1 and %d", arbitrage.Legs)
	}
	return nil
}

func validateOdd(errors map[string]string, field string, odd float64) {
	switch {
	case math.IsNaN(odd) || math.IsInf(odd, 0):
		errors[field] = field + " must be a number"
	case odd <= 1:
		errors[field] = field + " must be greater than 1"
	case odd > MaxAmount:
		errors[field] = fmt.Sprintf("%s must be at most %g", field, MaxAmount)
	}
}

func validateStake(errors map[string]string, field string, stake float64, allowZero bool) {
	switch {
	case math.IsNaN(stake) || math.IsInf(stake, 0):
		errors[field] = field + " must be a number"
	case allowZero && stake < 0:
		errors[field] = field + " cannot be negative"
	case !allowZero && stake <= 0:
		errors[field] = field + " must be positive"
	case stake > MaxAmount:
		errors[field] = fmt.Sprintf("%s must be at most %g", field, MaxAmount)
	}
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/ndewijer/surebet-tracker/internal/api/request"
	"github.com/ndewijer/surebet-tracker/internal/api/response"
	"github.com/ndewijer/surebet-tracker/internal/arbitrage"
	"github.com/ndewijer/surebet-tracker/internal/service"
	"github.com/ndewijer/surebet-tracker/internal/validation"
)

// CalculatorHandler serves live calculator previews. Nothing is stored.
type CalculatorHandler struct {
	calculatorService *service.CalculatorService
}

// NewCalculatorHandler creates a new CalculatorHandler with the provided service dependency.
func NewCalculatorHandler(calculatorService *service.CalculatorService) *CalculatorHandler {
	return &CalculatorHandler{
		calculatorService: calculatorService,
	}
}

// Split handles POST requests to preview the split of a fixed total stake.
//
// Endpoint: POST /api/calculator/split
// Request Body: SplitRequest (odd1, odd2, totalStake)
// Response: 200 OK with SplitResult
// Error: 400 Bad Request if request body is invalid
// Error: 422 Unprocessable Entity if an odd is not greater than 1 or the stake is negative
func (h *CalculatorHandler) Split(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.SplitRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	res, err := h.calculatorService.Split(req)
	if err != nil {
		respondCalculatorError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, res)
}

// Stakes handles POST requests to evaluate two user-chosen stakes. When a 1-based
// winner is given the realized profit of that outcome is included.
//
// Endpoint: POST /api/calculator/stakes
// Request Body: StakesRequest (odd1, stake1, odd2, stake2, winner)
// Response: 200 OK with StakesPreview
// Error: 400 Bad Request if request body is invalid
// Error: 422 Unprocessable Entity if odds, stakes or winner are out of range
func (h *CalculatorHandler) Stakes(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.StakesRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateStakesWinner(req); err != nil {
		response.RespondError(w, http.StatusUnprocessableEntity, "validation failed", err.Error())
		return
	}

	preview, err := h.calculatorService.Stakes(req)
	if err != nil {
		respondCalculatorError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, preview)
}

func respondCalculatorError(w http.ResponseWriter, err error) {
	if errors.Is(err, arbitrage.ErrInvalidInput) {
		response.RespondError(w, http.StatusUnprocessableEntity, arbitrage.ErrInvalidInput.Error(), err.Error())
		return
	}
	response.RespondError(w, http.StatusInternalServerError, "failed to calculate", err.Error())
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ndewijer/surebet-tracker/internal/api/request"
	"github.com/ndewijer/surebet-tracker/internal/api/response"
	"github.com/ndewijer/surebet-tracker/internal/apperrors"
	"github.com/ndewijer/surebet-tracker/internal/arbitrage"
	"github.com/ndewijer/surebet-tracker/internal/service"
	"github.com/ndewijer/surebet-tracker/internal/validation"
)

// OperationHandler handles HTTP requests for operation endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the operationService.
type OperationHandler struct {
	operationService *service.OperationService
}

// NewOperationHandler creates a new OperationHandler with the provided service dependency.
func NewOperationHandler(operationService *service.OperationService) *OperationHandler {
	return &OperationHandler{
		operationService: operationService,
	}
}

// Operations handles GET requests to list operations, newest first.
// Each entry carries display strings for its date, total stake and result.
//
// Endpoint: GET /api/operation?status=all|open|completed|cancelled
// Response: 200 OK with array of OperationResponse
// Error: 400 Bad Request if the status filter is unknown
// Error: 500 Internal Server Error if retrieval fails
func (h *OperationHandler) Operations(w http.ResponseWriter, r *http.Request) {
	filter, err := request.ParseOperationFilter(r.URL.Query().Get("status"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid status filter", err.Error())
		return
	}

	operations, err := h.operationService.ListOperations(r.Context(), filter)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveOperations.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, operations)
}

// GetOperation handles GET requests to retrieve a single operation by ID.
//
// Endpoint: GET /api/operation/{id}
// Response: 200 OK with OperationResponse
// Error: 400 Bad Request if operation ID is invalid (validated by middleware)
// Error: 404 Not Found if operation not found
// Error: 500 Internal Server Error if retrieval fails
func (h *OperationHandler) GetOperation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	operation, err := h.operationService.GetOperation(r.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrOperationNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrOperationNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveOperation.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, operation)
}

// CreateFromSplit handles POST requests to save the result of a fixed-total split as an
// open operation.
//
// Endpoint: POST /api/operation/split
// Request Body: SaveSplitRequest (eventName, market, book1, odd1, book2, odd2, totalStake)
// Response: 201 Created with Operation
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *OperationHandler) CreateFromSplit(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.SaveSplitRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateSaveSplit(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	operation, err := h.operationService.CreateFromSplit(r.Context(), req)
	if err != nil {
		respondSaveError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusCreated, operation)
}

// CreateQuickEntry handles POST requests to record an operation from two fixed stakes.
// Without a winner the operation is saved open; with a winner it is saved completed.
//
// Endpoint: POST /api/operation/quick
// Request Body: QuickEntryRequest (eventName, market, book1, odd1, stake1, book2, odd2, stake2, winner)
// Response: 201 Created with Operation
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *OperationHandler) CreateQuickEntry(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.QuickEntryRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateQuickEntry(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	operation, err := h.operationService.CreateQuickEntry(r.Context(), req)
	if err != nil {
		respondSaveError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusCreated, operation)
}

// UpdateOperation handles PATCH requests to merge fields into an operation.
// Patching an unknown ID changes nothing and answers 204.
//
// Endpoint: PATCH /api/operation/{id}
// Request Body: UpdateOperationRequest (eventName, market, status, realizedProfit; all optional)
// Response: 200 OK with Operation
// Response: 204 No Content if no operation matches the ID
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 409 Conflict if the status of a completed or cancelled operation is changed
// Error: 500 Internal Server Error if the update fails
func (h *OperationHandler) UpdateOperation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	req, err := parseJSON[request.UpdateOperationRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateOperation(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	operation, found, err := h.operationService.UpdateOperation(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidStatusTransition) {
			response.RespondError(w, http.StatusConflict, apperrors.ErrInvalidStatusTransition.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToUpdateOperation.Error(), err.Error())
		return
	}
	if !found {
		response.RespondJSON(w, http.StatusNoContent, nil)
		return
	}

	response.RespondJSON(w, http.StatusOK, operation)
}

// DeleteOperation handles DELETE requests to remove an operation. Deleting an unknown ID
// is not an error.
//
// Endpoint: DELETE /api/operation/{id}
// Response: 204 No Content
// Error: 400 Bad Request if operation ID is invalid (validated by middleware)
// Error: 500 Internal Server Error if deletion fails
func (h *OperationHandler) DeleteOperation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.operationService.DeleteOperation(r.Context(), id); err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToDeleteOperation.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

func respondSaveError(w http.ResponseWriter, err error) {
	if errors.Is(err, arbitrage.ErrInvalidInput) {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}
	response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToSaveOperation.Error(), err.Error())
}

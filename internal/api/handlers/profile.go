package handlers

import (
	"net/http"

	"github.com/ndewijer/surebet-tracker/internal/api/request"
	"github.com/ndewijer/surebet-tracker/internal/api/response"
	"github.com/ndewijer/surebet-tracker/internal/apperrors"
	"github.com/ndewijer/surebet-tracker/internal/service"
	"github.com/ndewijer/surebet-tracker/internal/validation"
)

// ProfileHandler handles HTTP requests for the user profile.
type ProfileHandler struct {
	profileService *service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler with the provided service dependency.
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// GetProfile handles GET requests for the user profile.
// Before the first save a default profile with a zero bankroll is returned.
//
// Endpoint: GET /api/profile
// Response: 200 OK with UserProfile
// Error: 500 Internal Server Error if retrieval fails
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profileService.GetProfile(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveProfile.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, profile)
}

// UpdateProfile handles PUT requests to edit the user profile.
// Only provided fields are changed. Amounts may be numbers or pt-BR strings.
//
// Endpoint: PUT /api/profile
// Request Body: UpdateProfileRequest (name, currency, initialBankroll; all optional)
// Response: 200 OK with UserProfile
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if saving fails
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.UpdateProfileRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateProfile(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	profile, err := h.profileService.UpdateProfile(r.Context(), req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToSaveProfile.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, profile)
}

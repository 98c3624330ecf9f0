// Package middleware provides HTTP middleware for request validation and processing.
package middleware

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ndewijer/surebet-tracker/internal/api/response"
	"github.com/ndewijer/surebet-tracker/internal/apperrors"
	"github.com/ndewijer/surebet-tracker/internal/validation"
)

// ValidateIDMiddleware validates that the id URL parameter is present and well formed.
// Returns 400 Bad Request if the ID is missing or invalid.
//
// Example usage in router:
//
//	r.Route("/{id}", func(r chi.Router) {
//	    r.Use(middleware.ValidateIDMiddleware)
//	    r.Get("/", handler.GetOperation)
//	    r.Patch("/", handler.UpdateOperation)
//	})
func ValidateIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if err := validation.ValidateID(id); err != nil {
			if errors.Is(err, apperrors.ErrEmptyID) {
				response.RespondError(w, http.StatusBadRequest, "valid ID is required", "")
				return
			}
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidID.Error(), err.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/movielog/movielog/internal/logger"
	"github.com/movielog/movielog/internal/middlewares"
	"github.com/movielog/movielog/internal/models"
	"github.com/movielog/movielog/internal/services"
)

// Profiler defines the interface that the service must implement.
type Profiler interface {
	Profile(ctx context.Context, userID uuid.UUID) (*models.UserDB, []models.ListEntryDB, []models.ListEntryDB, error)
}

// ProfileResponse carries the user together with both lists
// swagger:model ProfileResponse
type ProfileResponse struct {
	// Public user fields
	User models.UserProfile `json:"user"`

	// Watched entries, most recent first
	Watched []models.ListEntryDB `json:"watched"`

	// Saved entries, most recent first
	Saved []models.ListEntryDB `json:"saved"`
}

// ProfileErrorResponse represents an error response for the profile route
// swagger:model ProfileErrorResponse
type ProfileErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

// NewProfileHandler returns an HTTP handler for the user profile.
// @Summary Get user profile
// @Description Returns the authenticated user together with watched and saved lists
// @Tags user
// @Produce json
// @Success 200 {object} handlers.ProfileResponse "User profile"
// @Failure 401 {object} handlers.ProfileErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ProfileErrorResponse "User not found"
// @Failure 500 {object} handlers.ProfileErrorResponse "Internal server error"
// @Router /user/profile [get]
// @Security ApiKeyAuth
func NewProfileHandler(svc Profiler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Unauthorized"})
			return
		}

		user, watched, saved, err := svc.Profile(r.Context(), userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "User not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ProfileResponse{
			User:    user.Profile(),
			Watched: watched,
			Saved:   saved,
		})
	}
}

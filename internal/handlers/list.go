package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/movielog/movielog/internal/logger"
	"github.com/movielog/movielog/internal/middlewares"
	"github.com/movielog/movielog/internal/models"
	"github.com/movielog/movielog/internal/services"
)

// ListAdder defines the add operation the handlers need.
type ListAdder interface {
	Add(ctx context.Context, kind models.ListKind, userID uuid.UUID, contentID, contentType string) error
}

// ListRemover defines the remove operation the handlers need.
type ListRemover interface {
	Remove(ctx context.Context, kind models.ListKind, userID uuid.UUID, contentID string) (bool, error)
}

// ListEntryRequest represents the JSON body for adding a list entry
// swagger:model ListEntryRequest
type ListEntryRequest struct {
	// Upstream content identifier
	// required: true
	// default: tt0133093
	ContentID string `json:"content_id"`

	// Content type: movie, series or episode
	// required: true
	// default: movie
	Type string `json:"type"`
}

// ListMessageResponse represents a successful list mutation
// swagger:model ListMessageResponse
type ListMessageResponse struct {
	// Success message
	// default: Added to watched list
	Message string `json:"message"`
}

// ListErrorResponse represents an error response for list mutations
// swagger:model ListErrorResponse
type ListErrorResponse struct {
	// Error message
	// default: Already in watched list
	Error string `json:"error"`
}

// newAddListHandler builds an add handler for one list kind.
func newAddListHandler(svc ListAdder, kind models.ListKind, conflictMsg, successMsg string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ListErrorResponse{Error: "Unauthorized"})
			return
		}

		var req ListEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ListErrorResponse{Error: "invalid request body"})
			return
		}

		if strings.TrimSpace(req.ContentID) == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ValidationErrorResponse{Errors: []FieldError{
				{Field: "content_id", Message: "Content id is required"},
			}})
			return
		}

		if err := svc.Add(r.Context(), kind, userID, req.ContentID, req.Type); err != nil {
			switch {
			case errors.Is(err, services.ErrAlreadyInList):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ListErrorResponse{Error: conflictMsg})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ListErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ListMessageResponse{Message: successMsg})
	}
}

// newRemoveListHandler builds a remove handler for one list kind. Removal is
// lenient: removing an absent entry still answers with the success message.
func newRemoveListHandler(svc ListRemover, kind models.ListKind, successMsg string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ListErrorResponse{Error: "Unauthorized"})
			return
		}

		contentID := chi.URLParam(r, "content_id")
		if contentID == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ListErrorResponse{Error: "content id is required"})
			return
		}

		if _, err := svc.Remove(r.Context(), kind, userID, contentID); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ListErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ListMessageResponse{Message: successMsg})
	}
}

// NewAddWatchedHandler returns an HTTP handler that marks content as watched.
// @Summary Add to watched list
// @Description Adds a content id to the authenticated user's watched list
// @Tags user
// @Accept json
// @Produce json
// @Param listEntryRequest body handlers.ListEntryRequest true "Entry to add"
// @Success 200 {object} handlers.ListMessageResponse "Added to watched list"
// @Failure 400 {object} handlers.ListErrorResponse "Already in watched list / invalid request"
// @Failure 401 {object} handlers.ListErrorResponse "Unauthorized"
// @Router /user/watched [post]
// @Security ApiKeyAuth
func NewAddWatchedHandler(svc ListAdder) http.HandlerFunc {
	return newAddListHandler(svc, models.ListWatched, "Already in watched list", "Added to watched list")
}

// NewRemoveWatchedHandler returns an HTTP handler that removes a watched entry.
// @Summary Remove from watched list
// @Description Removes a content id from the authenticated user's watched list
// @Tags user
// @Produce json
// @Param content_id path string true "Content id"
// @Success 200 {object} handlers.ListMessageResponse "Removed from watched list"
// @Failure 401 {object} handlers.ListErrorResponse "Unauthorized"
// @Router /user/watched/{content_id} [delete]
// @Security ApiKeyAuth
func NewRemoveWatchedHandler(svc ListRemover) http.HandlerFunc {
	return newRemoveListHandler(svc, models.ListWatched, "Removed from watched list")
}

// NewAddSavedHandler returns an HTTP handler that saves content for later.
// @Summary Add to saved list
// @Description Adds a content id to the authenticated user's saved list
// @Tags user
// @Accept json
// @Produce json
// @Param listEntryRequest body handlers.ListEntryRequest true "Entry to add"
// @Success 200 {object} handlers.ListMessageResponse "Saved for later"
// @Failure 400 {object} handlers.ListErrorResponse "Already saved / invalid request"
// @Failure 401 {object} handlers.ListErrorResponse "Unauthorized"
// @Router /user/saved [post]
// @Security ApiKeyAuth
func NewAddSavedHandler(svc ListAdder) http.HandlerFunc {
	return newAddListHandler(svc, models.ListSaved, "Already saved", "Saved for later")
}

// NewRemoveSavedHandler returns an HTTP handler that removes a saved entry.
// @Summary Remove from saved list
// @Description Removes a content id from the authenticated user's saved list
// @Tags user
// @Produce json
// @Param content_id path string true "Content id"
// @Success 200 {object} handlers.ListMessageResponse "Removed from saved list"
// @Failure 401 {object} handlers.ListErrorResponse "Unauthorized"
// @Router /user/saved/{content_id} [delete]
// @Security ApiKeyAuth
func NewRemoveSavedHandler(svc ListRemover) http.HandlerFunc {
	return newRemoveListHandler(svc, models.ListSaved, "Removed from saved list")
}

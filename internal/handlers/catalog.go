package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/movielog/movielog/internal/logger"
)

// CatalogSearcher defines the search operation the handler needs.
type CatalogSearcher interface {
	Search(ctx context.Context, query, typeFilter string) (json.RawMessage, error)
}

// CatalogDetailer defines the detail operation the handler needs.
type CatalogDetailer interface {
	Detail(ctx context.Context, contentID, season string) (json.RawMessage, error)
}

// PopularReader defines the popular operation the handler needs.
type PopularReader interface {
	Popular(ctx context.Context) (json.RawMessage, error)
}

// CatalogErrorResponse represents an error response for catalog routes
// swagger:model CatalogErrorResponse
type CatalogErrorResponse struct {
	// Error message
	// default: Upstream provider error
	Error string `json:"error"`
}

// NewSearchHandler returns an HTTP handler for catalog search. Public route,
// the provider payload is relayed verbatim.
// @Summary Search movies and series
// @Description Relays a search query to the metadata provider
// @Tags movies
// @Produce json
// @Param query path string true "Search query"
// @Param type query string false "Content type filter: movie, series or episode"
// @Success 200 {object} object "Raw provider search payload"
// @Failure 500 {object} handlers.CatalogErrorResponse "Upstream provider error"
// @Router /movies/search/{query} [get]
func NewSearchHandler(svc CatalogSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		query := chi.URLParam(r, "query")
		typeFilter := r.URL.Query().Get("type")

		payload, err := svc.Search(r.Context(), query, typeFilter)
		if err != nil {
			logger.Log.Errorw("search failed", "query", query, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CatalogErrorResponse{Error: "Upstream provider error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write(payload)
	}
}

// NewDetailHandler returns an HTTP handler for content detail. Requires a
// valid token.
// @Summary Get content detail
// @Description Relays a detail query to the metadata provider
// @Tags movies
// @Produce json
// @Param id path string true "Content id"
// @Param season query string false "Season number for series"
// @Success 200 {object} object "Raw provider detail payload"
// @Failure 401 {object} handlers.CatalogErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.CatalogErrorResponse "Upstream provider error"
// @Router /movies/detail/{id} [get]
// @Security ApiKeyAuth
func NewDetailHandler(svc CatalogDetailer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		contentID := chi.URLParam(r, "id")
		season := r.URL.Query().Get("season")

		payload, err := svc.Detail(r.Context(), contentID, season)
		if err != nil {
			logger.Log.Errorw("detail failed", "contentID", contentID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CatalogErrorResponse{Error: "Upstream provider error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write(payload)
	}
}

// NewPopularHandler returns an HTTP handler for the curated popular feed.
// Public route.
// @Summary Get popular movies and series
// @Description Returns a curated set of popular movies and series
// @Tags movies
// @Produce json
// @Success 200 {object} object "Curated popular payload"
// @Failure 500 {object} handlers.CatalogErrorResponse "Upstream provider error"
// @Router /movies/popular [get]
func NewPopularHandler(svc PopularReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		payload, err := svc.Popular(r.Context())
		if err != nil {
			logger.Log.Errorw("popular failed", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CatalogErrorResponse{Error: "Upstream provider error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write(payload)
	}
}

package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"

	"github.com/movielog/movielog/internal/logger"
	"github.com/movielog/movielog/internal/models"
)

// CatalogProvider relays queries to the upstream metadata provider.
type CatalogProvider interface {
	Search(ctx context.Context, query, typeFilter string) (json.RawMessage, error)
	Detail(ctx context.Context, contentID, season string) (json.RawMessage, error)
}

// CatalogCache caches raw provider payloads.
type CatalogCache interface {
	Get(ctx context.Context, key string) (json.RawMessage, error)
	Set(ctx context.Context, key string, payload json.RawMessage) error
}

// popularTerms drives the simulated popular feed: the provider has no popular
// endpoint, so a rotating search stands in for one.
var popularTerms = []string{"avengers", "star wars", "harry potter", "matrix"}

// CatalogService serves search/detail/popular queries with a cache-then-source
// flow. The upstream is queried outside any lock and never retried.
type CatalogService struct {
	provider CatalogProvider
	cache    CatalogCache
	pickTerm func() string
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(provider CatalogProvider, cache CatalogCache) *CatalogService {
	return &CatalogService{
		provider: provider,
		cache:    cache,
		pickTerm: func() string { return popularTerms[rand.Intn(len(popularTerms))] },
	}
}

// Search returns the raw provider search payload, served from cache when fresh.
func (s *CatalogService) Search(ctx context.Context, query, typeFilter string) (json.RawMessage, error) {
	key := fmt.Sprintf("catalog:search:%s:%s", query, typeFilter)

	payload, err := s.cache.Get(ctx, key)
	if err == nil {
		return payload, nil
	}

	payload, err = s.provider.Search(ctx, query, typeFilter)
	if err != nil {
		logger.Log.Errorw("failed to search upstream", "query", query, "type", typeFilter, "error", err)
		return nil, err
	}

	if err := s.cache.Set(ctx, key, payload); err != nil {
		logger.Log.Errorw("failed to cache search payload", "key", key, "error", err)
	}

	return payload, nil
}

// Detail returns the raw provider detail payload, served from cache when fresh.
func (s *CatalogService) Detail(ctx context.Context, contentID, season string) (json.RawMessage, error) {
	key := fmt.Sprintf("catalog:detail:%s:%s", contentID, season)

	payload, err := s.cache.Get(ctx, key)
	if err == nil {
		return payload, nil
	}

	payload, err = s.provider.Detail(ctx, contentID, season)
	if err != nil {
		logger.Log.Errorw("failed to fetch detail upstream", "contentID", contentID, "season", season, "error", err)
		return nil, err
	}

	if err := s.cache.Set(ctx, key, payload); err != nil {
		logger.Log.Errorw("failed to cache detail payload", "key", key, "error", err)
	}

	return payload, nil
}

// searchPayload extracts the result list from a provider search response.
type searchPayload struct {
	Search json.RawMessage `json:"Search"`
}

// popularResponse is the curated home page payload.
type popularResponse struct {
	Movies json.RawMessage `json:"movies"`
	Series json.RawMessage `json:"series"`
}

// Popular returns a curated set of movies and series. The provider has no
// popular feed, so one search term is picked and queried once per type; the
// combined payload is cached so the upstream is not hit per request.
func (s *CatalogService) Popular(ctx context.Context) (json.RawMessage, error) {
	const key = "catalog:popular"

	payload, err := s.cache.Get(ctx, key)
	if err == nil {
		return payload, nil
	}

	term := s.pickTerm()

	movies, err := s.provider.Search(ctx, term, models.TypeMovie)
	if err != nil {
		logger.Log.Errorw("failed to fetch popular movies", "term", term, "error", err)
		return nil, err
	}

	series, err := s.provider.Search(ctx, term, models.TypeSeries)
	if err != nil {
		logger.Log.Errorw("failed to fetch popular series", "term", term, "error", err)
		return nil, err
	}

	combined, err := json.Marshal(popularResponse{
		Movies: extractSearchResults(movies),
		Series: extractSearchResults(series),
	})
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, combined); err != nil {
		logger.Log.Errorw("failed to cache popular payload", "key", key, "error", err)
	}

	return combined, nil
}

// extractSearchResults pulls the Search array out of a provider response,
// falling back to an empty list when the provider returned none.
func extractSearchResults(payload json.RawMessage) json.RawMessage {
	var parsed searchPayload
	if err := json.Unmarshal(payload, &parsed); err != nil || parsed.Search == nil {
		return json.RawMessage("[]")
	}
	return parsed.Search
}

package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/movielog/movielog/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCatalogService_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("cache hit skips the provider", func(t *testing.T) {
		mockProvider := NewMockCatalogProvider(ctrl)
		mockCache := NewMockCatalogCache(ctrl)
		svc := NewCatalogService(mockProvider, mockCache)

		cached := json.RawMessage(`{"Search":[{"Title":"Batman"}]}`)
		mockCache.EXPECT().
			Get(gomock.Any(), "catalog:search:batman:movie").
			Return(cached, nil)

		payload, err := svc.Search(ctx, "batman", models.TypeMovie)
		assert.NoError(t, err)
		assert.Equal(t, cached, payload)
	})

	t.Run("cache miss queries the provider and caches", func(t *testing.T) {
		mockProvider := NewMockCatalogProvider(ctrl)
		mockCache := NewMockCatalogCache(ctrl)
		svc := NewCatalogService(mockProvider, mockCache)

		fresh := json.RawMessage(`{"Search":[{"Title":"Batman Begins"}]}`)
		mockCache.EXPECT().
			Get(gomock.Any(), "catalog:search:batman:").
			Return(nil, errors.New("cache miss"))
		mockProvider.EXPECT().
			Search(gomock.Any(), "batman", "").
			Return(fresh, nil)
		mockCache.EXPECT().
			Set(gomock.Any(), "catalog:search:batman:", fresh).
			Return(nil)

		payload, err := svc.Search(ctx, "batman", "")
		assert.NoError(t, err)
		assert.Equal(t, fresh, payload)
	})

	t.Run("provider error", func(t *testing.T) {
		mockProvider := NewMockCatalogProvider(ctrl)
		mockCache := NewMockCatalogCache(ctrl)
		svc := NewCatalogService(mockProvider, mockCache)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("cache miss"))
		mockProvider.EXPECT().
			Search(gomock.Any(), "batman", "").
			Return(nil, errors.New("upstream down"))

		_, err := svc.Search(ctx, "batman", "")
		assert.EqualError(t, err, "upstream down")
	})

	t.Run("cache write failure is not fatal", func(t *testing.T) {
		mockProvider := NewMockCatalogProvider(ctrl)
		mockCache := NewMockCatalogCache(ctrl)
		svc := NewCatalogService(mockProvider, mockCache)

		fresh := json.RawMessage(`{"Search":[]}`)
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("cache miss"))
		mockProvider.EXPECT().
			Search(gomock.Any(), "batman", "").
			Return(fresh, nil)
		mockCache.EXPECT().
			Set(gomock.Any(), gomock.Any(), fresh).
			Return(errors.New("redis down"))

		payload, err := svc.Search(ctx, "batman", "")
		assert.NoError(t, err)
		assert.Equal(t, fresh, payload)
	})
}

func TestCatalogService_Detail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("cache miss fetches and caches by id and season", func(t *testing.T) {
		mockProvider := NewMockCatalogProvider(ctrl)
		mockCache := NewMockCatalogCache(ctrl)
		svc := NewCatalogService(mockProvider, mockCache)

		detail := json.RawMessage(`{"Title":"Breaking Bad","Season":"2"}`)
		mockCache.EXPECT().
			Get(gomock.Any(), "catalog:detail:tt0903747:2").
			Return(nil, errors.New("cache miss"))
		mockProvider.EXPECT().
			Detail(gomock.Any(), "tt0903747", "2").
			Return(detail, nil)
		mockCache.EXPECT().
			Set(gomock.Any(), "catalog:detail:tt0903747:2", detail).
			Return(nil)

		payload, err := svc.Detail(ctx, "tt0903747", "2")
		assert.NoError(t, err)
		assert.Equal(t, detail, payload)
	})

	t.Run("cache hit", func(t *testing.T) {
		mockProvider := NewMockCatalogProvider(ctrl)
		mockCache := NewMockCatalogCache(ctrl)
		svc := NewCatalogService(mockProvider, mockCache)

		cached := json.RawMessage(`{"Title":"The Matrix"}`)
		mockCache.EXPECT().
			Get(gomock.Any(), "catalog:detail:tt0133093:").
			Return(cached, nil)

		payload, err := svc.Detail(ctx, "tt0133093", "")
		assert.NoError(t, err)
		assert.Equal(t, cached, payload)
	})
}

func TestCatalogService_Popular(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("combines one term across both types", func(t *testing.T) {
		mockProvider := NewMockCatalogProvider(ctrl)
		mockCache := NewMockCatalogCache(ctrl)
		svc := NewCatalogService(mockProvider, mockCache)
		svc.pickTerm = func() string { return "matrix" }

		mockCache.EXPECT().
			Get(gomock.Any(), "catalog:popular").
			Return(nil, errors.New("cache miss"))
		mockProvider.EXPECT().
			Search(gomock.Any(), "matrix", models.TypeMovie).
			Return(json.RawMessage(`{"Search":[{"Title":"The Matrix"}]}`), nil)
		mockProvider.EXPECT().
			Search(gomock.Any(), "matrix", models.TypeSeries).
			Return(json.RawMessage(`{"Response":"False"}`), nil)
		mockCache.EXPECT().
			Set(gomock.Any(), "catalog:popular", gomock.Any()).
			Return(nil)

		payload, err := svc.Popular(ctx)
		assert.NoError(t, err)

		var parsed struct {
			Movies []map[string]string `json:"movies"`
			Series []map[string]string `json:"series"`
		}
		assert.NoError(t, json.Unmarshal(payload, &parsed))
		assert.Len(t, parsed.Movies, 1)
		assert.Equal(t, "The Matrix", parsed.Movies[0]["Title"])
		// A provider response with no Search array becomes an empty list.
		assert.Empty(t, parsed.Series)
	})

	t.Run("cache hit skips the provider", func(t *testing.T) {
		mockProvider := NewMockCatalogProvider(ctrl)
		mockCache := NewMockCatalogCache(ctrl)
		svc := NewCatalogService(mockProvider, mockCache)

		cached := json.RawMessage(`{"movies":[],"series":[]}`)
		mockCache.EXPECT().
			Get(gomock.Any(), "catalog:popular").
			Return(cached, nil)

		payload, err := svc.Popular(ctx)
		assert.NoError(t, err)
		assert.Equal(t, cached, payload)
	})

	t.Run("provider error", func(t *testing.T) {
		mockProvider := NewMockCatalogProvider(ctrl)
		mockCache := NewMockCatalogCache(ctrl)
		svc := NewCatalogService(mockProvider, mockCache)
		svc.pickTerm = func() string { return "avengers" }

		mockCache.EXPECT().
			Get(gomock.Any(), "catalog:popular").
			Return(nil, errors.New("cache miss"))
		mockProvider.EXPECT().
			Search(gomock.Any(), "avengers", models.TypeMovie).
			Return(nil, errors.New("upstream down"))

		_, err := svc.Popular(ctx)
		assert.EqualError(t, err, "upstream down")
	})
}

func TestExtractSearchResults(t *testing.T) {
	t.Run("extracts the array", func(t *testing.T) {
		got := extractSearchResults(json.RawMessage(`{"Search":[{"Title":"Up"}]}`))
		assert.JSONEq(t, `[{"Title":"Up"}]`, string(got))
	})

	t.Run("missing array falls back to empty list", func(t *testing.T) {
		got := extractSearchResults(json.RawMessage(`{"Response":"False"}`))
		assert.Equal(t, json.RawMessage("[]"), got)
	})

	t.Run("malformed payload falls back to empty list", func(t *testing.T) {
		got := extractSearchResults(json.RawMessage(`not json`))
		assert.Equal(t, json.RawMessage("[]"), got)
	})
}

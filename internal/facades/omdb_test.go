package facades

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOMDBFacade_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("sends query, type and api key", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			assert.Equal(t, "batman", q.Get("s"))
			assert.Equal(t, "movie", q.Get("type"))
			assert.Equal(t, "testkey", q.Get("apikey"))

			w.Write([]byte(`{"Search":[{"Title":"Batman"}],"Response":"True"}`))
		}))
		defer srv.Close()

		facade := NewOMDBFacade("testkey", srv.URL, 5*time.Second)

		payload, err := facade.Search(ctx, "batman", "movie")
		assert.NoError(t, err)
		assert.JSONEq(t, `{"Search":[{"Title":"Batman"}],"Response":"True"}`, string(payload))
	})

	t.Run("omits empty type filter", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.False(t, r.URL.Query().Has("type"))
			w.Write([]byte(`{"Response":"True"}`))
		}))
		defer srv.Close()

		facade := NewOMDBFacade("testkey", srv.URL, 5*time.Second)

		_, err := facade.Search(ctx, "batman", "")
		assert.NoError(t, err)
	})

	t.Run("non-200 answer", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		facade := NewOMDBFacade("testkey", srv.URL, 5*time.Second)

		_, err := facade.Search(ctx, "batman", "")
		assert.ErrorIs(t, err, ErrUpstream)
	})

	t.Run("unreachable upstream", func(t *testing.T) {
		facade := NewOMDBFacade("testkey", "http://127.0.0.1:1", time.Second)

		_, err := facade.Search(ctx, "batman", "")
		assert.ErrorIs(t, err, ErrUpstream)
	})
}

func TestOMDBFacade_Detail(t *testing.T) {
	ctx := context.Background()

	t.Run("sends id, plot and season", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			assert.Equal(t, "tt0903747", q.Get("i"))
			assert.Equal(t, "full", q.Get("plot"))
			assert.Equal(t, "2", q.Get("Season"))
			assert.Equal(t, "testkey", q.Get("apikey"))

			w.Write([]byte(`{"Title":"Breaking Bad","Response":"True"}`))
		}))
		defer srv.Close()

		facade := NewOMDBFacade("testkey", srv.URL, 5*time.Second)

		payload, err := facade.Detail(ctx, "tt0903747", "2")
		assert.NoError(t, err)
		assert.JSONEq(t, `{"Title":"Breaking Bad","Response":"True"}`, string(payload))
	})

	t.Run("omits empty season", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.False(t, r.URL.Query().Has("Season"))
			w.Write([]byte(`{"Response":"True"}`))
		}))
		defer srv.Close()

		facade := NewOMDBFacade("testkey", srv.URL, 5*time.Second)

		_, err := facade.Detail(ctx, "tt0133093", "")
		assert.NoError(t, err)
	})
}

package facades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/movielog/movielog/internal/logger"
)

// ErrUpstream is returned when the metadata provider fails or answers with a
// non-200 status. A single attempt is made, no retries.
var ErrUpstream = errors.New("upstream provider error")

// OMDBFacade relays catalog queries to the OMDb HTTP API. It holds no state
// beyond the credential and a client with a bounded timeout.
type OMDBFacade struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewOMDBFacade creates a facade for the given OMDb endpoint and api key.
func NewOMDBFacade(apiKey, baseURL string, timeout time.Duration) *OMDBFacade {
	return &OMDBFacade{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Search queries the provider by title. typeFilter may be empty or one of
// movie, series, episode.
func (f *OMDBFacade) Search(ctx context.Context, query, typeFilter string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("s", query)
	if typeFilter != "" {
		params.Set("type", typeFilter)
	}
	return f.do(ctx, params)
}

// Detail queries the provider by content id. season may be empty.
func (f *OMDBFacade) Detail(ctx context.Context, contentID, season string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("i", contentID)
	params.Set("plot", "full")
	if season != "" {
		params.Set("Season", season)
	}
	return f.do(ctx, params)
}

// do performs a single request and relays the raw JSON body verbatim.
func (f *OMDBFacade) do(ctx context.Context, params url.Values) (json.RawMessage, error) {
	params.Set("apikey", f.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("upstream request failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("upstream returned non-200", "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return json.RawMessage(body), nil
}

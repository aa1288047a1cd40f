// Package catalog provides thin pass-through clients for the external content
// catalogs (TMDB and Jikan). Search and discovery logic stays upstream; these
// clients only relay JSON.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const tmdbBaseURL = "https://api.themoviedb.org/3"

// TMDBClient proxies The Movie Database API.
type TMDBClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewTMDBClient creates a new TMDBClient
func NewTMDBClient(apiKey string) *TMDBClient {
	return &TMDBClient{
		apiKey:     apiKey,
		baseURL:    tmdbBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *TMDBClient) get(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tmdb request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tmdb returned status %d", resp.StatusCode)
	}
	return json.RawMessage(body), nil
}

func (c *TMDBClient) TrendingMovies(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/trending/movie/week", nil)
}

func (c *TMDBClient) TrendingTV(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/trending/tv/week", nil)
}

func (c *TMDBClient) SearchMovies(ctx context.Context, query string) (json.RawMessage, error) {
	return c.get(ctx, "/search/movie", url.Values{"query": {query}})
}

func (c *TMDBClient) SearchTV(ctx context.Context, query string) (json.RawMessage, error) {
	return c.get(ctx, "/search/tv", url.Values{"query": {query}})
}

func (c *TMDBClient) MovieDetails(ctx context.Context, movieID string) (json.RawMessage, error) {
	return c.get(ctx, "/movie/"+url.PathEscape(movieID), url.Values{"append_to_response": {"credits,videos,similar"}})
}

func (c *TMDBClient) TVDetails(ctx context.Context, tvID string) (json.RawMessage, error) {
	return c.get(ctx, "/tv/"+url.PathEscape(tvID), url.Values{"append_to_response": {"credits,videos,similar"}})
}

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const jikanBaseURL = "https://api.jikan.moe/v4"

// JikanClient proxies the Jikan anime API. Jikan enforces roughly 3 req/s per
// client; the limiter keeps us under that regardless of request fan-in.
type JikanClient struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewJikanClient creates a new JikanClient
func NewJikanClient() *JikanClient {
	return &JikanClient{
		baseURL:    jikanBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		limiter:    rate.NewLimiter(rate.Every(500*time.Millisecond), 1),
	}
}

func (c *JikanClient) get(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("jikan request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("jikan returned status %d", resp.StatusCode)
	}
	return json.RawMessage(body), nil
}

func (c *JikanClient) TopAnime(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/top/anime", url.Values{"limit": {"20"}})
}

func (c *JikanClient) SearchAnime(ctx context.Context, query string) (json.RawMessage, error) {
	return c.get(ctx, "/anime", url.Values{"q": {query}, "limit": {"20"}})
}

func (c *JikanClient) AnimeDetails(ctx context.Context, animeID string) (json.RawMessage, error) {
	return c.get(ctx, "/anime/"+url.PathEscape(animeID)+"/full", nil)
}

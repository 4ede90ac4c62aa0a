// Package catalog talks to the movie-listing endpoint. The endpoint is
// a plain HTTP resource returning a JSON array of movie records; there
// is no authentication and no pagination.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/marquee/internal/domain"
)

const (
	defaultTimeout = 30 * time.Second
	userAgent      = "Marquee/1.0"
)

// Client fetches the movie catalog.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a catalog client for the given endpoint URL.
// A non-positive timeout falls back to the default.
func NewClient(endpoint string, timeout time.Duration, logger *slog.Logger) (*Client, error) {
	if strings.TrimSpace(endpoint) == "" {
		return nil, fmt.Errorf("catalog endpoint URL is required")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}, nil
}

// FetchMovies performs one GET against the listing endpoint and decodes
// the response body as a sequence of movie records. Individual records
// are not validated; malformed Year or Runtime values are carried
// through and degrade at display time.
//
// A response with a non-OK status yields domain.ErrFetchFailed; network
// and decode failures are returned with their own message.
func (c *Client) FetchMovies(ctx context.Context) ([]domain.Movie, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("catalog request", "url", c.endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("catalog request failed", "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("catalog request error", "status", resp.StatusCode)
		return nil, domain.ErrFetchFailed
	}

	var movies []domain.Movie
	if err := json.Unmarshal(body, &movies); err != nil {
		c.logger.Error("catalog parse error", "error", err, "bodyLen", len(body))
		return nil, fmt.Errorf("failed to parse catalog response: %w", err)
	}

	c.logger.Info("catalog loaded", "count", len(movies))
	return movies, nil
}

// ABOUTME: HTTP client for the external social-graph stats provider
// ABOUTME: Fetches per-author behavioral counts and shapes them into AuthorStats
package social

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/harper/resonate/internal/models"
	"github.com/harper/resonate/internal/util"
)

const (
	defaultTimeout = 15 * time.Second
	// frequencyWindowDays is the window the provider reports post counts over
	frequencyWindowDays = 30
)

// Client talks to the social-graph stats API. The ranking engine never calls
// this directly; the Curator resolves signals through it and supplies zeros
// when the provider has nothing for an author.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	maxRetries int
	retryDelay time.Duration
}

// NewClient creates a social-graph client for the given API base URL
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: defaultTimeout},
		maxRetries: 3,
		retryDelay: time.Second,
	}
}

// statsResponse is the provider's wire format for author stats
type statsResponse struct {
	AuthorID    string `json:"author_id"`
	Followers   int    `json:"followers_count"`
	Following   int    `json:"following_count"`
	PostsLast24 int    `json:"statuses_last_day"`
	PostsWindow int    `json:"statuses_last_month"`
}

// AuthorStats fetches behavioral counts for one author. A 404 means the
// provider doesn't know the author; that surfaces as (nil, nil) and the
// caller substitutes default signals.
func (c *Client) AuthorStats(ctx context.Context, authorID string) (*models.AuthorStats, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("social API base URL not configured")
	}

	endpoint := fmt.Sprintf("%s/api/v1/authors/%s/stats", c.baseURL, url.PathEscape(authorID))

	var stats *models.AuthorStats

	err := util.Retry(ctx, c.maxRetries, c.retryDelay, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return err
		}
		if c.token != "" {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer func() { _ = resp.Body.Close() }()

		switch {
		case resp.StatusCode == http.StatusNotFound:
			// Unknown author is a defined outcome, not a retryable failure
			stats = nil
			return nil
		case resp.StatusCode >= 500:
			return fmt.Errorf("provider error: %s", resp.Status)
		case resp.StatusCode != http.StatusOK:
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return fmt.Errorf("unexpected status %s: %s", resp.Status, body)
		}

		var wire statsResponse
		if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
			return fmt.Errorf("decoding stats: %w", err)
		}

		stats = &models.AuthorStats{
			AuthorID:    authorID,
			Followers:   wire.Followers,
			Following:   wire.Following,
			PostsPerDay: float64(wire.PostsWindow) / frequencyWindowDays,
			RecentPosts: wire.PostsLast24,
			UpdatedAt:   time.Now(),
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetching author stats for %s: %w", authorID, err)
	}

	return stats, nil
}

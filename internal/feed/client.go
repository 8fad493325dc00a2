package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"jobboard_backend/internal/services/dto"
)

// Client fetches listings from the external remote-jobs API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limit      int
}

func New(baseURL string, timeout time.Duration, limit int) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		limit:      limit,
	}
}

type feedPayload struct {
	Jobs []dto.FeedJob `json:"jobs"`
}

// Fetch returns at most the configured number of upstream listings. Any
// network or parse failure is returned as an error; the caller decides how
// to degrade.
func (c *Client) Fetch(ctx context.Context) ([]dto.FeedJob, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build feed request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}

	var payload feedPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode feed response: %w", err)
	}

	jobs := payload.Jobs
	if len(jobs) > c.limit {
		jobs = jobs[:c.limit]
	}
	return jobs, nil
}

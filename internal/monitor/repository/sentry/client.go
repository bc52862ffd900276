package sentry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client is the HTTP wrapper for the Sentry REST API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a new Sentry HTTP client for the given instance domain
// (e.g. "sentry.io").
func NewClient(domain, token string) *Client {
	return &Client{
		baseURL:    fmt.Sprintf("https://%s", domain),
		token:      token,
		httpClient: &http.Client{},
	}
}

// SetBaseURL overrides the API base URL for testing purposes.
func (c *Client) SetBaseURL(url string) {
	c.baseURL = url
}

// ListProjectIssues fetches the latest issues for one project via
// GET /api/0/projects/{org}/{project}/issues/.
func (c *Client) ListProjectIssues(ctx context.Context, org, project string) ([]Issue, error) {
	url := fmt.Sprintf("%s/api/0/projects/%s/%s/issues/", c.baseURL, org, project)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build sentry issues request: %w", err)
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call sentry issues API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("sentry API error %d: %s", resp.StatusCode, string(raw))
	}

	var issues []Issue
	if err := json.NewDecoder(resp.Body).Decode(&issues); err != nil {
		return nil, fmt.Errorf("failed to decode sentry issues response: %w", err)
	}
	return issues, nil
}

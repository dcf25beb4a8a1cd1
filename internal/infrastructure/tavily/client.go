// Package tavily implements the search.Provider interface against the
// Tavily search API.
package tavily

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"InsuranceNewsAgent/internal/config"
	"InsuranceNewsAgent/internal/search"
)

// Client posts search queries to the Tavily HTTP API.
type Client struct {
	endpoint   string
	apiKey     string
	maxResults int
	httpClient *http.Client
}

var _ search.Provider = (*Client)(nil)

// NewClient builds a client from configuration; client may be nil and
// defaults to a 30s-timeout http.Client.
func NewClient(cfg config.SearchConfig, client *http.Client) *Client {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
		maxResults: cfg.MaxResults,
		httpClient: client,
	}
}

// Name identifies the provider inside the registry.
func (c *Client) Name() string {
	return "tavily"
}

// Search posts the query and returns the decoded response payload without
// assuming its shape; the result parser owns shape dispatch. A response
// body that is not valid JSON is returned verbatim as a string.
func (c *Client) Search(ctx context.Context, query string) (any, error) {
	if c.apiKey == "" || c.endpoint == "" {
		return nil, fmt.Errorf("tavily client misconfigured")
	}

	body, err := json.Marshal(map[string]any{
		"api_key":     c.apiKey,
		"query":       query,
		"max_results": c.maxResults,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal search payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("tavily error %s: %s", resp.Status, strings.TrimSpace(string(payload)))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return string(raw), nil
	}
	return payload, nil
}

// Package backend is a thin client for the managed backend's PostgREST API.
// Rows travel as snake_case JSON; callers own their row types.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 15 * time.Second

// ErrNotConfigured is returned by New when the base URL is missing.
var ErrNotConfigured = errors.New("backend url is not configured")

// APIError is a non-2xx answer from the backend.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend API error %d: %s", e.StatusCode, e.Body)
}

// Client talks to the REST endpoint at <baseURL>/rest/v1.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// New creates a backend client.
func New(baseURL, apiKey string) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, ErrNotConfigured
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}, nil
}

// Eq builds a PostgREST equality filter value.
func Eq(v string) string { return "eq." + v }

// Gte builds a PostgREST greater-or-equal filter value.
func Gte(v string) string { return "gte." + v }

// Lte builds a PostgREST less-or-equal filter value.
func Lte(v string) string { return "lte." + v }

// Select lists rows of table matching query into out (a pointer to a slice).
func (c *Client) Select(ctx context.Context, table string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, table, query, nil, nil, out)
}

// Insert creates row and decodes the stored representation into out.
func (c *Client) Insert(ctx context.Context, table string, row, out any) error {
	headers := map[string]string{"Prefer": "return=representation"}
	return c.do(ctx, http.MethodPost, table, nil, row, headers, out)
}

// Upsert inserts row or merges it into the row sharing the onConflict columns.
func (c *Client) Upsert(ctx context.Context, table string, row any, onConflict string, out any) error {
	query := url.Values{}
	query.Set("on_conflict", onConflict)
	headers := map[string]string{"Prefer": "resolution=merge-duplicates,return=representation"}
	return c.do(ctx, http.MethodPost, table, query, row, headers, out)
}

// Update patches every row matching filter and decodes the updated rows into out.
func (c *Client) Update(ctx context.Context, table string, filter url.Values, patch, out any) error {
	headers := map[string]string{"Prefer": "return=representation"}
	return c.do(ctx, http.MethodPatch, table, filter, patch, headers, out)
}

// Delete removes every row matching filter. A non-nil out receives the
// deleted rows.
func (c *Client) Delete(ctx context.Context, table string, filter url.Values, out any) error {
	var headers map[string]string
	if out != nil {
		headers = map[string]string{"Prefer": "return=representation"}
	}
	return c.do(ctx, http.MethodDelete, table, filter, nil, headers, out)
}

func (c *Client) do(ctx context.Context, method, table string, query url.Values, body any, headers map[string]string, out any) error {
	endpoint := fmt.Sprintf("%s/rest/v1/%s", c.baseURL, table)
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal %s %s request: %w", method, table, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build %s %s request: %w", method, table, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call backend %s %s: %w", method, table, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode backend %s %s response: %w", method, table, err)
	}
	return nil
}

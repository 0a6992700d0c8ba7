// Package client is the HTTP client for the assessment API. The base URL is
// always injected; nothing here hardcodes a host.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"mindscale/internal/model"
)

// Client wraps assessment API calls.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client against the given base URL (e.g.
// "http://localhost:8002/api/v1").
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (c *Client) doRequest(ctx context.Context, method, path string, body io.Reader, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[API Client] ERROR: %s %s failed: %v", method, path, err)
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		log.Printf("[API Client] ERROR: %s %s returned %d: %s", method, path, resp.StatusCode, string(respBody))
		return fmt.Errorf("API error %d: %s", resp.StatusCode, string(respBody))
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}
	return nil
}

// GetTest fetches an instrument definition by its test type key.
// includeScores asks the server to keep option weights and result ranges in
// the payload; weighted instruments cannot be scored without them.
func (c *Client) GetTest(ctx context.Context, testType string, includeScores bool) (*model.Test, error) {
	path := "/tests/" + url.PathEscape(testType)
	if includeScores {
		path += "?include_scores=true"
	}
	var test model.Test
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &test); err != nil {
		return nil, err
	}
	return &test, nil
}

// CreateTest registers a new instrument definition (admin operation).
func (c *Client) CreateTest(ctx context.Context, test *model.Test) (*model.Test, error) {
	payload, err := json.Marshal(test)
	if err != nil {
		return nil, fmt.Errorf("failed to encode test: %w", err)
	}
	var created model.Test
	if err := c.doRequest(ctx, http.MethodPost, "/tests", bytes.NewReader(payload), &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Submit records a completed answer set against a test id and returns the
// stored session.
func (c *Client) Submit(ctx context.Context, testID string, sub *model.Submission) (*model.Session, error) {
	payload, err := json.Marshal(sub)
	if err != nil {
		return nil, fmt.Errorf("failed to encode submission: %w", err)
	}
	path := fmt.Sprintf("/tests/%s/submit", url.PathEscape(testID))
	var session model.Session
	if err := c.doRequest(ctx, http.MethodPost, path, bytes.NewReader(payload), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// GetSession fetches one stored session by id.
func (c *Client) GetSession(ctx context.Context, sessionID string) (*model.Session, error) {
	var session model.Session
	path := "/sessions/" + url.PathEscape(sessionID)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// UserSessions lists all sessions recorded for a user.
func (c *Client) UserSessions(ctx context.Context, userID string) ([]model.Session, error) {
	var sessions []model.Session
	path := fmt.Sprintf("/users/%s/sessions", url.PathEscape(userID))
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// Popular lists tests ranked by completed session count.
func (c *Client) Popular(ctx context.Context) ([]model.PopularTest, error) {
	var rows []model.PopularTest
	if err := c.doRequest(ctx, http.MethodGet, "/tests/popular", nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

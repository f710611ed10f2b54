// Package matchsvc provides the HTTP client for the remote candidate-matching service.
package matchsvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultTimeout is the default HTTP request timeout. Search requests sit
// behind an LLM reranker on the service side, so the timeout is generous.
const DefaultTimeout = 60 * time.Second

// Client talks to the matching service's REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the matching service at baseURL
// (e.g. "http://localhost:8000").
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// Search runs the full ranking pipeline on the remote service and returns
// candidates ordered by fit score.
func (c *Client) Search(ctx context.Context, req *SearchRequest) (*SearchResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid search request: %w", err)
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search request: %w", err)
	}

	body, err := c.post(ctx, "/api/v1/search", payload)
	if err != nil {
		return nil, err
	}

	if err := validateSearchResponse(body); err != nil {
		return nil, err
	}

	var result SearchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}
	return &result, nil
}

// FetchResume retrieves the raw resume content for a candidate by display
// name. Non-success statuses become a StatusError carrying the
// server-supplied detail message when one is present.
func (c *Client) FetchResume(ctx context.Context, name string) (*Resume, error) {
	body, err := c.get(ctx, "/api/v1/resume/"+url.PathEscape(name))
	if err != nil {
		return nil, err
	}

	var resume Resume
	if err := json.Unmarshal(body, &resume); err != nil {
		return nil, fmt.Errorf("failed to decode resume response: %w", err)
	}
	return &resume, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.do(req)
}

func (c *Client) post(ctx context.Context, path string, payload []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{URL: req.URL.String(), Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: req.URL.String(), Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Detail:     decodeDetail(body),
		}
	}

	return body, nil
}

// decodeDetail pulls the "detail" message out of an error body. The body is
// parsed defensively: anything unparseable falls back to an empty message
// rather than failing.
func decodeDetail(body []byte) string {
	var parsed struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return ""
	}
	return parsed.Detail
}

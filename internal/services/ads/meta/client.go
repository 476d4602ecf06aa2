package meta

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const defaultBaseURL = "https://graph.facebook.com/v19.0"

// Config configures the Graph API client.
type Config struct {
	// BaseURL overrides the API endpoint, mainly for tests.
	BaseURL     string
	AccessToken string
	HTTPClient  *http.Client
}

// Client calls the Meta Graph API.
type Client struct {
	cfg Config
}

// NewClient builds a Graph API client.
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.AccessToken) == "" {
		return nil, fmt.Errorf("access token is required")
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = defaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	return &Client{cfg: cfg}, nil
}

// GraphError is the error envelope the Graph API wraps every failure in.
type GraphError struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode"`
	FBTraceID    string `json:"fbtrace_id"`
	StatusCode   int    `json:"-"`
}

// Error implements the error interface.
func (e *GraphError) Error() string {
	return fmt.Sprintf("graph api error %d (%s, subcode %d): %s", e.Code, e.Type, e.ErrorSubcode, e.Message)
}

type graphErrorEnvelope struct {
	Error *GraphError `json:"error"`
}

// postForm sends one form-encoded POST, the Graph API's native write shape,
// and decodes the JSON response into out.
func (c *Client) postForm(ctx context.Context, path string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	// The token travels in a header rather than the form so it never shows
	// up in logged request bodies.
	req.Header.Set("Authorization", "Bearer "+c.cfg.AccessToken)

	res, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("graph api request failed: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		var envelope graphErrorEnvelope
		if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != nil {
			envelope.Error.StatusCode = res.StatusCode
			return envelope.Error
		}
		return fmt.Errorf("graph api request status %d: %s", res.StatusCode, strings.TrimSpace(string(body)))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// get sends one GET request and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	target := c.cfg.BaseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.AccessToken)

	res, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("graph api request failed: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		var envelope graphErrorEnvelope
		if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != nil {
			envelope.Error.StatusCode = res.StatusCode
			return envelope.Error
		}
		return fmt.Errorf("graph api request status %d: %s", res.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

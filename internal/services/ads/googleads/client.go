package googleads

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const defaultBaseURL = "https://googleads.googleapis.com/v17"

// TokenSource supplies a bearer token for one request.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Config configures the Google Ads REST client.
type Config struct {
	// BaseURL overrides the API endpoint, mainly for tests.
	BaseURL        string
	DeveloperToken string
	// LoginCustomerID identifies the manager account when operating on a
	// client account through an MCC hierarchy. Optional.
	LoginCustomerID string
	TokenSource     TokenSource
	HTTPClient      *http.Client
}

// Client calls the Google Ads REST API.
type Client struct {
	cfg Config
}

// NewClient builds a Google Ads client.
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.DeveloperToken) == "" {
		return nil, fmt.Errorf("developer token is required")
	}
	if cfg.TokenSource == nil {
		return nil, fmt.Errorf("token source is required")
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

// APIError is a non-2xx response from the Google Ads API.
type APIError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("google ads request status %d: %s", e.StatusCode, e.Body)
}

// post sends one JSON request and decodes the response into out.
func (c *Client) post(ctx context.Context, path string, payload any, out any) error {
	token, err := c.cfg.TokenSource.Token(ctx)
	if err != nil {
		return fmt.Errorf("acquire access token: %w", err)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	// Token material travels only in headers and is never echoed in errors.
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("developer-token", c.cfg.DeveloperToken)
	if loginCustomerID := strings.TrimSpace(c.cfg.LoginCustomerID); loginCustomerID != "" {
		req.Header.Set("login-customer-id", loginCustomerID)
	}

	res, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("google ads request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		errBody, readErr := io.ReadAll(io.LimitReader(res.Body, 8192))
		if readErr != nil {
			return fmt.Errorf("read error body: %w", readErr)
		}
		return &APIError{StatusCode: res.StatusCode, Body: strings.TrimSpace(string(errBody))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

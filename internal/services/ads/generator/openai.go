package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// OpenAIConfig configures the OpenAI responses-endpoint provider.
type OpenAIConfig struct {
	// ResponsesURL overrides the endpoint, mainly for tests.
	ResponsesURL string
	APIKey       string
	HTTPClient   *http.Client
}

type openAIProvider struct {
	cfg OpenAIConfig
}

// NewOpenAIProvider builds a Provider backed by the OpenAI responses
// endpoint.
func NewOpenAIProvider(cfg OpenAIConfig) (Provider, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("api key is required")
	}
	if strings.TrimSpace(cfg.ResponsesURL) == "" {
		cfg.ResponsesURL = "https://api.openai.com/v1/responses"
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	return &openAIProvider{cfg: cfg}, nil
}

func (p *openAIProvider) Invoke(ctx context.Context, input ProviderInvokeInput) (ProviderInvokeResult, error) {
	model := strings.TrimSpace(input.Model)
	prompt := strings.TrimSpace(input.Input)
	if model == "" {
		return ProviderInvokeResult{}, fmt.Errorf("model is required")
	}
	if prompt == "" {
		return ProviderInvokeResult{}, fmt.Errorf("input is required")
	}

	requestBody, err := json.Marshal(map[string]any{
		"model": model,
		"input": prompt,
	})
	if err != nil {
		return ProviderInvokeResult{}, fmt.Errorf("marshal invoke request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.ResponsesURL, bytes.NewReader(requestBody))
	if err != nil {
		return ProviderInvokeResult{}, fmt.Errorf("build invoke request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	// Credential material is sent only as an Authorization header and is
	// never echoed in errors or response payloads.
	req.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)

	res, err := p.cfg.HTTPClient.Do(req)
	if err != nil {
		return ProviderInvokeResult{}, fmt.Errorf("invoke request failed: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, err := io.ReadAll(io.LimitReader(res.Body, 4096))
		if err != nil {
			return ProviderInvokeResult{}, fmt.Errorf("read invoke error body: %w", err)
		}
		return ProviderInvokeResult{}, fmt.Errorf("invoke request status %d: %s", res.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload struct {
		OutputText string `json:"output_text"`
		Output     []struct {
			Content []struct {
				Type string `json:"type"`
				Text string `json:"text"`
			} `json:"content"`
		} `json:"output"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return ProviderInvokeResult{}, fmt.Errorf("decode invoke response: %w", err)
	}
	outputText := strings.TrimSpace(payload.OutputText)
	if outputText == "" {
		for _, item := range payload.Output {
			for _, content := range item.Content {
				if strings.TrimSpace(content.Text) != "" {
					outputText = strings.TrimSpace(content.Text)
					break
				}
			}
			if outputText != "" {
				break
			}
		}
	}
	if outputText == "" {
		return ProviderInvokeResult{}, fmt.Errorf("invoke response missing output text")
	}
	return ProviderInvokeResult{OutputText: outputText}, nil
}

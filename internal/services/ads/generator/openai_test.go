package generator

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
)

type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func openAITestProvider(t *testing.T, rt roundTripFunc) Provider {
	t.Helper()
	provider, err := NewOpenAIProvider(OpenAIConfig{
		APIKey:     "sk-test",
		HTTPClient: &http.Client{Transport: rt},
	})
	if err != nil {
		t.Fatalf("NewOpenAIProvider() error = %v", err)
	}
	return provider
}

func TestOpenAIProviderRequiresAPIKey(t *testing.T) {
	if _, err := NewOpenAIProvider(OpenAIConfig{}); err == nil {
		t.Fatal("NewOpenAIProvider() error = nil, want error")
	}
}

func TestOpenAIProviderOutputText(t *testing.T) {
	var gotAuth string
	provider := openAITestProvider(t, func(req *http.Request) (*http.Response, error) {
		gotAuth = req.Header.Get("Authorization")
		return jsonResponse(200, `{"output_text":"[\"Free Shipping\"]"}`), nil
	})

	result, err := provider.Invoke(context.Background(), ProviderInvokeInput{Model: "gpt-test", Input: "prompt"})
	if err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	if result.OutputText != `["Free Shipping"]` {
		t.Fatalf("OutputText = %q", result.OutputText)
	}
	if gotAuth != "Bearer sk-test" {
		t.Fatalf("Authorization = %q, want bearer key", gotAuth)
	}
}

func TestOpenAIProviderStructuredOutputFallback(t *testing.T) {
	provider := openAITestProvider(t, func(req *http.Request) (*http.Response, error) {
		return jsonResponse(200, `{"output":[{"content":[{"type":"output_text","text":"[\"Variant\"]"}]}]}`), nil
	})

	result, err := provider.Invoke(context.Background(), ProviderInvokeInput{Model: "gpt-test", Input: "prompt"})
	if err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	if result.OutputText != `["Variant"]` {
		t.Fatalf("OutputText = %q", result.OutputText)
	}
}

func TestOpenAIProviderMissingOutput(t *testing.T) {
	provider := openAITestProvider(t, func(req *http.Request) (*http.Response, error) {
		return jsonResponse(200, `{}`), nil
	})

	if _, err := provider.Invoke(context.Background(), ProviderInvokeInput{Model: "gpt-test", Input: "prompt"}); err == nil {
		t.Fatal("Invoke() error = nil, want missing output error")
	}
}

func TestOpenAIProviderErrorStatus(t *testing.T) {
	provider := openAITestProvider(t, func(req *http.Request) (*http.Response, error) {
		return jsonResponse(429, `{"error":{"message":"rate limited"}}`), nil
	})

	_, err := provider.Invoke(context.Background(), ProviderInvokeInput{Model: "gpt-test", Input: "prompt"})
	if err == nil {
		t.Fatal("Invoke() error = nil, want status error")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Fatalf("error = %v, want status code in message", err)
	}
}

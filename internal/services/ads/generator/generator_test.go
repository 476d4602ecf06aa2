package generator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/adpilot/adpilot/internal/services/ads/recommendation"
)

type fakeProvider struct {
	output    string
	err       error
	lastInput ProviderInvokeInput
}

func (f *fakeProvider) Invoke(ctx context.Context, input ProviderInvokeInput) (ProviderInvokeResult, error) {
	f.lastInput = input
	if f.err != nil {
		return ProviderInvokeResult{}, f.err
	}
	return ProviderInvokeResult{OutputText: f.output}, nil
}

func TestGenerateHeadlines(t *testing.T) {
	provider := &fakeProvider{output: `["Free Shipping Today", "Next Day Delivery", "Shop The Full Range"]`}
	gen, err := NewGenerator(provider, "gpt-test")
	if err != nil {
		t.Fatalf("NewGenerator() error = %v", err)
	}

	drafts, err := gen.Generate(context.Background(), Input{
		AccountID: "acct-1",
		AdGroupID: "7",
		Kind:      recommendation.KindHeadline,
		Brief:     "Running shoe store with fast delivery.",
		Count:     3,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(drafts) != 3 {
		t.Fatalf("len(drafts) = %d, want 3", len(drafts))
	}
	if provider.lastInput.Model != "gpt-test" {
		t.Fatalf("provider model = %q, want gpt-test", provider.lastInput.Model)
	}
	if !strings.Contains(provider.lastInput.Input, "Running shoe store") {
		t.Fatal("prompt missing brief")
	}

	draft := drafts[0]
	if draft.Status != recommendation.StatusDraft {
		t.Fatalf("Status = %q, want draft", draft.Status)
	}
	if draft.Source != "llm" {
		t.Fatalf("Source = %q, want llm", draft.Source)
	}
	if draft.Kind != recommendation.KindHeadline {
		t.Fatalf("Kind = %q, want headline", draft.Kind)
	}
	if draft.Value != "Free Shipping Today" {
		t.Fatalf("Value = %q", draft.Value)
	}
}

func TestGenerateDropsOverlongVariants(t *testing.T) {
	long := strings.Repeat("a", 40)
	provider := &fakeProvider{output: `["Short Headline", "` + long + `"]`}
	gen, _ := NewGenerator(provider, "gpt-test")

	drafts, err := gen.Generate(context.Background(), Input{
		Kind:  recommendation.KindHeadline,
		Brief: "brief",
		Count: 2,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(drafts) != 1 {
		t.Fatalf("len(drafts) = %d, want 1 after dropping overlong variant", len(drafts))
	}
}

func TestGenerateToleratesCodeFence(t *testing.T) {
	provider := &fakeProvider{output: "```json\n[\"Free Shipping Today\"]\n```"}
	gen, _ := NewGenerator(provider, "gpt-test")

	drafts, err := gen.Generate(context.Background(), Input{
		Kind:  recommendation.KindHeadline,
		Brief: "brief",
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(drafts) != 1 {
		t.Fatalf("len(drafts) = %d, want 1", len(drafts))
	}
}

func TestGenerateTruncatesToCount(t *testing.T) {
	provider := &fakeProvider{output: `["One", "Two", "Three", "Four"]`}
	gen, _ := NewGenerator(provider, "gpt-test")

	drafts, err := gen.Generate(context.Background(), Input{
		Kind:  recommendation.KindHeadline,
		Brief: "brief",
		Count: 2,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(drafts) != 2 {
		t.Fatalf("len(drafts) = %d, want 2", len(drafts))
	}
}

func TestGenerateRejectsNonArrayOutput(t *testing.T) {
	provider := &fakeProvider{output: `Here are some headlines: 1. Free Shipping`}
	gen, _ := NewGenerator(provider, "gpt-test")

	if _, err := gen.Generate(context.Background(), Input{Kind: recommendation.KindHeadline, Brief: "brief"}); err == nil {
		t.Fatal("Generate() error = nil, want parse error")
	}
}

func TestGenerateAllVariantsUnusable(t *testing.T) {
	provider := &fakeProvider{output: `["` + strings.Repeat("a", 40) + `", "  "]`}
	gen, _ := NewGenerator(provider, "gpt-test")

	if _, err := gen.Generate(context.Background(), Input{Kind: recommendation.KindHeadline, Brief: "brief"}); err == nil {
		t.Fatal("Generate() error = nil, want no usable variants error")
	}
}

func TestGenerateRejectsUnsupportedKind(t *testing.T) {
	gen, _ := NewGenerator(&fakeProvider{output: `["x"]`}, "gpt-test")

	if _, err := gen.Generate(context.Background(), Input{Kind: recommendation.KindKeyword, Brief: "brief"}); err == nil {
		t.Fatal("Generate() error = nil, want unsupported kind error")
	}
}

func TestGenerateProviderError(t *testing.T) {
	boom := errors.New("rate limited")
	gen, _ := NewGenerator(&fakeProvider{err: boom}, "gpt-test")

	_, err := gen.Generate(context.Background(), Input{Kind: recommendation.KindHeadline, Brief: "brief"})
	if !errors.Is(err, boom) {
		t.Fatalf("Generate() error = %v, want wrapped provider error", err)
	}
}

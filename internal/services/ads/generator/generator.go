// Package generator turns product briefs into draft ad copy
// recommendations using an LLM provider.
package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/adpilot/adpilot/internal/services/ads/mutation"
	"github.com/adpilot/adpilot/internal/services/ads/recommendation"
)

// ProviderInvokeInput is one provider call.
type ProviderInvokeInput struct {
	Model string
	Input string
}

// ProviderInvokeResult carries the provider's raw text output.
type ProviderInvokeResult struct {
	OutputText string
}

// Provider invokes an LLM and returns its text output.
type Provider interface {
	Invoke(ctx context.Context, input ProviderInvokeInput) (ProviderInvokeResult, error)
}

// Generator produces copy drafts from a brief.
type Generator struct {
	provider Provider
	model    string
}

// NewGenerator builds a generator over a provider. model is the provider
// model identifier.
func NewGenerator(provider Provider, model string) (*Generator, error) {
	if provider == nil {
		return nil, fmt.Errorf("provider is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("model is required")
	}
	return &Generator{provider: provider, model: model}, nil
}

// Input asks for a number of copy variants of one kind.
type Input struct {
	AccountID  string
	CampaignID string
	AdGroupID  string
	// Kind is headline, description, or sitelink.
	Kind recommendation.Kind
	// Brief is the caller-supplied product brief the prompt is built around.
	Brief string
	// Count bounds how many variants to request.
	Count int
}

const maxVariants = 10

// kindLimits maps generable kinds to their character limits.
var kindLimits = map[recommendation.Kind]int{
	recommendation.KindHeadline:    mutation.MaxHeadlineLength,
	recommendation.KindDescription: mutation.MaxDescriptionLength,
	recommendation.KindSitelink:    mutation.MaxSitelinkTextLength,
}

// Generate invokes the provider and parses its output into draft
// recommendations. Variants exceeding the kind's character limit are
// silently dropped, so the returned slice may be shorter than requested.
func (g *Generator) Generate(ctx context.Context, input Input) ([]recommendation.Recommendation, error) {
	limit, ok := kindLimits[input.Kind]
	if !ok {
		return nil, fmt.Errorf("kind %q cannot be generated", input.Kind)
	}
	brief := strings.TrimSpace(input.Brief)
	if brief == "" {
		return nil, fmt.Errorf("brief is required")
	}
	count := input.Count
	if count <= 0 {
		count = 3
	}
	if count > maxVariants {
		count = maxVariants
	}

	result, err := g.provider.Invoke(ctx, ProviderInvokeInput{
		Model: g.model,
		Input: buildPrompt(input.Kind, brief, count, limit),
	})
	if err != nil {
		return nil, fmt.Errorf("invoke provider: %w", err)
	}

	variants, err := parseVariants(result.OutputText)
	if err != nil {
		return nil, err
	}

	drafts := make([]recommendation.Recommendation, 0, len(variants))
	for _, variant := range variants {
		text := strings.TrimSpace(variant)
		if text == "" || len([]rune(text)) > limit {
			continue
		}
		drafts = append(drafts, recommendation.Recommendation{
			AccountID:  input.AccountID,
			CampaignID: input.CampaignID,
			AdGroupID:  input.AdGroupID,
			Channel:    recommendation.ChannelGoogle,
			Kind:       input.Kind,
			Action:     recommendation.ActionAdd,
			Value:      text,
			Status:     recommendation.StatusDraft,
			Source:     "llm",
		})
		if len(drafts) == count {
			break
		}
	}
	if len(drafts) == 0 {
		return nil, fmt.Errorf("provider produced no usable variants")
	}
	return drafts, nil
}

func buildPrompt(kind recommendation.Kind, brief string, count, limit int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write %d distinct ad %s variants for the product described below.\n", count, kindLabel(kind))
	fmt.Fprintf(&b, "Each variant must be at most %d characters, plain text, no exclamation marks, not all capitals.\n", limit)
	b.WriteString("Respond with only a JSON array of strings.\n\n")
	b.WriteString(brief)
	return b.String()
}

func kindLabel(kind recommendation.Kind) string {
	switch kind {
	case recommendation.KindHeadline:
		return "headline"
	case recommendation.KindDescription:
		return "description"
	case recommendation.KindSitelink:
		return "sitelink link text"
	default:
		return string(kind)
	}
}

// parseVariants decodes a JSON array of strings, tolerating a markdown code
// fence around it.
func parseVariants(output string) ([]string, error) {
	output = strings.TrimSpace(output)
	if strings.HasPrefix(output, "```") {
		output = strings.TrimPrefix(output, "```json")
		output = strings.TrimPrefix(output, "```")
		output = strings.TrimSuffix(strings.TrimSpace(output), "```")
		output = strings.TrimSpace(output)
	}

	var variants []string
	if err := json.Unmarshal([]byte(output), &variants); err != nil {
		return nil, fmt.Errorf("provider output is not a JSON string array: %w", err)
	}
	if len(variants) == 0 {
		return nil, fmt.Errorf("provider output is an empty array")
	}
	return variants, nil
}

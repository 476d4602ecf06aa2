package googleads

import (
	"context"
	"fmt"
	"strings"
)

// KeywordIdea is one keyword suggestion with planner metrics.
type KeywordIdea struct {
	Text               string
	AvgMonthlySearches int64
	Competition        string
}

// KeywordIdeaInput configures one generateKeywordIdeas call. At least one
// of SeedKeywords or PageURL must be set.
type KeywordIdeaInput struct {
	SeedKeywords []string
	PageURL      string
	// LanguageConstant is a languageConstants/N resource name. Optional.
	LanguageConstant string
	// GeoTargetConstants are geoTargetConstants/N resource names. Optional.
	GeoTargetConstants []string
}

type keywordSeed struct {
	Keywords []string `json:"keywords"`
}

type urlSeed struct {
	URL string `json:"url"`
}

type keywordAndURLSeed struct {
	Keywords []string `json:"keywords"`
	URL      string   `json:"url"`
}

type keywordIdeasRequest struct {
	Language           string             `json:"language,omitempty"`
	GeoTargetConstants []string           `json:"geoTargetConstants,omitempty"`
	KeywordSeed        *keywordSeed       `json:"keywordSeed,omitempty"`
	URLSeed            *urlSeed           `json:"urlSeed,omitempty"`
	KeywordAndURLSeed  *keywordAndURLSeed `json:"keywordAndUrlSeed,omitempty"`
}

type keywordIdeasResponse struct {
	Results []struct {
		Text    string `json:"text"`
		Metrics *struct {
			AvgMonthlySearches int64  `json:"avgMonthlySearches,string"`
			Competition        string `json:"competition"`
		} `json:"keywordIdeaMetrics"`
	} `json:"results"`
	NextPageToken string `json:"nextPageToken"`
}

// GenerateKeywordIdeas runs keyword research from seed keywords and/or a
// landing page URL.
func (c *Client) GenerateKeywordIdeas(ctx context.Context, customerID string, input KeywordIdeaInput) ([]KeywordIdea, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, fmt.Errorf("customer id is required")
	}

	seeds := make([]string, 0, len(input.SeedKeywords))
	for _, seed := range input.SeedKeywords {
		if seed = strings.TrimSpace(seed); seed != "" {
			seeds = append(seeds, seed)
		}
	}
	pageURL := strings.TrimSpace(input.PageURL)
	if len(seeds) == 0 && pageURL == "" {
		return nil, fmt.Errorf("seed keywords or a page url is required")
	}

	request := keywordIdeasRequest{
		Language:           strings.TrimSpace(input.LanguageConstant),
		GeoTargetConstants: input.GeoTargetConstants,
	}
	switch {
	case len(seeds) > 0 && pageURL != "":
		request.KeywordAndURLSeed = &keywordAndURLSeed{Keywords: seeds, URL: pageURL}
	case len(seeds) > 0:
		request.KeywordSeed = &keywordSeed{Keywords: seeds}
	default:
		request.URLSeed = &urlSeed{URL: pageURL}
	}

	path := fmt.Sprintf("/customers/%s:generateKeywordIdeas", customerID)
	var response keywordIdeasResponse
	if err := c.post(ctx, path, request, &response); err != nil {
		return nil, fmt.Errorf("generate keyword ideas: %w", err)
	}

	ideas := make([]KeywordIdea, 0, len(response.Results))
	for _, result := range response.Results {
		text := strings.TrimSpace(result.Text)
		if text == "" {
			continue
		}
		idea := KeywordIdea{Text: text}
		if result.Metrics != nil {
			idea.AvgMonthlySearches = result.Metrics.AvgMonthlySearches
			idea.Competition = result.Metrics.Competition
		}
		ideas = append(ideas, idea)
	}
	return ideas, nil
}

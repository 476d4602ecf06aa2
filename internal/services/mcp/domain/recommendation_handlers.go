package domain

import (
	"context"
	"fmt"
	"strings"

	adsv1 "github.com/adpilot/adpilot/api/gen/go/ads/v1"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RecommendationCreateTool describes the recommendation drafting tool.
func RecommendationCreateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "recommendation_create",
		Description: "Drafts a campaign-change recommendation for review. New recommendations start PENDING.",
	}
}

// RecommendationCreateHandler executes a recommendation creation request.
func RecommendationCreateHandler(client adsv1.AdsServiceClient) mcp.ToolHandlerFor[RecommendationCreateInput, RecommendationResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RecommendationCreateInput) (*mcp.CallToolResult, RecommendationResult, error) {
		callCtx, cancel := context.WithTimeout(ctx, grpcCallTimeout)
		defer cancel()

		rec, err := client.CreateRecommendation(callCtx, &adsv1.CreateRecommendationRequest{
			Recommendation: &adsv1.Recommendation{
				AccountId:  input.AccountID,
				CampaignId: input.CampaignID,
				AdGroupId:  input.AdGroupID,
				Channel:    channelFromString(input.Channel),
				Kind:       kindFromString(input.Kind),
				Action:     actionFromString(input.Action),
				Value:      input.Value,
				Attributes: input.Attributes,
				Source:     input.Source,
			},
		})
		if err != nil {
			return nil, RecommendationResult{}, fmt.Errorf("recommendation create failed: %w", err)
		}
		if rec == nil {
			return nil, RecommendationResult{}, fmt.Errorf("recommendation create response is missing")
		}
		return nil, recommendationResultFromProto(rec), nil
	}
}

// RecommendationListTool describes the recommendation listing tool.
func RecommendationListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "recommendation_list",
		Description: "Lists recommendations for an account with an optional AIP-160 filter, e.g. status = \"approved\" AND channel = \"google\".",
	}
}

// RecommendationListHandler executes a recommendation listing request.
func RecommendationListHandler(client adsv1.AdsServiceClient) mcp.ToolHandlerFor[RecommendationListInput, RecommendationListResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RecommendationListInput) (*mcp.CallToolResult, RecommendationListResult, error) {
		callCtx, cancel := context.WithTimeout(ctx, grpcCallTimeout)
		defer cancel()

		response, err := client.ListRecommendations(callCtx, &adsv1.ListRecommendationsRequest{
			AccountId: input.AccountID,
			Filter:    input.Filter,
			PageSize:  int32(input.PageSize),
			PageToken: input.PageToken,
		})
		if err != nil {
			return nil, RecommendationListResult{}, fmt.Errorf("recommendation list failed: %w", err)
		}
		if response == nil {
			return nil, RecommendationListResult{}, fmt.Errorf("recommendation list response is missing")
		}

		result := RecommendationListResult{NextPageToken: response.GetNextPageToken()}
		for _, rec := range response.GetRecommendations() {
			result.Recommendations = append(result.Recommendations, recommendationResultFromProto(rec))
		}
		return nil, result, nil
	}
}

// RecommendationApproveTool describes the recommendation approval tool.
func RecommendationApproveTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "recommendation_approve",
		Description: "Approves a PENDING recommendation so an apply run can pick it up.",
	}
}

// RecommendationApproveHandler executes a recommendation approval request.
func RecommendationApproveHandler(client adsv1.AdsServiceClient) mcp.ToolHandlerFor[RecommendationReviewInput, RecommendationResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RecommendationReviewInput) (*mcp.CallToolResult, RecommendationResult, error) {
		if strings.TrimSpace(input.RecommendationID) == "" {
			return nil, RecommendationResult{}, fmt.Errorf("recommendation_id is required")
		}

		callCtx, cancel := context.WithTimeout(ctx, grpcCallTimeout)
		defer cancel()

		rec, err := client.ApproveRecommendation(callCtx, &adsv1.ApproveRecommendationRequest{
			RecommendationId: input.RecommendationID,
		})
		if err != nil {
			return nil, RecommendationResult{}, fmt.Errorf("recommendation approve failed: %w", err)
		}
		if rec == nil {
			return nil, RecommendationResult{}, fmt.Errorf("recommendation approve response is missing")
		}
		return nil, recommendationResultFromProto(rec), nil
	}
}

// RecommendationRejectTool describes the recommendation rejection tool.
func RecommendationRejectTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "recommendation_reject",
		Description: "Rejects a recommendation with a reason. Rejected recommendations are terminal.",
	}
}

// RecommendationRejectHandler executes a recommendation rejection request.
func RecommendationRejectHandler(client adsv1.AdsServiceClient) mcp.ToolHandlerFor[RecommendationReviewInput, RecommendationResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RecommendationReviewInput) (*mcp.CallToolResult, RecommendationResult, error) {
		if strings.TrimSpace(input.RecommendationID) == "" {
			return nil, RecommendationResult{}, fmt.Errorf("recommendation_id is required")
		}
		if strings.TrimSpace(input.Reason) == "" {
			return nil, RecommendationResult{}, fmt.Errorf("reason is required")
		}

		callCtx, cancel := context.WithTimeout(ctx, grpcCallTimeout)
		defer cancel()

		rec, err := client.RejectRecommendation(callCtx, &adsv1.RejectRecommendationRequest{
			RecommendationId: input.RecommendationID,
			Reason:           input.Reason,
		})
		if err != nil {
			return nil, RecommendationResult{}, fmt.Errorf("recommendation reject failed: %w", err)
		}
		if rec == nil {
			return nil, RecommendationResult{}, fmt.Errorf("recommendation reject response is missing")
		}
		return nil, recommendationResultFromProto(rec), nil
	}
}

// CopyGenerateTool describes the ad copy generation tool.
func CopyGenerateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "copy_generate",
		Description: "Generates headline and description drafts from a brief and stores them as DRAFT recommendations.",
	}
}

// CopyGenerateHandler executes an ad copy generation request.
func CopyGenerateHandler(client adsv1.AdsServiceClient) mcp.ToolHandlerFor[CopyGenerateInput, CopyGenerateResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CopyGenerateInput) (*mcp.CallToolResult, CopyGenerateResult, error) {
		callCtx, cancel := context.WithTimeout(ctx, grpcCallTimeout)
		defer cancel()

		response, err := client.GenerateCopy(callCtx, &adsv1.GenerateCopyRequest{
			AccountId:        input.AccountID,
			CampaignId:       input.CampaignID,
			AdGroupId:        input.AdGroupID,
			Brief:            input.Brief,
			HeadlineCount:    int32(input.HeadlineCount),
			DescriptionCount: int32(input.DescriptionCount),
		})
		if err != nil {
			return nil, CopyGenerateResult{}, fmt.Errorf("copy generate failed: %w", err)
		}
		if response == nil {
			return nil, CopyGenerateResult{}, fmt.Errorf("copy generate response is missing")
		}

		result := CopyGenerateResult{}
		for _, draft := range response.GetDrafts() {
			result.Drafts = append(result.Drafts, recommendationResultFromProto(draft))
		}
		return nil, result, nil
	}
}

// KeywordIdeasTool describes the keyword idea generation tool.
func KeywordIdeasTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "keyword_ideas_generate",
		Description: "Generates keyword ideas from seed keywords or a landing page using the Google Ads keyword planner.",
	}
}

// KeywordIdeasHandler executes a keyword idea generation request.
func KeywordIdeasHandler(client adsv1.AdsServiceClient) mcp.ToolHandlerFor[KeywordIdeasInput, KeywordIdeasResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input KeywordIdeasInput) (*mcp.CallToolResult, KeywordIdeasResult, error) {
		callCtx, cancel := context.WithTimeout(ctx, grpcCallTimeout)
		defer cancel()

		response, err := client.GenerateKeywordIdeas(callCtx, &adsv1.GenerateKeywordIdeasRequest{
			AccountId:          input.AccountID,
			SeedKeywords:       input.SeedKeywords,
			PageUrl:            input.PageURL,
			LanguageConstant:   input.LanguageConstant,
			GeoTargetConstants: input.GeoTargetConstants,
		})
		if err != nil {
			return nil, KeywordIdeasResult{}, fmt.Errorf("keyword ideas failed: %w", err)
		}
		if response == nil {
			return nil, KeywordIdeasResult{}, fmt.Errorf("keyword ideas response is missing")
		}

		result := KeywordIdeasResult{}
		for _, idea := range response.GetIdeas() {
			result.Ideas = append(result.Ideas, KeywordIdeaEntry{
				Text:               idea.GetText(),
				AvgMonthlySearches: idea.GetAvgMonthlySearches(),
				Competition:        idea.GetCompetition(),
			})
		}
		return nil, result, nil
	}
}

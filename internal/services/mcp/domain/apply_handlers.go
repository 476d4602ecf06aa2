package domain

import (
	"context"
	"fmt"
	"strings"

	adsv1 "github.com/adpilot/adpilot/api/gen/go/ads/v1"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ApplyTool describes the apply run tool.
func ApplyTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "recommendations_apply",
		Description: "Applies APPROVED recommendations to the vendor APIs. Empty recommendation_ids applies every approved one on the account.",
	}
}

// ApplyHandler executes an apply run request. Apply runs fan out to vendor
// APIs, so they use a longer call timeout than the other tools.
func ApplyHandler(client adsv1.AdsServiceClient) mcp.ToolHandlerFor[ApplyInput, ApplyResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ApplyInput) (*mcp.CallToolResult, ApplyResult, error) {
		if strings.TrimSpace(input.AccountID) == "" {
			return nil, ApplyResult{}, fmt.Errorf("account_id is required")
		}

		callCtx, cancel := context.WithTimeout(ctx, grpcApplyTimeout)
		defer cancel()

		response, err := client.ApplyRecommendations(callCtx, &adsv1.ApplyRecommendationsRequest{
			AccountId:         input.AccountID,
			RecommendationIds: input.RecommendationIDs,
			PartialFailure:    input.PartialFailure,
			ValidateOnly:      input.ValidateOnly,
		})
		if err != nil {
			return nil, ApplyResult{}, fmt.Errorf("apply failed: %w", err)
		}
		if response == nil {
			return nil, ApplyResult{}, fmt.Errorf("apply response is missing")
		}

		result := ApplyResult{
			ApplyID:      response.GetApplyId(),
			AppliedCount: int(response.GetAppliedCount()),
			FailedCount:  int(response.GetFailedCount()),
		}
		for _, outcome := range response.GetOutcomes() {
			result.Outcomes = append(result.Outcomes, OperationOutcomeEntry{
				RecommendationID: outcome.GetRecommendationId(),
				OperationIndex:   int(outcome.GetOperationIndex()),
				ResourceName:     outcome.GetResourceName(),
				Succeeded:        outcome.GetSucceeded(),
				ErrorMessage:     outcome.GetErrorMessage(),
			})
		}
		return nil, result, nil
	}
}

// ApplyResultsListTool describes the apply audit listing tool.
func ApplyResultsListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "apply_results_list",
		Description: "Lists per-operation audit rows from past apply runs, newest first.",
	}
}

// ApplyResultsListHandler executes an apply audit listing request.
func ApplyResultsListHandler(client adsv1.AdsServiceClient) mcp.ToolHandlerFor[ApplyResultsListInput, ApplyResultsListResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ApplyResultsListInput) (*mcp.CallToolResult, ApplyResultsListResult, error) {
		callCtx, cancel := context.WithTimeout(ctx, grpcCallTimeout)
		defer cancel()

		response, err := client.ListApplyResults(callCtx, &adsv1.ListApplyResultsRequest{
			AccountId: input.AccountID,
			PageSize:  int32(input.PageSize),
			PageToken: input.PageToken,
		})
		if err != nil {
			return nil, ApplyResultsListResult{}, fmt.Errorf("apply results list failed: %w", err)
		}
		if response == nil {
			return nil, ApplyResultsListResult{}, fmt.Errorf("apply results list response is missing")
		}

		result := ApplyResultsListResult{NextPageToken: response.GetNextPageToken()}
		for _, row := range response.GetApplyResults() {
			result.ApplyResults = append(result.ApplyResults, ApplyResultEntry{
				ID:               row.GetId(),
				ApplyID:          row.GetApplyId(),
				AccountID:        row.GetAccountId(),
				RecommendationID: row.GetRecommendationId(),
				OperationIndex:   int(row.GetOperationIndex()),
				ResourceName:     row.GetResourceName(),
				Succeeded:        row.GetSucceeded(),
				ErrorMessage:     row.GetErrorMessage(),
				PartialFailure:   row.GetPartialFailure(),
				ValidateOnly:     row.GetValidateOnly(),
				CreatedAt:        formatTimestamp(row.GetCreateTime()),
			})
		}
		return nil, result, nil
	}
}

package mutation

import (
	"context"
	"fmt"
	"strings"

	"github.com/adpilot/adpilot/internal/services/ads/googleads"
	"github.com/adpilot/adpilot/internal/services/ads/recommendation"
)

// KeywordBuilder compiles keyword and negative-keyword recommendations into
// criterion operations. Positive keywords and ad-group negatives become ad
// group criteria; campaign-scoped negatives become campaign criteria.
type KeywordBuilder struct{}

// Field implements Builder.
func (KeywordBuilder) Field() string { return "keywords" }

// Build implements Builder.
func (KeywordBuilder) Build(ctx context.Context, mctx *Context) (BuildResult, error) {
	recs := mctx.ByKind(recommendation.KindKeyword, recommendation.KindNegativeKeyword)
	if len(recs) == 0 {
		return BuildResult{}, nil
	}
	if err := ctx.Err(); err != nil {
		return BuildResult{}, err
	}

	var result BuildResult
	// Dedup within the batch: the same keyword text and match type produces
	// one operation no matter how many recommendations carry it.
	seen := make(map[string]struct{})

	for _, rec := range recs {
		if rec.Action == recommendation.ActionRemove {
			operation, err := keywordRemoval(rec)
			if err != nil {
				return BuildResult{}, err
			}
			result.Operations = append(result.Operations, operation)
			continue
		}

		matchType := strings.ToUpper(rec.Attribute(recommendation.AttrMatchType))
		if matchType == "" {
			matchType = "BROAD"
		}
		dedupKey := fmt.Sprintf("%s|%s|%s|%s", rec.Kind, normalizeAssetText(rec.Value), matchType, rec.CampaignID+rec.AdGroupID)
		if _, duplicate := seen[dedupKey]; duplicate {
			result.Skipped = append(result.Skipped, SkippedRecommendation{
				RecommendationID: rec.ID,
				Reason:           fmt.Sprintf("keyword %q duplicates another recommendation in the batch", rec.Value),
			})
			continue
		}
		seen[dedupKey] = struct{}{}

		operation, err := keywordAddition(mctx, rec, matchType)
		if err != nil {
			return BuildResult{}, err
		}
		result.Operations = append(result.Operations, operation)
	}
	return result, nil
}

func keywordRemoval(rec recommendation.Recommendation) (BuiltOperation, error) {
	resourceName := rec.Attribute(recommendation.AttrResourceName)
	if resourceName == "" {
		return BuiltOperation{}, fmt.Errorf("recommendation %s: removal requires a criterion resource name", rec.ID)
	}

	operation := googleads.MutateOperation{}
	if strings.Contains(resourceName, "/campaignCriteria/") {
		operation.CampaignCriterionOperation = &googleads.CampaignCriterionOperation{Remove: resourceName}
	} else {
		operation.AdGroupCriterionOperation = &googleads.AdGroupCriterionOperation{Remove: resourceName}
	}
	return BuiltOperation{RecommendationIDs: []string{rec.ID}, Operation: operation}, nil
}

func keywordAddition(mctx *Context, rec recommendation.Recommendation, matchType string) (BuiltOperation, error) {
	keyword := &googleads.KeywordInfo{
		Text:      strings.TrimSpace(rec.Value),
		MatchType: matchType,
	}

	campaignLevel := strings.EqualFold(rec.Attribute(recommendation.AttrCampaignLevel), "true")
	if rec.Kind == recommendation.KindNegativeKeyword && campaignLevel {
		if strings.TrimSpace(rec.CampaignID) == "" {
			return BuiltOperation{}, fmt.Errorf("recommendation %s: campaign id is required for campaign negatives", rec.ID)
		}
		return BuiltOperation{
			RecommendationIDs: []string{rec.ID},
			Operation: googleads.MutateOperation{
				CampaignCriterionOperation: &googleads.CampaignCriterionOperation{
					Create: &googleads.CampaignCriterion{
						Campaign: mctx.CampaignResource(rec.CampaignID),
						Negative: true,
						Keyword:  keyword,
					},
				},
			},
		}, nil
	}

	if strings.TrimSpace(rec.AdGroupID) == "" {
		return BuiltOperation{}, fmt.Errorf("recommendation %s: ad group id is required for %s", rec.ID, rec.Kind)
	}
	criterion := &googleads.AdGroupCriterion{
		AdGroup: mctx.AdGroupResource(rec.AdGroupID),
		Keyword: keyword,
	}
	if rec.Kind == recommendation.KindNegativeKeyword {
		criterion.Negative = true
	} else {
		criterion.Status = "ENABLED"
	}
	return BuiltOperation{
		RecommendationIDs: []string{rec.ID},
		Operation: googleads.MutateOperation{
			AdGroupCriterionOperation: &googleads.AdGroupCriterionOperation{Create: criterion},
		},
	}, nil
}

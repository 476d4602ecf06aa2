package mutation

import (
	"context"
	"fmt"
	"strings"

	"github.com/adpilot/adpilot/internal/services/ads/googleads"
	"github.com/adpilot/adpilot/internal/services/ads/recommendation"
)

// SitelinkBuilder compiles sitelink recommendations into asset creations
// and campaign-asset links.
//
// Each addition produces two operations: an asset create carrying a
// temporary resource ID, and a campaign-asset link referencing that
// temporary ID within the same batch.
type SitelinkBuilder struct{}

// Field implements Builder.
func (SitelinkBuilder) Field() string { return "sitelinks" }

// Build implements Builder.
func (SitelinkBuilder) Build(ctx context.Context, mctx *Context) (BuildResult, error) {
	recs := mctx.ByKind(recommendation.KindSitelink)
	if len(recs) == 0 {
		return BuildResult{}, nil
	}
	if err := ctx.Err(); err != nil {
		return BuildResult{}, err
	}

	var result BuildResult
	seen := make(map[string]struct{})

	for _, rec := range recs {
		if rec.Action == recommendation.ActionRemove {
			resourceName := rec.Attribute(recommendation.AttrResourceName)
			if resourceName == "" {
				return BuildResult{}, fmt.Errorf("recommendation %s: sitelink removal requires a campaign asset resource name", rec.ID)
			}
			result.Operations = append(result.Operations, BuiltOperation{
				RecommendationIDs: []string{rec.ID},
				Operation: googleads.MutateOperation{
					CampaignAssetOperation: &googleads.CampaignAssetOperation{Remove: resourceName},
				},
			})
			continue
		}

		if strings.TrimSpace(rec.CampaignID) == "" {
			return BuildResult{}, fmt.Errorf("recommendation %s: campaign id is required for sitelinks", rec.ID)
		}

		normalized := normalizeAssetText(rec.Value)
		if _, duplicate := seen[normalized]; duplicate {
			result.Skipped = append(result.Skipped, SkippedRecommendation{
				RecommendationID: rec.ID,
				Reason:           fmt.Sprintf("sitelink %q duplicates another recommendation in the batch", rec.Value),
			})
			continue
		}
		seen[normalized] = struct{}{}

		// The asset create and the campaign link share one temporary ID so
		// the link can reference the asset before it exists.
		assetResource := mctx.TempIDs().AssetResourceName(mctx.CustomerID())

		asset := &googleads.Asset{
			ResourceName: assetResource,
			FinalUrls:    []string{rec.Attribute(recommendation.AttrFinalURL)},
			SitelinkAsset: &googleads.SitelinkAsset{
				LinkText:     strings.TrimSpace(rec.Value),
				Description1: rec.Attribute(recommendation.AttrDescriptionLine1),
				Description2: rec.Attribute(recommendation.AttrDescriptionLine2),
			},
		}

		result.Operations = append(result.Operations,
			BuiltOperation{
				RecommendationIDs: []string{rec.ID},
				Operation: googleads.MutateOperation{
					AssetOperation: &googleads.AssetOperation{Create: asset},
				},
			},
			BuiltOperation{
				RecommendationIDs: []string{rec.ID},
				Operation: googleads.MutateOperation{
					CampaignAssetOperation: &googleads.CampaignAssetOperation{
						Create: &googleads.CampaignAsset{
							Campaign:  mctx.CampaignResource(rec.CampaignID),
							Asset:     assetResource,
							FieldType: "SITELINK",
						},
					},
				},
			},
		)
	}
	return result, nil
}

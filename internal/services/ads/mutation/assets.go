package mutation

import (
	"context"
	"fmt"
	"strings"

	"github.com/adpilot/adpilot/internal/services/ads/googleads"
	"github.com/adpilot/adpilot/internal/services/ads/recommendation"
)

// TextAssetBuilder merges headline and description recommendations into
// responsive search ad updates.
//
// All text recommendations for one ad group collapse into a single ad
// operation: the existing assets are merged with additions, removals are
// filtered out, and duplicates (by normalized text) are skipped rather than
// sent to the vendor.
type TextAssetBuilder struct{}

// Field implements Builder.
func (TextAssetBuilder) Field() string { return "text_assets" }

// Build implements Builder.
func (TextAssetBuilder) Build(ctx context.Context, mctx *Context) (BuildResult, error) {
	recs := mctx.ByKind(recommendation.KindHeadline, recommendation.KindDescription)
	if len(recs) == 0 {
		return BuildResult{}, nil
	}
	if err := ctx.Err(); err != nil {
		return BuildResult{}, err
	}

	byAdGroup := make(map[string][]recommendation.Recommendation)
	var adGroupOrder []string
	for _, rec := range recs {
		if strings.TrimSpace(rec.AdGroupID) == "" {
			return BuildResult{}, fmt.Errorf("recommendation %s: ad group id is required for %s", rec.ID, rec.Kind)
		}
		if _, seen := byAdGroup[rec.AdGroupID]; !seen {
			adGroupOrder = append(adGroupOrder, rec.AdGroupID)
		}
		byAdGroup[rec.AdGroupID] = append(byAdGroup[rec.AdGroupID], rec)
	}

	var result BuildResult
	for _, adGroupID := range adGroupOrder {
		operation, skipped, err := buildAdTextUpdate(mctx, adGroupID, byAdGroup[adGroupID])
		if err != nil {
			return BuildResult{}, err
		}
		if operation != nil {
			result.Operations = append(result.Operations, *operation)
		}
		result.Skipped = append(result.Skipped, skipped...)
	}
	return result, nil
}

func buildAdTextUpdate(mctx *Context, adGroupID string, recs []recommendation.Recommendation) (*BuiltOperation, []SkippedRecommendation, error) {
	ads := mctx.AdsForAdGroup(adGroupID)
	if len(ads) == 0 {
		return nil, nil, fmt.Errorf("ad group %s has no responsive search ad to update", adGroupID)
	}
	// The first ad is the canonical target; multi-ad rotation is managed by
	// the vendor, not this service.
	target := ads[0]
	if target.ResponsiveSearchAd == nil {
		return nil, nil, fmt.Errorf("ad %s is missing responsive search ad info", target.ResourceName)
	}

	headlines, skippedHeadlines, headlinesChanged, err := mergeTextAssets(
		target.ResponsiveSearchAd.Headlines,
		filterKind(recs, recommendation.KindHeadline),
		MaxHeadlinesPerAd,
		MinHeadlinesPerAd,
		"headline",
	)
	if err != nil {
		return nil, nil, err
	}
	descriptions, skippedDescriptions, descriptionsChanged, err := mergeTextAssets(
		target.ResponsiveSearchAd.Descriptions,
		filterKind(recs, recommendation.KindDescription),
		MaxDescriptionsPerAd,
		MinDescriptionsPerAd,
		"description",
	)
	if err != nil {
		return nil, nil, err
	}

	skipped := append(skippedHeadlines, skippedDescriptions...)
	if !headlinesChanged && !descriptionsChanged {
		return nil, skipped, nil
	}

	var recIDs []string
	skippedIDs := make(map[string]struct{}, len(skipped))
	for _, skip := range skipped {
		skippedIDs[skip.RecommendationID] = struct{}{}
	}
	for _, rec := range recs {
		if _, ok := skippedIDs[rec.ID]; ok {
			continue
		}
		recIDs = append(recIDs, rec.ID)
	}

	var maskPaths []string
	if headlinesChanged {
		maskPaths = append(maskPaths, "responsive_search_ad.headlines")
	}
	if descriptionsChanged {
		maskPaths = append(maskPaths, "responsive_search_ad.descriptions")
	}

	operation := &BuiltOperation{
		RecommendationIDs: recIDs,
		Operation: googleads.MutateOperation{
			AdOperation: &googleads.AdOperation{
				Update: &googleads.Ad{
					ResourceName: target.ResourceName,
					ResponsiveSearchAd: &googleads.ResponsiveSearchAdInfo{
						Headlines:    headlines,
						Descriptions: descriptions,
					},
				},
				UpdateMask: strings.Join(maskPaths, ","),
			},
		},
	}
	return operation, skipped, nil
}

// mergeTextAssets applies additions and removals against existing assets,
// deduplicating by normalized text. It reports whether the merged set
// differs from the existing one.
func mergeTextAssets(existing []googleads.TextAsset, recs []recommendation.Recommendation, maxCount, minCount int, label string) ([]googleads.TextAsset, []SkippedRecommendation, bool, error) {
	merged := make([]googleads.TextAsset, len(existing))
	copy(merged, existing)

	present := make(map[string]struct{}, len(merged))
	for _, asset := range merged {
		present[normalizeAssetText(asset.Text)] = struct{}{}
	}

	var skipped []SkippedRecommendation
	changed := false

	for _, rec := range recs {
		normalized := normalizeAssetText(rec.Value)
		switch rec.Action {
		case recommendation.ActionRemove:
			if _, ok := present[normalized]; !ok {
				skipped = append(skipped, SkippedRecommendation{
					RecommendationID: rec.ID,
					Reason:           fmt.Sprintf("%s %q is not on the ad", label, rec.Value),
				})
				continue
			}
			kept := merged[:0]
			for _, asset := range merged {
				if normalizeAssetText(asset.Text) != normalized {
					kept = append(kept, asset)
				}
			}
			merged = kept
			delete(present, normalized)
			changed = true
		default:
			if _, ok := present[normalized]; ok {
				skipped = append(skipped, SkippedRecommendation{
					RecommendationID: rec.ID,
					Reason:           fmt.Sprintf("%s %q duplicates an existing asset", label, rec.Value),
				})
				continue
			}
			asset := googleads.TextAsset{
				Text:        strings.TrimSpace(rec.Value),
				PinnedField: strings.ToUpper(rec.Attribute(recommendation.AttrPinnedField)),
			}
			merged = append(merged, asset)
			present[normalized] = struct{}{}
			changed = true
		}
	}

	if len(merged) > maxCount {
		return nil, nil, false, fmt.Errorf("merged %s count %d exceeds limit %d", label, len(merged), maxCount)
	}
	if changed && len(merged) < minCount {
		return nil, nil, false, fmt.Errorf("merged %s count %d is below minimum %d", label, len(merged), minCount)
	}
	return merged, skipped, changed, nil
}

func filterKind(recs []recommendation.Recommendation, kind recommendation.Kind) []recommendation.Recommendation {
	var matched []recommendation.Recommendation
	for _, rec := range recs {
		if rec.Kind == kind {
			matched = append(matched, rec)
		}
	}
	return matched
}

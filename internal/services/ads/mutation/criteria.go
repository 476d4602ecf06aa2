package mutation

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/adpilot/adpilot/internal/services/ads/googleads"
	"github.com/adpilot/adpilot/internal/services/ads/recommendation"
)

// TargetingBuilder compiles demographic and geographic recommendations.
// Age ranges and genders are ad-group criteria; locations and proximity
// targets are campaign criteria.
type TargetingBuilder struct{}

// Field implements Builder.
func (TargetingBuilder) Field() string { return "targeting" }

// Build implements Builder.
func (TargetingBuilder) Build(ctx context.Context, mctx *Context) (BuildResult, error) {
	recs := mctx.ByKind(
		recommendation.KindAgeRange,
		recommendation.KindGender,
		recommendation.KindLocation,
		recommendation.KindProximity,
	)
	if len(recs) == 0 {
		return BuildResult{}, nil
	}
	if err := ctx.Err(); err != nil {
		return BuildResult{}, err
	}

	var result BuildResult
	for _, rec := range recs {
		if rec.Action == recommendation.ActionRemove {
			operation, err := criterionRemoval(rec)
			if err != nil {
				return BuildResult{}, err
			}
			result.Operations = append(result.Operations, operation)
			continue
		}

		var (
			operation BuiltOperation
			err       error
		)
		switch rec.Kind {
		case recommendation.KindAgeRange:
			operation, err = demographicAddition(mctx, rec, &googleads.AdGroupCriterion{
				AgeRange: &googleads.AgeRangeInfo{Type: strings.ToUpper(strings.TrimSpace(rec.Value))},
			})
		case recommendation.KindGender:
			operation, err = demographicAddition(mctx, rec, &googleads.AdGroupCriterion{
				Gender: &googleads.GenderInfo{Type: strings.ToUpper(strings.TrimSpace(rec.Value))},
			})
		case recommendation.KindLocation:
			operation, err = locationAddition(mctx, rec)
		case recommendation.KindProximity:
			operation, err = proximityAddition(mctx, rec)
		}
		if err != nil {
			return BuildResult{}, err
		}
		result.Operations = append(result.Operations, operation)
	}
	return result, nil
}

func criterionRemoval(rec recommendation.Recommendation) (BuiltOperation, error) {
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

func demographicAddition(mctx *Context, rec recommendation.Recommendation, criterion *googleads.AdGroupCriterion) (BuiltOperation, error) {
	if strings.TrimSpace(rec.AdGroupID) == "" {
		return BuiltOperation{}, fmt.Errorf("recommendation %s: ad group id is required for %s", rec.ID, rec.Kind)
	}
	criterion.AdGroup = mctx.AdGroupResource(rec.AdGroupID)
	return BuiltOperation{
		RecommendationIDs: []string{rec.ID},
		Operation: googleads.MutateOperation{
			AdGroupCriterionOperation: &googleads.AdGroupCriterionOperation{Create: criterion},
		},
	}, nil
}

func locationAddition(mctx *Context, rec recommendation.Recommendation) (BuiltOperation, error) {
	if strings.TrimSpace(rec.CampaignID) == "" {
		return BuiltOperation{}, fmt.Errorf("recommendation %s: campaign id is required for locations", rec.ID)
	}
	return BuiltOperation{
		RecommendationIDs: []string{rec.ID},
		Operation: googleads.MutateOperation{
			CampaignCriterionOperation: &googleads.CampaignCriterionOperation{
				Create: &googleads.CampaignCriterion{
					Campaign: mctx.CampaignResource(rec.CampaignID),
					Location: &googleads.LocationInfo{
						GeoTargetConstant: "geoTargetConstants/" + strings.TrimSpace(rec.Value),
					},
				},
			},
		},
	}, nil
}

func proximityAddition(mctx *Context, rec recommendation.Recommendation) (BuiltOperation, error) {
	if strings.TrimSpace(rec.CampaignID) == "" {
		return BuiltOperation{}, fmt.Errorf("recommendation %s: campaign id is required for proximity targets", rec.ID)
	}

	radius, err := strconv.ParseFloat(rec.Attribute(recommendation.AttrRadius), 64)
	if err != nil {
		return BuiltOperation{}, fmt.Errorf("recommendation %s: parse radius: %w", rec.ID, err)
	}
	latitude, err := strconv.ParseFloat(rec.Attribute(recommendation.AttrLatitude), 64)
	if err != nil {
		return BuiltOperation{}, fmt.Errorf("recommendation %s: parse latitude: %w", rec.ID, err)
	}
	longitude, err := strconv.ParseFloat(rec.Attribute(recommendation.AttrLongitude), 64)
	if err != nil {
		return BuiltOperation{}, fmt.Errorf("recommendation %s: parse longitude: %w", rec.ID, err)
	}

	return BuiltOperation{
		RecommendationIDs: []string{rec.ID},
		Operation: googleads.MutateOperation{
			CampaignCriterionOperation: &googleads.CampaignCriterionOperation{
				Create: &googleads.CampaignCriterion{
					Campaign: mctx.CampaignResource(rec.CampaignID),
					Proximity: &googleads.ProximityInfo{
						GeoPoint: &googleads.GeoPoint{
							LatitudeInMicroDegrees:  int64(math.Round(latitude * 1e6)),
							LongitudeInMicroDegrees: int64(math.Round(longitude * 1e6)),
						},
						Radius:      radius,
						RadiusUnits: strings.ToUpper(rec.Attribute(recommendation.AttrRadiusUnits)),
					},
				},
			},
		},
	}, nil
}

package meta

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/adpilot/adpilot/internal/services/ads/recommendation"
)

// GraphAPI is the client surface the applier needs.
type GraphAPI interface {
	AdSet(ctx context.Context, adSetID string) (AdSet, error)
	UpdateTargeting(ctx context.Context, adSetID string, targeting Targeting) error
	AdCreative(ctx context.Context, adID string) (Creative, error)
	CreateCreative(ctx context.Context, accountID string, creative Creative) (string, error)
	SwapCreative(ctx context.Context, adID, creativeID string) error
}

// Applier applies Meta-channel recommendations one at a time. The Graph API
// has no batch mutate, so there is no orchestration layer here: each
// recommendation maps to one or two sequential calls.
type Applier struct {
	api GraphAPI
}

// NewApplier builds an applier over a Graph API client.
func NewApplier(api GraphAPI) (*Applier, error) {
	if api == nil {
		return nil, fmt.Errorf("graph api client is required")
	}
	return &Applier{api: api}, nil
}

// Outcome reports what happened to one recommendation.
type Outcome struct {
	RecommendationID string
	Succeeded        bool
	ErrorMessage     string
}

// Apply walks the batch in order, isolating per-recommendation failures.
// accountID is the numeric ad account ID.
func (a *Applier) Apply(ctx context.Context, accountID string, recs []recommendation.Recommendation) ([]Outcome, error) {
	if strings.TrimSpace(accountID) == "" {
		return nil, fmt.Errorf("account id is required")
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("at least one recommendation is required")
	}

	outcomes := make([]Outcome, 0, len(recs))
	for _, rec := range recs {
		if rec.Channel != recommendation.ChannelMeta {
			return nil, fmt.Errorf("recommendation %s targets channel %q, want %q", rec.ID, rec.Channel, recommendation.ChannelMeta)
		}
		if err := ctx.Err(); err != nil {
			return outcomes, err
		}

		if err := a.applyOne(ctx, accountID, rec); err != nil {
			outcomes = append(outcomes, Outcome{RecommendationID: rec.ID, ErrorMessage: err.Error()})
			continue
		}
		outcomes = append(outcomes, Outcome{RecommendationID: rec.ID, Succeeded: true})
	}
	return outcomes, nil
}

func (a *Applier) applyOne(ctx context.Context, accountID string, rec recommendation.Recommendation) error {
	switch rec.Kind {
	case recommendation.KindHeadline, recommendation.KindDescription:
		return a.applyCreativeText(ctx, accountID, rec)
	case recommendation.KindAgeRange:
		return a.applyAgeRange(ctx, rec)
	case recommendation.KindGender:
		return a.applyGender(ctx, rec)
	case recommendation.KindLocation:
		return a.applyLocation(ctx, rec)
	case recommendation.KindProximity:
		return a.applyProximity(ctx, rec)
	default:
		return fmt.Errorf("kind %s is not supported on the meta channel", rec.Kind)
	}
}

// applyCreativeText swaps the ad's creative for one with the new text.
// Creatives are immutable, so an edit is create-then-swap.
func (a *Applier) applyCreativeText(ctx context.Context, accountID string, rec recommendation.Recommendation) error {
	adID := rec.AdGroupID
	if strings.TrimSpace(adID) == "" {
		return fmt.Errorf("ad id is required for %s", rec.Kind)
	}

	current, err := a.api.AdCreative(ctx, adID)
	if err != nil {
		return err
	}

	next := current
	next.ID = ""
	switch rec.Kind {
	case recommendation.KindHeadline:
		next.Title = strings.TrimSpace(rec.Value)
	case recommendation.KindDescription:
		next.Body = strings.TrimSpace(rec.Value)
	}

	creativeID, err := a.api.CreateCreative(ctx, accountID, next)
	if err != nil {
		return err
	}
	return a.api.SwapCreative(ctx, adID, creativeID)
}

// metaAgeBounds maps the shared age-range vocabulary onto Graph API
// age_min/age_max. Meta caps age_max at 65.
var metaAgeBounds = map[string][2]int{
	"AGE_RANGE_18_24": {18, 24},
	"AGE_RANGE_25_34": {25, 34},
	"AGE_RANGE_35_44": {35, 44},
	"AGE_RANGE_45_54": {45, 54},
	"AGE_RANGE_55_64": {55, 64},
	"AGE_RANGE_65_UP": {65, 65},
}

func (a *Applier) applyAgeRange(ctx context.Context, rec recommendation.Recommendation) error {
	bounds, ok := metaAgeBounds[strings.ToUpper(strings.TrimSpace(rec.Value))]
	if !ok {
		return fmt.Errorf("age range %q has no meta equivalent", rec.Value)
	}
	return a.updateTargeting(ctx, rec, func(targeting *Targeting) {
		// Widen rather than replace so stacked age recommendations compose.
		if targeting.AgeMin == 0 || bounds[0] < targeting.AgeMin {
			targeting.AgeMin = bounds[0]
		}
		if bounds[1] > targeting.AgeMax {
			targeting.AgeMax = bounds[1]
		}
	})
}

func (a *Applier) applyGender(ctx context.Context, rec recommendation.Recommendation) error {
	var gender int
	switch strings.ToUpper(strings.TrimSpace(rec.Value)) {
	case "MALE":
		gender = 1
	case "FEMALE":
		gender = 2
	case "UNDETERMINED":
		// All genders: clear the restriction.
		return a.updateTargeting(ctx, rec, func(targeting *Targeting) {
			targeting.Genders = nil
		})
	default:
		return fmt.Errorf("gender %q has no meta equivalent", rec.Value)
	}
	return a.updateTargeting(ctx, rec, func(targeting *Targeting) {
		for _, existing := range targeting.Genders {
			if existing == gender {
				return
			}
		}
		targeting.Genders = append(targeting.Genders, gender)
	})
}

func (a *Applier) applyLocation(ctx context.Context, rec recommendation.Recommendation) error {
	country := strings.ToUpper(strings.TrimSpace(rec.Value))
	if len(country) != 2 {
		return fmt.Errorf("meta location targeting takes a two-letter country code, got %q", rec.Value)
	}
	return a.updateTargeting(ctx, rec, func(targeting *Targeting) {
		if targeting.GeoLocations == nil {
			targeting.GeoLocations = &GeoLocations{}
		}
		for _, existing := range targeting.GeoLocations.Countries {
			if existing == country {
				return
			}
		}
		targeting.GeoLocations.Countries = append(targeting.GeoLocations.Countries, country)
	})
}

func (a *Applier) applyProximity(ctx context.Context, rec recommendation.Recommendation) error {
	latitude, err := strconv.ParseFloat(rec.Attribute(recommendation.AttrLatitude), 64)
	if err != nil {
		return fmt.Errorf("parse latitude: %w", err)
	}
	longitude, err := strconv.ParseFloat(rec.Attribute(recommendation.AttrLongitude), 64)
	if err != nil {
		return fmt.Errorf("parse longitude: %w", err)
	}
	radius, err := strconv.ParseFloat(rec.Attribute(recommendation.AttrRadius), 64)
	if err != nil {
		return fmt.Errorf("parse radius: %w", err)
	}

	unit := "mile"
	if strings.EqualFold(rec.Attribute(recommendation.AttrRadiusUnits), "kilometers") {
		unit = "kilometer"
	}

	return a.updateTargeting(ctx, rec, func(targeting *Targeting) {
		if targeting.GeoLocations == nil {
			targeting.GeoLocations = &GeoLocations{}
		}
		targeting.GeoLocations.CustomLocations = append(targeting.GeoLocations.CustomLocations, CustomLocation{
			Latitude:     latitude,
			Longitude:    longitude,
			Radius:       radius,
			DistanceUnit: unit,
		})
	})
}

// updateTargeting fetches the current spec, applies the change, and writes
// the whole spec back.
func (a *Applier) updateTargeting(ctx context.Context, rec recommendation.Recommendation, change func(*Targeting)) error {
	adSetID := rec.AdGroupID
	if strings.TrimSpace(adSetID) == "" {
		return fmt.Errorf("ad set id is required for %s", rec.Kind)
	}

	adSet, err := a.api.AdSet(ctx, adSetID)
	if err != nil {
		return err
	}

	targeting := Targeting{}
	if adSet.Targeting != nil {
		targeting = *adSet.Targeting
	}
	change(&targeting)

	return a.api.UpdateTargeting(ctx, adSetID, targeting)
}

package mutation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/adpilot/adpilot/internal/services/ads/recommendation"
)

// Google Ads text and targeting limits enforced before any vendor call.
const (
	MaxHeadlineLength    = 30
	MaxHeadlinesPerAd    = 15
	MinHeadlinesPerAd    = 3
	MaxDescriptionLength = 90
	MaxDescriptionsPerAd = 4
	MinDescriptionsPerAd = 2

	MaxKeywordLength = 80

	MaxSitelinkTextLength        = 25
	MaxSitelinkDescriptionLength = 35

	MaxProximityRadiusMiles      = 500
	MaxProximityRadiusKilometers = 800
)

// ErrInvalidRecommendation marks business-rule violations detected before
// the vendor call.
var ErrInvalidRecommendation = errors.New("invalid recommendation")

var validMatchTypes = map[string]struct{}{
	"exact":  {},
	"phrase": {},
	"broad":  {},
}

var validAgeRanges = map[string]struct{}{
	"AGE_RANGE_18_24":        {},
	"AGE_RANGE_25_34":        {},
	"AGE_RANGE_35_44":        {},
	"AGE_RANGE_45_54":        {},
	"AGE_RANGE_55_64":        {},
	"AGE_RANGE_65_UP":        {},
	"AGE_RANGE_UNDETERMINED": {},
}

var validGenders = map[string]struct{}{
	"MALE":         {},
	"FEMALE":       {},
	"UNDETERMINED": {},
}

// InvalidRecommendation pairs a rejected recommendation with the rule it
// violated.
type InvalidRecommendation struct {
	Recommendation recommendation.Recommendation
	Err            error
}

// ValidateAll splits a batch into buildable and rejected recommendations.
// One invalid recommendation never blocks the rest of the batch.
func ValidateAll(recs []recommendation.Recommendation) (valid []recommendation.Recommendation, invalid []InvalidRecommendation) {
	for _, rec := range recs {
		if err := Validate(rec); err != nil {
			invalid = append(invalid, InvalidRecommendation{Recommendation: rec, Err: err})
			continue
		}
		valid = append(valid, rec)
	}
	return valid, invalid
}

// Validate applies the static business rules for one recommendation.
func Validate(rec recommendation.Recommendation) error {
	switch rec.Kind {
	case recommendation.KindHeadline:
		return validateText(rec, MaxHeadlineLength)
	case recommendation.KindDescription:
		return validateText(rec, MaxDescriptionLength)
	case recommendation.KindKeyword, recommendation.KindNegativeKeyword:
		return validateKeyword(rec)
	case recommendation.KindSitelink:
		return validateSitelink(rec)
	case recommendation.KindAgeRange:
		return validateAgeRange(rec)
	case recommendation.KindGender:
		return validateGender(rec)
	case recommendation.KindLocation:
		return validateLocation(rec)
	case recommendation.KindProximity:
		return validateProximity(rec)
	default:
		return fmt.Errorf("%w: unsupported kind %q", ErrInvalidRecommendation, rec.Kind)
	}
}

func validateText(rec recommendation.Recommendation, maxLength int) error {
	if rec.Action == recommendation.ActionRemove {
		return nil
	}
	text := strings.TrimSpace(rec.Value)
	if text == "" {
		return fmt.Errorf("%w: text is required", ErrInvalidRecommendation)
	}
	if length := len([]rune(text)); length > maxLength {
		return fmt.Errorf("%w: %q is %d characters, limit %d", ErrInvalidRecommendation, text, length, maxLength)
	}
	// Google rejects ad text that shouts.
	if text == strings.ToUpper(text) && strings.ContainsAny(text, "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		return fmt.Errorf("%w: %q is all capitals", ErrInvalidRecommendation, text)
	}
	if strings.Contains(text, "!") && maxLength == MaxHeadlineLength {
		return fmt.Errorf("%w: headlines cannot contain exclamation marks", ErrInvalidRecommendation)
	}
	return nil
}

func validateKeyword(rec recommendation.Recommendation) error {
	if rec.Action == recommendation.ActionRemove {
		if rec.Attribute(recommendation.AttrResourceName) == "" {
			return fmt.Errorf("%w: keyword removal requires %s", ErrInvalidRecommendation, recommendation.AttrResourceName)
		}
		return nil
	}
	text := strings.TrimSpace(rec.Value)
	if text == "" {
		return fmt.Errorf("%w: keyword text is required", ErrInvalidRecommendation)
	}
	if length := len([]rune(text)); length > MaxKeywordLength {
		return fmt.Errorf("%w: keyword %q is %d characters, limit %d", ErrInvalidRecommendation, text, length, MaxKeywordLength)
	}
	if strings.ContainsAny(text, "!@%,*") {
		return fmt.Errorf("%w: keyword %q contains invalid characters", ErrInvalidRecommendation, text)
	}
	if matchType := rec.Attribute(recommendation.AttrMatchType); matchType != "" {
		if _, ok := validMatchTypes[strings.ToLower(matchType)]; !ok {
			return fmt.Errorf("%w: unknown match type %q", ErrInvalidRecommendation, matchType)
		}
	}
	return nil
}

func validateSitelink(rec recommendation.Recommendation) error {
	if rec.Action == recommendation.ActionRemove {
		if rec.Attribute(recommendation.AttrResourceName) == "" {
			return fmt.Errorf("%w: sitelink removal requires %s", ErrInvalidRecommendation, recommendation.AttrResourceName)
		}
		return nil
	}
	text := strings.TrimSpace(rec.Value)
	if text == "" {
		return fmt.Errorf("%w: sitelink text is required", ErrInvalidRecommendation)
	}
	if length := len([]rune(text)); length > MaxSitelinkTextLength {
		return fmt.Errorf("%w: sitelink text %q is %d characters, limit %d", ErrInvalidRecommendation, text, length, MaxSitelinkTextLength)
	}
	for _, key := range []string{recommendation.AttrDescriptionLine1, recommendation.AttrDescriptionLine2} {
		if line := rec.Attribute(key); len([]rune(line)) > MaxSitelinkDescriptionLength {
			return fmt.Errorf("%w: sitelink %s is %d characters, limit %d", ErrInvalidRecommendation, key, len([]rune(line)), MaxSitelinkDescriptionLength)
		}
	}
	finalURL := rec.Attribute(recommendation.AttrFinalURL)
	if finalURL == "" {
		return fmt.Errorf("%w: sitelink requires %s", ErrInvalidRecommendation, recommendation.AttrFinalURL)
	}
	if !strings.HasPrefix(finalURL, "http://") && !strings.HasPrefix(finalURL, "https://") {
		return fmt.Errorf("%w: sitelink url %q must be absolute", ErrInvalidRecommendation, finalURL)
	}
	return nil
}

func validateAgeRange(rec recommendation.Recommendation) error {
	if rec.Action == recommendation.ActionRemove && rec.Attribute(recommendation.AttrResourceName) != "" {
		return nil
	}
	if _, ok := validAgeRanges[strings.ToUpper(strings.TrimSpace(rec.Value))]; !ok {
		return fmt.Errorf("%w: unknown age range %q", ErrInvalidRecommendation, rec.Value)
	}
	return nil
}

func validateGender(rec recommendation.Recommendation) error {
	if rec.Action == recommendation.ActionRemove && rec.Attribute(recommendation.AttrResourceName) != "" {
		return nil
	}
	if _, ok := validGenders[strings.ToUpper(strings.TrimSpace(rec.Value))]; !ok {
		return fmt.Errorf("%w: unknown gender %q", ErrInvalidRecommendation, rec.Value)
	}
	return nil
}

func validateLocation(rec recommendation.Recommendation) error {
	if rec.Action == recommendation.ActionRemove {
		if rec.Attribute(recommendation.AttrResourceName) == "" {
			return fmt.Errorf("%w: location removal requires %s", ErrInvalidRecommendation, recommendation.AttrResourceName)
		}
		return nil
	}
	value := strings.TrimSpace(rec.Value)
	if value == "" {
		return fmt.Errorf("%w: geo target constant is required", ErrInvalidRecommendation)
	}
	if _, err := strconv.ParseInt(value, 10, 64); err != nil {
		return fmt.Errorf("%w: geo target constant %q must be numeric", ErrInvalidRecommendation, value)
	}
	return nil
}

func validateProximity(rec recommendation.Recommendation) error {
	if rec.Action == recommendation.ActionRemove {
		if rec.Attribute(recommendation.AttrResourceName) == "" {
			return fmt.Errorf("%w: proximity removal requires %s", ErrInvalidRecommendation, recommendation.AttrResourceName)
		}
		return nil
	}

	radius, err := strconv.ParseFloat(rec.Attribute(recommendation.AttrRadius), 64)
	if err != nil {
		return fmt.Errorf("%w: proximity radius is required", ErrInvalidRecommendation)
	}
	if radius <= 0 {
		return fmt.Errorf("%w: proximity radius must be positive", ErrInvalidRecommendation)
	}

	units := strings.ToLower(rec.Attribute(recommendation.AttrRadiusUnits))
	switch units {
	case "miles":
		if radius > MaxProximityRadiusMiles {
			return fmt.Errorf("%w: radius %g miles exceeds limit %d", ErrInvalidRecommendation, radius, MaxProximityRadiusMiles)
		}
	case "kilometers":
		if radius > MaxProximityRadiusKilometers {
			return fmt.Errorf("%w: radius %g kilometers exceeds limit %d", ErrInvalidRecommendation, radius, MaxProximityRadiusKilometers)
		}
	default:
		return fmt.Errorf("%w: unknown radius units %q", ErrInvalidRecommendation, units)
	}

	latitude, err := strconv.ParseFloat(rec.Attribute(recommendation.AttrLatitude), 64)
	if err != nil || latitude < -90 || latitude > 90 {
		return fmt.Errorf("%w: proximity latitude must be between -90 and 90", ErrInvalidRecommendation)
	}
	longitude, err := strconv.ParseFloat(rec.Attribute(recommendation.AttrLongitude), 64)
	if err != nil || longitude < -180 || longitude > 180 {
		return fmt.Errorf("%w: proximity longitude must be between -180 and 180", ErrInvalidRecommendation)
	}
	return nil
}

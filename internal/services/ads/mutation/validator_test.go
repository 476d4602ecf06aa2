package mutation

import (
	"errors"
	"strings"
	"testing"

	"github.com/adpilot/adpilot/internal/services/ads/recommendation"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		rec     recommendation.Recommendation
		wantErr bool
	}{
		{
			name: "valid headline",
			rec:  googleRec("r1", recommendation.KindHeadline, "Free Shipping Today"),
		},
		{
			name:    "headline too long",
			rec:     googleRec("r1", recommendation.KindHeadline, strings.Repeat("a", MaxHeadlineLength+1)),
			wantErr: true,
		},
		{
			name:    "headline all capitals",
			rec:     googleRec("r1", recommendation.KindHeadline, "HUGE SALE TODAY"),
			wantErr: true,
		},
		{
			name:    "headline with exclamation",
			rec:     googleRec("r1", recommendation.KindHeadline, "Shop now!"),
			wantErr: true,
		},
		{
			name:    "empty headline",
			rec:     googleRec("r1", recommendation.KindHeadline, "   "),
			wantErr: true,
		},
		{
			name: "headline removal needs no text rules",
			rec: func() recommendation.Recommendation {
				rec := googleRec("r1", recommendation.KindHeadline, "HUGE SALE TODAY")
				rec.Action = recommendation.ActionRemove
				return rec
			}(),
		},
		{
			name: "description allows exclamation",
			rec:  googleRec("r1", recommendation.KindDescription, "Order today, delivered tomorrow!"),
		},
		{
			name:    "description too long",
			rec:     googleRec("r1", recommendation.KindDescription, strings.Repeat("a", MaxDescriptionLength+1)),
			wantErr: true,
		},
		{
			name: "valid keyword with match type",
			rec: withAttrs(googleRec("r1", recommendation.KindKeyword, "trail running shoes"),
				map[string]string{recommendation.AttrMatchType: "phrase"}),
		},
		{
			name:    "keyword with invalid characters",
			rec:     googleRec("r1", recommendation.KindKeyword, "shoes@home"),
			wantErr: true,
		},
		{
			name:    "keyword too long",
			rec:     googleRec("r1", recommendation.KindKeyword, strings.Repeat("a", MaxKeywordLength+1)),
			wantErr: true,
		},
		{
			name: "keyword with unknown match type",
			rec: withAttrs(googleRec("r1", recommendation.KindKeyword, "running shoes"),
				map[string]string{recommendation.AttrMatchType: "fuzzy"}),
			wantErr: true,
		},
		{
			name: "keyword removal without resource name",
			rec: func() recommendation.Recommendation {
				rec := googleRec("r1", recommendation.KindKeyword, "running shoes")
				rec.Action = recommendation.ActionRemove
				return rec
			}(),
			wantErr: true,
		},
		{
			name: "keyword removal with resource name",
			rec: func() recommendation.Recommendation {
				rec := withAttrs(googleRec("r1", recommendation.KindNegativeKeyword, "free"),
					map[string]string{recommendation.AttrResourceName: "customers/1/adGroupCriteria/2~3"})
				rec.Action = recommendation.ActionRemove
				return rec
			}(),
		},
		{
			name: "valid sitelink",
			rec: withAttrs(googleRec("r1", recommendation.KindSitelink, "Store Locator"),
				map[string]string{recommendation.AttrFinalURL: "https://example.com/stores"}),
		},
		{
			name: "sitelink missing url",
			rec: withAttrs(googleRec("r1", recommendation.KindSitelink, "Store Locator"),
				map[string]string{}),
			wantErr: true,
		},
		{
			name: "sitelink relative url",
			rec: withAttrs(googleRec("r1", recommendation.KindSitelink, "Store Locator"),
				map[string]string{recommendation.AttrFinalURL: "/stores"}),
			wantErr: true,
		},
		{
			name: "sitelink text too long",
			rec: withAttrs(googleRec("r1", recommendation.KindSitelink, strings.Repeat("a", MaxSitelinkTextLength+1)),
				map[string]string{recommendation.AttrFinalURL: "https://example.com"}),
			wantErr: true,
		},
		{
			name: "sitelink description too long",
			rec: withAttrs(googleRec("r1", recommendation.KindSitelink, "Store Locator"),
				map[string]string{
					recommendation.AttrFinalURL:         "https://example.com",
					recommendation.AttrDescriptionLine1: strings.Repeat("a", MaxSitelinkDescriptionLength+1),
				}),
			wantErr: true,
		},
		{
			name: "valid age range",
			rec:  googleRec("r1", recommendation.KindAgeRange, "age_range_25_34"),
		},
		{
			name:    "unknown age range",
			rec:     googleRec("r1", recommendation.KindAgeRange, "AGE_RANGE_13_17"),
			wantErr: true,
		},
		{
			name: "valid gender",
			rec:  googleRec("r1", recommendation.KindGender, "female"),
		},
		{
			name:    "unknown gender",
			rec:     googleRec("r1", recommendation.KindGender, "other"),
			wantErr: true,
		},
		{
			name: "valid location",
			rec:  googleRec("r1", recommendation.KindLocation, "2840"),
		},
		{
			name:    "non-numeric location",
			rec:     googleRec("r1", recommendation.KindLocation, "united states"),
			wantErr: true,
		},
		{
			name: "valid proximity in miles",
			rec: withAttrs(googleRec("r1", recommendation.KindProximity, "store"),
				map[string]string{
					recommendation.AttrRadius:      "25",
					recommendation.AttrRadiusUnits: "miles",
					recommendation.AttrLatitude:    "37.7749",
					recommendation.AttrLongitude:   "-122.4194",
				}),
		},
		{
			name: "proximity radius over miles limit",
			rec: withAttrs(googleRec("r1", recommendation.KindProximity, "store"),
				map[string]string{
					recommendation.AttrRadius:      "501",
					recommendation.AttrRadiusUnits: "miles",
					recommendation.AttrLatitude:    "37.7749",
					recommendation.AttrLongitude:   "-122.4194",
				}),
			wantErr: true,
		},
		{
			name: "proximity radius within kilometers limit",
			rec: withAttrs(googleRec("r1", recommendation.KindProximity, "store"),
				map[string]string{
					recommendation.AttrRadius:      "700",
					recommendation.AttrRadiusUnits: "kilometers",
					recommendation.AttrLatitude:    "37.7749",
					recommendation.AttrLongitude:   "-122.4194",
				}),
		},
		{
			name: "proximity unknown units",
			rec: withAttrs(googleRec("r1", recommendation.KindProximity, "store"),
				map[string]string{
					recommendation.AttrRadius:      "10",
					recommendation.AttrRadiusUnits: "furlongs",
					recommendation.AttrLatitude:    "37.7749",
					recommendation.AttrLongitude:   "-122.4194",
				}),
			wantErr: true,
		},
		{
			name: "proximity latitude out of range",
			rec: withAttrs(googleRec("r1", recommendation.KindProximity, "store"),
				map[string]string{
					recommendation.AttrRadius:      "10",
					recommendation.AttrRadiusUnits: "miles",
					recommendation.AttrLatitude:    "91",
					recommendation.AttrLongitude:   "-122.4194",
				}),
			wantErr: true,
		},
		{
			name: "proximity negative radius",
			rec: withAttrs(googleRec("r1", recommendation.KindProximity, "store"),
				map[string]string{
					recommendation.AttrRadius:      "-5",
					recommendation.AttrRadiusUnits: "miles",
					recommendation.AttrLatitude:    "37.7749",
					recommendation.AttrLongitude:   "-122.4194",
				}),
			wantErr: true,
		},
		{
			name:    "unsupported kind",
			rec:     googleRec("r1", recommendation.Kind("budget"), "100"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.rec)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Validate() error = nil, want error")
				}
				if !errors.Is(err, ErrInvalidRecommendation) {
					t.Fatalf("Validate() error = %v, want ErrInvalidRecommendation", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
		})
	}
}

func TestValidateAllSplitsBatch(t *testing.T) {
	recs := []recommendation.Recommendation{
		googleRec("good", recommendation.KindHeadline, "Free Shipping Today"),
		googleRec("bad", recommendation.KindHeadline, strings.Repeat("a", MaxHeadlineLength+1)),
		googleRec("also-good", recommendation.KindKeyword, "running shoes"),
	}

	valid, invalid := ValidateAll(recs)
	if len(valid) != 2 {
		t.Fatalf("len(valid) = %d, want 2", len(valid))
	}
	if len(invalid) != 1 {
		t.Fatalf("len(invalid) = %d, want 1", len(invalid))
	}
	if invalid[0].Recommendation.ID != "bad" {
		t.Fatalf("invalid[0].Recommendation.ID = %q, want %q", invalid[0].Recommendation.ID, "bad")
	}
	if !errors.Is(invalid[0].Err, ErrInvalidRecommendation) {
		t.Fatalf("invalid[0].Err = %v, want ErrInvalidRecommendation", invalid[0].Err)
	}
}

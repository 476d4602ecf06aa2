package mutation

import (
	"strings"
	"testing"

	"github.com/adpilot/adpilot/internal/services/ads/googleads"
	"github.com/adpilot/adpilot/internal/services/ads/recommendation"
)

func googleRec(id string, kind recommendation.Kind, value string) recommendation.Recommendation {
	return recommendation.Recommendation{
		ID:      id,
		Channel: recommendation.ChannelGoogle,
		Kind:    kind,
		Action:  recommendation.ActionAdd,
		Value:   value,
	}
}

func withAttrs(rec recommendation.Recommendation, attrs map[string]string) recommendation.Recommendation {
	rec.Attributes = attrs
	return rec
}

func TestNewContextRequiresCustomerID(t *testing.T) {
	_, err := NewContext("  ", []recommendation.Recommendation{googleRec("r1", recommendation.KindKeyword, "running shoes")}, nil)
	if err == nil {
		t.Fatal("NewContext() error = nil, want error")
	}
}

func TestNewContextRequiresRecommendations(t *testing.T) {
	_, err := NewContext("123", nil, nil)
	if err == nil {
		t.Fatal("NewContext() error = nil, want error")
	}
}

func TestNewContextRejectsOtherChannels(t *testing.T) {
	rec := googleRec("r1", recommendation.KindKeyword, "running shoes")
	rec.Channel = recommendation.ChannelMeta

	_, err := NewContext("123", []recommendation.Recommendation{rec}, nil)
	if err == nil {
		t.Fatal("NewContext() error = nil, want channel error")
	}
	if !strings.Contains(err.Error(), "channel") {
		t.Fatalf("NewContext() error = %v, want mention of channel", err)
	}
}

func TestContextCopiesRecommendations(t *testing.T) {
	recs := []recommendation.Recommendation{googleRec("r1", recommendation.KindKeyword, "running shoes")}
	mctx, err := NewContext("123", recs, nil)
	if err != nil {
		t.Fatalf("NewContext() error = %v", err)
	}

	recs[0].Value = "mutated"
	if got := mctx.Recommendations()[0].Value; got != "running shoes" {
		t.Fatalf("Recommendations()[0].Value = %q, want %q", got, "running shoes")
	}
}

func TestContextByKindPreservesOrder(t *testing.T) {
	recs := []recommendation.Recommendation{
		googleRec("r1", recommendation.KindHeadline, "Fast Shipping"),
		googleRec("r2", recommendation.KindKeyword, "running shoes"),
		googleRec("r3", recommendation.KindHeadline, "Free Returns"),
	}
	mctx, err := NewContext("123", recs, nil)
	if err != nil {
		t.Fatalf("NewContext() error = %v", err)
	}

	headlines := mctx.ByKind(recommendation.KindHeadline)
	if len(headlines) != 2 {
		t.Fatalf("len(ByKind(headline)) = %d, want 2", len(headlines))
	}
	if headlines[0].ID != "r1" || headlines[1].ID != "r3" {
		t.Fatalf("ByKind(headline) order = %s, %s, want r1, r3", headlines[0].ID, headlines[1].ID)
	}
}

func TestContextResourceNames(t *testing.T) {
	mctx, err := NewContext("123", []recommendation.Recommendation{googleRec("r1", recommendation.KindKeyword, "running shoes")}, nil)
	if err != nil {
		t.Fatalf("NewContext() error = %v", err)
	}

	if got, want := mctx.CampaignResource("42"), "customers/123/campaigns/42"; got != want {
		t.Fatalf("CampaignResource() = %q, want %q", got, want)
	}
	if got, want := mctx.AdGroupResource("7"), "customers/123/adGroups/7"; got != want {
		t.Fatalf("AdGroupResource() = %q, want %q", got, want)
	}
}

func TestContextAdsForUnknownAdGroup(t *testing.T) {
	mctx, err := NewContext("123", []recommendation.Recommendation{googleRec("r1", recommendation.KindKeyword, "running shoes")}, map[string][]googleads.Ad{})
	if err != nil {
		t.Fatalf("NewContext() error = %v", err)
	}
	if ads := mctx.AdsForAdGroup("missing"); ads != nil {
		t.Fatalf("AdsForAdGroup(missing) = %v, want nil", ads)
	}
}

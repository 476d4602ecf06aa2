package mutation

import (
	"context"
	"strings"
	"testing"

	"github.com/adpilot/adpilot/internal/services/ads/googleads"
	"github.com/adpilot/adpilot/internal/services/ads/recommendation"
)

func textRec(id string, kind recommendation.Kind, adGroupID, value string) recommendation.Recommendation {
	rec := googleRec(id, kind, value)
	rec.AdGroupID = adGroupID
	return rec
}

func rsaAd(resourceName string, headlines, descriptions []string) googleads.Ad {
	info := &googleads.ResponsiveSearchAdInfo{}
	for _, text := range headlines {
		info.Headlines = append(info.Headlines, googleads.TextAsset{Text: text})
	}
	for _, text := range descriptions {
		info.Descriptions = append(info.Descriptions, googleads.TextAsset{Text: text})
	}
	return googleads.Ad{ResourceName: resourceName, ResponsiveSearchAd: info}
}

func buildContext(t *testing.T, recs []recommendation.Recommendation, ads map[string][]googleads.Ad) *Context {
	t.Helper()
	mctx, err := NewContext("123", recs, ads)
	if err != nil {
		t.Fatalf("NewContext() error = %v", err)
	}
	return mctx
}

func TestTextAssetBuilderMergesIntoSingleOperation(t *testing.T) {
	recs := []recommendation.Recommendation{
		textRec("h1", recommendation.KindHeadline, "7", "Free Returns"),
		textRec("h2", recommendation.KindHeadline, "7", "Next Day Delivery"),
		textRec("d1", recommendation.KindDescription, "7", "Shop the full range online today."),
	}
	ads := map[string][]googleads.Ad{
		"7": {rsaAd("customers/123/ads/1",
			[]string{"Fast Shipping", "Great Prices", "Shop Online"},
			[]string{"Order today.", "Delivered tomorrow."})},
	}

	result, err := (TextAssetBuilder{}).Build(context.Background(), buildContext(t, recs, ads))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(result.Operations) != 1 {
		t.Fatalf("len(Operations) = %d, want 1", len(result.Operations))
	}

	op := result.Operations[0]
	if len(op.RecommendationIDs) != 3 {
		t.Fatalf("len(RecommendationIDs) = %d, want 3", len(op.RecommendationIDs))
	}
	adOp := op.Operation.AdOperation
	if adOp == nil {
		t.Fatal("Operation.AdOperation = nil")
	}
	if adOp.Update.ResourceName != "customers/123/ads/1" {
		t.Fatalf("Update.ResourceName = %q, want %q", adOp.Update.ResourceName, "customers/123/ads/1")
	}
	if got := len(adOp.Update.ResponsiveSearchAd.Headlines); got != 5 {
		t.Fatalf("merged headlines = %d, want 5", got)
	}
	if got := len(adOp.Update.ResponsiveSearchAd.Descriptions); got != 3 {
		t.Fatalf("merged descriptions = %d, want 3", got)
	}
	if adOp.UpdateMask != "responsive_search_ad.headlines,responsive_search_ad.descriptions" {
		t.Fatalf("UpdateMask = %q", adOp.UpdateMask)
	}
}

func TestTextAssetBuilderSkipsDuplicates(t *testing.T) {
	recs := []recommendation.Recommendation{
		textRec("dup", recommendation.KindHeadline, "7", "fast  SHIPPING"),
		textRec("new", recommendation.KindHeadline, "7", "Free Returns"),
	}
	ads := map[string][]googleads.Ad{
		"7": {rsaAd("customers/123/ads/1",
			[]string{"Fast Shipping", "Great Prices", "Shop Online"},
			[]string{"Order today.", "Delivered tomorrow."})},
	}

	result, err := (TextAssetBuilder{}).Build(context.Background(), buildContext(t, recs, ads))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(result.Skipped) != 1 {
		t.Fatalf("len(Skipped) = %d, want 1", len(result.Skipped))
	}
	if result.Skipped[0].RecommendationID != "dup" {
		t.Fatalf("Skipped[0].RecommendationID = %q, want %q", result.Skipped[0].RecommendationID, "dup")
	}
	if len(result.Operations) != 1 {
		t.Fatalf("len(Operations) = %d, want 1", len(result.Operations))
	}
	// The skipped recommendation must not be attributed to the operation.
	for _, id := range result.Operations[0].RecommendationIDs {
		if id == "dup" {
			t.Fatal("skipped recommendation attributed to the operation")
		}
	}
}

func TestTextAssetBuilderRemoval(t *testing.T) {
	removal := textRec("r1", recommendation.KindHeadline, "7", "Great Prices")
	removal.Action = recommendation.ActionRemove

	ads := map[string][]googleads.Ad{
		"7": {rsaAd("customers/123/ads/1",
			[]string{"Fast Shipping", "Great Prices", "Shop Online", "Free Returns"},
			[]string{"Order today.", "Delivered tomorrow."})},
	}

	result, err := (TextAssetBuilder{}).Build(context.Background(), buildContext(t, []recommendation.Recommendation{removal}, ads))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(result.Operations) != 1 {
		t.Fatalf("len(Operations) = %d, want 1", len(result.Operations))
	}
	headlines := result.Operations[0].Operation.AdOperation.Update.ResponsiveSearchAd.Headlines
	if len(headlines) != 3 {
		t.Fatalf("merged headlines = %d, want 3", len(headlines))
	}
	for _, asset := range headlines {
		if asset.Text == "Great Prices" {
			t.Fatal("removed headline still present")
		}
	}
	if got := result.Operations[0].Operation.AdOperation.UpdateMask; got != "responsive_search_ad.headlines" {
		t.Fatalf("UpdateMask = %q, want headlines only", got)
	}
}

func TestTextAssetBuilderRemovalOfAbsentTextIsSkip(t *testing.T) {
	removal := textRec("r1", recommendation.KindHeadline, "7", "Never Existed")
	removal.Action = recommendation.ActionRemove

	ads := map[string][]googleads.Ad{
		"7": {rsaAd("customers/123/ads/1",
			[]string{"Fast Shipping", "Great Prices", "Shop Online"},
			[]string{"Order today.", "Delivered tomorrow."})},
	}

	result, err := (TextAssetBuilder{}).Build(context.Background(), buildContext(t, []recommendation.Recommendation{removal}, ads))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(result.Operations) != 0 {
		t.Fatalf("len(Operations) = %d, want 0", len(result.Operations))
	}
	if len(result.Skipped) != 1 {
		t.Fatalf("len(Skipped) = %d, want 1", len(result.Skipped))
	}
}

func TestTextAssetBuilderEnforcesHeadlineLimit(t *testing.T) {
	var existing []string
	for range MaxHeadlinesPerAd {
		existing = append(existing, "Headline "+strings.Repeat("x", len(existing)+1))
	}
	ads := map[string][]googleads.Ad{
		"7": {rsaAd("customers/123/ads/1", existing, []string{"Order today.", "Delivered tomorrow."})},
	}

	_, err := (TextAssetBuilder{}).Build(context.Background(), buildContext(t,
		[]recommendation.Recommendation{textRec("h1", recommendation.KindHeadline, "7", "One Too Many")}, ads))
	if err == nil {
		t.Fatal("Build() error = nil, want headline limit error")
	}
}

func TestTextAssetBuilderEnforcesMinimumAfterRemoval(t *testing.T) {
	removal := textRec("r1", recommendation.KindHeadline, "7", "Shop Online")
	removal.Action = recommendation.ActionRemove

	ads := map[string][]googleads.Ad{
		"7": {rsaAd("customers/123/ads/1",
			[]string{"Fast Shipping", "Great Prices", "Shop Online"},
			[]string{"Order today.", "Delivered tomorrow."})},
	}

	_, err := (TextAssetBuilder{}).Build(context.Background(), buildContext(t, []recommendation.Recommendation{removal}, ads))
	if err == nil {
		t.Fatal("Build() error = nil, want minimum headline error")
	}
}

func TestTextAssetBuilderRequiresExistingAd(t *testing.T) {
	_, err := (TextAssetBuilder{}).Build(context.Background(), buildContext(t,
		[]recommendation.Recommendation{textRec("h1", recommendation.KindHeadline, "7", "Free Returns")}, nil))
	if err == nil {
		t.Fatal("Build() error = nil, want missing ad error")
	}
}

func TestTextAssetBuilderNoTextRecommendations(t *testing.T) {
	result, err := (TextAssetBuilder{}).Build(context.Background(), buildContext(t,
		[]recommendation.Recommendation{googleRec("k1", recommendation.KindKeyword, "running shoes")}, nil))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(result.Operations) != 0 || len(result.Skipped) != 0 {
		t.Fatalf("Build() = %+v, want empty result", result)
	}
}

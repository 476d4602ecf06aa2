package mutation

import (
	"context"
	"strings"

	"github.com/adpilot/adpilot/internal/services/ads/googleads"
)

// Builder compiles one recommendation family into mutate operations.
// Builders run concurrently over the same Context and must not mutate it.
type Builder interface {
	// Field names the recommendation family for error reporting.
	Field() string
	Build(ctx context.Context, mctx *Context) (BuildResult, error)
}

// BuiltOperation is one mutate operation with the recommendations it
// carries. Merged text updates map several recommendations onto a single
// operation; sitelinks map one recommendation onto two.
type BuiltOperation struct {
	RecommendationIDs []string
	Operation         googleads.MutateOperation
}

// SkippedRecommendation records a recommendation dropped during building,
// such as a headline that duplicates an existing asset. Skips are not
// failures.
type SkippedRecommendation struct {
	RecommendationID string
	Reason           string
}

// BuildResult is one builder's output.
type BuildResult struct {
	Operations []BuiltOperation
	Skipped    []SkippedRecommendation
}

// normalizeAssetText canonicalizes ad text for dedup comparisons: lowercase
// with runs of whitespace collapsed.
func normalizeAssetText(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

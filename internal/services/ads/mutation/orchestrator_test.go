package mutation

import (
	"context"
	"errors"
	"testing"

	"github.com/adpilot/adpilot/internal/services/ads/googleads"
	"github.com/adpilot/adpilot/internal/services/ads/recommendation"
)

type stubBuilder struct {
	field  string
	result BuildResult
	err    error
}

func (b stubBuilder) Field() string { return b.field }

func (b stubBuilder) Build(ctx context.Context, mctx *Context) (BuildResult, error) {
	return b.result, b.err
}

func opForRec(recID string) BuiltOperation {
	return BuiltOperation{
		RecommendationIDs: []string{recID},
		Operation: googleads.MutateOperation{
			AdGroupCriterionOperation: &googleads.AdGroupCriterionOperation{
				Create: &googleads.AdGroupCriterion{Keyword: &googleads.KeywordInfo{Text: recID}},
			},
		},
	}
}

func TestOrchestratorFlattensInRegistrationOrder(t *testing.T) {
	orchestrator := NewOrchestratorWithBuilders(
		stubBuilder{field: "first", result: BuildResult{Operations: []BuiltOperation{opForRec("a"), opForRec("b")}}},
		stubBuilder{field: "second", result: BuildResult{Operations: []BuiltOperation{opForRec("c")}}},
	)
	mctx := buildContext(t, []recommendation.Recommendation{googleRec("a", recommendation.KindKeyword, "x")}, nil)

	output, err := orchestrator.Build(context.Background(), mctx)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(output.Operations) != 3 {
		t.Fatalf("len(Operations) = %d, want 3", len(output.Operations))
	}
	for i, want := range []string{"a", "b", "c"} {
		if got := output.Operations[i].RecommendationIDs[0]; got != want {
			t.Fatalf("Operations[%d] carries %q, want %q", i, got, want)
		}
	}
}

func TestOrchestratorIsolatesBuilderFailures(t *testing.T) {
	boom := errors.New("boom")
	orchestrator := NewOrchestratorWithBuilders(
		stubBuilder{field: "healthy", result: BuildResult{Operations: []BuiltOperation{opForRec("a")}}},
		stubBuilder{field: "broken", err: boom},
		stubBuilder{field: "also-healthy", result: BuildResult{
			Operations: []BuiltOperation{opForRec("b")},
			Skipped:    []SkippedRecommendation{{RecommendationID: "c", Reason: "duplicate"}},
		}},
	)
	mctx := buildContext(t, []recommendation.Recommendation{googleRec("a", recommendation.KindKeyword, "x")}, nil)

	output, err := orchestrator.Build(context.Background(), mctx)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(output.Operations) != 2 {
		t.Fatalf("len(Operations) = %d, want 2", len(output.Operations))
	}
	if len(output.Skipped) != 1 {
		t.Fatalf("len(Skipped) = %d, want 1", len(output.Skipped))
	}
	if len(output.FieldErrors) != 1 {
		t.Fatalf("len(FieldErrors) = %d, want 1", len(output.FieldErrors))
	}
	fieldErr := output.FieldErrors[0]
	if fieldErr.Field != "broken" {
		t.Fatalf("FieldErrors[0].Field = %q, want broken", fieldErr.Field)
	}
	if !errors.Is(fieldErr, boom) {
		t.Fatalf("FieldErrors[0] does not unwrap to the builder error: %v", fieldErr)
	}
}

func TestOrchestratorCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mctx := buildContext(t, []recommendation.Recommendation{googleRec("a", recommendation.KindKeyword, "x")}, nil)
	_, err := NewOrchestrator().Build(ctx, mctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Build() error = %v, want context.Canceled", err)
	}
}

func TestOrchestratorNilContext(t *testing.T) {
	_, err := NewOrchestrator().Build(context.Background(), nil)
	if err == nil {
		t.Fatal("Build() error = nil, want error")
	}
}

func TestOrchestratorDefaultFields(t *testing.T) {
	got := NewOrchestrator().Fields()
	want := []string{"text_assets", "keywords", "targeting", "sitelinks"}
	if len(got) != len(want) {
		t.Fatalf("len(Fields()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Fields()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

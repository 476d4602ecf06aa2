package mutation

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// FieldError records one builder's failure without discarding the output of
// the other builders.
type FieldError struct {
	Field string
	Err   error
}

// Error implements the error interface.
func (e FieldError) Error() string {
	return fmt.Sprintf("build %s: %v", e.Field, e.Err)
}

// Unwrap returns the underlying error.
func (e FieldError) Unwrap() error {
	return e.Err
}

// BuildOutput is the fan-in result of one orchestrated build.
type BuildOutput struct {
	// Operations holds every successful builder's operations, concatenated
	// in registration order so batches are deterministic.
	Operations []BuiltOperation
	// Skipped lists recommendations dropped without error, such as dedup
	// hits.
	Skipped []SkippedRecommendation
	// FieldErrors lists builders that failed. Their operations are absent
	// from Operations; everything else committed normally.
	FieldErrors []FieldError
}

// Orchestrator fans builders out concurrently over one shared context and
// flattens their outputs into a single ordered operation list.
type Orchestrator struct {
	builders []Builder
}

// NewOrchestrator builds an orchestrator with the default builder set.
func NewOrchestrator() *Orchestrator {
	return NewOrchestratorWithBuilders(
		TextAssetBuilder{},
		KeywordBuilder{},
		TargetingBuilder{},
		SitelinkBuilder{},
	)
}

// NewOrchestratorWithBuilders builds an orchestrator over a custom builder
// set. Registration order fixes the operation order in the output.
func NewOrchestratorWithBuilders(builders ...Builder) *Orchestrator {
	return &Orchestrator{builders: builders}
}

// Build runs every builder concurrently and collects their results. A
// builder failure is isolated as a FieldError; Build itself only returns an
// error when the context is cancelled.
func (o *Orchestrator) Build(ctx context.Context, mctx *Context) (BuildOutput, error) {
	if mctx == nil {
		return BuildOutput{}, fmt.Errorf("mutation context is required")
	}
	if err := ctx.Err(); err != nil {
		return BuildOutput{}, err
	}

	results := make([]BuildResult, len(o.builders))
	buildErrs := make([]error, len(o.builders))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, builder := range o.builders {
		eg.Go(func() error {
			result, err := builder.Build(egCtx, mctx)
			if err != nil {
				// Isolate the failure; other builders keep running.
				buildErrs[i] = err
				return nil
			}
			results[i] = result
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return BuildOutput{}, err
	}
	if err := ctx.Err(); err != nil {
		return BuildOutput{}, err
	}

	var output BuildOutput
	for i, builder := range o.builders {
		if buildErrs[i] != nil {
			output.FieldErrors = append(output.FieldErrors, FieldError{Field: builder.Field(), Err: buildErrs[i]})
			continue
		}
		output.Operations = append(output.Operations, results[i].Operations...)
		output.Skipped = append(output.Skipped, results[i].Skipped...)
	}
	return output, nil
}

// Fields returns the registered builder names in order.
func (o *Orchestrator) Fields() []string {
	fields := make([]string, len(o.builders))
	for i, builder := range o.builders {
		fields[i] = builder.Field()
	}
	return fields
}

package mutation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/adpilot/adpilot/internal/services/ads/googleads"
	"github.com/adpilot/adpilot/internal/services/ads/recommendation"
)

// VendorClient is the slice of the Google Ads client the service needs.
type VendorClient interface {
	ResponsiveSearchAds(ctx context.Context, customerID, adGroupID string) ([]googleads.Ad, error)
	Mutate(ctx context.Context, customerID string, request googleads.MutateRequest) (googleads.MutateResponse, error)
}

// StatusRecorder persists recommendation lifecycle transitions.
type StatusRecorder interface {
	RecordStatus(ctx context.Context, recommendationID string, status recommendation.Status, reason string) error
}

// Service validates a recommendation batch, orchestrates the builders, and
// submits the resulting operations in one vendor mutate call.
type Service struct {
	vendor       VendorClient
	statuses     StatusRecorder
	orchestrator *Orchestrator
}

// NewService wires a mutation service. statuses may be nil for callers that
// track outcomes themselves (validate-only previews).
func NewService(vendor VendorClient, statuses StatusRecorder) (*Service, error) {
	if vendor == nil {
		return nil, fmt.Errorf("vendor client is required")
	}
	return &Service{
		vendor:       vendor,
		statuses:     statuses,
		orchestrator: NewOrchestrator(),
	}, nil
}

// ApplyInput is one application run over approved recommendations.
type ApplyInput struct {
	CustomerID      string
	Recommendations []recommendation.Recommendation
	// PartialFailure commits valid operations and reports invalid ones
	// independently. When false the batch is atomic.
	PartialFailure bool
	// ValidateOnly previews the batch without committing or recording
	// status transitions.
	ValidateOnly bool
}

// Outcome reports what happened to one recommendation.
type Outcome struct {
	RecommendationID string
	// OperationIndex is the position of the first operation carrying this
	// recommendation in the mutate request, or -1 when no operation was
	// submitted for it.
	OperationIndex int
	ResourceName   string
	Succeeded      bool
	ErrorMessage   string
}

// ApplyOutput summarizes one application run.
type ApplyOutput struct {
	Outcomes     []Outcome
	AppliedCount int
	FailedCount  int
}

// Apply compiles and submits one batch.
//
// Failure handling is layered: invalid recommendations fail individually
// before any vendor call; a builder failure fails only that builder's
// recommendations; vendor partial failures fail individual operations. Only
// transport errors and atomic-mode rejections fail the run as a whole.
func (s *Service) Apply(ctx context.Context, input ApplyInput) (ApplyOutput, error) {
	if strings.TrimSpace(input.CustomerID) == "" {
		return ApplyOutput{}, fmt.Errorf("customer id is required")
	}
	if len(input.Recommendations) == 0 {
		return ApplyOutput{}, fmt.Errorf("at least one recommendation is required")
	}

	var output ApplyOutput

	valid, invalid := ValidateAll(input.Recommendations)
	for _, rejected := range invalid {
		output.addFailure(rejected.Recommendation.ID, rejected.Err.Error())
		if err := s.recordStatus(ctx, input, rejected.Recommendation.ID, recommendation.StatusFailed, rejected.Err.Error()); err != nil {
			return ApplyOutput{}, err
		}
	}
	if len(valid) == 0 {
		return output, nil
	}

	adsByAdGroup, err := s.fetchExistingAds(ctx, input.CustomerID, valid)
	if err != nil {
		return s.failRemaining(ctx, input, valid, output, err)
	}

	mctx, err := NewContext(input.CustomerID, valid, adsByAdGroup)
	if err != nil {
		return s.failRemaining(ctx, input, valid, output, err)
	}

	built, err := s.orchestrator.Build(ctx, mctx)
	if err != nil {
		return s.failRemaining(ctx, input, valid, output, err)
	}

	// A failed builder fails exactly the recommendations it owns.
	failedKinds := kindsForFields(built.FieldErrors)
	for _, rec := range valid {
		if fieldErr, ok := failedKinds[rec.Kind]; ok {
			output.addFailure(rec.ID, fieldErr.Error())
			if err := s.recordStatus(ctx, input, rec.ID, recommendation.StatusFailed, fieldErr.Error()); err != nil {
				return ApplyOutput{}, err
			}
		}
	}

	// Dedup skips are successful no-ops: the desired state already holds.
	for _, skip := range built.Skipped {
		output.Outcomes = append(output.Outcomes, Outcome{
			RecommendationID: skip.RecommendationID,
			OperationIndex:   -1,
			Succeeded:        true,
			ErrorMessage:     skip.Reason,
		})
		output.AppliedCount++
		if err := s.recordStatus(ctx, input, skip.RecommendationID, recommendation.StatusApplied, skip.Reason); err != nil {
			return ApplyOutput{}, err
		}
	}

	if len(built.Operations) == 0 {
		return output, nil
	}

	operations := make([]googleads.MutateOperation, len(built.Operations))
	for i, op := range built.Operations {
		operations[i] = op.Operation
	}

	response, err := s.vendor.Mutate(ctx, input.CustomerID, googleads.MutateRequest{
		Operations:     operations,
		PartialFailure: input.PartialFailure,
		ValidateOnly:   input.ValidateOnly,
	})
	if err != nil {
		// The whole submission failed; every submitted recommendation fails
		// with it so a later run can retry them.
		message := fmt.Sprintf("mutate request failed: %v", err)
		for _, recID := range uniqueRecommendationIDs(built.Operations) {
			output.addFailure(recID, message)
			if statusErr := s.recordStatus(ctx, input, recID, recommendation.StatusFailed, message); statusErr != nil {
				return ApplyOutput{}, statusErr
			}
		}
		return output, fmt.Errorf("mutate batch: %w", err)
	}

	if err := s.collectVendorOutcomes(ctx, input, built.Operations, response, &output); err != nil {
		return output, err
	}
	return output, nil
}

// failRemaining fails every recommendation the run never submitted. Callers
// have already marked the batch as in flight, so an early abort must still
// give each recommendation a terminal status.
func (s *Service) failRemaining(ctx context.Context, input ApplyInput, recs []recommendation.Recommendation, output ApplyOutput, cause error) (ApplyOutput, error) {
	message := cause.Error()
	for _, rec := range recs {
		output.addFailure(rec.ID, message)
		if err := s.recordStatus(ctx, input, rec.ID, recommendation.StatusFailed, message); err != nil {
			cause = errors.Join(cause, err)
		}
	}
	return output, cause
}

// collectVendorOutcomes folds per-operation vendor results back onto
// recommendations. A recommendation succeeds only when every operation
// carrying it succeeded. A status write failure here means the vendor
// mutation committed but the recommendation record did not move, so it is
// surfaced rather than dropped.
func (s *Service) collectVendorOutcomes(ctx context.Context, input ApplyInput, built []BuiltOperation, response googleads.MutateResponse, output *ApplyOutput) error {
	failedIndexes := response.FailedIndexes()

	type recResult struct {
		firstIndex   int
		resourceName string
		errorMessage string
	}
	byRec := make(map[string]*recResult)
	var order []string

	for index, op := range built {
		message, failed := failedIndexes[index]
		resourceName := ""
		if !failed && index < len(response.Results) {
			resourceName = response.Results[index].ResourceName()
		}
		for _, recID := range op.RecommendationIDs {
			result, seen := byRec[recID]
			if !seen {
				result = &recResult{firstIndex: index, resourceName: resourceName}
				byRec[recID] = result
				order = append(order, recID)
			}
			if failed {
				result.errorMessage = message
			} else if result.resourceName == "" {
				result.resourceName = resourceName
			}
		}
	}

	var recordErr error
	for _, recID := range order {
		result := byRec[recID]
		if result.errorMessage != "" {
			output.Outcomes = append(output.Outcomes, Outcome{
				RecommendationID: recID,
				OperationIndex:   result.firstIndex,
				Succeeded:        false,
				ErrorMessage:     result.errorMessage,
			})
			output.FailedCount++
			if err := s.recordStatus(ctx, input, recID, recommendation.StatusFailed, result.errorMessage); err != nil {
				recordErr = errors.Join(recordErr, err)
			}
			continue
		}
		output.Outcomes = append(output.Outcomes, Outcome{
			RecommendationID: recID,
			OperationIndex:   result.firstIndex,
			ResourceName:     result.resourceName,
			Succeeded:        true,
		})
		output.AppliedCount++
		if err := s.recordStatus(ctx, input, recID, recommendation.StatusApplied, ""); err != nil {
			recordErr = errors.Join(recordErr, err)
		}
	}
	return recordErr
}

// fetchExistingAds loads the responsive search ads for every ad group that
// text recommendations touch, so the asset builder can merge against them.
func (s *Service) fetchExistingAds(ctx context.Context, customerID string, recs []recommendation.Recommendation) (map[string][]googleads.Ad, error) {
	adGroups := make(map[string]struct{})
	for _, rec := range recs {
		if rec.Kind == recommendation.KindHeadline || rec.Kind == recommendation.KindDescription {
			if strings.TrimSpace(rec.AdGroupID) != "" {
				adGroups[rec.AdGroupID] = struct{}{}
			}
		}
	}
	if len(adGroups) == 0 {
		return nil, nil
	}

	adsByAdGroup := make(map[string][]googleads.Ad, len(adGroups))
	for adGroupID := range adGroups {
		ads, err := s.vendor.ResponsiveSearchAds(ctx, customerID, adGroupID)
		if err != nil {
			return nil, fmt.Errorf("fetch ads for ad group %s: %w", adGroupID, err)
		}
		adsByAdGroup[adGroupID] = ads
	}
	return adsByAdGroup, nil
}

func (s *Service) recordStatus(ctx context.Context, input ApplyInput, recommendationID string, status recommendation.Status, reason string) error {
	// Validate-only runs never move recommendation state.
	if input.ValidateOnly || s.statuses == nil {
		return nil
	}
	if err := s.statuses.RecordStatus(ctx, recommendationID, status, reason); err != nil {
		return fmt.Errorf("record status for %s: %w", recommendationID, err)
	}
	return nil
}

func (o *ApplyOutput) addFailure(recommendationID, message string) {
	o.Outcomes = append(o.Outcomes, Outcome{
		RecommendationID: recommendationID,
		OperationIndex:   -1,
		Succeeded:        false,
		ErrorMessage:     message,
	})
	o.FailedCount++
}

// kindsForFields maps builder field errors back to the recommendation kinds
// each builder owns.
func kindsForFields(fieldErrors []FieldError) map[recommendation.Kind]FieldError {
	ownership := map[string][]recommendation.Kind{
		TextAssetBuilder{}.Field(): {recommendation.KindHeadline, recommendation.KindDescription},
		KeywordBuilder{}.Field():   {recommendation.KindKeyword, recommendation.KindNegativeKeyword},
		TargetingBuilder{}.Field(): {recommendation.KindAgeRange, recommendation.KindGender, recommendation.KindLocation, recommendation.KindProximity},
		SitelinkBuilder{}.Field():  {recommendation.KindSitelink},
	}

	failed := make(map[recommendation.Kind]FieldError)
	for _, fieldErr := range fieldErrors {
		for _, kind := range ownership[fieldErr.Field] {
			failed[kind] = fieldErr
		}
	}
	return failed
}

func uniqueRecommendationIDs(built []BuiltOperation) []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, op := range built {
		for _, recID := range op.RecommendationIDs {
			if _, ok := seen[recID]; ok {
				continue
			}
			seen[recID] = struct{}{}
			ids = append(ids, recID)
		}
	}
	return ids
}

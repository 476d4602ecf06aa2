package ads

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	adsv1 "github.com/adpilot/adpilot/api/gen/go/ads/v1"
	"github.com/adpilot/adpilot/internal/services/ads/meta"
	"github.com/adpilot/adpilot/internal/services/ads/mutation"
	"github.com/adpilot/adpilot/internal/services/ads/recommendation"
	"github.com/adpilot/adpilot/internal/services/ads/storage"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// statusRecorder adapts the recommendation store to the mutation service's
// lifecycle callback. Transitions always come from the applying state the
// handler set before submitting.
type statusRecorder struct {
	store RecommendationStore
	clock func() time.Time
}

func (r statusRecorder) RecordStatus(ctx context.Context, recommendationID string, to recommendation.Status, reason string) error {
	return r.store.UpdateRecommendationStatus(ctx, recommendationID, string(recommendation.StatusApplying), string(to), reason, r.clock().UTC())
}

// ApplyRecommendations submits approved recommendations to their vendor
// APIs and records per-recommendation outcomes.
//
// Per-recommendation failures are reported in-band as outcomes; only
// transport errors and atomic-mode rejections fail the call. Audit rows are
// written either way, so a failed run still shows up in ListApplyResults.
func (s *Service) ApplyRecommendations(ctx context.Context, in *adsv1.ApplyRecommendationsRequest) (*adsv1.ApplyRecommendationsResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "apply recommendations request is required")
	}
	if s.accounts == nil || s.recommendations == nil || s.applyResults == nil {
		return nil, status.Error(codes.Internal, "storage is not configured")
	}
	if s.vendors == nil {
		return nil, status.Error(codes.Internal, "vendor clients are not configured")
	}

	accountID := strings.TrimSpace(in.GetAccountId())
	if accountID == "" {
		return nil, status.Error(codes.InvalidArgument, "account_id is required")
	}
	account, err := s.accounts.GetAccount(ctx, accountID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, status.Error(codes.NotFound, "account not found")
	}
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get account: %v", err)
	}

	records, err := s.selectApplyRecords(ctx, accountID, in.GetRecommendationIds())
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, status.Error(codes.FailedPrecondition, "no approved recommendations to apply")
	}

	var googleRecs, metaRecs []recommendation.Recommendation
	for _, record := range records {
		rec, err := recommendationFromRecord(record)
		if err != nil {
			return nil, status.Errorf(codes.Internal, "decode recommendation %s: %v", record.ID, err)
		}
		switch rec.Channel {
		case recommendation.ChannelGoogle:
			googleRecs = append(googleRecs, rec)
		case recommendation.ChannelMeta:
			metaRecs = append(metaRecs, rec)
		}
	}
	if in.GetValidateOnly() && len(metaRecs) > 0 {
		return nil, status.Error(codes.InvalidArgument, "validate_only is not supported for meta recommendations")
	}
	if len(googleRecs) > 0 && account.GoogleCustomerID == "" {
		return nil, status.Error(codes.FailedPrecondition, "account has no google ads binding")
	}
	if len(metaRecs) > 0 && account.MetaAdAccountID == "" {
		return nil, status.Error(codes.FailedPrecondition, "account has no meta ads binding")
	}

	applyID, err := s.idGenerator()
	if err != nil {
		return nil, status.Errorf(codes.Internal, "generate apply id: %v", err)
	}

	// Mark the batch as applying before any vendor call so concurrent runs
	// cannot double-submit the same recommendation.
	if !in.GetValidateOnly() {
		for _, record := range records {
			err := s.recommendations.UpdateRecommendationStatus(ctx, record.ID, string(recommendation.StatusApproved), string(recommendation.StatusApplying), "", s.clock().UTC())
			switch {
			case errors.Is(err, storage.ErrNotFound):
				return nil, status.Errorf(codes.NotFound, "recommendation %s not found", record.ID)
			case errors.Is(err, storage.ErrConflict):
				return nil, status.Errorf(codes.Aborted, "recommendation %s changed concurrently", record.ID)
			case err != nil:
				return nil, status.Errorf(codes.Internal, "update recommendation status: %v", err)
			}
		}
	}

	resp := &adsv1.ApplyRecommendationsResponse{ApplyId: applyID}
	var applyErr error

	if len(googleRecs) > 0 {
		out, err := s.applyGoogle(ctx, account, googleRecs, in)
		for _, outcome := range out.Outcomes {
			resp.Outcomes = append(resp.Outcomes, &adsv1.OperationOutcome{
				RecommendationId: outcome.RecommendationID,
				OperationIndex:   int32(outcome.OperationIndex),
				ResourceName:     outcome.ResourceName,
				Succeeded:        outcome.Succeeded,
				ErrorMessage:     outcome.ErrorMessage,
			})
		}
		resp.AppliedCount += int32(out.AppliedCount)
		resp.FailedCount += int32(out.FailedCount)
		applyErr = err
	}

	// Channels are independent: a Google transport failure does not stop
	// the Meta half of the batch.
	if len(metaRecs) > 0 {
		outcomes, applied, failed, err := s.applyMeta(ctx, account, metaRecs)
		resp.Outcomes = append(resp.Outcomes, outcomes...)
		resp.AppliedCount += applied
		resp.FailedCount += failed
		applyErr = errors.Join(applyErr, err)
	}

	if err := s.storeApplyResults(ctx, applyID, account.ID, in, resp.Outcomes); err != nil {
		applyErr = errors.Join(applyErr, fmt.Errorf("put apply result: %w", err))
	}
	if applyErr != nil {
		return nil, status.Errorf(codes.Unavailable, "apply recommendations: %v", applyErr)
	}
	return resp, nil
}

// selectApplyRecords resolves the batch: the explicit IDs when given,
// otherwise every approved recommendation on the account.
func (s *Service) selectApplyRecords(ctx context.Context, accountID string, rawIDs []string) ([]storage.RecommendationRecord, error) {
	if len(rawIDs) > 0 {
		records := make([]storage.RecommendationRecord, 0, len(rawIDs))
		for _, raw := range rawIDs {
			recommendationID := strings.TrimSpace(raw)
			if recommendationID == "" {
				continue
			}
			record, err := s.recommendations.GetRecommendation(ctx, recommendationID)
			if errors.Is(err, storage.ErrNotFound) {
				return nil, status.Errorf(codes.NotFound, "recommendation %s not found", recommendationID)
			}
			if err != nil {
				return nil, status.Errorf(codes.Internal, "get recommendation: %v", err)
			}
			// Cross-account IDs read as missing so callers cannot probe
			// other accounts' recommendations.
			if record.AccountID != accountID {
				return nil, status.Errorf(codes.NotFound, "recommendation %s not found", recommendationID)
			}
			if record.Status != string(recommendation.StatusApproved) {
				return nil, status.Errorf(codes.FailedPrecondition, "recommendation %s is %s, want approved", recommendationID, record.Status)
			}
			records = append(records, record)
		}
		return records, nil
	}

	var records []storage.RecommendationRecord
	token := ""
	for {
		page, err := s.recommendations.ListRecommendations(ctx, storage.RecommendationQuery{
			AccountID: accountID,
			Where:     "status = ?",
			Params:    []any{string(recommendation.StatusApproved)},
			PageSize:  maxPageSize,
			PageToken: token,
		})
		if err != nil {
			return nil, status.Errorf(codes.Internal, "list recommendations: %v", err)
		}
		records = append(records, page.Recommendations...)
		if page.NextPageToken == "" {
			return records, nil
		}
		token = page.NextPageToken
	}
}

func (s *Service) applyGoogle(ctx context.Context, account storage.AccountRecord, recs []recommendation.Recommendation, in *adsv1.ApplyRecommendationsRequest) (mutation.ApplyOutput, error) {
	client, err := s.vendors.GoogleFor(ctx, account)
	if err != nil {
		return s.failGoogleBatch(ctx, recs, in, fmt.Errorf("google client: %w", err))
	}
	svc, err := mutation.NewService(client, statusRecorder{store: s.recommendations, clock: s.clock})
	if err != nil {
		return s.failGoogleBatch(ctx, recs, in, err)
	}
	return svc.Apply(ctx, mutation.ApplyInput{
		CustomerID:      account.GoogleCustomerID,
		Recommendations: recs,
		PartialFailure:  in.GetPartialFailure(),
		ValidateOnly:    in.GetValidateOnly(),
	})
}

// failGoogleBatch fails every recommendation in the batch when no vendor
// client could be built. The batch is already marked applying, so each
// record still needs a terminal status.
func (s *Service) failGoogleBatch(ctx context.Context, recs []recommendation.Recommendation, in *adsv1.ApplyRecommendationsRequest, cause error) (mutation.ApplyOutput, error) {
	var out mutation.ApplyOutput
	for _, rec := range recs {
		out.Outcomes = append(out.Outcomes, mutation.Outcome{
			RecommendationID: rec.ID,
			OperationIndex:   -1,
			ErrorMessage:     cause.Error(),
		})
		out.FailedCount++
		if in.GetValidateOnly() {
			continue
		}
		if err := s.recordApplyingTransition(ctx, rec.ID, recommendation.StatusFailed, cause.Error()); err != nil {
			cause = errors.Join(cause, err)
		}
	}
	return out, cause
}

func (s *Service) applyMeta(ctx context.Context, account storage.AccountRecord, recs []recommendation.Recommendation) ([]*adsv1.OperationOutcome, int32, int32, error) {
	// Client setup failures fall through to the unreached sweep below so
	// the pre-marked records still get a terminal status.
	var results []meta.Outcome
	api, applyErr := s.vendors.MetaFor(ctx, account)
	if applyErr != nil {
		applyErr = fmt.Errorf("meta client: %w", applyErr)
	} else {
		applier, err := meta.NewApplier(api)
		if err != nil {
			applyErr = err
		} else {
			results, applyErr = applier.Apply(ctx, account.MetaAdAccountID, recs)
		}
	}

	var outcomes []*adsv1.OperationOutcome
	var applied, failed int32
	reached := make(map[string]bool, len(results))
	for _, result := range results {
		reached[result.RecommendationID] = true
		outcomes = append(outcomes, &adsv1.OperationOutcome{
			RecommendationId: result.RecommendationID,
			OperationIndex:   -1,
			Succeeded:        result.Succeeded,
			ErrorMessage:     result.ErrorMessage,
		})
		to, reason := recommendation.StatusApplied, ""
		if !result.Succeeded {
			to, reason = recommendation.StatusFailed, result.ErrorMessage
			failed++
		} else {
			applied++
		}
		if err := s.recordApplyingTransition(ctx, result.RecommendationID, to, reason); err != nil {
			applyErr = errors.Join(applyErr, err)
		}
	}
	if applyErr != nil {
		// Recommendations the aborted run never reached fail with the
		// abort reason instead of staying stuck in applying.
		for _, rec := range recs {
			if reached[rec.ID] {
				continue
			}
			outcomes = append(outcomes, &adsv1.OperationOutcome{
				RecommendationId: rec.ID,
				OperationIndex:   -1,
				ErrorMessage:     applyErr.Error(),
			})
			failed++
			if err := s.recordApplyingTransition(ctx, rec.ID, recommendation.StatusFailed, applyErr.Error()); err != nil {
				applyErr = errors.Join(applyErr, err)
			}
		}
	}
	return outcomes, applied, failed, applyErr
}

func (s *Service) recordApplyingTransition(ctx context.Context, recommendationID string, to recommendation.Status, reason string) error {
	return s.recommendations.UpdateRecommendationStatus(ctx, recommendationID, string(recommendation.StatusApplying), string(to), reason, s.clock().UTC())
}

func (s *Service) storeApplyResults(ctx context.Context, applyID, accountID string, in *adsv1.ApplyRecommendationsRequest, outcomes []*adsv1.OperationOutcome) error {
	now := s.clock().UTC()
	for _, outcome := range outcomes {
		rowID, err := s.idGenerator()
		if err != nil {
			return fmt.Errorf("generate apply result id: %w", err)
		}
		record := storage.ApplyResultRecord{
			ID:               rowID,
			ApplyID:          applyID,
			AccountID:        accountID,
			RecommendationID: outcome.GetRecommendationId(),
			OperationIndex:   int(outcome.GetOperationIndex()),
			ResourceName:     outcome.GetResourceName(),
			Succeeded:        outcome.GetSucceeded(),
			ErrorMessage:     outcome.GetErrorMessage(),
			PartialFailure:   in.GetPartialFailure(),
			ValidateOnly:     in.GetValidateOnly(),
			CreatedAt:        now,
		}
		if err := s.applyResults.PutApplyResult(ctx, record); err != nil {
			return err
		}
	}
	return nil
}

// ListApplyResults returns a page of apply-run audit rows for one account.
func (s *Service) ListApplyResults(ctx context.Context, in *adsv1.ListApplyResultsRequest) (*adsv1.ListApplyResultsResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "list apply results request is required")
	}
	if s.applyResults == nil {
		return nil, status.Error(codes.Internal, "apply result store is not configured")
	}

	accountID := strings.TrimSpace(in.GetAccountId())
	if accountID == "" {
		return nil, status.Error(codes.InvalidArgument, "account_id is required")
	}

	page, err := s.applyResults.ListApplyResults(ctx, accountID, clampPageSize(in.GetPageSize()), in.GetPageToken())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list apply results: %v", err)
	}

	resp := &adsv1.ListApplyResultsResponse{
		NextPageToken: page.NextPageToken,
		ApplyResults:  make([]*adsv1.ApplyResult, 0, len(page.Results)),
	}
	for _, record := range page.Results {
		resp.ApplyResults = append(resp.ApplyResults, applyResultToProto(record))
	}
	return resp, nil
}

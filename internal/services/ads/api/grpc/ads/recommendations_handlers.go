package ads

import (
	"context"
	"errors"
	"strings"

	adsv1 "github.com/adpilot/adpilot/api/gen/go/ads/v1"
	"github.com/adpilot/adpilot/internal/services/ads/filter"
	"github.com/adpilot/adpilot/internal/services/ads/recommendation"
	"github.com/adpilot/adpilot/internal/services/ads/storage"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// CreateRecommendation records one proposed campaign change for review.
func (s *Service) CreateRecommendation(ctx context.Context, in *adsv1.CreateRecommendationRequest) (*adsv1.Recommendation, error) {
	if in == nil || in.GetRecommendation() == nil {
		return nil, status.Error(codes.InvalidArgument, "recommendation is required")
	}
	if s.accounts == nil || s.recommendations == nil {
		return nil, status.Error(codes.Internal, "storage is not configured")
	}

	proposed := in.GetRecommendation()
	if _, err := s.accounts.GetAccount(ctx, strings.TrimSpace(proposed.GetAccountId())); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "account not found")
		}
		return nil, status.Errorf(codes.Internal, "get account: %v", err)
	}

	normalized, err := recommendation.NormalizeNew(recommendation.NewInput{
		AccountID:  proposed.GetAccountId(),
		CampaignID: proposed.GetCampaignId(),
		AdGroupID:  proposed.GetAdGroupId(),
		Channel:    channelFromProto(proposed.GetChannel()),
		Kind:       kindFromProto(proposed.GetKind()),
		Action:     actionFromProto(proposed.GetAction()),
		Value:      proposed.GetValue(),
		Attributes: proposed.GetAttributes(),
		Status:     statusFromProto(proposed.GetStatus()),
		Source:     proposed.GetSource(),
	})
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	normalized.ID, err = s.idGenerator()
	if err != nil {
		return nil, status.Errorf(codes.Internal, "generate recommendation id: %v", err)
	}
	now := s.clock().UTC()
	normalized.CreatedAt = now
	normalized.UpdatedAt = now

	record := recordFromRecommendation(normalized)
	if err := s.recommendations.PutRecommendation(ctx, record); err != nil {
		return nil, status.Errorf(codes.Internal, "put recommendation: %v", err)
	}

	return recommendationToProto(record), nil
}

// GetRecommendation returns one recommendation.
func (s *Service) GetRecommendation(ctx context.Context, in *adsv1.GetRecommendationRequest) (*adsv1.Recommendation, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get recommendation request is required")
	}
	if s.recommendations == nil {
		return nil, status.Error(codes.Internal, "recommendation store is not configured")
	}

	recommendationID := strings.TrimSpace(in.GetRecommendationId())
	if recommendationID == "" {
		return nil, status.Error(codes.InvalidArgument, "recommendation_id is required")
	}

	record, err := s.recommendations.GetRecommendation(ctx, recommendationID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, status.Error(codes.NotFound, "recommendation not found")
	}
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get recommendation: %v", err)
	}

	return recommendationToProto(record), nil
}

// ListRecommendations returns a page of account-scoped recommendations,
// optionally narrowed by an AIP-160 filter expression.
func (s *Service) ListRecommendations(ctx context.Context, in *adsv1.ListRecommendationsRequest) (*adsv1.ListRecommendationsResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "list recommendations request is required")
	}
	if s.recommendations == nil {
		return nil, status.Error(codes.Internal, "recommendation store is not configured")
	}

	accountID := strings.TrimSpace(in.GetAccountId())
	if accountID == "" {
		return nil, status.Error(codes.InvalidArgument, "account_id is required")
	}

	condition, err := filter.ParseRecommendationFilter(in.GetFilter())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid filter: %v", err)
	}

	page, err := s.recommendations.ListRecommendations(ctx, storage.RecommendationQuery{
		AccountID: accountID,
		Where:     condition.Clause,
		Params:    condition.Params,
		PageSize:  clampPageSize(in.GetPageSize()),
		PageToken: in.GetPageToken(),
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list recommendations: %v", err)
	}

	resp := &adsv1.ListRecommendationsResponse{
		NextPageToken:   page.NextPageToken,
		Recommendations: make([]*adsv1.Recommendation, 0, len(page.Recommendations)),
	}
	for _, record := range page.Recommendations {
		resp.Recommendations = append(resp.Recommendations, recommendationToProto(record))
	}
	return resp, nil
}

// ApproveRecommendation moves one recommendation into the approved state.
func (s *Service) ApproveRecommendation(ctx context.Context, in *adsv1.ApproveRecommendationRequest) (*adsv1.Recommendation, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "approve recommendation request is required")
	}
	return s.changeStatus(ctx, in.GetRecommendationId(), recommendation.StatusApproved, "")
}

// RejectRecommendation moves one recommendation into the rejected state.
func (s *Service) RejectRecommendation(ctx context.Context, in *adsv1.RejectRecommendationRequest) (*adsv1.Recommendation, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "reject recommendation request is required")
	}
	reason := strings.TrimSpace(in.GetReason())
	if reason == "" {
		return nil, status.Error(codes.InvalidArgument, "reason is required")
	}
	return s.changeStatus(ctx, in.GetRecommendationId(), recommendation.StatusRejected, reason)
}

func (s *Service) changeStatus(ctx context.Context, rawID string, to recommendation.Status, reason string) (*adsv1.Recommendation, error) {
	if s.recommendations == nil {
		return nil, status.Error(codes.Internal, "recommendation store is not configured")
	}

	recommendationID := strings.TrimSpace(rawID)
	if recommendationID == "" {
		return nil, status.Error(codes.InvalidArgument, "recommendation_id is required")
	}

	record, err := s.recommendations.GetRecommendation(ctx, recommendationID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, status.Error(codes.NotFound, "recommendation not found")
	}
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get recommendation: %v", err)
	}

	current, err := recommendation.ParseStatus(record.Status)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "decode recommendation status: %v", err)
	}
	if !recommendation.CanChangeStatus(current, to) {
		return nil, status.Errorf(codes.FailedPrecondition, "recommendation is %s, cannot move to %s", record.Status, to)
	}

	now := s.clock().UTC()
	err = s.recommendations.UpdateRecommendationStatus(ctx, recommendationID, record.Status, string(to), reason, now)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return nil, status.Error(codes.NotFound, "recommendation not found")
	case errors.Is(err, storage.ErrConflict):
		return nil, status.Error(codes.Aborted, "recommendation changed concurrently")
	case err != nil:
		return nil, status.Errorf(codes.Internal, "update recommendation status: %v", err)
	}

	record.Status = string(to)
	record.StatusReason = reason
	record.UpdatedAt = now
	return recommendationToProto(record), nil
}

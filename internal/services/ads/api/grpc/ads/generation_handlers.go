package ads

import (
	"context"
	"errors"
	"strings"

	adsv1 "github.com/adpilot/adpilot/api/gen/go/ads/v1"
	"github.com/adpilot/adpilot/internal/services/ads/generator"
	"github.com/adpilot/adpilot/internal/services/ads/googleads"
	"github.com/adpilot/adpilot/internal/services/ads/recommendation"
	"github.com/adpilot/adpilot/internal/services/ads/storage"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// GenerateCopy asks the model provider for ad copy drafts and stores them
// with draft status for review.
func (s *Service) GenerateCopy(ctx context.Context, in *adsv1.GenerateCopyRequest) (*adsv1.GenerateCopyResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "generate copy request is required")
	}
	if s.accounts == nil || s.recommendations == nil {
		return nil, status.Error(codes.Internal, "storage is not configured")
	}
	if s.copyGen == nil {
		return nil, status.Error(codes.Internal, "copy generator is not configured")
	}

	accountID := strings.TrimSpace(in.GetAccountId())
	if accountID == "" {
		return nil, status.Error(codes.InvalidArgument, "account_id is required")
	}
	if strings.TrimSpace(in.GetBrief()) == "" {
		return nil, status.Error(codes.InvalidArgument, "brief is required")
	}
	if _, err := s.accounts.GetAccount(ctx, accountID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "account not found")
		}
		return nil, status.Errorf(codes.Internal, "get account: %v", err)
	}

	headlines := int(in.GetHeadlineCount())
	descriptions := int(in.GetDescriptionCount())
	if headlines <= 0 && descriptions <= 0 {
		headlines, descriptions = 3, 2
	}

	var drafts []recommendation.Recommendation
	for _, ask := range []struct {
		kind  recommendation.Kind
		count int
	}{
		{recommendation.KindHeadline, headlines},
		{recommendation.KindDescription, descriptions},
	} {
		kind, count := ask.kind, ask.count
		if count <= 0 {
			continue
		}
		generated, err := s.copyGen.Generate(ctx, generator.Input{
			AccountID:  accountID,
			CampaignID: strings.TrimSpace(in.GetCampaignId()),
			AdGroupID:  strings.TrimSpace(in.GetAdGroupId()),
			Kind:       kind,
			Brief:      in.GetBrief(),
			Count:      count,
		})
		if err != nil {
			return nil, status.Errorf(codes.Internal, "generate %ss: %v", kind, err)
		}
		drafts = append(drafts, generated...)
	}

	resp := &adsv1.GenerateCopyResponse{Drafts: make([]*adsv1.Recommendation, 0, len(drafts))}
	now := s.clock().UTC()
	for _, draft := range drafts {
		draftID, err := s.idGenerator()
		if err != nil {
			return nil, status.Errorf(codes.Internal, "generate recommendation id: %v", err)
		}
		draft.ID = draftID
		draft.CreatedAt = now
		draft.UpdatedAt = now

		record := recordFromRecommendation(draft)
		if err := s.recommendations.PutRecommendation(ctx, record); err != nil {
			return nil, status.Errorf(codes.Internal, "put recommendation: %v", err)
		}
		resp.Drafts = append(resp.Drafts, recommendationToProto(record))
	}
	return resp, nil
}

// GenerateKeywordIdeas runs Google Ads keyword research for one account.
func (s *Service) GenerateKeywordIdeas(ctx context.Context, in *adsv1.GenerateKeywordIdeasRequest) (*adsv1.GenerateKeywordIdeasResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "generate keyword ideas request is required")
	}
	if s.accounts == nil {
		return nil, status.Error(codes.Internal, "account store is not configured")
	}
	if s.vendors == nil {
		return nil, status.Error(codes.Internal, "vendor clients are not configured")
	}

	accountID := strings.TrimSpace(in.GetAccountId())
	if accountID == "" {
		return nil, status.Error(codes.InvalidArgument, "account_id is required")
	}
	seeds := make([]string, 0, len(in.GetSeedKeywords()))
	for _, seed := range in.GetSeedKeywords() {
		if trimmed := strings.TrimSpace(seed); trimmed != "" {
			seeds = append(seeds, trimmed)
		}
	}
	pageURL := strings.TrimSpace(in.GetPageUrl())
	if len(seeds) == 0 && pageURL == "" {
		return nil, status.Error(codes.InvalidArgument, "seed_keywords or page_url is required")
	}

	account, err := s.accounts.GetAccount(ctx, accountID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, status.Error(codes.NotFound, "account not found")
	}
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get account: %v", err)
	}
	if account.GoogleCustomerID == "" {
		return nil, status.Error(codes.FailedPrecondition, "account has no google ads binding")
	}

	client, err := s.vendors.GoogleFor(ctx, account)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "google client: %v", err)
	}

	ideas, err := client.GenerateKeywordIdeas(ctx, account.GoogleCustomerID, googleads.KeywordIdeaInput{
		SeedKeywords:       seeds,
		PageURL:            pageURL,
		LanguageConstant:   strings.TrimSpace(in.GetLanguageConstant()),
		GeoTargetConstants: in.GetGeoTargetConstants(),
	})
	if err != nil {
		return nil, status.Errorf(codes.Unavailable, "generate keyword ideas: %v", err)
	}

	resp := &adsv1.GenerateKeywordIdeasResponse{Ideas: make([]*adsv1.KeywordIdea, 0, len(ideas))}
	for _, idea := range ideas {
		resp.Ideas = append(resp.Ideas, &adsv1.KeywordIdea{
			Text:               idea.Text,
			AvgMonthlySearches: idea.AvgMonthlySearches,
			Competition:        idea.Competition,
		})
	}
	return resp, nil
}

package ads

import (
	"context"
	"time"

	adsv1 "github.com/adpilot/adpilot/api/gen/go/ads/v1"
	"github.com/adpilot/adpilot/internal/platform/id"
	"github.com/adpilot/adpilot/internal/services/ads/generator"
	"github.com/adpilot/adpilot/internal/services/ads/googleads"
	"github.com/adpilot/adpilot/internal/services/ads/meta"
	"github.com/adpilot/adpilot/internal/services/ads/recommendation"
	"github.com/adpilot/adpilot/internal/services/ads/storage"
)

const (
	defaultPageSize = 10
	maxPageSize     = 50
)

// AccountStore persists managed account bindings.
type AccountStore interface {
	PutAccount(ctx context.Context, record storage.AccountRecord) error
	GetAccount(ctx context.Context, accountID string) (storage.AccountRecord, error)
	ListAccounts(ctx context.Context, pageSize int, pageToken string) (storage.AccountPage, error)
}

// RecommendationStore persists recommendations and their lifecycle state.
type RecommendationStore interface {
	PutRecommendation(ctx context.Context, record storage.RecommendationRecord) error
	GetRecommendation(ctx context.Context, recommendationID string) (storage.RecommendationRecord, error)
	ListRecommendations(ctx context.Context, query storage.RecommendationQuery) (storage.RecommendationPage, error)
	UpdateRecommendationStatus(ctx context.Context, recommendationID, expectedStatus, status, reason string, updatedAt time.Time) error
}

// ApplyResultStore persists apply-run audit rows.
type ApplyResultStore interface {
	PutApplyResult(ctx context.Context, record storage.ApplyResultRecord) error
	ListApplyResults(ctx context.Context, accountID string, pageSize int, pageToken string) (storage.ApplyResultPage, error)
}

// GoogleAdsAPI is the slice of the Google Ads client the service uses.
type GoogleAdsAPI interface {
	ResponsiveSearchAds(ctx context.Context, customerID, adGroupID string) ([]googleads.Ad, error)
	Mutate(ctx context.Context, customerID string, request googleads.MutateRequest) (googleads.MutateResponse, error)
	GenerateKeywordIdeas(ctx context.Context, customerID string, input googleads.KeywordIdeaInput) ([]googleads.KeywordIdea, error)
}

// VendorClients builds per-account vendor API clients. Credential material
// is resolved inside the implementation and never crosses this boundary.
type VendorClients interface {
	GoogleFor(ctx context.Context, account storage.AccountRecord) (GoogleAdsAPI, error)
	MetaFor(ctx context.Context, account storage.AccountRecord) (meta.GraphAPI, error)
}

// CopyGenerator produces draft copy recommendations.
type CopyGenerator interface {
	Generate(ctx context.Context, input generator.Input) ([]recommendation.Recommendation, error)
}

// SecretSealer encrypts credential values before persistence.
type SecretSealer interface {
	Seal(value string) (string, error)
	Open(sealed string) (string, error)
}

// Service implements ads.v1.AdsService.
//
// It is the orchestration root where account, recommendation, and apply-run
// state is validated and projected into protocol responses for callers.
type Service struct {
	adsv1.UnimplementedAdsServiceServer

	accounts        AccountStore
	recommendations RecommendationStore
	applyResults    ApplyResultStore
	vendors         VendorClients
	copyGen         CopyGenerator
	sealer          SecretSealer

	clock       func() time.Time
	idGenerator func() (string, error)
}

// NewService builds a new ads.v1 service implementation. vendors and copyGen
// may be nil for deployments that only review recommendations.
func NewService(accounts AccountStore, recommendations RecommendationStore, applyResults ApplyResultStore, vendors VendorClients, copyGen CopyGenerator, sealer SecretSealer) *Service {
	return &Service{
		accounts:        accounts,
		recommendations: recommendations,
		applyResults:    applyResults,
		vendors:         vendors,
		copyGen:         copyGen,
		sealer:          sealer,
		clock:           time.Now,
		idGenerator:     id.NewID,
	}
}

package ads

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	adsv1 "github.com/adpilot/adpilot/api/gen/go/ads/v1"
	"github.com/adpilot/adpilot/internal/services/ads/generator"
	"github.com/adpilot/adpilot/internal/services/ads/googleads"
	"github.com/adpilot/adpilot/internal/services/ads/meta"
	"github.com/adpilot/adpilot/internal/services/ads/recommendation"
	"github.com/adpilot/adpilot/internal/services/ads/storage"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type fakeStore struct {
	accounts        map[string]storage.AccountRecord
	recommendations map[string]storage.RecommendationRecord
	applyResults    []storage.ApplyResultRecord
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		accounts:        make(map[string]storage.AccountRecord),
		recommendations: make(map[string]storage.RecommendationRecord),
	}
}

func (f *fakeStore) PutAccount(_ context.Context, record storage.AccountRecord) error {
	f.accounts[record.ID] = record
	return nil
}

func (f *fakeStore) GetAccount(_ context.Context, accountID string) (storage.AccountRecord, error) {
	record, ok := f.accounts[accountID]
	if !ok {
		return storage.AccountRecord{}, storage.ErrNotFound
	}
	return record, nil
}

func (f *fakeStore) ListAccounts(_ context.Context, _ int, _ string) (storage.AccountPage, error) {
	page := storage.AccountPage{}
	for _, record := range f.accounts {
		page.Accounts = append(page.Accounts, record)
	}
	return page, nil
}

func (f *fakeStore) PutRecommendation(_ context.Context, record storage.RecommendationRecord) error {
	f.recommendations[record.ID] = record
	return nil
}

func (f *fakeStore) GetRecommendation(_ context.Context, recommendationID string) (storage.RecommendationRecord, error) {
	record, ok := f.recommendations[recommendationID]
	if !ok {
		return storage.RecommendationRecord{}, storage.ErrNotFound
	}
	return record, nil
}

func (f *fakeStore) ListRecommendations(_ context.Context, query storage.RecommendationQuery) (storage.RecommendationPage, error) {
	page := storage.RecommendationPage{}
	for _, record := range f.recommendations {
		if record.AccountID != query.AccountID {
			continue
		}
		if query.Where == "status = ?" && record.Status != query.Params[0].(string) {
			continue
		}
		page.Recommendations = append(page.Recommendations, record)
	}
	sort.Slice(page.Recommendations, func(i, j int) bool {
		return page.Recommendations[i].ID < page.Recommendations[j].ID
	})
	return page, nil
}

func (f *fakeStore) UpdateRecommendationStatus(_ context.Context, recommendationID, expectedStatus, newStatus, reason string, updatedAt time.Time) error {
	record, ok := f.recommendations[recommendationID]
	if !ok {
		return storage.ErrNotFound
	}
	if expectedStatus != "" && record.Status != expectedStatus {
		return storage.ErrConflict
	}
	record.Status = newStatus
	record.StatusReason = reason
	record.UpdatedAt = updatedAt
	f.recommendations[recommendationID] = record
	return nil
}

func (f *fakeStore) PutApplyResult(_ context.Context, record storage.ApplyResultRecord) error {
	f.applyResults = append(f.applyResults, record)
	return nil
}

func (f *fakeStore) ListApplyResults(_ context.Context, accountID string, _ int, _ string) (storage.ApplyResultPage, error) {
	page := storage.ApplyResultPage{}
	for _, record := range f.applyResults {
		if record.AccountID == accountID {
			page.Results = append(page.Results, record)
		}
	}
	return page, nil
}

type fakeGoogle struct {
	ads         []googleads.Ad
	ideas       []googleads.KeywordIdea
	mutateFn    func(request googleads.MutateRequest) (googleads.MutateResponse, error)
	lastRequest *googleads.MutateRequest
	mutateCalls int
}

func (f *fakeGoogle) ResponsiveSearchAds(_ context.Context, _, _ string) ([]googleads.Ad, error) {
	return f.ads, nil
}

func (f *fakeGoogle) Mutate(_ context.Context, _ string, request googleads.MutateRequest) (googleads.MutateResponse, error) {
	f.mutateCalls++
	f.lastRequest = &request
	if f.mutateFn != nil {
		return f.mutateFn(request)
	}
	results := make([]googleads.MutateOperationResponse, len(request.Operations))
	for i := range results {
		results[i] = googleads.MutateOperationResponse{
			AdGroupCriterionResult: &googleads.MutateResult{ResourceName: fmt.Sprintf("customers/1/adGroupCriteria/%d", i)},
		}
	}
	return googleads.MutateResponse{Results: results}, nil
}

func (f *fakeGoogle) GenerateKeywordIdeas(_ context.Context, _ string, _ googleads.KeywordIdeaInput) ([]googleads.KeywordIdea, error) {
	return f.ideas, nil
}

type fakeGraphAPI struct {
	adSets map[string]meta.AdSet
}

func (f *fakeGraphAPI) AdSet(_ context.Context, adSetID string) (meta.AdSet, error) {
	return f.adSets[adSetID], nil
}

func (f *fakeGraphAPI) UpdateTargeting(_ context.Context, adSetID string, targeting meta.Targeting) error {
	adSet := f.adSets[adSetID]
	adSet.Targeting = &targeting
	f.adSets[adSetID] = adSet
	return nil
}

func (f *fakeGraphAPI) AdCreative(_ context.Context, _ string) (meta.Creative, error) {
	return meta.Creative{ID: "900", Title: "Old"}, nil
}

func (f *fakeGraphAPI) CreateCreative(_ context.Context, _ string, _ meta.Creative) (string, error) {
	return "901", nil
}

func (f *fakeGraphAPI) SwapCreative(_ context.Context, _, _ string) error {
	return nil
}

type fakeVendors struct {
	google    *fakeGoogle
	graph     *fakeGraphAPI
	googleErr error
	metaErr   error
}

func (f *fakeVendors) GoogleFor(_ context.Context, _ storage.AccountRecord) (GoogleAdsAPI, error) {
	if f.googleErr != nil {
		return nil, f.googleErr
	}
	return f.google, nil
}

func (f *fakeVendors) MetaFor(_ context.Context, _ storage.AccountRecord) (meta.GraphAPI, error) {
	if f.metaErr != nil {
		return nil, f.metaErr
	}
	return f.graph, nil
}

type fakeCopyGen struct {
	err error
}

func (f *fakeCopyGen) Generate(_ context.Context, input generator.Input) ([]recommendation.Recommendation, error) {
	if f.err != nil {
		return nil, f.err
	}
	recs := make([]recommendation.Recommendation, 0, input.Count)
	for i := 0; i < input.Count; i++ {
		recs = append(recs, recommendation.Recommendation{
			AccountID: input.AccountID,
			AdGroupID: input.AdGroupID,
			Channel:   recommendation.ChannelGoogle,
			Kind:      input.Kind,
			Action:    recommendation.ActionAdd,
			Value:     fmt.Sprintf("%s variant %d", input.Kind, i+1),
			Status:    recommendation.StatusDraft,
			Source:    "llm",
		})
	}
	return recs, nil
}

type fakeSealer struct{}

func (fakeSealer) Seal(value string) (string, error)  { return "sealed:" + value, nil }
func (fakeSealer) Open(sealed string) (string, error) { return strings.TrimPrefix(sealed, "sealed:"), nil }

func newTestService(store *fakeStore, vendors VendorClients, copyGen CopyGenerator) *Service {
	svc := NewService(store, store, store, vendors, copyGen, fakeSealer{})
	svc.clock = func() time.Time { return time.UnixMilli(1700000000000) }
	sequence := 0
	svc.idGenerator = func() (string, error) {
		sequence++
		return fmt.Sprintf("id-%03d", sequence), nil
	}
	return svc
}

func seedAccount(t *testing.T, store *fakeStore, accountID string) storage.AccountRecord {
	t.Helper()
	record := storage.AccountRecord{
		ID:               accountID,
		Name:             "Acme",
		GoogleCustomerID: "1234567890",
		MetaAdAccountID:  "987",
		CreatedAt:        time.UnixMilli(1600000000000),
		UpdatedAt:        time.UnixMilli(1600000000000),
	}
	store.accounts[accountID] = record
	return record
}

func seedRecommendation(t *testing.T, store *fakeStore, id, accountID string, kind recommendation.Kind, recStatus recommendation.Status) storage.RecommendationRecord {
	t.Helper()
	record := storage.RecommendationRecord{
		ID:         id,
		AccountID:  accountID,
		CampaignID: "11",
		AdGroupID:  "22",
		Channel:    string(recommendation.ChannelGoogle),
		Kind:       string(kind),
		Action:     string(recommendation.ActionAdd),
		Value:      "running shoes",
		Attributes: map[string]string{recommendation.AttrMatchType: "exact"},
		Status:     string(recStatus),
		Source:     "manual",
		CreatedAt:  time.UnixMilli(1600000000000),
		UpdatedAt:  time.UnixMilli(1600000000000),
	}
	store.recommendations[id] = record
	return record
}

func TestRegisterAccountValidation(t *testing.T) {
	svc := newTestService(newFakeStore(), nil, nil)

	_, err := svc.RegisterAccount(context.Background(), &adsv1.RegisterAccountRequest{GoogleCustomerId: "123"})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("missing name code = %v, want %v", status.Code(err), codes.InvalidArgument)
	}

	_, err = svc.RegisterAccount(context.Background(), &adsv1.RegisterAccountRequest{Name: "Acme"})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("missing bindings code = %v, want %v", status.Code(err), codes.InvalidArgument)
	}
}

func TestRegisterAndGetAccount(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, nil, nil)

	created, err := svc.RegisterAccount(context.Background(), &adsv1.RegisterAccountRequest{
		Name:                  "Acme",
		GoogleCustomerId:      "1234567890",
		GoogleLoginCustomerId: "999",
	})
	if err != nil {
		t.Fatalf("RegisterAccount: %v", err)
	}
	if created.GetId() == "" {
		t.Fatal("RegisterAccount returned empty id")
	}

	fetched, err := svc.GetAccount(context.Background(), &adsv1.GetAccountRequest{AccountId: created.GetId()})
	if err != nil {
		t.Fatalf("GetAccount: %v", err)
	}
	if fetched.GetName() != "Acme" || fetched.GetGoogleLoginCustomerId() != "999" {
		t.Fatalf("GetAccount = %v, want name Acme and login customer 999", fetched)
	}

	_, err = svc.GetAccount(context.Background(), &adsv1.GetAccountRequest{AccountId: "missing"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("unknown account code = %v, want %v", status.Code(err), codes.NotFound)
	}
}

func TestRegisterAccountSealsRefreshToken(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, nil, nil)

	created, err := svc.RegisterAccount(context.Background(), &adsv1.RegisterAccountRequest{
		Name:               "Acme",
		GoogleCustomerId:   "1234567890",
		GoogleRefreshToken: "1//refresh",
	})
	if err != nil {
		t.Fatalf("RegisterAccount: %v", err)
	}

	stored := store.accounts[created.GetId()]
	if stored.CredentialCiphertext != "sealed:1//refresh" {
		t.Fatalf("CredentialCiphertext = %q, want sealed payload", stored.CredentialCiphertext)
	}
}

func TestCreateRecommendationNormalizesDefaults(t *testing.T) {
	store := newFakeStore()
	seedAccount(t, store, "acct-1")
	svc := newTestService(store, nil, nil)

	created, err := svc.CreateRecommendation(context.Background(), &adsv1.CreateRecommendationRequest{
		Recommendation: &adsv1.Recommendation{
			AccountId: "acct-1",
			AdGroupId: "22",
			Channel:   adsv1.RecommendationChannel_RECOMMENDATION_CHANNEL_GOOGLE,
			Kind:      adsv1.RecommendationKind_RECOMMENDATION_KIND_KEYWORD,
			Value:     "  trail shoes  ",
		},
	})
	if err != nil {
		t.Fatalf("CreateRecommendation: %v", err)
	}
	if created.GetValue() != "trail shoes" {
		t.Fatalf("Value = %q, want trimmed", created.GetValue())
	}
	if created.GetStatus() != adsv1.RecommendationStatus_RECOMMENDATION_STATUS_PENDING {
		t.Fatalf("Status = %v, want pending default", created.GetStatus())
	}
	if created.GetAction() != adsv1.RecommendationAction_RECOMMENDATION_ACTION_ADD {
		t.Fatalf("Action = %v, want add default", created.GetAction())
	}
	if created.GetSource() != "manual" {
		t.Fatalf("Source = %q, want manual default", created.GetSource())
	}
	if _, ok := store.recommendations[created.GetId()]; !ok {
		t.Fatal("recommendation was not persisted")
	}
}

func TestCreateRecommendationRejectsBadInput(t *testing.T) {
	store := newFakeStore()
	seedAccount(t, store, "acct-1")
	svc := newTestService(store, nil, nil)

	_, err := svc.CreateRecommendation(context.Background(), &adsv1.CreateRecommendationRequest{
		Recommendation: &adsv1.Recommendation{
			AccountId: "missing",
			Channel:   adsv1.RecommendationChannel_RECOMMENDATION_CHANNEL_GOOGLE,
			Kind:      adsv1.RecommendationKind_RECOMMENDATION_KIND_KEYWORD,
			Value:     "shoes",
		},
	})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("unknown account code = %v, want %v", status.Code(err), codes.NotFound)
	}

	_, err = svc.CreateRecommendation(context.Background(), &adsv1.CreateRecommendationRequest{
		Recommendation: &adsv1.Recommendation{
			AccountId: "acct-1",
			Channel:   adsv1.RecommendationChannel_RECOMMENDATION_CHANNEL_GOOGLE,
			Value:     "shoes",
		},
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("missing kind code = %v, want %v", status.Code(err), codes.InvalidArgument)
	}
}

func TestListRecommendationsFilter(t *testing.T) {
	store := newFakeStore()
	seedAccount(t, store, "acct-1")
	seedRecommendation(t, store, "rec-1", "acct-1", recommendation.KindKeyword, recommendation.StatusPending)
	seedRecommendation(t, store, "rec-2", "acct-1", recommendation.KindKeyword, recommendation.StatusApproved)
	svc := newTestService(store, nil, nil)

	resp, err := svc.ListRecommendations(context.Background(), &adsv1.ListRecommendationsRequest{
		AccountId: "acct-1",
		Filter:    `status = "approved"`,
	})
	if err != nil {
		t.Fatalf("ListRecommendations: %v", err)
	}
	if len(resp.GetRecommendations()) != 1 || resp.GetRecommendations()[0].GetId() != "rec-2" {
		t.Fatalf("Recommendations = %v, want only rec-2", resp.GetRecommendations())
	}

	_, err = svc.ListRecommendations(context.Background(), &adsv1.ListRecommendationsRequest{
		AccountId: "acct-1",
		Filter:    `nonsense >< 3`,
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("invalid filter code = %v, want %v", status.Code(err), codes.InvalidArgument)
	}
}

func TestApproveAndRejectLifecycle(t *testing.T) {
	store := newFakeStore()
	seedAccount(t, store, "acct-1")
	seedRecommendation(t, store, "rec-1", "acct-1", recommendation.KindKeyword, recommendation.StatusPending)
	svc := newTestService(store, nil, nil)

	approved, err := svc.ApproveRecommendation(context.Background(), &adsv1.ApproveRecommendationRequest{RecommendationId: "rec-1"})
	if err != nil {
		t.Fatalf("ApproveRecommendation: %v", err)
	}
	if approved.GetStatus() != adsv1.RecommendationStatus_RECOMMENDATION_STATUS_APPROVED {
		t.Fatalf("Status = %v, want approved", approved.GetStatus())
	}

	_, err = svc.ApproveRecommendation(context.Background(), &adsv1.ApproveRecommendationRequest{RecommendationId: "rec-1"})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("double approve code = %v, want %v", status.Code(err), codes.FailedPrecondition)
	}

	_, err = svc.RejectRecommendation(context.Background(), &adsv1.RejectRecommendationRequest{RecommendationId: "rec-1"})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("reject without reason code = %v, want %v", status.Code(err), codes.InvalidArgument)
	}

	rejected, err := svc.RejectRecommendation(context.Background(), &adsv1.RejectRecommendationRequest{
		RecommendationId: "rec-1",
		Reason:           "budget freeze",
	})
	if err != nil {
		t.Fatalf("RejectRecommendation: %v", err)
	}
	if rejected.GetStatusReason() != "budget freeze" {
		t.Fatalf("StatusReason = %q, want budget freeze", rejected.GetStatusReason())
	}
}

func TestGenerateCopyStoresDrafts(t *testing.T) {
	store := newFakeStore()
	seedAccount(t, store, "acct-1")
	svc := newTestService(store, nil, &fakeCopyGen{})

	resp, err := svc.GenerateCopy(context.Background(), &adsv1.GenerateCopyRequest{
		AccountId:        "acct-1",
		AdGroupId:        "22",
		Brief:            "lightweight trail shoes",
		HeadlineCount:    2,
		DescriptionCount: 1,
	})
	if err != nil {
		t.Fatalf("GenerateCopy: %v", err)
	}
	if len(resp.GetDrafts()) != 3 {
		t.Fatalf("Drafts = %d, want 3", len(resp.GetDrafts()))
	}
	for _, draft := range resp.GetDrafts() {
		if draft.GetStatus() != adsv1.RecommendationStatus_RECOMMENDATION_STATUS_DRAFT {
			t.Fatalf("draft status = %v, want draft", draft.GetStatus())
		}
		if _, ok := store.recommendations[draft.GetId()]; !ok {
			t.Fatalf("draft %s was not persisted", draft.GetId())
		}
	}

	_, err = svc.GenerateCopy(context.Background(), &adsv1.GenerateCopyRequest{AccountId: "acct-1"})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("missing brief code = %v, want %v", status.Code(err), codes.InvalidArgument)
	}
}

func TestGenerateKeywordIdeas(t *testing.T) {
	store := newFakeStore()
	seedAccount(t, store, "acct-1")
	vendors := &fakeVendors{google: &fakeGoogle{ideas: []googleads.KeywordIdea{
		{Text: "trail running shoes", AvgMonthlySearches: 5400, Competition: "HIGH"},
	}}}
	svc := newTestService(store, vendors, nil)

	resp, err := svc.GenerateKeywordIdeas(context.Background(), &adsv1.GenerateKeywordIdeasRequest{
		AccountId:    "acct-1",
		SeedKeywords: []string{"trail shoes"},
	})
	if err != nil {
		t.Fatalf("GenerateKeywordIdeas: %v", err)
	}
	if len(resp.GetIdeas()) != 1 || resp.GetIdeas()[0].GetAvgMonthlySearches() != 5400 {
		t.Fatalf("Ideas = %v, want one idea with 5400 searches", resp.GetIdeas())
	}

	_, err = svc.GenerateKeywordIdeas(context.Background(), &adsv1.GenerateKeywordIdeasRequest{AccountId: "acct-1"})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("missing seeds code = %v, want %v", status.Code(err), codes.InvalidArgument)
	}
}

func TestApplyRecommendationsHappyPath(t *testing.T) {
	store := newFakeStore()
	seedAccount(t, store, "acct-1")
	seedRecommendation(t, store, "rec-1", "acct-1", recommendation.KindKeyword, recommendation.StatusApproved)
	vendors := &fakeVendors{google: &fakeGoogle{}}
	svc := newTestService(store, vendors, nil)

	resp, err := svc.ApplyRecommendations(context.Background(), &adsv1.ApplyRecommendationsRequest{
		AccountId:      "acct-1",
		PartialFailure: true,
	})
	if err != nil {
		t.Fatalf("ApplyRecommendations: %v", err)
	}
	if resp.GetApplyId() == "" {
		t.Fatal("ApplyId is empty")
	}
	if resp.GetAppliedCount() != 1 || resp.GetFailedCount() != 0 {
		t.Fatalf("counts = %d/%d, want 1/0", resp.GetAppliedCount(), resp.GetFailedCount())
	}
	if len(resp.GetOutcomes()) != 1 || !resp.GetOutcomes()[0].GetSucceeded() {
		t.Fatalf("Outcomes = %v, want one success", resp.GetOutcomes())
	}

	if got := store.recommendations["rec-1"].Status; got != string(recommendation.StatusApplied) {
		t.Fatalf("stored status = %q, want applied", got)
	}
	if len(store.applyResults) != 1 {
		t.Fatalf("apply results = %d, want 1", len(store.applyResults))
	}
	if store.applyResults[0].ApplyID != resp.GetApplyId() {
		t.Fatalf("audit ApplyID = %q, want %q", store.applyResults[0].ApplyID, resp.GetApplyId())
	}
	if !vendors.google.lastRequest.PartialFailure {
		t.Fatal("mutate request did not carry partial failure")
	}
}

func TestApplyRecommendationsPartialFailure(t *testing.T) {
	store := newFakeStore()
	seedAccount(t, store, "acct-1")
	seedRecommendation(t, store, "rec-1", "acct-1", recommendation.KindKeyword, recommendation.StatusApproved)
	record := seedRecommendation(t, store, "rec-2", "acct-1", recommendation.KindKeyword, recommendation.StatusApproved)
	record.AdGroupID = "33"
	record.Value = "road shoes"
	store.recommendations["rec-2"] = record

	google := &fakeGoogle{}
	google.mutateFn = func(request googleads.MutateRequest) (googleads.MutateResponse, error) {
		results := make([]googleads.MutateOperationResponse, len(request.Operations))
		results[0] = googleads.MutateOperationResponse{
			AdGroupCriterionResult: &googleads.MutateResult{ResourceName: "customers/1/adGroupCriteria/1"},
		}
		return googleads.MutateResponse{
			Results:         results,
			OperationErrors: []googleads.OperationError{{Index: 1, Message: "policy violation"}},
		}, nil
	}
	svc := newTestService(store, &fakeVendors{google: google}, nil)

	resp, err := svc.ApplyRecommendations(context.Background(), &adsv1.ApplyRecommendationsRequest{
		AccountId:      "acct-1",
		PartialFailure: true,
	})
	if err != nil {
		t.Fatalf("ApplyRecommendations: %v", err)
	}
	if resp.GetAppliedCount() != 1 || resp.GetFailedCount() != 1 {
		t.Fatalf("counts = %d/%d, want 1/1", resp.GetAppliedCount(), resp.GetFailedCount())
	}

	var failedRec string
	for _, outcome := range resp.GetOutcomes() {
		if !outcome.GetSucceeded() {
			failedRec = outcome.GetRecommendationId()
			if !strings.Contains(outcome.GetErrorMessage(), "policy violation") {
				t.Fatalf("ErrorMessage = %q, want policy violation", outcome.GetErrorMessage())
			}
		}
	}
	if got := store.recommendations[failedRec].Status; got != string(recommendation.StatusFailed) {
		t.Fatalf("failed rec status = %q, want failed", got)
	}
	if len(store.applyResults) != 2 {
		t.Fatalf("apply results = %d, want 2", len(store.applyResults))
	}
}

func TestApplyRecommendationsExplicitIDs(t *testing.T) {
	store := newFakeStore()
	seedAccount(t, store, "acct-1")
	seedAccount(t, store, "acct-2")
	seedRecommendation(t, store, "rec-pending", "acct-1", recommendation.KindKeyword, recommendation.StatusPending)
	other := seedRecommendation(t, store, "rec-other", "acct-2", recommendation.KindKeyword, recommendation.StatusApproved)
	other.AccountID = "acct-2"
	store.recommendations["rec-other"] = other
	svc := newTestService(store, &fakeVendors{google: &fakeGoogle{}}, nil)

	_, err := svc.ApplyRecommendations(context.Background(), &adsv1.ApplyRecommendationsRequest{
		AccountId:         "acct-1",
		RecommendationIds: []string{"rec-pending"},
	})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("pending rec code = %v, want %v", status.Code(err), codes.FailedPrecondition)
	}

	_, err = svc.ApplyRecommendations(context.Background(), &adsv1.ApplyRecommendationsRequest{
		AccountId:         "acct-1",
		RecommendationIds: []string{"rec-missing"},
	})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("missing rec code = %v, want %v", status.Code(err), codes.NotFound)
	}

	_, err = svc.ApplyRecommendations(context.Background(), &adsv1.ApplyRecommendationsRequest{
		AccountId:         "acct-1",
		RecommendationIds: []string{"rec-other"},
	})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("cross-account rec code = %v, want %v", status.Code(err), codes.NotFound)
	}
}

func TestApplyRecommendationsValidateOnly(t *testing.T) {
	store := newFakeStore()
	seedAccount(t, store, "acct-1")
	seedRecommendation(t, store, "rec-1", "acct-1", recommendation.KindKeyword, recommendation.StatusApproved)
	vendors := &fakeVendors{google: &fakeGoogle{}}
	svc := newTestService(store, vendors, nil)

	resp, err := svc.ApplyRecommendations(context.Background(), &adsv1.ApplyRecommendationsRequest{
		AccountId:    "acct-1",
		ValidateOnly: true,
	})
	if err != nil {
		t.Fatalf("ApplyRecommendations: %v", err)
	}
	if !vendors.google.lastRequest.ValidateOnly {
		t.Fatal("mutate request did not carry validate only")
	}
	if got := store.recommendations["rec-1"].Status; got != string(recommendation.StatusApproved) {
		t.Fatalf("stored status = %q, want approved untouched", got)
	}
	if len(store.applyResults) != 1 || !store.applyResults[0].ValidateOnly {
		t.Fatalf("apply results = %v, want one validate-only row", store.applyResults)
	}
	if resp.GetAppliedCount() != 1 {
		t.Fatalf("AppliedCount = %d, want 1", resp.GetAppliedCount())
	}
}

func TestApplyRecommendationsMetaChannel(t *testing.T) {
	store := newFakeStore()
	seedAccount(t, store, "acct-1")
	record := seedRecommendation(t, store, "rec-1", "acct-1", recommendation.KindAgeRange, recommendation.StatusApproved)
	record.Channel = string(recommendation.ChannelMeta)
	record.Value = "AGE_RANGE_25_34"
	record.Attributes = nil
	store.recommendations["rec-1"] = record

	graph := &fakeGraphAPI{adSets: map[string]meta.AdSet{"22": {ID: "22"}}}
	svc := newTestService(store, &fakeVendors{graph: graph}, nil)

	resp, err := svc.ApplyRecommendations(context.Background(), &adsv1.ApplyRecommendationsRequest{AccountId: "acct-1"})
	if err != nil {
		t.Fatalf("ApplyRecommendations: %v", err)
	}
	if resp.GetAppliedCount() != 1 {
		t.Fatalf("AppliedCount = %d, want 1", resp.GetAppliedCount())
	}
	if got := store.recommendations["rec-1"].Status; got != string(recommendation.StatusApplied) {
		t.Fatalf("stored status = %q, want applied", got)
	}
	targeting := graph.adSets["22"].Targeting
	if targeting == nil || targeting.AgeMin != 25 || targeting.AgeMax != 34 {
		t.Fatalf("targeting = %+v, want age 25-34", targeting)
	}

	second := seedRecommendation(t, store, "rec-2", "acct-1", recommendation.KindAgeRange, recommendation.StatusApproved)
	second.Channel = string(recommendation.ChannelMeta)
	second.Value = "AGE_RANGE_35_44"
	second.Attributes = nil
	store.recommendations["rec-2"] = second

	_, err = svc.ApplyRecommendations(context.Background(), &adsv1.ApplyRecommendationsRequest{
		AccountId:         "acct-1",
		RecommendationIds: []string{"rec-2"},
		ValidateOnly:      true,
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("validate-only meta code = %v, want %v", status.Code(err), codes.InvalidArgument)
	}
}

func TestApplyRecommendationsGoogleClientErrorFailsRecords(t *testing.T) {
	store := newFakeStore()
	seedAccount(t, store, "acct-1")
	seedRecommendation(t, store, "rec-1", "acct-1", recommendation.KindKeyword, recommendation.StatusApproved)
	svc := newTestService(store, &fakeVendors{googleErr: errors.New("token exchange failed")}, nil)

	_, err := svc.ApplyRecommendations(context.Background(), &adsv1.ApplyRecommendationsRequest{AccountId: "acct-1"})
	if status.Code(err) != codes.Unavailable {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.Unavailable)
	}

	record := store.recommendations["rec-1"]
	if record.Status != string(recommendation.StatusFailed) {
		t.Fatalf("stored status = %q, want failed so a later run can retry", record.Status)
	}
	if !strings.Contains(record.StatusReason, "token exchange failed") {
		t.Fatalf("StatusReason = %q, want client error", record.StatusReason)
	}
	if len(store.applyResults) != 1 || store.applyResults[0].Succeeded {
		t.Fatalf("apply results = %v, want one failed audit row", store.applyResults)
	}
}

func TestApplyRecommendationsMetaClientErrorFailsRecords(t *testing.T) {
	store := newFakeStore()
	seedAccount(t, store, "acct-1")
	record := seedRecommendation(t, store, "rec-1", "acct-1", recommendation.KindAgeRange, recommendation.StatusApproved)
	record.Channel = string(recommendation.ChannelMeta)
	record.Value = "AGE_RANGE_25_34"
	record.Attributes = nil
	store.recommendations["rec-1"] = record
	svc := newTestService(store, &fakeVendors{metaErr: errors.New("access token expired")}, nil)

	_, err := svc.ApplyRecommendations(context.Background(), &adsv1.ApplyRecommendationsRequest{AccountId: "acct-1"})
	if status.Code(err) != codes.Unavailable {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.Unavailable)
	}

	stored := store.recommendations["rec-1"]
	if stored.Status != string(recommendation.StatusFailed) {
		t.Fatalf("stored status = %q, want failed so a later run can retry", stored.Status)
	}
	if !strings.Contains(stored.StatusReason, "access token expired") {
		t.Fatalf("StatusReason = %q, want client error", stored.StatusReason)
	}
	if len(store.applyResults) != 1 || store.applyResults[0].Succeeded {
		t.Fatalf("apply results = %v, want one failed audit row", store.applyResults)
	}
}

func TestApplyRecommendationsNoApproved(t *testing.T) {
	store := newFakeStore()
	seedAccount(t, store, "acct-1")
	svc := newTestService(store, &fakeVendors{google: &fakeGoogle{}}, nil)

	_, err := svc.ApplyRecommendations(context.Background(), &adsv1.ApplyRecommendationsRequest{AccountId: "acct-1"})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("empty batch code = %v, want %v", status.Code(err), codes.FailedPrecondition)
	}
}

func TestListApplyResults(t *testing.T) {
	store := newFakeStore()
	seedAccount(t, store, "acct-1")
	store.applyResults = []storage.ApplyResultRecord{
		{ID: "row-1", ApplyID: "apply-1", AccountID: "acct-1", RecommendationID: "rec-1", OperationIndex: 0, Succeeded: true},
		{ID: "row-2", ApplyID: "apply-1", AccountID: "acct-2", RecommendationID: "rec-9", OperationIndex: -1},
	}
	svc := newTestService(store, nil, nil)

	resp, err := svc.ListApplyResults(context.Background(), &adsv1.ListApplyResultsRequest{AccountId: "acct-1"})
	if err != nil {
		t.Fatalf("ListApplyResults: %v", err)
	}
	if len(resp.GetApplyResults()) != 1 || resp.GetApplyResults()[0].GetId() != "row-1" {
		t.Fatalf("ApplyResults = %v, want only row-1", resp.GetApplyResults())
	}
}

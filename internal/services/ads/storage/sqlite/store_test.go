package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/adpilot/adpilot/internal/services/ads/storage"
)

func openTempStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ads.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func testAccount(id string) storage.AccountRecord {
	created := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	return storage.AccountRecord{
		ID:               id,
		Name:             "Acme Running",
		GoogleCustomerID: "1234567890",
		MetaAdAccountID:  "456",
		CreatedAt:        created,
		UpdatedAt:        created.Add(time.Hour),
	}
}

func testRecommendation(id, accountID string) storage.RecommendationRecord {
	created := time.Date(2026, 2, 2, 9, 0, 0, 0, time.UTC)
	return storage.RecommendationRecord{
		ID:         id,
		AccountID:  accountID,
		CampaignID: "42",
		AdGroupID:  "7",
		Channel:    "google",
		Kind:       "headline",
		Action:     "add",
		Value:      "Free Shipping Today",
		Attributes: map[string]string{"pinned_field": "HEADLINE_1"},
		Status:     "pending",
		Source:     "llm",
		CreatedAt:  created,
		UpdatedAt:  created,
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestStoreDBNilSafe(t *testing.T) {
	var store *Store
	if store.DB() != nil {
		t.Fatal("expected nil DB for nil store")
	}
}

func TestPutGetAccountRoundTrip(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	input := testAccount("acct-1")
	if err := store.PutAccount(ctx, input); err != nil {
		t.Fatalf("PutAccount() error = %v", err)
	}

	got, err := store.GetAccount(ctx, "acct-1")
	if err != nil {
		t.Fatalf("GetAccount() error = %v", err)
	}
	if got.Name != input.Name {
		t.Fatalf("Name = %q, want %q", got.Name, input.Name)
	}
	if got.GoogleCustomerID != input.GoogleCustomerID {
		t.Fatalf("GoogleCustomerID = %q, want %q", got.GoogleCustomerID, input.GoogleCustomerID)
	}
	if !got.CreatedAt.Equal(input.CreatedAt) {
		t.Fatalf("CreatedAt = %v, want %v", got.CreatedAt, input.CreatedAt)
	}
	if !got.UpdatedAt.Equal(input.UpdatedAt) {
		t.Fatalf("UpdatedAt = %v, want %v", got.UpdatedAt, input.UpdatedAt)
	}
}

func TestGetAccountNotFound(t *testing.T) {
	store := openTempStore(t)

	_, err := store.GetAccount(context.Background(), "missing")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("GetAccount() error = %v, want ErrNotFound", err)
	}
}

func TestPutAccountRequiresVendorBinding(t *testing.T) {
	store := openTempStore(t)

	account := testAccount("acct-1")
	account.GoogleCustomerID = ""
	account.MetaAdAccountID = ""
	if err := store.PutAccount(context.Background(), account); err == nil {
		t.Fatal("PutAccount() error = nil, want vendor binding error")
	}
}

func TestListAccountsPagination(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	for _, id := range []string{"acct-1", "acct-2", "acct-3"} {
		if err := store.PutAccount(ctx, testAccount(id)); err != nil {
			t.Fatalf("PutAccount(%s) error = %v", id, err)
		}
	}

	first, err := store.ListAccounts(ctx, 2, "")
	if err != nil {
		t.Fatalf("ListAccounts() error = %v", err)
	}
	if len(first.Accounts) != 2 {
		t.Fatalf("len(Accounts) = %d, want 2", len(first.Accounts))
	}
	if first.NextPageToken == "" {
		t.Fatal("NextPageToken empty, want continuation")
	}

	second, err := store.ListAccounts(ctx, 2, first.NextPageToken)
	if err != nil {
		t.Fatalf("ListAccounts(page 2) error = %v", err)
	}
	if len(second.Accounts) != 1 {
		t.Fatalf("len(Accounts) = %d, want 1", len(second.Accounts))
	}
	if second.NextPageToken != "" {
		t.Fatalf("NextPageToken = %q, want empty on final page", second.NextPageToken)
	}
}

func TestPutGetRecommendationRoundTrip(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	if err := store.PutAccount(ctx, testAccount("acct-1")); err != nil {
		t.Fatalf("PutAccount() error = %v", err)
	}
	input := testRecommendation("rec-1", "acct-1")
	if err := store.PutRecommendation(ctx, input); err != nil {
		t.Fatalf("PutRecommendation() error = %v", err)
	}

	got, err := store.GetRecommendation(ctx, "rec-1")
	if err != nil {
		t.Fatalf("GetRecommendation() error = %v", err)
	}
	if got.Value != input.Value {
		t.Fatalf("Value = %q, want %q", got.Value, input.Value)
	}
	if got.Attributes["pinned_field"] != "HEADLINE_1" {
		t.Fatalf("Attributes = %v, want pinned_field preserved", got.Attributes)
	}
	if got.Status != "pending" {
		t.Fatalf("Status = %q, want pending", got.Status)
	}
}

func TestListRecommendationsWithFilterFragment(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	if err := store.PutAccount(ctx, testAccount("acct-1")); err != nil {
		t.Fatalf("PutAccount() error = %v", err)
	}
	approved := testRecommendation("rec-1", "acct-1")
	approved.Status = "approved"
	pending := testRecommendation("rec-2", "acct-1")
	for _, rec := range []storage.RecommendationRecord{approved, pending} {
		if err := store.PutRecommendation(ctx, rec); err != nil {
			t.Fatalf("PutRecommendation(%s) error = %v", rec.ID, err)
		}
	}

	page, err := store.ListRecommendations(ctx, storage.RecommendationQuery{
		AccountID: "acct-1",
		Where:     "status = ?",
		Params:    []any{"approved"},
		PageSize:  10,
	})
	if err != nil {
		t.Fatalf("ListRecommendations() error = %v", err)
	}
	if len(page.Recommendations) != 1 {
		t.Fatalf("len(Recommendations) = %d, want 1", len(page.Recommendations))
	}
	if page.Recommendations[0].ID != "rec-1" {
		t.Fatalf("Recommendations[0].ID = %q, want rec-1", page.Recommendations[0].ID)
	}
}

func TestListRecommendationsScopedToAccount(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	for _, id := range []string{"acct-1", "acct-2"} {
		if err := store.PutAccount(ctx, testAccount(id)); err != nil {
			t.Fatalf("PutAccount(%s) error = %v", id, err)
		}
	}
	if err := store.PutRecommendation(ctx, testRecommendation("rec-1", "acct-1")); err != nil {
		t.Fatalf("PutRecommendation() error = %v", err)
	}
	if err := store.PutRecommendation(ctx, testRecommendation("rec-2", "acct-2")); err != nil {
		t.Fatalf("PutRecommendation() error = %v", err)
	}

	page, err := store.ListRecommendations(ctx, storage.RecommendationQuery{AccountID: "acct-2", PageSize: 10})
	if err != nil {
		t.Fatalf("ListRecommendations() error = %v", err)
	}
	if len(page.Recommendations) != 1 || page.Recommendations[0].ID != "rec-2" {
		t.Fatalf("page = %+v, want only rec-2", page.Recommendations)
	}
}

func TestUpdateRecommendationStatus(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	if err := store.PutAccount(ctx, testAccount("acct-1")); err != nil {
		t.Fatalf("PutAccount() error = %v", err)
	}
	if err := store.PutRecommendation(ctx, testRecommendation("rec-1", "acct-1")); err != nil {
		t.Fatalf("PutRecommendation() error = %v", err)
	}

	now := time.Date(2026, 2, 3, 12, 0, 0, 0, time.UTC)
	if err := store.UpdateRecommendationStatus(ctx, "rec-1", "pending", "approved", "", now); err != nil {
		t.Fatalf("UpdateRecommendationStatus() error = %v", err)
	}

	got, err := store.GetRecommendation(ctx, "rec-1")
	if err != nil {
		t.Fatalf("GetRecommendation() error = %v", err)
	}
	if got.Status != "approved" {
		t.Fatalf("Status = %q, want approved", got.Status)
	}
	if !got.UpdatedAt.Equal(now) {
		t.Fatalf("UpdatedAt = %v, want %v", got.UpdatedAt, now)
	}
}

func TestUpdateRecommendationStatusConflict(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	if err := store.PutAccount(ctx, testAccount("acct-1")); err != nil {
		t.Fatalf("PutAccount() error = %v", err)
	}
	if err := store.PutRecommendation(ctx, testRecommendation("rec-1", "acct-1")); err != nil {
		t.Fatalf("PutRecommendation() error = %v", err)
	}

	err := store.UpdateRecommendationStatus(ctx, "rec-1", "approved", "applying", "", time.Now())
	if !errors.Is(err, storage.ErrConflict) {
		t.Fatalf("UpdateRecommendationStatus() error = %v, want ErrConflict", err)
	}
}

func TestUpdateRecommendationStatusNotFound(t *testing.T) {
	store := openTempStore(t)

	err := store.UpdateRecommendationStatus(context.Background(), "missing", "", "approved", "", time.Now())
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("UpdateRecommendationStatus() error = %v, want ErrNotFound", err)
	}
}

func TestApplyResultsRoundTripAndPagination(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	if err := store.PutAccount(ctx, testAccount("acct-1")); err != nil {
		t.Fatalf("PutAccount() error = %v", err)
	}

	created := time.Date(2026, 2, 4, 8, 0, 0, 0, time.UTC)
	for i, id := range []string{"res-1", "res-2", "res-3"} {
		record := storage.ApplyResultRecord{
			ID:               id,
			ApplyID:          "apply-1",
			AccountID:        "acct-1",
			RecommendationID: "rec-1",
			OperationIndex:   i,
			ResourceName:     "customers/123/adGroupCriteria/7~1",
			Succeeded:        i != 2,
			PartialFailure:   true,
			CreatedAt:        created,
		}
		if i == 2 {
			record.ErrorMessage = "policy violation"
			record.OperationIndex = -1
		}
		if err := store.PutApplyResult(ctx, record); err != nil {
			t.Fatalf("PutApplyResult(%s) error = %v", id, err)
		}
	}

	first, err := store.ListApplyResults(ctx, "acct-1", 2, "")
	if err != nil {
		t.Fatalf("ListApplyResults() error = %v", err)
	}
	if len(first.Results) != 2 {
		t.Fatalf("len(Results) = %d, want 2", len(first.Results))
	}
	if first.NextPageToken == "" {
		t.Fatal("NextPageToken empty, want continuation")
	}

	second, err := store.ListApplyResults(ctx, "acct-1", 2, first.NextPageToken)
	if err != nil {
		t.Fatalf("ListApplyResults(page 2) error = %v", err)
	}
	if len(second.Results) != 1 {
		t.Fatalf("len(Results) = %d, want 1", len(second.Results))
	}
	last := second.Results[0]
	if last.Succeeded {
		t.Fatal("Succeeded = true, want failure row")
	}
	if last.ErrorMessage != "policy violation" {
		t.Fatalf("ErrorMessage = %q", last.ErrorMessage)
	}
	if last.OperationIndex != -1 {
		t.Fatalf("OperationIndex = %d, want -1", last.OperationIndex)
	}
	if !last.CreatedAt.Equal(created) {
		t.Fatalf("CreatedAt = %v, want %v", last.CreatedAt, created)
	}
}

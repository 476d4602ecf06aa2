package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/adpilot/adpilot/internal/services/worker/storage"
)

func openTempStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "worker.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open(" "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestRecordAttemptValidation(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	if err := store.RecordAttempt(ctx, storage.AttemptRecord{Outcome: "succeeded"}); err == nil {
		t.Fatal("expected error for missing account id")
	}
	if err := store.RecordAttempt(ctx, storage.AttemptRecord{AccountID: "acct-1"}); err == nil {
		t.Fatal("expected error for missing outcome")
	}
}

func TestRecordAndListAttempts(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	first := storage.AttemptRecord{
		AccountID:    "acct-1",
		ApplyID:      "apply-1",
		Outcome:      "succeeded",
		AppliedCount: 2,
		AttemptCount: 1,
		CreatedAt:    time.UnixMilli(1700000000000),
	}
	if err := store.RecordAttempt(ctx, first); err != nil {
		t.Fatalf("record first attempt: %v", err)
	}
	second := storage.AttemptRecord{
		AccountID:    "acct-1",
		Outcome:      "failed",
		FailedCount:  1,
		AttemptCount: 2,
		LastError:    "mutate batch: unavailable",
		CreatedAt:    time.UnixMilli(1700000060000),
	}
	if err := store.RecordAttempt(ctx, second); err != nil {
		t.Fatalf("record second attempt: %v", err)
	}

	records, err := store.ListAttempts(ctx, 10)
	if err != nil {
		t.Fatalf("list attempts: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	if records[0].Outcome != "failed" || records[1].Outcome != "succeeded" {
		t.Fatalf("order = %s, %s, want newest first", records[0].Outcome, records[1].Outcome)
	}
	if records[0].LastError != "mutate batch: unavailable" {
		t.Fatalf("LastError = %q, want recorded error", records[0].LastError)
	}
	if !records[1].CreatedAt.Equal(time.UnixMilli(1700000000000)) {
		t.Fatalf("CreatedAt = %v, want original timestamp", records[1].CreatedAt)
	}
}

func TestListAttemptsRequiresPositiveLimit(t *testing.T) {
	store := openTempStore(t)
	if _, err := store.ListAttempts(context.Background(), 0); err == nil {
		t.Fatal("expected error for zero limit")
	}
}

// Package storage defines persistence records for the worker runtime.
package storage

import (
	"context"
	"time"
)

// AttemptRecord is one durable apply-run attempt outcome.
type AttemptRecord struct {
	ID        int64
	AccountID string
	// ApplyID is the run identifier returned by the ads service. Empty when
	// the call failed before a run started.
	ApplyID      string
	Outcome      string
	AppliedCount int32
	FailedCount  int32
	AttemptCount int32
	LastError    string
	CreatedAt    time.Time
}

// AttemptStore persists worker apply attempt records.
type AttemptStore interface {
	RecordAttempt(ctx context.Context, attempt AttemptRecord) error
	ListAttempts(ctx context.Context, limit int) ([]AttemptRecord, error)
}

package recommendation

import (
	"errors"
	"testing"
	"time"
)

func TestNormalizeNewDefaults(t *testing.T) {
	rec, err := NormalizeNew(NewInput{
		AccountID: " acct-1 ",
		Channel:   "google",
		Kind:      "headline",
		Value:     "  Fast Plumbing Service  ",
	})
	if err != nil {
		t.Fatalf("normalize new: %v", err)
	}
	if rec.AccountID != "acct-1" {
		t.Fatalf("account id = %q, want %q", rec.AccountID, "acct-1")
	}
	if rec.Action != ActionAdd {
		t.Fatalf("action = %q, want %q", rec.Action, ActionAdd)
	}
	if rec.Status != StatusPending {
		t.Fatalf("status = %q, want %q", rec.Status, StatusPending)
	}
	if rec.Source != "manual" {
		t.Fatalf("source = %q, want %q", rec.Source, "manual")
	}
	if rec.Value != "Fast Plumbing Service" {
		t.Fatalf("value = %q, want trimmed text", rec.Value)
	}
}

func TestNormalizeNewValidatesEnums(t *testing.T) {
	tests := []struct {
		name  string
		input NewInput
		want  error
	}{
		{
			name:  "unknown channel",
			input: NewInput{AccountID: "a", Channel: "tiktok", Kind: "headline", Value: "x"},
			want:  ErrUnknownChannel,
		},
		{
			name:  "unknown kind",
			input: NewInput{AccountID: "a", Channel: "google", Kind: "jingle", Value: "x"},
			want:  ErrUnknownKind,
		},
		{
			name:  "unknown action",
			input: NewInput{AccountID: "a", Channel: "google", Kind: "keyword", Action: "upsert", Value: "x"},
			want:  ErrUnknownAction,
		},
		{
			name:  "applied status on create",
			input: NewInput{AccountID: "a", Channel: "google", Kind: "keyword", Status: "applied", Value: "x"},
			want:  ErrInvalidChange,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NormalizeNew(tc.input)
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestNormalizeNewDropsEmptyAttributes(t *testing.T) {
	rec, err := NormalizeNew(NewInput{
		AccountID: "acct-1",
		Channel:   "google",
		Kind:      "keyword",
		Value:     "plumber near me",
		Attributes: map[string]string{
			"MATCH_TYPE": " phrase ",
			"empty":      "   ",
		},
	})
	if err != nil {
		t.Fatalf("normalize new: %v", err)
	}
	if got := rec.Attribute(AttrMatchType); got != "phrase" {
		t.Fatalf("match type = %q, want %q", got, "phrase")
	}
	if _, ok := rec.Attributes["empty"]; ok {
		t.Fatal("expected empty attribute to be dropped")
	}
}

func TestChangeStatus(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	rec := Recommendation{Status: StatusPending}
	rec, err := ChangeStatus(rec, StatusApproved, "", now)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if rec.Status != StatusApproved {
		t.Fatalf("status = %q, want %q", rec.Status, StatusApproved)
	}
	if !rec.UpdatedAt.Equal(now) {
		t.Fatalf("updated at = %v, want %v", rec.UpdatedAt, now)
	}

	rec, err = ChangeStatus(rec, StatusApplying, "", now)
	if err != nil {
		t.Fatalf("mark applying: %v", err)
	}
	rec, err = ChangeStatus(rec, StatusFailed, "vendor rejected operation", now)
	if err != nil {
		t.Fatalf("mark failed: %v", err)
	}
	if rec.StatusReason != "vendor rejected operation" {
		t.Fatalf("status reason = %q", rec.StatusReason)
	}

	// Failed recommendations can be re-approved for retry.
	if _, err := ChangeStatus(rec, StatusApproved, "", now); err != nil {
		t.Fatalf("re-approve failed recommendation: %v", err)
	}
}

func TestChangeStatusRejectsInvalid(t *testing.T) {
	rec := Recommendation{Status: StatusApplied}
	if _, err := ChangeStatus(rec, StatusPending, "", time.Now()); !errors.Is(err, ErrInvalidChange) {
		t.Fatalf("err = %v, want %v", err, ErrInvalidChange)
	}

	rec = Recommendation{Status: StatusPending}
	if _, err := ChangeStatus(rec, StatusApplied, "", time.Now()); !errors.Is(err, ErrInvalidChange) {
		t.Fatalf("err = %v, want %v", err, ErrInvalidChange)
	}
}

func TestParseStatus(t *testing.T) {
	status, err := ParseStatus(" Approved ")
	if err != nil {
		t.Fatalf("parse status: %v", err)
	}
	if status != StatusApproved {
		t.Fatalf("status = %q, want %q", status, StatusApproved)
	}
	if _, err := ParseStatus("archived"); !errors.Is(err, ErrUnknownStatus) {
		t.Fatalf("err = %v, want %v", err, ErrUnknownStatus)
	}
}

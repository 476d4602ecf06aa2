// Package storage defines persistence records and errors for the ads
// service.
package storage

import (
	"errors"
	"time"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// ErrConflict indicates a requested state transition is invalid.
var ErrConflict = errors.New("record conflict")

// AccountRecord binds a managed account to its vendor identities.
type AccountRecord struct {
	ID   string
	Name string

	// GoogleCustomerID is the Google Ads customer the account mutates.
	GoogleCustomerID string
	// GoogleLoginCustomerID is the manager account for MCC access. Optional.
	GoogleLoginCustomerID string
	// MetaAdAccountID is the numeric Meta ad account ID. Optional.
	MetaAdAccountID string

	// CredentialCiphertext stores sealed vendor credential material only;
	// plaintext secrets must never cross into storage records.
	CredentialCiphertext string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AccountPage is a paged set of accounts.
type AccountPage struct {
	Accounts      []AccountRecord
	NextPageToken string
}

// RecommendationRecord stores one proposed campaign change.
type RecommendationRecord struct {
	ID         string
	AccountID  string
	CampaignID string
	AdGroupID  string

	Channel string
	Kind    string
	Action  string

	Value string
	// Attributes carries kind-specific fields as a flat string map.
	Attributes map[string]string

	Status       string
	StatusReason string
	Source       string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RecommendationPage is a paged set of recommendations.
type RecommendationPage struct {
	Recommendations []RecommendationRecord
	NextPageToken   string
}

// RecommendationQuery narrows account-scoped recommendation listing.
//
// Where and Params carry a pre-translated SQL fragment; account scope is
// mandatory and enforced separately, so the fragment can only reduce
// visibility.
type RecommendationQuery struct {
	AccountID string
	Where     string
	Params    []any
	PageSize  int
	PageToken string
}

// ApplyResultRecord is the per-recommendation audit row of one apply run.
type ApplyResultRecord struct {
	ID        string
	ApplyID   string
	AccountID string

	RecommendationID string
	// OperationIndex is the position of the first operation carrying this
	// recommendation in the mutate request, or -1 when none was submitted.
	OperationIndex int
	ResourceName   string
	Succeeded      bool
	ErrorMessage   string

	PartialFailure bool
	ValidateOnly   bool

	CreatedAt time.Time
}

// ApplyResultPage is a paged set of apply results.
type ApplyResultPage struct {
	Results       []ApplyResultRecord
	NextPageToken string
}

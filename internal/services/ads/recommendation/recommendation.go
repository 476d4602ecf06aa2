// Package recommendation defines the domain model for proposed campaign
// changes and their review lifecycle.
package recommendation

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Kind identifies which campaign field a recommendation changes.
type Kind string

// Recommendation kinds.
const (
	KindHeadline        Kind = "headline"
	KindDescription     Kind = "description"
	KindKeyword         Kind = "keyword"
	KindNegativeKeyword Kind = "negative_keyword"
	KindSitelink        Kind = "sitelink"
	KindAgeRange        Kind = "age_range"
	KindGender          Kind = "gender"
	KindLocation        Kind = "location"
	KindProximity       Kind = "proximity"
)

// Channel identifies the ad platform a recommendation targets.
type Channel string

// Recommendation channels.
const (
	ChannelGoogle Channel = "google"
	ChannelMeta   Channel = "meta"
)

// Action says whether the change adds or removes the value.
type Action string

// Recommendation actions.
const (
	ActionAdd    Action = "add"
	ActionRemove Action = "remove"
)

// Status tracks the review and application lifecycle.
type Status string

// Recommendation statuses.
const (
	StatusDraft    Status = "draft"
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusApplying Status = "applying"
	StatusApplied  Status = "applied"
	StatusFailed   Status = "failed"
	StatusRejected Status = "rejected"
)

// Attribute keys used by specific kinds.
const (
	// AttrMatchType holds the keyword match type: exact, phrase, or broad.
	AttrMatchType = "match_type"
	// AttrRadius holds the proximity radius as a decimal string.
	AttrRadius = "radius"
	// AttrRadiusUnits holds the proximity radius units: miles or kilometers.
	AttrRadiusUnits = "radius_units"
	// AttrLatitude and AttrLongitude position a proximity target.
	AttrLatitude  = "latitude"
	AttrLongitude = "longitude"
	// AttrPinnedField pins a headline or description to an ad slot.
	AttrPinnedField = "pinned_field"
	// AttrFinalURL holds the sitelink destination URL.
	AttrFinalURL = "final_url"
	// AttrDescriptionLine1 and AttrDescriptionLine2 hold sitelink detail text.
	AttrDescriptionLine1 = "description_line_1"
	AttrDescriptionLine2 = "description_line_2"
	// AttrResourceName holds the vendor resource name for removals.
	AttrResourceName = "resource_name"
	// AttrCampaignLevel marks a negative keyword as campaign-scoped.
	AttrCampaignLevel = "campaign_level"
)

// Sentinel errors for recommendation validation.
var (
	ErrUnknownKind    = errors.New("unknown recommendation kind")
	ErrUnknownChannel = errors.New("unknown recommendation channel")
	ErrUnknownAction  = errors.New("unknown recommendation action")
	ErrUnknownStatus  = errors.New("unknown recommendation status")
	ErrInvalidChange  = errors.New("invalid status change")
)

// Recommendation is one proposed campaign change.
type Recommendation struct {
	ID         string
	AccountID  string
	CampaignID string
	AdGroupID  string

	Channel Channel
	Kind    Kind
	Action  Action

	// Value holds the primary payload: headline/description/sitelink text,
	// keyword text, or a geo target identifier.
	Value string
	// Attributes carries kind-specific fields keyed by the Attr constants.
	Attributes map[string]string

	Status       Status
	StatusReason string

	// Source records what produced the recommendation: llm, rules, or manual.
	Source string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ParseKind validates a kind value.
func ParseKind(value string) (Kind, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(value)))
	switch kind {
	case KindHeadline, KindDescription, KindKeyword, KindNegativeKeyword,
		KindSitelink, KindAgeRange, KindGender, KindLocation, KindProximity:
		return kind, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, value)
	}
}

// ParseChannel validates a channel value.
func ParseChannel(value string) (Channel, error) {
	channel := Channel(strings.ToLower(strings.TrimSpace(value)))
	switch channel {
	case ChannelGoogle, ChannelMeta:
		return channel, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownChannel, value)
	}
}

// ParseAction validates an action value.
func ParseAction(value string) (Action, error) {
	action := Action(strings.ToLower(strings.TrimSpace(value)))
	switch action {
	case ActionAdd, ActionRemove:
		return action, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, value)
	}
}

// ParseStatus validates a status value.
func ParseStatus(value string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(value)))
	switch status {
	case StatusDraft, StatusPending, StatusApproved, StatusApplying,
		StatusApplied, StatusFailed, StatusRejected:
		return status, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, value)
	}
}

// NewInput carries caller-supplied fields for a new recommendation.
type NewInput struct {
	AccountID  string
	CampaignID string
	AdGroupID  string
	Channel    string
	Kind       string
	Action     string
	Value      string
	Attributes map[string]string
	Status     string
	Source     string
}

// NormalizeNew validates and normalizes input for a new recommendation.
// Action defaults to add, status to pending, and source to manual.
func NormalizeNew(input NewInput) (Recommendation, error) {
	accountID := strings.TrimSpace(input.AccountID)
	if accountID == "" {
		return Recommendation{}, errors.New("account id is required")
	}

	channel, err := ParseChannel(input.Channel)
	if err != nil {
		return Recommendation{}, err
	}
	kind, err := ParseKind(input.Kind)
	if err != nil {
		return Recommendation{}, err
	}

	action := ActionAdd
	if strings.TrimSpace(input.Action) != "" {
		action, err = ParseAction(input.Action)
		if err != nil {
			return Recommendation{}, err
		}
	}

	status := StatusPending
	if strings.TrimSpace(input.Status) != "" {
		status, err = ParseStatus(input.Status)
		if err != nil {
			return Recommendation{}, err
		}
		if status != StatusDraft && status != StatusPending {
			return Recommendation{}, fmt.Errorf("%w: new recommendations start as draft or pending", ErrInvalidChange)
		}
	}

	value := strings.TrimSpace(input.Value)
	if value == "" {
		return Recommendation{}, errors.New("value is required")
	}

	source := strings.ToLower(strings.TrimSpace(input.Source))
	if source == "" {
		source = "manual"
	}

	attributes := make(map[string]string, len(input.Attributes))
	for key, attr := range input.Attributes {
		key = strings.ToLower(strings.TrimSpace(key))
		attr = strings.TrimSpace(attr)
		if key == "" || attr == "" {
			continue
		}
		attributes[key] = attr
	}

	return Recommendation{
		AccountID:  accountID,
		CampaignID: strings.TrimSpace(input.CampaignID),
		AdGroupID:  strings.TrimSpace(input.AdGroupID),
		Channel:    channel,
		Kind:       kind,
		Action:     action,
		Value:      value,
		Attributes: attributes,
		Status:     status,
		Source:     source,
	}, nil
}

// statusChanges lists the allowed lifecycle transitions.
var statusChanges = map[Status][]Status{
	StatusDraft:    {StatusPending, StatusRejected},
	StatusPending:  {StatusApproved, StatusRejected},
	StatusApproved: {StatusApplying, StatusRejected},
	StatusApplying: {StatusApplied, StatusFailed},
	// Failed applications may be retried after review.
	StatusFailed: {StatusApproved, StatusRejected},
}

// CanChangeStatus reports whether the lifecycle permits from -> to.
func CanChangeStatus(from, to Status) bool {
	for _, allowed := range statusChanges[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ChangeStatus validates and applies a lifecycle transition.
func ChangeStatus(rec Recommendation, to Status, reason string, now time.Time) (Recommendation, error) {
	if !CanChangeStatus(rec.Status, to) {
		return Recommendation{}, fmt.Errorf("%w: %s -> %s", ErrInvalidChange, rec.Status, to)
	}
	rec.Status = to
	rec.StatusReason = strings.TrimSpace(reason)
	rec.UpdatedAt = now.UTC()
	return rec, nil
}

// Attribute returns a trimmed attribute value, or empty when unset.
func (r Recommendation) Attribute(key string) string {
	if r.Attributes == nil {
		return ""
	}
	return strings.TrimSpace(r.Attributes[key])
}

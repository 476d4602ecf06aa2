package domain

import (
	"strings"
	"time"

	adsv1 "github.com/adpilot/adpilot/api/gen/go/ads/v1"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// formatTimestamp returns an RFC3339 timestamp or empty string.
// Empty values are treated as missing fields for compact API responses.
func formatTimestamp(ts *timestamppb.Timestamp) string {
	if ts == nil {
		return ""
	}
	return ts.AsTime().Format(time.RFC3339)
}

// channelFromString normalizes MCP input into the channel enum. Unknown values
// degrade to UNSPECIFIED so the ads service can reject them.
func channelFromString(value string) adsv1.RecommendationChannel {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "GOOGLE", "RECOMMENDATION_CHANNEL_GOOGLE":
		return adsv1.RecommendationChannel_RECOMMENDATION_CHANNEL_GOOGLE
	case "META", "RECOMMENDATION_CHANNEL_META":
		return adsv1.RecommendationChannel_RECOMMENDATION_CHANNEL_META
	default:
		return adsv1.RecommendationChannel_RECOMMENDATION_CHANNEL_UNSPECIFIED
	}
}

func channelToString(channel adsv1.RecommendationChannel) string {
	switch channel {
	case adsv1.RecommendationChannel_RECOMMENDATION_CHANNEL_GOOGLE:
		return "GOOGLE"
	case adsv1.RecommendationChannel_RECOMMENDATION_CHANNEL_META:
		return "META"
	default:
		return "UNSPECIFIED"
	}
}

// kindFromString parses MCP input into the recommendation kind enum, accepting
// both short names and full enum identifiers.
func kindFromString(value string) adsv1.RecommendationKind {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	normalized = strings.TrimPrefix(normalized, "RECOMMENDATION_KIND_")
	switch normalized {
	case "HEADLINE":
		return adsv1.RecommendationKind_RECOMMENDATION_KIND_HEADLINE
	case "DESCRIPTION":
		return adsv1.RecommendationKind_RECOMMENDATION_KIND_DESCRIPTION
	case "KEYWORD":
		return adsv1.RecommendationKind_RECOMMENDATION_KIND_KEYWORD
	case "NEGATIVE_KEYWORD":
		return adsv1.RecommendationKind_RECOMMENDATION_KIND_NEGATIVE_KEYWORD
	case "SITELINK":
		return adsv1.RecommendationKind_RECOMMENDATION_KIND_SITELINK
	case "AGE_RANGE":
		return adsv1.RecommendationKind_RECOMMENDATION_KIND_AGE_RANGE
	case "GENDER":
		return adsv1.RecommendationKind_RECOMMENDATION_KIND_GENDER
	case "LOCATION":
		return adsv1.RecommendationKind_RECOMMENDATION_KIND_LOCATION
	case "PROXIMITY":
		return adsv1.RecommendationKind_RECOMMENDATION_KIND_PROXIMITY
	default:
		return adsv1.RecommendationKind_RECOMMENDATION_KIND_UNSPECIFIED
	}
}

func kindToString(kind adsv1.RecommendationKind) string {
	switch kind {
	case adsv1.RecommendationKind_RECOMMENDATION_KIND_HEADLINE:
		return "HEADLINE"
	case adsv1.RecommendationKind_RECOMMENDATION_KIND_DESCRIPTION:
		return "DESCRIPTION"
	case adsv1.RecommendationKind_RECOMMENDATION_KIND_KEYWORD:
		return "KEYWORD"
	case adsv1.RecommendationKind_RECOMMENDATION_KIND_NEGATIVE_KEYWORD:
		return "NEGATIVE_KEYWORD"
	case adsv1.RecommendationKind_RECOMMENDATION_KIND_SITELINK:
		return "SITELINK"
	case adsv1.RecommendationKind_RECOMMENDATION_KIND_AGE_RANGE:
		return "AGE_RANGE"
	case adsv1.RecommendationKind_RECOMMENDATION_KIND_GENDER:
		return "GENDER"
	case adsv1.RecommendationKind_RECOMMENDATION_KIND_LOCATION:
		return "LOCATION"
	case adsv1.RecommendationKind_RECOMMENDATION_KIND_PROXIMITY:
		return "PROXIMITY"
	default:
		return "UNSPECIFIED"
	}
}

func actionFromString(value string) adsv1.RecommendationAction {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "ADD", "RECOMMENDATION_ACTION_ADD":
		return adsv1.RecommendationAction_RECOMMENDATION_ACTION_ADD
	case "REMOVE", "RECOMMENDATION_ACTION_REMOVE":
		return adsv1.RecommendationAction_RECOMMENDATION_ACTION_REMOVE
	default:
		return adsv1.RecommendationAction_RECOMMENDATION_ACTION_UNSPECIFIED
	}
}

func actionToString(action adsv1.RecommendationAction) string {
	switch action {
	case adsv1.RecommendationAction_RECOMMENDATION_ACTION_ADD:
		return "ADD"
	case adsv1.RecommendationAction_RECOMMENDATION_ACTION_REMOVE:
		return "REMOVE"
	default:
		return "UNSPECIFIED"
	}
}

func statusToString(status adsv1.RecommendationStatus) string {
	switch status {
	case adsv1.RecommendationStatus_RECOMMENDATION_STATUS_DRAFT:
		return "DRAFT"
	case adsv1.RecommendationStatus_RECOMMENDATION_STATUS_PENDING:
		return "PENDING"
	case adsv1.RecommendationStatus_RECOMMENDATION_STATUS_APPROVED:
		return "APPROVED"
	case adsv1.RecommendationStatus_RECOMMENDATION_STATUS_APPLYING:
		return "APPLYING"
	case adsv1.RecommendationStatus_RECOMMENDATION_STATUS_APPLIED:
		return "APPLIED"
	case adsv1.RecommendationStatus_RECOMMENDATION_STATUS_FAILED:
		return "FAILED"
	case adsv1.RecommendationStatus_RECOMMENDATION_STATUS_REJECTED:
		return "REJECTED"
	default:
		return "UNSPECIFIED"
	}
}

func accountResultFromProto(account *adsv1.Account) AccountResult {
	return AccountResult{
		ID:                    account.GetId(),
		Name:                  account.GetName(),
		GoogleCustomerID:      account.GetGoogleCustomerId(),
		GoogleLoginCustomerID: account.GetGoogleLoginCustomerId(),
		MetaAdAccountID:       account.GetMetaAdAccountId(),
		CreatedAt:             formatTimestamp(account.GetCreateTime()),
		UpdatedAt:             formatTimestamp(account.GetUpdateTime()),
	}
}

func recommendationResultFromProto(rec *adsv1.Recommendation) RecommendationResult {
	return RecommendationResult{
		ID:           rec.GetId(),
		AccountID:    rec.GetAccountId(),
		CampaignID:   rec.GetCampaignId(),
		AdGroupID:    rec.GetAdGroupId(),
		Channel:      channelToString(rec.GetChannel()),
		Kind:         kindToString(rec.GetKind()),
		Action:       actionToString(rec.GetAction()),
		Value:        rec.GetValue(),
		Attributes:   rec.GetAttributes(),
		Status:       statusToString(rec.GetStatus()),
		StatusReason: rec.GetStatusReason(),
		Source:       rec.GetSource(),
		CreatedAt:    formatTimestamp(rec.GetCreateTime()),
		UpdatedAt:    formatTimestamp(rec.GetUpdateTime()),
	}
}

package ads

import (
	"strings"

	adsv1 "github.com/adpilot/adpilot/api/gen/go/ads/v1"
	"github.com/adpilot/adpilot/internal/platform/grpc/pagination"
	"github.com/adpilot/adpilot/internal/services/ads/recommendation"
	"github.com/adpilot/adpilot/internal/services/ads/storage"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func kindFromProto(value adsv1.RecommendationKind) string {
	switch value {
	case adsv1.RecommendationKind_RECOMMENDATION_KIND_HEADLINE:
		return string(recommendation.KindHeadline)
	case adsv1.RecommendationKind_RECOMMENDATION_KIND_DESCRIPTION:
		return string(recommendation.KindDescription)
	case adsv1.RecommendationKind_RECOMMENDATION_KIND_KEYWORD:
		return string(recommendation.KindKeyword)
	case adsv1.RecommendationKind_RECOMMENDATION_KIND_NEGATIVE_KEYWORD:
		return string(recommendation.KindNegativeKeyword)
	case adsv1.RecommendationKind_RECOMMENDATION_KIND_SITELINK:
		return string(recommendation.KindSitelink)
	case adsv1.RecommendationKind_RECOMMENDATION_KIND_AGE_RANGE:
		return string(recommendation.KindAgeRange)
	case adsv1.RecommendationKind_RECOMMENDATION_KIND_GENDER:
		return string(recommendation.KindGender)
	case adsv1.RecommendationKind_RECOMMENDATION_KIND_LOCATION:
		return string(recommendation.KindLocation)
	case adsv1.RecommendationKind_RECOMMENDATION_KIND_PROXIMITY:
		return string(recommendation.KindProximity)
	default:
		return ""
	}
}

func kindToProto(value string) adsv1.RecommendationKind {
	switch recommendation.Kind(strings.ToLower(strings.TrimSpace(value))) {
	case recommendation.KindHeadline:
		return adsv1.RecommendationKind_RECOMMENDATION_KIND_HEADLINE
	case recommendation.KindDescription:
		return adsv1.RecommendationKind_RECOMMENDATION_KIND_DESCRIPTION
	case recommendation.KindKeyword:
		return adsv1.RecommendationKind_RECOMMENDATION_KIND_KEYWORD
	case recommendation.KindNegativeKeyword:
		return adsv1.RecommendationKind_RECOMMENDATION_KIND_NEGATIVE_KEYWORD
	case recommendation.KindSitelink:
		return adsv1.RecommendationKind_RECOMMENDATION_KIND_SITELINK
	case recommendation.KindAgeRange:
		return adsv1.RecommendationKind_RECOMMENDATION_KIND_AGE_RANGE
	case recommendation.KindGender:
		return adsv1.RecommendationKind_RECOMMENDATION_KIND_GENDER
	case recommendation.KindLocation:
		return adsv1.RecommendationKind_RECOMMENDATION_KIND_LOCATION
	case recommendation.KindProximity:
		return adsv1.RecommendationKind_RECOMMENDATION_KIND_PROXIMITY
	default:
		return adsv1.RecommendationKind_RECOMMENDATION_KIND_UNSPECIFIED
	}
}

func channelFromProto(value adsv1.RecommendationChannel) string {
	switch value {
	case adsv1.RecommendationChannel_RECOMMENDATION_CHANNEL_GOOGLE:
		return string(recommendation.ChannelGoogle)
	case adsv1.RecommendationChannel_RECOMMENDATION_CHANNEL_META:
		return string(recommendation.ChannelMeta)
	default:
		return ""
	}
}

func channelToProto(value string) adsv1.RecommendationChannel {
	switch recommendation.Channel(strings.ToLower(strings.TrimSpace(value))) {
	case recommendation.ChannelGoogle:
		return adsv1.RecommendationChannel_RECOMMENDATION_CHANNEL_GOOGLE
	case recommendation.ChannelMeta:
		return adsv1.RecommendationChannel_RECOMMENDATION_CHANNEL_META
	default:
		return adsv1.RecommendationChannel_RECOMMENDATION_CHANNEL_UNSPECIFIED
	}
}

func actionFromProto(value adsv1.RecommendationAction) string {
	switch value {
	case adsv1.RecommendationAction_RECOMMENDATION_ACTION_ADD:
		return string(recommendation.ActionAdd)
	case adsv1.RecommendationAction_RECOMMENDATION_ACTION_REMOVE:
		return string(recommendation.ActionRemove)
	default:
		return ""
	}
}

func actionToProto(value string) adsv1.RecommendationAction {
	switch recommendation.Action(strings.ToLower(strings.TrimSpace(value))) {
	case recommendation.ActionAdd:
		return adsv1.RecommendationAction_RECOMMENDATION_ACTION_ADD
	case recommendation.ActionRemove:
		return adsv1.RecommendationAction_RECOMMENDATION_ACTION_REMOVE
	default:
		return adsv1.RecommendationAction_RECOMMENDATION_ACTION_UNSPECIFIED
	}
}

func statusFromProto(value adsv1.RecommendationStatus) string {
	switch value {
	case adsv1.RecommendationStatus_RECOMMENDATION_STATUS_DRAFT:
		return string(recommendation.StatusDraft)
	case adsv1.RecommendationStatus_RECOMMENDATION_STATUS_PENDING:
		return string(recommendation.StatusPending)
	case adsv1.RecommendationStatus_RECOMMENDATION_STATUS_APPROVED:
		return string(recommendation.StatusApproved)
	case adsv1.RecommendationStatus_RECOMMENDATION_STATUS_APPLYING:
		return string(recommendation.StatusApplying)
	case adsv1.RecommendationStatus_RECOMMENDATION_STATUS_APPLIED:
		return string(recommendation.StatusApplied)
	case adsv1.RecommendationStatus_RECOMMENDATION_STATUS_FAILED:
		return string(recommendation.StatusFailed)
	case adsv1.RecommendationStatus_RECOMMENDATION_STATUS_REJECTED:
		return string(recommendation.StatusRejected)
	default:
		return ""
	}
}

func statusToProto(value string) adsv1.RecommendationStatus {
	switch recommendation.Status(strings.ToLower(strings.TrimSpace(value))) {
	case recommendation.StatusDraft:
		return adsv1.RecommendationStatus_RECOMMENDATION_STATUS_DRAFT
	case recommendation.StatusPending:
		return adsv1.RecommendationStatus_RECOMMENDATION_STATUS_PENDING
	case recommendation.StatusApproved:
		return adsv1.RecommendationStatus_RECOMMENDATION_STATUS_APPROVED
	case recommendation.StatusApplying:
		return adsv1.RecommendationStatus_RECOMMENDATION_STATUS_APPLYING
	case recommendation.StatusApplied:
		return adsv1.RecommendationStatus_RECOMMENDATION_STATUS_APPLIED
	case recommendation.StatusFailed:
		return adsv1.RecommendationStatus_RECOMMENDATION_STATUS_FAILED
	case recommendation.StatusRejected:
		return adsv1.RecommendationStatus_RECOMMENDATION_STATUS_REJECTED
	default:
		return adsv1.RecommendationStatus_RECOMMENDATION_STATUS_UNSPECIFIED
	}
}

func accountToProto(record storage.AccountRecord) *adsv1.Account {
	// Intentionally omits CredentialCiphertext to avoid exposing sealed
	// credential material over read APIs.
	return &adsv1.Account{
		Id:                    record.ID,
		Name:                  record.Name,
		GoogleCustomerId:      record.GoogleCustomerID,
		GoogleLoginCustomerId: record.GoogleLoginCustomerID,
		MetaAdAccountId:       record.MetaAdAccountID,
		CreateTime:            timestamppb.New(record.CreatedAt),
		UpdateTime:            timestamppb.New(record.UpdatedAt),
	}
}

func recommendationToProto(record storage.RecommendationRecord) *adsv1.Recommendation {
	attributes := make(map[string]string, len(record.Attributes))
	for key, value := range record.Attributes {
		attributes[key] = value
	}
	return &adsv1.Recommendation{
		Id:           record.ID,
		AccountId:    record.AccountID,
		CampaignId:   record.CampaignID,
		AdGroupId:    record.AdGroupID,
		Channel:      channelToProto(record.Channel),
		Kind:         kindToProto(record.Kind),
		Action:       actionToProto(record.Action),
		Value:        record.Value,
		Attributes:   attributes,
		Status:       statusToProto(record.Status),
		StatusReason: record.StatusReason,
		Source:       record.Source,
		CreateTime:   timestamppb.New(record.CreatedAt),
		UpdateTime:   timestamppb.New(record.UpdatedAt),
	}
}

func applyResultToProto(record storage.ApplyResultRecord) *adsv1.ApplyResult {
	return &adsv1.ApplyResult{
		Id:               record.ID,
		ApplyId:          record.ApplyID,
		AccountId:        record.AccountID,
		RecommendationId: record.RecommendationID,
		OperationIndex:   int32(record.OperationIndex),
		ResourceName:     record.ResourceName,
		Succeeded:        record.Succeeded,
		ErrorMessage:     record.ErrorMessage,
		PartialFailure:   record.PartialFailure,
		ValidateOnly:     record.ValidateOnly,
		CreateTime:       timestamppb.New(record.CreatedAt),
	}
}

// recordFromRecommendation projects a domain recommendation into its
// persistence record.
func recordFromRecommendation(rec recommendation.Recommendation) storage.RecommendationRecord {
	attributes := make(map[string]string, len(rec.Attributes))
	for key, value := range rec.Attributes {
		attributes[key] = value
	}
	return storage.RecommendationRecord{
		ID:           rec.ID,
		AccountID:    rec.AccountID,
		CampaignID:   rec.CampaignID,
		AdGroupID:    rec.AdGroupID,
		Channel:      string(rec.Channel),
		Kind:         string(rec.Kind),
		Action:       string(rec.Action),
		Value:        rec.Value,
		Attributes:   attributes,
		Status:       string(rec.Status),
		StatusReason: rec.StatusReason,
		Source:       rec.Source,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
}

// recommendationFromRecord parses a persistence record back into the domain
// model. Stored enum values are trusted input; a parse failure means the
// store was written outside the service.
func recommendationFromRecord(record storage.RecommendationRecord) (recommendation.Recommendation, error) {
	channel, err := recommendation.ParseChannel(record.Channel)
	if err != nil {
		return recommendation.Recommendation{}, err
	}
	kind, err := recommendation.ParseKind(record.Kind)
	if err != nil {
		return recommendation.Recommendation{}, err
	}
	action, err := recommendation.ParseAction(record.Action)
	if err != nil {
		return recommendation.Recommendation{}, err
	}
	parsedStatus, err := recommendation.ParseStatus(record.Status)
	if err != nil {
		return recommendation.Recommendation{}, err
	}
	attributes := make(map[string]string, len(record.Attributes))
	for key, value := range record.Attributes {
		attributes[key] = value
	}
	return recommendation.Recommendation{
		ID:           record.ID,
		AccountID:    record.AccountID,
		CampaignID:   record.CampaignID,
		AdGroupID:    record.AdGroupID,
		Channel:      channel,
		Kind:         kind,
		Action:       action,
		Value:        record.Value,
		Attributes:   attributes,
		Status:       parsedStatus,
		StatusReason: record.StatusReason,
		Source:       record.Source,
		CreatedAt:    record.CreatedAt,
		UpdatedAt:    record.UpdatedAt,
	}, nil
}

func clampPageSize(requested int32) int {
	return pagination.ClampPageSize(requested, pagination.PageSizeConfig{
		Default: defaultPageSize,
		Max:     maxPageSize,
	})
}

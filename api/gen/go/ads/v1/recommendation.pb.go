// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: ads/v1/recommendation.proto

package adsv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

// RecommendationKind identifies which campaign field a recommendation changes.
type RecommendationKind int32

const (
	RecommendationKind_RECOMMENDATION_KIND_UNSPECIFIED      RecommendationKind = 0
	RecommendationKind_RECOMMENDATION_KIND_HEADLINE         RecommendationKind = 1
	RecommendationKind_RECOMMENDATION_KIND_DESCRIPTION      RecommendationKind = 2
	RecommendationKind_RECOMMENDATION_KIND_KEYWORD          RecommendationKind = 3
	RecommendationKind_RECOMMENDATION_KIND_NEGATIVE_KEYWORD RecommendationKind = 4
	RecommendationKind_RECOMMENDATION_KIND_SITELINK         RecommendationKind = 5
	RecommendationKind_RECOMMENDATION_KIND_AGE_RANGE        RecommendationKind = 6
	RecommendationKind_RECOMMENDATION_KIND_GENDER           RecommendationKind = 7
	RecommendationKind_RECOMMENDATION_KIND_LOCATION         RecommendationKind = 8
	RecommendationKind_RECOMMENDATION_KIND_PROXIMITY        RecommendationKind = 9
)

// Enum value maps for RecommendationKind.
var (
	RecommendationKind_name = map[int32]string{
		0: "RECOMMENDATION_KIND_UNSPECIFIED",
		1: "RECOMMENDATION_KIND_HEADLINE",
		2: "RECOMMENDATION_KIND_DESCRIPTION",
		3: "RECOMMENDATION_KIND_KEYWORD",
		4: "RECOMMENDATION_KIND_NEGATIVE_KEYWORD",
		5: "RECOMMENDATION_KIND_SITELINK",
		6: "RECOMMENDATION_KIND_AGE_RANGE",
		7: "RECOMMENDATION_KIND_GENDER",
		8: "RECOMMENDATION_KIND_LOCATION",
		9: "RECOMMENDATION_KIND_PROXIMITY",
	}
	RecommendationKind_value = map[string]int32{
		"RECOMMENDATION_KIND_UNSPECIFIED":      0,
		"RECOMMENDATION_KIND_HEADLINE":         1,
		"RECOMMENDATION_KIND_DESCRIPTION":      2,
		"RECOMMENDATION_KIND_KEYWORD":          3,
		"RECOMMENDATION_KIND_NEGATIVE_KEYWORD": 4,
		"RECOMMENDATION_KIND_SITELINK":         5,
		"RECOMMENDATION_KIND_AGE_RANGE":        6,
		"RECOMMENDATION_KIND_GENDER":           7,
		"RECOMMENDATION_KIND_LOCATION":         8,
		"RECOMMENDATION_KIND_PROXIMITY":        9,
	}
)

func (x RecommendationKind) Enum() *RecommendationKind {
	p := new(RecommendationKind)
	*p = x
	return p
}

func (x RecommendationKind) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (RecommendationKind) Descriptor() protoreflect.EnumDescriptor {
	return file_ads_v1_recommendation_proto_enumTypes[0].Descriptor()
}

func (RecommendationKind) Type() protoreflect.EnumType {
	return &file_ads_v1_recommendation_proto_enumTypes[0]
}

func (x RecommendationKind) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use RecommendationKind.Descriptor instead.
func (RecommendationKind) EnumDescriptor() ([]byte, []int) {
	return file_ads_v1_recommendation_proto_rawDescGZIP(), []int{0}
}

// RecommendationChannel identifies the ad platform a recommendation targets.
type RecommendationChannel int32

const (
	RecommendationChannel_RECOMMENDATION_CHANNEL_UNSPECIFIED RecommendationChannel = 0
	RecommendationChannel_RECOMMENDATION_CHANNEL_GOOGLE      RecommendationChannel = 1
	RecommendationChannel_RECOMMENDATION_CHANNEL_META        RecommendationChannel = 2
)

// Enum value maps for RecommendationChannel.
var (
	RecommendationChannel_name = map[int32]string{
		0: "RECOMMENDATION_CHANNEL_UNSPECIFIED",
		1: "RECOMMENDATION_CHANNEL_GOOGLE",
		2: "RECOMMENDATION_CHANNEL_META",
	}
	RecommendationChannel_value = map[string]int32{
		"RECOMMENDATION_CHANNEL_UNSPECIFIED": 0,
		"RECOMMENDATION_CHANNEL_GOOGLE":      1,
		"RECOMMENDATION_CHANNEL_META":        2,
	}
)

func (x RecommendationChannel) Enum() *RecommendationChannel {
	p := new(RecommendationChannel)
	*p = x
	return p
}

func (x RecommendationChannel) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (RecommendationChannel) Descriptor() protoreflect.EnumDescriptor {
	return file_ads_v1_recommendation_proto_enumTypes[1].Descriptor()
}

func (RecommendationChannel) Type() protoreflect.EnumType {
	return &file_ads_v1_recommendation_proto_enumTypes[1]
}

func (x RecommendationChannel) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use RecommendationChannel.Descriptor instead.
func (RecommendationChannel) EnumDescriptor() ([]byte, []int) {
	return file_ads_v1_recommendation_proto_rawDescGZIP(), []int{1}
}

// RecommendationAction says whether the change adds or removes the value.
type RecommendationAction int32

const (
	RecommendationAction_RECOMMENDATION_ACTION_UNSPECIFIED RecommendationAction = 0
	RecommendationAction_RECOMMENDATION_ACTION_ADD         RecommendationAction = 1
	RecommendationAction_RECOMMENDATION_ACTION_REMOVE      RecommendationAction = 2
)

// Enum value maps for RecommendationAction.
var (
	RecommendationAction_name = map[int32]string{
		0: "RECOMMENDATION_ACTION_UNSPECIFIED",
		1: "RECOMMENDATION_ACTION_ADD",
		2: "RECOMMENDATION_ACTION_REMOVE",
	}
	RecommendationAction_value = map[string]int32{
		"RECOMMENDATION_ACTION_UNSPECIFIED": 0,
		"RECOMMENDATION_ACTION_ADD":         1,
		"RECOMMENDATION_ACTION_REMOVE":      2,
	}
)

func (x RecommendationAction) Enum() *RecommendationAction {
	p := new(RecommendationAction)
	*p = x
	return p
}

func (x RecommendationAction) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (RecommendationAction) Descriptor() protoreflect.EnumDescriptor {
	return file_ads_v1_recommendation_proto_enumTypes[2].Descriptor()
}

func (RecommendationAction) Type() protoreflect.EnumType {
	return &file_ads_v1_recommendation_proto_enumTypes[2]
}

func (x RecommendationAction) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use RecommendationAction.Descriptor instead.
func (RecommendationAction) EnumDescriptor() ([]byte, []int) {
	return file_ads_v1_recommendation_proto_rawDescGZIP(), []int{2}
}

// RecommendationStatus tracks the review and application lifecycle.
type RecommendationStatus int32

const (
	RecommendationStatus_RECOMMENDATION_STATUS_UNSPECIFIED RecommendationStatus = 0
	RecommendationStatus_RECOMMENDATION_STATUS_DRAFT       RecommendationStatus = 1
	RecommendationStatus_RECOMMENDATION_STATUS_PENDING     RecommendationStatus = 2
	RecommendationStatus_RECOMMENDATION_STATUS_APPROVED    RecommendationStatus = 3
	RecommendationStatus_RECOMMENDATION_STATUS_APPLYING    RecommendationStatus = 4
	RecommendationStatus_RECOMMENDATION_STATUS_APPLIED     RecommendationStatus = 5
	RecommendationStatus_RECOMMENDATION_STATUS_FAILED      RecommendationStatus = 6
	RecommendationStatus_RECOMMENDATION_STATUS_REJECTED    RecommendationStatus = 7
)

// Enum value maps for RecommendationStatus.
var (
	RecommendationStatus_name = map[int32]string{
		0: "RECOMMENDATION_STATUS_UNSPECIFIED",
		1: "RECOMMENDATION_STATUS_DRAFT",
		2: "RECOMMENDATION_STATUS_PENDING",
		3: "RECOMMENDATION_STATUS_APPROVED",
		4: "RECOMMENDATION_STATUS_APPLYING",
		5: "RECOMMENDATION_STATUS_APPLIED",
		6: "RECOMMENDATION_STATUS_FAILED",
		7: "RECOMMENDATION_STATUS_REJECTED",
	}
	RecommendationStatus_value = map[string]int32{
		"RECOMMENDATION_STATUS_UNSPECIFIED": 0,
		"RECOMMENDATION_STATUS_DRAFT":       1,
		"RECOMMENDATION_STATUS_PENDING":     2,
		"RECOMMENDATION_STATUS_APPROVED":    3,
		"RECOMMENDATION_STATUS_APPLYING":    4,
		"RECOMMENDATION_STATUS_APPLIED":     5,
		"RECOMMENDATION_STATUS_FAILED":      6,
		"RECOMMENDATION_STATUS_REJECTED":    7,
	}
)

func (x RecommendationStatus) Enum() *RecommendationStatus {
	p := new(RecommendationStatus)
	*p = x
	return p
}

func (x RecommendationStatus) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (RecommendationStatus) Descriptor() protoreflect.EnumDescriptor {
	return file_ads_v1_recommendation_proto_enumTypes[3].Descriptor()
}

func (RecommendationStatus) Type() protoreflect.EnumType {
	return &file_ads_v1_recommendation_proto_enumTypes[3]
}

func (x RecommendationStatus) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use RecommendationStatus.Descriptor instead.
func (RecommendationStatus) EnumDescriptor() ([]byte, []int) {
	return file_ads_v1_recommendation_proto_rawDescGZIP(), []int{3}
}

// Recommendation is one proposed campaign change awaiting review and
// application.
type Recommendation struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	Id         string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	AccountId  string                 `protobuf:"bytes,2,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	CampaignId string                 `protobuf:"bytes,3,opt,name=campaign_id,json=campaignId,proto3" json:"campaign_id,omitempty"`
	AdGroupId  string                 `protobuf:"bytes,4,opt,name=ad_group_id,json=adGroupId,proto3" json:"ad_group_id,omitempty"`
	Channel    RecommendationChannel  `protobuf:"varint,5,opt,name=channel,proto3,enum=ads.v1.RecommendationChannel" json:"channel,omitempty"`
	Kind       RecommendationKind     `protobuf:"varint,6,opt,name=kind,proto3,enum=ads.v1.RecommendationKind" json:"kind,omitempty"`
	Action     RecommendationAction   `protobuf:"varint,7,opt,name=action,proto3,enum=ads.v1.RecommendationAction" json:"action,omitempty"`
	// value holds the primary payload: headline/description/sitelink text,
	// keyword text, or a geo target identifier.
	Value string `protobuf:"bytes,8,opt,name=value,proto3" json:"value,omitempty"`
	// attributes carries kind-specific fields such as match_type, radius_km,
	// pinned_field, final_url, or sitelink description lines.
	Attributes map[string]string    `protobuf:"bytes,9,rep,name=attributes,proto3" json:"attributes,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	Status     RecommendationStatus `protobuf:"varint,10,opt,name=status,proto3,enum=ads.v1.RecommendationStatus" json:"status,omitempty"`
	// status_reason explains FAILED and REJECTED transitions.
	StatusReason string `protobuf:"bytes,11,opt,name=status_reason,json=statusReason,proto3" json:"status_reason,omitempty"`
	// source records what produced the recommendation: llm, rules, or manual.
	Source        string                 `protobuf:"bytes,12,opt,name=source,proto3" json:"source,omitempty"`
	CreateTime    *timestamppb.Timestamp `protobuf:"bytes,13,opt,name=create_time,json=createTime,proto3" json:"create_time,omitempty"`
	UpdateTime    *timestamppb.Timestamp `protobuf:"bytes,14,opt,name=update_time,json=updateTime,proto3" json:"update_time,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Recommendation) Reset() {
	*x = Recommendation{}
	mi := &file_ads_v1_recommendation_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Recommendation) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Recommendation) ProtoMessage() {}

func (x *Recommendation) ProtoReflect() protoreflect.Message {
	mi := &file_ads_v1_recommendation_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Recommendation.ProtoReflect.Descriptor instead.
func (*Recommendation) Descriptor() ([]byte, []int) {
	return file_ads_v1_recommendation_proto_rawDescGZIP(), []int{0}
}

func (x *Recommendation) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Recommendation) GetAccountId() string {
	if x != nil {
		return x.AccountId
	}
	return ""
}

func (x *Recommendation) GetCampaignId() string {
	if x != nil {
		return x.CampaignId
	}
	return ""
}

func (x *Recommendation) GetAdGroupId() string {
	if x != nil {
		return x.AdGroupId
	}
	return ""
}

func (x *Recommendation) GetChannel() RecommendationChannel {
	if x != nil {
		return x.Channel
	}
	return RecommendationChannel_RECOMMENDATION_CHANNEL_UNSPECIFIED
}

func (x *Recommendation) GetKind() RecommendationKind {
	if x != nil {
		return x.Kind
	}
	return RecommendationKind_RECOMMENDATION_KIND_UNSPECIFIED
}

func (x *Recommendation) GetAction() RecommendationAction {
	if x != nil {
		return x.Action
	}
	return RecommendationAction_RECOMMENDATION_ACTION_UNSPECIFIED
}

func (x *Recommendation) GetValue() string {
	if x != nil {
		return x.Value
	}
	return ""
}

func (x *Recommendation) GetAttributes() map[string]string {
	if x != nil {
		return x.Attributes
	}
	return nil
}

func (x *Recommendation) GetStatus() RecommendationStatus {
	if x != nil {
		return x.Status
	}
	return RecommendationStatus_RECOMMENDATION_STATUS_UNSPECIFIED
}

func (x *Recommendation) GetStatusReason() string {
	if x != nil {
		return x.StatusReason
	}
	return ""
}

func (x *Recommendation) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

func (x *Recommendation) GetCreateTime() *timestamppb.Timestamp {
	if x != nil {
		return x.CreateTime
	}
	return nil
}

func (x *Recommendation) GetUpdateTime() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdateTime
	}
	return nil
}

var File_ads_v1_recommendation_proto protoreflect.FileDescriptor

const file_ads_v1_recommendation_proto_rawDesc = "" +
	"\n" +
	"\x1bads/v1/recommendation.proto\x12\x06ads.v1\x1a\x1fgoogle/protobuf/timestamp.proto\"\xa9\x05\n" +
	"\x0eRecommendation\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"account_id\x18\x02 \x01(\tR\taccountId\x12\x1f\n" +
	"\vcampaign_id\x18\x03 \x01(\tR\n" +
	"campaignId\x12\x1e\n" +
	"\vad_group_id\x18\x04 \x01(\tR\tadGroupId\x127\n" +
	"\achannel\x18\x05 \x01(\x0e2\x1d.ads.v1.RecommendationChannelR\achannel\x12.\n" +
	"\x04kind\x18\x06 \x01(\x0e2\x1a.ads.v1.RecommendationKindR\x04kind\x124\n" +
	"\x06action\x18\a \x01(\x0e2\x1c.ads.v1.RecommendationActionR\x06action\x12\x14\n" +
	"\x05value\x18\b \x01(\tR\x05value\x12F\n" +
	"\n" +
	"attributes\x18\t \x03(\v2&.ads.v1.Recommendation.AttributesEntryR\n" +
	"attributes\x124\n" +
	"\x06status\x18\n" +
	" \x01(\x0e2\x1c.ads.v1.RecommendationStatusR\x06status\x12#\n" +
	"\rstatus_reason\x18\v \x01(\tR\fstatusReason\x12\x16\n" +
	"\x06source\x18\f \x01(\tR\x06source\x12;\n" +
	"\vcreate_time\x18\r \x01(\v2\x1a.google.protobuf.TimestampR\n" +
	"createTime\x12;\n" +
	"\vupdate_time\x18\x0e \x01(\v2\x1a.google.protobuf.TimestampR\n" +
	"updateTime\x1a=\n" +
	"\x0fAttributesEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01*\xf5\x02\n" +
	"\x12RecommendationKind\x12#\n" +
	"\x1fRECOMMENDATION_KIND_UNSPECIFIED\x10\x00\x12 \n" +
	"\x1cRECOMMENDATION_KIND_HEADLINE\x10\x01\x12#\n" +
	"\x1fRECOMMENDATION_KIND_DESCRIPTION\x10\x02\x12\x1f\n" +
	"\x1bRECOMMENDATION_KIND_KEYWORD\x10\x03\x12(\n" +
	"$RECOMMENDATION_KIND_NEGATIVE_KEYWORD\x10\x04\x12 \n" +
	"\x1cRECOMMENDATION_KIND_SITELINK\x10\x05\x12!\n" +
	"\x1dRECOMMENDATION_KIND_AGE_RANGE\x10\x06\x12\x1e\n" +
	"\x1aRECOMMENDATION_KIND_GENDER\x10\a\x12 \n" +
	"\x1cRECOMMENDATION_KIND_LOCATION\x10\b\x12!\n" +
	"\x1dRECOMMENDATION_KIND_PROXIMITY\x10\t*\x83\x01\n" +
	"\x15RecommendationChannel\x12&\n" +
	"\"RECOMMENDATION_CHANNEL_UNSPECIFIED\x10\x00\x12!\n" +
	"\x1dRECOMMENDATION_CHANNEL_GOOGLE\x10\x01\x12\x1f\n" +
	"\x1bRECOMMENDATION_CHANNEL_META\x10\x02*~\n" +
	"\x14RecommendationAction\x12%\n" +
	"!RECOMMENDATION_ACTION_UNSPECIFIED\x10\x00\x12\x1d\n" +
	"\x19RECOMMENDATION_ACTION_ADD\x10\x01\x12 \n" +
	"\x1cRECOMMENDATION_ACTION_REMOVE\x10\x02*\xb2\x02\n" +
	"\x14RecommendationStatus\x12%\n" +
	"!RECOMMENDATION_STATUS_UNSPECIFIED\x10\x00\x12\x1f\n" +
	"\x1bRECOMMENDATION_STATUS_DRAFT\x10\x01\x12!\n" +
	"\x1dRECOMMENDATION_STATUS_PENDING\x10\x02\x12\"\n" +
	"\x1eRECOMMENDATION_STATUS_APPROVED\x10\x03\x12\"\n" +
	"\x1eRECOMMENDATION_STATUS_APPLYING\x10\x04\x12!\n" +
	"\x1dRECOMMENDATION_STATUS_APPLIED\x10\x05\x12 \n" +
	"\x1cRECOMMENDATION_STATUS_FAILED\x10\x06\x12\"\n" +
	"\x1eRECOMMENDATION_STATUS_REJECTED\x10\aB4Z2github.com/adpilot/adpilot/api/gen/go/ads/v1;adsv1b\x06proto3"

var (
	file_ads_v1_recommendation_proto_rawDescOnce sync.Once
	file_ads_v1_recommendation_proto_rawDescData []byte
)

func file_ads_v1_recommendation_proto_rawDescGZIP() []byte {
	file_ads_v1_recommendation_proto_rawDescOnce.Do(func() {
		file_ads_v1_recommendation_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_ads_v1_recommendation_proto_rawDesc), len(file_ads_v1_recommendation_proto_rawDesc)))
	})
	return file_ads_v1_recommendation_proto_rawDescData
}

var file_ads_v1_recommendation_proto_enumTypes = make([]protoimpl.EnumInfo, 4)
var file_ads_v1_recommendation_proto_msgTypes = make([]protoimpl.MessageInfo, 2)
var file_ads_v1_recommendation_proto_goTypes = []any{
	(RecommendationKind)(0),       // 0: ads.v1.RecommendationKind
	(RecommendationChannel)(0),    // 1: ads.v1.RecommendationChannel
	(RecommendationAction)(0),     // 2: ads.v1.RecommendationAction
	(RecommendationStatus)(0),     // 3: ads.v1.RecommendationStatus
	(*Recommendation)(nil),        // 4: ads.v1.Recommendation
	nil,                           // 5: ads.v1.Recommendation.AttributesEntry
	(*timestamppb.Timestamp)(nil), // 6: google.protobuf.Timestamp
}
var file_ads_v1_recommendation_proto_depIdxs = []int32{
	1, // 0: ads.v1.Recommendation.channel:type_name -> ads.v1.RecommendationChannel
	0, // 1: ads.v1.Recommendation.kind:type_name -> ads.v1.RecommendationKind
	2, // 2: ads.v1.Recommendation.action:type_name -> ads.v1.RecommendationAction
	5, // 3: ads.v1.Recommendation.attributes:type_name -> ads.v1.Recommendation.AttributesEntry
	3, // 4: ads.v1.Recommendation.status:type_name -> ads.v1.RecommendationStatus
	6, // 5: ads.v1.Recommendation.create_time:type_name -> google.protobuf.Timestamp
	6, // 6: ads.v1.Recommendation.update_time:type_name -> google.protobuf.Timestamp
	7, // [7:7] is the sub-list for method output_type
	7, // [7:7] is the sub-list for method input_type
	7, // [7:7] is the sub-list for extension type_name
	7, // [7:7] is the sub-list for extension extendee
	0, // [0:7] is the sub-list for field type_name
}

func init() { file_ads_v1_recommendation_proto_init() }
func file_ads_v1_recommendation_proto_init() {
	if File_ads_v1_recommendation_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_ads_v1_recommendation_proto_rawDesc), len(file_ads_v1_recommendation_proto_rawDesc)),
			NumEnums:      4,
			NumMessages:   2,
			NumExtensions: 0,
			NumServices:   0,
		},
		GoTypes:           file_ads_v1_recommendation_proto_goTypes,
		DependencyIndexes: file_ads_v1_recommendation_proto_depIdxs,
		EnumInfos:         file_ads_v1_recommendation_proto_enumTypes,
		MessageInfos:      file_ads_v1_recommendation_proto_msgTypes,
	}.Build()
	File_ads_v1_recommendation_proto = out.File
	file_ads_v1_recommendation_proto_goTypes = nil
	file_ads_v1_recommendation_proto_depIdxs = nil
}

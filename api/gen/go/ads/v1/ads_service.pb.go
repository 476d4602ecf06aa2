// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: ads/v1/ads_service.proto

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

// Account binds an internal account to external ad-platform identities.
type Account struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Id    string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name  string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	// google_customer_id is the Google Ads customer resource number.
	GoogleCustomerId string `protobuf:"bytes,3,opt,name=google_customer_id,json=googleCustomerId,proto3" json:"google_customer_id,omitempty"`
	// meta_ad_account_id is the Meta Marketing API ad account identifier.
	MetaAdAccountId string `protobuf:"bytes,4,opt,name=meta_ad_account_id,json=metaAdAccountId,proto3" json:"meta_ad_account_id,omitempty"`
	// google_login_customer_id is the manager account for MCC access.
	GoogleLoginCustomerId string                 `protobuf:"bytes,5,opt,name=google_login_customer_id,json=googleLoginCustomerId,proto3" json:"google_login_customer_id,omitempty"`
	CreateTime            *timestamppb.Timestamp `protobuf:"bytes,6,opt,name=create_time,json=createTime,proto3" json:"create_time,omitempty"`
	UpdateTime            *timestamppb.Timestamp `protobuf:"bytes,7,opt,name=update_time,json=updateTime,proto3" json:"update_time,omitempty"`
	unknownFields         protoimpl.UnknownFields
	sizeCache             protoimpl.SizeCache
}

func (x *Account) Reset() {
	*x = Account{}
	mi := &file_ads_v1_ads_service_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Account) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Account) ProtoMessage() {}

func (x *Account) ProtoReflect() protoreflect.Message {
	mi := &file_ads_v1_ads_service_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Account.ProtoReflect.Descriptor instead.
func (*Account) Descriptor() ([]byte, []int) {
	return file_ads_v1_ads_service_proto_rawDescGZIP(), []int{0}
}

func (x *Account) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Account) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Account) GetGoogleCustomerId() string {
	if x != nil {
		return x.GoogleCustomerId
	}
	return ""
}

func (x *Account) GetMetaAdAccountId() string {
	if x != nil {
		return x.MetaAdAccountId
	}
	return ""
}

func (x *Account) GetGoogleLoginCustomerId() string {
	if x != nil {
		return x.GoogleLoginCustomerId
	}
	return ""
}

func (x *Account) GetCreateTime() *timestamppb.Timestamp {
	if x != nil {
		return x.CreateTime
	}
	return nil
}

func (x *Account) GetUpdateTime() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdateTime
	}
	return nil
}

type RegisterAccountRequest struct {
	state                 protoimpl.MessageState `protogen:"open.v1"`
	Name                  string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	GoogleCustomerId      string                 `protobuf:"bytes,2,opt,name=google_customer_id,json=googleCustomerId,proto3" json:"google_customer_id,omitempty"`
	MetaAdAccountId       string                 `protobuf:"bytes,3,opt,name=meta_ad_account_id,json=metaAdAccountId,proto3" json:"meta_ad_account_id,omitempty"`
	GoogleLoginCustomerId string                 `protobuf:"bytes,4,opt,name=google_login_customer_id,json=googleLoginCustomerId,proto3" json:"google_login_customer_id,omitempty"`
	// google_refresh_token is the OAuth refresh token for the account. It is
	// sealed before persistence and never returned by read APIs.
	GoogleRefreshToken string `protobuf:"bytes,5,opt,name=google_refresh_token,json=googleRefreshToken,proto3" json:"google_refresh_token,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *RegisterAccountRequest) Reset() {
	*x = RegisterAccountRequest{}
	mi := &file_ads_v1_ads_service_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegisterAccountRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegisterAccountRequest) ProtoMessage() {}

func (x *RegisterAccountRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ads_v1_ads_service_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RegisterAccountRequest.ProtoReflect.Descriptor instead.
func (*RegisterAccountRequest) Descriptor() ([]byte, []int) {
	return file_ads_v1_ads_service_proto_rawDescGZIP(), []int{1}
}

func (x *RegisterAccountRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *RegisterAccountRequest) GetGoogleCustomerId() string {
	if x != nil {
		return x.GoogleCustomerId
	}
	return ""
}

func (x *RegisterAccountRequest) GetMetaAdAccountId() string {
	if x != nil {
		return x.MetaAdAccountId
	}
	return ""
}

func (x *RegisterAccountRequest) GetGoogleLoginCustomerId() string {
	if x != nil {
		return x.GoogleLoginCustomerId
	}
	return ""
}

func (x *RegisterAccountRequest) GetGoogleRefreshToken() string {
	if x != nil {
		return x.GoogleRefreshToken
	}
	return ""
}

type GetAccountRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AccountId     string                 `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetAccountRequest) Reset() {
	*x = GetAccountRequest{}
	mi := &file_ads_v1_ads_service_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetAccountRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAccountRequest) ProtoMessage() {}

func (x *GetAccountRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ads_v1_ads_service_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAccountRequest.ProtoReflect.Descriptor instead.
func (*GetAccountRequest) Descriptor() ([]byte, []int) {
	return file_ads_v1_ads_service_proto_rawDescGZIP(), []int{2}
}

func (x *GetAccountRequest) GetAccountId() string {
	if x != nil {
		return x.AccountId
	}
	return ""
}

type ListAccountsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PageSize      int32                  `protobuf:"varint,1,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	PageToken     string                 `protobuf:"bytes,2,opt,name=page_token,json=pageToken,proto3" json:"page_token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListAccountsRequest) Reset() {
	*x = ListAccountsRequest{}
	mi := &file_ads_v1_ads_service_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListAccountsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListAccountsRequest) ProtoMessage() {}

func (x *ListAccountsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ads_v1_ads_service_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListAccountsRequest.ProtoReflect.Descriptor instead.
func (*ListAccountsRequest) Descriptor() ([]byte, []int) {
	return file_ads_v1_ads_service_proto_rawDescGZIP(), []int{3}
}

func (x *ListAccountsRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *ListAccountsRequest) GetPageToken() string {
	if x != nil {
		return x.PageToken
	}
	return ""
}

type ListAccountsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Accounts      []*Account             `protobuf:"bytes,1,rep,name=accounts,proto3" json:"accounts,omitempty"`
	NextPageToken string                 `protobuf:"bytes,2,opt,name=next_page_token,json=nextPageToken,proto3" json:"next_page_token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListAccountsResponse) Reset() {
	*x = ListAccountsResponse{}
	mi := &file_ads_v1_ads_service_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListAccountsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListAccountsResponse) ProtoMessage() {}

func (x *ListAccountsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ads_v1_ads_service_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListAccountsResponse.ProtoReflect.Descriptor instead.
func (*ListAccountsResponse) Descriptor() ([]byte, []int) {
	return file_ads_v1_ads_service_proto_rawDescGZIP(), []int{4}
}

func (x *ListAccountsResponse) GetAccounts() []*Account {
	if x != nil {
		return x.Accounts
	}
	return nil
}

func (x *ListAccountsResponse) GetNextPageToken() string {
	if x != nil {
		return x.NextPageToken
	}
	return ""
}

type CreateRecommendationRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Recommendation *Recommendation        `protobuf:"bytes,1,opt,name=recommendation,proto3" json:"recommendation,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *CreateRecommendationRequest) Reset() {
	*x = CreateRecommendationRequest{}
	mi := &file_ads_v1_ads_service_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateRecommendationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateRecommendationRequest) ProtoMessage() {}

func (x *CreateRecommendationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ads_v1_ads_service_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateRecommendationRequest.ProtoReflect.Descriptor instead.
func (*CreateRecommendationRequest) Descriptor() ([]byte, []int) {
	return file_ads_v1_ads_service_proto_rawDescGZIP(), []int{5}
}

func (x *CreateRecommendationRequest) GetRecommendation() *Recommendation {
	if x != nil {
		return x.Recommendation
	}
	return nil
}

type GetRecommendationRequest struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	RecommendationId string                 `protobuf:"bytes,1,opt,name=recommendation_id,json=recommendationId,proto3" json:"recommendation_id,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *GetRecommendationRequest) Reset() {
	*x = GetRecommendationRequest{}
	mi := &file_ads_v1_ads_service_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetRecommendationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetRecommendationRequest) ProtoMessage() {}

func (x *GetRecommendationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ads_v1_ads_service_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetRecommendationRequest.ProtoReflect.Descriptor instead.
func (*GetRecommendationRequest) Descriptor() ([]byte, []int) {
	return file_ads_v1_ads_service_proto_rawDescGZIP(), []int{6}
}

func (x *GetRecommendationRequest) GetRecommendationId() string {
	if x != nil {
		return x.RecommendationId
	}
	return ""
}

type ListRecommendationsRequest struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	AccountId string                 `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	// filter is an AIP-160 expression over kind, channel, status, source,
	// campaign_id, ad_group_id, and create_time.
	Filter        string `protobuf:"bytes,2,opt,name=filter,proto3" json:"filter,omitempty"`
	PageSize      int32  `protobuf:"varint,3,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	PageToken     string `protobuf:"bytes,4,opt,name=page_token,json=pageToken,proto3" json:"page_token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListRecommendationsRequest) Reset() {
	*x = ListRecommendationsRequest{}
	mi := &file_ads_v1_ads_service_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRecommendationsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRecommendationsRequest) ProtoMessage() {}

func (x *ListRecommendationsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ads_v1_ads_service_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListRecommendationsRequest.ProtoReflect.Descriptor instead.
func (*ListRecommendationsRequest) Descriptor() ([]byte, []int) {
	return file_ads_v1_ads_service_proto_rawDescGZIP(), []int{7}
}

func (x *ListRecommendationsRequest) GetAccountId() string {
	if x != nil {
		return x.AccountId
	}
	return ""
}

func (x *ListRecommendationsRequest) GetFilter() string {
	if x != nil {
		return x.Filter
	}
	return ""
}

func (x *ListRecommendationsRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *ListRecommendationsRequest) GetPageToken() string {
	if x != nil {
		return x.PageToken
	}
	return ""
}

type ListRecommendationsResponse struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Recommendations []*Recommendation      `protobuf:"bytes,1,rep,name=recommendations,proto3" json:"recommendations,omitempty"`
	NextPageToken   string                 `protobuf:"bytes,2,opt,name=next_page_token,json=nextPageToken,proto3" json:"next_page_token,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *ListRecommendationsResponse) Reset() {
	*x = ListRecommendationsResponse{}
	mi := &file_ads_v1_ads_service_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRecommendationsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRecommendationsResponse) ProtoMessage() {}

func (x *ListRecommendationsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ads_v1_ads_service_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListRecommendationsResponse.ProtoReflect.Descriptor instead.
func (*ListRecommendationsResponse) Descriptor() ([]byte, []int) {
	return file_ads_v1_ads_service_proto_rawDescGZIP(), []int{8}
}

func (x *ListRecommendationsResponse) GetRecommendations() []*Recommendation {
	if x != nil {
		return x.Recommendations
	}
	return nil
}

func (x *ListRecommendationsResponse) GetNextPageToken() string {
	if x != nil {
		return x.NextPageToken
	}
	return ""
}

type ApproveRecommendationRequest struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	RecommendationId string                 `protobuf:"bytes,1,opt,name=recommendation_id,json=recommendationId,proto3" json:"recommendation_id,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *ApproveRecommendationRequest) Reset() {
	*x = ApproveRecommendationRequest{}
	mi := &file_ads_v1_ads_service_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApproveRecommendationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApproveRecommendationRequest) ProtoMessage() {}

func (x *ApproveRecommendationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ads_v1_ads_service_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApproveRecommendationRequest.ProtoReflect.Descriptor instead.
func (*ApproveRecommendationRequest) Descriptor() ([]byte, []int) {
	return file_ads_v1_ads_service_proto_rawDescGZIP(), []int{9}
}

func (x *ApproveRecommendationRequest) GetRecommendationId() string {
	if x != nil {
		return x.RecommendationId
	}
	return ""
}

type RejectRecommendationRequest struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	RecommendationId string                 `protobuf:"bytes,1,opt,name=recommendation_id,json=recommendationId,proto3" json:"recommendation_id,omitempty"`
	Reason           string                 `protobuf:"bytes,2,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *RejectRecommendationRequest) Reset() {
	*x = RejectRecommendationRequest{}
	mi := &file_ads_v1_ads_service_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RejectRecommendationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RejectRecommendationRequest) ProtoMessage() {}

func (x *RejectRecommendationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ads_v1_ads_service_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RejectRecommendationRequest.ProtoReflect.Descriptor instead.
func (*RejectRecommendationRequest) Descriptor() ([]byte, []int) {
	return file_ads_v1_ads_service_proto_rawDescGZIP(), []int{10}
}

func (x *RejectRecommendationRequest) GetRecommendationId() string {
	if x != nil {
		return x.RecommendationId
	}
	return ""
}

func (x *RejectRecommendationRequest) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

type GenerateCopyRequest struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	AccountId  string                 `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	CampaignId string                 `protobuf:"bytes,2,opt,name=campaign_id,json=campaignId,proto3" json:"campaign_id,omitempty"`
	AdGroupId  string                 `protobuf:"bytes,3,opt,name=ad_group_id,json=adGroupId,proto3" json:"ad_group_id,omitempty"`
	// brief describes the product or service the copy should sell.
	Brief            string `protobuf:"bytes,4,opt,name=brief,proto3" json:"brief,omitempty"`
	HeadlineCount    int32  `protobuf:"varint,5,opt,name=headline_count,json=headlineCount,proto3" json:"headline_count,omitempty"`
	DescriptionCount int32  `protobuf:"varint,6,opt,name=description_count,json=descriptionCount,proto3" json:"description_count,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *GenerateCopyRequest) Reset() {
	*x = GenerateCopyRequest{}
	mi := &file_ads_v1_ads_service_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateCopyRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateCopyRequest) ProtoMessage() {}

func (x *GenerateCopyRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ads_v1_ads_service_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateCopyRequest.ProtoReflect.Descriptor instead.
func (*GenerateCopyRequest) Descriptor() ([]byte, []int) {
	return file_ads_v1_ads_service_proto_rawDescGZIP(), []int{11}
}

func (x *GenerateCopyRequest) GetAccountId() string {
	if x != nil {
		return x.AccountId
	}
	return ""
}

func (x *GenerateCopyRequest) GetCampaignId() string {
	if x != nil {
		return x.CampaignId
	}
	return ""
}

func (x *GenerateCopyRequest) GetAdGroupId() string {
	if x != nil {
		return x.AdGroupId
	}
	return ""
}

func (x *GenerateCopyRequest) GetBrief() string {
	if x != nil {
		return x.Brief
	}
	return ""
}

func (x *GenerateCopyRequest) GetHeadlineCount() int32 {
	if x != nil {
		return x.HeadlineCount
	}
	return 0
}

func (x *GenerateCopyRequest) GetDescriptionCount() int32 {
	if x != nil {
		return x.DescriptionCount
	}
	return 0
}

type GenerateCopyResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// drafts are stored with DRAFT status before being returned.
	Drafts        []*Recommendation `protobuf:"bytes,1,rep,name=drafts,proto3" json:"drafts,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GenerateCopyResponse) Reset() {
	*x = GenerateCopyResponse{}
	mi := &file_ads_v1_ads_service_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateCopyResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateCopyResponse) ProtoMessage() {}

func (x *GenerateCopyResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ads_v1_ads_service_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateCopyResponse.ProtoReflect.Descriptor instead.
func (*GenerateCopyResponse) Descriptor() ([]byte, []int) {
	return file_ads_v1_ads_service_proto_rawDescGZIP(), []int{12}
}

func (x *GenerateCopyResponse) GetDrafts() []*Recommendation {
	if x != nil {
		return x.Drafts
	}
	return nil
}

type GenerateKeywordIdeasRequest struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	AccountId          string                 `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	SeedKeywords       []string               `protobuf:"bytes,2,rep,name=seed_keywords,json=seedKeywords,proto3" json:"seed_keywords,omitempty"`
	PageUrl            string                 `protobuf:"bytes,3,opt,name=page_url,json=pageUrl,proto3" json:"page_url,omitempty"`
	LanguageConstant   string                 `protobuf:"bytes,4,opt,name=language_constant,json=languageConstant,proto3" json:"language_constant,omitempty"`
	GeoTargetConstants []string               `protobuf:"bytes,5,rep,name=geo_target_constants,json=geoTargetConstants,proto3" json:"geo_target_constants,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *GenerateKeywordIdeasRequest) Reset() {
	*x = GenerateKeywordIdeasRequest{}
	mi := &file_ads_v1_ads_service_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateKeywordIdeasRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateKeywordIdeasRequest) ProtoMessage() {}

func (x *GenerateKeywordIdeasRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ads_v1_ads_service_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateKeywordIdeasRequest.ProtoReflect.Descriptor instead.
func (*GenerateKeywordIdeasRequest) Descriptor() ([]byte, []int) {
	return file_ads_v1_ads_service_proto_rawDescGZIP(), []int{13}
}

func (x *GenerateKeywordIdeasRequest) GetAccountId() string {
	if x != nil {
		return x.AccountId
	}
	return ""
}

func (x *GenerateKeywordIdeasRequest) GetSeedKeywords() []string {
	if x != nil {
		return x.SeedKeywords
	}
	return nil
}

func (x *GenerateKeywordIdeasRequest) GetPageUrl() string {
	if x != nil {
		return x.PageUrl
	}
	return ""
}

func (x *GenerateKeywordIdeasRequest) GetLanguageConstant() string {
	if x != nil {
		return x.LanguageConstant
	}
	return ""
}

func (x *GenerateKeywordIdeasRequest) GetGeoTargetConstants() []string {
	if x != nil {
		return x.GeoTargetConstants
	}
	return nil
}

type KeywordIdea struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	Text               string                 `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
	AvgMonthlySearches int64                  `protobuf:"varint,2,opt,name=avg_monthly_searches,json=avgMonthlySearches,proto3" json:"avg_monthly_searches,omitempty"`
	Competition        string                 `protobuf:"bytes,3,opt,name=competition,proto3" json:"competition,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *KeywordIdea) Reset() {
	*x = KeywordIdea{}
	mi := &file_ads_v1_ads_service_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *KeywordIdea) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*KeywordIdea) ProtoMessage() {}

func (x *KeywordIdea) ProtoReflect() protoreflect.Message {
	mi := &file_ads_v1_ads_service_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use KeywordIdea.ProtoReflect.Descriptor instead.
func (*KeywordIdea) Descriptor() ([]byte, []int) {
	return file_ads_v1_ads_service_proto_rawDescGZIP(), []int{14}
}

func (x *KeywordIdea) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *KeywordIdea) GetAvgMonthlySearches() int64 {
	if x != nil {
		return x.AvgMonthlySearches
	}
	return 0
}

func (x *KeywordIdea) GetCompetition() string {
	if x != nil {
		return x.Competition
	}
	return ""
}

type GenerateKeywordIdeasResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ideas         []*KeywordIdea         `protobuf:"bytes,1,rep,name=ideas,proto3" json:"ideas,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GenerateKeywordIdeasResponse) Reset() {
	*x = GenerateKeywordIdeasResponse{}
	mi := &file_ads_v1_ads_service_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateKeywordIdeasResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateKeywordIdeasResponse) ProtoMessage() {}

func (x *GenerateKeywordIdeasResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ads_v1_ads_service_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateKeywordIdeasResponse.ProtoReflect.Descriptor instead.
func (*GenerateKeywordIdeasResponse) Descriptor() ([]byte, []int) {
	return file_ads_v1_ads_service_proto_rawDescGZIP(), []int{15}
}

func (x *GenerateKeywordIdeasResponse) GetIdeas() []*KeywordIdea {
	if x != nil {
		return x.Ideas
	}
	return nil
}

type ApplyRecommendationsRequest struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	AccountId string                 `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	// recommendation_ids limits the run; empty applies every APPROVED
	// recommendation on the account.
	RecommendationIds []string `protobuf:"bytes,2,rep,name=recommendation_ids,json=recommendationIds,proto3" json:"recommendation_ids,omitempty"`
	// partial_failure commits valid operations and reports invalid ones
	// independently. When false the batch is atomic.
	PartialFailure bool `protobuf:"varint,3,opt,name=partial_failure,json=partialFailure,proto3" json:"partial_failure,omitempty"`
	// validate_only runs vendor-side validation without committing.
	ValidateOnly  bool `protobuf:"varint,4,opt,name=validate_only,json=validateOnly,proto3" json:"validate_only,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApplyRecommendationsRequest) Reset() {
	*x = ApplyRecommendationsRequest{}
	mi := &file_ads_v1_ads_service_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApplyRecommendationsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApplyRecommendationsRequest) ProtoMessage() {}

func (x *ApplyRecommendationsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ads_v1_ads_service_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApplyRecommendationsRequest.ProtoReflect.Descriptor instead.
func (*ApplyRecommendationsRequest) Descriptor() ([]byte, []int) {
	return file_ads_v1_ads_service_proto_rawDescGZIP(), []int{16}
}

func (x *ApplyRecommendationsRequest) GetAccountId() string {
	if x != nil {
		return x.AccountId
	}
	return ""
}

func (x *ApplyRecommendationsRequest) GetRecommendationIds() []string {
	if x != nil {
		return x.RecommendationIds
	}
	return nil
}

func (x *ApplyRecommendationsRequest) GetPartialFailure() bool {
	if x != nil {
		return x.PartialFailure
	}
	return false
}

func (x *ApplyRecommendationsRequest) GetValidateOnly() bool {
	if x != nil {
		return x.ValidateOnly
	}
	return false
}

// OperationOutcome reports what happened to one mutate operation.
type OperationOutcome struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	RecommendationId string                 `protobuf:"bytes,1,opt,name=recommendation_id,json=recommendationId,proto3" json:"recommendation_id,omitempty"`
	OperationIndex   int32                  `protobuf:"varint,2,opt,name=operation_index,json=operationIndex,proto3" json:"operation_index,omitempty"`
	ResourceName     string                 `protobuf:"bytes,3,opt,name=resource_name,json=resourceName,proto3" json:"resource_name,omitempty"`
	Succeeded        bool                   `protobuf:"varint,4,opt,name=succeeded,proto3" json:"succeeded,omitempty"`
	ErrorMessage     string                 `protobuf:"bytes,5,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *OperationOutcome) Reset() {
	*x = OperationOutcome{}
	mi := &file_ads_v1_ads_service_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OperationOutcome) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OperationOutcome) ProtoMessage() {}

func (x *OperationOutcome) ProtoReflect() protoreflect.Message {
	mi := &file_ads_v1_ads_service_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OperationOutcome.ProtoReflect.Descriptor instead.
func (*OperationOutcome) Descriptor() ([]byte, []int) {
	return file_ads_v1_ads_service_proto_rawDescGZIP(), []int{17}
}

func (x *OperationOutcome) GetRecommendationId() string {
	if x != nil {
		return x.RecommendationId
	}
	return ""
}

func (x *OperationOutcome) GetOperationIndex() int32 {
	if x != nil {
		return x.OperationIndex
	}
	return 0
}

func (x *OperationOutcome) GetResourceName() string {
	if x != nil {
		return x.ResourceName
	}
	return ""
}

func (x *OperationOutcome) GetSucceeded() bool {
	if x != nil {
		return x.Succeeded
	}
	return false
}

func (x *OperationOutcome) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

type ApplyRecommendationsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ApplyId       string                 `protobuf:"bytes,1,opt,name=apply_id,json=applyId,proto3" json:"apply_id,omitempty"`
	Outcomes      []*OperationOutcome    `protobuf:"bytes,2,rep,name=outcomes,proto3" json:"outcomes,omitempty"`
	AppliedCount  int32                  `protobuf:"varint,3,opt,name=applied_count,json=appliedCount,proto3" json:"applied_count,omitempty"`
	FailedCount   int32                  `protobuf:"varint,4,opt,name=failed_count,json=failedCount,proto3" json:"failed_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApplyRecommendationsResponse) Reset() {
	*x = ApplyRecommendationsResponse{}
	mi := &file_ads_v1_ads_service_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApplyRecommendationsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApplyRecommendationsResponse) ProtoMessage() {}

func (x *ApplyRecommendationsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ads_v1_ads_service_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApplyRecommendationsResponse.ProtoReflect.Descriptor instead.
func (*ApplyRecommendationsResponse) Descriptor() ([]byte, []int) {
	return file_ads_v1_ads_service_proto_rawDescGZIP(), []int{18}
}

func (x *ApplyRecommendationsResponse) GetApplyId() string {
	if x != nil {
		return x.ApplyId
	}
	return ""
}

func (x *ApplyRecommendationsResponse) GetOutcomes() []*OperationOutcome {
	if x != nil {
		return x.Outcomes
	}
	return nil
}

func (x *ApplyRecommendationsResponse) GetAppliedCount() int32 {
	if x != nil {
		return x.AppliedCount
	}
	return 0
}

func (x *ApplyRecommendationsResponse) GetFailedCount() int32 {
	if x != nil {
		return x.FailedCount
	}
	return 0
}

type ListApplyResultsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AccountId     string                 `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	PageSize      int32                  `protobuf:"varint,2,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	PageToken     string                 `protobuf:"bytes,3,opt,name=page_token,json=pageToken,proto3" json:"page_token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListApplyResultsRequest) Reset() {
	*x = ListApplyResultsRequest{}
	mi := &file_ads_v1_ads_service_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListApplyResultsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListApplyResultsRequest) ProtoMessage() {}

func (x *ListApplyResultsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ads_v1_ads_service_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListApplyResultsRequest.ProtoReflect.Descriptor instead.
func (*ListApplyResultsRequest) Descriptor() ([]byte, []int) {
	return file_ads_v1_ads_service_proto_rawDescGZIP(), []int{19}
}

func (x *ListApplyResultsRequest) GetAccountId() string {
	if x != nil {
		return x.AccountId
	}
	return ""
}

func (x *ListApplyResultsRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *ListApplyResultsRequest) GetPageToken() string {
	if x != nil {
		return x.PageToken
	}
	return ""
}

// ApplyResult is the audit record of one recommendation within an apply run.
type ApplyResult struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ApplyId          string                 `protobuf:"bytes,2,opt,name=apply_id,json=applyId,proto3" json:"apply_id,omitempty"`
	AccountId        string                 `protobuf:"bytes,3,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	RecommendationId string                 `protobuf:"bytes,4,opt,name=recommendation_id,json=recommendationId,proto3" json:"recommendation_id,omitempty"`
	OperationIndex   int32                  `protobuf:"varint,5,opt,name=operation_index,json=operationIndex,proto3" json:"operation_index,omitempty"`
	ResourceName     string                 `protobuf:"bytes,6,opt,name=resource_name,json=resourceName,proto3" json:"resource_name,omitempty"`
	Succeeded        bool                   `protobuf:"varint,7,opt,name=succeeded,proto3" json:"succeeded,omitempty"`
	ErrorMessage     string                 `protobuf:"bytes,8,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	PartialFailure   bool                   `protobuf:"varint,9,opt,name=partial_failure,json=partialFailure,proto3" json:"partial_failure,omitempty"`
	ValidateOnly     bool                   `protobuf:"varint,10,opt,name=validate_only,json=validateOnly,proto3" json:"validate_only,omitempty"`
	CreateTime       *timestamppb.Timestamp `protobuf:"bytes,11,opt,name=create_time,json=createTime,proto3" json:"create_time,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *ApplyResult) Reset() {
	*x = ApplyResult{}
	mi := &file_ads_v1_ads_service_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApplyResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApplyResult) ProtoMessage() {}

func (x *ApplyResult) ProtoReflect() protoreflect.Message {
	mi := &file_ads_v1_ads_service_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApplyResult.ProtoReflect.Descriptor instead.
func (*ApplyResult) Descriptor() ([]byte, []int) {
	return file_ads_v1_ads_service_proto_rawDescGZIP(), []int{20}
}

func (x *ApplyResult) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ApplyResult) GetApplyId() string {
	if x != nil {
		return x.ApplyId
	}
	return ""
}

func (x *ApplyResult) GetAccountId() string {
	if x != nil {
		return x.AccountId
	}
	return ""
}

func (x *ApplyResult) GetRecommendationId() string {
	if x != nil {
		return x.RecommendationId
	}
	return ""
}

func (x *ApplyResult) GetOperationIndex() int32 {
	if x != nil {
		return x.OperationIndex
	}
	return 0
}

func (x *ApplyResult) GetResourceName() string {
	if x != nil {
		return x.ResourceName
	}
	return ""
}

func (x *ApplyResult) GetSucceeded() bool {
	if x != nil {
		return x.Succeeded
	}
	return false
}

func (x *ApplyResult) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *ApplyResult) GetPartialFailure() bool {
	if x != nil {
		return x.PartialFailure
	}
	return false
}

func (x *ApplyResult) GetValidateOnly() bool {
	if x != nil {
		return x.ValidateOnly
	}
	return false
}

func (x *ApplyResult) GetCreateTime() *timestamppb.Timestamp {
	if x != nil {
		return x.CreateTime
	}
	return nil
}

type ListApplyResultsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ApplyResults  []*ApplyResult         `protobuf:"bytes,1,rep,name=apply_results,json=applyResults,proto3" json:"apply_results,omitempty"`
	NextPageToken string                 `protobuf:"bytes,2,opt,name=next_page_token,json=nextPageToken,proto3" json:"next_page_token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListApplyResultsResponse) Reset() {
	*x = ListApplyResultsResponse{}
	mi := &file_ads_v1_ads_service_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListApplyResultsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListApplyResultsResponse) ProtoMessage() {}

func (x *ListApplyResultsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ads_v1_ads_service_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListApplyResultsResponse.ProtoReflect.Descriptor instead.
func (*ListApplyResultsResponse) Descriptor() ([]byte, []int) {
	return file_ads_v1_ads_service_proto_rawDescGZIP(), []int{21}
}

func (x *ListApplyResultsResponse) GetApplyResults() []*ApplyResult {
	if x != nil {
		return x.ApplyResults
	}
	return nil
}

func (x *ListApplyResultsResponse) GetNextPageToken() string {
	if x != nil {
		return x.NextPageToken
	}
	return ""
}

var File_ads_v1_ads_service_proto protoreflect.FileDescriptor

const file_ads_v1_ads_service_proto_rawDesc = "" +
	"\n" +
	"\x18ads/v1/ads_service.proto\x12\x06ads.v1\x1a\x1bads/v1/recommendation.proto\x1a\x1fgoogle/protobuf/timestamp.proto\"\xbb\x02\n" +
	"\aAccount\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12,\n" +
	"\x12google_customer_id\x18\x03 \x01(\tR\x10googleCustomerId\x12+\n" +
	"\x12meta_ad_account_id\x18\x04 \x01(\tR\x0fmetaAdAccountId\x127\n" +
	"\x18google_login_customer_id\x18\x05 \x01(\tR\x15googleLoginCustomerId\x12;\n" +
	"\vcreate_time\x18\x06 \x01(\v2\x1a.google.protobuf.TimestampR\n" +
	"createTime\x12;\n" +
	"\vupdate_time\x18\a \x01(\v2\x1a.google.protobuf.TimestampR\n" +
	"updateTime\"\xf2\x01\n" +
	"\x16RegisterAccountRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12,\n" +
	"\x12google_customer_id\x18\x02 \x01(\tR\x10googleCustomerId\x12+\n" +
	"\x12meta_ad_account_id\x18\x03 \x01(\tR\x0fmetaAdAccountId\x127\n" +
	"\x18google_login_customer_id\x18\x04 \x01(\tR\x15googleLoginCustomerId\x120\n" +
	"\x14google_refresh_token\x18\x05 \x01(\tR\x12googleRefreshToken\"2\n" +
	"\x11GetAccountRequest\x12\x1d\n" +
	"\n" +
	"account_id\x18\x01 \x01(\tR\taccountId\"Q\n" +
	"\x13ListAccountsRequest\x12\x1b\n" +
	"\tpage_size\x18\x01 \x01(\x05R\bpageSize\x12\x1d\n" +
	"\n" +
	"page_token\x18\x02 \x01(\tR\tpageToken\"k\n" +
	"\x14ListAccountsResponse\x12+\n" +
	"\baccounts\x18\x01 \x03(\v2\x0f.ads.v1.AccountR\baccounts\x12&\n" +
	"\x0fnext_page_token\x18\x02 \x01(\tR\rnextPageToken\"]\n" +
	"\x1bCreateRecommendationRequest\x12>\n" +
	"\x0erecommendation\x18\x01 \x01(\v2\x16.ads.v1.RecommendationR\x0erecommendation\"G\n" +
	"\x18GetRecommendationRequest\x12+\n" +
	"\x11recommendation_id\x18\x01 \x01(\tR\x10recommendationId\"\x8f\x01\n" +
	"\x1aListRecommendationsRequest\x12\x1d\n" +
	"\n" +
	"account_id\x18\x01 \x01(\tR\taccountId\x12\x16\n" +
	"\x06filter\x18\x02 \x01(\tR\x06filter\x12\x1b\n" +
	"\tpage_size\x18\x03 \x01(\x05R\bpageSize\x12\x1d\n" +
	"\n" +
	"page_token\x18\x04 \x01(\tR\tpageToken\"\x87\x01\n" +
	"\x1bListRecommendationsResponse\x12@\n" +
	"\x0frecommendations\x18\x01 \x03(\v2\x16.ads.v1.RecommendationR\x0frecommendations\x12&\n" +
	"\x0fnext_page_token\x18\x02 \x01(\tR\rnextPageToken\"K\n" +
	"\x1cApproveRecommendationRequest\x12+\n" +
	"\x11recommendation_id\x18\x01 \x01(\tR\x10recommendationId\"b\n" +
	"\x1bRejectRecommendationRequest\x12+\n" +
	"\x11recommendation_id\x18\x01 \x01(\tR\x10recommendationId\x12\x16\n" +
	"\x06reason\x18\x02 \x01(\tR\x06reason\"\xdf\x01\n" +
	"\x13GenerateCopyRequest\x12\x1d\n" +
	"\n" +
	"account_id\x18\x01 \x01(\tR\taccountId\x12\x1f\n" +
	"\vcampaign_id\x18\x02 \x01(\tR\n" +
	"campaignId\x12\x1e\n" +
	"\vad_group_id\x18\x03 \x01(\tR\tadGroupId\x12\x14\n" +
	"\x05brief\x18\x04 \x01(\tR\x05brief\x12%\n" +
	"\x0eheadline_count\x18\x05 \x01(\x05R\rheadlineCount\x12+\n" +
	"\x11description_count\x18\x06 \x01(\x05R\x10descriptionCount\"F\n" +
	"\x14GenerateCopyResponse\x12.\n" +
	"\x06drafts\x18\x01 \x03(\v2\x16.ads.v1.RecommendationR\x06drafts\"\xdb\x01\n" +
	"\x1bGenerateKeywordIdeasRequest\x12\x1d\n" +
	"\n" +
	"account_id\x18\x01 \x01(\tR\taccountId\x12#\n" +
	"\rseed_keywords\x18\x02 \x03(\tR\fseedKeywords\x12\x19\n" +
	"\bpage_url\x18\x03 \x01(\tR\apageUrl\x12+\n" +
	"\x11language_constant\x18\x04 \x01(\tR\x10languageConstant\x120\n" +
	"\x14geo_target_constants\x18\x05 \x03(\tR\x12geoTargetConstants\"u\n" +
	"\vKeywordIdea\x12\x12\n" +
	"\x04text\x18\x01 \x01(\tR\x04text\x120\n" +
	"\x14avg_monthly_searches\x18\x02 \x01(\x03R\x12avgMonthlySearches\x12 \n" +
	"\vcompetition\x18\x03 \x01(\tR\vcompetition\"I\n" +
	"\x1cGenerateKeywordIdeasResponse\x12)\n" +
	"\x05ideas\x18\x01 \x03(\v2\x13.ads.v1.KeywordIdeaR\x05ideas\"\xb9\x01\n" +
	"\x1bApplyRecommendationsRequest\x12\x1d\n" +
	"\n" +
	"account_id\x18\x01 \x01(\tR\taccountId\x12-\n" +
	"\x12recommendation_ids\x18\x02 \x03(\tR\x11recommendationIds\x12'\n" +
	"\x0fpartial_failure\x18\x03 \x01(\bR\x0epartialFailure\x12#\n" +
	"\rvalidate_only\x18\x04 \x01(\bR\fvalidateOnly\"\xd0\x01\n" +
	"\x10OperationOutcome\x12+\n" +
	"\x11recommendation_id\x18\x01 \x01(\tR\x10recommendationId\x12'\n" +
	"\x0foperation_index\x18\x02 \x01(\x05R\x0eoperationIndex\x12#\n" +
	"\rresource_name\x18\x03 \x01(\tR\fresourceName\x12\x1c\n" +
	"\tsucceeded\x18\x04 \x01(\bR\tsucceeded\x12#\n" +
	"\rerror_message\x18\x05 \x01(\tR\ferrorMessage\"\xb7\x01\n" +
	"\x1cApplyRecommendationsResponse\x12\x19\n" +
	"\bapply_id\x18\x01 \x01(\tR\aapplyId\x124\n" +
	"\boutcomes\x18\x02 \x03(\v2\x18.ads.v1.OperationOutcomeR\boutcomes\x12#\n" +
	"\rapplied_count\x18\x03 \x01(\x05R\fappliedCount\x12!\n" +
	"\ffailed_count\x18\x04 \x01(\x05R\vfailedCount\"t\n" +
	"\x17ListApplyResultsRequest\x12\x1d\n" +
	"\n" +
	"account_id\x18\x01 \x01(\tR\taccountId\x12\x1b\n" +
	"\tpage_size\x18\x02 \x01(\x05R\bpageSize\x12\x1d\n" +
	"\n" +
	"page_token\x18\x03 \x01(\tR\tpageToken\"\xa0\x03\n" +
	"\vApplyResult\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bapply_id\x18\x02 \x01(\tR\aapplyId\x12\x1d\n" +
	"\n" +
	"account_id\x18\x03 \x01(\tR\taccountId\x12+\n" +
	"\x11recommendation_id\x18\x04 \x01(\tR\x10recommendationId\x12'\n" +
	"\x0foperation_index\x18\x05 \x01(\x05R\x0eoperationIndex\x12#\n" +
	"\rresource_name\x18\x06 \x01(\tR\fresourceName\x12\x1c\n" +
	"\tsucceeded\x18\a \x01(\bR\tsucceeded\x12#\n" +
	"\rerror_message\x18\b \x01(\tR\ferrorMessage\x12'\n" +
	"\x0fpartial_failure\x18\t \x01(\bR\x0epartialFailure\x12#\n" +
	"\rvalidate_only\x18\n" +
	" \x01(\bR\fvalidateOnly\x12;\n" +
	"\vcreate_time\x18\v \x01(\v2\x1a.google.protobuf.TimestampR\n" +
	"createTime\"|\n" +
	"\x18ListApplyResultsResponse\x128\n" +
	"\rapply_results\x18\x01 \x03(\v2\x13.ads.v1.ApplyResultR\fapplyResults\x12&\n" +
	"\x0fnext_page_token\x18\x02 \x01(\tR\rnextPageToken2\xed\a\n" +
	"\n" +
	"AdsService\x12B\n" +
	"\x0fRegisterAccount\x12\x1e.ads.v1.RegisterAccountRequest\x1a\x0f.ads.v1.Account\x128\n" +
	"\n" +
	"GetAccount\x12\x19.ads.v1.GetAccountRequest\x1a\x0f.ads.v1.Account\x12I\n" +
	"\fListAccounts\x12\x1b.ads.v1.ListAccountsRequest\x1a\x1c.ads.v1.ListAccountsResponse\x12S\n" +
	"\x14CreateRecommendation\x12#.ads.v1.CreateRecommendationRequest\x1a\x16.ads.v1.Recommendation\x12M\n" +
	"\x11GetRecommendation\x12 .ads.v1.GetRecommendationRequest\x1a\x16.ads.v1.Recommendation\x12^\n" +
	"\x13ListRecommendations\x12\".ads.v1.ListRecommendationsRequest\x1a#.ads.v1.ListRecommendationsResponse\x12U\n" +
	"\x15ApproveRecommendation\x12$.ads.v1.ApproveRecommendationRequest\x1a\x16.ads.v1.Recommendation\x12S\n" +
	"\x14RejectRecommendation\x12#.ads.v1.RejectRecommendationRequest\x1a\x16.ads.v1.Recommendation\x12I\n" +
	"\fGenerateCopy\x12\x1b.ads.v1.GenerateCopyRequest\x1a\x1c.ads.v1.GenerateCopyResponse\x12a\n" +
	"\x14GenerateKeywordIdeas\x12#.ads.v1.GenerateKeywordIdeasRequest\x1a$.ads.v1.GenerateKeywordIdeasResponse\x12a\n" +
	"\x14ApplyRecommendations\x12#.ads.v1.ApplyRecommendationsRequest\x1a$.ads.v1.ApplyRecommendationsResponse\x12U\n" +
	"\x10ListApplyResults\x12\x1f.ads.v1.ListApplyResultsRequest\x1a .ads.v1.ListApplyResultsResponseB4Z2github.com/adpilot/adpilot/api/gen/go/ads/v1;adsv1b\x06proto3"

var (
	file_ads_v1_ads_service_proto_rawDescOnce sync.Once
	file_ads_v1_ads_service_proto_rawDescData []byte
)

func file_ads_v1_ads_service_proto_rawDescGZIP() []byte {
	file_ads_v1_ads_service_proto_rawDescOnce.Do(func() {
		file_ads_v1_ads_service_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_ads_v1_ads_service_proto_rawDesc), len(file_ads_v1_ads_service_proto_rawDesc)))
	})
	return file_ads_v1_ads_service_proto_rawDescData
}

var file_ads_v1_ads_service_proto_msgTypes = make([]protoimpl.MessageInfo, 22)
var file_ads_v1_ads_service_proto_goTypes = []any{
	(*Account)(nil),                      // 0: ads.v1.Account
	(*RegisterAccountRequest)(nil),       // 1: ads.v1.RegisterAccountRequest
	(*GetAccountRequest)(nil),            // 2: ads.v1.GetAccountRequest
	(*ListAccountsRequest)(nil),          // 3: ads.v1.ListAccountsRequest
	(*ListAccountsResponse)(nil),         // 4: ads.v1.ListAccountsResponse
	(*CreateRecommendationRequest)(nil),  // 5: ads.v1.CreateRecommendationRequest
	(*GetRecommendationRequest)(nil),     // 6: ads.v1.GetRecommendationRequest
	(*ListRecommendationsRequest)(nil),   // 7: ads.v1.ListRecommendationsRequest
	(*ListRecommendationsResponse)(nil),  // 8: ads.v1.ListRecommendationsResponse
	(*ApproveRecommendationRequest)(nil), // 9: ads.v1.ApproveRecommendationRequest
	(*RejectRecommendationRequest)(nil),  // 10: ads.v1.RejectRecommendationRequest
	(*GenerateCopyRequest)(nil),          // 11: ads.v1.GenerateCopyRequest
	(*GenerateCopyResponse)(nil),         // 12: ads.v1.GenerateCopyResponse
	(*GenerateKeywordIdeasRequest)(nil),  // 13: ads.v1.GenerateKeywordIdeasRequest
	(*KeywordIdea)(nil),                  // 14: ads.v1.KeywordIdea
	(*GenerateKeywordIdeasResponse)(nil), // 15: ads.v1.GenerateKeywordIdeasResponse
	(*ApplyRecommendationsRequest)(nil),  // 16: ads.v1.ApplyRecommendationsRequest
	(*OperationOutcome)(nil),             // 17: ads.v1.OperationOutcome
	(*ApplyRecommendationsResponse)(nil), // 18: ads.v1.ApplyRecommendationsResponse
	(*ListApplyResultsRequest)(nil),      // 19: ads.v1.ListApplyResultsRequest
	(*ApplyResult)(nil),                  // 20: ads.v1.ApplyResult
	(*ListApplyResultsResponse)(nil),     // 21: ads.v1.ListApplyResultsResponse
	(*timestamppb.Timestamp)(nil),        // 22: google.protobuf.Timestamp
	(*Recommendation)(nil),               // 23: ads.v1.Recommendation
}
var file_ads_v1_ads_service_proto_depIdxs = []int32{
	22, // 0: ads.v1.Account.create_time:type_name -> google.protobuf.Timestamp
	22, // 1: ads.v1.Account.update_time:type_name -> google.protobuf.Timestamp
	0,  // 2: ads.v1.ListAccountsResponse.accounts:type_name -> ads.v1.Account
	23, // 3: ads.v1.CreateRecommendationRequest.recommendation:type_name -> ads.v1.Recommendation
	23, // 4: ads.v1.ListRecommendationsResponse.recommendations:type_name -> ads.v1.Recommendation
	23, // 5: ads.v1.GenerateCopyResponse.drafts:type_name -> ads.v1.Recommendation
	14, // 6: ads.v1.GenerateKeywordIdeasResponse.ideas:type_name -> ads.v1.KeywordIdea
	17, // 7: ads.v1.ApplyRecommendationsResponse.outcomes:type_name -> ads.v1.OperationOutcome
	22, // 8: ads.v1.ApplyResult.create_time:type_name -> google.protobuf.Timestamp
	20, // 9: ads.v1.ListApplyResultsResponse.apply_results:type_name -> ads.v1.ApplyResult
	1,  // 10: ads.v1.AdsService.RegisterAccount:input_type -> ads.v1.RegisterAccountRequest
	2,  // 11: ads.v1.AdsService.GetAccount:input_type -> ads.v1.GetAccountRequest
	3,  // 12: ads.v1.AdsService.ListAccounts:input_type -> ads.v1.ListAccountsRequest
	5,  // 13: ads.v1.AdsService.CreateRecommendation:input_type -> ads.v1.CreateRecommendationRequest
	6,  // 14: ads.v1.AdsService.GetRecommendation:input_type -> ads.v1.GetRecommendationRequest
	7,  // 15: ads.v1.AdsService.ListRecommendations:input_type -> ads.v1.ListRecommendationsRequest
	9,  // 16: ads.v1.AdsService.ApproveRecommendation:input_type -> ads.v1.ApproveRecommendationRequest
	10, // 17: ads.v1.AdsService.RejectRecommendation:input_type -> ads.v1.RejectRecommendationRequest
	11, // 18: ads.v1.AdsService.GenerateCopy:input_type -> ads.v1.GenerateCopyRequest
	13, // 19: ads.v1.AdsService.GenerateKeywordIdeas:input_type -> ads.v1.GenerateKeywordIdeasRequest
	16, // 20: ads.v1.AdsService.ApplyRecommendations:input_type -> ads.v1.ApplyRecommendationsRequest
	19, // 21: ads.v1.AdsService.ListApplyResults:input_type -> ads.v1.ListApplyResultsRequest
	0,  // 22: ads.v1.AdsService.RegisterAccount:output_type -> ads.v1.Account
	0,  // 23: ads.v1.AdsService.GetAccount:output_type -> ads.v1.Account
	4,  // 24: ads.v1.AdsService.ListAccounts:output_type -> ads.v1.ListAccountsResponse
	23, // 25: ads.v1.AdsService.CreateRecommendation:output_type -> ads.v1.Recommendation
	23, // 26: ads.v1.AdsService.GetRecommendation:output_type -> ads.v1.Recommendation
	8,  // 27: ads.v1.AdsService.ListRecommendations:output_type -> ads.v1.ListRecommendationsResponse
	23, // 28: ads.v1.AdsService.ApproveRecommendation:output_type -> ads.v1.Recommendation
	23, // 29: ads.v1.AdsService.RejectRecommendation:output_type -> ads.v1.Recommendation
	12, // 30: ads.v1.AdsService.GenerateCopy:output_type -> ads.v1.GenerateCopyResponse
	15, // 31: ads.v1.AdsService.GenerateKeywordIdeas:output_type -> ads.v1.GenerateKeywordIdeasResponse
	18, // 32: ads.v1.AdsService.ApplyRecommendations:output_type -> ads.v1.ApplyRecommendationsResponse
	21, // 33: ads.v1.AdsService.ListApplyResults:output_type -> ads.v1.ListApplyResultsResponse
	22, // [22:34] is the sub-list for method output_type
	10, // [10:22] is the sub-list for method input_type
	10, // [10:10] is the sub-list for extension type_name
	10, // [10:10] is the sub-list for extension extendee
	0,  // [0:10] is the sub-list for field type_name
}

func init() { file_ads_v1_ads_service_proto_init() }
func file_ads_v1_ads_service_proto_init() {
	if File_ads_v1_ads_service_proto != nil {
		return
	}
	file_ads_v1_recommendation_proto_init()
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_ads_v1_ads_service_proto_rawDesc), len(file_ads_v1_ads_service_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   22,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_ads_v1_ads_service_proto_goTypes,
		DependencyIndexes: file_ads_v1_ads_service_proto_depIdxs,
		MessageInfos:      file_ads_v1_ads_service_proto_msgTypes,
	}.Build()
	File_ads_v1_ads_service_proto = out.File
	file_ads_v1_ads_service_proto_goTypes = nil
	file_ads_v1_ads_service_proto_depIdxs = nil
}

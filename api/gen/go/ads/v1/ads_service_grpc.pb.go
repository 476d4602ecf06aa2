// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: ads/v1/ads_service.proto

package adsv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	AdsService_RegisterAccount_FullMethodName       = "/ads.v1.AdsService/RegisterAccount"
	AdsService_GetAccount_FullMethodName            = "/ads.v1.AdsService/GetAccount"
	AdsService_ListAccounts_FullMethodName          = "/ads.v1.AdsService/ListAccounts"
	AdsService_CreateRecommendation_FullMethodName  = "/ads.v1.AdsService/CreateRecommendation"
	AdsService_GetRecommendation_FullMethodName     = "/ads.v1.AdsService/GetRecommendation"
	AdsService_ListRecommendations_FullMethodName   = "/ads.v1.AdsService/ListRecommendations"
	AdsService_ApproveRecommendation_FullMethodName = "/ads.v1.AdsService/ApproveRecommendation"
	AdsService_RejectRecommendation_FullMethodName  = "/ads.v1.AdsService/RejectRecommendation"
	AdsService_GenerateCopy_FullMethodName          = "/ads.v1.AdsService/GenerateCopy"
	AdsService_GenerateKeywordIdeas_FullMethodName  = "/ads.v1.AdsService/GenerateKeywordIdeas"
	AdsService_ApplyRecommendations_FullMethodName  = "/ads.v1.AdsService/ApplyRecommendations"
	AdsService_ListApplyResults_FullMethodName      = "/ads.v1.AdsService/ListApplyResults"
)

// AdsServiceClient is the client API for AdsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// AdsService owns recommendation review and campaign-change application.
type AdsServiceClient interface {
	RegisterAccount(ctx context.Context, in *RegisterAccountRequest, opts ...grpc.CallOption) (*Account, error)
	GetAccount(ctx context.Context, in *GetAccountRequest, opts ...grpc.CallOption) (*Account, error)
	ListAccounts(ctx context.Context, in *ListAccountsRequest, opts ...grpc.CallOption) (*ListAccountsResponse, error)
	CreateRecommendation(ctx context.Context, in *CreateRecommendationRequest, opts ...grpc.CallOption) (*Recommendation, error)
	GetRecommendation(ctx context.Context, in *GetRecommendationRequest, opts ...grpc.CallOption) (*Recommendation, error)
	ListRecommendations(ctx context.Context, in *ListRecommendationsRequest, opts ...grpc.CallOption) (*ListRecommendationsResponse, error)
	ApproveRecommendation(ctx context.Context, in *ApproveRecommendationRequest, opts ...grpc.CallOption) (*Recommendation, error)
	RejectRecommendation(ctx context.Context, in *RejectRecommendationRequest, opts ...grpc.CallOption) (*Recommendation, error)
	GenerateCopy(ctx context.Context, in *GenerateCopyRequest, opts ...grpc.CallOption) (*GenerateCopyResponse, error)
	GenerateKeywordIdeas(ctx context.Context, in *GenerateKeywordIdeasRequest, opts ...grpc.CallOption) (*GenerateKeywordIdeasResponse, error)
	ApplyRecommendations(ctx context.Context, in *ApplyRecommendationsRequest, opts ...grpc.CallOption) (*ApplyRecommendationsResponse, error)
	ListApplyResults(ctx context.Context, in *ListApplyResultsRequest, opts ...grpc.CallOption) (*ListApplyResultsResponse, error)
}

type adsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAdsServiceClient(cc grpc.ClientConnInterface) AdsServiceClient {
	return &adsServiceClient{cc}
}

func (c *adsServiceClient) RegisterAccount(ctx context.Context, in *RegisterAccountRequest, opts ...grpc.CallOption) (*Account, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Account)
	err := c.cc.Invoke(ctx, AdsService_RegisterAccount_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adsServiceClient) GetAccount(ctx context.Context, in *GetAccountRequest, opts ...grpc.CallOption) (*Account, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Account)
	err := c.cc.Invoke(ctx, AdsService_GetAccount_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adsServiceClient) ListAccounts(ctx context.Context, in *ListAccountsRequest, opts ...grpc.CallOption) (*ListAccountsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListAccountsResponse)
	err := c.cc.Invoke(ctx, AdsService_ListAccounts_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adsServiceClient) CreateRecommendation(ctx context.Context, in *CreateRecommendationRequest, opts ...grpc.CallOption) (*Recommendation, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Recommendation)
	err := c.cc.Invoke(ctx, AdsService_CreateRecommendation_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adsServiceClient) GetRecommendation(ctx context.Context, in *GetRecommendationRequest, opts ...grpc.CallOption) (*Recommendation, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Recommendation)
	err := c.cc.Invoke(ctx, AdsService_GetRecommendation_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adsServiceClient) ListRecommendations(ctx context.Context, in *ListRecommendationsRequest, opts ...grpc.CallOption) (*ListRecommendationsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListRecommendationsResponse)
	err := c.cc.Invoke(ctx, AdsService_ListRecommendations_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adsServiceClient) ApproveRecommendation(ctx context.Context, in *ApproveRecommendationRequest, opts ...grpc.CallOption) (*Recommendation, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Recommendation)
	err := c.cc.Invoke(ctx, AdsService_ApproveRecommendation_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adsServiceClient) RejectRecommendation(ctx context.Context, in *RejectRecommendationRequest, opts ...grpc.CallOption) (*Recommendation, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Recommendation)
	err := c.cc.Invoke(ctx, AdsService_RejectRecommendation_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adsServiceClient) GenerateCopy(ctx context.Context, in *GenerateCopyRequest, opts ...grpc.CallOption) (*GenerateCopyResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GenerateCopyResponse)
	err := c.cc.Invoke(ctx, AdsService_GenerateCopy_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adsServiceClient) GenerateKeywordIdeas(ctx context.Context, in *GenerateKeywordIdeasRequest, opts ...grpc.CallOption) (*GenerateKeywordIdeasResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GenerateKeywordIdeasResponse)
	err := c.cc.Invoke(ctx, AdsService_GenerateKeywordIdeas_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adsServiceClient) ApplyRecommendations(ctx context.Context, in *ApplyRecommendationsRequest, opts ...grpc.CallOption) (*ApplyRecommendationsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ApplyRecommendationsResponse)
	err := c.cc.Invoke(ctx, AdsService_ApplyRecommendations_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adsServiceClient) ListApplyResults(ctx context.Context, in *ListApplyResultsRequest, opts ...grpc.CallOption) (*ListApplyResultsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListApplyResultsResponse)
	err := c.cc.Invoke(ctx, AdsService_ListApplyResults_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AdsServiceServer is the server API for AdsService service.
// All implementations must embed UnimplementedAdsServiceServer
// for forward compatibility.
//
// AdsService owns recommendation review and campaign-change application.
type AdsServiceServer interface {
	RegisterAccount(context.Context, *RegisterAccountRequest) (*Account, error)
	GetAccount(context.Context, *GetAccountRequest) (*Account, error)
	ListAccounts(context.Context, *ListAccountsRequest) (*ListAccountsResponse, error)
	CreateRecommendation(context.Context, *CreateRecommendationRequest) (*Recommendation, error)
	GetRecommendation(context.Context, *GetRecommendationRequest) (*Recommendation, error)
	ListRecommendations(context.Context, *ListRecommendationsRequest) (*ListRecommendationsResponse, error)
	ApproveRecommendation(context.Context, *ApproveRecommendationRequest) (*Recommendation, error)
	RejectRecommendation(context.Context, *RejectRecommendationRequest) (*Recommendation, error)
	GenerateCopy(context.Context, *GenerateCopyRequest) (*GenerateCopyResponse, error)
	GenerateKeywordIdeas(context.Context, *GenerateKeywordIdeasRequest) (*GenerateKeywordIdeasResponse, error)
	ApplyRecommendations(context.Context, *ApplyRecommendationsRequest) (*ApplyRecommendationsResponse, error)
	ListApplyResults(context.Context, *ListApplyResultsRequest) (*ListApplyResultsResponse, error)
	mustEmbedUnimplementedAdsServiceServer()
}

// UnimplementedAdsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedAdsServiceServer struct{}

func (UnimplementedAdsServiceServer) RegisterAccount(context.Context, *RegisterAccountRequest) (*Account, error) {
	return nil, status.Error(codes.Unimplemented, "method RegisterAccount not implemented")
}
func (UnimplementedAdsServiceServer) GetAccount(context.Context, *GetAccountRequest) (*Account, error) {
	return nil, status.Error(codes.Unimplemented, "method GetAccount not implemented")
}
func (UnimplementedAdsServiceServer) ListAccounts(context.Context, *ListAccountsRequest) (*ListAccountsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListAccounts not implemented")
}
func (UnimplementedAdsServiceServer) CreateRecommendation(context.Context, *CreateRecommendationRequest) (*Recommendation, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateRecommendation not implemented")
}
func (UnimplementedAdsServiceServer) GetRecommendation(context.Context, *GetRecommendationRequest) (*Recommendation, error) {
	return nil, status.Error(codes.Unimplemented, "method GetRecommendation not implemented")
}
func (UnimplementedAdsServiceServer) ListRecommendations(context.Context, *ListRecommendationsRequest) (*ListRecommendationsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListRecommendations not implemented")
}
func (UnimplementedAdsServiceServer) ApproveRecommendation(context.Context, *ApproveRecommendationRequest) (*Recommendation, error) {
	return nil, status.Error(codes.Unimplemented, "method ApproveRecommendation not implemented")
}
func (UnimplementedAdsServiceServer) RejectRecommendation(context.Context, *RejectRecommendationRequest) (*Recommendation, error) {
	return nil, status.Error(codes.Unimplemented, "method RejectRecommendation not implemented")
}
func (UnimplementedAdsServiceServer) GenerateCopy(context.Context, *GenerateCopyRequest) (*GenerateCopyResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GenerateCopy not implemented")
}
func (UnimplementedAdsServiceServer) GenerateKeywordIdeas(context.Context, *GenerateKeywordIdeasRequest) (*GenerateKeywordIdeasResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GenerateKeywordIdeas not implemented")
}
func (UnimplementedAdsServiceServer) ApplyRecommendations(context.Context, *ApplyRecommendationsRequest) (*ApplyRecommendationsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ApplyRecommendations not implemented")
}
func (UnimplementedAdsServiceServer) ListApplyResults(context.Context, *ListApplyResultsRequest) (*ListApplyResultsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListApplyResults not implemented")
}
func (UnimplementedAdsServiceServer) mustEmbedUnimplementedAdsServiceServer() {}
func (UnimplementedAdsServiceServer) testEmbeddedByValue()                    {}

// UnsafeAdsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to AdsServiceServer will
// result in compilation errors.
type UnsafeAdsServiceServer interface {
	mustEmbedUnimplementedAdsServiceServer()
}

func RegisterAdsServiceServer(s grpc.ServiceRegistrar, srv AdsServiceServer) {
	// If the following call panics, it indicates UnimplementedAdsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&AdsService_ServiceDesc, srv)
}

func _AdsService_RegisterAccount_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RegisterAccountRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdsServiceServer).RegisterAccount(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdsService_RegisterAccount_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdsServiceServer).RegisterAccount(ctx, req.(*RegisterAccountRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdsService_GetAccount_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetAccountRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdsServiceServer).GetAccount(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdsService_GetAccount_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdsServiceServer).GetAccount(ctx, req.(*GetAccountRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdsService_ListAccounts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListAccountsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdsServiceServer).ListAccounts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdsService_ListAccounts_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdsServiceServer).ListAccounts(ctx, req.(*ListAccountsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdsService_CreateRecommendation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateRecommendationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdsServiceServer).CreateRecommendation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdsService_CreateRecommendation_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdsServiceServer).CreateRecommendation(ctx, req.(*CreateRecommendationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdsService_GetRecommendation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetRecommendationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdsServiceServer).GetRecommendation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdsService_GetRecommendation_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdsServiceServer).GetRecommendation(ctx, req.(*GetRecommendationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdsService_ListRecommendations_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListRecommendationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdsServiceServer).ListRecommendations(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdsService_ListRecommendations_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdsServiceServer).ListRecommendations(ctx, req.(*ListRecommendationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdsService_ApproveRecommendation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ApproveRecommendationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdsServiceServer).ApproveRecommendation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdsService_ApproveRecommendation_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdsServiceServer).ApproveRecommendation(ctx, req.(*ApproveRecommendationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdsService_RejectRecommendation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RejectRecommendationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdsServiceServer).RejectRecommendation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdsService_RejectRecommendation_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdsServiceServer).RejectRecommendation(ctx, req.(*RejectRecommendationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdsService_GenerateCopy_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GenerateCopyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdsServiceServer).GenerateCopy(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdsService_GenerateCopy_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdsServiceServer).GenerateCopy(ctx, req.(*GenerateCopyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdsService_GenerateKeywordIdeas_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GenerateKeywordIdeasRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdsServiceServer).GenerateKeywordIdeas(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdsService_GenerateKeywordIdeas_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdsServiceServer).GenerateKeywordIdeas(ctx, req.(*GenerateKeywordIdeasRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdsService_ApplyRecommendations_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ApplyRecommendationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdsServiceServer).ApplyRecommendations(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdsService_ApplyRecommendations_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdsServiceServer).ApplyRecommendations(ctx, req.(*ApplyRecommendationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdsService_ListApplyResults_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListApplyResultsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdsServiceServer).ListApplyResults(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdsService_ListApplyResults_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdsServiceServer).ListApplyResults(ctx, req.(*ListApplyResultsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// AdsService_ServiceDesc is the grpc.ServiceDesc for AdsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var AdsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "ads.v1.AdsService",
	HandlerType: (*AdsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RegisterAccount",
			Handler:    _AdsService_RegisterAccount_Handler,
		},
		{
			MethodName: "GetAccount",
			Handler:    _AdsService_GetAccount_Handler,
		},
		{
			MethodName: "ListAccounts",
			Handler:    _AdsService_ListAccounts_Handler,
		},
		{
			MethodName: "CreateRecommendation",
			Handler:    _AdsService_CreateRecommendation_Handler,
		},
		{
			MethodName: "GetRecommendation",
			Handler:    _AdsService_GetRecommendation_Handler,
		},
		{
			MethodName: "ListRecommendations",
			Handler:    _AdsService_ListRecommendations_Handler,
		},
		{
			MethodName: "ApproveRecommendation",
			Handler:    _AdsService_ApproveRecommendation_Handler,
		},
		{
			MethodName: "RejectRecommendation",
			Handler:    _AdsService_RejectRecommendation_Handler,
		},
		{
			MethodName: "GenerateCopy",
			Handler:    _AdsService_GenerateCopy_Handler,
		},
		{
			MethodName: "GenerateKeywordIdeas",
			Handler:    _AdsService_GenerateKeywordIdeas_Handler,
		},
		{
			MethodName: "ApplyRecommendations",
			Handler:    _AdsService_ApplyRecommendations_Handler,
		},
		{
			MethodName: "ListApplyResults",
			Handler:    _AdsService_ListApplyResults_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "ads/v1/ads_service.proto",
}

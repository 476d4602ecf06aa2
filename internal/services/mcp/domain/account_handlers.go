package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	adsv1 "github.com/adpilot/adpilot/api/gen/go/ads/v1"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// AccountRegisterTool describes the account registration tool.
func AccountRegisterTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "account_register",
		Description: "Registers an ad account and binds it to Google Ads and Meta identities. The refresh token is sealed at rest and never returned.",
	}
}

// AccountRegisterHandler executes an account registration request.
func AccountRegisterHandler(client adsv1.AdsServiceClient) mcp.ToolHandlerFor[AccountRegisterInput, AccountResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AccountRegisterInput) (*mcp.CallToolResult, AccountResult, error) {
		callCtx, cancel := context.WithTimeout(ctx, grpcCallTimeout)
		defer cancel()

		account, err := client.RegisterAccount(callCtx, &adsv1.RegisterAccountRequest{
			Name:                  input.Name,
			GoogleCustomerId:      input.GoogleCustomerID,
			GoogleLoginCustomerId: input.GoogleLoginCustomerID,
			GoogleRefreshToken:    input.GoogleRefreshToken,
			MetaAdAccountId:       input.MetaAdAccountID,
		})
		if err != nil {
			return nil, AccountResult{}, fmt.Errorf("account register failed: %w", err)
		}
		if account == nil {
			return nil, AccountResult{}, fmt.Errorf("account register response is missing")
		}
		return nil, accountResultFromProto(account), nil
	}
}

// AccountListResource describes the readable account listing resource.
func AccountListResource() *mcp.Resource {
	return &mcp.Resource{
		URI:         "accounts://list",
		Name:        "account-list",
		Description: "Registered ad accounts with their vendor bindings.",
		MIMEType:    "application/json",
	}
}

// AccountListResourceHandler returns a readable account listing resource.
// The resource returns one consolidated page; callers holding more than a
// page of accounts should use the gRPC API directly.
func AccountListResourceHandler(client adsv1.AdsServiceClient) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if client == nil {
			return nil, fmt.Errorf("account list client is not configured")
		}

		uri := AccountListResource().URI
		if req != nil && req.Params != nil && strings.TrimSpace(req.Params.URI) != "" {
			uri = req.Params.URI
		}

		callCtx, cancel := context.WithTimeout(ctx, grpcCallTimeout)
		defer cancel()

		response, err := client.ListAccounts(callCtx, &adsv1.ListAccountsRequest{PageSize: 50})
		if err != nil {
			return nil, fmt.Errorf("account list failed: %w", err)
		}
		if response == nil {
			return nil, fmt.Errorf("account list response is missing")
		}

		payload := AccountListPayload{}
		for _, account := range response.GetAccounts() {
			payload.Accounts = append(payload.Accounts, accountResultFromProto(account))
		}

		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal account list: %w", err)
		}

		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{
					URI:      uri,
					MIMEType: "application/json",
					Text:     string(data),
				},
			},
		}, nil
	}
}

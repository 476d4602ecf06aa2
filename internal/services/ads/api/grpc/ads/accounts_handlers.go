package ads

import (
	"context"
	"errors"
	"strings"

	adsv1 "github.com/adpilot/adpilot/api/gen/go/ads/v1"
	"github.com/adpilot/adpilot/internal/services/ads/storage"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// RegisterAccount binds a managed account to its vendor identities.
func (s *Service) RegisterAccount(ctx context.Context, in *adsv1.RegisterAccountRequest) (*adsv1.Account, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "register account request is required")
	}
	if s.accounts == nil {
		return nil, status.Error(codes.Internal, "account store is not configured")
	}

	name := strings.TrimSpace(in.GetName())
	if name == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}
	googleCustomerID := strings.TrimSpace(in.GetGoogleCustomerId())
	metaAdAccountID := strings.TrimSpace(in.GetMetaAdAccountId())
	if googleCustomerID == "" && metaAdAccountID == "" {
		return nil, status.Error(codes.InvalidArgument, "at least one vendor account binding is required")
	}

	// Seal before persistence so storage only receives ciphertext. The API
	// never returns the token after this boundary.
	var credentialCiphertext string
	if refreshToken := strings.TrimSpace(in.GetGoogleRefreshToken()); refreshToken != "" {
		if s.sealer == nil {
			return nil, status.Error(codes.Internal, "secret sealer is not configured")
		}
		sealed, err := s.sealer.Seal(refreshToken)
		if err != nil {
			return nil, status.Errorf(codes.Internal, "seal refresh token: %v", err)
		}
		credentialCiphertext = sealed
	}

	accountID, err := s.idGenerator()
	if err != nil {
		return nil, status.Errorf(codes.Internal, "generate account id: %v", err)
	}
	now := s.clock().UTC()

	record := storage.AccountRecord{
		ID:                    accountID,
		Name:                  name,
		GoogleCustomerID:      googleCustomerID,
		GoogleLoginCustomerID: strings.TrimSpace(in.GetGoogleLoginCustomerId()),
		MetaAdAccountID:       metaAdAccountID,
		CredentialCiphertext:  credentialCiphertext,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if err := s.accounts.PutAccount(ctx, record); err != nil {
		return nil, status.Errorf(codes.Internal, "put account: %v", err)
	}

	return accountToProto(record), nil
}

// GetAccount returns one managed account.
func (s *Service) GetAccount(ctx context.Context, in *adsv1.GetAccountRequest) (*adsv1.Account, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get account request is required")
	}
	if s.accounts == nil {
		return nil, status.Error(codes.Internal, "account store is not configured")
	}

	accountID := strings.TrimSpace(in.GetAccountId())
	if accountID == "" {
		return nil, status.Error(codes.InvalidArgument, "account_id is required")
	}

	record, err := s.accounts.GetAccount(ctx, accountID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, status.Error(codes.NotFound, "account not found")
	}
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get account: %v", err)
	}

	return accountToProto(record), nil
}

// ListAccounts returns a page of managed accounts.
func (s *Service) ListAccounts(ctx context.Context, in *adsv1.ListAccountsRequest) (*adsv1.ListAccountsResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "list accounts request is required")
	}
	if s.accounts == nil {
		return nil, status.Error(codes.Internal, "account store is not configured")
	}

	page, err := s.accounts.ListAccounts(ctx, clampPageSize(in.GetPageSize()), in.GetPageToken())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list accounts: %v", err)
	}

	resp := &adsv1.ListAccountsResponse{
		NextPageToken: page.NextPageToken,
		Accounts:      make([]*adsv1.Account, 0, len(page.Accounts)),
	}
	for _, record := range page.Accounts {
		resp.Accounts = append(resp.Accounts, accountToProto(record))
	}
	return resp, nil
}

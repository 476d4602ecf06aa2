package server

import (
	"context"
	"errors"
	"fmt"
	"strings"

	adsservice "github.com/adpilot/adpilot/internal/services/ads/api/grpc/ads"
	"github.com/adpilot/adpilot/internal/services/ads/googleads"
	"github.com/adpilot/adpilot/internal/services/ads/meta"
	"github.com/adpilot/adpilot/internal/services/ads/secret"
	"github.com/adpilot/adpilot/internal/services/ads/storage"
)

// envVendorClients builds vendor API clients from deployment-level OAuth
// application credentials plus the per-account sealed refresh token.
type envVendorClients struct {
	env    serverEnv
	sealer *secret.AESGCMSealer
}

func (v *envVendorClients) GoogleFor(_ context.Context, account storage.AccountRecord) (adsservice.GoogleAdsAPI, error) {
	developerToken := strings.TrimSpace(v.env.GoogleDeveloperToken)
	if developerToken == "" {
		return nil, errors.New("google ads developer token is not configured")
	}

	source, err := v.googleTokenSource(account)
	if err != nil {
		return nil, err
	}

	return googleads.NewClient(googleads.Config{
		BaseURL:         strings.TrimSpace(v.env.GoogleAPIBaseURL),
		DeveloperToken:  developerToken,
		LoginCustomerID: account.GoogleLoginCustomerID,
		TokenSource:     source,
	})
}

// googleTokenSource picks the credential mode: a deployment-level service
// account when one is configured, otherwise the OAuth client plus the
// account's sealed refresh token.
func (v *envVendorClients) googleTokenSource(account storage.AccountRecord) (googleads.TokenSource, error) {
	if email := strings.TrimSpace(v.env.GoogleServiceAccountEmail); email != "" {
		key := strings.TrimSpace(v.env.GoogleServiceAccountKey)
		if key == "" {
			return nil, errors.New("google service account key is not configured")
		}
		return &googleads.ServiceAccountTokenSource{
			ClientEmail:   email,
			PrivateKeyPEM: key,
			Subject:       strings.TrimSpace(v.env.GoogleServiceAccountSubject),
		}, nil
	}

	clientID := strings.TrimSpace(v.env.GoogleOAuthClientID)
	clientSecret := strings.TrimSpace(v.env.GoogleOAuthClientSecret)
	if clientID == "" || clientSecret == "" {
		return nil, errors.New("google oauth client credentials are not configured")
	}
	if strings.TrimSpace(account.CredentialCiphertext) == "" {
		return nil, fmt.Errorf("account %s has no stored refresh token", account.ID)
	}

	// The refresh token is decrypted only at call-time and lives solely in
	// the token source; it must never be logged.
	refreshToken, err := v.sealer.Open(account.CredentialCiphertext)
	if err != nil {
		return nil, fmt.Errorf("open account credential: %w", err)
	}
	return &googleads.RefreshTokenSource{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RefreshToken: refreshToken,
	}, nil
}

func (v *envVendorClients) MetaFor(_ context.Context, _ storage.AccountRecord) (meta.GraphAPI, error) {
	accessToken := strings.TrimSpace(v.env.MetaAccessToken)
	if accessToken == "" {
		return nil, errors.New("meta access token is not configured")
	}
	return meta.NewClient(meta.Config{
		BaseURL:     strings.TrimSpace(v.env.MetaAPIBaseURL),
		AccessToken: accessToken,
	})
}

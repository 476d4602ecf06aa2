package googleads

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	defaultTokenURL = "https://oauth2.googleapis.com/token"
	defaultScope    = "https://www.googleapis.com/auth/adwords"

	// tokenExpirySkew refreshes tokens slightly before the server-side
	// expiry so in-flight requests never carry a stale token.
	tokenExpirySkew = time.Minute

	jwtBearerGrantType = "urn:ietf:params:oauth:grant-type:jwt-bearer"
)

// StaticTokenSource returns a fixed token. Intended for tests.
type StaticTokenSource string

// Token implements TokenSource.
func (s StaticTokenSource) Token(context.Context) (string, error) {
	token := strings.TrimSpace(string(s))
	if token == "" {
		return "", fmt.Errorf("static token is empty")
	}
	return token, nil
}

// RefreshTokenSource exchanges a long-lived OAuth refresh token for access
// tokens, caching each token until shortly before expiry.
type RefreshTokenSource struct {
	TokenURL     string
	ClientID     string
	ClientSecret string
	RefreshToken string
	HTTPClient   *http.Client

	mu      sync.Mutex
	token   string
	expires time.Time
	now     func() time.Time
}

// Token implements TokenSource.
func (s *RefreshTokenSource) Token(ctx context.Context) (string, error) {
	if strings.TrimSpace(s.RefreshToken) == "" {
		return "", fmt.Errorf("refresh token is required")
	}
	if strings.TrimSpace(s.ClientID) == "" || strings.TrimSpace(s.ClientSecret) == "" {
		return "", fmt.Errorf("oauth client credentials are required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	nowFn := s.now
	if nowFn == nil {
		nowFn = time.Now
	}
	if s.token != "" && nowFn().Before(s.expires.Add(-tokenExpirySkew)) {
		return s.token, nil
	}

	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", strings.TrimSpace(s.RefreshToken))
	form.Set("client_id", strings.TrimSpace(s.ClientID))
	form.Set("client_secret", strings.TrimSpace(s.ClientSecret))

	token, expiresIn, err := requestToken(ctx, s.httpClient(), s.tokenURL(), form)
	if err != nil {
		return "", err
	}
	s.token = token
	s.expires = nowFn().Add(expiresIn)
	return s.token, nil
}

func (s *RefreshTokenSource) tokenURL() string {
	if strings.TrimSpace(s.TokenURL) == "" {
		return defaultTokenURL
	}
	return strings.TrimSpace(s.TokenURL)
}

func (s *RefreshTokenSource) httpClient() *http.Client {
	if s.HTTPClient == nil {
		return http.DefaultClient
	}
	return s.HTTPClient
}

// ServiceAccountTokenSource authenticates with a Google service account via
// the OAuth2 JWT-bearer grant: it signs an RS256 assertion with the account
// private key and exchanges it for an access token.
type ServiceAccountTokenSource struct {
	TokenURL      string
	ClientEmail   string
	PrivateKeyPEM string
	// Subject optionally impersonates a user for domain-wide delegation.
	Subject    string
	Scopes     []string
	HTTPClient *http.Client

	mu      sync.Mutex
	token   string
	expires time.Time
	now     func() time.Time
}

// Token implements TokenSource.
func (s *ServiceAccountTokenSource) Token(ctx context.Context) (string, error) {
	if strings.TrimSpace(s.ClientEmail) == "" {
		return "", fmt.Errorf("service account email is required")
	}
	if strings.TrimSpace(s.PrivateKeyPEM) == "" {
		return "", fmt.Errorf("service account private key is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	nowFn := s.now
	if nowFn == nil {
		nowFn = time.Now
	}
	if s.token != "" && nowFn().Before(s.expires.Add(-tokenExpirySkew)) {
		return s.token, nil
	}

	assertion, err := s.signAssertion(nowFn().UTC())
	if err != nil {
		return "", err
	}

	form := url.Values{}
	form.Set("grant_type", jwtBearerGrantType)
	form.Set("assertion", assertion)

	token, expiresIn, err := requestToken(ctx, s.httpClient(), s.tokenURL(), form)
	if err != nil {
		return "", err
	}
	s.token = token
	s.expires = nowFn().Add(expiresIn)
	return s.token, nil
}

func (s *ServiceAccountTokenSource) signAssertion(now time.Time) (string, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(s.PrivateKeyPEM))
	if err != nil {
		return "", fmt.Errorf("parse service account key: %w", err)
	}

	scopes := s.Scopes
	if len(scopes) == 0 {
		scopes = []string{defaultScope}
	}

	claims := jwt.MapClaims{
		"iss":   strings.TrimSpace(s.ClientEmail),
		"scope": strings.Join(scopes, " "),
		"aud":   s.tokenURL(),
		"iat":   now.Unix(),
		"exp":   now.Add(time.Hour).Unix(),
	}
	if subject := strings.TrimSpace(s.Subject); subject != "" {
		claims["sub"] = subject
	}

	assertion, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("sign assertion: %w", err)
	}
	return assertion, nil
}

func (s *ServiceAccountTokenSource) tokenURL() string {
	if strings.TrimSpace(s.TokenURL) == "" {
		return defaultTokenURL
	}
	return strings.TrimSpace(s.TokenURL)
}

func (s *ServiceAccountTokenSource) httpClient() *http.Client {
	if s.HTTPClient == nil {
		return http.DefaultClient
	}
	return s.HTTPClient
}

func requestToken(ctx context.Context, client *http.Client, tokenURL string, form url.Values) (string, time.Duration, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", 0, fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := client.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("token request failed: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, readErr := io.ReadAll(io.LimitReader(res.Body, 4096))
		if readErr != nil {
			return "", 0, fmt.Errorf("read token error body: %w", readErr)
		}
		return "", 0, fmt.Errorf("token request status %d: %s", res.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return "", 0, fmt.Errorf("decode token response: %w", err)
	}
	if strings.TrimSpace(payload.AccessToken) == "" {
		return "", 0, fmt.Errorf("token response missing access_token")
	}
	expiresIn := time.Duration(payload.ExpiresIn) * time.Second
	if expiresIn <= 0 {
		expiresIn = time.Hour
	}
	return payload.AccessToken, expiresIn, nil
}

package googleads

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
)

type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func response(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     make(http.Header),
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func testClient(t *testing.T, rt roundTripFunc) *Client {
	t.Helper()
	client, err := NewClient(Config{
		DeveloperToken:  "dev-token",
		LoginCustomerID: "999",
		TokenSource:     StaticTokenSource("access-token"),
		HTTPClient:      &http.Client{Transport: rt},
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func TestNewClientValidation(t *testing.T) {
	if _, err := NewClient(Config{TokenSource: StaticTokenSource("t")}); err == nil {
		t.Fatal("expected error without developer token")
	}
	if _, err := NewClient(Config{DeveloperToken: "dev"}); err == nil {
		t.Fatal("expected error without token source")
	}
}

func TestClientSetsAuthHeaders(t *testing.T) {
	var captured *http.Request
	client := testClient(t, func(req *http.Request) (*http.Response, error) {
		captured = req
		return response(http.StatusOK, `{"results":[]}`), nil
	})

	if _, err := client.Search(context.Background(), "123", "SELECT campaign.id FROM campaign"); err != nil {
		t.Fatalf("search: %v", err)
	}

	if captured == nil {
		t.Fatal("expected request to execute")
	}
	if got := captured.Header.Get("Authorization"); got != "Bearer access-token" {
		t.Fatalf("authorization header = %q", got)
	}
	if got := captured.Header.Get("developer-token"); got != "dev-token" {
		t.Fatalf("developer-token header = %q", got)
	}
	if got := captured.Header.Get("login-customer-id"); got != "999" {
		t.Fatalf("login-customer-id header = %q", got)
	}
	if !strings.HasSuffix(captured.URL.Path, "/customers/123/googleAds:search") {
		t.Fatalf("unexpected path %q", captured.URL.Path)
	}
}

func TestClientSurfacesAPIError(t *testing.T) {
	client := testClient(t, func(req *http.Request) (*http.Response, error) {
		return response(http.StatusForbidden, `{"error":{"message":"developer token not approved"}}`), nil
	})

	_, err := client.Search(context.Background(), "123", "SELECT campaign.id FROM campaign")
	if err == nil {
		t.Fatal("expected error for 403 response")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", apiErr.StatusCode, http.StatusForbidden)
	}
	if !strings.Contains(apiErr.Body, "developer token not approved") {
		t.Fatalf("body = %q", apiErr.Body)
	}
}

func TestSearchFollowsPageTokens(t *testing.T) {
	calls := 0
	client := testClient(t, func(req *http.Request) (*http.Response, error) {
		calls++
		if calls == 1 {
			return response(http.StatusOK, `{
				"results": [{"campaign": {"resourceName": "customers/123/campaigns/1"}}],
				"nextPageToken": "page-2"
			}`), nil
		}
		body, _ := io.ReadAll(req.Body)
		if !strings.Contains(string(body), `"pageToken":"page-2"`) {
			t.Fatalf("expected page token in request body, got %s", body)
		}
		return response(http.StatusOK, `{
			"results": [{"campaign": {"resourceName": "customers/123/campaigns/2"}}]
		}`), nil
	})

	rows, err := client.Search(context.Background(), "123", "SELECT campaign.id FROM campaign")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if calls != 2 {
		t.Fatalf("calls = %d, want 2", calls)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[1].Campaign == nil || rows[1].Campaign.ResourceName != "customers/123/campaigns/2" {
		t.Fatalf("unexpected second row: %+v", rows[1])
	}
}

func TestResponsiveSearchAdsDecodesAssets(t *testing.T) {
	client := testClient(t, func(req *http.Request) (*http.Response, error) {
		body, _ := io.ReadAll(req.Body)
		if !strings.Contains(string(body), "RESPONSIVE_SEARCH_AD") {
			t.Fatalf("expected RSA filter in query, got %s", body)
		}
		return response(http.StatusOK, `{
			"results": [{
				"adGroupAd": {
					"resourceName": "customers/123/adGroupAds/10~20",
					"ad": {
						"resourceName": "customers/123/ads/20",
						"responsiveSearchAd": {
							"headlines": [{"text": "Fast Plumbing"}, {"text": "Open 24/7", "pinnedField": "HEADLINE_1"}],
							"descriptions": [{"text": "Call now for same-day service."}]
						}
					}
				}
			}]
		}`), nil
	})

	ads, err := client.ResponsiveSearchAds(context.Background(), "123", "10")
	if err != nil {
		t.Fatalf("responsive search ads: %v", err)
	}
	if len(ads) != 1 {
		t.Fatalf("ads = %d, want 1", len(ads))
	}
	if ads[0].ResourceName != "customers/123/ads/20" {
		t.Fatalf("resource name = %q", ads[0].ResourceName)
	}
	if got := len(ads[0].ResponsiveSearchAd.Headlines); got != 2 {
		t.Fatalf("headlines = %d, want 2", got)
	}
	if ads[0].ResponsiveSearchAd.Headlines[1].PinnedField != "HEADLINE_1" {
		t.Fatalf("pinned field = %q", ads[0].ResponsiveSearchAd.Headlines[1].PinnedField)
	}
}

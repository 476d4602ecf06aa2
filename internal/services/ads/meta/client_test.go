package meta

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
)

type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func testClient(t *testing.T, rt roundTripFunc) *Client {
	t.Helper()
	client, err := NewClient(Config{
		AccessToken: "token-123",
		HTTPClient:  &http.Client{Transport: rt},
	})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return client
}

func TestNewClientRequiresAccessToken(t *testing.T) {
	if _, err := NewClient(Config{}); err == nil {
		t.Fatal("NewClient() error = nil, want error")
	}
}

func TestClientSendsBearerToken(t *testing.T) {
	var gotAuth string
	client := testClient(t, func(req *http.Request) (*http.Response, error) {
		gotAuth = req.Header.Get("Authorization")
		return jsonResponse(200, `{"id":"1","name":"Set","status":"ACTIVE","targeting":{}}`), nil
	})

	if _, err := client.AdSet(context.Background(), "1"); err != nil {
		t.Fatalf("AdSet() error = %v", err)
	}
	if gotAuth != "Bearer token-123" {
		t.Fatalf("Authorization = %q, want bearer token", gotAuth)
	}
}

func TestClientDecodesGraphError(t *testing.T) {
	client := testClient(t, func(req *http.Request) (*http.Response, error) {
		return jsonResponse(400, `{"error":{"message":"Invalid parameter","type":"OAuthException","code":100,"error_subcode":33,"fbtrace_id":"AbC"}}`), nil
	})

	_, err := client.AdSet(context.Background(), "1")
	if err == nil {
		t.Fatal("AdSet() error = nil, want graph error")
	}
	var graphErr *GraphError
	if !errors.As(err, &graphErr) {
		t.Fatalf("error = %v, want *GraphError", err)
	}
	if graphErr.Code != 100 || graphErr.ErrorSubcode != 33 {
		t.Fatalf("GraphError = %+v, want code 100 subcode 33", graphErr)
	}
	if graphErr.Type != "OAuthException" {
		t.Fatalf("GraphError.Type = %q", graphErr.Type)
	}
	if graphErr.StatusCode != 400 {
		t.Fatalf("GraphError.StatusCode = %d, want 400", graphErr.StatusCode)
	}
}

func TestUpdateTargetingEncodesSpec(t *testing.T) {
	var gotForm url.Values
	client := testClient(t, func(req *http.Request) (*http.Response, error) {
		body, _ := io.ReadAll(req.Body)
		gotForm, _ = url.ParseQuery(string(body))
		return jsonResponse(200, `{"success":true}`), nil
	})

	targeting := Targeting{
		AgeMin:  25,
		AgeMax:  34,
		Genders: []int{2},
	}
	if err := client.UpdateTargeting(context.Background(), "120", targeting); err != nil {
		t.Fatalf("UpdateTargeting() error = %v", err)
	}

	spec := gotForm.Get("targeting")
	if !strings.Contains(spec, `"age_min":25`) || !strings.Contains(spec, `"genders":[2]`) {
		t.Fatalf("targeting form value = %q", spec)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	client := testClient(t, func(req *http.Request) (*http.Response, error) {
		t.Fatal("request sent for invalid status")
		return nil, nil
	})

	if err := client.UpdateStatus(context.Background(), "120", "DELETED"); err == nil {
		t.Fatal("UpdateStatus() error = nil, want error")
	}
}

func TestCreateCreativeReturnsID(t *testing.T) {
	var gotPath string
	client := testClient(t, func(req *http.Request) (*http.Response, error) {
		gotPath = req.URL.Path
		return jsonResponse(200, `{"id":"238"}`), nil
	})

	id, err := client.CreateCreative(context.Background(), "456", Creative{
		Title:   "Free Shipping",
		Body:    "Order today, delivered tomorrow.",
		LinkURL: "https://example.com",
	})
	if err != nil {
		t.Fatalf("CreateCreative() error = %v", err)
	}
	if id != "238" {
		t.Fatalf("CreateCreative() = %q, want 238", id)
	}
	if !strings.HasSuffix(gotPath, "/act_456/adcreatives") {
		t.Fatalf("path = %q, want act_456/adcreatives", gotPath)
	}
}

func TestSwapCreativeFailureReported(t *testing.T) {
	client := testClient(t, func(req *http.Request) (*http.Response, error) {
		return jsonResponse(200, `{"success":false}`), nil
	})

	if err := client.SwapCreative(context.Background(), "9", "238"); err == nil {
		t.Fatal("SwapCreative() error = nil, want failure")
	}
}

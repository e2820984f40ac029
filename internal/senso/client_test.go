// ABOUTME: Tests for the shared HTTP client behavior.
// ABOUTME: Validates headers, defaults, and API error mapping.

package senso

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{APIKey: "tgr_test", BaseURL: srv.URL})
}

func TestClientDefaults(t *testing.T) {
	c := NewClient(Config{APIKey: "k"})
	if c.BaseURL() != DefaultBaseURL {
		t.Errorf("expected default base URL %s, got %s", DefaultBaseURL, c.BaseURL())
	}

	c = NewClient(Config{APIKey: "k", BaseURL: "https://example.com/api/"})
	if c.BaseURL() != "https://example.com/api" {
		t.Errorf("expected trailing slash trimmed, got %s", c.BaseURL())
	}
}

func TestClientSendsHeaders(t *testing.T) {
	var gotKey, gotAccept, gotContentType string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-API-Key")
		gotAccept = r.Header.Get("Accept")
		gotContentType = r.Header.Get("Content-Type")
		_, _ = w.Write([]byte(`{"id":"abc","title":"t"}`))
	}))

	_, err := c.AddRawContent(context.Background(), AddContentRequest{Title: "t", Text: "x"})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if gotKey != "tgr_test" {
		t.Errorf("expected API key header, got %q", gotKey)
	}
	if gotAccept != "application/json" {
		t.Errorf("expected Accept application/json, got %q", gotAccept)
	}
	if gotContentType != "application/json" {
		t.Errorf("expected Content-Type application/json, got %q", gotContentType)
	}
}

func TestAPIErrorCarriesStatus(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal failure", http.StatusInternalServerError)
	}))

	_, err := c.Search(context.Background(), "anything", 0)
	if err == nil {
		t.Fatal("expected error for 500 response")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", apiErr.StatusCode)
	}
	if !strings.Contains(apiErr.Error(), "500") {
		t.Errorf("error message should contain status code, got %q", apiErr.Error())
	}
}

func TestAPIErrorParsesErrorEnvelope(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"title already exists"}`))
	}))

	_, err := c.AddRawContent(context.Background(), AddContentRequest{Title: "t", Text: "x"})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Message != "title already exists" {
		t.Errorf("expected remote error message, got %q", apiErr.Message)
	}
}

func TestClientContextCancellation(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Search(ctx, "query", 0)
	if err == nil {
		t.Fatal("expected error for canceled context")
	}
}

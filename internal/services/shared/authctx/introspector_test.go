package authctx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPIntrospectorSendsTokenAndSecret(t *testing.T) {
	t.Parallel()

	var gotAuth, gotSecret string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotSecret = r.Header.Get("X-Resource-Secret")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"active":true,"user_id":"op-1"}`))
	}))
	defer server.Close()

	introspector := NewHTTPIntrospector(server.URL, "secret-1", server.Client())
	result, err := introspector.Introspect(context.Background(), "token-1")
	if err != nil {
		t.Fatalf("introspect: %v", err)
	}

	if gotAuth != "Bearer token-1" {
		t.Fatalf("authorization = %q", gotAuth)
	}
	if gotSecret != "secret-1" {
		t.Fatalf("resource secret = %q", gotSecret)
	}
	if !result.Active || result.UserID != "op-1" {
		t.Fatalf("result = %+v", result)
	}
}

func TestHTTPIntrospectorRejectsNon200(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer server.Close()

	introspector := NewHTTPIntrospector(server.URL, "", server.Client())
	if _, err := introspector.Introspect(context.Background(), "token-1"); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestHTTPIntrospectorRejectsBadJSON(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not-json"))
	}))
	defer server.Close()

	introspector := NewHTTPIntrospector(server.URL, "", server.Client())
	if _, err := introspector.Introspect(context.Background(), "token-1"); err == nil {
		t.Fatal("expected error for malformed response")
	}
}

package admin

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tidemarkhq/tidemark/internal/services/shared/authctx"
)

type fakeIntrospector struct {
	result    authctx.IntrospectionResult
	err       error
	lastToken string
	calls     int
}

func (f *fakeIntrospector) Introspect(ctx context.Context, token string) (authctx.IntrospectionResult, error) {
	f.calls++
	f.lastToken = token
	return f.result, f.err
}

func authTestConfig() AuthConfig {
	return AuthConfig{
		IntrospectURL: "http://auth.internal/introspect",
		LoginURL:      "http://auth.internal/login",
		SessionSecret: "test-session-secret",
	}
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("operator:" + operatorID(r.Context())))
	})
}

func TestRequireAuthRedirectsWithoutToken(t *testing.T) {
	introspector := &fakeIntrospector{}
	handler := requireAuth(okHandler(), introspector, authTestConfig(), newMemStore())

	req := httptest.NewRequest(http.MethodGet, "http://example.com/lists", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusFound {
		t.Fatalf("expected status %d, got %d", http.StatusFound, recorder.Code)
	}
	if location := recorder.Header().Get("Location"); location != "http://auth.internal/login" {
		t.Fatalf("expected redirect to login, got %q", location)
	}
	if introspector.calls != 0 {
		t.Fatalf("expected no introspection without a token")
	}
}

func TestRequireAuthExemptsStaticAssets(t *testing.T) {
	introspector := &fakeIntrospector{}
	handler := requireAuth(okHandler(), introspector, authTestConfig(), newMemStore())

	req := httptest.NewRequest(http.MethodGet, "http://example.com/static/admin.css", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, recorder.Code)
	}
	if introspector.calls != 0 {
		t.Fatalf("expected no introspection for static assets")
	}
}

func TestRequireAuthIntrospectsAndMintsSession(t *testing.T) {
	introspector := &fakeIntrospector{result: authctx.IntrospectionResult{Active: true, UserID: "op-7"}}
	store := newMemStore()
	handler := requireAuth(okHandler(), introspector, authTestConfig(), store)

	req := httptest.NewRequest(http.MethodGet, "http://example.com/lists", nil)
	req.AddCookie(&http.Cookie{Name: tokenCookieName, Value: "access-token"})
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, recorder.Code)
	}
	if introspector.lastToken != "access-token" {
		t.Fatalf("expected introspection of the token cookie, got %q", introspector.lastToken)
	}
	assertContains(t, recorder.Body.String(), "operator:op-7")

	var sessionCookie *http.Cookie
	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name == sessionCookieName {
			sessionCookie = cookie
			break
		}
	}
	if sessionCookie == nil || sessionCookie.Value == "" {
		t.Fatalf("expected session cookie to be minted")
	}
	if !sessionCookie.HttpOnly {
		t.Fatalf("expected session cookie to be HttpOnly")
	}
	if len(store.sessions) != 1 {
		t.Fatalf("expected operator session to be persisted, got %d", len(store.sessions))
	}

	// A second request with the minted session skips introspection.
	req = httptest.NewRequest(http.MethodGet, "http://example.com/lists", nil)
	req.AddCookie(sessionCookie)
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, recorder.Code)
	}
	assertContains(t, recorder.Body.String(), "operator:op-7")
	if introspector.calls != 1 {
		t.Fatalf("expected session fast path to skip introspection, got %d calls", introspector.calls)
	}
}

func TestRequireAuthRejectsInactiveToken(t *testing.T) {
	introspector := &fakeIntrospector{result: authctx.IntrospectionResult{Active: false}}
	handler := requireAuth(okHandler(), introspector, authTestConfig(), newMemStore())

	req := httptest.NewRequest(http.MethodGet, "http://example.com/lists", nil)
	req.AddCookie(&http.Cookie{Name: tokenCookieName, Value: "stale-token"})
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusFound {
		t.Fatalf("expected status %d, got %d", http.StatusFound, recorder.Code)
	}
}

func TestRequireAuthRedirectsOnIntrospectionError(t *testing.T) {
	introspector := &fakeIntrospector{err: errors.New("auth unreachable")}
	handler := requireAuth(okHandler(), introspector, authTestConfig(), newMemStore())

	req := httptest.NewRequest(http.MethodGet, "http://example.com/lists", nil)
	req.AddCookie(&http.Cookie{Name: tokenCookieName, Value: "access-token"})
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusFound {
		t.Fatalf("expected status %d, got %d", http.StatusFound, recorder.Code)
	}
}

func TestRequireAuthIgnoresForgedSessionCookie(t *testing.T) {
	introspector := &fakeIntrospector{result: authctx.IntrospectionResult{Active: true, UserID: "op-7"}}
	handler := requireAuth(okHandler(), introspector, authTestConfig(), newMemStore())

	req := httptest.NewRequest(http.MethodGet, "http://example.com/lists", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "not-a-jwt"})
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	// Falls back to the access token path, which is also absent here.
	if recorder.Code != http.StatusFound {
		t.Fatalf("expected status %d, got %d", http.StatusFound, recorder.Code)
	}
}

package admin

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResolveTenantPrecedence(t *testing.T) {
	handler := &Handler{defaultTenant: "acme"}

	t.Run("query param wins and persists", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://example.com/lists?tenant=globex", nil)
		req.AddCookie(&http.Cookie{Name: tenantCookieName, Value: "initech"})
		recorder := httptest.NewRecorder()

		if tenant := handler.resolveTenant(recorder, req); tenant != "globex" {
			t.Fatalf("expected tenant globex, got %q", tenant)
		}

		var tenantCookie *http.Cookie
		for _, cookie := range recorder.Result().Cookies() {
			if cookie.Name == tenantCookieName {
				tenantCookie = cookie
				break
			}
		}
		if tenantCookie == nil || tenantCookie.Value != "globex" {
			t.Fatalf("expected tenant cookie to be written, got %v", tenantCookie)
		}
		if !tenantCookie.HttpOnly {
			t.Fatalf("expected tenant cookie to be HttpOnly")
		}
	})

	t.Run("cookie used without query param", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://example.com/lists", nil)
		req.AddCookie(&http.Cookie{Name: tenantCookieName, Value: "initech"})
		recorder := httptest.NewRecorder()

		if tenant := handler.resolveTenant(recorder, req); tenant != "initech" {
			t.Fatalf("expected tenant initech, got %q", tenant)
		}
		if cookies := recorder.Result().Cookies(); len(cookies) != 0 {
			t.Fatalf("expected no cookie write, got %v", cookies)
		}
	})

	t.Run("default without query or cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://example.com/lists", nil)
		recorder := httptest.NewRecorder()

		if tenant := handler.resolveTenant(recorder, req); tenant != "acme" {
			t.Fatalf("expected default tenant acme, got %q", tenant)
		}
	})

	t.Run("blank cookie falls back to default", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://example.com/lists", nil)
		req.AddCookie(&http.Cookie{Name: tenantCookieName, Value: "  "})
		recorder := httptest.NewRecorder()

		if tenant := handler.resolveTenant(recorder, req); tenant != "acme" {
			t.Fatalf("expected default tenant acme, got %q", tenant)
		}
	})

	t.Run("path prefix beats cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://example.com/t/globex/lists", nil)
		req.AddCookie(&http.Cookie{Name: tenantCookieName, Value: "initech"})
		recorder := httptest.NewRecorder()

		var gotPath, gotTenant string
		strip := stripTenantPrefix(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotTenant = handler.resolveTenant(w, r)
		}))
		strip.ServeHTTP(recorder, req)

		if gotPath != "/lists" {
			t.Fatalf("expected stripped path /lists, got %q", gotPath)
		}
		if gotTenant != "globex" {
			t.Fatalf("expected tenant globex, got %q", gotTenant)
		}
	})
}

func TestStripTenantPrefix(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		wantPath string
	}{
		{name: "prefixed page", path: "/t/acme/campaigns", wantPath: "/campaigns"},
		{name: "prefixed root", path: "/t/acme", wantPath: "/"},
		{name: "unprefixed untouched", path: "/campaigns", wantPath: "/campaigns"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "http://example.com"+test.path, nil)
			recorder := httptest.NewRecorder()

			var gotPath string
			strip := stripTenantPrefix(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
			}))
			strip.ServeHTTP(recorder, req)

			if gotPath != test.wantPath {
				t.Errorf("path = %q, want %q", gotPath, test.wantPath)
			}
		})
	}

	t.Run("empty slug redirects home", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://example.com/t/", nil)
		recorder := httptest.NewRecorder()

		strip := stripTenantPrefix(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not run for an empty slug")
		}))
		strip.ServeHTTP(recorder, req)

		if recorder.Code != http.StatusTemporaryRedirect {
			t.Fatalf("status = %d, want %d", recorder.Code, http.StatusTemporaryRedirect)
		}
		if location := recorder.Header().Get("Location"); location != "/" {
			t.Errorf("Location = %q, want /", location)
		}
	})
}

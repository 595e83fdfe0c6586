package admin

import (
	"context"
	"net/http"
	"strings"
)

// tenantParam selects the active tenant via query string.
const tenantParam = "tenant"

// tenantPathPrefix scopes UI routes by tenant slug, e.g. /t/acme/lists.
const tenantPathPrefix = "/t/"

// tenantCookieName persists the operator's tenant selection.
const tenantCookieName = "tm_tenant"

// tenantCookieMaxAge keeps the tenant selection for one year.
const tenantCookieMaxAge = 365 * 24 * 60 * 60

type tenantContextKey struct{}

// tenantFromContext returns the slug extracted from a /t/{slug} path
// prefix, or "" when the request was not prefixed.
func tenantFromContext(ctx context.Context) string {
	slug, _ := ctx.Value(tenantContextKey{}).(string)
	return slug
}

// stripTenantPrefix routes /t/{slug}/... requests to the unprefixed
// handler with the slug stored in the request context.
func stripTenantPrefix(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, tenantPathPrefix) {
			next.ServeHTTP(w, r)
			return
		}
		rest := strings.TrimPrefix(r.URL.Path, tenantPathPrefix)
		slug, remainder, _ := strings.Cut(rest, "/")
		slug = strings.TrimSpace(slug)
		if slug == "" {
			http.Redirect(w, r, "/", http.StatusTemporaryRedirect)
			return
		}
		clone := r.Clone(context.WithValue(r.Context(), tenantContextKey{}, slug))
		clone.URL.Path = "/" + remainder
		next.ServeHTTP(w, clone)
	})
}

// resolveTenant picks the active tenant slug for the request.
//
// Precedence mirrors language selection: explicit query param, then a
// /t/{slug} path prefix, then the persisted cookie, then the configured
// default. A query param selection is written back to the cookie so it
// sticks across navigation.
func (h *Handler) resolveTenant(w http.ResponseWriter, r *http.Request) string {
	if slug := strings.TrimSpace(r.URL.Query().Get(tenantParam)); slug != "" {
		http.SetCookie(w, &http.Cookie{
			Name:     tenantCookieName,
			Value:    slug,
			Path:     "/",
			MaxAge:   tenantCookieMaxAge,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			Secure:   isHTTPS(r),
		})
		return slug
	}
	if slug := tenantFromContext(r.Context()); slug != "" {
		return slug
	}
	if cookie, err := r.Cookie(tenantCookieName); err == nil {
		if slug := strings.TrimSpace(cookie.Value); slug != "" {
			return slug
		}
	}
	return h.defaultTenant
}

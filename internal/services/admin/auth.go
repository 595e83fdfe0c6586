package admin

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/tidemarkhq/tidemark/internal/services/admin/routepath"
	"github.com/tidemarkhq/tidemark/internal/services/admin/storage"
	"github.com/tidemarkhq/tidemark/internal/services/shared/authctx"
)

// tokenCookieName is the domain-scoped cookie set by the platform login service.
const tokenCookieName = "tm_token"

// sessionCookieName stores the short-lived operator session JWT minted after
// a successful introspection.
const sessionCookieName = "tm_session"

// sessionTTL bounds how long a minted operator session stays valid before the
// access token is introspected again.
const sessionTTL = 12 * time.Hour

// AuthConfig holds auth middleware configuration for the admin operator plane.
type AuthConfig struct {
	IntrospectURL  string
	ResourceSecret string
	LoginURL       string
	// SessionSecret signs operator session JWTs. Introspection runs on every
	// request when empty.
	SessionSecret string
}

// TokenIntrospector validates an access token via introspection.
type TokenIntrospector = authctx.Introspector

// newHTTPIntrospector creates an introspector that POSTs to the given URL.
func newHTTPIntrospector(url, resourceSecret string) TokenIntrospector {
	return authctx.NewHTTPIntrospector(url, resourceSecret, &http.Client{Timeout: 5 * time.Second})
}

type operatorIDKey struct{}

// withOperatorID stamps the authenticated operator onto the request context.
func withOperatorID(ctx context.Context, operatorID string) context.Context {
	return context.WithValue(ctx, operatorIDKey{}, operatorID)
}

// operatorID returns the authenticated operator for the request, if any.
func operatorID(ctx context.Context) string {
	value, _ := ctx.Value(operatorIDKey{}).(string)
	return value
}

// sessionClaims is the payload of a minted operator session JWT.
type sessionClaims struct {
	jwt.RegisteredClaims
}

// requireAuth wraps next with token-introspection-based authentication.
//
// A successful introspection mints a signed session JWT so later requests
// skip the round trip to the auth service until the session expires. Static
// assets bypass authentication.
func requireAuth(next http.Handler, introspector TokenIntrospector, cfg AuthConfig, sessions storage.OperatorSessionStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isAuthExempt(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		if cfg.SessionSecret != "" {
			if claims := validSessionClaims(r, cfg.SessionSecret); claims != nil {
				ctx := withOperatorID(r.Context(), claims.Subject)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}
		}

		cookie, err := r.Cookie(tokenCookieName)
		if err != nil || strings.TrimSpace(cookie.Value) == "" {
			http.Redirect(w, r, cfg.LoginURL, http.StatusFound)
			return
		}

		result, err := introspector.Introspect(r.Context(), cookie.Value)
		if err != nil {
			log.Printf("admin auth introspect error: %v", err)
			http.Redirect(w, r, cfg.LoginURL, http.StatusFound)
			return
		}
		if !result.Active {
			http.Redirect(w, r, cfg.LoginURL, http.StatusFound)
			return
		}

		if cfg.SessionSecret != "" {
			mintSession(w, r, cfg.SessionSecret, result.UserID, sessions)
		}

		ctx := withOperatorID(r.Context(), result.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// isAuthExempt returns true for paths that should bypass authentication.
func isAuthExempt(path string) bool {
	return strings.HasPrefix(path, routepath.StaticPrefix)
}

// validSessionClaims parses the session cookie and returns its claims when
// the signature and expiry check out.
func validSessionClaims(r *http.Request, secret string) *sessionClaims {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || strings.TrimSpace(cookie.Value) == "" {
		return nil
	}
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return nil
	}
	return claims
}

// mintSession signs a fresh session JWT and records the operator session.
func mintSession(w http.ResponseWriter, r *http.Request, secret string, opID string, sessions storage.OperatorSessionStore) {
	now := time.Now()
	sessionID := uuid.NewString()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Subject:   opID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		log.Printf("sign admin session: %v", err)
		return
	}
	if sessions != nil {
		if err := sessions.PutOperatorSession(r.Context(), sessionID, opID, now); err != nil {
			log.Printf("persist admin session: %v", err)
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(sessionTTL / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   isHTTPS(r),
	})
}

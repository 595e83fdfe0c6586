package admin

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/tidemarkhq/tidemark/internal/services/admin/i18n"
	"github.com/tidemarkhq/tidemark/internal/services/admin/integration/coreapi"
	"github.com/tidemarkhq/tidemark/internal/services/admin/module/accounts"
	"github.com/tidemarkhq/tidemark/internal/services/admin/module/campaigns"
	"github.com/tidemarkhq/tidemark/internal/services/admin/module/contacts"
	"github.com/tidemarkhq/tidemark/internal/services/admin/module/countries"
	"github.com/tidemarkhq/tidemark/internal/services/admin/module/dashboard"
	"github.com/tidemarkhq/tidemark/internal/services/admin/module/inventory"
	"github.com/tidemarkhq/tidemark/internal/services/admin/module/landing"
	"github.com/tidemarkhq/tidemark/internal/services/admin/module/lists"
	"github.com/tidemarkhq/tidemark/internal/services/admin/module/verification"
	"github.com/tidemarkhq/tidemark/internal/services/admin/routepath"
	"github.com/tidemarkhq/tidemark/internal/services/admin/storage"
	"github.com/tidemarkhq/tidemark/internal/services/admin/templates"
	"golang.org/x/text/message"
)

// defaultPageSize caps list pages fetched from the core API.
const defaultPageSize = 25

// membersPageSize caps list membership pages.
const membersPageSize = 50

// descriptionCellLimit caps the description shown in table cells.
const descriptionCellLimit = 80

// APIClientProvider supplies the core API client for request handling.
type APIClientProvider interface {
	CoreAPI() *coreapi.Client
}

// Handler routes admin dashboard requests.
type Handler struct {
	clientProvider APIClientProvider
	store          storage.Store
	defaultTenant  string
}

// NewHandler builds the HTTP handler for the admin server.
func NewHandler(clientProvider APIClientProvider, store storage.Store, defaultTenant string) http.Handler {
	return NewHandlerWithConfig(clientProvider, store, defaultTenant, nil)
}

// NewHandlerWithConfig builds the HTTP handler with optional authentication.
func NewHandlerWithConfig(clientProvider APIClientProvider, store storage.Store, defaultTenant string, authConfig *AuthConfig) http.Handler {
	handler := &Handler{
		clientProvider: clientProvider,
		store:          store,
		defaultTenant:  strings.TrimSpace(defaultTenant),
	}
	routes := stripTenantPrefix(handler.routes())
	if authConfig != nil && strings.TrimSpace(authConfig.IntrospectURL) != "" {
		introspector := newHTTPIntrospector(authConfig.IntrospectURL, authConfig.ResourceSecret)
		routes = requireAuth(routes, introspector, *authConfig, store)
	}
	return traceRequests(routes)
}

func (h *Handler) localizer(w http.ResponseWriter, r *http.Request) (*message.Printer, string) {
	tag, persist := i18n.ResolveTag(r)
	if persist {
		i18n.SetLanguageCookie(w, tag)
	}
	return i18n.Printer(tag), tag.String()
}

func (h *Handler) pageContext(lang string, loc *message.Printer, tenant string, r *http.Request) templates.PageContext {
	return templates.PageContext{
		Lang:         lang,
		Loc:          loc,
		Tenant:       tenant,
		CurrentPath:  r.URL.Path,
		CurrentQuery: r.URL.RawQuery,
	}
}

// requestScope resolves the localizer, tenant, and page context in one step.
func (h *Handler) requestScope(w http.ResponseWriter, r *http.Request) (*message.Printer, string, templates.PageContext) {
	loc, lang := h.localizer(w, r)
	tenant := h.resolveTenant(w, r)
	return loc, tenant, h.pageContext(lang, loc, tenant, r)
}

// routes wires the HTTP routes for the admin handler.
func (h *Handler) routes() http.Handler {
	mux := http.NewServeMux()
	mux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.Dir("internal/services/admin/static"))))
	dashboard.RegisterRoutes(mux, h)
	lists.RegisterRoutes(mux, h)
	campaigns.RegisterRoutes(mux, h)
	contacts.RegisterRoutes(mux, h)
	verification.RegisterRoutes(mux, h)
	landing.RegisterRoutes(mux, h)
	countries.RegisterRoutes(mux, h)
	inventory.RegisterRoutes(mux, h)
	accounts.RegisterRoutes(mux, h)
	return mux
}

// coreAPI returns the current core API client, or nil before the first
// successful health probe.
func (h *Handler) coreAPI() *coreapi.Client {
	if h == nil || h.clientProvider == nil {
		return nil
	}
	return h.clientProvider.CoreAPI()
}

func requireSameOrigin(w http.ResponseWriter, r *http.Request, loc *message.Printer) bool {
	if r == nil {
		http.Error(w, loc.Sprintf("error.csrf_invalid"), http.StatusForbidden)
		return false
	}
	if origin := strings.TrimSpace(r.Header.Get("Origin")); origin != "" {
		if !sameOrigin(origin, r) {
			http.Error(w, loc.Sprintf("error.csrf_invalid"), http.StatusForbidden)
			return false
		}
		return true
	}
	if referer := strings.TrimSpace(r.Referer()); referer != "" {
		if !sameOrigin(referer, r) {
			http.Error(w, loc.Sprintf("error.csrf_invalid"), http.StatusForbidden)
			return false
		}
		return true
	}
	http.Error(w, loc.Sprintf("error.csrf_invalid"), http.StatusForbidden)
	return false
}

func sameOrigin(rawURL string, r *http.Request) bool {
	if rawURL == "" || rawURL == "null" || r == nil {
		return false
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return false
	}
	if !strings.EqualFold(parsed.Host, r.Host) {
		return false
	}
	if parsed.Scheme != "" {
		return strings.EqualFold(parsed.Scheme, requestScheme(r))
	}
	return true
}

func requestScheme(r *http.Request) string {
	if r == nil {
		return "http"
	}
	if proto := strings.TrimSpace(r.Header.Get("X-Forwarded-Proto")); proto != "" {
		parts := strings.Split(proto, ",")
		return strings.ToLower(strings.TrimSpace(parts[0]))
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

func isHTTPS(r *http.Request) bool {
	return requestScheme(r) == "https"
}

package admin

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tidemarkhq/tidemark/internal/services/admin/integration/coreapi"
	"github.com/tidemarkhq/tidemark/internal/services/admin/storage"
	"github.com/tidemarkhq/tidemark/internal/services/admin/templates"
	"github.com/tidemarkhq/tidemark/internal/services/shared/htmx"
	"golang.org/x/text/message"
)

// postOnly rejects non-POST requests with a 405 and Allow header.
func postOnly(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodPost {
		return true
	}
	w.Header().Set("Allow", http.MethodPost)
	http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	return false
}

// redirectTo sends the browser to url, using HX-Redirect for HTMX requests so
// the whole page navigates instead of swapping a fragment.
func redirectTo(w http.ResponseWriter, r *http.Request, url string) {
	if htmx.IsHTMXRequest(r) {
		w.Header().Set("Location", url)
		w.Header().Set("HX-Redirect", url)
		w.WriteHeader(http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, url, http.StatusSeeOther)
}

// pageTitle formats a localized page title with the product name.
func pageTitle(loc *message.Printer, key string) string {
	return loc.Sprintf(key, templates.AppName())
}

// htmxPageTitle formats the title tag injected into HTMX fragment responses.
func htmxPageTitle(loc *message.Printer, key string) string {
	return htmx.TitleTag(pageTitle(loc, key))
}

// apiErrorMessage maps a core API error to a localized operator message.
func apiErrorMessage(err error, loc *message.Printer) string {
	if err == nil {
		return ""
	}
	if coreapi.IsNotFound(err) {
		return loc.Sprintf("error.not_found")
	}
	if apiErr, ok := err.(*coreapi.APIError); ok {
		switch apiErr.StatusCode {
		case http.StatusBadRequest, http.StatusUnprocessableEntity:
			return loc.Sprintf("error.invalid_request")
		case http.StatusForbidden:
			return loc.Sprintf("error.forbidden")
		}
	}
	return loc.Sprintf("error.service_unavailable")
}

// fallbackAuditActor labels audit entries recorded while authentication
// is disabled and no operator ID is in the request context.
const fallbackAuditActor = "operator"

// recordAudit appends an operator action to the audit log. Failures are
// logged and never block the request.
func (h *Handler) recordAudit(r *http.Request, tenant string, action string, subject string) {
	if h == nil || h.store == nil {
		return
	}
	actor := operatorID(r.Context())
	if actor == "" {
		actor = fallbackAuditActor
	}
	entry := storage.AuditEntry{
		ID:         uuid.NewString(),
		Tenant:     tenant,
		Actor:      actor,
		Action:     action,
		Subject:    subject,
		OccurredAt: time.Now().UTC(),
	}
	if err := h.store.AppendAuditEntry(r.Context(), entry); err != nil {
		log.Printf("append audit entry: %v", err)
	}
}

// pageToken reads the pagination cursor from the query string.
func pageToken(r *http.Request) string {
	return strings.TrimSpace(r.URL.Query().Get("page_token"))
}

// searchQuery reads the free-text search term from the query string.
func searchQuery(r *http.Request) string {
	return strings.TrimSpace(r.URL.Query().Get("q"))
}

// noticeParam reads the transient notice carried across a redirect.
func noticeParam(r *http.Request) string {
	return strings.TrimSpace(r.URL.Query().Get("message"))
}

// unavailableTable builds a table view carrying only an error message.
func unavailableTable(id string, baseURL string, columns []string, message string) templates.TableView {
	return templates.TableView{
		ID:          id,
		Columns:     columns,
		Message:     message,
		HTMXBaseURL: baseURL,
	}
}

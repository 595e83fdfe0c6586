package admin

import (
	"context"
	"log"
	"net/http"

	"github.com/a-h/templ"
	"github.com/tidemarkhq/tidemark/internal/platform/timeouts"
	"github.com/tidemarkhq/tidemark/internal/services/admin/routepath"
	"github.com/tidemarkhq/tidemark/internal/services/admin/templates"
	"github.com/tidemarkhq/tidemark/internal/services/shared/htmx"
)

// recentActivityLimit caps the dashboard activity feed.
const recentActivityLimit = 15

// handleDashboard renders the dashboard page shell.
func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != routepath.Root {
		http.NotFound(w, r)
		return
	}
	loc, _, pageCtx := h.requestScope(w, r)
	title := pageTitle(loc, "title.dashboard")
	htmx.RenderPage(w, r, nil, templates.DashboardPage(pageCtx, title), htmxPageTitle(loc, "title.dashboard"))
}

// handleDashboardContent loads and renders the tenant stats and recent
// operator activity.
func (h *Handler) handleDashboardContent(w http.ResponseWriter, r *http.Request) {
	_, tenant, pageCtx := h.requestScope(w, r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.APIRequest)
	defer cancel()

	stats := templates.DashboardStats{
		Contacts:        "0",
		Lists:           "0",
		ActiveCampaigns: "0",
		PendingVerifies: "0",
	}
	if client := h.coreAPI(); client != nil {
		tenantStats, err := client.GetTenantStats(ctx, tenant)
		if err != nil {
			log.Printf("get tenant stats: %v", err)
		} else {
			stats.Contacts = formatCount(tenantStats.Contacts)
			stats.Lists = formatCount(tenantStats.Lists)
			stats.ActiveCampaigns = formatCount(tenantStats.CampaignsSent)
			stats.PendingVerifies = formatCount(tenantStats.PendingVerifies)
		}
	}

	var events []templates.ActivityEvent
	if h.store != nil {
		entries, err := h.store.ListRecentAuditEntries(ctx, tenant, recentActivityLimit)
		if err != nil {
			log.Printf("list audit entries: %v", err)
		}
		for _, entry := range entries {
			events = append(events, templates.ActivityEvent{
				Actor:     entry.Actor,
				Action:    entry.Action,
				Subject:   entry.Subject,
				Timestamp: entry.OccurredAt.Format("2006-01-02 15:04"),
			})
		}
	}

	templ.Handler(templates.DashboardContent(pageCtx, stats, events)).ServeHTTP(w, r)
}

package templates

import (
	"io"

	"github.com/a-h/templ"
	routepath "github.com/tidemarkhq/tidemark/internal/services/admin/routepath"
)

// DashboardStats holds aggregate statistics for the dashboard.
type DashboardStats struct {
	Contacts        string
	Lists           string
	ActiveCampaigns string
	PendingVerifies string
}

// ActivityEvent represents a recent operator action for the activity feed.
type ActivityEvent struct {
	Actor     string
	Action    string
	Subject   string
	Timestamp string
}

// DashboardContent renders the dashboard stats and activity feed fragment.
func DashboardContent(page PageContext, stats DashboardStats, events []ActivityEvent) templ.Component {
	return component(func(w io.Writer) error {
		loc := page.Loc
		if err := write(w, `<section class="dashboard"><h1>`, esc(T(loc, "dashboard.heading")), `</h1>`); err != nil {
			return err
		}

		cards := []struct {
			label string
			value string
		}{
			{label: T(loc, "dashboard.contacts_total"), value: stats.Contacts},
			{label: T(loc, "dashboard.lists_total"), value: stats.Lists},
			{label: T(loc, "dashboard.campaigns_active"), value: stats.ActiveCampaigns},
			{label: T(loc, "dashboard.pending_verifications"), value: stats.PendingVerifies},
		}
		if err := write(w, `<div class="stats">`); err != nil {
			return err
		}
		for _, card := range cards {
			if err := write(w,
				`<div class="stat"><div class="stat-title">`, esc(card.label),
				`</div><div class="stat-value">`, esc(card.value), `</div></div>`); err != nil {
				return err
			}
		}
		if err := write(w, `</div>`); err != nil {
			return err
		}

		if err := write(w, `<h2>`, esc(T(loc, "dashboard.recent_activity")), `</h2>`); err != nil {
			return err
		}
		if len(events) == 0 {
			if err := write(w, `<p class="empty-state">`, esc(T(loc, "dashboard.no_activity")), `</p>`); err != nil {
				return err
			}
			return write(w, `</section>`)
		}
		if err := write(w, `<ul class="activity-feed">`); err != nil {
			return err
		}
		for _, event := range events {
			if err := write(w,
				`<li><span class="activity-actor">`, esc(event.Actor),
				`</span> <span class="activity-action">`, esc(event.Action), `</span>`); err != nil {
				return err
			}
			if event.Subject != "" {
				if err := write(w, ` <span class="activity-subject">`, esc(event.Subject), `</span>`); err != nil {
					return err
				}
			}
			if err := write(w, ` <time>`, esc(event.Timestamp), `</time></li>`); err != nil {
				return err
			}
		}
		return write(w, `</ul></section>`)
	})
}

// DashboardPage renders the full dashboard page with lazily loaded content.
func DashboardPage(page PageContext, title string) templ.Component {
	return Layout(page, title, LazyLoad(routepath.DashboardContent, T(page.Loc, "dashboard.heading")))
}

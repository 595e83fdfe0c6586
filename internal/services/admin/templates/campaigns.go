// File campaigns.go defines view data and components for campaign screens.
package templates

import (
	"io"

	"github.com/a-h/templ"
	routepath "github.com/tidemarkhq/tidemark/internal/services/admin/routepath"
)

// CampaignStatsView holds formatted delivery statistics.
type CampaignStatsView struct {
	Sent    string
	Opened  string
	Clicked string
	Bounced string
}

// CampaignListRef links a target list on the campaign detail page.
type CampaignListRef struct {
	ID   string
	Name string
}

// CampaignDetail holds formatted campaign data for the detail page.
type CampaignDetail struct {
	ID           string
	Name         string
	Subject      string
	FromName     string
	FromEmail    string
	BodyHTML     string
	Status       string
	StatusTone   string
	ScheduledFor string
	UpdatedDate  string
	Stats        CampaignStatsView
	TargetLists  []CampaignListRef
	// Draft reports whether the campaign can still be edited and sent.
	Draft bool
	// Cancelable reports whether an in-flight send can be stopped.
	Cancelable bool
}

// CampaignsContent renders the campaigns index fragment.
func CampaignsContent(page PageContext, table TableView, notice string) templ.Component {
	return component(func(w io.Writer) error {
		loc := page.Loc
		if err := renderChild(w, Heading(PageHeading{Title: T(loc, "campaigns.heading")})); err != nil {
			return err
		}
		if err := renderChild(w, Notice(notice)); err != nil {
			return err
		}
		if err := renderChild(w, CampaignCreateForm(page)); err != nil {
			return err
		}
		return renderChild(w, Table(table))
	})
}

// CampaignsPage renders the full campaigns index page.
func CampaignsPage(page PageContext, title string, table TableView, notice string) templ.Component {
	return Layout(page, title, CampaignsContent(page, table, notice))
}

// CampaignCreateForm renders the new-campaign form. The form is
// multipart so an HTML body file can be attached instead of pasting
// the body inline.
func CampaignCreateForm(page PageContext) templ.Component {
	return component(func(w io.Writer) error {
		loc := page.Loc
		if err := write(w, `<form class="create-form" hx-post="`, routepath.CampaignsCreate, `" hx-target="#content" hx-swap="innerHTML" hx-encoding="multipart/form-data">`); err != nil {
			return err
		}
		if err := campaignFields(w, loc, CampaignDetail{}); err != nil {
			return err
		}
		if err := write(w, `<label>`, esc(T(loc, "campaigns.scheduled_for")), `<input type="datetime-local" name="scheduled_for"></label>`); err != nil {
			return err
		}
		return write(w, `<button class="btn btn-primary" type="submit">`, esc(T(loc, "common.create")), `</button></form>`)
	})
}

// campaignFields writes the shared draft inputs for create and edit
// forms, prefilled from detail when editing.
func campaignFields(w io.Writer, loc Localizer, detail CampaignDetail) error {
	if err := textField(w, "name", T(loc, "common.name"), detail.Name); err != nil {
		return err
	}
	if err := textField(w, "subject", T(loc, "campaigns.subject"), detail.Subject); err != nil {
		return err
	}
	if err := textField(w, "from_name", T(loc, "campaigns.from_name"), detail.FromName); err != nil {
		return err
	}
	if err := textField(w, "from_email", T(loc, "campaigns.from_email"), detail.FromEmail); err != nil {
		return err
	}
	if err := write(w, `<label>`, esc(T(loc, "campaigns.body")), `<textarea name="body_html" rows="6">`, esc(detail.BodyHTML), `</textarea></label>`); err != nil {
		return err
	}
	return write(w, `<label>`, esc(T(loc, "campaigns.body_file")), `<input type="file" name="body_file" accept=".html,.htm"></label>`)
}

// CampaignEditForm renders the draft edit form on the detail page.
func CampaignEditForm(page PageContext, detail CampaignDetail) templ.Component {
	return component(func(w io.Writer) error {
		loc := page.Loc
		if err := write(w, `<form class="create-form" hx-post="`, esc(routepath.CampaignUpdate(detail.ID)), `" hx-target="#content" hx-swap="innerHTML" hx-encoding="multipart/form-data">`); err != nil {
			return err
		}
		if err := campaignFields(w, loc, detail); err != nil {
			return err
		}
		return write(w, `<button class="btn btn-primary" type="submit">`, esc(T(loc, "common.save")), `</button></form>`)
	})
}

// CampaignDetailContent renders the campaign detail fragment.
func CampaignDetailContent(page PageContext, detail CampaignDetail, attachable []SelectOption, notice string) templ.Component {
	return component(func(w io.Writer) error {
		loc := page.Loc
		heading := PageHeading{
			Title: detail.Name,
			Breadcrumbs: []Breadcrumb{
				{Label: T(loc, "campaigns.heading"), URL: routepath.Campaigns},
				{Label: detail.Name},
			},
		}
		if err := renderChild(w, Heading(heading)); err != nil {
			return err
		}
		if err := renderChild(w, Notice(notice)); err != nil {
			return err
		}

		if err := write(w, `<p class="campaign-status">`, statusBadgeHTML(detail.Status, detail.StatusTone), `</p>`); err != nil {
			return err
		}

		fields := []DetailField{
			{Label: T(loc, "campaigns.subject"), Value: detail.Subject},
			{Label: T(loc, "common.updated"), Value: detail.UpdatedDate},
		}
		if detail.ScheduledFor != "" {
			fields = append(fields, DetailField{Label: T(loc, "campaigns.status.scheduled"), Value: detail.ScheduledFor})
		}
		if err := renderChild(w, DetailPanel(fields)); err != nil {
			return err
		}

		stats := []DetailField{
			{Label: T(loc, "campaigns.stats_sent"), Value: detail.Stats.Sent},
			{Label: T(loc, "campaigns.stats_opened"), Value: detail.Stats.Opened},
			{Label: T(loc, "campaigns.stats_clicked"), Value: detail.Stats.Clicked},
			{Label: T(loc, "campaigns.stats_bounced"), Value: detail.Stats.Bounced},
		}
		if err := renderChild(w, DetailPanel(stats)); err != nil {
			return err
		}

		if err := write(w, `<h2>`, esc(T(loc, "campaigns.target_lists")), `</h2><ul class="target-lists">`); err != nil {
			return err
		}
		for _, ref := range detail.TargetLists {
			if err := write(w, `<li><a href="`, esc(routepath.List(ref.ID)), `">`, esc(ref.Name), `</a>`); err != nil {
				return err
			}
			if detail.Draft {
				if err := write(w,
					` <button class="btn btn-xs" hx-post="`, esc(routepath.CampaignListDetach(detail.ID, ref.ID)),
					`" hx-target="#content" hx-swap="innerHTML">`, esc(T(loc, "campaigns.detach_list")), `</button>`); err != nil {
					return err
				}
			}
			if err := write(w, `</li>`); err != nil {
				return err
			}
		}
		if err := write(w, `</ul>`); err != nil {
			return err
		}

		if detail.Draft {
			if err := write(w, `<h2>`, esc(T(loc, "campaigns.edit")), `</h2>`); err != nil {
				return err
			}
			if err := renderChild(w, CampaignEditForm(page, detail)); err != nil {
				return err
			}
			if len(attachable) > 0 {
				if err := write(w, `<form class="inline-form" hx-post="`, esc(routepath.CampaignListsAttach(detail.ID)), `" hx-target="#content" hx-swap="innerHTML">`); err != nil {
					return err
				}
				if err := selectField(w, "list_id", T(loc, "campaigns.attach_list"), attachable); err != nil {
					return err
				}
				if err := write(w, `<button class="btn btn-sm" type="submit">`, esc(T(loc, "campaigns.attach_list")), `</button></form>`); err != nil {
					return err
				}
			}
			if err := write(w,
				`<form class="inline-form" hx-post="`, esc(routepath.CampaignSend(detail.ID)), `" hx-target="#content" hx-swap="innerHTML">`,
				`<input type="datetime-local" name="scheduled_for">`,
				`<button class="btn btn-primary" type="submit">`, esc(T(loc, "campaigns.send_now")), `</button></form>`); err != nil {
				return err
			}
		}
		if detail.Cancelable {
			if err := write(w,
				`<form class="danger-form" hx-post="`, esc(routepath.CampaignCancel(detail.ID)), `" hx-target="#content" hx-swap="innerHTML">`,
				`<button class="btn btn-error" type="submit">`, esc(T(loc, "campaigns.cancel_send")), `</button></form>`); err != nil {
				return err
			}
		}
		return nil
	})
}

// CampaignDetailPage renders the full campaign detail page.
func CampaignDetailPage(page PageContext, title string, detail CampaignDetail, attachable []SelectOption, notice string) templ.Component {
	return Layout(page, title, CampaignDetailContent(page, detail, attachable, notice))
}

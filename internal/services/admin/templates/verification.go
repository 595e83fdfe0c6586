package templates

import (
	"io"

	"github.com/a-h/templ"
	routepath "github.com/tidemarkhq/tidemark/internal/services/admin/routepath"
)

// VerificationJobDetail holds formatted job data for the detail page.
type VerificationJobDetail struct {
	ID          string
	ListName    string
	Status      string
	StatusTone  string
	Progress    string
	StartedDate string
	// Downloadable reports whether a results file is available.
	Downloadable bool
}

// VerificationContent renders the verification jobs index fragment.
func VerificationContent(page PageContext, table TableView, startable []SelectOption, notice string) templ.Component {
	return component(func(w io.Writer) error {
		loc := page.Loc
		if err := renderChild(w, Heading(PageHeading{Title: T(loc, "verification.heading")})); err != nil {
			return err
		}
		if err := renderChild(w, Notice(notice)); err != nil {
			return err
		}
		if len(startable) > 0 {
			if err := write(w, `<form class="inline-form" hx-post="`, routepath.VerificationStart, `" hx-target="#content" hx-swap="innerHTML">`); err != nil {
				return err
			}
			if err := selectField(w, "list_id", T(loc, "nav.lists"), startable); err != nil {
				return err
			}
			if err := write(w, `<button class="btn btn-primary" type="submit">`, esc(T(loc, "verification.start")), `</button></form>`); err != nil {
				return err
			}
		}
		return renderChild(w, Table(table))
	})
}

// VerificationPage renders the full verification jobs page.
func VerificationPage(page PageContext, title string, table TableView, startable []SelectOption, notice string) templ.Component {
	return Layout(page, title, VerificationContent(page, table, startable, notice))
}

// VerificationJobContent renders the job detail fragment. Running jobs poll
// for fresh status.
func VerificationJobContent(page PageContext, detail VerificationJobDetail, polling bool) templ.Component {
	return component(func(w io.Writer) error {
		loc := page.Loc
		heading := PageHeading{
			Title: detail.ListName,
			Breadcrumbs: []Breadcrumb{
				{Label: T(loc, "verification.heading"), URL: routepath.Verification},
				{Label: detail.ListName},
			},
		}
		if err := renderChild(w, Heading(heading)); err != nil {
			return err
		}

		wrapper := `<div class="job-status">`
		if polling {
			wrapper = `<div class="job-status" hx-get="` + esc(routepath.VerificationJob(detail.ID)) +
				`" hx-trigger="every 5s" hx-target="#content" hx-swap="innerHTML">`
		}
		if err := write(w, wrapper, statusBadgeHTML(detail.Status, detail.StatusTone)); err != nil {
			return err
		}

		fields := []DetailField{
			{Label: T(loc, "common.status"), Value: detail.Progress},
			{Label: T(loc, "common.created"), Value: detail.StartedDate},
		}
		if err := renderChild(w, DetailPanel(fields)); err != nil {
			return err
		}
		if detail.Downloadable {
			if err := write(w, `<a class="btn btn-primary" href="`, esc(routepath.VerificationJobDownload(detail.ID)), `">`, esc(T(loc, "verification.download")), `</a>`); err != nil {
				return err
			}
		}
		return write(w, `</div>`)
	})
}

// VerificationJobPage renders the full job detail page.
func VerificationJobPage(page PageContext, title string, detail VerificationJobDetail, polling bool) templ.Component {
	return Layout(page, title, VerificationJobContent(page, detail, polling))
}

package templates

import (
	"io"

	"github.com/a-h/templ"
	routepath "github.com/tidemarkhq/tidemark/internal/services/admin/routepath"
)

// ContactDetail holds formatted contact data for the detail page.
type ContactDetail struct {
	ID          string
	Email       string
	Name        string
	Country     string
	CreatedDate string
}

// ContactsContent renders the contacts index fragment with prefix lookup.
func ContactsContent(page PageContext, table TableView) templ.Component {
	return component(func(w io.Writer) error {
		loc := page.Loc
		if err := renderChild(w, Heading(PageHeading{Title: T(loc, "contacts.heading")})); err != nil {
			return err
		}
		if err := write(w,
			`<form class="inline-form" hx-get="`, routepath.ContactsLookup, `" hx-target="#`, esc(table.ID), `" hx-swap="outerHTML">`,
			`<input type="search" name="email_prefix" placeholder="`, esc(T(loc, "contacts.lookup_placeholder")), `">`,
			`<button class="btn btn-sm" type="submit">`, esc(T(loc, "common.search")), `</button></form>`); err != nil {
			return err
		}
		return renderChild(w, Table(table))
	})
}

// ContactsPage renders the full contacts index page.
func ContactsPage(page PageContext, title string, table TableView) templ.Component {
	return Layout(page, title, ContactsContent(page, table))
}

// ContactDetailContent renders the contact detail fragment with memberships.
func ContactDetailContent(page PageContext, detail ContactDetail, memberships TableView) templ.Component {
	return component(func(w io.Writer) error {
		loc := page.Loc
		heading := PageHeading{
			Title: detail.Email,
			Breadcrumbs: []Breadcrumb{
				{Label: T(loc, "contacts.heading"), URL: routepath.Contacts},
				{Label: detail.Email},
			},
		}
		if err := renderChild(w, Heading(heading)); err != nil {
			return err
		}
		fields := []DetailField{
			{Label: T(loc, "common.name"), Value: detail.Name},
			{Label: T(loc, "countries.code"), Value: detail.Country},
			{Label: T(loc, "common.created"), Value: detail.CreatedDate},
		}
		if err := renderChild(w, DetailPanel(fields)); err != nil {
			return err
		}
		if err := write(w, `<h2>`, esc(T(loc, "contacts.memberships")), `</h2>`); err != nil {
			return err
		}
		return renderChild(w, Table(memberships))
	})
}

// ContactDetailPage renders the full contact detail page.
func ContactDetailPage(page PageContext, title string, detail ContactDetail, memberships TableView) templ.Component {
	return Layout(page, title, ContactDetailContent(page, detail, memberships))
}

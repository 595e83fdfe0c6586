// File lists.go defines view data and components for marketing list screens.
package templates

import (
	"io"

	"github.com/a-h/templ"
	routepath "github.com/tidemarkhq/tidemark/internal/services/admin/routepath"
)

// ListDetail holds formatted list data for the detail page.
type ListDetail struct {
	ID          string
	Name        string
	Type        string
	Description string
	SegmentRule string
	MemberCount string
	CreatedDate string
	// Static reports whether members can be added or removed directly.
	Static bool
}

// ListsContent renders the lists index fragment.
func ListsContent(page PageContext, table TableView, query string, notice string) templ.Component {
	return component(func(w io.Writer) error {
		loc := page.Loc
		if err := renderChild(w, Heading(PageHeading{Title: T(loc, "lists.heading")})); err != nil {
			return err
		}
		if err := renderChild(w, Notice(notice)); err != nil {
			return err
		}
		if err := renderChild(w, ListCreateForm(page)); err != nil {
			return err
		}
		if err := renderChild(w, SearchBox(table, T(loc, "common.search"), query)); err != nil {
			return err
		}
		return renderChild(w, Table(table))
	})
}

// ListsPage renders the full lists index page.
func ListsPage(page PageContext, title string, table TableView, query string, notice string) templ.Component {
	return Layout(page, title, ListsContent(page, table, query, notice))
}

// ListCreateForm renders the new-list form.
func ListCreateForm(page PageContext) templ.Component {
	return component(func(w io.Writer) error {
		loc := page.Loc
		if err := write(w, `<form class="create-form" hx-post="`, routepath.ListsCreate, `" hx-target="#content" hx-swap="innerHTML">`); err != nil {
			return err
		}
		if err := textField(w, "name", T(loc, "common.name"), ""); err != nil {
			return err
		}
		if err := selectField(w, "list_type", T(loc, "lists.type"), []SelectOption{
			{Value: "STATIC", Label: T(loc, "lists.type_static"), Selected: true},
			{Value: "DYNAMIC_SEGMENT", Label: T(loc, "lists.type_dynamic")},
		}); err != nil {
			return err
		}
		if err := textField(w, "description", T(loc, "lists.description"), ""); err != nil {
			return err
		}
		if err := textField(w, "segment_rule", T(loc, "lists.segment_rule"), ""); err != nil {
			return err
		}
		if err := textField(w, "initial_contacts", T(loc, "lists.initial_contacts"), ""); err != nil {
			return err
		}
		return write(w, `<button class="btn btn-primary" type="submit">`, esc(T(loc, "common.create")), `</button></form>`)
	})
}

// ListDetailContent renders the list detail fragment with member management.
func ListDetailContent(page PageContext, detail ListDetail, members TableView, notice string) templ.Component {
	return component(func(w io.Writer) error {
		loc := page.Loc
		heading := PageHeading{
			Title: detail.Name,
			Breadcrumbs: []Breadcrumb{
				{Label: T(loc, "lists.heading"), URL: routepath.Lists},
				{Label: detail.Name},
			},
		}
		if err := renderChild(w, Heading(heading)); err != nil {
			return err
		}
		if err := renderChild(w, Notice(notice)); err != nil {
			return err
		}

		fields := []DetailField{
			{Label: T(loc, "lists.type"), Value: detail.Type},
			{Label: T(loc, "lists.members"), Value: detail.MemberCount},
			{Label: T(loc, "common.created"), Value: detail.CreatedDate},
		}
		if detail.Description != "" {
			fields = append(fields, DetailField{Label: T(loc, "lists.description"), Value: detail.Description})
		}
		if detail.SegmentRule != "" {
			fields = append(fields, DetailField{Label: T(loc, "lists.segment_rule"), Value: detail.SegmentRule})
		}
		if err := renderChild(w, DetailPanel(fields)); err != nil {
			return err
		}

		if detail.Static {
			if err := write(w,
				`<form class="inline-form" hx-post="`, esc(routepath.ListMembers(detail.ID)), `" hx-target="#`, esc(members.ID), `" hx-swap="outerHTML">`,
				`<input type="text" name="contact_id" placeholder="contact id">`,
				`<button class="btn btn-sm" type="submit">`, esc(T(loc, "lists.add_member")), `</button></form>`); err != nil {
				return err
			}
			if err := write(w,
				`<form class="inline-form" hx-post="`, esc(routepath.ListImport(detail.ID)), `" hx-target="#content" hx-swap="innerHTML" hx-encoding="multipart/form-data">`,
				`<input type="file" name="file" accept=".csv">`,
				`<button class="btn btn-sm" type="submit">`, esc(T(loc, "lists.import_members")), `</button></form>`); err != nil {
				return err
			}
		}

		if err := renderChild(w, Table(members)); err != nil {
			return err
		}

		return write(w,
			`<form class="danger-form" hx-post="`, esc(routepath.ListDelete(detail.ID)),
			`" hx-confirm="`, esc(T(loc, "lists.delete_confirm")), `">`,
			`<button class="btn btn-error" type="submit">`, esc(T(loc, "common.delete")), `</button></form>`)
	})
}

// ListDetailPage renders the full list detail page.
func ListDetailPage(page PageContext, title string, detail ListDetail, members TableView, notice string) templ.Component {
	return Layout(page, title, ListDetailContent(page, detail, members, notice))
}

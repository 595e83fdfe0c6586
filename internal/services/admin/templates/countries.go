package templates

import (
	"io"

	"github.com/a-h/templ"
	routepath "github.com/tidemarkhq/tidemark/internal/services/admin/routepath"
)

// CountriesContent renders the countries index fragment.
func CountriesContent(page PageContext, table TableView, notice string) templ.Component {
	return component(func(w io.Writer) error {
		loc := page.Loc
		if err := renderChild(w, Heading(PageHeading{Title: T(loc, "countries.heading")})); err != nil {
			return err
		}
		if err := renderChild(w, Notice(notice)); err != nil {
			return err
		}
		if err := renderChild(w, CountryCreateForm(page)); err != nil {
			return err
		}
		return renderChild(w, Table(table))
	})
}

// CountriesPage renders the full countries page.
func CountriesPage(page PageContext, title string, table TableView, notice string) templ.Component {
	return Layout(page, title, CountriesContent(page, table, notice))
}

// CountryCreateForm renders the new-country form.
func CountryCreateForm(page PageContext) templ.Component {
	return component(func(w io.Writer) error {
		loc := page.Loc
		if err := write(w, `<form class="create-form" hx-post="`, routepath.CountriesCreate, `" hx-target="#content" hx-swap="innerHTML">`); err != nil {
			return err
		}
		if err := textField(w, "code", T(loc, "countries.code"), ""); err != nil {
			return err
		}
		if err := textField(w, "name", T(loc, "common.name"), ""); err != nil {
			return err
		}
		if err := textField(w, "currency", T(loc, "countries.currency"), ""); err != nil {
			return err
		}
		return write(w, `<button class="btn btn-primary" type="submit">`, esc(T(loc, "common.create")), `</button></form>`)
	})
}

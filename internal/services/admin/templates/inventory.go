package templates

import (
	"io"

	"github.com/a-h/templ"
	routepath "github.com/tidemarkhq/tidemark/internal/services/admin/routepath"
)

// ItemDetail holds formatted serialized item data for the detail page.
type ItemDetail struct {
	ID          string
	Serial      string
	Product     string
	Status      string
	StatusTone  string
	UpdatedDate string
}

// InventoryContent renders the serialized inventory index fragment.
func InventoryContent(page PageContext, table TableView, statusFilters []SelectOption) templ.Component {
	return component(func(w io.Writer) error {
		loc := page.Loc
		if err := renderChild(w, Heading(PageHeading{Title: T(loc, "inventory.heading")})); err != nil {
			return err
		}
		if len(statusFilters) > 0 {
			if err := write(w, `<form class="inline-form" hx-get="`, routepath.InventoryTable, `" hx-target="#`, esc(table.ID), `" hx-swap="outerHTML">`); err != nil {
				return err
			}
			if err := selectField(w, "status", T(loc, "common.status"), statusFilters); err != nil {
				return err
			}
			if err := write(w, `<button class="btn btn-sm" type="submit">`, esc(T(loc, "common.search")), `</button></form>`); err != nil {
				return err
			}
		}
		return renderChild(w, Table(table))
	})
}

// InventoryPage renders the full inventory page.
func InventoryPage(page PageContext, title string, table TableView, statusFilters []SelectOption) templ.Component {
	return Layout(page, title, InventoryContent(page, table, statusFilters))
}

// ItemDetailContent renders the item detail fragment with a transition form.
func ItemDetailContent(page PageContext, detail ItemDetail, transitions []SelectOption, notice string) templ.Component {
	return component(func(w io.Writer) error {
		loc := page.Loc
		heading := PageHeading{
			Title: detail.Serial,
			Breadcrumbs: []Breadcrumb{
				{Label: T(loc, "inventory.heading"), URL: routepath.Inventory},
				{Label: detail.Serial},
			},
		}
		if err := renderChild(w, Heading(heading)); err != nil {
			return err
		}
		if err := renderChild(w, Notice(notice)); err != nil {
			return err
		}
		if err := write(w, `<p class="item-status">`, statusBadgeHTML(detail.Status, detail.StatusTone), `</p>`); err != nil {
			return err
		}
		fields := []DetailField{
			{Label: T(loc, "inventory.product"), Value: detail.Product},
			{Label: T(loc, "common.updated"), Value: detail.UpdatedDate},
		}
		if err := renderChild(w, DetailPanel(fields)); err != nil {
			return err
		}
		if len(transitions) == 0 {
			return nil
		}
		if err := write(w, `<form class="inline-form" hx-post="`, esc(routepath.InventoryItemTransition(detail.ID)), `" hx-target="#content" hx-swap="innerHTML">`); err != nil {
			return err
		}
		if err := selectField(w, "status", T(loc, "inventory.transition"), transitions); err != nil {
			return err
		}
		return write(w, `<button class="btn btn-primary" type="submit">`, esc(T(loc, "common.save")), `</button></form>`)
	})
}

// ItemDetailPage renders the full item detail page.
func ItemDetailPage(page PageContext, title string, detail ItemDetail, transitions []SelectOption, notice string) templ.Component {
	return Layout(page, title, ItemDetailContent(page, detail, transitions, notice))
}

package templates

import (
	"io"

	"github.com/a-h/templ"
	routepath "github.com/tidemarkhq/tidemark/internal/services/admin/routepath"
)

// AccountDetail holds formatted account data for the detail page.
type AccountDetail struct {
	ID          string
	Email       string
	Name        string
	Country     string
	CreatedDate string
}

// OrderRow holds formatted order data for the recent orders list.
type OrderRow struct {
	ID          string
	Total       string
	Status      string
	PlacedDate  string
	ItemSummary string
}

// AccountsContent renders the customer accounts index fragment.
func AccountsContent(page PageContext, table TableView) templ.Component {
	return component(func(w io.Writer) error {
		loc := page.Loc
		if err := renderChild(w, Heading(PageHeading{Title: T(loc, "accounts.heading")})); err != nil {
			return err
		}
		if err := write(w,
			`<form class="inline-form" hx-get="`, routepath.AccountsTable, `" hx-target="#`, esc(table.ID), `" hx-swap="outerHTML">`,
			`<input type="search" name="q" placeholder="`, esc(T(loc, "accounts.email")), `">`,
			`<button class="btn btn-sm" type="submit">`, esc(T(loc, "common.search")), `</button></form>`); err != nil {
			return err
		}
		return renderChild(w, Table(table))
	})
}

// AccountsPage renders the full accounts index page.
func AccountsPage(page PageContext, title string, table TableView) templ.Component {
	return Layout(page, title, AccountsContent(page, table))
}

// AccountDetailContent renders the account detail fragment with orders and tasks.
func AccountDetailContent(page PageContext, detail AccountDetail, orders []OrderRow, tasks TableView, notice string) templ.Component {
	return component(func(w io.Writer) error {
		loc := page.Loc
		heading := PageHeading{
			Title: detail.Email,
			Breadcrumbs: []Breadcrumb{
				{Label: T(loc, "accounts.heading"), URL: routepath.Accounts},
				{Label: detail.Email},
			},
		}
		if err := renderChild(w, Heading(heading)); err != nil {
			return err
		}
		if err := renderChild(w, Notice(notice)); err != nil {
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

		if err := write(w, `<h2>`, esc(T(loc, "accounts.orders")), `</h2>`); err != nil {
			return err
		}
		if len(orders) == 0 {
			if err := write(w, `<p class="empty-state">`, esc(T(loc, "accounts.no_orders")), `</p>`); err != nil {
				return err
			}
		} else {
			if err := write(w, `<ul class="order-list">`); err != nil {
				return err
			}
			for _, order := range orders {
				if err := write(w,
					`<li><strong>`, esc(order.ID), `</strong> `, esc(order.Total), ` `, esc(order.Status),
					` <time>`, esc(order.PlacedDate), `</time> `, esc(order.ItemSummary), `</li>`); err != nil {
					return err
				}
			}
			if err := write(w, `</ul>`); err != nil {
				return err
			}
		}

		if err := write(w, `<h2>`, esc(T(loc, "accounts.tasks")), `</h2>`); err != nil {
			return err
		}
		if err := renderChild(w, Table(tasks)); err != nil {
			return err
		}
		return write(w,
			`<form class="inline-form" hx-post="`, esc(routepath.AccountTasks(detail.ID)), `" hx-target="#`, esc(tasks.ID), `" hx-swap="outerHTML">`,
			`<input type="text" name="title" placeholder="`, esc(T(loc, "accounts.new_task")), `">`,
			`<input type="date" name="due_date">`,
			`<button class="btn btn-sm" type="submit">`, esc(T(loc, "accounts.new_task")), `</button></form>`)
	})
}

// AccountDetailPage renders the full account detail page.
func AccountDetailPage(page PageContext, title string, detail AccountDetail, orders []OrderRow, tasks TableView, notice string) templ.Component {
	return Layout(page, title, AccountDetailContent(page, detail, orders, tasks, notice))
}

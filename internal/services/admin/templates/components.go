package templates

import (
	"context"
	"html"
	"io"
	"net/url"
	"strings"

	"github.com/a-h/templ"
	routepath "github.com/tidemarkhq/tidemark/internal/services/admin/routepath"
)

// PageHeading holds header metadata for pages.
type PageHeading struct {
	// Title is the page heading.
	Title string
	// Breadcrumbs renders a path trail for the page.
	Breadcrumbs []Breadcrumb
	// ActionURL renders a CTA button when set.
	ActionURL string
	// ActionLabel is the CTA button label.
	ActionLabel string
}

// Breadcrumb represents a single breadcrumb item.
type Breadcrumb struct {
	// Label is the visible label.
	Label string
	// URL is the optional navigation target.
	URL string
}

// RowAction is a POST button rendered in a table row.
type RowAction struct {
	Label   string
	URL     string
	Confirm string
}

// TableRow represents a single row in an admin table.
type TableRow struct {
	Primary   string
	DetailURL string
	Cells     []string
	Actions   []RowAction
}

// TableView provides data for an admin list table.
type TableView struct {
	// ID is the DOM id used as the HTMX swap target.
	ID          string
	Columns     []string
	Rows        []TableRow
	Message     string
	NextToken   string
	HTMXBaseURL string
}

// DetailField represents a label/value pair in a detail view.
type DetailField struct {
	Label string
	Value string
}

// SelectOption is an option in a form select.
type SelectOption struct {
	Value    string
	Label    string
	Selected bool
}

// AppendQueryParam appends a single query parameter to a URL.
func AppendQueryParam(baseURL string, key string, value string) string {
	encodedKey := url.QueryEscape(key)
	encodedValue := url.QueryEscape(value)
	if strings.Contains(baseURL, "?") {
		return baseURL + "&" + encodedKey + "=" + encodedValue
	}
	return baseURL + "?" + encodedKey + "=" + encodedValue
}

func component(render func(w io.Writer) error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return render(w)
	})
}

func write(w io.Writer, parts ...string) error {
	for _, part := range parts {
		if _, err := io.WriteString(w, part); err != nil {
			return err
		}
	}
	return nil
}

func esc(value string) string {
	return html.EscapeString(value)
}

func renderChild(w io.Writer, child templ.Component) error {
	if child == nil {
		return nil
	}
	return child.Render(context.Background(), w)
}

// LoadingSpinner renders the shared loading indicator.
func LoadingSpinner() templ.Component {
	return component(func(w io.Writer) error {
		return write(w, `<span class="loading loading-ring loading-md"></span>`)
	})
}

// LazyLoad renders a placeholder that fetches content on load.
func LazyLoad(contentURL string, message string) templ.Component {
	return component(func(w io.Writer) error {
		return write(w,
			`<div hx-get="`, esc(contentURL), `" hx-trigger="load" hx-swap="outerHTML">`,
			`<span class="loading loading-ring loading-md"></span>`,
			`<span class="sr-only">`, esc(message), `</span>`,
			`</div>`)
	})
}

// SearchBox renders a debounced search input that re-fetches a table
// fragment as the operator types.
func SearchBox(view TableView, placeholder string, value string) templ.Component {
	return component(func(w io.Writer) error {
		return write(w,
			`<input class="search-box" type="search" name="q"`,
			` value="`, esc(value), `"`,
			` placeholder="`, esc(placeholder), `"`,
			` hx-get="`, esc(view.HTMXBaseURL), `"`,
			` hx-trigger="keyup changed delay:300ms, search"`,
			` hx-target="#`, esc(view.ID), `" hx-swap="outerHTML">`)
	})
}

// Notice renders a dismissible alert banner.
func Notice(message string) templ.Component {
	return component(func(w io.Writer) error {
		if strings.TrimSpace(message) == "" {
			return nil
		}
		return write(w, `<div class="alert alert-info" role="status">`, esc(message), `</div>`)
	})
}

// StatusBadge renders a colored status label.
func StatusBadge(label string, tone string) templ.Component {
	return component(func(w io.Writer) error {
		class := "badge"
		if tone != "" {
			class += " badge-" + tone
		}
		return write(w, `<span class="`, esc(class), `">`, esc(label), `</span>`)
	})
}

func statusBadgeHTML(label string, tone string) string {
	class := "badge"
	if tone != "" {
		class += " badge-" + tone
	}
	return `<span class="` + esc(class) + `">` + esc(label) + `</span>`
}

// Heading renders a page heading with breadcrumbs and an optional CTA.
func Heading(heading PageHeading) templ.Component {
	return component(func(w io.Writer) error {
		if err := write(w, `<header class="page-heading">`); err != nil {
			return err
		}
		if len(heading.Breadcrumbs) > 0 {
			if err := write(w, `<nav class="breadcrumbs"><ul>`); err != nil {
				return err
			}
			for _, crumb := range heading.Breadcrumbs {
				if crumb.URL != "" {
					if err := write(w, `<li><a href="`, esc(crumb.URL), `">`, esc(crumb.Label), `</a></li>`); err != nil {
						return err
					}
					continue
				}
				if err := write(w, `<li>`, esc(crumb.Label), `</li>`); err != nil {
					return err
				}
			}
			if err := write(w, `</ul></nav>`); err != nil {
				return err
			}
		}
		if err := write(w, `<h1>`, esc(heading.Title), `</h1>`); err != nil {
			return err
		}
		if heading.ActionURL != "" && heading.ActionLabel != "" {
			if err := write(w, `<a class="btn btn-primary" href="`, esc(heading.ActionURL), `">`, esc(heading.ActionLabel), `</a>`); err != nil {
				return err
			}
		}
		return write(w, `</header>`)
	})
}

// Table renders an admin list table with an HTMX pager.
func Table(view TableView) templ.Component {
	return component(func(w io.Writer) error {
		if err := write(w, `<div id="`, esc(view.ID), `">`); err != nil {
			return err
		}
		if len(view.Rows) == 0 {
			if err := write(w, `<p class="empty-state">`, esc(view.Message), `</p></div>`); err != nil {
				return err
			}
			return nil
		}
		if err := write(w, `<table class="table"><thead><tr>`); err != nil {
			return err
		}
		for _, column := range view.Columns {
			if err := write(w, `<th>`, esc(column), `</th>`); err != nil {
				return err
			}
		}
		if err := write(w, `</tr></thead><tbody>`); err != nil {
			return err
		}
		for _, row := range view.Rows {
			if err := write(w, `<tr><td>`); err != nil {
				return err
			}
			if row.DetailURL != "" {
				if err := write(w, `<a href="`, esc(row.DetailURL), `">`, esc(row.Primary), `</a>`); err != nil {
					return err
				}
			} else if err := write(w, esc(row.Primary)); err != nil {
				return err
			}
			if err := write(w, `</td>`); err != nil {
				return err
			}
			for _, cell := range row.Cells {
				if err := write(w, `<td>`, esc(cell), `</td>`); err != nil {
					return err
				}
			}
			if len(row.Actions) > 0 {
				if err := write(w, `<td class="row-actions">`); err != nil {
					return err
				}
				for _, action := range row.Actions {
					if err := write(w, `<button class="btn btn-xs" hx-post="`, esc(action.URL), `" hx-target="#`, esc(view.ID), `" hx-swap="outerHTML"`); err != nil {
						return err
					}
					if action.Confirm != "" {
						if err := write(w, ` hx-confirm="`, esc(action.Confirm), `"`); err != nil {
							return err
						}
					}
					if err := write(w, `>`, esc(action.Label), `</button>`); err != nil {
						return err
					}
				}
				if err := write(w, `</td>`); err != nil {
					return err
				}
			}
			if err := write(w, `</tr>`); err != nil {
				return err
			}
		}
		if err := write(w, `</tbody></table>`); err != nil {
			return err
		}
		if view.NextToken != "" && view.HTMXBaseURL != "" {
			nextURL := AppendQueryParam(view.HTMXBaseURL, "page_token", view.NextToken)
			if err := write(w, `<button class="btn btn-sm pager-next" hx-get="`, esc(nextURL), `" hx-target="#`, esc(view.ID), `" hx-swap="outerHTML">&rarr;</button>`); err != nil {
				return err
			}
		}
		return write(w, `</div>`)
	})
}

// DetailPanel renders label/value pairs for a detail view.
func DetailPanel(fields []DetailField) templ.Component {
	return component(func(w io.Writer) error {
		if err := write(w, `<dl class="detail-panel">`); err != nil {
			return err
		}
		for _, field := range fields {
			if err := write(w, `<dt>`, esc(field.Label), `</dt><dd>`, esc(field.Value), `</dd>`); err != nil {
				return err
			}
		}
		return write(w, `</dl>`)
	})
}

type navItem struct {
	label string
	url   string
}

func navItems(loc Localizer) []navItem {
	return []navItem{
		{label: T(loc, "nav.dashboard"), url: routepath.Root},
		{label: T(loc, "nav.lists"), url: routepath.Lists},
		{label: T(loc, "nav.campaigns"), url: routepath.Campaigns},
		{label: T(loc, "nav.contacts"), url: routepath.Contacts},
		{label: T(loc, "nav.verification"), url: routepath.Verification},
		{label: T(loc, "nav.landing"), url: routepath.Landing},
		{label: T(loc, "nav.countries"), url: routepath.Countries},
		{label: T(loc, "nav.inventory"), url: routepath.Inventory},
		{label: T(loc, "nav.accounts"), url: routepath.Accounts},
	}
}

// Layout renders the full admin page shell around content.
func Layout(page PageContext, title string, content templ.Component) templ.Component {
	return component(func(w io.Writer) error {
		if err := write(w,
			`<!DOCTYPE html><html lang="`, esc(page.Lang), `"><head><meta charset="utf-8">`,
			`<meta name="viewport" content="width=device-width, initial-scale=1">`,
			`<title>`, esc(title), `</title>`,
			`<link rel="stylesheet" href="`, routepath.StaticPrefix, `admin.css">`,
			`<script src="`, routepath.StaticPrefix, `htmx.min.js" defer></script>`,
			`</head><body><div class="admin-shell">`); err != nil {
			return err
		}

		if err := write(w, `<aside class="sidebar"><nav><ul>`); err != nil {
			return err
		}
		for _, item := range navItems(page.Loc) {
			class := ""
			if item.url == page.CurrentPath || (item.url != routepath.Root && strings.HasPrefix(page.CurrentPath, item.url)) {
				class = ` class="active"`
			}
			if err := write(w, `<li`, class, `><a href="`, esc(item.url), `">`, esc(item.label), `</a></li>`); err != nil {
				return err
			}
		}
		if err := write(w, `</ul></nav>`); err != nil {
			return err
		}

		if page.Tenant != "" {
			if err := write(w, `<div class="tenant-badge">`, esc(T(page.Loc, "nav.tenant")), `: <strong>`, esc(page.Tenant), `</strong></div>`); err != nil {
				return err
			}
		}

		if err := write(w, `<div class="lang-switch">`); err != nil {
			return err
		}
		for _, option := range LanguageOptions(page, page.Loc) {
			class := "lang-option"
			if option.Active {
				class += " active"
			}
			if err := write(w, `<a class="`, esc(class), `" href="`, esc(LanguageURL(page, option.Tag)), `">`, esc(option.Label), `</a>`); err != nil {
				return err
			}
		}
		if err := write(w, `</div></aside>`); err != nil {
			return err
		}

		if err := write(w, `<main id="content">`); err != nil {
			return err
		}
		if err := renderChild(w, content); err != nil {
			return err
		}
		return write(w, `</main></div></body></html>`)
	})
}

// selectField renders a labeled select input.
func selectField(w io.Writer, name string, label string, options []SelectOption) error {
	if err := write(w, `<label>`, esc(label), `<select name="`, esc(name), `">`); err != nil {
		return err
	}
	for _, option := range options {
		selected := ""
		if option.Selected {
			selected = ` selected`
		}
		if err := write(w, `<option value="`, esc(option.Value), `"`, selected, `>`, esc(option.Label), `</option>`); err != nil {
			return err
		}
	}
	return write(w, `</select></label>`)
}

// textField renders a labeled text input.
func textField(w io.Writer, name string, label string, value string) error {
	return write(w, `<label>`, esc(label), `<input type="text" name="`, esc(name), `" value="`, esc(value), `"></label>`)
}

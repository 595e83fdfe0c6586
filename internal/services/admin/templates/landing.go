// File landing.go defines view data and components for landing page screens.
package templates

import (
	"io"

	"github.com/a-h/templ"
	routepath "github.com/tidemarkhq/tidemark/internal/services/admin/routepath"
)

// LandingPageDetail holds formatted landing page data for the detail screen.
type LandingPageDetail struct {
	ID          string
	Name        string
	Slug        string
	UpdatedDate string
}

// BlockRow holds formatted content block data for the block list.
type BlockRow struct {
	ID         string
	Kind       string
	Title      string
	Position   string
	Enabled    bool
	EnabledLbl string
}

// LandingPagesContent renders the landing pages index fragment.
func LandingPagesContent(page PageContext, table TableView) templ.Component {
	return component(func(w io.Writer) error {
		if err := renderChild(w, Heading(PageHeading{Title: T(page.Loc, "landing.heading")})); err != nil {
			return err
		}
		return renderChild(w, Table(table))
	})
}

// LandingPagesPage renders the full landing pages index.
func LandingPagesPage(page PageContext, title string, table TableView) templ.Component {
	return Layout(page, title, LandingPagesContent(page, table))
}

// BlocksFragment renders the ordered block list for a landing page.
func BlocksFragment(page PageContext, pageID string, blocks []BlockRow) templ.Component {
	return component(func(w io.Writer) error {
		loc := page.Loc
		if err := write(w, `<div id="blocks"><h2>`, esc(T(loc, "landing.blocks")), `</h2>`); err != nil {
			return err
		}
		if len(blocks) == 0 {
			if err := write(w, `<p class="empty-state">`, esc(T(loc, "common.empty")), `</p>`); err != nil {
				return err
			}
			return write(w, `</div>`)
		}
		if err := write(w, `<ol class="block-list">`); err != nil {
			return err
		}
		for _, block := range blocks {
			if err := write(w, `<li class="block-row"><span class="block-kind">`, esc(block.Kind), `</span> <strong>`, esc(block.Title), `</strong> `); err != nil {
				return err
			}
			tone := "success"
			if !block.Enabled {
				tone = "ghost"
			}
			if err := write(w, statusBadgeHTML(block.EnabledLbl, tone)); err != nil {
				return err
			}

			toggleURL := routepath.LandingBlockEnable(pageID, block.ID)
			toggleLabel := T(loc, "common.enable")
			if block.Enabled {
				toggleURL = routepath.LandingBlockDisable(pageID, block.ID)
				toggleLabel = T(loc, "common.disable")
			}
			actions := []struct {
				url    string
				label  string
				method string
			}{
				{url: routepath.LandingBlockMove(pageID, block.ID) + "?direction=up", label: T(loc, "landing.move_up"), method: "post"},
				{url: routepath.LandingBlockMove(pageID, block.ID) + "?direction=down", label: T(loc, "landing.move_down"), method: "post"},
				{url: toggleURL, label: toggleLabel, method: "post"},
				{url: routepath.LandingBlockDelete(pageID, block.ID), label: T(loc, "common.delete"), method: "post"},
			}
			for _, action := range actions {
				if err := write(w,
					`<button class="btn btn-xs" hx-post="`, esc(action.url),
					`" hx-target="#blocks" hx-swap="outerHTML">`, esc(action.label), `</button>`); err != nil {
					return err
				}
			}
			if err := write(w,
				`<button class="btn btn-xs" hx-get="`, esc(routepath.LandingBlockPreview(pageID, block.ID)),
				`" hx-target="#preview" hx-swap="innerHTML">`, esc(T(loc, "landing.preview")), `</button>`); err != nil {
				return err
			}
			if err := write(w, `</li>`); err != nil {
				return err
			}
		}
		return write(w, `</ol></div>`)
	})
}

// BlockCreateForm renders the new-block form.
func BlockCreateForm(page PageContext, pageID string) templ.Component {
	return component(func(w io.Writer) error {
		loc := page.Loc
		if err := write(w, `<form class="create-form" hx-post="`, esc(routepath.LandingBlocksCreate(pageID)), `" hx-target="#content" hx-swap="innerHTML">`); err != nil {
			return err
		}
		if err := textField(w, "title", T(loc, "common.name"), ""); err != nil {
			return err
		}
		if err := selectField(w, "kind", T(loc, "landing.block_kind"), []SelectOption{
			{Value: "HERO_CAROUSEL", Label: T(loc, "landing.kind.hero_carousel"), Selected: true},
			{Value: "BANNER_GRID", Label: T(loc, "landing.kind.banner_grid")},
			{Value: "RICH_TEXT", Label: T(loc, "landing.kind.rich_text")},
			{Value: "PRODUCT_RAIL", Label: T(loc, "landing.kind.product_rail")},
		}); err != nil {
			return err
		}
		if err := write(w, `<label>config<textarea name="config" rows="4"></textarea></label>`); err != nil {
			return err
		}
		return write(w, `<button class="btn btn-primary" type="submit">`, esc(T(loc, "common.create")), `</button></form>`)
	})
}

// LandingPageContent renders the landing page detail fragment.
func LandingPageContent(page PageContext, detail LandingPageDetail, blocks []BlockRow, notice string) templ.Component {
	return component(func(w io.Writer) error {
		loc := page.Loc
		heading := PageHeading{
			Title: detail.Name,
			Breadcrumbs: []Breadcrumb{
				{Label: T(loc, "landing.heading"), URL: routepath.Landing},
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
			{Label: "slug", Value: detail.Slug},
			{Label: T(loc, "common.updated"), Value: detail.UpdatedDate},
		}
		if err := renderChild(w, DetailPanel(fields)); err != nil {
			return err
		}
		if err := renderChild(w, BlocksFragment(page, detail.ID, blocks)); err != nil {
			return err
		}
		if err := renderChild(w, BlockCreateForm(page, detail.ID)); err != nil {
			return err
		}
		return write(w, `<div id="preview" class="block-preview"></div>`)
	})
}

// LandingPageDetailPage renders the full landing page detail.
func LandingPageDetailPage(page PageContext, title string, detail LandingPageDetail, blocks []BlockRow, notice string) templ.Component {
	return Layout(page, title, LandingPageContent(page, detail, blocks, notice))
}

// BlockPreview renders sanitized block markup inside the preview pane.
// The markup must already be sanitized by the caller.
func BlockPreview(sanitized string) templ.Component {
	return component(func(w io.Writer) error {
		return write(w, `<div class="preview-body">`, sanitized, `</div>`)
	})
}

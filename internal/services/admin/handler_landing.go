package admin

import (
	"context"
	"log"
	"net/http"
	"sort"
	"strings"

	"github.com/a-h/templ"
	"github.com/tidemarkhq/tidemark/internal/platform/sanitize"
	"github.com/tidemarkhq/tidemark/internal/platform/timeouts"
	"github.com/tidemarkhq/tidemark/internal/services/admin/integration/coreapi"
	"github.com/tidemarkhq/tidemark/internal/services/admin/routepath"
	"github.com/tidemarkhq/tidemark/internal/services/admin/templates"
	"github.com/tidemarkhq/tidemark/internal/services/shared/htmx"
	"golang.org/x/text/message"
)

const landingTableID = "landing-table"

// handleLandingPagesPage renders the landing pages index.
func (h *Handler) handleLandingPagesPage(w http.ResponseWriter, r *http.Request) {
	loc, tenant, pageCtx := h.requestScope(w, r)
	table := h.loadLandingTable(r.Context(), tenant, loc)
	htmx.RenderPage(w, r,
		templates.LandingPagesContent(pageCtx, table),
		templates.LandingPagesPage(pageCtx, pageTitle(loc, "title.landing"), table),
		htmxPageTitle(loc, "title.landing"))
}

func (h *Handler) loadLandingTable(ctx context.Context, tenant string, loc *message.Printer) templates.TableView {
	columns := []string{
		loc.Sprintf("common.name"),
		loc.Sprintf("landing.slug"),
		loc.Sprintf("landing.blocks"),
		loc.Sprintf("common.updated"),
	}
	client := h.coreAPI()
	if client == nil {
		return unavailableTable(landingTableID, routepath.Landing, columns, loc.Sprintf("error.service_unavailable"))
	}

	ctx, cancel := context.WithTimeout(ctx, timeouts.APIRequest)
	defer cancel()

	pages, err := client.ListLandingPages(ctx, tenant)
	if err != nil {
		log.Printf("list landing pages: %v", err)
		return unavailableTable(landingTableID, routepath.Landing, columns, apiErrorMessage(err, loc))
	}

	rows := make([]templates.TableRow, 0, len(pages))
	for _, page := range pages {
		rows = append(rows, templates.TableRow{
			Primary:   page.Title,
			DetailURL: routepath.LandingPage(page.ID),
			Cells: []string{
				page.Slug,
				formatCount(int64(len(page.Blocks))),
				formatDate(page.UpdatedAt),
			},
		})
	}
	return templates.TableView{
		ID:      landingTableID,
		Columns: columns,
		Rows:    rows,
		Message: loc.Sprintf("common.empty"),
	}
}

// handleLandingPageDetail renders one landing page with its block editor.
func (h *Handler) handleLandingPageDetail(w http.ResponseWriter, r *http.Request, pageID string) {
	h.renderLandingDetail(w, r, pageID, "")
}

func (h *Handler) renderLandingDetail(w http.ResponseWriter, r *http.Request, pageID string, notice string) {
	loc, tenant, pageCtx := h.requestScope(w, r)
	page, err := h.fetchLandingPage(r.Context(), tenant, pageID)
	if err != nil {
		http.Error(w, apiErrorMessage(err, loc), http.StatusNotFound)
		return
	}
	detail := templates.LandingPageDetail{
		ID:          page.ID,
		Name:        page.Title,
		Slug:        page.Slug,
		UpdatedDate: formatDate(page.UpdatedAt),
	}
	blocks := buildBlockRows(page.Blocks, loc)
	htmx.RenderPage(w, r,
		templates.LandingPageContent(pageCtx, detail, blocks, notice),
		templates.LandingPageDetailPage(pageCtx, pageTitle(loc, "title.landing"), detail, blocks, notice),
		htmxPageTitle(loc, "title.landing"))
}

func (h *Handler) fetchLandingPage(ctx context.Context, tenant string, pageID string) (coreapi.LandingPage, error) {
	client := h.coreAPI()
	if client == nil {
		return coreapi.LandingPage{}, &coreapi.APIError{StatusCode: http.StatusServiceUnavailable}
	}

	ctx, cancel := context.WithTimeout(ctx, timeouts.APIRequest)
	defer cancel()

	page, err := client.GetLandingPage(ctx, tenant, pageID)
	if err != nil {
		log.Printf("get landing page: %v", err)
	}
	return page, err
}

// buildBlockRows formats blocks ordered by position.
func buildBlockRows(blocks []coreapi.ContentBlock, loc *message.Printer) []templates.BlockRow {
	ordered := make([]coreapi.ContentBlock, len(blocks))
	copy(ordered, blocks)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Position < ordered[j].Position })

	rows := make([]templates.BlockRow, 0, len(ordered))
	for _, block := range ordered {
		enabledLbl := loc.Sprintf("landing.enabled")
		if !block.Enabled {
			enabledLbl = loc.Sprintf("landing.disabled")
		}
		rows = append(rows, templates.BlockRow{
			ID:         block.ID,
			Kind:       formatBlockKind(block.Kind, loc),
			Title:      block.Title,
			Position:   formatCount(int64(block.Position)),
			Enabled:    block.Enabled,
			EnabledLbl: enabledLbl,
		})
	}
	return rows
}

// handleBlocksTable returns the ordered block list for HTMX swaps.
func (h *Handler) handleBlocksTable(w http.ResponseWriter, r *http.Request, pageID string) {
	loc, tenant, pageCtx := h.requestScope(w, r)
	page, err := h.fetchLandingPage(r.Context(), tenant, pageID)
	if err != nil {
		http.Error(w, apiErrorMessage(err, loc), http.StatusNotFound)
		return
	}
	templ.Handler(templates.BlocksFragment(pageCtx, pageID, buildBlockRows(page.Blocks, loc))).ServeHTTP(w, r)
}

// handleBlockCreate appends a block and re-renders the page detail.
func (h *Handler) handleBlockCreate(w http.ResponseWriter, r *http.Request, pageID string) {
	if !postOnly(w, r) {
		return
	}
	loc, tenant, _ := h.requestScope(w, r)
	if !requireSameOrigin(w, r, loc) {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, loc.Sprintf("error.invalid_request"), http.StatusBadRequest)
		return
	}
	title := strings.TrimSpace(r.FormValue("title"))
	kind := strings.TrimSpace(r.FormValue("kind"))
	if title == "" || kind == "" {
		http.Error(w, loc.Sprintf("error.invalid_request"), http.StatusBadRequest)
		return
	}
	client := h.coreAPI()
	if client == nil {
		http.Error(w, loc.Sprintf("error.service_unavailable"), http.StatusServiceUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.APIRequest)
	defer cancel()

	draft := coreapi.BlockDraft{
		Kind:     kind,
		Title:    title,
		BodyHTML: r.FormValue("body_html"),
		Config:   strings.TrimSpace(r.FormValue("config")),
	}
	if _, err := client.CreateBlock(ctx, tenant, pageID, draft); err != nil {
		log.Printf("create block: %v", err)
		http.Error(w, apiErrorMessage(err, loc), http.StatusBadGateway)
		return
	}
	h.recordAudit(r, tenant, "landing.block_create", title)
	h.renderLandingDetail(w, r, pageID, "")
}

// handleBlockUpdate edits a block in place and re-renders the block list.
func (h *Handler) handleBlockUpdate(w http.ResponseWriter, r *http.Request, pageID string, blockID string) {
	if !postOnly(w, r) {
		return
	}
	loc, tenant, _ := h.requestScope(w, r)
	if !requireSameOrigin(w, r, loc) {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, loc.Sprintf("error.invalid_request"), http.StatusBadRequest)
		return
	}
	page, err := h.fetchLandingPage(r.Context(), tenant, pageID)
	if err != nil {
		http.Error(w, apiErrorMessage(err, loc), http.StatusNotFound)
		return
	}
	var existing *coreapi.ContentBlock
	for i := range page.Blocks {
		if page.Blocks[i].ID == blockID {
			existing = &page.Blocks[i]
			break
		}
	}
	if existing == nil {
		http.Error(w, loc.Sprintf("error.not_found"), http.StatusNotFound)
		return
	}
	draft := coreapi.BlockDraft{
		Kind:     existing.Kind,
		Title:    existing.Title,
		BodyHTML: existing.BodyHTML,
		Config:   string(existing.Config),
	}
	if title := strings.TrimSpace(r.FormValue("title")); title != "" {
		draft.Title = title
	}
	if body := r.FormValue("body_html"); strings.TrimSpace(body) != "" {
		draft.BodyHTML = body
	}
	if config := strings.TrimSpace(r.FormValue("config")); config != "" {
		draft.Config = config
	}

	client := h.coreAPI()
	if client == nil {
		http.Error(w, loc.Sprintf("error.service_unavailable"), http.StatusServiceUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.APIRequest)
	defer cancel()

	if _, err := client.UpdateBlock(ctx, tenant, pageID, blockID, draft); err != nil {
		log.Printf("update block: %v", err)
		http.Error(w, apiErrorMessage(err, loc), http.StatusBadGateway)
		return
	}
	h.recordAudit(r, tenant, "landing.block_update", draft.Title)
	h.handleBlocksTable(w, r, pageID)
}

// handleBlockEnable turns a block on and re-renders the block list.
func (h *Handler) handleBlockEnable(w http.ResponseWriter, r *http.Request, pageID string, blockID string) {
	h.setBlockEnabled(w, r, pageID, blockID, true)
}

// handleBlockDisable turns a block off and re-renders the block list.
func (h *Handler) handleBlockDisable(w http.ResponseWriter, r *http.Request, pageID string, blockID string) {
	h.setBlockEnabled(w, r, pageID, blockID, false)
}

func (h *Handler) setBlockEnabled(w http.ResponseWriter, r *http.Request, pageID string, blockID string, enabled bool) {
	if !postOnly(w, r) {
		return
	}
	loc, tenant, _ := h.requestScope(w, r)
	if !requireSameOrigin(w, r, loc) {
		return
	}
	client := h.coreAPI()
	if client == nil {
		http.Error(w, loc.Sprintf("error.service_unavailable"), http.StatusServiceUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.APIRequest)
	defer cancel()

	if err := client.SetBlockEnabled(ctx, tenant, pageID, blockID, enabled); err != nil {
		log.Printf("set block enabled: %v", err)
		http.Error(w, apiErrorMessage(err, loc), http.StatusBadGateway)
		return
	}
	action := "landing.block_disable"
	if enabled {
		action = "landing.block_enable"
	}
	h.recordAudit(r, tenant, action, blockID)
	h.handleBlocksTable(w, r, pageID)
}

// handleBlockMove reorders a block one step and re-renders the block list.
func (h *Handler) handleBlockMove(w http.ResponseWriter, r *http.Request, pageID string, blockID string) {
	if !postOnly(w, r) {
		return
	}
	loc, tenant, _ := h.requestScope(w, r)
	if !requireSameOrigin(w, r, loc) {
		return
	}
	direction := strings.TrimSpace(r.URL.Query().Get("direction"))
	if direction != "up" && direction != "down" {
		http.Error(w, loc.Sprintf("error.invalid_request"), http.StatusBadRequest)
		return
	}
	client := h.coreAPI()
	if client == nil {
		http.Error(w, loc.Sprintf("error.service_unavailable"), http.StatusServiceUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.APIRequest)
	defer cancel()

	if err := client.MoveBlock(ctx, tenant, pageID, blockID, direction); err != nil {
		log.Printf("move block: %v", err)
		http.Error(w, apiErrorMessage(err, loc), http.StatusBadGateway)
		return
	}
	h.recordAudit(r, tenant, "landing.block_move", blockID)
	h.handleBlocksTable(w, r, pageID)
}

// handleBlockDelete removes a block and re-renders the block list.
func (h *Handler) handleBlockDelete(w http.ResponseWriter, r *http.Request, pageID string, blockID string) {
	if !postOnly(w, r) {
		return
	}
	loc, tenant, _ := h.requestScope(w, r)
	if !requireSameOrigin(w, r, loc) {
		return
	}
	client := h.coreAPI()
	if client == nil {
		http.Error(w, loc.Sprintf("error.service_unavailable"), http.StatusServiceUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.APIRequest)
	defer cancel()

	if err := client.DeleteBlock(ctx, tenant, pageID, blockID); err != nil {
		log.Printf("delete block: %v", err)
		http.Error(w, apiErrorMessage(err, loc), http.StatusBadGateway)
		return
	}
	h.recordAudit(r, tenant, "landing.block_delete", blockID)
	h.handleBlocksTable(w, r, pageID)
}

// handleBlockPreview renders a block's sanitized markup into the preview
// pane. Scripts, inline handlers, and unsafe URLs are stripped before the
// markup reaches the browser.
func (h *Handler) handleBlockPreview(w http.ResponseWriter, r *http.Request, pageID string, blockID string) {
	loc, tenant, _ := h.requestScope(w, r)
	page, err := h.fetchLandingPage(r.Context(), tenant, pageID)
	if err != nil {
		http.Error(w, apiErrorMessage(err, loc), http.StatusNotFound)
		return
	}
	for _, block := range page.Blocks {
		if block.ID != blockID {
			continue
		}
		clean, err := sanitize.HTML(block.BodyHTML)
		if err != nil {
			log.Printf("sanitize block markup: %v", err)
			http.Error(w, loc.Sprintf("error.invalid_request"), http.StatusBadRequest)
			return
		}
		templ.Handler(templates.BlockPreview(clean)).ServeHTTP(w, r)
		return
	}
	http.Error(w, loc.Sprintf("error.not_found"), http.StatusNotFound)
}

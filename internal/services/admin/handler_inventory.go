package admin

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/tidemarkhq/tidemark/internal/platform/timeouts"
	"github.com/tidemarkhq/tidemark/internal/services/admin/integration/coreapi"
	"github.com/tidemarkhq/tidemark/internal/services/admin/routepath"
	"github.com/tidemarkhq/tidemark/internal/services/admin/templates"
	"github.com/tidemarkhq/tidemark/internal/services/shared/htmx"
	"golang.org/x/text/message"
)

const inventoryTableID = "inventory-table"

var itemStatuses = []string{
	coreapi.ItemStatusInStock,
	coreapi.ItemStatusReserved,
	coreapi.ItemStatusSold,
	coreapi.ItemStatusReturned,
	coreapi.ItemStatusQuarantined,
}

// handleInventoryPage renders the serialized inventory index.
func (h *Handler) handleInventoryPage(w http.ResponseWriter, r *http.Request) {
	loc, tenant, pageCtx := h.requestScope(w, r)
	table := h.loadInventoryTable(r.Context(), tenant, loc, r)
	filters := statusFilterOptions(loc, strings.TrimSpace(r.URL.Query().Get("status")))
	htmx.RenderPage(w, r,
		templates.InventoryContent(pageCtx, table, filters),
		templates.InventoryPage(pageCtx, pageTitle(loc, "title.inventory"), table, filters),
		htmxPageTitle(loc, "title.inventory"))
}

// handleInventoryTable returns the inventory table fragment, filtered by
// status when requested.
func (h *Handler) handleInventoryTable(w http.ResponseWriter, r *http.Request) {
	loc, tenant, _ := h.requestScope(w, r)
	table := h.loadInventoryTable(r.Context(), tenant, loc, r)
	templ.Handler(templates.Table(table)).ServeHTTP(w, r)
}

func statusFilterOptions(loc *message.Printer, selected string) []templates.SelectOption {
	options := []templates.SelectOption{{Value: "", Label: loc.Sprintf("inventory.all_statuses"), Selected: selected == ""}}
	for _, status := range itemStatuses {
		options = append(options, templates.SelectOption{
			Value:    status,
			Label:    formatItemStatus(status, loc),
			Selected: status == selected,
		})
	}
	return options
}

func (h *Handler) loadInventoryTable(ctx context.Context, tenant string, loc *message.Printer, r *http.Request) templates.TableView {
	columns := []string{
		loc.Sprintf("inventory.serial"),
		loc.Sprintf("inventory.product"),
		loc.Sprintf("common.status"),
		loc.Sprintf("common.updated"),
	}
	status := strings.TrimSpace(r.URL.Query().Get("status"))
	baseURL := routepath.InventoryTable
	if status != "" {
		baseURL += "?status=" + status
	}
	client := h.coreAPI()
	if client == nil {
		return unavailableTable(inventoryTableID, baseURL, columns, loc.Sprintf("error.service_unavailable"))
	}

	ctx, cancel := context.WithTimeout(ctx, timeouts.APIRequest)
	defer cancel()

	resp, err := client.ListItems(ctx, tenant, coreapi.ListItemsRequest{
		PageSize:  defaultPageSize,
		PageToken: pageToken(r),
		Query:     searchQuery(r),
		Status:    status,
	})
	if err != nil {
		log.Printf("list inventory items: %v", err)
		return unavailableTable(inventoryTableID, baseURL, columns, apiErrorMessage(err, loc))
	}

	rows := make([]templates.TableRow, 0, len(resp.Items))
	for _, item := range resp.Items {
		rows = append(rows, templates.TableRow{
			Primary:   item.Serial,
			DetailURL: routepath.InventoryItem(item.ID),
			Cells: []string{
				item.ProductName,
				formatItemStatus(item.Status, loc),
				formatDateTime(item.UpdatedAt),
			},
		})
	}
	return templates.TableView{
		ID:          inventoryTableID,
		Columns:     columns,
		Rows:        rows,
		Message:     loc.Sprintf("common.empty"),
		NextToken:   resp.NextPageToken,
		HTMXBaseURL: baseURL,
	}
}

// handleItemDetail renders one serialized item with its allowed status
// transitions.
func (h *Handler) handleItemDetail(w http.ResponseWriter, r *http.Request, itemID string) {
	h.renderItemDetail(w, r, itemID, "")
}

func (h *Handler) renderItemDetail(w http.ResponseWriter, r *http.Request, itemID string, notice string) {
	loc, tenant, pageCtx := h.requestScope(w, r)
	client := h.coreAPI()
	if client == nil {
		http.Error(w, loc.Sprintf("error.service_unavailable"), http.StatusServiceUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.APIRequest)
	defer cancel()

	item, err := client.GetItem(ctx, tenant, itemID)
	if err != nil {
		log.Printf("get inventory item: %v", err)
		http.Error(w, apiErrorMessage(err, loc), http.StatusNotFound)
		return
	}
	detail := templates.ItemDetail{
		ID:          item.ID,
		Serial:      item.Serial,
		Product:     item.ProductName,
		Status:      formatItemStatus(item.Status, loc),
		StatusTone:  itemStatusTone(item.Status),
		UpdatedDate: formatDateTime(item.UpdatedAt),
	}
	transitions := transitionOptions(item.Status, loc)
	htmx.RenderPage(w, r,
		templates.ItemDetailContent(pageCtx, detail, transitions, notice),
		templates.ItemDetailPage(pageCtx, pageTitle(loc, "title.inventory"), detail, transitions, notice),
		htmxPageTitle(loc, "title.inventory"))
}

func transitionOptions(status string, loc *message.Printer) []templates.SelectOption {
	next := itemTransitions(status)
	options := make([]templates.SelectOption, 0, len(next))
	for _, target := range next {
		options = append(options, templates.SelectOption{
			Value: target,
			Label: formatItemStatus(target, loc),
		})
	}
	return options
}

// handleItemTransition moves an item through its status lifecycle. The
// core API enforces the same transition table and rejects anything
// outside it.
func (h *Handler) handleItemTransition(w http.ResponseWriter, r *http.Request, itemID string) {
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
	status := strings.TrimSpace(r.FormValue("status"))
	if status == "" {
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

	if _, err := client.TransitionItem(ctx, tenant, itemID, status); err != nil {
		log.Printf("transition inventory item: %v", err)
		http.Error(w, apiErrorMessage(err, loc), http.StatusBadGateway)
		return
	}
	h.recordAudit(r, tenant, "inventory.transition", itemID+" -> "+status)
	h.renderItemDetail(w, r, itemID, loc.Sprintf("common.updated"))
}

package inventory

import (
	"net/http"
	"strings"

	sharedpath "github.com/tidemarkhq/tidemark/internal/services/admin/module/sharedpath"
	routepath "github.com/tidemarkhq/tidemark/internal/services/admin/routepath"
	sharedroute "github.com/tidemarkhq/tidemark/internal/services/shared/route"
)

// Service defines serialized-inventory route handlers consumed by this route module.
type Service interface {
	HandleInventoryPage(w http.ResponseWriter, r *http.Request)
	HandleInventoryTable(w http.ResponseWriter, r *http.Request)
	HandleItemDetail(w http.ResponseWriter, r *http.Request, itemID string)
	HandleItemTransition(w http.ResponseWriter, r *http.Request, itemID string)
}

// RegisterRoutes wires inventory routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Inventory, service.HandleInventoryPage)
	mux.HandleFunc(routepath.InventoryTable, service.HandleInventoryTable)
	mux.HandleFunc(routepath.InventoryPrefix, func(w http.ResponseWriter, r *http.Request) {
		HandleInventoryPath(w, r, service)
	})
}

// HandleInventoryPath parses inventory item subroutes and dispatches to service handlers.
func HandleInventoryPath(w http.ResponseWriter, r *http.Request, service Service) {
	if service == nil {
		http.NotFound(w, r)
		return
	}
	if sharedroute.RedirectTrailingSlash(w, r) {
		return
	}

	path := strings.TrimPrefix(r.URL.Path, routepath.InventoryPrefix)
	parts := sharedpath.SplitPathParts(path)
	if len(parts) == 2 && parts[1] == "transition" {
		service.HandleItemTransition(w, r, parts[0])
		return
	}
	if len(parts) == 1 {
		service.HandleItemDetail(w, r, parts[0])
		return
	}
	http.NotFound(w, r)
}

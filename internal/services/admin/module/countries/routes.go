package countries

import (
	"net/http"
	"strings"

	sharedpath "github.com/tidemarkhq/tidemark/internal/services/admin/module/sharedpath"
	routepath "github.com/tidemarkhq/tidemark/internal/services/admin/routepath"
	sharedroute "github.com/tidemarkhq/tidemark/internal/services/shared/route"
)

// Service defines country route handlers consumed by this route module.
type Service interface {
	HandleCountriesPage(w http.ResponseWriter, r *http.Request)
	HandleCountriesTable(w http.ResponseWriter, r *http.Request)
	HandleCountryCreate(w http.ResponseWriter, r *http.Request)
	HandleCountryUpdate(w http.ResponseWriter, r *http.Request, code string)
	HandleCountryEnable(w http.ResponseWriter, r *http.Request, code string)
	HandleCountryDisable(w http.ResponseWriter, r *http.Request, code string)
}

// RegisterRoutes wires country routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Countries, service.HandleCountriesPage)
	mux.HandleFunc(routepath.CountriesTable, service.HandleCountriesTable)
	mux.HandleFunc(routepath.CountriesCreate, service.HandleCountryCreate)
	mux.HandleFunc(routepath.CountriesPrefix, func(w http.ResponseWriter, r *http.Request) {
		HandleCountryPath(w, r, service)
	})
}

// HandleCountryPath parses country subroutes and dispatches to service handlers.
func HandleCountryPath(w http.ResponseWriter, r *http.Request, service Service) {
	if service == nil {
		http.NotFound(w, r)
		return
	}
	if sharedroute.RedirectTrailingSlash(w, r) {
		return
	}

	path := strings.TrimPrefix(r.URL.Path, routepath.CountriesPrefix)
	parts := sharedpath.SplitPathParts(path)
	if len(parts) != 2 {
		http.NotFound(w, r)
		return
	}
	switch parts[1] {
	case "update":
		service.HandleCountryUpdate(w, r, parts[0])
	case "enable":
		service.HandleCountryEnable(w, r, parts[0])
	case "disable":
		service.HandleCountryDisable(w, r, parts[0])
	default:
		http.NotFound(w, r)
	}
}

package verification

import (
	"net/http"
	"strings"

	sharedpath "github.com/tidemarkhq/tidemark/internal/services/admin/module/sharedpath"
	routepath "github.com/tidemarkhq/tidemark/internal/services/admin/routepath"
	sharedroute "github.com/tidemarkhq/tidemark/internal/services/shared/route"
)

// Service defines verification route handlers consumed by this route module.
type Service interface {
	HandleVerificationPage(w http.ResponseWriter, r *http.Request)
	HandleVerificationTable(w http.ResponseWriter, r *http.Request)
	HandleVerificationStart(w http.ResponseWriter, r *http.Request)
	HandleVerificationJobDetail(w http.ResponseWriter, r *http.Request, jobID string)
	HandleVerificationJobDownload(w http.ResponseWriter, r *http.Request, jobID string)
}

// RegisterRoutes wires verification routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Verification, service.HandleVerificationPage)
	mux.HandleFunc(routepath.VerificationTable, service.HandleVerificationTable)
	mux.HandleFunc(routepath.VerificationStart, service.HandleVerificationStart)
	mux.HandleFunc(routepath.VerificationPrefix, func(w http.ResponseWriter, r *http.Request) {
		HandleVerificationPath(w, r, service)
	})
}

// HandleVerificationPath parses verification job subroutes and dispatches to service handlers.
func HandleVerificationPath(w http.ResponseWriter, r *http.Request, service Service) {
	if service == nil {
		http.NotFound(w, r)
		return
	}
	if sharedroute.RedirectTrailingSlash(w, r) {
		return
	}

	path := strings.TrimPrefix(r.URL.Path, routepath.VerificationPrefix)
	parts := sharedpath.SplitPathParts(path)
	if len(parts) == 2 && parts[1] == "download" {
		service.HandleVerificationJobDownload(w, r, parts[0])
		return
	}
	if len(parts) == 1 {
		service.HandleVerificationJobDetail(w, r, parts[0])
		return
	}
	http.NotFound(w, r)
}

package landing

import (
	"net/http"
	"strings"

	sharedpath "github.com/tidemarkhq/tidemark/internal/services/admin/module/sharedpath"
	routepath "github.com/tidemarkhq/tidemark/internal/services/admin/routepath"
	sharedroute "github.com/tidemarkhq/tidemark/internal/services/shared/route"
)

type landingRouteDescriptor struct {
	length   int
	literals map[int]string
	handle   func(Service, http.ResponseWriter, *http.Request, []string)
}

func (d landingRouteDescriptor) matches(parts []string) bool {
	if len(parts) != d.length {
		return false
	}
	for index, value := range d.literals {
		if parts[index] != value {
			return false
		}
	}
	return true
}

var landingRouteDescriptors = []landingRouteDescriptor{
	{
		length:   3,
		literals: map[int]string{1: "blocks", 2: "table"},
		handle: func(service Service, w http.ResponseWriter, r *http.Request, parts []string) {
			service.HandleBlocksTable(w, r, parts[0])
		},
	},
	{
		length:   3,
		literals: map[int]string{1: "blocks", 2: "create"},
		handle: func(service Service, w http.ResponseWriter, r *http.Request, parts []string) {
			service.HandleBlockCreate(w, r, parts[0])
		},
	},
	{
		length:   4,
		literals: map[int]string{1: "blocks", 3: "update"},
		handle: func(service Service, w http.ResponseWriter, r *http.Request, parts []string) {
			service.HandleBlockUpdate(w, r, parts[0], parts[2])
		},
	},
	{
		length:   4,
		literals: map[int]string{1: "blocks", 3: "enable"},
		handle: func(service Service, w http.ResponseWriter, r *http.Request, parts []string) {
			service.HandleBlockEnable(w, r, parts[0], parts[2])
		},
	},
	{
		length:   4,
		literals: map[int]string{1: "blocks", 3: "disable"},
		handle: func(service Service, w http.ResponseWriter, r *http.Request, parts []string) {
			service.HandleBlockDisable(w, r, parts[0], parts[2])
		},
	},
	{
		length:   4,
		literals: map[int]string{1: "blocks", 3: "move"},
		handle: func(service Service, w http.ResponseWriter, r *http.Request, parts []string) {
			service.HandleBlockMove(w, r, parts[0], parts[2])
		},
	},
	{
		length:   4,
		literals: map[int]string{1: "blocks", 3: "delete"},
		handle: func(service Service, w http.ResponseWriter, r *http.Request, parts []string) {
			service.HandleBlockDelete(w, r, parts[0], parts[2])
		},
	},
	{
		length:   4,
		literals: map[int]string{1: "blocks", 3: "preview"},
		handle: func(service Service, w http.ResponseWriter, r *http.Request, parts []string) {
			service.HandleBlockPreview(w, r, parts[0], parts[2])
		},
	},
	{
		length: 1,
		handle: func(service Service, w http.ResponseWriter, r *http.Request, parts []string) {
			service.HandleLandingPageDetail(w, r, parts[0])
		},
	},
}

func dispatchLandingPath(service Service, w http.ResponseWriter, r *http.Request, parts []string) bool {
	bestIndex := -1
	bestSpecificity := -1
	for index, descriptor := range landingRouteDescriptors {
		if !descriptor.matches(parts) {
			continue
		}
		specificity := len(descriptor.literals)
		if specificity > bestSpecificity {
			bestSpecificity = specificity
			bestIndex = index
		}
	}
	if bestIndex < 0 {
		return false
	}
	landingRouteDescriptors[bestIndex].handle(service, w, r, parts)
	return true
}

// Service defines landing page route handlers consumed by this route module.
type Service interface {
	HandleLandingPagesPage(w http.ResponseWriter, r *http.Request)
	HandleLandingPageDetail(w http.ResponseWriter, r *http.Request, pageID string)
	HandleBlocksTable(w http.ResponseWriter, r *http.Request, pageID string)
	HandleBlockCreate(w http.ResponseWriter, r *http.Request, pageID string)
	HandleBlockUpdate(w http.ResponseWriter, r *http.Request, pageID string, blockID string)
	HandleBlockEnable(w http.ResponseWriter, r *http.Request, pageID string, blockID string)
	HandleBlockDisable(w http.ResponseWriter, r *http.Request, pageID string, blockID string)
	HandleBlockMove(w http.ResponseWriter, r *http.Request, pageID string, blockID string)
	HandleBlockDelete(w http.ResponseWriter, r *http.Request, pageID string, blockID string)
	HandleBlockPreview(w http.ResponseWriter, r *http.Request, pageID string, blockID string)
}

// RegisterRoutes wires landing page routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Landing, service.HandleLandingPagesPage)
	mux.HandleFunc(routepath.LandingPrefix, func(w http.ResponseWriter, r *http.Request) {
		HandleLandingPath(w, r, service)
	})
}

// HandleLandingPath parses landing page subroutes and dispatches to service handlers.
func HandleLandingPath(w http.ResponseWriter, r *http.Request, service Service) {
	if service == nil {
		http.NotFound(w, r)
		return
	}
	if sharedroute.RedirectTrailingSlash(w, r) {
		return
	}

	path := strings.TrimPrefix(r.URL.Path, routepath.LandingPrefix)
	parts := sharedpath.SplitPathParts(path)
	if !dispatchLandingPath(service, w, r, parts) {
		http.NotFound(w, r)
	}
}

package lists

import (
	"net/http"
	"strings"

	sharedpath "github.com/tidemarkhq/tidemark/internal/services/admin/module/sharedpath"
	routepath "github.com/tidemarkhq/tidemark/internal/services/admin/routepath"
	sharedroute "github.com/tidemarkhq/tidemark/internal/services/shared/route"
)

type listRouteDescriptor struct {
	length   int
	literals map[int]string
	handle   func(Service, http.ResponseWriter, *http.Request, []string)
}

func (d listRouteDescriptor) matches(parts []string) bool {
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

var listRouteDescriptors = []listRouteDescriptor{
	{
		length:   2,
		literals: map[int]string{1: "delete"},
		handle: func(service Service, w http.ResponseWriter, r *http.Request, parts []string) {
			service.HandleListDelete(w, r, parts[0])
		},
	},
	{
		length:   2,
		literals: map[int]string{1: "import"},
		handle: func(service Service, w http.ResponseWriter, r *http.Request, parts []string) {
			service.HandleListImport(w, r, parts[0])
		},
	},
	{
		length:   2,
		literals: map[int]string{1: "members"},
		handle: func(service Service, w http.ResponseWriter, r *http.Request, parts []string) {
			service.HandleListMembers(w, r, parts[0])
		},
	},
	{
		length:   3,
		literals: map[int]string{1: "members", 2: "table"},
		handle: func(service Service, w http.ResponseWriter, r *http.Request, parts []string) {
			service.HandleListMembersTable(w, r, parts[0])
		},
	},
	{
		length:   4,
		literals: map[int]string{1: "members", 3: "remove"},
		handle: func(service Service, w http.ResponseWriter, r *http.Request, parts []string) {
			service.HandleListMemberRemove(w, r, parts[0], parts[2])
		},
	},
	{
		length: 1,
		handle: func(service Service, w http.ResponseWriter, r *http.Request, parts []string) {
			service.HandleListDetail(w, r, parts[0])
		},
	},
}

func dispatchListPath(service Service, w http.ResponseWriter, r *http.Request, parts []string) bool {
	bestIndex := -1
	bestSpecificity := -1
	for index, descriptor := range listRouteDescriptors {
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
	listRouteDescriptors[bestIndex].handle(service, w, r, parts)
	return true
}

// Service defines list route handlers consumed by this route module.
type Service interface {
	HandleListsPage(w http.ResponseWriter, r *http.Request)
	HandleListsTable(w http.ResponseWriter, r *http.Request)
	HandleListCreate(w http.ResponseWriter, r *http.Request)
	HandleListDetail(w http.ResponseWriter, r *http.Request, listID string)
	HandleListDelete(w http.ResponseWriter, r *http.Request, listID string)
	HandleListImport(w http.ResponseWriter, r *http.Request, listID string)
	HandleListMembers(w http.ResponseWriter, r *http.Request, listID string)
	HandleListMembersTable(w http.ResponseWriter, r *http.Request, listID string)
	HandleListMemberRemove(w http.ResponseWriter, r *http.Request, listID string, contactID string)
}

// RegisterRoutes wires list routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Lists, service.HandleListsPage)
	mux.HandleFunc(routepath.ListsTable, service.HandleListsTable)
	mux.HandleFunc(routepath.ListsCreate, service.HandleListCreate)
	mux.HandleFunc(routepath.ListsPrefix, func(w http.ResponseWriter, r *http.Request) {
		HandleListPath(w, r, service)
	})
}

// HandleListPath parses list subroutes and dispatches to service handlers.
func HandleListPath(w http.ResponseWriter, r *http.Request, service Service) {
	if service == nil {
		http.NotFound(w, r)
		return
	}
	if sharedroute.RedirectTrailingSlash(w, r) {
		return
	}

	path := strings.TrimPrefix(r.URL.Path, routepath.ListsPrefix)
	parts := sharedpath.SplitPathParts(path)
	if len(parts) == 1 && strings.EqualFold(parts[0], "create") {
		http.NotFound(w, r)
		return
	}
	if !dispatchListPath(service, w, r, parts) {
		http.NotFound(w, r)
	}
}

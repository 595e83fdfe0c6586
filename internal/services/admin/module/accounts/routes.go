package accounts

import (
	"net/http"
	"strings"

	sharedpath "github.com/tidemarkhq/tidemark/internal/services/admin/module/sharedpath"
	routepath "github.com/tidemarkhq/tidemark/internal/services/admin/routepath"
	sharedroute "github.com/tidemarkhq/tidemark/internal/services/shared/route"
)

type accountRouteDescriptor struct {
	length   int
	literals map[int]string
	handle   func(Service, http.ResponseWriter, *http.Request, []string)
}

func (d accountRouteDescriptor) matches(parts []string) bool {
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

var accountRouteDescriptors = []accountRouteDescriptor{
	{
		length:   2,
		literals: map[int]string{1: "tasks"},
		handle: func(service Service, w http.ResponseWriter, r *http.Request, parts []string) {
			service.HandleAccountTasks(w, r, parts[0])
		},
	},
	{
		length:   3,
		literals: map[int]string{1: "tasks", 2: "table"},
		handle: func(service Service, w http.ResponseWriter, r *http.Request, parts []string) {
			service.HandleAccountTasksTable(w, r, parts[0])
		},
	},
	{
		length:   4,
		literals: map[int]string{1: "tasks", 3: "done"},
		handle: func(service Service, w http.ResponseWriter, r *http.Request, parts []string) {
			service.HandleAccountTaskDone(w, r, parts[0], parts[2])
		},
	},
	{
		length: 1,
		handle: func(service Service, w http.ResponseWriter, r *http.Request, parts []string) {
			service.HandleAccountDetail(w, r, parts[0])
		},
	},
}

func dispatchAccountPath(service Service, w http.ResponseWriter, r *http.Request, parts []string) bool {
	bestIndex := -1
	bestSpecificity := -1
	for index, descriptor := range accountRouteDescriptors {
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
	accountRouteDescriptors[bestIndex].handle(service, w, r, parts)
	return true
}

// Service defines customer account route handlers consumed by this route module.
type Service interface {
	HandleAccountsPage(w http.ResponseWriter, r *http.Request)
	HandleAccountsTable(w http.ResponseWriter, r *http.Request)
	HandleAccountDetail(w http.ResponseWriter, r *http.Request, accountID string)
	HandleAccountTasks(w http.ResponseWriter, r *http.Request, accountID string)
	HandleAccountTasksTable(w http.ResponseWriter, r *http.Request, accountID string)
	HandleAccountTaskDone(w http.ResponseWriter, r *http.Request, accountID string, taskID string)
}

// RegisterRoutes wires account routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Accounts, service.HandleAccountsPage)
	mux.HandleFunc(routepath.AccountsTable, service.HandleAccountsTable)
	mux.HandleFunc(routepath.AccountsPrefix, func(w http.ResponseWriter, r *http.Request) {
		HandleAccountPath(w, r, service)
	})
}

// HandleAccountPath parses account subroutes and dispatches to service handlers.
func HandleAccountPath(w http.ResponseWriter, r *http.Request, service Service) {
	if service == nil {
		http.NotFound(w, r)
		return
	}
	if sharedroute.RedirectTrailingSlash(w, r) {
		return
	}

	path := strings.TrimPrefix(r.URL.Path, routepath.AccountsPrefix)
	parts := sharedpath.SplitPathParts(path)
	if !dispatchAccountPath(service, w, r, parts) {
		http.NotFound(w, r)
	}
}

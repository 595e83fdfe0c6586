package campaigns

import (
	"net/http"
	"strings"

	sharedpath "github.com/tidemarkhq/tidemark/internal/services/admin/module/sharedpath"
	routepath "github.com/tidemarkhq/tidemark/internal/services/admin/routepath"
	sharedroute "github.com/tidemarkhq/tidemark/internal/services/shared/route"
)

type campaignRouteDescriptor struct {
	length   int
	literals map[int]string
	handle   func(Service, http.ResponseWriter, *http.Request, []string)
}

func (d campaignRouteDescriptor) matches(parts []string) bool {
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

var campaignRouteDescriptors = []campaignRouteDescriptor{
	{
		length:   2,
		literals: map[int]string{1: "update"},
		handle: func(service Service, w http.ResponseWriter, r *http.Request, parts []string) {
			service.HandleCampaignUpdate(w, r, parts[0])
		},
	},
	{
		length:   2,
		literals: map[int]string{1: "send"},
		handle: func(service Service, w http.ResponseWriter, r *http.Request, parts []string) {
			service.HandleCampaignSend(w, r, parts[0])
		},
	},
	{
		length:   2,
		literals: map[int]string{1: "cancel"},
		handle: func(service Service, w http.ResponseWriter, r *http.Request, parts []string) {
			service.HandleCampaignCancel(w, r, parts[0])
		},
	},
	{
		length:   3,
		literals: map[int]string{1: "lists", 2: "attach"},
		handle: func(service Service, w http.ResponseWriter, r *http.Request, parts []string) {
			service.HandleCampaignListAttach(w, r, parts[0])
		},
	},
	{
		length:   4,
		literals: map[int]string{1: "lists", 3: "detach"},
		handle: func(service Service, w http.ResponseWriter, r *http.Request, parts []string) {
			service.HandleCampaignListDetach(w, r, parts[0], parts[2])
		},
	},
	{
		length: 1,
		handle: func(service Service, w http.ResponseWriter, r *http.Request, parts []string) {
			service.HandleCampaignDetail(w, r, parts[0])
		},
	},
}

func dispatchCampaignPath(service Service, w http.ResponseWriter, r *http.Request, parts []string) bool {
	bestIndex := -1
	bestSpecificity := -1
	for index, descriptor := range campaignRouteDescriptors {
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
	campaignRouteDescriptors[bestIndex].handle(service, w, r, parts)
	return true
}

// Service defines campaign route handlers consumed by this route module.
type Service interface {
	HandleCampaignsPage(w http.ResponseWriter, r *http.Request)
	HandleCampaignsTable(w http.ResponseWriter, r *http.Request)
	HandleCampaignCreate(w http.ResponseWriter, r *http.Request)
	HandleCampaignDetail(w http.ResponseWriter, r *http.Request, campaignID string)
	HandleCampaignUpdate(w http.ResponseWriter, r *http.Request, campaignID string)
	HandleCampaignSend(w http.ResponseWriter, r *http.Request, campaignID string)
	HandleCampaignCancel(w http.ResponseWriter, r *http.Request, campaignID string)
	HandleCampaignListAttach(w http.ResponseWriter, r *http.Request, campaignID string)
	HandleCampaignListDetach(w http.ResponseWriter, r *http.Request, campaignID string, listID string)
}

// RegisterRoutes wires campaign routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Campaigns, service.HandleCampaignsPage)
	mux.HandleFunc(routepath.CampaignsTable, service.HandleCampaignsTable)
	mux.HandleFunc(routepath.CampaignsCreate, service.HandleCampaignCreate)
	mux.HandleFunc(routepath.CampaignsPrefix, func(w http.ResponseWriter, r *http.Request) {
		HandleCampaignPath(w, r, service)
	})
}

// HandleCampaignPath parses campaign subroutes and dispatches to service handlers.
func HandleCampaignPath(w http.ResponseWriter, r *http.Request, service Service) {
	if service == nil {
		http.NotFound(w, r)
		return
	}
	if sharedroute.RedirectTrailingSlash(w, r) {
		return
	}

	path := strings.TrimPrefix(r.URL.Path, routepath.CampaignsPrefix)
	parts := sharedpath.SplitPathParts(path)
	if len(parts) == 1 && strings.EqualFold(parts[0], "create") {
		http.NotFound(w, r)
		return
	}
	if !dispatchCampaignPath(service, w, r, parts) {
		http.NotFound(w, r)
	}
}

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

const listsTableID = "lists-table"
const listMembersTableID = "list-members"

// handleListsPage renders the marketing lists index.
func (h *Handler) handleListsPage(w http.ResponseWriter, r *http.Request) {
	loc, tenant, pageCtx := h.requestScope(w, r)
	table := h.loadListsTable(r.Context(), tenant, r, loc)
	query := searchQuery(r)
	notice := noticeParam(r)
	htmx.RenderPage(w, r,
		templates.ListsContent(pageCtx, table, query, notice),
		templates.ListsPage(pageCtx, pageTitle(loc, "title.lists"), table, query, notice),
		htmxPageTitle(loc, "title.lists"))
}

// handleListsTable returns one page of list rows for HTMX swaps.
func (h *Handler) handleListsTable(w http.ResponseWriter, r *http.Request) {
	loc, tenant, _ := h.requestScope(w, r)
	table := h.loadListsTable(r.Context(), tenant, r, loc)
	templ.Handler(templates.Table(table)).ServeHTTP(w, r)
}

func (h *Handler) loadListsTable(ctx context.Context, tenant string, r *http.Request, loc *message.Printer) templates.TableView {
	columns := []string{
		loc.Sprintf("common.name"),
		loc.Sprintf("lists.type"),
		loc.Sprintf("lists.members"),
		loc.Sprintf("common.created"),
	}
	client := h.coreAPI()
	if client == nil {
		return unavailableTable(listsTableID, routepath.ListsTable, columns, loc.Sprintf("error.service_unavailable"))
	}

	ctx, cancel := context.WithTimeout(ctx, timeouts.APIRequest)
	defer cancel()

	response, err := client.ListLists(ctx, tenant, coreapi.ListListsRequest{
		PageSize:  defaultPageSize,
		PageToken: pageToken(r),
		Query:     searchQuery(r),
	})
	if err != nil {
		log.Printf("list lists: %v", err)
		return unavailableTable(listsTableID, routepath.ListsTable, columns, apiErrorMessage(err, loc))
	}

	rows := make([]templates.TableRow, 0, len(response.Lists))
	for _, list := range response.Lists {
		rows = append(rows, templates.TableRow{
			Primary:   list.Name,
			DetailURL: routepath.List(list.ID),
			Cells: []string{
				formatListType(list.Type, loc),
				formatCount(list.MemberCount),
				formatDate(list.CreatedAt),
			},
		})
	}
	return templates.TableView{
		ID:          listsTableID,
		Columns:     columns,
		Rows:        rows,
		Message:     loc.Sprintf("common.empty"),
		NextToken:   response.NextPageToken,
		HTMXBaseURL: routepath.ListsTable,
	}
}

// handleListCreate creates a list from the new-list form.
func (h *Handler) handleListCreate(w http.ResponseWriter, r *http.Request) {
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
	name := strings.TrimSpace(r.FormValue("name"))
	listType := strings.TrimSpace(r.FormValue("list_type"))
	if name == "" || listType == "" {
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

	request := coreapi.CreateListRequest{
		Name:        name,
		Type:        listType,
		Description: strings.TrimSpace(r.FormValue("description")),
		SegmentRule: strings.TrimSpace(r.FormValue("segment_rule")),
	}
	if listType == coreapi.ListTypeStatic {
		request.ContactIDs = splitContactIDs(r.FormValue("initial_contacts"))
	}
	created, err := client.CreateList(ctx, tenant, request)
	if err != nil {
		log.Printf("create list: %v", err)
		http.Error(w, apiErrorMessage(err, loc), http.StatusBadGateway)
		return
	}
	h.recordAudit(r, tenant, "list.create", created.Name)
	redirectTo(w, r, routepath.List(created.ID))
}

// splitContactIDs parses a comma or whitespace separated ID field.
func splitContactIDs(value string) []string {
	fields := strings.Fields(strings.ReplaceAll(value, ",", " "))
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// handleListDetail renders the list detail page with its membership.
func (h *Handler) handleListDetail(w http.ResponseWriter, r *http.Request, listID string) {
	h.renderListDetail(w, r, listID, "")
}

func (h *Handler) renderListDetail(w http.ResponseWriter, r *http.Request, listID string, notice string) {
	loc, tenant, pageCtx := h.requestScope(w, r)
	detail, errMessage := h.loadListDetail(r.Context(), tenant, listID, loc)
	if errMessage != "" {
		http.Error(w, errMessage, http.StatusNotFound)
		return
	}
	members := h.loadMembersTable(r.Context(), tenant, listID, detail.Static, r, loc)
	htmx.RenderPage(w, r,
		templates.ListDetailContent(pageCtx, detail, members, notice),
		templates.ListDetailPage(pageCtx, pageTitle(loc, "title.list_detail"), detail, members, notice),
		htmxPageTitle(loc, "title.list_detail"))
}

func (h *Handler) loadListDetail(ctx context.Context, tenant string, listID string, loc *message.Printer) (templates.ListDetail, string) {
	client := h.coreAPI()
	if client == nil {
		return templates.ListDetail{}, loc.Sprintf("error.service_unavailable")
	}

	ctx, cancel := context.WithTimeout(ctx, timeouts.APIRequest)
	defer cancel()

	list, err := client.GetList(ctx, tenant, listID)
	if err != nil {
		log.Printf("get list: %v", err)
		return templates.ListDetail{}, apiErrorMessage(err, loc)
	}
	return templates.ListDetail{
		ID:          list.ID,
		Name:        list.Name,
		Type:        formatListType(list.Type, loc),
		Description: list.Description,
		SegmentRule: list.SegmentRule,
		MemberCount: formatCount(list.MemberCount),
		CreatedDate: formatDate(list.CreatedAt),
		Static:      list.Type == coreapi.ListTypeStatic,
	}, ""
}

func (h *Handler) loadMembersTable(ctx context.Context, tenant string, listID string, static bool, r *http.Request, loc *message.Printer) templates.TableView {
	columns := []string{
		loc.Sprintf("lists.email"),
		loc.Sprintf("common.name"),
		loc.Sprintf("common.status"),
	}
	client := h.coreAPI()
	if client == nil {
		return unavailableTable(listMembersTableID, routepath.ListMembersTable(listID), columns, loc.Sprintf("error.service_unavailable"))
	}

	ctx, cancel := context.WithTimeout(ctx, timeouts.APIRequest)
	defer cancel()

	response, err := client.ListMembers(ctx, tenant, listID, coreapi.ListMembersRequest{
		PageSize:  membersPageSize,
		PageToken: pageToken(r),
	})
	if err != nil {
		log.Printf("list members: %v", err)
		return unavailableTable(listMembersTableID, routepath.ListMembersTable(listID), columns, apiErrorMessage(err, loc))
	}

	rows := make([]templates.TableRow, 0, len(response.Members))
	for _, member := range response.Members {
		row := templates.TableRow{
			Primary:   member.Email,
			DetailURL: routepath.Contact(member.ContactID),
			Cells: []string{
				contactDisplayName(member.FirstName, member.LastName),
				member.Status,
			},
		}
		if static {
			row.Actions = []templates.RowAction{{
				Label:   loc.Sprintf("lists.remove_member"),
				URL:     routepath.ListMemberRemove(listID, member.ContactID),
				Confirm: loc.Sprintf("lists.delete_confirm"),
			}}
		}
		rows = append(rows, row)
	}
	return templates.TableView{
		ID:          listMembersTableID,
		Columns:     columns,
		Rows:        rows,
		Message:     loc.Sprintf("common.empty"),
		NextToken:   response.NextPageToken,
		HTMXBaseURL: routepath.ListMembersTable(listID),
	}
}

// handleListDelete removes a list and returns to the index.
func (h *Handler) handleListDelete(w http.ResponseWriter, r *http.Request, listID string) {
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

	if err := client.DeleteList(ctx, tenant, listID); err != nil {
		log.Printf("delete list: %v", err)
		http.Error(w, apiErrorMessage(err, loc), http.StatusBadGateway)
		return
	}
	h.recordAudit(r, tenant, "list.delete", listID)
	redirectTo(w, r, routepath.Lists)
}

// handleListImport streams an uploaded CSV to the core API importer.
func (h *Handler) handleListImport(w http.ResponseWriter, r *http.Request, listID string) {
	if !postOnly(w, r) {
		return
	}
	loc, tenant, _ := h.requestScope(w, r)
	if !requireSameOrigin(w, r, loc) {
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, loc.Sprintf("error.invalid_request"), http.StatusBadRequest)
		return
	}
	defer file.Close()
	if header.Size == 0 {
		http.Error(w, loc.Sprintf("lists.import_empty"), http.StatusBadRequest)
		return
	}

	client := h.coreAPI()
	if client == nil {
		http.Error(w, loc.Sprintf("error.service_unavailable"), http.StatusServiceUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.APIUpload)
	defer cancel()

	result, err := client.ImportListMembers(ctx, tenant, listID, header.Filename, file)
	if err != nil {
		log.Printf("import list members: %v", err)
		http.Error(w, apiErrorMessage(err, loc), http.StatusBadGateway)
		return
	}
	h.recordAudit(r, tenant, "list.import", listID)
	h.renderListDetail(w, r, listID, loc.Sprintf("lists.import_result", result.Imported, result.Skipped))
}

// handleListMembers adds a member on POST; plain GETs land on the detail page.
func (h *Handler) handleListMembers(w http.ResponseWriter, r *http.Request, listID string) {
	if r.Method != http.MethodPost {
		redirectTo(w, r, routepath.List(listID))
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
	contactID := strings.TrimSpace(r.FormValue("contact_id"))
	if contactID == "" {
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

	if err := client.AddListMember(ctx, tenant, listID, contactID); err != nil {
		log.Printf("add list member: %v", err)
		http.Error(w, apiErrorMessage(err, loc), http.StatusBadGateway)
		return
	}
	h.recordAudit(r, tenant, "list.member_add", contactID)
	h.handleListMembersTable(w, r, listID)
}

// handleListMembersTable returns one page of member rows for HTMX swaps.
func (h *Handler) handleListMembersTable(w http.ResponseWriter, r *http.Request, listID string) {
	loc, tenant, _ := h.requestScope(w, r)
	detail, errMessage := h.loadListDetail(r.Context(), tenant, listID, loc)
	static := errMessage == "" && detail.Static
	table := h.loadMembersTable(r.Context(), tenant, listID, static, r, loc)
	templ.Handler(templates.Table(table)).ServeHTTP(w, r)
}

// handleListMemberRemove removes a member and re-renders the member table.
func (h *Handler) handleListMemberRemove(w http.ResponseWriter, r *http.Request, listID string, contactID string) {
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

	if err := client.RemoveListMember(ctx, tenant, listID, contactID); err != nil {
		log.Printf("remove list member: %v", err)
		http.Error(w, apiErrorMessage(err, loc), http.StatusBadGateway)
		return
	}
	h.recordAudit(r, tenant, "list.member_remove", contactID)
	h.handleListMembersTable(w, r, listID)
}

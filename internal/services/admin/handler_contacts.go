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

const contactsTableID = "contacts-table"
const membershipsTableID = "contact-memberships"

// handleContactsPage renders the contacts index with prefix lookup.
func (h *Handler) handleContactsPage(w http.ResponseWriter, r *http.Request) {
	loc, tenant, pageCtx := h.requestScope(w, r)
	table := h.loadContactsTable(r.Context(), tenant, r, loc)
	htmx.RenderPage(w, r,
		templates.ContactsContent(pageCtx, table),
		templates.ContactsPage(pageCtx, pageTitle(loc, "title.contacts"), table),
		htmxPageTitle(loc, "title.contacts"))
}

// handleContactsTable returns one page of contact rows for HTMX swaps.
func (h *Handler) handleContactsTable(w http.ResponseWriter, r *http.Request) {
	loc, tenant, _ := h.requestScope(w, r)
	table := h.loadContactsTable(r.Context(), tenant, r, loc)
	templ.Handler(templates.Table(table)).ServeHTTP(w, r)
}

// handleContactLookup searches contacts by email prefix and renders the
// result rows into the contacts table.
func (h *Handler) handleContactLookup(w http.ResponseWriter, r *http.Request) {
	loc, tenant, _ := h.requestScope(w, r)
	columns := contactColumns(loc)
	prefix := strings.TrimSpace(r.URL.Query().Get("email_prefix"))
	if prefix == "" {
		h.handleContactsTable(w, r)
		return
	}
	client := h.coreAPI()
	if client == nil {
		templ.Handler(templates.Table(unavailableTable(contactsTableID, routepath.ContactsTable, columns, loc.Sprintf("error.service_unavailable")))).ServeHTTP(w, r)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.APIRequest)
	defer cancel()

	contacts, err := client.LookupContacts(ctx, tenant, prefix)
	if err != nil {
		log.Printf("lookup contacts: %v", err)
		templ.Handler(templates.Table(unavailableTable(contactsTableID, routepath.ContactsTable, columns, apiErrorMessage(err, loc)))).ServeHTTP(w, r)
		return
	}
	table := templates.TableView{
		ID:      contactsTableID,
		Columns: columns,
		Rows:    contactRows(contacts),
		Message: loc.Sprintf("contacts.no_results"),
	}
	templ.Handler(templates.Table(table)).ServeHTTP(w, r)
}

func contactColumns(loc *message.Printer) []string {
	return []string{
		loc.Sprintf("contacts.email"),
		loc.Sprintf("common.name"),
		loc.Sprintf("common.status"),
		loc.Sprintf("countries.code"),
	}
}

func contactRows(contacts []coreapi.Contact) []templates.TableRow {
	rows := make([]templates.TableRow, 0, len(contacts))
	for _, contact := range contacts {
		rows = append(rows, templates.TableRow{
			Primary:   contact.Email,
			DetailURL: routepath.Contact(contact.ID),
			Cells: []string{
				contactDisplayName(contact.FirstName, contact.LastName),
				contact.Status,
				contact.Country,
			},
		})
	}
	return rows
}

func (h *Handler) loadContactsTable(ctx context.Context, tenant string, r *http.Request, loc *message.Printer) templates.TableView {
	columns := contactColumns(loc)
	client := h.coreAPI()
	if client == nil {
		return unavailableTable(contactsTableID, routepath.ContactsTable, columns, loc.Sprintf("error.service_unavailable"))
	}

	ctx, cancel := context.WithTimeout(ctx, timeouts.APIRequest)
	defer cancel()

	response, err := client.ListContacts(ctx, tenant, coreapi.ListContactsRequest{
		PageSize:  defaultPageSize,
		PageToken: pageToken(r),
		Query:     searchQuery(r),
	})
	if err != nil {
		log.Printf("list contacts: %v", err)
		return unavailableTable(contactsTableID, routepath.ContactsTable, columns, apiErrorMessage(err, loc))
	}
	return templates.TableView{
		ID:          contactsTableID,
		Columns:     columns,
		Rows:        contactRows(response.Contacts),
		Message:     loc.Sprintf("common.empty"),
		NextToken:   response.NextPageToken,
		HTMXBaseURL: routepath.ContactsTable,
	}
}

// handleContactDetail renders one contact with its list memberships.
func (h *Handler) handleContactDetail(w http.ResponseWriter, r *http.Request, contactID string) {
	loc, tenant, pageCtx := h.requestScope(w, r)
	client := h.coreAPI()
	if client == nil {
		http.Error(w, loc.Sprintf("error.service_unavailable"), http.StatusServiceUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.APIRequest)
	defer cancel()

	contact, err := client.GetContact(ctx, tenant, contactID)
	if err != nil {
		log.Printf("get contact: %v", err)
		http.Error(w, apiErrorMessage(err, loc), http.StatusNotFound)
		return
	}
	detail := templates.ContactDetail{
		ID:          contact.ID,
		Email:       contact.Email,
		Name:        contactDisplayName(contact.FirstName, contact.LastName),
		Country:     contact.Country,
		CreatedDate: formatDate(contact.CreatedAt),
	}
	memberships := h.loadMembershipsTable(ctx, tenant, contactID, loc)
	htmx.RenderPage(w, r,
		templates.ContactDetailContent(pageCtx, detail, memberships),
		templates.ContactDetailPage(pageCtx, pageTitle(loc, "title.contacts"), detail, memberships),
		htmxPageTitle(loc, "title.contacts"))
}

// handleContactMemberships returns the membership rows for HTMX swaps.
func (h *Handler) handleContactMemberships(w http.ResponseWriter, r *http.Request, contactID string) {
	loc, tenant, _ := h.requestScope(w, r)
	table := h.loadMembershipsTable(r.Context(), tenant, contactID, loc)
	templ.Handler(templates.Table(table)).ServeHTTP(w, r)
}

func (h *Handler) loadMembershipsTable(ctx context.Context, tenant string, contactID string, loc *message.Printer) templates.TableView {
	columns := []string{
		loc.Sprintf("nav.lists"),
		loc.Sprintf("common.created"),
	}
	client := h.coreAPI()
	if client == nil {
		return unavailableTable(membershipsTableID, routepath.ContactMemberships(contactID), columns, loc.Sprintf("error.service_unavailable"))
	}

	ctx, cancel := context.WithTimeout(ctx, timeouts.APIRequest)
	defer cancel()

	memberships, err := client.ListContactMemberships(ctx, tenant, contactID)
	if err != nil {
		log.Printf("list contact memberships: %v", err)
		return unavailableTable(membershipsTableID, routepath.ContactMemberships(contactID), columns, apiErrorMessage(err, loc))
	}
	rows := make([]templates.TableRow, 0, len(memberships))
	for _, membership := range memberships {
		rows = append(rows, templates.TableRow{
			Primary:   membership.ListName,
			DetailURL: routepath.List(membership.ListID),
			Cells:     []string{formatDate(membership.AddedAt)},
		})
	}
	return templates.TableView{
		ID:      membershipsTableID,
		Columns: columns,
		Rows:    rows,
		Message: loc.Sprintf("common.empty"),
	}
}

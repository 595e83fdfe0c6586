package admin

import (
	"net/http"

	"github.com/tidemarkhq/tidemark/internal/services/admin/module/accounts"
	"github.com/tidemarkhq/tidemark/internal/services/admin/module/campaigns"
	"github.com/tidemarkhq/tidemark/internal/services/admin/module/contacts"
	"github.com/tidemarkhq/tidemark/internal/services/admin/module/countries"
	"github.com/tidemarkhq/tidemark/internal/services/admin/module/dashboard"
	"github.com/tidemarkhq/tidemark/internal/services/admin/module/inventory"
	"github.com/tidemarkhq/tidemark/internal/services/admin/module/landing"
	"github.com/tidemarkhq/tidemark/internal/services/admin/module/lists"
	"github.com/tidemarkhq/tidemark/internal/services/admin/module/verification"
)

// The handler satisfies every module's Service interface.
var (
	_ dashboard.Service    = (*Handler)(nil)
	_ lists.Service        = (*Handler)(nil)
	_ campaigns.Service    = (*Handler)(nil)
	_ contacts.Service     = (*Handler)(nil)
	_ verification.Service = (*Handler)(nil)
	_ landing.Service      = (*Handler)(nil)
	_ countries.Service    = (*Handler)(nil)
	_ inventory.Service    = (*Handler)(nil)
	_ accounts.Service     = (*Handler)(nil)
)

// Dashboard.

func (h *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	h.handleDashboard(w, r)
}

func (h *Handler) HandleDashboardContent(w http.ResponseWriter, r *http.Request) {
	h.handleDashboardContent(w, r)
}

// Marketing lists.

func (h *Handler) HandleListsPage(w http.ResponseWriter, r *http.Request) {
	h.handleListsPage(w, r)
}

func (h *Handler) HandleListsTable(w http.ResponseWriter, r *http.Request) {
	h.handleListsTable(w, r)
}

func (h *Handler) HandleListCreate(w http.ResponseWriter, r *http.Request) {
	h.handleListCreate(w, r)
}

func (h *Handler) HandleListDetail(w http.ResponseWriter, r *http.Request, listID string) {
	h.handleListDetail(w, r, listID)
}

func (h *Handler) HandleListDelete(w http.ResponseWriter, r *http.Request, listID string) {
	h.handleListDelete(w, r, listID)
}

func (h *Handler) HandleListImport(w http.ResponseWriter, r *http.Request, listID string) {
	h.handleListImport(w, r, listID)
}

func (h *Handler) HandleListMembers(w http.ResponseWriter, r *http.Request, listID string) {
	h.handleListMembers(w, r, listID)
}

func (h *Handler) HandleListMembersTable(w http.ResponseWriter, r *http.Request, listID string) {
	h.handleListMembersTable(w, r, listID)
}

func (h *Handler) HandleListMemberRemove(w http.ResponseWriter, r *http.Request, listID string, contactID string) {
	h.handleListMemberRemove(w, r, listID, contactID)
}

// Campaigns.

func (h *Handler) HandleCampaignsPage(w http.ResponseWriter, r *http.Request) {
	h.handleCampaignsPage(w, r)
}

func (h *Handler) HandleCampaignsTable(w http.ResponseWriter, r *http.Request) {
	h.handleCampaignsTable(w, r)
}

func (h *Handler) HandleCampaignCreate(w http.ResponseWriter, r *http.Request) {
	h.handleCampaignCreate(w, r)
}

func (h *Handler) HandleCampaignDetail(w http.ResponseWriter, r *http.Request, campaignID string) {
	h.handleCampaignDetail(w, r, campaignID)
}

func (h *Handler) HandleCampaignUpdate(w http.ResponseWriter, r *http.Request, campaignID string) {
	h.handleCampaignUpdate(w, r, campaignID)
}

func (h *Handler) HandleCampaignSend(w http.ResponseWriter, r *http.Request, campaignID string) {
	h.handleCampaignSend(w, r, campaignID)
}

func (h *Handler) HandleCampaignCancel(w http.ResponseWriter, r *http.Request, campaignID string) {
	h.handleCampaignCancel(w, r, campaignID)
}

func (h *Handler) HandleCampaignListAttach(w http.ResponseWriter, r *http.Request, campaignID string) {
	h.handleCampaignListAttach(w, r, campaignID)
}

func (h *Handler) HandleCampaignListDetach(w http.ResponseWriter, r *http.Request, campaignID string, listID string) {
	h.handleCampaignListDetach(w, r, campaignID, listID)
}

// Contacts.

func (h *Handler) HandleContactsPage(w http.ResponseWriter, r *http.Request) {
	h.handleContactsPage(w, r)
}

func (h *Handler) HandleContactsTable(w http.ResponseWriter, r *http.Request) {
	h.handleContactsTable(w, r)
}

func (h *Handler) HandleContactLookup(w http.ResponseWriter, r *http.Request) {
	h.handleContactLookup(w, r)
}

func (h *Handler) HandleContactDetail(w http.ResponseWriter, r *http.Request, contactID string) {
	h.handleContactDetail(w, r, contactID)
}

func (h *Handler) HandleContactMemberships(w http.ResponseWriter, r *http.Request, contactID string) {
	h.handleContactMemberships(w, r, contactID)
}

// Email verification.

func (h *Handler) HandleVerificationPage(w http.ResponseWriter, r *http.Request) {
	h.handleVerificationPage(w, r)
}

func (h *Handler) HandleVerificationTable(w http.ResponseWriter, r *http.Request) {
	h.handleVerificationTable(w, r)
}

func (h *Handler) HandleVerificationStart(w http.ResponseWriter, r *http.Request) {
	h.handleVerificationStart(w, r)
}

func (h *Handler) HandleVerificationJobDetail(w http.ResponseWriter, r *http.Request, jobID string) {
	h.handleVerificationJobDetail(w, r, jobID)
}

func (h *Handler) HandleVerificationJobDownload(w http.ResponseWriter, r *http.Request, jobID string) {
	h.handleVerificationJobDownload(w, r, jobID)
}

// Landing pages.

func (h *Handler) HandleLandingPagesPage(w http.ResponseWriter, r *http.Request) {
	h.handleLandingPagesPage(w, r)
}

func (h *Handler) HandleLandingPageDetail(w http.ResponseWriter, r *http.Request, pageID string) {
	h.handleLandingPageDetail(w, r, pageID)
}

func (h *Handler) HandleBlocksTable(w http.ResponseWriter, r *http.Request, pageID string) {
	h.handleBlocksTable(w, r, pageID)
}

func (h *Handler) HandleBlockCreate(w http.ResponseWriter, r *http.Request, pageID string) {
	h.handleBlockCreate(w, r, pageID)
}

func (h *Handler) HandleBlockUpdate(w http.ResponseWriter, r *http.Request, pageID string, blockID string) {
	h.handleBlockUpdate(w, r, pageID, blockID)
}

func (h *Handler) HandleBlockEnable(w http.ResponseWriter, r *http.Request, pageID string, blockID string) {
	h.handleBlockEnable(w, r, pageID, blockID)
}

func (h *Handler) HandleBlockDisable(w http.ResponseWriter, r *http.Request, pageID string, blockID string) {
	h.handleBlockDisable(w, r, pageID, blockID)
}

func (h *Handler) HandleBlockMove(w http.ResponseWriter, r *http.Request, pageID string, blockID string) {
	h.handleBlockMove(w, r, pageID, blockID)
}

func (h *Handler) HandleBlockDelete(w http.ResponseWriter, r *http.Request, pageID string, blockID string) {
	h.handleBlockDelete(w, r, pageID, blockID)
}

func (h *Handler) HandleBlockPreview(w http.ResponseWriter, r *http.Request, pageID string, blockID string) {
	h.handleBlockPreview(w, r, pageID, blockID)
}

// Countries.

func (h *Handler) HandleCountriesPage(w http.ResponseWriter, r *http.Request) {
	h.handleCountriesPage(w, r)
}

func (h *Handler) HandleCountriesTable(w http.ResponseWriter, r *http.Request) {
	h.handleCountriesTable(w, r)
}

func (h *Handler) HandleCountryCreate(w http.ResponseWriter, r *http.Request) {
	h.handleCountryCreate(w, r)
}

func (h *Handler) HandleCountryUpdate(w http.ResponseWriter, r *http.Request, code string) {
	h.handleCountryUpdate(w, r, code)
}

func (h *Handler) HandleCountryEnable(w http.ResponseWriter, r *http.Request, code string) {
	h.handleCountryEnable(w, r, code)
}

func (h *Handler) HandleCountryDisable(w http.ResponseWriter, r *http.Request, code string) {
	h.handleCountryDisable(w, r, code)
}

// Serialized inventory.

func (h *Handler) HandleInventoryPage(w http.ResponseWriter, r *http.Request) {
	h.handleInventoryPage(w, r)
}

func (h *Handler) HandleInventoryTable(w http.ResponseWriter, r *http.Request) {
	h.handleInventoryTable(w, r)
}

func (h *Handler) HandleItemDetail(w http.ResponseWriter, r *http.Request, itemID string) {
	h.handleItemDetail(w, r, itemID)
}

func (h *Handler) HandleItemTransition(w http.ResponseWriter, r *http.Request, itemID string) {
	h.handleItemTransition(w, r, itemID)
}

// Customer accounts.

func (h *Handler) HandleAccountsPage(w http.ResponseWriter, r *http.Request) {
	h.handleAccountsPage(w, r)
}

func (h *Handler) HandleAccountsTable(w http.ResponseWriter, r *http.Request) {
	h.handleAccountsTable(w, r)
}

func (h *Handler) HandleAccountDetail(w http.ResponseWriter, r *http.Request, accountID string) {
	h.handleAccountDetail(w, r, accountID)
}

func (h *Handler) HandleAccountTasks(w http.ResponseWriter, r *http.Request, accountID string) {
	h.handleAccountTasks(w, r, accountID)
}

func (h *Handler) HandleAccountTasksTable(w http.ResponseWriter, r *http.Request, accountID string) {
	h.handleAccountTasksTable(w, r, accountID)
}

func (h *Handler) HandleAccountTaskDone(w http.ResponseWriter, r *http.Request, accountID string, taskID string) {
	h.handleAccountTaskDone(w, r, accountID, taskID)
}

// Package routepath centralizes admin URL paths so handlers, templates, and
// route modules agree on one spelling.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root = "/"
)

const (
	StaticPrefix = "/static/"
)

const (
	DashboardContent = "/dashboard/content"
)

const (
	Lists       = "/lists"
	ListsTable  = "/lists/table"
	ListsCreate = "/lists/create"
	ListsPrefix = "/lists/"
)

const (
	Campaigns       = "/campaigns"
	CampaignsTable  = "/campaigns/table"
	CampaignsCreate = "/campaigns/create"
	CampaignsPrefix = "/campaigns/"
)

const (
	Contacts       = "/contacts"
	ContactsTable  = "/contacts/table"
	ContactsLookup = "/contacts/lookup"
	ContactsPrefix = "/contacts/"
)

const (
	Verification       = "/verification"
	VerificationTable  = "/verification/table"
	VerificationStart  = "/verification/start"
	VerificationPrefix = "/verification/"
)

const (
	Landing       = "/landing"
	LandingPrefix = "/landing/"
)

const (
	Countries       = "/countries"
	CountriesTable  = "/countries/table"
	CountriesCreate = "/countries/create"
	CountriesPrefix = "/countries/"
)

const (
	Inventory       = "/inventory"
	InventoryTable  = "/inventory/table"
	InventoryPrefix = "/inventory/"
)

const (
	Accounts       = "/accounts"
	AccountsTable  = "/accounts/table"
	AccountsPrefix = "/accounts/"
)

func List(listID string) string {
	return Lists + "/" + escapeSegment(listID)
}

func ListDelete(listID string) string {
	return List(listID) + "/delete"
}

func ListImport(listID string) string {
	return List(listID) + "/import"
}

func ListMembers(listID string) string {
	return List(listID) + "/members"
}

func ListMembersTable(listID string) string {
	return ListMembers(listID) + "/table"
}

func ListMemberRemove(listID string, contactID string) string {
	return ListMembers(listID) + "/" + escapeSegment(contactID) + "/remove"
}

func Campaign(campaignID string) string {
	return Campaigns + "/" + escapeSegment(campaignID)
}

func CampaignUpdate(campaignID string) string {
	return Campaign(campaignID) + "/update"
}

func CampaignListsAttach(campaignID string) string {
	return Campaign(campaignID) + "/lists/attach"
}

func CampaignListDetach(campaignID string, listID string) string {
	return Campaign(campaignID) + "/lists/" + escapeSegment(listID) + "/detach"
}

func CampaignSend(campaignID string) string {
	return Campaign(campaignID) + "/send"
}

func CampaignCancel(campaignID string) string {
	return Campaign(campaignID) + "/cancel"
}

func Contact(contactID string) string {
	return Contacts + "/" + escapeSegment(contactID)
}

func ContactMemberships(contactID string) string {
	return Contact(contactID) + "/memberships"
}

func VerificationJob(jobID string) string {
	return Verification + "/" + escapeSegment(jobID)
}

func VerificationJobDownload(jobID string) string {
	return VerificationJob(jobID) + "/download"
}

func LandingPage(pageID string) string {
	return Landing + "/" + escapeSegment(pageID)
}

func LandingBlocks(pageID string) string {
	return LandingPage(pageID) + "/blocks"
}

func LandingBlocksTable(pageID string) string {
	return LandingBlocks(pageID) + "/table"
}

func LandingBlocksCreate(pageID string) string {
	return LandingBlocks(pageID) + "/create"
}

func LandingBlock(pageID string, blockID string) string {
	return LandingBlocks(pageID) + "/" + escapeSegment(blockID)
}

func LandingBlockUpdate(pageID string, blockID string) string {
	return LandingBlock(pageID, blockID) + "/update"
}

func LandingBlockEnable(pageID string, blockID string) string {
	return LandingBlock(pageID, blockID) + "/enable"
}

func LandingBlockDisable(pageID string, blockID string) string {
	return LandingBlock(pageID, blockID) + "/disable"
}

func LandingBlockMove(pageID string, blockID string) string {
	return LandingBlock(pageID, blockID) + "/move"
}

func LandingBlockDelete(pageID string, blockID string) string {
	return LandingBlock(pageID, blockID) + "/delete"
}

func LandingBlockPreview(pageID string, blockID string) string {
	return LandingBlock(pageID, blockID) + "/preview"
}

func CountryUpdate(code string) string {
	return Countries + "/" + escapeSegment(code) + "/update"
}

func CountryEnable(code string) string {
	return Countries + "/" + escapeSegment(code) + "/enable"
}

func CountryDisable(code string) string {
	return Countries + "/" + escapeSegment(code) + "/disable"
}

func InventoryItem(itemID string) string {
	return Inventory + "/" + escapeSegment(itemID)
}

func InventoryItemTransition(itemID string) string {
	return InventoryItem(itemID) + "/transition"
}

func Account(accountID string) string {
	return Accounts + "/" + escapeSegment(accountID)
}

func AccountTasks(accountID string) string {
	return Account(accountID) + "/tasks"
}

func AccountTasksTable(accountID string) string {
	return AccountTasks(accountID) + "/table"
}

func AccountTaskDone(accountID string, taskID string) string {
	return AccountTasks(accountID) + "/" + escapeSegment(taskID) + "/done"
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}

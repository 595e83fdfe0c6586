package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Titles
	message.SetString(lang, "title.dashboard", "%s | Dashboard")
	message.SetString(lang, "title.lists", "%s | Marketing Lists")
	message.SetString(lang, "title.list_detail", "%s | List")
	message.SetString(lang, "title.campaigns", "%s | Campaigns")
	message.SetString(lang, "title.campaign_detail", "%s | Campaign")
	message.SetString(lang, "title.contacts", "%s | Contacts")
	message.SetString(lang, "title.verification", "%s | Email Verification")
	message.SetString(lang, "title.landing", "%s | Landing Pages")
	message.SetString(lang, "title.countries", "%s | Countries")
	message.SetString(lang, "title.inventory", "%s | Serialized Inventory")
	message.SetString(lang, "title.accounts", "%s | Customer Accounts")
	message.SetString(lang, "title.account_detail", "%s | Account")

	// Navigation
	message.SetString(lang, "nav.dashboard", "Dashboard")
	message.SetString(lang, "nav.lists", "Lists")
	message.SetString(lang, "nav.campaigns", "Campaigns")
	message.SetString(lang, "nav.contacts", "Contacts")
	message.SetString(lang, "nav.verification", "Verification")
	message.SetString(lang, "nav.landing", "Landing Pages")
	message.SetString(lang, "nav.countries", "Countries")
	message.SetString(lang, "nav.inventory", "Inventory")
	message.SetString(lang, "nav.accounts", "Accounts")
	message.SetString(lang, "nav.tenant", "Tenant")
	message.SetString(lang, "nav.lang_en", "EN")
	message.SetString(lang, "nav.lang_pt_br", "PT-BR")

	// Shared table and form text
	message.SetString(lang, "common.name", "Name")
	message.SetString(lang, "common.status", "Status")
	message.SetString(lang, "common.created", "Created")
	message.SetString(lang, "common.updated", "Updated")
	message.SetString(lang, "common.actions", "Actions")
	message.SetString(lang, "common.back", "Back")
	message.SetString(lang, "common.save", "Save")
	message.SetString(lang, "common.create", "Create")
	message.SetString(lang, "common.delete", "Delete")
	message.SetString(lang, "common.cancel", "Cancel")
	message.SetString(lang, "common.search", "Search")
	message.SetString(lang, "common.enable", "Enable")
	message.SetString(lang, "common.disable", "Disable")
	message.SetString(lang, "common.next_page", "Next page")
	message.SetString(lang, "common.empty", "Nothing here yet.")

	// Errors
	message.SetString(lang, "error.service_unavailable", "The core service is unavailable. Try again shortly.")
	message.SetString(lang, "error.not_found", "Not found.")
	message.SetString(lang, "error.invalid_request", "The request could not be processed.")
	message.SetString(lang, "error.forbidden", "You are not allowed to do that.")
	message.SetString(lang, "error.csrf_invalid", "The request did not come from this site.")

	// Dashboard
	message.SetString(lang, "dashboard.heading", "Tenant overview")
	message.SetString(lang, "dashboard.contacts_total", "Contacts")
	message.SetString(lang, "dashboard.lists_total", "Lists")
	message.SetString(lang, "dashboard.campaigns_active", "Active campaigns")
	message.SetString(lang, "dashboard.pending_verifications", "Pending verification jobs")
	message.SetString(lang, "dashboard.recent_activity", "Recent activity")
	message.SetString(lang, "dashboard.no_activity", "No operator activity recorded yet.")

	// Lists
	message.SetString(lang, "lists.heading", "Marketing lists")
	message.SetString(lang, "lists.new", "New list")
	message.SetString(lang, "lists.type", "Type")
	message.SetString(lang, "lists.type_static", "Static")
	message.SetString(lang, "lists.type_dynamic", "Dynamic segment")
	message.SetString(lang, "lists.members", "Members")
	message.SetString(lang, "lists.description", "Description")
	message.SetString(lang, "lists.segment_rule", "Segment rule")
	message.SetString(lang, "lists.initial_contacts", "Initial contact IDs")
	message.SetString(lang, "lists.import_members", "Import members")
	message.SetString(lang, "lists.import_empty", "The selected file is empty.")
	message.SetString(lang, "lists.import_result", "Imported %d, skipped %d.")
	message.SetString(lang, "lists.add_member", "Add member")
	message.SetString(lang, "lists.remove_member", "Remove")
	message.SetString(lang, "lists.email", "Email")
	message.SetString(lang, "lists.delete_confirm", "Delete this list? Membership rows are removed with it.")

	// Campaigns
	message.SetString(lang, "campaigns.heading", "Email campaigns")
	message.SetString(lang, "campaigns.new", "New campaign")
	message.SetString(lang, "campaigns.subject", "Subject")
	message.SetString(lang, "campaigns.from_name", "From name")
	message.SetString(lang, "campaigns.from_email", "From email")
	message.SetString(lang, "campaigns.body", "HTML body")
	message.SetString(lang, "campaigns.body_file", "Body file")
	message.SetString(lang, "campaigns.scheduled_for", "Scheduled for")
	message.SetString(lang, "campaigns.edit", "Edit campaign")
	message.SetString(lang, "campaigns.target_lists", "Target lists")
	message.SetString(lang, "campaigns.attach_list", "Attach list")
	message.SetString(lang, "campaigns.detach_list", "Detach")
	message.SetString(lang, "campaigns.send_now", "Send now")
	message.SetString(lang, "campaigns.cancel_send", "Cancel send")
	message.SetString(lang, "campaigns.stats_sent", "Sent")
	message.SetString(lang, "campaigns.stats_opened", "Opened")
	message.SetString(lang, "campaigns.stats_clicked", "Clicked")
	message.SetString(lang, "campaigns.stats_bounced", "Bounced")
	message.SetString(lang, "campaigns.status.draft", "Draft")
	message.SetString(lang, "campaigns.status.scheduled", "Scheduled")
	message.SetString(lang, "campaigns.status.sending", "Sending")
	message.SetString(lang, "campaigns.status.sent", "Sent")
	message.SetString(lang, "campaigns.status.canceled", "Canceled")

	// Contacts
	message.SetString(lang, "contacts.heading", "Contacts")
	message.SetString(lang, "contacts.email", "Email")
	message.SetString(lang, "contacts.memberships", "List memberships")
	message.SetString(lang, "contacts.lookup_placeholder", "Search by email prefix")
	message.SetString(lang, "contacts.no_results", "No contacts matched.")

	// Email verification
	message.SetString(lang, "verification.heading", "Email verification jobs")
	message.SetString(lang, "verification.start", "Start verification")
	message.SetString(lang, "verification.download", "Download results")
	message.SetString(lang, "verification.progress", "%d of %d checked")
	message.SetString(lang, "verification.status.pending", "Pending")
	message.SetString(lang, "verification.status.running", "Running")
	message.SetString(lang, "verification.status.completed", "Completed")
	message.SetString(lang, "verification.status.failed", "Failed")

	// Landing pages
	message.SetString(lang, "landing.heading", "Landing pages")
	message.SetString(lang, "landing.blocks", "Content blocks")
	message.SetString(lang, "landing.slug", "Slug")
	message.SetString(lang, "landing.block_kind", "Kind")
	message.SetString(lang, "landing.preview", "Preview")
	message.SetString(lang, "landing.move_up", "Move up")
	message.SetString(lang, "landing.move_down", "Move down")
	message.SetString(lang, "landing.kind.hero_carousel", "Hero carousel")
	message.SetString(lang, "landing.kind.banner_grid", "Banner grid")
	message.SetString(lang, "landing.kind.rich_text", "Rich text")
	message.SetString(lang, "landing.kind.product_rail", "Product rail")
	message.SetString(lang, "landing.enabled", "Enabled")
	message.SetString(lang, "landing.disabled", "Disabled")

	// Countries
	message.SetString(lang, "countries.heading", "Countries")
	message.SetString(lang, "countries.new", "New country")
	message.SetString(lang, "countries.code", "Code")
	message.SetString(lang, "countries.currency", "Currency")
	message.SetString(lang, "countries.enabled", "Enabled")

	// Serialized inventory
	message.SetString(lang, "inventory.heading", "Serialized inventory")
	message.SetString(lang, "inventory.serial", "Serial")
	message.SetString(lang, "inventory.product", "Product")
	message.SetString(lang, "inventory.transition", "Change status")
	message.SetString(lang, "inventory.all_statuses", "All statuses")
	message.SetString(lang, "inventory.status.in_stock", "In stock")
	message.SetString(lang, "inventory.status.reserved", "Reserved")
	message.SetString(lang, "inventory.status.sold", "Sold")
	message.SetString(lang, "inventory.status.returned", "Returned")
	message.SetString(lang, "inventory.status.quarantined", "Quarantined")

	// Customer accounts
	message.SetString(lang, "accounts.heading", "Customer accounts")
	message.SetString(lang, "accounts.email", "Email")
	message.SetString(lang, "accounts.orders", "Recent orders")
	message.SetString(lang, "accounts.tasks", "Tasks")
	message.SetString(lang, "accounts.new_task", "New task")
	message.SetString(lang, "accounts.task_done", "Mark done")
	message.SetString(lang, "accounts.ltv", "Lifetime value")
	message.SetString(lang, "accounts.due", "Due")
	message.SetString(lang, "accounts.no_orders", "No orders yet.")
	message.SetString(lang, "accounts.no_tasks", "No open tasks.")
}

package coreapi

import "encoding/json"

// List types mirror the core API list resource.
const (
	ListTypeStatic  = "STATIC"
	ListTypeSegment = "DYNAMIC_SEGMENT"
)

// List is a marketing list owned by a tenant.
type List struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"list_type"`
	Description string `json:"description"`
	MemberCount int64  `json:"member_count"`
	SegmentRule string `json:"segment_rule,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// ListMember is one contact's membership in a list.
type ListMember struct {
	ContactID string `json:"contact_id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Status    string `json:"status"`
	AddedAt   string `json:"added_at"`
}

// Campaign statuses reported by the core API.
const (
	CampaignStatusDraft     = "DRAFT"
	CampaignStatusScheduled = "SCHEDULED"
	CampaignStatusSending   = "SENDING"
	CampaignStatusSent      = "SENT"
	CampaignStatusCanceled  = "CANCELED"
)

// Campaign is an outbound email campaign.
type Campaign struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Status        string        `json:"status"`
	Subject       string        `json:"subject"`
	FromName      string        `json:"from_name"`
	FromEmail     string        `json:"from_email"`
	BodyHTML      string        `json:"body_html"`
	ScheduledAt   string        `json:"scheduled_at,omitempty"`
	SentAt        string        `json:"sent_at,omitempty"`
	TargetListIDs []string      `json:"target_list_ids"`
	Stats         CampaignStats `json:"stats"`
	CreatedAt     string        `json:"created_at"`
	UpdatedAt     string        `json:"updated_at"`
}

// CampaignStats aggregates delivery counters for a campaign.
type CampaignStats struct {
	Recipients int64 `json:"recipients"`
	Delivered  int64 `json:"delivered"`
	Opened     int64 `json:"opened"`
	Clicked    int64 `json:"clicked"`
}

// Contact is a marketable person record.
type Contact struct {
	ID        string   `json:"id"`
	Email     string   `json:"email"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Status    string   `json:"status"`
	Country   string   `json:"country"`
	Tags      []string `json:"tags"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}

// ContactMembership names one list a contact belongs to.
type ContactMembership struct {
	ListID   string `json:"list_id"`
	ListName string `json:"list_name"`
	AddedAt  string `json:"added_at"`
}

// Verification job statuses reported by the core API.
const (
	VerificationStatusPending   = "PENDING"
	VerificationStatusRunning   = "RUNNING"
	VerificationStatusCompleted = "COMPLETED"
	VerificationStatusFailed    = "FAILED"
)

// VerificationJob is a bulk email verification run over a list.
type VerificationJob struct {
	ID          string `json:"id"`
	ListID      string `json:"list_id"`
	ListName    string `json:"list_name"`
	Status      string `json:"status"`
	Total       int64  `json:"total"`
	Verified    int64  `json:"verified"`
	Invalid     int64  `json:"invalid"`
	Risky       int64  `json:"risky"`
	SubmittedAt string `json:"submitted_at"`
	CompletedAt string `json:"completed_at,omitempty"`
}

// SignedURL is a short-lived download link minted by the core API.
type SignedURL struct {
	URL       string `json:"url"`
	ExpiresAt string `json:"expires_at"`
}

// Content block kinds supported by landing pages.
const (
	BlockKindHeroCarousel = "HERO_CAROUSEL"
	BlockKindBannerGrid   = "BANNER_GRID"
	BlockKindRichText     = "RICH_TEXT"
	BlockKindProductRail  = "PRODUCT_RAIL"
)

// LandingPage is a tenant storefront landing page.
type LandingPage struct {
	ID        string         `json:"id"`
	Slug      string         `json:"slug"`
	Title     string         `json:"title"`
	Published bool           `json:"published"`
	Blocks    []ContentBlock `json:"blocks"`
	UpdatedAt string         `json:"updated_at"`
}

// ContentBlock is one configurable section of a landing page.
type ContentBlock struct {
	ID       string          `json:"id"`
	Kind     string          `json:"kind"`
	Position int             `json:"position"`
	Enabled  bool            `json:"enabled"`
	Title    string          `json:"title"`
	BodyHTML string          `json:"body_html"`
	Config   json.RawMessage `json:"config,omitempty"`
}

// Country is checkout reference data.
type Country struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Currency string `json:"currency"`
	Enabled  bool   `json:"enabled"`
}

// Serialized inventory statuses reported by the core API.
const (
	ItemStatusInStock     = "IN_STOCK"
	ItemStatusReserved    = "RESERVED"
	ItemStatusSold        = "SOLD"
	ItemStatusReturned    = "RETURNED"
	ItemStatusQuarantined = "QUARANTINED"
)

// SerializedItem is one serial-tracked inventory unit.
type SerializedItem struct {
	ID          string `json:"id"`
	Serial      string `json:"serial"`
	SKU         string `json:"sku"`
	ProductName string `json:"product_name"`
	Status      string `json:"status"`
	Location    string `json:"location"`
	CustomerID  string `json:"customer_id,omitempty"`
	UpdatedAt   string `json:"updated_at"`
}

// Account is a customer account record.
type Account struct {
	ID                 string `json:"id"`
	Email              string `json:"email"`
	Name               string `json:"name"`
	Company            string `json:"company"`
	Phone              string `json:"phone"`
	Country            string `json:"country"`
	Status             string `json:"status"`
	LifetimeValueCents int64  `json:"lifetime_value_cents"`
	CreatedAt          string `json:"created_at"`
}

// OrderSummary is a condensed order row shown on account detail.
type OrderSummary struct {
	ID         string `json:"id"`
	Number     string `json:"number"`
	TotalCents int64  `json:"total_cents"`
	Currency   string `json:"currency"`
	Status     string `json:"status"`
	PlacedAt   string `json:"placed_at"`
	// ItemSummary is a condensed line-item description, e.g. "Widget x2".
	ItemSummary string `json:"item_summary,omitempty"`
}

// Task statuses reported by the core API.
const (
	TaskStatusOpen = "OPEN"
	TaskStatusDone = "DONE"
)

// Task is a follow-up item attached to an account.
type Task struct {
	ID        string `json:"id"`
	AccountID string `json:"account_id"`
	Title     string `json:"title"`
	Notes     string `json:"notes"`
	Status    string `json:"status"`
	DueDate   string `json:"due_date,omitempty"`
	CreatedAt string `json:"created_at"`
}

// TenantStats aggregates dashboard counters for one tenant.
type TenantStats struct {
	Contacts        int64 `json:"contacts"`
	Lists           int64 `json:"lists"`
	CampaignsSent   int64 `json:"campaigns_sent"`
	PendingVerifies int64 `json:"pending_verification_jobs"`
}

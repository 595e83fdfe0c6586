package admin

import (
	"strconv"
	"strings"
	"time"

	"github.com/tidemarkhq/tidemark/internal/services/admin/integration/coreapi"
	"golang.org/x/text/message"
)

// formatDate returns a YYYY-MM-DD string for an RFC 3339 timestamp.
func formatDate(value string) string {
	parsed, err := time.Parse(time.RFC3339, strings.TrimSpace(value))
	if err != nil {
		return ""
	}
	return parsed.Format("2006-01-02")
}

// formatDateTime returns a YYYY-MM-DD HH:MM string for an RFC 3339 timestamp.
func formatDateTime(value string) string {
	parsed, err := time.Parse(time.RFC3339, strings.TrimSpace(value))
	if err != nil {
		return ""
	}
	return parsed.Format("2006-01-02 15:04")
}

// formatCount renders an integer counter for display.
func formatCount(value int64) string {
	return strconv.FormatInt(value, 10)
}

// formatMoney renders an integer cent amount with its currency code.
func formatMoney(cents int64, currency string) string {
	major := cents / 100
	minor := cents % 100
	if minor < 0 {
		minor = -minor
	}
	amount := strconv.FormatInt(major, 10) + "." + pad2(minor)
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return amount
	}
	return amount + " " + currency
}

func pad2(value int64) string {
	if value < 10 {
		return "0" + strconv.FormatInt(value, 10)
	}
	return strconv.FormatInt(value, 10)
}

// truncateText shortens text to a maximum length with an ellipsis.
func truncateText(text string, limit int) string {
	if limit <= 0 || text == "" {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}

// formatListType returns a display label for a list type.
func formatListType(listType string, loc *message.Printer) string {
	switch listType {
	case coreapi.ListTypeStatic:
		return loc.Sprintf("lists.type_static")
	case coreapi.ListTypeSegment:
		return loc.Sprintf("lists.type_dynamic")
	default:
		return listType
	}
}

// formatCampaignStatus returns a display label for a campaign status.
func formatCampaignStatus(status string, loc *message.Printer) string {
	switch status {
	case coreapi.CampaignStatusDraft:
		return loc.Sprintf("campaigns.status.draft")
	case coreapi.CampaignStatusScheduled:
		return loc.Sprintf("campaigns.status.scheduled")
	case coreapi.CampaignStatusSending:
		return loc.Sprintf("campaigns.status.sending")
	case coreapi.CampaignStatusSent:
		return loc.Sprintf("campaigns.status.sent")
	case coreapi.CampaignStatusCanceled:
		return loc.Sprintf("campaigns.status.canceled")
	default:
		return status
	}
}

// campaignStatusTone maps a campaign status to a badge tone.
func campaignStatusTone(status string) string {
	switch status {
	case coreapi.CampaignStatusSent:
		return "success"
	case coreapi.CampaignStatusSending, coreapi.CampaignStatusScheduled:
		return "info"
	case coreapi.CampaignStatusCanceled:
		return "danger"
	default:
		return "secondary"
	}
}

// formatVerificationStatus returns a display label for a verification job status.
func formatVerificationStatus(status string, loc *message.Printer) string {
	switch status {
	case coreapi.VerificationStatusPending:
		return loc.Sprintf("verification.status.pending")
	case coreapi.VerificationStatusRunning:
		return loc.Sprintf("verification.status.running")
	case coreapi.VerificationStatusCompleted:
		return loc.Sprintf("verification.status.completed")
	case coreapi.VerificationStatusFailed:
		return loc.Sprintf("verification.status.failed")
	default:
		return status
	}
}

// verificationStatusTone maps a verification job status to a badge tone.
func verificationStatusTone(status string) string {
	switch status {
	case coreapi.VerificationStatusCompleted:
		return "success"
	case coreapi.VerificationStatusRunning:
		return "info"
	case coreapi.VerificationStatusFailed:
		return "danger"
	default:
		return "secondary"
	}
}

// formatItemStatus returns a display label for a serialized item status.
func formatItemStatus(status string, loc *message.Printer) string {
	switch status {
	case coreapi.ItemStatusInStock:
		return loc.Sprintf("inventory.status.in_stock")
	case coreapi.ItemStatusReserved:
		return loc.Sprintf("inventory.status.reserved")
	case coreapi.ItemStatusSold:
		return loc.Sprintf("inventory.status.sold")
	case coreapi.ItemStatusReturned:
		return loc.Sprintf("inventory.status.returned")
	case coreapi.ItemStatusQuarantined:
		return loc.Sprintf("inventory.status.quarantined")
	default:
		return status
	}
}

// itemStatusTone maps a serialized item status to a badge tone.
func itemStatusTone(status string) string {
	switch status {
	case coreapi.ItemStatusInStock:
		return "success"
	case coreapi.ItemStatusReserved:
		return "info"
	case coreapi.ItemStatusQuarantined:
		return "danger"
	default:
		return "secondary"
	}
}

// itemTransitions lists the statuses an item may move to from its current
// status. The core API enforces the same lifecycle; this only trims the
// options offered in the UI.
func itemTransitions(status string) []string {
	switch status {
	case coreapi.ItemStatusInStock:
		return []string{coreapi.ItemStatusReserved, coreapi.ItemStatusSold, coreapi.ItemStatusQuarantined}
	case coreapi.ItemStatusReserved:
		return []string{coreapi.ItemStatusInStock, coreapi.ItemStatusSold}
	case coreapi.ItemStatusSold:
		return []string{coreapi.ItemStatusReturned}
	case coreapi.ItemStatusReturned:
		return []string{coreapi.ItemStatusInStock, coreapi.ItemStatusQuarantined}
	case coreapi.ItemStatusQuarantined:
		return []string{coreapi.ItemStatusInStock}
	default:
		return nil
	}
}

// formatBlockKind returns a display label for a content block kind.
func formatBlockKind(kind string, loc *message.Printer) string {
	switch kind {
	case coreapi.BlockKindHeroCarousel:
		return loc.Sprintf("landing.kind.hero_carousel")
	case coreapi.BlockKindBannerGrid:
		return loc.Sprintf("landing.kind.banner_grid")
	case coreapi.BlockKindRichText:
		return loc.Sprintf("landing.kind.rich_text")
	case coreapi.BlockKindProductRail:
		return loc.Sprintf("landing.kind.product_rail")
	default:
		return kind
	}
}

// contactDisplayName joins first and last name for display.
func contactDisplayName(firstName string, lastName string) string {
	name := strings.TrimSpace(strings.TrimSpace(firstName) + " " + strings.TrimSpace(lastName))
	return name
}

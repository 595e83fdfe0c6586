package coreapi

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// ListCampaignsRequest selects a page of campaigns.
type ListCampaignsRequest struct {
	PageSize  int
	PageToken string
}

// ListCampaignsResponse is one page of campaigns.
type ListCampaignsResponse struct {
	Campaigns     []Campaign `json:"campaigns"`
	NextPageToken string     `json:"next_page_token"`
}

// ListCampaigns returns a page of the tenant's campaigns, newest first.
func (c *Client) ListCampaigns(ctx context.Context, tenant string, req ListCampaignsRequest) (ListCampaignsResponse, error) {
	query := url.Values{}
	if req.PageSize > 0 {
		query.Set("page_size", strconv.Itoa(req.PageSize))
	}
	if req.PageToken != "" {
		query.Set("page_token", req.PageToken)
	}
	var resp ListCampaignsResponse
	err := c.get(ctx, tenantPath(tenant, "campaigns"), query, &resp)
	return resp, err
}

// GetCampaign fetches a single campaign by ID.
func (c *Client) GetCampaign(ctx context.Context, tenant string, campaignID string) (Campaign, error) {
	var resp struct {
		Campaign Campaign `json:"campaign"`
	}
	err := c.get(ctx, tenantPath(tenant, "campaigns", campaignID), nil, &resp)
	return resp.Campaign, err
}

// CampaignDraft carries the editable campaign fields.
type CampaignDraft struct {
	Name        string `json:"name"`
	Subject     string `json:"subject"`
	FromName    string `json:"from_name"`
	FromEmail   string `json:"from_email"`
	BodyHTML    string `json:"body_html"`
	ScheduledAt string `json:"scheduled_at,omitempty"`
}

// CreateCampaign creates a draft campaign.
func (c *Client) CreateCampaign(ctx context.Context, tenant string, draft CampaignDraft) (Campaign, error) {
	var resp struct {
		Campaign Campaign `json:"campaign"`
	}
	err := c.postJSON(ctx, tenantPath(tenant, "campaigns"), draft, &resp)
	return resp.Campaign, err
}

// UpdateCampaign replaces the editable fields of a draft campaign. The
// core API rejects updates once the campaign leaves DRAFT.
func (c *Client) UpdateCampaign(ctx context.Context, tenant string, campaignID string, draft CampaignDraft) (Campaign, error) {
	var resp struct {
		Campaign Campaign `json:"campaign"`
	}
	err := c.putJSON(ctx, tenantPath(tenant, "campaigns", campaignID), draft, &resp)
	return resp.Campaign, err
}

// campaignFormFields flattens a draft into multipart form fields. The
// body is carried by the attached file instead of a field.
func campaignFormFields(draft CampaignDraft) map[string]string {
	return map[string]string{
		"name":         draft.Name,
		"subject":      draft.Subject,
		"from_name":    draft.FromName,
		"from_email":   draft.FromEmail,
		"scheduled_at": draft.ScheduledAt,
	}
}

// CreateCampaignForm creates a draft campaign as multipart form data,
// streaming an uploaded HTML body file alongside the draft fields.
func (c *Client) CreateCampaignForm(ctx context.Context, tenant string, draft CampaignDraft, fileName string, body io.Reader) (Campaign, error) {
	var resp struct {
		Campaign Campaign `json:"campaign"`
	}
	err := c.sendForm(ctx, http.MethodPost, tenantPath(tenant, "campaigns"), campaignFormFields(draft), "body_file", fileName, body, &resp)
	return resp.Campaign, err
}

// UpdateCampaignForm replaces a draft campaign as multipart form data,
// streaming a new HTML body file alongside the draft fields.
func (c *Client) UpdateCampaignForm(ctx context.Context, tenant string, campaignID string, draft CampaignDraft, fileName string, body io.Reader) (Campaign, error) {
	var resp struct {
		Campaign Campaign `json:"campaign"`
	}
	err := c.sendForm(ctx, http.MethodPut, tenantPath(tenant, "campaigns", campaignID), campaignFormFields(draft), "body_file", fileName, body, &resp)
	return resp.Campaign, err
}

// AttachTargetList associates a marketing list with a campaign.
// Attaching an already-attached list is idempotent server-side.
func (c *Client) AttachTargetList(ctx context.Context, tenant string, campaignID string, listID string) error {
	payload := struct {
		ListID string `json:"list_id"`
	}{ListID: listID}
	return c.postJSON(ctx, tenantPath(tenant, "campaigns", campaignID, "target-lists"), payload, nil)
}

// DetachTargetList removes a list association from a campaign.
func (c *Client) DetachTargetList(ctx context.Context, tenant string, campaignID string, listID string) error {
	return c.delete(ctx, tenantPath(tenant, "campaigns", campaignID, "target-lists", listID))
}

// SendCampaign asks the core API to dispatch the campaign now.
func (c *Client) SendCampaign(ctx context.Context, tenant string, campaignID string) error {
	return c.postJSON(ctx, tenantPath(tenant, "campaigns", campaignID, "send"), struct{}{}, nil)
}

// CancelCampaign cancels a scheduled or sending campaign.
func (c *Client) CancelCampaign(ctx context.Context, tenant string, campaignID string) error {
	return c.postJSON(ctx, tenantPath(tenant, "campaigns", campaignID, "cancel"), struct{}{}, nil)
}

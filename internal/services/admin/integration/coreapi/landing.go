package coreapi

import "context"

// ListLandingPages returns the tenant's landing pages. The set is small
// and unpaginated.
func (c *Client) ListLandingPages(ctx context.Context, tenant string) ([]LandingPage, error) {
	var resp struct {
		Pages []LandingPage `json:"pages"`
	}
	err := c.get(ctx, tenantPath(tenant, "landing-pages"), nil, &resp)
	return resp.Pages, err
}

// GetLandingPage fetches one landing page with its blocks in position
// order.
func (c *Client) GetLandingPage(ctx context.Context, tenant string, pageID string) (LandingPage, error) {
	var resp struct {
		Page LandingPage `json:"page"`
	}
	err := c.get(ctx, tenantPath(tenant, "landing-pages", pageID), nil, &resp)
	return resp.Page, err
}

// BlockDraft carries the editable content block fields.
type BlockDraft struct {
	Kind     string `json:"kind"`
	Title    string `json:"title"`
	BodyHTML string `json:"body_html"`
	Config   string `json:"config,omitempty"`
}

// CreateBlock appends a block to the end of a landing page.
func (c *Client) CreateBlock(ctx context.Context, tenant string, pageID string, draft BlockDraft) (ContentBlock, error) {
	var resp struct {
		Block ContentBlock `json:"block"`
	}
	err := c.postJSON(ctx, tenantPath(tenant, "landing-pages", pageID, "blocks"), draft, &resp)
	return resp.Block, err
}

// UpdateBlock replaces a block's editable fields.
func (c *Client) UpdateBlock(ctx context.Context, tenant string, pageID string, blockID string, draft BlockDraft) (ContentBlock, error) {
	var resp struct {
		Block ContentBlock `json:"block"`
	}
	err := c.putJSON(ctx, tenantPath(tenant, "landing-pages", pageID, "blocks", blockID), draft, &resp)
	return resp.Block, err
}

// SetBlockEnabled toggles a block's visibility.
func (c *Client) SetBlockEnabled(ctx context.Context, tenant string, pageID string, blockID string, enabled bool) error {
	payload := struct {
		Enabled bool `json:"enabled"`
	}{Enabled: enabled}
	return c.postJSON(ctx, tenantPath(tenant, "landing-pages", pageID, "blocks", blockID, "enabled"), payload, nil)
}

// MoveBlock shifts a block one position up or down. The core API swaps
// positions and returns the new ordering implicitly via re-fetch.
func (c *Client) MoveBlock(ctx context.Context, tenant string, pageID string, blockID string, direction string) error {
	payload := struct {
		Direction string `json:"direction"`
	}{Direction: direction}
	return c.postJSON(ctx, tenantPath(tenant, "landing-pages", pageID, "blocks", blockID, "move"), payload, nil)
}

// DeleteBlock removes a block from a landing page.
func (c *Client) DeleteBlock(ctx context.Context, tenant string, pageID string, blockID string) error {
	return c.delete(ctx, tenantPath(tenant, "landing-pages", pageID, "blocks", blockID))
}

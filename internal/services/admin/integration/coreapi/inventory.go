package coreapi

import (
	"context"
	"net/url"
	"strconv"
)

// ListItemsRequest selects a page of serialized inventory items.
type ListItemsRequest struct {
	PageSize  int
	PageToken string
	Query     string
	Status    string
}

// ListItemsResponse is one page of serialized items.
type ListItemsResponse struct {
	Items         []SerializedItem `json:"items"`
	NextPageToken string           `json:"next_page_token"`
}

// ListItems returns a page of serialized inventory, optionally filtered
// by serial or SKU search.
func (c *Client) ListItems(ctx context.Context, tenant string, req ListItemsRequest) (ListItemsResponse, error) {
	query := url.Values{}
	if req.PageSize > 0 {
		query.Set("page_size", strconv.Itoa(req.PageSize))
	}
	if req.PageToken != "" {
		query.Set("page_token", req.PageToken)
	}
	if req.Query != "" {
		query.Set("q", req.Query)
	}
	if req.Status != "" {
		query.Set("status", req.Status)
	}
	var resp ListItemsResponse
	err := c.get(ctx, tenantPath(tenant, "inventory", "serialized"), query, &resp)
	return resp, err
}

// GetItem fetches a serialized item by ID.
func (c *Client) GetItem(ctx context.Context, tenant string, itemID string) (SerializedItem, error) {
	var resp struct {
		Item SerializedItem `json:"item"`
	}
	err := c.get(ctx, tenantPath(tenant, "inventory", "serialized", itemID), nil, &resp)
	return resp.Item, err
}

// TransitionItem requests a status change for a serialized item. The
// core API validates transition legality and rejects illegal moves.
func (c *Client) TransitionItem(ctx context.Context, tenant string, itemID string, status string) (SerializedItem, error) {
	payload := struct {
		Status string `json:"status"`
	}{Status: status}
	var resp struct {
		Item SerializedItem `json:"item"`
	}
	err := c.postJSON(ctx, tenantPath(tenant, "inventory", "serialized", itemID, "transition"), payload, &resp)
	return resp.Item, err
}

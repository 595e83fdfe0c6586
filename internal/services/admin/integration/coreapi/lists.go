package coreapi

import (
	"context"
	"io"
	"net/url"
	"strconv"
)

// ListListsRequest selects a page of marketing lists.
type ListListsRequest struct {
	PageSize  int
	PageToken string
	Query     string
}

// ListListsResponse is one page of marketing lists.
type ListListsResponse struct {
	Lists         []List `json:"lists"`
	NextPageToken string `json:"next_page_token"`
}

// ListLists returns a page of the tenant's marketing lists.
func (c *Client) ListLists(ctx context.Context, tenant string, req ListListsRequest) (ListListsResponse, error) {
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
	var resp ListListsResponse
	err := c.get(ctx, tenantPath(tenant, "lists"), query, &resp)
	return resp, err
}

// GetList fetches a single list by ID.
func (c *Client) GetList(ctx context.Context, tenant string, listID string) (List, error) {
	var resp struct {
		List List `json:"list"`
	}
	err := c.get(ctx, tenantPath(tenant, "lists", listID), nil, &resp)
	return resp.List, err
}

// CreateListRequest creates a new marketing list.
type CreateListRequest struct {
	Name        string   `json:"name"`
	Type        string   `json:"list_type"`
	Description string   `json:"description,omitempty"`
	SegmentRule string   `json:"segment_rule,omitempty"`
	ContactIDs  []string `json:"initial_contacts,omitempty"`
}

// CreateList creates a list and returns the stored record.
func (c *Client) CreateList(ctx context.Context, tenant string, req CreateListRequest) (List, error) {
	var resp struct {
		List List `json:"list"`
	}
	err := c.postJSON(ctx, tenantPath(tenant, "lists"), req, &resp)
	return resp.List, err
}

// DeleteList removes a list. Membership rows are deleted server-side.
func (c *Client) DeleteList(ctx context.Context, tenant string, listID string) error {
	return c.delete(ctx, tenantPath(tenant, "lists", listID))
}

// ImportResult summarizes a bulk membership import.
type ImportResult struct {
	Imported int64 `json:"imported"`
	Skipped  int64 `json:"skipped"`
}

// ImportListMembers streams a CSV of addresses to the list import endpoint.
// The core API performs the actual membership writes.
func (c *Client) ImportListMembers(ctx context.Context, tenant string, listID string, fileName string, file io.Reader) (ImportResult, error) {
	var resp ImportResult
	err := c.postFile(ctx, tenantPath(tenant, "lists", listID, "import"), "file", fileName, file, &resp)
	return resp, err
}

// ListMembersRequest selects a page of list members.
type ListMembersRequest struct {
	PageSize  int
	PageToken string
}

// ListMembersResponse is one page of list members.
type ListMembersResponse struct {
	Members       []ListMember `json:"members"`
	NextPageToken string       `json:"next_page_token"`
}

// ListMembers returns a page of a list's membership.
func (c *Client) ListMembers(ctx context.Context, tenant string, listID string, req ListMembersRequest) (ListMembersResponse, error) {
	query := url.Values{}
	if req.PageSize > 0 {
		query.Set("page_size", strconv.Itoa(req.PageSize))
	}
	if req.PageToken != "" {
		query.Set("page_token", req.PageToken)
	}
	var resp ListMembersResponse
	err := c.get(ctx, tenantPath(tenant, "lists", listID, "members"), query, &resp)
	return resp, err
}

// AddListMember adds one contact to a list.
func (c *Client) AddListMember(ctx context.Context, tenant string, listID string, contactID string) error {
	payload := struct {
		ContactID string `json:"contact_id"`
	}{ContactID: contactID}
	return c.postJSON(ctx, tenantPath(tenant, "lists", listID, "members"), payload, nil)
}

// RemoveListMember removes one contact from a list.
func (c *Client) RemoveListMember(ctx context.Context, tenant string, listID string, contactID string) error {
	return c.delete(ctx, tenantPath(tenant, "lists", listID, "members", contactID))
}

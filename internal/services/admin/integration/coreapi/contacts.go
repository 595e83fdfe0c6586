package coreapi

import (
	"context"
	"net/url"
	"strconv"
)

// ListContactsRequest selects a page of contacts.
type ListContactsRequest struct {
	PageSize  int
	PageToken string
	Query     string
}

// ListContactsResponse is one page of contacts.
type ListContactsResponse struct {
	Contacts      []Contact `json:"contacts"`
	NextPageToken string    `json:"next_page_token"`
}

// ListContacts returns a page of the tenant's contacts.
func (c *Client) ListContacts(ctx context.Context, tenant string, req ListContactsRequest) (ListContactsResponse, error) {
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
	var resp ListContactsResponse
	err := c.get(ctx, tenantPath(tenant, "contacts"), query, &resp)
	return resp, err
}

// GetContact fetches a single contact by ID.
func (c *Client) GetContact(ctx context.Context, tenant string, contactID string) (Contact, error) {
	var resp struct {
		Contact Contact `json:"contact"`
	}
	err := c.get(ctx, tenantPath(tenant, "contacts", contactID), nil, &resp)
	return resp.Contact, err
}

// ListContactMemberships returns the lists a contact belongs to.
func (c *Client) ListContactMemberships(ctx context.Context, tenant string, contactID string) ([]ContactMembership, error) {
	var resp struct {
		Memberships []ContactMembership `json:"memberships"`
	}
	err := c.get(ctx, tenantPath(tenant, "contacts", contactID, "memberships"), nil, &resp)
	return resp.Memberships, err
}

// LookupContacts searches contacts by email prefix. The result set is
// capped server-side; it backs the add-member lookup field.
func (c *Client) LookupContacts(ctx context.Context, tenant string, emailPrefix string) ([]Contact, error) {
	query := url.Values{}
	query.Set("email_prefix", emailPrefix)
	var resp struct {
		Contacts []Contact `json:"contacts"`
	}
	err := c.get(ctx, tenantPath(tenant, "contacts:lookup"), query, &resp)
	return resp.Contacts, err
}

package coreapi

import (
	"context"
	"net/url"
	"strconv"
)

// ListAccountsRequest selects a page of customer accounts.
type ListAccountsRequest struct {
	PageSize  int
	PageToken string
	Query     string
}

// ListAccountsResponse is one page of customer accounts.
type ListAccountsResponse struct {
	Accounts      []Account `json:"accounts"`
	NextPageToken string    `json:"next_page_token"`
}

// ListAccounts returns a page of the tenant's customer accounts.
func (c *Client) ListAccounts(ctx context.Context, tenant string, req ListAccountsRequest) (ListAccountsResponse, error) {
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
	var resp ListAccountsResponse
	err := c.get(ctx, tenantPath(tenant, "accounts"), query, &resp)
	return resp, err
}

// AccountDetail composes everything the account page needs in one call.
type AccountDetail struct {
	Account      Account        `json:"account"`
	RecentOrders []OrderSummary `json:"recent_orders"`
	Tasks        []Task         `json:"tasks"`
}

// GetAccountDetail fetches an account with its recent orders and tasks.
func (c *Client) GetAccountDetail(ctx context.Context, tenant string, accountID string) (AccountDetail, error) {
	var resp AccountDetail
	err := c.get(ctx, tenantPath(tenant, "accounts", accountID), nil, &resp)
	return resp, err
}

// ListAccountTasks returns the tasks attached to an account.
func (c *Client) ListAccountTasks(ctx context.Context, tenant string, accountID string) ([]Task, error) {
	var resp struct {
		Tasks []Task `json:"tasks"`
	}
	err := c.get(ctx, tenantPath(tenant, "accounts", accountID, "tasks"), nil, &resp)
	return resp.Tasks, err
}

// TaskDraft carries the editable task fields.
type TaskDraft struct {
	Title   string `json:"title"`
	Notes   string `json:"notes,omitempty"`
	DueDate string `json:"due_date,omitempty"`
}

// CreateAccountTask attaches a new open task to an account.
func (c *Client) CreateAccountTask(ctx context.Context, tenant string, accountID string, draft TaskDraft) (Task, error) {
	var resp struct {
		Task Task `json:"task"`
	}
	err := c.postJSON(ctx, tenantPath(tenant, "accounts", accountID, "tasks"), draft, &resp)
	return resp.Task, err
}

// CompleteAccountTask marks a task as done.
func (c *Client) CompleteAccountTask(ctx context.Context, tenant string, accountID string, taskID string) error {
	return c.postJSON(ctx, tenantPath(tenant, "accounts", accountID, "tasks", taskID, "complete"), struct{}{}, nil)
}

// GetTenantStats returns the dashboard counters for one tenant.
func (c *Client) GetTenantStats(ctx context.Context, tenant string) (TenantStats, error) {
	var resp struct {
		Stats TenantStats `json:"stats"`
	}
	err := c.get(ctx, tenantPath(tenant, "stats"), nil, &resp)
	return resp.Stats, err
}

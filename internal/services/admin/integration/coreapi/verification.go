package coreapi

import (
	"context"
	"net/url"
	"strconv"
)

// ListVerificationJobsRequest selects a page of verification jobs.
type ListVerificationJobsRequest struct {
	PageSize  int
	PageToken string
}

// ListVerificationJobsResponse is one page of jobs, newest first.
type ListVerificationJobsResponse struct {
	Jobs          []VerificationJob `json:"jobs"`
	NextPageToken string            `json:"next_page_token"`
}

// ListVerificationJobs returns a page of the tenant's verification jobs.
func (c *Client) ListVerificationJobs(ctx context.Context, tenant string, req ListVerificationJobsRequest) (ListVerificationJobsResponse, error) {
	query := url.Values{}
	if req.PageSize > 0 {
		query.Set("page_size", strconv.Itoa(req.PageSize))
	}
	if req.PageToken != "" {
		query.Set("page_token", req.PageToken)
	}
	var resp ListVerificationJobsResponse
	err := c.get(ctx, tenantPath(tenant, "verification-jobs"), query, &resp)
	return resp, err
}

// GetVerificationJob fetches a single job by ID.
func (c *Client) GetVerificationJob(ctx context.Context, tenant string, jobID string) (VerificationJob, error) {
	var resp struct {
		Job VerificationJob `json:"job"`
	}
	err := c.get(ctx, tenantPath(tenant, "verification-jobs", jobID), nil, &resp)
	return resp.Job, err
}

// StartVerificationJob submits a list for verification. Processing is
// entirely server-side; the returned job starts in PENDING.
func (c *Client) StartVerificationJob(ctx context.Context, tenant string, listID string) (VerificationJob, error) {
	payload := struct {
		ListID string `json:"list_id"`
	}{ListID: listID}
	var resp struct {
		Job VerificationJob `json:"job"`
	}
	err := c.postJSON(ctx, tenantPath(tenant, "verification-jobs"), payload, &resp)
	return resp.Job, err
}

// GetVerificationResultURL mints a signed download URL for a completed
// job's result file.
func (c *Client) GetVerificationResultURL(ctx context.Context, tenant string, jobID string) (SignedURL, error) {
	var resp SignedURL
	err := c.get(ctx, tenantPath(tenant, "verification-jobs", jobID, "result-url"), nil, &resp)
	return resp, err
}

package admin

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/tidemarkhq/tidemark/internal/platform/timeouts"
	"github.com/tidemarkhq/tidemark/internal/services/admin/integration/coreapi"
	"github.com/tidemarkhq/tidemark/internal/services/admin/routepath"
	"github.com/tidemarkhq/tidemark/internal/services/admin/templates"
	"github.com/tidemarkhq/tidemark/internal/services/shared/htmx"
	"golang.org/x/text/message"
)

const verificationTableID = "verification-table"

// handleVerificationPage renders the verification jobs index.
func (h *Handler) handleVerificationPage(w http.ResponseWriter, r *http.Request) {
	loc, tenant, pageCtx := h.requestScope(w, r)
	table := h.loadVerificationTable(r.Context(), tenant, r, loc)
	startable := h.loadStartableLists(r.Context(), tenant)
	notice := noticeParam(r)
	htmx.RenderPage(w, r,
		templates.VerificationContent(pageCtx, table, startable, notice),
		templates.VerificationPage(pageCtx, pageTitle(loc, "title.verification"), table, startable, notice),
		htmxPageTitle(loc, "title.verification"))
}

// handleVerificationTable returns one page of job rows for HTMX swaps.
func (h *Handler) handleVerificationTable(w http.ResponseWriter, r *http.Request) {
	loc, tenant, _ := h.requestScope(w, r)
	table := h.loadVerificationTable(r.Context(), tenant, r, loc)
	templ.Handler(templates.Table(table)).ServeHTTP(w, r)
}

func (h *Handler) loadVerificationTable(ctx context.Context, tenant string, r *http.Request, loc *message.Printer) templates.TableView {
	columns := []string{
		loc.Sprintf("nav.lists"),
		loc.Sprintf("common.status"),
		loc.Sprintf("verification.heading"),
		loc.Sprintf("common.created"),
	}
	client := h.coreAPI()
	if client == nil {
		return unavailableTable(verificationTableID, routepath.VerificationTable, columns, loc.Sprintf("error.service_unavailable"))
	}

	ctx, cancel := context.WithTimeout(ctx, timeouts.APIRequest)
	defer cancel()

	response, err := client.ListVerificationJobs(ctx, tenant, coreapi.ListVerificationJobsRequest{
		PageSize:  defaultPageSize,
		PageToken: pageToken(r),
	})
	if err != nil {
		log.Printf("list verification jobs: %v", err)
		return unavailableTable(verificationTableID, routepath.VerificationTable, columns, apiErrorMessage(err, loc))
	}

	rows := make([]templates.TableRow, 0, len(response.Jobs))
	for _, job := range response.Jobs {
		rows = append(rows, templates.TableRow{
			Primary:   job.ListName,
			DetailURL: routepath.VerificationJob(job.ID),
			Cells: []string{
				formatVerificationStatus(job.Status, loc),
				verificationProgress(job, loc),
				formatDate(job.SubmittedAt),
			},
		})
	}
	return templates.TableView{
		ID:          verificationTableID,
		Columns:     columns,
		Rows:        rows,
		Message:     loc.Sprintf("common.empty"),
		NextToken:   response.NextPageToken,
		HTMXBaseURL: routepath.VerificationTable,
	}
}

func verificationProgress(job coreapi.VerificationJob, loc *message.Printer) string {
	checked := job.Verified + job.Invalid + job.Risky
	return loc.Sprintf("verification.progress", checked, job.Total)
}

// loadStartableLists fills the start-job select with the tenant's lists.
func (h *Handler) loadStartableLists(ctx context.Context, tenant string) []templates.SelectOption {
	client := h.coreAPI()
	if client == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, timeouts.APIRequest)
	defer cancel()

	response, err := client.ListLists(ctx, tenant, coreapi.ListListsRequest{PageSize: defaultPageSize})
	if err != nil {
		log.Printf("list lists for verification: %v", err)
		return nil
	}
	options := make([]templates.SelectOption, 0, len(response.Lists))
	for _, list := range response.Lists {
		options = append(options, templates.SelectOption{Value: list.ID, Label: list.Name})
	}
	return options
}

// handleVerificationStart submits a list for verification.
func (h *Handler) handleVerificationStart(w http.ResponseWriter, r *http.Request) {
	if !postOnly(w, r) {
		return
	}
	loc, tenant, _ := h.requestScope(w, r)
	if !requireSameOrigin(w, r, loc) {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, loc.Sprintf("error.invalid_request"), http.StatusBadRequest)
		return
	}
	listID := strings.TrimSpace(r.FormValue("list_id"))
	if listID == "" {
		http.Error(w, loc.Sprintf("error.invalid_request"), http.StatusBadRequest)
		return
	}
	client := h.coreAPI()
	if client == nil {
		http.Error(w, loc.Sprintf("error.service_unavailable"), http.StatusServiceUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.APIRequest)
	defer cancel()

	job, err := client.StartVerificationJob(ctx, tenant, listID)
	if err != nil {
		log.Printf("start verification job: %v", err)
		http.Error(w, apiErrorMessage(err, loc), http.StatusBadGateway)
		return
	}
	h.recordAudit(r, tenant, "verification.start", job.ListName)
	redirectTo(w, r, routepath.VerificationJob(job.ID))
}

// handleVerificationJobDetail renders one job, polling while it runs.
func (h *Handler) handleVerificationJobDetail(w http.ResponseWriter, r *http.Request, jobID string) {
	loc, tenant, pageCtx := h.requestScope(w, r)
	client := h.coreAPI()
	if client == nil {
		http.Error(w, loc.Sprintf("error.service_unavailable"), http.StatusServiceUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.APIRequest)
	defer cancel()

	job, err := client.GetVerificationJob(ctx, tenant, jobID)
	if err != nil {
		log.Printf("get verification job: %v", err)
		http.Error(w, apiErrorMessage(err, loc), http.StatusNotFound)
		return
	}
	detail := templates.VerificationJobDetail{
		ID:           job.ID,
		ListName:     job.ListName,
		Status:       formatVerificationStatus(job.Status, loc),
		StatusTone:   verificationStatusTone(job.Status),
		Progress:     verificationProgress(job, loc),
		StartedDate:  formatDateTime(job.SubmittedAt),
		Downloadable: job.Status == coreapi.VerificationStatusCompleted,
	}
	polling := job.Status == coreapi.VerificationStatusPending || job.Status == coreapi.VerificationStatusRunning
	htmx.RenderPage(w, r,
		templates.VerificationJobContent(pageCtx, detail, polling),
		templates.VerificationJobPage(pageCtx, pageTitle(loc, "title.verification"), detail, polling),
		htmxPageTitle(loc, "title.verification"))
}

// handleVerificationJobDownload redirects to the signed results URL.
func (h *Handler) handleVerificationJobDownload(w http.ResponseWriter, r *http.Request, jobID string) {
	loc, tenant, _ := h.requestScope(w, r)
	client := h.coreAPI()
	if client == nil {
		http.Error(w, loc.Sprintf("error.service_unavailable"), http.StatusServiceUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.APIRequest)
	defer cancel()

	signed, err := client.GetVerificationResultURL(ctx, tenant, jobID)
	if err != nil {
		log.Printf("get verification result url: %v", err)
		http.Error(w, apiErrorMessage(err, loc), http.StatusBadGateway)
		return
	}
	http.Redirect(w, r, signed.URL, http.StatusFound)
}

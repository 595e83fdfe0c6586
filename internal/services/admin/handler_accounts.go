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

const (
	accountsTableID = "accounts-table"
	tasksTableID    = "account-tasks"
)

// handleAccountsPage renders the customer accounts index.
func (h *Handler) handleAccountsPage(w http.ResponseWriter, r *http.Request) {
	loc, tenant, pageCtx := h.requestScope(w, r)
	table := h.loadAccountsTable(r.Context(), tenant, loc, r)
	htmx.RenderPage(w, r,
		templates.AccountsContent(pageCtx, table),
		templates.AccountsPage(pageCtx, pageTitle(loc, "title.accounts"), table),
		htmxPageTitle(loc, "title.accounts"))
}

// handleAccountsTable returns the accounts table fragment.
func (h *Handler) handleAccountsTable(w http.ResponseWriter, r *http.Request) {
	loc, tenant, _ := h.requestScope(w, r)
	table := h.loadAccountsTable(r.Context(), tenant, loc, r)
	templ.Handler(templates.Table(table)).ServeHTTP(w, r)
}

func (h *Handler) loadAccountsTable(ctx context.Context, tenant string, loc *message.Printer, r *http.Request) templates.TableView {
	columns := []string{
		loc.Sprintf("accounts.email"),
		loc.Sprintf("common.name"),
		loc.Sprintf("countries.code"),
		loc.Sprintf("accounts.ltv"),
	}
	client := h.coreAPI()
	if client == nil {
		return unavailableTable(accountsTableID, routepath.AccountsTable, columns, loc.Sprintf("error.service_unavailable"))
	}

	ctx, cancel := context.WithTimeout(ctx, timeouts.APIRequest)
	defer cancel()

	resp, err := client.ListAccounts(ctx, tenant, coreapi.ListAccountsRequest{
		PageSize:  defaultPageSize,
		PageToken: pageToken(r),
		Query:     searchQuery(r),
	})
	if err != nil {
		log.Printf("list accounts: %v", err)
		return unavailableTable(accountsTableID, routepath.AccountsTable, columns, apiErrorMessage(err, loc))
	}

	rows := make([]templates.TableRow, 0, len(resp.Accounts))
	for _, account := range resp.Accounts {
		rows = append(rows, templates.TableRow{
			Primary:   account.Email,
			DetailURL: routepath.Account(account.ID),
			Cells: []string{
				account.Name,
				account.Country,
				formatMoney(account.LifetimeValueCents, ""),
			},
		})
	}
	return templates.TableView{
		ID:          accountsTableID,
		Columns:     columns,
		Rows:        rows,
		Message:     loc.Sprintf("common.empty"),
		NextToken:   resp.NextPageToken,
		HTMXBaseURL: routepath.AccountsTable,
	}
}

// handleAccountDetail renders one account with recent orders and tasks.
func (h *Handler) handleAccountDetail(w http.ResponseWriter, r *http.Request, accountID string) {
	h.renderAccountDetail(w, r, accountID, "")
}

func (h *Handler) renderAccountDetail(w http.ResponseWriter, r *http.Request, accountID string, notice string) {
	loc, tenant, pageCtx := h.requestScope(w, r)
	client := h.coreAPI()
	if client == nil {
		http.Error(w, loc.Sprintf("error.service_unavailable"), http.StatusServiceUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.APIRequest)
	defer cancel()

	resp, err := client.GetAccountDetail(ctx, tenant, accountID)
	if err != nil {
		log.Printf("get account: %v", err)
		http.Error(w, apiErrorMessage(err, loc), http.StatusNotFound)
		return
	}
	detail := templates.AccountDetail{
		ID:          resp.Account.ID,
		Email:       resp.Account.Email,
		Name:        resp.Account.Name,
		Country:     resp.Account.Country,
		CreatedDate: formatDate(resp.Account.CreatedAt),
	}
	orders := buildOrderRows(resp.RecentOrders)
	tasks := buildTasksTable(accountID, resp.Tasks, loc)
	htmx.RenderPage(w, r,
		templates.AccountDetailContent(pageCtx, detail, orders, tasks, notice),
		templates.AccountDetailPage(pageCtx, pageTitle(loc, "title.accounts"), detail, orders, tasks, notice),
		htmxPageTitle(loc, "title.accounts"))
}

func buildOrderRows(orders []coreapi.OrderSummary) []templates.OrderRow {
	rows := make([]templates.OrderRow, 0, len(orders))
	for _, order := range orders {
		rows = append(rows, templates.OrderRow{
			ID:          order.Number,
			Total:       formatMoney(order.TotalCents, order.Currency),
			Status:      order.Status,
			PlacedDate:  formatDate(order.PlacedAt),
			ItemSummary: order.ItemSummary,
		})
	}
	return rows
}

func buildTasksTable(accountID string, tasks []coreapi.Task, loc *message.Printer) templates.TableView {
	columns := []string{
		loc.Sprintf("common.name"),
		loc.Sprintf("common.status"),
		loc.Sprintf("accounts.due"),
	}
	rows := make([]templates.TableRow, 0, len(tasks))
	for _, task := range tasks {
		row := templates.TableRow{
			Primary: task.Title,
			Cells: []string{
				task.Status,
				formatDate(task.DueDate),
			},
		}
		if task.Status == coreapi.TaskStatusOpen {
			row.Actions = []templates.RowAction{{
				Label: loc.Sprintf("accounts.task_done"),
				URL:   routepath.AccountTaskDone(accountID, task.ID),
			}}
		}
		rows = append(rows, row)
	}
	return templates.TableView{
		ID:          tasksTableID,
		Columns:     columns,
		Rows:        rows,
		Message:     loc.Sprintf("accounts.no_tasks"),
		HTMXBaseURL: routepath.AccountTasksTable(accountID),
	}
}

// handleAccountTasks creates a task on POST. Plain GETs land back on the
// account page.
func (h *Handler) handleAccountTasks(w http.ResponseWriter, r *http.Request, accountID string) {
	if r.Method != http.MethodPost {
		redirectTo(w, r, routepath.Account(accountID))
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
	title := strings.TrimSpace(r.FormValue("title"))
	if title == "" {
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

	draft := coreapi.TaskDraft{
		Title:   title,
		Notes:   strings.TrimSpace(r.FormValue("notes")),
		DueDate: strings.TrimSpace(r.FormValue("due_date")),
	}
	if _, err := client.CreateAccountTask(ctx, tenant, accountID, draft); err != nil {
		log.Printf("create account task: %v", err)
		http.Error(w, apiErrorMessage(err, loc), http.StatusBadGateway)
		return
	}
	h.recordAudit(r, tenant, "account.task_create", title)
	h.handleAccountTasksTable(w, r, accountID)
}

// handleAccountTasksTable returns the tasks table fragment.
func (h *Handler) handleAccountTasksTable(w http.ResponseWriter, r *http.Request, accountID string) {
	loc, tenant, _ := h.requestScope(w, r)
	client := h.coreAPI()
	if client == nil {
		http.Error(w, loc.Sprintf("error.service_unavailable"), http.StatusServiceUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.APIRequest)
	defer cancel()

	tasks, err := client.ListAccountTasks(ctx, tenant, accountID)
	if err != nil {
		log.Printf("list account tasks: %v", err)
		http.Error(w, apiErrorMessage(err, loc), http.StatusBadGateway)
		return
	}
	templ.Handler(templates.Table(buildTasksTable(accountID, tasks, loc))).ServeHTTP(w, r)
}

// handleAccountTaskDone marks a task complete and re-renders the tasks
// table.
func (h *Handler) handleAccountTaskDone(w http.ResponseWriter, r *http.Request, accountID string, taskID string) {
	if !postOnly(w, r) {
		return
	}
	loc, tenant, _ := h.requestScope(w, r)
	if !requireSameOrigin(w, r, loc) {
		return
	}
	client := h.coreAPI()
	if client == nil {
		http.Error(w, loc.Sprintf("error.service_unavailable"), http.StatusServiceUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.APIRequest)
	defer cancel()

	if err := client.CompleteAccountTask(ctx, tenant, accountID, taskID); err != nil {
		log.Printf("complete account task: %v", err)
		http.Error(w, apiErrorMessage(err, loc), http.StatusBadGateway)
		return
	}
	h.recordAudit(r, tenant, "account.task_done", taskID)
	h.handleAccountTasksTable(w, r, accountID)
}

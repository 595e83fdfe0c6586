package admin

import (
	"context"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/tidemarkhq/tidemark/internal/platform/timeouts"
	"github.com/tidemarkhq/tidemark/internal/services/admin/integration/coreapi"
	"github.com/tidemarkhq/tidemark/internal/services/admin/routepath"
	"github.com/tidemarkhq/tidemark/internal/services/admin/templates"
	"github.com/tidemarkhq/tidemark/internal/services/shared/htmx"
	"golang.org/x/text/message"
)

const campaignsTableID = "campaigns-table"

// scheduledForLayout parses the datetime-local form value.
const scheduledForLayout = "2006-01-02T15:04"

// handleCampaignsPage renders the campaigns index.
func (h *Handler) handleCampaignsPage(w http.ResponseWriter, r *http.Request) {
	loc, tenant, pageCtx := h.requestScope(w, r)
	table := h.loadCampaignsTable(r.Context(), tenant, r, loc)
	notice := noticeParam(r)
	htmx.RenderPage(w, r,
		templates.CampaignsContent(pageCtx, table, notice),
		templates.CampaignsPage(pageCtx, pageTitle(loc, "title.campaigns"), table, notice),
		htmxPageTitle(loc, "title.campaigns"))
}

// handleCampaignsTable returns one page of campaign rows for HTMX swaps.
func (h *Handler) handleCampaignsTable(w http.ResponseWriter, r *http.Request) {
	loc, tenant, _ := h.requestScope(w, r)
	table := h.loadCampaignsTable(r.Context(), tenant, r, loc)
	templ.Handler(templates.Table(table)).ServeHTTP(w, r)
}

func (h *Handler) loadCampaignsTable(ctx context.Context, tenant string, r *http.Request, loc *message.Printer) templates.TableView {
	columns := []string{
		loc.Sprintf("common.name"),
		loc.Sprintf("common.status"),
		loc.Sprintf("campaigns.subject"),
		loc.Sprintf("common.updated"),
	}
	client := h.coreAPI()
	if client == nil {
		return unavailableTable(campaignsTableID, routepath.CampaignsTable, columns, loc.Sprintf("error.service_unavailable"))
	}

	ctx, cancel := context.WithTimeout(ctx, timeouts.APIRequest)
	defer cancel()

	response, err := client.ListCampaigns(ctx, tenant, coreapi.ListCampaignsRequest{
		PageSize:  defaultPageSize,
		PageToken: pageToken(r),
	})
	if err != nil {
		log.Printf("list campaigns: %v", err)
		return unavailableTable(campaignsTableID, routepath.CampaignsTable, columns, apiErrorMessage(err, loc))
	}

	rows := make([]templates.TableRow, 0, len(response.Campaigns))
	for _, campaign := range response.Campaigns {
		rows = append(rows, templates.TableRow{
			Primary:   campaign.Name,
			DetailURL: routepath.Campaign(campaign.ID),
			Cells: []string{
				formatCampaignStatus(campaign.Status, loc),
				truncateText(campaign.Subject, descriptionCellLimit),
				formatDate(campaign.UpdatedAt),
			},
		})
	}
	return templates.TableView{
		ID:          campaignsTableID,
		Columns:     columns,
		Rows:        rows,
		Message:     loc.Sprintf("common.empty"),
		NextToken:   response.NextPageToken,
		HTMXBaseURL: routepath.CampaignsTable,
	}
}

// campaignBodyFile returns the uploaded HTML body file, when the form
// carries a non-empty one.
func campaignBodyFile(r *http.Request) (io.Reader, string, func()) {
	file, header, err := r.FormFile("body_file")
	if err != nil || header.Size == 0 {
		if err == nil {
			file.Close()
		}
		return nil, "", func() {}
	}
	return file, header.Filename, func() { file.Close() }
}

// handleCampaignCreate creates a draft campaign from the new-campaign
// form. An attached body file switches the request to multipart.
func (h *Handler) handleCampaignCreate(w http.ResponseWriter, r *http.Request) {
	if !postOnly(w, r) {
		return
	}
	loc, tenant, _ := h.requestScope(w, r)
	if !requireSameOrigin(w, r, loc) {
		return
	}
	bodyFile, bodyFileName, closeBody := campaignBodyFile(r)
	defer closeBody()
	name := strings.TrimSpace(r.FormValue("name"))
	subject := strings.TrimSpace(r.FormValue("subject"))
	if name == "" || subject == "" {
		http.Error(w, loc.Sprintf("error.invalid_request"), http.StatusBadRequest)
		return
	}
	draft := coreapi.CampaignDraft{
		Name:      name,
		Subject:   subject,
		FromName:  strings.TrimSpace(r.FormValue("from_name")),
		FromEmail: strings.TrimSpace(r.FormValue("from_email")),
		BodyHTML:  r.FormValue("body_html"),
	}
	if scheduledFor := strings.TrimSpace(r.FormValue("scheduled_for")); scheduledFor != "" {
		parsed, err := time.ParseInLocation(scheduledForLayout, scheduledFor, time.Local)
		if err != nil {
			http.Error(w, loc.Sprintf("error.invalid_request"), http.StatusBadRequest)
			return
		}
		draft.ScheduledAt = parsed.UTC().Format(time.RFC3339)
	}
	client := h.coreAPI()
	if client == nil {
		http.Error(w, loc.Sprintf("error.service_unavailable"), http.StatusServiceUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.APIUpload)
	defer cancel()

	var created coreapi.Campaign
	var err error
	if bodyFile != nil {
		draft.BodyHTML = ""
		created, err = client.CreateCampaignForm(ctx, tenant, draft, bodyFileName, bodyFile)
	} else {
		created, err = client.CreateCampaign(ctx, tenant, draft)
	}
	if err != nil {
		log.Printf("create campaign: %v", err)
		http.Error(w, apiErrorMessage(err, loc), http.StatusBadGateway)
		return
	}
	h.recordAudit(r, tenant, "campaign.create", created.Name)
	redirectTo(w, r, routepath.Campaign(created.ID))
}

// handleCampaignDetail renders the campaign detail page.
func (h *Handler) handleCampaignDetail(w http.ResponseWriter, r *http.Request, campaignID string) {
	h.renderCampaignDetail(w, r, campaignID, "")
}

func (h *Handler) renderCampaignDetail(w http.ResponseWriter, r *http.Request, campaignID string, notice string) {
	loc, tenant, pageCtx := h.requestScope(w, r)
	detail, attachable, errMessage := h.loadCampaignDetail(r.Context(), tenant, campaignID, loc)
	if errMessage != "" {
		http.Error(w, errMessage, http.StatusNotFound)
		return
	}
	htmx.RenderPage(w, r,
		templates.CampaignDetailContent(pageCtx, detail, attachable, notice),
		templates.CampaignDetailPage(pageCtx, pageTitle(loc, "title.campaign_detail"), detail, attachable, notice),
		htmxPageTitle(loc, "title.campaign_detail"))
}

func (h *Handler) loadCampaignDetail(ctx context.Context, tenant string, campaignID string, loc *message.Printer) (templates.CampaignDetail, []templates.SelectOption, string) {
	client := h.coreAPI()
	if client == nil {
		return templates.CampaignDetail{}, nil, loc.Sprintf("error.service_unavailable")
	}

	ctx, cancel := context.WithTimeout(ctx, timeouts.APIRequest)
	defer cancel()

	campaign, err := client.GetCampaign(ctx, tenant, campaignID)
	if err != nil {
		log.Printf("get campaign: %v", err)
		return templates.CampaignDetail{}, nil, apiErrorMessage(err, loc)
	}

	detail := templates.CampaignDetail{
		ID:           campaign.ID,
		Name:         campaign.Name,
		Subject:      campaign.Subject,
		FromName:     campaign.FromName,
		FromEmail:    campaign.FromEmail,
		BodyHTML:     campaign.BodyHTML,
		Status:       formatCampaignStatus(campaign.Status, loc),
		StatusTone:   campaignStatusTone(campaign.Status),
		ScheduledFor: formatDateTime(campaign.ScheduledAt),
		UpdatedDate:  formatDate(campaign.UpdatedAt),
		Stats: templates.CampaignStatsView{
			Sent:    formatCount(campaign.Stats.Delivered),
			Opened:  formatCount(campaign.Stats.Opened),
			Clicked: formatCount(campaign.Stats.Clicked),
			Bounced: formatCount(campaign.Stats.Recipients - campaign.Stats.Delivered),
		},
		Draft:      campaign.Status == coreapi.CampaignStatusDraft,
		Cancelable: campaign.Status == coreapi.CampaignStatusScheduled || campaign.Status == coreapi.CampaignStatusSending,
	}

	// Names for target lists and the attach select come from the lists index.
	targetSet := make(map[string]bool, len(campaign.TargetListIDs))
	for _, listID := range campaign.TargetListIDs {
		targetSet[listID] = true
		detail.TargetLists = append(detail.TargetLists, templates.CampaignListRef{ID: listID, Name: listID})
	}
	listsResponse, err := client.ListLists(ctx, tenant, coreapi.ListListsRequest{PageSize: defaultPageSize})
	if err != nil {
		log.Printf("list lists for campaign: %v", err)
		return detail, nil, ""
	}
	var attachable []templates.SelectOption
	for _, list := range listsResponse.Lists {
		if targetSet[list.ID] {
			for i := range detail.TargetLists {
				if detail.TargetLists[i].ID == list.ID {
					detail.TargetLists[i].Name = list.Name
				}
			}
			continue
		}
		attachable = append(attachable, templates.SelectOption{Value: list.ID, Label: list.Name})
	}
	return detail, attachable, ""
}

// handleCampaignUpdate applies edits to a draft campaign. A new body
// file switches the request to multipart and replaces the stored body.
func (h *Handler) handleCampaignUpdate(w http.ResponseWriter, r *http.Request, campaignID string) {
	if !postOnly(w, r) {
		return
	}
	loc, tenant, _ := h.requestScope(w, r)
	if !requireSameOrigin(w, r, loc) {
		return
	}
	bodyFile, bodyFileName, closeBody := campaignBodyFile(r)
	defer closeBody()
	client := h.coreAPI()
	if client == nil {
		http.Error(w, loc.Sprintf("error.service_unavailable"), http.StatusServiceUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.APIUpload)
	defer cancel()

	campaign, err := client.GetCampaign(ctx, tenant, campaignID)
	if err != nil {
		log.Printf("get campaign for update: %v", err)
		http.Error(w, apiErrorMessage(err, loc), http.StatusBadGateway)
		return
	}
	draft := draftFromCampaign(campaign)
	if name := strings.TrimSpace(r.FormValue("name")); name != "" {
		draft.Name = name
	}
	if subject := strings.TrimSpace(r.FormValue("subject")); subject != "" {
		draft.Subject = subject
	}
	if fromName := strings.TrimSpace(r.FormValue("from_name")); fromName != "" {
		draft.FromName = fromName
	}
	if fromEmail := strings.TrimSpace(r.FormValue("from_email")); fromEmail != "" {
		draft.FromEmail = fromEmail
	}
	if body := r.FormValue("body_html"); strings.TrimSpace(body) != "" {
		draft.BodyHTML = body
	}
	if bodyFile != nil {
		draft.BodyHTML = ""
		_, err = client.UpdateCampaignForm(ctx, tenant, campaignID, draft, bodyFileName, bodyFile)
	} else {
		_, err = client.UpdateCampaign(ctx, tenant, campaignID, draft)
	}
	if err != nil {
		log.Printf("update campaign: %v", err)
		http.Error(w, apiErrorMessage(err, loc), http.StatusBadGateway)
		return
	}
	h.recordAudit(r, tenant, "campaign.update", draft.Name)
	h.renderCampaignDetail(w, r, campaignID, loc.Sprintf("common.updated"))
}

func draftFromCampaign(campaign coreapi.Campaign) coreapi.CampaignDraft {
	return coreapi.CampaignDraft{
		Name:        campaign.Name,
		Subject:     campaign.Subject,
		FromName:    campaign.FromName,
		FromEmail:   campaign.FromEmail,
		BodyHTML:    campaign.BodyHTML,
		ScheduledAt: campaign.ScheduledAt,
	}
}

// handleCampaignSend sends the campaign now, or schedules it when the form
// carries a future timestamp.
func (h *Handler) handleCampaignSend(w http.ResponseWriter, r *http.Request, campaignID string) {
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
	client := h.coreAPI()
	if client == nil {
		http.Error(w, loc.Sprintf("error.service_unavailable"), http.StatusServiceUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.APIRequest)
	defer cancel()

	if scheduledFor := strings.TrimSpace(r.FormValue("scheduled_for")); scheduledFor != "" {
		parsed, err := time.ParseInLocation(scheduledForLayout, scheduledFor, time.Local)
		if err != nil {
			http.Error(w, loc.Sprintf("error.invalid_request"), http.StatusBadRequest)
			return
		}
		campaign, err := client.GetCampaign(ctx, tenant, campaignID)
		if err != nil {
			log.Printf("get campaign for schedule: %v", err)
			http.Error(w, apiErrorMessage(err, loc), http.StatusBadGateway)
			return
		}
		draft := draftFromCampaign(campaign)
		draft.ScheduledAt = parsed.UTC().Format(time.RFC3339)
		if _, err := client.UpdateCampaign(ctx, tenant, campaignID, draft); err != nil {
			log.Printf("schedule campaign: %v", err)
			http.Error(w, apiErrorMessage(err, loc), http.StatusBadGateway)
			return
		}
	}
	if err := client.SendCampaign(ctx, tenant, campaignID); err != nil {
		log.Printf("send campaign: %v", err)
		http.Error(w, apiErrorMessage(err, loc), http.StatusBadGateway)
		return
	}
	h.recordAudit(r, tenant, "campaign.send", campaignID)
	h.renderCampaignDetail(w, r, campaignID, "")
}

// handleCampaignCancel stops a scheduled or in-flight send.
func (h *Handler) handleCampaignCancel(w http.ResponseWriter, r *http.Request, campaignID string) {
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

	if err := client.CancelCampaign(ctx, tenant, campaignID); err != nil {
		log.Printf("cancel campaign: %v", err)
		http.Error(w, apiErrorMessage(err, loc), http.StatusBadGateway)
		return
	}
	h.recordAudit(r, tenant, "campaign.cancel", campaignID)
	h.renderCampaignDetail(w, r, campaignID, "")
}

// handleCampaignListAttach adds a target list to a draft campaign.
func (h *Handler) handleCampaignListAttach(w http.ResponseWriter, r *http.Request, campaignID string) {
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

	if err := client.AttachTargetList(ctx, tenant, campaignID, listID); err != nil {
		log.Printf("attach target list: %v", err)
		http.Error(w, apiErrorMessage(err, loc), http.StatusBadGateway)
		return
	}
	h.recordAudit(r, tenant, "campaign.list_attach", listID)
	h.renderCampaignDetail(w, r, campaignID, "")
}

// handleCampaignListDetach removes a target list from a draft campaign.
func (h *Handler) handleCampaignListDetach(w http.ResponseWriter, r *http.Request, campaignID string, listID string) {
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

	if err := client.DetachTargetList(ctx, tenant, campaignID, listID); err != nil {
		log.Printf("detach target list: %v", err)
		http.Error(w, apiErrorMessage(err, loc), http.StatusBadGateway)
		return
	}
	h.recordAudit(r, tenant, "campaign.list_detach", listID)
	h.renderCampaignDetail(w, r, campaignID, "")
}

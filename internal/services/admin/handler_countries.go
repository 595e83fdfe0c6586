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

const countriesTableID = "countries-table"

// handleCountriesPage renders the countries reference data page.
func (h *Handler) handleCountriesPage(w http.ResponseWriter, r *http.Request) {
	h.renderCountriesPage(w, r, "")
}

func (h *Handler) renderCountriesPage(w http.ResponseWriter, r *http.Request, notice string) {
	loc, tenant, pageCtx := h.requestScope(w, r)
	table := h.loadCountriesTable(r.Context(), tenant, loc)
	htmx.RenderPage(w, r,
		templates.CountriesContent(pageCtx, table, notice),
		templates.CountriesPage(pageCtx, pageTitle(loc, "title.countries"), table, notice),
		htmxPageTitle(loc, "title.countries"))
}

// handleCountriesTable returns the countries table fragment.
func (h *Handler) handleCountriesTable(w http.ResponseWriter, r *http.Request) {
	loc, tenant, _ := h.requestScope(w, r)
	table := h.loadCountriesTable(r.Context(), tenant, loc)
	templ.Handler(templates.Table(table)).ServeHTTP(w, r)
}

func (h *Handler) loadCountriesTable(ctx context.Context, tenant string, loc *message.Printer) templates.TableView {
	columns := []string{
		loc.Sprintf("countries.code"),
		loc.Sprintf("common.name"),
		loc.Sprintf("countries.currency"),
		loc.Sprintf("countries.enabled"),
	}
	client := h.coreAPI()
	if client == nil {
		return unavailableTable(countriesTableID, routepath.CountriesTable, columns, loc.Sprintf("error.service_unavailable"))
	}

	ctx, cancel := context.WithTimeout(ctx, timeouts.APIRequest)
	defer cancel()

	countries, err := client.ListCountries(ctx, tenant)
	if err != nil {
		log.Printf("list countries: %v", err)
		return unavailableTable(countriesTableID, routepath.CountriesTable, columns, apiErrorMessage(err, loc))
	}

	rows := make([]templates.TableRow, 0, len(countries))
	for _, country := range countries {
		enabled := loc.Sprintf("landing.disabled")
		action := templates.RowAction{
			Label: loc.Sprintf("common.enable"),
			URL:   routepath.CountryEnable(country.Code),
		}
		if country.Enabled {
			enabled = loc.Sprintf("landing.enabled")
			action = templates.RowAction{
				Label: loc.Sprintf("common.disable"),
				URL:   routepath.CountryDisable(country.Code),
			}
		}
		rows = append(rows, templates.TableRow{
			Primary: country.Code,
			Cells: []string{
				country.Name,
				country.Currency,
				enabled,
			},
			Actions: []templates.RowAction{action},
		})
	}
	return templates.TableView{
		ID:          countriesTableID,
		Columns:     columns,
		Rows:        rows,
		Message:     loc.Sprintf("common.empty"),
		HTMXBaseURL: routepath.CountriesTable,
	}
}

// handleCountryCreate registers a new country and re-renders the page.
func (h *Handler) handleCountryCreate(w http.ResponseWriter, r *http.Request) {
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
	draft := coreapi.CountryDraft{
		Code:     strings.ToUpper(strings.TrimSpace(r.FormValue("code"))),
		Name:     strings.TrimSpace(r.FormValue("name")),
		Currency: strings.ToUpper(strings.TrimSpace(r.FormValue("currency"))),
	}
	if draft.Code == "" || draft.Name == "" || draft.Currency == "" {
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

	if _, err := client.CreateCountry(ctx, tenant, draft); err != nil {
		log.Printf("create country: %v", err)
		http.Error(w, apiErrorMessage(err, loc), http.StatusBadGateway)
		return
	}
	h.recordAudit(r, tenant, "country.create", draft.Code)
	h.renderCountriesPage(w, r, loc.Sprintf("common.created"))
}

// handleCountryUpdate edits a country's name or currency.
func (h *Handler) handleCountryUpdate(w http.ResponseWriter, r *http.Request, code string) {
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

	var existing coreapi.Country
	{
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.APIRequest)
		countries, err := client.ListCountries(ctx, tenant)
		cancel()
		if err != nil {
			log.Printf("list countries: %v", err)
			http.Error(w, apiErrorMessage(err, loc), http.StatusBadGateway)
			return
		}
		found := false
		for _, country := range countries {
			if country.Code == code {
				existing = country
				found = true
				break
			}
		}
		if !found {
			http.Error(w, loc.Sprintf("error.not_found"), http.StatusNotFound)
			return
		}
	}

	draft := coreapi.CountryDraft{
		Code:     existing.Code,
		Name:     existing.Name,
		Currency: existing.Currency,
	}
	if name := strings.TrimSpace(r.FormValue("name")); name != "" {
		draft.Name = name
	}
	if currency := strings.ToUpper(strings.TrimSpace(r.FormValue("currency"))); currency != "" {
		draft.Currency = currency
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.APIRequest)
	defer cancel()

	if _, err := client.UpdateCountry(ctx, tenant, code, draft); err != nil {
		log.Printf("update country: %v", err)
		http.Error(w, apiErrorMessage(err, loc), http.StatusBadGateway)
		return
	}
	h.recordAudit(r, tenant, "country.update", code)
	h.handleCountriesTable(w, r)
}

// handleCountryEnable makes a country available at checkout.
func (h *Handler) handleCountryEnable(w http.ResponseWriter, r *http.Request, code string) {
	h.setCountryEnabled(w, r, code, true)
}

// handleCountryDisable withdraws a country from checkout. Existing
// orders keep their country reference.
func (h *Handler) handleCountryDisable(w http.ResponseWriter, r *http.Request, code string) {
	h.setCountryEnabled(w, r, code, false)
}

func (h *Handler) setCountryEnabled(w http.ResponseWriter, r *http.Request, code string, enabled bool) {
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

	if err := client.SetCountryEnabled(ctx, tenant, code, enabled); err != nil {
		log.Printf("set country enabled: %v", err)
		http.Error(w, apiErrorMessage(err, loc), http.StatusBadGateway)
		return
	}
	action := "country.disable"
	if enabled {
		action = "country.enable"
	}
	h.recordAudit(r, tenant, action, code)
	h.handleCountriesTable(w, r)
}

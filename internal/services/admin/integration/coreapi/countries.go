package coreapi

import "context"

// ListCountries returns the tenant's country reference data. The set is
// bounded so no pagination is offered.
func (c *Client) ListCountries(ctx context.Context, tenant string) ([]Country, error) {
	var resp struct {
		Countries []Country `json:"countries"`
	}
	err := c.get(ctx, tenantPath(tenant, "countries"), nil, &resp)
	return resp.Countries, err
}

// CountryDraft carries the editable country fields.
type CountryDraft struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Currency string `json:"currency"`
}

// CreateCountry adds a country to the tenant's reference data.
func (c *Client) CreateCountry(ctx context.Context, tenant string, draft CountryDraft) (Country, error) {
	var resp struct {
		Country Country `json:"country"`
	}
	err := c.postJSON(ctx, tenantPath(tenant, "countries"), draft, &resp)
	return resp.Country, err
}

// UpdateCountry replaces the editable fields of a country.
func (c *Client) UpdateCountry(ctx context.Context, tenant string, code string, draft CountryDraft) (Country, error) {
	var resp struct {
		Country Country `json:"country"`
	}
	err := c.putJSON(ctx, tenantPath(tenant, "countries", code), draft, &resp)
	return resp.Country, err
}

// SetCountryEnabled toggles a country's availability at checkout.
func (c *Client) SetCountryEnabled(ctx context.Context, tenant string, code string, enabled bool) error {
	payload := struct {
		Enabled bool `json:"enabled"`
	}{Enabled: enabled}
	return c.postJSON(ctx, tenantPath(tenant, "countries", code, "enabled"), payload, nil)
}

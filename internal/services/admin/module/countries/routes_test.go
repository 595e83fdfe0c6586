package countries

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeService struct {
	lastCall string
	lastCode string
}

func (f *fakeService) HandleCountriesPage(http.ResponseWriter, *http.Request) {
	f.lastCall = "countries_page"
}

func (f *fakeService) HandleCountriesTable(http.ResponseWriter, *http.Request) {
	f.lastCall = "countries_table"
}

func (f *fakeService) HandleCountryCreate(http.ResponseWriter, *http.Request) {
	f.lastCall = "countries_create"
}

func (f *fakeService) HandleCountryUpdate(_ http.ResponseWriter, _ *http.Request, code string) {
	f.lastCall = "country_update"
	f.lastCode = code
}

func (f *fakeService) HandleCountryEnable(_ http.ResponseWriter, _ *http.Request, code string) {
	f.lastCall = "country_enable"
	f.lastCode = code
}

func (f *fakeService) HandleCountryDisable(_ http.ResponseWriter, _ *http.Request, code string) {
	f.lastCall = "country_disable"
	f.lastCode = code
}

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	svc := &fakeService{}
	mux := http.NewServeMux()
	RegisterRoutes(mux, svc)

	tests := []struct {
		path     string
		method   string
		wantCode int
		wantCall string
		wantISO  string
	}{
		{path: "/countries", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "countries_page"},
		{path: "/countries/table", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "countries_table"},
		{path: "/countries/create", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "countries_create"},
		{path: "/countries/BR/update", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "country_update", wantISO: "BR"},
		{path: "/countries/BR/enable", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "country_enable", wantISO: "BR"},
		{path: "/countries/BR/disable", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "country_disable", wantISO: "BR"},
		{path: "/countries/BR", method: http.MethodGet, wantCode: http.StatusNotFound},
		{path: "/countries/BR/unknown", method: http.MethodGet, wantCode: http.StatusNotFound},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.path, func(t *testing.T) {
			svc.lastCall = ""
			svc.lastCode = ""

			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantCode)
			}
			if svc.lastCall != tc.wantCall {
				t.Fatalf("lastCall = %q, want %q", svc.lastCall, tc.wantCall)
			}
			if svc.lastCode != tc.wantISO {
				t.Fatalf("lastCode = %q, want %q", svc.lastCode, tc.wantISO)
			}
		})
	}
}

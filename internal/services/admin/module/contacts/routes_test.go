package contacts

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeService struct {
	lastCall    string
	lastContact string
}

func (f *fakeService) HandleContactsPage(http.ResponseWriter, *http.Request) {
	f.lastCall = "contacts_page"
}

func (f *fakeService) HandleContactsTable(http.ResponseWriter, *http.Request) {
	f.lastCall = "contacts_table"
}

func (f *fakeService) HandleContactLookup(http.ResponseWriter, *http.Request) {
	f.lastCall = "contacts_lookup"
}

func (f *fakeService) HandleContactDetail(_ http.ResponseWriter, _ *http.Request, contactID string) {
	f.lastCall = "contact_detail"
	f.lastContact = contactID
}

func (f *fakeService) HandleContactMemberships(_ http.ResponseWriter, _ *http.Request, contactID string) {
	f.lastCall = "contact_memberships"
	f.lastContact = contactID
}

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	svc := &fakeService{}
	mux := http.NewServeMux()
	RegisterRoutes(mux, svc)

	tests := []struct {
		path        string
		method      string
		wantCode    int
		wantCall    string
		wantContact string
	}{
		{path: "/contacts", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "contacts_page"},
		{path: "/contacts/table", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "contacts_table"},
		{path: "/contacts/lookup", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "contacts_lookup"},
		{path: "/contacts/c-1", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "contact_detail", wantContact: "c-1"},
		{path: "/contacts/c-1/memberships", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "contact_memberships", wantContact: "c-1"},
		{path: "/contacts/c-1/memberships/extra", method: http.MethodGet, wantCode: http.StatusNotFound},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.path, func(t *testing.T) {
			svc.lastCall = ""
			svc.lastContact = ""

			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantCode)
			}
			if svc.lastCall != tc.wantCall {
				t.Fatalf("lastCall = %q, want %q", svc.lastCall, tc.wantCall)
			}
			if svc.lastContact != tc.wantContact {
				t.Fatalf("lastContact = %q, want %q", svc.lastContact, tc.wantContact)
			}
		})
	}
}

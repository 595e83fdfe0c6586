package lists

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeService struct {
	lastCall    string
	lastList    string
	lastContact string
}

func (f *fakeService) HandleListsPage(http.ResponseWriter, *http.Request) {
	f.lastCall = "lists_page"
}

func (f *fakeService) HandleListsTable(http.ResponseWriter, *http.Request) {
	f.lastCall = "lists_table"
}

func (f *fakeService) HandleListCreate(http.ResponseWriter, *http.Request) {
	f.lastCall = "lists_create"
}

func (f *fakeService) HandleListDetail(_ http.ResponseWriter, _ *http.Request, listID string) {
	f.lastCall = "list_detail"
	f.lastList = listID
}

func (f *fakeService) HandleListDelete(_ http.ResponseWriter, _ *http.Request, listID string) {
	f.lastCall = "list_delete"
	f.lastList = listID
}

func (f *fakeService) HandleListImport(_ http.ResponseWriter, _ *http.Request, listID string) {
	f.lastCall = "list_import"
	f.lastList = listID
}

func (f *fakeService) HandleListMembers(_ http.ResponseWriter, _ *http.Request, listID string) {
	f.lastCall = "list_members"
	f.lastList = listID
}

func (f *fakeService) HandleListMembersTable(_ http.ResponseWriter, _ *http.Request, listID string) {
	f.lastCall = "list_members_table"
	f.lastList = listID
}

func (f *fakeService) HandleListMemberRemove(_ http.ResponseWriter, _ *http.Request, listID string, contactID string) {
	f.lastCall = "list_member_remove"
	f.lastList = listID
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
		wantList    string
		wantContact string
	}{
		{path: "/lists", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "lists_page"},
		{path: "/lists/table", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "lists_table"},
		{path: "/lists/create", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "lists_create"},
		{path: "/lists/l-1", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "list_detail", wantList: "l-1"},
		{path: "/lists/l-1/delete", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "list_delete", wantList: "l-1"},
		{path: "/lists/l-1/import", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "list_import", wantList: "l-1"},
		{path: "/lists/l-1/members", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "list_members", wantList: "l-1"},
		{path: "/lists/l-1/members/table", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "list_members_table", wantList: "l-1"},
		{path: "/lists/l-1/members/c-1/remove", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "list_member_remove", wantList: "l-1", wantContact: "c-1"},
		{path: "/lists/l-1/members/c-1/extra/bits", method: http.MethodGet, wantCode: http.StatusNotFound},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.path, func(t *testing.T) {
			svc.lastCall = ""
			svc.lastList = ""
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
			if svc.lastList != tc.wantList {
				t.Fatalf("lastList = %q, want %q", svc.lastList, tc.wantList)
			}
			if svc.lastContact != tc.wantContact {
				t.Fatalf("lastContact = %q, want %q", svc.lastContact, tc.wantContact)
			}
		})
	}
}

func TestHandleListPathRedirectsTrailingSlash(t *testing.T) {
	t.Parallel()

	svc := &fakeService{}
	req := httptest.NewRequest(http.MethodGet, "/lists/l-1/", nil)
	rec := httptest.NewRecorder()

	HandleListPath(rec, req, svc)

	if rec.Code != http.StatusMovedPermanently {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusMovedPermanently)
	}
	if location := rec.Header().Get("Location"); location != "/lists/l-1" {
		t.Fatalf("location = %q, want %q", location, "/lists/l-1")
	}
}

package campaigns

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeService struct {
	lastCall     string
	lastCampaign string
	lastList     string
}

func (f *fakeService) HandleCampaignsPage(http.ResponseWriter, *http.Request) {
	f.lastCall = "campaigns_page"
}

func (f *fakeService) HandleCampaignsTable(http.ResponseWriter, *http.Request) {
	f.lastCall = "campaigns_table"
}

func (f *fakeService) HandleCampaignCreate(http.ResponseWriter, *http.Request) {
	f.lastCall = "campaigns_create"
}

func (f *fakeService) HandleCampaignDetail(_ http.ResponseWriter, _ *http.Request, campaignID string) {
	f.lastCall = "campaign_detail"
	f.lastCampaign = campaignID
}

func (f *fakeService) HandleCampaignUpdate(_ http.ResponseWriter, _ *http.Request, campaignID string) {
	f.lastCall = "campaign_update"
	f.lastCampaign = campaignID
}

func (f *fakeService) HandleCampaignSend(_ http.ResponseWriter, _ *http.Request, campaignID string) {
	f.lastCall = "campaign_send"
	f.lastCampaign = campaignID
}

func (f *fakeService) HandleCampaignCancel(_ http.ResponseWriter, _ *http.Request, campaignID string) {
	f.lastCall = "campaign_cancel"
	f.lastCampaign = campaignID
}

func (f *fakeService) HandleCampaignListAttach(_ http.ResponseWriter, _ *http.Request, campaignID string) {
	f.lastCall = "campaign_list_attach"
	f.lastCampaign = campaignID
}

func (f *fakeService) HandleCampaignListDetach(_ http.ResponseWriter, _ *http.Request, campaignID string, listID string) {
	f.lastCall = "campaign_list_detach"
	f.lastCampaign = campaignID
	f.lastList = listID
}

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	svc := &fakeService{}
	mux := http.NewServeMux()
	RegisterRoutes(mux, svc)

	tests := []struct {
		path         string
		method       string
		wantCode     int
		wantCall     string
		wantCampaign string
		wantList     string
	}{
		{path: "/campaigns", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "campaigns_page"},
		{path: "/campaigns/table", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "campaigns_table"},
		{path: "/campaigns/create", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "campaigns_create"},
		{path: "/campaigns/camp-1", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "campaign_detail", wantCampaign: "camp-1"},
		{path: "/campaigns/camp-1/update", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "campaign_update", wantCampaign: "camp-1"},
		{path: "/campaigns/camp-1/send", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "campaign_send", wantCampaign: "camp-1"},
		{path: "/campaigns/camp-1/cancel", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "campaign_cancel", wantCampaign: "camp-1"},
		{path: "/campaigns/camp-1/lists/attach", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "campaign_list_attach", wantCampaign: "camp-1"},
		{path: "/campaigns/camp-1/lists/l-1/detach", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "campaign_list_detach", wantCampaign: "camp-1", wantList: "l-1"},
		{path: "/campaigns/camp-1/lists/l-1/detach/extra", method: http.MethodGet, wantCode: http.StatusNotFound},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.path, func(t *testing.T) {
			svc.lastCall = ""
			svc.lastCampaign = ""
			svc.lastList = ""

			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantCode)
			}
			if svc.lastCall != tc.wantCall {
				t.Fatalf("lastCall = %q, want %q", svc.lastCall, tc.wantCall)
			}
			if svc.lastCampaign != tc.wantCampaign {
				t.Fatalf("lastCampaign = %q, want %q", svc.lastCampaign, tc.wantCampaign)
			}
			if svc.lastList != tc.wantList {
				t.Fatalf("lastList = %q, want %q", svc.lastList, tc.wantList)
			}
		})
	}
}

func TestHandleCampaignPathRedirectsTrailingSlash(t *testing.T) {
	t.Parallel()

	svc := &fakeService{}
	req := httptest.NewRequest(http.MethodGet, "/campaigns/camp-1/", nil)
	rec := httptest.NewRecorder()

	HandleCampaignPath(rec, req, svc)

	if rec.Code != http.StatusMovedPermanently {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusMovedPermanently)
	}
	if location := rec.Header().Get("Location"); location != "/campaigns/camp-1" {
		t.Fatalf("location = %q, want %q", location, "/campaigns/camp-1")
	}
}

package verification

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeService struct {
	lastCall string
	lastJob  string
}

func (f *fakeService) HandleVerificationPage(http.ResponseWriter, *http.Request) {
	f.lastCall = "verification_page"
}

func (f *fakeService) HandleVerificationTable(http.ResponseWriter, *http.Request) {
	f.lastCall = "verification_table"
}

func (f *fakeService) HandleVerificationStart(http.ResponseWriter, *http.Request) {
	f.lastCall = "verification_start"
}

func (f *fakeService) HandleVerificationJobDetail(_ http.ResponseWriter, _ *http.Request, jobID string) {
	f.lastCall = "verification_job_detail"
	f.lastJob = jobID
}

func (f *fakeService) HandleVerificationJobDownload(_ http.ResponseWriter, _ *http.Request, jobID string) {
	f.lastCall = "verification_job_download"
	f.lastJob = jobID
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
		wantJob  string
	}{
		{path: "/verification", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "verification_page"},
		{path: "/verification/table", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "verification_table"},
		{path: "/verification/start", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "verification_start"},
		{path: "/verification/job-1", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "verification_job_detail", wantJob: "job-1"},
		{path: "/verification/job-1/download", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "verification_job_download", wantJob: "job-1"},
		{path: "/verification/job-1/download/extra", method: http.MethodGet, wantCode: http.StatusNotFound},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.path, func(t *testing.T) {
			svc.lastCall = ""
			svc.lastJob = ""

			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantCode)
			}
			if svc.lastCall != tc.wantCall {
				t.Fatalf("lastCall = %q, want %q", svc.lastCall, tc.wantCall)
			}
			if svc.lastJob != tc.wantJob {
				t.Fatalf("lastJob = %q, want %q", svc.lastJob, tc.wantJob)
			}
		})
	}
}

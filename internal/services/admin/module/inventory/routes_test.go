package inventory

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeService struct {
	lastCall string
	lastItem string
}

func (f *fakeService) HandleInventoryPage(http.ResponseWriter, *http.Request) {
	f.lastCall = "inventory_page"
}

func (f *fakeService) HandleInventoryTable(http.ResponseWriter, *http.Request) {
	f.lastCall = "inventory_table"
}

func (f *fakeService) HandleItemDetail(_ http.ResponseWriter, _ *http.Request, itemID string) {
	f.lastCall = "item_detail"
	f.lastItem = itemID
}

func (f *fakeService) HandleItemTransition(_ http.ResponseWriter, _ *http.Request, itemID string) {
	f.lastCall = "item_transition"
	f.lastItem = itemID
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
		wantItem string
	}{
		{path: "/inventory", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "inventory_page"},
		{path: "/inventory/table", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "inventory_table"},
		{path: "/inventory/item-1", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "item_detail", wantItem: "item-1"},
		{path: "/inventory/item-1/transition", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "item_transition", wantItem: "item-1"},
		{path: "/inventory/item-1/transition/extra", method: http.MethodGet, wantCode: http.StatusNotFound},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.path, func(t *testing.T) {
			svc.lastCall = ""
			svc.lastItem = ""

			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantCode)
			}
			if svc.lastCall != tc.wantCall {
				t.Fatalf("lastCall = %q, want %q", svc.lastCall, tc.wantCall)
			}
			if svc.lastItem != tc.wantItem {
				t.Fatalf("lastItem = %q, want %q", svc.lastItem, tc.wantItem)
			}
		})
	}
}

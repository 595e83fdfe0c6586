package coreapi

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(Config{
		BaseURL:      server.URL,
		ServiceToken: "svc-token",
		HTTPClient:   server.Client(),
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func TestNewRequiresBaseURL(t *testing.T) {
	t.Parallel()

	if _, err := New(Config{}); err == nil {
		t.Fatal("expected error for empty base url")
	}
}

func TestListListsScopesTenantAndPagination(t *testing.T) {
	t.Parallel()

	var gotPath, gotQuery, gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"lists":[{"id":"l-1","name":"VIP","list_type":"STATIC","member_count":3}],"next_page_token":"tok-2"}`))
	})

	resp, err := client.ListLists(context.Background(), "acme", ListListsRequest{
		PageSize:  25,
		PageToken: "tok-1",
		Query:     "vip",
	})
	if err != nil {
		t.Fatalf("list lists: %v", err)
	}

	if gotPath != "/api/v1/tenants/acme/lists" {
		t.Fatalf("path = %q", gotPath)
	}
	if !strings.Contains(gotQuery, "page_size=25") || !strings.Contains(gotQuery, "page_token=tok-1") || !strings.Contains(gotQuery, "q=vip") {
		t.Fatalf("query = %q", gotQuery)
	}
	if gotAuth != "Bearer svc-token" {
		t.Fatalf("authorization = %q", gotAuth)
	}
	if len(resp.Lists) != 1 || resp.Lists[0].Name != "VIP" {
		t.Fatalf("lists = %+v", resp.Lists)
	}
	if resp.NextPageToken != "tok-2" {
		t.Fatalf("next page token = %q", resp.NextPageToken)
	}
}

func TestCreateListPostsJSON(t *testing.T) {
	t.Parallel()

	var gotMethod, gotContentType, gotBody string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		_, _ = w.Write([]byte(`{"list":{"id":"l-9","name":"New","list_type":"STATIC"}}`))
	})

	list, err := client.CreateList(context.Background(), "acme", CreateListRequest{
		Name:       "New",
		Type:       ListTypeStatic,
		ContactIDs: []string{"c-1", "c-2"},
	})
	if err != nil {
		t.Fatalf("create list: %v", err)
	}

	if gotMethod != http.MethodPost {
		t.Fatalf("method = %q", gotMethod)
	}
	if gotContentType != "application/json" {
		t.Fatalf("content type = %q", gotContentType)
	}
	if !strings.Contains(gotBody, `"initial_contacts":["c-1","c-2"]`) {
		t.Fatalf("body = %q", gotBody)
	}
	if list.ID != "l-9" {
		t.Fatalf("list id = %q", list.ID)
	}
}

func TestImportListMembersStreamsMultipart(t *testing.T) {
	t.Parallel()

	var gotContentType string
	var gotFile string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()
		content, _ := io.ReadAll(file)
		gotFile = header.Filename + ":" + string(content)
		_, _ = w.Write([]byte(`{"imported":2,"skipped":1}`))
	})

	result, err := client.ImportListMembers(context.Background(), "acme", "l-1", "contacts.csv", strings.NewReader("a@x.com\nb@x.com\n"))
	if err != nil {
		t.Fatalf("import members: %v", err)
	}

	if !strings.HasPrefix(gotContentType, "multipart/form-data") {
		t.Fatalf("content type = %q", gotContentType)
	}
	if gotFile != "contacts.csv:a@x.com\nb@x.com\n" {
		t.Fatalf("uploaded file = %q", gotFile)
	}
	if result.Imported != 2 || result.Skipped != 1 {
		t.Fatalf("result = %+v", result)
	}
}

func TestErrorEnvelopeDecoding(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":{"code":"list_name_taken","message":"a list with this name exists"}}`))
	})

	_, err := client.CreateList(context.Background(), "acme", CreateListRequest{Name: "Dup", Type: ListTypeStatic})
	if err == nil {
		t.Fatal("expected error")
	}

	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusConflict {
		t.Fatalf("status = %d", apiErr.StatusCode)
	}
	if apiErr.Code != "list_name_taken" {
		t.Fatalf("code = %q", apiErr.Code)
	}
	if !strings.Contains(apiErr.Error(), "list_name_taken") {
		t.Fatalf("error string = %q", apiErr.Error())
	}
}

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"code":"not_found","message":"no such list"}}`))
	})

	_, err := client.GetList(context.Background(), "acme", "missing")
	if !IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestRemoveListMemberDeletes(t *testing.T) {
	t.Parallel()

	var gotMethod, gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	if err := client.RemoveListMember(context.Background(), "acme", "l-1", "c-7"); err != nil {
		t.Fatalf("remove member: %v", err)
	}
	if gotMethod != http.MethodDelete {
		t.Fatalf("method = %q", gotMethod)
	}
	if gotPath != "/api/v1/tenants/acme/lists/l-1/members/c-7" {
		t.Fatalf("path = %q", gotPath)
	}
}

func TestHealthProbe(t *testing.T) {
	t.Parallel()

	healthy := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/healthz" {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	if err := healthy.Health(context.Background()); err != nil {
		t.Fatalf("health: %v", err)
	}

	unhealthy := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	if err := unhealthy.Health(context.Background()); err == nil {
		t.Fatal("expected health error")
	}
}

func TestTenantPathEscapesSegments(t *testing.T) {
	t.Parallel()

	got := tenantPath("acme co", "lists", "l/1")
	if got != "/api/v1/tenants/acme%20co/lists/l%2F1" {
		t.Fatalf("path = %q", got)
	}
}

package admin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	adminsqlite "github.com/tidemarkhq/tidemark/internal/services/admin/storage/sqlite"
)

// TestRecordAuditWithoutOperator exercises the real sqlite store, which
// rejects entries with a blank actor. With authentication disabled no
// operator is in the request context, so entries fall back to a generic
// actor instead of being dropped.
func TestRecordAuditWithoutOperator(t *testing.T) {
	store, err := adminsqlite.Open(filepath.Join(t.TempDir(), "admin.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	handler := &Handler{store: store}
	req := httptest.NewRequest(http.MethodPost, "http://example.com/lists/create", nil)
	handler.recordAudit(req, "acme", "list.create", "list-1")

	entries, err := store.ListRecentAuditEntries(context.Background(), "acme", 10)
	if err != nil {
		t.Fatalf("list audit entries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one audit entry, got %d", len(entries))
	}
	if entries[0].Actor != fallbackAuditActor {
		t.Errorf("actor = %q, want %q", entries[0].Actor, fallbackAuditActor)
	}
	if entries[0].Action != "list.create" || entries[0].Subject != "list-1" {
		t.Errorf("entry = %+v", entries[0])
	}
}

func TestRecordAuditUsesOperatorFromContext(t *testing.T) {
	store, err := adminsqlite.Open(filepath.Join(t.TempDir(), "admin.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	handler := &Handler{store: store}
	req := httptest.NewRequest(http.MethodPost, "http://example.com/lists/create", nil)
	req = req.WithContext(withOperatorID(req.Context(), "op-7"))
	handler.recordAudit(req, "acme", "list.create", "list-1")

	entries, err := store.ListRecentAuditEntries(context.Background(), "acme", 10)
	if err != nil {
		t.Fatalf("list audit entries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one audit entry, got %d", len(entries))
	}
	if entries[0].Actor != "op-7" {
		t.Errorf("actor = %q, want %q", entries[0].Actor, "op-7")
	}
}

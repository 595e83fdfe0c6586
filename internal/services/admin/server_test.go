package admin

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/tidemarkhq/tidemark/internal/services/admin/integration/coreapi"
)

func TestAPIClientsNilSafe(t *testing.T) {
	var clients *apiClients
	if got := clients.CoreAPI(); got != nil {
		t.Errorf("CoreAPI() on nil clients = %v, want nil", got)
	}
	if clients.Has() {
		t.Error("Has() on nil clients = true, want false")
	}
	clients.Set(nil) // must not panic
}

func TestAPIClientsSetOnce(t *testing.T) {
	server := httptest.NewServer(nil)
	defer server.Close()

	first, err := coreapi.New(coreapi.Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("coreapi.New: %v", err)
	}
	second, err := coreapi.New(coreapi.Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("coreapi.New: %v", err)
	}

	clients := &apiClients{}
	if clients.Has() {
		t.Fatal("Has() = true before Set")
	}
	clients.Set(nil)
	if clients.Has() {
		t.Fatal("Set(nil) stored a client")
	}
	clients.Set(first)
	if !clients.Has() {
		t.Fatal("Has() = false after Set")
	}
	clients.Set(second)
	if clients.CoreAPI() != first {
		t.Error("Set replaced an existing client")
	}
}

func TestNewServerRequiresHTTPAddr(t *testing.T) {
	if _, err := NewServer(context.Background(), Config{}); err == nil {
		t.Fatal("NewServer with blank address returned nil error")
	}
	if _, err := NewServer(context.Background(), Config{HTTPAddr: "   "}); err == nil {
		t.Fatal("NewServer with whitespace address returned nil error")
	}
}

func TestNewServerWithoutCoreAPI(t *testing.T) {
	t.Setenv("TIDEMARK_ADMIN_DB_PATH", filepath.Join(t.TempDir(), "admin.db"))

	server, err := NewServer(context.Background(), Config{HTTPAddr: ":0"})
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	defer server.Close()

	if server.apiClients.Has() {
		t.Error("server holds a core API client without a configured URL")
	}
	if server.httpServer == nil || server.httpServer.Handler == nil {
		t.Error("server is missing its HTTP handler")
	}
}

func TestNilServerIsSafe(t *testing.T) {
	var server *Server
	if err := server.ListenAndServe(context.Background()); err == nil {
		t.Error("ListenAndServe on nil server returned nil error")
	}
	server.Close() // must not panic
}

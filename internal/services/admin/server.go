package admin

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/tidemarkhq/tidemark/internal/platform/config"
	"github.com/tidemarkhq/tidemark/internal/platform/timeouts"
	"github.com/tidemarkhq/tidemark/internal/services/admin/integration/coreapi"
	adminsqlite "github.com/tidemarkhq/tidemark/internal/services/admin/storage/sqlite"
)

// adminServerEnv captures startup defaults for the admin process.
type adminServerEnv struct {
	DBPath string `env:"TIDEMARK_ADMIN_DB_PATH"`
}

func loadAdminServerEnv() adminServerEnv {
	var cfg adminServerEnv
	_ = config.ParseEnv(&cfg)
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join("data", "admin.db")
	}
	return cfg
}

// defaultAPIRetryDelay sets the initial wait time between core API probes.
const defaultAPIRetryDelay = 500 * time.Millisecond

// maxAPIRetryDelay caps the backoff between core API probes.
const maxAPIRetryDelay = 10 * time.Second

// Config defines the inputs for the admin operator process.
//
// The admin service is a thin control plane over the core API; these
// values select that API surface and optional authentication enforcement.
type Config struct {
	HTTPAddr       string
	CoreAPIURL     string
	CoreAPIToken   string
	APIDialTimeout time.Duration
	// AuthConfig enables token-based authentication when set.
	AuthConfig *AuthConfig
	// DefaultTenant selects the tenant shown before an operator picks one.
	DefaultTenant string
}

// Server hosts the admin dashboard and manages the core API client.
//
// It keeps a thin orchestration layer between operator HTTP handlers and
// the core API that holds campaign/contact/inventory/account state.
type Server struct {
	httpAddr   string
	coreAPIURL string
	apiClients *apiClients
	httpServer *http.Server
	adminStore *adminsqlite.Store
}

// apiClients stores the core API client once its health probe succeeds.
type apiClients struct {
	mu     sync.RWMutex
	client *coreapi.Client
}

// CoreAPI returns the current core API client.
func (a *apiClients) CoreAPI() *coreapi.Client {
	if a == nil {
		return nil
	}
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.client
}

// Has reports whether a core API client is already set.
func (a *apiClients) Has() bool {
	if a == nil {
		return false
	}
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.client != nil
}

// Set stores the core API client after the first successful probe.
func (a *apiClients) Set(client *coreapi.Client) {
	if a == nil || client == nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.client != nil {
		return
	}
	a.client = client
}

// NewServer builds a configured admin server.
func NewServer(ctx context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if cfg.APIDialTimeout <= 0 {
		cfg.APIDialTimeout = timeouts.HealthProbe
	}

	adminEnv := loadAdminServerEnv()
	adminStore, err := openAdminStore(adminEnv.DBPath)
	if err != nil {
		return nil, err
	}

	clients := &apiClients{}
	if strings.TrimSpace(cfg.CoreAPIURL) != "" {
		client, err := dialCoreAPI(ctx, cfg)
		if err != nil {
			log.Printf("admin core API probe failed: %v", err)
			go connectCoreAPIWithRetry(ctx, cfg, clients)
		} else {
			clients.Set(client)
		}
	}

	handler := NewHandlerWithConfig(clients, adminStore, cfg.DefaultTenant, cfg.AuthConfig)
	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           handler,
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	return &Server{
		httpAddr:   httpAddr,
		coreAPIURL: cfg.CoreAPIURL,
		apiClients: clients,
		httpServer: httpServer,
		adminStore: adminStore,
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("admin server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	serveErr := make(chan error, 1)
	log.Printf("admin listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases resources held by the server.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.adminStore != nil {
		if err := s.adminStore.Close(); err != nil {
			log.Printf("close admin store: %v", err)
		}
	}
}

func openAdminStore(path string) (*adminsqlite.Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}

	store, err := adminsqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open admin sqlite store: %w", err)
	}
	return store, nil
}

// dialCoreAPI builds a core API client and verifies it with a health
// probe.
func dialCoreAPI(ctx context.Context, cfg Config) (*coreapi.Client, error) {
	baseURL := strings.TrimSpace(cfg.CoreAPIURL)
	if baseURL == "" {
		return nil, nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	client, err := coreapi.New(coreapi.Config{
		BaseURL:      baseURL,
		ServiceToken: cfg.CoreAPIToken,
	})
	if err != nil {
		return nil, err
	}

	probeCtx, cancel := context.WithTimeout(ctx, cfg.APIDialTimeout)
	defer cancel()
	if err := client.Health(probeCtx); err != nil {
		return nil, fmt.Errorf("core API health check failed for %s: %w", baseURL, err)
	}
	return client, nil
}

// connectCoreAPIWithRetry keeps probing until the core API answers or
// the context ends.
func connectCoreAPIWithRetry(ctx context.Context, cfg Config, clients *apiClients) {
	if clients == nil {
		return
	}
	if strings.TrimSpace(cfg.CoreAPIURL) == "" {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}
	retryDelay := defaultAPIRetryDelay
	for {
		if ctx.Err() != nil {
			return
		}
		if clients.Has() {
			return
		}
		client, err := dialCoreAPI(ctx, cfg)
		if err == nil {
			clients.Set(client)
			log.Printf("admin connected to core API at %s", cfg.CoreAPIURL)
			return
		}
		log.Printf("admin core API probe failed: %v", err)
		timer := time.NewTimer(retryDelay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return
		}
		if retryDelay < maxAPIRetryDelay {
			retryDelay *= 2
			if retryDelay > maxAPIRetryDelay {
				retryDelay = maxAPIRetryDelay
			}
		}
	}
}

// Package admin parses admin command flags and runs the operator server.
package admin

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/tidemarkhq/tidemark/internal/platform/config"
	"github.com/tidemarkhq/tidemark/internal/platform/otel"
	"github.com/tidemarkhq/tidemark/internal/platform/timeouts"
	adminsvc "github.com/tidemarkhq/tidemark/internal/services/admin"
)

// Config holds the admin command configuration.
type Config struct {
	HTTPAddr           string `env:"TIDEMARK_ADMIN_ADDR"          envDefault:":8082"`
	CoreAPIURL         string `env:"TIDEMARK_CORE_API_URL"        envDefault:"http://localhost:8080"`
	CoreAPIToken       string `env:"TIDEMARK_CORE_API_TOKEN"`
	AuthIntrospectURL  string `env:"TIDEMARK_AUTH_INTROSPECT_URL"`
	AuthResourceSecret string `env:"TIDEMARK_AUTH_RESOURCE_SECRET"`
	AuthLoginURL       string `env:"TIDEMARK_AUTH_LOGIN_URL"`
	AuthSessionSecret  string `env:"TIDEMARK_AUTH_SESSION_SECRET"`
	DefaultTenant      string `env:"TIDEMARK_DEFAULT_TENANT"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.CoreAPIURL, "core-api-url", cfg.CoreAPIURL, "core API base URL")
	fs.StringVar(&cfg.CoreAPIToken, "core-api-token", cfg.CoreAPIToken, "core API service token")
	fs.StringVar(&cfg.DefaultTenant, "default-tenant", cfg.DefaultTenant, "tenant shown before an operator picks one")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the admin server.
func Run(ctx context.Context, cfg Config) error {
	shutdown, err := otel.Setup(ctx, "admin")
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("otel shutdown: %v", err)
		}
	}()

	server, err := adminsvc.NewServer(ctx, adminsvc.Config{
		HTTPAddr:       cfg.HTTPAddr,
		CoreAPIURL:     cfg.CoreAPIURL,
		CoreAPIToken:   cfg.CoreAPIToken,
		APIDialTimeout: timeouts.HealthProbe,
		AuthConfig:     authConfig(cfg),
		DefaultTenant:  cfg.DefaultTenant,
	})
	if err != nil {
		return fmt.Errorf("init admin server: %w", err)
	}
	defer server.Close()

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve admin: %w", err)
	}
	return nil
}

// authConfig builds the optional auth settings. Authentication is off
// when no introspection endpoint is configured.
func authConfig(cfg Config) *adminsvc.AuthConfig {
	if strings.TrimSpace(cfg.AuthIntrospectURL) == "" {
		return nil
	}
	return &adminsvc.AuthConfig{
		IntrospectURL:  cfg.AuthIntrospectURL,
		ResourceSecret: cfg.AuthResourceSecret,
		LoginURL:       cfg.AuthLoginURL,
		SessionSecret:  cfg.AuthSessionSecret,
	}
}

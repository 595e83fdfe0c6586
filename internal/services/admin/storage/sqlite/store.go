package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	sqlitemigrate "github.com/tidemarkhq/tidemark/internal/platform/storage/sqlitemigrate"
	"github.com/tidemarkhq/tidemark/internal/services/admin/storage"
	"github.com/tidemarkhq/tidemark/internal/services/admin/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

const timeFormat = time.RFC3339Nano

// defaultAuditLimit bounds audit reads when the caller passes no limit.
const defaultAuditLimit = 20

// Store provides a SQLite-backed store implementing admin storage interfaces.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite store at the provided path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB}

	if err := store.runMigrations(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return store, nil
}

// Close closes the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// runMigrations runs embedded SQL migrations.
func (s *Store) runMigrations() error {
	return sqlitemigrate.ApplyMigrations(s.sqlDB, migrations.FS, "")
}

// PutOperatorSession persists an operator session record.
func (s *Store) PutOperatorSession(ctx context.Context, sessionID string, operatorID string, createdAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(sessionID) == "" {
		return fmt.Errorf("session id is required")
	}
	if strings.TrimSpace(operatorID) == "" {
		return fmt.Errorf("operator id is required")
	}
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(ctx, `
		INSERT INTO operator_sessions (session_id, operator_id, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT(session_id) DO UPDATE SET
			operator_id = excluded.operator_id,
			created_at = excluded.created_at`,
		sessionID, operatorID, createdAt.Format(timeFormat))
	if err != nil {
		return fmt.Errorf("put operator session: %w", err)
	}
	return nil
}

// AppendAuditEntry records one operator action. A missing ID or timestamp is
// filled in before the write.
func (s *Store) AppendAuditEntry(ctx context.Context, entry storage.AuditEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(entry.Tenant) == "" {
		return fmt.Errorf("tenant is required")
	}
	if strings.TrimSpace(entry.Actor) == "" {
		return fmt.Errorf("actor is required")
	}
	if strings.TrimSpace(entry.Action) == "" {
		return fmt.Errorf("action is required")
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.OccurredAt.IsZero() {
		entry.OccurredAt = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(ctx, `
		INSERT INTO audit_log (id, tenant, actor, action, subject, occurred_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Tenant, entry.Actor, entry.Action, entry.Subject,
		entry.OccurredAt.Format(timeFormat))
	if err != nil {
		return fmt.Errorf("append audit entry: %w", err)
	}
	return nil
}

// ListRecentAuditEntries returns the newest audit entries for a tenant.
func (s *Store) ListRecentAuditEntries(ctx context.Context, tenant string, limit int) ([]storage.AuditEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(tenant) == "" {
		return nil, fmt.Errorf("tenant is required")
	}
	if limit <= 0 {
		limit = defaultAuditLimit
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
		SELECT id, tenant, actor, action, subject, occurred_at
		FROM audit_log
		WHERE tenant = ?
		ORDER BY occurred_at DESC
		LIMIT ?`, tenant, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	defer rows.Close()

	var entries []storage.AuditEntry
	for rows.Next() {
		var entry storage.AuditEntry
		var occurredAt string
		if err := rows.Scan(&entry.ID, &entry.Tenant, &entry.Actor, &entry.Action, &entry.Subject, &occurredAt); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		parsed, err := time.Parse(timeFormat, occurredAt)
		if err != nil {
			return nil, fmt.Errorf("parse audit timestamp: %w", err)
		}
		entry.OccurredAt = parsed
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit entries: %w", err)
	}
	return entries, nil
}

var _ storage.Store = (*Store)(nil)

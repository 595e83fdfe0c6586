package storage

import (
	"context"
	"time"
)

// OperatorSessionStore persists admin operator session records.
type OperatorSessionStore interface {
	PutOperatorSession(ctx context.Context, sessionID string, operatorID string, createdAt time.Time) error
}

// AuditEntry records one operator action against a tenant resource.
type AuditEntry struct {
	ID         string
	Tenant     string
	Actor      string
	Action     string
	Subject    string
	OccurredAt time.Time
}

// AuditStore appends and reads the operator action log.
type AuditStore interface {
	AppendAuditEntry(ctx context.Context, entry AuditEntry) error
	ListRecentAuditEntries(ctx context.Context, tenant string, limit int) ([]AuditEntry, error)
}

// Store is a composite interface for admin storage concerns.
type Store interface {
	OperatorSessionStore
	AuditStore
	Close() error
}

// Package storage defines persistence contracts for operator-facing admin artifacts.
//
// Admin code uses these interfaces to keep dashboard handlers testable and avoid
// depending on a concrete SQLite schema from presentation logic. Tenant business
// data lives behind the core API; this layer holds only operator-local state.
package storage

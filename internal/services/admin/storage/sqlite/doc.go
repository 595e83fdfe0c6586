// Package sqlite provides SQLite-backed admin persistence.
//
// It stores operator sessions and the audit log only and intentionally remains
// separate from tenant commerce state so operator tooling cannot bypass the
// core API's domain rules.
package sqlite

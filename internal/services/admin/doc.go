// Package admin implements the operator control surface for the platform.
//
// It translates browser actions into tenant-scoped calls against the core
// commerce/CRM API so operators can inspect and repair marketing, content,
// and customer state without binding directly to storage internals.
package admin

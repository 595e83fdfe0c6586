// Package timeouts defines shared timeout constants used across the admin
// service. Centralizing these values prevents drift between callers and
// makes the durations discoverable.
package timeouts

import "time"

// APIRequest caps the time allowed for a single core API request issued
// from an admin page handler.
const APIRequest = 2 * time.Second

// APIUpload caps the time allowed for multipart uploads forwarded to the
// core API, such as list import files.
const APIUpload = 30 * time.Second

// HealthProbe caps the wait time for a core API health probe.
const HealthProbe = 2 * time.Second

// ReadHeader limits how long the HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long the HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

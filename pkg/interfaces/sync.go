package interfaces

import "context"

// SyncPayload is the outbound representation of a processed document.
type SyncPayload struct {
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Content     string   `json:"content"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// Sender delivers a payload to an external endpoint. Implementations own the
// transport details (method, URL, headers, timeouts); the pipeline only hands
// over finished payloads for documents that were actually (re)processed.
type Sender interface {
	Send(ctx context.Context, payload SyncPayload) error
}

package interfaces

import (
	"context"

	"github.com/google/uuid"
)

// ProcessOptions tunes a single pipeline run. Force disables the unchanged
// skip check for this run only; DryRun previews decisions without writing
// artifacts or dispatching payloads.
type ProcessOptions struct {
	Force  bool
	DryRun bool
}

// DocumentFailure records one rejected document. The document is excluded
// from output but never aborts the run.
type DocumentFailure struct {
	SourcePath string
	Slug       string
	Code       string
	Err        error
}

// SyncFailure records a failed outbound delivery for a processed document.
// Sync failures are isolated per document and reported at end of run.
type SyncFailure struct {
	Slug string
	Err  error
}

// RunReport summarises one pipeline run.
type RunReport struct {
	RunID        uuid.UUID
	Processed    int
	Skipped      int
	Synced       int
	Failures     []DocumentFailure
	SyncFailures []SyncFailure
}

// Failed reports whether any document or sync failure occurred.
func (r *RunReport) Failed() bool {
	return r != nil && (len(r.Failures) > 0 || len(r.SyncFailures) > 0)
}

// FailedSlugs lists the slugs whose outbound sync failed, in run order.
func (r *RunReport) FailedSlugs() []string {
	if r == nil {
		return nil
	}
	slugs := make([]string, 0, len(r.SyncFailures))
	for _, failure := range r.SyncFailures {
		slugs = append(slugs, failure.Slug)
	}
	return slugs
}

// PipelineService exposes the document processing workflows to hosts and
// command handlers.
type PipelineService interface {
	// ProcessDirectory discovers Markdown documents under dir (relative to
	// the configured content root) and runs the full pipeline over them.
	ProcessDirectory(ctx context.Context, dir string, opts ProcessOptions) (*RunReport, error)
	// ProcessDocuments runs the pipeline over already loaded documents.
	ProcessDocuments(ctx context.Context, docs []*Document, opts ProcessOptions) (*RunReport, error)
}

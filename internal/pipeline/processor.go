// Package pipeline orchestrates the weave run: metadata extraction, style
// driven rendering, hash based change detection against the artifact store,
// and outbound dispatch of changed documents. Documents are processed one at
// a time in lexicographic source order; each failure is captured in the run
// report and never aborts the remaining documents.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-slug"
	"github.com/google/uuid"

	"github.com/goliatone/go-weave/internal/logging"
	"github.com/goliatone/go-weave/internal/markdown"
	"github.com/goliatone/go-weave/pkg/interfaces"
)

// Failure codes attached to rejected documents in the run report.
const (
	CodeMalformedFrontmatter = "MALFORMED_FRONTMATTER"
	CodeMissingRequiredField = "MISSING_REQUIRED_FIELD"
	CodeDuplicateSlug        = "DUPLICATE_SLUG"
	CodeCacheReadFailed      = "CACHE_READ_FAILED"
	CodeArtifactWriteFailed  = "ARTIFACT_WRITE_FAILED"
	CodeSyncFailure          = "SYNC_FAILURE"
)

// ErrStoreRequired reports a processor constructed without an artifact store.
var ErrStoreRequired = errors.New("weave pipeline: artifact store is required")

// Dispatcher forwards a processed document to the outbound sync collaborator.
type Dispatcher interface {
	Dispatch(ctx context.Context, doc interfaces.RenderedDocument) error
}

// Config wires the processor's collaborators. Dispatcher may be nil when API
// integration is disabled.
type Config struct {
	Styles     interfaces.StyleConfig
	Store      interfaces.ArtifactStore
	Loader     *markdown.Loader
	Dispatcher Dispatcher
	Logger     interfaces.Logger
}

// Processor implements interfaces.PipelineService.
type Processor struct {
	renderer   *markdown.Renderer
	store      interfaces.ArtifactStore
	loader     *markdown.Loader
	dispatcher Dispatcher
	logger     interfaces.Logger
}

var _ interfaces.PipelineService = (*Processor)(nil)

// NewProcessor constructs a processor from the supplied configuration.
func NewProcessor(cfg Config) (*Processor, error) {
	if cfg.Store == nil {
		return nil, ErrStoreRequired
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Processor{
		renderer:   markdown.NewRenderer(cfg.Styles),
		store:      cfg.Store,
		loader:     cfg.Loader,
		dispatcher: cfg.Dispatcher,
		logger:     logger,
	}, nil
}

// ProcessDirectory discovers documents under dir and runs the pipeline over
// them.
func (p *Processor) ProcessDirectory(ctx context.Context, dir string, opts interfaces.ProcessOptions) (*interfaces.RunReport, error) {
	if p.loader == nil {
		return nil, errors.New("weave pipeline: loader is required for directory processing")
	}
	docs, err := p.loader.LoadDirectory(ctx, dir)
	if err != nil {
		return nil, err
	}
	return p.ProcessDocuments(ctx, docs, opts)
}

// ProcessDocuments runs the full pipeline over the supplied documents.
func (p *Processor) ProcessDocuments(ctx context.Context, docs []*interfaces.Document, opts interfaces.ProcessOptions) (*interfaces.RunReport, error) {
	report := &interfaces.RunReport{RunID: uuid.New()}
	runLogger := logging.WithFields(p.logger, map[string]any{"run_id": report.RunID})

	ordered := make([]*interfaces.Document, len(docs))
	copy(ordered, docs)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].SourcePath < ordered[j].SourcePath
	})

	parsed := p.parseAll(ordered, report, runLogger)
	p.flagDuplicateSlugs(parsed, report, runLogger)

	for _, doc := range parsed {
		if doc.rejected {
			continue
		}
		if err := ctx.Err(); err != nil {
			return report, err
		}
		p.processOne(ctx, doc, opts, report, runLogger)
	}

	runLogger.Info("pipeline.run.completed",
		"processed", report.Processed,
		"skipped", report.Skipped,
		"synced", report.Synced,
		"failed", len(report.Failures),
		"sync_failed", len(report.SyncFailures),
		"dry_run", opts.DryRun,
		"force", opts.Force,
	)
	if len(report.SyncFailures) > 0 {
		runLogger.Warn("pipeline.run.sync_failures", "slugs", strings.Join(report.FailedSlugs(), ","))
	}

	return report, nil
}

type parsedDocument struct {
	source   *interfaces.Document
	meta     interfaces.Metadata
	body     []byte
	rejected bool
}

func (p *Processor) parseAll(docs []*interfaces.Document, report *interfaces.RunReport, logger interfaces.Logger) []*parsedDocument {
	parsed := make([]*parsedDocument, 0, len(docs))
	for _, doc := range docs {
		meta, body, err := markdown.ParseMetadata(doc.Raw, doc.SourcePath)
		if err != nil {
			code := classifyParseError(err)
			report.Failures = append(report.Failures, interfaces.DocumentFailure{
				SourcePath: doc.SourcePath,
				Code:       code,
				Err:        err,
			})
			logging.WithDocumentContext(logger, doc.SourcePath, "").
				Error("pipeline.document.rejected", "code", code, "error", err)
			parsed = append(parsed, &parsedDocument{source: doc, rejected: true})
			continue
		}
		parsed = append(parsed, &parsedDocument{source: doc, meta: meta, body: body})
	}
	return parsed
}

// flagDuplicateSlugs rejects every document sharing a slug with another. No
// collider writes its artifact, so the first-seen record is never silently
// overwritten.
func (p *Processor) flagDuplicateSlugs(parsed []*parsedDocument, report *interfaces.RunReport, logger interfaces.Logger) {
	bySlug := map[string][]*parsedDocument{}
	for _, doc := range parsed {
		if doc.rejected {
			continue
		}
		bySlug[doc.meta.Slug] = append(bySlug[doc.meta.Slug], doc)
	}

	slugs := make([]string, 0, len(bySlug))
	for slugValue := range bySlug {
		slugs = append(slugs, slugValue)
	}
	sort.Strings(slugs)

	for _, slugValue := range slugs {
		group := bySlug[slugValue]
		if len(group) < 2 {
			continue
		}
		paths := make([]string, 0, len(group))
		for _, doc := range group {
			paths = append(paths, doc.source.SourcePath)
		}
		sort.Strings(paths)
		err := fmt.Errorf("weave pipeline: slug %q claimed by %s", slugValue, strings.Join(paths, ", "))

		for _, doc := range group {
			doc.rejected = true
			report.Failures = append(report.Failures, interfaces.DocumentFailure{
				SourcePath: doc.source.SourcePath,
				Slug:       slugValue,
				Code:       CodeDuplicateSlug,
				Err:        err,
			})
			logging.WithDocumentContext(logger, doc.source.SourcePath, slugValue).
				Error("pipeline.document.rejected", "code", CodeDuplicateSlug, "error", err)
		}
	}
}

func (p *Processor) processOne(ctx context.Context, doc *parsedDocument, opts interfaces.ProcessOptions, report *interfaces.RunReport, logger interfaces.Logger) {
	docLogger := logging.WithDocumentContext(logger, doc.source.SourcePath, doc.meta.Slug)
	warnNonCanonicalSlug(docLogger, doc.meta.Slug)

	rendered := p.renderDocument(doc)

	if !opts.Force {
		unchanged, err := p.store.IsUnchanged(rendered.Slug, rendered.ContentHash)
		if err != nil {
			report.Failures = append(report.Failures, interfaces.DocumentFailure{
				SourcePath: doc.source.SourcePath,
				Slug:       rendered.Slug,
				Code:       CodeCacheReadFailed,
				Err:        err,
			})
			docLogger.Error("pipeline.document.rejected", "code", CodeCacheReadFailed, "error", err)
			return
		}
		if unchanged {
			report.Skipped++
			docLogger.Debug("pipeline.document.skipped")
			return
		}
	}

	if opts.DryRun {
		report.Processed++
		docLogger.Info("pipeline.document.preview", "hash", rendered.ContentHash)
		return
	}

	record := interfaces.ArtifactRecord{
		Slug:     rendered.Slug,
		Hash:     rendered.ContentHash,
		HTML:     rendered.HTML,
		Metadata: rendered.Metadata,
	}
	if err := p.store.Write(record); err != nil {
		report.Failures = append(report.Failures, interfaces.DocumentFailure{
			SourcePath: doc.source.SourcePath,
			Slug:       rendered.Slug,
			Code:       CodeArtifactWriteFailed,
			Err:        err,
		})
		docLogger.Error("pipeline.document.rejected", "code", CodeArtifactWriteFailed, "error", err)
		return
	}
	report.Processed++
	docLogger.Info("pipeline.document.processed", "hash", rendered.ContentHash)

	if p.dispatcher == nil {
		return
	}
	if err := p.dispatcher.Dispatch(ctx, rendered); err != nil {
		report.SyncFailures = append(report.SyncFailures, interfaces.SyncFailure{
			Slug: rendered.Slug,
			Err:  err,
		})
		docLogger.Warn("pipeline.document.sync_failed", "code", CodeSyncFailure, "error", err)
		return
	}
	report.Synced++
}

// renderDocument is a pure function of the parsed body and the configured
// styles: no cache state or run order leaks into the HTML or the hash.
func (p *Processor) renderDocument(doc *parsedDocument) interfaces.RenderedDocument {
	html := p.renderer.RenderDocument(doc.body)
	return interfaces.RenderedDocument{
		Slug:        doc.meta.Slug,
		Metadata:    doc.meta,
		HTML:        html,
		ContentHash: markdown.HashContent(html),
	}
}

func classifyParseError(err error) string {
	switch {
	case errors.Is(err, markdown.ErrMalformedFrontmatter):
		return CodeMalformedFrontmatter
	case errors.Is(err, markdown.ErrMissingTitle):
		return CodeMissingRequiredField
	default:
		return CodeMalformedFrontmatter
	}
}

func warnNonCanonicalSlug(logger interfaces.Logger, value string) {
	if slug.IsValid(value) {
		return
	}
	if normalized, err := slug.Normalize(value); err == nil && normalized != value {
		logger.Warn("pipeline.slug.non_canonical", "suggested", normalized)
		return
	}
	logger.Warn("pipeline.slug.non_canonical")
}

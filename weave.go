// Package weave turns a directory of Markdown documents into styled HTML
// fragments. Each document carries YAML frontmatter, renders against a
// configurable style table, and lands in a slug-keyed artifact store that
// skips unchanged content on later runs. Changed documents can optionally be
// posted to an HTTP endpoint.
package weave

import (
	"context"
	"os"
	"strings"

	"github.com/goliatone/go-weave/internal/artifacts"
	"github.com/goliatone/go-weave/internal/logging"
	"github.com/goliatone/go-weave/internal/logging/console"
	"github.com/goliatone/go-weave/internal/logging/gologger"
	"github.com/goliatone/go-weave/internal/markdown"
	"github.com/goliatone/go-weave/internal/pipeline"
	"github.com/goliatone/go-weave/internal/syncer"
	"github.com/goliatone/go-weave/pkg/interfaces"
)

// Re-exported contracts so hosts can depend on the root package alone.
type (
	Document         = interfaces.Document
	Metadata         = interfaces.Metadata
	RenderedDocument = interfaces.RenderedDocument
	StyleConfig      = interfaces.StyleConfig
	ArtifactRecord   = interfaces.ArtifactRecord
	ArtifactStore    = interfaces.ArtifactStore
	Sender           = interfaces.Sender
	SyncPayload      = interfaces.SyncPayload
	ProcessOptions   = interfaces.ProcessOptions
	RunReport        = interfaces.RunReport
	DocumentFailure  = interfaces.DocumentFailure
	SyncFailure      = interfaces.SyncFailure
	PipelineService  = interfaces.PipelineService
	Logger           = interfaces.Logger
	LoggerProvider   = interfaces.LoggerProvider
)

// Option customises module construction.
type Option func(*Module)

// WithLoggerProvider overrides the provider built from the logging config.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(m *Module) {
		m.provider = provider
	}
}

// WithArtifactStore overrides the file-backed artifact store.
func WithArtifactStore(store interfaces.ArtifactStore) Option {
	return func(m *Module) {
		m.store = store
	}
}

// WithSender overrides the HTTP sender built from the API config. Useful for
// custom transports and for tests.
func WithSender(sender interfaces.Sender) Option {
	return func(m *Module) {
		m.sender = sender
	}
}

// Module wires the pipeline collaborators from a Config.
type Module struct {
	config    Config
	provider  interfaces.LoggerProvider
	store     interfaces.ArtifactStore
	sender    interfaces.Sender
	loader    *markdown.Loader
	processor *pipeline.Processor
}

var _ interfaces.PipelineService = (*Module)(nil)

// New validates cfg and assembles the pipeline.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Module{config: cfg}
	for _, opt := range opts {
		opt(m)
	}

	if m.provider == nil {
		provider, err := buildLoggerProvider(cfg.Logging)
		if err != nil {
			return nil, err
		}
		m.provider = provider
	}

	if m.store == nil {
		store, err := artifacts.NewFileStore(cfg.ArtifactsDir)
		if err != nil {
			return nil, err
		}
		m.store = store
	}

	if m.sender == nil && cfg.API.Enabled {
		sender, err := syncer.NewHTTPSender(syncer.HTTPSenderConfig{
			URL:     cfg.API.URL,
			Method:  cfg.API.Method,
			Headers: cfg.API.Headers,
			Timeout: cfg.API.Timeout,
		})
		if err != nil {
			return nil, err
		}
		m.sender = sender
	}

	m.loader = markdown.NewLoader(os.DirFS(cfg.ContentDir), markdown.LoaderConfig{
		Pattern:   cfg.Pattern,
		Recursive: cfg.Recursive,
	})

	var dispatcher pipeline.Dispatcher
	if m.sender != nil {
		d, err := syncer.NewDispatcher(m.sender, logging.SyncLogger(m.provider))
		if err != nil {
			return nil, err
		}
		dispatcher = d
	}

	processor, err := pipeline.NewProcessor(pipeline.Config{
		Styles:     cfg.Styles,
		Store:      m.store,
		Loader:     m.loader,
		Dispatcher: dispatcher,
		Logger:     logging.PipelineLogger(m.provider),
	})
	if err != nil {
		return nil, err
	}
	m.processor = processor

	return m, nil
}

// Config returns the settings the module was built with.
func (m *Module) Config() Config {
	return m.config
}

// Logger returns a named module logger from the configured provider.
func (m *Module) Logger(name string) interfaces.Logger {
	return logging.ModuleLogger(m.provider, name)
}

// LoggerProvider exposes the configured provider for host integration.
func (m *Module) LoggerProvider() interfaces.LoggerProvider {
	return m.provider
}

// LoadFile loads one Markdown document relative to the content root.
func (m *Module) LoadFile(ctx context.Context, path string) (*interfaces.Document, error) {
	return m.loader.LoadFile(ctx, path)
}

// LoadDirectory loads every matching document under dir, sorted by path.
func (m *Module) LoadDirectory(ctx context.Context, dir string) ([]*interfaces.Document, error) {
	return m.loader.LoadDirectory(ctx, dir)
}

// ProcessDirectory implements interfaces.PipelineService.
func (m *Module) ProcessDirectory(ctx context.Context, dir string, opts interfaces.ProcessOptions) (*interfaces.RunReport, error) {
	return m.processor.ProcessDirectory(ctx, dir, opts)
}

// ProcessDocuments implements interfaces.PipelineService.
func (m *Module) ProcessDocuments(ctx context.Context, docs []*interfaces.Document, opts interfaces.ProcessOptions) (*interfaces.RunReport, error) {
	return m.processor.ProcessDocuments(ctx, docs, opts)
}

func buildLoggerProvider(cfg LoggingConfig) (interfaces.LoggerProvider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "gologger":
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
		})
	default:
		level := consoleLevel(cfg.Level)
		return console.NewProvider(console.Options{MinLevel: &level}), nil
	}
}

func consoleLevel(level string) console.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return console.LevelTrace
	case "debug":
		return console.LevelDebug
	case "warn", "warning":
		return console.LevelWarn
	case "error":
		return console.LevelError
	case "fatal":
		return console.LevelFatal
	default:
		return console.LevelInfo
	}
}

package weavecmd

import (
	"context"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-weave/internal/commands"
	"github.com/goliatone/go-weave/internal/logging"
	"github.com/goliatone/go-weave/pkg/interfaces"
)

const (
	processDirectoryOperation = "weave.process_directory"
	processFileOperation      = "weave.process_file"
)

var (
	_ command.Commander[ProcessDirectoryCommand] = (*ProcessDirectoryHandler)(nil)
	_ command.Commander[ProcessFileCommand]      = (*ProcessFileHandler)(nil)
)

// DocumentLoader loads a single document for file-scoped commands.
type DocumentLoader interface {
	LoadFile(ctx context.Context, path string) (*interfaces.Document, error)
}

// ReportSink receives the run report once a handler completes. Handlers treat
// per-document failures as report entries, not command errors.
type ReportSink func(*interfaces.RunReport)

// ProcessDirectoryHandler orchestrates directory runs via the shared command
// handler foundation.
type ProcessDirectoryHandler struct {
	inner *commands.Handler[ProcessDirectoryCommand]
}

// NewProcessDirectoryHandler creates a handler bound to the supplied pipeline
// service.
func NewProcessDirectoryHandler(service interfaces.PipelineService, logger interfaces.Logger, sink ReportSink, opts ...commands.HandlerOption[ProcessDirectoryCommand]) *ProcessDirectoryHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg ProcessDirectoryCommand) error {
		report, err := service.ProcessDirectory(ctx, msg.Directory, interfaces.ProcessOptions{
			Force:  msg.Force,
			DryRun: msg.DryRun,
		})
		if err != nil {
			return err
		}
		logReport(baseLogger, report, msg.DryRun, "weave.command.process_directory.completed")
		if sink != nil {
			sink(report)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[ProcessDirectoryCommand]{
		commands.WithLogger[ProcessDirectoryCommand](baseLogger),
		commands.WithOperation[ProcessDirectoryCommand](processDirectoryOperation),
		commands.WithMessageFields(func(msg ProcessDirectoryCommand) map[string]any {
			fields := map[string]any{
				"directory": msg.Directory,
			}
			if msg.Force {
				fields["force"] = true
			}
			if msg.DryRun {
				fields["dry_run"] = true
			}
			return fields
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ProcessDirectoryHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute implements command.Commander.
func (h *ProcessDirectoryHandler) Execute(ctx context.Context, msg ProcessDirectoryCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ProcessFileHandler runs the pipeline over one document loaded on demand.
type ProcessFileHandler struct {
	inner *commands.Handler[ProcessFileCommand]
}

// NewProcessFileHandler creates a handler bound to the supplied loader and
// pipeline service.
func NewProcessFileHandler(loader DocumentLoader, service interfaces.PipelineService, logger interfaces.Logger, sink ReportSink, opts ...commands.HandlerOption[ProcessFileCommand]) *ProcessFileHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg ProcessFileCommand) error {
		doc, err := loader.LoadFile(ctx, msg.Path)
		if err != nil {
			return err
		}
		report, err := service.ProcessDocuments(ctx, []*interfaces.Document{doc}, interfaces.ProcessOptions{
			Force:  msg.Force,
			DryRun: msg.DryRun,
		})
		if err != nil {
			return err
		}
		logReport(baseLogger, report, msg.DryRun, "weave.command.process_file.completed")
		if sink != nil {
			sink(report)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[ProcessFileCommand]{
		commands.WithLogger[ProcessFileCommand](baseLogger),
		commands.WithOperation[ProcessFileCommand](processFileOperation),
		commands.WithMessageFields(func(msg ProcessFileCommand) map[string]any {
			fields := map[string]any{
				"path": msg.Path,
			}
			if msg.Force {
				fields["force"] = true
			}
			if msg.DryRun {
				fields["dry_run"] = true
			}
			return fields
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ProcessFileHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute implements command.Commander.
func (h *ProcessFileHandler) Execute(ctx context.Context, msg ProcessFileCommand) error {
	return h.inner.Execute(ctx, msg)
}

func logReport(logger interfaces.Logger, report *interfaces.RunReport, dryRun bool, event string) {
	if report == nil {
		return
	}
	logging.WithFields(logger, map[string]any{
		"run_id":        report.RunID,
		"processed":     report.Processed,
		"skipped":       report.Skipped,
		"synced":        report.Synced,
		"failed_count":  len(report.Failures),
		"sync_failures": len(report.SyncFailures),
		"dry_run":       dryRun,
	}).Info(event)
}

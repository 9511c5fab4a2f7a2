package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	weave "github.com/goliatone/go-weave"
	weavecmd "github.com/goliatone/go-weave/internal/commands/weave"
	"github.com/goliatone/go-weave/pkg/interfaces"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("weave: %v", err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("weave", flag.ExitOnError)
	configPath := fs.String("config", "weave.config.json", "Path to the JSON or YAML config file")
	contentDir := fs.String("content-dir", "", "Override the markdown content root")
	artifactsDir := fs.String("artifacts-dir", "", "Override the artifact output directory")
	pattern := fs.String("pattern", "", "Override the glob pattern applied when discovering markdown files")
	file := fs.String("file", "", "Process a single file relative to the content root")
	force := fs.Bool("force", false, "Reprocess every document regardless of cached hashes")
	dryRun := fs.Bool("dry-run", false, "Preview processing decisions without writing or posting")
	logLevel := fs.String("log-level", "", "Override the configured log level")
	logFormat := fs.String("log-format", "", "Override the configured log format (gologger provider only)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, created, err := resolveConfig(*configPath)
	if err != nil {
		return err
	}
	if created {
		return nil
	}
	if *contentDir != "" {
		cfg.ContentDir = *contentDir
	}
	if *artifactsDir != "" {
		cfg.ArtifactsDir = *artifactsDir
	}
	if *pattern != "" {
		cfg.Pattern = *pattern
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}
	if *logFormat != "" {
		cfg.Logging.Format = *logFormat
	}

	if err := ensureContentDir(cfg.ContentDir); err != nil {
		return err
	}

	module, err := weave.New(cfg)
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	ctx := context.Background()
	logger := module.Logger("weave.cli")

	var report *interfaces.RunReport
	sink := func(r *interfaces.RunReport) { report = r }

	if *file != "" {
		handler := weavecmd.NewProcessFileHandler(module, module, logger, sink)
		cmd := weavecmd.ProcessFileCommand{Path: *file, Force: *force, DryRun: *dryRun}
		if err := handler.Execute(ctx, cmd); err != nil {
			return fmt.Errorf("execute process command: %w", err)
		}
	} else {
		handler := weavecmd.NewProcessDirectoryHandler(module, logger, sink)
		cmd := weavecmd.ProcessDirectoryCommand{Directory: ".", Force: *force, DryRun: *dryRun}
		if err := handler.Execute(ctx, cmd); err != nil {
			return fmt.Errorf("execute process command: %w", err)
		}
	}

	printSummary(os.Stdout, report, *dryRun)
	if report != nil && len(report.Failures) > 0 {
		return fmt.Errorf("%d document(s) failed", len(report.Failures))
	}
	return nil
}

// resolveConfig loads the config file, creating a starter file on first run.
// A newly created file stops the run so the user can review it before any
// document is processed.
func resolveConfig(path string) (weave.Config, bool, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := weave.WriteDefaultConfig(path); err != nil {
			return weave.Config{}, false, err
		}
		fmt.Fprintf(os.Stdout, "created default config file: %s, review it and run again\n", path)
		return weave.DefaultConfig(), true, nil
	}
	cfg, err := weave.LoadConfig(path)
	return cfg, false, err
}

func ensureContentDir(dir string) error {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create content dir %s: %w", dir, err)
		}
		fmt.Fprintf(os.Stdout, "created content directory: %s, add markdown files and run again\n", dir)
		return nil
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("content path %s is not a directory", dir)
	}
	return nil
}

func printSummary(w *os.File, report *interfaces.RunReport, dryRun bool) {
	if report == nil {
		return
	}
	label := "run"
	if dryRun {
		label = "dry run"
	}
	fmt.Fprintf(w, "%s complete: %d processed, %d skipped, %d synced\n",
		label, report.Processed, report.Skipped, report.Synced)
	for _, failure := range report.Failures {
		target := failure.SourcePath
		if failure.Slug != "" {
			target = fmt.Sprintf("%s (%s)", failure.SourcePath, failure.Slug)
		}
		fmt.Fprintf(w, "  failed %s: %s: %v\n", target, failure.Code, failure.Err)
	}
	for _, failure := range report.SyncFailures {
		fmt.Fprintf(w, "  sync failed %s: %v\n", failure.Slug, failure.Err)
	}
}

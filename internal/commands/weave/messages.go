// Package weavecmd exposes the pipeline workflows as go-command messages so
// hosts can dispatch runs through a command bus or invoke the handlers
// directly.
package weavecmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	processDirectoryMessageType = "weave.process_directory"
	processFileMessageType      = "weave.process_file"
)

// ProcessDirectoryCommand runs the pipeline over every Markdown document
// under Directory.
type ProcessDirectoryCommand struct {
	// Directory selects the filesystem path (relative to the content root) to load Markdown files from.
	Directory string `json:"directory"`
	// Force reprocesses every document regardless of cached hashes.
	Force bool `json:"force,omitempty"`
	// DryRun previews processing decisions without writing artifacts or posting.
	DryRun bool `json:"dry_run,omitempty"`
}

// Type implements command.Message.
func (ProcessDirectoryCommand) Type() string { return processDirectoryMessageType }

// Validate ensures directory input is present before handlers execute.
func (cmd ProcessDirectoryCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("weave.process_directory.directory_required", "directory is required")
			}
			return nil
		})),
	)
}

// ProcessFileCommand runs the pipeline over a single Markdown document.
type ProcessFileCommand struct {
	// Path selects the Markdown file (relative to the content root) to process.
	Path string `json:"path"`
	// Force reprocesses the document regardless of its cached hash.
	Force bool `json:"force,omitempty"`
	// DryRun previews the processing decision without writing or posting.
	DryRun bool `json:"dry_run,omitempty"`
}

// Type implements command.Message.
func (ProcessFileCommand) Type() string { return processFileMessageType }

// Validate ensures file input is present before handlers execute.
func (cmd ProcessFileCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Path, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("weave.process_file.path_required", "path is required")
			}
			return nil
		})),
	)
}

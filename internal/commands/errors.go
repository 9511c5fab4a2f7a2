package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes attached to wrapped command errors. They identify pipeline
// command failures in logs, distinct from the per-document failure codes the
// run report carries.
const (
	codeCommandInvalid  = "WEAVE_COMMAND_INVALID"
	codeCommandCanceled = "WEAVE_COMMAND_CANCELED"
	codeCommandTimedOut = "WEAVE_COMMAND_TIMED_OUT"
	codeCommandContext  = "WEAVE_COMMAND_CONTEXT"
	codeCommandFailed   = "WEAVE_COMMAND_FAILED"
)

// wrap attaches a category, message, and text code unless err already carries
// structured metadata from a lower layer.
func wrap(err error, category goerrors.Category, msg, code string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, category, msg).WithTextCode(code)
}

func wrapValidationError(err error) error {
	return wrap(err, goerrors.CategoryValidation, "weave command message is invalid", codeCommandInvalid)
}

func wrapContextError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled):
		return wrap(err, goerrors.CategoryCommand, "weave command canceled", codeCommandCanceled)
	case errors.Is(err, context.DeadlineExceeded):
		return wrap(err, goerrors.CategoryCommand, "weave command timed out", codeCommandTimedOut)
	default:
		return wrap(err, goerrors.CategoryCommand, "weave command context error", codeCommandContext)
	}
}

func wrapExecuteError(err error) error {
	return wrap(err, goerrors.CategoryCommand, "weave command execution failed", codeCommandFailed)
}

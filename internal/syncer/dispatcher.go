package syncer

import (
	"context"
	"errors"

	"github.com/goliatone/go-weave/internal/logging"
	"github.com/goliatone/go-weave/pkg/interfaces"
)

// ErrSenderRequired reports a dispatcher constructed without a sender.
var ErrSenderRequired = errors.New("weave syncer: sender is required")

// Dispatcher builds outbound payloads for processed documents and hands them
// to the configured sender. It is invoked only for documents that were newly
// processed; skipped documents never reach it.
type Dispatcher struct {
	sender interfaces.Sender
	logger interfaces.Logger
}

// NewDispatcher binds a dispatcher to the supplied sender.
func NewDispatcher(sender interfaces.Sender, logger interfaces.Logger) (*Dispatcher, error) {
	if sender == nil {
		return nil, ErrSenderRequired
	}
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Dispatcher{sender: sender, logger: logger}, nil
}

// Dispatch submits one rendered document. A delivery failure is returned to
// the caller for per-document reporting and never aborts the run.
func (d *Dispatcher) Dispatch(ctx context.Context, doc interfaces.RenderedDocument) error {
	payload := interfaces.SyncPayload{
		Title:       doc.Metadata.Title,
		Slug:        doc.Slug,
		Content:     doc.HTML,
		Description: doc.Metadata.Description,
		Tags:        append([]string{}, doc.Metadata.Tags...),
	}

	logger := logging.WithFields(d.logger, map[string]any{"slug": doc.Slug})
	logger.Debug("sync.dispatch.start")

	if err := d.sender.Send(ctx, payload); err != nil {
		logger.Error("sync.dispatch.failed", "error", err)
		return err
	}

	logger.Info("sync.dispatch.success")
	return nil
}

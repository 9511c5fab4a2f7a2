package weavecmd

import (
	"context"
	"errors"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"

	"github.com/goliatone/go-weave/pkg/interfaces"
)

type stubService struct {
	report     *interfaces.RunReport
	err        error
	gotDir     string
	gotDocs    []*interfaces.Document
	gotOptions interfaces.ProcessOptions
}

func (s *stubService) ProcessDirectory(_ context.Context, dir string, opts interfaces.ProcessOptions) (*interfaces.RunReport, error) {
	s.gotDir = dir
	s.gotOptions = opts
	return s.report, s.err
}

func (s *stubService) ProcessDocuments(_ context.Context, docs []*interfaces.Document, opts interfaces.ProcessOptions) (*interfaces.RunReport, error) {
	s.gotDocs = docs
	s.gotOptions = opts
	return s.report, s.err
}

type stubLoader struct {
	doc *interfaces.Document
	err error
}

func (s *stubLoader) LoadFile(context.Context, string) (*interfaces.Document, error) {
	return s.doc, s.err
}

func TestProcessDirectoryCommandValidation(t *testing.T) {
	if err := (ProcessDirectoryCommand{}).Validate(); err == nil {
		t.Fatalf("expected validation error for empty directory")
	}
	if err := (ProcessDirectoryCommand{Directory: "  "}).Validate(); err == nil {
		t.Fatalf("expected validation error for blank directory")
	}
	if err := (ProcessDirectoryCommand{Directory: "."}).Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestProcessFileCommandValidation(t *testing.T) {
	if err := (ProcessFileCommand{}).Validate(); err == nil {
		t.Fatalf("expected validation error for empty path")
	}
	if err := (ProcessFileCommand{Path: "a.md"}).Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestProcessDirectoryHandler(t *testing.T) {
	service := &stubService{report: &interfaces.RunReport{RunID: uuid.New(), Processed: 3}}

	var sunk *interfaces.RunReport
	handler := NewProcessDirectoryHandler(service, nil, func(r *interfaces.RunReport) { sunk = r })

	cmd := ProcessDirectoryCommand{Directory: "posts", Force: true}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if service.gotDir != "posts" {
		t.Fatalf("directory not forwarded: %q", service.gotDir)
	}
	if !service.gotOptions.Force || service.gotOptions.DryRun {
		t.Fatalf("options not forwarded: %+v", service.gotOptions)
	}
	if sunk == nil || sunk.Processed != 3 {
		t.Fatalf("report not delivered to sink: %#v", sunk)
	}
}

func TestProcessDirectoryHandlerRejectsEmptyDirectory(t *testing.T) {
	handler := NewProcessDirectoryHandler(&stubService{}, nil, nil)

	err := handler.Execute(context.Background(), ProcessDirectoryCommand{})
	if err == nil {
		t.Fatalf("expected validation failure")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestProcessDirectoryHandlerPropagatesServiceError(t *testing.T) {
	service := &stubService{err: errors.New("walk failed")}
	handler := NewProcessDirectoryHandler(service, nil, nil)

	err := handler.Execute(context.Background(), ProcessDirectoryCommand{Directory: "."})
	if err == nil {
		t.Fatalf("expected service error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}

func TestProcessFileHandler(t *testing.T) {
	document := &interfaces.Document{SourcePath: "a.md", Raw: []byte("---\ntitle: A\n---\nBody")}
	service := &stubService{report: &interfaces.RunReport{RunID: uuid.New(), Processed: 1}}

	var sunk *interfaces.RunReport
	handler := NewProcessFileHandler(&stubLoader{doc: document}, service, nil, func(r *interfaces.RunReport) { sunk = r })

	if err := handler.Execute(context.Background(), ProcessFileCommand{Path: "a.md", DryRun: true}); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if len(service.gotDocs) != 1 || service.gotDocs[0] != document {
		t.Fatalf("document not forwarded: %#v", service.gotDocs)
	}
	if !service.gotOptions.DryRun {
		t.Fatalf("dry run flag not forwarded: %+v", service.gotOptions)
	}
	if sunk == nil || sunk.Processed != 1 {
		t.Fatalf("report not delivered to sink: %#v", sunk)
	}
}

func TestProcessFileHandlerLoaderError(t *testing.T) {
	handler := NewProcessFileHandler(&stubLoader{err: errors.New("missing")}, &stubService{}, nil, nil)

	if err := handler.Execute(context.Background(), ProcessFileCommand{Path: "a.md"}); err == nil {
		t.Fatalf("expected loader error")
	}
}

package markdown

import (
	"context"
	"testing"
	"testing/fstest"
	"time"
)

func testFS() fstest.MapFS {
	modified := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return fstest.MapFS{
		"b-post.md":     &fstest.MapFile{Data: []byte("# B"), ModTime: modified},
		"a-post.md":     &fstest.MapFile{Data: []byte("# A"), ModTime: modified},
		"notes.txt":     &fstest.MapFile{Data: []byte("ignored")},
		"nested/c.md":   &fstest.MapFile{Data: []byte("# C"), ModTime: modified},
		"nested/d.html": &fstest.MapFile{Data: []byte("ignored")},
	}
}

func TestLoadDirectorySortedAndFiltered(t *testing.T) {
	loader := NewLoader(testFS(), LoaderConfig{})

	docs, err := loader.LoadDirectory(context.Background(), ".")
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}

	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if docs[0].SourcePath != "a-post.md" || docs[1].SourcePath != "b-post.md" {
		t.Fatalf("unexpected order: %q, %q", docs[0].SourcePath, docs[1].SourcePath)
	}
	if string(docs[0].Raw) != "# A" {
		t.Fatalf("unexpected raw content: %q", docs[0].Raw)
	}
	if docs[0].Modified.IsZero() {
		t.Fatalf("expected modification time to be recorded")
	}
}

func TestLoadDirectoryRecursive(t *testing.T) {
	loader := NewLoader(testFS(), LoaderConfig{Recursive: true})

	docs, err := loader.LoadDirectory(context.Background(), ".")
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}

	if len(docs) != 3 {
		t.Fatalf("expected 3 documents, got %d", len(docs))
	}
	if docs[2].SourcePath != "nested/c.md" {
		t.Fatalf("expected nested document last, got %q", docs[2].SourcePath)
	}
}

func TestLoadDirectoryCustomPattern(t *testing.T) {
	loader := NewLoader(testFS(), LoaderConfig{Pattern: "a-*.md"})

	docs, err := loader.LoadDirectory(context.Background(), ".")
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}
	if len(docs) != 1 || docs[0].SourcePath != "a-post.md" {
		t.Fatalf("pattern not applied: %#v", docs)
	}
}

func TestLoadFile(t *testing.T) {
	loader := NewLoader(testFS(), LoaderConfig{})

	doc, err := loader.LoadFile(context.Background(), "nested/c.md")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if doc.SourcePath != "nested/c.md" {
		t.Fatalf("unexpected source path %q", doc.SourcePath)
	}
	if string(doc.Raw) != "# C" {
		t.Fatalf("unexpected raw content %q", doc.Raw)
	}
}

func TestLoadFileMissing(t *testing.T) {
	loader := NewLoader(testFS(), LoaderConfig{})

	if _, err := loader.LoadFile(context.Background(), "missing.md"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadDirectoryCancelledContext(t *testing.T) {
	loader := NewLoader(testFS(), LoaderConfig{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := loader.LoadDirectory(ctx, "."); err == nil {
		t.Fatalf("expected context error")
	}
}

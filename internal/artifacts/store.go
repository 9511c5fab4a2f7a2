// Package artifacts owns the persisted cache of rendered documents. One JSON
// record per slug lives under the configured directory; the stored hash
// drives the pipeline's skip-vs-process decision.
package artifacts

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-weave/pkg/interfaces"
)

var (
	// ErrSlugRequired reports an empty slug on lookup or write.
	ErrSlugRequired = errors.New("weave artifacts: slug is required")
	// ErrSlugUnsafe reports a slug that cannot form a file name.
	ErrSlugUnsafe = errors.New("weave artifacts: slug must not contain path separators")
)

// FileStore persists one pretty-printed JSON record per slug at
// <dir>/<slug>.json, keeping artifacts human-inspectable. Writes go through a
// temporary file and rename so a crash never leaves a half-written record.
type FileStore struct {
	dir string
}

var _ interfaces.ArtifactStore = (*FileStore)(nil)

// NewFileStore creates the artifact directory when missing and returns a
// store rooted there.
func NewFileStore(dir string) (*FileStore, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("weave artifacts: directory is required")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("weave artifacts: create directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// Lookup returns the stored record for slug, reporting absence without error.
func (s *FileStore) Lookup(slug string) (*interfaces.ArtifactRecord, bool, error) {
	path, err := s.recordPath(slug)
	if err != nil {
		return nil, false, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("weave artifacts: read record %s: %w", slug, err)
	}

	var record interfaces.ArtifactRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, false, fmt.Errorf("weave artifacts: decode record %s: %w", slug, err)
	}
	return &record, true, nil
}

// IsUnchanged reports whether a record exists for slug with exactly hash.
func (s *FileStore) IsUnchanged(slug, hash string) (bool, error) {
	record, found, err := s.Lookup(slug)
	if err != nil {
		return false, err
	}
	return found && record.Hash == hash, nil
}

// Write persists the record atomically, overwriting any previous entry.
func (s *FileStore) Write(record interfaces.ArtifactRecord) error {
	path, err := s.recordPath(record.Slug)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("weave artifacts: encode record %s: %w", record.Slug, err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(s.dir, record.Slug+"-*.tmp")
	if err != nil {
		return fmt.Errorf("weave artifacts: create temp record %s: %w", record.Slug, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("weave artifacts: write record %s: %w", record.Slug, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("weave artifacts: close record %s: %w", record.Slug, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("weave artifacts: commit record %s: %w", record.Slug, err)
	}
	return nil
}

func (s *FileStore) recordPath(slug string) (string, error) {
	if strings.TrimSpace(slug) == "" {
		return "", ErrSlugRequired
	}
	if strings.ContainsAny(slug, `/\`) || slug == "." || slug == ".." {
		return "", ErrSlugUnsafe
	}
	return filepath.Join(s.dir, slug+".json"), nil
}

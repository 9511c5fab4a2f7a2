package artifacts

import (
	"sync"

	"github.com/goliatone/go-weave/pkg/interfaces"
)

// MemoryStore keeps artifact records in memory. It backs tests and dry runs
// where nothing should touch the filesystem.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]interfaces.ArtifactRecord
	writes  int
}

var _ interfaces.ArtifactStore = (*MemoryStore)(nil)

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: map[string]interfaces.ArtifactRecord{}}
}

func (s *MemoryStore) Lookup(slug string) (*interfaces.ArtifactRecord, bool, error) {
	if slug == "" {
		return nil, false, ErrSlugRequired
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, found := s.records[slug]
	if !found {
		return nil, false, nil
	}
	copied := record
	copied.Metadata.Tags = append([]string(nil), record.Metadata.Tags...)
	return &copied, true, nil
}

func (s *MemoryStore) IsUnchanged(slug, hash string) (bool, error) {
	record, found, err := s.Lookup(slug)
	if err != nil {
		return false, err
	}
	return found && record.Hash == hash, nil
}

func (s *MemoryStore) Write(record interfaces.ArtifactRecord) error {
	if record.Slug == "" {
		return ErrSlugRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	record.Metadata.Tags = append([]string(nil), record.Metadata.Tags...)
	s.records[record.Slug] = record
	s.writes++
	return nil
}

// Writes reports how many times Write has been called, letting tests assert
// that skipped documents never touch the store.
func (s *MemoryStore) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}

package interfaces

// ArtifactRecord is the persisted cache entry for one slug. Records are
// written whole or not at all; a crash must never leave a partially readable
// record behind.
type ArtifactRecord struct {
	Slug     string   `json:"slug"`
	Hash     string   `json:"hash"`
	HTML     string   `json:"html"`
	Metadata Metadata `json:"metadata"`
}

// ArtifactStore owns ArtifactRecord persistence. Reads never mutate stored
// state; writes are keyed strictly by slug. Slug uniqueness across documents
// is enforced by the pipeline, not the store.
type ArtifactStore interface {
	// Lookup returns the stored record for slug. The boolean reports whether
	// a record exists; absence is not an error.
	Lookup(slug string) (*ArtifactRecord, bool, error)
	// IsUnchanged reports whether a record exists for slug with exactly the
	// supplied hash.
	IsUnchanged(slug, hash string) (bool, error)
	// Write persists the record, overwriting any previous entry for its slug.
	Write(record ArtifactRecord) error
}

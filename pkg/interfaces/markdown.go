package interfaces

import "time"

// Document represents one Markdown source unit read from disk. Raw content is
// treated as immutable once loaded; the pipeline never mutates it.
type Document struct {
	// SourcePath identifies the origin file relative to the content root. It
	// is opaque beyond extension filtering and slug derivation.
	SourcePath string
	// Raw holds the full UTF-8 text of the file, frontmatter included.
	Raw []byte
	// Modified records the file modification time reported by the loader.
	Modified time.Time
}

// Metadata models the structured frontmatter extracted from a document.
// Unknown frontmatter keys are ignored during decoding so authors can carry
// extra fields without breaking the pipeline.
type Metadata struct {
	Title       string   `json:"title" yaml:"title"`
	Slug        string   `json:"slug" yaml:"slug"`
	Description string   `json:"description" yaml:"description"`
	Tags        []string `json:"tags" yaml:"tags"`
	// SourceFile is the base name of the originating file, recorded for
	// artifact inspection. It never participates in rendering or hashing.
	SourceFile string `json:"source_file" yaml:"-"`
}

// RenderedDocument is the pipeline output for one document: the card-wrapped
// HTML fragment plus the digest used for change detection. For a given raw
// source and style configuration the HTML and ContentHash are byte-stable
// across runs.
type RenderedDocument struct {
	Slug        string
	Metadata    Metadata
	HTML        string
	ContentHash string
}

// Package markdown implements the document side of the weave pipeline:
// frontmatter splitting and metadata extraction, the style-driven renderer
// for the supported Markdown subset, content hashing, and filesystem
// discovery of source documents.
package markdown

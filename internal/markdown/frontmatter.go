package markdown

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-weave/pkg/interfaces"
)

// Delimiter marks the start and end of a frontmatter block. Both delimiters
// must appear on their own line.
const Delimiter = "---"

var (
	// ErrMalformedFrontmatter reports an opening delimiter with no matching
	// closing delimiter. The document is rejected, not absorbed as content.
	ErrMalformedFrontmatter = errors.New("weave markdown: frontmatter delimiter is never closed")
	// ErrMissingTitle reports frontmatter without the required title field.
	ErrMissingTitle = errors.New("weave markdown: frontmatter title is required")
)

// Split separates raw document text into its frontmatter block and body. The
// frontmatter block is the text between a leading delimiter line and the next
// delimiter line, both delimiters stripped. When the document has no leading
// delimiter the block is empty and the body is the full text.
func Split(raw []byte) (front, body []byte, err error) {
	lines := strings.Split(string(raw), "\n")
	if len(lines) == 0 || !isDelimiterLine(lines[0]) {
		return nil, raw, nil
	}

	for i := 1; i < len(lines); i++ {
		if isDelimiterLine(lines[i]) {
			front = []byte(strings.Join(lines[1:i], "\n"))
			body = []byte(strings.Join(lines[i+1:], "\n"))
			return front, body, nil
		}
	}

	return nil, nil, ErrMalformedFrontmatter
}

func isDelimiterLine(line string) bool {
	return strings.TrimRight(line, " \r") == Delimiter
}

// metadataEnvelope mirrors the recognised frontmatter keys. The inline map
// absorbs unknown keys so forward-compatible documents decode cleanly.
type metadataEnvelope struct {
	Title       string         `yaml:"title"`
	Slug        string         `yaml:"slug"`
	Description string         `yaml:"description"`
	Tags        []string       `yaml:"tags"`
	Custom      map[string]any `yaml:",inline"`
}

// ParseMetadata extracts structured metadata and the Markdown body from the
// provided source bytes. A document without a title cannot be rendered into a
// publishable artifact and is rejected with ErrMissingTitle. A missing slug
// derives its default from the source file name without extension, case kept.
func ParseMetadata(raw []byte, sourcePath string) (interfaces.Metadata, []byte, error) {
	front, body, err := Split(raw)
	if err != nil {
		return interfaces.Metadata{}, nil, err
	}

	var env metadataEnvelope
	if len(front) > 0 {
		rest, err := frontmatter.Parse(bytes.NewReader(raw), &env)
		if err != nil {
			return interfaces.Metadata{}, nil, fmt.Errorf("weave markdown: decode frontmatter: %w", err)
		}
		body = rest
	}

	meta := interfaces.Metadata{
		Title:       strings.TrimSpace(env.Title),
		Slug:        strings.TrimSpace(env.Slug),
		Description: strings.TrimSpace(env.Description),
		Tags:        append([]string{}, env.Tags...),
		SourceFile:  filepath.Base(sourcePath),
	}

	if meta.Title == "" {
		return interfaces.Metadata{}, nil, ErrMissingTitle
	}
	if meta.Slug == "" {
		meta.Slug = SourceSlug(sourcePath)
	}

	return meta, body, nil
}

// SourceSlug derives the default slug for a document: the base file name
// without its extension, case preserved.
func SourceSlug(sourcePath string) string {
	name := filepath.Base(sourcePath)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

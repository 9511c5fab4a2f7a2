package interfaces

// HeadingStyle decorates one heading level. Prefix, when present, is emitted
// inside its own span ahead of the heading text; Divider appends a rule after
// the heading element.
type HeadingStyle struct {
	Container   string `json:"container" yaml:"container"`
	Heading     string `json:"heading" yaml:"heading"`
	Prefix      string `json:"prefix" yaml:"prefix"`
	PrefixClass string `json:"prefix_class" yaml:"prefix_class"`
	Divider     bool   `json:"divider" yaml:"divider"`
}

// ParagraphStyle decorates paragraph blocks.
type ParagraphStyle struct {
	Container string `json:"container" yaml:"container"`
	Text      string `json:"text" yaml:"text"`
}

// SpanStyle carries the class applied to an inline span (code, bold, italic,
// link).
type SpanStyle struct {
	Class string `json:"class" yaml:"class"`
}

// CodeBlockStyle decorates fenced code blocks: an outer container and an
// inner wrapper around the <pre> element.
type CodeBlockStyle struct {
	Container string `json:"container" yaml:"container"`
	Wrapper   string `json:"wrapper" yaml:"wrapper"`
}

// ListStyle decorates unordered lists. Bullet, when set, is rendered inside a
// span carrying BulletClass at the start of every item.
type ListStyle struct {
	Container   string `json:"container" yaml:"container"`
	List        string `json:"list_class" yaml:"list_class"`
	Item        string `json:"item" yaml:"item"`
	Bullet      string `json:"bullet" yaml:"bullet"`
	BulletClass string `json:"bullet_class" yaml:"bullet_class"`
}

// CardStyle wraps the whole rendered document.
type CardStyle struct {
	Class string `json:"class" yaml:"class"`
}

// StyleConfig maps element kinds to their CSS class records. It is loaded
// once per run and treated as read-only by the renderer; absent entries fall
// back to empty classes, never an error.
type StyleConfig struct {
	H1         HeadingStyle   `json:"h1" yaml:"h1"`
	H2         HeadingStyle   `json:"h2" yaml:"h2"`
	H3         HeadingStyle   `json:"h3" yaml:"h3"`
	H4         HeadingStyle   `json:"h4" yaml:"h4"`
	H5         HeadingStyle   `json:"h5" yaml:"h5"`
	Paragraph  ParagraphStyle `json:"paragraph" yaml:"paragraph"`
	CodeInline SpanStyle      `json:"code_inline" yaml:"code_inline"`
	CodeBlock  CodeBlockStyle `json:"code_block" yaml:"code_block"`
	Bold       SpanStyle      `json:"bold" yaml:"bold"`
	Italic     SpanStyle      `json:"italic" yaml:"italic"`
	Link       SpanStyle      `json:"link" yaml:"link"`
	List       ListStyle      `json:"list" yaml:"list"`
	Card       CardStyle      `json:"card" yaml:"card"`
}

// Heading returns the style record for the given level. Levels above five
// reuse the H5 record, mirroring the configuration surface which stops at h5.
func (s StyleConfig) Heading(level int) HeadingStyle {
	switch level {
	case 1:
		return s.H1
	case 2:
		return s.H2
	case 3:
		return s.H3
	case 4:
		return s.H4
	default:
		return s.H5
	}
}

package markdown

import (
	"html"
	"strings"
)

// renderInline scans text left to right for inline spans in fixed precedence:
// code spans, bold, italic, then links. Bold is matched before italic so
// **x** is never misread as two italic markers. Malformed or unterminated
// markers degrade to literal text; inline scanning never fails.
func (r *Renderer) renderInline(text string) string {
	var b strings.Builder
	b.Grow(len(text) + 32)

	i := 0
	for i < len(text) {
		switch {
		case text[i] == '`':
			if end := strings.IndexByte(text[i+1:], '`'); end > 0 {
				b.WriteString(`<code class="` + r.styles.CodeInline.Class + `">`)
				b.WriteString(html.EscapeString(text[i+1 : i+1+end]))
				b.WriteString("</code>")
				i += end + 2
				continue
			}
			b.WriteByte('`')
			i++

		case strings.HasPrefix(text[i:], "**"):
			if end := strings.Index(text[i+2:], "**"); end > 0 {
				b.WriteString(`<strong class="` + r.styles.Bold.Class + `">`)
				b.WriteString(html.EscapeString(text[i+2 : i+2+end]))
				b.WriteString("</strong>")
				i += end + 4
				continue
			}
			b.WriteString("**")
			i += 2

		case text[i] == '*':
			if end := strings.IndexByte(text[i+1:], '*'); end > 0 {
				b.WriteString(`<em class="` + r.styles.Italic.Class + `">`)
				b.WriteString(html.EscapeString(text[i+1 : i+1+end]))
				b.WriteString("</em>")
				i += end + 2
				continue
			}
			b.WriteByte('*')
			i++

		case text[i] == '[':
			if label, url, length, ok := matchLink(text[i:]); ok {
				b.WriteString(`<a href="` + html.EscapeString(url) + `" class="` + r.styles.Link.Class + `">`)
				b.WriteString(html.EscapeString(label))
				b.WriteString("</a>")
				i += length
				continue
			}
			b.WriteByte('[')
			i++

		default:
			j := i
			for j < len(text) && !isInlineMarker(text[j]) {
				j++
			}
			b.WriteString(html.EscapeString(text[i:j]))
			i = j
		}
	}

	return b.String()
}

func isInlineMarker(c byte) bool {
	return c == '`' || c == '*' || c == '['
}

// matchLink recognises [label](url) at the start of text. Both label and url
// must be non-empty and free of nesting; anything else is literal.
func matchLink(text string) (label, url string, length int, ok bool) {
	closeBracket := strings.IndexByte(text, ']')
	if closeBracket <= 1 {
		return "", "", 0, false
	}
	label = text[1:closeBracket]
	if strings.ContainsAny(label, "[") {
		return "", "", 0, false
	}

	rest := text[closeBracket+1:]
	if !strings.HasPrefix(rest, "(") {
		return "", "", 0, false
	}
	closeParen := strings.IndexByte(rest, ')')
	if closeParen <= 1 {
		return "", "", 0, false
	}
	url = rest[1:closeParen]

	return label, url, closeBracket + 1 + closeParen + 1, true
}

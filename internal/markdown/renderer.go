package markdown

import (
	"fmt"
	"html"
	"strings"

	"github.com/goliatone/go-weave/pkg/interfaces"
)

const (
	maxHeadingLevel = 5

	// Fixed classes inside code blocks; everything else comes from the
	// style configuration.
	preClass      = "font-mono text-sm overflow-x-auto"
	codeLineClass = "text-gray-300"
	promptClass   = "text-green-400"

	defaultCodeLanguage = "bash"
)

// Renderer converts the supported Markdown subset into styled HTML fragments.
// The renderer holds no mutable state across calls: the same body and style
// configuration always produce byte-identical output.
type Renderer struct {
	styles interfaces.StyleConfig
}

// NewRenderer constructs a renderer bound to the supplied style configuration.
// The configuration is treated as read-only for the renderer's lifetime.
func NewRenderer(styles interfaces.StyleConfig) *Renderer {
	return &Renderer{styles: styles}
}

// RenderDocument renders body and wraps the result in the configured card
// container.
func (r *Renderer) RenderDocument(body []byte) string {
	return `<div class="` + r.styles.Card.Class + "\">\n" + r.Render(body) + "\n</div>"
}

// Render converts body into a newline-joined sequence of rendered blocks.
// Blocks are classified line by line: fenced code first, then list runs,
// headings, blank separators, and paragraphs.
func (r *Renderer) Render(body []byte) string {
	var (
		blocks    []string
		inCode    bool
		codeLang  string
		codeLines []string
		listItems []string
	)

	flushList := func() {
		if len(listItems) > 0 {
			blocks = append(blocks, r.renderList(listItems))
			listItems = nil
		}
	}

	for _, line := range strings.Split(string(body), "\n") {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			if !inCode {
				flushList()
				inCode = true
				codeLang = strings.TrimSpace(trimmed[3:])
				if codeLang == "" {
					codeLang = defaultCodeLanguage
				}
				codeLines = nil
			} else {
				inCode = false
				blocks = append(blocks, r.renderCodeBlock(codeLang, codeLines))
			}
			continue
		}

		if inCode {
			codeLines = append(codeLines, line)
			continue
		}

		if isListItem(trimmed) {
			listItems = append(listItems, strings.TrimSpace(trimmed[2:]))
			continue
		}
		flushList()

		if level, text, ok := headingLine(trimmed); ok {
			blocks = append(blocks, r.renderHeading(level, text))
			continue
		}

		if trimmed == "" {
			continue
		}

		blocks = append(blocks, r.renderParagraph(trimmed))
	}

	flushList()
	if inCode {
		// An unterminated fence still renders its captured content rather
		// than dropping author input.
		blocks = append(blocks, r.renderCodeBlock(codeLang, codeLines))
	}

	return strings.Join(blocks, "\n")
}

func isListItem(line string) bool {
	return strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ")
}

// headingLine classifies a heading marker: one or more # characters followed
// by a space. Levels beyond five reuse the h5 tag and style record.
func headingLine(line string) (int, string, bool) {
	if !strings.HasPrefix(line, "#") {
		return 0, "", false
	}
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level >= len(line) || line[level] != ' ' {
		return 0, "", false
	}
	text := strings.TrimSpace(line[level+1:])
	if level > maxHeadingLevel {
		level = maxHeadingLevel
	}
	return level, text, true
}

func (r *Renderer) renderHeading(level int, text string) string {
	style := r.styles.Heading(level)

	var b strings.Builder
	b.WriteString(`<div class="` + style.Container + `">`)
	fmt.Fprintf(&b, `<h%d class="%s">`, level, style.Heading)
	if style.Prefix != "" {
		fmt.Fprintf(&b, `<span class="%s">%s</span> `, style.PrefixClass, html.EscapeString(style.Prefix))
	}
	b.WriteString(r.renderInline(text))
	fmt.Fprintf(&b, `</h%d>`, level)
	if style.Divider {
		b.WriteString("<hr>")
	}
	b.WriteString(`</div>`)
	return b.String()
}

func (r *Renderer) renderParagraph(text string) string {
	style := r.styles.Paragraph
	return `<div class="` + style.Container + `"><p class="` + style.Text + `">` +
		r.renderInline(text) + `</p></div>`
}

func (r *Renderer) renderList(items []string) string {
	style := r.styles.List

	var b strings.Builder
	b.WriteString(`<div class="` + style.Container + `">`)
	b.WriteString(`<ul class="` + style.List + `">`)
	for _, item := range items {
		if style.Item != "" {
			b.WriteString(`<li class="` + style.Item + `">`)
		} else {
			b.WriteString("<li>")
		}
		if style.Bullet != "" {
			fmt.Fprintf(&b, `<span class="%s">%s</span>`, style.BulletClass, html.EscapeString(style.Bullet))
		}
		b.WriteString(r.renderInline(item))
		b.WriteString("</li>")
	}
	b.WriteString("</ul></div>")
	return b.String()
}

// renderCodeBlock emits fenced content verbatim, HTML-escaped. The language
// tag is informational: shell and python fences get a prompt prefix span on
// non-blank lines, nothing else changes.
func (r *Renderer) renderCodeBlock(language string, lines []string) string {
	var prompt string
	switch language {
	case "bash", "sh", "shell":
		prompt = "$ "
	case "python", "py":
		prompt = ">>> "
	}

	rows := make([]string, 0, len(lines))
	for _, line := range lines {
		escaped := html.EscapeString(line)
		if prompt != "" && strings.TrimSpace(line) != "" {
			rows = append(rows, fmt.Sprintf(`<div class="%s"><span class="%s">%s</span><code>%s</code></div>`,
				codeLineClass, promptClass, prompt, escaped))
			continue
		}
		if escaped == "" {
			escaped = " "
		}
		rows = append(rows, fmt.Sprintf(`<div class="%s"><code>%s</code></div>`, codeLineClass, escaped))
	}

	style := r.styles.CodeBlock
	return `<div class="` + style.Container + `"><div class="` + style.Wrapper + `">` +
		`<pre class="` + preClass + "\">\n" + strings.Join(rows, "\n") + "\n</pre></div></div>"
}

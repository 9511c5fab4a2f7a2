package runtimeconfig

import (
	"time"

	"github.com/goliatone/go-weave/pkg/interfaces"
)

// DefaultConfig returns the stock pipeline settings with the bundled
// Tailwind styling for every rendered element.
func DefaultConfig() Config {
	return Config{
		ContentDir:   "posts",
		ArtifactsDir: "artifacts",
		Pattern:      "*.md",
		Recursive:    false,
		Styles:       DefaultStyles(),
		API: APIConfig{
			Enabled: false,
			Method:  "POST",
			Headers: map[string]string{},
			Timeout: 30 * time.Second,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
			Format:   "",
		},
	}
}

// DefaultStyles returns the bundled Tailwind classes applied when the config
// file omits a styling section.
func DefaultStyles() interfaces.StyleConfig {
	return interfaces.StyleConfig{
		H1: interfaces.HeadingStyle{
			Container:   "mb-8",
			Heading:     "text-5xl font-bold mb-4 text-gray-900",
			Prefix:      "$",
			PrefixClass: "text-blue-600",
			Divider:     true,
		},
		H2: interfaces.HeadingStyle{
			Container:   "mb-6",
			Heading:     "text-3xl font-bold text-gray-800",
			Prefix:      "▸",
			PrefixClass: "text-orange-500",
		},
		H3: interfaces.HeadingStyle{
			Container:   "mb-4",
			Heading:     "text-2xl font-semibold text-gray-700",
			Prefix:      "//",
			PrefixClass: "text-gray-400",
		},
		H4: interfaces.HeadingStyle{
			Container: "mb-3",
			Heading:   "text-xl font-semibold text-gray-700",
		},
		H5: interfaces.HeadingStyle{
			Container: "mb-2",
			Heading:   "text-lg font-medium text-gray-600",
		},
		Paragraph: interfaces.ParagraphStyle{
			Container: "mb-4",
			Text:      "text-base leading-relaxed text-gray-700",
		},
		CodeInline: interfaces.SpanStyle{
			Class: "px-2 py-1 bg-gray-100 text-blue-600 rounded font-mono text-sm",
		},
		CodeBlock: interfaces.CodeBlockStyle{
			Container: "mb-6",
			Wrapper:   "bg-gray-900 rounded-lg shadow-lg border border-gray-700 p-4",
		},
		Bold: interfaces.SpanStyle{
			Class: "font-bold text-gray-900",
		},
		Italic: interfaces.SpanStyle{
			Class: "italic text-gray-600",
		},
		Link: interfaces.SpanStyle{
			Class: "text-blue-600 hover:text-blue-800 underline font-semibold",
		},
		List: interfaces.ListStyle{
			Container:   "mb-6",
			List:        "list-none space-y-2 pl-4",
			Bullet:      "▸",
			BulletClass: "text-blue-600 mr-2",
		},
		Card: interfaces.CardStyle{
			Class: "bg-white rounded-lg shadow-xl border border-gray-200 p-8",
		},
	}
}

package runtimeconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-weave/pkg/interfaces"
)

// fileConfig mirrors the on-disk document. Pointer fields distinguish an
// omitted section from an explicit zero so omitted sections keep their
// defaults.
type fileConfig struct {
	ContentDir   *string        `json:"content_dir"`
	ArtifactsDir *string        `json:"artifacts_dir"`
	Pattern      *string        `json:"pattern"`
	Recursive    *bool          `json:"recursive"`
	Styling      *styleSection  `json:"styling"`
	API          *apiSection    `json:"api"`
	Logging      *LoggingConfig `json:"logging"`
}

type styleSection struct {
	H1         *interfaces.HeadingStyle   `json:"h1"`
	H2         *interfaces.HeadingStyle   `json:"h2"`
	H3         *interfaces.HeadingStyle   `json:"h3"`
	H4         *interfaces.HeadingStyle   `json:"h4"`
	H5         *interfaces.HeadingStyle   `json:"h5"`
	Paragraph  *interfaces.ParagraphStyle `json:"paragraph"`
	CodeInline *interfaces.SpanStyle      `json:"code_inline"`
	CodeBlock  *interfaces.CodeBlockStyle `json:"code_block"`
	Bold       *interfaces.SpanStyle      `json:"bold"`
	Italic     *interfaces.SpanStyle      `json:"italic"`
	Link       *interfaces.SpanStyle      `json:"link"`
	List       *interfaces.ListStyle      `json:"list"`
	Card       *interfaces.CardStyle      `json:"card"`
}

type apiSection struct {
	Enabled        bool              `json:"enabled"`
	URL            string            `json:"url"`
	Method         string            `json:"method"`
	Headers        map[string]string `json:"headers"`
	TimeoutSeconds *int              `json:"timeout_seconds"`
}

// Load reads a config file, validates it against the config schema, and
// merges it over DefaultConfig. YAML files are accepted alongside JSON by
// extension (.yaml or .yml).
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("weave config: read %s: %w", path, err)
	}

	encoded := data
	if isYAMLPath(path) {
		var doc map[string]any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return cfg, fmt.Errorf("weave config: parse %s: %w", path, err)
		}
		if encoded, err = json.Marshal(doc); err != nil {
			return cfg, fmt.Errorf("weave config: parse %s: %w", path, err)
		}
	}

	var doc any
	if err := json.Unmarshal(encoded, &doc); err != nil {
		return cfg, fmt.Errorf("weave config: parse %s: %w", path, err)
	}
	if err := validateConfigDocument(doc); err != nil {
		return cfg, fmt.Errorf("%w (%s)", err, path)
	}

	var file fileConfig
	if err := json.Unmarshal(encoded, &file); err != nil {
		return cfg, fmt.Errorf("weave config: parse %s: %w", path, err)
	}
	applyFileConfig(&cfg, file)
	return cfg, nil
}

func applyFileConfig(cfg *Config, file fileConfig) {
	if file.ContentDir != nil {
		cfg.ContentDir = *file.ContentDir
	}
	if file.ArtifactsDir != nil {
		cfg.ArtifactsDir = *file.ArtifactsDir
	}
	if file.Pattern != nil {
		cfg.Pattern = *file.Pattern
	}
	if file.Recursive != nil {
		cfg.Recursive = *file.Recursive
	}
	if file.Styling != nil {
		applyStyleSection(&cfg.Styles, *file.Styling)
	}
	if file.API != nil {
		cfg.API.Enabled = file.API.Enabled
		cfg.API.URL = file.API.URL
		if file.API.Method != "" {
			cfg.API.Method = file.API.Method
		}
		if file.API.Headers != nil {
			cfg.API.Headers = file.API.Headers
		}
		if file.API.TimeoutSeconds != nil {
			cfg.API.Timeout = time.Duration(*file.API.TimeoutSeconds) * time.Second
		}
	}
	if file.Logging != nil {
		if file.Logging.Provider != "" {
			cfg.Logging.Provider = file.Logging.Provider
		}
		if file.Logging.Level != "" {
			cfg.Logging.Level = file.Logging.Level
		}
		cfg.Logging.Format = file.Logging.Format
		cfg.Logging.AddSource = file.Logging.AddSource
	}
}

// applyStyleSection replaces whole elements, never individual class fields:
// a file that restyles h1 supplies the complete h1 entry.
func applyStyleSection(styles *interfaces.StyleConfig, section styleSection) {
	if section.H1 != nil {
		styles.H1 = *section.H1
	}
	if section.H2 != nil {
		styles.H2 = *section.H2
	}
	if section.H3 != nil {
		styles.H3 = *section.H3
	}
	if section.H4 != nil {
		styles.H4 = *section.H4
	}
	if section.H5 != nil {
		styles.H5 = *section.H5
	}
	if section.Paragraph != nil {
		styles.Paragraph = *section.Paragraph
	}
	if section.CodeInline != nil {
		styles.CodeInline = *section.CodeInline
	}
	if section.CodeBlock != nil {
		styles.CodeBlock = *section.CodeBlock
	}
	if section.Bold != nil {
		styles.Bold = *section.Bold
	}
	if section.Italic != nil {
		styles.Italic = *section.Italic
	}
	if section.Link != nil {
		styles.Link = *section.Link
	}
	if section.List != nil {
		styles.List = *section.List
	}
	if section.Card != nil {
		styles.Card = *section.Card
	}
}

// WriteDefault creates a starter config file at path with the bundled styles
// and a disabled API template.
func WriteDefault(path string) error {
	document := map[string]any{
		"styling": DefaultStyles(),
		"api": map[string]any{
			"enabled": false,
			"url":     "https://your-api.com/posts",
			"method":  "POST",
			"headers": map[string]string{
				"Content-Type":  "application/json",
				"Authorization": "Bearer YOUR_API_KEY",
			},
		},
	}
	encoded, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return fmt.Errorf("weave config: encode defaults: %w", err)
	}
	if err := os.WriteFile(path, append(encoded, '\n'), 0o644); err != nil {
		return fmt.Errorf("weave config: write %s: %w", path, err)
	}
	return nil
}

func isYAMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

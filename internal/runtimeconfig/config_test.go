package runtimeconfig

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.ContentDir != "posts" || cfg.ArtifactsDir != "artifacts" {
		t.Fatalf("unexpected directories: %q, %q", cfg.ContentDir, cfg.ArtifactsDir)
	}
	if cfg.Pattern != "*.md" {
		t.Fatalf("unexpected pattern: %q", cfg.Pattern)
	}
	if cfg.API.Enabled {
		t.Fatalf("API posting should default to disabled")
	}
	if cfg.API.Timeout != 30*time.Second {
		t.Fatalf("unexpected API timeout: %v", cfg.API.Timeout)
	}
	if cfg.Styles.H1.Heading == "" || cfg.Styles.Card.Class == "" {
		t.Fatalf("bundled styles missing: %#v", cfg.Styles)
	}
	if cfg.Styles.H1.Prefix != "$" || !cfg.Styles.H1.Divider {
		t.Fatalf("h1 defaults mismatch: %#v", cfg.Styles.H1)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "missing content dir",
			mutate:  func(c *Config) { c.ContentDir = " " },
			wantErr: ErrContentDirRequired,
		},
		{
			name:    "missing artifacts dir",
			mutate:  func(c *Config) { c.ArtifactsDir = "" },
			wantErr: ErrArtifactsDirRequired,
		},
		{
			name:    "missing pattern",
			mutate:  func(c *Config) { c.Pattern = "" },
			wantErr: ErrPatternRequired,
		},
		{
			name:    "api enabled without url",
			mutate:  func(c *Config) { c.API.Enabled = true },
			wantErr: ErrAPIURLRequired,
		},
		{
			name: "api invalid url",
			mutate: func(c *Config) {
				c.API.Enabled = true
				c.API.URL = "not a url"
			},
			wantErr: ErrAPIURLInvalid,
		},
		{
			name: "api invalid method",
			mutate: func(c *Config) {
				c.API.Enabled = true
				c.API.URL = "https://example.com/posts"
				c.API.Method = "DELETE"
			},
			wantErr: ErrAPIMethodInvalid,
		},
		{
			name:    "unknown logging provider",
			mutate:  func(c *Config) { c.Logging.Provider = "syslog" },
			wantErr: ErrLoggingProviderUnknown,
		},
		{
			name:    "invalid logging level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: ErrLoggingLevelInvalid,
		},
		{
			name:    "invalid logging format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: ErrLoggingFormatInvalid,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadJSONOverridesDefaults(t *testing.T) {
	path := writeTempConfig(t, "weave.config.json", `{
  "content_dir": "docs",
  "styling": {
    "h1": {"container": "x1", "heading": "y1", "divider": false}
  },
  "api": {
    "enabled": true,
    "url": "https://example.com/posts",
    "method": "PUT",
    "headers": {"Authorization": "Bearer token"},
    "timeout_seconds": 5
  }
}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.ContentDir != "docs" {
		t.Fatalf("content_dir not applied: %q", cfg.ContentDir)
	}
	if cfg.Styles.H1.Container != "x1" || cfg.Styles.H1.Divider {
		t.Fatalf("h1 style not replaced: %#v", cfg.Styles.H1)
	}
	// Elements absent from the file keep their defaults.
	if cfg.Styles.H2.Prefix != "▸" {
		t.Fatalf("h2 default lost: %#v", cfg.Styles.H2)
	}
	if !cfg.API.Enabled || cfg.API.Method != "PUT" {
		t.Fatalf("api section not applied: %#v", cfg.API)
	}
	if cfg.API.Timeout != 5*time.Second {
		t.Fatalf("timeout not applied: %v", cfg.API.Timeout)
	}
	if cfg.API.Headers["Authorization"] != "Bearer token" {
		t.Fatalf("headers not applied: %#v", cfg.API.Headers)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("loaded config should validate: %v", err)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeTempConfig(t, "weave.config.yaml", `
content_dir: docs
artifacts_dir: out
styling:
  paragraph:
    container: yp
    text: yt
logging:
  provider: console
  level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.ContentDir != "docs" || cfg.ArtifactsDir != "out" {
		t.Fatalf("directories not applied: %q, %q", cfg.ContentDir, cfg.ArtifactsDir)
	}
	if cfg.Styles.Paragraph.Container != "yp" || cfg.Styles.Paragraph.Text != "yt" {
		t.Fatalf("paragraph style not applied: %#v", cfg.Styles.Paragraph)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("logging level not applied: %q", cfg.Logging.Level)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeTempConfig(t, "weave.config.json", `{"stylng": {}}`)

	if _, err := Load(path); !errors.Is(err, ErrConfigValidation) {
		t.Fatalf("expected ErrConfigValidation, got %v", err)
	}
}

func TestLoadRejectsWrongTypes(t *testing.T) {
	path := writeTempConfig(t, "weave.config.json", `{"api": {"enabled": "yes"}}`)

	if _, err := Load(path); !errors.Is(err, ErrConfigValidation) {
		t.Fatalf("expected ErrConfigValidation, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestWriteDefaultRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weave.config.json")

	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load generated file: %v", err)
	}
	if cfg.API.Enabled {
		t.Fatalf("generated config should keep API disabled")
	}
	if cfg.Styles.H1.Heading != DefaultStyles().H1.Heading {
		t.Fatalf("generated styling mismatch: %#v", cfg.Styles.H1)
	}
}

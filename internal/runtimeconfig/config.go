// Package runtimeconfig owns the weave module configuration: defaults,
// file loading with schema validation, and consistency checks.
package runtimeconfig

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/goliatone/go-weave/pkg/interfaces"
)

var ErrContentDirRequired = errors.New("weave config: content directory is required")
var ErrArtifactsDirRequired = errors.New("weave config: artifacts directory is required")
var ErrPatternRequired = errors.New("weave config: source pattern is required")
var ErrAPIURLRequired = errors.New("weave config: api url is required when api posting is enabled")
var ErrAPIURLInvalid = errors.New("weave config: api url is invalid")
var ErrAPIMethodInvalid = errors.New("weave config: api method must be POST or PUT")
var ErrAPITimeoutInvalid = errors.New("weave config: api timeout must be zero or positive")
var ErrLoggingProviderUnknown = errors.New("weave config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("weave config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("weave config: logging format is invalid")

// Config aggregates the pipeline settings. Fields use simple types so host
// applications can construct one directly instead of loading a file.
type Config struct {
	ContentDir   string                 `json:"content_dir" yaml:"content_dir"`
	ArtifactsDir string                 `json:"artifacts_dir" yaml:"artifacts_dir"`
	Pattern      string                 `json:"pattern" yaml:"pattern"`
	Recursive    bool                   `json:"recursive" yaml:"recursive"`
	Styles       interfaces.StyleConfig `json:"styling" yaml:"styling"`
	API          APIConfig              `json:"api" yaml:"api"`
	Logging      LoggingConfig          `json:"logging" yaml:"logging"`
}

// APIConfig captures the optional outbound posting endpoint.
type APIConfig struct {
	Enabled bool              `json:"enabled" yaml:"enabled"`
	URL     string            `json:"url" yaml:"url"`
	Method  string            `json:"method" yaml:"method"`
	Headers map[string]string `json:"headers" yaml:"headers"`
	Timeout time.Duration     `json:"timeout" yaml:"timeout"`
}

// LoggingConfig selects the logger provider and its verbosity.
type LoggingConfig struct {
	Provider  string `json:"provider" yaml:"provider"`
	Level     string `json:"level" yaml:"level"`
	Format    string `json:"format" yaml:"format"`
	AddSource bool   `json:"add_source" yaml:"add_source"`
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.ContentDir) == "" {
		return ErrContentDirRequired
	}
	if strings.TrimSpace(cfg.ArtifactsDir) == "" {
		return ErrArtifactsDirRequired
	}
	if strings.TrimSpace(cfg.Pattern) == "" {
		return ErrPatternRequired
	}
	if cfg.API.Enabled {
		endpoint := strings.TrimSpace(cfg.API.URL)
		if endpoint == "" {
			return ErrAPIURLRequired
		}
		if parsed, err := url.Parse(endpoint); err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("%w: %s", ErrAPIURLInvalid, endpoint)
		}
		if method := normalizeMethod(cfg.API.Method); method != "" && method != "POST" && method != "PUT" {
			return fmt.Errorf("%w: %s", ErrAPIMethodInvalid, cfg.API.Method)
		}
		if cfg.API.Timeout < 0 {
			return ErrAPITimeoutInvalid
		}
	}
	if provider := normalizeProvider(cfg.Logging.Provider); provider != "" && !isSupportedProvider(provider) {
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
	}
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
		return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
	}
	return nil
}

func normalizeMethod(method string) string {
	return strings.ToUpper(strings.TrimSpace(method))
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}

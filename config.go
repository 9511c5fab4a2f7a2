package weave

import "github.com/goliatone/go-weave/internal/runtimeconfig"

var (
	ErrContentDirRequired     = runtimeconfig.ErrContentDirRequired
	ErrArtifactsDirRequired   = runtimeconfig.ErrArtifactsDirRequired
	ErrPatternRequired        = runtimeconfig.ErrPatternRequired
	ErrAPIURLRequired         = runtimeconfig.ErrAPIURLRequired
	ErrAPIURLInvalid          = runtimeconfig.ErrAPIURLInvalid
	ErrAPIMethodInvalid       = runtimeconfig.ErrAPIMethodInvalid
	ErrAPITimeoutInvalid      = runtimeconfig.ErrAPITimeoutInvalid
	ErrLoggingProviderUnknown = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid    = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid   = runtimeconfig.ErrLoggingFormatInvalid
	ErrConfigValidation       = runtimeconfig.ErrConfigValidation
)

type (
	Config        = runtimeconfig.Config
	APIConfig     = runtimeconfig.APIConfig
	LoggingConfig = runtimeconfig.LoggingConfig
)

// DefaultConfig returns the stock pipeline settings with the bundled styling.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// LoadConfig reads a JSON or YAML config file and merges it over the
// defaults.
func LoadConfig(path string) (Config, error) {
	return runtimeconfig.Load(path)
}

// WriteDefaultConfig creates a starter config file at path.
func WriteDefaultConfig(path string) error {
	return runtimeconfig.WriteDefault(path)
}

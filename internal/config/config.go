// Package config provides configuration loading and management.
package config

import (
	"github.com/dev-zetos/create-vite-react-template/internal/pkgmanager"
)

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the configuration file.
// Loaded from ~/.create-vite-react-template/config.yaml.
type Config struct {
	// PackageManager is preselected in the prompt and used without one.
	// Env: CVRT_PACKAGE_MANAGER, Default: pnpm
	PackageManager string `mapstructure:"packageManager" yaml:"packageManager,omitempty"`

	// InstallDeps is the default answer for installing dependencies.
	// Env: CVRT_INSTALL_DEPS, Default: true
	InstallDeps *bool `mapstructure:"installDeps" yaml:"installDeps,omitempty"`

	// TemplatesDir is an on-disk template repository root. Empty means the
	// templates shipped with the binary.
	// Env: CVRT_TEMPLATES_DIR
	TemplatesDir string `mapstructure:"templatesDir" yaml:"templatesDir,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log,omitempty"`
}

// Default values.
const (
	DefaultPackageManager = string(pkgmanager.Default)
	DefaultInstallDeps    = true
	DefaultTimestamps     = true
)

// DefaultConfig returns a Config with all default values populated.
// Used by `config init` to generate the initial config file.
func DefaultConfig() *Config {
	install := DefaultInstallDeps
	timestamps := DefaultTimestamps
	return &Config{
		PackageManager: DefaultPackageManager,
		InstallDeps:    &install,
		Log: LogConfig{
			Timestamps: &timestamps,
		},
	}
}

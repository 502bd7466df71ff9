package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dev-zetos/create-vite-react-template/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue records one resolved setting.
type ResolvedValue struct {
	Key    string
	Value  any
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]any
}

// Settings are the effective values after resolution.
type Settings struct {
	PackageManager string
	InstallDeps    bool
	TemplatesDir   string
	Timestamps     bool
	ConfigPath     string

	// Values lists every resolved setting with its source.
	Values []ResolvedValue
}

// FlagValues holds the command-line values. Nil pointers and empty strings
// mean the flag was not given.
type FlagValues struct {
	PackageManager string
	InstallDeps    *bool
	TemplatesDir   string
	Timestamps     *bool
}

// candidate is one source's value for a key; set reports presence.
type candidate struct {
	source ConfigSource
	value  any
	set    bool
}

// resolve picks the first present candidate. Candidates are ordered by
// precedence; the last one is the default and is always present.
func resolve(key string, candidates ...candidate) ResolvedValue {
	rv := ResolvedValue{Key: key, Shadowed: make(map[ConfigSource]any)}
	found := false
	for _, c := range candidates {
		if !c.set {
			continue
		}
		if !found {
			rv.Value = c.value
			rv.Source = c.source
			found = true
			continue
		}
		if c.source != SourceDefault {
			rv.Shadowed[c.source] = c.value
		}
	}
	return rv
}

func stringCandidate(source ConfigSource, v string) candidate {
	return candidate{source: source, value: v, set: v != ""}
}

func boolPtrCandidate(source ConfigSource, v *bool) candidate {
	if v == nil {
		return candidate{source: source}
	}
	return candidate{source: source, value: *v, set: true}
}

// envBool reads a boolean environment variable. Unset yields nil.
func envBool(name string) (*bool, error) {
	raw, ok := os.LookupEnv(name)
	if !ok || raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, &ValidationError{Field: name, Message: fmt.Sprintf("invalid boolean %q", raw)}
	}
	return &b, nil
}

// Resolve applies flag > env > config > default to every setting.
// cfg may be nil when no config file was loaded.
func Resolve(flags FlagValues, cfg *Config) (*Settings, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	envPM := os.Getenv(EnvPackageManager)
	if err := ValidatePackageManager(envPM); err != nil {
		return nil, fmt.Errorf("%s: %w", EnvPackageManager, err)
	}
	if err := ValidatePackageManager(flags.PackageManager); err != nil {
		return nil, err
	}
	envInstall, err := envBool(EnvInstallDeps)
	if err != nil {
		return nil, err
	}
	envTimestamps, err := envBool(EnvTimestamps)
	if err != nil {
		return nil, err
	}

	pm := resolve("packageManager",
		stringCandidate(SourceFlag, flags.PackageManager),
		stringCandidate(SourceEnv, envPM),
		stringCandidate(SourceConfig, cfg.PackageManager),
		stringCandidate(SourceDefault, DefaultPackageManager),
	)
	install := resolve("installDeps",
		boolPtrCandidate(SourceFlag, flags.InstallDeps),
		boolPtrCandidate(SourceEnv, envInstall),
		boolPtrCandidate(SourceConfig, cfg.InstallDeps),
		candidate{source: SourceDefault, value: DefaultInstallDeps, set: true},
	)
	templatesDir := resolve("templatesDir",
		stringCandidate(SourceFlag, flags.TemplatesDir),
		stringCandidate(SourceEnv, os.Getenv(EnvTemplatesDir)),
		stringCandidate(SourceConfig, cfg.TemplatesDir),
		candidate{source: SourceDefault, value: "", set: true},
	)
	timestamps := resolve("log.timestamps",
		boolPtrCandidate(SourceFlag, flags.Timestamps),
		boolPtrCandidate(SourceEnv, envTimestamps),
		boolPtrCandidate(SourceConfig, cfg.Log.Timestamps),
		candidate{source: SourceDefault, value: DefaultTimestamps, set: true},
	)

	return &Settings{
		PackageManager: pm.Value.(string),
		InstallDeps:    install.Value.(bool),
		TemplatesDir:   templatesDir.Value.(string),
		Timestamps:     timestamps.Value.(bool),
		Values:         []ResolvedValue{pm, install, templatesDir, timestamps},
	}, nil
}

// ResolveConfigPathResult contains the resolved config path and its source.
type ResolveConfigPathResult struct {
	// ConfigPath is the resolved config file path.
	ConfigPath string
	// Source indicates where the config path came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) CVRT_CONFIG env, (3) ~/.create-vite-react-template/config.yaml
func ResolveConfigPath(flagValue string) (ResolveConfigPathResult, error) {
	result := ResolveConfigPathResult{
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := os.Getenv(EnvConfig)

	paths, err := DefaultPaths()
	if err != nil {
		return result, err
	}
	defaultPath := paths.ConfigFile

	switch {
	case flagValue != "":
		result.ConfigPath = flagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		result.Shadowed[SourceDefault] = defaultPath
	case envValue != "":
		result.ConfigPath = envValue
		result.Source = SourceEnv
		result.Shadowed[SourceDefault] = defaultPath
	default:
		result.ConfigPath = defaultPath
		result.Source = SourceDefault
	}

	return result, nil
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}

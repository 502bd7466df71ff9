package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	oerrors "github.com/dev-zetos/create-vite-react-template/internal/errors"
)

const configHeader = `# create-vite-react-template configuration
# Values here are overridden by CVRT_* environment variables and by flags.
`

// MarshalYAML renders cfg as a commented YAML document.
func MarshalYAML(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(configHeader)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteDefault writes the default configuration to path. An existing file
// is only replaced when force is set. The directory is created with 0700
// and the file with 0600 permissions.
func WriteDefault(path string, force bool) error {
	expanded, err := ExpandPath(path)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	exists, err := ConfigFileExists(expanded)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}
	if exists && !force {
		return oerrors.NewValidationError(
			"config file already exists",
			expanded,
			"Use --force to overwrite it.",
		)
	}

	data, err := MarshalYAML(DefaultConfig())
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(expanded), 0o700); err != nil {
		return oerrors.NewMaterializeError("creating config directory", filepath.Dir(expanded), err)
	}
	if err := os.WriteFile(expanded, data, 0o600); err != nil {
		return oerrors.NewMaterializeError("writing config file", expanded, err)
	}
	return nil
}

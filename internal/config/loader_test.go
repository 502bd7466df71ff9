package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/dev-zetos/create-vite-react-template/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_Load(t *testing.T) {
	path := writeConfig(t, `packageManager: yarn
installDeps: false
templatesDir: /srv/templates
log:
  timestamps: false
`)

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "yarn", cfg.PackageManager)
	require.NotNil(t, cfg.InstallDeps)
	assert.False(t, *cfg.InstallDeps)
	assert.Equal(t, "/srv/templates", cfg.TemplatesDir)
	require.NotNil(t, cfg.Log.Timestamps)
	assert.False(t, *cfg.Log.Timestamps)
}

func TestLoader_LoadMissingFile(t *testing.T) {
	cfg, err := NewLoader().Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Empty(t, cfg.PackageManager)
	assert.Nil(t, cfg.InstallDeps)
}

func TestLoader_LoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed yaml", "packageManager: [unterminated\n"},
		{"unknown package manager", "packageManager: bun\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoader().Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoader_UnknownPackageManagerIsValidation(t *testing.T) {
	_, err := NewLoader().Load(writeConfig(t, "packageManager: bun\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
}

func TestConfigFileExists(t *testing.T) {
	path := writeConfig(t, "packageManager: npm\n")

	exists, err := ConfigFileExists(path)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = ConfigFileExists(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	require.NoError(t, WriteDefault(path, false))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	dirInfo, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), dirInfo.Mode().Perm())

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultPackageManager, cfg.PackageManager)
	require.NotNil(t, cfg.InstallDeps)
	assert.True(t, *cfg.InstallDeps)

	err = WriteDefault(path, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))

	assert.NoError(t, WriteDefault(path, true))
}

func TestMarshalYAML(t *testing.T) {
	data, err := MarshalYAML(DefaultConfig())
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, "# create-vite-react-template configuration")
	assert.Contains(t, s, "packageManager: pnpm")
	assert.Contains(t, s, "installDeps: true")
	assert.Contains(t, s, "timestamps: true")
	assert.NotContains(t, s, "templatesDir")
}

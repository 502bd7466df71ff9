package config

import (
	"os"
	"path/filepath"
)

// appDirName is the directory below the user's home holding the config file.
const appDirName = ".create-vite-react-template"

// Paths contains standard filesystem paths for the tool.
type Paths struct {
	// ConfigFile is the path to the config file (~/.create-vite-react-template/config.yaml).
	ConfigFile string

	// HomeDir is the tool's home directory (~/.create-vite-react-template).
	HomeDir string
}

// DefaultPaths returns the default paths.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	appHome := filepath.Join(homeDir, appDirName)

	return &Paths{
		ConfigFile: filepath.Join(appHome, "config.yaml"),
		HomeDir:    appHome,
	}, nil
}

// GetConfigFile returns the config file path.
// If CVRT_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv(EnvConfig); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// ~username is not supported
	return path, nil
}

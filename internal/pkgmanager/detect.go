package pkgmanager

import (
	"bytes"
	"context"
	"os/exec"
	"regexp"
	"strings"
)

// versionRegex matches version output like "10.2.0" or "v1.22.19".
var versionRegex = regexp.MustCompile(`v?\d+\.\d+\.\d+(?:-[a-zA-Z0-9.]+)?`)

// BinaryInfo describes a package manager binary found on PATH.
type BinaryInfo struct {
	// Manager is the package manager looked up.
	Manager Manager `json:"manager"`

	// Found indicates the binary is on PATH and answered --version.
	Found bool `json:"found"`

	// Path is the resolved binary path.
	Path string `json:"path,omitempty"`

	// Version is the reported version.
	Version string `json:"version,omitempty"`

	// Message explains why the binary is unusable.
	Message string `json:"message,omitempty"`
}

// Detect finds the manager's binary and asks it for its version.
func Detect(ctx context.Context, m Manager) BinaryInfo {
	bin := string(m)
	path, err := exec.LookPath(bin)
	if err != nil {
		return BinaryInfo{Manager: m, Message: bin + " not found in PATH"}
	}

	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, path, "--version")
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return BinaryInfo{Manager: m, Path: path, Message: bin + " --version failed: " + err.Error()}
	}

	return BinaryInfo{
		Manager: m,
		Found:   true,
		Path:    path,
		Version: extractVersion(out.String()),
	}
}

// extractVersion returns the first version number in output with a "v"
// prefix, or the trimmed first line when none is recognised.
func extractVersion(output string) string {
	if match := versionRegex.FindString(output); match != "" {
		if !strings.HasPrefix(match, "v") {
			match = "v" + match
		}
		return match
	}
	line, _, _ := strings.Cut(strings.TrimSpace(output), "\n")
	return line
}

// String returns a one-line description.
func (b BinaryInfo) String() string {
	if !b.Found {
		return string(b.Manager) + ": " + b.Message
	}
	return string(b.Manager) + " " + b.Version + " (" + b.Path + ")"
}

// Package pkgmanager knows how to install dependencies and start the dev
// server with each supported JavaScript package manager.
package pkgmanager

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Manager identifies a package manager.
type Manager string

// Supported package managers.
const (
	PNPM Manager = "pnpm"
	NPM  Manager = "npm"
	Yarn Manager = "yarn"
)

// Default is the manager preselected in the prompt.
const Default = PNPM

// All returns the supported managers in prompt order.
func All() []Manager {
	return []Manager{PNPM, NPM, Yarn}
}

// Parse maps a name to a manager. Unknown names fall back to npm.
func Parse(name string) Manager {
	switch Manager(strings.ToLower(strings.TrimSpace(name))) {
	case PNPM:
		return PNPM
	case Yarn:
		return Yarn
	default:
		return NPM
	}
}

// IsKnown reports whether name names a supported manager.
func IsKnown(name string) bool {
	switch Manager(name) {
	case PNPM, NPM, Yarn:
		return true
	}
	return false
}

// String implements fmt.Stringer.
func (m Manager) String() string {
	return string(m)
}

// InstallArgs returns the argv that installs dependencies.
func (m Manager) InstallArgs() []string {
	switch m {
	case PNPM:
		return []string{"pnpm", "install"}
	case Yarn:
		return []string{"yarn"}
	default:
		return []string{"npm", "install"}
	}
}

// RunArgs returns the argv that starts the dev server.
func (m Manager) RunArgs() []string {
	switch m {
	case PNPM:
		return []string{"pnpm", "dev"}
	case Yarn:
		return []string{"yarn", "dev"}
	default:
		return []string{"npm", "run", "dev"}
	}
}

// InstallCommand returns the install command line for display.
func (m Manager) InstallCommand() string {
	return strings.Join(m.InstallArgs(), " ")
}

// RunCommand returns the dev server command line for display.
func (m Manager) RunCommand() string {
	return strings.Join(m.RunArgs(), " ")
}

// Runner executes package manager commands.
type Runner interface {
	// Available reports whether the manager binary can be executed.
	Available(ctx context.Context, m Manager) bool

	// Install runs the install command inside dir.
	Install(ctx context.Context, m Manager, dir string) error
}

// ExecRunner runs package managers as child processes. The child inherits
// the terminal unless Stdout or Stderr are set.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner returns a runner bound to the process stdio.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Available checks the binary is on PATH and answers `<pm> --version`.
func (r *ExecRunner) Available(ctx context.Context, m Manager) bool {
	return Detect(ctx, m).Found
}

// Install runs the manager's install command with dir as working directory.
func (r *ExecRunner) Install(ctx context.Context, m Manager, dir string) error {
	args := m.InstallArgs()
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = r.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = r.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", m.InstallCommand(), err)
	}
	return nil
}

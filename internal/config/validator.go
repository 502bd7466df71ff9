package config

import (
	"fmt"
	"strings"

	oerrors "github.com/dev-zetos/create-vite-react-template/internal/errors"
	"github.com/dev-zetos/create-vite-react-template/internal/pkgmanager"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap lets callers match ErrValidation.
func (e *ValidationError) Unwrap() error {
	return oerrors.ErrValidation
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Unwrap lets callers match ErrValidation.
func (e ValidationErrors) Unwrap() error {
	return oerrors.ErrValidation
}

// Validate checks the values of a loaded configuration.
func Validate(cfg *Config) error {
	var errs ValidationErrors

	if msg := packageManagerProblem(cfg.PackageManager); msg != "" {
		errs = append(errs, ValidationError{Field: "packageManager", Message: msg})
	}

	if cfg.TemplatesDir != "" && strings.TrimSpace(cfg.TemplatesDir) == "" {
		errs = append(errs, ValidationError{
			Field:   "templatesDir",
			Message: "must not be empty or whitespace only",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidatePackageManager checks a package manager name. Empty is allowed and
// means the default.
func ValidatePackageManager(name string) error {
	if msg := packageManagerProblem(name); msg != "" {
		return &ValidationError{Field: "packageManager", Message: msg}
	}
	return nil
}

func packageManagerProblem(name string) string {
	if name == "" || pkgmanager.IsKnown(name) {
		return ""
	}

	known := make([]string, 0, len(pkgmanager.All()))
	for _, m := range pkgmanager.All() {
		known = append(known, string(m))
	}
	return fmt.Sprintf("unknown package manager %q (valid: %s)", name, strings.Join(known, ", "))
}

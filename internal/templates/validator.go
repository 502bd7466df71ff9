package templates

import (
	"errors"
	"regexp"
)

var projectNameRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Project name validation messages.
var (
	ErrProjectNameEmpty   = errors.New("project name is required")
	ErrProjectNameInvalid = errors.New("project name may only contain letters, digits, hyphens and underscores")
)

// ValidateProjectName checks a project name against [A-Za-z0-9_-]+.
// The returned errors carry fixed messages suitable for inline display.
func ValidateProjectName(name string) error {
	if name == "" {
		return ErrProjectNameEmpty
	}
	if !projectNameRegex.MatchString(name) {
		return ErrProjectNameInvalid
	}
	return nil
}

package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates invalid user input such as a bad project name.
	ErrValidation = errors.New("validation error")

	// ErrPermission indicates insufficient filesystem permissions.
	ErrPermission = errors.New("permission denied")

	// ErrNotFound indicates a template, module, or file was not found.
	ErrNotFound = errors.New("not found")

	// ErrCancelled indicates the user cancelled a prompt or refused an overwrite.
	ErrCancelled = errors.New("operation cancelled")

	// ErrMaterialize indicates a write to the target directory failed.
	ErrMaterialize = errors.New("materialization error")

	// ErrManifest indicates the package manifest could not be read, parsed, or merged.
	ErrManifest = errors.New("manifest error")

	// ErrInstall indicates the package manager install step failed.
	ErrInstall = errors.New("install error")
)

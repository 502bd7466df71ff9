// Package templates provides the template repository (base tree plus optional
// feature modules), the module catalog and the placeholder renderer.
package templates

import (
	"io/fs"
	"strings"
)

// Layout of a template repository root.
const (
	// BaseDir holds the tree present in every generated project.
	BaseDir = "base"

	// ModulesDir holds one subdirectory per optional module.
	ModulesDir = "modules"

	// SourceDir is the subtree of a module copied into the project.
	SourceDir = "src"

	// TemplateExt marks a file whose content is rendered. The marker is
	// dropped from the materialized path.
	TemplateExt = ".hbs"
)

// TemplateFile is a file in the base tree or a module tree. Content is read
// on demand.
type TemplateFile struct {
	// SourcePath is the slash-separated path within the repository filesystem.
	SourcePath string

	// RelPath is the path relative to the tree root (base/ or modules/<id>/src/).
	RelPath string

	// Templated reports whether the source carries the template marker.
	Templated bool

	fsys fs.FS
}

// TargetPath returns RelPath with the template marker removed.
func (f TemplateFile) TargetPath() string {
	if f.Templated {
		return strings.TrimSuffix(f.RelPath, TemplateExt)
	}
	return f.RelPath
}

// Read returns the raw source content.
func (f TemplateFile) Read() ([]byte, error) {
	return fs.ReadFile(f.fsys, f.SourcePath)
}

// IsTemplated reports whether a path carries the template marker.
func IsTemplated(path string) bool {
	return strings.HasSuffix(path, TemplateExt) && len(path) > len(TemplateExt)
}

// Package compose turns a ProjectSpec and a template repository
// into a materialized project: a pure planner followed by an engine that
// applies the plan, merges manifests and optionally installs dependencies.
package compose

import (
	oerrors "github.com/dev-zetos/create-vite-react-template/internal/errors"
	"github.com/dev-zetos/create-vite-react-template/internal/pkgmanager"
	"github.com/dev-zetos/create-vite-react-template/internal/templates"
)

// ProjectSpec is the user's selection for one run. It is not modified once
// built.
type ProjectSpec struct {
	// Name is the project name and the target directory name.
	Name string `json:"name"`

	// Modules lists module ids in selection order without duplicates.
	Modules []string `json:"modules"`

	// PackageManager is used for install and for the run hint.
	PackageManager pkgmanager.Manager `json:"packageManager"`

	// InstallDeps requests the install step.
	InstallDeps bool `json:"installDeps"`
}

// NewProjectSpec builds a spec, dropping repeated module ids while keeping
// the position of their first occurrence.
func NewProjectSpec(name string, modules []string, pm pkgmanager.Manager, install bool) ProjectSpec {
	seen := make(map[string]bool, len(modules))
	ordered := make([]string, 0, len(modules))
	for _, id := range modules {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ordered = append(ordered, id)
	}

	return ProjectSpec{
		Name:           name,
		Modules:        ordered,
		PackageManager: pm,
		InstallDeps:    install,
	}
}

// Validate checks the project name.
func (s ProjectSpec) Validate() error {
	if err := templates.ValidateProjectName(s.Name); err != nil {
		return oerrors.NewValidationError(err.Error(), s.Name,
			"Use only letters, digits, hyphens and underscores, e.g. my-app.")
	}
	return nil
}

// Variables returns the template variables bound for this project.
func (s ProjectSpec) Variables() templates.Variables {
	return templates.Variables{templates.VarProjectName: s.Name}
}

package compose

import (
	"errors"
	"fmt"
	"path"

	oerrors "github.com/dev-zetos/create-vite-react-template/internal/errors"
	"github.com/dev-zetos/create-vite-react-template/internal/manifest"
	"github.com/dev-zetos/create-vite-react-template/internal/materialize"
	"github.com/dev-zetos/create-vite-react-template/internal/templates"
)

// Step names.
const (
	StepBase     = "base"
	StepManifest = "manifest"
)

// ModuleStepName returns the step name for a module.
func ModuleStepName(id string) string {
	return "module:" + id
}

// Plan is the ordered set of writes for one project. Steps run strictly in
// order: the base tree, then each integrated module in selection order, then
// the merged manifest when at least one module contributed a fragment.
type Plan struct {
	Project string             `json:"project"`
	Steps   []materialize.Step `json:"steps"`

	// Integrated lists the modules with a step, in selection order.
	Integrated []string `json:"integrated"`

	// Missing lists selected modules whose tree is absent from the repository.
	Missing []string `json:"missing,omitempty"`

	// BaseManifest is the rendered base package.json, nil when the base has none.
	BaseManifest *manifest.Manifest `json:"-"`

	// Manifest is BaseManifest folded with every fragment in selection order.
	Manifest *manifest.Manifest `json:"-"`

	// BaseManifestBytes and ManifestBytes hold the serialized forms written to
	// the target. They are equal when no module contributed a fragment.
	BaseManifestBytes []byte `json:"-"`
	ManifestBytes     []byte `json:"-"`
}

// Files returns every target path of the plan, in write order with later
// duplicates removed.
func (p *Plan) Files() []string {
	seen := map[string]bool{}
	var files []string
	for _, step := range p.Steps {
		for _, w := range step.Writes {
			if !seen[w.Path] {
				seen[w.Path] = true
				files = append(files, w.Path)
			}
		}
	}
	return files
}

// Step returns the step with the given name.
func (p *Plan) Step(name string) (materialize.Step, bool) {
	for _, s := range p.Steps {
		if s.Name == name {
			return s, true
		}
	}
	return materialize.Step{}, false
}

// BuildPlan renders the base tree and every selected module against repo.
// It performs no writes. Modules missing from repo are recorded in
// Plan.Missing; any other repository or manifest failure is returned.
func BuildPlan(spec ProjectSpec, repo *templates.Repository) (*Plan, error) {
	if err := repo.Validate(); err != nil {
		return nil, err
	}

	renderer := templates.NewRenderer(spec.Variables())
	plan := &Plan{Project: spec.Name}

	baseFiles, err := repo.ListBaseFiles()
	if err != nil {
		return nil, err
	}
	baseWrites, err := renderFiles(renderer, baseFiles, "")
	if err != nil {
		return nil, err
	}
	plan.Steps = append(plan.Steps, materialize.Step{Name: StepBase, Writes: baseWrites})

	for _, w := range baseWrites {
		if w.Path != manifest.FileName {
			continue
		}
		base, err := manifest.Parse(w.Content)
		if err != nil {
			return nil, oerrors.NewManifestError("parsing base manifest", w.Source, err)
		}
		plan.BaseManifest = base
		plan.BaseManifestBytes = w.Content
	}

	var fragments []*manifest.Manifest
	for _, id := range spec.Modules {
		files, err := repo.ListModuleFiles(id)
		if errors.Is(err, oerrors.ErrNotFound) {
			plan.Missing = append(plan.Missing, id)
			continue
		}
		if err != nil {
			return nil, err
		}

		writes, err := renderFiles(renderer, files, templates.SourceDir)
		if err != nil {
			return nil, err
		}

		fragment, err := repo.ReadManifestFragment(id)
		if err != nil {
			return nil, err
		}
		if fragment != nil {
			fragments = append(fragments, fragment)
		}

		plan.Steps = append(plan.Steps, materialize.Step{
			Name:   ModuleStepName(id),
			Module: id,
			Writes: writes,
		})
		plan.Integrated = append(plan.Integrated, id)
	}

	plan.Manifest = plan.BaseManifest
	plan.ManifestBytes = plan.BaseManifestBytes
	if len(fragments) == 0 {
		return plan, nil
	}

	if plan.BaseManifest == nil {
		return nil, oerrors.NewManifestError(
			"modules contribute dependencies but the base template has no manifest",
			path.Join(templates.BaseDir, manifest.FileName),
			errors.New("base manifest not found"))
	}

	plan.Manifest = manifest.Fold(plan.BaseManifest, fragments...)
	data, err := plan.Manifest.Marshal()
	if err != nil {
		return nil, oerrors.NewManifestError("serializing merged manifest", manifest.FileName, err)
	}
	plan.ManifestBytes = data
	plan.Steps = append(plan.Steps, materialize.Step{
		Name: StepManifest,
		Writes: []materialize.FileWrite{{
			Path:    manifest.FileName,
			Source:  StepManifest,
			Size:    len(data),
			Content: data,
		}},
	})

	return plan, nil
}

// renderFiles renders files into writes under prefix. When a tree holds both
// a plain file and a templated file for the same target, the templated one
// wins.
func renderFiles(r *templates.Renderer, files []templates.TemplateFile, prefix string) ([]materialize.FileWrite, error) {
	writes := make([]materialize.FileWrite, 0, len(files))
	index := make(map[string]int, len(files))

	for _, f := range files {
		target := f.TargetPath()
		if prefix != "" {
			target = path.Join(prefix, target)
		}

		if i, ok := index[target]; ok && writes[i].Templated && !f.Templated {
			continue
		}

		content, err := r.Render(f)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", f.SourcePath, err)
		}

		w := materialize.FileWrite{
			Path:      target,
			Source:    f.SourcePath,
			Templated: f.Templated,
			Size:      len(content),
			Content:   content,
		}
		if i, ok := index[target]; ok {
			writes[i] = w
			continue
		}
		index[target] = len(writes)
		writes = append(writes, w)
	}

	return writes, nil
}

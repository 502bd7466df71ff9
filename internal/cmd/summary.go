package cmd

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dev-zetos/create-vite-react-template/internal/compose"
	"github.com/dev-zetos/create-vite-react-template/internal/manifest"
	"github.com/dev-zetos/create-vite-react-template/internal/materialize"
	"github.com/dev-zetos/create-vite-react-template/internal/output"
)

// treeDepth is how many path levels the summary tree shows before
// collapsing a directory into a file count.
const treeDepth = 2

// printSummary writes the post-run report: created files, module status,
// manifest changes in verbose mode and the next steps.
func printSummary(w io.Writer, spec compose.ProjectSpec, res *compose.Result, verbose bool) {
	fmt.Fprintln(w, output.FormatCheckmark(fmt.Sprintf("Project %s created in %s",
		output.StyleNoun.Render(spec.Name), output.StyleNoun.Render(res.Dir))))
	if res.TargetState == materialize.TargetEmptied {
		fmt.Fprintln(w, output.StyleHint.Render("  Existing contents of the directory were removed."))
	}
	fmt.Fprintln(w)

	if tree := output.RenderFileTree(spec.Name, output.CollapseTree(res.Files, treeDepth)); tree != "" {
		fmt.Fprint(w, tree)
		fmt.Fprintln(w)
	}

	if len(res.Integrated)+len(res.Skipped) > 0 {
		fmt.Fprintln(w, output.StyleSummary.Render("Modules"))
		for _, id := range res.Integrated {
			fmt.Fprintln(w, "  "+output.FormatModuleLine(id, output.StatusIntegrated))
		}
		for _, id := range res.Skipped {
			fmt.Fprintln(w, "  "+output.FormatModuleLine(id, output.StatusSkipped))
		}
		fmt.Fprintln(w)
	}

	if !bytes.Equal(res.BaseManifest, res.FinalManifest) {
		printManifestChanges(w, res, verbose)
	}

	if res.InstallErr != nil {
		fmt.Fprintln(w, output.StyleHint.Render("Dependencies were not installed. Run manually:"))
		fmt.Fprintln(w, output.StyleHint.Render(fmt.Sprintf("  cd %s && %s", res.Dir, res.InstallCommand)))
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, output.StyleSummary.Render("Next steps"))
	fmt.Fprintln(w, "  "+output.StyleAction.Render("cd "+res.Dir))
	if !spec.InstallDeps || res.InstallErr != nil {
		fmt.Fprintln(w, "  "+output.StyleAction.Render(res.InstallCommand))
	}
	fmt.Fprintln(w, "  "+output.StyleAction.Render(res.RunCommand))
}

// printManifestChanges lists the dependencies modules added to package.json.
// Verbose mode shows the full structural diff instead.
func printManifestChanges(w io.Writer, res *compose.Result, verbose bool) {
	if verbose {
		diff, err := output.ManifestDiff(res.BaseManifest, res.FinalManifest, output.IsTTY())
		if err != nil {
			output.Debug("manifest diff failed", "err", err)
			return
		}
		if diff != "" {
			fmt.Fprintln(w, output.StyleSummary.Render("package.json changes"))
			fmt.Fprintln(w, output.IndentBlock(diff, "  "))
		}
		return
	}

	changes, err := dependencyChanges(res.BaseManifest, res.FinalManifest)
	if err != nil {
		output.Debug("reading manifest changes failed", "err", err)
		return
	}
	if len(changes) == 0 {
		return
	}
	fmt.Fprintln(w, output.StyleSummary.Render("Dependencies"))
	fmt.Fprint(w, output.NewChangeRenderer().Render(changes, "  "))
	fmt.Fprintln(w)
}

func dependencyChanges(before, after []byte) ([]output.DependencyChange, error) {
	base, err := manifest.Parse(before)
	if err != nil {
		return nil, err
	}
	merged, err := manifest.Parse(after)
	if err != nil {
		return nil, err
	}

	var out []output.DependencyChange
	for _, c := range manifest.Changes(base, merged) {
		kind := output.ChangeModified
		if c.Added() {
			kind = output.ChangeAdded
		}
		out = append(out, output.DependencyChange{Kind: kind, Name: c.Name, From: c.From, To: c.To, Dev: c.Dev})
	}
	return out, nil
}

// planDocument is the --dry-run output.
type planDocument struct {
	Project         string             `json:"project"`
	PackageManager  string             `json:"packageManager"`
	InstallDeps     bool               `json:"installDeps"`
	InstallCommand  string             `json:"installCommand"`
	RunCommand      string             `json:"runCommand"`
	Modules         []string           `json:"modules"`
	Missing         []string           `json:"missing,omitempty"`
	Steps           []materialize.Step `json:"steps"`
	Dependencies    map[string]string  `json:"dependencies,omitempty"`
	DevDependencies map[string]string  `json:"devDependencies,omitempty"`
}

func newPlanDocument(spec compose.ProjectSpec, plan *compose.Plan) planDocument {
	doc := planDocument{
		Project:        plan.Project,
		PackageManager: string(spec.PackageManager),
		InstallDeps:    spec.InstallDeps,
		InstallCommand: spec.PackageManager.InstallCommand(),
		RunCommand:     spec.PackageManager.RunCommand(),
		Modules:        plan.Integrated,
		Missing:        plan.Missing,
		Steps:          plan.Steps,
	}
	if doc.Modules == nil {
		doc.Modules = []string{}
	}
	if plan.Manifest != nil {
		doc.Dependencies = plan.Manifest.Dependencies
		doc.DevDependencies = plan.Manifest.DevDependencies
	}
	return doc
}

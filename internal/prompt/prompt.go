// Package prompt collects the project name, modules and install options interactively.
package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/dev-zetos/create-vite-react-template/internal/compose"
	oerrors "github.com/dev-zetos/create-vite-react-template/internal/errors"
	"github.com/dev-zetos/create-vite-react-template/internal/output"
	"github.com/dev-zetos/create-vite-react-template/internal/pkgmanager"
	"github.com/dev-zetos/create-vite-react-template/internal/templates"
)

// DefaultProjectName is suggested when no name was given.
const DefaultProjectName = "my-app"

// Options seeds the prompt. Fields already decided on the command line are
// not asked again.
type Options struct {
	// Name is the project name; empty means ask.
	Name string

	// Modules are the modules offered, in display order.
	Modules []templates.Module

	// Selected pre-selects module ids.
	Selected []string

	// PackageManager is the preselected manager.
	PackageManager pkgmanager.Manager

	// InstallDeps is the preselected answer for installation.
	InstallDeps bool

	// ModulesDecided, PackageManagerDecided and InstallDecided skip the
	// matching question and keep the seeded value.
	ModulesDecided        bool
	PackageManagerDecided bool
	InstallDecided        bool

	// Accessible renders plain prompts without the TUI.
	Accessible bool
}

// Run asks for the project name, modules, package manager and whether to
// install. Cancelling returns an error matching ErrCancelled.
func Run(ctx context.Context, opts Options) (compose.ProjectSpec, error) {
	name := opts.Name
	selected := append([]string(nil), opts.Selected...)
	pm := string(opts.PackageManager)
	if pm == "" {
		pm = string(pkgmanager.Default)
	}
	install := opts.InstallDeps

	var fields []huh.Field
	if name == "" {
		name = DefaultProjectName
		fields = append(fields, huh.NewInput().
			Title("Project name").
			Value(&name).
			Validate(templates.ValidateProjectName))
	}

	if len(opts.Modules) > 0 && !opts.ModulesDecided {
		options := make([]huh.Option[string], 0, len(opts.Modules))
		for _, m := range opts.Modules {
			options = append(options, huh.NewOption(moduleLabel(m), m.ID))
		}
		fields = append(fields, huh.NewMultiSelect[string]().
			Title("Select feature modules").
			Options(options...).
			Value(&selected))
	}

	if !opts.PackageManagerDecided {
		pmOptions := make([]huh.Option[string], 0, len(pkgmanager.All()))
		for _, m := range pkgmanager.All() {
			pmOptions = append(pmOptions, huh.NewOption(string(m), string(m)))
		}
		fields = append(fields, huh.NewSelect[string]().
			Title("Package manager").
			Options(pmOptions...).
			Value(&pm))
	}

	if !opts.InstallDecided {
		fields = append(fields, huh.NewConfirm().
			Title("Install dependencies now?").
			Affirmative("Yes").
			Negative("No").
			Value(&install))
	}

	if len(fields) > 0 {
		form := huh.NewForm(huh.NewGroup(fields...)).WithAccessible(opts.Accessible)
		if err := form.RunWithContext(ctx); err != nil {
			return compose.ProjectSpec{}, mapAbort(err)
		}
	}

	modules := selected
	if !opts.ModulesDecided {
		modules = orderByCatalog(selected, opts.Modules)
	}

	output.Debug("prompt answered", "name", name, "modules", modules, "pm", pm, "install", install)
	return compose.NewProjectSpec(name, modules, pkgmanager.Parse(pm), install), nil
}

// ConfirmOverwrite asks whether a non-empty directory may be emptied.
// The default answer is no.
func ConfirmOverwrite(dir string) (bool, error) {
	ok := false
	err := huh.NewConfirm().
		Title(fmt.Sprintf("Directory %s is not empty. Remove its contents and continue?", dir)).
		Description("Existing files will be deleted. Use --force to skip this question.").
		Affirmative("Remove").
		Negative("Cancel").
		Value(&ok).
		Run()
	if err != nil {
		return false, mapAbort(err)
	}
	return ok, nil
}

func moduleLabel(m templates.Module) string {
	if m.Hint == "" {
		return m.Label
	}
	return m.Label + " - " + m.Hint
}

// orderByCatalog returns selected ids in the order the modules were offered.
func orderByCatalog(selected []string, offered []templates.Module) []string {
	chosen := make(map[string]bool, len(selected))
	for _, id := range selected {
		chosen[id] = true
	}

	out := make([]string, 0, len(selected))
	for _, m := range offered {
		if chosen[m.ID] {
			out = append(out, m.ID)
			delete(chosen, m.ID)
		}
	}
	for _, id := range selected {
		if chosen[id] {
			out = append(out, id)
		}
	}
	return out
}

func mapAbort(err error) error {
	if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %w", oerrors.ErrCancelled, err)
	}
	return fmt.Errorf("prompt: %w", err)
}

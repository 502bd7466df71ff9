package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dev-zetos/create-vite-react-template/internal/config"
	"github.com/dev-zetos/create-vite-react-template/internal/output"
)

// createFlags holds the flags of the create (root) command.
type createFlags struct {
	name      string
	force     bool
	modules   []string
	pm        string
	install   bool
	noInstall bool
	yes       bool
	dryRun    bool
	output    string
	templates string
}

func (f *createFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.name, "name", "",
		"Project name, as an alternative to the positional argument")
	fl.BoolVar(&f.force, "force", false,
		"Remove the contents of a non-empty target directory without asking")
	fl.StringArrayVarP(&f.modules, "module", "m", nil,
		"Feature module to add (repeatable, applied in the given order)")
	fl.StringVar(&f.pm, "pm", "", "Package manager: pnpm, npm, yarn (env: CVRT_PACKAGE_MANAGER)")
	fl.BoolVar(&f.install, "install", false, "Install dependencies after creating the project")
	fl.BoolVar(&f.noInstall, "no-install", false, "Do not install dependencies")
	fl.BoolVarP(&f.yes, "yes", "y", false, "Do not prompt; use flags, config and defaults")
	fl.BoolVar(&f.dryRun, "dry-run", false, "Print the plan without writing anything")
	fl.StringVarP(&f.output, "output", "o", "yaml", "Dry-run output format: yaml, json")
	fl.StringVar(&f.templates, "templates", "",
		"Template repository root containing base/ and modules/ (env: CVRT_TEMPLATES_DIR)")

	cmd.MarkFlagsMutuallyExclusive("install", "no-install")
}

// applyTo copies the flags that take part in config resolution.
func (f *createFlags) applyTo(cmd *cobra.Command, fv *config.FlagValues) {
	fv.PackageManager = f.pm
	fv.TemplatesDir = f.templates

	switch {
	case cmd.Flags().Changed("install"):
		fv.InstallDeps = output.BoolPtr(f.install)
	case cmd.Flags().Changed("no-install"):
		fv.InstallDeps = output.BoolPtr(!f.noInstall)
	}
}

// modulesSet reports whether --module was given at least once.
func (f *createFlags) modulesSet(cmd *cobra.Command) bool {
	return cmd.Flags().Changed("module")
}

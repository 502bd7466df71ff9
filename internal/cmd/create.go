package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/dev-zetos/create-vite-react-template/internal/compose"
	oerrors "github.com/dev-zetos/create-vite-react-template/internal/errors"
	"github.com/dev-zetos/create-vite-react-template/internal/materialize"
	"github.com/dev-zetos/create-vite-react-template/internal/output"
	"github.com/dev-zetos/create-vite-react-template/internal/pkgmanager"
	"github.com/dev-zetos/create-vite-react-template/internal/prompt"
	"github.com/dev-zetos/create-vite-react-template/internal/templates"
)

// Collaborators replaced in tests.
var (
	targetFs         afero.Fs          = afero.NewOsFs()
	installRunner    pkgmanager.Runner = pkgmanager.NewExecRunner()
	isInteractive                      = output.IsInteractive
	runPrompt                          = prompt.Run
	confirmOverwrite                   = prompt.ConfirmOverwrite
)

func runCreate(cmd *cobra.Command, args []string, gc *GlobalConfig, f *createFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	format, ok := output.ParseFormat(f.output)
	if !ok {
		return exitWithError(oerrors.NewValidationError(
			fmt.Sprintf("invalid output format %q", f.output), "--output",
			"Valid formats: "+strings.Join(output.ValidFormats(), ", ")+"."))
	}

	repo, err := openRepository(gc.Settings.TemplatesDir)
	if err != nil {
		return exitWithError(err)
	}

	name := f.name
	if len(args) == 1 {
		if name != "" {
			return exitWithError(oerrors.NewValidationError(
				"project name given twice", args[0],
				"Pass the name either as an argument or with --name, not both."))
		}
		name = args[0]
	}
	if name != "" {
		if err := templates.ValidateProjectName(name); err != nil {
			return exitWithError(oerrors.NewValidationError(err.Error(), name,
				"Use only letters, digits, hyphens and underscores, e.g. my-app."))
		}
	}

	interactive := !f.yes && isInteractive()

	spec, err := collectSpec(ctx, cmd, repo, name, interactive, gc, f)
	if errors.Is(err, oerrors.ErrCancelled) {
		output.Info("operation cancelled")
		return nil
	}
	if err != nil {
		return exitWithError(err)
	}

	opts := []compose.Option{
		compose.WithForce(f.force),
		compose.WithRunner(installRunner),
	}
	if interactive {
		opts = append(opts, compose.WithConfirmer(materialize.ConfirmFunc(confirmOverwrite)))
	}
	if output.IsTTY() && !gc.Verbose {
		opts = append(opts, compose.WithProgress(spinnerProgress))
	}
	engine := compose.NewEngine(repo, targetFs, opts...)

	if f.dryRun {
		plan, err := engine.Plan(spec)
		if err != nil {
			return exitWithError(err)
		}
		if err := output.WriteDocument(newPlanDocument(spec, plan), format, cmd.OutOrStdout()); err != nil {
			return exitWithError(err)
		}
		return nil
	}

	if !interactive && !f.force {
		_, nonEmpty, err := materialize.InspectTarget(targetFs, spec.Name)
		if err != nil {
			return exitWithError(err)
		}
		if nonEmpty {
			return exitWithError(oerrors.NewValidationError(
				"target directory is not empty", spec.Name,
				"Choose another name, or pass --force to remove its contents."))
		}
	}

	res, err := engine.Run(ctx, spec)
	if errors.Is(err, oerrors.ErrCancelled) {
		output.Info("operation cancelled, nothing was changed", "dir", res.Dir)
		return nil
	}
	if err != nil {
		return exitWithError(err)
	}

	printSummary(cmd.OutOrStdout(), spec, res, gc.Verbose)
	return nil
}

// collectSpec builds the project spec from flags, settings and, when
// interactive, the prompt.
func collectSpec(ctx context.Context, cmd *cobra.Command, repo *templates.Repository, name string,
	interactive bool, gc *GlobalConfig, f *createFlags) (compose.ProjectSpec, error) {
	pm := pkgmanager.Parse(gc.Settings.PackageManager)
	install := gc.Settings.InstallDeps

	if !interactive {
		if name == "" {
			return compose.ProjectSpec{}, oerrors.NewValidationError(
				templates.ErrProjectNameEmpty.Error(), "",
				"Pass the project name as an argument when running without a terminal or with --yes.")
		}
		return compose.NewProjectSpec(name, f.modules, pm, install), nil
	}

	available, err := templates.AvailableModules(repo)
	if err != nil {
		return compose.ProjectSpec{}, err
	}

	return runPrompt(ctx, prompt.Options{
		Name:                  name,
		Modules:               available,
		Selected:              f.modules,
		PackageManager:        pm,
		InstallDeps:           install,
		ModulesDecided:        f.modulesSet(cmd),
		PackageManagerDecided: f.pm != "",
		InstallDecided:        cmd.Flags().Changed("install") || cmd.Flags().Changed("no-install"),
	})
}

// openRepository returns the embedded templates or an on-disk root.
func openRepository(dir string) (*templates.Repository, error) {
	var fsys fs.FS
	if dir == "" {
		fsys = templates.Embedded()
	} else {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			return nil, oerrors.NewNotFoundError("template directory not found", dir,
				"Pass --templates a directory containing base/ and modules/.")
		}
		fsys = os.DirFS(dir)
		output.Debug("using template directory", "dir", dir)
	}

	repo := templates.NewRepository(fsys)
	if err := repo.Validate(); err != nil {
		return nil, err
	}
	return repo, nil
}

func spinnerProgress(ctx context.Context, title string, action func() error) error {
	return output.RunWithSpinner(ctx, action, output.WithTitle(title))
}

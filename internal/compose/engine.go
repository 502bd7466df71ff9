package compose

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/afero"

	oerrors "github.com/dev-zetos/create-vite-react-template/internal/errors"
	"github.com/dev-zetos/create-vite-react-template/internal/materialize"
	"github.com/dev-zetos/create-vite-react-template/internal/output"
	"github.com/dev-zetos/create-vite-react-template/internal/pkgmanager"
	"github.com/dev-zetos/create-vite-react-template/internal/templates"
)

// State is a stage of a composition run.
type State string

// Composition states in the order a successful run passes through them.
// Aborted is terminal and reachable from any state before Done.
const (
	StateInitializing          State = "Initializing"
	StateBaseMaterialized      State = "BaseMaterialized"
	StateModulesIntegrated     State = "ModulesIntegrated"
	StateDependenciesInstalled State = "DependenciesInstalled"
	StateInstallSkipped        State = "InstallSkipped"
	StateDone                  State = "Done"
	StateAborted               State = "Aborted"
)

// ProgressFunc runs action while presenting title to the user.
type ProgressFunc func(ctx context.Context, title string, action func() error) error

func runDirect(_ context.Context, _ string, action func() error) error {
	return action()
}

// Result reports what a run did. It is returned even when the run aborts.
type Result struct {
	// State is the last state reached.
	State State

	// History lists every state entered, in order.
	History []State

	// Dir is the target directory.
	Dir string

	// TargetState tells how the target was prepared. TargetEmptied means
	// existing content was removed.
	TargetState materialize.TargetState

	// Integrated lists modules whose files were written, in selection order.
	Integrated []string

	// Skipped lists selected modules that were missing from the repository.
	Skipped []string

	// Files lists every written path relative to Dir.
	Files []string

	// BaseManifest and FinalManifest are the package.json bytes before and
	// after merging module fragments.
	BaseManifest  []byte
	FinalManifest []byte

	// InstallCommand and RunCommand are the package manager command lines.
	InstallCommand string
	RunCommand     string

	// InstallErr is set when installation was requested but did not succeed.
	// It never fails the run.
	InstallErr error
}

func (r *Result) enter(s State) {
	r.State = s
	r.History = append(r.History, s)
}

// Engine runs compositions against a template repository and a target
// filesystem.
type Engine struct {
	repo     *templates.Repository
	fs       afero.Fs
	confirm  materialize.Confirmer
	runner   pkgmanager.Runner
	force    bool
	progress ProgressFunc
	dir      string
}

// Option configures an Engine.
type Option func(*Engine)

// WithConfirmer sets who is asked before a non-empty target is emptied.
func WithConfirmer(c materialize.Confirmer) Option {
	return func(e *Engine) { e.confirm = c }
}

// WithRunner sets the package manager runner used by the install step.
func WithRunner(r pkgmanager.Runner) Option {
	return func(e *Engine) { e.runner = r }
}

// WithForce empties a non-empty target without asking.
func WithForce(force bool) Option {
	return func(e *Engine) { e.force = force }
}

// WithProgress wraps the write phases, e.g. with a spinner.
func WithProgress(p ProgressFunc) Option {
	return func(e *Engine) {
		if p != nil {
			e.progress = p
		}
	}
}

// WithTargetDir writes the project to dir instead of ./<project name>.
func WithTargetDir(dir string) Option {
	return func(e *Engine) { e.dir = dir }
}

// NewEngine creates an engine. fs is the filesystem the project is written to.
func NewEngine(repo *templates.Repository, fs afero.Fs, opts ...Option) *Engine {
	e := &Engine{
		repo:     repo,
		fs:       fs,
		progress: runDirect,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run composes the project described by spec. The returned Result is never
// nil. A returned error matching ErrCancelled means the user declined to
// overwrite the target and nothing was changed.
func (e *Engine) Run(ctx context.Context, spec ProjectSpec) (*Result, error) {
	res := &Result{
		Dir:            e.targetDir(spec),
		InstallCommand: spec.PackageManager.InstallCommand(),
		RunCommand:     spec.PackageManager.RunCommand(),
	}
	res.enter(StateInitializing)

	abort := func(err error) (*Result, error) {
		res.enter(StateAborted)
		return res, err
	}

	if err := spec.Validate(); err != nil {
		return abort(err)
	}

	plan, err := BuildPlan(spec, e.repo)
	if err != nil {
		return abort(err)
	}

	targetState, err := materialize.PrepareTarget(e.fs, res.Dir, e.force, e.confirm)
	if err != nil {
		return abort(err)
	}
	res.TargetState = targetState
	if targetState.Destructive() {
		output.Warn("removed existing contents of target directory", "dir", res.Dir)
	}
	output.Debug("target prepared", "dir", res.Dir, "state", string(targetState))

	exec := materialize.NewExecutor(e.fs, res.Dir)

	base, _ := plan.Step(StepBase)
	err = e.progress(ctx, "Copying base template", func() error {
		return exec.ApplyStep(ctx, base)
	})
	if err != nil {
		return abort(err)
	}
	res.enter(StateBaseMaterialized)
	res.BaseManifest = plan.BaseManifestBytes
	output.Debug("base template written", "files", len(base.Writes))

	for _, id := range plan.Missing {
		output.ModuleLogger(id).Warn("module not found in template repository, skipping")
	}
	res.Skipped = plan.Missing

	integrate := func() error {
		for _, step := range plan.Steps {
			if step.Module == "" {
				continue
			}
			if err := exec.ApplyStep(ctx, step); err != nil {
				return err
			}
			output.ModuleLogger(step.Module).Debug("module files written", "files", len(step.Writes))
			res.Integrated = append(res.Integrated, step.Module)
		}
		if step, ok := plan.Step(StepManifest); ok {
			if err := exec.ApplyStep(ctx, step); err != nil {
				return err
			}
		}
		return nil
	}
	if _, ok := plan.Step(StepManifest); len(plan.Integrated) > 0 || ok {
		err = e.progress(ctx, "Integrating modules", integrate)
	}
	if err != nil {
		return abort(err)
	}
	res.enter(StateModulesIntegrated)
	res.FinalManifest = plan.ManifestBytes
	res.Files = plan.Files()

	installState, installErr := e.install(ctx, spec, res.Dir)
	res.enter(installState)
	res.InstallErr = installErr
	if installErr != nil {
		output.Warn("dependency installation failed", "err", res.InstallErr)
	}

	res.enter(StateDone)
	return res, nil
}

// Plan builds the plan for spec without touching the target.
func (e *Engine) Plan(spec ProjectSpec) (*Plan, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return BuildPlan(spec, e.repo)
}

// install runs the package manager when requested. Failures are returned as
// an ErrInstall error next to the reached state, never as a run failure.
func (e *Engine) install(ctx context.Context, spec ProjectSpec, dir string) (State, error) {
	if !spec.InstallDeps {
		return StateInstallSkipped, nil
	}
	if e.runner == nil {
		return StateInstallSkipped, oerrors.Wrap(oerrors.ErrInstall, "no package manager runner configured")
	}

	if !e.runner.Available(ctx, spec.PackageManager) {
		return StateInstallSkipped, oerrors.Wrap(oerrors.ErrInstall,
			fmt.Sprintf("%s is not available on PATH", spec.PackageManager))
	}

	output.Info("installing dependencies", "cmd", spec.PackageManager.InstallCommand())
	if err := e.runner.Install(ctx, spec.PackageManager, dir); err != nil {
		if errors.Is(err, oerrors.ErrInstall) {
			return StateInstallSkipped, err
		}
		return StateInstallSkipped, fmt.Errorf("%w: %w", oerrors.ErrInstall, err)
	}
	return StateDependenciesInstalled, nil
}

func (e *Engine) targetDir(spec ProjectSpec) string {
	if e.dir != "" {
		return e.dir
	}
	return spec.Name
}

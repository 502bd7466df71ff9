package compose

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/dev-zetos/create-vite-react-template/internal/errors"
	"github.com/dev-zetos/create-vite-react-template/internal/manifest"
	"github.com/dev-zetos/create-vite-react-template/internal/materialize"
	"github.com/dev-zetos/create-vite-react-template/internal/pkgmanager"
)

type fakeRunner struct {
	available  bool
	installErr error
	installs   []string
}

func (f *fakeRunner) Available(_ context.Context, _ pkgmanager.Manager) bool {
	return f.available
}

func (f *fakeRunner) Install(_ context.Context, m pkgmanager.Manager, dir string) error {
	f.installs = append(f.installs, string(m)+"@"+dir)
	return f.installErr
}

func confirmWith(answer bool) materialize.Confirmer {
	return materialize.ConfirmFunc(func(string) (bool, error) { return answer, nil })
}

func readManifest(t *testing.T, fs afero.Fs, dir string) *manifest.Manifest {
	t.Helper()
	data, err := afero.ReadFile(fs, dir+"/package.json")
	require.NoError(t, err)
	m, err := manifest.Parse(data)
	require.NoError(t, err)
	return m
}

func TestEngine_ScenarioA_BaseOnly(t *testing.T) {
	fs := afero.NewMemMapFs()
	engine := NewEngine(testRepo(), fs)

	res, err := engine.Run(context.Background(), NewProjectSpec("my-app", nil, pkgmanager.NPM, false))
	require.NoError(t, err)

	assert.Equal(t, StateDone, res.State)
	assert.Equal(t, []State{
		StateInitializing, StateBaseMaterialized, StateModulesIntegrated, StateInstallSkipped, StateDone,
	}, res.History)
	assert.Equal(t, materialize.TargetCreated, res.TargetState)
	assert.Empty(t, res.Integrated)

	var written []string
	err = afero.Walk(fs, "my-app", func(p string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() {
			written = append(written, p)
		}
		return err
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"my-app/index.html", "my-app/package.json", "my-app/public/logo.png", "my-app/src/main.tsx",
	}, written)

	data, err := afero.ReadFile(fs, "my-app/package.json")
	require.NoError(t, err)
	plan, err := BuildPlan(NewProjectSpec("my-app", nil, pkgmanager.NPM, false), testRepo())
	require.NoError(t, err)
	assert.Equal(t, string(plan.BaseManifestBytes), string(data), "manifest is unchanged from the base")
	assert.Equal(t, "npm run dev", res.RunCommand)
}

func TestEngine_ScenarioB_ThemeAddsSass(t *testing.T) {
	fs := afero.NewMemMapFs()
	res, err := NewEngine(testRepo(), fs).Run(context.Background(),
		NewProjectSpec("my-app", []string{"theme"}, pkgmanager.NPM, false))
	require.NoError(t, err)
	assert.Equal(t, []string{"theme"}, res.Integrated)

	m := readManifest(t, fs, "my-app")
	assert.Equal(t, map[string]string{"sass": "^1.0.0", "typescript": "~5.6.2"}, m.DevDependencies)
	assert.Equal(t, map[string]string{"react": "^19.0.0"}, m.Dependencies)

	exists, err := afero.Exists(fs, "my-app/src/store/useThemeStore.ts")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestEngine_ScenarioC_DeclineLeavesTargetUntouched(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "my-app/existing.txt", []byte("keep me"), 0o644))

	res, err := NewEngine(testRepo(), fs, WithConfirmer(confirmWith(false))).Run(
		context.Background(), NewProjectSpec("my-app", []string{"theme"}, pkgmanager.NPM, false))
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrCancelled))
	assert.Equal(t, StateAborted, res.State)
	assert.Equal(t, oerrors.ExitSuccess, oerrors.ExitCodeFromError(err))

	entries, err := afero.ReadDir(fs, "my-app")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	data, err := afero.ReadFile(fs, "my-app/existing.txt")
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(data))
}

func TestEngine_ConfirmedOverwriteEmptiesTarget(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "my-app/stale.txt", []byte("old"), 0o644))

	res, err := NewEngine(testRepo(), fs, WithConfirmer(confirmWith(true))).Run(
		context.Background(), NewProjectSpec("my-app", nil, pkgmanager.NPM, false))
	require.NoError(t, err)
	assert.Equal(t, materialize.TargetEmptied, res.TargetState)

	exists, err := afero.Exists(fs, "my-app/stale.txt")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestEngine_ForceSkipsConfirmation(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "my-app/stale.txt", []byte("old"), 0o644))

	asked := false
	confirm := materialize.ConfirmFunc(func(string) (bool, error) {
		asked = true
		return false, nil
	})

	res, err := NewEngine(testRepo(), fs, WithConfirmer(confirm), WithForce(true)).Run(
		context.Background(), NewProjectSpec("my-app", nil, pkgmanager.NPM, false))
	require.NoError(t, err)
	assert.False(t, asked)
	assert.Equal(t, materialize.TargetEmptied, res.TargetState)
}

func TestEngine_ScenarioD_LastSelectedWins(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := NewEngine(testRepo(), fs).Run(context.Background(),
		NewProjectSpec("my-app", []string{"x", "y"}, pkgmanager.NPM, false))
	require.NoError(t, err)

	m := readManifest(t, fs, "my-app")
	assert.Equal(t, "^2.0.0", m.Dependencies["shared"])
	assert.Equal(t, "1", m.Dependencies["only-x"])
}

func TestEngine_MissingModuleIsNotFatal(t *testing.T) {
	fs := afero.NewMemMapFs()
	res, err := NewEngine(testRepo(), fs).Run(context.Background(),
		NewProjectSpec("my-app", []string{"ghost", "theme"}, pkgmanager.NPM, false))
	require.NoError(t, err)

	assert.Equal(t, StateDone, res.State)
	assert.Equal(t, []string{"ghost"}, res.Skipped)
	assert.Equal(t, []string{"theme"}, res.Integrated)
}

func TestEngine_Install(t *testing.T) {
	tests := []struct {
		name        string
		install     bool
		runner      *fakeRunner
		wantState   State
		wantErr     bool
		wantInstall bool
	}{
		{
			name:      "not requested",
			runner:    &fakeRunner{available: true},
			wantState: StateInstallSkipped,
		},
		{
			name:        "success",
			install:     true,
			runner:      &fakeRunner{available: true},
			wantState:   StateDependenciesInstalled,
			wantInstall: true,
		},
		{
			name:        "install fails",
			install:     true,
			runner:      &fakeRunner{available: true, installErr: errors.New("exit status 1")},
			wantState:   StateInstallSkipped,
			wantErr:     true,
			wantInstall: true,
		},
		{
			name:      "package manager unavailable",
			install:   true,
			runner:    &fakeRunner{available: false},
			wantState: StateInstallSkipped,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			res, err := NewEngine(testRepo(), fs, WithRunner(tt.runner)).Run(context.Background(),
				NewProjectSpec("my-app", []string{"theme"}, pkgmanager.PNPM, tt.install))
			require.NoError(t, err, "install problems never fail the run")

			assert.Equal(t, StateDone, res.State)
			assert.Contains(t, res.History, tt.wantState)
			assert.Equal(t, "pnpm install", res.InstallCommand)
			assert.Equal(t, "pnpm dev", res.RunCommand)

			if tt.wantErr {
				require.Error(t, res.InstallErr)
				assert.True(t, errors.Is(res.InstallErr, oerrors.ErrInstall))
			} else {
				assert.NoError(t, res.InstallErr)
			}

			if tt.wantInstall {
				assert.Equal(t, []string{"pnpm@my-app"}, tt.runner.installs)
			} else {
				assert.Empty(t, tt.runner.installs)
			}

			exists, err := afero.Exists(fs, "my-app/package.json")
			require.NoError(t, err)
			assert.True(t, exists)
		})
	}
}

func TestEngine_InvalidNameNeverTouchesTarget(t *testing.T) {
	fs := afero.NewMemMapFs()
	res, err := NewEngine(testRepo(), fs).Run(context.Background(),
		NewProjectSpec("bad name", nil, pkgmanager.NPM, false))
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
	assert.Equal(t, StateAborted, res.State)

	exists, err := afero.Exists(fs, "bad name")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestEngine_WriteFailureAborts(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	res, err := NewEngine(testRepo(), fs).Run(context.Background(),
		NewProjectSpec("my-app", nil, pkgmanager.NPM, false))
	require.Error(t, err)
	assert.Equal(t, StateAborted, res.State)
	assert.NotEqual(t, oerrors.ExitSuccess, oerrors.ExitCodeFromError(err))
}

func TestEngine_ProgressWrapsPhases(t *testing.T) {
	tests := []struct {
		name    string
		modules []string
		want    []string
	}{
		{"with modules", []string{"theme"}, []string{"Copying base template", "Integrating modules"}},
		{"base only", nil, []string{"Copying base template"}},
		{"only missing modules", []string{"ghost"}, []string{"Copying base template"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var titles []string
			progress := func(_ context.Context, title string, action func() error) error {
				titles = append(titles, title)
				return action()
			}

			res, err := NewEngine(testRepo(), afero.NewMemMapFs(), WithProgress(progress), WithTargetDir("out/app")).Run(
				context.Background(), NewProjectSpec("my-app", tt.modules, pkgmanager.NPM, false))
			require.NoError(t, err)
			assert.Equal(t, tt.want, titles)
			assert.Contains(t, res.History, StateModulesIntegrated)
		})
	}
}

package materialize

import (
	"context"
	"path/filepath"
	"runtime"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	oerrors "github.com/dev-zetos/create-vite-react-template/internal/errors"
	"github.com/dev-zetos/create-vite-react-template/internal/output"
)

// FileWrite is one file of a plan step. Path is slash-separated and
// relative to the target directory.
type FileWrite struct {
	Path      string `json:"path"`
	Source    string `json:"source,omitempty"`
	Templated bool   `json:"templated,omitempty"`
	Size      int    `json:"size"`
	Content   []byte `json:"-"`
}

// Step is an ordered unit of a plan. Paths within a step are unique, so
// its writes may run in any order.
type Step struct {
	Name   string      `json:"name"`
	Module string      `json:"module,omitempty"`
	Writes []FileWrite `json:"files"`
}

// Executor applies plan steps under a root directory.
type Executor struct {
	fs          afero.Fs
	root        string
	concurrency int
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// WithConcurrency bounds the number of parallel writes within a step.
func WithConcurrency(n int) ExecutorOption {
	return func(e *Executor) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

// NewExecutor creates an executor writing below root on fsys.
func NewExecutor(fsys afero.Fs, root string, opts ...ExecutorOption) *Executor {
	e := &Executor{
		fs:          fsys,
		root:        root,
		concurrency: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Apply runs steps strictly in order. The first failure stops the run;
// files written by earlier steps are left in place.
func (e *Executor) Apply(ctx context.Context, steps []Step) error {
	for _, step := range steps {
		if err := e.ApplyStep(ctx, step); err != nil {
			return err
		}
	}
	return nil
}

// ApplyStep writes every file of one step, in parallel, and returns once all
// of them are on disk or the first write failed.
func (e *Executor) ApplyStep(ctx context.Context, step Step) error {
	output.Debug("applying step", "step", step.Name, "files", len(step.Writes))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	for _, w := range step.Writes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			target := filepath.Join(e.root, filepath.FromSlash(w.Path))
			if err := WriteFile(e.fs, target, w.Content); err != nil {
				return oerrors.NewMaterializeError(
					"writing "+w.Path+" during "+step.Name, target, err)
			}
			return nil
		})
	}

	return g.Wait()
}

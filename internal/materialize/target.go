// Package materialize prepares the target directory and applies file writes
// to it.
package materialize

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	oerrors "github.com/dev-zetos/create-vite-react-template/internal/errors"
)

// TargetState describes how the target directory was prepared.
type TargetState string

const (
	// TargetCreated means the directory did not exist and was created.
	TargetCreated TargetState = "created"

	// TargetReused means the directory existed and was already empty.
	TargetReused TargetState = "reused"

	// TargetEmptied means the directory existed with content that was
	// removed after confirmation or --force. This is destructive.
	TargetEmptied TargetState = "emptied"
)

// Destructive reports whether preparing the target removed existing content.
func (s TargetState) Destructive() bool {
	return s == TargetEmptied
}

// Confirmer asks whether existing content of a non-empty target directory
// may be removed. A false answer or an error aborts preparation.
type Confirmer interface {
	ConfirmOverwrite(dir string) (bool, error)
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(dir string) (bool, error)

// ConfirmOverwrite implements Confirmer.
func (f ConfirmFunc) ConfirmOverwrite(dir string) (bool, error) {
	return f(dir)
}

// InspectTarget reports what PrepareTarget would find at dir without
// changing anything: whether it exists and whether it has content.
func InspectTarget(fsys afero.Fs, dir string) (exists, nonEmpty bool, err error) {
	info, err := fsys.Stat(dir)
	if errors.Is(err, os.ErrNotExist) {
		return false, false, nil
	}
	if err != nil {
		return false, false, oerrors.NewMaterializeError("inspecting target directory", dir, err)
	}
	if !info.IsDir() {
		return true, false, oerrors.NewMaterializeError(
			"target path exists and is not a directory", dir, fmt.Errorf("%s: not a directory", dir))
	}

	empty, err := afero.IsEmpty(fsys, dir)
	if err != nil {
		return true, false, oerrors.NewMaterializeError("reading target directory", dir, err)
	}
	return true, !empty, nil
}

// PrepareTarget resolves the target directory. A missing directory is
// created with its parents; an empty one is reused as is. A non-empty one is
// only emptied when force is set or confirm agrees; otherwise nothing is
// touched and the returned error matches ErrCancelled.
func PrepareTarget(fsys afero.Fs, dir string, force bool, confirm Confirmer) (TargetState, error) {
	exists, nonEmpty, err := InspectTarget(fsys, dir)
	if err != nil {
		return "", err
	}

	if !exists {
		if err := fsys.MkdirAll(dir, 0o755); err != nil {
			return "", oerrors.NewMaterializeError("creating target directory", dir, err)
		}
		return TargetCreated, nil
	}

	if !nonEmpty {
		return TargetReused, nil
	}

	if !force {
		if confirm == nil {
			return "", oerrors.Wrap(oerrors.ErrCancelled,
				fmt.Sprintf("target directory %s is not empty", dir))
		}
		ok, err := confirm.ConfirmOverwrite(dir)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", oerrors.Wrap(oerrors.ErrCancelled,
				fmt.Sprintf("overwrite of %s declined", dir))
		}
	}

	if err := emptyDir(fsys, dir); err != nil {
		return "", oerrors.NewMaterializeError("emptying target directory", dir, err)
	}
	return TargetEmptied, nil
}

// emptyDir removes every entry of dir but keeps dir itself.
func emptyDir(fsys afero.Fs, dir string) error {
	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := fsys.RemoveAll(filepath.Join(dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}

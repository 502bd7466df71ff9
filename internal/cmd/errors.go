package cmd

import (
	"errors"

	oerrors "github.com/dev-zetos/create-vite-react-template/internal/errors"
	"github.com/dev-zetos/create-vite-react-template/internal/output"
)

// exitWithError prints err and wraps it in an ExitError carrying the mapped
// exit code. Structured errors are printed as a multi-line block.
func exitWithError(err error) error {
	if err == nil {
		return nil
	}

	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		return err
	}

	var detail *oerrors.DetailError
	if errors.As(err, &detail) {
		output.Details(detail.Error())
	} else {
		output.Error(err.Error())
	}

	exitErr = oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
	exitErr.Printed = true
	output.Debug("exiting", "code", exitErr.Code, "reason", oerrors.ExitCodeName(exitErr.Code))
	return exitErr
}

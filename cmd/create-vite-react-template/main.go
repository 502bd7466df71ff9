// Package main is the entry point for create-vite-react-template.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dev-zetos/create-vite-react-template/internal/cmd"
	oerrors "github.com/dev-zetos/create-vite-react-template/internal/errors"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		var exitErr *oerrors.ExitError
		if errors.As(err, &exitErr) {
			// Only print if the command layer hasn't already printed it
			if !exitErr.Printed {
				fmt.Fprintln(os.Stderr, err)
			}
			os.Exit(exitErr.Code)
		}
		// Flag parsing and other cobra errors
		fmt.Fprintln(os.Stderr, err)
		os.Exit(oerrors.ExitCodeFromError(err))
	}
}

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dev-zetos/create-vite-react-template/internal/output"
	"github.com/dev-zetos/create-vite-react-template/internal/pkgmanager"
	"github.com/dev-zetos/create-vite-react-template/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(_ *GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show version information.

Displays:
  - CLI version, commit, and build date
  - Package managers found on PATH`,
		RunE: runVersion,
	}
}

func runVersion(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, version.Get().String())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Package managers:")
	tbl := output.NewTable("MANAGER", "STATUS", "VERSION", "PATH")
	for _, m := range pkgmanager.All() {
		info := pkgmanager.Detect(ctx, m)
		status, ver, path := "not found", "-", "-"
		if info.Found {
			status, path = "found", info.Path
			if info.Version != "" {
				ver = info.Version
			}
		}
		tbl.Row(string(m), status, ver, path)
	}
	fmt.Fprintln(w, tbl.String())
	return nil
}

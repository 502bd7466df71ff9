package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dev-zetos/create-vite-react-template/internal/config"
	"github.com/dev-zetos/create-vite-react-template/internal/output"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(gc *GlobalConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Manage the create-vite-react-template configuration file.`,
	}

	cmd.AddCommand(NewConfigInitCmd(gc))

	return cmd
}

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(gc *GlobalConfig) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Write a configuration file with the default values.

The file is created at ~/.create-vite-react-template/config.yaml, or at the
path given by --config or CVRT_CONFIG. It sets:
  packageManager   pnpm, npm or yarn
  installDeps      install dependencies after creating a project
  templatesDir     on-disk template repository (empty = built in)
  log.timestamps   show timestamps in log output

Examples:
  # Initialize configuration
  create-vite-react-template config init

  # Overwrite existing configuration
  create-vite-react-template config init --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(gc, force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing configuration")

	return cmd
}

func runConfigInit(gc *GlobalConfig, force bool) error {
	path := gc.ConfigPath
	if path == "" {
		p, err := config.GetConfigFile()
		if err != nil {
			return exitWithError(err)
		}
		path = p
	}

	if err := config.WriteDefault(path, force); err != nil {
		return exitWithError(err)
	}

	output.Println(output.FormatCheckmark("Configuration written to " + output.StyleNoun.Render(path)))
	return nil
}

// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dev-zetos/create-vite-react-template/internal/config"
	"github.com/dev-zetos/create-vite-react-template/internal/output"
	"github.com/dev-zetos/create-vite-react-template/internal/version"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every command
// constructor.
type GlobalConfig struct {
	// Config is the loaded config file, empty when none exists.
	Config *config.Config

	// ConfigPath is the resolved config file path.
	ConfigPath string

	// Settings are the effective values after flag/env/config/default
	// resolution.
	Settings *config.Settings

	Verbose bool
}

// rootFlags holds the persistent flag values.
type rootFlags struct {
	config     string
	verbose    bool
	timestamps bool
}

// NewRootCmd creates the root command. The root command itself creates a
// project; config and version are subcommands.
func NewRootCmd() *cobra.Command {
	gc := &GlobalConfig{}
	flags := &rootFlags{}
	create := &createFlags{}

	rootCmd := &cobra.Command{
		Use:   "create-vite-react-template [project-name]",
		Short: "Scaffold a Vite + React project from a base template and optional modules",
		Long: `Create a new Vite + React + TypeScript project.

The base template is copied into ./<project-name>, templated files are
rendered with the project name, and every selected module is overlaid onto
src/ with its dependencies merged into package.json.

If ./<project-name> exists and is not empty you are asked before its
contents are removed. --force skips that question and always empties the
directory. Both exist so that existing work is never deleted silently.

"config" and "version" are subcommands. To create a project with one of
those names use --name, e.g. --name config.

Examples:
  # Interactive
  create-vite-react-template

  # Non-interactive
  create-vite-react-template my-app -m theme -m i18n --pm npm --no-install -y

  # Show what would be written
  create-vite-react-template my-app -m theme --dry-run -o json`,
		Version:       version.Get().Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd, gc, flags, create)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, args, gc, create)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "", "Path to config file (env: CVRT_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")

	create.register(rootCmd)
	rootCmd.SetVersionTemplate(version.Get().String() + "\n")

	rootCmd.AddCommand(NewConfigCmd(gc))
	rootCmd.AddCommand(NewVersionCmd(gc))

	return rootCmd
}

// initializeGlobals loads configuration, resolves settings and sets up
// logging.
func initializeGlobals(cmd *cobra.Command, gc *GlobalConfig, flags *rootFlags, create *createFlags) error {
	gc.Verbose = flags.verbose

	// Logging first so config problems are reported consistently.
	output.SetupLogging(output.LogConfig{Verbose: flags.verbose})

	pathResult, err := config.ResolveConfigPath(flags.config)
	if err != nil {
		return err
	}
	gc.ConfigPath = pathResult.ConfigPath

	cfg, err := config.NewLoader().Load(gc.ConfigPath)
	if err != nil {
		// Subcommands such as `config init` must work with a broken file.
		if cmd != cmd.Root() {
			output.Debug("config load error", "error", err)
			cfg = &config.Config{}
		} else {
			return exitWithError(err)
		}
	}
	gc.Config = cfg

	fv := config.FlagValues{}
	if cmd.Flags().Changed("timestamps") {
		fv.Timestamps = output.BoolPtr(flags.timestamps)
	}
	create.applyTo(cmd, &fv)

	settings, err := config.Resolve(fv, cfg)
	if err != nil {
		return exitWithError(err)
	}
	settings.ConfigPath = gc.ConfigPath
	gc.Settings = settings

	output.SetupLogging(output.LogConfig{
		Verbose:    flags.verbose,
		Timestamps: output.BoolPtr(settings.Timestamps),
	})

	output.Debug("initializing CLI", "config", gc.ConfigPath, "configSource", pathResult.Source)
	config.LogResolvedValues(settings.Values)

	return nil
}

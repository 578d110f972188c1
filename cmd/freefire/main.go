package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/EstruturaDados/free-fire/cmd/commands"
	"github.com/EstruturaDados/free-fire/internal/cli"
	"github.com/EstruturaDados/free-fire/pkg/files"
	"github.com/EstruturaDados/free-fire/pkg/models"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	configPath  string
	output      string
	quiet       bool
	noColor     bool
	skipConfirm bool
	verbose     bool

	tuiFrom   string
	tuiSample string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "freefire",
	Short: "Organize the components needed to build the escape tower",
	Long: `freefire keeps a small in-memory inventory of components (name, type and
priority), sorts it with bubble, insertion or selection sort and finds parts
with a binary search by name, reporting comparisons and time for each run.

Run without arguments to start the interactive interface.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		settings, err := files.ReadSettings(configPath)
		if err != nil {
			return err
		}
		if output != "" {
			if err := cli.ValidateOutputFormat(output); err != nil {
				return err
			}
			settings.Output.Format = output
		}
		if noColor || settings.UI.NoColor {
			noColor = true
			os.Setenv("NO_COLOR", "1")
		}
		cli.SetGlobalFlags(quiet, noColor, skipConfirm)

		// The interactive UI owns the terminal, so it runs without a logger
		if cmd == cmd.Root() {
			logger = zap.NewNop()
		} else if logger, err = buildLogger(settings); err != nil {
			return err
		}

		ctx := cli.NewCommandContext(configPath, logger)
		ctx.Settings = settings
		commands.SetContext(ctx)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return commands.RunTUI(tuiFrom, tuiSample)
	},
}

func buildLogger(settings *models.Settings) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	level, err := zapcore.ParseLevel(settings.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", settings.Log.Level, err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	config.Level = zap.NewAtomicLevelAt(level)

	l, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return l, nil
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a settings file with the default values",
	Long:  `Creates the settings file (default .freefire.yaml) in the current directory`,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if _, err := os.Stat(configPath); err == nil && !force {
			return fmt.Errorf("settings file %s already exists (use --force to overwrite)", configPath)
		}

		if err := files.WriteSettings(configPath, models.DefaultSettings()); err != nil {
			return err
		}

		cli.PrintSuccess("Created %s", configPath)
		cli.PrintInfo("Run 'freefire' to start the interactive interface.")
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of freefire",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "freefire version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", files.DefaultSettingsFile, "Settings file")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Output format: text, json or yaml")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress informational messages")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colors")
	rootCmd.PersistentFlags().BoolVarP(&skipConfirm, "yes", "y", false, "Answer yes to confirmations")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.Flags().StringVar(&tuiFrom, "from", "", "Seed the inventory from a YAML file")
	rootCmd.Flags().StringVar(&tuiSample, "sample", "", "Seed the inventory from a built-in sample (tower, sorted, worst-case)")

	initCmd.Flags().BoolP("force", "f", false, "Overwrite an existing settings file")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewMenuCommand())
	rootCmd.AddCommand(commands.NewSortCommand())
	rootCmd.AddCommand(commands.NewSearchCommand())
	rootCmd.AddCommand(commands.NewListCommand())
	rootCmd.AddCommand(commands.NewExamplesCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		cli.PrintError("%v", err)
		os.Exit(1)
	}
}

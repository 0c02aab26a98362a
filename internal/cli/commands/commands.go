package commands

import (
	"os"

	"frg/internal/cli"
	"frg/internal/config"
	"frg/internal/generate"
	"frg/internal/logging"
	"frg/internal/ui"

	"github.com/spf13/cobra"
)

// Environment is shared by every command. Logger is set once flags are parsed.
type Environment struct {
	Config *config.Config
	Logger *logging.Logger
}

// newGenerator builds the pipeline for the loaded configuration. A scan
// progress bar is attached when progress is true and stderr is a terminal.
func (e *Environment) newGenerator(progress bool) (*generate.Generator, error) {
	g, err := generate.New(e.Config, e.Logger)
	if err != nil {
		return nil, err
	}
	if progress && !e.Config.Flags.Quiet && ui.IsTerminal(os.Stderr) {
		g.SetProgress(ui.NewScanProgress(os.Stderr))
	}
	return g, nil
}

// Commands holds all CLI commands
type Commands struct {
	env *Environment

	Generate *GenerateCommand
	List     *ListCommand
	Check    *CheckCommand
	Watch    *WatchCommand
	Browse   *BrowseCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	env := &Environment{Config: cfg, Logger: logging.Discard()}

	return &Commands{
		env:      env,
		Generate: NewGenerateCommand(env),
		List:     NewListCommand(env),
		Check:    NewCheckCommand(env),
		Watch:    NewWatchCommand(env),
		Browse:   NewBrowseCommand(env, ui.NewGroupBrowser()),
	}
}

// Register registers all commands with cobra. The root command itself
// generates the runners.
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Update config with flags after parsing
		if err := cfg.Load(flags.ToConfigFlags()); err != nil {
			return err
		}
		c.env.Logger = logging.NewLogger(logging.Config{
			Level:  flags.LogLevel(),
			Format: "text",
			Output: cmd.ErrOrStderr(),
		})
		if cfg.ConfigFile != "" {
			c.env.Logger.ConfigLoaded(cfg.ConfigFile)
		}
		c.env.Logger.Debug("Effective configuration", "config", cfg.String())
		return nil
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.ProjectPath, "project-path", "p", "", "Project root; cases and output paths are relative to it (default \".\")")
	pf.StringVarP(&flags.CasesDir, "cases", "c", "", "Directory scanned for test_* sources (default \"cases\")")
	pf.StringVarP(&flags.OutputDir, "output-dir", "o", "", "Directory the runners are written to (default project path)")
	pf.StringVarP(&flags.Mode, "mode", "m", "", "Runner layout: unified or split (default \"unified\")")
	pf.StringVar(&flags.Framework, "framework", "", "Macro family: pizza or test (default depends on mode)")
	pf.StringVar(&flags.Platform, "platform", "", "Target platform; darwin enables Objective-C sources (default host OS)")
	pf.StringVar(&flags.ConfigFile, "config", "", "YAML config file (default <project>/.frg.yaml when present)")
	pf.BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging")
	pf.BoolVarP(&flags.Quiet, "quiet", "q", false, "Only print errors")

	// The root command runs generate
	rootCmd.RunE = c.Generate.Execute
	rootCmd.Flags().BoolVar(&flags.Stdout, "stdout", false, "Print the runners instead of writing them")

	// Generate command
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Scan the cases directory and write the test runners",
		Long:  "Collect every FOSSIL_TEST_GROUP declared under the cases directory and write the runner files that declare and register them",
		Args:  cobra.NoArgs,
		RunE:  c.Generate.Execute,
	}
	generateCmd.Flags().BoolVar(&flags.Stdout, "stdout", false, "Print the runners instead of writing them")
	rootCmd.AddCommand(generateCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered test groups",
		Long:  "Scan the cases directory and list the test groups of every bucket without writing anything",
		Args:  cobra.NoArgs,
		RunE:  c.List.Execute,
	}
	listCmd.Flags().BoolVar(&flags.ShowFiles, "files", false, "Show the files declaring each group")
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter groups by name pattern (supports wildcards, e.g. 'c_*' or '*queue*')")
	listCmd.Flags().BoolVar(&flags.JSON, "json", false, "Print the groups as JSON")
	rootCmd.AddCommand(listCmd)

	// Check command
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Verify the runners are up to date",
		Long:  "Render the runners in memory and fail when a runner on disk is missing or differs",
		Args:  cobra.NoArgs,
		RunE:  c.Check.Execute,
	}
	rootCmd.AddCommand(checkCmd)

	// Watch command
	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate the runners whenever test sources change",
		Long:  "Generate once, then watch the cases directory and regenerate after every change until interrupted",
		Args:  cobra.NoArgs,
		RunE:  c.Watch.Execute,
	}
	rootCmd.AddCommand(watchCmd)

	// Browse command
	browseCmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse discovered test groups interactively",
		Long:  "Display the discovered test groups with their buckets, declaring files and runners in an interactive viewer",
		Args:  cobra.NoArgs,
		RunE:  c.Browse.Execute,
	}
	rootCmd.AddCommand(browseCmd)
}

// NewRootCommand builds the frg command tree
func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "frg",
		Short:         "Fossil test runner generator",
		Long:          `Scans a cases directory for FOSSIL_TEST_GROUP declarations and writes the unit_runner sources that declare, register and run every group.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	NewCommands(cfg).Register(rootCmd, &flags, cfg)
	return rootCmd
}

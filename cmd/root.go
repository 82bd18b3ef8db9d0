package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"devsetup/internal/catalog"
	"devsetup/internal/config"
	"devsetup/internal/installer"
	"devsetup/internal/logger"
)

// debug flag indicates whether debug logging should be enabled.
// It can be toggled via the `--debug` command-line flag.
var debug bool

var (
	configPath string
	logFile    string
)

// cfg is loaded once in PersistentPreRunE and shared by every subcommand.
var cfg *config.Config

// rootCmd is the base command for the CLI tool `devsetup`.
// Running it without a subcommand starts the interactive setup.
var rootCmd = &cobra.Command{
	Use:   "devsetup",
	Short: "Interactive setup for a fresh macOS developer machine",
	Long: `devsetup checks which developer tools are already installed, lets you pick
the missing ones category by category, and installs your picks together at the end.
Node.js, Git and your .zshrc are set up along the way.`,
	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig(configPath, cmd.Flags().Changed("config"))
		if err != nil {
			_ = logger.Init(debug, "")
			return err
		}

		home, err := os.UserHomeDir()
		if err != nil {
			_ = logger.Init(debug, "")
			return err
		}
		if err := logger.Init(debug, cfg.LogPath(home, logFile)); err != nil {
			return err
		}

		known := append(catalog.Keys(), installer.StepNode, installer.StepGit, installer.StepZshrc)
		for _, w := range cfg.Validate(known) {
			logger.Warn("[WARN] config: %s\n", w)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Close()
	},
	RunE: runSetup,
}

// Execute registers flags and subcommands and runs the CLI.
//
// Errors are logged and the process still exits 0, so shell scripts that
// chain devsetup keep going. The one exception is a missing Homebrew,
// which exits 1.
func Execute() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath(), "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write a JSON log to this file (overrides log_file in the config)")
	addSetupFlags(rootCmd)

	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(listCmd)

	err := rootCmd.Execute()
	if err == nil {
		return
	}
	logger.Error("[ERROR] ❌ %v\n", err)
	logger.Close()
	if errors.Is(err, installer.ErrPackageManagerMissing) {
		os.Exit(1)
	}
}

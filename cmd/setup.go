package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"devsetup/internal/catalog"
	"devsetup/internal/installer"
	"devsetup/internal/prompt"
	"devsetup/internal/runner"
)

var (
	dryRun      bool
	skipOSCheck bool
	accessible  bool
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Check, select and install developer tools (default command)",
	RunE:  runSetup,
}

func addSetupFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Print install commands instead of running them")
	cmd.Flags().BoolVar(&skipOSCheck, "skip-os-check", false, "Run even when not on macOS")
	cmd.Flags().BoolVar(&accessible, "accessible", false, "Use plain prompts suited to screen readers")
}

func init() {
	addSetupFlags(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	if err := prompt.RequireTerminal(os.Stdin.Fd()); err != nil {
		return err
	}

	env, err := newEnv()
	if err != nil {
		return err
	}
	env.Prompter = prompt.New(accessible)
	env.DryRun = dryRun
	env.SkipOSCheck = skipOSCheck
	if dryRun {
		env.Installer = runner.DryRun{}
	}

	_, err = installer.Setup(cmd.Context(), env)
	return err
}

// newEnv wires the real shell runners. Checks always run for real; the
// fonts dir is exported so font checks can find installed files.
func newEnv() (*installer.Env, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to locate home directory: %w", err)
	}

	env := &installer.Env{Config: cfg, Home: home}
	sh := runner.Shell{Env: []string{catalog.FontsDirEnv + "=" + env.FontsDir()}}
	env.Checker = sh
	env.Installer = sh
	return env, nil
}

package installer

import (
	"context"
	"fmt"

	"devsetup/internal/logger"
)

const (
	brewCheckCmd   = "brew -v"
	brewInstallCmd = `NONINTERACTIVE=1 /bin/bash -c "$(curl -fsSL https://raw.githubusercontent.com/Homebrew/install/HEAD/install.sh)"`
)

// Homebrew makes sure the package manager every install depends on is present.
// When it is missing and the operator declines (or the install fails) the
// returned error wraps ErrPackageManagerMissing.
func Homebrew(ctx context.Context, env *Env) error {
	logger.Log("🔧 Checking Homebrew…\n")

	if res := env.Checker.Run(ctx, brewCheckCmd); res.OK() && res.Output != "" {
		logger.Info("[INFO] Homebrew is already installed: %s\n", firstLine(res.Output))
		return nil
	}

	logger.Error("[ERROR] Homebrew not found. It can be installed with:\n")
	logger.Msg("%s\n", brewInstallCmd)

	ok, err := env.Prompter.Confirm(ctx, "Install Homebrew now?")
	if err != nil {
		return err
	}
	if !ok {
		return ErrPackageManagerMissing
	}

	logger.Log("➡️  Installing Homebrew...\n")
	res := env.Installer.Run(ctx, brewInstallCmd)
	if !res.OK() {
		logger.Error("[ERROR] ❌ Homebrew install failed: %v\n", res.Err)
		return fmt.Errorf("%w: %v", ErrPackageManagerMissing, res.Err)
	}

	logger.Info("[INFO] ✅ Homebrew installed.\n")
	logger.Warn("[WARN] Open a new shell (or run `eval \"$(/opt/homebrew/bin/brew shellenv)\"`) if brew is not on your PATH yet.\n")
	return nil
}

package installer

import (
	"context"
	"fmt"
	"path/filepath"

	"devsetup/internal/logger"
	"devsetup/internal/runner"
)

const nvmInstallURL = "https://raw.githubusercontent.com/nvm-sh/nvm/%s/install.sh"

// withNvm sources nvm before cmd; nvm is a shell function, not a binary.
func (e *Env) withNvm(cmd string) string {
	return ". " + runner.Join(filepath.Join(e.Home, ".nvm", "nvm.sh")) + " && " + cmd
}

// NodeRuntime installs nvm, then Node.js through nvm, then prints the versions.
// The steps run in order because each one needs the previous.
func NodeRuntime(ctx context.Context, env *Env) error {
	logger.Log("🚀 Starting Node.js setup...\n")
	cfg := env.cfg()

	if res := env.Checker.Run(ctx, env.withNvm("nvm -v")); res.OK() && res.Output != "" {
		logger.Info("[INFO] nvm is already installed: %s\n", res.Output)
	} else {
		logger.Warn("[WARN] nvm not found.\n")
		logger.Log("🔧 Installing nvm %s...\n", cfg.NvmVersion)
		install := fmt.Sprintf("curl -o- %s | bash", fmt.Sprintf(nvmInstallURL, cfg.NvmVersion))
		res := env.Installer.Run(ctx, install)
		if !res.OK() {
			// without nvm there is no way to install node
			logger.Error("[ERROR] ❌ nvm install failed: %v\n", res.Err)
			return nil
		}
		logger.Info("[INFO] ✅ nvm installed.\n")
	}

	if res := env.Checker.Run(ctx, env.withNvm("node -v")); res.OK() && res.Output != "" {
		logger.Info("[INFO] Node.js is already installed: %s\n", res.Output)
	} else {
		logger.Warn("[WARN] Node.js not found.\n")
		logger.Log("🔧 Installing Node.js v%s...\n", cfg.NodeVersion)
		res := env.Installer.Run(ctx, env.withNvm("nvm install "+runner.Join(cfg.NodeVersion)))
		if !res.OK() {
			logger.Error("[ERROR] ❌ Node.js install failed: %v\n", res.Err)
			return nil
		}
		logger.Info("[INFO] ✅ Node.js v%s installed.\n", cfg.NodeVersion)
	}

	verifyNode(ctx, env)
	return nil
}

func verifyNode(ctx context.Context, env *Env) {
	if env.DryRun {
		return
	}
	for _, check := range []struct{ label, cmd string }{
		{"Node version", "node -v"},
		{"nvm current", "nvm current"},
		{"npm version", "npm -v"},
	} {
		res := env.Checker.Run(ctx, env.withNvm(check.cmd))
		if !res.OK() {
			logger.Error("[ERROR] ❌ Verification failed: %v\n", res.Err)
			return
		}
		logger.Info("[INFO] %s: %s\n", check.label, res.Output)
	}
}

package installer

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"devsetup/internal/logger"
	"devsetup/internal/runner"
)

const (
	gitVersionCmd = "git --version"
	gitInstallCmd = "brew install git"
)

// Git installs git if needed, then walks through identity, SSH key and
// commit signing. Each step depends on what the one before produced, so
// nothing here is queued. Command failures are logged and end the flow;
// only prompt errors are returned.
func Git(ctx context.Context, env *Env) error {
	logger.Log("🔧 Starting Git setup...\n")

	if res := env.Checker.Run(ctx, gitVersionCmd); res.OK() && res.Output != "" {
		logger.Info("[INFO] Git is already installed: %s\n", res.Output)
	} else {
		logger.Warn("[WARN] Git is not installed.\n")
		logger.Log("➡️  Installing Git...\n")
		res := env.Installer.Run(ctx, gitInstallCmd)
		if !res.OK() {
			logger.Error("[ERROR] ❌ Error installing Git: %v\n", res.Err)
			return nil
		}
		logger.Info("[INFO] ✅ Git installed successfully.\n")
	}

	email, err := gitIdentity(ctx, env)
	if err != nil {
		return err
	}

	key, err := sshKey(ctx, env, email)
	if err != nil {
		return err
	}

	return commitSigning(ctx, env, key)
}

func gitConfig(ctx context.Context, env *Env, key string) string {
	return env.Checker.Run(ctx, runner.Join("git", "config", "--global", key)).Output
}

func validateName(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("name is required")
	}
	return nil
}

func validateEmail(s string) error {
	s = strings.TrimSpace(s)
	at := strings.Index(s, "@")
	if at <= 0 || at == len(s)-1 || strings.ContainsAny(s, " \t") {
		return errors.New("enter a valid email address")
	}
	return nil
}

// gitIdentity returns the configured email, asking for name and email when
// either is missing. An empty email means the operator skipped the step.
func gitIdentity(ctx context.Context, env *Env) (string, error) {
	name := gitConfig(ctx, env, "user.name")
	email := gitConfig(ctx, env, "user.email")
	if name != "" && email != "" {
		logger.Info("[INFO] Git identity: %s <%s>\n", name, email)
		return email, nil
	}

	ok, err := env.Prompter.Confirm(ctx, "Git identity is not configured. Set it up now?")
	if err != nil || !ok {
		return email, err
	}

	if name == "" {
		if name, err = env.Prompter.Input(ctx, "Your full name", validateName); err != nil {
			return "", err
		}
		name = strings.TrimSpace(name)
	}
	if email == "" {
		if email, err = env.Prompter.Input(ctx, "Your email address", validateEmail); err != nil {
			return "", err
		}
		email = strings.TrimSpace(email)
	}

	cmd := runner.Join("git", "config", "--global", "user.name", name) + " && " +
		runner.Join("git", "config", "--global", "user.email", email)
	if res := env.Installer.Run(ctx, cmd); !res.OK() {
		logger.Error("[ERROR] ❌ Failed to configure Git identity: %v\n", res.Err)
		return "", nil
	}
	logger.Info("[INFO] ✅ Git identity set to %s <%s>\n", name, email)
	return email, nil
}

// sshKey returns the public key path, generating an ed25519 key when none
// exists and the operator agrees. An empty path means there is no key.
func sshKey(ctx context.Context, env *Env, email string) (string, error) {
	dir := filepath.Join(env.Home, ".ssh")
	private := filepath.Join(dir, "id_ed25519")
	public := private + ".pub"

	if fileExists(public) {
		logger.Info("[INFO] SSH key found: %s\n", public)
		return public, nil
	}
	if email == "" {
		logger.Warn("[WARN] Skipping SSH key generation: no Git email configured.\n")
		return "", nil
	}

	ok, err := env.Prompter.Confirm(ctx, fmt.Sprintf("No SSH key found. Generate one for %s?", email))
	if err != nil || !ok {
		return "", err
	}

	cmd := runner.Join("mkdir", "-p", dir) + " && " +
		runner.Join("chmod", "700", dir) + " && " +
		runner.Join("ssh-keygen", "-t", "ed25519", "-C", email, "-f", private, "-N", "")
	if res := env.Installer.Run(ctx, cmd); !res.OK() {
		logger.Error("[ERROR] ❌ ssh-keygen failed: %v\n", res.Err)
		return "", nil
	}
	logger.Info("[INFO] ✅ SSH key generated: %s\n", public)
	logger.Msg("Add it to your Git host: pbcopy < %s\n", public)
	return public, nil
}

// commitSigning configures git to sign commits with the SSH key.
func commitSigning(ctx context.Context, env *Env, key string) error {
	if key == "" {
		return nil
	}
	if gitConfig(ctx, env, "commit.gpgsign") == "true" {
		logger.Info("[INFO] Commit signing is already enabled.\n")
		return nil
	}

	ok, err := env.Prompter.Confirm(ctx, "Sign your commits with this SSH key?")
	if err != nil || !ok {
		return err
	}

	cmd := strings.Join([]string{
		runner.Join("git", "config", "--global", "gpg.format", "ssh"),
		runner.Join("git", "config", "--global", "user.signingkey", key),
		runner.Join("git", "config", "--global", "commit.gpgsign", "true"),
	}, " && ")
	if res := env.Installer.Run(ctx, cmd); !res.OK() {
		logger.Error("[ERROR] ❌ Failed to configure commit signing: %v\n", res.Err)
		return nil
	}
	logger.Info("[INFO] ✅ Commits will be signed with %s\n", key)
	return nil
}

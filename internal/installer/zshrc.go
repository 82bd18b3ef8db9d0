package installer

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sergi/go-diff/diffmatchpatch"

	"devsetup/internal/config"
	"devsetup/internal/logger"
	"devsetup/internal/prompt"
)

//go:embed zshrc.snippet
var defaultSnippet string

const (
	zshrcAppend  = "append"
	zshrcDisplay = "display"

	// zshrcMarker opens the built-in snippet.
	zshrcMarker = "# --- devsetup ---"
)

var zshrcChoices = []prompt.Choice{
	{Key: zshrcAppend, Label: "Append to existing .zshrc file"},
	{Key: zshrcDisplay, Label: "Display the new config, I will manually copy-paste into .zshrc"},
}

// Zshrc backs up ~/.zshrc and then either merges the shell snippet into it
// or prints what the merged file would look like. A missing .zshrc is
// reported but does not stop the setup.
func Zshrc(ctx context.Context, env *Env) error {
	logger.Log("🔍 Checking if .zshrc exists...\n")

	if shell := detectShell(); shell != "zsh" {
		logger.Warn("[WARN] Your login shell is %s; .zshrc is only read by zsh.\n", shell)
	}

	rc := filepath.Join(env.Home, ".zshrc")
	existing, err := os.ReadFile(rc)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Error("[ERROR] ❌ .zshrc not found. Please create one before proceeding.\n")
			return nil
		}
		logger.Error("[ERROR] ❌ Failed to read %s: %v\n", rc, err)
		return nil
	}
	logger.Log("✅ Existing .zshrc found.\n")

	snippet, err := loadSnippet(env)
	if err != nil {
		logger.Error("[ERROR] ❌ %v\n", err)
		return nil
	}

	if env.DryRun {
		logger.Info("[INFO] Would back up %s\n", rc)
	} else {
		logger.Log("📦 Taking backup of .zshrc...\n")
		backup, err := backupZshrc(env.Home, time.Now())
		if err != nil {
			logger.Error("[ERROR] ❌ Backup failed, leaving .zshrc untouched: %v\n", err)
			return nil
		}
		logger.Info("[INFO] ✅ Backup complete: %s\n", backup)
	}

	choice, err := env.Prompter.SelectOne(ctx, "Choose how you want to proceed.", zshrcChoices)
	if err != nil {
		return fmt.Errorf("zshrc: %w", err)
	}

	if zshrcHasSnippet(string(existing), snippet) {
		logger.Info("[INFO] .zshrc already contains the devsetup snippet.\n")
		return nil
	}
	merged := mergeZshrc(string(existing), snippet)

	switch choice {
	case zshrcAppend:
		if env.DryRun {
			logger.Info("[INFO] Would append the snippet to %s\n", rc)
			logger.Msg("%s", renderDiff(string(existing), merged))
			return nil
		}
		logger.Log("➕ Appending to .zshrc...\n")
		if err := os.WriteFile(rc, []byte(merged), 0644); err != nil {
			logger.Error("[ERROR] ❌ Failed to append to .zshrc: %v\n", err)
			return nil
		}
		logger.Info("[INFO] ✅ Append complete.\n")
	default:
		logger.Info("[INFO] 📄 Displaying new .zshrc contents...\n")
		logger.Msg("%s\n", snippet)
		logger.Log("Changes to your .zshrc:\n")
		logger.Msg("%s", renderDiff(string(existing), merged))
	}
	return nil
}

func loadSnippet(env *Env) (string, error) {
	p := env.cfg().ZshrcSnippet
	if p == "" {
		return defaultSnippet, nil
	}
	data, err := os.ReadFile(config.ExpandHome(p, env.Home))
	if err != nil {
		return "", fmt.Errorf("failed to read zshrc snippet: %w", err)
	}
	return string(data), nil
}

// backupZshrc copies ~/.zshrc to ~/.zshrc.backup, or to a timestamped name
// when that backup already exists, and returns the path written.
func backupZshrc(home string, now time.Time) (string, error) {
	rc := filepath.Join(home, ".zshrc")
	backup := rc + ".backup"
	if fileExists(backup) {
		backup = fmt.Sprintf("%s.%d", backup, now.UnixMilli())
		logger.Log("📁 Backup already exists. Creating versioned backup at: %s\n", backup)
	}
	if err := copyFile(rc, backup, 0); err != nil {
		return "", err
	}
	return backup, nil
}

// zshrcHasSnippet reports whether the snippet was merged before: either its
// marker line or its whole text is already in the file.
func zshrcHasSnippet(existing, snippet string) bool {
	if strings.Contains(snippet, zshrcMarker) && strings.Contains(existing, zshrcMarker) {
		return true
	}
	body := strings.TrimSpace(snippet)
	return body == "" || strings.Contains(existing, body)
}

// mergeZshrc appends snippet to existing unchanged, as one block.
func mergeZshrc(existing, snippet string) string {
	var b strings.Builder
	b.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		b.WriteString("\n")
	}
	b.WriteString(snippet)
	if !strings.HasSuffix(snippet, "\n") {
		b.WriteString("\n")
	}
	return b.String()
}

// renderDiff prints a line diff of before and after with +/- markers.
// Unchanged lines are left out.
func renderDiff(before, after string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out strings.Builder
	for _, d := range diffs {
		var mark string
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			mark = "+ "
		case diffmatchpatch.DiffDelete:
			mark = "- "
		default:
			continue
		}
		for _, l := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			out.WriteString(mark + l + "\n")
		}
	}
	return out.String()
}

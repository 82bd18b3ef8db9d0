package installer

import (
	"context"
	"fmt"
	"runtime"

	"devsetup/internal/catalog"
	"devsetup/internal/config"
	"devsetup/internal/detect"
	"devsetup/internal/logger"
	"devsetup/internal/runner"
	"devsetup/internal/tasks"
)

// goos is swapped in tests.
var goos = runtime.GOOS

// Setup provisions the machine: Homebrew first, then one checklist per
// category, then Node.js, the JavaScript package managers, Git and .zshrc.
// Category installs are only queued while the handlers run; they are
// executed together in a single batch at the end.
//
// The returned error is set when a prompt failed or Homebrew is missing;
// install failures are only counted in the summary.
func Setup(ctx context.Context, env *Env) (tasks.Summary, error) {
	if goos != "darwin" && !env.SkipOSCheck {
		return tasks.Summary{}, fmt.Errorf("%w (running on %s)", ErrUnsupportedOS, goos)
	}
	if env.DryRun {
		logger.Warn("[WARN] Dry run: nothing will be installed or written.\n")
	}

	if err := Homebrew(ctx, env); err != nil {
		return tasks.Summary{}, err
	}

	cfg := env.cfg()
	q := &tasks.Queue{}

	for _, cat := range categories(cfg) {
		if err := handle(ctx, env, cat, q); err != nil {
			return tasks.Summary{}, err
		}
	}

	steps := []struct {
		key string
		run func(context.Context, *Env) error
	}{
		{StepNode, NodeRuntime},
		{catalog.JSPackageManagers.Key, func(ctx context.Context, env *Env) error {
			return handle(ctx, env, catalog.JSPackageManagers, q)
		}},
		{StepGit, Git},
		{StepZshrc, Zshrc},
	}
	for _, step := range steps {
		if cfg.Skipped(step.key) {
			logger.Info("[INFO] Skipping %s (listed under skip).\n", step.key)
			continue
		}
		if err := step.run(ctx, env); err != nil {
			return tasks.Summary{}, err
		}
	}

	summary := tasks.RunAll(ctx, q)
	tasks.Report(summary)

	logger.Info("[INFO] 🎉 Setup complete!\n")
	return summary, nil
}

// categories returns the catalog categories with the extra_fonts entries
// appended to the fonts category.
func categories(cfg *config.Config) []catalog.Category {
	cats := catalog.Categories()
	if len(cfg.ExtraFonts) == 0 {
		return cats
	}
	for i, cat := range cats {
		if cat.Key != catalog.FontsKey {
			continue
		}
		items := append([]catalog.Item(nil), cat.Items...)
		for _, f := range cfg.ExtraFonts {
			items = append(items, catalog.ArchiveFont(f.Name, f.URL, f.File))
		}
		cats[i].Items = items
	}
	return cats
}

func handle(ctx context.Context, env *Env, cat catalog.Category, q *tasks.Queue) error {
	if env.cfg().Skipped(cat.Key) {
		logger.Info("[INFO] Skipping %s (listed under skip).\n", cat.Title)
		return nil
	}
	return HandleCategory(ctx, env, cat, q)
}

// Status is the presence report of one group of items.
type Status struct {
	Key   string
	Title string
	detect.Partition
}

// Check reports what is installed without prompting or installing anything.
// The first entry covers the core tools set up in-line, followed by every
// category in catalog order.
func Check(ctx context.Context, r runner.Runner, home string) []Status {
	env := &Env{Home: home}
	core := []catalog.Item{
		{Name: "Homebrew", Key: "homebrew", CheckCommand: brewCheckCmd},
		{Name: "Git", Key: "git", CheckCommand: gitVersionCmd},
		{Name: "nvm", Key: "nvm", CheckCommand: env.withNvm("nvm -v")},
		{Name: "Node.js", Key: "node", CheckCommand: env.withNvm("node -v")},
	}

	out := []Status{{Key: "core", Title: "core tools", Partition: detect.Detect(ctx, r, core)}}
	for _, cat := range catalog.All() {
		out = append(out, Status{Key: cat.Key, Title: cat.Title, Partition: detect.Detect(ctx, r, cat.Items)})
	}
	return out
}

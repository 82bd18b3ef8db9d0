package installer

import (
	"context"
	"fmt"

	"devsetup/internal/catalog"
	"devsetup/internal/detect"
	"devsetup/internal/logger"
	"devsetup/internal/prompt"
	"devsetup/internal/tasks"
)

// HandleCategory offers the missing items of cat and queues one install task
// per chosen item. Nothing is installed here; the queue runs at the end of
// the setup. Only a prompt failure is returned.
func HandleCategory(ctx context.Context, env *Env, cat catalog.Category, q *tasks.Queue) error {
	logger.Log("🔍 Checking installed %s...\n", cat.Title)

	missing := detect.FindMissing(ctx, env.Checker, cat.Items)
	if len(missing) == 0 {
		logger.Info("[INFO] 🎉 All %s are already installed.\n", cat.Title)
		return nil
	}

	keys, err := env.Prompter.SelectMany(ctx, cat.Prompt, prompt.ChoicesFrom(missing))
	if err != nil {
		return fmt.Errorf("%s selection: %w", cat.Key, err)
	}
	if len(keys) == 0 {
		logger.Info("[INFO] No %s selected.\n", cat.Title)
		return nil
	}
	logger.Info("[INFO] Selected items: %v\n", keys)

	byKey := make(map[string]catalog.Item, len(missing))
	for _, item := range missing {
		byKey[item.Key] = item
	}

	for _, key := range keys {
		item, ok := byKey[key]
		if !ok {
			logger.Warn("[WARN] ⚠️ Skipping unknown %s choice: %s\n", cat.Key, key)
			continue
		}
		q.Add(installTask(env, item))
	}
	return nil
}

func installTask(env *Env, item catalog.Item) tasks.Task {
	return tasks.Task{
		Name:        "Installing " + item.Name,
		Description: item.Name + " Installation",
		Run: func(ctx context.Context) error {
			return install(ctx, env, item)
		},
	}
}

// install runs inside the batch, concurrently with other installs.
func install(ctx context.Context, env *Env, item catalog.Item) error {
	logger.Info("[INFO] 🔧 Installing %s...\n", item.Name)

	var err error
	if item.Archive != nil {
		err = installArchive(ctx, env, item)
	} else {
		res := env.Installer.Run(ctx, item.InstallCommand)
		if res.Output != "" {
			logger.Debug("[DEBUG] %s install output: %s\n", item.Name, res.Output)
		}
		err = res.Err
	}

	if err != nil {
		logger.Error("[ERROR] ❌ Failed to install %s: %v\n", item.Name, err)
		return fmt.Errorf("install %s: %w", item.Name, err)
	}
	logger.Info("[INFO] ✅ %s installed successfully.\n", item.Name)
	return nil
}

package installer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"devsetup/internal/archive"
	"devsetup/internal/catalog"
	"devsetup/internal/config"
	"devsetup/internal/logger"
)

// FontsDir is the expanded fonts_dir from the config.
func (e *Env) FontsDir() string {
	return config.ExpandHome(e.cfg().FontsDir, e.Home)
}

// installArchive downloads item's archive, unpacks it in a temp dir and
// copies the files matching its patterns into the fonts dir.
func installArchive(ctx context.Context, env *Env, item catalog.Item) error {
	src := item.Archive
	name := src.Name()
	dest := env.FontsDir()

	if !archive.Supported(name) {
		return fmt.Errorf("unsupported archive format: %s", name)
	}
	if env.DryRun {
		logger.Info("[INFO] Would download %s into %s\n", sourceLabel(env, src), dest)
		return nil
	}

	url := src.URL
	if url == "" {
		var err error
		url, err = releaseAssetURL(ctx, env.httpClient(), src.Repo, env.cfg().FontsRelease, src.Asset)
		if err != nil {
			return err
		}
	}

	tmp, err := os.MkdirTemp("", "devsetup-"+item.Key+"-*")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmp)

	archivePath := filepath.Join(tmp, name)
	logger.Info("[INFO] Downloading %s\n", url)
	if err := downloadFile(ctx, env.httpClient(), url, archivePath); err != nil {
		return err
	}

	files, err := archive.Extract(archivePath, filepath.Join(tmp, "extracted"))
	if err != nil {
		return fmt.Errorf("failed to extract archive: %w", err)
	}

	matched := archive.Match(files, src.Pattern)
	if len(matched) == 0 {
		return fmt.Errorf("no files matching %v in %s", src.Pattern, name)
	}

	for _, f := range matched {
		if err := copyFile(f, filepath.Join(dest, filepath.Base(f)), 0644); err != nil {
			return err
		}
	}
	logger.Debug("[DEBUG] Copied %d files from %s into %s\n", len(matched), name, dest)
	return nil
}

func sourceLabel(env *Env, src *catalog.ArchiveSource) string {
	if src.URL != "" {
		return src.URL
	}
	return fmt.Sprintf("%s from %s@%s", src.Asset, src.Repo, env.cfg().FontsRelease)
}

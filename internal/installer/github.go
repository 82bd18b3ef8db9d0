package installer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"devsetup/internal/logger"
)

// Base URLs of GitHub; tests point them at a local server.
var (
	githubAPI      = "https://api.github.com"
	githubDownload = "https://github.com"
)

// latestRelease is the tag that makes releaseAssetURL ask the API.
const latestRelease = "latest"

// gitHubRelease represents the structure of a GitHub release JSON response.
type gitHubRelease struct {
	TagName string `json:"tag_name"`
	Assets  []struct {
		Name               string `json:"name"`
		BrowserDownloadURL string `json:"browser_download_url"`
	} `json:"assets"`
}

// releaseAssetURL returns the download URL of asset in the given release of
// repo. A pinned tag maps straight to the download link; "latest" is
// resolved through the releases API.
func releaseAssetURL(ctx context.Context, client *http.Client, repo, tag, asset string) (string, error) {
	if tag != latestRelease {
		return fmt.Sprintf("%s/%s/releases/download/%s/%s", githubDownload, repo, tag, asset), nil
	}

	url := fmt.Sprintf("%s/repos/%s/releases/latest", githubAPI, repo)
	logger.Debug("[DEBUG] Fetching GitHub release from URL: %s\n", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("HTTP GET error fetching latest release of %s: %w", repo, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn("[WARN] Failed to close HTTP response body: %v\n", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("GitHub release fetch failed for %s: HTTP status %d", repo, resp.StatusCode)
	}

	var release gitHubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", fmt.Errorf("failed to decode GitHub release JSON for %s: %w", repo, err)
	}
	logger.Debug("[DEBUG] Release tag: %s with %d assets\n", release.TagName, len(release.Assets))

	for _, a := range release.Assets {
		if a.Name == asset {
			return a.BrowserDownloadURL, nil
		}
	}
	return "", fmt.Errorf("no asset named %s in release %s of %s", asset, release.TagName, repo)
}

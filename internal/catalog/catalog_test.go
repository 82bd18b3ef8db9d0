package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeysAreUniqueWithinEachCategory(t *testing.T) {
	for _, c := range All() {
		seen := map[string]bool{}
		for _, item := range c.Items {
			assert.False(t, seen[item.Key], "duplicate key %q in %s", item.Key, c.Key)
			seen[item.Key] = true
		}
	}
}

func TestEveryItemIsInstallable(t *testing.T) {
	for _, c := range All() {
		require.NotEmpty(t, c.Items, c.Key)
		for _, item := range c.Items {
			assert.NotEmpty(t, item.Name, "%s/%s", c.Key, item.Key)
			assert.NotEmpty(t, item.CheckCommand, "%s/%s", c.Key, item.Key)
			if item.Archive != nil {
				assert.True(t, item.Archive.URL != "" || (item.Archive.Repo != "" && item.Archive.Asset != ""), "%s/%s", c.Key, item.Key)
				assert.NotEmpty(t, item.Archive.Pattern, "%s/%s", c.Key, item.Key)
			} else {
				assert.NotEmpty(t, item.InstallCommand, "%s/%s", c.Key, item.Key)
			}
		}
	}
}

func TestCategoriesReturnsCopy(t *testing.T) {
	cats := Categories()
	cats[0] = Category{Key: "mutated"}
	assert.Equal(t, "browsers", Categories()[0].Key)
}

func TestLookup(t *testing.T) {
	c, ok := Lookup("js-package-managers")
	require.True(t, ok)
	assert.Equal(t, JSPackageManagers.Prompt, c.Prompt)

	_, ok = Lookup("spaceships")
	assert.False(t, ok)

	assert.Contains(t, Keys(), "fonts")
}

func TestArchiveSourceName(t *testing.T) {
	assert.Equal(t, "Hack.tar.xz", ArchiveSource{Repo: "ryanoasis/nerd-fonts", Asset: "Hack.tar.xz"}.Name())
	assert.Equal(t, "Mono.zip", ArchiveSource{URL: "https://example.com/dl/Mono.zip"}.Name())
}

func TestArchiveFont(t *testing.T) {
	item := ArchiveFont("Iosevka  Term", "https://fonts.example/IosevkaTerm.7z", "IosevkaTerm-Regular.ttf")

	assert.Equal(t, "iosevka-term", item.Key)
	assert.Equal(t, `ls "$DEVSETUP_FONTS_DIR/IosevkaTerm-Regular.ttf"`, item.CheckCommand)
	require.NotNil(t, item.Archive)
	assert.Equal(t, "IosevkaTerm.7z", item.Archive.Name())
	assert.Equal(t, []string{"*.ttf", "*.otf"}, item.Archive.Pattern)
}

package archive

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeZip(t *testing.T, path string, files map[string]string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, body := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
}

func writeTarGz(t *testing.T, path string, files map[string]string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	gw := gzip.NewWriter(f)
	tw := tar.NewWriter(gw)
	require.NoError(t, tw.WriteHeader(&tar.Header{Name: "fonts/", Typeflag: tar.TypeDir, Mode: 0755}))
	for name, body := range files {
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name:     name,
			Typeflag: tar.TypeReg,
			Mode:     0644,
			Size:     int64(len(body)),
		}))
		_, err := tw.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
}

func rel(t *testing.T, base string, files []string) []string {
	t.Helper()
	out := make([]string, 0, len(files))
	for _, f := range files {
		r, err := filepath.Rel(base, f)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(r))
	}
	sort.Strings(out)
	return out
}

func TestExtractZip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "FiraCode.zip")
	writeZip(t, src, map[string]string{
		"FiraCodeNerdFont-Regular.ttf": "regular",
		"README.md":                    "docs",
	})

	dest := filepath.Join(dir, "out")
	files, err := Extract(src, dest)
	require.NoError(t, err)
	assert.Equal(t, []string{"FiraCodeNerdFont-Regular.ttf", "README.md"}, rel(t, dest, files))

	data, err := os.ReadFile(filepath.Join(dest, "FiraCodeNerdFont-Regular.ttf"))
	require.NoError(t, err)
	assert.Equal(t, "regular", string(data))
}

func TestExtractTarGz(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "Hack.tar.gz")
	writeTarGz(t, src, map[string]string{
		"fonts/HackNerdFont-Regular.ttf": "regular",
		"fonts/HackNerdFont-Bold.ttf":    "bold",
	})

	dest := filepath.Join(dir, "out")
	files, err := Extract(src, dest)
	require.NoError(t, err)
	assert.Equal(t, []string{"fonts/HackNerdFont-Bold.ttf", "fonts/HackNerdFont-Regular.ttf"}, rel(t, dest, files))
}

func TestExtractFixtures(t *testing.T) {
	tests := []struct {
		archive string
		want    []string
		check   string
		body    string
	}{
		{
			archive: "fonts.tar.xz",
			want:    []string{"OFL.txt", "fonts/JetBrainsMonoNerdFont-Bold.ttf", "fonts/JetBrainsMonoNerdFont-Regular.ttf"},
			check:   "fonts/JetBrainsMonoNerdFont-Regular.ttf",
			body:    "jetbrains regular\n",
		},
		{
			archive: "fonts.7z",
			want:    []string{"HackNerdFont-Regular.ttf", "README.md"},
			check:   "HackNerdFont-Regular.ttf",
			body:    "hack regular\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.archive, func(t *testing.T) {
			dest := t.TempDir()
			files, err := Extract(filepath.Join("testdata", tt.archive), dest)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rel(t, dest, files))

			data, err := os.ReadFile(filepath.Join(dest, filepath.FromSlash(tt.check)))
			require.NoError(t, err)
			assert.Equal(t, tt.body, string(data))
		})
	}
}

func TestExtractRejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "evil.zip")
	writeZip(t, src, map[string]string{"../../escape.txt": "nope"})

	_, err := Extract(src, filepath.Join(dir, "out"))
	require.Error(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "..", "escape.txt"))
}

func TestExtractUnsupported(t *testing.T) {
	_, err := Extract(filepath.Join(t.TempDir(), "font.rar"), t.TempDir())
	assert.Error(t, err)
}

func TestSupported(t *testing.T) {
	for _, name := range []string{"a.zip", "a.7z", "a.tar", "a.tgz", "a.tar.gz", "a.tar.bz2", "A.TAR.XZ"} {
		assert.True(t, Supported(name), name)
	}
	assert.False(t, Supported("a.dmg"))
}

func TestMatch(t *testing.T) {
	files := []string{"/x/A-Regular.ttf", "/x/B.OTF", "/x/LICENSE", "/x/readme.md"}
	assert.Equal(t, []string{"/x/A-Regular.ttf", "/x/B.OTF"}, Match(files, []string{"*.ttf", "*.otf"}))
	assert.Empty(t, Match(files, []string{"*.woff"}))
}

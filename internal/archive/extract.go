// Package archive unpacks downloaded release archives.
package archive

import (
	"archive/tar"    // For reading .tar archives
	"archive/zip"    // For reading .zip archives
	"compress/bzip2" // For reading .bz2 compressed data
	"compress/gzip"  // For reading .gz compressed data
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip" // For reading .7z archives
	"github.com/xi2/xz"          // For reading .xz compressed data

	"devsetup/internal/logger"
)

// Supported reports whether Extract understands the file name's extension.
func Supported(name string) bool {
	_, ok := formatOf(name)
	return ok
}

func formatOf(name string) (string, bool) {
	lower := strings.ToLower(name)
	for _, ext := range []string{".tar.gz", ".tgz", ".tar.bz2", ".tar.xz", ".tar", ".zip", ".7z"} {
		if strings.HasSuffix(lower, ext) {
			return ext, true
		}
	}
	return "", false
}

// Extract unpacks src into dest and returns the paths of the regular files it wrote.
// Entries that would land outside dest are rejected.
func Extract(src, dest string) ([]string, error) {
	format, ok := formatOf(src)
	if !ok {
		return nil, fmt.Errorf("unsupported archive format: %s", src)
	}
	if err := os.MkdirAll(dest, 0755); err != nil {
		return nil, err
	}

	logger.Debug("[DEBUG] Extracting %s (%s) to %s\n", src, format, dest)
	switch format {
	case ".zip":
		return extractZip(src, dest)
	case ".7z":
		return extract7z(src, dest)
	default:
		return extractTar(src, dest, format)
	}
}

// target joins name onto dest and refuses anything escaping it.
func target(dest, name string) (string, error) {
	path := filepath.Join(dest, name)
	rel, err := filepath.Rel(dest, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return "", fmt.Errorf("archive entry %q escapes %s", name, dest)
	}
	return path, nil
}

func writeFile(path string, r io.Reader, mode os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if mode.Perm() == 0 {
		mode = 0644
	}
	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode.Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// extractTar handles tar and compressed tar variants
func extractTar(src, dest, format string) ([]string, error) {
	f, err := os.Open(src)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var reader io.Reader = f
	switch format {
	case ".tar.gz", ".tgz":
		gr, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer gr.Close()
		reader = gr
	case ".tar.bz2":
		reader = bzip2.NewReader(f)
	case ".tar.xz":
		xzr, err := xz.NewReader(f, 0)
		if err != nil {
			return nil, err
		}
		reader = xzr
	}

	var files []string
	tr := tar.NewReader(reader)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		path, err := target(dest, hdr.Name)
		if err != nil {
			return nil, err
		}
		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(path, 0755); err != nil {
				return nil, err
			}
		case tar.TypeReg:
			if err := writeFile(path, tr, os.FileMode(hdr.Mode)); err != nil {
				return nil, err
			}
			files = append(files, path)
		}
	}
	return files, nil
}

// extractZip extracts a .zip archive
func extractZip(src, dest string) ([]string, error) {
	r, err := zip.OpenReader(src)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var files []string
	for _, f := range r.File {
		path, err := target(dest, f.Name)
		if err != nil {
			return nil, err
		}
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(path, 0755); err != nil {
				return nil, err
			}
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		err = writeFile(path, rc, f.Mode())
		rc.Close()
		if err != nil {
			return nil, err
		}
		files = append(files, path)
	}
	return files, nil
}

// extract7z handles .7z extraction using the sevenzip library
func extract7z(src, dest string) ([]string, error) {
	r, err := sevenzip.OpenReader(src)
	if err != nil {
		return nil, fmt.Errorf("failed to open 7z archive: %w", err)
	}
	defer r.Close()

	var files []string
	for _, f := range r.File {
		path, err := target(dest, f.Name)
		if err != nil {
			return nil, err
		}
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(path, 0755); err != nil {
				return nil, err
			}
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		err = writeFile(path, rc, f.Mode())
		rc.Close()
		if err != nil {
			return nil, err
		}
		files = append(files, path)
	}
	return files, nil
}

// Match returns the files whose base name matches any of the glob patterns.
func Match(files []string, patterns []string) []string {
	var out []string
	for _, f := range files {
		base := strings.ToLower(filepath.Base(f))
		for _, p := range patterns {
			if ok, _ := filepath.Match(strings.ToLower(p), base); ok {
				out = append(out, f)
				break
			}
		}
	}
	return out
}

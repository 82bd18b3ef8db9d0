package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// DefaultPath returns $XDG_CONFIG_HOME/devsetup/config.yaml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "devsetup", "config.yaml")
}

// DefaultLogPath returns $XDG_STATE_HOME/devsetup/devsetup.log.
func DefaultLogPath() string {
	return filepath.Join(xdg.StateHome, "devsetup", "devsetup.log")
}

// LoadConfig reads the YAML config at path and fills unset fields with defaults.
// A missing file yields the defaults unless mustExist is set, as it is for a
// path the user passed explicitly. A malformed file is always an error.
func LoadConfig(path string, mustExist bool) (*Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		if mustExist {
			return nil, fmt.Errorf("config file %s not found", path)
		}
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", path, err)
	}

	// yaml leaves explicit empty values in place, put the defaults back
	if cfg.NodeVersion == "" {
		cfg.NodeVersion = DefaultNodeVersion
	}
	if cfg.NvmVersion == "" {
		cfg.NvmVersion = DefaultNvmVersion
	}
	if cfg.FontsDir == "" {
		cfg.FontsDir = DefaultFontsDir
	}
	if cfg.FontsRelease == "" {
		cfg.FontsRelease = DefaultFontsRelease
	}
	if cfg.LogFile == "auto" {
		cfg.LogFile = DefaultLogPath()
	}
	return cfg, nil
}

// Validate returns one warning per problem that does not prevent a run,
// such as an unknown category key under skip.
func (c *Config) Validate(knownCategories []string) []string {
	known := make(map[string]bool, len(knownCategories))
	for _, k := range knownCategories {
		known[k] = true
	}

	var warnings []string
	for _, s := range c.Skip {
		if !known[s] {
			warnings = append(warnings, fmt.Sprintf("unknown category %q under skip", s))
		}
	}
	for i, f := range c.ExtraFonts {
		if f.Name == "" || f.URL == "" || f.File == "" {
			warnings = append(warnings, fmt.Sprintf("extra_fonts[%d] needs name, url and file", i))
		}
	}
	if strings.TrimPrefix(c.NvmVersion, "v") == c.NvmVersion {
		warnings = append(warnings, fmt.Sprintf("nvm_version %q does not look like a release tag (vX.Y.Z)", c.NvmVersion))
	}
	return warnings
}

// LogPath returns the log file to open: override when set, else log_file,
// with a leading ~ expanded against home. Empty means no log file.
func (c *Config) LogPath(home, override string) string {
	path := c.LogFile
	if override != "" {
		path = override
	}
	return ExpandHome(path, home)
}

// ExpandHome replaces a leading ~ with home.
func ExpandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}

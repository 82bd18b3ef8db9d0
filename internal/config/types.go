package config

// Config is the operator's configuration, read from config.yaml.
// Every field has a usable default, so a missing file is not an error.
//   - NodeVersion: Node.js version handed to `nvm install`.
//   - NvmVersion: tag of the nvm install script.
//   - ZshrcSnippet: file appended to ~/.zshrc; empty means the built-in snippet.
//   - FontsDir: where font files are copied.
//   - FontsRelease: Nerd Fonts release tag, or "latest" to ask GitHub.
//   - Skip: category keys that are not offered at all (e.g. "design").
//   - LogFile: path of the structured JSON log; "auto" picks the XDG state dir.
//   - ExtraFonts: font archives offered next to the built-in Nerd Fonts.
type Config struct {
	NodeVersion  string   `yaml:"node_version"`
	NvmVersion   string   `yaml:"nvm_version"`
	ZshrcSnippet string   `yaml:"zshrc_snippet"`
	FontsDir     string   `yaml:"fonts_dir"`
	FontsRelease string   `yaml:"fonts_release"`
	Skip         []string `yaml:"skip"`
	LogFile      string   `yaml:"log_file"`
	ExtraFonts   []Font   `yaml:"extra_fonts"`
}

// Font is a font archive downloaded from URL (zip, tar.gz, tar.xz or 7z).
// File names one font file it installs, used to tell whether it is present.
type Font struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
	File string `yaml:"file"`
}

const (
	DefaultNodeVersion  = "22"
	DefaultNvmVersion   = "v0.40.3"
	DefaultFontsDir     = "~/Library/Fonts"
	DefaultFontsRelease = "v3.4.0"
)

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		NodeVersion:  DefaultNodeVersion,
		NvmVersion:   DefaultNvmVersion,
		FontsDir:     DefaultFontsDir,
		FontsRelease: DefaultFontsRelease,
	}
}

// Skipped reports whether the category key is listed under skip.
func (c *Config) Skipped(key string) bool {
	for _, s := range c.Skip {
		if s == key {
			return true
		}
	}
	return false
}

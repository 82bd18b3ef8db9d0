package installer

import (
	"errors"
	"net/http"

	"devsetup/internal/config"
	"devsetup/internal/prompt"
	"devsetup/internal/runner"
)

var (
	// ErrPackageManagerMissing stops the run: nothing else can be installed without Homebrew.
	ErrPackageManagerMissing = errors.New("homebrew is not installed")
	// ErrUnsupportedOS is returned when not running on macOS.
	ErrUnsupportedOS = errors.New("devsetup only runs on macOS")
)

// Keys of the in-line steps; they can be listed under skip like category keys.
const (
	StepNode  = "node"
	StepGit   = "git"
	StepZshrc = "zshrc"
)

// Env carries everything a handler needs.
//   - Checker runs presence checks and is never a dry run.
//   - Installer runs commands that change the machine.
type Env struct {
	Checker     runner.Runner
	Installer   runner.Runner
	Prompter    prompt.Prompter
	Config      *config.Config
	Home        string
	HTTP        *http.Client
	DryRun      bool
	SkipOSCheck bool
}

func (e *Env) httpClient() *http.Client {
	if e.HTTP != nil {
		return e.HTTP
	}
	return http.DefaultClient
}

func (e *Env) cfg() *config.Config {
	if e.Config != nil {
		return e.Config
	}
	return config.Default()
}

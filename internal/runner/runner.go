// Package runner executes shell commands and reports their outcome as a value.
// Run never returns a bare error or panics; it returns a Result whose Err is
// nil on success.
package runner

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"

	"devsetup/internal/logger"
)

// Runner runs a shell command line.
type Runner interface {
	Run(ctx context.Context, command string) Result
}

// Result is the outcome of one command. Output is stdout with surrounding
// whitespace removed.
type Result struct {
	Output string
	Err    error
}

// OK reports whether the command exited successfully.
func (r Result) OK() bool {
	return r.Err == nil
}

// CommandError is returned in Result.Err when a command cannot be started or
// exits non-zero.
type CommandError struct {
	Command string
	Stderr  string
	Err     error
}

func (e *CommandError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("command %q failed: %v: %s", e.Command, e.Err, e.Stderr)
	}
	return fmt.Sprintf("command %q failed: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Shell runs commands through `sh -c`.
//   - Path: shell binary, /bin/sh when empty.
//   - Env: extra KEY=VALUE pairs appended to the process environment.
type Shell struct {
	Path string
	Env  []string
}

// Run executes command and captures stdout and stderr separately.
func (s Shell) Run(ctx context.Context, command string) Result {
	path := s.Path
	if path == "" {
		path = "/bin/sh"
	}

	cmd := exec.CommandContext(ctx, path, "-c", command)
	if len(s.Env) > 0 {
		cmd.Env = append(os.Environ(), s.Env...)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debug("[DEBUG] Running command: %s\n", command)
	if err := cmd.Run(); err != nil {
		cerr := &CommandError{
			Command: command,
			Stderr:  strings.TrimSpace(stderr.String()),
			Err:     err,
		}
		logger.Debug("[DEBUG] %v\n", cerr)
		return Result{Output: strings.TrimSpace(stdout.String()), Err: cerr}
	}

	return Result{Output: strings.TrimSpace(stdout.String())}
}

// DryRun reports what it would run and always succeeds.
type DryRun struct{}

func (DryRun) Run(_ context.Context, command string) Result {
	logger.Info("[INFO] Would run: %s\n", command)
	return Result{Output: "would run: " + command}
}

// Join quotes args so the result is safe to pass to Run as one command line.
func Join(args ...string) string {
	return shellquote.Join(args...)
}

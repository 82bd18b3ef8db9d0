package installer

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"devsetup/internal/logger"
	"devsetup/internal/prompt"
	"devsetup/internal/runner"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	restore := logger.SetOutput(&buf)
	t.Cleanup(restore)
	return &buf
}

// fakeRunner answers commands from a table and records every call.
// Commands missing from the table fail like an unknown binary would.
type fakeRunner struct {
	mu      sync.Mutex
	results map[string]runner.Result
	calls   []string
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{results: map[string]runner.Result{}}
}

func (f *fakeRunner) ok(command, output string) *fakeRunner {
	f.results[command] = runner.Result{Output: output}
	return f
}

func (f *fakeRunner) fail(command string) *fakeRunner {
	f.results[command] = runner.Result{Err: errors.New("exit status 1")}
	return f
}

func (f *fakeRunner) Run(_ context.Context, command string) runner.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, command)
	if res, ok := f.results[command]; ok {
		return res
	}
	return runner.Result{Err: errors.New("command not found")}
}

func (f *fakeRunner) ran(command string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if c == command {
			return true
		}
	}
	return false
}

func (f *fakeRunner) ranContaining(sub string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, c := range f.calls {
		if strings.Contains(c, sub) {
			out = append(out, c)
		}
	}
	return out
}

// installRunner succeeds on every command unless it is listed as failing.
type installRunner struct {
	fakeRunner
	failing map[string]bool
}

func newInstallRunner(failing ...string) *installRunner {
	r := &installRunner{failing: map[string]bool{}}
	for _, c := range failing {
		r.failing[c] = true
	}
	return r
}

func (r *installRunner) Run(_ context.Context, command string) runner.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, command)
	if r.failing[command] {
		return runner.Result{Err: errors.New("exit status 1")}
	}
	return runner.Result{}
}

// scriptedPrompter answers prompts by their label. A prompt without an
// answer fails the test through errUnexpected.
type scriptedPrompter struct {
	selections map[string][]string
	choices    map[string]string
	confirms   map[string]bool
	inputs     map[string]string
	err        error

	asked []string
}

var errUnexpected = errors.New("unexpected prompt")

func newPrompter() *scriptedPrompter {
	return &scriptedPrompter{
		selections: map[string][]string{},
		choices:    map[string]string{},
		confirms:   map[string]bool{},
		inputs:     map[string]string{},
	}
}

func (p *scriptedPrompter) SelectMany(_ context.Context, label string, choices []prompt.Choice) ([]string, error) {
	p.asked = append(p.asked, label)
	if p.err != nil {
		return nil, p.err
	}
	keys, ok := p.selections[label]
	if !ok {
		return nil, errUnexpected
	}
	return keys, nil
}

func (p *scriptedPrompter) SelectOne(_ context.Context, label string, _ []prompt.Choice) (string, error) {
	p.asked = append(p.asked, label)
	if p.err != nil {
		return "", p.err
	}
	key, ok := p.choices[label]
	if !ok {
		return "", errUnexpected
	}
	return key, nil
}

func (p *scriptedPrompter) Confirm(_ context.Context, message string) (bool, error) {
	p.asked = append(p.asked, message)
	if p.err != nil {
		return false, p.err
	}
	yes, ok := p.confirms[message]
	if !ok {
		return false, errUnexpected
	}
	return yes, nil
}

func (p *scriptedPrompter) Input(_ context.Context, message string, validate func(string) error) (string, error) {
	p.asked = append(p.asked, message)
	if p.err != nil {
		return "", p.err
	}
	v, ok := p.inputs[message]
	if !ok {
		return "", errUnexpected
	}
	if validate != nil {
		if err := validate(v); err != nil {
			return "", err
		}
	}
	return v, nil
}

// Package prompt renders the interactive questions devsetup asks the operator.
package prompt

import (
	"context"
	"errors"

	"github.com/mattn/go-isatty"

	"devsetup/internal/catalog"
)

var (
	// ErrAborted is returned when the operator quits a prompt (ctrl+c, esc).
	ErrAborted = errors.New("prompt aborted by operator")
	// ErrNotInteractive is returned when stdin is not a terminal.
	ErrNotInteractive = errors.New("an interactive terminal is required")
)

// Choice is one entry of a selection prompt.
type Choice struct {
	Key         string
	Label       string
	Description string
}

// Prompter asks the operator questions. Implementations return ErrAborted
// when the operator quits.
type Prompter interface {
	// SelectMany returns the keys the operator ticked, possibly none.
	SelectMany(ctx context.Context, label string, choices []Choice) ([]string, error)
	// SelectOne returns the key of the single chosen entry.
	SelectOne(ctx context.Context, label string, choices []Choice) (string, error)
	Confirm(ctx context.Context, message string) (bool, error)
	Input(ctx context.Context, message string, validate func(string) error) (string, error)
}

// ChoicesFrom adapts catalog items for SelectMany.
func ChoicesFrom(items []catalog.Item) []Choice {
	out := make([]Choice, 0, len(items))
	for _, item := range items {
		out = append(out, Choice{Key: item.Key, Label: item.Name, Description: item.Description})
	}
	return out
}

// RequireTerminal fails with ErrNotInteractive unless fd is a terminal.
func RequireTerminal(fd uintptr) error {
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return nil
	}
	return ErrNotInteractive
}

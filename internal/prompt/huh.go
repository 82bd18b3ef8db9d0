package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

// Huh implements Prompter with charmbracelet/huh forms.
type Huh struct {
	// Accessible renders plain-text prompts for screen readers.
	Accessible bool
}

// New returns the terminal prompter.
func New(accessible bool) *Huh {
	return &Huh{Accessible: accessible}
}

func (h *Huh) run(ctx context.Context, field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(huh.ThemeCharm()).
		WithAccessible(h.Accessible)
	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return fmt.Errorf("prompt failed: %w", err)
	}
	return nil
}

func options(choices []Choice) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(choices))
	for _, c := range choices {
		opts = append(opts, huh.NewOption(optionLabel(c), c.Key))
	}
	return opts
}

func optionLabel(c Choice) string {
	if c.Description == "" {
		return c.Label
	}
	return fmt.Sprintf("%s - %s", c.Label, c.Description)
}

func (h *Huh) SelectMany(ctx context.Context, label string, choices []Choice) ([]string, error) {
	var selected []string
	field := huh.NewMultiSelect[string]().
		Title(label).
		Description("space to toggle, enter to confirm").
		Options(options(choices)...).
		Value(&selected)
	if err := h.run(ctx, field); err != nil {
		return nil, err
	}
	return selected, nil
}

func (h *Huh) SelectOne(ctx context.Context, label string, choices []Choice) (string, error) {
	var selected string
	field := huh.NewSelect[string]().
		Title(label).
		Options(options(choices)...).
		Value(&selected)
	if err := h.run(ctx, field); err != nil {
		return "", err
	}
	return selected, nil
}

func (h *Huh) Confirm(ctx context.Context, message string) (bool, error) {
	var ok bool
	field := huh.NewConfirm().
		Title(message).
		Affirmative("Yes").
		Negative("No").
		Value(&ok)
	if err := h.run(ctx, field); err != nil {
		return false, err
	}
	return ok, nil
}

func (h *Huh) Input(ctx context.Context, message string, validate func(string) error) (string, error) {
	var value string
	field := huh.NewInput().
		Title(message).
		Value(&value)
	if validate != nil {
		field = field.Validate(validate)
	}
	if err := h.run(ctx, field); err != nil {
		return "", err
	}
	return value, nil
}

// Package prompt provides the interactive prompts the wizards ask with.
//
// Each prompt runs its own bubbletea program on stderr so stdout stays
// free for command output. A prompt ends with an accepted value, a request
// to go back (only offered when the position allows it) or a cancel when
// the user dismisses it.
package prompt

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"

	"github.com/raphi011/filebatch/internal/wizard"
)

// Result is the answer to a prompt. Value is only meaningful when Signal
// is wizard.Next.
type Result[T any] struct {
	Value  T
	Signal wizard.Signal
}

// Option is an entry of a Select prompt.
type Option struct {
	Label       string
	Description string // shown next to the label
	Value       any
}

// Terminal runs prompts on a terminal. The zero value uses stdin and
// stderr.
type Terminal struct {
	In  io.Reader
	Out io.Writer
}

// Select runs a selection prompt on the default terminal.
func Select(ctx context.Context, cfg SelectConfig) (Result[Option], error) {
	return Terminal{}.Select(ctx, cfg)
}

// Input runs a text prompt on the default terminal.
func Input(ctx context.Context, cfg InputConfig) (Result[string], error) {
	return Terminal{}.Input(ctx, cfg)
}

// run starts a program for m and blocks until it quits or ctx is done.
func (t Terminal) run(ctx context.Context, m tea.Model) (tea.Model, error) {
	out := t.Out
	if out == nil {
		out = os.Stderr
	}

	opts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithOutput(out),
		// Detect color profile for the output (handles pipes, NO_COLOR, etc.)
		tea.WithColorProfile(colorprofile.Detect(out, os.Environ())),
	}
	if t.In != nil {
		opts = append(opts, tea.WithInput(t.In))
	}

	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("prompt: %w", err)
	}
	return final, nil
}

// header renders the title with the display position.
func header(title string, pos wizard.Position) string {
	h := titleStyle().Render(title)
	if pos.Total > 1 {
		h += " " + positionStyle().Render(fmt.Sprintf("(%d/%d)", pos.Step, pos.Total))
	}
	return h
}

// help renders the key hints of a prompt.
func help(pos wizard.Position, keys ...string) string {
	if pos.CanGoBack {
		keys = append(keys, "shift+tab back")
	}
	keys = append(keys, "esc cancel")
	return helpStyle().Render(strings.Join(keys, " • "))
}

// isBack reports whether key asks for the previous step.
func isBack(key string) bool {
	return key == "shift+tab" || key == "alt+left"
}

func isCancel(key string) bool {
	return key == "esc" || key == "ctrl+c"
}

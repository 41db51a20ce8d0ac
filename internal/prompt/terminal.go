package prompt

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
)

// ErrNotInteractive is returned when a prompt would be shown without a
// terminal to answer it.
var ErrNotInteractive = errors.New("interactive prompts need a terminal")

// IsTerminal reports whether f is a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// RequireTerminal fails unless stdin is a terminal.
func RequireTerminal() error {
	if !IsTerminal(os.Stdin) {
		return ErrNotInteractive
	}
	return nil
}

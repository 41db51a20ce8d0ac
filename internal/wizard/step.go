package wizard

import "context"

// Signal is what a step reports back to the wizard after it executed.
type Signal int

const (
	// Next advances to the following step.
	Next Signal = iota
	// Back returns to the previous step that was not skipped.
	Back
	// Cancel ends the run immediately.
	Cancel
)

func (s Signal) String() string {
	switch s {
	case Next:
		return "next"
	case Back:
		return "back"
	case Cancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// Step is one entry of a wizard.
type Step struct {
	// Name identifies the step in debug output.
	Name string

	// Execute asks for the step's value, usually through a prompt, and
	// stores it on the wizard. A non-nil error aborts the run.
	Execute func(ctx context.Context) (Signal, error)

	// ShouldSkip decides, from the current state, whether the step is
	// needed. Nil means the step is never skipped.
	ShouldSkip func(state Form) bool

	// WhenSkip runs each time the step is skipped, typically to fill in
	// the value the user was not asked for.
	WhenSkip func() error
}

// Position is the step number as shown to the user. Skipped steps are not
// counted.
type Position struct {
	Step      int
	Total     int
	CanGoBack bool
}

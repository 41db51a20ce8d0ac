// Package wizard runs an ordered list of steps that fill a Form.
//
// Steps can be skipped based on the state collected so far, the user can
// go back to the previous step or cancel at any time. The step numbers
// shown to the user leave out skipped steps.
package wizard

import (
	"context"
	"errors"
	"fmt"

	"github.com/raphi011/filebatch/internal/log"
)

// ErrUnknownSignal is returned when a step reports a Signal the wizard
// does not handle.
var ErrUnknownSignal = errors.New("unknown step signal")

// Status is the outcome of a run.
type Status int

const (
	Running Status = iota
	Completed
	Aborted
	Failed
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Aborted:
		return "aborted"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Wizard walks through its steps, one at a time.
// A Wizard is owned by a single goroutine.
type Wizard struct {
	steps       []Step
	state       Form
	currentStep int          // 1-indexed
	totalSteps  int          // len(steps) at the start of Run
	skipped     map[int]bool // step number -> skipped during this run
	status      Status
}

// New creates a wizard starting from the given state.
func New(initial Form) *Wizard {
	return &Wizard{
		state:       initial,
		currentStep: 1,
		skipped:     make(map[int]bool),
	}
}

// AddStep appends a step. Steps are numbered from 1 in the order added.
func (w *Wizard) AddStep(step Step) *Wizard {
	w.steps = append(w.steps, step)
	w.totalSteps = len(w.steps)
	return w
}

// Steps returns the number of steps.
func (w *Wizard) Steps() int {
	return len(w.steps)
}

// State returns the current form.
func (w *Wizard) State() Form {
	return w.state
}

// Set replaces the state with a copy that has key set to value.
func (w *Wizard) Set(key string, value any) error {
	next, err := w.state.With(key, value)
	if err != nil {
		return err
	}
	w.state = next
	return nil
}

// Run executes the steps until the last one completes, a step cancels or a
// step fails. The accumulated state is returned in every case; a cancelled
// run is not an error; check Status or the required fields of the form.
func (w *Wizard) Run(ctx context.Context) (Form, error) {
	l := log.FromContext(ctx)

	w.currentStep = 1
	w.totalSteps = len(w.steps)
	w.skipped = make(map[int]bool, w.totalSteps)
	w.status = Running

	for w.currentStep <= w.totalSteps {
		if err := ctx.Err(); err != nil {
			w.status = Failed
			return w.state, err
		}

		step := w.steps[w.currentStep-1]

		if step.ShouldSkip != nil && step.ShouldSkip(w.state) {
			l.Debug("skip step", "step", w.currentStep, "name", step.Name)
			if step.WhenSkip != nil {
				if err := step.WhenSkip(); err != nil {
					w.status = Failed
					return w.state, fmt.Errorf("skip step %d (%s): %w", w.currentStep, step.Name, err)
				}
			}
			w.skipped[w.currentStep] = true
			w.currentStep++
			continue
		}
		// A step skipped earlier may be needed now that the state changed.
		delete(w.skipped, w.currentStep)

		l.Debug("enter step", "step", w.currentStep, "name", step.Name,
			"display", w.DisplayStep(), "total", w.DisplayTotalSteps())

		signal, err := step.Execute(ctx)
		if err != nil {
			w.status = Failed
			return w.state, fmt.Errorf("step %d (%s): %w", w.currentStep, step.Name, err)
		}

		switch signal {
		case Next:
			w.currentStep++
		case Back:
			w.back()
			l.Debug("back", "to", w.currentStep)
		case Cancel:
			l.Debug("cancel", "step", w.currentStep, "name", step.Name)
			w.status = Aborted
			return w.state, nil
		default:
			w.status = Failed
			return w.state, fmt.Errorf("step %d (%s): %w: %d", w.currentStep, step.Name, ErrUnknownSignal, int(signal))
		}
	}

	w.status = Completed
	return w.state, nil
}

// back moves to the previous step, passing over steps skipped in this run.
// Going back from the first step stays on it.
func (w *Wizard) back() {
	if w.currentStep <= 1 {
		return
	}
	w.currentStep--
	for w.currentStep > 1 && w.skipped[w.currentStep] {
		w.currentStep--
	}
}

// SkippedStepsUntilCurrent counts skipped steps before the current one.
func (w *Wizard) SkippedStepsUntilCurrent() int {
	n := 0
	for step, skipped := range w.skipped {
		if skipped && step < w.currentStep {
			n++
		}
	}
	return n
}

// DisplayStep is the current step number as shown to the user.
func (w *Wizard) DisplayStep() int {
	return w.currentStep - w.SkippedStepsUntilCurrent()
}

// DisplayTotalSteps is the number of steps the user interacts with.
func (w *Wizard) DisplayTotalSteps() int {
	n := 0
	for _, skipped := range w.skipped {
		if skipped {
			n++
		}
	}
	return w.totalSteps - n
}

// CanGoBack reports whether there is an earlier step the user can return to.
func (w *Wizard) CanGoBack() bool {
	return w.DisplayStep() > 1
}

// Position returns the display position for prompts.
func (w *Wizard) Position() Position {
	return Position{
		Step:      w.DisplayStep(),
		Total:     w.DisplayTotalSteps(),
		CanGoBack: w.CanGoBack(),
	}
}

// CurrentStep returns the 1-indexed step being executed.
func (w *Wizard) CurrentStep() int {
	return w.currentStep
}

// TotalSteps returns the number of steps of the current run.
func (w *Wizard) TotalSteps() int {
	return w.totalSteps
}

// Skipped reports whether step was skipped in the current run.
func (w *Wizard) Skipped(step int) bool {
	return w.skipped[step]
}

// Status returns the outcome of the last run.
func (w *Wizard) Status() Status {
	return w.status
}

// Aborted reports whether the last run was cancelled.
func (w *Wizard) Aborted() bool {
	return w.status == Aborted
}

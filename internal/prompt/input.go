package prompt

import (
	"context"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/raphi011/filebatch/internal/wizard"
)

// maxSuggestions is the number of suggestions listed below the input.
const maxSuggestions = 5

// InputConfig configures an Input prompt.
type InputConfig struct {
	Title       string
	Prompt      string // line shown above the input
	Placeholder string
	Value       string // initial value
	Position    wizard.Position

	// Suggest returns completions for the current value. Tab accepts the
	// first one.
	Suggest func(value string) []string
}

type inputModel struct {
	cfg         InputConfig
	input       textinput.Model
	suggestions []string
	signal      wizard.Signal
	done        bool
}

func newInputModel(cfg InputConfig) inputModel {
	ti := textinput.New()
	ti.Placeholder = cfg.Placeholder
	ti.CharLimit = 256
	ti.SetWidth(60)
	ti.SetValue(cfg.Value)
	ti.CursorEnd()
	ti.Focus()

	m := inputModel{cfg: cfg, input: ti, signal: wizard.Cancel}
	m.suggest()
	return m
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch k := key.String(); {
		case isCancel(k):
			return m.finish(wizard.Cancel)
		case isBack(k):
			if m.cfg.Position.CanGoBack {
				return m.finish(wizard.Back)
			}
			return m, nil
		case k == "enter":
			return m.finish(wizard.Next)
		case k == "tab":
			if len(m.suggestions) > 0 {
				m.input.SetValue(m.suggestions[0])
				m.input.CursorEnd()
				m.suggest()
			}
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.suggest()
	}
	return m, cmd
}

func (m inputModel) finish(signal wizard.Signal) (tea.Model, tea.Cmd) {
	m.signal = signal
	m.done = true
	return m, tea.Quit
}

func (m *inputModel) suggest() {
	if m.cfg.Suggest == nil {
		return
	}
	s := m.cfg.Suggest(m.input.Value())
	if len(s) > maxSuggestions {
		s = s[:maxSuggestions]
	}
	m.suggestions = s
}

func (m inputModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}

	var b strings.Builder
	b.WriteString(header(m.cfg.Title, m.cfg.Position) + "\n")
	if m.cfg.Prompt != "" {
		b.WriteString(optionNormalStyle().Render(m.cfg.Prompt) + "\n")
	}
	b.WriteString(m.input.View() + "\n")

	for _, s := range m.suggestions {
		b.WriteString(optionDescriptionStyle().Render("  "+s) + "\n")
	}

	keys := []string{"enter confirm"}
	if len(m.suggestions) > 0 {
		keys = append(keys, "tab complete")
	}
	b.WriteString(help(m.cfg.Position, keys...))
	return tea.NewView(frameStyle().Render(b.String()))
}

func (m inputModel) result() Result[string] {
	switch m.signal {
	case wizard.Next:
		return Result[string]{Value: strings.TrimSpace(m.input.Value()), Signal: wizard.Next}
	case wizard.Back:
		return Result[string]{Signal: wizard.Back}
	default:
		return Result[string]{Signal: wizard.Cancel}
	}
}

// Input asks for a line of text. An empty answer is accepted; callers
// decide whether it is valid.
func (t Terminal) Input(ctx context.Context, cfg InputConfig) (Result[string], error) {
	final, err := t.run(ctx, newInputModel(cfg))
	if err != nil {
		return Result[string]{}, err
	}
	return final.(inputModel).result(), nil
}

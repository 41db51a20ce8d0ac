package prompt

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
)

// ConfirmConfig configures a Confirm prompt.
type ConfirmConfig struct {
	Title  string
	Detail []string // lines listed below the title
}

// ConfirmResult holds the result of a confirmation prompt.
type ConfirmResult struct {
	Confirmed bool
	Cancelled bool
}

type confirmModel struct {
	cfg       ConfirmConfig
	confirmed bool
	done      bool
	cancelled bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch k := key.String(); {
	case k == "y" || k == "Y":
		m.confirmed = true
	case k == "n" || k == "N" || k == "enter": // default no
		m.confirmed = false
	case isCancel(k) || k == "q":
		m.cancelled = true
	default:
		return m, nil
	}
	m.done = true
	return m, tea.Quit
}

func (m confirmModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}

	var b strings.Builder
	b.WriteString(titleStyle().Render(m.cfg.Title) + " " + helpStyle().Render("[y/N]") + "\n")
	for _, line := range m.cfg.Detail {
		b.WriteString(optionDescriptionStyle().Render("  "+line) + "\n")
	}
	return tea.NewView(b.String())
}

// Confirm shows a yes/no prompt and returns the user's choice.
// The default answer is "no" if the user presses enter without input.
func (t Terminal) Confirm(ctx context.Context, cfg ConfirmConfig) (ConfirmResult, error) {
	final, err := t.run(ctx, confirmModel{cfg: cfg})
	if err != nil {
		return ConfirmResult{}, err
	}
	m := final.(confirmModel)
	return ConfirmResult{
		Confirmed: m.confirmed,
		Cancelled: m.cancelled,
	}, nil
}

package prompt

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/sahilm/fuzzy"

	"github.com/raphi011/filebatch/internal/ui/styles"
	"github.com/raphi011/filebatch/internal/wizard"
)

// maxVisible is the number of options shown at once.
const maxVisible = 10

// SelectConfig configures a Select prompt.
type SelectConfig struct {
	Title       string
	Placeholder string // shown while the filter is empty
	Options     []Option
	Active      string // label of the option the cursor starts on
	Position    wizard.Position
}

// optionSource implements fuzzy.Source for options.
type optionSource []Option

func (s optionSource) String(i int) string { return s[i].Label }
func (s optionSource) Len() int            { return len(s) }

type selectModel struct {
	cfg      SelectConfig
	filter   string
	filtered []fuzzy.Match
	cursor   int // position in filtered
	chosen   int // index into cfg.Options, -1 if none
	signal   wizard.Signal
	done     bool
}

func newSelectModel(cfg SelectConfig) selectModel {
	m := selectModel{cfg: cfg, chosen: -1, signal: wizard.Cancel}
	m.applyFilter()
	for i, match := range m.filtered {
		if cfg.Active != "" && cfg.Options[match.Index].Label == cfg.Active {
			m.cursor = i
			break
		}
	}
	return m
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch k := key.String(); {
	case isCancel(k):
		return m.finish(wizard.Cancel)
	case isBack(k):
		if m.cfg.Position.CanGoBack {
			return m.finish(wizard.Back)
		}
	case k == "enter":
		if len(m.filtered) > 0 {
			m.chosen = m.filtered[m.cursor].Index
			return m.finish(wizard.Next)
		}
	case k == "up" || k == "ctrl+p":
		if m.cursor > 0 {
			m.cursor--
		}
	case k == "down" || k == "ctrl+n":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}
	case k == "backspace":
		if m.filter != "" {
			m.filter = dropLastRune(m.filter)
			m.applyFilter()
		}
	case k == "alt+backspace":
		if m.filter != "" {
			m.filter = deleteLastWord(m.filter)
			m.applyFilter()
		}
	default:
		if text := filterRunes(key.Text); text != "" {
			m.filter += text
			m.applyFilter()
		}
	}
	return m, nil
}

func (m selectModel) finish(signal wizard.Signal) (tea.Model, tea.Cmd) {
	m.signal = signal
	m.done = true
	return m, tea.Quit
}

func (m *selectModel) applyFilter() {
	if m.filter == "" {
		m.filtered = make([]fuzzy.Match, len(m.cfg.Options))
		for i, o := range m.cfg.Options {
			m.filtered[i] = fuzzy.Match{Str: o.Label, Index: i}
		}
	} else {
		// results are sorted by score, best first
		m.filtered = fuzzy.FindFrom(m.filter, optionSource(m.cfg.Options))
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = max(len(m.filtered)-1, 0)
	}
}

func (m selectModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}

	var b strings.Builder
	b.WriteString(header(m.cfg.Title, m.cfg.Position) + "\n")

	if m.filter == "" && m.cfg.Placeholder != "" {
		b.WriteString(optionDescriptionStyle().Render(m.cfg.Placeholder) + "\n\n")
	} else {
		b.WriteString(filterStyle().Render("> "+m.filter) + "\n\n")
	}

	start := 0
	if m.cursor >= maxVisible {
		start = m.cursor - maxVisible + 1
	}
	end := min(start+maxVisible, len(m.filtered))

	if start > 0 {
		b.WriteString(optionNormalStyle().Render("  ↑ more above") + "\n")
	}
	for i := start; i < end; i++ {
		match := m.filtered[i]
		opt := m.cfg.Options[match.Index]
		selected := i == m.cursor

		cursor := "  "
		if selected {
			cursor = styles.CursorSymbol + " "
		}
		line := cursor + renderLabel(opt.Label, match.MatchedIndexes, selected)
		if opt.Description != "" {
			line += "  " + optionDescriptionStyle().Render(opt.Description)
		}
		b.WriteString(line + "\n")
	}
	if end < len(m.filtered) {
		b.WriteString(optionNormalStyle().Render(fmt.Sprintf("  ↓ %d more", len(m.filtered)-end)) + "\n")
	}
	if len(m.filtered) == 0 {
		b.WriteString(optionDescriptionStyle().Render("  no matches") + "\n")
	}

	b.WriteString(help(m.cfg.Position, "↑/↓ move", "enter select", "type to filter"))
	return tea.NewView(frameStyle().Render(b.String()))
}

// renderLabel highlights the fuzzy-matched characters of label.
// matched holds byte offsets into label.
func renderLabel(label string, matched []int, selected bool) string {
	base := optionNormalStyle()
	if selected {
		base = optionSelectedStyle()
	}
	if len(matched) == 0 {
		return base.Render(label)
	}

	set := make(map[int]bool, len(matched))
	for _, i := range matched {
		set[i] = true
	}
	var b strings.Builder
	for i, r := range label {
		if set[i] {
			b.WriteString(matchHighlightStyle().Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}

// result converts the final model into a Result.
func (m selectModel) result() Result[Option] {
	if m.signal == wizard.Next && m.chosen >= 0 {
		return Result[Option]{Value: m.cfg.Options[m.chosen], Signal: wizard.Next}
	}
	if m.signal == wizard.Back {
		return Result[Option]{Signal: wizard.Back}
	}
	return Result[Option]{Signal: wizard.Cancel}
}

// Select shows a filterable list and returns the chosen option.
// With no options there is nothing to choose and the prompt is cancelled.
func (t Terminal) Select(ctx context.Context, cfg SelectConfig) (Result[Option], error) {
	if len(cfg.Options) == 0 {
		return Result[Option]{Signal: wizard.Cancel}, nil
	}

	final, err := t.run(ctx, newSelectModel(cfg))
	if err != nil {
		return Result[Option]{}, err
	}
	return final.(selectModel).result(), nil
}

package prompt

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/raphi011/filebatch/internal/wizard"
)

func containsText(rendered, text string) bool {
	return strings.Contains(ansi.Strip(rendered), text)
}

func testOptions() []Option {
	return []Option{
		{Label: "React component", Description: "tsx, css, test"},
		{Label: "Go package", Value: "go"},
		{Label: "Custom", Description: "Create multiple files based on input"},
	}
}

func sendSelect(m selectModel, keys ...string) (selectModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var updated tea.Model
		updated, cmd = m.Update(keyPress(k))
		m = updated.(selectModel)
	}
	return m, cmd
}

func TestSelectModel_Update(t *testing.T) {
	t.Parallel()

	back := wizard.Position{Step: 2, Total: 3, CanGoBack: true}
	first := wizard.Position{Step: 1, Total: 3}

	tests := []struct {
		name      string
		pos       wizard.Position
		active    string
		keys      []string
		done      bool
		signal    wizard.Signal
		wantLabel string
	}{
		{"enter selects first", first, "", []string{"enter"}, true, wizard.Next, "React component"},
		{"down moves cursor", first, "", []string{"down", "enter"}, true, wizard.Next, "Go package"},
		{"cursor stops at end", first, "", []string{"down", "down", "down", "enter"}, true, wizard.Next, "Custom"},
		{"up stops at start", first, "", []string{"up", "enter"}, true, wizard.Next, "React component"},
		{"active option preselected", first, "Custom", []string{"enter"}, true, wizard.Next, "Custom"},
		{"filter narrows", first, "", []string{"g", "o", "enter"}, true, wizard.Next, "Go package"},
		{"backspace widens", first, "", []string{"c", "u", "s", "backspace", "backspace", "backspace", "enter"}, true, wizard.Next, "React component"},
		{"esc cancels", back, "", []string{"esc"}, true, wizard.Cancel, ""},
		{"ctrl+c cancels", first, "", []string{"ctrl+c"}, true, wizard.Cancel, ""},
		{"shift+tab goes back", back, "", []string{"shift+tab"}, true, wizard.Back, ""},
		{"alt+left goes back", back, "", []string{"alt+left"}, true, wizard.Back, ""},
		{"back ignored on first step", first, "", []string{"shift+tab"}, false, wizard.Cancel, ""},
		{"enter without matches does nothing", first, "", []string{"x", "x", "x", "enter"}, false, wizard.Cancel, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := newSelectModel(SelectConfig{Title: "Template", Options: testOptions(), Active: tt.active, Position: tt.pos})
			m, cmd := sendSelect(m, tt.keys...)

			if m.done != tt.done {
				t.Fatalf("done = %v, want %v", m.done, tt.done)
			}
			if tt.done && cmd == nil {
				t.Error("expected quit command")
			}
			if !tt.done {
				return
			}
			res := m.result()
			if res.Signal != tt.signal {
				t.Errorf("Signal = %v, want %v", res.Signal, tt.signal)
			}
			if res.Value.Label != tt.wantLabel {
				t.Errorf("Value.Label = %q, want %q", res.Value.Label, tt.wantLabel)
			}
		})
	}
}

func TestSelectModel_View(t *testing.T) {
	t.Parallel()

	m := newSelectModel(SelectConfig{
		Title:       "Template",
		Placeholder: "Pick a template",
		Options:     testOptions(),
		Position:    wizard.Position{Step: 2, Total: 4, CanGoBack: true},
	})

	view := m.View().Content
	for _, want := range []string{"Template", "(2/4)", "Pick a template", "› React component", "tsx, css, test", "shift+tab back"} {
		if !containsText(view, want) {
			t.Errorf("View() missing %q:\n%s", want, ansi.Strip(view))
		}
	}

	m, _ = sendSelect(m, "z", "z", "z")
	if view := m.View().Content; !containsText(view, "no matches") {
		t.Errorf("View() = %q, want no matches", ansi.Strip(view))
	}

	m, _ = sendSelect(m, "esc")
	if view := m.View().Content; view != "" {
		t.Errorf("View() after done = %q, want empty", view)
	}
}

func TestSelectModel_Scroll(t *testing.T) {
	t.Parallel()

	opts := make([]Option, 15)
	for i := range opts {
		opts[i] = Option{Label: strings.Repeat("x", i+1)}
	}
	m := newSelectModel(SelectConfig{Title: "Folder", Options: opts})
	if view := m.View().Content; !containsText(view, "↓ 5 more") {
		t.Errorf("View() = %q, want more below", ansi.Strip(view))
	}

	for range 12 {
		m, _ = sendSelect(m, "down")
	}
	if view := m.View().Content; !containsText(view, "↑ more above") {
		t.Errorf("View() = %q, want more above", ansi.Strip(view))
	}
}

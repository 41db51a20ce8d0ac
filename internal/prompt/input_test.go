package prompt

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/raphi011/filebatch/internal/wizard"
)

func sendInput(m inputModel, keys ...string) (inputModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var updated tea.Model
		updated, cmd = m.Update(keyPress(k))
		m = updated.(inputModel)
	}
	return m, cmd
}

func TestInputModel_Update(t *testing.T) {
	t.Parallel()

	back := wizard.Position{Step: 3, Total: 3, CanGoBack: true}
	first := wizard.Position{Step: 1, Total: 3}

	tests := []struct {
		name   string
		pos    wizard.Position
		value  string
		keys   []string
		done   bool
		signal wizard.Signal
		want   string
	}{
		{"typed value", first, "", []string{"a", "b", "enter"}, true, wizard.Next, "ab"},
		{"initial value kept", first, ".tsx, .css", []string{"enter"}, true, wizard.Next, ".tsx, .css"},
		{"appends to initial value", first, "Nav", []string{"B", "a", "r", "enter"}, true, wizard.Next, "NavBar"},
		{"empty answer accepted", first, "", []string{"enter"}, true, wizard.Next, ""},
		{"surrounding spaces trimmed", first, "  btn ", []string{"enter"}, true, wizard.Next, "btn"},
		{"esc cancels", back, "x", []string{"esc"}, true, wizard.Cancel, ""},
		{"ctrl+c cancels", back, "", []string{"ctrl+c"}, true, wizard.Cancel, ""},
		{"shift+tab goes back", back, "x", []string{"shift+tab"}, true, wizard.Back, ""},
		{"back ignored on first step", first, "", []string{"shift+tab"}, false, wizard.Cancel, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := newInputModel(InputConfig{Title: "Prefix", Value: tt.value, Position: tt.pos})
			m, cmd := sendInput(m, tt.keys...)

			if m.done != tt.done {
				t.Fatalf("done = %v, want %v", m.done, tt.done)
			}
			if !tt.done {
				return
			}
			if cmd == nil {
				t.Error("expected quit command")
			}
			res := m.result()
			if res.Signal != tt.signal || res.Value != tt.want {
				t.Errorf("result = %+v, want %v %q", res, tt.signal, tt.want)
			}
		})
	}
}

func TestInputModel_Suggestions(t *testing.T) {
	t.Parallel()

	dirs := []string{"src", "src/components", "src/pages", "docs"}
	var queries []string
	suggest := func(q string) []string {
		queries = append(queries, q)
		var out []string
		for _, d := range dirs {
			if strings.HasPrefix(d, q) {
				out = append(out, d)
			}
		}
		return out
	}

	m := newInputModel(InputConfig{Title: "Folder", Suggest: suggest})
	if len(m.suggestions) != 4 {
		t.Fatalf("initial suggestions = %v, want all", m.suggestions)
	}

	m, _ = sendInput(m, "s", "r", "c", "/", "p")
	if len(m.suggestions) != 1 || m.suggestions[0] != "src/pages" {
		t.Fatalf("suggestions = %v, want [src/pages]", m.suggestions)
	}
	if view := m.View().Content; !strings.Contains(ansi.Strip(view), "tab complete") {
		t.Errorf("View() = %q, want tab hint", ansi.Strip(view))
	}

	m, _ = sendInput(m, "tab", "enter")
	if res := m.result(); res.Value != "src/pages" {
		t.Errorf("Value = %q, want src/pages", res.Value)
	}
	if queries[0] != "" {
		t.Errorf("first query = %q, want empty", queries[0])
	}
}

func TestInputModel_View(t *testing.T) {
	t.Parallel()

	m := newInputModel(InputConfig{
		Title:    "Prefix",
		Prompt:   "Name of the files",
		Position: wizard.Position{Step: 2, Total: 2, CanGoBack: true},
	})
	view := ansi.Strip(m.View().Content)
	for _, want := range []string{"Prefix", "(2/2)", "Name of the files", "enter confirm", "shift+tab back", "esc cancel"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}

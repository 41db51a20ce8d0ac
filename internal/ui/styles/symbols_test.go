package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestFormatCreated(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		dryRun    bool
		link      bool
		want      string
		hyperlink bool
	}{
		{"created", false, false, "✓ src/button.tsx", false},
		{"dry run", true, false, "○ src/button.tsx", false},
		{"linked", false, true, "✓ src/button.tsx", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := FormatCreated("src/button.tsx", "/ws/web/src/button.tsx", tt.dryRun, tt.link)
			if stripped := ansi.Strip(got); stripped != tt.want {
				t.Errorf("FormatCreated() stripped = %q, want %q", stripped, tt.want)
			}
			if has := strings.Contains(got, "\x1b]8;;file:///ws/web/src/button.tsx"); has != tt.hyperlink {
				t.Errorf("FormatCreated() hyperlink = %v, want %v (%q)", has, tt.hyperlink, got)
			}
		})
	}
}

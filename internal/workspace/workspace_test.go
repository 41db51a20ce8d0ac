package workspace

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/raphi011/filebatch/internal/config"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cfg   []config.WorkspaceConfig
		extra []string
		want  []Folder
	}{
		{
			name: "falls back to cwd",
			want: []Folder{{Name: "project", Path: "/home/me/project"}},
		},
		{
			name: "configured",
			cfg:  []config.WorkspaceConfig{{Name: "web", Path: "/srv/web"}, {Path: "/srv/api"}},
			want: []Folder{{Name: "web", Path: "/srv/web"}, {Name: "api", Path: "/srv/api"}},
		},
		{
			name:  "extra paths",
			cfg:   []config.WorkspaceConfig{{Name: "web", Path: "/srv/web"}},
			extra: []string{"../lib", "/srv/web/"},
			want:  []Folder{{Name: "web", Path: "/srv/web"}, {Name: "lib", Path: "/home/me/lib"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Resolve(tt.cfg, tt.extra, "/home/me/project")
			if !slices.Equal(got, tt.want) {
				t.Errorf("Resolve() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIdentify(t *testing.T) {
	t.Parallel()

	folders := []Folder{
		{Name: "mono", Path: "/srv/mono"},
		{Name: "app", Path: "/srv/mono/packages/app"},
		{Name: "other", Path: "/srv/other"},
	}

	tests := []struct {
		dir    string
		want   string
		wantOK bool
	}{
		{"/srv/mono/docs", "mono", true},
		{"/srv/mono/packages/app/src", "app", true},
		{"/srv/mono/packages/app", "app", true},
		{"/srv/monorepo", "", false},
		{"/tmp", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			t.Parallel()
			got, ok := Identify(folders, tt.dir)
			if ok != tt.wantOK || got.Name != tt.want {
				t.Errorf("Identify(%q) = %v, %v; want %q, %v", tt.dir, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestJoin(t *testing.T) {
	t.Parallel()

	ws := Folder{Name: "web", Path: "/srv/web"}

	tests := []struct {
		rel     string
		want    string
		wantErr bool
	}{
		{"src/components", "/srv/web/src/components", false},
		{".", "/srv/web", false},
		{"src/../lib", "/srv/web/lib", false},
		{"../api", "", true},
		{"/etc", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.rel, func(t *testing.T) {
			t.Parallel()
			got, err := Join(ws, tt.rel)
			if tt.wantErr {
				if !errors.Is(err, ErrOutsideWorkspace) {
					t.Errorf("Join(%q) error = %v, want ErrOutsideWorkspace", tt.rel, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("Join(%q) = %q, %v; want %q", tt.rel, got, err, tt.want)
			}
		})
	}
}

func TestRelativeTo(t *testing.T) {
	t.Parallel()

	f := Folder{Path: "/home/me/code/web"}
	if got := f.RelativeTo("/home/me"); got != filepath.Join("code", "web") {
		t.Errorf("RelativeTo() = %q", got)
	}
	if got := f.RelativeTo("/srv"); got != "/home/me/code/web" {
		t.Errorf("RelativeTo() = %q, want absolute path", got)
	}
}

func TestSubfolders(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	for _, d := range []string{
		"src/components/button",
		"src/pages",
		"docs",
		".git/objects",
		"node_modules/react",
	} {
		if err := os.MkdirAll(filepath.Join(root, d), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(root, "src", "index.ts"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	t.Run("empty query lists directories", func(t *testing.T) {
		t.Parallel()
		got := Subfolders(root, "", 10)
		want := []string{"docs", "src", "src/components", "src/components/button", "src/pages"}
		if !slices.Equal(got, want) {
			t.Errorf("Subfolders() = %v, want %v", got, want)
		}
	})

	t.Run("natural order", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		for _, d := range []string{"step10", "step2", "step1"} {
			if err := os.Mkdir(filepath.Join(dir, d), 0o755); err != nil {
				t.Fatal(err)
			}
		}
		got := Subfolders(dir, "", 10)
		want := []string{"step1", "step2", "step10"}
		if !slices.Equal(got, want) {
			t.Errorf("Subfolders() = %v, want %v", got, want)
		}
	})

	t.Run("fuzzy query", func(t *testing.T) {
		t.Parallel()
		got := Subfolders(root, "cmpbtn", 10)
		if len(got) == 0 || got[0] != "src/components/button" {
			t.Errorf("Subfolders(cmpbtn) = %v, want src/components/button first", got)
		}
	})

	t.Run("limit", func(t *testing.T) {
		t.Parallel()
		if got := Subfolders(root, "", 2); len(got) != 2 {
			t.Errorf("Subfolders() returned %d entries, want 2", len(got))
		}
	})

	t.Run("missing root", func(t *testing.T) {
		t.Parallel()
		if got := Subfolders(filepath.Join(root, "nope"), "", 10); len(got) != 0 {
			t.Errorf("Subfolders() = %v, want none", got)
		}
	})
}

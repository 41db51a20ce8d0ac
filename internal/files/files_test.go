package files

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/raphi011/filebatch/internal/log"
	"github.com/raphi011/filebatch/internal/templates"
)

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestCreate(t *testing.T) {
	t.Parallel()

	t.Run("writes files with content", func(t *testing.T) {
		t.Parallel()
		dir := filepath.Join(t.TempDir(), "src", "components")
		req := Request{
			Dir:    dir,
			Prefix: "Button",
			Files: []templates.FileSpec{
				{Suffix: ".tsx", Content: []string{"import React from 'react';", "", "export {};"}},
				{Suffix: ".test.tsx", AdditionalPath: "__tests__"},
			},
		}

		got, err := Create(context.Background(), req)
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		want := []string{
			filepath.Join(dir, "Button.tsx"),
			filepath.Join(dir, "__tests__", "Button.test.tsx"),
		}
		if !slices.Equal(got, want) {
			t.Fatalf("Create() = %v, want %v", got, want)
		}
		if content := readFile(t, want[0]); content != "import React from 'react';\n\nexport {};" {
			t.Errorf("content = %q", content)
		}
		if content := readFile(t, want[1]); content != "" {
			t.Errorf("content = %q, want empty", content)
		}
	})

	t.Run("existing file is kept", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		existing := filepath.Join(dir, "a.css")
		if err := os.WriteFile(existing, []byte("keep"), 0o644); err != nil {
			t.Fatal(err)
		}

		_, err := Create(context.Background(), Request{
			Dir:    dir,
			Prefix: "a",
			Files:  []templates.FileSpec{{Suffix: ".ts"}, {Suffix: ".css"}},
		})
		if !errors.Is(err, ErrExists) {
			t.Fatalf("Create() error = %v, want ErrExists", err)
		}
		if _, err := os.Stat(filepath.Join(dir, "a.ts")); !errors.Is(err, os.ErrNotExist) {
			t.Error("a.ts was written although the batch failed")
		}
		if readFile(t, existing) != "keep" {
			t.Error("existing file was modified")
		}
	})

	t.Run("overwrite", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		existing := filepath.Join(dir, "a.css")
		if err := os.WriteFile(existing, []byte("old"), 0o644); err != nil {
			t.Fatal(err)
		}

		_, err := Create(context.Background(), Request{
			Dir:       dir,
			Prefix:    "a",
			Files:     []templates.FileSpec{{Suffix: ".css", Content: []string{"new"}}},
			Overwrite: true,
		})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if got := readFile(t, existing); got != "new" {
			t.Errorf("content = %q, want new", got)
		}
	})

	t.Run("dry run writes nothing", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		ctx := log.WithLogger(context.Background(), log.New(&buf, true, false))
		dir := filepath.Join(t.TempDir(), "new")

		got, err := Create(ctx, Request{
			Dir:    dir,
			Prefix: "x",
			Files:  []templates.FileSpec{{Suffix: ".go"}},
			DryRun: true,
		})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if len(got) != 1 || got[0] != filepath.Join(dir, "x.go") {
			t.Errorf("Create() = %v", got)
		}
		if _, err := os.Stat(dir); !errors.Is(err, os.ErrNotExist) {
			t.Error("dry run created the destination folder")
		}
		if !strings.Contains(buf.String(), "dry_run=true") {
			t.Errorf("log = %q, want dry_run=true", buf.String())
		}
	})

	t.Run("file in the destination path", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		blocker := filepath.Join(root, "src")
		if err := os.WriteFile(blocker, nil, 0o644); err != nil {
			t.Fatal(err)
		}

		_, err := Create(context.Background(), Request{
			Dir:    filepath.Join(blocker, "pages"),
			Prefix: "x",
			Files:  []templates.FileSpec{{Suffix: ".ts"}},
		})
		if !errors.Is(err, ErrNotDirectory) {
			t.Fatalf("Create() error = %v, want ErrNotDirectory", err)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		dir := t.TempDir()

		_, err := Create(ctx, Request{Dir: dir, Prefix: "x", Files: []templates.FileSpec{{Suffix: ".ts"}}})
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Create() error = %v, want context.Canceled", err)
		}
		if _, err := os.Stat(filepath.Join(dir, "x.ts")); !errors.Is(err, os.ErrNotExist) {
			t.Error("file written after cancel")
		}
	})
}

func TestEnsureDir(t *testing.T) {
	t.Parallel()

	t.Run("creates nested folders", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "a", "b", "c")
		if err := EnsureDir(path); err != nil {
			t.Fatalf("EnsureDir() error = %v", err)
		}
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			t.Fatalf("%s not created: %v", path, err)
		}
		if err := EnsureDir(path); err != nil {
			t.Errorf("EnsureDir() on existing folder error = %v", err)
		}
	})

	t.Run("file in the way", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		file := filepath.Join(root, "file")
		if err := os.WriteFile(file, nil, 0o644); err != nil {
			t.Fatal(err)
		}
		for _, p := range []string{file, filepath.Join(file, "sub")} {
			if err := EnsureDir(p); !errors.Is(err, ErrNotDirectory) {
				t.Errorf("EnsureDir(%s) error = %v, want ErrNotDirectory", p, err)
			}
		}
	})
}

func TestRequestPaths(t *testing.T) {
	t.Parallel()

	req := Request{
		Dir:    "/srv/web/src",
		Prefix: "nav",
		Files:  []templates.FileSpec{{Suffix: ".vue"}, {Suffix: ".spec.ts", AdditionalPath: "tests/unit"}},
	}
	want := []string{"/srv/web/src/nav.vue", "/srv/web/src/tests/unit/nav.spec.ts"}
	if got := req.Paths(); !slices.Equal(got, want) {
		t.Errorf("Paths() = %v, want %v", got, want)
	}
}

func TestExisting(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "Card.tsx"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "Card.css"), 0o755); err != nil {
		t.Fatal(err)
	}

	req := Request{
		Dir:    dir,
		Prefix: "Card",
		Files:  []templates.FileSpec{{Suffix: ".tsx"}, {Suffix: ".css"}, {Suffix: ".test.tsx"}},
	}
	got := Existing(req)
	want := []string{filepath.Join(dir, "Card.tsx")}
	if !slices.Equal(got, want) {
		t.Errorf("Existing() = %v, want %v", got, want)
	}

	req.Dir = filepath.Join(dir, "missing")
	if got := Existing(req); len(got) != 0 {
		t.Errorf("Existing() in missing dir = %v, want none", got)
	}
}

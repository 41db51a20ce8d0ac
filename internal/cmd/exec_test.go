package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"slices"
	"strings"
	"testing"

	"github.com/raphi011/filebatch/internal/log"
)

func logCtx() context.Context {
	l := log.New(&bytes.Buffer{}, false, false)
	return log.WithLogger(context.Background(), l)
}

func TestInteractive(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	if err := Interactive(logCtx(), dir, "sh", "-c", "touch opened"); err != nil {
		t.Fatalf("Interactive = %v, want nil", err)
	}
	if _, err := os.Stat(dir + "/opened"); err != nil {
		t.Errorf("command did not run in %s: %v", dir, err)
	}
	if err := Interactive(logCtx(), dir, "sh", "-c", "exit 3"); err == nil {
		t.Error("Interactive(exit 3) = nil, want error")
	}
}

func TestInteractive_ContextCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(logCtx())
	cancel()
	err := Interactive(ctx, "", "sleep", "10")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Interactive error = %v, want context.Canceled", err)
	}
}

func TestInteractive_Logged(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	ctx := log.WithLogger(context.Background(), log.New(&buf, true, false))
	if err := Interactive(ctx, "", "true"); err != nil {
		t.Fatalf("Interactive(true) = %v", err)
	}
	if !strings.Contains(buf.String(), "cmd=true") {
		t.Errorf("debug output = %q, want cmd=true", buf.String())
	}
}

func TestSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line     string
		wantName string
		wantArgs []string
		wantErr  error
	}{
		{line: "vim", wantName: "vim"},
		{line: "code --wait", wantName: "code", wantArgs: []string{"--wait"}},
		{line: "  emacs  -nw ", wantName: "emacs", wantArgs: []string{"-nw"}},
		{line: "   ", wantErr: ErrNoCommand},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			t.Parallel()
			name, args, err := Split(tt.line)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Split(%q) error = %v, want %v", tt.line, err, tt.wantErr)
			}
			if name != tt.wantName || !slices.Equal(args, tt.wantArgs) {
				t.Errorf("Split(%q) = %q %v, want %q %v", tt.line, name, args, tt.wantName, tt.wantArgs)
			}
		})
	}
}

package main

import (
	"cmp"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/raphi011/filebatch/internal/cmd"
	"github.com/raphi011/filebatch/internal/config"
	"github.com/raphi011/filebatch/internal/files"
	"github.com/raphi011/filebatch/internal/flows"
	"github.com/raphi011/filebatch/internal/history"
	"github.com/raphi011/filebatch/internal/hooks"
	"github.com/raphi011/filebatch/internal/log"
	"github.com/raphi011/filebatch/internal/output"
	"github.com/raphi011/filebatch/internal/prompt"
	"github.com/raphi011/filebatch/internal/templates"
	"github.com/raphi011/filebatch/internal/ui/styles"
	"github.com/raphi011/filebatch/internal/workspace"
)

// prompter is replaced in tests.
var prompter flows.Prompter = prompt.Terminal{}

// Confirmer asks a yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context, cfg prompt.ConfirmConfig) (prompt.ConfirmResult, error)
}

// confirmer is replaced in tests.
var confirmer Confirmer = prompt.Terminal{}

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

func runCreate(cmd *cobra.Command, flags createFlags) error {
	ctx := cmd.Context()
	if err := requireTerminal(); err != nil {
		return err
	}

	resolver, workDir, err := shared(ctx)
	if err != nil {
		return err
	}
	folders := workspace.Resolve(resolver.Global().Workspaces, flags.workspaces, workDir)
	recent := loadHistory(ctx)

	plan, err := flows.CreateFromPalette(ctx, flows.PaletteParams{
		Workspaces: folders,
		Templates:  templateSource(resolver),
		Prompter:   prompter,
		Recents:    recent,
		Cwd:        workDir,
	})
	if err != nil {
		return err
	}
	return apply(ctx, resolver, plan, flags)
}

func runHere(cmd *cobra.Command, dir string, flags createFlags) error {
	ctx := cmd.Context()
	if err := requireTerminal(); err != nil {
		return err
	}

	resolver, workDir, err := shared(ctx)
	if err != nil {
		return err
	}

	if !filepath.IsAbs(dir) {
		dir = filepath.Join(workDir, dir)
	}
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", files.ErrNotDirectory, dir)
	}

	folders := workspace.Resolve(resolver.Global().Workspaces, flags.workspaces, workDir)
	// The folder itself is a workspace when none contains it.
	if _, ok := workspace.Identify(folders, dir); !ok {
		folders = workspace.Resolve(nil, []string{dir}, workDir)
	}

	recent := loadHistory(ctx)
	plan, err := flows.CreateFromFolder(ctx, flows.FolderParams{
		Workspaces: folders,
		Dir:        dir,
		Templates:  templateSource(resolver),
		Prompter:   prompter,
		Recents:    recent,
	})
	if err != nil {
		return err
	}
	return apply(ctx, resolver, plan, flags)
}

// apply creates the files of a plan and prints them. A nil plan means the
// wizard was cancelled and nothing happens.
func apply(ctx context.Context, resolver *config.ConfigResolver, plan *flows.Plan, flags createFlags) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	if plan == nil {
		l.Debug("nothing to create")
		return nil
	}

	cfg, err := resolver.ConfigForWorkspace(plan.Workspace.Path)
	if err != nil {
		return err
	}

	// Unknown hooks and malformed args fail before anything is written.
	matches, err := hooks.Select(cfg.Hooks, plan.Template.Label, flags.hook, flags.noHook)
	if err != nil {
		return err
	}
	env, err := hooks.LoadEnv(flags.envFile, flags.args)
	if err != nil {
		return err
	}

	req := plan.Request(cfg.Overwrite || flags.force, flags.dryRun)
	if !req.Overwrite && !req.DryRun {
		if existing := files.Existing(req); len(existing) > 0 {
			ok, err := confirmOverwrite(ctx, plan.Workspace.Path, existing)
			if err != nil {
				return err
			}
			if !ok {
				l.Printf("Nothing created\n")
				return nil
			}
			req.Overwrite = true
		}
	}

	paths, err := files.Create(ctx, req)
	if err != nil {
		return err
	}

	link := prompt.IsTerminal(os.Stdout)
	for _, p := range paths {
		display := p
		if rel, err := filepath.Rel(plan.Workspace.Path, p); err == nil {
			display = rel
		}
		out.Println(styles.FormatCreated(display, p, flags.dryRun, link))
	}

	if !flags.dryRun {
		if err := recordHistory(plan); err != nil {
			l.Debug("history not saved", "error", err)
		}
	}

	if flags.copy {
		if err := copyToClipboard(plan.Dir); err != nil {
			l.Printf("Warning: failed to copy to clipboard: %v\n", err)
		}
	}

	err = hooks.Run(ctx, matches, hooks.Context{
		Dir:           plan.Dir,
		Files:         paths,
		Prefix:        plan.Prefix,
		Template:      plan.Template.Label,
		Workspace:     plan.Workspace.Path,
		WorkspaceName: plan.Workspace.Name,
		Env:           env,
		DryRun:        flags.dryRun,
	})
	if err != nil {
		return err
	}

	if flags.edit && !flags.dryRun {
		return openEditor(ctx, plan.Dir, paths)
	}
	return nil
}

// confirmOverwrite asks before replacing existing files.
func confirmOverwrite(ctx context.Context, root string, existing []string) (bool, error) {
	detail := make([]string, len(existing))
	for i, p := range existing {
		detail[i] = p
		if rel, err := filepath.Rel(root, p); err == nil {
			detail[i] = rel
		}
	}

	title := "Overwrite 1 existing file?"
	if len(existing) > 1 {
		title = fmt.Sprintf("Overwrite %d existing files?", len(existing))
	}

	res, err := confirmer.Confirm(ctx, prompt.ConfirmConfig{Title: title, Detail: detail})
	if err != nil {
		return false, err
	}
	return res.Confirmed && !res.Cancelled, nil
}

// openEditor opens paths in $VISUAL, or $EDITOR, from dir.
func openEditor(ctx context.Context, dir string, paths []string) error {
	line := cmp.Or(os.Getenv("VISUAL"), os.Getenv("EDITOR"))
	if line == "" {
		log.FromContext(ctx).Printf("Warning: --edit needs $VISUAL or $EDITOR\n")
		return nil
	}
	name, args, err := cmd.Split(line)
	if err != nil {
		return err
	}
	if err := cmd.Interactive(ctx, dir, name, append(args, paths...)...); err != nil {
		return fmt.Errorf("open editor: %w", err)
	}
	return nil
}

// loadHistory reads the recent destinations. Failures only cost the
// suggestions.
func loadHistory(ctx context.Context) *history.History {
	l := log.FromContext(ctx)
	path, err := history.Path()
	if err != nil {
		l.Debug("history unavailable", "error", err)
		return &history.History{}
	}
	h, err := history.Load(path)
	if err != nil {
		l.Printf("Warning: failed to load history: %v\n", err)
		return &history.History{}
	}
	return h
}

func recordHistory(plan *flows.Plan) error {
	path, err := history.Path()
	if err != nil {
		return err
	}
	return history.Update(path, func(h *history.History) {
		h.Record(plan.Workspace.Path, plan.RelativeDir, plan.Template.Label)
	})
}

// shared returns the config resolver and working directory set up by
// Execute.
func shared(ctx context.Context) (*config.ConfigResolver, string, error) {
	resolver := config.ResolverFromContext(ctx)
	if resolver == nil {
		return nil, "", fmt.Errorf("config not loaded")
	}
	workDir := config.WorkDirFromContext(ctx)
	if workDir == "" {
		return nil, "", fmt.Errorf("working directory unknown")
	}
	return resolver, workDir, nil
}

// templateSource reads the templates of a workspace, including its local
// config.
func templateSource(resolver *config.ConfigResolver) flows.TemplateSource {
	return func(ws workspace.Folder) ([]templates.Template, error) {
		cfg, err := resolver.ConfigForWorkspace(ws.Path)
		if err != nil {
			return nil, err
		}
		return templates.FromConfig(cfg.Templates), nil
	}
}

package flows

import (
	"context"
	"path/filepath"

	"github.com/raphi011/filebatch/internal/log"
	"github.com/raphi011/filebatch/internal/wizard"
	"github.com/raphi011/filebatch/internal/workspace"
)

// PaletteParams contains parameters for CreateFromPalette.
type PaletteParams struct {
	Workspaces []workspace.Folder
	Templates  TemplateSource
	Prompter   Prompter
	Recents    Recents
	Cwd        string // base for the workspace descriptions
}

// CreateFromPalette asks for every part of the plan. The workspace step is
// skipped when there is only one workspace, the suffix step unless the
// custom template is picked.
func CreateFromPalette(ctx context.Context, params PaletteParams) (*Plan, error) {
	if len(params.Workspaces) == 0 {
		return nil, nil
	}

	w := wizard.New(newForm())
	w.AddStep(workspaceStep(w, params.Prompter, params.Workspaces, params.Cwd)).
		AddStep(templateStep(w, params.Prompter, params.Templates, params.Recents)).
		AddStep(suffixStep(w, params.Prompter)).
		AddStep(folderStep(w, params.Prompter, params.Recents)).
		AddStep(prefixStep(w, params.Prompter))

	return run(ctx, w)
}

// FolderParams contains parameters for CreateFromFolder.
type FolderParams struct {
	Workspaces []workspace.Folder
	Dir        string // target folder, absolute
	Templates  TemplateSource
	Prompter   Prompter
	Recents    Recents
}

// CreateFromFolder creates files in a given folder. The workspace is the
// one containing the folder.
func CreateFromFolder(ctx context.Context, params FolderParams) (*Plan, error) {
	ws, ok := workspace.Identify(params.Workspaces, params.Dir)
	if !ok {
		return nil, ErrNoWorkspace
	}
	rel, err := filepath.Rel(ws.Path, params.Dir)
	if err != nil {
		return nil, err
	}

	initial, err := newForm().With(FieldWorkspace, ws)
	if err != nil {
		return nil, err
	}
	if initial, err = initial.With(FieldFolder, rel); err != nil {
		return nil, err
	}

	w := wizard.New(initial)
	w.AddStep(templateStep(w, params.Prompter, params.Templates, params.Recents)).
		AddStep(suffixStep(w, params.Prompter)).
		AddStep(prefixStep(w, params.Prompter))

	return run(ctx, w)
}

func run(ctx context.Context, w *wizard.Wizard) (*Plan, error) {
	state, err := w.Run(ctx)
	if err != nil {
		return nil, err
	}
	if w.Aborted() {
		log.FromContext(ctx).Debug("wizard cancelled", "step", w.CurrentStep())
		return nil, nil
	}
	return planFrom(ctx, state)
}

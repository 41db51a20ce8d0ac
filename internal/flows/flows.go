// Package flows provides the wizards behind the create commands.
//
// Available flows:
//   - [CreateFromPalette]: pick workspace, template, suffixes, folder and prefix
//   - [CreateFromFolder]: create in a known folder, pick template, suffixes and prefix
//
// Both return a nil Plan when the user cancels or leaves a required answer
// empty.
package flows

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/raphi011/filebatch/internal/files"
	"github.com/raphi011/filebatch/internal/log"
	"github.com/raphi011/filebatch/internal/prompt"
	"github.com/raphi011/filebatch/internal/templates"
	"github.com/raphi011/filebatch/internal/wizard"
	"github.com/raphi011/filebatch/internal/workspace"
)

// Form fields shared by the flows.
const (
	FieldWorkspace = "workspace"
	FieldTemplate  = "template"
	FieldFolder    = "folder"
	FieldPrefix    = "prefix"
)

var required = []string{FieldWorkspace, FieldTemplate, FieldFolder, FieldPrefix}

// ErrNoWorkspace is returned when the target folder is not inside any
// workspace.
var ErrNoWorkspace = errors.New("folder is not inside a workspace")

// Prompter asks the user. prompt.Terminal is the interactive implementation.
type Prompter interface {
	Select(ctx context.Context, cfg prompt.SelectConfig) (prompt.Result[prompt.Option], error)
	Input(ctx context.Context, cfg prompt.InputConfig) (prompt.Result[string], error)
}

// Recents remembers earlier answers per workspace. history.History is the
// persistent implementation; a nil Recents remembers nothing.
type Recents interface {
	Folders(workspacePath string) []string
	Template(workspacePath string) string
}

// TemplateSource returns the templates available in a workspace.
type TemplateSource func(ws workspace.Folder) ([]templates.Template, error)

// Plan is the outcome of a completed flow.
type Plan struct {
	Workspace   workspace.Folder
	Template    templates.Template
	Dir         string // absolute destination folder
	RelativeDir string // destination relative to the workspace root
	Prefix      string
}

// Request converts the plan into a files request.
func (p Plan) Request(overwrite, dryRun bool) files.Request {
	return files.Request{
		Dir:       p.Dir,
		Prefix:    p.Prefix,
		Files:     p.Template.Files,
		Overwrite: overwrite,
		DryRun:    dryRun,
	}
}

func newForm() wizard.Form {
	return wizard.NewForm(required...)
}

// planFrom checks the required fields and builds the plan.
// Returns nil when any is missing.
func planFrom(ctx context.Context, state wizard.Form) (*Plan, error) {
	if missing := state.Missing(required...); len(missing) > 0 {
		log.FromContext(ctx).Debug("wizard incomplete", "missing", missing)
		return nil, nil
	}

	ws, _ := wizard.Value[workspace.Folder](state, FieldWorkspace)
	tmpl, _ := wizard.Value[templates.Template](state, FieldTemplate)
	rel := state.String(FieldFolder)

	dir, err := workspace.Join(ws, rel)
	if err != nil {
		return nil, err
	}

	return &Plan{
		Workspace:   ws,
		Template:    tmpl,
		Dir:         dir,
		RelativeDir: filepath.Clean(rel),
		Prefix:      state.String(FieldPrefix),
	}, nil
}

package flows

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/raphi011/filebatch/internal/log"
	"github.com/raphi011/filebatch/internal/prompt"
	"github.com/raphi011/filebatch/internal/templates"
	"github.com/raphi011/filebatch/internal/wizard"
	"github.com/raphi011/filebatch/internal/workspace"
)

// maxFolderSuggestions limits the destination folder suggestions.
const maxFolderSuggestions = 10

// set stores value, or clears the field when value is the empty string.
func set(w *wizard.Wizard, key string, value any) error {
	if s, ok := value.(string); ok && s == "" {
		value = nil
	}
	return w.Set(key, value)
}

func workspaceStep(w *wizard.Wizard, p Prompter, folders []workspace.Folder, cwd string) wizard.Step {
	return wizard.Step{
		Name: FieldWorkspace,
		Execute: func(ctx context.Context) (wizard.Signal, error) {
			options := make([]prompt.Option, len(folders))
			for i, f := range folders {
				options[i] = prompt.Option{Label: f.Name, Description: f.RelativeTo(cwd), Value: f}
			}
			active := ""
			if ws, ok := wizard.Value[workspace.Folder](w.State(), FieldWorkspace); ok {
				active = ws.Name
			}

			res, err := p.Select(ctx, prompt.SelectConfig{
				Title:       "Workspace",
				Placeholder: "Select the workspace to create the files in",
				Options:     options,
				Active:      active,
				Position:    w.Position(),
			})
			if err != nil || res.Signal != wizard.Next {
				return res.Signal, err
			}
			return wizard.Next, w.Set(FieldWorkspace, res.Value.Value)
		},
		ShouldSkip: func(wizard.Form) bool { return len(folders) == 1 },
		WhenSkip: func() error {
			return w.Set(FieldWorkspace, folders[0])
		},
	}
}

func templateStep(w *wizard.Wizard, p Prompter, source TemplateSource, recents Recents) wizard.Step {
	return wizard.Step{
		Name: FieldTemplate,
		Execute: func(ctx context.Context) (wizard.Signal, error) {
			ws, _ := wizard.Value[workspace.Folder](w.State(), FieldWorkspace)
			list, err := source(ws)
			if err != nil {
				return wizard.Next, fmt.Errorf("load templates for %s: %w", ws.Name, err)
			}
			list = templates.WithCustom(list)

			options := make([]prompt.Option, len(list))
			for i, t := range list {
				options[i] = prompt.Option{Label: t.Label, Description: t.Description, Value: t}
			}
			active := ""
			if t, ok := wizard.Value[templates.Template](w.State(), FieldTemplate); ok {
				active = t.Label
			} else if recents != nil {
				active = recents.Template(ws.Path)
			}

			res, err := p.Select(ctx, prompt.SelectConfig{
				Title:       "Template",
				Placeholder: "Select the template to use",
				Options:     options,
				Active:      active,
				Position:    w.Position(),
			})
			if err != nil || res.Signal != wizard.Next {
				return res.Signal, err
			}

			picked, ok := res.Value.Value.(templates.Template)
			if !ok {
				return wizard.Next, fmt.Errorf("option %q is not a template", res.Value.Label)
			}
			// Keep suffixes entered earlier when Custom is picked again.
			if prev, ok := wizard.Value[templates.Template](w.State(), FieldTemplate); ok && prev.IsCustom() && picked.IsCustom() {
				picked = prev
			}
			return wizard.Next, w.Set(FieldTemplate, picked)
		},
	}
}

func suffixStep(w *wizard.Wizard, p Prompter) wizard.Step {
	return wizard.Step{
		Name: "suffixes",
		Execute: func(ctx context.Context) (wizard.Signal, error) {
			tmpl, _ := wizard.Value[templates.Template](w.State(), FieldTemplate)

			res, err := p.Input(ctx, prompt.InputConfig{
				Title:       "Suffixes",
				Prompt:      "File suffixes, comma separated",
				Placeholder: ".tsx, .module.css, .test.tsx",
				Value:       tmpl.SuffixList(),
				Position:    w.Position(),
			})
			if err != nil || res.Signal != wizard.Next {
				return res.Signal, err
			}

			suffixes := templates.ParseSuffixes(res.Value)
			if len(suffixes) == 0 {
				return wizard.Next, w.Set(FieldTemplate, nil)
			}
			return wizard.Next, w.Set(FieldTemplate, tmpl.WithSuffixes(suffixes))
		},
		ShouldSkip: func(state wizard.Form) bool {
			t, ok := wizard.Value[templates.Template](state, FieldTemplate)
			return !ok || !t.IsCustom()
		},
	}
}

func folderStep(w *wizard.Wizard, p Prompter, recents Recents) wizard.Step {
	return wizard.Step{
		Name: FieldFolder,
		Execute: func(ctx context.Context) (wizard.Signal, error) {
			ws, _ := wizard.Value[workspace.Folder](w.State(), FieldWorkspace)
			value := w.State().String(FieldFolder)
			placeholder := "Folder relative to " + ws.Name

			for {
				res, err := p.Input(ctx, prompt.InputConfig{
					Title:       "Destination",
					Prompt:      "Folder to create the files in",
					Placeholder: placeholder,
					Value:       value,
					Position:    w.Position(),
					Suggest: func(q string) []string {
						return suggestFolders(ws, recents, q)
					},
				})
				if err != nil || res.Signal != wizard.Next {
					return res.Signal, err
				}

				if res.Value == "" {
					return wizard.Next, set(w, FieldFolder, "")
				}
				if _, err := workspace.Join(ws, res.Value); err != nil {
					if !errors.Is(err, workspace.ErrOutsideWorkspace) {
						return wizard.Next, err
					}
					log.FromContext(ctx).Debug("folder rejected", "folder", res.Value, "error", err)
					value = res.Value
					placeholder = "Folder must be inside " + ws.Path
					continue
				}
				return wizard.Next, w.Set(FieldFolder, filepath.Clean(res.Value))
			}
		},
	}
}

func prefixStep(w *wizard.Wizard, p Prompter) wizard.Step {
	return wizard.Step{
		Name: FieldPrefix,
		Execute: func(ctx context.Context) (wizard.Signal, error) {
			res, err := p.Input(ctx, prompt.InputConfig{
				Title:       "Prefix",
				Prompt:      "Name the files start with",
				Placeholder: "Button",
				Value:       w.State().String(FieldPrefix),
				Position:    w.Position(),
			})
			if err != nil || res.Signal != wizard.Next {
				return res.Signal, err
			}
			return wizard.Next, set(w, FieldPrefix, res.Value)
		},
	}
}

// suggestFolders lists recent folders matching q, then the sub-folders of
// the workspace.
func suggestFolders(ws workspace.Folder, recents Recents, q string) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(folder string) {
		if len(out) < maxFolderSuggestions && !seen[folder] {
			seen[folder] = true
			out = append(out, folder)
		}
	}

	if recents != nil {
		lower := strings.ToLower(q)
		for _, f := range recents.Folders(ws.Path) {
			if f != "." && strings.Contains(strings.ToLower(f), lower) {
				add(f)
			}
		}
	}
	for _, f := range workspace.Subfolders(ws.Path, q, maxFolderSuggestions) {
		add(f)
	}
	return out
}

// Package templates describes groups of files that are created together.
package templates

import (
	"strings"

	"github.com/raphi011/filebatch/internal/config"
)

// FileSpec is one file of a template. The file is named {prefix}{Suffix}
// and created in AdditionalPath below the destination folder.
type FileSpec struct {
	Suffix         string   `json:"suffix" yaml:"suffix"`
	Content        []string `json:"content,omitempty" yaml:"content,omitempty"`
	AdditionalPath string   `json:"additional_path,omitempty" yaml:"additional_path,omitempty"`
}

// Template is a named group of files.
type Template struct {
	Label       string     `json:"label" yaml:"label"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Files       []FileSpec `json:"files" yaml:"files"`
}

// Custom is the template whose suffixes are entered by the user.
var Custom = Template{
	Label:       config.ReservedTemplateLabel,
	Description: "Create multiple files based on input",
}

// IsCustom reports whether t is the custom template.
func (t Template) IsCustom() bool {
	return strings.EqualFold(t.Label, Custom.Label)
}

// FromConfig converts configured templates.
func FromConfig(cfgs []config.TemplateConfig) []Template {
	out := make([]Template, 0, len(cfgs))
	for _, c := range cfgs {
		t := Template{Label: c.Label, Description: c.Description}
		for _, f := range c.Files {
			t.Files = append(t.Files, FileSpec{
				Suffix:         f.Suffix,
				Content:        f.Content,
				AdditionalPath: f.AdditionalPath,
			})
		}
		out = append(out, t)
	}
	return out
}

// WithCustom returns the templates followed by Custom.
func WithCustom(list []Template) []Template {
	out := make([]Template, 0, len(list)+1)
	out = append(out, list...)
	return append(out, Custom)
}

// Find returns the template with the given label, ignoring case.
func Find(list []Template, label string) (Template, bool) {
	for _, t := range list {
		if strings.EqualFold(t.Label, label) {
			return t, true
		}
	}
	return Template{}, false
}

// ParseSuffixes splits comma separated input into suffixes.
// Blank entries are dropped.
func ParseSuffixes(input string) []string {
	var out []string
	for s := range strings.SplitSeq(input, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// WithSuffixes returns a copy of t with one file per suffix. Files that
// already exist at the same index keep their content and path.
func (t Template) WithSuffixes(suffixes []string) Template {
	files := make([]FileSpec, len(suffixes))
	for i, s := range suffixes {
		if i < len(t.Files) {
			files[i] = t.Files[i]
		}
		files[i].Suffix = s
	}
	t.Files = files
	return t
}

// SuffixList returns the suffixes of t, comma separated.
func (t Template) SuffixList() string {
	suffixes := make([]string, len(t.Files))
	for i, f := range t.Files {
		suffixes[i] = f.Suffix
	}
	return strings.Join(suffixes, ", ")
}

package config

import (
	"fmt"
	"slices"
	"strings"
)

// Valid enum values for configuration fields.
var (
	ValidThemeNames = []string{"default", "dracula", "nord", "none"}
	ValidThemeModes = []string{"auto", "light", "dark"}
)

// ReservedTemplateLabel is the label of the built-in custom template.
const ReservedTemplateLabel = "Custom"

// validateTemplates checks labels (non-empty, unique, not reserved) and
// that every file has a suffix. contextInfo names the file being validated.
func validateTemplates(templates []TemplateConfig, contextInfo string) error {
	seen := make(map[string]bool, len(templates))
	for i, t := range templates {
		label := strings.TrimSpace(t.Label)
		if label == "" {
			return fmt.Errorf("%w: templates[%d].label must not be empty in %s", ErrInvalid, i, contextInfo)
		}
		key := strings.ToLower(label)
		if key == strings.ToLower(ReservedTemplateLabel) {
			return fmt.Errorf("%w: templates[%d].label %q is reserved in %s", ErrInvalid, i, label, contextInfo)
		}
		if seen[key] {
			return fmt.Errorf("%w: duplicate template label %q in %s", ErrInvalid, label, contextInfo)
		}
		seen[key] = true

		for j, f := range t.Files {
			if strings.TrimSpace(f.Suffix) == "" {
				return fmt.Errorf("%w: templates[%d].files[%d].suffix must not be empty in %s", ErrInvalid, i, j, contextInfo)
			}
		}
	}
	return nil
}

// validateHooks checks that every hook has a command.
func validateHooks(hooks map[string]HookConfig, contextInfo string) error {
	for name, h := range hooks {
		if strings.TrimSpace(h.Command) == "" {
			return fmt.Errorf("%w: hooks.%s.command must not be empty in %s", ErrInvalid, name, contextInfo)
		}
	}
	return nil
}

func validateTheme(theme ThemeConfig) error {
	if err := validateEnum(theme.Name, "theme.name", ValidThemeNames); err != nil {
		return err
	}
	return validateEnum(theme.Mode, "theme.mode", ValidThemeModes)
}

// validateEnum checks that value (if non-empty) is one of the allowed values.
// Returns a formatted error mentioning the field name and allowed options.
func validateEnum(value, field string, allowed []string) error {
	if value == "" {
		return nil
	}
	if !slices.Contains(allowed, value) {
		return fmt.Errorf("%w: invalid %s %q: must be %s", ErrInvalid, field, value, formatOptions(allowed))
	}
	return nil
}

// formatOptions formats a list of allowed values for error messages.
// E.g., ["a", "b", "c"] -> `"a", "b", or "c"`
func formatOptions(opts []string) string {
	quoted := make([]string, len(opts))
	for i, o := range opts {
		quoted[i] = fmt.Sprintf("%q", o)
	}
	if len(quoted) <= 2 {
		return strings.Join(quoted, " or ")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}

package hooks

import (
	"context"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"

	"github.com/joho/godotenv"

	"github.com/raphi011/filebatch/internal/cmd"
	"github.com/raphi011/filebatch/internal/config"
	"github.com/raphi011/filebatch/internal/log"
)

// OnAll in a hook's "on" list matches every template.
const OnAll = "all"

// shellQuote escapes a string for safe use in shell commands.
// e.g., "it's" becomes 'it'\''s'
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "'\\''") + "'"
}

// Context holds the values for placeholder substitution
type Context struct {
	Dir           string   // absolute destination folder
	Files         []string // created files
	Prefix        string
	Template      string // template label
	Workspace     string // workspace root
	WorkspaceName string
	Env           map[string]string // custom variables from --env-file and --arg
	DryRun        bool              // if true, print command instead of executing
}

// Match is a hook selected to run.
type Match struct {
	Name string
	Hook config.HookConfig
}

// Select determines which hooks run for template. If hookName is given
// only that hook runs, whatever its "on" list says. Matches are sorted by
// name.
func Select(hooks map[string]config.HookConfig, template, hookName string, noHook bool) ([]Match, error) {
	if noHook {
		return nil, nil
	}

	if hookName != "" {
		hook, ok := hooks[hookName]
		if !ok {
			return nil, fmt.Errorf("unknown hook %q", hookName)
		}
		return []Match{{Name: hookName, Hook: hook}}, nil
	}

	var matches []Match
	for _, name := range slices.Sorted(maps.Keys(hooks)) {
		if hookMatchesTemplate(hooks[name], template) {
			matches = append(matches, Match{Name: name, Hook: hooks[name]})
		}
	}
	return matches, nil
}

// hookMatchesTemplate reports whether template is in the hook's "on" list.
// Labels compare case-insensitively.
func hookMatchesTemplate(hook config.HookConfig, template string) bool {
	for _, on := range hook.On {
		if on == OnAll || strings.EqualFold(on, template) {
			return true
		}
	}
	return false
}

// Run runs the matched hooks in order and stops at the first failure.
func Run(ctx context.Context, matches []Match, hctx Context) error {
	for _, m := range matches {
		if err := runHook(ctx, m, hctx); err != nil {
			return fmt.Errorf("hook %q failed: %w", m.Name, err)
		}
	}
	return nil
}

func runHook(ctx context.Context, m Match, hctx Context) error {
	l := log.FromContext(ctx)
	command := SubstitutePlaceholders(m.Hook.Command, hctx)

	if hctx.DryRun {
		l.Printf("[dry-run] %s: %s\n", m.Name, command)
		return nil
	}

	l.Printf("Running hook '%s'...\n", m.Name)
	if err := cmd.Interactive(ctx, hctx.Dir, "sh", "-c", command); err != nil {
		return err
	}

	if m.Hook.Description != "" {
		l.Printf("  ✓ %s\n", m.Hook.Description)
	}
	return nil
}

// ParseEnv parses a slice of "key=value" strings into a map.
// Returns an error if any entry doesn't contain "=".
func ParseEnv(envSlice []string) (map[string]string, error) {
	result := make(map[string]string, len(envSlice))
	for _, e := range envSlice {
		key, value, ok := strings.Cut(e, "=")
		if !ok {
			return nil, fmt.Errorf("invalid arg format %q: expected KEY=VALUE", e)
		}
		if key == "" {
			return nil, fmt.Errorf("invalid arg format %q: key cannot be empty", e)
		}
		result[key] = value
	}
	return result, nil
}

// LoadEnv builds the hook variables from an optional dotenv file and
// "key=value" args. Args win over the file.
func LoadEnv(envFile string, args []string) (map[string]string, error) {
	env := make(map[string]string)
	if envFile != "" {
		fileEnv, err := godotenv.Read(envFile)
		if err != nil {
			return nil, fmt.Errorf("read env file: %w", err)
		}
		maps.Copy(env, fileEnv)
	}

	argEnv, err := ParseEnv(args)
	if err != nil {
		return nil, err
	}
	maps.Copy(env, argEnv)
	return env, nil
}

// envPlaceholderRegex matches {key}, {key:raw}, or {key:-default}.
var envPlaceholderRegex = regexp.MustCompile(`\{([a-zA-Z_][a-zA-Z0-9_]*)(?:(:raw)|:-([^}]*))?\}`)

// SubstitutePlaceholders replaces {placeholder} with shell-quoted values
// from hctx. Unknown {key} placeholders are looked up in hctx.Env.
func SubstitutePlaceholders(command string, hctx Context) string {
	quoted := make([]string, len(hctx.Files))
	for i, f := range hctx.Files {
		quoted[i] = shellQuote(f)
	}

	replacements := map[string]string{
		"{dir}":            shellQuote(hctx.Dir),
		"{files}":          strings.Join(quoted, " "),
		"{prefix}":         shellQuote(hctx.Prefix),
		"{template}":       shellQuote(hctx.Template),
		"{workspace}":      shellQuote(hctx.Workspace),
		"{workspace-name}": shellQuote(hctx.WorkspaceName),
	}

	result := command
	for placeholder, value := range replacements {
		result = strings.ReplaceAll(result, placeholder, value)
	}

	return envPlaceholderRegex.ReplaceAllStringFunc(result, func(match string) string {
		submatch := envPlaceholderRegex.FindStringSubmatch(match)
		if submatch == nil {
			return match
		}
		key := submatch[1]
		isRaw := submatch[2] == ":raw"
		defaultVal := submatch[3]

		val, ok := hctx.Env[key]
		if !ok {
			val = defaultVal
		}
		if isRaw {
			return val
		}
		return shellQuote(val)
	})
}

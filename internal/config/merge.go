package config

import (
	"maps"
	"strings"
)

// MergeLocal merges a local per-workspace config into a global config,
// returning a new Config without mutating the global.
// Returns global unchanged if local is nil.
func MergeLocal(global *Config, local *LocalConfig) *Config {
	if local == nil {
		return global
	}

	// Shallow copy global; Workspaces and Theme are global-only.
	merged := *global
	merged.Templates = mergeTemplates(global.Templates, local.Templates)
	merged.Hooks = mergeHooks(global.Hooks, local.Hooks)

	if local.Overwrite != nil {
		merged.Overwrite = *local.Overwrite
	}

	return &merged
}

// mergeTemplates keeps the global order, replaces global templates that a
// local template shares a label with, and appends the remaining local ones.
func mergeTemplates(global, local []TemplateConfig) []TemplateConfig {
	if len(local) == 0 {
		return global
	}

	byLabel := make(map[string]TemplateConfig, len(local))
	for _, t := range local {
		byLabel[strings.ToLower(t.Label)] = t
	}

	result := make([]TemplateConfig, 0, len(global)+len(local))
	used := make(map[string]bool, len(local))
	for _, t := range global {
		key := strings.ToLower(t.Label)
		if override, ok := byLabel[key]; ok {
			result = append(result, override)
			used[key] = true
			continue
		}
		result = append(result, t)
	}

	for _, t := range local {
		if !used[strings.ToLower(t.Label)] {
			result = append(result, t)
		}
	}

	return result
}

// mergeHooks returns the global hooks with local hooks added; a local hook
// replaces the global one of the same name.
func mergeHooks(global, local map[string]HookConfig) map[string]HookConfig {
	if len(local) == 0 {
		return global
	}
	result := maps.Clone(global)
	if result == nil {
		result = make(map[string]HookConfig, len(local))
	}
	maps.Copy(result, local)
	return result
}

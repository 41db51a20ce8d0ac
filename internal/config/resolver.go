package config

import "context"

// resolverKey is the context key for ConfigResolver
type resolverKey struct{}

// ConfigResolver provides lazy per-workspace config resolution with caching.
// It loads and merges local config files with the global config on demand.
type ConfigResolver struct {
	global *Config
	cache  map[string]*Config // workspace path -> merged config
}

// NewResolver creates a new ConfigResolver backed by the given global config.
func NewResolver(global *Config) *ConfigResolver {
	return &ConfigResolver{
		global: global,
		cache:  make(map[string]*Config),
	}
}

// ConfigForWorkspace returns the effective config for a workspace, merging
// any local config found at its root with the global config. Results are
// cached per path.
func (r *ConfigResolver) ConfigForWorkspace(path string) (*Config, error) {
	if cached, ok := r.cache[path]; ok {
		return cached, nil
	}

	local, err := LoadLocal(path)
	if err != nil {
		return nil, err
	}

	merged := MergeLocal(r.global, local)
	r.cache[path] = merged
	return merged, nil
}

// Global returns the global config (without any local overrides).
func (r *ConfigResolver) Global() *Config {
	return r.global
}

// WithResolver returns a new context with the ConfigResolver stored in it.
func WithResolver(ctx context.Context, r *ConfigResolver) context.Context {
	return context.WithValue(ctx, resolverKey{}, r)
}

// ResolverFromContext returns the ConfigResolver from context.
// Returns nil if no resolver is stored.
func ResolverFromContext(ctx context.Context) *ConfigResolver {
	if r, ok := ctx.Value(resolverKey{}).(*ConfigResolver); ok {
		return r
	}
	return nil
}

// workDirKey is the context key for the working directory
type workDirKey struct{}

// WithWorkDir returns a new context with the working directory stored in it.
func WithWorkDir(ctx context.Context, dir string) context.Context {
	return context.WithValue(ctx, workDirKey{}, dir)
}

// WorkDirFromContext returns the working directory from context.
// Returns "" if none is stored.
func WorkDirFromContext(ctx context.Context) string {
	dir, _ := ctx.Value(workDirKey{}).(string)
	return dir
}

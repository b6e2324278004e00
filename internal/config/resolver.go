package config

import (
	"context"
	"sync"
)

// resolverKey is the context key for Resolver
type resolverKey struct{}

// Resolver provides lazy per-repo config resolution with caching.
// It merges a repo's .brws.toml into the global config on demand.
type Resolver struct {
	global Config

	mu    sync.Mutex
	cache map[string]Config // repo root -> merged config
}

// NewResolver creates a Resolver backed by the given global config.
func NewResolver(global Config) *Resolver {
	return &Resolver{
		global: global,
		cache:  make(map[string]Config),
	}
}

// ForRepo returns the effective config for the repository rooted at repoRoot.
// An empty repoRoot yields the global config.
func (r *Resolver) ForRepo(repoRoot string) (Config, error) {
	if repoRoot == "" {
		return r.global, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if cached, ok := r.cache[repoRoot]; ok {
		return cached, nil
	}

	local, err := LoadLocal(repoRoot)
	if err != nil {
		return Config{}, err
	}

	merged := MergeLocal(r.global, local)
	r.cache[repoRoot] = merged
	return merged, nil
}

// Global returns the global config (without any local overrides).
func (r *Resolver) Global() Config {
	return r.global
}

// WithResolver returns a new context with the Resolver stored in it.
func WithResolver(ctx context.Context, r *Resolver) context.Context {
	return context.WithValue(ctx, resolverKey{}, r)
}

// ResolverFromContext returns the Resolver from context, or one over
// Default() if none is stored.
func ResolverFromContext(ctx context.Context) *Resolver {
	if r, ok := ctx.Value(resolverKey{}).(*Resolver); ok {
		return r
	}
	return NewResolver(Default())
}

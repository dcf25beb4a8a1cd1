// Package search defines the provider abstraction for upstream news-search
// services and a registry to select one by configuration.
package search

import (
	"context"
	"fmt"
)

// Provider is a single search backend (Tavily, etc.). The payload it
// returns is untyped on purpose: providers do not guarantee a stable
// response shape.
type Provider interface {
	Name() string
	Search(ctx context.Context, query string) (any, error)
}

// Registry keeps a mapping from provider names to their implementations.
type Registry struct {
	providers map[string]Provider
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{providers: map[string]Provider{}}
}

// Register adds or replaces a provider implementation.
func (r *Registry) Register(provider Provider) {
	if r.providers == nil {
		r.providers = map[string]Provider{}
	}
	r.providers[provider.Name()] = provider
}

// Resolve returns a provider by name or an error if it is absent.
func (r *Registry) Resolve(name string) (Provider, error) {
	if provider, ok := r.providers[name]; ok {
		return provider, nil
	}
	return nil, fmt.Errorf("search provider %s is not registered", name)
}

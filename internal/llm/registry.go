// Package llm resolves provider aliases to model identifiers and constructs
// langchaingo model clients for them.
package llm

import "strings"

// Registry is an immutable mapping from provider alias (case-insensitive)
// to a model identifier, with a fixed default alias for unknown lookups.
// It is passed into the pipeline as a value, never consulted as a global.
type Registry struct {
	models          map[string]string
	defaultProvider string
}

// NewRegistry builds a registry. Aliases are normalized to lower case.
func NewRegistry(defaultProvider string, models map[string]string) Registry {
	normalized := make(map[string]string, len(models))
	for alias, model := range models {
		normalized[strings.ToLower(alias)] = model
	}
	return Registry{
		models:          normalized,
		defaultProvider: strings.ToLower(defaultProvider),
	}
}

// DefaultRegistry covers the two supported provider families under their
// common aliases.
func DefaultRegistry() Registry {
	return NewRegistry("anthropic", map[string]string{
		"anthropic": "claude-sonnet-4-5-20250929",
		"claude":    "claude-sonnet-4-5-20250929",
		"gemini":    "gemini-1.5-pro-latest",
		"google":    "gemini-1.5-pro-latest",
	})
}

// DefaultProvider returns the fallback alias.
func (r Registry) DefaultProvider() string {
	return r.defaultProvider
}

// Resolve looks up an alias case-insensitively. Unknown aliases resolve to
// the default provider; known reports whether the alias itself matched.
func (r Registry) Resolve(alias string) (provider, model string, known bool) {
	provider = strings.ToLower(strings.TrimSpace(alias))
	if provider == "" {
		provider = r.defaultProvider
	}

	if model, ok := r.models[provider]; ok {
		return provider, model, true
	}
	return r.defaultProvider, r.models[r.defaultProvider], false
}

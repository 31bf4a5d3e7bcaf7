package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveKnownAliases(t *testing.T) {
	r := DefaultRegistry()

	testCases := []struct {
		alias    string
		provider string
		model    string
	}{
		{"anthropic", "anthropic", "claude-sonnet-4-5-20250929"},
		{"claude", "claude", "claude-sonnet-4-5-20250929"},
		{"gemini", "gemini", "gemini-1.5-pro-latest"},
		{"google", "google", "gemini-1.5-pro-latest"},
		{"Anthropic", "anthropic", "claude-sonnet-4-5-20250929"},
		{"GEMINI", "gemini", "gemini-1.5-pro-latest"},
		{"  claude  ", "claude", "claude-sonnet-4-5-20250929"},
	}

	for _, tc := range testCases {
		t.Run(tc.alias, func(t *testing.T) {
			provider, model, known := r.Resolve(tc.alias)
			assert.True(t, known)
			assert.Equal(t, tc.provider, provider)
			assert.Equal(t, tc.model, model)
		})
	}
}

func TestResolveUnknownAliasFallsBack(t *testing.T) {
	r := DefaultRegistry()

	provider, model, known := r.Resolve("gpt-4")
	assert.False(t, known)
	assert.Equal(t, "anthropic", provider)
	assert.Equal(t, "claude-sonnet-4-5-20250929", model)
}

func TestResolveEmptyAliasUsesDefault(t *testing.T) {
	r := DefaultRegistry()

	provider, _, known := r.Resolve("")
	assert.True(t, known)
	assert.Equal(t, "anthropic", provider)
}

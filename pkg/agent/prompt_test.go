package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildExtractionPrompt(t *testing.T) {
	prompt := BuildExtractionPrompt("Alice: hello team", "Weekly Sync", "2026-08-28")

	assert.Contains(t, prompt, "Meeting Title: Weekly Sync")
	assert.Contains(t, prompt, "Date: 2026-08-28")
	assert.Contains(t, prompt, "Alice: hello team")

	for _, key := range []string{`"summary"`, `"attendees"`, `"decisions"`, `"action_items"`, `"blockers"`, `"follow_ups"`} {
		assert.Contains(t, prompt, key)
	}
}

func TestBuildExtractionPromptDeterministic(t *testing.T) {
	a := BuildExtractionPrompt("t", "n", "d")
	b := BuildExtractionPrompt("t", "n", "d")
	assert.Equal(t, a, b)
}

package agent

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "anthropic", cfg.Provider)
	assert.Equal(t, 4096, cfg.MaxTokens)
	assert.InDelta(t, 0.1, cfg.Temperature, 1e-9)
	assert.Equal(t, "Hive Meeting Agent", cfg.SlackUsername)
	assert.Equal(t, ":bee:", cfg.SlackIconEmoji)
	assert.NotNil(t, cfg.Logger)
}

func TestLoadConfigFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"provider: gemini\nmax_tokens: 2048\nslack_username: Notes Bot\n",
	), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "gemini", cfg.Provider)
	assert.Equal(t, 2048, cfg.MaxTokens)
	assert.Equal(t, "Notes Bot", cfg.SlackUsername)
	assert.InDelta(t, 0.1, cfg.Temperature, 1e-9, "unset fields keep their defaults")
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("provider: gemini\n"), 0o644))

	t.Setenv("MEETING_AGENT_LLM_PROVIDER", "anthropic")
	t.Setenv("SLACK_BOT_TOKEN", "xoxb-from-env")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "anthropic", cfg.Provider)
	assert.Equal(t, "xoxb-from-env", cfg.SlackBotToken)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig("/nonexistent/config.yaml")
	require.Error(t, err)
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "anthropic", cfg.Provider)
}

package agent

import (
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/adenhq/meeting-notes-agent/internal/llm"
)

// Config is the runtime configuration for a single agent instance. It is an
// explicit value handed to the agent, not a process-wide singleton.
type Config struct {
	Provider    string  `yaml:"provider"`
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`

	SlackUsername       string `yaml:"slack_username"`
	SlackIconEmoji      string `yaml:"slack_icon_emoji"`
	SlackDefaultChannel string `yaml:"slack_default_channel"`

	// Credentials are sourced from the environment, never from config files.
	AnthropicAPIKey string `yaml:"-"`
	GoogleAPIKey    string `yaml:"-"`
	SlackBotToken   string `yaml:"-"`

	Registry llm.Registry `yaml:"-"`
	Logger   *zap.Logger  `yaml:"-"`
}

// DefaultConfig mirrors the agent's shipped defaults: low temperature for
// factual extraction, the standard provider registry, and the bee persona
// on Slack posts.
func DefaultConfig() Config {
	return Config{
		Provider:       "anthropic",
		MaxTokens:      4096,
		Temperature:    0.1,
		SlackUsername:  "Hive Meeting Agent",
		SlackIconEmoji: ":bee:",
		Registry:       llm.DefaultRegistry(),
		Logger:         zap.NewNop(),
	}
}

// LoadConfig reads a YAML config file over the defaults, then applies
// environment overrides for credentials and provider selection.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, errors.Wrapf(err, "read config %s", path)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "parse config %s", path)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overlays environment variables onto the config.
func (c *Config) applyEnv() {
	c.Provider = envStr("MEETING_AGENT_LLM_PROVIDER", c.Provider)
	c.AnthropicAPIKey = envStr("ANTHROPIC_API_KEY", c.AnthropicAPIKey)
	c.GoogleAPIKey = envStr("GEMINI_API_KEY", c.GoogleAPIKey)
	c.SlackBotToken = envStr("SLACK_BOT_TOKEN", c.SlackBotToken)
	c.SlackDefaultChannel = envStr("SLACK_DEFAULT_CHANNEL", c.SlackDefaultChannel)
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Metadata is static information about this agent.
type Metadata struct {
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// DefaultMetadata describes the shipped agent.
func DefaultMetadata() Metadata {
	return Metadata{
		Name:    "Meeting Notes & Action Item Agent",
		Version: "1.0.0",
		Description: "Parses meeting transcripts to extract structured summaries, decisions, " +
			"action items with owners and due dates, blockers, and follow-ups. " +
			"Optionally delivers results to Slack.",
		Tags: []string{"meetings", "productivity", "slack", "action-items", "nlp"},
	}
}

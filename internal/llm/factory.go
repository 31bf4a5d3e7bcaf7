package llm

import (
	"context"

	"github.com/pkg/errors"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"
	"github.com/tmc/langchaingo/llms/googleai"
)

// Credentials carries provider API keys. Empty keys defer to each client's
// own environment lookup.
type Credentials struct {
	AnthropicAPIKey string
	GoogleAPIKey    string
}

// New constructs a langchaingo model client for a resolved provider alias
// and model identifier.
func New(ctx context.Context, provider, model string, creds Credentials) (llms.Model, error) {
	switch provider {
	case "anthropic", "claude":
		opts := []anthropic.Option{anthropic.WithModel(model)}
		if creds.AnthropicAPIKey != "" {
			opts = append(opts, anthropic.WithToken(creds.AnthropicAPIKey))
		}
		client, err := anthropic.New(opts...)
		if err != nil {
			return nil, errors.Wrap(err, "create anthropic client")
		}
		return client, nil

	case "gemini", "google":
		opts := []googleai.Option{googleai.WithDefaultModel(model)}
		if creds.GoogleAPIKey != "" {
			opts = append(opts, googleai.WithAPIKey(creds.GoogleAPIKey))
		}
		client, err := googleai.New(ctx, opts...)
		if err != nil {
			return nil, errors.Wrap(err, "create googleai client")
		}
		return client, nil
	}

	return nil, errors.Errorf("unsupported provider %q", provider)
}

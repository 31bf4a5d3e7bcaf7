package slack

import (
	"context"

	"github.com/pkg/errors"
)

// ToolName is the name the delivery tool is registered and dispatched under.
const ToolName = "slack_post_message"

// MessageTool exposes the client as a registry tool. Arguments: channel
// (string, required), text (string), blocks ([]Block), thread_ts (string).
type MessageTool struct {
	client *Client
}

func NewMessageTool(client *Client) *MessageTool {
	return &MessageTool{client: client}
}

func (t *MessageTool) Name() string {
	return ToolName
}

func (t *MessageTool) Description() string {
	return "Post a message to a Slack channel using the Slack Web API. Supports Block Kit blocks with plain-text fallback."
}

func (t *MessageTool) Call(ctx context.Context, args map[string]any) (map[string]any, error) {
	channel, _ := args["channel"].(string)
	if channel == "" {
		return nil, errors.New("channel argument is required")
	}

	req := PostMessageRequest{
		Channel: channel,
		Text:    "Meeting Notes",
	}
	if text, ok := args["text"].(string); ok && text != "" {
		req.Text = text
	}
	if blocks, ok := args["blocks"].([]Block); ok {
		req.Blocks = blocks
	}
	if threadTS, ok := args["thread_ts"].(string); ok {
		req.ThreadTS = threadTS
	}

	resp, err := t.client.PostMessage(ctx, req)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"ok":      resp.OK,
		"channel": resp.Channel,
		"ts":      resp.TS,
	}, nil
}

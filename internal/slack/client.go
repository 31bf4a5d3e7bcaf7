package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const defaultPostMessageURL = "https://slack.com/api/chat.postMessage"

// Client posts messages through the Slack Web API. Requires a bot token
// with chat:write (and chat:write.public for channels the bot hasn't
// joined).
type Client struct {
	token  string
	apiURL string
	client *http.Client
	logger *zap.Logger

	username  string
	iconEmoji string
}

type ClientOption func(*Client)

// WithAPIURL overrides the chat.postMessage endpoint, mainly for tests.
func WithAPIURL(url string) ClientOption {
	return func(c *Client) {
		c.apiURL = url
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.client = hc
	}
}

// WithUsername sets the bot display name on posted messages.
func WithUsername(name string) ClientOption {
	return func(c *Client) {
		c.username = name
	}
}

// WithIconEmoji sets the bot icon emoji on posted messages.
func WithIconEmoji(emoji string) ClientOption {
	return func(c *Client) {
		c.iconEmoji = emoji
	}
}

func NewClient(token string, logger *zap.Logger, opts ...ClientOption) *Client {
	c := &Client{
		token:  token,
		apiURL: defaultPostMessageURL,
		client: &http.Client{Timeout: 15 * time.Second},
		logger: logger,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// PostMessageRequest is the chat.postMessage payload.
type PostMessageRequest struct {
	Channel   string  `json:"channel"`
	Text      string  `json:"text"`
	Blocks    []Block `json:"blocks,omitempty"`
	Username  string  `json:"username,omitempty"`
	IconEmoji string  `json:"icon_emoji,omitempty"`
	ThreadTS  string  `json:"thread_ts,omitempty"`
}

// PostMessageResponse is the subset of the chat.postMessage reply we use.
type PostMessageResponse struct {
	OK      bool   `json:"ok"`
	Channel string `json:"channel,omitempty"`
	TS      string `json:"ts,omitempty"`
	Error   string `json:"error,omitempty"`
}

// PostMessage delivers a message to a channel. The client's username and
// icon defaults apply unless the request sets its own.
func (c *Client) PostMessage(ctx context.Context, req PostMessageRequest) (*PostMessageResponse, error) {
	if c.token == "" {
		return nil, errors.New("slack bot token is not set")
	}
	if req.Channel == "" {
		return nil, errors.New("channel is required")
	}

	if req.Username == "" {
		req.Username = c.username
	}
	if req.IconEmoji == "" {
		req.IconEmoji = c.iconEmoji
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrap(err, "marshal slack payload")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	httpReq.Header.Set("Content-Type", "application/json; charset=utf-8")
	httpReq.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, "slack post")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read response")
	}

	var slackResp PostMessageResponse
	if err := json.Unmarshal(respBody, &slackResp); err != nil {
		return nil, errors.Wrap(err, "parse slack response")
	}
	if !slackResp.OK {
		return nil, errors.Errorf("slack error: %s", slackResp.Error)
	}

	c.logger.Info("posted message to slack",
		zap.String("channel", req.Channel),
		zap.String("ts", slackResp.TS),
		zap.Int("blocks", len(req.Blocks)),
	)
	return &slackResp, nil
}

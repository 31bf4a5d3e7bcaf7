package slack

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPostMessage(t *testing.T) {
	var captured PostMessageRequest
	var authHeader string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(PostMessageResponse{OK: true, Channel: "C123", TS: "1724900000.000100"})
	}))
	defer srv.Close()

	c := NewClient("xoxb-test", zap.NewNop(),
		WithAPIURL(srv.URL),
		WithUsername("Hive Meeting Agent"),
		WithIconEmoji(":bee:"),
	)

	resp, err := c.PostMessage(context.Background(), PostMessageRequest{
		Channel: "#general",
		Text:    "fallback",
		Blocks:  []Block{Header("🐝 Standup")},
	})
	require.NoError(t, err)

	assert.Equal(t, "1724900000.000100", resp.TS)
	assert.Equal(t, "Bearer xoxb-test", authHeader)
	assert.Equal(t, "#general", captured.Channel)
	assert.Equal(t, "Hive Meeting Agent", captured.Username)
	assert.Equal(t, ":bee:", captured.IconEmoji)
	require.Len(t, captured.Blocks, 1)
}

func TestPostMessageRequestOverridesDefaults(t *testing.T) {
	var captured PostMessageRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(PostMessageResponse{OK: true})
	}))
	defer srv.Close()

	c := NewClient("xoxb-test", zap.NewNop(), WithAPIURL(srv.URL), WithUsername("default"))

	_, err := c.PostMessage(context.Background(), PostMessageRequest{
		Channel:  "#general",
		Username: "override",
	})
	require.NoError(t, err)
	assert.Equal(t, "override", captured.Username)
}

func TestPostMessageAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(PostMessageResponse{OK: false, Error: "channel_not_found"})
	}))
	defer srv.Close()

	c := NewClient("xoxb-test", zap.NewNop(), WithAPIURL(srv.URL))

	_, err := c.PostMessage(context.Background(), PostMessageRequest{Channel: "#missing"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "channel_not_found")
}

func TestPostMessageMissingToken(t *testing.T) {
	c := NewClient("", zap.NewNop())
	_, err := c.PostMessage(context.Background(), PostMessageRequest{Channel: "#general"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token")
}

func TestPostMessageMissingChannel(t *testing.T) {
	c := NewClient("xoxb-test", zap.NewNop())
	_, err := c.PostMessage(context.Background(), PostMessageRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "channel")
}

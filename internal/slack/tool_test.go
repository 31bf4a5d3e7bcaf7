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

func TestMessageToolCall(t *testing.T) {
	var captured PostMessageRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(PostMessageResponse{OK: true, Channel: "C123", TS: "1.2"})
	}))
	defer srv.Close()

	tool := NewMessageTool(NewClient("xoxb-test", zap.NewNop(), WithAPIURL(srv.URL)))
	assert.Equal(t, "slack_post_message", tool.Name())

	result, err := tool.Call(context.Background(), map[string]any{
		"channel":   "#general",
		"text":      "notes ready",
		"blocks":    []Block{Divider()},
		"thread_ts": "1724900000.000100",
	})
	require.NoError(t, err)

	assert.Equal(t, true, result["ok"])
	assert.Equal(t, "1.2", result["ts"])
	assert.Equal(t, "notes ready", captured.Text)
	assert.Equal(t, "1724900000.000100", captured.ThreadTS)
	require.Len(t, captured.Blocks, 1)
}

func TestMessageToolRequiresChannel(t *testing.T) {
	tool := NewMessageTool(NewClient("xoxb-test", zap.NewNop()))
	_, err := tool.Call(context.Background(), map[string]any{"text": "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "channel")
}

func TestMessageToolDefaultsText(t *testing.T) {
	var captured PostMessageRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(PostMessageResponse{OK: true})
	}))
	defer srv.Close()

	tool := NewMessageTool(NewClient("xoxb-test", zap.NewNop(), WithAPIURL(srv.URL)))
	_, err := tool.Call(context.Background(), map[string]any{"channel": "#general"})
	require.NoError(t, err)
	assert.Equal(t, "Meeting Notes", captured.Text)
}

package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaudeProviderGenerate(t *testing.T) {
	var body map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "msg_1",
			"type": "message",
			"role": "assistant",
			"model": "claude-test",
			"content": [{"type": "text", "text": "Hello "}, {"type": "text", "text": "there"}],
			"stop_reason": "end_turn",
			"usage": {"input_tokens": 3, "output_tokens": 2}
		}`))
	}))
	defer server.Close()

	p := NewClaudeProvider("test-key", option.WithBaseURL(server.URL), option.WithMaxRetries(0))
	assert.Equal(t, "claude", p.Name())

	text, err := p.Generate(context.Background(), "claude-test", "Say hello")
	require.NoError(t, err)
	assert.Equal(t, "Hello there", text)

	assert.Equal(t, "claude-test", body["model"])
	assert.EqualValues(t, claudeMaxTokens, body["max_tokens"])
	assert.NoError(t, p.Close())
}

func TestClaudeProviderAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"type": "error", "error": {"type": "invalid_request_error", "message": "bad model"}}`))
	}))
	defer server.Close()

	p := NewClaudeProvider("test-key", option.WithBaseURL(server.URL), option.WithMaxRetries(0))

	_, err := p.Generate(context.Background(), "nope", "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to call Claude API")
}

func TestClaudeProviderEmptyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "msg_2", "type": "message", "role": "assistant", "model": "m", "content": [], "usage": {"input_tokens": 1, "output_tokens": 0}}`))
	}))
	defer server.Close()

	p := NewClaudeProvider("test-key", option.WithBaseURL(server.URL), option.WithMaxRetries(0))

	_, err := p.Generate(context.Background(), "m", "hi")
	assert.ErrorContains(t, err, "no text content")
}

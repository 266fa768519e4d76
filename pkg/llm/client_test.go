package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteSuccess(t *testing.T) {
	var captured chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		_, _ = w.Write([]byte(`{
			"model": "gpt-4o-2024-08-06",
			"choices": [{"message": {"content": "{\"summary\":\"ok\"}"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 120, "completion_tokens": 40, "total_tokens": 160}
		}`))
	}))
	defer server.Close()

	client := NewOpenAI(server.URL+"/v1", "test-key", "gpt-4o")
	result, err := client.Complete(context.Background(), Request{
		Messages:    []Message{{Role: "user", Content: "analyze"}},
		Temperature: 0.2,
		MaxTokens:   4000,
		JSONObject:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, `{"summary":"ok"}`, result.Content)
	assert.Equal(t, "gpt-4o-2024-08-06", result.Model)
	assert.Equal(t, 120, result.Usage.PromptTokens)
	assert.Equal(t, 40, result.Usage.CompletionTokens)

	assert.Equal(t, "gpt-4o", captured.Model)
	require.NotNil(t, captured.ResponseFormat)
	assert.Equal(t, "json_object", captured.ResponseFormat.Type)
	assert.Equal(t, 4000, captured.MaxTokens)
}

func TestCompleteRateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"message": "slow down"}}`))
	}))
	defer server.Close()

	client := NewOpenAI(server.URL, "k", "gpt-4o")
	_, err := client.Complete(context.Background(), Request{Messages: []Message{{Role: "user", Content: "x"}}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestCompleteServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewOpenAI(server.URL, "k", "gpt-4o")
	_, err := client.Complete(context.Background(), Request{Messages: []Message{{Role: "user", Content: "x"}}})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRateLimited)
	assert.Contains(t, err.Error(), "500")
}

func TestAzureURLAndAuth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.Header.Get("api-key"))
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.Equal(t, "/openai/deployments/gpt-4o-canary/chat/completions", r.URL.Path)
		assert.Equal(t, "2024-06-01", r.URL.Query().Get("api-version"))
		_, _ = w.Write([]byte(`{"choices": [{"message": {"content": "hi"}}], "usage": {}}`))
	}))
	defer server.Close()

	client := NewAzure(server.URL, "secret", "2024-06-01", "gpt-4o-canary")
	result, err := client.Complete(context.Background(), Request{Messages: []Message{{Role: "user", Content: "x"}}})
	require.NoError(t, err)
	assert.Equal(t, "hi", result.Content)
	assert.Equal(t, "gpt-4o-canary", result.Model)
}

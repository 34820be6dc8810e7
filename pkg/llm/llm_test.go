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

func TestClaudeChat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "key", r.Header.Get("x-api-key"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "claude-test", body["model"])

		w.Write([]byte(`{"content": [{"text": "{\"overallScore\": 70}"}]}`))
	}))
	defer srv.Close()

	l, err := NewFactory().CreateLLM(ProviderClaude, map[string]string{
		"api_key":  "key",
		"model":    "claude-test",
		"base_url": srv.URL + "/",
	})
	require.NoError(t, err)
	assert.Equal(t, "claude-test", l.Model())

	out, err := l.Chat(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, `{"overallScore": 70}`, out)
}

func TestOpenAIChat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
		w.Write([]byte(`{"choices": [{"message": {"content": "{}"}}]}`))
	}))
	defer srv.Close()

	l, err := NewFactory().CreateLLM("OpenAI", map[string]string{"api_key": "key", "base_url": srv.URL})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", l.Model())

	out, err := l.Chat(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "{}", out)
}

func TestChatErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "slow down"}}`))
	}))
	defer srv.Close()

	for _, p := range []Provider{ProviderClaude, ProviderOpenAI} {
		l, err := NewFactory().CreateLLM(p, map[string]string{"api_key": "key", "base_url": srv.URL})
		require.NoError(t, err)

		_, err = l.Chat(context.Background(), "hello")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 429")
	}
}

func TestCreateLLMValidation(t *testing.T) {
	f := NewFactory()

	_, err := f.CreateLLM(ProviderClaude, map[string]string{})
	assert.Error(t, err)

	_, err = f.CreateLLM("gemini", map[string]string{"api_key": "key"})
	assert.Error(t, err)

	_, err = f.CreateLLM(ProviderOpenAI, map[string]string{"api_key": "key", "timeout": "soon"})
	assert.Error(t, err)
}

func TestAvailableProvidersAreCreatable(t *testing.T) {
	f := NewFactory()

	for _, p := range f.GetAvailableProviders() {
		l, err := f.CreateLLM(p, map[string]string{"api_key": "key", "model": "m"})
		require.NoError(t, err, p)
		assert.Equal(t, "m", l.Model())
	}
}

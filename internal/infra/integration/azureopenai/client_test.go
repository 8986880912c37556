package azureopenai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

func TestNewClientRequiresConfig(t *testing.T) {
	_, err := NewClient(Config{Endpoint: "https://x.openai.azure.com", Deployment: "gpt"})
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = NewClient(Config{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestConfigured(t *testing.T) {
	assert.False(t, Config{}.Configured())
	assert.True(t, Config{APIKey: "k", Endpoint: "e", Deployment: "d"}.Configured())
}

func TestClientCallsDeployment(t *testing.T) {
	var gotPath, gotKey, gotVersion string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotVersion = r.URL.Query().Get("api-version")
		gotKey = r.Header.Get("api-key")
		if gotKey == "" {
			gotKey = strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 1700000000,
			"model":   "gpt-4o-mini",
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message": map[string]any{
					"role":    "assistant",
					"content": `{"subject": "Dana, quick idea for Acme"}`,
				},
			}},
			"usage": map[string]any{"prompt_tokens": 10, "completion_tokens": 8, "total_tokens": 18},
		})
	}))
	defer srv.Close()

	llm, err := NewClient(Config{
		APIKey:     "secret",
		Endpoint:   srv.URL + "/",
		Deployment: "email-writer",
		HTTPClient: srv.Client(),
	})
	require.NoError(t, err)

	out, err := llms.GenerateFromSinglePrompt(context.Background(), llm, "write a subject")
	require.NoError(t, err)

	assert.Equal(t, `{"subject": "Dana, quick idea for Acme"}`, out)
	assert.Contains(t, gotPath, "email-writer")
	assert.Contains(t, gotPath, "chat/completions")
	assert.Equal(t, DefaultAPIVersion, gotVersion)
	assert.Equal(t, "secret", gotKey)
}

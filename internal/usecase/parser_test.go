package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSONOutput(t *testing.T) {
	tests := []struct {
		name       string
		completion string
		want       map[string]any
	}{
		{"plain", `{"subject": "Dana, quick idea for Acme"}`, map[string]any{"subject": "Dana, quick idea for Acme"}},
		{"fenced", "```json\n{\"content\": \"Hi Dana\"}\n```", map[string]any{"content": "Hi Dana"}},
		{"fenced no tag", "```\n{\"content\": \"Hi\"}\n```", map[string]any{"content": "Hi"}},
		{"prose around", "Sure! Here it is:\n{\"subject\": \"Hello\"}\nHope that helps.", map[string]any{"subject": "Hello"}},
		{"whitespace", "  \n {\"subject\": \"x\"} \n", map[string]any{"subject": "x"}},
		{"braces after", `{"subject":"Hi"} (note: {tone})`, map[string]any{"subject": "Hi"}},
		{"braces before", `Template {subject} filled: {"subject": "Hi"}`, map[string]any{"subject": "Hi"}},
		{"nested", `{"content": "Hi", "meta": {"tone": "casual"}} done`, map[string]any{"content": "Hi", "meta": map[string]any{"tone": "casual"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseJSONOutput(tt.completion)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseJSONOutputErrors(t *testing.T) {
	_, err := ParseJSONOutput("I cannot help with that.")
	assert.ErrorIs(t, err, ErrNoJSONObject)

	_, err = ParseJSONOutput(`{"subject": "unterminated}`)
	assert.Error(t, err)

	_, err = ParseJSONOutput("")
	assert.ErrorIs(t, err, ErrNoJSONObject)
}

func TestStringField(t *testing.T) {
	out := map[string]any{"email": "fallback", "n": float64(3), "null": nil}

	assert.Equal(t, "fallback", StringField(out, "content", "email"))
	assert.Equal(t, "", StringField(out, "subject"))
	assert.Equal(t, "3", StringField(out, "n"))
	assert.Equal(t, "", StringField(out, "null"))
	assert.Equal(t, "fallback", StringField(out, "null", "email"))
}

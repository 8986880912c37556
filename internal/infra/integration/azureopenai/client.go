package azureopenai

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms/openai"
)

const DefaultAPIVersion = "2024-02-01"

var ErrNotConfigured = errors.New("azure openai: api key, endpoint and deployment are required")

// NewClient builds a chat model bound to one Azure deployment. The returned
// client holds no per-request state and is shared by all requests.
func NewClient(cfg Config) (*openai.LLM, error) {
	if !cfg.Configured() {
		return nil, ErrNotConfigured
	}

	apiVersion := cfg.APIVersion
	if apiVersion == "" {
		apiVersion = DefaultAPIVersion
	}

	opts := []openai.Option{
		openai.WithAPIType(openai.APITypeAzure),
		openai.WithToken(cfg.APIKey),
		openai.WithBaseURL(strings.TrimRight(cfg.Endpoint, "/")),
		openai.WithModel(cfg.Deployment),
		openai.WithAPIVersion(apiVersion),
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, openai.WithHTTPClient(cfg.HTTPClient))
	}

	llm, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("azure openai client: %w", err)
	}
	return llm, nil
}

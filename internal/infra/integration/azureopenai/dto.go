package azureopenai

import "net/http"

type Config struct {
	APIKey     string
	Endpoint   string // https://<resource>.openai.azure.com
	Deployment string // chat deployment name, used as the model
	APIVersion string
	HTTPClient *http.Client
}

// Configured reports whether enough is set to reach the service.
func (c Config) Configured() bool {
	return c.APIKey != "" && c.Endpoint != "" && c.Deployment != ""
}

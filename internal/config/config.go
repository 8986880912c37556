package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"json"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`

	AzureOpenAIAPIKey     string `env:"AZURE_OPENAI_API_KEY,required,notEmpty"`
	AzureOpenAIEndpoint   string `env:"AZURE_OPENAI_ENDPOINT,required,notEmpty"`
	AzureOpenAIDeployment string `env:"AZURE_OPENAI_CHAT_DEPLOYMENT_NAME,required,notEmpty"`
	AzureOpenAIAPIVersion string `env:"AZURE_OPENAI_API_VERSION" envDefault:"2024-02-01"`

	LLMTemperature    float64       `env:"LLM_TEMPERATURE" envDefault:"0.7"`
	GenerationTimeout time.Duration `env:"GENERATION_TIMEOUT" envDefault:"60s"`

	// Empty disables email.generated events.
	AMQPURL string `env:"AMQP_URL"`
}

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

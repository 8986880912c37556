package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"

	"github.com/xavierca1/lead-mailer/internal/config"
	"github.com/xavierca1/lead-mailer/internal/infra/http/handlers"
	"github.com/xavierca1/lead-mailer/internal/infra/http/middleware"
	"github.com/xavierca1/lead-mailer/internal/infra/integration/azureopenai"
	"github.com/xavierca1/lead-mailer/internal/infra/logger"
	"github.com/xavierca1/lead-mailer/internal/infra/queue"
	"github.com/xavierca1/lead-mailer/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatal(err)
	}
	defer zl.Sync()

	// 1. Model client
	azureCfg := azureopenai.Config{
		APIKey:     cfg.AzureOpenAIAPIKey,
		Endpoint:   cfg.AzureOpenAIEndpoint,
		Deployment: cfg.AzureOpenAIDeployment,
		APIVersion: cfg.AzureOpenAIAPIVersion,
	}
	llm, err := azureopenai.NewClient(azureCfg)
	if err != nil {
		zl.Fatal("failed to build model client", zap.Error(err))
	}

	// 2. Optional event publishing
	var publisher usecase.EventPublisher
	var broker handlers.ConnectionChecker
	if cfg.AMQPURL != "" {
		rabbitMQ, err := queue.NewRabbitMQ(cfg.AMQPURL)
		if err != nil {
			zl.Warn("rabbitmq unavailable, email.generated events disabled", zap.Error(err))
		} else {
			defer rabbitMQ.Close()
			publisher = queue.NewProducer(rabbitMQ.Ch)
			broker = rabbitMQ
		}
	}

	// 3. Use case and handlers
	generateEmailUC := usecase.NewGenerateEmailUseCase(
		llm,
		publisher,
		middleware.GenerationMetrics{},
		zl,
		cfg.GenerationTimeout,
		llms.WithTemperature(cfg.LLMTemperature),
	)
	emailHandler := handlers.NewEmailHandler(generateEmailUC, zl)
	healthHandler := handlers.NewHealthHandler(broker)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(zl, emailHandler, healthHandler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		zl.Info("🔥 server listening", zap.String("addr", srv.Addr), zap.String("deployment", cfg.AzureOpenAIDeployment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("listen failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zl.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("forced shutdown", zap.Error(err))
	}
	generateEmailUC.Wait()

	zl.Info("server exited properly")
}

package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"

	"github.com/xavierca1/lead-mailer/internal/entity"
)

type EventPublisher interface {
	PublishEmailGenerated(ctx context.Context, event entity.EmailGeneratedEvent) error
}

// Recorder receives generation metrics.
type Recorder interface {
	ObserveStage(stage string, d time.Duration)
	RecordGeneration(status string)
	RecordIntegrationError(service string)
}

type GenerateEmailUseCase struct {
	LLM         llms.Model
	Publisher   EventPublisher
	Metrics     Recorder
	Logger      *zap.Logger
	Timeout     time.Duration
	CallOptions []llms.CallOption

	mu      sync.Mutex
	closed  bool
	pending sync.WaitGroup
}

type nopRecorder struct{}

func (nopRecorder) ObserveStage(string, time.Duration) {}

func (nopRecorder) RecordGeneration(string) {}

func (nopRecorder) RecordIntegrationError(string) {}

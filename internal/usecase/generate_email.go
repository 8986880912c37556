package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"

	"github.com/xavierca1/lead-mailer/internal/entity"
	"github.com/xavierca1/lead-mailer/internal/prompts"
)

const (
	StageSubject = "subject"
	StageBody    = "body"

	ServiceAzureOpenAI = "azure_openai"

	publishTimeout = 5 * time.Second
)

// NewGenerateEmailUseCase wires the pipeline. publisher and metrics may be
// nil.
func NewGenerateEmailUseCase(
	llm llms.Model,
	publisher EventPublisher,
	metrics Recorder,
	logger *zap.Logger,
	timeout time.Duration,
	callOptions ...llms.CallOption,
) *GenerateEmailUseCase {
	if metrics == nil {
		metrics = nopRecorder{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GenerateEmailUseCase{
		LLM:         llm,
		Publisher:   publisher,
		Metrics:     metrics,
		Logger:      logger,
		Timeout:     timeout,
		CallOptions: callOptions,
	}
}

// Execute generates the subject first and then the opening paragraph,
// feeding the subject into the second prompt so both share one tone.
func (uc *GenerateEmailUseCase) Execute(ctx context.Context, req *entity.EmailRequest) (*entity.GeneratedEmail, error) {
	if uc.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.Timeout)
		defer cancel()
	}

	inputs := prompts.InputsFromRequest(req)
	out := &entity.GeneratedEmail{}

	chain := NewChain().
		AddStage(StageSubject, func(ctx context.Context) error {
			subject, err := uc.runStage(ctx, StageSubject, prompts.RenderSubject, inputs, "subject")
			if err != nil {
				return err
			}
			out.Subject = subject
			return nil
		}).
		AddStage(StageBody, func(ctx context.Context) error {
			body, err := uc.runStage(ctx, StageBody, prompts.RenderBody, prompts.WithSubject(inputs, out.Subject), "content", "email")
			if err != nil {
				return err
			}
			out.Body = body
			return nil
		})

	if err := chain.Execute(ctx); err != nil {
		uc.Metrics.RecordGeneration("failed")
		te := &TechnicalError{
			Code:    CodeGenerationFailed,
			Message: "email generation failed",
			Err:     err,
		}
		var se *StageError
		if errors.As(err, &se) {
			te.Stage = se.Stage
		}
		return nil, te
	}

	uc.Metrics.RecordGeneration("success")
	uc.Logger.Info("email generated",
		zap.String("lead", req.Lead.UniqueIdentifier),
		zap.Int("subject_len", len(out.Subject)),
		zap.Int("body_len", len(out.Body)),
	)

	uc.publish(req, out)
	return out, nil
}

func (uc *GenerateEmailUseCase) runStage(
	ctx context.Context,
	stage string,
	render func(map[string]any) (string, error),
	inputs map[string]any,
	keys ...string,
) (string, error) {
	start := time.Now()
	defer func() {
		uc.Metrics.ObserveStage(stage, time.Since(start))
	}()

	prompt, err := render(inputs)
	if err != nil {
		return "", err
	}

	completion, err := llms.GenerateFromSinglePrompt(ctx, uc.LLM, prompt, uc.CallOptions...)
	if err != nil {
		uc.Metrics.RecordIntegrationError(ServiceAzureOpenAI)
		return "", fmt.Errorf("call model: %w", err)
	}

	parsed, err := ParseJSONOutput(completion)
	if err != nil {
		return "", err
	}

	value := StringField(parsed, keys...)
	if value == "" {
		uc.Logger.Warn("model output missing expected key",
			zap.String("stage", stage),
			zap.Strings("keys", keys),
		)
	}
	return value, nil
}

// publish sends the event in the background; the response never waits on
// the broker.
func (uc *GenerateEmailUseCase) publish(req *entity.EmailRequest, email *entity.GeneratedEmail) {
	if uc.Publisher == nil {
		return
	}

	event := entity.EmailGeneratedEvent{
		ID:             uuid.New().String(),
		LeadIdentifier: req.Lead.UniqueIdentifier,
		FirstName:      req.Lead.FirstName,
		FullName:       req.Lead.FullName,
		WorkEmail:      req.Lead.WorkEmail,
		CompanyName:    req.Lead.JobCompanyName,
		PersonaName:    req.Persona.Name,
		Probability:    req.Probability,
		Subject:        email.Subject,
		Body:           email.Body,
		GeneratedAt:    time.Now().UTC(),
	}

	uc.mu.Lock()
	if uc.closed {
		uc.mu.Unlock()
		uc.Logger.Warn("shutting down, email.generated event dropped", zap.String("event_id", event.ID))
		return
	}
	uc.pending.Add(1)
	uc.mu.Unlock()

	go func() {
		defer uc.pending.Done()

		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()

		if err := uc.Publisher.PublishEmailGenerated(ctx, event); err != nil {
			uc.Logger.Error("failed to publish email.generated event",
				zap.String("event_id", event.ID),
				zap.Error(err),
			)
		}
	}()
}

// Wait stops new event publishes and blocks until in-flight ones finish.
// Generations that complete afterwards still return their email.
func (uc *GenerateEmailUseCase) Wait() {
	uc.mu.Lock()
	uc.closed = true
	uc.mu.Unlock()

	uc.pending.Wait()
}

package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/xavierca1/lead-mailer/internal/entity"
	"github.com/xavierca1/lead-mailer/internal/usecase"
)

const (
	maxRequestBytes = 1 << 20

	msgGenerationFailed = "Failed to generate email"
	msgInvalidJSON      = "Invalid JSON"
)

type EmailGenerator interface {
	Execute(ctx context.Context, req *entity.EmailRequest) (*entity.GeneratedEmail, error)
}

type EmailHandler struct {
	Generator EmailGenerator
	Logger    *zap.Logger
}

func NewEmailHandler(generator EmailGenerator, logger *zap.Logger) *EmailHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EmailHandler{Generator: generator, Logger: logger}
}

// Handle serves POST /v1/email. The request is validated before the model is
// touched; generation failures are logged and reported without their cause.
func (h *EmailHandler) Handle(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeDetail(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return
		}
		writeDetail(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	req, err := usecase.ParseEmailRequest(body)
	if err != nil {
		var de *usecase.DomainError
		if errors.As(err, &de) && de.Code == usecase.CodeValidation {
			if len(de.Fields) == 0 {
				writeDetail(w, http.StatusUnprocessableEntity, de.Message)
				return
			}
			writeDetail(w, http.StatusUnprocessableEntity, de.Fields)
			return
		}
		writeDetail(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	email, err := h.Generator.Execute(r.Context(), req)
	if err != nil {
		fields := []zap.Field{
			zap.Error(err),
			zap.String("lead", req.Lead.UniqueIdentifier),
		}
		var te *usecase.TechnicalError
		if errors.As(err, &te) {
			fields = append(fields, zap.String("stage", te.Stage), zap.String("code", te.Code))
		}
		h.Logger.Error("email generation failed", fields...)
		writeDetail(w, http.StatusInternalServerError, msgGenerationFailed)
		return
	}

	writeJSON(w, http.StatusOK, email)
}

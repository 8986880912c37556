package usecase

import "errors"

const (
	CodeInvalidJSON      = "INVALID_JSON"
	CodeValidation       = "VALIDATION_ERROR"
	CodeGenerationFailed = "GENERATION_FAILED"
)

// DomainError is safe to show to the caller.
type DomainError struct {
	Code    string
	Message string
	Fields  []ValidationError
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

// TechnicalError is logged but never returned verbatim to the caller.
type TechnicalError struct {
	Code    string
	Message string
	Stage   string
	Err     error
}

func (e *TechnicalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *TechnicalError) Unwrap() error {
	return e.Err
}

func IsTechnicalError(err error) bool {
	var te *TechnicalError
	return errors.As(err, &te)
}

package errors

import (
	"errors"
	"fmt"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error

	// Fields carries field-scoped validation messages (path -> message)
	// when Code is CodeValidation.
	Fields map[string]string
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   appErr,
			Fields:  appErr.Fields,
		}
	}
	return &AppError{
		Code:    CodeInternal,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// GetCode returns the error code if it's an AppError, otherwise "UNKNOWN"
func GetCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return "UNKNOWN"
}

// HasCode reports whether err carries the given code
func HasCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// FieldErrors extracts field-scoped messages from a validation error
func FieldErrors(err error) map[string]string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code == CodeValidation {
		return appErr.Fields
	}
	return nil
}

// Error taxonomy. Parse and cache failures are absorbed inside the engine
// and never reach callers; the rest surface with their code intact.
const (
	CodeConfigInvalid       = "CONFIG_INVALID"
	CodeDatabase            = "DATABASE_ERROR"
	CodeValidation          = "VALIDATION_ERROR"
	CodeNotFound            = "NOT_FOUND"
	CodeInternal            = "INTERNAL_ERROR"
	CodeGenerationTransport = "GENERATION_TRANSPORT_ERROR"
	CodeGenerationParse     = "GENERATION_PARSE_ERROR"
	CodeCache               = "CACHE_ERROR"
	CodeInvalidInput        = "INVALID_INPUT"
)

func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

func DatabaseError(message string) *AppError {
	return New(CodeDatabase, message)
}

// Validation builds a field-scoped validation error. The field map is
// surfaced verbatim to the caller so inline errors can be rendered.
func Validation(fields map[string]string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: "profile validation failed",
		Fields:  fields,
	}
}

func NotFound(resource string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", resource))
}

func InternalError(message string) *AppError {
	return New(CodeInternal, message)
}

// GenerationTransport marks the generation collaborator as unreachable.
// Surfaced to callers as a retryable failure, never recovered locally.
func GenerationTransport(cause error) *AppError {
	return &AppError{
		Code:    CodeGenerationTransport,
		Message: "generation service unreachable",
		Cause:   cause,
	}
}

// GenerationParse marks a malformed-but-present generation response.
// Always recovered via the fallback synthesizer, never surfaced.
func GenerationParse(message string, cause error) *AppError {
	return &AppError{
		Code:    CodeGenerationParse,
		Message: message,
		Cause:   cause,
	}
}

func InvalidInput(message string) *AppError {
	return New(CodeInvalidInput, message)
}

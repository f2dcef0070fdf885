package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified streamkit error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Retryable: IsRetryableCode(code),
	}
}

// --- Common Error Constructors ---

// SourceUnavailable creates an AppError for a source that cannot be read right now.
func SourceUnavailable(source string) *AppError {
	return New(ErrCodeSourceUnavailable, fmt.Sprintf("source %s is unavailable", source)).
		WithDetail("source", source)
}

// NotFound creates an AppError for a resource that was not found.
func NotFound(resource string) *AppError {
	return New(ErrCodeNotFound, fmt.Sprintf("%s not found", resource)).
		WithDetail("resource", resource)
}

// Parse creates an AppError for input that could not be parsed.
func Parse(what, input string) *AppError {
	return New(ErrCodeParse, fmt.Sprintf("cannot parse %s", what)).
		WithDetail("input", input)
}

// InvalidInput creates an AppError for invalid input.
func InvalidInput(message string) *AppError {
	return New(ErrCodeInvalidInput, message)
}

// MissingField creates an AppError for a missing required field.
func MissingField(field string) *AppError {
	return New(ErrCodeMissingField, fmt.Sprintf("field %s is required", field)).
		WithDetail("field", field)
}

// Internal creates an AppError for an internal failure.
func Internal(message string) *AppError {
	return New(ErrCodeInternal, message)
}

// Upstream wraps an error raised by an upstream iterator so it keeps its
// classification when forwarded across a hand-off channel.
func Upstream(source string, cause error) *AppError {
	return New(ErrCodeUpstream, fmt.Sprintf("upstream %s failed", source)).
		WithDetail("source", source).
		WithCause(cause)
}

// --- Inspection helpers ---

// AsAppError extracts an *AppError from err's chain, or nil.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// CodeOf returns the error code of err, or ErrCodeInternal for plain errors.
func CodeOf(err error) ErrorCode {
	if appErr := AsAppError(err); appErr != nil {
		return appErr.Code
	}
	return ErrCodeInternal
}

// IsRetryable reports whether err is marked retryable.
func IsRetryable(err error) bool {
	if appErr := AsAppError(err); appErr != nil {
		return appErr.Retryable
	}
	return false
}

package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Source/availability errors (retryable)
const (
	// ErrCodeSourceUnavailable indicates an upstream source is temporarily unavailable.
	ErrCodeSourceUnavailable ErrorCode = "SOURCE_UNAVAILABLE"
	// ErrCodeTimeout indicates a pull timed out.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
)

// Data errors
const (
	// ErrCodeNotFound indicates the requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeParse indicates input data could not be parsed.
	ErrCodeParse ErrorCode = "PARSE_ERROR"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
)

// Internal errors
const (
	// ErrCodeInternal indicates an internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
	// ErrCodeUpstream indicates a failure raised by an upstream iterator.
	ErrCodeUpstream ErrorCode = "UPSTREAM_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeSourceUnavailable: true,
	ErrCodeTimeout:           true,
	ErrCodeUpstream:          true,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}

// Package errors provides unified error handling for streamkit.
// It implements structured error types with machine-readable codes and
// retryable detection, so pipeline failures crossing a hand-off channel
// keep their classification.
package errors

package service

import (
	"errors"
	"fmt"

	"github.com/lexiglow/lexiglow-api/internal/store"
)

// Error handling principles:
// 1. Service methods return sentinel errors for expected error conditions
// 2. Unexpected errors are wrapped in ServiceError with operation context
// 3. Callers use errors.Is/errors.As to check for specific error conditions
// 4. The API layer maps service errors to appropriate HTTP status codes

// ErrInvalidCredentials indicates a failed password verification. The API
// layer maps this to HTTP 401 without revealing which part was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ServiceError wraps unexpected errors from a service with context.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "create_language")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// newServiceError wraps an unexpected error with operation context.
// Sentinel errors of the store taxonomy pass through untouched so callers
// can keep matching on them.
func newServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if store.IsNotFoundError(err) || store.IsDuplicateError(err) ||
		errors.Is(err, store.ErrNotImplemented) ||
		errors.Is(err, store.ErrInvalidEntity) ||
		errors.Is(err, ErrInvalidCredentials) {
		return err
	}

	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// This is a generic version of the entity-specific not found errors
	// (e.g., ErrUserNotFound, ErrLanguageNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a language with the same code).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity violates a referential or
	// check constraint, or fails validation before being stored.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrNotImplemented is returned when a store method is not supported by
	// the active backend. Distinct from a runtime persistence fault.
	ErrNotImplemented = errors.New("method not implemented")

	// ErrTimeout is returned when a storage operation exceeds its deadline.
	ErrTimeout = errors.New("operation timed out")

	// Entity-specific "not found" errors

	// ErrLanguageNotFound indicates that the requested language does not exist.
	ErrLanguageNotFound = fmt.Errorf("%w: language", ErrNotFound)

	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrTextNotFound indicates that the requested text does not exist.
	ErrTextNotFound = fmt.Errorf("%w: text", ErrNotFound)

	// ErrTagNotFound indicates that the requested text tag does not exist.
	ErrTagNotFound = fmt.Errorf("%w: tag", ErrNotFound)

	// ErrVocabularyNotFound indicates that the requested vocabulary does not exist.
	ErrVocabularyNotFound = fmt.Errorf("%w: vocabulary", ErrNotFound)

	// ErrVocabularyItemNotFound indicates that the requested vocabulary item does not exist.
	ErrVocabularyItemNotFound = fmt.Errorf("%w: vocabulary item", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrEmailExists indicates that a user with the given email already exists.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)

	// ErrUsernameExists indicates that a user with the given username already exists.
	ErrUsernameExists = fmt.Errorf("%w: username", ErrDuplicate)

	// ErrLanguageCodeExists indicates that a language with the given code already exists.
	ErrLanguageCodeExists = fmt.Errorf("%w: language code", ErrDuplicate)

	// ErrTagNameExists indicates that a tag with the given name already exists.
	ErrTagNameExists = fmt.Errorf("%w: tag name", ErrDuplicate)

	// ErrVocabularyExists indicates that the user already has a vocabulary
	// for the given language.
	ErrVocabularyExists = fmt.Errorf("%w: vocabulary for language", ErrDuplicate)

	// ErrTermExists indicates that the vocabulary already tracks the given term.
	ErrTermExists = fmt.Errorf("%w: term", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// StoreError is a custom error type for store-specific errors with additional context.
// It is used for persistence faults (connection failure, serialization failure)
// where the operation and entity type matter for diagnosis. The message never
// carries secrets; password hashes are never included.
type StoreError struct {
	Entity    string // The entity type (e.g., "user", "text")
	Operation string // The operation that failed (e.g., "create", "update")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation,
// message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

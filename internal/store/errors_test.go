package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	assert.True(t, IsNotFoundError(ErrNotFound))
	assert.True(t, IsNotFoundError(ErrUserNotFound))
	assert.True(t, IsNotFoundError(ErrLanguageNotFound))
	assert.True(t, IsNotFoundError(fmt.Errorf("lookup failed: %w", ErrTextNotFound)))

	assert.False(t, IsNotFoundError(ErrDuplicate))
	assert.False(t, IsNotFoundError(errors.New("connection refused")))
	assert.False(t, IsNotFoundError(nil))
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(ErrDuplicate))
	assert.True(t, IsDuplicateError(ErrEmailExists))
	assert.True(t, IsDuplicateError(ErrUsernameExists))
	assert.True(t, IsDuplicateError(ErrLanguageCodeExists))
	assert.True(t, IsDuplicateError(fmt.Errorf("create failed: %w", ErrTagNameExists)))

	assert.False(t, IsDuplicateError(ErrNotFound))
	assert.False(t, IsDuplicateError(ErrNotImplemented))
}

func TestEntitySpecificErrorsWrapGeneric(t *testing.T) {
	// Every entity-specific error must remain matchable against its generic kind
	// so callers see one taxonomy regardless of backend.
	for _, err := range []error{
		ErrLanguageNotFound, ErrUserNotFound, ErrTextNotFound,
		ErrTagNotFound, ErrVocabularyNotFound, ErrVocabularyItemNotFound,
	} {
		assert.ErrorIs(t, err, ErrNotFound)
	}

	for _, err := range []error{
		ErrEmailExists, ErrUsernameExists, ErrLanguageCodeExists,
		ErrTagNameExists, ErrVocabularyExists, ErrTermExists,
	} {
		assert.ErrorIs(t, err, ErrDuplicate)
	}
}

func TestStoreError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewStoreError("user", "create", "insert failed", cause)

	assert.Equal(t, "create operation on user failed: insert failed: connection reset", err.Error())
	assert.ErrorIs(t, err, cause)

	bare := NewStoreError("text", "delete", "no result", nil)
	assert.Equal(t, "delete operation on text failed: no result", bare.Error())
	assert.Nil(t, errors.Unwrap(bare))
}

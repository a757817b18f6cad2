package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/lexiglow/lexiglow-api/internal/api/shared"
	"github.com/lexiglow/lexiglow-api/internal/domain"
	"github.com/lexiglow/lexiglow-api/internal/service"
	"github.com/lexiglow/lexiglow-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes. Unknown
// errors default to 500 so internals never leak through the status line.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized

	case store.IsNotFoundError(err):
		return http.StatusNotFound

	case store.IsDuplicateError(err):
		return http.StatusConflict

	case errors.Is(err, store.ErrNotImplemented):
		return http.StatusNotImplemented

	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation),
		isDomainValidationError(err):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a user-facing message for the error without
// exposing internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid credentials"

	case errors.Is(err, store.ErrLanguageNotFound):
		return "Language not found"
	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"
	case errors.Is(err, store.ErrTextNotFound):
		return "Text not found"
	case errors.Is(err, store.ErrTagNotFound):
		return "Tag not found"
	case errors.Is(err, store.ErrVocabularyItemNotFound):
		return "Vocabulary item not found"
	case errors.Is(err, store.ErrVocabularyNotFound):
		return "Vocabulary not found"
	case store.IsNotFoundError(err):
		return "Resource not found"

	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"
	case errors.Is(err, store.ErrUsernameExists):
		return "Username already exists"
	case errors.Is(err, store.ErrLanguageCodeExists):
		return "Language code already exists"
	case errors.Is(err, store.ErrTagNameExists):
		return "Tag name already exists"
	case errors.Is(err, store.ErrVocabularyExists):
		return "A vocabulary for this language already exists"
	case errors.Is(err, store.ErrTermExists):
		return "Term is already tracked in this vocabulary"
	case store.IsDuplicateError(err):
		return "Resource already exists"

	case errors.Is(err, store.ErrNotImplemented):
		return "Operation is not supported by the configured storage backend"

	case isDomainValidationError(err):
		return err.Error()
	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	default:
		return "An unexpected error occurred"
	}
}

// isDomainValidationError reports whether the error is one of the domain
// validation sentinels. Their messages are written for users, so they are
// safe to return verbatim.
func isDomainValidationError(err error) bool {
	for _, sentinel := range []error{
		domain.ErrEmptyName,
		domain.ErrEmptyCode,
		domain.ErrEmptyEmail,
		domain.ErrInvalidEmail,
		domain.ErrEmptyUsername,
		domain.ErrEmptyPasswordHash,
		domain.ErrEmptyLanguageRef,
		domain.ErrEmptyUserRef,
		domain.ErrEmptyVocabularyRef,
		domain.ErrEmptyTitle,
		domain.ErrEmptyContent,
		domain.ErrEmptyTerm,
		domain.ErrInvalidProficiencyLevel,
		domain.ErrInvalidPartOfSpeech,
		domain.ErrInvalidItemStatus,
		domain.ErrNegativeWordCount,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// HandleAPIError writes an error response with a mapped status code and a
// sanitized message. An empty overrideMessage uses the mapped safe message.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, overrideMessage string) {
	status := MapErrorToStatusCode(err)
	message := overrideMessage
	if message == "" {
		message = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}

// SanitizeValidationError turns a validator error into a user-friendly
// message without the struct internals validator includes by default.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	if strings.Contains(errMsg, "Field validation") {
		// "Key: 'CreateLanguageRequest.Code' Error:Field validation for 'Code' failed on the 'required' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}
				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, validationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

func validationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}

package store

import (
	"context"

	"github.com/lexiglow/lexiglow-api/internal/domain"
)

// VocabularyStore defines the interface for user vocabulary persistence.
// A user has at most one vocabulary per language; a vocabulary tracks each
// term at most once.
//
// The document backend does not currently support vocabularies and returns
// ErrNotImplemented from every method.
type VocabularyStore interface {
	Repository[domain.UserVocabulary]

	// GetByUser retrieves all vocabularies belonging to the given user.
	GetByUser(ctx context.Context, userID string) ([]*domain.UserVocabulary, error)

	// GetByUserAndLanguage retrieves the user's vocabulary for the given
	// language. Returns an error wrapping ErrVocabularyNotFound if absent.
	GetByUserAndLanguage(ctx context.Context, userID, languageID string) (*domain.UserVocabulary, error)

	// AddItem persists a new tracked word in its parent vocabulary.
	// Returns an error wrapping ErrTermExists if the vocabulary already
	// tracks the term.
	AddItem(ctx context.Context, item *domain.UserVocabularyItem) (*domain.UserVocabularyItem, error)

	// GetItems retrieves the items of a vocabulary, paginated.
	GetItems(ctx context.Context, vocabularyID string, skip, limit int) ([]*domain.UserVocabularyItem, error)

	// UpdateItem replaces the mutable fields of a tracked word.
	// Returns an error wrapping ErrVocabularyItemNotFound if absent.
	UpdateItem(ctx context.Context, id string, item *domain.UserVocabularyItem) (*domain.UserVocabularyItem, error)

	// DeleteItem removes a tracked word. Returns true if an item was removed.
	DeleteItem(ctx context.Context, id string) (bool, error)
}

package store

import (
	"context"

	"github.com/lexiglow/lexiglow-api/internal/domain"
)

// LanguageStore defines the interface for language data persistence.
type LanguageStore interface {
	Repository[domain.Language]

	// GetByCode retrieves a language by its ISO code (exact match).
	// Returns an error wrapping ErrLanguageNotFound if no language has the code.
	GetByCode(ctx context.Context, code string) (*domain.Language, error)

	// GetByName retrieves a language by its English name (exact match).
	// Returns an error wrapping ErrLanguageNotFound if no language has the name.
	GetByName(ctx context.Context, name string) (*domain.Language, error)

	// CodeExists reports whether a language with the given ISO code exists.
	// Used for pre-flight uniqueness checks before create/update.
	CodeExists(ctx context.Context, code string) (bool, error)
}

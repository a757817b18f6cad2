package store

import (
	"context"

	"github.com/lexiglow/lexiglow-api/internal/domain"
)

// TextStore defines the interface for text and text-tag data persistence.
type TextStore interface {
	Repository[domain.Text]

	// GetByLanguage retrieves texts in the given language, paginated.
	GetByLanguage(ctx context.Context, languageID string, skip, limit int) ([]*domain.Text, error)

	// GetByUser retrieves texts authored by the given user, paginated.
	GetByUser(ctx context.Context, userID string, skip, limit int) ([]*domain.Text, error)

	// GetByProficiencyLevel retrieves texts at the given CEFR level, paginated.
	GetByProficiencyLevel(ctx context.Context, level domain.ProficiencyLevel, skip, limit int) ([]*domain.Text, error)

	// GetPublicTexts retrieves texts with public visibility, paginated.
	GetPublicTexts(ctx context.Context, skip, limit int) ([]*domain.Text, error)

	// SearchByTitle retrieves texts whose title contains the query,
	// case-insensitively. The search is not restricted to public texts.
	SearchByTitle(ctx context.Context, query string, skip, limit int) ([]*domain.Text, error)

	// GetByTags retrieves texts carrying any of the given tags (union
	// semantics). A text matching several tags appears once.
	GetByTags(ctx context.Context, tagIDs []string, skip, limit int) ([]*domain.Text, error)

	// CreateTag persists a new text tag. Tag names are unique; returns an
	// error wrapping ErrTagNameExists on a duplicate name.
	CreateTag(ctx context.Context, tag *domain.TextTag) (*domain.TextTag, error)

	// AddTagToText associates a tag with a text. Adding an existing
	// association is a no-op.
	AddTagToText(ctx context.Context, textID, tagID string) error

	// RemoveTagFromText removes a tag association from a text. Returns true
	// if an association was removed.
	RemoveTagFromText(ctx context.Context, textID, tagID string) (bool, error)
}

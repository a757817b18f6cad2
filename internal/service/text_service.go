package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/lexiglow/lexiglow-api/internal/domain"
	"github.com/lexiglow/lexiglow-api/internal/store"
)

// CreateTextParams carries the input for adding a reading text.
type CreateTextParams struct {
	Title            string
	Content          string
	LanguageID       string
	UserID           string
	ProficiencyLevel domain.ProficiencyLevel
	Source           string
	IsPublic         *bool
}

// UpdateTextParams carries the full replacement state for a text.
type UpdateTextParams struct {
	Title            string
	Content          string
	LanguageID       string
	ProficiencyLevel domain.ProficiencyLevel
	Source           string
	IsPublic         bool
}

// TextService provides reading material operations.
type TextService interface {
	// CreateText adds a text. Word count is derived from the content; texts
	// default to public visibility unless the params say otherwise.
	CreateText(ctx context.Context, params CreateTextParams) (*domain.Text, error)

	// GetText retrieves a text by ID.
	GetText(ctx context.Context, id string) (*domain.Text, error)

	// ListTexts retrieves a page of all texts.
	ListTexts(ctx context.Context, skip, limit int) ([]*domain.Text, error)

	// ListByLanguage retrieves texts in a language, paginated.
	ListByLanguage(ctx context.Context, languageID string, skip, limit int) ([]*domain.Text, error)

	// ListByUser retrieves texts authored by a user, paginated.
	ListByUser(ctx context.Context, userID string, skip, limit int) ([]*domain.Text, error)

	// ListByProficiencyLevel retrieves texts at a CEFR level, paginated.
	ListByProficiencyLevel(ctx context.Context, level domain.ProficiencyLevel, skip, limit int) ([]*domain.Text, error)

	// ListPublic retrieves publicly visible texts, paginated.
	ListPublic(ctx context.Context, skip, limit int) ([]*domain.Text, error)

	// SearchByTitle retrieves texts whose title contains the query.
	SearchByTitle(ctx context.Context, query string, skip, limit int) ([]*domain.Text, error)

	// ListByTags retrieves texts carrying any of the given tags.
	ListByTags(ctx context.Context, tagIDs []string, skip, limit int) ([]*domain.Text, error)

	// UpdateText replaces a text's content and metadata.
	UpdateText(ctx context.Context, id string, params UpdateTextParams) (*domain.Text, error)

	// DeleteText removes a text. Returns false if it did not exist.
	DeleteText(ctx context.Context, id string) (bool, error)

	// CreateTag defines a new tag. Tag names are unique.
	CreateTag(ctx context.Context, name, description string) (*domain.TextTag, error)

	// TagText associates a tag with a text. Idempotent.
	TagText(ctx context.Context, textID, tagID string) error

	// UntagText removes a tag association. Returns false if it did not exist.
	UntagText(ctx context.Context, textID, tagID string) (bool, error)
}

// textServiceImpl implements the TextService interface
type textServiceImpl struct {
	texts  store.TextStore
	logger *slog.Logger
}

// NewTextService creates a new TextService.
func NewTextService(texts store.TextStore, logger *slog.Logger) (TextService, error) {
	if texts == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "texts store cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &textServiceImpl{
		texts:  texts,
		logger: logger.With(slog.String("component", "text_service")),
	}, nil
}

// countWords derives a word count by whitespace splitting. Good enough for
// difficulty estimates; not a linguistic tokenization.
func countWords(content string) int {
	return len(strings.Fields(content))
}

// CreateText adds a text.
func (s *textServiceImpl) CreateText(ctx context.Context, params CreateTextParams) (*domain.Text, error) {
	text, err := domain.NewText(
		params.Title, params.Content,
		params.LanguageID, params.UserID,
		params.ProficiencyLevel, countWords(params.Content),
	)
	if err != nil {
		return nil, err
	}
	text.Source = params.Source
	if params.IsPublic != nil {
		text.IsPublic = *params.IsPublic
	}

	created, err := s.texts.Create(ctx, text)
	if err != nil {
		return nil, newServiceError("create_text", "failed to create text", err)
	}

	s.logger.Info("text created",
		slog.String("text_id", created.ID),
		slog.String("language_id", created.LanguageID))
	return created, nil
}

// GetText retrieves a text by ID.
func (s *textServiceImpl) GetText(ctx context.Context, id string) (*domain.Text, error) {
	text, err := s.texts.GetByID(ctx, id)
	if err != nil {
		return nil, newServiceError("get_text", "failed to retrieve text", err)
	}
	return text, nil
}

// ListTexts retrieves a page of all texts.
func (s *textServiceImpl) ListTexts(ctx context.Context, skip, limit int) ([]*domain.Text, error) {
	texts, err := s.texts.GetAll(ctx, skip, limit)
	if err != nil {
		return nil, newServiceError("list_texts", "failed to list texts", err)
	}
	return texts, nil
}

// ListByLanguage retrieves texts in a language.
func (s *textServiceImpl) ListByLanguage(ctx context.Context, languageID string, skip, limit int) ([]*domain.Text, error) {
	texts, err := s.texts.GetByLanguage(ctx, languageID, skip, limit)
	if err != nil {
		return nil, newServiceError("list_texts_by_language", "failed to list texts", err)
	}
	return texts, nil
}

// ListByUser retrieves texts authored by a user.
func (s *textServiceImpl) ListByUser(ctx context.Context, userID string, skip, limit int) ([]*domain.Text, error) {
	texts, err := s.texts.GetByUser(ctx, userID, skip, limit)
	if err != nil {
		return nil, newServiceError("list_texts_by_user", "failed to list texts", err)
	}
	return texts, nil
}

// ListByProficiencyLevel retrieves texts at a CEFR level.
func (s *textServiceImpl) ListByProficiencyLevel(ctx context.Context, level domain.ProficiencyLevel, skip, limit int) ([]*domain.Text, error) {
	if !level.IsValid() {
		return nil, domain.ErrInvalidProficiencyLevel
	}
	texts, err := s.texts.GetByProficiencyLevel(ctx, level, skip, limit)
	if err != nil {
		return nil, newServiceError("list_texts_by_level", "failed to list texts", err)
	}
	return texts, nil
}

// ListPublic retrieves publicly visible texts.
func (s *textServiceImpl) ListPublic(ctx context.Context, skip, limit int) ([]*domain.Text, error) {
	texts, err := s.texts.GetPublicTexts(ctx, skip, limit)
	if err != nil {
		return nil, newServiceError("list_public_texts", "failed to list texts", err)
	}
	return texts, nil
}

// SearchByTitle retrieves texts whose title contains the query.
func (s *textServiceImpl) SearchByTitle(ctx context.Context, query string, skip, limit int) ([]*domain.Text, error) {
	texts, err := s.texts.SearchByTitle(ctx, query, skip, limit)
	if err != nil {
		return nil, newServiceError("search_texts", "failed to search texts", err)
	}
	return texts, nil
}

// ListByTags retrieves texts carrying any of the given tags.
func (s *textServiceImpl) ListByTags(ctx context.Context, tagIDs []string, skip, limit int) ([]*domain.Text, error) {
	texts, err := s.texts.GetByTags(ctx, tagIDs, skip, limit)
	if err != nil {
		return nil, newServiceError("list_texts_by_tags", "failed to list texts", err)
	}
	return texts, nil
}

// UpdateText replaces a text's content and metadata. Authorship never
// changes through updates.
func (s *textServiceImpl) UpdateText(ctx context.Context, id string, params UpdateTextParams) (*domain.Text, error) {
	current, err := s.texts.GetByID(ctx, id)
	if err != nil {
		return nil, newServiceError("update_text", "failed to retrieve text", err)
	}

	current.Title = params.Title
	current.Content = params.Content
	current.LanguageID = params.LanguageID
	current.ProficiencyLevel = params.ProficiencyLevel
	current.Source = params.Source
	current.IsPublic = params.IsPublic
	current.WordCount = countWords(params.Content)
	if err := current.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.texts.Update(ctx, id, current)
	if err != nil {
		return nil, newServiceError("update_text", "failed to update text", err)
	}

	s.logger.Info("text updated", slog.String("text_id", id))
	return updated, nil
}

// DeleteText removes a text.
func (s *textServiceImpl) DeleteText(ctx context.Context, id string) (bool, error) {
	deleted, err := s.texts.Delete(ctx, id)
	if err != nil {
		return false, newServiceError("delete_text", "failed to delete text", err)
	}
	if deleted {
		s.logger.Info("text deleted", slog.String("text_id", id))
	}
	return deleted, nil
}

// CreateTag defines a new tag.
func (s *textServiceImpl) CreateTag(ctx context.Context, name, description string) (*domain.TextTag, error) {
	tag, err := domain.NewTextTag(name, description)
	if err != nil {
		return nil, err
	}

	created, err := s.texts.CreateTag(ctx, tag)
	if err != nil {
		return nil, newServiceError("create_tag", "failed to create tag", err)
	}

	s.logger.Info("tag created",
		slog.String("tag_id", created.ID),
		slog.String("tag_name", created.Name))
	return created, nil
}

// TagText associates a tag with a text.
func (s *textServiceImpl) TagText(ctx context.Context, textID, tagID string) error {
	if err := s.texts.AddTagToText(ctx, textID, tagID); err != nil {
		return newServiceError("tag_text", "failed to tag text", err)
	}
	return nil
}

// UntagText removes a tag association.
func (s *textServiceImpl) UntagText(ctx context.Context, textID, tagID string) (bool, error) {
	removed, err := s.texts.RemoveTagFromText(ctx, textID, tagID)
	if err != nil {
		return false, newServiceError("untag_text", "failed to untag text", err)
	}
	return removed, nil
}

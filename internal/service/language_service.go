package service

import (
	"context"
	"log/slog"

	"github.com/lexiglow/lexiglow-api/internal/domain"
	"github.com/lexiglow/lexiglow-api/internal/store"
)

// LanguageService provides language catalog operations.
type LanguageService interface {
	// CreateLanguage adds a language to the catalog. The code must be unique.
	CreateLanguage(ctx context.Context, name, code, nativeName string) (*domain.Language, error)

	// GetLanguage retrieves a language by its ID.
	GetLanguage(ctx context.Context, id string) (*domain.Language, error)

	// GetLanguageByCode retrieves a language by its ISO code.
	GetLanguageByCode(ctx context.Context, code string) (*domain.Language, error)

	// ListLanguages retrieves a page of the catalog.
	ListLanguages(ctx context.Context, skip, limit int) ([]*domain.Language, error)

	// UpdateLanguage replaces a language's name and native name. The code is
	// immutable once assigned.
	UpdateLanguage(ctx context.Context, id, name, nativeName string) (*domain.Language, error)

	// DeleteLanguage removes a language. Returns false if it did not exist.
	DeleteLanguage(ctx context.Context, id string) (bool, error)
}

// languageServiceImpl implements the LanguageService interface
type languageServiceImpl struct {
	languages store.LanguageStore
	logger    *slog.Logger
}

// NewLanguageService creates a new LanguageService.
func NewLanguageService(languages store.LanguageStore, logger *slog.Logger) (LanguageService, error) {
	if languages == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "languages store cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &languageServiceImpl{
		languages: languages,
		logger:    logger.With(slog.String("component", "language_service")),
	}, nil
}

// CreateLanguage adds a language to the catalog.
func (s *languageServiceImpl) CreateLanguage(ctx context.Context, name, code, nativeName string) (*domain.Language, error) {
	lang, err := domain.NewLanguage(name, code, nativeName)
	if err != nil {
		return nil, err
	}

	// Pre-check for a friendlier error; the store's unique constraint still
	// backs this up under concurrency.
	exists, err := s.languages.CodeExists(ctx, lang.Code)
	if err != nil {
		return nil, newServiceError("create_language", "failed to check code uniqueness", err)
	}
	if exists {
		return nil, store.ErrLanguageCodeExists
	}

	created, err := s.languages.Create(ctx, lang)
	if err != nil {
		return nil, newServiceError("create_language", "failed to create language", err)
	}

	s.logger.Info("language created",
		slog.String("language_id", created.ID),
		slog.String("code", created.Code))
	return created, nil
}

// GetLanguage retrieves a language by its ID.
func (s *languageServiceImpl) GetLanguage(ctx context.Context, id string) (*domain.Language, error) {
	lang, err := s.languages.GetByID(ctx, id)
	if err != nil {
		return nil, newServiceError("get_language", "failed to retrieve language", err)
	}
	return lang, nil
}

// GetLanguageByCode retrieves a language by its ISO code.
func (s *languageServiceImpl) GetLanguageByCode(ctx context.Context, code string) (*domain.Language, error) {
	lang, err := s.languages.GetByCode(ctx, code)
	if err != nil {
		return nil, newServiceError("get_language_by_code", "failed to retrieve language", err)
	}
	return lang, nil
}

// ListLanguages retrieves a page of the catalog.
func (s *languageServiceImpl) ListLanguages(ctx context.Context, skip, limit int) ([]*domain.Language, error) {
	languages, err := s.languages.GetAll(ctx, skip, limit)
	if err != nil {
		return nil, newServiceError("list_languages", "failed to list languages", err)
	}
	return languages, nil
}

// UpdateLanguage replaces a language's mutable fields.
func (s *languageServiceImpl) UpdateLanguage(ctx context.Context, id, name, nativeName string) (*domain.Language, error) {
	current, err := s.languages.GetByID(ctx, id)
	if err != nil {
		return nil, newServiceError("update_language", "failed to retrieve language", err)
	}

	current.Name = name
	current.NativeName = nativeName
	if err := current.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.languages.Update(ctx, id, current)
	if err != nil {
		return nil, newServiceError("update_language", "failed to update language", err)
	}

	s.logger.Info("language updated", slog.String("language_id", id))
	return updated, nil
}

// DeleteLanguage removes a language.
func (s *languageServiceImpl) DeleteLanguage(ctx context.Context, id string) (bool, error) {
	deleted, err := s.languages.Delete(ctx, id)
	if err != nil {
		return false, newServiceError("delete_language", "failed to delete language", err)
	}
	if deleted {
		s.logger.Info("language deleted", slog.String("language_id", id))
	}
	return deleted, nil
}

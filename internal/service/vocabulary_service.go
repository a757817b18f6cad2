package service

import (
	"context"
	"log/slog"

	"github.com/lexiglow/lexiglow-api/internal/domain"
	"github.com/lexiglow/lexiglow-api/internal/store"
)

// AddItemParams carries the input for tracking a new term.
type AddItemParams struct {
	VocabularyID string
	Term         string
	Lemma        string
	Stem         string
	PartOfSpeech domain.PartOfSpeech
	Frequency    float64
	Notes        string
}

// UpdateItemParams carries the full replacement state for an item. The
// vocabulary binding never changes; stores ignore attempts to move an item.
type UpdateItemParams struct {
	VocabularyID    string
	Term            string
	Lemma           string
	Stem            string
	PartOfSpeech    domain.PartOfSpeech
	Frequency       float64
	Status          domain.VocabularyItemStatus
	TimesReviewed   int
	ConfidenceLevel domain.ProficiencyLevel
	Notes           string
}

// VocabularyService provides vocabulary tracking operations.
type VocabularyService interface {
	// CreateVocabulary starts a vocabulary for a user and language. A user
	// has at most one vocabulary per language.
	CreateVocabulary(ctx context.Context, userID, languageID, name string) (*domain.UserVocabulary, error)

	// GetVocabulary retrieves a vocabulary by ID.
	GetVocabulary(ctx context.Context, id string) (*domain.UserVocabulary, error)

	// GetUserVocabularies retrieves all vocabularies belonging to a user.
	GetUserVocabularies(ctx context.Context, userID string) ([]*domain.UserVocabulary, error)

	// GetVocabularyForLanguage retrieves a user's vocabulary for a language.
	GetVocabularyForLanguage(ctx context.Context, userID, languageID string) (*domain.UserVocabulary, error)

	// RenameVocabulary changes a vocabulary's display name.
	RenameVocabulary(ctx context.Context, id, name string) (*domain.UserVocabulary, error)

	// DeleteVocabulary removes a vocabulary and its items. Returns false if
	// it did not exist.
	DeleteVocabulary(ctx context.Context, id string) (bool, error)

	// AddItem tracks a new term. The term must not already be tracked in
	// the vocabulary.
	AddItem(ctx context.Context, params AddItemParams) (*domain.UserVocabularyItem, error)

	// GetItems retrieves a page of a vocabulary's items.
	GetItems(ctx context.Context, vocabularyID string, skip, limit int) ([]*domain.UserVocabularyItem, error)

	// UpdateItem replaces an item's content and learning state.
	UpdateItem(ctx context.Context, id string, params UpdateItemParams) (*domain.UserVocabularyItem, error)

	// RemoveItem stops tracking a term. Returns false if it did not exist.
	RemoveItem(ctx context.Context, id string) (bool, error)
}

// vocabularyServiceImpl implements the VocabularyService interface
type vocabularyServiceImpl struct {
	vocabularies store.VocabularyStore
	logger       *slog.Logger
}

// NewVocabularyService creates a new VocabularyService.
func NewVocabularyService(vocabularies store.VocabularyStore, logger *slog.Logger) (VocabularyService, error) {
	if vocabularies == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "vocabularies store cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &vocabularyServiceImpl{
		vocabularies: vocabularies,
		logger:       logger.With(slog.String("component", "vocabulary_service")),
	}, nil
}

// CreateVocabulary starts a vocabulary for a user and language.
func (s *vocabularyServiceImpl) CreateVocabulary(ctx context.Context, userID, languageID, name string) (*domain.UserVocabulary, error) {
	vocab, err := domain.NewUserVocabulary(userID, languageID, name)
	if err != nil {
		return nil, err
	}

	created, err := s.vocabularies.Create(ctx, vocab)
	if err != nil {
		return nil, newServiceError("create_vocabulary", "failed to create vocabulary", err)
	}

	s.logger.Info("vocabulary created",
		slog.String("vocabulary_id", created.ID),
		slog.String("user_id", userID),
		slog.String("language_id", languageID))
	return created, nil
}

// GetVocabulary retrieves a vocabulary by ID.
func (s *vocabularyServiceImpl) GetVocabulary(ctx context.Context, id string) (*domain.UserVocabulary, error) {
	vocab, err := s.vocabularies.GetByID(ctx, id)
	if err != nil {
		return nil, newServiceError("get_vocabulary", "failed to retrieve vocabulary", err)
	}
	return vocab, nil
}

// GetUserVocabularies retrieves all vocabularies belonging to a user.
func (s *vocabularyServiceImpl) GetUserVocabularies(ctx context.Context, userID string) ([]*domain.UserVocabulary, error) {
	vocabularies, err := s.vocabularies.GetByUser(ctx, userID)
	if err != nil {
		return nil, newServiceError("list_vocabularies", "failed to list vocabularies", err)
	}
	return vocabularies, nil
}

// GetVocabularyForLanguage retrieves a user's vocabulary for a language.
func (s *vocabularyServiceImpl) GetVocabularyForLanguage(ctx context.Context, userID, languageID string) (*domain.UserVocabulary, error) {
	vocab, err := s.vocabularies.GetByUserAndLanguage(ctx, userID, languageID)
	if err != nil {
		return nil, newServiceError("get_vocabulary_for_language", "failed to retrieve vocabulary", err)
	}
	return vocab, nil
}

// RenameVocabulary changes a vocabulary's display name.
func (s *vocabularyServiceImpl) RenameVocabulary(ctx context.Context, id, name string) (*domain.UserVocabulary, error) {
	current, err := s.vocabularies.GetByID(ctx, id)
	if err != nil {
		return nil, newServiceError("rename_vocabulary", "failed to retrieve vocabulary", err)
	}

	current.Name = name
	if err := current.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.vocabularies.Update(ctx, id, current)
	if err != nil {
		return nil, newServiceError("rename_vocabulary", "failed to update vocabulary", err)
	}

	s.logger.Info("vocabulary renamed", slog.String("vocabulary_id", id))
	return updated, nil
}

// DeleteVocabulary removes a vocabulary and its items.
func (s *vocabularyServiceImpl) DeleteVocabulary(ctx context.Context, id string) (bool, error) {
	deleted, err := s.vocabularies.Delete(ctx, id)
	if err != nil {
		return false, newServiceError("delete_vocabulary", "failed to delete vocabulary", err)
	}
	if deleted {
		s.logger.Info("vocabulary deleted", slog.String("vocabulary_id", id))
	}
	return deleted, nil
}

// AddItem tracks a new term.
func (s *vocabularyServiceImpl) AddItem(ctx context.Context, params AddItemParams) (*domain.UserVocabularyItem, error) {
	item, err := domain.NewUserVocabularyItem(params.VocabularyID, params.Term)
	if err != nil {
		return nil, err
	}
	item.Lemma = params.Lemma
	item.Stem = params.Stem
	item.PartOfSpeech = params.PartOfSpeech
	item.Frequency = params.Frequency
	item.Notes = params.Notes
	if err := item.Validate(); err != nil {
		return nil, err
	}

	added, err := s.vocabularies.AddItem(ctx, item)
	if err != nil {
		return nil, newServiceError("add_vocabulary_item", "failed to add item", err)
	}

	s.logger.Info("vocabulary item added",
		slog.String("item_id", added.ID),
		slog.String("vocabulary_id", added.VocabularyID))
	return added, nil
}

// GetItems retrieves a page of a vocabulary's items.
func (s *vocabularyServiceImpl) GetItems(ctx context.Context, vocabularyID string, skip, limit int) ([]*domain.UserVocabularyItem, error) {
	items, err := s.vocabularies.GetItems(ctx, vocabularyID, skip, limit)
	if err != nil {
		return nil, newServiceError("list_vocabulary_items", "failed to list items", err)
	}
	return items, nil
}

// UpdateItem replaces an item's content and learning state.
func (s *vocabularyServiceImpl) UpdateItem(ctx context.Context, id string, params UpdateItemParams) (*domain.UserVocabularyItem, error) {
	replacement := &domain.UserVocabularyItem{
		ID:              id,
		VocabularyID:    params.VocabularyID,
		Term:            params.Term,
		Lemma:           params.Lemma,
		Stem:            params.Stem,
		PartOfSpeech:    params.PartOfSpeech,
		Frequency:       params.Frequency,
		Status:          params.Status,
		TimesReviewed:   params.TimesReviewed,
		ConfidenceLevel: params.ConfidenceLevel,
		Notes:           params.Notes,
	}
	if err := replacement.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.vocabularies.UpdateItem(ctx, id, replacement)
	if err != nil {
		return nil, newServiceError("update_vocabulary_item", "failed to update item", err)
	}

	s.logger.Info("vocabulary item updated", slog.String("item_id", id))
	return updated, nil
}

// RemoveItem stops tracking a term.
func (s *vocabularyServiceImpl) RemoveItem(ctx context.Context, id string) (bool, error) {
	removed, err := s.vocabularies.DeleteItem(ctx, id)
	if err != nil {
		return false, newServiceError("remove_vocabulary_item", "failed to remove item", err)
	}
	if removed {
		s.logger.Info("vocabulary item removed", slog.String("item_id", id))
	}
	return removed, nil
}

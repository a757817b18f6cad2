package mongo

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lexiglow/lexiglow-api/internal/domain"
	"github.com/lexiglow/lexiglow-api/internal/store"
)

// VocabularyStore is the document-backend placeholder for the
// store.VocabularyStore interface. Vocabulary tracking has not been ported
// to this backend; every method reports store.ErrNotImplemented so callers
// get a clear signal instead of silent data loss. Deployments needing
// vocabulary support should run the relational backend.
type VocabularyStore struct {
	logger *slog.Logger
}

// NewVocabularyStore creates the placeholder VocabularyStore.
func NewVocabularyStore(db *mongo.Database, log *slog.Logger) *VocabularyStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &VocabularyStore{
		logger: log.With(slog.String("component", "vocabulary_store")),
	}
}

// Ensure VocabularyStore implements store.VocabularyStore interface
var _ store.VocabularyStore = (*VocabularyStore)(nil)

func (s *VocabularyStore) notImplemented(op string) error {
	s.logger.Warn("vocabulary operation not available on the document backend",
		slog.String("operation", op))
	return fmt.Errorf("%w: vocabulary %s on mongodb backend", store.ErrNotImplemented, op)
}

// Create implements store.Repository.Create.
func (s *VocabularyStore) Create(ctx context.Context, vocab *domain.UserVocabulary) (*domain.UserVocabulary, error) {
	return nil, s.notImplemented("create")
}

// GetByID implements store.Repository.GetByID.
func (s *VocabularyStore) GetByID(ctx context.Context, id string) (*domain.UserVocabulary, error) {
	return nil, s.notImplemented("get")
}

// GetAll implements store.Repository.GetAll.
func (s *VocabularyStore) GetAll(ctx context.Context, skip, limit int) ([]*domain.UserVocabulary, error) {
	return nil, s.notImplemented("list")
}

// Update implements store.Repository.Update.
func (s *VocabularyStore) Update(ctx context.Context, id string, vocab *domain.UserVocabulary) (*domain.UserVocabulary, error) {
	return nil, s.notImplemented("update")
}

// Delete implements store.Repository.Delete.
func (s *VocabularyStore) Delete(ctx context.Context, id string) (bool, error) {
	return false, s.notImplemented("delete")
}

// Exists implements store.Repository.Exists.
func (s *VocabularyStore) Exists(ctx context.Context, id string) (bool, error) {
	return false, s.notImplemented("existence check")
}

// GetByUser implements store.VocabularyStore.GetByUser.
func (s *VocabularyStore) GetByUser(ctx context.Context, userID string) ([]*domain.UserVocabulary, error) {
	return nil, s.notImplemented("list by user")
}

// GetByUserAndLanguage implements store.VocabularyStore.GetByUserAndLanguage.
func (s *VocabularyStore) GetByUserAndLanguage(ctx context.Context, userID, languageID string) (*domain.UserVocabulary, error) {
	return nil, s.notImplemented("get by user and language")
}

// AddItem implements store.VocabularyStore.AddItem.
func (s *VocabularyStore) AddItem(ctx context.Context, item *domain.UserVocabularyItem) (*domain.UserVocabularyItem, error) {
	return nil, s.notImplemented("item create")
}

// GetItems implements store.VocabularyStore.GetItems.
func (s *VocabularyStore) GetItems(ctx context.Context, vocabularyID string, skip, limit int) ([]*domain.UserVocabularyItem, error) {
	return nil, s.notImplemented("item list")
}

// UpdateItem implements store.VocabularyStore.UpdateItem.
func (s *VocabularyStore) UpdateItem(ctx context.Context, id string, item *domain.UserVocabularyItem) (*domain.UserVocabularyItem, error) {
	return nil, s.notImplemented("item update")
}

// DeleteItem implements store.VocabularyStore.DeleteItem.
func (s *VocabularyStore) DeleteItem(ctx context.Context, id string) (bool, error) {
	return false, s.notImplemented("item delete")
}

package mocks

import (
	"context"
	"sort"

	"github.com/lexiglow/lexiglow-api/internal/domain"
	"github.com/lexiglow/lexiglow-api/internal/store"
)

// MockVocabularyStore implements store.VocabularyStore for testing
type MockVocabularyStore struct {
	// Function fields for customizable behavior
	CreateFn               func(ctx context.Context, vocab *domain.UserVocabulary) (*domain.UserVocabulary, error)
	GetByIDFn              func(ctx context.Context, id string) (*domain.UserVocabulary, error)
	GetAllFn               func(ctx context.Context, skip, limit int) ([]*domain.UserVocabulary, error)
	UpdateFn               func(ctx context.Context, id string, vocab *domain.UserVocabulary) (*domain.UserVocabulary, error)
	DeleteFn               func(ctx context.Context, id string) (bool, error)
	ExistsFn               func(ctx context.Context, id string) (bool, error)
	GetByUserFn            func(ctx context.Context, userID string) ([]*domain.UserVocabulary, error)
	GetByUserAndLanguageFn func(ctx context.Context, userID, languageID string) (*domain.UserVocabulary, error)
	AddItemFn              func(ctx context.Context, item *domain.UserVocabularyItem) (*domain.UserVocabularyItem, error)
	GetItemsFn             func(ctx context.Context, vocabularyID string, skip, limit int) ([]*domain.UserVocabularyItem, error)
	UpdateItemFn           func(ctx context.Context, id string, item *domain.UserVocabularyItem) (*domain.UserVocabularyItem, error)
	DeleteItemFn           func(ctx context.Context, id string) (bool, error)

	// Data for default implementation
	Vocabularies map[string]*domain.UserVocabulary
	Items        map[string]*domain.UserVocabularyItem
}

// NewMockVocabularyStore creates a new mock store with initialized defaults
func NewMockVocabularyStore() *MockVocabularyStore {
	return &MockVocabularyStore{
		Vocabularies: make(map[string]*domain.UserVocabulary),
		Items:        make(map[string]*domain.UserVocabularyItem),
	}
}

var _ store.VocabularyStore = (*MockVocabularyStore)(nil)

// Create implements the VocabularyStore interface
func (m *MockVocabularyStore) Create(ctx context.Context, vocab *domain.UserVocabulary) (*domain.UserVocabulary, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, vocab)
	}

	for _, existing := range m.Vocabularies {
		if existing.UserID == vocab.UserID && existing.LanguageID == vocab.LanguageID {
			return nil, store.ErrVocabularyExists
		}
	}

	if vocab.ID == "" {
		vocab.ID = domain.NewID()
	}
	m.Vocabularies[vocab.ID] = vocab
	return vocab, nil
}

// GetByID implements the VocabularyStore interface
func (m *MockVocabularyStore) GetByID(ctx context.Context, id string) (*domain.UserVocabulary, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	vocab, ok := m.Vocabularies[id]
	if !ok {
		return nil, store.ErrVocabularyNotFound
	}
	return vocab, nil
}

// GetAll implements the VocabularyStore interface
func (m *MockVocabularyStore) GetAll(ctx context.Context, skip, limit int) ([]*domain.UserVocabulary, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn(ctx, skip, limit)
	}

	all := make([]*domain.UserVocabulary, 0, len(m.Vocabularies))
	for _, vocab := range m.Vocabularies {
		all = append(all, vocab)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return paginate(all, skip, limit), nil
}

// Update implements the VocabularyStore interface
func (m *MockVocabularyStore) Update(ctx context.Context, id string, vocab *domain.UserVocabulary) (*domain.UserVocabulary, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, vocab)
	}

	if _, ok := m.Vocabularies[id]; !ok {
		return nil, store.ErrVocabularyNotFound
	}
	vocab.ID = id
	vocab.Touch()
	m.Vocabularies[id] = vocab
	return vocab, nil
}

// Delete implements the VocabularyStore interface
func (m *MockVocabularyStore) Delete(ctx context.Context, id string) (bool, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, ok := m.Vocabularies[id]; !ok {
		return false, nil
	}
	delete(m.Vocabularies, id)
	for itemID, item := range m.Items {
		if item.VocabularyID == id {
			delete(m.Items, itemID)
		}
	}
	return true, nil
}

// Exists implements the VocabularyStore interface
func (m *MockVocabularyStore) Exists(ctx context.Context, id string) (bool, error) {
	if m.ExistsFn != nil {
		return m.ExistsFn(ctx, id)
	}

	_, ok := m.Vocabularies[id]
	return ok, nil
}

// GetByUser implements the VocabularyStore interface
func (m *MockVocabularyStore) GetByUser(ctx context.Context, userID string) ([]*domain.UserVocabulary, error) {
	if m.GetByUserFn != nil {
		return m.GetByUserFn(ctx, userID)
	}

	matched := []*domain.UserVocabulary{}
	for _, vocab := range m.Vocabularies {
		if vocab.UserID == userID {
			matched = append(matched, vocab)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return matched, nil
}

// GetByUserAndLanguage implements the VocabularyStore interface
func (m *MockVocabularyStore) GetByUserAndLanguage(ctx context.Context, userID, languageID string) (*domain.UserVocabulary, error) {
	if m.GetByUserAndLanguageFn != nil {
		return m.GetByUserAndLanguageFn(ctx, userID, languageID)
	}

	for _, vocab := range m.Vocabularies {
		if vocab.UserID == userID && vocab.LanguageID == languageID {
			return vocab, nil
		}
	}
	return nil, store.ErrVocabularyNotFound
}

// AddItem implements the VocabularyStore interface
func (m *MockVocabularyStore) AddItem(ctx context.Context, item *domain.UserVocabularyItem) (*domain.UserVocabularyItem, error) {
	if m.AddItemFn != nil {
		return m.AddItemFn(ctx, item)
	}

	for _, existing := range m.Items {
		if existing.VocabularyID == item.VocabularyID && existing.Term == item.Term {
			return nil, store.ErrTermExists
		}
	}

	if item.ID == "" {
		item.ID = domain.NewID()
	}
	m.Items[item.ID] = item
	return item, nil
}

// GetItems implements the VocabularyStore interface
func (m *MockVocabularyStore) GetItems(ctx context.Context, vocabularyID string, skip, limit int) ([]*domain.UserVocabularyItem, error) {
	if m.GetItemsFn != nil {
		return m.GetItemsFn(ctx, vocabularyID, skip, limit)
	}

	matched := []*domain.UserVocabularyItem{}
	for _, item := range m.Items {
		if item.VocabularyID == vocabularyID {
			matched = append(matched, item)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return paginate(matched, skip, limit), nil
}

// UpdateItem implements the VocabularyStore interface
func (m *MockVocabularyStore) UpdateItem(ctx context.Context, id string, item *domain.UserVocabularyItem) (*domain.UserVocabularyItem, error) {
	if m.UpdateItemFn != nil {
		return m.UpdateItemFn(ctx, id, item)
	}

	if _, ok := m.Items[id]; !ok {
		return nil, store.ErrVocabularyItemNotFound
	}
	item.ID = id
	item.Touch()
	m.Items[id] = item
	return item, nil
}

// DeleteItem implements the VocabularyStore interface
func (m *MockVocabularyStore) DeleteItem(ctx context.Context, id string) (bool, error) {
	if m.DeleteItemFn != nil {
		return m.DeleteItemFn(ctx, id)
	}

	if _, ok := m.Items[id]; !ok {
		return false, nil
	}
	delete(m.Items, id)
	return true, nil
}

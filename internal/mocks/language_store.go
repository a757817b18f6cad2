package mocks

import (
	"context"
	"sort"

	"github.com/lexiglow/lexiglow-api/internal/domain"
	"github.com/lexiglow/lexiglow-api/internal/store"
)

// MockLanguageStore implements store.LanguageStore for testing
type MockLanguageStore struct {
	// Function fields for customizable behavior
	CreateFn     func(ctx context.Context, lang *domain.Language) (*domain.Language, error)
	GetByIDFn    func(ctx context.Context, id string) (*domain.Language, error)
	GetByCodeFn  func(ctx context.Context, code string) (*domain.Language, error)
	GetByNameFn  func(ctx context.Context, name string) (*domain.Language, error)
	GetAllFn     func(ctx context.Context, skip, limit int) ([]*domain.Language, error)
	UpdateFn     func(ctx context.Context, id string, lang *domain.Language) (*domain.Language, error)
	DeleteFn     func(ctx context.Context, id string) (bool, error)
	ExistsFn     func(ctx context.Context, id string) (bool, error)
	CodeExistsFn func(ctx context.Context, code string) (bool, error)

	// Data for default implementation, keyed by ID
	Languages map[string]*domain.Language
}

// NewMockLanguageStore creates a new mock store with initialized defaults
func NewMockLanguageStore() *MockLanguageStore {
	return &MockLanguageStore{
		Languages: make(map[string]*domain.Language),
	}
}

var _ store.LanguageStore = (*MockLanguageStore)(nil)

// Create implements the LanguageStore interface
func (m *MockLanguageStore) Create(ctx context.Context, lang *domain.Language) (*domain.Language, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, lang)
	}

	for _, existing := range m.Languages {
		if existing.Code == lang.Code {
			return nil, store.ErrLanguageCodeExists
		}
	}

	if lang.ID == "" {
		lang.ID = domain.NewID()
	}
	m.Languages[lang.ID] = lang
	return lang, nil
}

// GetByID implements the LanguageStore interface
func (m *MockLanguageStore) GetByID(ctx context.Context, id string) (*domain.Language, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	lang, ok := m.Languages[id]
	if !ok {
		return nil, store.ErrLanguageNotFound
	}
	return lang, nil
}

// GetByCode implements the LanguageStore interface
func (m *MockLanguageStore) GetByCode(ctx context.Context, code string) (*domain.Language, error) {
	if m.GetByCodeFn != nil {
		return m.GetByCodeFn(ctx, code)
	}

	for _, lang := range m.Languages {
		if lang.Code == code {
			return lang, nil
		}
	}
	return nil, store.ErrLanguageNotFound
}

// GetByName implements the LanguageStore interface
func (m *MockLanguageStore) GetByName(ctx context.Context, name string) (*domain.Language, error) {
	if m.GetByNameFn != nil {
		return m.GetByNameFn(ctx, name)
	}

	for _, lang := range m.Languages {
		if lang.Name == name {
			return lang, nil
		}
	}
	return nil, store.ErrLanguageNotFound
}

// GetAll implements the LanguageStore interface
func (m *MockLanguageStore) GetAll(ctx context.Context, skip, limit int) ([]*domain.Language, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn(ctx, skip, limit)
	}

	all := make([]*domain.Language, 0, len(m.Languages))
	for _, lang := range m.Languages {
		all = append(all, lang)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return paginate(all, skip, limit), nil
}

// Update implements the LanguageStore interface
func (m *MockLanguageStore) Update(ctx context.Context, id string, lang *domain.Language) (*domain.Language, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, lang)
	}

	if _, ok := m.Languages[id]; !ok {
		return nil, store.ErrLanguageNotFound
	}
	lang.ID = id
	m.Languages[id] = lang
	return lang, nil
}

// Delete implements the LanguageStore interface
func (m *MockLanguageStore) Delete(ctx context.Context, id string) (bool, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, ok := m.Languages[id]; !ok {
		return false, nil
	}
	delete(m.Languages, id)
	return true, nil
}

// Exists implements the LanguageStore interface
func (m *MockLanguageStore) Exists(ctx context.Context, id string) (bool, error) {
	if m.ExistsFn != nil {
		return m.ExistsFn(ctx, id)
	}

	_, ok := m.Languages[id]
	return ok, nil
}

// CodeExists implements the LanguageStore interface
func (m *MockLanguageStore) CodeExists(ctx context.Context, code string) (bool, error) {
	if m.CodeExistsFn != nil {
		return m.CodeExistsFn(ctx, code)
	}

	for _, lang := range m.Languages {
		if lang.Code == code {
			return true, nil
		}
	}
	return false, nil
}

// paginate applies skip/limit to an already-sorted slice with the same
// semantics as the real backends: a non-positive limit yields an empty page.
func paginate[T any](items []T, skip, limit int) []T {
	if limit <= 0 {
		return []T{}
	}
	if skip < 0 {
		skip = 0
	}
	if skip >= len(items) {
		return []T{}
	}
	end := skip + limit
	if end > len(items) {
		end = len(items)
	}
	return items[skip:end]
}

package mocks

import (
	"context"
	"sort"
	"strings"

	"github.com/lexiglow/lexiglow-api/internal/domain"
	"github.com/lexiglow/lexiglow-api/internal/store"
)

// MockTextStore implements store.TextStore for testing
type MockTextStore struct {
	// Function fields for customizable behavior
	CreateFn                func(ctx context.Context, text *domain.Text) (*domain.Text, error)
	GetByIDFn               func(ctx context.Context, id string) (*domain.Text, error)
	GetAllFn                func(ctx context.Context, skip, limit int) ([]*domain.Text, error)
	UpdateFn                func(ctx context.Context, id string, text *domain.Text) (*domain.Text, error)
	DeleteFn                func(ctx context.Context, id string) (bool, error)
	ExistsFn                func(ctx context.Context, id string) (bool, error)
	GetByLanguageFn         func(ctx context.Context, languageID string, skip, limit int) ([]*domain.Text, error)
	GetByUserFn             func(ctx context.Context, userID string, skip, limit int) ([]*domain.Text, error)
	GetByProficiencyLevelFn func(ctx context.Context, level domain.ProficiencyLevel, skip, limit int) ([]*domain.Text, error)
	GetPublicTextsFn        func(ctx context.Context, skip, limit int) ([]*domain.Text, error)
	SearchByTitleFn         func(ctx context.Context, query string, skip, limit int) ([]*domain.Text, error)
	GetByTagsFn             func(ctx context.Context, tagIDs []string, skip, limit int) ([]*domain.Text, error)
	CreateTagFn             func(ctx context.Context, tag *domain.TextTag) (*domain.TextTag, error)
	AddTagToTextFn          func(ctx context.Context, textID, tagID string) error
	RemoveTagFromTextFn     func(ctx context.Context, textID, tagID string) (bool, error)

	// Data for default implementation
	Texts map[string]*domain.Text
	Tags  map[string]*domain.TextTag
	// TextTags maps text ID to the set of associated tag IDs
	TextTags map[string]map[string]bool
}

// NewMockTextStore creates a new mock store with initialized defaults
func NewMockTextStore() *MockTextStore {
	return &MockTextStore{
		Texts:    make(map[string]*domain.Text),
		Tags:     make(map[string]*domain.TextTag),
		TextTags: make(map[string]map[string]bool),
	}
}

var _ store.TextStore = (*MockTextStore)(nil)

// Create implements the TextStore interface
func (m *MockTextStore) Create(ctx context.Context, text *domain.Text) (*domain.Text, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, text)
	}

	if text.ID == "" {
		text.ID = domain.NewID()
	}
	m.Texts[text.ID] = text
	return text, nil
}

// GetByID implements the TextStore interface
func (m *MockTextStore) GetByID(ctx context.Context, id string) (*domain.Text, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	text, ok := m.Texts[id]
	if !ok {
		return nil, store.ErrTextNotFound
	}
	return text, nil
}

// GetAll implements the TextStore interface
func (m *MockTextStore) GetAll(ctx context.Context, skip, limit int) ([]*domain.Text, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn(ctx, skip, limit)
	}
	return m.filter(func(*domain.Text) bool { return true }, skip, limit), nil
}

// Update implements the TextStore interface
func (m *MockTextStore) Update(ctx context.Context, id string, text *domain.Text) (*domain.Text, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, text)
	}

	if _, ok := m.Texts[id]; !ok {
		return nil, store.ErrTextNotFound
	}
	text.ID = id
	text.Touch()
	m.Texts[id] = text
	return text, nil
}

// Delete implements the TextStore interface
func (m *MockTextStore) Delete(ctx context.Context, id string) (bool, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, ok := m.Texts[id]; !ok {
		return false, nil
	}
	delete(m.Texts, id)
	delete(m.TextTags, id)
	return true, nil
}

// Exists implements the TextStore interface
func (m *MockTextStore) Exists(ctx context.Context, id string) (bool, error) {
	if m.ExistsFn != nil {
		return m.ExistsFn(ctx, id)
	}

	_, ok := m.Texts[id]
	return ok, nil
}

// GetByLanguage implements the TextStore interface
func (m *MockTextStore) GetByLanguage(ctx context.Context, languageID string, skip, limit int) ([]*domain.Text, error) {
	if m.GetByLanguageFn != nil {
		return m.GetByLanguageFn(ctx, languageID, skip, limit)
	}
	return m.filter(func(t *domain.Text) bool { return t.LanguageID == languageID }, skip, limit), nil
}

// GetByUser implements the TextStore interface
func (m *MockTextStore) GetByUser(ctx context.Context, userID string, skip, limit int) ([]*domain.Text, error) {
	if m.GetByUserFn != nil {
		return m.GetByUserFn(ctx, userID, skip, limit)
	}
	return m.filter(func(t *domain.Text) bool { return t.UserID == userID }, skip, limit), nil
}

// GetByProficiencyLevel implements the TextStore interface
func (m *MockTextStore) GetByProficiencyLevel(ctx context.Context, level domain.ProficiencyLevel, skip, limit int) ([]*domain.Text, error) {
	if m.GetByProficiencyLevelFn != nil {
		return m.GetByProficiencyLevelFn(ctx, level, skip, limit)
	}
	return m.filter(func(t *domain.Text) bool { return t.ProficiencyLevel == level }, skip, limit), nil
}

// GetPublicTexts implements the TextStore interface
func (m *MockTextStore) GetPublicTexts(ctx context.Context, skip, limit int) ([]*domain.Text, error) {
	if m.GetPublicTextsFn != nil {
		return m.GetPublicTextsFn(ctx, skip, limit)
	}
	return m.filter(func(t *domain.Text) bool { return t.IsPublic }, skip, limit), nil
}

// SearchByTitle implements the TextStore interface
func (m *MockTextStore) SearchByTitle(ctx context.Context, query string, skip, limit int) ([]*domain.Text, error) {
	if m.SearchByTitleFn != nil {
		return m.SearchByTitleFn(ctx, query, skip, limit)
	}
	needle := strings.ToLower(query)
	return m.filter(func(t *domain.Text) bool {
		return strings.Contains(strings.ToLower(t.Title), needle)
	}, skip, limit), nil
}

// GetByTags implements the TextStore interface
func (m *MockTextStore) GetByTags(ctx context.Context, tagIDs []string, skip, limit int) ([]*domain.Text, error) {
	if m.GetByTagsFn != nil {
		return m.GetByTagsFn(ctx, tagIDs, skip, limit)
	}
	return m.filter(func(t *domain.Text) bool {
		assoc := m.TextTags[t.ID]
		for _, tagID := range tagIDs {
			if assoc[tagID] {
				return true
			}
		}
		return false
	}, skip, limit), nil
}

// CreateTag implements the TextStore interface
func (m *MockTextStore) CreateTag(ctx context.Context, tag *domain.TextTag) (*domain.TextTag, error) {
	if m.CreateTagFn != nil {
		return m.CreateTagFn(ctx, tag)
	}

	for _, existing := range m.Tags {
		if existing.Name == tag.Name {
			return nil, store.ErrTagNameExists
		}
	}
	if tag.ID == "" {
		tag.ID = domain.NewID()
	}
	m.Tags[tag.ID] = tag
	return tag, nil
}

// AddTagToText implements the TextStore interface
func (m *MockTextStore) AddTagToText(ctx context.Context, textID, tagID string) error {
	if m.AddTagToTextFn != nil {
		return m.AddTagToTextFn(ctx, textID, tagID)
	}

	if _, ok := m.Texts[textID]; !ok {
		return store.ErrTextNotFound
	}
	if m.TextTags[textID] == nil {
		m.TextTags[textID] = make(map[string]bool)
	}
	m.TextTags[textID][tagID] = true
	return nil
}

// RemoveTagFromText implements the TextStore interface
func (m *MockTextStore) RemoveTagFromText(ctx context.Context, textID, tagID string) (bool, error) {
	if m.RemoveTagFromTextFn != nil {
		return m.RemoveTagFromTextFn(ctx, textID, tagID)
	}

	if !m.TextTags[textID][tagID] {
		return false, nil
	}
	delete(m.TextTags[textID], tagID)
	return true, nil
}

func (m *MockTextStore) filter(keep func(*domain.Text) bool, skip, limit int) []*domain.Text {
	matched := []*domain.Text{}
	for _, text := range m.Texts {
		if keep(text) {
			matched = append(matched, text)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return paginate(matched, skip, limit)
}

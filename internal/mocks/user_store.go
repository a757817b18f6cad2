package mocks

import (
	"context"
	"sort"
	"time"

	"github.com/lexiglow/lexiglow-api/internal/domain"
	"github.com/lexiglow/lexiglow-api/internal/store"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	// Function fields for customizable behavior
	CreateFn           func(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByIDFn          func(ctx context.Context, id string) (*domain.User, error)
	GetByEmailFn       func(ctx context.Context, email string) (*domain.User, error)
	GetByUsernameFn    func(ctx context.Context, username string) (*domain.User, error)
	GetAllFn           func(ctx context.Context, skip, limit int) ([]*domain.User, error)
	UpdateFn           func(ctx context.Context, id string, user *domain.User) (*domain.User, error)
	DeleteFn           func(ctx context.Context, id string) (bool, error)
	ExistsFn           func(ctx context.Context, id string) (bool, error)
	EmailExistsFn      func(ctx context.Context, email string) (bool, error)
	UsernameExistsFn   func(ctx context.Context, username string) (bool, error)
	UpdateLastActiveFn func(ctx context.Context, id string) (bool, error)

	// Data for default implementation, keyed by ID
	Users map[string]*domain.User
}

// NewMockUserStore creates a new mock store with initialized defaults
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users: make(map[string]*domain.User),
	}
}

var _ store.UserStore = (*MockUserStore)(nil)

// Create implements the UserStore interface
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	for _, existing := range m.Users {
		if existing.Email == user.Email {
			return nil, store.ErrEmailExists
		}
		if existing.Username == user.Username {
			return nil, store.ErrUsernameExists
		}
	}

	if user.ID == "" {
		user.ID = domain.NewID()
	}
	m.Users[user.ID] = user
	return user, nil
}

// GetByID implements the UserStore interface
func (m *MockUserStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	user, ok := m.Users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

// GetByEmail implements the UserStore interface
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}

	for _, user := range m.Users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// GetByUsername implements the UserStore interface
func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}

	for _, user := range m.Users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// GetAll implements the UserStore interface
func (m *MockUserStore) GetAll(ctx context.Context, skip, limit int) ([]*domain.User, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn(ctx, skip, limit)
	}

	all := make([]*domain.User, 0, len(m.Users))
	for _, user := range m.Users {
		all = append(all, user)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return paginate(all, skip, limit), nil
}

// Update implements the UserStore interface
func (m *MockUserStore) Update(ctx context.Context, id string, user *domain.User) (*domain.User, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, user)
	}

	if _, ok := m.Users[id]; !ok {
		return nil, store.ErrUserNotFound
	}
	user.ID = id
	user.Touch()
	m.Users[id] = user
	return user, nil
}

// Delete implements the UserStore interface
func (m *MockUserStore) Delete(ctx context.Context, id string) (bool, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, ok := m.Users[id]; !ok {
		return false, nil
	}
	delete(m.Users, id)
	return true, nil
}

// Exists implements the UserStore interface
func (m *MockUserStore) Exists(ctx context.Context, id string) (bool, error) {
	if m.ExistsFn != nil {
		return m.ExistsFn(ctx, id)
	}

	_, ok := m.Users[id]
	return ok, nil
}

// EmailExists implements the UserStore interface
func (m *MockUserStore) EmailExists(ctx context.Context, email string) (bool, error) {
	if m.EmailExistsFn != nil {
		return m.EmailExistsFn(ctx, email)
	}

	for _, user := range m.Users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// UsernameExists implements the UserStore interface
func (m *MockUserStore) UsernameExists(ctx context.Context, username string) (bool, error) {
	if m.UsernameExistsFn != nil {
		return m.UsernameExistsFn(ctx, username)
	}

	for _, user := range m.Users {
		if user.Username == username {
			return true, nil
		}
	}
	return false, nil
}

// UpdateLastActive implements the UserStore interface
func (m *MockUserStore) UpdateLastActive(ctx context.Context, id string) (bool, error) {
	if m.UpdateLastActiveFn != nil {
		return m.UpdateLastActiveFn(ctx, id)
	}

	user, ok := m.Users[id]
	if !ok {
		return false, nil
	}
	now := time.Now().UTC()
	user.LastActiveAt = &now
	return true, nil
}

package service

import (
	"context"
	"log/slog"

	"github.com/lexiglow/lexiglow-api/internal/domain"
	"github.com/lexiglow/lexiglow-api/internal/store"
)

// RegisterUserParams carries the input for user registration. The service
// hashes the plaintext password; it never reaches the store layer.
type RegisterUserParams struct {
	Email             string
	Username          string
	Password          string
	FirstName         string
	LastName          string
	NativeLanguageID  string
	CurrentLanguageID string
}

// UpdateProfileParams carries the mutable profile fields for an update.
type UpdateProfileParams struct {
	FirstName         string
	LastName          string
	NativeLanguageID  string
	CurrentLanguageID string
}

// UserService provides user account operations.
type UserService interface {
	// RegisterUser creates a new account with a hashed credential. Email and
	// username must both be unused.
	RegisterUser(ctx context.Context, params RegisterUserParams) (*domain.User, error)

	// Authenticate verifies an email/password pair and marks the user
	// active. Returns ErrInvalidCredentials when either part is wrong.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)

	// GetUser retrieves a user by ID.
	GetUser(ctx context.Context, id string) (*domain.User, error)

	// GetUserByEmail retrieves a user by email address.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// ListUsers retrieves a page of accounts.
	ListUsers(ctx context.Context, skip, limit int) ([]*domain.User, error)

	// UpdateProfile replaces the user's profile fields, leaving credentials
	// untouched.
	UpdateProfile(ctx context.Context, id string, params UpdateProfileParams) (*domain.User, error)

	// ChangePassword verifies the current password and stores a hash of the
	// new one.
	ChangePassword(ctx context.Context, id, currentPassword, newPassword string) error

	// DeleteUser removes an account. Returns false if it did not exist.
	DeleteUser(ctx context.Context, id string) (bool, error)
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	users  store.UserStore
	hasher PasswordHasher
	logger *slog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(users store.UserStore, hasher PasswordHasher, logger *slog.Logger) (UserService, error) {
	if users == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "users store cannot be nil"}
	}
	if hasher == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "password hasher cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &userServiceImpl{
		users:  users,
		hasher: hasher,
		logger: logger.With(slog.String("component", "user_service")),
	}, nil
}

// RegisterUser creates a new account.
func (s *userServiceImpl) RegisterUser(ctx context.Context, params RegisterUserParams) (*domain.User, error) {
	emailTaken, err := s.users.EmailExists(ctx, params.Email)
	if err != nil {
		return nil, newServiceError("register_user", "failed to check email uniqueness", err)
	}
	if emailTaken {
		return nil, store.ErrEmailExists
	}

	usernameTaken, err := s.users.UsernameExists(ctx, params.Username)
	if err != nil {
		return nil, newServiceError("register_user", "failed to check username uniqueness", err)
	}
	if usernameTaken {
		return nil, store.ErrUsernameExists
	}

	hash, err := s.hasher.Hash(params.Password)
	if err != nil {
		return nil, newServiceError("register_user", "failed to hash password", err)
	}

	user, err := domain.NewUser(
		params.Email, params.Username, hash,
		params.FirstName, params.LastName,
		params.NativeLanguageID, params.CurrentLanguageID,
	)
	if err != nil {
		return nil, err
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, newServiceError("register_user", "failed to create user", err)
	}

	s.logger.Info("user registered", slog.String("user_id", created.ID))
	return created, nil
}

// Authenticate verifies an email/password pair.
func (s *userServiceImpl) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if store.IsNotFoundError(err) {
			// Indistinguishable from a wrong password on purpose.
			return nil, ErrInvalidCredentials
		}
		return nil, newServiceError("authenticate", "failed to retrieve user", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		s.logger.Debug("password verification failed", slog.String("user_id", user.ID))
		return nil, ErrInvalidCredentials
	}

	if _, err := s.users.UpdateLastActive(ctx, user.ID); err != nil {
		// Login still succeeds; activity tracking is best effort.
		s.logger.Warn("failed to update last active timestamp",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID))
	}

	s.logger.Info("user authenticated", slog.String("user_id", user.ID))
	return user, nil
}

// GetUser retrieves a user by ID.
func (s *userServiceImpl) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, newServiceError("get_user", "failed to retrieve user", err)
	}
	return user, nil
}

// GetUserByEmail retrieves a user by email address.
func (s *userServiceImpl) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, newServiceError("get_user_by_email", "failed to retrieve user", err)
	}
	return user, nil
}

// ListUsers retrieves a page of accounts.
func (s *userServiceImpl) ListUsers(ctx context.Context, skip, limit int) ([]*domain.User, error) {
	users, err := s.users.GetAll(ctx, skip, limit)
	if err != nil {
		return nil, newServiceError("list_users", "failed to list users", err)
	}
	return users, nil
}

// UpdateProfile replaces the user's profile fields.
func (s *userServiceImpl) UpdateProfile(ctx context.Context, id string, params UpdateProfileParams) (*domain.User, error) {
	current, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, newServiceError("update_profile", "failed to retrieve user", err)
	}

	current.FirstName = params.FirstName
	current.LastName = params.LastName
	current.NativeLanguageID = params.NativeLanguageID
	current.CurrentLanguageID = params.CurrentLanguageID
	if err := current.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.users.Update(ctx, id, current)
	if err != nil {
		return nil, newServiceError("update_profile", "failed to update user", err)
	}

	s.logger.Info("user profile updated", slog.String("user_id", id))
	return updated, nil
}

// ChangePassword verifies the current password and stores a new hash.
func (s *userServiceImpl) ChangePassword(ctx context.Context, id, currentPassword, newPassword string) error {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return newServiceError("change_password", "failed to retrieve user", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, currentPassword); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return newServiceError("change_password", "failed to hash password", err)
	}

	user.PasswordHash = hash
	if _, err := s.users.Update(ctx, id, user); err != nil {
		return newServiceError("change_password", "failed to update user", err)
	}

	s.logger.Info("user password changed", slog.String("user_id", id))
	return nil
}

// DeleteUser removes an account.
func (s *userServiceImpl) DeleteUser(ctx context.Context, id string) (bool, error) {
	deleted, err := s.users.Delete(ctx, id)
	if err != nil {
		return false, newServiceError("delete_user", "failed to delete user", err)
	}
	if deleted {
		s.logger.Info("user deleted", slog.String("user_id", id))
	}
	return deleted, nil
}

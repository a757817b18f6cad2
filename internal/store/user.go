package store

import (
	"context"

	"github.com/lexiglow/lexiglow-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
// Password hashing happens above this layer; stores only ever see the hash.
type UserStore interface {
	Repository[domain.User]

	// GetByEmail retrieves a user by their email address.
	// Returns an error wrapping ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// GetByUsername retrieves a user by their username.
	// Returns an error wrapping ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// EmailExists reports whether a user with the given email exists.
	EmailExists(ctx context.Context, email string) (bool, error)

	// UsernameExists reports whether a user with the given username exists.
	UsernameExists(ctx context.Context, username string) (bool, error)

	// UpdateLastActive sets the user's last-active timestamp to the current
	// time without touching any other field. Returns false if the user does
	// not exist.
	UpdateLastActive(ctx context.Context, id string) (bool, error)
}

package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User represents a registered user of the application.
// Email and username are each globally unique. Both language references
// point at Language entities; the relational backend enforces this with
// foreign keys, the document backend does not.
type User struct {
	ID                string     `json:"id"`
	Email             string     `json:"email"`
	Username          string     `json:"username"`
	PasswordHash      string     `json:"-"` // never expose the hash in JSON
	FirstName         string     `json:"first_name"`
	LastName          string     `json:"last_name"`
	NativeLanguageID  string     `json:"native_language_id"`
	CurrentLanguageID string     `json:"current_language_id"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	LastActiveAt      *time.Time `json:"last_active_at,omitempty"`
}

// NewUser creates a new User with a generated ID and creation timestamps.
// The caller supplies an already-hashed password; the domain layer never
// sees plaintext credentials. Returns an error if validation fails.
func NewUser(email, username, passwordHash, firstName, lastName, nativeLanguageID, currentLanguageID string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:                uuid.NewString(),
		Email:             strings.ToLower(email),
		Username:          username,
		PasswordHash:      passwordHash,
		FirstName:         firstName,
		LastName:          lastName,
		NativeLanguageID:  nativeLanguageID,
		CurrentLanguageID: currentLanguageID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if u.Email == "" {
		return ErrEmptyEmail
	}
	if !validEmailFormat(u.Email) {
		return ErrInvalidEmail
	}
	if u.Username == "" {
		return ErrEmptyUsername
	}
	if u.PasswordHash == "" {
		return ErrEmptyPasswordHash
	}
	if u.NativeLanguageID == "" || u.CurrentLanguageID == "" {
		return ErrEmptyLanguageRef
	}
	return nil
}

// Touch refreshes the UpdatedAt timestamp.
func (u *User) Touch() {
	u.UpdatedAt = time.Now().UTC()
}

// validEmailFormat performs basic structural validation of an email address:
// a local part, an @, and a domain with at least one interior dot.
func validEmailFormat(email string) bool {
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domainPart := email[at+1:]
	dot := strings.IndexByte(domainPart, '.')
	return dot > 0 && dot < len(domainPart)-1
}

// UserLanguage tracks a language a user is learning, with the user's
// current proficiency level. Identified by the (UserID, LanguageID) pair.
type UserLanguage struct {
	UserID           string           `json:"user_id"`
	LanguageID       string           `json:"language_id"`
	ProficiencyLevel ProficiencyLevel `json:"proficiency_level"`
	StartedAt        time.Time        `json:"started_at"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// Validate checks if the UserLanguage association has valid data.
func (ul *UserLanguage) Validate() error {
	if ul.UserID == "" || ul.LanguageID == "" {
		return ErrEmptyLanguageRef
	}
	if !ul.ProficiencyLevel.IsValid() {
		return ErrInvalidProficiencyLevel
	}
	return nil
}

// NewID generates a fresh opaque identity string. Repository
// implementations call this when an entity arrives without one.
func NewID() string {
	return uuid.NewString()
}

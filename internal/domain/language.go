package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Language represents a language supported by the application.
// The ISO 639-1 code is unique across all languages.
type Language struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Code       string    `json:"code"`
	NativeName string    `json:"native_name"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewLanguage creates a new Language with a generated ID and creation timestamp.
// The code is normalized to lower case. Returns an error if validation fails.
func NewLanguage(name, code, nativeName string) (*Language, error) {
	lang := &Language{
		ID:         uuid.NewString(),
		Name:       name,
		Code:       strings.ToLower(code),
		NativeName: nativeName,
		CreatedAt:  time.Now().UTC(),
	}

	if err := lang.Validate(); err != nil {
		return nil, err
	}

	return lang, nil
}

// Validate checks if the Language has valid data.
func (l *Language) Validate() error {
	if l.Name == "" {
		return ErrEmptyName
	}
	if l.Code == "" {
		return ErrEmptyCode
	}
	return nil
}

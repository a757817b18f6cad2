package domain

import (
	"time"

	"github.com/google/uuid"
)

// Text represents reading material for language learners. UserID is empty
// for system-authored content. Texts default to public visibility.
type Text struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	Content          string           `json:"content"`
	LanguageID       string           `json:"language_id"`
	UserID           string           `json:"user_id,omitempty"`
	ProficiencyLevel ProficiencyLevel `json:"proficiency_level"`
	WordCount        int              `json:"word_count"`
	IsPublic         bool             `json:"is_public"`
	Source           string           `json:"source,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// NewText creates a new Text with a generated ID and creation timestamps.
// Returns an error if validation fails.
func NewText(title, content, languageID, userID string, level ProficiencyLevel, wordCount int) (*Text, error) {
	now := time.Now().UTC()
	text := &Text{
		ID:               uuid.NewString(),
		Title:            title,
		Content:          content,
		LanguageID:       languageID,
		UserID:           userID,
		ProficiencyLevel: level,
		WordCount:        wordCount,
		IsPublic:         true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := text.Validate(); err != nil {
		return nil, err
	}

	return text, nil
}

// Validate checks if the Text has valid data.
func (t *Text) Validate() error {
	if t.Title == "" {
		return ErrEmptyTitle
	}
	if t.Content == "" {
		return ErrEmptyContent
	}
	if t.LanguageID == "" {
		return ErrEmptyLanguageRef
	}
	if !t.ProficiencyLevel.IsValid() {
		return ErrInvalidProficiencyLevel
	}
	if t.WordCount < 0 {
		return ErrNegativeWordCount
	}
	return nil
}

// Touch refreshes the UpdatedAt timestamp.
func (t *Text) Touch() {
	t.UpdatedAt = time.Now().UTC()
}

// TextTag categorizes texts for discovery. Tag names are unique.
type TextTag struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// NewTextTag creates a new TextTag with a generated ID.
func NewTextTag(name, description string) (*TextTag, error) {
	tag := &TextTag{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
	}

	if err := tag.Validate(); err != nil {
		return nil, err
	}

	return tag, nil
}

// Validate checks if the TextTag has valid data.
func (t *TextTag) Validate() error {
	if t.Name == "" {
		return ErrEmptyName
	}
	return nil
}

// TextTagAssociation links a text to a tag. Identified by the
// (TextID, TagID) pair; deleting a text removes its associations.
type TextTagAssociation struct {
	TextID string `json:"text_id"`
	TagID  string `json:"tag_id"`
}

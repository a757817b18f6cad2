package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserVocabulary is a named per-user-per-language collection of tracked
// words. A user has at most one vocabulary per language.
type UserVocabulary struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	LanguageID string    `json:"language_id"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewUserVocabulary creates a new UserVocabulary with a generated ID and
// creation timestamps. Returns an error if validation fails.
func NewUserVocabulary(userID, languageID, name string) (*UserVocabulary, error) {
	now := time.Now().UTC()
	vocab := &UserVocabulary{
		ID:         uuid.NewString(),
		UserID:     userID,
		LanguageID: languageID,
		Name:       name,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := vocab.Validate(); err != nil {
		return nil, err
	}

	return vocab, nil
}

// Validate checks if the UserVocabulary has valid data.
func (v *UserVocabulary) Validate() error {
	if v.UserID == "" {
		return ErrEmptyUserRef
	}
	if v.LanguageID == "" {
		return ErrEmptyLanguageRef
	}
	if v.Name == "" {
		return ErrEmptyName
	}
	return nil
}

// Touch refreshes the UpdatedAt timestamp.
func (v *UserVocabulary) Touch() {
	v.UpdatedAt = time.Now().UTC()
}

// UserVocabularyItem is a single tracked word within a vocabulary.
// The (VocabularyID, Term) pair is unique within the parent collection.
type UserVocabularyItem struct {
	ID              string               `json:"id"`
	VocabularyID    string               `json:"vocabulary_id"`
	Term            string               `json:"term"`
	Lemma           string               `json:"lemma,omitempty"`
	Stem            string               `json:"stem,omitempty"`
	PartOfSpeech    PartOfSpeech         `json:"part_of_speech,omitempty"`
	Frequency       float64              `json:"frequency,omitempty"`
	Status          VocabularyItemStatus `json:"status"`
	TimesReviewed   int                  `json:"times_reviewed"`
	ConfidenceLevel ProficiencyLevel     `json:"confidence_level"`
	Notes           string               `json:"notes,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

// NewUserVocabularyItem creates a new item in the given vocabulary with
// learning defaults: status NEW, confidence A1, zero reviews.
func NewUserVocabularyItem(vocabularyID, term string) (*UserVocabularyItem, error) {
	now := time.Now().UTC()
	item := &UserVocabularyItem{
		ID:              uuid.NewString(),
		VocabularyID:    vocabularyID,
		Term:            term,
		Status:          VocabularyItemNew,
		ConfidenceLevel: ProficiencyA1,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate checks if the UserVocabularyItem has valid data.
func (i *UserVocabularyItem) Validate() error {
	if i.VocabularyID == "" {
		return ErrEmptyVocabularyRef
	}
	if i.Term == "" {
		return ErrEmptyTerm
	}
	if !i.Status.IsValid() {
		return ErrInvalidItemStatus
	}
	if !i.ConfidenceLevel.IsValid() {
		return ErrInvalidProficiencyLevel
	}
	if i.PartOfSpeech != "" && !i.PartOfSpeech.IsValid() {
		return ErrInvalidPartOfSpeech
	}
	return nil
}

// Touch refreshes the UpdatedAt timestamp.
func (i *UserVocabularyItem) Touch() {
	i.UpdatedAt = time.Now().UTC()
}

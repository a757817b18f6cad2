package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyName is returned when a required name field is empty.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrEmptyCode is returned when a language has no ISO code.
	ErrEmptyCode = errors.New("language code cannot be empty")

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrEmptyEmail is returned when a user has no email address.
	ErrEmptyEmail = errors.New("email cannot be empty")

	// ErrEmptyUsername is returned when a user has no username.
	ErrEmptyUsername = errors.New("username cannot be empty")

	// ErrEmptyPasswordHash is returned when a user is persisted without a password hash.
	ErrEmptyPasswordHash = errors.New("password hash cannot be empty")

	// ErrEmptyLanguageRef is returned when a required language reference is missing.
	ErrEmptyLanguageRef = errors.New("language reference cannot be empty")

	// ErrEmptyUserRef is returned when a required user reference is missing.
	ErrEmptyUserRef = errors.New("user reference cannot be empty")

	// ErrEmptyVocabularyRef is returned when an item has no parent vocabulary.
	ErrEmptyVocabularyRef = errors.New("vocabulary reference cannot be empty")

	// ErrEmptyTitle is returned when a text has no title.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrEmptyContent is returned when a text has no content.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrEmptyTerm is returned when a vocabulary item has no term.
	ErrEmptyTerm = errors.New("term cannot be empty")

	// ErrInvalidProficiencyLevel is returned when a proficiency level is not a CEFR level.
	ErrInvalidProficiencyLevel = errors.New("invalid proficiency level")

	// ErrInvalidPartOfSpeech is returned when a part of speech is not recognized.
	ErrInvalidPartOfSpeech = errors.New("invalid part of speech")

	// ErrInvalidItemStatus is returned when a vocabulary item status is not recognized.
	ErrInvalidItemStatus = errors.New("invalid vocabulary item status")

	// ErrNegativeWordCount is returned when a text reports a negative word count.
	ErrNegativeWordCount = errors.New("word count cannot be negative")
)

// Package testutils provides standardized helper functions for tests.
// Helpers follow these naming conventions:
// - Create*: build valid entities in memory
// - MustInsert*: insert fixture rows through a store, failing the test on error
package testutils

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/lexiglow/lexiglow-api/internal/domain"
	"github.com/lexiglow/lexiglow-api/internal/platform/postgres"
	"github.com/lexiglow/lexiglow-api/internal/store"
)

// CreateTestLanguage creates a valid language with a random two-letter-style
// code. It does not persist anything.
func CreateTestLanguage(t *testing.T) *domain.Language {
	t.Helper()
	suffix := uuid.NewString()[:6]
	lang, err := domain.NewLanguage("Testish "+suffix, "t-"+suffix, "Testish")
	require.NoError(t, err, "Failed to create test language")
	return lang
}

// CreateTestUser creates a valid user with random email and username
// referencing the given language. It does not persist anything.
func CreateTestUser(t *testing.T, languageID string) *domain.User {
	t.Helper()
	suffix := uuid.NewString()[:8]
	user, err := domain.NewUser(
		fmt.Sprintf("test-%s@example.com", suffix),
		"user-"+suffix,
		"$2a$10$fixturehashfixturehashfixturehashfixtu",
		"Test", "User",
		languageID, languageID,
	)
	require.NoError(t, err, "Failed to create test user")
	return user
}

// CreateTestText creates a valid public text owned by the given user.
func CreateTestText(t *testing.T, languageID, userID string) *domain.Text {
	t.Helper()
	suffix := uuid.NewString()[:8]
	text, err := domain.NewText(
		"Test Text "+suffix,
		"Contenido de prueba para lectura.",
		languageID, userID,
		domain.ProficiencyB1, 5,
	)
	require.NoError(t, err, "Failed to create test text")
	return text
}

// MustInsertLanguage inserts a fresh language fixture and returns it.
func MustInsertLanguage(ctx context.Context, t *testing.T, db store.DBTX) *domain.Language {
	t.Helper()
	s := postgres.NewLanguageStore(db, nil)
	lang, err := s.Create(ctx, CreateTestLanguage(t))
	require.NoError(t, err, "Failed to insert test language")
	return lang
}

// MustInsertUser inserts a fresh user fixture tied to the given language.
func MustInsertUser(ctx context.Context, t *testing.T, db store.DBTX, languageID string) *domain.User {
	t.Helper()
	s := postgres.NewUserStore(db, nil)
	user, err := s.Create(ctx, CreateTestUser(t, languageID))
	require.NoError(t, err, "Failed to insert test user")
	return user
}

// MustInsertText inserts a fresh text fixture for the given language and user.
func MustInsertText(ctx context.Context, t *testing.T, db store.DBTX, languageID, userID string) *domain.Text {
	t.Helper()
	s := postgres.NewTextStore(db, nil)
	text, err := s.Create(ctx, CreateTestText(t, languageID, userID))
	require.NoError(t, err, "Failed to insert test text")
	return text
}

// MustInsertVocabulary inserts a vocabulary for the given user and language.
func MustInsertVocabulary(ctx context.Context, t *testing.T, db store.DBTX, userID, languageID string) *domain.UserVocabulary {
	t.Helper()
	s := postgres.NewVocabularyStore(db, nil)
	vocab, err := domain.NewUserVocabulary(userID, languageID, "Test Vocabulary")
	require.NoError(t, err, "Failed to create test vocabulary")
	created, err := s.Create(ctx, vocab)
	require.NoError(t, err, "Failed to insert test vocabulary")
	return created
}

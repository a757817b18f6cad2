package mongo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/lexiglow/lexiglow-api/internal/domain"
)

func TestLanguageDocument_RoundTrip(t *testing.T) {
	t.Parallel()

	lang := &domain.Language{
		ID:         domain.NewID(),
		Name:       "Spanish",
		Code:       "es",
		NativeName: "Español",
		CreatedAt:  time.Now().UTC().Truncate(time.Millisecond),
	}

	raw, err := bson.Marshal(languageToDocument(lang))
	require.NoError(t, err)

	// The document shape follows MongoDB conventions: the entity ID lives
	// under _id and field names are camelCase.
	var fields bson.M
	require.NoError(t, bson.Unmarshal(raw, &fields))
	assert.Equal(t, lang.ID, fields["_id"])
	assert.Contains(t, fields, "nativeName")
	assert.Contains(t, fields, "createdAt")
	assert.NotContains(t, fields, "id")
	assert.NotContains(t, fields, "native_name")

	var doc languageDocument
	require.NoError(t, bson.Unmarshal(raw, &doc))
	restored := doc.toDomain()
	assert.Equal(t, lang.ID, restored.ID)
	assert.Equal(t, lang.Code, restored.Code)
	assert.Equal(t, lang.NativeName, restored.NativeName)
	assert.True(t, lang.CreatedAt.Equal(restored.CreatedAt))
}

func TestUserDocument_RoundTrip(t *testing.T) {
	t.Parallel()

	lastActive := time.Now().UTC().Truncate(time.Millisecond)
	user := &domain.User{
		ID:                domain.NewID(),
		Email:             "ana@example.com",
		Username:          "ana",
		PasswordHash:      "$2a$10$hash",
		FirstName:         "Ana",
		LastName:          "García",
		NativeLanguageID:  domain.NewID(),
		CurrentLanguageID: domain.NewID(),
		CreatedAt:         time.Now().UTC().Truncate(time.Millisecond),
		UpdatedAt:         time.Now().UTC().Truncate(time.Millisecond),
		LastActiveAt:      &lastActive,
	}

	raw, err := bson.Marshal(userToDocument(user))
	require.NoError(t, err)

	var fields bson.M
	require.NoError(t, bson.Unmarshal(raw, &fields))
	assert.Equal(t, user.ID, fields["_id"])
	assert.Contains(t, fields, "passwordHash")
	assert.Contains(t, fields, "nativeLanguageId")
	assert.Contains(t, fields, "currentLanguageId")
	assert.Contains(t, fields, "lastActiveAt")

	var doc userDocument
	require.NoError(t, bson.Unmarshal(raw, &doc))
	restored := doc.toDomain()
	assert.Equal(t, user.Email, restored.Email)
	assert.Equal(t, user.PasswordHash, restored.PasswordHash)
	assert.Equal(t, user.NativeLanguageID, restored.NativeLanguageID)
	require.NotNil(t, restored.LastActiveAt)
	assert.True(t, lastActive.Equal(*restored.LastActiveAt))
}

func TestUserDocument_OmitsAbsentLastActive(t *testing.T) {
	t.Parallel()

	user := &domain.User{
		ID:                domain.NewID(),
		Email:             "bob@example.com",
		Username:          "bob",
		PasswordHash:      "$2a$10$hash",
		NativeLanguageID:  domain.NewID(),
		CurrentLanguageID: domain.NewID(),
		CreatedAt:         time.Now().UTC(),
		UpdatedAt:         time.Now().UTC(),
	}

	raw, err := bson.Marshal(userToDocument(user))
	require.NoError(t, err)

	var fields bson.M
	require.NoError(t, bson.Unmarshal(raw, &fields))
	assert.NotContains(t, fields, "lastActiveAt")

	var doc userDocument
	require.NoError(t, bson.Unmarshal(raw, &doc))
	assert.Nil(t, doc.toDomain().LastActiveAt)
}

func TestTextDocument_RoundTrip(t *testing.T) {
	t.Parallel()

	text := &domain.Text{
		ID:               domain.NewID(),
		Title:            "El Principito",
		Content:          "Había una vez...",
		LanguageID:       domain.NewID(),
		UserID:           domain.NewID(),
		ProficiencyLevel: domain.ProficiencyB1,
		WordCount:        3,
		IsPublic:         true,
		Source:           "gutenberg",
		CreatedAt:        time.Now().UTC().Truncate(time.Millisecond),
		UpdatedAt:        time.Now().UTC().Truncate(time.Millisecond),
	}

	raw, err := bson.Marshal(textToDocument(text))
	require.NoError(t, err)

	var fields bson.M
	require.NoError(t, bson.Unmarshal(raw, &fields))
	assert.Equal(t, text.ID, fields["_id"])
	assert.Contains(t, fields, "languageId")
	assert.Contains(t, fields, "proficiencyLevel")
	assert.Contains(t, fields, "wordCount")
	assert.Contains(t, fields, "isPublic")
	// An empty tag set is omitted, not stored as null.
	assert.NotContains(t, fields, "tagIds")

	var doc textDocument
	require.NoError(t, bson.Unmarshal(raw, &doc))
	restored := doc.toDomain()
	assert.Equal(t, text.Title, restored.Title)
	assert.Equal(t, text.LanguageID, restored.LanguageID)
	assert.Equal(t, domain.ProficiencyB1, restored.ProficiencyLevel)
	assert.True(t, restored.IsPublic)
	assert.Equal(t, "gutenberg", restored.Source)
}

func TestTextTagDocument_RoundTrip(t *testing.T) {
	t.Parallel()

	tag, err := domain.NewTextTag("fiction", "Fictional works")
	require.NoError(t, err)

	raw, err := bson.Marshal(textTagToDocument(tag))
	require.NoError(t, err)

	var fields bson.M
	require.NoError(t, bson.Unmarshal(raw, &fields))
	assert.Equal(t, tag.ID, fields["_id"])

	var doc textTagDocument
	require.NoError(t, bson.Unmarshal(raw, &doc))
	restored := doc.toDomain()
	assert.Equal(t, tag.Name, restored.Name)
	assert.Equal(t, tag.Description, restored.Description)
}

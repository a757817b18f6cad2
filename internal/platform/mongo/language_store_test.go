//go:build integration

package mongo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexiglow/lexiglow-api/internal/domain"
	"github.com/lexiglow/lexiglow-api/internal/platform/mongo"
	"github.com/lexiglow/lexiglow-api/internal/store"
	"github.com/lexiglow/lexiglow-api/internal/testdb"
)

// Tests share one database and reset it between runs, so they stay serial.

func TestLanguageStore_CreateAndGet(t *testing.T) {
	db := testdb.GetTestMongoDB(t)
	testdb.ResetMongo(t, db)

	langStore := mongo.NewLanguageStore(db, nil)
	ctx, cancel := context.WithTimeout(context.Background(), testdb.TestTimeout)
	defer cancel()

	lang, err := domain.NewLanguage("Spanish", "ES", "Español")
	require.NoError(t, err)

	created, err := langStore.Create(ctx, lang)
	require.NoError(t, err, "language creation should succeed")
	assert.Equal(t, "es", created.Code, "code should be normalized to lowercase")
	assert.NotEmpty(t, created.ID)

	fetched, err := langStore.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, fetched.Name)
	assert.Equal(t, created.NativeName, fetched.NativeName)

	byCode, err := langStore.GetByCode(ctx, "es")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byCode.ID)

	exists, err := langStore.CodeExists(ctx, "es")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = langStore.GetByID(ctx, "does-not-exist")
	assert.ErrorIs(t, err, store.ErrLanguageNotFound)
}

func TestLanguageStore_DuplicateCode(t *testing.T) {
	db := testdb.GetTestMongoDB(t)
	testdb.ResetMongo(t, db)

	langStore := mongo.NewLanguageStore(db, nil)
	ctx, cancel := context.WithTimeout(context.Background(), testdb.TestTimeout)
	defer cancel()

	first, err := domain.NewLanguage("German", "de", "Deutsch")
	require.NoError(t, err)
	_, err = langStore.Create(ctx, first)
	require.NoError(t, err)

	// The unique index on code must surface as the same conflict kind the
	// relational backend reports.
	second, err := domain.NewLanguage("Germanic", "de", "Deutsch")
	require.NoError(t, err)
	_, err = langStore.Create(ctx, second)
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrLanguageCodeExists)
	assert.True(t, store.IsDuplicateError(err))
}

func TestLanguageStore_GetAll_Pagination(t *testing.T) {
	db := testdb.GetTestMongoDB(t)
	testdb.ResetMongo(t, db)

	langStore := mongo.NewLanguageStore(db, nil)
	ctx, cancel := context.WithTimeout(context.Background(), testdb.TestTimeout)
	defer cancel()

	codes := []string{"aa", "bb", "cc"}
	for _, code := range codes {
		lang, err := domain.NewLanguage("Lang "+code, code, "Lang "+code)
		require.NoError(t, err)
		_, err = langStore.Create(ctx, lang)
		require.NoError(t, err)
	}

	page, err := langStore.GetAll(ctx, 0, 2)
	require.NoError(t, err)
	assert.Len(t, page, 2)

	rest, err := langStore.GetAll(ctx, 2, 2)
	require.NoError(t, err)
	assert.Len(t, rest, 1)

	// A zero limit is an empty page, not "unlimited".
	empty, err := langStore.GetAll(ctx, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestLanguageStore_UpdateAndDelete(t *testing.T) {
	db := testdb.GetTestMongoDB(t)
	testdb.ResetMongo(t, db)

	langStore := mongo.NewLanguageStore(db, nil)
	ctx, cancel := context.WithTimeout(context.Background(), testdb.TestTimeout)
	defer cancel()

	lang, err := domain.NewLanguage("French", "fr", "Français")
	require.NoError(t, err)
	created, err := langStore.Create(ctx, lang)
	require.NoError(t, err)

	created.NativeName = "français"
	updated, err := langStore.Update(ctx, created.ID, created)
	require.NoError(t, err)
	assert.Equal(t, "français", updated.NativeName)

	_, err = langStore.Update(ctx, "does-not-exist", created)
	assert.ErrorIs(t, err, store.ErrLanguageNotFound)

	deleted, err := langStore.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = langStore.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted, "second delete should report nothing removed")
}

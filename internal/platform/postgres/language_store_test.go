//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexiglow/lexiglow-api/internal/domain"
	"github.com/lexiglow/lexiglow-api/internal/platform/postgres"
	"github.com/lexiglow/lexiglow-api/internal/store"
	"github.com/lexiglow/lexiglow-api/internal/testdb"
	"github.com/lexiglow/lexiglow-api/internal/testutils"
)

func TestLanguageStore_CreateAndGet(t *testing.T) {
	t.Parallel()

	db := testdb.GetTestDB(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		langStore := postgres.NewLanguageStore(tx, nil)
		ctx, cancel := context.WithTimeout(context.Background(), testdb.TestTimeout)
		defer cancel()

		lang, err := domain.NewLanguage("Spanish", "ES", "Español")
		require.NoError(t, err)

		created, err := langStore.Create(ctx, lang)
		require.NoError(t, err, "language creation should succeed")
		assert.Equal(t, "es", created.Code, "code should be normalized to lowercase")
		assert.NotEmpty(t, created.ID)
		assert.False(t, created.CreatedAt.IsZero())

		fetched, err := langStore.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, fetched.ID)
		assert.Equal(t, "Spanish", fetched.Name)
		assert.Equal(t, "Español", fetched.NativeName)

		byCode, err := langStore.GetByCode(ctx, "es")
		require.NoError(t, err)
		assert.Equal(t, created.ID, byCode.ID)

		byName, err := langStore.GetByName(ctx, "Spanish")
		require.NoError(t, err)
		assert.Equal(t, created.ID, byName.ID)
	})
}

func TestLanguageStore_DuplicateCode(t *testing.T) {
	t.Parallel()

	db := testdb.GetTestDB(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		langStore := postgres.NewLanguageStore(tx, nil)
		ctx, cancel := context.WithTimeout(context.Background(), testdb.TestTimeout)
		defer cancel()

		first, err := domain.NewLanguage("French", "fr", "Français")
		require.NoError(t, err)
		_, err = langStore.Create(ctx, first)
		require.NoError(t, err)

		second, err := domain.NewLanguage("Gallic", "fr", "Français")
		require.NoError(t, err)
		_, err = langStore.Create(ctx, second)

		require.Error(t, err, "second language with the same code must be rejected")
		assert.ErrorIs(t, err, store.ErrLanguageCodeExists)
		assert.ErrorIs(t, err, store.ErrDuplicate)
	})
}

func TestLanguageStore_GetByID_NotFound(t *testing.T) {
	t.Parallel()

	db := testdb.GetTestDB(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		langStore := postgres.NewLanguageStore(tx, nil)
		ctx, cancel := context.WithTimeout(context.Background(), testdb.TestTimeout)
		defer cancel()

		_, err := langStore.GetByID(ctx, domain.NewID())
		assert.ErrorIs(t, err, store.ErrLanguageNotFound)
		assert.True(t, store.IsNotFoundError(err))

		_, err = langStore.GetByCode(ctx, "zz")
		assert.ErrorIs(t, err, store.ErrLanguageNotFound)
	})
}

func TestLanguageStore_GetAll_Pagination(t *testing.T) {
	t.Parallel()

	db := testdb.GetTestDB(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		langStore := postgres.NewLanguageStore(tx, nil)
		ctx, cancel := context.WithTimeout(context.Background(), testdb.TestTimeout)
		defer cancel()

		for i := 0; i < 5; i++ {
			testutils.MustInsertLanguage(ctx, t, tx)
		}

		all, err := langStore.GetAll(ctx, 0, 100)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(all), 5)

		// Stable ordering by ID makes pages non-overlapping.
		page1, err := langStore.GetAll(ctx, 0, 2)
		require.NoError(t, err)
		require.Len(t, page1, 2)
		assert.Less(t, page1[0].ID, page1[1].ID)

		page2, err := langStore.GetAll(ctx, 2, 2)
		require.NoError(t, err)
		require.Len(t, page2, 2)
		assert.NotEqual(t, page1[0].ID, page2[0].ID)
		assert.Less(t, page1[1].ID, page2[0].ID)

		// A zero limit yields an empty page, never the full table.
		empty, err := langStore.GetAll(ctx, 0, 0)
		require.NoError(t, err)
		assert.Empty(t, empty)

		// Skipping past the end yields an empty page.
		beyond, err := langStore.GetAll(ctx, 10000, 10)
		require.NoError(t, err)
		assert.Empty(t, beyond)
	})
}

func TestLanguageStore_Update(t *testing.T) {
	t.Parallel()

	db := testdb.GetTestDB(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		langStore := postgres.NewLanguageStore(tx, nil)
		ctx, cancel := context.WithTimeout(context.Background(), testdb.TestTimeout)
		defer cancel()

		lang := testutils.MustInsertLanguage(ctx, t, tx)

		lang.Name = "Renamed"
		lang.NativeName = "Renamed Native"
		updated, err := langStore.Update(ctx, lang.ID, lang)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Name)
		assert.Equal(t, lang.Code, updated.Code)

		// Updating an absent ID reports not found.
		missing, err := domain.NewLanguage("Ghost", "gh-xx", "Ghost")
		require.NoError(t, err)
		_, err = langStore.Update(ctx, domain.NewID(), missing)
		assert.ErrorIs(t, err, store.ErrLanguageNotFound)
	})
}

func TestLanguageStore_Delete_Idempotent(t *testing.T) {
	t.Parallel()

	db := testdb.GetTestDB(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		langStore := postgres.NewLanguageStore(tx, nil)
		ctx, cancel := context.WithTimeout(context.Background(), testdb.TestTimeout)
		defer cancel()

		lang := testutils.MustInsertLanguage(ctx, t, tx)

		deleted, err := langStore.Delete(ctx, lang.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		// Second delete is a no-op, not an error.
		deleted, err = langStore.Delete(ctx, lang.ID)
		require.NoError(t, err)
		assert.False(t, deleted)

		exists, err := langStore.Exists(ctx, lang.ID)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestLanguageStore_DeleteRestrictedByUsers(t *testing.T) {
	t.Parallel()

	db := testdb.GetTestDB(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		langStore := postgres.NewLanguageStore(tx, nil)
		ctx, cancel := context.WithTimeout(context.Background(), testdb.TestTimeout)
		defer cancel()

		lang := testutils.MustInsertLanguage(ctx, t, tx)
		testutils.MustInsertUser(ctx, t, tx, lang.ID)

		// Users reference languages with ON DELETE RESTRICT.
		_, err := langStore.Delete(ctx, lang.ID)
		require.Error(t, err)
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})
}

func TestLanguageStore_CodeExists(t *testing.T) {
	t.Parallel()

	db := testdb.GetTestDB(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		langStore := postgres.NewLanguageStore(tx, nil)
		ctx, cancel := context.WithTimeout(context.Background(), testdb.TestTimeout)
		defer cancel()

		lang := testutils.MustInsertLanguage(ctx, t, tx)

		exists, err := langStore.CodeExists(ctx, lang.Code)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = langStore.CodeExists(ctx, "zz-none")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

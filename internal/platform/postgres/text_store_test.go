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

func TestTextStore_CreateAndGet(t *testing.T) {
	t.Parallel()

	db := testdb.GetTestDB(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		textStore := postgres.NewTextStore(tx, nil)
		ctx, cancel := context.WithTimeout(context.Background(), testdb.TestTimeout)
		defer cancel()

		lang := testutils.MustInsertLanguage(ctx, t, tx)
		user := testutils.MustInsertUser(ctx, t, tx, lang.ID)

		text, err := domain.NewText("El Principito", "Había una vez...", lang.ID, user.ID, domain.ProficiencyA2, 3)
		require.NoError(t, err)

		created, err := textStore.Create(ctx, text)
		require.NoError(t, err)
		assert.True(t, created.IsPublic, "texts default to public visibility")

		fetched, err := textStore.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "El Principito", fetched.Title)
		assert.Equal(t, user.ID, fetched.UserID)
		assert.Equal(t, domain.ProficiencyA2, fetched.ProficiencyLevel)
	})
}

func TestTextStore_CreateRequiresLanguage(t *testing.T) {
	t.Parallel()

	db := testdb.GetTestDB(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		textStore := postgres.NewTextStore(tx, nil)
		ctx, cancel := context.WithTimeout(context.Background(), testdb.TestTimeout)
		defer cancel()

		text, err := domain.NewText("Orphan", "content", domain.NewID(), "", domain.ProficiencyA1, 1)
		require.NoError(t, err)

		_, err = textStore.Create(ctx, text)
		require.Error(t, err, "a text referencing an absent language must be rejected")
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})
}

func TestTextStore_Filters(t *testing.T) {
	t.Parallel()

	db := testdb.GetTestDB(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		textStore := postgres.NewTextStore(tx, nil)
		ctx, cancel := context.WithTimeout(context.Background(), testdb.TestTimeout)
		defer cancel()

		lang := testutils.MustInsertLanguage(ctx, t, tx)
		otherLang := testutils.MustInsertLanguage(ctx, t, tx)
		user := testutils.MustInsertUser(ctx, t, tx, lang.ID)

		testutils.MustInsertText(ctx, t, tx, lang.ID, user.ID)
		testutils.MustInsertText(ctx, t, tx, otherLang.ID, user.ID)

		private, err := domain.NewText("Private Notes", "secret", lang.ID, user.ID, domain.ProficiencyC1, 1)
		require.NoError(t, err)
		private.IsPublic = false
		_, err = textStore.Create(ctx, private)
		require.NoError(t, err)

		byLang, err := textStore.GetByLanguage(ctx, lang.ID, 0, 100)
		require.NoError(t, err)
		require.Len(t, byLang, 2)

		byUser, err := textStore.GetByUser(ctx, user.ID, 0, 100)
		require.NoError(t, err)
		require.Len(t, byUser, 3)

		byLevel, err := textStore.GetByProficiencyLevel(ctx, domain.ProficiencyC1, 0, 100)
		require.NoError(t, err)
		found := false
		for _, match := range byLevel {
			if match.ID == private.ID {
				found = true
			}
		}
		assert.True(t, found, "level filter should include the C1 text")

		public, err := textStore.GetPublicTexts(ctx, 0, 1000)
		require.NoError(t, err)
		for _, pt := range public {
			assert.True(t, pt.IsPublic)
			assert.NotEqual(t, private.ID, pt.ID)
		}

		// Title search is case-insensitive substring matching and is not
		// restricted to public texts.
		matches, err := textStore.SearchByTitle(ctx, "private", 0, 100)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, private.ID, matches[0].ID)

		// A zero limit yields an empty page on every list operation.
		empty, err := textStore.GetByLanguage(ctx, lang.ID, 0, 0)
		require.NoError(t, err)
		assert.Empty(t, empty)
	})
}

func TestTextStore_SearchByTitleTreatsQueryAsLiteral(t *testing.T) {
	t.Parallel()

	db := testdb.GetTestDB(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		textStore := postgres.NewTextStore(tx, nil)
		ctx, cancel := context.WithTimeout(context.Background(), testdb.TestTimeout)
		defer cancel()

		lang := testutils.MustInsertLanguage(ctx, t, tx)
		user := testutils.MustInsertUser(ctx, t, tx, lang.ID)

		percent, err := domain.NewText("100% Natural Spanish", "texto", lang.ID, user.ID, domain.ProficiencyA2, 1)
		require.NoError(t, err)
		_, err = textStore.Create(ctx, percent)
		require.NoError(t, err)

		plain, err := domain.NewText("100 Days of German", "text", lang.ID, user.ID, domain.ProficiencyA2, 1)
		require.NoError(t, err)
		_, err = textStore.Create(ctx, plain)
		require.NoError(t, err)

		// "%" in the query is a literal character, not a wildcard, so only
		// the title that actually contains it matches.
		matches, err := textStore.SearchByTitle(ctx, "100%", 0, 100)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, percent.ID, matches[0].ID)

		// Same for "_": it must not match an arbitrary character.
		matches, err = textStore.SearchByTitle(ctx, "100_", 0, 100)
		require.NoError(t, err)
		assert.Empty(t, matches)
	})
}

func TestTextStore_Tags(t *testing.T) {
	t.Parallel()

	db := testdb.GetTestDB(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		textStore := postgres.NewTextStore(tx, nil)
		ctx, cancel := context.WithTimeout(context.Background(), testdb.TestTimeout)
		defer cancel()

		lang := testutils.MustInsertLanguage(ctx, t, tx)
		user := testutils.MustInsertUser(ctx, t, tx, lang.ID)
		text1 := testutils.MustInsertText(ctx, t, tx, lang.ID, user.ID)
		text2 := testutils.MustInsertText(ctx, t, tx, lang.ID, user.ID)

		tagA, err := domain.NewTextTag("beginner-"+lang.Code, "Beginner friendly")
		require.NoError(t, err)
		tagA, err = textStore.CreateTag(ctx, tagA)
		require.NoError(t, err)

		tagB, err := domain.NewTextTag("fiction-"+lang.Code, "")
		require.NoError(t, err)
		tagB, err = textStore.CreateTag(ctx, tagB)
		require.NoError(t, err)

		// Duplicate tag names are rejected.
		dup, err := domain.NewTextTag("beginner-"+lang.Code, "again")
		require.NoError(t, err)
		_, err = textStore.CreateTag(ctx, dup)
		assert.ErrorIs(t, err, store.ErrTagNameExists)

		require.NoError(t, textStore.AddTagToText(ctx, text1.ID, tagA.ID))
		require.NoError(t, textStore.AddTagToText(ctx, text1.ID, tagB.ID))
		require.NoError(t, textStore.AddTagToText(ctx, text2.ID, tagB.ID))

		// Re-adding an existing association is a no-op.
		require.NoError(t, textStore.AddTagToText(ctx, text1.ID, tagA.ID))

		// Union semantics: text1 carries both tags but appears once.
		matched, err := textStore.GetByTags(ctx, []string{tagA.ID, tagB.ID}, 0, 100)
		require.NoError(t, err)
		require.Len(t, matched, 2)

		onlyA, err := textStore.GetByTags(ctx, []string{tagA.ID}, 0, 100)
		require.NoError(t, err)
		require.Len(t, onlyA, 1)
		assert.Equal(t, text1.ID, onlyA[0].ID)

		removed, err := textStore.RemoveTagFromText(ctx, text1.ID, tagA.ID)
		require.NoError(t, err)
		assert.True(t, removed)

		removed, err = textStore.RemoveTagFromText(ctx, text1.ID, tagA.ID)
		require.NoError(t, err)
		assert.False(t, removed, "removing an absent association reports false")

		onlyA, err = textStore.GetByTags(ctx, []string{tagA.ID}, 0, 100)
		require.NoError(t, err)
		assert.Empty(t, onlyA)
	})
}

func TestTextStore_UpdateAndDelete(t *testing.T) {
	t.Parallel()

	db := testdb.GetTestDB(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		textStore := postgres.NewTextStore(tx, nil)
		ctx, cancel := context.WithTimeout(context.Background(), testdb.TestTimeout)
		defer cancel()

		lang := testutils.MustInsertLanguage(ctx, t, tx)
		user := testutils.MustInsertUser(ctx, t, tx, lang.ID)
		text := testutils.MustInsertText(ctx, t, tx, lang.ID, user.ID)

		text.Title = "Updated Title"
		text.ProficiencyLevel = domain.ProficiencyC2
		updated, err := textStore.Update(ctx, text.ID, text)
		require.NoError(t, err)
		assert.Equal(t, "Updated Title", updated.Title)
		assert.Equal(t, domain.ProficiencyC2, updated.ProficiencyLevel)

		_, err = textStore.Update(ctx, domain.NewID(), text)
		assert.ErrorIs(t, err, store.ErrTextNotFound)

		deleted, err := textStore.Delete(ctx, text.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		_, err = textStore.GetByID(ctx, text.ID)
		assert.ErrorIs(t, err, store.ErrTextNotFound)

		deleted, err = textStore.Delete(ctx, text.ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

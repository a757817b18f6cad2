//go:build integration

package mongo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexiglow/lexiglow-api/internal/platform/mongo"
	"github.com/lexiglow/lexiglow-api/internal/store"
	"github.com/lexiglow/lexiglow-api/internal/testdb"
	"github.com/lexiglow/lexiglow-api/internal/testutils"
)

func TestUserStore_CreateAndGet(t *testing.T) {
	db := testdb.GetTestMongoDB(t)
	testdb.ResetMongo(t, db)

	userStore := mongo.NewUserStore(db, nil)
	ctx, cancel := context.WithTimeout(context.Background(), testdb.TestTimeout)
	defer cancel()

	user := testutils.CreateTestUser(t, "lang-1")
	created, err := userStore.Create(ctx, user)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	byEmail, err := userStore.GetByEmail(ctx, user.Email)
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	byUsername, err := userStore.GetByUsername(ctx, user.Username)
	require.NoError(t, err)
	assert.Equal(t, created.ID, byUsername.ID)

	_, err = userStore.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserStore_DuplicateEmailAndUsername(t *testing.T) {
	db := testdb.GetTestMongoDB(t)
	testdb.ResetMongo(t, db)

	userStore := mongo.NewUserStore(db, nil)
	ctx, cancel := context.WithTimeout(context.Background(), testdb.TestTimeout)
	defer cancel()

	user := testutils.CreateTestUser(t, "lang-1")
	_, err := userStore.Create(ctx, user)
	require.NoError(t, err)

	sameEmail := testutils.CreateTestUser(t, "lang-1")
	sameEmail.Email = user.Email
	_, err = userStore.Create(ctx, sameEmail)
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrEmailExists)
	assert.True(t, store.IsDuplicateError(err))

	sameUsername := testutils.CreateTestUser(t, "lang-1")
	sameUsername.Username = user.Username
	_, err = userStore.Create(ctx, sameUsername)
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrUsernameExists)
	assert.True(t, store.IsDuplicateError(err))
}

// The document backend enforces no referential integrity: a user whose
// language references point nowhere is accepted, unlike on the relational
// backend where the foreign key rejects it.
func TestUserStore_AcceptsAbsentLanguageReference(t *testing.T) {
	db := testdb.GetTestMongoDB(t)
	testdb.ResetMongo(t, db)

	userStore := mongo.NewUserStore(db, nil)
	ctx, cancel := context.WithTimeout(context.Background(), testdb.TestTimeout)
	defer cancel()

	user := testutils.CreateTestUser(t, "no-such-language")
	created, err := userStore.Create(ctx, user)
	require.NoError(t, err, "document backend accepts dangling references")
	assert.Equal(t, "no-such-language", created.NativeLanguageID)
}

func TestUserStore_UpdateLastActive(t *testing.T) {
	db := testdb.GetTestMongoDB(t)
	testdb.ResetMongo(t, db)

	userStore := mongo.NewUserStore(db, nil)
	ctx, cancel := context.WithTimeout(context.Background(), testdb.TestTimeout)
	defer cancel()

	user := testutils.CreateTestUser(t, "lang-1")
	created, err := userStore.Create(ctx, user)
	require.NoError(t, err)
	require.Nil(t, created.LastActiveAt)

	updated, err := userStore.UpdateLastActive(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, updated)

	fetched, err := userStore.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.LastActiveAt)

	updated, err = userStore.UpdateLastActive(ctx, "does-not-exist")
	require.NoError(t, err)
	assert.False(t, updated)
}

func TestUserStore_DeleteIdempotent(t *testing.T) {
	db := testdb.GetTestMongoDB(t)
	testdb.ResetMongo(t, db)

	userStore := mongo.NewUserStore(db, nil)
	ctx, cancel := context.WithTimeout(context.Background(), testdb.TestTimeout)
	defer cancel()

	user := testutils.CreateTestUser(t, "lang-1")
	created, err := userStore.Create(ctx, user)
	require.NoError(t, err)

	deleted, err := userStore.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = userStore.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

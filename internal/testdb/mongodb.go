package testdb

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/lexiglow/lexiglow-api/internal/platform/mongo"
)

// mongoTestDatabase is the database name used when the URI does not carry one.
const mongoTestDatabase = "lexiglow_test"

var (
	mongoOnce sync.Once
	sharedMDB *mongodriver.Database
	mongoErr  error
)

// GetTestMongoURI returns the MongoDB URI for integration tests. It checks
// MONGO_URI and LEXIGLOW_TEST_MONGO_URI in that order.
func GetTestMongoURI() string {
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		return uri
	}
	return os.Getenv("LEXIGLOW_TEST_MONGO_URI")
}

// GetTestMongoDB returns a shared database handle with the unique indexes
// in place, skipping the test when no test deployment is configured.
//
// MongoDB has no transaction-rollback isolation to lean on the way the
// relational helper does, so callers reset state with ResetMongo instead
// and must not run in parallel.
func GetTestMongoDB(t *testing.T) *mongodriver.Database {
	t.Helper()

	uri := GetTestMongoURI()
	if uri == "" {
		t.Skip("skipping integration test: MONGO_URI not set")
	}

	mongoOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
		defer cancel()

		client, err := mongo.Connect(ctx, uri)
		if err != nil {
			mongoErr = err
			return
		}
		db := client.Database(mongoTestDatabase)
		if err := mongo.EnsureIndexes(ctx, db); err != nil {
			mongoErr = err
			return
		}
		sharedMDB = db
	})
	require.NoError(t, mongoErr, "Failed to set up test mongo database")

	return sharedMDB
}

// ResetMongo deletes every document from every collection so a test starts
// from a clean slate. Indexes survive, only data is removed.
func ResetMongo(t *testing.T, db *mongodriver.Database) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	names, err := db.ListCollectionNames(ctx, bson.D{})
	require.NoError(t, err, "Failed to list collections")

	for _, name := range names {
		_, err := db.Collection(name).DeleteMany(ctx, bson.D{})
		require.NoError(t, err, "Failed to clear collection %s", name)
	}
}

package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	languagesCollection    = "languages"
	usersCollection        = "users"
	textsCollection        = "texts"
	textTagsCollection     = "text_tags"
	vocabulariesCollection = "user_vocabularies"
	vocabularyItemsColl    = "user_vocabulary_items"
)

// Unique index names. MapError recognizes these in duplicate-key errors and
// translates them to entity-specific conflict errors.
const (
	languageCodeIndex       = "languages_code_unique"
	userEmailIndex          = "users_email_unique"
	userUsernameIndex       = "users_username_unique"
	tagNameIndex            = "text_tags_name_unique"
	vocabularyOwnerIndex    = "user_vocabularies_user_language_unique"
	vocabularyItemTermIndex = "user_vocabulary_items_vocabulary_term_unique"
)

// connectTimeout bounds the initial server selection and ping.
const connectTimeout = 5 * time.Second

// Connect establishes a connection to the MongoDB deployment at the given
// URL and verifies it with a ping. The returned client is safe for
// concurrent use and should be disconnected on shutdown.
func Connect(ctx context.Context, url string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(url))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return client, nil
}

// EnsureIndexes creates the unique indexes that keep this backend's
// uniqueness rules in parity with the relational schema. Index creation is
// idempotent; calling it on every startup is safe.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := []struct {
		collection string
		model      mongo.IndexModel
	}{
		{
			collection: languagesCollection,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "code", Value: 1}},
				Options: options.Index().SetUnique(true).SetName(languageCodeIndex),
			},
		},
		{
			collection: usersCollection,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true).SetName(userEmailIndex),
			},
		},
		{
			collection: usersCollection,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "username", Value: 1}},
				Options: options.Index().SetUnique(true).SetName(userUsernameIndex),
			},
		},
		{
			collection: textTagsCollection,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "name", Value: 1}},
				Options: options.Index().SetUnique(true).SetName(tagNameIndex),
			},
		},
		{
			collection: vocabulariesCollection,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "languageId", Value: 1}},
				Options: options.Index().SetUnique(true).SetName(vocabularyOwnerIndex),
			},
		},
		{
			collection: vocabularyItemsColl,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "vocabularyId", Value: 1}, {Key: "term", Value: 1}},
				Options: options.Index().SetUnique(true).SetName(vocabularyItemTermIndex),
			},
		},
	}

	for _, idx := range indexes {
		if _, err := db.Collection(idx.collection).Indexes().CreateOne(ctx, idx.model); err != nil {
			return fmt.Errorf("failed to create index on %s: %w", idx.collection, err)
		}
	}

	return nil
}

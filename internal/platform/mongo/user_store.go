package mongo

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lexiglow/lexiglow-api/internal/domain"
	"github.com/lexiglow/lexiglow-api/internal/platform/logger"
	"github.com/lexiglow/lexiglow-api/internal/store"
)

// UserStore implements the store.UserStore interface backed by a MongoDB
// collection. Language references are stored as plain IDs and are not
// validated against the languages collection.
type UserStore struct {
	collection *mongo.Collection
	logger     *slog.Logger
}

// NewUserStore creates a new MongoDB implementation of the UserStore
// interface.
func NewUserStore(db *mongo.Database, log *slog.Logger) *UserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &UserStore{
		collection: db.Collection(usersCollection),
		logger:     log.With(slog.String("component", "user_store")),
	}
}

// Ensure UserStore implements store.UserStore interface
var _ store.UserStore = (*UserStore)(nil)

// Create implements store.Repository.Create.
func (s *UserStore) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if user.ID == "" {
		user.ID = domain.NewID()
	}
	now := timeNow()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = now
	}

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during create",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID))
		return nil, err
	}

	if _, err := s.collection.InsertOne(ctx, userToDocument(user)); err != nil {
		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID))
		return nil, MapError(err)
	}

	log.Info("user created successfully", slog.String("user_id", user.ID))
	return user, nil
}

// GetByID implements store.Repository.GetByID.
func (s *UserStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.getOne(ctx, bson.M{"_id": id})
}

// GetByEmail implements store.UserStore.GetByEmail.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.getOne(ctx, bson.M{"email": email})
}

// GetByUsername implements store.UserStore.GetByUsername.
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.getOne(ctx, bson.M{"username": username})
}

func (s *UserStore) getOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var doc userDocument
	err := s.collection.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			log.Debug("user not found")
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	return doc.toDomain(), nil
}

// GetAll implements store.Repository.GetAll.
func (s *UserStore) GetAll(ctx context.Context, skip, limit int) ([]*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if limit <= 0 {
		return []*domain.User{}, nil
	}
	if skip < 0 {
		skip = 0
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		log.Error("failed to query users", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := cursor.Close(ctx); err != nil {
			log.Error("failed to close cursor", slog.String("error", err.Error()))
		}
	}()

	users := []*domain.User{}
	for cursor.Next(ctx) {
		var doc userDocument
		if err := cursor.Decode(&doc); err != nil {
			log.Error("failed to decode user document", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		users = append(users, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, MapError(err)
	}

	return users, nil
}

// Update implements store.Repository.Update. The stored password hash is
// replaced wholesale along with the rest of the profile.
func (s *UserStore) Update(ctx context.Context, id string, user *domain.User) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during update",
			slog.String("error", err.Error()),
			slog.String("user_id", id))
		return nil, err
	}

	update := bson.M{"$set": bson.M{
		"email":             user.Email,
		"username":          user.Username,
		"passwordHash":      user.PasswordHash,
		"firstName":         user.FirstName,
		"lastName":          user.LastName,
		"nativeLanguageId":  user.NativeLanguageID,
		"currentLanguageId": user.CurrentLanguageID,
		"updatedAt":         timeNow(),
	}}
	result, err := s.collection.UpdateByID(ctx, id, update)
	if err != nil {
		log.Error("failed to update user",
			slog.String("error", err.Error()),
			slog.String("user_id", id))
		return nil, MapError(err)
	}
	if result.MatchedCount == 0 {
		log.Debug("user not found for update", slog.String("user_id", id))
		return nil, store.ErrUserNotFound
	}

	log.Info("user updated successfully", slog.String("user_id", id))
	return s.GetByID(ctx, id)
}

// Delete implements store.Repository.Delete. Unlike the relational backend
// there is no cascade; the caller owns cleanup of dependent documents.
func (s *UserStore) Delete(ctx context.Context, id string) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		log.Error("failed to delete user",
			slog.String("error", err.Error()),
			slog.String("user_id", id))
		return false, MapError(err)
	}

	if result.DeletedCount > 0 {
		log.Info("user deleted", slog.String("user_id", id))
		return true, nil
	}
	return false, nil
}

// Exists implements store.Repository.Exists.
func (s *UserStore) Exists(ctx context.Context, id string) (bool, error) {
	return s.exists(ctx, bson.M{"_id": id})
}

// EmailExists implements store.UserStore.EmailExists.
func (s *UserStore) EmailExists(ctx context.Context, email string) (bool, error) {
	return s.exists(ctx, bson.M{"email": email})
}

// UsernameExists implements store.UserStore.UsernameExists.
func (s *UserStore) UsernameExists(ctx context.Context, username string) (bool, error) {
	return s.exists(ctx, bson.M{"username": username})
}

func (s *UserStore) exists(ctx context.Context, filter bson.M) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	count, err := s.collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		log.Error("failed to check user existence", slog.String("error", err.Error()))
		return false, MapError(err)
	}
	return count > 0, nil
}

// UpdateLastActive implements store.UserStore.UpdateLastActive.
func (s *UserStore) UpdateLastActive(ctx context.Context, id string) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.collection.UpdateByID(ctx, id,
		bson.M{"$set": bson.M{"lastActiveAt": timeNow()}})
	if err != nil {
		log.Error("failed to update last active timestamp",
			slog.String("error", err.Error()),
			slog.String("user_id", id))
		return false, MapError(err)
	}
	return result.MatchedCount > 0, nil
}

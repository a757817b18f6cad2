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

// LanguageStore implements the store.LanguageStore interface backed by a
// MongoDB collection.
type LanguageStore struct {
	collection *mongo.Collection
	logger     *slog.Logger
}

// NewLanguageStore creates a new MongoDB implementation of the
// LanguageStore interface.
func NewLanguageStore(db *mongo.Database, log *slog.Logger) *LanguageStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &LanguageStore{
		collection: db.Collection(languagesCollection),
		logger:     log.With(slog.String("component", "language_store")),
	}
}

// Ensure LanguageStore implements store.LanguageStore interface
var _ store.LanguageStore = (*LanguageStore)(nil)

// Create implements store.Repository.Create.
func (s *LanguageStore) Create(ctx context.Context, lang *domain.Language) (*domain.Language, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if lang.ID == "" {
		lang.ID = domain.NewID()
	}
	if lang.CreatedAt.IsZero() {
		lang.CreatedAt = timeNow()
	}

	if err := lang.Validate(); err != nil {
		log.Warn("language validation failed during create",
			slog.String("error", err.Error()),
			slog.String("language_id", lang.ID))
		return nil, err
	}

	if _, err := s.collection.InsertOne(ctx, languageToDocument(lang)); err != nil {
		log.Error("failed to create language",
			slog.String("error", err.Error()),
			slog.String("language_id", lang.ID))
		return nil, MapError(err)
	}

	log.Info("language created successfully",
		slog.String("language_id", lang.ID),
		slog.String("code", lang.Code))
	return lang, nil
}

// GetByID implements store.Repository.GetByID.
func (s *LanguageStore) GetByID(ctx context.Context, id string) (*domain.Language, error) {
	return s.getOne(ctx, bson.M{"_id": id})
}

// GetByCode implements store.LanguageStore.GetByCode.
func (s *LanguageStore) GetByCode(ctx context.Context, code string) (*domain.Language, error) {
	return s.getOne(ctx, bson.M{"code": code})
}

// GetByName implements store.LanguageStore.GetByName.
func (s *LanguageStore) GetByName(ctx context.Context, name string) (*domain.Language, error) {
	return s.getOne(ctx, bson.M{"name": name})
}

func (s *LanguageStore) getOne(ctx context.Context, filter bson.M) (*domain.Language, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var doc languageDocument
	err := s.collection.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			log.Debug("language not found")
			return nil, store.ErrLanguageNotFound
		}
		log.Error("failed to get language", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	return doc.toDomain(), nil
}

// GetAll implements store.Repository.GetAll.
func (s *LanguageStore) GetAll(ctx context.Context, skip, limit int) ([]*domain.Language, error) {
	return s.list(ctx, bson.M{}, skip, limit)
}

func (s *LanguageStore) list(ctx context.Context, filter bson.M, skip, limit int) ([]*domain.Language, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// The driver treats a zero limit as unlimited; a zero page is empty.
	if limit <= 0 {
		return []*domain.Language{}, nil
	}
	if skip < 0 {
		skip = 0
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		log.Error("failed to query languages", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := cursor.Close(ctx); err != nil {
			log.Error("failed to close cursor", slog.String("error", err.Error()))
		}
	}()

	languages := []*domain.Language{}
	for cursor.Next(ctx) {
		var doc languageDocument
		if err := cursor.Decode(&doc); err != nil {
			log.Error("failed to decode language document", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		languages = append(languages, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, MapError(err)
	}

	return languages, nil
}

// Update implements store.Repository.Update.
func (s *LanguageStore) Update(ctx context.Context, id string, lang *domain.Language) (*domain.Language, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := lang.Validate(); err != nil {
		log.Warn("language validation failed during update",
			slog.String("error", err.Error()),
			slog.String("language_id", id))
		return nil, err
	}

	update := bson.M{"$set": bson.M{
		"name":       lang.Name,
		"code":       lang.Code,
		"nativeName": lang.NativeName,
	}}
	result, err := s.collection.UpdateByID(ctx, id, update)
	if err != nil {
		log.Error("failed to update language",
			slog.String("error", err.Error()),
			slog.String("language_id", id))
		return nil, MapError(err)
	}
	if result.MatchedCount == 0 {
		log.Debug("language not found for update", slog.String("language_id", id))
		return nil, store.ErrLanguageNotFound
	}

	log.Info("language updated successfully", slog.String("language_id", id))
	return s.GetByID(ctx, id)
}

// Delete implements store.Repository.Delete. No cascade happens here;
// documents referencing the language are left untouched.
func (s *LanguageStore) Delete(ctx context.Context, id string) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		log.Error("failed to delete language",
			slog.String("error", err.Error()),
			slog.String("language_id", id))
		return false, MapError(err)
	}

	if result.DeletedCount > 0 {
		log.Info("language deleted", slog.String("language_id", id))
		return true, nil
	}
	return false, nil
}

// Exists implements store.Repository.Exists.
func (s *LanguageStore) Exists(ctx context.Context, id string) (bool, error) {
	return s.exists(ctx, bson.M{"_id": id})
}

// CodeExists implements store.LanguageStore.CodeExists.
func (s *LanguageStore) CodeExists(ctx context.Context, code string) (bool, error) {
	return s.exists(ctx, bson.M{"code": code})
}

func (s *LanguageStore) exists(ctx context.Context, filter bson.M) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	count, err := s.collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		log.Error("failed to check language existence", slog.String("error", err.Error()))
		return false, MapError(err)
	}
	return count > 0, nil
}

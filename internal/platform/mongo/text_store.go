package mongo

import (
	"context"
	"log/slog"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lexiglow/lexiglow-api/internal/domain"
	"github.com/lexiglow/lexiglow-api/internal/platform/logger"
	"github.com/lexiglow/lexiglow-api/internal/store"
)

// TextStore implements the store.TextStore interface backed by MongoDB.
// Tag associations live inside the text document as a tagIds array; the
// text_tags collection only holds the tag definitions.
type TextStore struct {
	texts  *mongo.Collection
	tags   *mongo.Collection
	logger *slog.Logger
}

// NewTextStore creates a new MongoDB implementation of the TextStore
// interface.
func NewTextStore(db *mongo.Database, log *slog.Logger) *TextStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &TextStore{
		texts:  db.Collection(textsCollection),
		tags:   db.Collection(textTagsCollection),
		logger: log.With(slog.String("component", "text_store")),
	}
}

// Ensure TextStore implements store.TextStore interface
var _ store.TextStore = (*TextStore)(nil)

// Create implements store.Repository.Create.
func (s *TextStore) Create(ctx context.Context, text *domain.Text) (*domain.Text, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if text.ID == "" {
		text.ID = domain.NewID()
	}
	now := timeNow()
	if text.CreatedAt.IsZero() {
		text.CreatedAt = now
	}
	if text.UpdatedAt.IsZero() {
		text.UpdatedAt = now
	}

	if err := text.Validate(); err != nil {
		log.Warn("text validation failed during create",
			slog.String("error", err.Error()),
			slog.String("text_id", text.ID))
		return nil, err
	}

	if _, err := s.texts.InsertOne(ctx, textToDocument(text)); err != nil {
		log.Error("failed to create text",
			slog.String("error", err.Error()),
			slog.String("text_id", text.ID))
		return nil, MapError(err)
	}

	log.Info("text created successfully",
		slog.String("text_id", text.ID),
		slog.String("language_id", text.LanguageID))
	return text, nil
}

// GetByID implements store.Repository.GetByID.
func (s *TextStore) GetByID(ctx context.Context, id string) (*domain.Text, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var doc textDocument
	err := s.texts.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			log.Debug("text not found", slog.String("text_id", id))
			return nil, store.ErrTextNotFound
		}
		log.Error("failed to get text by ID",
			slog.String("error", err.Error()),
			slog.String("text_id", id))
		return nil, MapError(err)
	}
	return doc.toDomain(), nil
}

// GetAll implements store.Repository.GetAll.
func (s *TextStore) GetAll(ctx context.Context, skip, limit int) ([]*domain.Text, error) {
	return s.list(ctx, bson.M{}, skip, limit)
}

// GetByLanguage implements store.TextStore.GetByLanguage.
func (s *TextStore) GetByLanguage(ctx context.Context, languageID string, skip, limit int) ([]*domain.Text, error) {
	return s.list(ctx, bson.M{"languageId": languageID}, skip, limit)
}

// GetByUser implements store.TextStore.GetByUser.
func (s *TextStore) GetByUser(ctx context.Context, userID string, skip, limit int) ([]*domain.Text, error) {
	return s.list(ctx, bson.M{"userId": userID}, skip, limit)
}

// GetByProficiencyLevel implements store.TextStore.GetByProficiencyLevel.
func (s *TextStore) GetByProficiencyLevel(ctx context.Context, level domain.ProficiencyLevel, skip, limit int) ([]*domain.Text, error) {
	return s.list(ctx, bson.M{"proficiencyLevel": string(level)}, skip, limit)
}

// GetPublicTexts implements store.TextStore.GetPublicTexts.
func (s *TextStore) GetPublicTexts(ctx context.Context, skip, limit int) ([]*domain.Text, error) {
	return s.list(ctx, bson.M{"isPublic": true}, skip, limit)
}

// SearchByTitle implements store.TextStore.SearchByTitle.
func (s *TextStore) SearchByTitle(ctx context.Context, query string, skip, limit int) ([]*domain.Text, error) {
	filter := bson.M{"title": bson.M{
		"$regex":   regexp.QuoteMeta(query),
		"$options": "i",
	}}
	return s.list(ctx, filter, skip, limit)
}

// GetByTags implements store.TextStore.GetByTags. $in over the embedded
// tagIds array gives union semantics with each text appearing once.
func (s *TextStore) GetByTags(ctx context.Context, tagIDs []string, skip, limit int) ([]*domain.Text, error) {
	if len(tagIDs) == 0 {
		return []*domain.Text{}, nil
	}
	return s.list(ctx, bson.M{"tagIds": bson.M{"$in": tagIDs}}, skip, limit)
}

func (s *TextStore) list(ctx context.Context, filter bson.M, skip, limit int) ([]*domain.Text, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// The driver treats a zero limit as unlimited; a zero page is empty.
	if limit <= 0 {
		return []*domain.Text{}, nil
	}
	if skip < 0 {
		skip = 0
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := s.texts.Find(ctx, filter, opts)
	if err != nil {
		log.Error("failed to query texts", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := cursor.Close(ctx); err != nil {
			log.Error("failed to close cursor", slog.String("error", err.Error()))
		}
	}()

	texts := []*domain.Text{}
	for cursor.Next(ctx) {
		var doc textDocument
		if err := cursor.Decode(&doc); err != nil {
			log.Error("failed to decode text document", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		texts = append(texts, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, MapError(err)
	}

	return texts, nil
}

// Update implements store.Repository.Update. The tagIds array is managed
// through AddTagToText and RemoveTagFromText, never replaced here.
func (s *TextStore) Update(ctx context.Context, id string, text *domain.Text) (*domain.Text, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := text.Validate(); err != nil {
		log.Warn("text validation failed during update",
			slog.String("error", err.Error()),
			slog.String("text_id", id))
		return nil, err
	}

	update := bson.M{"$set": bson.M{
		"title":            text.Title,
		"content":          text.Content,
		"languageId":       text.LanguageID,
		"userId":           text.UserID,
		"proficiencyLevel": string(text.ProficiencyLevel),
		"wordCount":        text.WordCount,
		"isPublic":         text.IsPublic,
		"source":           text.Source,
		"updatedAt":        timeNow(),
	}}
	result, err := s.texts.UpdateByID(ctx, id, update)
	if err != nil {
		log.Error("failed to update text",
			slog.String("error", err.Error()),
			slog.String("text_id", id))
		return nil, MapError(err)
	}
	if result.MatchedCount == 0 {
		log.Debug("text not found for update", slog.String("text_id", id))
		return nil, store.ErrTextNotFound
	}

	log.Info("text updated successfully", slog.String("text_id", id))
	return s.GetByID(ctx, id)
}

// Delete implements store.Repository.Delete. Tag associations vanish with
// the document since they are embedded.
func (s *TextStore) Delete(ctx context.Context, id string) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.texts.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		log.Error("failed to delete text",
			slog.String("error", err.Error()),
			slog.String("text_id", id))
		return false, MapError(err)
	}

	if result.DeletedCount > 0 {
		log.Info("text deleted", slog.String("text_id", id))
		return true, nil
	}
	return false, nil
}

// Exists implements store.Repository.Exists.
func (s *TextStore) Exists(ctx context.Context, id string) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	count, err := s.texts.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		log.Error("failed to check text existence",
			slog.String("error", err.Error()),
			slog.String("text_id", id))
		return false, MapError(err)
	}
	return count > 0, nil
}

// CreateTag implements store.TextStore.CreateTag.
func (s *TextStore) CreateTag(ctx context.Context, tag *domain.TextTag) (*domain.TextTag, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if tag.ID == "" {
		tag.ID = domain.NewID()
	}

	if err := tag.Validate(); err != nil {
		log.Warn("tag validation failed during create",
			slog.String("error", err.Error()),
			slog.String("tag_id", tag.ID))
		return nil, err
	}

	if _, err := s.tags.InsertOne(ctx, textTagToDocument(tag)); err != nil {
		log.Error("failed to create tag",
			slog.String("error", err.Error()),
			slog.String("tag_name", tag.Name))
		return nil, MapError(err)
	}

	log.Info("tag created successfully",
		slog.String("tag_id", tag.ID),
		slog.String("tag_name", tag.Name))
	return tag, nil
}

// AddTagToText implements store.TextStore.AddTagToText. $addToSet keeps the
// operation idempotent.
func (s *TextStore) AddTagToText(ctx context.Context, textID, tagID string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.texts.UpdateByID(ctx, textID,
		bson.M{"$addToSet": bson.M{"tagIds": tagID}})
	if err != nil {
		log.Error("failed to add tag to text",
			slog.String("error", err.Error()),
			slog.String("text_id", textID),
			slog.String("tag_id", tagID))
		return MapError(err)
	}
	if result.MatchedCount == 0 {
		return store.ErrTextNotFound
	}
	return nil
}

// RemoveTagFromText implements store.TextStore.RemoveTagFromText.
func (s *TextStore) RemoveTagFromText(ctx context.Context, textID, tagID string) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.texts.UpdateByID(ctx, textID,
		bson.M{"$pull": bson.M{"tagIds": tagID}})
	if err != nil {
		log.Error("failed to remove tag from text",
			slog.String("error", err.Error()),
			slog.String("text_id", textID),
			slog.String("tag_id", tagID))
		return false, MapError(err)
	}
	return result.ModifiedCount > 0, nil
}

package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"time"

	"github.com/lexiglow/lexiglow-api/internal/domain"
	"github.com/lexiglow/lexiglow-api/internal/platform/logger"
	"github.com/lexiglow/lexiglow-api/internal/store"
)

// TextStore implements the store.TextStore interface using a PostgreSQL
// database as the storage backend. Tag associations live in a junction
// table; GetByTags joins against it with DISTINCT so a text matching
// several tags appears once.
type TextStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewTextStore creates a new PostgreSQL implementation of the TextStore
// interface.
func NewTextStore(db store.DBTX, log *slog.Logger) *TextStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &TextStore{
		db:     db,
		logger: log.With(slog.String("component", "text_store")),
	}
}

// Ensure TextStore implements store.TextStore interface
var _ store.TextStore = (*TextStore)(nil)

const textColumns = `id, title, content, language_id, user_id, proficiency_level,
	word_count, is_public, source, created_at, updated_at`

func scanText(row interface{ Scan(...any) error }) (*domain.Text, error) {
	var text domain.Text
	var userID, source sql.NullString
	var level string
	err := row.Scan(
		&text.ID, &text.Title, &text.Content, &text.LanguageID, &userID,
		&level, &text.WordCount, &text.IsPublic, &source,
		&text.CreatedAt, &text.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	text.UserID = userID.String
	text.Source = source.String
	text.ProficiencyLevel = domain.ProficiencyLevel(level)
	return &text, nil
}

// nullable converts an empty string to a NULL parameter. The texts table
// stores absent user/source as NULL, not as an empty string.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// Create implements store.Repository.Create.
func (s *TextStore) Create(ctx context.Context, text *domain.Text) (*domain.Text, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if text.ID == "" {
		text.ID = domain.NewID()
	}
	now := time.Now().UTC()
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

	query := `
		INSERT INTO texts (id, title, content, language_id, user_id, proficiency_level,
			word_count, is_public, source, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := s.db.ExecContext(ctx, query,
		text.ID, text.Title, text.Content, text.LanguageID, nullable(text.UserID),
		string(text.ProficiencyLevel), text.WordCount, text.IsPublic, nullable(text.Source),
		text.CreatedAt, text.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to create text",
			slog.String("error", err.Error()),
			slog.String("text_id", text.ID),
			slog.String("language_id", text.LanguageID))
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

	query := `SELECT ` + textColumns + ` FROM texts WHERE id = $1`
	text, err := scanText(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			log.Debug("text not found", slog.String("text_id", id))
			return nil, store.ErrTextNotFound
		}
		log.Error("failed to get text by ID",
			slog.String("error", err.Error()),
			slog.String("text_id", id))
		return nil, MapError(err)
	}
	return text, nil
}

// GetAll implements store.Repository.GetAll.
func (s *TextStore) GetAll(ctx context.Context, skip, limit int) ([]*domain.Text, error) {
	return s.query(ctx,
		`SELECT `+textColumns+` FROM texts ORDER BY id LIMIT $1 OFFSET $2`,
		skip, limit)
}

// GetByLanguage implements store.TextStore.GetByLanguage.
func (s *TextStore) GetByLanguage(ctx context.Context, languageID string, skip, limit int) ([]*domain.Text, error) {
	return s.query(ctx,
		`SELECT `+textColumns+` FROM texts WHERE language_id = $3 ORDER BY id LIMIT $1 OFFSET $2`,
		skip, limit, languageID)
}

// GetByUser implements store.TextStore.GetByUser.
func (s *TextStore) GetByUser(ctx context.Context, userID string, skip, limit int) ([]*domain.Text, error) {
	return s.query(ctx,
		`SELECT `+textColumns+` FROM texts WHERE user_id = $3 ORDER BY id LIMIT $1 OFFSET $2`,
		skip, limit, userID)
}

// GetByProficiencyLevel implements store.TextStore.GetByProficiencyLevel.
func (s *TextStore) GetByProficiencyLevel(ctx context.Context, level domain.ProficiencyLevel, skip, limit int) ([]*domain.Text, error) {
	return s.query(ctx,
		`SELECT `+textColumns+` FROM texts WHERE proficiency_level = $3 ORDER BY id LIMIT $1 OFFSET $2`,
		skip, limit, string(level))
}

// GetPublicTexts implements store.TextStore.GetPublicTexts.
func (s *TextStore) GetPublicTexts(ctx context.Context, skip, limit int) ([]*domain.Text, error) {
	return s.query(ctx,
		`SELECT `+textColumns+` FROM texts WHERE is_public ORDER BY id LIMIT $1 OFFSET $2`,
		skip, limit)
}

// SearchByTitle implements store.TextStore.SearchByTitle. Case-insensitive
// substring match; not restricted to public texts. The query is a literal,
// not a pattern, so LIKE metacharacters are escaped.
func (s *TextStore) SearchByTitle(ctx context.Context, query string, skip, limit int) ([]*domain.Text, error) {
	return s.query(ctx,
		`SELECT `+textColumns+` FROM texts WHERE title ILIKE '%' || $3 || '%' ESCAPE '\' ORDER BY id LIMIT $1 OFFSET $2`,
		skip, limit, escapeLikePattern(query))
}

// escapeLikePattern escapes the LIKE metacharacters in a search term so it
// matches itself rather than acting as a wildcard pattern.
func escapeLikePattern(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// GetByTags implements store.TextStore.GetByTags. Union semantics: a text
// matches when it carries any of the given tags; DISTINCT suppresses
// duplicates from multi-tag matches.
func (s *TextStore) GetByTags(ctx context.Context, tagIDs []string, skip, limit int) ([]*domain.Text, error) {
	if len(tagIDs) == 0 {
		return []*domain.Text{}, nil
	}
	return s.query(ctx,
		`SELECT DISTINCT t.id, t.title, t.content, t.language_id, t.user_id,
			t.proficiency_level, t.word_count, t.is_public, t.source,
			t.created_at, t.updated_at
		FROM texts t
		JOIN text_tag_associations tta ON tta.text_id = t.id
		WHERE tta.tag_id = ANY($3)
		ORDER BY t.id
		LIMIT $1 OFFSET $2`,
		skip, limit, tagIDs)
}

func (s *TextStore) query(ctx context.Context, query string, skip, limit int, args ...any) ([]*domain.Text, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if limit <= 0 {
		return []*domain.Text{}, nil
	}
	if skip < 0 {
		skip = 0
	}

	queryArgs := append([]any{limit, skip}, args...)
	rows, err := s.db.QueryContext(ctx, query, queryArgs...)
	if err != nil {
		log.Error("failed to query texts", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	texts := []*domain.Text{}
	for rows.Next() {
		text, err := scanText(rows)
		if err != nil {
			log.Error("failed to scan text row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		texts = append(texts, text)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return texts, nil
}

// Update implements store.Repository.Update.
func (s *TextStore) Update(ctx context.Context, id string, text *domain.Text) (*domain.Text, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := text.Validate(); err != nil {
		log.Warn("text validation failed during update",
			slog.String("error", err.Error()),
			slog.String("text_id", id))
		return nil, err
	}

	updatedAt := time.Now().UTC()

	query := `
		UPDATE texts
		SET title = $1, content = $2, language_id = $3, user_id = $4,
			proficiency_level = $5, word_count = $6, is_public = $7, source = $8,
			updated_at = $9
		WHERE id = $10
	`
	result, err := s.db.ExecContext(ctx, query,
		text.Title, text.Content, text.LanguageID, nullable(text.UserID),
		string(text.ProficiencyLevel), text.WordCount, text.IsPublic, nullable(text.Source),
		updatedAt, id,
	)
	if err != nil {
		log.Error("failed to update text",
			slog.String("error", err.Error()),
			slog.String("text_id", id))
		return nil, MapError(err)
	}

	updated, err := CheckRowsAffected(result)
	if err != nil {
		return nil, err
	}
	if !updated {
		log.Debug("text not found for update", slog.String("text_id", id))
		return nil, store.ErrTextNotFound
	}

	log.Info("text updated successfully", slog.String("text_id", id))
	return s.GetByID(ctx, id)
}

// Delete implements store.Repository.Delete. Tag associations cascade.
func (s *TextStore) Delete(ctx context.Context, id string) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM texts WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete text",
			slog.String("error", err.Error()),
			slog.String("text_id", id))
		return false, MapError(err)
	}

	deleted, err := CheckRowsAffected(result)
	if err != nil {
		return false, err
	}
	if deleted {
		log.Info("text deleted", slog.String("text_id", id))
	}
	return deleted, nil
}

// Exists implements store.Repository.Exists.
func (s *TextStore) Exists(ctx context.Context, id string) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM texts WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		log.Error("failed to check text existence",
			slog.String("error", err.Error()),
			slog.String("text_id", id))
		return false, MapError(err)
	}
	return exists, nil
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

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO text_tags (id, name, description) VALUES ($1, $2, $3)`,
		tag.ID, tag.Name, nullable(tag.Description))
	if err != nil {
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

// AddTagToText implements store.TextStore.AddTagToText. Re-adding an
// existing association is a no-op.
func (s *TextStore) AddTagToText(ctx context.Context, textID, tagID string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO text_tag_associations (text_id, tag_id)
		VALUES ($1, $2)
		ON CONFLICT (text_id, tag_id) DO NOTHING`,
		textID, tagID)
	if err != nil {
		log.Error("failed to add tag to text",
			slog.String("error", err.Error()),
			slog.String("text_id", textID),
			slog.String("tag_id", tagID))
		return MapError(err)
	}

	log.Debug("tag associated with text",
		slog.String("text_id", textID),
		slog.String("tag_id", tagID))
	return nil
}

// RemoveTagFromText implements store.TextStore.RemoveTagFromText.
func (s *TextStore) RemoveTagFromText(ctx context.Context, textID, tagID string) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx,
		`DELETE FROM text_tag_associations WHERE text_id = $1 AND tag_id = $2`,
		textID, tagID)
	if err != nil {
		log.Error("failed to remove tag from text",
			slog.String("error", err.Error()),
			slog.String("text_id", textID),
			slog.String("tag_id", tagID))
		return false, MapError(err)
	}

	return CheckRowsAffected(result)
}

package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/lexiglow/lexiglow-api/internal/domain"
	"github.com/lexiglow/lexiglow-api/internal/platform/logger"
	"github.com/lexiglow/lexiglow-api/internal/store"
)

// VocabularyStore implements the store.VocabularyStore interface using a
// PostgreSQL database as the storage backend. The schema enforces one
// vocabulary per (user, language) and one entry per (vocabulary, term).
type VocabularyStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewVocabularyStore creates a new PostgreSQL implementation of the
// VocabularyStore interface.
func NewVocabularyStore(db store.DBTX, log *slog.Logger) *VocabularyStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &VocabularyStore{
		db:     db,
		logger: log.With(slog.String("component", "vocabulary_store")),
	}
}

// Ensure VocabularyStore implements store.VocabularyStore interface
var _ store.VocabularyStore = (*VocabularyStore)(nil)

const vocabularyColumns = `id, user_id, language_id, name, created_at, updated_at`

func scanVocabulary(row interface{ Scan(...any) error }) (*domain.UserVocabulary, error) {
	var vocab domain.UserVocabulary
	err := row.Scan(&vocab.ID, &vocab.UserID, &vocab.LanguageID, &vocab.Name,
		&vocab.CreatedAt, &vocab.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &vocab, nil
}

// Create implements store.Repository.Create.
func (s *VocabularyStore) Create(ctx context.Context, vocab *domain.UserVocabulary) (*domain.UserVocabulary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if vocab.ID == "" {
		vocab.ID = domain.NewID()
	}
	now := time.Now().UTC()
	if vocab.CreatedAt.IsZero() {
		vocab.CreatedAt = now
	}
	if vocab.UpdatedAt.IsZero() {
		vocab.UpdatedAt = now
	}

	if err := vocab.Validate(); err != nil {
		log.Warn("vocabulary validation failed during create",
			slog.String("error", err.Error()),
			slog.String("vocabulary_id", vocab.ID))
		return nil, err
	}

	query := `
		INSERT INTO user_vocabularies (id, user_id, language_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(ctx, query,
		vocab.ID, vocab.UserID, vocab.LanguageID, vocab.Name,
		vocab.CreatedAt, vocab.UpdatedAt)
	if err != nil {
		log.Error("failed to create vocabulary",
			slog.String("error", err.Error()),
			slog.String("vocabulary_id", vocab.ID),
			slog.String("user_id", vocab.UserID))
		return nil, MapError(err)
	}

	log.Info("vocabulary created successfully",
		slog.String("vocabulary_id", vocab.ID),
		slog.String("user_id", vocab.UserID),
		slog.String("language_id", vocab.LanguageID))
	return vocab, nil
}

// GetByID implements store.Repository.GetByID.
func (s *VocabularyStore) GetByID(ctx context.Context, id string) (*domain.UserVocabulary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + vocabularyColumns + ` FROM user_vocabularies WHERE id = $1`
	vocab, err := scanVocabulary(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			log.Debug("vocabulary not found", slog.String("vocabulary_id", id))
			return nil, store.ErrVocabularyNotFound
		}
		log.Error("failed to get vocabulary by ID",
			slog.String("error", err.Error()),
			slog.String("vocabulary_id", id))
		return nil, MapError(err)
	}
	return vocab, nil
}

// GetAll implements store.Repository.GetAll.
func (s *VocabularyStore) GetAll(ctx context.Context, skip, limit int) ([]*domain.UserVocabulary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if limit <= 0 {
		return []*domain.UserVocabulary{}, nil
	}
	if skip < 0 {
		skip = 0
	}

	query := `SELECT ` + vocabularyColumns + ` FROM user_vocabularies ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := s.db.QueryContext(ctx, query, limit, skip)
	if err != nil {
		log.Error("failed to query vocabularies", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	vocabularies := []*domain.UserVocabulary{}
	for rows.Next() {
		vocab, err := scanVocabulary(rows)
		if err != nil {
			log.Error("failed to scan vocabulary row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		vocabularies = append(vocabularies, vocab)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return vocabularies, nil
}

// Update implements store.Repository.Update. Only the name is mutable; the
// owning user and language are fixed at creation.
func (s *VocabularyStore) Update(ctx context.Context, id string, vocab *domain.UserVocabulary) (*domain.UserVocabulary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := vocab.Validate(); err != nil {
		log.Warn("vocabulary validation failed during update",
			slog.String("error", err.Error()),
			slog.String("vocabulary_id", id))
		return nil, err
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE user_vocabularies SET name = $1, updated_at = $2 WHERE id = $3`,
		vocab.Name, time.Now().UTC(), id)
	if err != nil {
		log.Error("failed to update vocabulary",
			slog.String("error", err.Error()),
			slog.String("vocabulary_id", id))
		return nil, MapError(err)
	}

	updated, err := CheckRowsAffected(result)
	if err != nil {
		return nil, err
	}
	if !updated {
		log.Debug("vocabulary not found for update", slog.String("vocabulary_id", id))
		return nil, store.ErrVocabularyNotFound
	}

	log.Info("vocabulary updated successfully", slog.String("vocabulary_id", id))
	return s.GetByID(ctx, id)
}

// Delete implements store.Repository.Delete. Items cascade.
func (s *VocabularyStore) Delete(ctx context.Context, id string) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM user_vocabularies WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete vocabulary",
			slog.String("error", err.Error()),
			slog.String("vocabulary_id", id))
		return false, MapError(err)
	}

	deleted, err := CheckRowsAffected(result)
	if err != nil {
		return false, err
	}
	if deleted {
		log.Info("vocabulary deleted", slog.String("vocabulary_id", id))
	}
	return deleted, nil
}

// Exists implements store.Repository.Exists.
func (s *VocabularyStore) Exists(ctx context.Context, id string) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM user_vocabularies WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		log.Error("failed to check vocabulary existence",
			slog.String("error", err.Error()),
			slog.String("vocabulary_id", id))
		return false, MapError(err)
	}
	return exists, nil
}

// GetByUser implements store.VocabularyStore.GetByUser.
func (s *VocabularyStore) GetByUser(ctx context.Context, userID string) ([]*domain.UserVocabulary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + vocabularyColumns + ` FROM user_vocabularies WHERE user_id = $1 ORDER BY id`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to query vocabularies by user",
			slog.String("error", err.Error()),
			slog.String("user_id", userID))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	vocabularies := []*domain.UserVocabulary{}
	for rows.Next() {
		vocab, err := scanVocabulary(rows)
		if err != nil {
			log.Error("failed to scan vocabulary row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		vocabularies = append(vocabularies, vocab)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return vocabularies, nil
}

// GetByUserAndLanguage implements store.VocabularyStore.GetByUserAndLanguage.
func (s *VocabularyStore) GetByUserAndLanguage(ctx context.Context, userID, languageID string) (*domain.UserVocabulary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + vocabularyColumns + ` FROM user_vocabularies WHERE user_id = $1 AND language_id = $2`
	vocab, err := scanVocabulary(s.db.QueryRowContext(ctx, query, userID, languageID))
	if err != nil {
		if err == sql.ErrNoRows {
			log.Debug("vocabulary not found for user and language",
				slog.String("user_id", userID),
				slog.String("language_id", languageID))
			return nil, store.ErrVocabularyNotFound
		}
		log.Error("failed to get vocabulary by user and language",
			slog.String("error", err.Error()),
			slog.String("user_id", userID))
		return nil, MapError(err)
	}
	return vocab, nil
}

const itemColumns = `id, vocabulary_id, term, lemma, stem, part_of_speech, frequency,
	status, times_reviewed, confidence_level, notes, created_at, updated_at`

func scanItem(row interface{ Scan(...any) error }) (*domain.UserVocabularyItem, error) {
	var item domain.UserVocabularyItem
	var lemma, stem, pos, notes sql.NullString
	var frequency sql.NullFloat64
	var status, confidence string
	err := row.Scan(
		&item.ID, &item.VocabularyID, &item.Term, &lemma, &stem, &pos, &frequency,
		&status, &item.TimesReviewed, &confidence, &notes,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	item.Lemma = lemma.String
	item.Stem = stem.String
	item.PartOfSpeech = domain.PartOfSpeech(pos.String)
	item.Frequency = frequency.Float64
	item.Status = domain.VocabularyItemStatus(status)
	item.ConfidenceLevel = domain.ProficiencyLevel(confidence)
	item.Notes = notes.String
	return &item, nil
}

// AddItem implements store.VocabularyStore.AddItem. The schema's unique
// (vocabulary_id, term) constraint surfaces duplicates as store.ErrTermExists.
func (s *VocabularyStore) AddItem(ctx context.Context, item *domain.UserVocabularyItem) (*domain.UserVocabularyItem, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if item.ID == "" {
		item.ID = domain.NewID()
	}
	now := time.Now().UTC()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	if item.UpdatedAt.IsZero() {
		item.UpdatedAt = now
	}

	if err := item.Validate(); err != nil {
		log.Warn("vocabulary item validation failed during create",
			slog.String("error", err.Error()),
			slog.String("item_id", item.ID))
		return nil, err
	}

	query := `
		INSERT INTO user_vocabulary_items (id, vocabulary_id, term, lemma, stem,
			part_of_speech, frequency, status, times_reviewed, confidence_level,
			notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := s.db.ExecContext(ctx, query,
		item.ID, item.VocabularyID, item.Term,
		nullable(item.Lemma), nullable(item.Stem), nullable(string(item.PartOfSpeech)),
		nullFloat(item.Frequency), string(item.Status), item.TimesReviewed,
		string(item.ConfidenceLevel), nullable(item.Notes),
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to add vocabulary item",
			slog.String("error", err.Error()),
			slog.String("vocabulary_id", item.VocabularyID),
			slog.String("term", item.Term))
		return nil, MapError(err)
	}

	log.Info("vocabulary item added",
		slog.String("item_id", item.ID),
		slog.String("vocabulary_id", item.VocabularyID),
		slog.String("term", item.Term))
	return item, nil
}

func nullFloat(f float64) any {
	if f == 0 {
		return nil
	}
	return f
}

// GetItems implements store.VocabularyStore.GetItems.
func (s *VocabularyStore) GetItems(ctx context.Context, vocabularyID string, skip, limit int) ([]*domain.UserVocabularyItem, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if limit <= 0 {
		return []*domain.UserVocabularyItem{}, nil
	}
	if skip < 0 {
		skip = 0
	}

	query := `SELECT ` + itemColumns + ` FROM user_vocabulary_items
		WHERE vocabulary_id = $1 ORDER BY id LIMIT $2 OFFSET $3`
	rows, err := s.db.QueryContext(ctx, query, vocabularyID, limit, skip)
	if err != nil {
		log.Error("failed to query vocabulary items",
			slog.String("error", err.Error()),
			slog.String("vocabulary_id", vocabularyID))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	items := []*domain.UserVocabularyItem{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			log.Error("failed to scan vocabulary item row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return items, nil
}

// UpdateItem implements store.VocabularyStore.UpdateItem.
func (s *VocabularyStore) UpdateItem(ctx context.Context, id string, item *domain.UserVocabularyItem) (*domain.UserVocabularyItem, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := item.Validate(); err != nil {
		log.Warn("vocabulary item validation failed during update",
			slog.String("error", err.Error()),
			slog.String("item_id", id))
		return nil, err
	}

	query := `
		UPDATE user_vocabulary_items
		SET term = $1, lemma = $2, stem = $3, part_of_speech = $4, frequency = $5,
			status = $6, times_reviewed = $7, confidence_level = $8, notes = $9,
			updated_at = $10
		WHERE id = $11
	`
	result, err := s.db.ExecContext(ctx, query,
		item.Term, nullable(item.Lemma), nullable(item.Stem),
		nullable(string(item.PartOfSpeech)), nullFloat(item.Frequency),
		string(item.Status), item.TimesReviewed, string(item.ConfidenceLevel),
		nullable(item.Notes), time.Now().UTC(), id,
	)
	if err != nil {
		log.Error("failed to update vocabulary item",
			slog.String("error", err.Error()),
			slog.String("item_id", id))
		return nil, MapError(err)
	}

	updated, err := CheckRowsAffected(result)
	if err != nil {
		return nil, err
	}
	if !updated {
		log.Debug("vocabulary item not found for update", slog.String("item_id", id))
		return nil, store.ErrVocabularyItemNotFound
	}

	query = `SELECT ` + itemColumns + ` FROM user_vocabulary_items WHERE id = $1`
	return scanItem(s.db.QueryRowContext(ctx, query, id))
}

// DeleteItem implements store.VocabularyStore.DeleteItem.
func (s *VocabularyStore) DeleteItem(ctx context.Context, id string) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM user_vocabulary_items WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete vocabulary item",
			slog.String("error", err.Error()),
			slog.String("item_id", id))
		return false, MapError(err)
	}

	return CheckRowsAffected(result)
}

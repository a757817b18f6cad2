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

// LanguageStore implements the store.LanguageStore interface using a
// PostgreSQL database as the storage backend.
type LanguageStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewLanguageStore creates a new PostgreSQL implementation of the
// LanguageStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller. If logger is nil, a
// default logger will be used.
func NewLanguageStore(db store.DBTX, log *slog.Logger) *LanguageStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &LanguageStore{
		db:     db,
		logger: log.With(slog.String("component", "language_store")),
	}
}

// Ensure LanguageStore implements store.LanguageStore interface
var _ store.LanguageStore = (*LanguageStore)(nil)

// Create implements store.Repository.Create.
// Generates an ID and creation timestamp when unset. The schema's unique
// constraint on code remains the authority for uniqueness; violations come
// back as store.ErrLanguageCodeExists.
func (s *LanguageStore) Create(ctx context.Context, lang *domain.Language) (*domain.Language, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if lang.ID == "" {
		lang.ID = domain.NewID()
	}
	if lang.CreatedAt.IsZero() {
		lang.CreatedAt = time.Now().UTC()
	}

	if err := lang.Validate(); err != nil {
		log.Warn("language validation failed during create",
			slog.String("error", err.Error()),
			slog.String("language_id", lang.ID))
		return nil, err
	}

	query := `
		INSERT INTO languages (id, name, code, native_name, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(ctx, query,
		lang.ID, lang.Name, lang.Code, lang.NativeName, lang.CreatedAt)
	if err != nil {
		log.Error("failed to create language",
			slog.String("error", err.Error()),
			slog.String("language_id", lang.ID),
			slog.String("code", lang.Code))
		return nil, MapError(err)
	}

	log.Info("language created successfully",
		slog.String("language_id", lang.ID),
		slog.String("code", lang.Code))
	return lang, nil
}

// GetByID implements store.Repository.GetByID.
func (s *LanguageStore) GetByID(ctx context.Context, id string) (*domain.Language, error) {
	return s.getOne(ctx, "id = $1", id)
}

// GetByCode implements store.LanguageStore.GetByCode.
func (s *LanguageStore) GetByCode(ctx context.Context, code string) (*domain.Language, error) {
	return s.getOne(ctx, "code = $1", code)
}

// GetByName implements store.LanguageStore.GetByName.
func (s *LanguageStore) GetByName(ctx context.Context, name string) (*domain.Language, error) {
	return s.getOne(ctx, "name = $1", name)
}

func (s *LanguageStore) getOne(ctx context.Context, where string, arg any) (*domain.Language, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, code, native_name, created_at
		FROM languages
		WHERE ` + where

	var lang domain.Language
	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&lang.ID, &lang.Name, &lang.Code, &lang.NativeName, &lang.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Debug("language not found", slog.Any("lookup", arg))
			return nil, store.ErrLanguageNotFound
		}
		log.Error("failed to get language",
			slog.String("error", err.Error()),
			slog.Any("lookup", arg))
		return nil, MapError(err)
	}

	return &lang, nil
}

// GetAll implements store.Repository.GetAll. Results are ordered by id for
// stable paging; a limit of zero yields an empty slice.
func (s *LanguageStore) GetAll(ctx context.Context, skip, limit int) ([]*domain.Language, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if limit <= 0 {
		return []*domain.Language{}, nil
	}
	if skip < 0 {
		skip = 0
	}

	query := `
		SELECT id, name, code, native_name, created_at
		FROM languages
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	rows, err := s.db.QueryContext(ctx, query, limit, skip)
	if err != nil {
		log.Error("failed to query languages", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	languages := []*domain.Language{}
	for rows.Next() {
		var lang domain.Language
		if err := rows.Scan(&lang.ID, &lang.Name, &lang.Code, &lang.NativeName, &lang.CreatedAt); err != nil {
			log.Error("failed to scan language row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		languages = append(languages, &lang)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	log.Debug("retrieved languages",
		slog.Int("count", len(languages)),
		slog.Int("skip", skip),
		slog.Int("limit", limit))
	return languages, nil
}

// Update implements store.Repository.Update. Full replace of the mutable
// fields; the ID and creation timestamp are preserved.
func (s *LanguageStore) Update(ctx context.Context, id string, lang *domain.Language) (*domain.Language, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := lang.Validate(); err != nil {
		log.Warn("language validation failed during update",
			slog.String("error", err.Error()),
			slog.String("language_id", id))
		return nil, err
	}

	query := `
		UPDATE languages
		SET name = $1, code = $2, native_name = $3
		WHERE id = $4
	`
	result, err := s.db.ExecContext(ctx, query, lang.Name, lang.Code, lang.NativeName, id)
	if err != nil {
		log.Error("failed to update language",
			slog.String("error", err.Error()),
			slog.String("language_id", id))
		return nil, MapError(err)
	}

	updated, err := CheckRowsAffected(result)
	if err != nil {
		return nil, err
	}
	if !updated {
		log.Debug("language not found for update", slog.String("language_id", id))
		return nil, store.ErrLanguageNotFound
	}

	log.Info("language updated successfully", slog.String("language_id", id))
	return s.GetByID(ctx, id)
}

// Delete implements store.Repository.Delete. Dependent users and texts are
// not cascaded; the schema restricts deletion while they exist.
func (s *LanguageStore) Delete(ctx context.Context, id string) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM languages WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete language",
			slog.String("error", err.Error()),
			slog.String("language_id", id))
		return false, MapError(err)
	}

	deleted, err := CheckRowsAffected(result)
	if err != nil {
		return false, err
	}
	if deleted {
		log.Info("language deleted", slog.String("language_id", id))
	}
	return deleted, nil
}

// Exists implements store.Repository.Exists.
func (s *LanguageStore) Exists(ctx context.Context, id string) (bool, error) {
	return s.exists(ctx, "id = $1", id)
}

// CodeExists implements store.LanguageStore.CodeExists.
func (s *LanguageStore) CodeExists(ctx context.Context, code string) (bool, error) {
	return s.exists(ctx, "code = $1", code)
}

func (s *LanguageStore) exists(ctx context.Context, where string, arg any) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM languages WHERE ` + where + `)`
	if err := s.db.QueryRowContext(ctx, query, arg).Scan(&exists); err != nil {
		log.Error("failed to check language existence",
			slog.String("error", err.Error()),
			slog.Any("lookup", arg))
		return false, MapError(err)
	}
	return exists, nil
}

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

// UserStore implements the store.UserStore interface using a PostgreSQL
// database as the storage backend. Both language references are foreign
// keys; creating a user against a missing language surfaces as
// store.ErrInvalidEntity.
type UserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewUserStore creates a new PostgreSQL implementation of the UserStore
// interface. It accepts a database connection or transaction that should be
// initialized and managed by the caller.
func NewUserStore(db store.DBTX, log *slog.Logger) *UserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &UserStore{
		db:     db,
		logger: log.With(slog.String("component", "user_store")),
	}
}

// Ensure UserStore implements store.UserStore interface
var _ store.UserStore = (*UserStore)(nil)

const userColumns = `id, email, username, password_hash, first_name, last_name,
	native_language_id, current_language_id, created_at, updated_at, last_active_at`

func scanUser(row interface{ Scan(...any) error }) (*domain.User, error) {
	var user domain.User
	var lastActive sql.NullTime
	err := row.Scan(
		&user.ID, &user.Email, &user.Username, &user.PasswordHash,
		&user.FirstName, &user.LastName,
		&user.NativeLanguageID, &user.CurrentLanguageID,
		&user.CreatedAt, &user.UpdatedAt, &lastActive,
	)
	if err != nil {
		return nil, err
	}
	if lastActive.Valid {
		t := lastActive.Time
		user.LastActiveAt = &t
	}
	return &user, nil
}

// Create implements store.Repository.Create. The password hash must already
// be set by the service layer; it is stored verbatim and never logged.
func (s *UserStore) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if user.ID == "" {
		user.ID = domain.NewID()
	}
	now := time.Now().UTC()
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

	query := `
		INSERT INTO users (id, email, username, password_hash, first_name, last_name,
			native_language_id, current_language_id, created_at, updated_at, last_active_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := s.db.ExecContext(ctx, query,
		user.ID, user.Email, user.Username, user.PasswordHash,
		user.FirstName, user.LastName,
		user.NativeLanguageID, user.CurrentLanguageID,
		user.CreatedAt, user.UpdatedAt, user.LastActiveAt,
	)
	if err != nil {
		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID),
			slog.String("username", user.Username))
		return nil, MapError(err)
	}

	log.Info("user created successfully",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username))
	return user, nil
}

// GetByID implements store.Repository.GetByID.
func (s *UserStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.getOne(ctx, "id = $1", id)
}

// GetByEmail implements store.UserStore.GetByEmail.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.getOne(ctx, "email = $1", email)
}

// GetByUsername implements store.UserStore.GetByUsername.
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.getOne(ctx, "username = $1", username)
}

func (s *UserStore) getOne(ctx context.Context, where string, arg any) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + userColumns + ` FROM users WHERE ` + where
	user, err := scanUser(s.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if err == sql.ErrNoRows {
			log.Debug("user not found", slog.Any("lookup", arg))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user",
			slog.String("error", err.Error()),
			slog.Any("lookup", arg))
		return nil, MapError(err)
	}
	return user, nil
}

// GetAll implements store.Repository.GetAll. Results are ordered by id for
// stable paging; a limit of zero yields an empty slice.
func (s *UserStore) GetAll(ctx context.Context, skip, limit int) ([]*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if limit <= 0 {
		return []*domain.User{}, nil
	}
	if skip < 0 {
		skip = 0
	}

	query := `SELECT ` + userColumns + ` FROM users ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := s.db.QueryContext(ctx, query, limit, skip)
	if err != nil {
		log.Error("failed to query users", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	users := []*domain.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			log.Error("failed to scan user row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return users, nil
}

// Update implements store.Repository.Update. Full replace of the mutable
// fields; the updated-at timestamp is refreshed.
func (s *UserStore) Update(ctx context.Context, id string, user *domain.User) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during update",
			slog.String("error", err.Error()),
			slog.String("user_id", id))
		return nil, err
	}

	updatedAt := time.Now().UTC()

	query := `
		UPDATE users
		SET email = $1, username = $2, password_hash = $3, first_name = $4,
			last_name = $5, native_language_id = $6, current_language_id = $7,
			updated_at = $8
		WHERE id = $9
	`
	result, err := s.db.ExecContext(ctx, query,
		user.Email, user.Username, user.PasswordHash,
		user.FirstName, user.LastName,
		user.NativeLanguageID, user.CurrentLanguageID,
		updatedAt, id,
	)
	if err != nil {
		log.Error("failed to update user",
			slog.String("error", err.Error()),
			slog.String("user_id", id))
		return nil, MapError(err)
	}

	updated, err := CheckRowsAffected(result)
	if err != nil {
		return nil, err
	}
	if !updated {
		log.Debug("user not found for update", slog.String("user_id", id))
		return nil, store.ErrUserNotFound
	}

	log.Info("user updated successfully", slog.String("user_id", id))
	return s.GetByID(ctx, id)
}

// Delete implements store.Repository.Delete. The schema cascades to the
// user's language associations and vocabularies; authored texts survive
// with their user reference nulled.
func (s *UserStore) Delete(ctx context.Context, id string) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete user",
			slog.String("error", err.Error()),
			slog.String("user_id", id))
		return false, MapError(err)
	}

	deleted, err := CheckRowsAffected(result)
	if err != nil {
		return false, err
	}
	if deleted {
		log.Info("user deleted", slog.String("user_id", id))
	}
	return deleted, nil
}

// Exists implements store.Repository.Exists.
func (s *UserStore) Exists(ctx context.Context, id string) (bool, error) {
	return s.exists(ctx, "id = $1", id)
}

// EmailExists implements store.UserStore.EmailExists.
func (s *UserStore) EmailExists(ctx context.Context, email string) (bool, error) {
	return s.exists(ctx, "email = $1", email)
}

// UsernameExists implements store.UserStore.UsernameExists.
func (s *UserStore) UsernameExists(ctx context.Context, username string) (bool, error) {
	return s.exists(ctx, "username = $1", username)
}

func (s *UserStore) exists(ctx context.Context, where string, arg any) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE ` + where + `)`
	if err := s.db.QueryRowContext(ctx, query, arg).Scan(&exists); err != nil {
		log.Error("failed to check user existence",
			slog.String("error", err.Error()),
			slog.Any("lookup", arg))
		return false, MapError(err)
	}
	return exists, nil
}

// UpdateLastActive implements store.UserStore.UpdateLastActive. Sets the
// last-active timestamp to the current time without touching other fields.
func (s *UserStore) UpdateLastActive(ctx context.Context, id string) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx,
		`UPDATE users SET last_active_at = $1 WHERE id = $2`,
		time.Now().UTC(), id)
	if err != nil {
		log.Error("failed to update last active",
			slog.String("error", err.Error()),
			slog.String("user_id", id))
		return false, MapError(err)
	}

	updated, err := CheckRowsAffected(result)
	if err != nil {
		return false, err
	}
	if !updated {
		log.Debug("user not found for last active update", slog.String("user_id", id))
	}
	return updated, nil
}

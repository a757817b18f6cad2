// Package factory constructs and caches the repository set for the
// configured persistence backend. Handlers and services depend only on the
// store interfaces; this package is the single place that knows which
// concrete implementation is in play.
package factory

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"

	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/lexiglow/lexiglow-api/internal/config"
	"github.com/lexiglow/lexiglow-api/internal/platform/mongo"
	"github.com/lexiglow/lexiglow-api/internal/platform/postgres"
	"github.com/lexiglow/lexiglow-api/internal/store"
)

// Factory hands out store implementations for the configured backend.
// Stores are constructed lazily on first request and cached; overrides
// installed with the Set* methods take precedence over constructed stores,
// which lets tests inject fakes without touching a database.
//
// All methods are safe for concurrent use.
type Factory struct {
	cfg    config.DatabaseConfig
	logger *slog.Logger

	mu sync.Mutex

	// exactly one of these is non-nil after New
	sqlDB   *sql.DB
	mongoDB *mongodriver.Database
	client  *mongodriver.Client

	languages    store.LanguageStore
	users        store.UserStore
	texts        store.TextStore
	vocabularies store.VocabularyStore

	overrides struct {
		languages    store.LanguageStore
		users        store.UserStore
		texts        store.TextStore
		vocabularies store.VocabularyStore
	}

	disposed bool
}

// New connects to the configured backend and returns a ready Factory.
// For the relational backend this opens a pooled connection and applies
// pending migrations; for the document backend it connects, pings, and
// ensures the unique indexes exist.
func New(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*Factory, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "store_factory"))

	f := &Factory{cfg: cfg, logger: logger}

	switch cfg.Backend {
	case config.BackendPostgres:
		db, err := postgres.Open(ctx, cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres connection: %w", err)
		}
		if err := postgres.RunMigrations(db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to migrate postgres schema: %w", err)
		}
		f.sqlDB = db
		logger.Info("store factory initialized", slog.String("backend", cfg.Backend))

	case config.BackendMongo:
		client, err := mongo.Connect(ctx, cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
		}
		db := client.Database(cfg.Name)
		if err := mongo.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return nil, fmt.Errorf("failed to ensure mongodb indexes: %w", err)
		}
		f.client = client
		f.mongoDB = db
		logger.Info("store factory initialized",
			slog.String("backend", cfg.Backend),
			slog.String("database", cfg.Name))

	default:
		return nil, fmt.Errorf("unsupported database backend %q", cfg.Backend)
	}

	return f, nil
}

// Languages returns the language store for the active backend.
func (f *Factory) Languages() store.LanguageStore {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.overrides.languages != nil {
		return f.overrides.languages
	}
	if f.languages == nil {
		if f.sqlDB != nil {
			f.languages = postgres.NewLanguageStore(f.sqlDB, f.logger)
		} else {
			f.languages = mongo.NewLanguageStore(f.mongoDB, f.logger)
		}
	}
	return f.languages
}

// Users returns the user store for the active backend.
func (f *Factory) Users() store.UserStore {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.overrides.users != nil {
		return f.overrides.users
	}
	if f.users == nil {
		if f.sqlDB != nil {
			f.users = postgres.NewUserStore(f.sqlDB, f.logger)
		} else {
			f.users = mongo.NewUserStore(f.mongoDB, f.logger)
		}
	}
	return f.users
}

// Texts returns the text store for the active backend.
func (f *Factory) Texts() store.TextStore {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.overrides.texts != nil {
		return f.overrides.texts
	}
	if f.texts == nil {
		if f.sqlDB != nil {
			f.texts = postgres.NewTextStore(f.sqlDB, f.logger)
		} else {
			f.texts = mongo.NewTextStore(f.mongoDB, f.logger)
		}
	}
	return f.texts
}

// Vocabularies returns the vocabulary store for the active backend. On the
// document backend the returned store reports ErrNotImplemented for every
// operation.
func (f *Factory) Vocabularies() store.VocabularyStore {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.overrides.vocabularies != nil {
		return f.overrides.vocabularies
	}
	if f.vocabularies == nil {
		if f.sqlDB != nil {
			f.vocabularies = postgres.NewVocabularyStore(f.sqlDB, f.logger)
		} else {
			f.vocabularies = mongo.NewVocabularyStore(f.mongoDB, f.logger)
		}
	}
	return f.vocabularies
}

// SetLanguageStore installs an override returned by Languages until
// ClearOverrides is called.
func (f *Factory) SetLanguageStore(s store.LanguageStore) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.overrides.languages = s
}

// SetUserStore installs an override returned by Users until ClearOverrides
// is called.
func (f *Factory) SetUserStore(s store.UserStore) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.overrides.users = s
}

// SetTextStore installs an override returned by Texts until ClearOverrides
// is called.
func (f *Factory) SetTextStore(s store.TextStore) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.overrides.texts = s
}

// SetVocabularyStore installs an override returned by Vocabularies until
// ClearOverrides is called.
func (f *Factory) SetVocabularyStore(s store.VocabularyStore) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.overrides.vocabularies = s
}

// ClearOverrides removes all installed overrides, restoring the backend
// stores.
func (f *Factory) ClearOverrides() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.overrides.languages = nil
	f.overrides.users = nil
	f.overrides.texts = nil
	f.overrides.vocabularies = nil
}

// Dispose releases the backend connection. Calling it more than once is a
// no-op; stores obtained before Dispose must not be used afterwards.
func (f *Factory) Dispose(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.disposed {
		return nil
	}
	f.disposed = true

	f.languages = nil
	f.users = nil
	f.texts = nil
	f.vocabularies = nil

	if f.sqlDB != nil {
		if err := f.sqlDB.Close(); err != nil {
			return fmt.Errorf("failed to close postgres connection: %w", err)
		}
		f.logger.Info("store factory disposed", slog.String("backend", config.BackendPostgres))
		return nil
	}
	if f.client != nil {
		if err := f.client.Disconnect(ctx); err != nil {
			return fmt.Errorf("failed to disconnect from mongodb: %w", err)
		}
		f.logger.Info("store factory disposed", slog.String("backend", config.BackendMongo))
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/lexiglow/lexiglow-api/internal/api"
	"github.com/lexiglow/lexiglow-api/internal/config"
	"github.com/lexiglow/lexiglow-api/internal/platform/factory"
	"github.com/lexiglow/lexiglow-api/internal/service"
)

// application holds the wired dependencies for the server process.
type application struct {
	cfg     *config.Config
	logger  *slog.Logger
	factory *factory.Factory
	router  http.Handler
}

// newApplication connects to the configured backend and builds the service
// and HTTP layers on top of it.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	storeFactory, err := factory.New(ctx, cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store factory: %w", err)
	}

	languageService, err := service.NewLanguageService(storeFactory.Languages(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create language service: %w", err)
	}
	userService, err := service.NewUserService(storeFactory.Users(), service.NewBcryptHasher(0), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}
	textService, err := service.NewTextService(storeFactory.Texts(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create text service: %w", err)
	}
	vocabularyService, err := service.NewVocabularyService(storeFactory.Vocabularies(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create vocabulary service: %w", err)
	}

	router := api.NewRouter(api.RouterDeps{
		Languages:    languageService,
		Users:        userService,
		Texts:        textService,
		Vocabularies: vocabularyService,
		QueryTimeout: cfg.Database.QueryTimeout,
	})

	return &application{
		cfg:     cfg,
		logger:  logger,
		factory: storeFactory,
		router:  router,
	}, nil
}

// cleanup releases the shared database handle. Safe to call more than once.
func (app *application) cleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := app.factory.Dispose(ctx); err != nil {
		app.logger.Error("failed to dispose store factory", slog.String("error", err.Error()))
	}
}

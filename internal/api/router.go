package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	apimiddleware "github.com/lexiglow/lexiglow-api/internal/api/middleware"
	"github.com/lexiglow/lexiglow-api/internal/api/shared"
	"github.com/lexiglow/lexiglow-api/internal/service"
)

// RouterDeps carries the services the router needs to build handlers.
type RouterDeps struct {
	Languages    service.LanguageService
	Users        service.UserService
	Texts        service.TextService
	Vocabularies service.VocabularyService

	// QueryTimeout bounds the request context, and with it every store
	// call the request makes. Zero disables the bound.
	QueryTimeout time.Duration
}

// HealthResponse is the body of the health check endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

// NewRouter builds the application router with standard middleware and all
// entity routes mounted under /api/v1.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	if deps.QueryTimeout > 0 {
		r.Use(chimiddleware.Timeout(deps.QueryTimeout))
	}
	r.Use(apimiddleware.Trace)

	languageHandler := NewLanguageHandler(deps.Languages)
	userHandler := NewUserHandler(deps.Users)
	textHandler := NewTextHandler(deps.Texts)
	vocabularyHandler := NewVocabularyHandler(deps.Vocabularies)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/languages", func(r chi.Router) {
			r.Post("/", languageHandler.CreateLanguage)
			r.Get("/", languageHandler.ListLanguages)
			r.Get("/{id}", languageHandler.GetLanguage)
			r.Put("/{id}", languageHandler.UpdateLanguage)
			r.Delete("/{id}", languageHandler.DeleteLanguage)
		})

		r.Route("/users", func(r chi.Router) {
			r.Post("/", userHandler.RegisterUser)
			r.Post("/login", userHandler.Login)
			r.Get("/", userHandler.ListUsers)
			r.Get("/{id}", userHandler.GetUser)
			r.Put("/{id}", userHandler.UpdateProfile)
			r.Put("/{id}/password", userHandler.ChangePassword)
			r.Delete("/{id}", userHandler.DeleteUser)
		})

		r.Route("/texts", func(r chi.Router) {
			r.Post("/", textHandler.CreateText)
			r.Get("/", textHandler.ListTexts)
			r.Get("/{id}", textHandler.GetText)
			r.Put("/{id}", textHandler.UpdateText)
			r.Delete("/{id}", textHandler.DeleteText)
			r.Put("/{id}/tags/{tagID}", textHandler.TagText)
			r.Delete("/{id}/tags/{tagID}", textHandler.UntagText)
		})

		r.Post("/tags", textHandler.CreateTag)

		r.Route("/vocabularies", func(r chi.Router) {
			r.Post("/", vocabularyHandler.CreateVocabulary)
			r.Get("/", vocabularyHandler.ListVocabularies)
			r.Get("/{id}", vocabularyHandler.GetVocabulary)
			r.Put("/{id}", vocabularyHandler.RenameVocabulary)
			r.Delete("/{id}", vocabularyHandler.DeleteVocabulary)
			r.Post("/{id}/items", vocabularyHandler.AddItem)
			r.Get("/{id}/items", vocabularyHandler.GetItems)
			r.Put("/{id}/items/{itemID}", vocabularyHandler.UpdateItem)
			r.Delete("/{id}/items/{itemID}", vocabularyHandler.RemoveItem)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{Status: "ok"})
	})

	return r
}

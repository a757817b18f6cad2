package api

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/lexiglow/lexiglow-api/internal/api/shared"
	"github.com/lexiglow/lexiglow-api/internal/domain"
	"github.com/lexiglow/lexiglow-api/internal/service"
)

// CreateLanguageRequest is the payload for registering a language.
type CreateLanguageRequest struct {
	Name       string `json:"name"        validate:"required,min=1,max=100"`
	Code       string `json:"code"        validate:"required,min=2,max=10"`
	NativeName string `json:"native_name" validate:"omitempty,max=100"`
}

// UpdateLanguageRequest is the payload for updating a language. The code is
// immutable once assigned.
type UpdateLanguageRequest struct {
	Name       string `json:"name"        validate:"required,min=1,max=100"`
	NativeName string `json:"native_name" validate:"omitempty,max=100"`
}

// LanguageResponse is the serialized form of a language.
type LanguageResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Code       string    `json:"code"`
	NativeName string    `json:"native_name,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// LanguageHandler handles language HTTP requests.
type LanguageHandler struct {
	languages service.LanguageService
	validator *validator.Validate
}

// NewLanguageHandler creates a new LanguageHandler.
func NewLanguageHandler(languages service.LanguageService) *LanguageHandler {
	return &LanguageHandler{
		languages: languages,
		validator: validator.New(),
	}
}

// CreateLanguage handles POST /api/v1/languages.
func (h *LanguageHandler) CreateLanguage(w http.ResponseWriter, r *http.Request) {
	var req CreateLanguageRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	language, err := h.languages.CreateLanguage(r.Context(), req.Name, req.Code, req.NativeName)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, languageToResponse(language))
}

// GetLanguage handles GET /api/v1/languages/{id}.
func (h *LanguageHandler) GetLanguage(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathID(w, r, "id")
	if !ok {
		return
	}

	language, err := h.languages.GetLanguage(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, languageToResponse(language))
}

// ListLanguages handles GET /api/v1/languages. A code query parameter
// switches to a single-language lookup.
func (h *LanguageHandler) ListLanguages(w http.ResponseWriter, r *http.Request) {
	if code := r.URL.Query().Get("code"); code != "" {
		language, err := h.languages.GetLanguageByCode(r.Context(), code)
		if err != nil {
			HandleAPIError(w, r, err, "")
			return
		}
		shared.RespondWithJSON(w, r, http.StatusOK, []LanguageResponse{languageToResponse(language)})
		return
	}

	skip, limit, ok := getPagination(w, r)
	if !ok {
		return
	}

	languages, err := h.languages.ListLanguages(r.Context(), skip, limit)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, languagesToResponse(languages))
}

// UpdateLanguage handles PUT /api/v1/languages/{id}.
func (h *LanguageHandler) UpdateLanguage(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathID(w, r, "id")
	if !ok {
		return
	}

	var req UpdateLanguageRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	language, err := h.languages.UpdateLanguage(r.Context(), id, req.Name, req.NativeName)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, languageToResponse(language))
}

// DeleteLanguage handles DELETE /api/v1/languages/{id}.
func (h *LanguageHandler) DeleteLanguage(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathID(w, r, "id")
	if !ok {
		return
	}

	deleted, err := h.languages.DeleteLanguage(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if !deleted {
		shared.RespondWithError(w, r, http.StatusNotFound, "Language not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func languageToResponse(language *domain.Language) LanguageResponse {
	return LanguageResponse{
		ID:         language.ID,
		Name:       language.Name,
		Code:       language.Code,
		NativeName: language.NativeName,
		CreatedAt:  language.CreatedAt,
	}
}

func languagesToResponse(languages []*domain.Language) []LanguageResponse {
	out := make([]LanguageResponse, 0, len(languages))
	for _, language := range languages {
		out = append(out, languageToResponse(language))
	}
	return out
}

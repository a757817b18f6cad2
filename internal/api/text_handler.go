package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/lexiglow/lexiglow-api/internal/api/shared"
	"github.com/lexiglow/lexiglow-api/internal/domain"
	"github.com/lexiglow/lexiglow-api/internal/service"
)

// CreateTextRequest is the payload for adding reading material.
type CreateTextRequest struct {
	Title            string `json:"title"             validate:"required,min=1,max=200"`
	Content          string `json:"content"           validate:"required,min=1"`
	LanguageID       string `json:"language_id"       validate:"required,uuid"`
	UserID           string `json:"user_id"           validate:"omitempty,uuid"`
	ProficiencyLevel string `json:"proficiency_level" validate:"required"`
	Source           string `json:"source"            validate:"omitempty,max=500"`
	IsPublic         *bool  `json:"is_public"`
}

// UpdateTextRequest is the payload for replacing a text's content and
// metadata. Authorship never changes through updates.
type UpdateTextRequest struct {
	Title            string `json:"title"             validate:"required,min=1,max=200"`
	Content          string `json:"content"           validate:"required,min=1"`
	LanguageID       string `json:"language_id"       validate:"required,uuid"`
	ProficiencyLevel string `json:"proficiency_level" validate:"required"`
	Source           string `json:"source"            validate:"omitempty,max=500"`
	IsPublic         bool   `json:"is_public"`
}

// CreateTagRequest is the payload for defining a tag.
type CreateTagRequest struct {
	Name        string `json:"name"        validate:"required,min=1,max=50"`
	Description string `json:"description" validate:"omitempty,max=200"`
}

// TextResponse is the serialized form of a text.
type TextResponse struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Content          string    `json:"content"`
	LanguageID       string    `json:"language_id"`
	UserID           string    `json:"user_id,omitempty"`
	ProficiencyLevel string    `json:"proficiency_level"`
	WordCount        int       `json:"word_count"`
	Source           string    `json:"source,omitempty"`
	IsPublic         bool      `json:"is_public"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// TagResponse is the serialized form of a text tag.
type TagResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// TextHandler handles text and tag HTTP requests.
type TextHandler struct {
	texts     service.TextService
	validator *validator.Validate
}

// NewTextHandler creates a new TextHandler.
func NewTextHandler(texts service.TextService) *TextHandler {
	return &TextHandler{
		texts:     texts,
		validator: validator.New(),
	}
}

// CreateText handles POST /api/v1/texts.
func (h *TextHandler) CreateText(w http.ResponseWriter, r *http.Request) {
	var req CreateTextRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	text, err := h.texts.CreateText(r.Context(), service.CreateTextParams{
		Title:            req.Title,
		Content:          req.Content,
		LanguageID:       req.LanguageID,
		UserID:           req.UserID,
		ProficiencyLevel: domain.ProficiencyLevel(req.ProficiencyLevel),
		Source:           req.Source,
		IsPublic:         req.IsPublic,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, textToResponse(text))
}

// GetText handles GET /api/v1/texts/{id}.
func (h *TextHandler) GetText(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathID(w, r, "id")
	if !ok {
		return
	}

	text, err := h.texts.GetText(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, textToResponse(text))
}

// ListTexts handles GET /api/v1/texts. Query parameters select a filter:
// language_id, user_id, level, public=true, q (title search), or tag_ids
// (comma separated, union semantics). Filters are mutually exclusive; the
// first recognized one wins.
func (h *TextHandler) ListTexts(w http.ResponseWriter, r *http.Request) {
	skip, limit, ok := getPagination(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	ctx := r.Context()

	var (
		texts []*domain.Text
		err   error
	)
	switch {
	case query.Get("language_id") != "":
		texts, err = h.texts.ListByLanguage(ctx, query.Get("language_id"), skip, limit)
	case query.Get("user_id") != "":
		texts, err = h.texts.ListByUser(ctx, query.Get("user_id"), skip, limit)
	case query.Get("level") != "":
		texts, err = h.texts.ListByProficiencyLevel(ctx, domain.ProficiencyLevel(query.Get("level")), skip, limit)
	case query.Get("public") == "true":
		texts, err = h.texts.ListPublic(ctx, skip, limit)
	case query.Get("q") != "":
		texts, err = h.texts.SearchByTitle(ctx, query.Get("q"), skip, limit)
	case query.Get("tag_ids") != "":
		texts, err = h.texts.ListByTags(ctx, splitIDs(query.Get("tag_ids")), skip, limit)
	default:
		texts, err = h.texts.ListTexts(ctx, skip, limit)
	}
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, textsToResponse(texts))
}

// UpdateText handles PUT /api/v1/texts/{id}.
func (h *TextHandler) UpdateText(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathID(w, r, "id")
	if !ok {
		return
	}

	var req UpdateTextRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	text, err := h.texts.UpdateText(r.Context(), id, service.UpdateTextParams{
		Title:            req.Title,
		Content:          req.Content,
		LanguageID:       req.LanguageID,
		ProficiencyLevel: domain.ProficiencyLevel(req.ProficiencyLevel),
		Source:           req.Source,
		IsPublic:         req.IsPublic,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, textToResponse(text))
}

// DeleteText handles DELETE /api/v1/texts/{id}.
func (h *TextHandler) DeleteText(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathID(w, r, "id")
	if !ok {
		return
	}

	deleted, err := h.texts.DeleteText(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if !deleted {
		shared.RespondWithError(w, r, http.StatusNotFound, "Text not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateTag handles POST /api/v1/tags.
func (h *TextHandler) CreateTag(w http.ResponseWriter, r *http.Request) {
	var req CreateTagRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	tag, err := h.texts.CreateTag(r.Context(), req.Name, req.Description)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, tagToResponse(tag))
}

// TagText handles PUT /api/v1/texts/{id}/tags/{tagID}. Idempotent.
func (h *TextHandler) TagText(w http.ResponseWriter, r *http.Request) {
	textID, ok := getPathID(w, r, "id")
	if !ok {
		return
	}
	tagID, ok := getPathID(w, r, "tagID")
	if !ok {
		return
	}

	if err := h.texts.TagText(r.Context(), textID, tagID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UntagText handles DELETE /api/v1/texts/{id}/tags/{tagID}.
func (h *TextHandler) UntagText(w http.ResponseWriter, r *http.Request) {
	textID, ok := getPathID(w, r, "id")
	if !ok {
		return
	}
	tagID, ok := getPathID(w, r, "tagID")
	if !ok {
		return
	}

	removed, err := h.texts.UntagText(r.Context(), textID, tagID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if !removed {
		shared.RespondWithError(w, r, http.StatusNotFound, "Tag association not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// splitIDs splits a comma-separated ID list, dropping empty segments.
func splitIDs(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func textToResponse(text *domain.Text) TextResponse {
	return TextResponse{
		ID:               text.ID,
		Title:            text.Title,
		Content:          text.Content,
		LanguageID:       text.LanguageID,
		UserID:           text.UserID,
		ProficiencyLevel: string(text.ProficiencyLevel),
		WordCount:        text.WordCount,
		Source:           text.Source,
		IsPublic:         text.IsPublic,
		CreatedAt:        text.CreatedAt,
		UpdatedAt:        text.UpdatedAt,
	}
}

func textsToResponse(texts []*domain.Text) []TextResponse {
	out := make([]TextResponse, 0, len(texts))
	for _, text := range texts {
		out = append(out, textToResponse(text))
	}
	return out
}

func tagToResponse(tag *domain.TextTag) TagResponse {
	return TagResponse{
		ID:          tag.ID,
		Name:        tag.Name,
		Description: tag.Description,
	}
}

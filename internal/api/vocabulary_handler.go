package api

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/lexiglow/lexiglow-api/internal/api/shared"
	"github.com/lexiglow/lexiglow-api/internal/domain"
	"github.com/lexiglow/lexiglow-api/internal/service"
)

// CreateVocabularyRequest is the payload for starting a vocabulary. Each
// user has at most one vocabulary per language.
type CreateVocabularyRequest struct {
	UserID     string `json:"user_id"     validate:"required,uuid"`
	LanguageID string `json:"language_id" validate:"required,uuid"`
	Name       string `json:"name"        validate:"required,min=1,max=100"`
}

// RenameVocabularyRequest is the payload for renaming a vocabulary.
type RenameVocabularyRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// AddItemRequest is the payload for tracking a new term.
type AddItemRequest struct {
	Term         string  `json:"term"           validate:"required,min=1,max=200"`
	Lemma        string  `json:"lemma"          validate:"omitempty,max=200"`
	Stem         string  `json:"stem"           validate:"omitempty,max=200"`
	PartOfSpeech string  `json:"part_of_speech" validate:"omitempty"`
	Frequency    float64 `json:"frequency"      validate:"omitempty,gte=0"`
	Notes        string  `json:"notes"          validate:"omitempty,max=1000"`
}

// UpdateItemRequest is the payload for replacing an item's content and
// learning state.
type UpdateItemRequest struct {
	Term            string  `json:"term"             validate:"required,min=1,max=200"`
	Lemma           string  `json:"lemma"            validate:"omitempty,max=200"`
	Stem            string  `json:"stem"             validate:"omitempty,max=200"`
	PartOfSpeech    string  `json:"part_of_speech"   validate:"omitempty"`
	Frequency       float64 `json:"frequency"        validate:"omitempty,gte=0"`
	Status          string  `json:"status"           validate:"required"`
	TimesReviewed   int     `json:"times_reviewed"   validate:"gte=0"`
	ConfidenceLevel string  `json:"confidence_level" validate:"required"`
	Notes           string  `json:"notes"            validate:"omitempty,max=1000"`
}

// VocabularyResponse is the serialized form of a vocabulary.
type VocabularyResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	LanguageID string    `json:"language_id"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ItemResponse is the serialized form of a vocabulary item.
type ItemResponse struct {
	ID              string    `json:"id"`
	VocabularyID    string    `json:"vocabulary_id"`
	Term            string    `json:"term"`
	Lemma           string    `json:"lemma,omitempty"`
	Stem            string    `json:"stem,omitempty"`
	PartOfSpeech    string    `json:"part_of_speech,omitempty"`
	Frequency       float64   `json:"frequency,omitempty"`
	Status          string    `json:"status"`
	TimesReviewed   int       `json:"times_reviewed"`
	ConfidenceLevel string    `json:"confidence_level"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// VocabularyHandler handles vocabulary HTTP requests.
type VocabularyHandler struct {
	vocabularies service.VocabularyService
	validator    *validator.Validate
}

// NewVocabularyHandler creates a new VocabularyHandler.
func NewVocabularyHandler(vocabularies service.VocabularyService) *VocabularyHandler {
	return &VocabularyHandler{
		vocabularies: vocabularies,
		validator:    validator.New(),
	}
}

// CreateVocabulary handles POST /api/v1/vocabularies.
func (h *VocabularyHandler) CreateVocabulary(w http.ResponseWriter, r *http.Request) {
	var req CreateVocabularyRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	vocab, err := h.vocabularies.CreateVocabulary(r.Context(), req.UserID, req.LanguageID, req.Name)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, vocabularyToResponse(vocab))
}

// GetVocabulary handles GET /api/v1/vocabularies/{id}.
func (h *VocabularyHandler) GetVocabulary(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathID(w, r, "id")
	if !ok {
		return
	}

	vocab, err := h.vocabularies.GetVocabulary(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, vocabularyToResponse(vocab))
}

// ListVocabularies handles GET /api/v1/vocabularies. A user_id query
// parameter is required; adding language_id narrows to the single
// vocabulary for that pairing.
func (h *VocabularyHandler) ListVocabularies(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Missing user_id query parameter")
		return
	}

	if languageID := r.URL.Query().Get("language_id"); languageID != "" {
		vocab, err := h.vocabularies.GetVocabularyForLanguage(r.Context(), userID, languageID)
		if err != nil {
			HandleAPIError(w, r, err, "")
			return
		}
		shared.RespondWithJSON(w, r, http.StatusOK, []VocabularyResponse{vocabularyToResponse(vocab)})
		return
	}

	vocabularies, err := h.vocabularies.GetUserVocabularies(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, vocabulariesToResponse(vocabularies))
}

// RenameVocabulary handles PUT /api/v1/vocabularies/{id}.
func (h *VocabularyHandler) RenameVocabulary(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathID(w, r, "id")
	if !ok {
		return
	}

	var req RenameVocabularyRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	vocab, err := h.vocabularies.RenameVocabulary(r.Context(), id, req.Name)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, vocabularyToResponse(vocab))
}

// DeleteVocabulary handles DELETE /api/v1/vocabularies/{id}. Items are
// removed with the collection.
func (h *VocabularyHandler) DeleteVocabulary(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathID(w, r, "id")
	if !ok {
		return
	}

	deleted, err := h.vocabularies.DeleteVocabulary(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if !deleted {
		shared.RespondWithError(w, r, http.StatusNotFound, "Vocabulary not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddItem handles POST /api/v1/vocabularies/{id}/items.
func (h *VocabularyHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	vocabularyID, ok := getPathID(w, r, "id")
	if !ok {
		return
	}

	var req AddItemRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	item, err := h.vocabularies.AddItem(r.Context(), service.AddItemParams{
		VocabularyID: vocabularyID,
		Term:         req.Term,
		Lemma:        req.Lemma,
		Stem:         req.Stem,
		PartOfSpeech: domain.PartOfSpeech(req.PartOfSpeech),
		Frequency:    req.Frequency,
		Notes:        req.Notes,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, itemToResponse(item))
}

// GetItems handles GET /api/v1/vocabularies/{id}/items.
func (h *VocabularyHandler) GetItems(w http.ResponseWriter, r *http.Request) {
	vocabularyID, ok := getPathID(w, r, "id")
	if !ok {
		return
	}
	skip, limit, ok := getPagination(w, r)
	if !ok {
		return
	}

	items, err := h.vocabularies.GetItems(r.Context(), vocabularyID, skip, limit)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, itemsToResponse(items))
}

// UpdateItem handles PUT /api/v1/vocabularies/{id}/items/{itemID}.
func (h *VocabularyHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	vocabularyID, ok := getPathID(w, r, "id")
	if !ok {
		return
	}
	itemID, ok := getPathID(w, r, "itemID")
	if !ok {
		return
	}

	var req UpdateItemRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	item, err := h.vocabularies.UpdateItem(r.Context(), itemID, service.UpdateItemParams{
		VocabularyID:    vocabularyID,
		Term:            req.Term,
		Lemma:           req.Lemma,
		Stem:            req.Stem,
		PartOfSpeech:    domain.PartOfSpeech(req.PartOfSpeech),
		Frequency:       req.Frequency,
		Status:          domain.VocabularyItemStatus(req.Status),
		TimesReviewed:   req.TimesReviewed,
		ConfidenceLevel: domain.ProficiencyLevel(req.ConfidenceLevel),
		Notes:           req.Notes,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, itemToResponse(item))
}

// RemoveItem handles DELETE /api/v1/vocabularies/{id}/items/{itemID}.
func (h *VocabularyHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	if _, ok := getPathID(w, r, "id"); !ok {
		return
	}
	itemID, ok := getPathID(w, r, "itemID")
	if !ok {
		return
	}

	removed, err := h.vocabularies.RemoveItem(r.Context(), itemID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if !removed {
		shared.RespondWithError(w, r, http.StatusNotFound, "Vocabulary item not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func vocabularyToResponse(vocab *domain.UserVocabulary) VocabularyResponse {
	return VocabularyResponse{
		ID:         vocab.ID,
		UserID:     vocab.UserID,
		LanguageID: vocab.LanguageID,
		Name:       vocab.Name,
		CreatedAt:  vocab.CreatedAt,
		UpdatedAt:  vocab.UpdatedAt,
	}
}

func vocabulariesToResponse(vocabularies []*domain.UserVocabulary) []VocabularyResponse {
	out := make([]VocabularyResponse, 0, len(vocabularies))
	for _, vocab := range vocabularies {
		out = append(out, vocabularyToResponse(vocab))
	}
	return out
}

func itemToResponse(item *domain.UserVocabularyItem) ItemResponse {
	return ItemResponse{
		ID:              item.ID,
		VocabularyID:    item.VocabularyID,
		Term:            item.Term,
		Lemma:           item.Lemma,
		Stem:            item.Stem,
		PartOfSpeech:    string(item.PartOfSpeech),
		Frequency:       item.Frequency,
		Status:          string(item.Status),
		TimesReviewed:   item.TimesReviewed,
		ConfidenceLevel: string(item.ConfidenceLevel),
		Notes:           item.Notes,
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
	}
}

func itemsToResponse(items []*domain.UserVocabularyItem) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, itemToResponse(item))
	}
	return out
}

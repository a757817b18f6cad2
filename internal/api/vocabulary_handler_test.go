package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexiglow/lexiglow-api/internal/domain"
	"github.com/lexiglow/lexiglow-api/internal/store"
)

func createVocabulary(t *testing.T, env *testEnv, userID, languageID string) VocabularyResponse {
	t.Helper()
	w := env.do(t, http.MethodPost, "/api/v1/vocabularies", CreateVocabularyRequest{
		UserID:     userID,
		LanguageID: languageID,
		Name:       "My Words",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeBody[VocabularyResponse](t, w)
}

func TestVocabularyHandler_Create(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	userID := domain.NewID()
	languageID := domain.NewID()

	body := createVocabulary(t, env, userID, languageID)
	assert.NotEmpty(t, body.ID)
	assert.Equal(t, userID, body.UserID)

	// One vocabulary per user and language.
	w := env.do(t, http.MethodPost, "/api/v1/vocabularies", CreateVocabularyRequest{
		UserID:     userID,
		LanguageID: languageID,
		Name:       "Another",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestVocabularyHandler_List(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	userID := domain.NewID()
	languageID := domain.NewID()
	created := createVocabulary(t, env, userID, languageID)
	createVocabulary(t, env, userID, domain.NewID())

	w := env.do(t, http.MethodGet, "/api/v1/vocabularies?user_id="+userID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody[[]VocabularyResponse](t, w), 2)

	w = env.do(t, http.MethodGet, "/api/v1/vocabularies?user_id="+userID+"&language_id="+languageID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeBody[[]VocabularyResponse](t, w)
	require.Len(t, got, 1)
	assert.Equal(t, created.ID, got[0].ID)

	w = env.do(t, http.MethodGet, "/api/v1/vocabularies", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, "user_id is required")
}

func TestVocabularyHandler_Rename(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	created := createVocabulary(t, env, domain.NewID(), domain.NewID())

	w := env.do(t, http.MethodPut, "/api/v1/vocabularies/"+created.ID, RenameVocabularyRequest{
		Name: "Renamed",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Renamed", decodeBody[VocabularyResponse](t, w).Name)
}

func TestVocabularyHandler_Delete(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	created := createVocabulary(t, env, domain.NewID(), domain.NewID())

	w := env.do(t, http.MethodDelete, "/api/v1/vocabularies/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = env.do(t, http.MethodDelete, "/api/v1/vocabularies/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestVocabularyHandler_Items(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	vocab := createVocabulary(t, env, domain.NewID(), domain.NewID())
	itemsPath := "/api/v1/vocabularies/" + vocab.ID + "/items"

	w := env.do(t, http.MethodPost, itemsPath, AddItemRequest{
		Term:         "correr",
		Lemma:        "correr",
		PartOfSpeech: "VERB",
		Frequency:    0.8,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	item := decodeBody[ItemResponse](t, w)
	assert.Equal(t, string(domain.VocabularyItemNew), item.Status, "new items start unreviewed")
	assert.Equal(t, string(domain.ProficiencyA1), item.ConfidenceLevel)

	// Terms are unique within a vocabulary.
	w = env.do(t, http.MethodPost, itemsPath, AddItemRequest{Term: "correr"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = env.do(t, http.MethodGet, itemsPath, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody[[]ItemResponse](t, w), 1)

	w = env.do(t, http.MethodPut, itemsPath+"/"+item.ID, UpdateItemRequest{
		Term:            "correr",
		Lemma:           "correr",
		PartOfSpeech:    "VERB",
		Status:          string(domain.VocabularyItemLearning),
		TimesReviewed:   2,
		ConfidenceLevel: string(domain.ProficiencyA2),
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decodeBody[ItemResponse](t, w)
	assert.Equal(t, string(domain.VocabularyItemLearning), updated.Status)
	assert.Equal(t, 2, updated.TimesReviewed)

	w = env.do(t, http.MethodDelete, itemsPath+"/"+item.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = env.do(t, http.MethodDelete, itemsPath+"/"+item.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestVocabularyHandler_AddItem_InvalidStatusOnUpdate(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	vocab := createVocabulary(t, env, domain.NewID(), domain.NewID())
	itemsPath := "/api/v1/vocabularies/" + vocab.ID + "/items"

	w := env.do(t, http.MethodPost, itemsPath, AddItemRequest{Term: "casa"})
	require.Equal(t, http.StatusCreated, w.Code)
	item := decodeBody[ItemResponse](t, w)

	w = env.do(t, http.MethodPut, itemsPath+"/"+item.ID, UpdateItemRequest{
		Term:            "casa",
		Status:          "forgotten",
		ConfidenceLevel: string(domain.ProficiencyA1),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVocabularyHandler_NotImplementedBackend(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.vocabularies.GetByIDFn = func(ctx context.Context, id string) (*domain.UserVocabulary, error) {
		return nil, store.ErrNotImplemented
	}

	w := env.do(t, http.MethodGet, "/api/v1/vocabularies/"+domain.NewID(), nil)
	assert.Equal(t, http.StatusNotImplemented, w.Code)
}

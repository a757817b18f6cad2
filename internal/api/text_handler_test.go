package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexiglow/lexiglow-api/internal/domain"
)

func createText(t *testing.T, env *testEnv, req CreateTextRequest) TextResponse {
	t.Helper()
	w := env.do(t, http.MethodPost, "/api/v1/texts", req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeBody[TextResponse](t, w)
}

func textRequest() CreateTextRequest {
	return CreateTextRequest{
		Title:            "El Principito",
		Content:          "Había una vez un principito",
		LanguageID:       domain.NewID(),
		UserID:           domain.NewID(),
		ProficiencyLevel: "A2",
	}
}

func TestTextHandler_Create(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	body := createText(t, env, textRequest())

	assert.NotEmpty(t, body.ID)
	assert.Equal(t, 5, body.WordCount, "word count is derived server side")
	assert.True(t, body.IsPublic, "texts default to public")
}

func TestTextHandler_Create_PrivateOverride(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	private := false
	req := textRequest()
	req.IsPublic = &private

	body := createText(t, env, req)
	assert.False(t, body.IsPublic)
}

func TestTextHandler_Create_InvalidLevel(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	req := textRequest()
	req.ProficiencyLevel = "Z9"

	w := env.do(t, http.MethodPost, "/api/v1/texts", req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeBody[map[string]string](t, w)["error"], "proficiency")
}

func TestTextHandler_ListFilters(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	spanish := domain.NewID()
	author := domain.NewID()
	private := false

	reqA := textRequest()
	reqA.LanguageID = spanish
	reqA.UserID = author
	reqA.ProficiencyLevel = "B1"
	textA := createText(t, env, reqA)

	reqB := textRequest()
	reqB.Title = "Der Prozess"
	reqB.Content = "Jemand musste Josef K. verleumdet haben"
	reqB.IsPublic = &private
	textB := createText(t, env, reqB)

	byLanguage := env.do(t, http.MethodGet, "/api/v1/texts?language_id="+spanish, nil)
	require.Equal(t, http.StatusOK, byLanguage.Code)
	got := decodeBody[[]TextResponse](t, byLanguage)
	require.Len(t, got, 1)
	assert.Equal(t, textA.ID, got[0].ID)

	byUser := env.do(t, http.MethodGet, "/api/v1/texts?user_id="+author, nil)
	got = decodeBody[[]TextResponse](t, byUser)
	require.Len(t, got, 1)
	assert.Equal(t, textA.ID, got[0].ID)

	byLevel := env.do(t, http.MethodGet, "/api/v1/texts?level=B1", nil)
	got = decodeBody[[]TextResponse](t, byLevel)
	require.Len(t, got, 1)
	assert.Equal(t, textA.ID, got[0].ID)

	public := env.do(t, http.MethodGet, "/api/v1/texts?public=true", nil)
	got = decodeBody[[]TextResponse](t, public)
	require.Len(t, got, 1)
	assert.Equal(t, textA.ID, got[0].ID, "private texts are excluded from the public listing")

	search := env.do(t, http.MethodGet, "/api/v1/texts?q=prozess", nil)
	got = decodeBody[[]TextResponse](t, search)
	require.Len(t, got, 1)
	assert.Equal(t, textB.ID, got[0].ID, "title search is case-insensitive and covers private texts")

	all := env.do(t, http.MethodGet, "/api/v1/texts", nil)
	assert.Len(t, decodeBody[[]TextResponse](t, all), 2)
}

func TestTextHandler_ListFilters_InvalidLevel(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	w := env.do(t, http.MethodGet, "/api/v1/texts?level=Z9", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTextHandler_Update(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	created := createText(t, env, textRequest())

	w := env.do(t, http.MethodPut, "/api/v1/texts/"+created.ID, UpdateTextRequest{
		Title:            "El Principito (anotado)",
		Content:          "Había una vez",
		LanguageID:       created.LanguageID,
		ProficiencyLevel: "B1",
		IsPublic:         false,
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody[TextResponse](t, w)
	assert.Equal(t, 3, body.WordCount, "word count tracks the replacement content")
	assert.Equal(t, "B1", body.ProficiencyLevel)
	assert.Equal(t, created.UserID, body.UserID, "authorship is preserved")
}

func TestTextHandler_Update_NotFound(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	w := env.do(t, http.MethodPut, "/api/v1/texts/"+domain.NewID(), UpdateTextRequest{
		Title:            "Ghost",
		Content:          "gone",
		LanguageID:       domain.NewID(),
		ProficiencyLevel: "A1",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTextHandler_Delete(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	created := createText(t, env, textRequest())

	w := env.do(t, http.MethodDelete, "/api/v1/texts/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = env.do(t, http.MethodDelete, "/api/v1/texts/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTextHandler_Tags(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	text := createText(t, env, textRequest())

	w := env.do(t, http.MethodPost, "/api/v1/tags", CreateTagRequest{
		Name:        "fiction",
		Description: "Fictional works",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	tag := decodeBody[TagResponse](t, w)
	assert.NotEmpty(t, tag.ID)

	// Tag names are unique.
	w = env.do(t, http.MethodPost, "/api/v1/tags", CreateTagRequest{Name: "fiction"})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Tagging is idempotent.
	for i := 0; i < 2; i++ {
		w = env.do(t, http.MethodPut, "/api/v1/texts/"+text.ID+"/tags/"+tag.ID, nil)
		assert.Equal(t, http.StatusNoContent, w.Code)
	}

	byTag := env.do(t, http.MethodGet, "/api/v1/texts?tag_ids="+tag.ID, nil)
	got := decodeBody[[]TextResponse](t, byTag)
	require.Len(t, got, 1)
	assert.Equal(t, text.ID, got[0].ID)

	w = env.do(t, http.MethodDelete, "/api/v1/texts/"+text.ID+"/tags/"+tag.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = env.do(t, http.MethodDelete, "/api/v1/texts/"+text.ID+"/tags/"+tag.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTextHandler_TagText_UnknownText(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	w := env.do(t, http.MethodPost, "/api/v1/tags", CreateTagRequest{Name: "poetry"})
	require.Equal(t, http.StatusCreated, w.Code)
	tag := decodeBody[TagResponse](t, w)

	w = env.do(t, http.MethodPut, "/api/v1/texts/"+domain.NewID()+"/tags/"+tag.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexiglow/lexiglow-api/internal/domain"
)

func createLanguage(t *testing.T, env *testEnv, name, code string) LanguageResponse {
	t.Helper()
	w := env.do(t, http.MethodPost, "/api/v1/languages", CreateLanguageRequest{
		Name: name,
		Code: code,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeBody[LanguageResponse](t, w)
}

func TestLanguageHandler_Create(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	w := env.do(t, http.MethodPost, "/api/v1/languages", CreateLanguageRequest{
		Name:       "Spanish",
		Code:       "ES",
		NativeName: "Español",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody[LanguageResponse](t, w)
	assert.NotEmpty(t, body.ID)
	assert.Equal(t, "Spanish", body.Name)
	assert.Equal(t, "es", body.Code, "codes are normalized to lowercase")
	assert.Equal(t, "Español", body.NativeName)
}

func TestLanguageHandler_Create_DuplicateCode(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	createLanguage(t, env, "Spanish", "es")

	w := env.do(t, http.MethodPost, "/api/v1/languages", CreateLanguageRequest{
		Name: "Castilian",
		Code: "es",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	body := decodeBody[map[string]string](t, w)
	assert.Equal(t, "Language code already exists", body["error"])
}

func TestLanguageHandler_Create_MissingCode(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	w := env.do(t, http.MethodPost, "/api/v1/languages", CreateLanguageRequest{Name: "Spanish"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLanguageHandler_Create_MalformedBody(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	w := env.do(t, http.MethodPost, "/api/v1/languages", "not an object")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLanguageHandler_Get(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	created := createLanguage(t, env, "French", "fr")

	w := env.do(t, http.MethodGet, "/api/v1/languages/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody[LanguageResponse](t, w)
	assert.Equal(t, created.ID, body.ID)
}

func TestLanguageHandler_Get_NotFound(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	w := env.do(t, http.MethodGet, "/api/v1/languages/"+domain.NewID(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLanguageHandler_List(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	createLanguage(t, env, "Spanish", "es")
	createLanguage(t, env, "French", "fr")

	w := env.do(t, http.MethodGet, "/api/v1/languages", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody[[]LanguageResponse](t, w)
	assert.Len(t, body, 2)
}

func TestLanguageHandler_List_ByCode(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	createLanguage(t, env, "Spanish", "es")
	created := createLanguage(t, env, "German", "de")

	w := env.do(t, http.MethodGet, "/api/v1/languages?code=de", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody[[]LanguageResponse](t, w)
	require.Len(t, body, 1)
	assert.Equal(t, created.ID, body[0].ID)

	w = env.do(t, http.MethodGet, "/api/v1/languages?code=xx", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLanguageHandler_List_BadPagination(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	w := env.do(t, http.MethodGet, "/api/v1/languages?limit=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLanguageHandler_Update(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	created := createLanguage(t, env, "Spanish", "es")

	w := env.do(t, http.MethodPut, "/api/v1/languages/"+created.ID, UpdateLanguageRequest{
		Name:       "Castilian Spanish",
		NativeName: "Castellano",
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody[LanguageResponse](t, w)
	assert.Equal(t, "Castilian Spanish", body.Name)
	assert.Equal(t, "es", body.Code, "code is immutable")
}

func TestLanguageHandler_Delete(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	created := createLanguage(t, env, "Spanish", "es")

	w := env.do(t, http.MethodDelete, "/api/v1/languages/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = env.do(t, http.MethodDelete, "/api/v1/languages/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

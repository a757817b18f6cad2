package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexiglow/lexiglow-api/internal/mocks"
	"github.com/lexiglow/lexiglow-api/internal/service"
)

// testEnv bundles a router over in-memory stores with the mocks so tests
// can seed data and inspect state directly.
type testEnv struct {
	router       http.Handler
	languages    *mocks.MockLanguageStore
	users        *mocks.MockUserStore
	texts        *mocks.MockTextStore
	vocabularies *mocks.MockVocabularyStore
}

// plainHasher avoids bcrypt cost in handler tests.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hash:" + password, nil }

func (plainHasher) Compare(hash, password string) error {
	if hash != "hash:"+password {
		return service.ErrInvalidCredentials
	}
	return nil
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		languages:    mocks.NewMockLanguageStore(),
		users:        mocks.NewMockUserStore(),
		texts:        mocks.NewMockTextStore(),
		vocabularies: mocks.NewMockVocabularyStore(),
	}

	languageService, err := service.NewLanguageService(env.languages, nil)
	require.NoError(t, err)
	userService, err := service.NewUserService(env.users, plainHasher{}, nil)
	require.NoError(t, err)
	textService, err := service.NewTextService(env.texts, nil)
	require.NoError(t, err)
	vocabularyService, err := service.NewVocabularyService(env.vocabularies, nil)
	require.NoError(t, err)

	env.router = NewRouter(RouterDeps{
		Languages:    languageService,
		Users:        userService,
		Texts:        textService,
		Vocabularies: vocabularyService,
	})
	return env
}

// do executes a request against the router and returns the recorder.
func (env *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestRouter_Health(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	w := env.do(t, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody[HealthResponse](t, w)
	assert.Equal(t, "ok", body.Status)
}

func TestRouter_UnknownRoute(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	w := env.do(t, http.MethodGet, "/api/v1/nothing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_InvalidPathID(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	w := env.do(t, http.MethodGet, "/api/v1/languages/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody[map[string]string](t, w)
	assert.Contains(t, body["error"], "UUID")
}

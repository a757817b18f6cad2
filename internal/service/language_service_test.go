package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexiglow/lexiglow-api/internal/domain"
	"github.com/lexiglow/lexiglow-api/internal/mocks"
	"github.com/lexiglow/lexiglow-api/internal/store"
)

func newLanguageService(t *testing.T, langs store.LanguageStore) LanguageService {
	t.Helper()
	svc, err := NewLanguageService(langs, nil)
	require.NoError(t, err)
	return svc
}

func TestNewLanguageService_NilStore(t *testing.T) {
	t.Parallel()

	_, err := NewLanguageService(nil, nil)
	require.Error(t, err)

	var svcErr *ServiceError
	assert.ErrorAs(t, err, &svcErr)
}

func TestLanguageService_CreateLanguage(t *testing.T) {
	t.Parallel()

	langs := mocks.NewMockLanguageStore()
	svc := newLanguageService(t, langs)

	created, err := svc.CreateLanguage(context.Background(), "Spanish", "ES", "Español")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "es", created.Code, "code is normalized to lowercase")
	assert.Len(t, langs.Languages, 1)
}

func TestLanguageService_CreateLanguage_DuplicateCode(t *testing.T) {
	t.Parallel()

	langs := mocks.NewMockLanguageStore()
	svc := newLanguageService(t, langs)

	_, err := svc.CreateLanguage(context.Background(), "Spanish", "es", "Español")
	require.NoError(t, err)

	_, err = svc.CreateLanguage(context.Background(), "Castilian", "es", "Castellano")
	assert.ErrorIs(t, err, store.ErrLanguageCodeExists)
	assert.Len(t, langs.Languages, 1, "the duplicate must not be stored")
}

func TestLanguageService_CreateLanguage_Validation(t *testing.T) {
	t.Parallel()

	svc := newLanguageService(t, mocks.NewMockLanguageStore())

	_, err := svc.CreateLanguage(context.Background(), "", "es", "Español")
	assert.ErrorIs(t, err, domain.ErrEmptyName)

	_, err = svc.CreateLanguage(context.Background(), "Spanish", "", "Español")
	assert.ErrorIs(t, err, domain.ErrEmptyCode)
}

func TestLanguageService_GetLanguage_NotFound(t *testing.T) {
	t.Parallel()

	svc := newLanguageService(t, mocks.NewMockLanguageStore())

	_, err := svc.GetLanguage(context.Background(), domain.NewID())
	assert.ErrorIs(t, err, store.ErrLanguageNotFound)
	assert.True(t, store.IsNotFoundError(err))
}

func TestLanguageService_UpdateLanguage(t *testing.T) {
	t.Parallel()

	langs := mocks.NewMockLanguageStore()
	svc := newLanguageService(t, langs)

	created, err := svc.CreateLanguage(context.Background(), "Spanish", "es", "Español")
	require.NoError(t, err)

	updated, err := svc.UpdateLanguage(context.Background(), created.ID, "Castilian Spanish", "Castellano")
	require.NoError(t, err)
	assert.Equal(t, "Castilian Spanish", updated.Name)
	assert.Equal(t, "es", updated.Code, "code stays fixed across updates")

	_, err = svc.UpdateLanguage(context.Background(), domain.NewID(), "Ghost", "Ghost")
	assert.ErrorIs(t, err, store.ErrLanguageNotFound)
}

func TestLanguageService_DeleteLanguage(t *testing.T) {
	t.Parallel()

	langs := mocks.NewMockLanguageStore()
	svc := newLanguageService(t, langs)

	created, err := svc.CreateLanguage(context.Background(), "Spanish", "es", "Español")
	require.NoError(t, err)

	deleted, err := svc.DeleteLanguage(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.DeleteLanguage(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, deleted, "repeat delete reports false without error")
}

func TestLanguageService_UnexpectedErrorWrapped(t *testing.T) {
	t.Parallel()

	langs := mocks.NewMockLanguageStore()
	langs.GetAllFn = func(ctx context.Context, skip, limit int) ([]*domain.Language, error) {
		return nil, errors.New("connection refused")
	}
	svc := newLanguageService(t, langs)

	_, err := svc.ListLanguages(context.Background(), 0, 10)
	require.Error(t, err)

	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "list_languages", svcErr.Operation)
}

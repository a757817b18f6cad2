package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lexiglow/lexiglow-api/internal/store"
)

// uniqueIndexErrors maps index names to the entity-specific duplicate errors
// of the shared taxonomy, mirroring the constraint-name mapping on the
// relational backend so callers see the same Conflict kind either way.
var uniqueIndexErrors = map[string]error{
	languageCodeIndex:       store.ErrLanguageCodeExists,
	userEmailIndex:          store.ErrEmailExists,
	userUsernameIndex:       store.ErrUsernameExists,
	tagNameIndex:            store.ErrTagNameExists,
	vocabularyOwnerIndex:    store.ErrVocabularyExists,
	vocabularyItemTermIndex: store.ErrTermExists,
}

// MapError maps a MongoDB driver error to an appropriate store error.
// Every collection operation goes through this function to keep the error
// taxonomy consistent across backends.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	if errors.Is(err, context.DeadlineExceeded) || mongo.IsTimeout(err) {
		return fmt.Errorf("%w: %v", store.ErrTimeout, err)
	}

	if mongo.IsDuplicateKeyError(err) {
		for index, mapped := range uniqueIndexErrors {
			if strings.Contains(err.Error(), index) {
				return fmt.Errorf("%w: %v", mapped, err)
			}
		}
		return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
	}

	// Return the original error for errors that don't have specific mappings
	return err
}

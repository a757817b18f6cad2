// Package testdb provides utilities for database integration testing. It
// hands out a migrated *sql.DB and wraps each test in a rolled-back
// transaction so tests stay isolated and can run in parallel.
package testdb

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/stretchr/testify/require"

	"github.com/lexiglow/lexiglow-api/internal/platform/postgres"
)

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 5 * time.Second

var (
	dbOnce   sync.Once
	sharedDB *sql.DB
	dbErr    error
)

// GetTestDatabaseURL returns the database URL for integration tests. It
// checks DATABASE_URL and LEXIGLOW_TEST_DB_URL in that order.
func GetTestDatabaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return os.Getenv("LEXIGLOW_TEST_DB_URL")
}

// GetTestDB returns a shared, migrated database handle, skipping the test
// when no test database is configured. The schema is applied once per
// process from the embedded migration set.
func GetTestDB(t *testing.T) *sql.DB {
	t.Helper()

	url := GetTestDatabaseURL()
	if url == "" {
		t.Skip("skipping integration test: DATABASE_URL not set")
	}

	dbOnce.Do(func() {
		sharedDB, dbErr = sql.Open("pgx", url)
		if dbErr != nil {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
		defer cancel()
		if dbErr = sharedDB.PingContext(ctx); dbErr != nil {
			return
		}

		dbErr = postgres.RunMigrations(sharedDB)
	})
	require.NoError(t, dbErr, "Failed to set up test database")

	return sharedDB
}

// WithTx executes a test function within a transaction, rolling back after
// the test completes so no state leaks between tests.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.Begin()
	require.NoError(t, err, "Failed to begin transaction")

	defer func() {
		err := tx.Rollback()
		// sql.ErrTxDone is expected if tx is already committed or rolled back
		if err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("Warning: failed to rollback transaction: %v", err)
		}
	}()

	fn(t, tx)
}

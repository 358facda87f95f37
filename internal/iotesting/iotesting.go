// Package iotesting provides shared test utilities for integration tests.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/gnames/gnfish/internal/iodb"
	"github.com/gnames/gnfish/pkg/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TestDatabaseName is the database name used for all integration tests,
// so tests never touch a production archive.
const TestDatabaseName = "gnfish_test"

// DatabaseConfig returns PostgreSQL settings for integration tests.
// Defaults are overridden by GNFISH_DATABASE_HOST, GNFISH_DATABASE_PORT,
// GNFISH_DATABASE_USER and GNFISH_DATABASE_PASSWORD. The database name is
// always TestDatabaseName.
//
// The test is skipped in short mode or when the database is not
// reachable.
func DatabaseConfig(t *testing.T) *config.DatabaseConfig {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	cfg := config.New().Database
	if v := os.Getenv("GNFISH_DATABASE_HOST"); v != "" {
		cfg.Host = v
	}
	if v, err := strconv.Atoi(os.Getenv("GNFISH_DATABASE_PORT")); err == nil {
		cfg.Port = v
	}
	if v := os.Getenv("GNFISH_DATABASE_USER"); v != "" {
		cfg.User = v
	}
	if v := os.Getenv("GNFISH_DATABASE_PASSWORD"); v != "" {
		cfg.Password = v
	}
	cfg.Database = TestDatabaseName

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	pool, err := pgxpool.New(ctx, iodb.DSN(&cfg))
	if err == nil {
		err = pool.Ping(ctx)
		pool.Close()
	}
	if err != nil {
		t.Skipf("Skipping integration test, database is not reachable: %v", err)
	}
	return &cfg
}

// SetupHome points HOME to a temporary directory, so config, cache and
// logs of a test never touch the user's files.
//
// Returns the temporary home directory.
func SetupHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", "")
	return dir
}

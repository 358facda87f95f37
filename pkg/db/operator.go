package db

import (
	"context"

	"github.com/gnames/gnfish/pkg/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Operator manages the connection to the PostgreSQL archive.
// Pool gives components access to transactions and custom queries.
type Operator interface {
	// Connect establishes a connection pool to the database.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close closes the database connection pool.
	Close() error

	// Pool returns the underlying pgxpool.Pool.
	Pool() *pgxpool.Pool

	// TableExists checks if a table exists in the public schema.
	TableExists(ctx context.Context, tableName string) (bool, error)

	// DropTables removes the given tables together with dependent
	// objects. Missing tables are ignored.
	DropTables(ctx context.Context, tableNames ...string) error
}

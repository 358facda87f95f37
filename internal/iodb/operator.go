// Package iodb implements database operations using pgxpool.
// This is an impure I/O package that implements contracts
// defined in pkg/.
package iodb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gnames/gnfish/pkg/config"
	"github.com/gnames/gnfish/pkg/db"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// connectTimeout limits retries of the first connection.
const connectTimeout = 30 * time.Second

// pgxOperator implements db.Operator interface using
// pgxpool for connection pooling.
type pgxOperator struct {
	pool *pgxpool.Pool
}

// NewPgxOperator creates a new database operator
// (without connecting).
func NewPgxOperator() db.Operator {
	return &pgxOperator{}
}

// DSN builds the connection string of a database configuration.
func DSN(cfg *config.DatabaseConfig) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Database,
		cfg.SSLMode,
	)
}

// Connect establishes a connection pool to PostgreSQL.
// A database that is still starting up is retried with exponential
// backoff for up to 30 seconds.
func (p *pgxOperator) Connect(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) error {
	poolConfig, err := pgxpool.ParseConfig(DSN(cfg))
	if err != nil {
		return ConnectionError(cfg.Host, cfg.Port,
			cfg.Database, cfg.User, err)
	}

	poolConfig.MaxConns = 10
	poolConfig.MinConns = 1

	var attempt int
	connect := func() error {
		attempt++
		pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
		if err != nil {
			return backoff.Permanent(err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			slog.Warn("Cannot reach database",
				"host", cfg.Host, "attempt", attempt, "error", err)
			return err
		}
		p.pool = pool
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = connectTimeout
	if err := backoff.Retry(connect, backoff.WithContext(bo, ctx)); err != nil {
		return ConnectionError(cfg.Host, cfg.Port,
			cfg.Database, cfg.User, err)
	}

	slog.Info("Connected to database",
		"host", cfg.Host, "database", cfg.Database)
	return nil
}

// Close releases all database connections.
func (p *pgxOperator) Close() error {
	if p.pool != nil {
		p.pool.Close()
		p.pool = nil
	}
	return nil
}

// Pool returns the underlying pgxpool.Pool for advanced
// operations.
func (p *pgxOperator) Pool() *pgxpool.Pool {
	return p.pool
}

// TableExists checks if a table exists in the current
// database.
func (p *pgxOperator) TableExists(
	ctx context.Context,
	tableName string,
) (bool, error) {
	if p.pool == nil {
		return false, NotConnectedError()
	}

	query := `
		SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_schema = 'public'
			AND table_name = $1
		)
	`

	var exists bool
	err := p.pool.QueryRow(ctx, query, tableName).Scan(&exists)
	if err != nil {
		return false, TableExistsCheckError(tableName, err)
	}

	return exists, nil
}

// DropTables drops the given tables with CASCADE.
func (p *pgxOperator) DropTables(
	ctx context.Context,
	tableNames ...string,
) error {
	if p.pool == nil {
		return NotConnectedError()
	}

	for _, table := range tableNames {
		dropSQL := "DROP TABLE IF EXISTS " +
			pgx.Identifier{table}.Sanitize() + " CASCADE"
		if _, err := p.pool.Exec(ctx, dropSQL); err != nil {
			return DropTableError(table, err)
		}
		slog.Debug("Dropped table", "table", table)
	}

	return nil
}

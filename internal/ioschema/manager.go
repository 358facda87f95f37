// Package ioschema implements SchemaManager interface for
// the PostgreSQL archive. This is an impure I/O package
// that wraps GORM AutoMigrate functionality.
package ioschema

import (
	"context"
	"log/slog"

	"github.com/gnames/gnfish/pkg/db"
	"github.com/gnames/gnfish/pkg/lifecycle"
	"github.com/gnames/gnfish/pkg/schema"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// manager implements the lifecycle.SchemaManager interface
// using GORM AutoMigrate.
type manager struct {
	operator db.Operator
}

// NewManager creates a new SchemaManager.
func NewManager(op db.Operator) lifecycle.SchemaManager {
	return &manager{operator: op}
}

// Open wraps the connection pool of an operator into a GORM
// session.
func Open(op db.Operator) (*gorm.DB, error) {
	pool := op.Pool()
	if pool == nil {
		return nil, NotConnectedError()
	}

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: stdlib.OpenDBFromPool(pool)}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		return nil, GORMConnectionError(err)
	}
	return gormDB, nil
}

// Create drops archive tables and creates them again.
func (m *manager) Create(ctx context.Context) error {
	if err := m.operator.DropTables(ctx, tableNames()...); err != nil {
		return CreateSchemaError(err)
	}

	gormDB, err := Open(m.operator)
	if err != nil {
		return err
	}

	if err := schema.Migrate(gormDB.WithContext(ctx)); err != nil {
		return CreateSchemaError(err)
	}

	slog.Info("Created archive schema", "tables", tableNames())
	return nil
}

// Migrate updates the archive schema to the latest version
// using GORM AutoMigrate.
func (m *manager) Migrate(ctx context.Context) error {
	gormDB, err := Open(m.operator)
	if err != nil {
		return err
	}

	if err := schema.Migrate(gormDB.WithContext(ctx)); err != nil {
		return MigrateSchemaError(err)
	}

	slog.Info("Migrated archive schema")
	return nil
}

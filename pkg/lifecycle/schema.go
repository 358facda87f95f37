package lifecycle

import (
	"context"
)

// SchemaManager manages the schema of the PostgreSQL archive.
// It uses GORM AutoMigrate, so both operations are idempotent.
type SchemaManager interface {
	// Create drops all archive tables and creates them again.
	Create(ctx context.Context) error

	// Migrate creates missing tables and columns, keeping stored
	// evaluations.
	Migrate(ctx context.Context) error
}

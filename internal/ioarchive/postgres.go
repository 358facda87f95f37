package ioarchive

import (
	"context"
	"log/slog"
	"time"

	"github.com/gnames/gnfish/internal/iodb"
	"github.com/gnames/gnfish/internal/ioschema"
	"github.com/gnames/gnfish/pkg/config"
	"github.com/gnames/gnfish/pkg/db"
	"github.com/gnames/gnfish/pkg/lifecycle"
	"github.com/gnames/gnfish/pkg/report"
	"github.com/gnames/gnfish/pkg/schema"
	"gorm.io/gorm"
)

const defaultBatchSize = 1_000

type pgArchive struct {
	cfg config.DatabaseConfig
	op  db.Operator
	orm *gorm.DB
}

// NewPostgres creates an archive kept in a PostgreSQL database.
func NewPostgres(cfg config.DatabaseConfig) lifecycle.Archive {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}
	return &pgArchive{cfg: cfg, op: iodb.NewPgxOperator()}
}

// Init connects to the database and migrates the archive schema.
func (a *pgArchive) Init(ctx context.Context) error {
	if err := a.op.Connect(ctx, &a.cfg); err != nil {
		return err
	}

	if err := ioschema.NewManager(a.op).Migrate(ctx); err != nil {
		a.op.Close()
		return InitError("postgres", err)
	}

	orm, err := ioschema.Open(a.op)
	if err != nil {
		a.op.Close()
		return InitError("postgres", err)
	}
	a.orm = orm
	return nil
}

// Save replaces evaluations with the same IDs in one transaction.
func (a *pgArchive) Save(
	ctx context.Context,
	runID string,
	evs []report.Evaluation,
) error {
	if a.orm == nil {
		return SaveError("postgres", len(evs), errNotInitialized)
	}
	if len(evs) == 0 {
		return nil
	}

	now := time.Now().UTC()
	ids := make([]string, len(evs))
	rows := make([]schema.Evaluation, len(evs))
	var species []schema.SpeciesMetric
	for i, ev := range evs {
		row, sp, err := schema.FromReport(runID, ev, now)
		if err != nil {
			return SaveError("postgres", len(evs), err)
		}
		ids[i] = row.ID
		rows[i] = row
		species = append(species, sp...)
	}

	err := a.orm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("evaluation_id IN ?", ids).
			Delete(&schema.SpeciesMetric{}).Error
		if err != nil {
			return err
		}
		err = tx.Where("id IN ?", ids).Delete(&schema.Evaluation{}).Error
		if err != nil {
			return err
		}
		err = tx.CreateInBatches(rows, a.cfg.BatchSize).Error
		if err != nil {
			return err
		}
		if len(species) == 0 {
			return nil
		}
		return tx.CreateInBatches(species, a.cfg.BatchSize).Error
	})
	if err != nil {
		return SaveError("postgres", len(evs), err)
	}

	slog.Debug("Saved evaluations",
		"archive", "postgres", "count", len(evs), "species", len(species))
	return nil
}

func (a *pgArchive) Close() error {
	a.orm = nil
	return a.op.Close()
}

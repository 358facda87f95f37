package ioarchive

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gnames/gnfish/pkg/lifecycle"
	"github.com/gnames/gnfish/pkg/report"
	"github.com/gnames/gnfish/pkg/schema"
	_ "modernc.org/sqlite"
)

type sqliteArchive struct {
	path string
	db   *sql.DB
}

// NewSQLite creates an archive kept in a SQLite file. Init creates the
// file when it does not exist.
func NewSQLite(path string) lifecycle.Archive {
	return &sqliteArchive{path: path}
}

func (a *sqliteArchive) Init(ctx context.Context) error {
	if err := os.MkdirAll(filepath.Dir(a.path), 0755); err != nil {
		return OpenError(a.path, err)
	}

	db, err := sql.Open("sqlite", a.path)
	if err != nil {
		return OpenError(a.path, err)
	}
	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)

	for _, q := range schema.DDL() {
		if _, err := db.ExecContext(ctx, q); err != nil {
			db.Close()
			return InitError("sqlite", err)
		}
	}

	a.db = db
	slog.Info("Opened SQLite archive", "path", a.path)
	return nil
}

func (a *sqliteArchive) Save(
	ctx context.Context,
	runID string,
	evs []report.Evaluation,
) error {
	if a.db == nil {
		return SaveError("sqlite", len(evs), errNotInitialized)
	}

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return SaveError("sqlite", len(evs), err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	for _, ev := range evs {
		if err := a.saveOne(ctx, tx, runID, ev, now); err != nil {
			return SaveError("sqlite", len(evs), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return SaveError("sqlite", len(evs), err)
	}
	slog.Debug("Saved evaluations", "archive", "sqlite", "count", len(evs))
	return nil
}

func (a *sqliteArchive) saveOne(
	ctx context.Context,
	tx *sql.Tx,
	runID string,
	ev report.Evaluation,
	now time.Time,
) error {
	row, species, err := schema.FromReport(runID, ev, now)
	if err != nil {
		return err
	}

	deletes := []string{
		"DELETE FROM species_metrics WHERE evaluation_id = ?",
		"DELETE FROM evaluations WHERE id = ?",
	}
	for _, q := range deletes {
		if _, err := tx.ExecContext(ctx, q, row.ID); err != nil {
			return err
		}
	}

	q := insertSQL(row.TableName(), schema.Columns(row))
	if _, err := tx.ExecContext(ctx, q, evaluationValues(row)...); err != nil {
		return err
	}

	if len(species) == 0 {
		return nil
	}
	q = insertSQL(species[0].TableName(), schema.Columns(species[0]))
	stmt, err := tx.PrepareContext(ctx, q)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, v := range species {
		if _, err := stmt.ExecContext(ctx, speciesValues(v)...); err != nil {
			return err
		}
	}
	return nil
}

func (a *sqliteArchive) Close() error {
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}

func insertSQL(table string, cols []string) string {
	marks := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(cols, ", "), marks)
}

// evaluationValues follows the order of schema.Columns.
func evaluationValues(e schema.Evaluation) []any {
	return []any{
		e.ID, e.RunID, e.IndexName, e.StationCode, e.WaterBody,
		e.Region, e.Province, e.SurveyDate,
		nullFloat(e.Value), nullFloat(e.RQE), nullString(e.Status),
		e.Metrics, e.CreatedAt.Format(time.RFC3339),
	}
}

// speciesValues follows the order of schema.Columns.
func speciesValues(s schema.SpeciesMetric) []any {
	return []any{
		s.EvaluationID, s.SpeciesID, s.Name,
		int64(s.Class1), int64(s.Class2), int64(s.Class3),
		int64(s.Class4), int64(s.Class5),
		nullFloat(s.Ratio), int64(s.CriterionA), int64(s.CriterionB),
		float64(s.ScoreB), int64(s.Quantity), nullFloat(s.Density),
	}
}

// nullFloat maps NaN to NULL, SQLite has no storage for it.
func nullFloat(v *float32) any {
	if v == nil || math.IsNaN(float64(*v)) {
		return nil
	}
	return float64(*v)
}

func nullString(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}

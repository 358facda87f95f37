package ioarchive_test

import (
	"context"
	"database/sql"
	"math"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnfish/internal/ioarchive"
	"github.com/gnames/gnfish/internal/iotesting"
	"github.com/gnames/gnfish/pkg/config"
	"github.com/gnames/gnfish/pkg/errcode"
	"github.com/gnames/gnfish/pkg/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func testEvaluations() []report.Evaluation {
	nis := report.Evaluation{
		ID:          report.EvaluationID(report.NISECI, "ST01", "12/05/2024"),
		Index:       report.NISECI,
		StationCode: "ST01",
		WaterBody:   "Fiume Savio",
		Date:        "12/05/2024",
		Value:       ptr(float32(0.342)),
		RQE:         ptr(float32(0.62)),
		Status:      ptr("Buono"),
		Metrics:     []report.Metric{{Name: "x1", Value: ptr(float32(0.417))}},
		Species: []report.SpeciesRow{
			{SpeciesID: "BAR", Name: "Barbo comune", Quantity: 5},
			{SpeciesID: "TRM", Name: "Trota marmorata", Quantity: 3,
				Density: ptr(float32(1.5))},
		},
	}
	undefined := report.Evaluation{
		ID:          report.EvaluationID(report.NISECI, "ST02", "12/05/2024"),
		Index:       report.NISECI,
		StationCode: "ST02",
		Date:        "12/05/2024",
	}
	lag := report.Evaluation{
		ID:          report.EvaluationID(report.HFBI, "LAG01", "01/04/2022"),
		Index:       report.HFBI,
		StationCode: "LAG01",
		Date:        "01/04/2022",
		Value:       ptr(float32(1.793)),
		Status:      ptr("Eccellente"),
	}
	return []report.Evaluation{nis, undefined, lag}
}

func count(t *testing.T, db *sql.DB, q string, args ...any) int {
	var res int
	require.NoError(t, db.QueryRow(q, args...).Scan(&res))
	return res
}

func TestSQLite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "gnfish.sqlite")
	evs := testEvaluations()

	arc := ioarchive.NewSQLite(path)
	require.NoError(t, arc.Init(ctx))
	require.NoError(t, arc.Save(ctx, "run-1", evs))
	require.NoError(t, arc.Save(ctx, "run-2", evs[:1]))
	require.NoError(t, arc.Close())

	// tables already exist
	require.NoError(t, arc.Init(ctx))
	require.NoError(t, arc.Close())

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, 3, count(t, db, "SELECT count(*) FROM evaluations"))
	assert.Equal(t, 2, count(t, db, "SELECT count(*) FROM species_metrics"))
	assert.Equal(t, 1, count(t, db,
		"SELECT count(*) FROM evaluations WHERE run_id = 'run-2'"))
	assert.Equal(t, 1, count(t, db,
		"SELECT count(*) FROM evaluations WHERE value IS NULL AND status IS NULL"))

	var status string
	var value float64
	err = db.QueryRow("SELECT status, value FROM evaluations WHERE id = ?",
		evs[2].ID).Scan(&status, &value)
	require.NoError(t, err)
	assert.Equal(t, "Eccellente", status)
	assert.InDelta(t, 1.793, value, 1e-6)

	var density sql.NullFloat64
	err = db.QueryRow(
		"SELECT density FROM species_metrics WHERE species_id = 'BAR'",
	).Scan(&density)
	require.NoError(t, err)
	assert.False(t, density.Valid)
}

func TestSQLiteNonFinite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "gnfish.sqlite")
	inf, nan := float32(math.Inf(1)), float32(math.NaN())
	evs := []report.Evaluation{
		{
			ID:          report.EvaluationID(report.HFBI, "LAG02", "01/04/2022"),
			Index:       report.HFBI,
			StationCode: "LAG02",
			Date:        "01/04/2022",
			Value:       &inf,
			Status:      ptr("Eccellente"),
			Metrics: []report.Metric{
				{Name: "bn", Value: &nan}, {Name: "bbent", Value: &inf},
			},
		},
		{
			ID:          report.EvaluationID(report.HFBI, "LAG03", "01/04/2022"),
			Index:       report.HFBI,
			StationCode: "LAG03",
			Date:        "01/04/2022",
			Value:       &nan,
			Metrics:     []report.Metric{{Name: "bn", Value: &nan}},
		},
	}

	arc := ioarchive.NewSQLite(path)
	require.NoError(t, arc.Init(ctx))
	require.NoError(t, arc.Save(ctx, "run-1", evs))
	require.NoError(t, arc.Close())

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	tests := []struct {
		msg     string
		id      string
		valid   bool
		metrics string
	}{
		{"infinite value", evs[0].ID, true,
			`[{"name":"bn","value":"NaN"},{"name":"bbent","value":"+Inf"}]`},
		{"nan value", evs[1].ID, false, `[{"name":"bn","value":"NaN"}]`},
	}
	for _, v := range tests {
		var value sql.NullFloat64
		var metrics string
		err = db.QueryRow("SELECT value, metrics FROM evaluations WHERE id = ?",
			v.id).Scan(&value, &metrics)
		require.NoError(t, err, v.msg)
		assert.Equal(t, v.valid, value.Valid, v.msg)
		assert.JSONEq(t, v.metrics, metrics, v.msg)
	}
}

func TestSQLiteNotInitialized(t *testing.T) {
	arc := ioarchive.NewSQLite(filepath.Join(t.TempDir(), "gnfish.sqlite"))
	err := arc.Save(context.Background(), "run", testEvaluations())

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.ArchiveSaveError, gnErr.Code)
	assert.NoError(t, arc.Close())
}

func TestNew(t *testing.T) {
	tests := []struct {
		msg  string
		typ  string
		fail bool
	}{
		{"default", "", false},
		{"none", "none", false},
		{"sqlite", "SQLite", false},
		{"postgres", "postgres", false},
		{"unknown", "mysql", true},
	}

	for _, v := range tests {
		cfg := config.New()
		cfg.HomeDir = t.TempDir()
		cfg.Archive.Type = v.typ
		arc, err := ioarchive.New(cfg)
		if v.fail {
			var gnErr *gn.Error
			require.ErrorAs(t, err, &gnErr, v.msg)
			assert.Equal(t, errcode.ArchiveUnknownTypeError, gnErr.Code, v.msg)
			continue
		}
		require.NoError(t, err, v.msg)
		assert.NotNil(t, arc, v.msg)
	}
}

func TestNone(t *testing.T) {
	ctx := context.Background()
	arc := ioarchive.NewNone()
	assert.NoError(t, arc.Init(ctx))
	assert.NoError(t, arc.Save(ctx, "run", testEvaluations()))
	assert.NoError(t, arc.Close())
}

func TestPostgres(t *testing.T) {
	cfg := iotesting.DatabaseConfig(t)
	ctx := context.Background()
	evs := testEvaluations()

	arc := ioarchive.NewPostgres(*cfg)
	require.NoError(t, arc.Init(ctx))
	defer arc.Close()

	require.NoError(t, arc.Save(ctx, "run-1", evs))
	require.NoError(t, arc.Save(ctx, "run-2", evs))
}

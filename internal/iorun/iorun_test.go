package iorun_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnfish/internal/ioarchive"
	"github.com/gnames/gnfish/internal/iorun"
	"github.com/gnames/gnfish/pkg/config"
	"github.com/gnames/gnfish/pkg/errcode"
	"github.com/gnames/gnfish/pkg/report"
	"github.com/gnames/gnfmt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const csvDir = "../iocsv/testdata"

func csvFile(name string) string {
	return filepath.Join(csvDir, name)
}

func nisFiles() iorun.Files {
	return iorun.Files{
		Index:     report.NISECI,
		Reference: csvFile("riferimento.csv"),
		Sample:    csvFile("campionamento.csv"),
		Station:   csvFile("anagrafica.csv"),
	}
}

func hfbiFiles() iorun.Files {
	return iorun.Files{
		Index:   report.HFBI,
		Sample:  csvFile("hfbi_campionamento.csv"),
		Station: csvFile("hfbi_anagrafica.csv"),
	}
}

func TestEvaluate(t *testing.T) {
	r := iorun.New(config.New(), nil, ioarchive.NewNone())

	tests := []struct {
		msg    string
		files  iorun.Files
		id     string
		value  float32
		status string
	}{
		{"niseci", nisFiles(),
			report.EvaluationID(report.NISECI, "ST01", "12/05/2024"),
			0.342, "Buono"},
		{"hfbi", hfbiFiles(),
			report.EvaluationID(report.HFBI, "LAG01", "01/04/2022"),
			1.793, "Eccellente"},
	}

	for _, v := range tests {
		ev, err := r.Evaluate(v.files)
		require.NoError(t, err, v.msg)
		assert.Equal(t, v.id, ev.ID, v.msg)
		require.NotNil(t, ev.Value, v.msg)
		assert.InDelta(t, v.value, *ev.Value, 1e-6, v.msg)
		require.NotNil(t, ev.Status, v.msg)
		assert.Equal(t, v.status, *ev.Status, v.msg)
	}

	_, err := r.Evaluate(iorun.Files{Index: "IBE"})
	assert.Error(t, err)
}

func TestEvaluateInvalidFile(t *testing.T) {
	r := iorun.New(config.New(), nil, ioarchive.NewNone())
	f := hfbiFiles()
	f.Sample = csvFile("hfbi_campionamento_invalido.csv")

	_, err := r.Evaluate(f)
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.CSVValidationError, gnErr.Code)
}

func TestLoadManifest(t *testing.T) {
	files, err := iorun.LoadManifest(filepath.Join("testdata", "batch.yaml"))
	require.NoError(t, err)
	require.Len(t, files, 3)

	assert.Equal(t, nisFiles(), files[0])
	assert.Equal(t, hfbiFiles(), files[1])
	assert.Equal(t, report.HFBI, files[2].Index)
	assert.Empty(t, files[2].Reference)
}

func TestLoadManifestInvalid(t *testing.T) {
	_, err := iorun.LoadManifest(filepath.Join("testdata", "batch_invalid.yaml"))
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.ManifestError, gnErr.Code)

	msg := gnErr.Err.Error()
	tests := []string{
		"station 1: unknown index 'fbi'",
		"station 2: reference file is required by NISECI",
		"station 2: station file is missing",
		"station 3: sample file is missing",
	}
	for _, v := range tests {
		assert.Contains(t, msg, v)
	}

	_, err = iorun.LoadManifest(filepath.Join("testdata", "no-such.yaml"))
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.ManifestReadError, gnErr.Code)
}

func TestBatch(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	cfg := config.New()
	cfg.JobsNumber = 2
	cfg.Batch.MetricsFile = filepath.Join(dir, "gnfish.prom")

	arc := ioarchive.NewSQLite(filepath.Join(dir, "gnfish.sqlite"))
	require.NoError(t, arc.Init(ctx))
	defer arc.Close()

	files, err := iorun.LoadManifest(filepath.Join("testdata", "batch.yaml"))
	require.NoError(t, err)

	r := iorun.New(cfg, nil, arc)
	res, err := r.Batch(ctx, files)
	require.NoError(t, err)

	_, err = uuid.Parse(res.RunID)
	assert.NoError(t, err)

	require.Len(t, res.Evaluations, 2)
	assert.Equal(t, report.NISECI, res.Evaluations[0].Index)
	assert.Equal(t, report.HFBI, res.Evaluations[1].Index)

	require.Len(t, res.Failures, 1)
	assert.Equal(t, 3, res.Failures[0].Num)
	var gnErr *gn.Error
	require.True(t, errors.As(res.Failures[0].Err, &gnErr))
	assert.Equal(t, errcode.BatchStationError, gnErr.Code)

	assert.Contains(t, res.Summary(), "<em>2</em> of <em>3</em> stations")

	_, err = os.Stat(cfg.Batch.MetricsFile)
	assert.NoError(t, err)
}

func TestBatchNonFinite(t *testing.T) {
	ctx := context.Background()
	arc := ioarchive.NewSQLite(filepath.Join(t.TempDir(), "gnfish.sqlite"))
	require.NoError(t, arc.Init(ctx))
	defer arc.Close()

	zero := hfbiFiles()
	zero.Station = filepath.Join("testdata", "hfbi_anagrafica_zero.csv")

	r := iorun.New(config.New(), nil, arc)
	res, err := r.Batch(ctx, []iorun.Files{zero, hfbiFiles()})
	require.NoError(t, err)
	assert.Empty(t, res.Failures)
	require.Len(t, res.Evaluations, 2)
	assert.Equal(t, "LAG02", res.Evaluations[0].StationCode)

	out, err := report.Output(res.Evaluations, gnfmt.CompactJSON, false)
	require.NoError(t, err)
	assert.Contains(t, out, `"+Inf"`)
}

func TestBatchCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := iorun.New(config.New(), nil, ioarchive.NewNone())
	res, err := r.Batch(ctx, []iorun.Files{nisFiles(), hfbiFiles()})
	require.NoError(t, err)
	assert.Empty(t, res.Evaluations)
	require.Len(t, res.Failures, 2)
	var gnErr *gn.Error
	require.True(t, errors.As(res.Failures[0].Err, &gnErr))
	assert.ErrorIs(t, gnErr.Err, context.Canceled)
}

package schema_test

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/gnames/gnfish/pkg/report"
	"github.com/gnames/gnfish/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluationTableDDL(t *testing.T) {
	ddl := schema.Evaluation{}.TableDDL()

	tests := []struct {
		msg, part string
	}{
		{"table", "CREATE TABLE IF NOT EXISTS evaluations"},
		{"primary key", "id TEXT PRIMARY KEY"},
		{"run", "run_id TEXT NOT NULL"},
		{"nullable value", "value REAL,"},
		{"nullable rqe", "rqe REAL,"},
		{"metrics", "metrics TEXT"},
		{"created", "created_at TIMESTAMP NOT NULL"},
	}
	for _, v := range tests {
		assert.Contains(t, ddl, v.part, v.msg)
	}
	assert.True(t, strings.HasSuffix(ddl, "\n);"))
}

func TestSpeciesMetricTableDDL(t *testing.T) {
	ddl := schema.SpeciesMetric{}.TableDDL()
	assert.Contains(t, ddl, "CREATE TABLE IF NOT EXISTS species_metrics")
	assert.Contains(t, ddl, "class5 INTEGER")
	assert.Contains(t, ddl, "criterion_b SMALLINT")
	assert.True(t, strings.HasSuffix(ddl,
		"density REAL,\n    PRIMARY KEY (evaluation_id, species_id)\n);"))
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "evaluations", schema.Evaluation{}.TableName())
	assert.Equal(t, "species_metrics", schema.SpeciesMetric{}.TableName())
}

func TestDDL(t *testing.T) {
	ddl := schema.DDL()
	require.Len(t, ddl, 4)
	assert.Contains(t, ddl[0], "evaluations")
	for _, v := range ddl[1:3] {
		assert.True(t, strings.HasPrefix(v, "CREATE INDEX IF NOT EXISTS"))
	}
	assert.Contains(t, ddl[3], "species_metrics")
}

func TestColumns(t *testing.T) {
	cols := schema.Columns(schema.Evaluation{})
	assert.Len(t, cols, 13)
	assert.Equal(t, "id", cols[0])
	assert.Equal(t, "created_at", cols[len(cols)-1])

	cols = schema.Columns(&schema.SpeciesMetric{})
	assert.Len(t, cols, 14)
}

func TestFromReport(t *testing.T) {
	assert := assert.New(t)
	v, status := float32(0.342), "Buono"
	ev := report.Evaluation{
		ID:          report.EvaluationID(report.NISECI, "ST01", "12/05/2024"),
		Index:       report.NISECI,
		StationCode: "ST01",
		Date:        "12/05/2024",
		Value:       &v,
		Status:      &status,
		Metrics:     []report.Metric{{Name: "x1", Value: &v}, {Name: "x2"}},
		Species: []report.SpeciesRow{
			{SpeciesID: "BAR", Classes: [5]uint32{1, 1, 1, 1, 1}, Quantity: 5},
		},
	}
	now := time.Now()

	res, species, err := schema.FromReport("run-1", ev, now)
	require.NoError(t, err)
	assert.Equal(ev.ID, res.ID)
	assert.Equal("run-1", res.RunID)
	assert.Equal("NISECI", res.IndexName)
	assert.Equal(&v, res.Value)
	assert.Nil(res.RQE)
	assert.JSONEq(`[{"name":"x1","value":0.342},{"name":"x2","value":null}]`,
		res.Metrics)
	assert.Equal(now, res.CreatedAt)

	require.Len(t, species, 1)
	assert.Equal(ev.ID, species[0].EvaluationID)
	assert.Equal(uint32(1), species[0].Class5)
	assert.Equal(uint32(5), species[0].Quantity)
}

func TestFromReportNonFinite(t *testing.T) {
	inf, nan := float32(math.Inf(1)), float32(math.NaN())
	ev := report.Evaluation{
		ID:          report.EvaluationID(report.HFBI, "LAG02", "01/04/2022"),
		Index:       report.HFBI,
		StationCode: "LAG02",
		Value:       &inf,
		Metrics: []report.Metric{
			{Name: "bn", Value: &nan},
			{Name: "bbent", Value: &inf},
			{Name: "dbent", Value: ptrNegInf()},
		},
	}

	res, _, err := schema.FromReport("run-1", ev, time.Now())
	require.NoError(t, err)
	assert.Equal(t, &inf, res.Value)
	assert.JSONEq(t, `[{"name":"bn","value":"NaN"},`+
		`{"name":"bbent","value":"+Inf"},{"name":"dbent","value":"-Inf"}]`,
		res.Metrics)
}

func ptrNegInf() *float32 {
	v := float32(math.Inf(-1))
	return &v
}

package iometrics_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gnames/gnfish/internal/iometrics"
	"github.com/gnames/gnfish/pkg/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile(t *testing.T) {
	good := "Buono"
	m := iometrics.New()
	m.Evaluated(report.Evaluation{Index: report.NISECI, Status: &good},
		10*time.Millisecond)
	m.Evaluated(report.Evaluation{Index: report.NISECI, Status: &good},
		10*time.Millisecond)
	m.Evaluated(report.Evaluation{Index: report.NISECI}, time.Millisecond)
	m.Failed(report.HFBI, time.Millisecond)

	path := filepath.Join(t.TempDir(), "gnfish.prom")
	require.NoError(t, m.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	txt := string(data)

	tests := []struct {
		msg, line string
	}{
		{"good", `gnfish_evaluations_total{index="NISECI",status="Buono"} 2`},
		{"undefined", `gnfish_evaluations_total{index="NISECI",status="NC"} 1`},
		{"failure", `gnfish_failures_total{index="HFBI"} 1`},
		{"histogram", `gnfish_station_duration_seconds_count{index="NISECI"} 3`},
	}
	for _, v := range tests {
		assert.Contains(t, txt, v.line, v.msg)
	}
}

func TestWriteFileError(t *testing.T) {
	m := iometrics.New()
	err := m.WriteFile(filepath.Join(t.TempDir(), "no", "such", "dir.prom"))
	assert.Error(t, err)
}

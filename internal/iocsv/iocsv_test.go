package iocsv_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnfish/internal/iocsv"
	"github.com/gnames/gnfish/pkg/errcode"
	"github.com/gnames/gnfish/pkg/hfbi"
	"github.com/gnames/gnfish/pkg/niseci"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFile(name string) string {
	return filepath.Join("testdata", name)
}

// binomial keeps the first two words of a name.
type binomial struct{}

func (binomial) Canonical(name string) (string, bool) {
	ws := strings.Fields(name)
	if len(ws) < 2 {
		return "", false
	}
	return ws[0] + " " + ws[1], true
}

func validationProblems(t *testing.T, err error) []string {
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.CSVValidationError, gnErr.Code)

	var verr *iocsv.ValidationError
	require.True(t, errors.As(gnErr.Err, &verr))
	return verr.Problems
}

func TestLoadReference(t *testing.T) {
	assert := assert.New(t)
	ref, err := iocsv.LoadReference(testFile("riferimento.csv"), nil)
	require.NoError(t, err)
	require.Len(t, ref, 10)

	sp, ok := ref.Find("BAR")
	require.True(t, ok)
	assert.Equal("Barbo comune", sp.Name)
	assert.Equal("Barbus plebejus Bonaparte, 1839", sp.LatinName)
	assert.Equal(niseci.NativeSecondary, sp.Native)
	assert.True(sp.Expected)
	assert.Equal([4]uint32{10, 20, 30, 40}, sp.LengthThresholds)
	assert.Equal([4]float32{0.5, 1, 2, 3}, sp.AdultJuvenileThresholds)
	assert.Equal([2]float32{1, 2}, sp.DensityThresholds)

	sp, ok = ref.Find("PSC")
	require.True(t, ok)
	assert.Equal(niseci.NotNative, sp.Native)
	assert.Equal(uint8(3), sp.Alien)
	assert.False(sp.Expected)

	ref, err = iocsv.LoadReference(testFile("riferimento.csv"), binomial{})
	require.NoError(t, err)
	sp, ok = ref.Find("TRM")
	require.True(t, ok)
	assert.Equal("Salmo marmoratus", sp.LatinName)
}

func TestLoadReferenceInvalid(t *testing.T) {
	_, err := iocsv.LoadReference(testFile("riferimento_invalido.csv"), nil)
	require.Error(t, err)

	probs := validationProblems(t, err)
	require.Len(t, probs, 5)

	tests := []struct {
		msg  string
		prob string
	}{
		{"origin", "record 2: origine must be AUT or ALL"},
		{"duplicate", "record 3: codiceSpecie 'BAR' is defined more than once"},
		{"length classes", "record 4: clSoglia thresholds must be increasing"},
		{"density", "record 5: densSoglia1 must be less than densSoglia2"},
		{"alien class", "record 6: alloNocivita must be between 0 and 3"},
	}
	for i, v := range tests {
		assert.Contains(t, probs[i], v.prob, v.msg)
	}
}

func TestLoadNISECISample(t *testing.T) {
	ref, err := iocsv.LoadReference(testFile("riferimento.csv"), nil)
	require.NoError(t, err)

	sample, err := iocsv.LoadNISECISample(testFile("campionamento.csv"), ref)
	require.NoError(t, err)
	require.Len(t, sample, 9)

	assert.Equal(t, "BAR", sample[0].Species.ID)
	assert.Equal(t, uint8(1), sample[0].Pass)
	assert.Equal(t, uint32(5), sample[0].Length)
	assert.Equal(t, float32(10.5), sample[5].Weight)
	assert.Equal(t, uint8(2), sample[7].Pass)

	_, err = iocsv.LoadNISECISample(testFile("campionamento.csv"), ref[:3])
	probs := validationProblems(t, err)
	assert.Len(t, probs, 4)
	assert.Contains(t, probs[0], "codiceSpecie 'TRM' is not in the reference")
}

func TestLoadNISECIStation(t *testing.T) {
	assert := assert.New(t)
	st, err := iocsv.LoadNISECIStation(testFile("anagrafica.csv"))
	require.NoError(t, err)

	assert.Equal("ST01", st.Code)
	assert.Equal("Fiume Savio", st.WaterBody)
	assert.Equal("Savio", st.Basin)
	assert.Equal("Emilia-Romagna", st.Location.Region)
	assert.Equal("Forli-Cesena", st.Location.Province)
	assert.Equal("12/05/2024", st.Date)
	assert.Equal(float32(2), st.Surface())
	assert.Equal(niseci.DM2602010, st.Community.Type)
	assert.Equal(niseci.HydroEcoRegion(9), st.HydroEcoRegion)
	assert.Equal(niseci.Alpine, st.Area)

	_, err = iocsv.LoadNISECIStation(testFile("anagrafica_invalida.csv"))
	probs := validationProblems(t, err)
	tests := []string{
		"codiceStazione cannot be empty",
		"data '31/02/2024' is not a valid dd/mm/yyyy date",
		"lunghezzaStazione cannot be negative",
		"fonte cannot be empty for a retrieved community",
		"idroEcoRegione must be between 0 and 20",
	}
	require.Len(t, probs, len(tests))
	for i, v := range tests {
		assert.Contains(probs[i], v)
	}
}

func TestNISECIEndToEnd(t *testing.T) {
	ref, err := iocsv.LoadReference(testFile("riferimento.csv"), nil)
	require.NoError(t, err)
	sample, err := iocsv.LoadNISECISample(testFile("campionamento.csv"), ref)
	require.NoError(t, err)
	st, err := iocsv.LoadNISECIStation(testFile("anagrafica.csv"))
	require.NoError(t, err)

	res, err := niseci.Calculate(sample, ref, st)
	require.NoError(t, err)
	require.NotNil(t, res.Value)
	assert.InDelta(t, 0.342, *res.Value, 1e-6)
	assert.InDelta(t, 0.62, *res.RQE, 1e-6)
	assert.Equal(t, niseci.Good, res.Status)
}

func TestLoadHFBI(t *testing.T) {
	assert := assert.New(t)
	sample, err := iocsv.LoadHFBISample(testFile("hfbi_campionamento.csv"))
	require.NoError(t, err)
	require.Len(t, sample, 5)
	assert.Equal("Anguilla", sample[0].Species.Name)
	assert.Equal(uint32(20), sample[3].Count)
	assert.Equal(float32(30), sample[4].Weight)

	st, err := iocsv.LoadHFBIStation(testFile("hfbi_anagrafica.csv"))
	require.NoError(t, err)
	assert.Equal("LAG01", st.Code)
	assert.Equal(hfbi.Spring, st.Season)
	assert.Equal(hfbi.NonVegetated, st.Habitat)
	assert.Equal(hfbi.MAT1, st.LagoonType)
	assert.Equal(float32(500), st.Area())

	res, err := hfbi.Calculate(sample, st)
	require.NoError(t, err)
	assert.InDelta(1.793, res.Value, 1e-6)
	assert.Equal(hfbi.Excellent, res.Status)
}

func TestLoadHFBISampleInvalid(t *testing.T) {
	_, err := iocsv.LoadHFBISample(testFile("hfbi_campionamento_invalido.csv"))
	probs := validationProblems(t, err)

	tests := []string{
		"record 4: expected 3 fields, found 2",
		"record 1: numeroIndividui must be at least 1",
		"record 2: codiceSpecie 'XX' is not a lagoon species",
		"record 3: peso: cannot parse 'abc' as a number",
	}
	require.Len(t, probs, len(tests))
	for i, v := range tests {
		assert.Contains(t, probs[i], v)
	}
}

func TestHeaderError(t *testing.T) {
	_, err := iocsv.LoadHFBISample(testFile("hfbi_anagrafica.csv"))
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.CSVHeaderError, gnErr.Code)

	_, err = iocsv.LoadHFBIStation(testFile("no-such-file.csv"))
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.CSVOpenError, gnErr.Code)
}

func TestHeaderBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bom.csv")
	data := "\ufeffCODICESPECIE;numeroIndividui;peso\r\nSPI;2;1,25\r\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	sample, err := iocsv.LoadHFBISample(path)
	require.NoError(t, err)
	require.Len(t, sample, 1)
	assert.Equal(t, float32(1.25), sample[0].Weight)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		msg, inp, out string
	}{
		{"plain", "Savio", "Savio"},
		{"spaces", "  Savio \t", "Savio"},
		{"accent", "Forlì-Cesena", "Forli-Cesena"},
		{"many accents", "Città di Castello", "Citta di Castello"},
		{"empty", "", ""},
	}
	for _, v := range tests {
		assert.Equal(t, v.out, iocsv.Normalize(v.inp), v.msg)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		msg   string
		inp   string
		valid bool
	}{
		{"full", "12/05/2024", true},
		{"short", "1/5/2024", true},
		{"dashes", "12-05-2024", true},
		{"no such day", "31/02/2024", false},
		{"iso", "2024-05-12", false},
		{"empty", "", false},
	}
	for _, v := range tests {
		_, err := iocsv.ParseDate(v.inp)
		assert.Equal(t, v.valid, err == nil, v.msg)
	}
}

func TestReferenceCache(t *testing.T) {
	rc := iocsv.NewReferenceCache(nil)
	assert.Equal(t, 0, rc.Len())

	ref1, err := rc.Load(testFile("riferimento.csv"))
	require.NoError(t, err)
	ref2, err := rc.Load(testFile("riferimento.csv"))
	require.NoError(t, err)
	assert.Equal(t, 1, rc.Len())
	assert.Equal(t, ref1, ref2)

	_, err = rc.Load(testFile("riferimento_invalido.csv"))
	assert.Error(t, err)
	assert.Equal(t, 1, rc.Len())
}

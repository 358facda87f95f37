package hfbi_test

import (
	"math"
	"testing"

	"github.com/gnames/gnfish/pkg/hfbi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func species(t *testing.T, code string) *hfbi.Species {
	sp, ok := hfbi.FindSpecies(code)
	require.True(t, ok, code)
	return sp
}

func mainSample(t *testing.T) hfbi.Sample {
	return hfbi.Sample{
		{Species: species(t, "AN"), Count: 3, Weight: 200},
		{Species: species(t, "NO"), Count: 10, Weight: 50},
		{Species: species(t, "CLU"), Count: 2, Weight: 120},
		{Species: species(t, "SPI"), Count: 20, Weight: 80},
		{Species: species(t, "GHN"), Count: 5, Weight: 30},
	}
}

func station() hfbi.Station {
	return hfbi.Station{
		Code:       "LAG01",
		Length:     100,
		Width:      5,
		Season:     hfbi.Spring,
		Habitat:    hfbi.NonVegetated,
		LagoonType: hfbi.MAT1,
	}
}

func TestSpeciesList(t *testing.T) {
	assert := assert.New(t)
	list := hfbi.SpeciesList()
	assert.Len(list, 31)
	for _, v := range list {
		tr := v.Trophic
		sum := tr.Microbenthivore + tr.Macrobenthivore + tr.Hyperbenthivore +
			tr.Herbivore + tr.Detritivore + tr.Planktivore + tr.Omnivore
		assert.LessOrEqual(sum, float32(1.0001), v.Name)
		assert.True(v.Native, v.Name)
	}

	sp, ok := hfbi.FindSpecies("DIC")
	assert.True(ok)
	assert.Equal("Spigola branzino", sp.Name)

	_, ok = hfbi.FindSpecies("XYZ")
	assert.False(ok)
}

func TestMetrics(t *testing.T) {
	s := mainSample(t)
	area := station().Area()
	tests := []struct {
		msg  string
		fn   func() float32
		want float32
	}{
		{"bn", func() float32 { return hfbi.BN(s) }, 2.565},
		{"bbent", func() float32 { return hfbi.BBent(s, area) }, 3.989},
		{"dbent", func() float32 { return hfbi.DBent(s, area) }, 0.356},
		{"ddom", func() float32 { return hfbi.DDom(s, area) }, 0.513},
		{"dhzp", func() float32 { return hfbi.DHzp(s, area) }, 0.177},
		{"dmig", func() float32 { return hfbi.DMig(s, area) }, 0.376},
	}
	for _, v := range tests {
		assert.InDelta(t, v.want, v.fn(), 1e-6, v.msg)
	}
}

func TestBNEmpty(t *testing.T) {
	res := hfbi.BN(nil)
	assert.True(t, math.IsNaN(float64(res)))
}

func TestSingularDiversity(t *testing.T) {
	assert := assert.New(t)
	area := float32(500)
	occ := &hfbi.Species{
		Code:    "OCC",
		Group:   hfbi.MarineOccasional,
		Trophic: hfbi.Trophic{Microbenthivore: 0.5, Macrobenthivore: 0.5, Hyperbenthivore: 0.5},
	}
	s := hfbi.Sample{{Species: occ, Count: 1, Weight: 100}}
	assert.Equal(float32(0), hfbi.DBent(s, area))
	assert.Equal(float32(0), hfbi.DHzp(s, area))
	assert.Equal(float32(0), hfbi.BBent(s, area))
	assert.Equal(float32(0), hfbi.DMig(s, area))

	sng := &hfbi.Species{
		Code:  "SNG",
		Group: hfbi.Diadromous,
		Trophic: hfbi.Trophic{
			Microbenthivore: 0.15,
			Macrobenthivore: 0.05,
			Hyperbenthivore: 0.2,
		},
	}
	s = hfbi.Sample{{Species: sng, Count: 4, Weight: 60}}
	assert.Equal(float32(0.01), hfbi.DBent(s, area))
	assert.Equal(float32(0.01), hfbi.DHzp(s, area))
	assert.Equal(float32(0.01), hfbi.DMig(s, area))
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		msg    string
		sample hfbi.Sample
		im     hfbi.Intermediates
		value  float32
		status hfbi.Status
	}{
		{
			msg:    "main",
			sample: mainSample(t),
			im: hfbi.Intermediates{
				BN: 2.565, BBent: 3.989, DBent: 0.356,
				DDom: 0.513, DHzp: 0.177, DMig: 0.376, MMI: 0.436,
			},
			value:  1.793,
			status: hfbi.Excellent,
		},
		{
			msg:    "single eel",
			sample: hfbi.Sample{{Species: species(t, "AN"), Count: 1, Weight: 200}},
			im: hfbi.Intermediates{
				BN: 5.303, BBent: 3.219, DBent: -0.135,
				DDom: 0, DHzp: 0.07, DMig: 0.01, MMI: 0.549,
			},
			value:  2.547,
			status: hfbi.Excellent,
		},
		{
			msg: "occasional only",
			sample: hfbi.Sample{{
				Species: &hfbi.Species{
					Code:  "OCC",
					Group: hfbi.MarineOccasional,
					Trophic: hfbi.Trophic{
						Microbenthivore: 0.5,
						Macrobenthivore: 0.5,
						Hyperbenthivore: 0.5,
					},
				},
				Count:  1,
				Weight: 100,
			}},
			im:     hfbi.Intermediates{BN: 4.615, MMI: 0.383},
			value:  1.44,
			status: hfbi.Excellent,
		},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			assert := assert.New(t)
			res, err := hfbi.Calculate(v.sample, station())
			require.NoError(t, err)
			im := res.Intermediates
			assert.InDelta(v.im.BN, im.BN, 1e-6, "bn")
			assert.InDelta(v.im.BBent, im.BBent, 1e-6, "bbent")
			assert.InDelta(v.im.DBent, im.DBent, 1e-6, "dbent")
			assert.InDelta(v.im.DDom, im.DDom, 1e-6, "ddom")
			assert.InDelta(v.im.DHzp, im.DHzp, 1e-6, "dhzp")
			assert.InDelta(v.im.DMig, im.DMig, 1e-6, "dmig")
			assert.InDelta(v.im.MMI, im.MMI, 1e-6, "mmi")
			assert.InDelta(v.value, res.Value, 1e-6, "hfbi")
			assert.Equal(v.status, res.Status)
		})
	}
}

func TestCalculateNoReference(t *testing.T) {
	st := station()
	st.LagoonType = hfbi.LagoonType(7)
	_, err := hfbi.Calculate(mainSample(t), st)
	assert.ErrorIs(t, err, hfbi.ErrNoReference)
}

func TestReferenceFor(t *testing.T) {
	assert := assert.New(t)
	ref, err := hfbi.ReferenceFor(hfbi.MAT3, hfbi.Autumn, hfbi.Vegetated)
	assert.NoError(err)
	assert.Equal(float32(1.917), ref.BN)
	assert.Equal(float32(5.595), ref.BBent)
	assert.Equal(float32(2.083), ref.DHzp)
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		v    float32
		want hfbi.Status
		lbl  string
	}{
		{0.94, hfbi.Excellent, "Eccellente"},
		{0.939, hfbi.Good, "Buono"},
		{0.55, hfbi.Good, "Buono"},
		{0.33, hfbi.Sufficient, "Sufficiente"},
		{0.11, hfbi.Poor, "Scarso"},
		{0.109, hfbi.Bad, "Cattivo"},
		{-1, hfbi.Bad, "Cattivo"},
	}
	for _, v := range tests {
		res := hfbi.StatusOf(v.v)
		assert.Equal(t, v.want, res)
		assert.Equal(t, v.lbl, res.String())
	}
}

func TestEnums(t *testing.T) {
	assert := assert.New(t)
	lt, ok := hfbi.NewLagoonType(2)
	assert.True(ok)
	assert.Equal("M-AT-2", lt.String())
	_, ok = hfbi.NewLagoonType(0)
	assert.False(ok)

	s, ok := hfbi.NewSeason(1)
	assert.True(ok)
	assert.Equal("Autunno", s.String())
	_, ok = hfbi.NewSeason(2)
	assert.False(ok)

	h, ok := hfbi.NewHabitat(1)
	assert.True(ok)
	assert.Equal("Non Vegetato", h.String())
}

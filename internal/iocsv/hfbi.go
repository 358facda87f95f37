package iocsv

import (
	"log/slog"
	"math"

	"github.com/gnames/gnfish/pkg/hfbi"
	"github.com/gnames/gnfish/pkg/location"
)

var (
	HFBISampleHeader = []string{"codiceSpecie", "numeroIndividui", "peso"}

	HFBIStationHeader = []string{
		"codiceStazione", "corpoIdrico", "regione", "provincia", "data",
		"lunghezzaStazione", "larghezzaStazione", "stagione", "habitat",
		"tipoLaguna",
	}
)

// LoadHFBISample reads the catch of a lagoon transect. Species codes
// are resolved against the built-in lagoon species list.
func LoadHFBISample(path string) (hfbi.Sample, error) {
	rows, probs, err := readTable(path, HFBISampleHeader)
	if err != nil {
		return nil, err
	}

	var res hfbi.Sample
	for _, r := range rows {
		rec, ok := hfbiSampleRecord(r)
		probs = append(probs, r.probs...)
		if ok {
			res = append(res, rec)
		}
	}

	if len(probs) > 0 {
		return nil, CSVValidationError(path, probs)
	}
	slog.Debug("Loaded HFBI sample", "file", path, "records", len(res))
	return res, nil
}

func hfbiSampleRecord(r *row) (hfbi.Record, bool) {
	var res hfbi.Record
	code := r.str("codiceSpecie")
	if code == "" {
		r.problem("codiceSpecie cannot be empty")
		return res, false
	}
	sp, ok := hfbi.FindSpecies(code)
	if !ok {
		r.problem("codiceSpecie '%s' is not a lagoon species", code)
		return res, false
	}

	count := r.natural("numeroIndividui")
	weight := r.number("peso")
	if len(r.probs) > 0 {
		return res, false
	}
	if count < 1 {
		r.problem("numeroIndividui must be at least 1, got %d", count)
		return res, false
	}
	if math.IsInf(float64(weight), 0) || math.IsNaN(float64(weight)) {
		r.problem("peso must be a finite number, got %v", weight)
		return res, false
	}

	res = hfbi.Record{Species: sp, Count: count, Weight: weight}
	return res, true
}

// LoadHFBIStation reads the registry of a lagoon station. The file
// must contain exactly one record.
func LoadHFBIStation(path string) (hfbi.Station, error) {
	var res hfbi.Station
	rows, probs, err := readTable(path, HFBIStationHeader)
	if err != nil {
		return res, err
	}
	r, probs := singleRow(rows, probs)
	if r == nil {
		return res, CSVValidationError(path, probs)
	}

	res = hfbi.Station{
		Code:      r.str("codiceStazione"),
		WaterBody: r.str("corpoIdrico"),
		Location: location.Location{
			Region:   r.str("regione"),
			Province: r.str("provincia"),
		},
		Date:   r.str("data"),
		Length: r.number("lunghezzaStazione"),
		Width:  r.number("larghezzaStazione"),
	}
	stationCommon(r, res.Code, res.WaterBody, res.Location, res.Date,
		res.Length, res.Width)

	var ok bool
	if res.Season, ok = hfbi.NewSeason(r.integer("stagione")); !ok {
		r.problem("stagione must be 0 or 1, got '%s'", r.str("stagione"))
	}
	if res.Habitat, ok = hfbi.NewHabitat(r.integer("habitat")); !ok {
		r.problem("habitat must be 0 or 1, got '%s'", r.str("habitat"))
	}
	if res.LagoonType, ok = hfbi.NewLagoonType(r.integer("tipoLaguna")); !ok {
		r.problem("tipoLaguna must be between 1 and 3, got '%s'",
			r.str("tipoLaguna"))
	}

	probs = append(probs, r.probs...)
	if len(probs) > 0 {
		return hfbi.Station{}, CSVValidationError(path, probs)
	}
	return res, nil
}

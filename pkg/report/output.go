package report

import (
	"strconv"
	"strings"

	"github.com/gnames/gnfmt"
)

// NotComputed replaces undefined values in CSV and TSV outputs.
const NotComputed = "NC"

var summaryHeader = []string{
	"Id", "Index", "StationCode", "WaterBody", "Region", "Province",
	"Date", "Value", "RQE", "Status",
}

var speciesHeader = []string{
	"EvaluationId", "SpeciesId", "Name",
	"Class1", "Class2", "Class3", "Class4", "Class5",
	"Ratio", "CriterionA", "CriterionB", "ScoreB", "Quantity", "Density",
}

// Output renders evaluations in the given format. Pretty JSON is an
// array, compact JSON has one evaluation per line. CSV and TSV outputs
// have a summary table per index, followed by the species table when
// withSpecies is true.
func Output(evs []Evaluation, f gnfmt.Format, withSpecies bool) (string, error) {
	if !withSpecies {
		evs = withoutSpecies(evs)
	}

	switch f {
	case gnfmt.PrettyJSON:
		enc := gnfmt.GNjson{Pretty: true}
		res, err := enc.Encode(evs)
		if err != nil {
			return "", EncodeError(len(evs), err)
		}
		return string(res), nil
	case gnfmt.CSV:
		return table(evs, ',', withSpecies), nil
	case gnfmt.TSV:
		return table(evs, '\t', withSpecies), nil
	default:
		enc := gnfmt.GNjson{}
		lines := make([]string, 0, len(evs))
		for _, v := range evs {
			res, err := enc.Encode(v)
			if err != nil {
				return "", EncodeError(len(evs), err)
			}
			lines = append(lines, string(res))
		}
		return strings.Join(lines, "\n"), nil
	}
}

// Header returns the CSV header of evaluations of an index.
func Header(idx Index, sep rune) string {
	return gnfmt.ToCSV(header(idx), sep)
}

// Row returns the summary row of an evaluation.
func Row(ev Evaluation, sep rune) string {
	rec := []string{
		ev.ID,
		string(ev.Index),
		ev.StationCode,
		ev.WaterBody,
		ev.Location.Region,
		ev.Location.Province,
		ev.Date,
		FormatFloat(ev.Value),
		FormatFloat(ev.RQE),
		NotComputed,
	}
	if ev.Status != nil {
		rec[9] = *ev.Status
	}
	for _, m := range ev.Metrics {
		rec = append(rec, FormatFloat(m.Value))
	}
	return gnfmt.ToCSV(rec, sep)
}

// SpeciesRows returns one row per species of an evaluation.
func SpeciesRows(ev Evaluation, sep rune) []string {
	res := make([]string, 0, len(ev.Species))
	for _, v := range ev.Species {
		rec := []string{ev.ID, v.SpeciesID, v.Name}
		for _, c := range v.Classes {
			rec = append(rec, strconv.Itoa(int(c)))
		}
		rec = append(rec,
			FormatFloat(v.Ratio),
			strconv.Itoa(int(v.CriterionA)),
			strconv.Itoa(int(v.CriterionB)),
			FormatFloat(&v.ScoreB),
			strconv.Itoa(int(v.Quantity)),
			FormatFloat(v.Density),
		)
		res = append(res, gnfmt.ToCSV(rec, sep))
	}
	return res
}

// FormatFloat prints the shortest decimal representation of a float32,
// or NC for nil.
func FormatFloat(v *float32) string {
	if v == nil {
		return NotComputed
	}
	return strconv.FormatFloat(float64(*v), 'f', -1, 32)
}

func header(idx Index) []string {
	res := make([]string, len(summaryHeader), len(summaryHeader)+7)
	copy(res, summaryHeader)
	var names []string
	switch idx {
	case NISECI:
		names = []string{"x1", "x2", "x3", "x2a", "x2b", "x3a", "x3b"}
	case HFBI:
		names = []string{"bn", "bbent", "dbent", "ddom", "dhzp", "dmig", "mmi"}
	}
	for _, v := range names {
		res = append(res, strings.ToUpper(v[:1])+v[1:])
	}
	return res
}

func table(evs []Evaluation, sep rune, withSpecies bool) string {
	var lines []string
	var species []string
	for _, idx := range []Index{NISECI, HFBI} {
		var rows []string
		for _, v := range evs {
			if v.Index != idx {
				continue
			}
			rows = append(rows, Row(v, sep))
			species = append(species, SpeciesRows(v, sep)...)
		}
		if len(rows) == 0 {
			continue
		}
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, Header(idx, sep))
		lines = append(lines, rows...)
	}

	if withSpecies && len(species) > 0 {
		lines = append(lines, "", gnfmt.ToCSV(speciesHeader, sep))
		lines = append(lines, species...)
	}
	return strings.Join(lines, "\n")
}

func withoutSpecies(evs []Evaluation) []Evaluation {
	res := make([]Evaluation, len(evs))
	for i, v := range evs {
		v.Species = nil
		res[i] = v
	}
	return res
}

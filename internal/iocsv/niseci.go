package iocsv

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gnames/gnfish/pkg/location"
	"github.com/gnames/gnfish/pkg/niseci"
)

var (
	ReferenceHeader = []string{
		"nomeComune", "nomeLatino", "codiceSpecie", "origine",
		"tipoAutoctono", "alloNocivita", "specieAttesa",
		"clSoglia1", "clSoglia2", "clSoglia3", "clSoglia4",
		"adJuvSoglia1", "adJuvSoglia2", "adJuvSoglia3", "adJuvSoglia4",
		"densSoglia1", "densSoglia2",
	}

	NISECISampleHeader = []string{
		"data", "stazione", "numPassaggio", "codiceSpecie", "lunghezza", "peso",
	}

	NISECIStationHeader = []string{
		"codiceStazione", "corpoIdrico", "regione", "provincia", "data",
		"lunghezzaStazione", "larghezzaStazione", "tipoComunita", "fonte",
		"numeroProtocollo", "idroEcoRegione", "areaAlpina", "nomeBacino",
	}
)

const epsilon = float32(1e-6)

// Canonicalizer converts a scientific name to its canonical form.
type Canonicalizer interface {
	Canonical(name string) (string, bool)
}

// LoadReference reads the reference species list of a river station.
// When canon is not nil, Latin names are stored in canonical form.
func LoadReference(path string, canon Canonicalizer) (niseci.Reference, error) {
	rows, probs, err := readTable(path, ReferenceHeader)
	if err != nil {
		return nil, err
	}

	var res niseci.Reference
	ids := make(map[string]struct{})
	for _, r := range rows {
		sp, ok := referenceSpecies(r, ids)
		probs = append(probs, r.probs...)
		if !ok || len(r.probs) > 0 {
			continue
		}
		ids[sp.ID] = struct{}{}
		sp.LatinName = latinName(r.str("nomeLatino"), canon)
		res = append(res, sp)
	}

	if len(probs) > 0 {
		return nil, CSVValidationError(path, probs)
	}
	slog.Debug("Loaded reference species", "file", path, "species", len(res))
	return res, nil
}

func latinName(name string, canon Canonicalizer) string {
	if canon == nil || name == "" {
		return name
	}
	res, ok := canon.Canonical(name)
	if !ok {
		slog.Warn("Cannot parse scientific name", "name", name)
		return name
	}
	return res
}

func referenceSpecies(r *row, ids map[string]struct{}) (niseci.Species, bool) {
	res := niseci.Species{
		ID:   r.str("codiceSpecie"),
		Name: r.str("nomeComune"),
	}
	native := r.natural("tipoAutoctono")
	alien := r.natural("alloNocivita")
	res.Expected = r.natural("specieAttesa") > 0
	for i := range res.LengthThresholds {
		res.LengthThresholds[i] = r.natural(fmt.Sprintf("clSoglia%d", i+1))
		res.AdultJuvenileThresholds[i] = r.number(fmt.Sprintf("adJuvSoglia%d", i+1))
	}
	d1, d2 := r.number("densSoglia1"), r.number("densSoglia2")
	res.DensityThresholds = [2]float32{d1, d2}
	if len(r.probs) > 0 {
		return res, false
	}

	switch strings.ToUpper(r.str("origine")) {
	case "AUT":
		if native != 1 && native != 2 {
			r.problem("tipoAutoctono must be 1 or 2, got %d", native)
			return res, false
		}
		res.Native = niseci.NativeType(native)
	case "ALL":
		if alien > 3 {
			r.problem("alloNocivita must be between 0 and 3, got %d", alien)
			return res, false
		}
		res.Alien = uint8(alien)
	default:
		r.problem("origine must be AUT or ALL, got '%s'", r.str("origine"))
		return res, false
	}

	if res.ID == "" {
		r.problem("codiceSpecie cannot be empty")
		return res, false
	}
	if _, ok := ids[res.ID]; ok {
		r.problem("codiceSpecie '%s' is defined more than once", res.ID)
		return res, false
	}

	switch {
	case d1 < 0:
		r.problem("densSoglia1 cannot be negative")
	case res.Expected && abs32(d1) < epsilon:
		r.problem("densSoglia1 cannot be zero for an expected species")
	case d2 < 0:
		r.problem("densSoglia2 cannot be negative")
	case res.Expected && abs32(d2) < epsilon:
		r.problem("densSoglia2 cannot be zero for an expected species")
	case res.Expected && d1 >= d2:
		r.problem("densSoglia1 must be less than densSoglia2 for an expected species")
	case !increasing(res.LengthThresholds[:]):
		r.problem("clSoglia thresholds must be increasing")
	case !increasing(res.AdultJuvenileThresholds[:]):
		r.problem("adJuvSoglia thresholds must be increasing")
	default:
		return res, true
	}
	return res, false
}

// LoadNISECISample reads captured individuals. Species codes are
// resolved against the reference, the first match wins.
func LoadNISECISample(path string, ref niseci.Reference) (niseci.Sample, error) {
	rows, probs, err := readTable(path, NISECISampleHeader)
	if err != nil {
		return nil, err
	}

	var res niseci.Sample
	for _, r := range rows {
		rec, ok := nisSampleRecord(r, ref)
		probs = append(probs, r.probs...)
		if ok {
			res = append(res, rec)
		}
	}

	if len(probs) > 0 {
		return nil, CSVValidationError(path, probs)
	}
	slog.Debug("Loaded NISECI sample", "file", path, "records", len(res))
	return res, nil
}

func nisSampleRecord(r *row, ref niseci.Reference) (niseci.Record, bool) {
	var res niseci.Record
	code := r.str("codiceSpecie")
	if code == "" {
		r.problem("codiceSpecie cannot be empty")
		return res, false
	}
	sp, ok := ref.Find(code)
	if !ok {
		r.problem("codiceSpecie '%s' is not in the reference", code)
		return res, false
	}

	pass := r.natural("numPassaggio")
	length := r.natural("lunghezza")
	weight := r.number("peso")
	if len(r.probs) > 0 {
		return res, false
	}
	if pass < 1 || pass > 255 {
		r.problem("numPassaggio must be between 1 and 255, got %d", pass)
		return res, false
	}

	res = niseci.Record{
		Species: sp,
		Pass:    uint8(pass),
		Length:  length,
		Weight:  weight,
	}
	return res, true
}

// LoadNISECIStation reads the registry of a river station. The file
// must contain exactly one record.
func LoadNISECIStation(path string) (niseci.Station, error) {
	var res niseci.Station
	rows, probs, err := readTable(path, NISECIStationHeader)
	if err != nil {
		return res, err
	}
	r, probs := singleRow(rows, probs)
	if r == nil {
		return res, CSVValidationError(path, probs)
	}

	res = niseci.Station{
		Code:      r.str("codiceStazione"),
		WaterBody: r.str("corpoIdrico"),
		Basin:     r.str("nomeBacino"),
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
	if res.Basin == "" {
		r.problem("nomeBacino cannot be empty")
	}

	ct, ok := niseci.NewCommunityType(r.integer("tipoComunita"))
	if !ok {
		r.problem("tipoComunita must be between 0 and 3, got '%s'",
			r.str("tipoComunita"))
	}
	res.Community = niseci.Community{
		Type:     ct,
		Source:   r.str("fonte"),
		Protocol: r.str("numeroProtocollo"),
	}
	switch {
	case ct == niseci.Retrieved && res.Community.Source == "":
		r.problem("fonte cannot be empty for a retrieved community")
	case ct == niseci.RefinedByMinistry && res.Community.Protocol == "":
		r.problem("numeroProtocollo cannot be empty for a refined community")
	}

	her, ok := niseci.NewHydroEcoRegion(r.integer("idroEcoRegione"))
	if !ok {
		r.problem("idroEcoRegione must be between 0 and 20, got '%s'",
			r.str("idroEcoRegione"))
	}
	res.HydroEcoRegion = her

	res.Area = niseci.Mediterranean
	if r.integer("areaAlpina") > 0 {
		res.Area = niseci.Alpine
	}

	probs = append(probs, r.probs...)
	if len(probs) > 0 {
		return niseci.Station{}, CSVValidationError(path, probs)
	}
	return res, nil
}

func singleRow(rows []*row, probs []string) (*row, []string) {
	switch {
	case len(rows) == 0 && len(probs) == 0:
		return nil, append(probs, "no records found, expected 1")
	case len(rows) == 0:
		return nil, probs
	case len(rows) > 1:
		probs = append(probs,
			fmt.Sprintf("too many records: %d, expected 1", len(rows)))
	}
	return rows[0], probs
}

func stationCommon(
	r *row,
	code, waterBody string,
	loc location.Location,
	date string,
	length, width float32,
) {
	if code == "" {
		r.problem("codiceStazione cannot be empty")
	}
	if waterBody == "" {
		r.problem("corpoIdrico cannot be empty")
	}
	if loc.Region == "" {
		r.problem("regione cannot be empty")
	}
	if loc.Province == "" {
		r.problem("provincia cannot be empty")
	}
	if _, err := ParseDate(date); err != nil {
		r.problem("data '%s' is not a valid dd/mm/yyyy date", date)
	}
	if length < 0 {
		r.problem("lunghezzaStazione cannot be negative, got %v", length)
	}
	if width < 0 {
		r.problem("larghezzaStazione cannot be negative, got %v", width)
	}
}

// ParseDate parses a dd/mm/yyyy date. Dashes are accepted as
// separators.
func ParseDate(s string) (time.Time, error) {
	s = strings.ReplaceAll(s, "-", "/")
	return time.Parse("2/1/2006", s)
}

func increasing[T uint32 | float32](vals []T) bool {
	for i := 1; i < len(vals); i++ {
		if vals[i-1] >= vals[i] {
			return false
		}
	}
	return true
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

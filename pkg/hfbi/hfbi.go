// Package hfbi computes the HFBI index (Habitat Fish Bio-Indicator) of
// a lagoon transect.
//
// Six metrics are computed from the catch: BN, BBent, DBent, DDom, DHzp
// and DMig. Each metric is divided by its value in the reference
// conditions of the lagoon type, season and habitat. The weighted mean
// of these ratios is the multimetric index (MMI) that is rescaled into
// the HFBI value.
package hfbi

import "encoding/json"

const (
	hfbiAddend   = float32(-0.167)
	hfbiQuotient = float32(0.150)
)

// metric weights, in the order ddom, bn, dmig, bbent, dbent, dhzp.
var weights = [6]float32{1.0, 0.7, 0.05, 0.82, 0.37, 0.84}

// Status is the ecological status of a lagoon.
type Status int

const (
	Excellent Status = iota
	Good
	Sufficient
	Poor
	Bad
)

var statusLabels = []string{
	"Eccellente",
	"Buono",
	"Sufficiente",
	"Scarso",
	"Cattivo",
}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusLabels) {
		return "unknown"
	}
	return statusLabels[s]
}

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// StatusOf classifies an HFBI value.
func StatusOf(v float32) Status {
	switch {
	case v >= 0.94:
		return Excellent
	case v >= 0.55:
		return Good
	case v >= 0.33:
		return Sufficient
	case v >= 0.11:
		return Poor
	default:
		return Bad
	}
}

// Intermediates are the metrics used to compute the index.
type Intermediates struct {
	BN    float32 `json:"bn"`
	BBent float32 `json:"bbent"`
	DBent float32 `json:"dbent"`
	DDom  float32 `json:"ddom"`
	DHzp  float32 `json:"dhzp"`
	DMig  float32 `json:"dmig"`
	MMI   float32 `json:"mmi"`

	Reference Reference `json:"reference"`
}

// Result is the outcome of an HFBI computation.
type Result struct {
	Value         float32       `json:"value"`
	Status        Status        `json:"status"`
	Intermediates Intermediates `json:"intermediates"`
}

// Calculate computes the HFBI index of a sample collected at a station.
func Calculate(s Sample, st Station) (*Result, error) {
	ref, err := ReferenceFor(st.LagoonType, st.Season, st.Habitat)
	if err != nil {
		return nil, err
	}

	area := st.Area()
	im := Intermediates{
		BN:        BN(s),
		BBent:     BBent(s, area),
		DBent:     DBent(s, area),
		DDom:      DDom(s, area),
		DHzp:      DHzp(s, area),
		DMig:      DMig(s, area),
		Reference: ref,
	}
	im.MMI = MMI(im, ref)

	v := round3((im.MMI + hfbiAddend) / hfbiQuotient)
	res := Result{
		Value:         v,
		Status:        StatusOf(v),
		Intermediates: im,
	}
	return &res, nil
}

// MMI is the weighted mean of the ratios between metrics and their
// reference values.
func MMI(im Intermediates, ref Reference) float32 {
	ratios := [6]float32{
		im.DDom / ref.DDom,
		im.BN / ref.BN,
		im.DMig / ref.DMig,
		im.BBent / ref.BBent,
		im.DBent / ref.DBent,
		im.DHzp / ref.DHzp,
	}
	var sum, wsum float32
	for i, w := range weights {
		sum += float32(w * ratios[i])
		wsum += w
	}
	return round3(sum / wsum)
}

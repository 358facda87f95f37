// Package report converts results of index engines into evaluations,
// an engine-neutral form used for output and archiving.
package report

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gnames/gnfish/pkg/hfbi"
	"github.com/gnames/gnfish/pkg/location"
	"github.com/gnames/gnfish/pkg/niseci"
	"github.com/gnames/gnuuid"
)

// Index is the name of an ecological index.
type Index string

const (
	NISECI Index = "NISECI"
	HFBI   Index = "HFBI"
)

// NewIndex converts a case-insensitive name to an Index.
func NewIndex(s string) (Index, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "niseci":
		return NISECI, nil
	case "hfbi":
		return HFBI, nil
	}
	return "", fmt.Errorf("unknown index '%s'", s)
}

// Metric is a named intermediate value. Value is nil when the metric
// is undefined.
type Metric struct {
	Name  string   `json:"name"`
	Value *float32 `json:"value"`
}

// SpeciesRow keeps intermediate values of one species of a NISECI
// evaluation.
type SpeciesRow struct {
	SpeciesID  string    `json:"speciesId"`
	Name       string    `json:"name"`
	Classes    [5]uint32 `json:"classes"`
	Ratio      *float32  `json:"ratio"`
	CriterionA uint8     `json:"criterionA"`
	CriterionB uint8     `json:"criterionB"`
	ScoreB     float32   `json:"scoreB"`
	Quantity   uint32    `json:"quantity"`
	Density    *float32  `json:"density"`
}

// Evaluation is the outcome of an index computation for one station.
type Evaluation struct {
	// ID is a UUID v5 generated from the index, station code and date.
	ID          string            `json:"id"`
	Index       Index             `json:"index"`
	StationCode string            `json:"stationCode"`
	WaterBody   string            `json:"waterBody"`
	Location    location.Location `json:"location"`
	Date        string            `json:"date"`

	// Value of the index, nil when it cannot be computed.
	Value *float32 `json:"value"`

	// RQE is only given by NISECI.
	RQE *float32 `json:"rqe"`

	// Status is the label of the ecological status.
	Status *string `json:"status"`

	Metrics []Metric     `json:"metrics"`
	Species []SpeciesRow `json:"species,omitempty"`
}

// EvaluationID creates a deterministic id of an evaluation.
func EvaluationID(idx Index, code, date string) string {
	return gnuuid.New(string(idx) + "|" + code + "|" + date).String()
}

// FromNISECI creates an evaluation out of a NISECI result.
func FromNISECI(st niseci.Station, res *niseci.Result) Evaluation {
	im := res.Intermediates
	ev := Evaluation{
		ID:          EvaluationID(NISECI, st.Code, st.Date),
		Index:       NISECI,
		StationCode: st.Code,
		WaterBody:   st.WaterBody,
		Location:    st.Location,
		Date:        st.Date,
		Value:       res.Value,
		RQE:         res.RQE,
		Metrics: []Metric{
			{"x1", ptr(im.X1)},
			{"x2", im.X2},
			{"x3", ptr(im.X3)},
			{"x2a", ptr(im.X2A)},
			{"x2b", ptr(im.X2B)},
			{"x3a", im.X3A},
			{"x3b", im.X3B},
		},
	}
	if res.Status != niseci.NoStatus {
		ev.Status = ptr(res.Status.String())
	}

	ids := make([]string, 0, len(im.Species))
	for id := range im.Species {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		v := im.Species[id]
		row := SpeciesRow{
			SpeciesID:  id,
			Classes:    v.Classes,
			Ratio:      v.Ratio,
			CriterionA: v.CriterionA,
			CriterionB: v.CriterionB,
			ScoreB:     v.ScoreB,
			Quantity:   v.Quantity,
			Density:    v.Density,
		}
		if v.Species != nil {
			row.Name = v.Species.Name
		}
		ev.Species = append(ev.Species, row)
	}
	return ev
}

// FromHFBI creates an evaluation out of an HFBI result.
func FromHFBI(st hfbi.Station, res *hfbi.Result) Evaluation {
	im := res.Intermediates
	return Evaluation{
		ID:          EvaluationID(HFBI, st.Code, st.Date),
		Index:       HFBI,
		StationCode: st.Code,
		WaterBody:   st.WaterBody,
		Location:    st.Location,
		Date:        st.Date,
		Value:       ptr(res.Value),
		Status:      ptr(res.Status.String()),
		Metrics: []Metric{
			{"bn", ptr(im.BN)},
			{"bbent", ptr(im.BBent)},
			{"dbent", ptr(im.DBent)},
			{"ddom", ptr(im.DDom)},
			{"dhzp", ptr(im.DHzp)},
			{"dmig", ptr(im.DMig)},
			{"mmi", ptr(im.MMI)},
		},
	}
}

func ptr[T any](v T) *T {
	return &v
}
